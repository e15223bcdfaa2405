// Package encoding provides the leaf payload codecs of the sbson format:
// little-endian scalars, NUL-terminated cstrings, and length-prefixed binary
// blobs.
//
// The append functions are the encoder's write primitives; the ReadXxxAt
// functions are the cursor's read primitives. Every read takes the full
// buffer plus an absolute offset and bounds-checks against len(buf) before
// touching a byte, returning an errs sentinel instead of panicking on
// truncated or corrupt input. Reads that return slices (cstrings, binary)
// alias the buffer rather than copying, which is what makes cursor
// navigation allocation-free.
package encoding
