// Package errs defines the sentinel errors returned by the sbson codec.
//
// Every failure surfaced by the encoder, the cursor, or the supporting
// packages wraps exactly one of these sentinels, so callers can classify
// failures with errors.Is regardless of the contextual detail attached at
// the failure site:
//
//	cur, err := c.MapGet("missing")
//	if errors.Is(err, errs.ErrKeyNotFound) {
//		// expected miss, not corruption
//	}
//
// The sentinels split into three groups that never overlap:
//
//   - Decode-time errors (ErrMalformedHeader, ErrOffsetOutOfBounds,
//     ErrTruncatedBuffer, ErrTypeMismatch) indicate the buffer cannot be
//     trusted. They are not recoverable locally.
//   - Lookup errors (ErrKeyNotFound, ErrIndexOutOfRange) are expected
//     outcomes of normal navigation, not corruption.
//   - Encode-time errors (ErrDuplicateKey, ErrInvalidString,
//     ErrSizeLimitExceeded, ErrCHDConstructionFailed) reject the input value
//     tree before any buffer is produced.
package errs

import "errors"

// Decode-time errors. All of them mean the buffer is corrupt, truncated, or
// was never an sbson document; none of them are recoverable by retrying.
var (
	// ErrMalformedHeader indicates a container header that is internally
	// inconsistent: an unknown map layout code, non-zero reserved bits, an
	// array size word that disagrees with its offset table, or a key
	// reference whose stored length does not match the key bytes.
	ErrMalformedHeader = errors.New("malformed container header")

	// ErrOffsetOutOfBounds indicates a stored offset that, resolved against
	// its container, points outside the buffer. Offsets are validated before
	// every dereference.
	ErrOffsetOutOfBounds = errors.New("offset out of bounds")

	// ErrTruncatedBuffer indicates the buffer ends before a complete payload:
	// a scalar payload cut short, a string missing its NUL terminator, or a
	// header larger than the remaining bytes.
	ErrTruncatedBuffer = errors.New("truncated buffer")

	// ErrTypeMismatch indicates an element tag that disagrees with the
	// accessor used (e.g. Double() on an int32 element), a navigation call on
	// a non-container, or a tag byte that is not a known element type at all.
	ErrTypeMismatch = errors.New("element type mismatch")
)

// Lookup errors. These are ordinary negative results of navigation over a
// well-formed buffer.
var (
	// ErrKeyNotFound indicates the requested key is not present in the map.
	// CHD maps return it after the mandatory key-byte verification, so a
	// hash-slot hit on a non-inserted key still reports a clean miss.
	ErrKeyNotFound = errors.New("key not found")

	// ErrIndexOutOfRange indicates an array or entry index outside [0, len).
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Encode-time errors. Encoding is all-or-nothing: when any of these is
// returned, no buffer has been produced.
var (
	// ErrDuplicateKey indicates a map value carries the same key twice.
	ErrDuplicateKey = errors.New("duplicate map key")

	// ErrInvalidString indicates a string value or key contains an embedded
	// NUL byte, which the format reserves as the terminator.
	ErrInvalidString = errors.New("invalid string")

	// ErrSizeLimitExceeded indicates a format limit was hit: a key longer
	// than 255 bytes, a map whose cumulative key bytes exceed 2^24-1, a map
	// with 2^24 or more entries, or a configured document size limit.
	ErrSizeLimitExceeded = errors.New("size limit exceeded")

	// ErrCHDConstructionFailed indicates the perfect-hash construction
	// exhausted its seed attempt ceiling without placing every key. The
	// search is bounded so encoding time stays predictable; retrying with a
	// higher ceiling may succeed.
	ErrCHDConstructionFailed = errors.New("CHD construction failed")
)
