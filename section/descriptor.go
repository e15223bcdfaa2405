package section

import (
	"fmt"

	"github.com/arloliu/sbson/endian"
	"github.com/arloliu/sbson/errs"
)

// Descriptor records one map entry: where its key lives in the key block and
// where its value encoding starts. It is a fixed size of 8 bytes.
//
// Both offsets are relative to the map container's own tag byte, never
// absolute, so an encoded map can be relocated without rewriting
// descriptors.
type Descriptor struct {
	// KeyLength is the key length in bytes, excluding the NUL terminator.
	//
	// Offset: 0 (high 8 bits of the keyRef word), Size: 8 bits.
	// Maximum 255 (MaxKeyLength); longer keys are rejected at encode time.
	KeyLength int

	// KeyOffset is the byte offset of the key's first byte, relative to the
	// container's tag byte.
	//
	// Offset: 0 (low 24 bits of the keyRef word), Size: 24 bits.
	// Maximum 2^24-1 (MaxKeyOffset), which caps per-map key storage.
	KeyOffset int

	// ValueOffset is the byte offset of the value's tag byte, relative to
	// the container's tag byte.
	//
	// Offset: 4, Size: 4 bytes (full uint32).
	ValueOffset int
}

// PackKeyRef packs KeyLength and KeyOffset into the keyRef word.
//
// The caller must have validated both fields against MaxKeyLength and
// MaxKeyOffset; the encoder does this before any descriptor is built.
func (d *Descriptor) PackKeyRef() uint32 {
	return uint32(d.KeyLength)<<KeyRefLengthShift | uint32(d.KeyOffset) //nolint:gosec
}

// Bytes returns the descriptor as an 8-byte slice using the specified endian engine.
//
// This method uses stack allocation for better performance.
//
// Parameters:
//   - engine: Endian engine for byte order
//
// Returns:
//   - []byte: 8-byte descriptor with both words encoded
func (d *Descriptor) Bytes(engine endian.EndianEngine) []byte {
	var b [DescriptorSize]byte // stack allocation, it's faster than heap allocation
	engine.PutUint32(b[0:4], d.PackKeyRef())
	engine.PutUint32(b[4:8], uint32(d.ValueOffset)) //nolint:gosec

	return b[:]
}

// WriteToSlice writes the descriptor into data at the given offset.
//
// The destination must have at least DescriptorSize bytes available at
// offset; the encoder sizes its buffers exactly, so a short destination is a
// programmer error and panics via the slice bounds check.
func (d *Descriptor) WriteToSlice(data []byte, offset int, engine endian.EndianEngine) {
	engine.PutUint32(data[offset:offset+4], d.PackKeyRef())
	engine.PutUint32(data[offset+4:offset+8], uint32(d.ValueOffset)) //nolint:gosec
}

// Parse decodes an 8-byte descriptor from data using the specified endian engine.
//
// Parameters:
//   - data: Byte slice containing the descriptor (at least 8 bytes)
//   - engine: Endian engine for byte order
//
// Returns:
//   - error: ErrTruncatedBuffer if data is shorter than 8 bytes
func (d *Descriptor) Parse(data []byte, engine endian.EndianEngine) error {
	if len(data) < DescriptorSize {
		return fmt.Errorf("%w: descriptor needs %d bytes, have %d",
			errs.ErrTruncatedBuffer, DescriptorSize, len(data))
	}

	keyRef := engine.Uint32(data[0:4])
	d.KeyLength = int(keyRef >> KeyRefLengthShift)
	d.KeyOffset = int(keyRef & KeyRefOffsetMask)
	d.ValueOffset = int(engine.Uint32(data[4:8]))

	return nil
}
