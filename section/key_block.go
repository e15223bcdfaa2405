package section

import (
	"bytes"
	"fmt"

	"github.com/arloliu/sbson/errs"
)

// KeyBlockBuilder accumulates the key block of one map: every key stored
// once, back-to-back, each followed by a NUL terminator. Descriptors refer
// into the block by (length, offset) key references.
//
// The builder enforces the format limits as keys are added, so the encoder
// never discovers an over-budget map after bytes have been laid out.
type KeyBlockBuilder struct {
	buf []byte
}

// NewKeyBlockBuilder creates a builder with capacity for sizeHint key bytes.
func NewKeyBlockBuilder(sizeHint int) *KeyBlockBuilder {
	return &KeyBlockBuilder{buf: make([]byte, 0, sizeHint)}
}

// Add appends key (plus its NUL terminator) to the block and returns the
// key's byte offset within the block.
//
// The returned offset is block-relative; the encoder adds the block's
// position within the container when packing key references.
//
// Returns:
//   - int: offset of the key's first byte within the block
//   - error: ErrSizeLimitExceeded if the key exceeds MaxKeyLength or the
//     block would exceed MaxKeyOffset; ErrInvalidString if the key contains
//     an embedded NUL
func (b *KeyBlockBuilder) Add(key []byte) (int, error) {
	if len(key) > MaxKeyLength {
		return 0, fmt.Errorf("%w: key length %d exceeds maximum %d",
			errs.ErrSizeLimitExceeded, len(key), MaxKeyLength)
	}
	if bytes.IndexByte(key, 0) >= 0 {
		return 0, fmt.Errorf("%w: map key contains embedded NUL", errs.ErrInvalidString)
	}

	offset := len(b.buf)
	if offset+len(key) > MaxKeyOffset {
		return 0, fmt.Errorf("%w: map key bytes exceed %d", errs.ErrSizeLimitExceeded, MaxKeyOffset)
	}

	b.buf = append(b.buf, key...)
	b.buf = append(b.buf, 0)

	return offset, nil
}

// Len returns the current block size in bytes, terminators included.
func (b *KeyBlockBuilder) Len() int {
	return len(b.buf)
}

// Bytes returns the accumulated block. The slice aliases the builder's
// internal storage and must not be retained past the next Add.
func (b *KeyBlockBuilder) Bytes() []byte {
	return b.buf
}

// ResolveKey returns the key bytes referenced by desc in a container that
// starts at base within buf.
//
// Every access is bounds-checked against len(buf) before dereferencing; the
// stored length must be matched by a NUL terminator exactly KeyLength bytes
// past the key start, otherwise the reference and the block disagree and the
// buffer is malformed.
//
// The returned slice aliases buf (zero copy).
//
// Returns:
//   - []byte: the key bytes, excluding the terminator
//   - error: ErrOffsetOutOfBounds if the reference points outside buf,
//     ErrTruncatedBuffer if the buffer ends inside the key,
//     ErrMalformedHeader if the terminator is missing
func ResolveKey(buf []byte, base int, desc Descriptor) ([]byte, error) {
	start := base + desc.KeyOffset
	if start < 0 || start > len(buf) {
		return nil, fmt.Errorf("%w: key offset %d outside buffer of %d bytes",
			errs.ErrOffsetOutOfBounds, start, len(buf))
	}

	end := start + desc.KeyLength
	if end+CStringTermSize > len(buf) {
		return nil, fmt.Errorf("%w: key of length %d at offset %d exceeds buffer of %d bytes",
			errs.ErrTruncatedBuffer, desc.KeyLength, start, len(buf))
	}
	if buf[end] != 0 {
		return nil, fmt.Errorf("%w: key reference length %d does not reach a NUL terminator",
			errs.ErrMalformedHeader, desc.KeyLength)
	}

	return buf[start:end], nil
}
