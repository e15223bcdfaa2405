package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/sbson/endian"
	"github.com/arloliu/sbson/errs"
)

// AppendBinary appends the uint32 length prefix and the raw bytes of b to dst.
//
// Returns ErrSizeLimitExceeded if the blob length does not fit the 32-bit
// length field.
func AppendBinary(dst []byte, b []byte, engine endian.EndianEngine) ([]byte, error) {
	if len(b) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: binary blob of %d bytes exceeds uint32 length field",
			errs.ErrSizeLimitExceeded, len(b))
	}

	dst = engine.AppendUint32(dst, uint32(len(b))) //nolint:gosec

	return append(dst, b...), nil
}

// ReadBinaryAt reads a length-prefixed binary blob starting at offset off.
//
// The returned slice aliases buf (zero copy).
//
// Returns:
//   - []byte: the blob payload
//   - error: ErrTruncatedBuffer if the length prefix or the payload extends
//     past the buffer end
func ReadBinaryAt(buf []byte, off int, engine endian.EndianEngine) ([]byte, error) {
	length, err := ReadUint32At(buf, off, engine)
	if err != nil {
		return nil, err
	}

	start := off + BinaryLengthSize
	if uint64(length) > uint64(len(buf)-start) {
		return nil, fmt.Errorf("%w: binary blob of %d bytes at offset %d, buffer is %d bytes",
			errs.ErrTruncatedBuffer, length, start, len(buf))
	}

	return buf[start : start+int(length)], nil
}

// BinaryLengthSize is the size of the binary blob length prefix.
const BinaryLengthSize = 4
