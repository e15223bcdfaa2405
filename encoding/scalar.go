package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/sbson/endian"
	"github.com/arloliu/sbson/errs"
)

// ReadUint32At reads a little-endian uint32 at offset off.
//
// Returns ErrTruncatedBuffer if fewer than 4 bytes remain at off.
func ReadUint32At(buf []byte, off int, engine endian.EndianEngine) (uint32, error) {
	if off < 0 || off+4 > len(buf) {
		return 0, fmt.Errorf("%w: uint32 at offset %d, buffer is %d bytes",
			errs.ErrTruncatedBuffer, off, len(buf))
	}

	return engine.Uint32(buf[off : off+4]), nil
}

// ReadUint64At reads a little-endian uint64 at offset off.
//
// Returns ErrTruncatedBuffer if fewer than 8 bytes remain at off.
func ReadUint64At(buf []byte, off int, engine endian.EndianEngine) (uint64, error) {
	if off < 0 || off+8 > len(buf) {
		return 0, fmt.Errorf("%w: uint64 at offset %d, buffer is %d bytes",
			errs.ErrTruncatedBuffer, off, len(buf))
	}

	return engine.Uint64(buf[off : off+8]), nil
}

// ReadInt32At reads a little-endian two's-complement int32 at offset off.
func ReadInt32At(buf []byte, off int, engine endian.EndianEngine) (int32, error) {
	v, err := ReadUint32At(buf, off, engine)
	if err != nil {
		return 0, err
	}

	return int32(v), nil //nolint:gosec
}

// ReadInt64At reads a little-endian two's-complement int64 at offset off.
func ReadInt64At(buf []byte, off int, engine endian.EndianEngine) (int64, error) {
	v, err := ReadUint64At(buf, off, engine)
	if err != nil {
		return 0, err
	}

	return int64(v), nil //nolint:gosec
}

// ReadFloat64At reads a little-endian IEEE-754 double at offset off.
func ReadFloat64At(buf []byte, off int, engine endian.EndianEngine) (float64, error) {
	v, err := ReadUint64At(buf, off, engine)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(v), nil
}

// AppendFloat64 appends the 8-byte little-endian encoding of v to dst.
func AppendFloat64(dst []byte, v float64, engine endian.EndianEngine) []byte {
	return engine.AppendUint64(dst, math.Float64bits(v))
}

// AppendInt32 appends the 4-byte little-endian encoding of v to dst.
func AppendInt32(dst []byte, v int32, engine endian.EndianEngine) []byte {
	return engine.AppendUint32(dst, uint32(v)) //nolint:gosec
}

// AppendInt64 appends the 8-byte little-endian encoding of v to dst.
func AppendInt64(dst []byte, v int64, engine endian.EndianEngine) []byte {
	return engine.AppendUint64(dst, uint64(v)) //nolint:gosec
}
