package section

import (
	"fmt"

	"github.com/arloliu/sbson/endian"
	"github.com/arloliu/sbson/errs"
)

// CHDHeader is the fixed 8-byte header of a tag 0x20 perfect-hash map,
// immediately following the tag byte. It is followed by CHDBucketCount(Count)
// displacement words and then the descriptor table in hash-slot order.
type CHDHeader struct {
	// Count is the number of map entries.
	//
	// Offset: 0 (low 24 bits of the count word), Size: 24 bits.
	// The high 8 bits of the word are reserved and must be zero.
	Count int

	// Seed is the hash seed the table was built with. Lookups must use the
	// same seed so the (g, f1, f2) triples match construction.
	//
	// Offset: 4, Size: 4 bytes.
	Seed uint32
}

// CHDFixedSize is the encoded size of the fixed CHDHeader part (count word +
// seed word), excluding the displacement table.
const CHDFixedSize = MapHeaderWordSize + SeedSize

// Bytes returns the fixed header part as an 8-byte slice using the specified
// endian engine.
func (h *CHDHeader) Bytes(engine endian.EndianEngine) []byte {
	var b [CHDFixedSize]byte
	engine.PutUint32(b[0:4], uint32(h.Count)) //nolint:gosec
	engine.PutUint32(b[4:8], h.Seed)

	return b[:]
}

// Parse decodes and validates the fixed CHD header part from data.
//
// Parameters:
//   - data: Byte slice starting at the count word (at least 8 bytes)
//   - engine: Endian engine for byte order
//
// Returns:
//   - error: ErrTruncatedBuffer if data is shorter than 8 bytes,
//     ErrMalformedHeader if the reserved bits are non-zero
func (h *CHDHeader) Parse(data []byte, engine endian.EndianEngine) error {
	if len(data) < CHDFixedSize {
		return fmt.Errorf("%w: CHD header needs %d bytes, have %d",
			errs.ErrTruncatedBuffer, CHDFixedSize, len(data))
	}

	word := engine.Uint32(data[0:4])
	if word&^uint32(MapCountMask) != 0 {
		return fmt.Errorf("%w: non-zero reserved bits in CHD count word", errs.ErrMalformedHeader)
	}

	h.Count = int(word)
	h.Seed = engine.Uint32(data[4:8])

	return nil
}

// PackDisplacement packs a (d1, d2) displacement pair into one wire word.
// Both halves are bounded by MaxDisplacement at construction time.
func PackDisplacement(d1, d2 uint16) uint32 {
	return uint32(d1)<<16 | uint32(d2)
}

// UnpackDisplacement splits a displacement word into its (d1, d2) halves.
func UnpackDisplacement(word uint32) (d1, d2 uint16) {
	return uint16(word >> 16), uint16(word) //nolint:gosec
}
