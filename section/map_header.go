package section

import (
	"fmt"

	"github.com/arloliu/sbson/endian"
	"github.com/arloliu/sbson/errs"
	"github.com/arloliu/sbson/format"
)

// MapHeader is the 4-byte header word of a tag 0x03 map. It immediately
// follows the tag byte and packs the physical descriptor layout together
// with the entry count.
type MapHeader struct {
	// Layout identifies the physical descriptor order: sorted ascending by
	// key bytes, or Eytzinger (level-order BST) permutation of that order.
	//
	// Offset: 0 (high 8 bits of the word), Size: 8 bits.
	Layout format.MapLayout

	// Count is the number of map entries.
	//
	// Offset: 0 (low 24 bits of the word), Size: 24 bits.
	// Maximum 2^24-1 (MaxMapEntries).
	Count int
}

// Word packs the header into its uint32 wire representation.
func (h *MapHeader) Word() uint32 {
	return uint32(h.Layout)<<MapLayoutShift | uint32(h.Count) //nolint:gosec
}

// Bytes returns the header word as a 4-byte slice using the specified endian engine.
func (h *MapHeader) Bytes(engine endian.EndianEngine) []byte {
	var b [MapHeaderWordSize]byte
	engine.PutUint32(b[:], h.Word())

	return b[:]
}

// Parse decodes and validates a map header word from data.
//
// Parameters:
//   - data: Byte slice starting at the header word (at least 4 bytes)
//   - engine: Endian engine for byte order
//
// Returns:
//   - error: ErrTruncatedBuffer if data is shorter than 4 bytes,
//     ErrMalformedHeader if the layout code is unknown
func (h *MapHeader) Parse(data []byte, engine endian.EndianEngine) error {
	if len(data) < MapHeaderWordSize {
		return fmt.Errorf("%w: map header needs %d bytes, have %d",
			errs.ErrTruncatedBuffer, MapHeaderWordSize, len(data))
	}

	word := engine.Uint32(data[0:MapHeaderWordSize])
	layout := format.MapLayout(word >> MapLayoutShift) //nolint:gosec
	if !layout.IsValid() {
		return fmt.Errorf("%w: unknown map layout code 0x%02X", errs.ErrMalformedHeader, uint8(layout))
	}

	h.Layout = layout
	h.Count = int(word & MapCountMask)

	return nil
}
