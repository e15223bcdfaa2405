package doc

import (
	"fmt"

	"github.com/arloliu/sbson/encoding"
	"github.com/arloliu/sbson/errs"
	"github.com/arloliu/sbson/format"
	"github.com/arloliu/sbson/section"
)

// arrayMeta is the decoded header of an array element. The entry count is
// not stored on the wire; it is inferred from the first offset, which must
// point just past the offset table.
type arrayMeta struct {
	count int
	total int // total encoded size of the array node, tag included
}

// parseArrayMeta decodes and validates the array header: the total size
// word must cover the header and lie inside the buffer, and the first
// offset (when present) must encode a consistent table length.
func (c Cursor) parseArrayMeta() (arrayMeta, error) {
	var meta arrayMeta

	if c.tag != format.TypeArray {
		return meta, fmt.Errorf("%w: element is %s, want %s",
			errs.ErrTypeMismatch, c.tag, format.TypeArray)
	}

	totalWord, err := encoding.ReadUint32At(c.buf, c.offset+section.TagSize, wireEngine)
	if err != nil {
		return meta, err
	}
	if uint64(totalWord) > uint64(len(c.buf)-c.offset) {
		return meta, fmt.Errorf("%w: array size %d at offset %d, buffer is %d bytes",
			errs.ErrTruncatedBuffer, totalWord, c.offset, len(c.buf))
	}
	meta.total = int(totalWord)

	if meta.total < section.EmptyArraySize {
		return meta, fmt.Errorf("%w: array size word %d is smaller than the header",
			errs.ErrMalformedHeader, meta.total)
	}
	if meta.total == section.EmptyArraySize {
		return meta, nil // empty array: size word only
	}
	if meta.total < section.ArrayOffsetTableOffset+section.ArrayOffsetSize {
		return meta, fmt.Errorf("%w: array size word %d cannot hold an offset table",
			errs.ErrMalformedHeader, meta.total)
	}

	first, err := encoding.ReadUint32At(c.buf, c.offset+section.ArrayOffsetTableOffset, wireEngine)
	if err != nil {
		return meta, err
	}

	tableBytes := int(first) - section.ArrayOffsetTableOffset
	if tableBytes < section.ArrayOffsetSize || tableBytes%section.ArrayOffsetSize != 0 {
		return meta, fmt.Errorf("%w: first array offset %d does not delimit an offset table",
			errs.ErrMalformedHeader, first)
	}

	meta.count = tableBytes / section.ArrayOffsetSize
	if section.ArrayOffsetTableOffset+tableBytes > meta.total {
		return meta, fmt.Errorf("%w: offset table of %d entries exceeds array size %d",
			errs.ErrMalformedHeader, meta.count, meta.total)
	}

	return meta, nil
}

// ArrayLen returns the number of elements of an array element.
//
// Fails ErrTypeMismatch on non-array elements.
func (c Cursor) ArrayLen() (int, error) {
	meta, err := c.parseArrayMeta()
	if err != nil {
		return 0, err
	}

	return meta.count, nil
}

// ArrayAt returns a cursor positioned at element i. O(1): one offset-table
// read plus tag validation.
//
// Returns:
//   - Cursor: positioned at the element
//   - error: ErrIndexOutOfRange outside [0, ArrayLen); decode errors on
//     corrupt buffers
func (c Cursor) ArrayAt(i int) (Cursor, error) {
	meta, err := c.parseArrayMeta()
	if err != nil {
		return Cursor{}, err
	}

	return c.arrayElem(meta, i)
}

// arrayElem reads offset i and positions a cursor there, bounds-checking
// the stored offset against both the array extent and the buffer.
func (c Cursor) arrayElem(meta arrayMeta, i int) (Cursor, error) {
	if i < 0 || i >= meta.count {
		return Cursor{}, fmt.Errorf("%w: element %d of %d", errs.ErrIndexOutOfRange, i, meta.count)
	}

	wordOff := c.offset + section.ArrayOffsetTableOffset + i*section.ArrayOffsetSize
	stored, err := encoding.ReadUint32At(c.buf, wordOff, wireEngine)
	if err != nil {
		return Cursor{}, err
	}

	headerLen := section.ArrayOffsetTableOffset + meta.count*section.ArrayOffsetSize
	if int64(stored) < int64(headerLen) || int64(stored) >= int64(meta.total) {
		return Cursor{}, fmt.Errorf("%w: element offset %d outside array body [%d, %d)",
			errs.ErrOffsetOutOfBounds, stored, headerLen, meta.total)
	}

	return cursorAt(c.buf, c.offset+int(stored))
}
