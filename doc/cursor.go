package doc

import (
	"fmt"

	"github.com/arloliu/sbson/encoding"
	"github.com/arloliu/sbson/endian"
	"github.com/arloliu/sbson/errs"
	"github.com/arloliu/sbson/format"
)

// wireEngine is the byte order of the wire format. Cursors never take an
// engine parameter; the format pins little-endian.
var wireEngine = endian.GetLittleEndianEngine()

// Cursor is a zero-copy view into an encoded document: a buffer reference,
// the byte offset of one element, and that element's decoded tag.
//
// Cursors are immutable values; navigation methods return new cursors
// instead of mutating the receiver, so a cursor can be copied, stored, and
// shared freely. A cursor never owns its buffer: the producer of the buffer
// controls its lifetime, and the buffer must stay frozen while any cursor
// over it is alive. Navigation is read-only, so any number of goroutines may
// navigate the same buffer concurrently under that contract.
//
// Every stored offset is bounds-checked against the buffer length before it
// is dereferenced; corrupt input surfaces as an error, never as a panic or
// an out-of-range read.
type Cursor struct {
	buf    []byte
	offset int
	tag    format.ElementType
}

// NewCursor wraps an encoded document buffer and positions a cursor at its
// root element.
//
// Returns:
//   - Cursor: positioned at offset 0
//   - error: ErrOffsetOutOfBounds for an empty buffer, ErrTypeMismatch if
//     the first byte is not a known element tag
func NewCursor(buf []byte) (Cursor, error) {
	return cursorAt(buf, 0)
}

// cursorAt positions a cursor at off, validating that off lands inside the
// buffer on a known tag byte.
func cursorAt(buf []byte, off int) (Cursor, error) {
	if off < 0 || off >= len(buf) {
		return Cursor{}, fmt.Errorf("%w: element offset %d in buffer of %d bytes",
			errs.ErrOffsetOutOfBounds, off, len(buf))
	}

	tag := format.ElementType(buf[off])
	if !tag.IsValid() {
		return Cursor{}, fmt.Errorf("%w: byte 0x%02X at offset %d is not an element tag",
			errs.ErrTypeMismatch, buf[off], off)
	}

	return Cursor{buf: buf, offset: off, tag: tag}, nil
}

// Kind returns the element tag at the cursor's position.
func (c Cursor) Kind() format.ElementType {
	return c.tag
}

// IsNull reports whether the cursor is positioned on a null element.
func (c Cursor) IsNull() bool {
	return c.tag == format.TypeNull
}

// Double returns the float64 payload.
//
// Fails ErrTypeMismatch unless the element is a double.
func (c Cursor) Double() (float64, error) {
	if c.tag != format.TypeDouble {
		return 0, c.typeMismatch(format.TypeDouble)
	}

	return encoding.ReadFloat64At(c.buf, c.offset+1, wireEngine)
}

// Int32 returns the int32 payload.
func (c Cursor) Int32() (int32, error) {
	if c.tag != format.TypeInt32 {
		return 0, c.typeMismatch(format.TypeInt32)
	}

	return encoding.ReadInt32At(c.buf, c.offset+1, wireEngine)
}

// Int64 returns the int64 payload.
func (c Cursor) Int64() (int64, error) {
	if c.tag != format.TypeInt64 {
		return 0, c.typeMismatch(format.TypeInt64)
	}

	return encoding.ReadInt64At(c.buf, c.offset+1, wireEngine)
}

// Bool returns the boolean payload.
func (c Cursor) Bool() (bool, error) {
	switch c.tag {
	case format.TypeTrue:
		return true, nil
	case format.TypeFalse:
		return false, nil
	default:
		return false, fmt.Errorf("%w: element is %s, want a boolean",
			errs.ErrTypeMismatch, c.tag)
	}
}

// StringBytes returns the string payload without its NUL terminator as a
// zero-copy view into the buffer. Callers that outlive the buffer must copy.
func (c Cursor) StringBytes() ([]byte, error) {
	if c.tag != format.TypeString {
		return nil, c.typeMismatch(format.TypeString)
	}

	return encoding.ReadCStringAt(c.buf, c.offset+1)
}

// StringValue returns the string payload as a Go string (copies).
func (c Cursor) StringValue() (string, error) {
	b, err := c.StringBytes()
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// Binary returns the blob payload as a zero-copy view into the buffer.
func (c Cursor) Binary() ([]byte, error) {
	if c.tag != format.TypeBinary {
		return nil, c.typeMismatch(format.TypeBinary)
	}

	return encoding.ReadBinaryAt(c.buf, c.offset+1, wireEngine)
}

func (c Cursor) typeMismatch(want format.ElementType) error {
	return fmt.Errorf("%w: element is %s, want %s", errs.ErrTypeMismatch, c.tag, want)
}
