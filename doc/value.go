package doc

import "github.com/arloliu/sbson/format"

// Value is one node of an encoder input tree. It is a closed union: exactly
// one variant exists per element tag, and only this package can add
// variants, so the encoder dispatches on a known, finite set of types.
//
// A nil Value encodes as Null.
type Value interface {
	// kind reports the element tag the variant encodes to. It also seals
	// the interface.
	kind() format.ElementType
}

type (
	// Double is a 64-bit float value (tag 0x01).
	Double float64

	// String is a string value (tag 0x02). Any byte sequence without an
	// embedded NUL is allowed, including invalid UTF-8; the encoder rejects
	// embedded NULs because the wire format reserves NUL as the terminator.
	String string

	// Binary is an opaque byte blob (tag 0x05). Unlike String it may
	// contain NULs; it is stored length-prefixed.
	Binary []byte

	// Bool is a boolean value (tag 0x08 or 0x09).
	Bool bool

	// Null is the null value (tag 0x0A).
	Null struct{}

	// Int32 is a 32-bit signed integer value (tag 0x10).
	Int32 int32

	// Int64 is a 64-bit signed integer value (tag 0x12).
	Int64 int64

	// Array is an ordered list of values (tag 0x04).
	Array []Value

	// Entry is one key/value pair of a Map. Keys are at most 255 bytes and
	// must not contain NUL.
	Entry struct {
		Key   string
		Value Value
	}

	// Map is an ordered list of key/value pairs (tag 0x03 or 0x20). Keys
	// must be pairwise unique; the encoder rejects duplicates. Strategy
	// overrides the encoder's map strategy for this map only; leave it as
	// format.StrategyAuto to inherit the encoder's choice.
	Map struct {
		Entries  []Entry
		Strategy format.MapStrategy
	}
)

func (Double) kind() format.ElementType { return format.TypeDouble }
func (String) kind() format.ElementType { return format.TypeString }
func (Binary) kind() format.ElementType { return format.TypeBinary }
func (Null) kind() format.ElementType   { return format.TypeNull }
func (Int32) kind() format.ElementType  { return format.TypeInt32 }
func (Int64) kind() format.ElementType  { return format.TypeInt64 }
func (Array) kind() format.ElementType  { return format.TypeArray }
func (Map) kind() format.ElementType    { return format.TypeMap }

func (b Bool) kind() format.ElementType {
	if b {
		return format.TypeTrue
	}

	return format.TypeFalse
}

// NewMap creates an empty map with the Auto strategy.
func NewMap() *Map {
	return &Map{}
}

// Put appends a key/value pair and returns the map for chaining. It does not
// check for duplicate keys; the encoder does that when the map is encoded.
func (m *Map) Put(key string, v Value) *Map {
	m.Entries = append(m.Entries, Entry{Key: key, Value: v})
	return m
}

// WithStrategy sets the per-map strategy override and returns the map for
// chaining.
func (m *Map) WithStrategy(s format.MapStrategy) *Map {
	m.Strategy = s
	return m
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return len(m.Entries)
}
