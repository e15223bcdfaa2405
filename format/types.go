// Package format defines the wire-level type tags and the encoder-facing
// enums of the sbson format.
package format

type (
	// ElementType is the 1-byte tag that starts every encoded element.
	ElementType uint8

	// MapLayout identifies the physical descriptor order of a tag 0x03 map.
	// It travels in the high byte of the map header word.
	MapLayout uint8

	// MapStrategy is an encoder directive selecting how a map is laid out.
	// It never appears on the wire; the encoder translates it into an
	// element tag plus, for tag 0x03, a MapLayout code.
	MapStrategy uint8

	// CompressionType identifies the at-rest compression codec used by the
	// compress package when framing an encoded document for storage.
	CompressionType uint8
)

// Element type tags. The values are fixed by the wire format.
const (
	TypeDouble ElementType = 0x01 // 8-byte little-endian IEEE-754 float
	TypeString ElementType = 0x02 // NUL-terminated byte sequence
	TypeMap    ElementType = 0x03 // sorted-array or Eytzinger map
	TypeArray  ElementType = 0x04 // offset-indexed array
	TypeBinary ElementType = 0x05 // uint32 length-prefixed blob
	TypeFalse  ElementType = 0x08 // boolean false, no payload
	TypeTrue   ElementType = 0x09 // boolean true, no payload
	TypeNull   ElementType = 0x0A // null, no payload
	TypeInt32  ElementType = 0x10 // 4-byte little-endian two's complement
	TypeInt64  ElementType = 0x12 // 8-byte little-endian two's complement
	TypeCHDMap ElementType = 0x20 // CHD perfect-hash map
)

// Map layout codes for the tag 0x03 header word.
const (
	LayoutSorted    MapLayout = 0x00 // descriptors in ascending key order
	LayoutEytzinger MapLayout = 0x01 // descriptors in level-order BST layout
)

// Encoder map strategies.
const (
	StrategyAuto        MapStrategy = 0x0 // pick by entry count thresholds
	StrategySortedArray MapStrategy = 0x1 // force tag 0x03, sorted layout
	StrategyEytzinger   MapStrategy = 0x2 // force tag 0x03, Eytzinger layout
	StrategyCHD         MapStrategy = 0x3 // force tag 0x20
)

// At-rest compression codecs.
const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// IsValid reports whether e is one of the defined element tags.
func (e ElementType) IsValid() bool {
	switch e {
	case TypeDouble, TypeString, TypeMap, TypeArray, TypeBinary,
		TypeFalse, TypeTrue, TypeNull, TypeInt32, TypeInt64, TypeCHDMap:
		return true
	default:
		return false
	}
}

// IsContainer reports whether e carries child elements reachable by offset.
func (e ElementType) IsContainer() bool {
	return e == TypeMap || e == TypeArray || e == TypeCHDMap
}

// IsMap reports whether e is one of the two map tags.
func (e ElementType) IsMap() bool {
	return e == TypeMap || e == TypeCHDMap
}

func (e ElementType) String() string {
	switch e {
	case TypeDouble:
		return "Double"
	case TypeString:
		return "String"
	case TypeMap:
		return "Map"
	case TypeArray:
		return "Array"
	case TypeBinary:
		return "Binary"
	case TypeFalse:
		return "False"
	case TypeTrue:
		return "True"
	case TypeNull:
		return "Null"
	case TypeInt32:
		return "Int32"
	case TypeInt64:
		return "Int64"
	case TypeCHDMap:
		return "CHDMap"
	default:
		return "Unknown"
	}
}

// IsValid reports whether l is a defined layout code.
func (l MapLayout) IsValid() bool {
	return l == LayoutSorted || l == LayoutEytzinger
}

func (l MapLayout) String() string {
	switch l {
	case LayoutSorted:
		return "Sorted"
	case LayoutEytzinger:
		return "Eytzinger"
	default:
		return "Unknown"
	}
}

// IsValid reports whether s is a defined strategy.
func (s MapStrategy) IsValid() bool {
	switch s {
	case StrategyAuto, StrategySortedArray, StrategyEytzinger, StrategyCHD:
		return true
	default:
		return false
	}
}

func (s MapStrategy) String() string {
	switch s {
	case StrategyAuto:
		return "Auto"
	case StrategySortedArray:
		return "SortedArray"
	case StrategyEytzinger:
		return "Eytzinger"
	case StrategyCHD:
		return "CHD"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
