package section

// Element sizes in bytes.
const (
	TagSize           = 1 // element type tag prefix of every node
	MapHeaderWordSize = 4 // layout<<24 | count word of tag 0x03/0x20 maps
	DescriptorSize    = 8 // keyRef word + valueOffset word
	SeedSize          = 4 // CHD hash seed
	DisplacementSize  = 4 // one packed (d1, d2) word per CHD bucket
	ArraySizeWordSize = 4 // total-size word of tag 0x04 arrays
	ArrayOffsetSize   = 4 // one element offset word of tag 0x04 arrays
	BinaryLengthSize  = 4 // length prefix of tag 0x05 blobs
	CStringTermSize   = 1 // NUL terminator of keys and tag 0x02 strings
	DoublePayloadSize = 8
	Int32PayloadSize  = 4
	Int64PayloadSize  = 8
)

// Derived layout offsets, all relative to the container's tag byte.
const (
	// MapDescTableOffset is where a tag 0x03 map's descriptor table starts.
	MapDescTableOffset = TagSize + MapHeaderWordSize

	// CHDSeedOffset is where a tag 0x20 map's seed word starts.
	CHDSeedOffset = TagSize + MapHeaderWordSize

	// CHDDisplacementOffset is where a tag 0x20 map's displacement table starts.
	CHDDisplacementOffset = CHDSeedOffset + SeedSize

	// ArrayOffsetTableOffset is where a tag 0x04 array's offset table starts.
	ArrayOffsetTableOffset = TagSize + ArraySizeWordSize

	// EmptyArraySize is the full encoded size of a zero-element array.
	EmptyArraySize = TagSize + ArraySizeWordSize
)

// Format limits. Key references pack the key length into 8 bits and the key
// offset into 24 bits, which bounds both per-key and per-map key storage.
const (
	// MaxKeyLength is the maximum key length in bytes (excluding the NUL
	// terminator), bounded by the 8-bit length field of the key reference.
	MaxKeyLength = 255

	// MaxKeyOffset is the maximum key offset representable in the 24-bit
	// offset field of the key reference, which caps a single map's key
	// storage at roughly 16 MiB.
	MaxKeyOffset = 1<<24 - 1

	// MaxMapEntries is the maximum entry count representable in the 24-bit
	// count field of the map header word.
	MaxMapEntries = 1<<24 - 1

	// CHDBucketSize is the average bucket load of the CHD construction; the
	// bucket count of an N-entry map is ceil(N / CHDBucketSize).
	CHDBucketSize = 5

	// MaxDisplacement bounds each half of a displacement pair so both fit
	// in the 16-bit halves of the displacement word.
	MaxDisplacement = 65535
)

// Bit packing of the key reference and map header words.
const (
	KeyRefLengthShift = 24         // key length in the high 8 bits
	KeyRefOffsetMask  = 0x00FFFFFF // key offset in the low 24 bits
	MapLayoutShift    = 24         // layout code in the high 8 bits
	MapCountMask      = 0x00FFFFFF // entry count in the low 24 bits
)

// CHDBucketCount returns the number of displacement buckets of an N-entry
// CHD map: ceil(N / CHDBucketSize).
func CHDBucketCount(count int) int {
	return (count + CHDBucketSize - 1) / CHDBucketSize
}
