package compress

// ZstdCompressor compresses documents with Zstandard. The ratio/speed
// trade-off suits documents written once and stored: descriptor tables and
// key blocks are highly repetitive and compress well.
//
// Two implementations exist behind the same type: the pure-Go
// klauspost/compress encoder by default, and valyala/gozstd (cgo bindings
// to libzstd) under the cgo_zstd build tag for workloads where the native
// library's speed pays for the cgo dependency. Both produce standard zstd
// frames, so buffers written by one are readable by the other.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
