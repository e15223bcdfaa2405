package compress

// NoOpCompressor is the identity codec: framing with CompressionNone stores
// the document bytes as-is. It also serves as the baseline in codec
// benchmarks.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates the identity codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data unchanged. The result aliases the input; callers
// that mutate the input afterwards must copy first.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data unchanged. Same aliasing caveat as Compress.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
