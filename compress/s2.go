package compress

import "github.com/klauspost/compress/s2"

// S2Compressor compresses documents with S2, the Snappy-compatible codec
// tuned for throughput. A good default when framing latency matters more
// than ratio.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates an S2 codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress encodes data as a self-contained S2 block. Empty input yields
// nil.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decodes an S2 block. The block carries its decoded length, so
// no size hint is needed.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
