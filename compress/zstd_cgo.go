//go:build cgo_zstd

package compress

import (
	"github.com/valyala/gozstd"
)

// Compress encodes data as a zstd frame via libzstd at level 3, matching
// the pure-Go implementation's default ratio.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

// Decompress decodes a zstd frame via libzstd.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
