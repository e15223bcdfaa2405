// Package compress provides at-rest compression codecs and framing for
// encoded sbson documents.
//
// The sbson format itself never compresses anything: a cursor navigates a
// document by raw byte offsets, so the bytes it walks must be the encoder's
// exact output. Compression lives one layer out, when a finished document is
// persisted or transmitted, and is removed before a cursor is created.
//
// # Codecs
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// Four implementations are provided, selected by format.CompressionType:
//
//   - None (NoOpCompressor): bypass, for incompressible or latency-critical
//     documents
//   - Zstd (ZstdCompressor): best ratio, moderate speed; pure-Go
//     klauspost/compress by default, valyala/gozstd under the cgo_zstd
//     build tag
//   - S2 (S2Compressor): balanced ratio and speed
//   - LZ4 (LZ4Compressor): fastest decompression, moderate ratio
//
// # Document Framing
//
// A stored document should name its own codec so readers need no side
// channel. FrameDocument prepends a 1-byte compression identifier to the
// compressed bytes; OpenDocument reads the identifier, picks the codec, and
// returns the original encoded document:
//
//	frame, err := compress.FrameDocument(format.CompressionZstd, docBytes)
//	...
//	docBytes, err := compress.OpenDocument(frame)
//	cur, err := doc.NewCursor(docBytes)
//
// Framing is byte-slice in, byte-slice out; this package performs no file or
// network I/O.
package compress
