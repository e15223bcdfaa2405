package compress

import (
	"fmt"

	"github.com/arloliu/sbson/errs"
	"github.com/arloliu/sbson/format"
)

// FrameHeaderSize is the size of the frame prefix: one compression
// identifier byte.
const FrameHeaderSize = 1

// FrameDocument compresses an encoded document and prepends a 1-byte
// compression identifier, producing a self-describing frame that
// OpenDocument can unpack without out-of-band codec information.
//
// Parameters:
//   - compressionType: codec to apply (None, Zstd, S2, or LZ4)
//   - document: complete encoded document bytes
//
// Returns:
//   - []byte: identifier byte followed by the compressed document
//   - error: invalid compression type, or codec failure
func FrameDocument(compressionType format.CompressionType, document []byte) ([]byte, error) {
	codec, err := GetCodec(compressionType)
	if err != nil {
		return nil, err
	}

	compressed, err := codec.Compress(document)
	if err != nil {
		return nil, fmt.Errorf("framing with %s failed: %w", compressionType, err)
	}

	frame := make([]byte, 0, FrameHeaderSize+len(compressed))
	frame = append(frame, byte(compressionType))

	return append(frame, compressed...), nil
}

// OpenDocument unpacks a frame produced by FrameDocument and returns the
// original encoded document bytes, ready to wrap in a cursor.
//
// Returns:
//   - []byte: the decompressed document
//   - error: ErrTruncatedBuffer for an empty frame, ErrMalformedHeader for
//     an unknown compression identifier, or codec failure
func OpenDocument(frame []byte) ([]byte, error) {
	if len(frame) < FrameHeaderSize {
		return nil, fmt.Errorf("%w: document frame is empty", errs.ErrTruncatedBuffer)
	}

	compressionType := format.CompressionType(frame[0])
	codec, err := GetCodec(compressionType)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown compression identifier 0x%02X",
			errs.ErrMalformedHeader, frame[0])
	}

	document, err := codec.Decompress(frame[FrameHeaderSize:])
	if err != nil {
		return nil, fmt.Errorf("opening %s frame failed: %w", compressionType, err)
	}

	return document, nil
}
