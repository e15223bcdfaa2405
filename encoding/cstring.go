package encoding

import (
	"bytes"
	"fmt"

	"github.com/arloliu/sbson/errs"
)

// AppendCString appends s followed by a single NUL terminator to dst.
//
// The format reserves NUL purely as the terminator, so the bytes themselves
// may be anything else, including invalid UTF-8; no validation beyond the
// NUL scan is performed.
//
// Parameters:
//   - dst: destination buffer to append to
//   - s: string payload (no embedded NUL)
//
// Returns:
//   - []byte: the extended buffer
//   - error: ErrInvalidString if s contains an embedded NUL
func AppendCString(dst []byte, s []byte) ([]byte, error) {
	if bytes.IndexByte(s, 0) >= 0 {
		return nil, fmt.Errorf("%w: string contains embedded NUL", errs.ErrInvalidString)
	}

	dst = append(dst, s...)
	dst = append(dst, 0)

	return dst, nil
}

// ReadCStringAt reads a NUL-terminated string starting at offset off and
// returns the bytes before the terminator.
//
// The returned slice aliases buf (zero copy); callers that outlive the
// buffer must copy it.
//
// Returns:
//   - []byte: string payload, excluding the terminator
//   - error: ErrTruncatedBuffer if off is outside buf or no terminator is
//     found before the buffer ends
func ReadCStringAt(buf []byte, off int) ([]byte, error) {
	if off < 0 || off > len(buf) {
		return nil, fmt.Errorf("%w: string at offset %d, buffer is %d bytes",
			errs.ErrTruncatedBuffer, off, len(buf))
	}

	end := bytes.IndexByte(buf[off:], 0)
	if end < 0 {
		return nil, fmt.Errorf("%w: string at offset %d has no NUL terminator",
			errs.ErrTruncatedBuffer, off)
	}

	return buf[off : off+end], nil
}
