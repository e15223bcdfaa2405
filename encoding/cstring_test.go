package encoding

import (
	"testing"

	"github.com/arloliu/sbson/errs"
	"github.com/stretchr/testify/require"
)

func TestAppendCString(t *testing.T) {
	t.Run("appends bytes and terminator", func(t *testing.T) {
		dst, err := AppendCString([]byte{0x02}, []byte("hi"))
		require.NoError(t, err)
		require.Equal(t, []byte{0x02, 'h', 'i', 0x00}, dst)
	})

	t.Run("empty string", func(t *testing.T) {
		dst, err := AppendCString(nil, nil)
		require.NoError(t, err)
		require.Equal(t, []byte{0x00}, dst)
	})

	t.Run("invalid UTF-8 passes through", func(t *testing.T) {
		raw := []byte{0xFF, 0xFE, 0x80}
		dst, err := AppendCString(nil, raw)
		require.NoError(t, err)
		require.Equal(t, []byte{0xFF, 0xFE, 0x80, 0x00}, dst)
	})

	t.Run("rejects embedded NUL", func(t *testing.T) {
		_, err := AppendCString(nil, []byte("a\x00b"))
		require.ErrorIs(t, err, errs.ErrInvalidString)
	})
}

func TestReadCStringAt(t *testing.T) {
	buf := []byte{0x02, 'h', 'i', 0x00, 'x'}

	t.Run("reads up to terminator", func(t *testing.T) {
		s, err := ReadCStringAt(buf, 1)
		require.NoError(t, err)
		require.Equal(t, []byte("hi"), s)
	})

	t.Run("zero copy", func(t *testing.T) {
		s, err := ReadCStringAt(buf, 1)
		require.NoError(t, err)
		require.Same(t, &buf[1], &s[0])
	})

	t.Run("missing terminator", func(t *testing.T) {
		_, err := ReadCStringAt([]byte{'h', 'i'}, 0)
		require.ErrorIs(t, err, errs.ErrTruncatedBuffer)
	})

	t.Run("offset past end", func(t *testing.T) {
		_, err := ReadCStringAt(buf, len(buf)+1)
		require.ErrorIs(t, err, errs.ErrTruncatedBuffer)

		_, err = ReadCStringAt(buf, -1)
		require.ErrorIs(t, err, errs.ErrTruncatedBuffer)
	})
}
