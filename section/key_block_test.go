package section

import (
	"strings"
	"testing"

	"github.com/arloliu/sbson/errs"
	"github.com/stretchr/testify/require"
)

func TestKeyBlockBuilder_Add(t *testing.T) {
	b := NewKeyBlockBuilder(64)

	off, err := b.Add([]byte("alpha"))
	require.NoError(t, err)
	require.Equal(t, 0, off)

	off, err = b.Add([]byte("b"))
	require.NoError(t, err)
	require.Equal(t, 6, off) // "alpha" + NUL

	off, err = b.Add([]byte{}) // empty keys are representable
	require.NoError(t, err)
	require.Equal(t, 8, off)

	require.Equal(t, []byte("alpha\x00b\x00\x00"), b.Bytes())
	require.Equal(t, 9, b.Len())
}

func TestKeyBlockBuilder_RejectsOversizedKey(t *testing.T) {
	b := NewKeyBlockBuilder(0)

	_, err := b.Add([]byte(strings.Repeat("k", MaxKeyLength)))
	require.NoError(t, err)

	_, err = b.Add([]byte(strings.Repeat("k", MaxKeyLength+1)))
	require.ErrorIs(t, err, errs.ErrSizeLimitExceeded)
}

func TestKeyBlockBuilder_RejectsEmbeddedNUL(t *testing.T) {
	b := NewKeyBlockBuilder(0)

	_, err := b.Add([]byte("bad\x00key"))
	require.ErrorIs(t, err, errs.ErrInvalidString)
}

func TestResolveKey(t *testing.T) {
	// Container starting at base 2 with its key block at container offset 4.
	buf := []byte{0xEE, 0xEE, 0x03, 0x00, 'k', 'e', 'y', 0x00, 0x01}
	base := 2

	t.Run("valid reference", func(t *testing.T) {
		key, err := ResolveKey(buf, base, Descriptor{KeyLength: 3, KeyOffset: 2})
		require.NoError(t, err)
		require.Equal(t, []byte("key"), key)
	})

	t.Run("offset outside buffer", func(t *testing.T) {
		_, err := ResolveKey(buf, base, Descriptor{KeyLength: 3, KeyOffset: 100})
		require.ErrorIs(t, err, errs.ErrOffsetOutOfBounds)

		_, err = ResolveKey(buf, base, Descriptor{KeyLength: 0, KeyOffset: MaxKeyOffset})
		require.ErrorIs(t, err, errs.ErrOffsetOutOfBounds)
	})

	t.Run("length disagrees with terminator", func(t *testing.T) {
		_, err := ResolveKey(buf, base, Descriptor{KeyLength: 2, KeyOffset: 2})
		require.ErrorIs(t, err, errs.ErrMalformedHeader)
	})

	t.Run("key runs past buffer end", func(t *testing.T) {
		_, err := ResolveKey(buf, base, Descriptor{KeyLength: 6, KeyOffset: 2})
		require.ErrorIs(t, err, errs.ErrTruncatedBuffer)
	})
}
