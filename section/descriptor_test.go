package section

import (
	"testing"

	"github.com/arloliu/sbson/endian"
	"github.com/arloliu/sbson/errs"
	"github.com/stretchr/testify/require"
)

var engine = endian.GetLittleEndianEngine()

func TestDescriptor_RoundTrip(t *testing.T) {
	original := Descriptor{
		KeyLength:   7,
		KeyOffset:   0x123456,
		ValueOffset: 0xDEADBEEF,
	}

	data := original.Bytes(engine)
	require.Len(t, data, DescriptorSize)

	parsed := Descriptor{}
	err := parsed.Parse(data, engine)
	require.NoError(t, err)
	require.Equal(t, original, parsed)
}

func TestDescriptor_PackKeyRef(t *testing.T) {
	tests := []struct {
		name   string
		desc   Descriptor
		packed uint32
	}{
		{"zero", Descriptor{}, 0x00000000},
		{"max length", Descriptor{KeyLength: 255}, 0xFF000000},
		{"max offset", Descriptor{KeyOffset: MaxKeyOffset}, 0x00FFFFFF},
		{"both", Descriptor{KeyLength: 1, KeyOffset: 2}, 0x01000002},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.packed, tt.desc.PackKeyRef())
		})
	}
}

func TestDescriptor_WriteToSlice(t *testing.T) {
	desc := Descriptor{KeyLength: 3, KeyOffset: 21, ValueOffset: 64}

	data := make([]byte, 3*DescriptorSize)
	desc.WriteToSlice(data, DescriptorSize, engine)

	parsed := Descriptor{}
	require.NoError(t, parsed.Parse(data[DescriptorSize:], engine))
	require.Equal(t, desc, parsed)

	// Neighboring records untouched.
	require.Equal(t, make([]byte, DescriptorSize), data[:DescriptorSize])
	require.Equal(t, make([]byte, DescriptorSize), data[2*DescriptorSize:])
}

func TestDescriptor_ParseTruncated(t *testing.T) {
	parsed := Descriptor{}
	err := parsed.Parse(make([]byte, DescriptorSize-1), engine)
	require.ErrorIs(t, err, errs.ErrTruncatedBuffer)
}
