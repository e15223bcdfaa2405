package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetLittleEndianEngine(t *testing.T) {
	engine := GetLittleEndianEngine()
	require.Equal(t, binary.LittleEndian, engine)

	// The engine round-trips values with the wire byte order.
	buf := engine.AppendUint32(nil, 0x04030201)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, buf)
	require.Equal(t, uint32(0x04030201), engine.Uint32(buf))

	buf = engine.AppendUint64(nil, 0x0807060504030201)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}, buf)
	require.Equal(t, uint64(0x0807060504030201), engine.Uint64(buf))
}

func TestEngine_FixedOffsetWrites(t *testing.T) {
	engine := GetLittleEndianEngine()

	// Header words are patched in place after the body is staged, so the
	// PutUintN half of the interface matters as much as the append half.
	buf := make([]byte, 8)
	engine.PutUint32(buf[0:4], 0xAABBCCDD)
	engine.PutUint32(buf[4:8], 0x00000005)
	require.Equal(t, []byte{0xDD, 0xCC, 0xBB, 0xAA, 0x05, 0x00, 0x00, 0x00}, buf)
	require.Equal(t, uint32(0xAABBCCDD), engine.Uint32(buf[0:4]))
	require.Equal(t, uint32(5), engine.Uint32(buf[4:8]))
}
