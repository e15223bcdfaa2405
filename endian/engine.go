// Package endian defines the byte order interface used by the binary codec.
//
// The sbson wire format is little-endian throughout, so every caller uses
// GetLittleEndianEngine():
//
//	import "github.com/arloliu/sbson/endian"
//
//	engine := endian.GetLittleEndianEngine()
//	word, err := encoding.ReadUint32At(buf, off, engine)
//
// The section and encoding packages still take the engine explicitly so the
// byte order is visible at every call site rather than baked into constants.
//
// # Performance
//
// EndianEngine includes binary.AppendByteOrder, so encoders append multi-byte
// values directly into a growing buffer:
//
//	buf = engine.AppendUint32(buf, value)
//
// rather than writing into a temporary 4-byte slice and copying it over.
//
// # Thread Safety
//
// The returned EndianEngine instances are immutable and stateless, safe for
// concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines the ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single interface covering both fixed-offset reads
// and append-style writes.
//
// binary.LittleEndian satisfies this interface directly.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine, the byte order of
// the sbson wire format.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
