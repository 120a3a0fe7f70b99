// Package endian provides the byte order used for friproof count prefixes.
//
// This package combines Go's binary.ByteOrder and binary.AppendByteOrder
// interfaces into a single EndianEngine, so encoders can append prefixes
// directly to their output while decoders read them back with the same engine.
//
// # Basic Usage
//
// The proof wire format is big-endian throughout, matching the big-endian
// encoding of field elements:
//
//	engine := endian.GetBigEndianEngine()
//	buf = engine.AppendUint32(buf, uint32(len(records)))
//
// # Thread Safety
//
// The returned EndianEngine instances are immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetBigEndianEngine returns the big-endian engine, the byte order of the proof wire format.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
