// Package buf contains little-endian word access and overflow-checked
// arithmetic shared by the hashers and allocators.
package buf

import "encoding/binary"

// Bytes is any byte sequence a word can be read from without copying.
type Bytes interface {
	~string | ~[]byte
}

// U32LE reads a little-endian uint32 from the first four bytes of b.
// Returns 0 when b is too short.
func U32LE[S Bytes](b S) uint32 {
	if len(b) < 4 {
		return 0
	}
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// PutU32LE writes v to b[0:4] in little-endian order.
func PutU32LE(b []byte, v uint32) {
	binary.LittleEndian.PutUint32(b, v)
}

// PutU64LE writes v to b[0:8] in little-endian order.
func PutU64LE(b []byte, v uint64) {
	binary.LittleEndian.PutUint64(b, v)
}
