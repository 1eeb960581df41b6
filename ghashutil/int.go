package ghashutil

import (
	"unsafe"

	"github.com/joshuapare/hashkit/internal/buf"
)

// Integer is the set of key types the integer hashers accept.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// IntHash is Thomas Wang's 32-bit integer mix.
func IntHash(key uint32) uint32 {
	key += ^(key << 16)
	key ^= key >> 5
	key += key << 3
	key ^= key >> 13
	key += ^(key << 9)
	key ^= key >> 17
	return key
}

// IntPtrHash applies the same mix at pointer width and keeps the low 32 bits.
func IntPtrHash(key uintptr) uint32 {
	key += ^(key << 16)
	key ^= key >> 5
	key += key << 3
	key ^= key >> 13
	key += ^(key << 9)
	key ^= key >> 17
	return uint32(key)
}

// IntMurmurHash hashes the pointer-width little-endian bytes of key with murmur2.
func IntMurmurHash(key uintptr) uint32 {
	var b [8]byte
	buf.PutU64LE(b[:], uint64(key))
	return murmur2(b[:unsafe.Sizeof(key)], 0, false)
}

// IntHasher hashes integer keys with IntPtrHash.
type IntHasher[K Integer] struct{}

// Int returns the default integer hasher.
func Int[K Integer]() IntHasher[K] { return IntHasher[K]{} }

// Hash returns IntPtrHash of k.
func (IntHasher[K]) Hash(k K) uint32 { return IntPtrHash(uintptr(k)) }

// Equal reports whether a == b.
func (IntHasher[K]) Equal(a, b K) bool { return a == b }

// IntMurmurHasher hashes integer keys with IntMurmurHash.
type IntMurmurHasher[K Integer] struct{}

// IntMurmur returns a murmur2 integer hasher.
func IntMurmur[K Integer]() IntMurmurHasher[K] { return IntMurmurHasher[K]{} }

// Hash returns IntMurmurHash of k.
func (IntMurmurHasher[K]) Hash(k K) uint32 { return IntMurmurHash(uintptr(k)) }

// Equal reports whether a == b.
func (IntMurmurHasher[K]) Equal(a, b K) bool { return a == b }

// Uint4Hash folds four words with h = h*37 + x.
func Uint4Hash(key [4]uint32) uint32 {
	var h uint32
	for _, x := range key {
		h = h*37 + x
	}
	return h
}

// Uint4MurmurHash hashes the sixteen little-endian bytes of key with murmur2.
func Uint4MurmurHash(key [4]uint32) uint32 {
	var b [16]byte
	for i, x := range key {
		buf.PutU32LE(b[i*4:], x)
	}
	return murmur2(b[:], 0, false)
}

// Uint4Hasher hashes [4]uint32 keys with Uint4Hash.
type Uint4Hasher struct{}

// Uint4 returns the default four-word hasher.
func Uint4() Uint4Hasher { return Uint4Hasher{} }

// Hash returns Uint4Hash of k.
func (Uint4Hasher) Hash(k [4]uint32) uint32 { return Uint4Hash(k) }

// Equal reports whether all four words match.
func (Uint4Hasher) Equal(a, b [4]uint32) bool { return a == b }
