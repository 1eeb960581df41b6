package ghashutil

import (
	"github.com/cespare/xxhash/v2"
)

const djbSeed uint32 = 5381

// StrHash is the djb accumulator h = h*33 + c over the bytes of s, each
// byte taken as a signed char.
func StrHash(s string) uint32 {
	h := djbSeed
	for i := 0; i < len(s); i++ {
		h = h<<5 + h + uint32(int8(s[i]))
	}
	return h
}

// StrHashN hashes at most n bytes of s and stops early at a NUL byte.
func StrHashN(s string, n int) uint32 {
	h := djbSeed
	for i := 0; i < len(s) && i < n && s[i] != 0; i++ {
		h = h<<5 + h + uint32(int8(s[i]))
	}
	return h
}

// StrHasher hashes strings with StrHash.
type StrHasher struct{}

// Str returns the default string hasher.
func Str() StrHasher { return StrHasher{} }

// Hash returns StrHash of s.
func (StrHasher) Hash(s string) uint32 { return StrHash(s) }

// Equal reports whether a == b.
func (StrHasher) Equal(a, b string) bool { return a == b }

// StrMurmurHasher hashes the bytes of a string plus a terminating NUL with
// murmur2.
type StrMurmurHasher struct{}

// StrMurmur returns a murmur2 string hasher.
func StrMurmur() StrMurmurHasher { return StrMurmurHasher{} }

// Hash returns the murmur2 hash of s including its terminating NUL.
func (StrMurmurHasher) Hash(s string) uint32 { return murmur2(s, 0, true) }

// Equal reports whether a == b.
func (StrMurmurHasher) Equal(a, b string) bool { return a == b }

// StrXXHash folds the 64-bit xxhash of s into 32 bits.
func StrXXHash(s string) uint32 {
	h := xxhash.Sum64String(s)
	return uint32(h) ^ uint32(h>>32)
}

// StrXXHasher hashes strings with StrXXHash.
type StrXXHasher struct{}

// StrXX returns an xxhash string hasher.
func StrXX() StrXXHasher { return StrXXHasher{} }

// Hash returns StrXXHash of s.
func (StrXXHasher) Hash(s string) uint32 { return StrXXHash(s) }

// Equal reports whether a == b.
func (StrXXHasher) Equal(a, b string) bool { return a == b }
