package ghashutil

import (
	"golang.org/x/text/cases"
)

const (
	fnvBasis32 uint32 = 2166136261
	fnvPrime32 uint32 = 16777619
)

// FoldHasher treats strings that are equal under Unicode case folding as
// the same key. It is not safe for concurrent use.
type FoldHasher struct {
	caser cases.Caser
}

// StrFold returns a case-insensitive string hasher using full Unicode case
// folding.
func StrFold() *FoldHasher {
	return &FoldHasher{caser: cases.Fold()}
}

// Hash returns the hash of s after case folding.
func (f *FoldHasher) Hash(s string) uint32 {
	return StrHash(f.caser.String(s))
}

// Equal reports whether a and b are equal under case folding.
func (f *FoldHasher) Equal(a, b string) bool {
	if a == b {
		return true
	}
	return f.caser.String(a) == f.caser.String(b)
}

// FNVLower computes FNV-1a of s with ASCII letters lowercased inline.
func FNVLower(s string) uint32 {
	h := fnvBasis32
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		h ^= uint32(c)
		h *= fnvPrime32
	}
	return h
}

// FNVFoldHasher is an allocation-free case-insensitive hasher for ASCII
// keys. Only ASCII letters are folded.
type FNVFoldHasher struct{}

// StrFNVFold returns an ASCII case-insensitive string hasher.
func StrFNVFold() FNVFoldHasher { return FNVFoldHasher{} }

// Hash returns the FNV-1a hash of s with ASCII letters lowered.
func (FNVFoldHasher) Hash(s string) uint32 { return FNVLower(s) }

// Equal reports whether a and b match ignoring ASCII case.
func (FNVFoldHasher) Equal(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		x, y := a[i], b[i]
		if x == y {
			continue
		}
		if x >= 'A' && x <= 'Z' {
			x += 'a' - 'A'
		}
		if y >= 'A' && y <= 'Z' {
			y += 'a' - 'A'
		}
		if x != y {
			return false
		}
	}
	return true
}
