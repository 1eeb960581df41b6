package ghashutil

import "unsafe"

// CombineHash mixes b into a using the golden-ratio constant.
func CombineHash(a, b uint32) uint32 {
	return a ^ (b + 0x9e3779b9 + (a << 6) + (a >> 2))
}

// Pair is a key made of two pointers compared by identity.
type Pair[A, B any] struct {
	First  *A
	Second *B
}

// PairOf builds a Pair.
func PairOf[A, B any](first *A, second *B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// PairHash combines the pointer hashes of both halves.
func PairHash[A, B any](p Pair[A, B]) uint32 {
	return CombineHash(PtrHash(unsafe.Pointer(p.First)), PtrHash(unsafe.Pointer(p.Second)))
}

// PairHasher hashes Pair keys with PairHash.
type PairHasher[A, B any] struct{}

// Pairs returns the pair hasher.
func Pairs[A, B any]() PairHasher[A, B] { return PairHasher[A, B]{} }

// Hash returns PairHash of k.
func (PairHasher[A, B]) Hash(k Pair[A, B]) uint32 { return PairHash(k) }

// Equal reports whether both pointers match.
func (PairHasher[A, B]) Equal(a, b Pair[A, B]) bool {
	return a.First == b.First && a.Second == b.Second
}
