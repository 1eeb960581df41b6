package ghash

// Hasher supplies the hash and equality functions for keys of type K.
// Equal returns true when a and b are the same key; keys that are Equal must
// hash alike.
type Hasher[K any] interface {
	Hash(key K) uint32
	Equal(a, b K) bool
}

// HasherFuncs adapts a pair of functions to Hasher.
type HasherFuncs[K any] struct {
	HashFunc  func(K) uint32
	EqualFunc func(a, b K) bool
}

func (h HasherFuncs[K]) Hash(key K) uint32 { return h.HashFunc(key) }
func (h HasherFuncs[K]) Equal(a, b K) bool { return h.EqualFunc(a, b) }

// FromCompare adapts a comparator written in the "differs" convention,
// where cmp returns false when a and b are equal. The comparator is negated
// once here so that the table only ever sees Equal.
func FromCompare[K any](hash func(K) uint32, cmp func(a, b K) bool) HasherFuncs[K] {
	return HasherFuncs[K]{
		HashFunc:  hash,
		EqualFunc: func(a, b K) bool { return !cmp(a, b) },
	}
}

// KeyFreeFunc releases a key the table is done with. Nil leaves keys alone.
type KeyFreeFunc[K any] func(key K)

// ValFreeFunc releases a value the table is done with. Nil leaves values alone.
type ValFreeFunc[V any] func(val V)

// KeyCopyFunc returns a deep copy of a key. Nil copies keys as they are.
type KeyCopyFunc[K any] func(key K) K

// ValCopyFunc returns a deep copy of a value. Nil copies values as they are.
type ValCopyFunc[V any] func(val V) V
