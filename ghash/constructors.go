package ghash

import "github.com/joshuapare/hashkit/ghashutil"

// NewStrMap creates a Map keyed by strings hashed with ghashutil.StrHash.
func NewStrMap[V any](tag string, opts ...Option) *Map[string, V] {
	return New[string, V](ghashutil.Str(), tag, opts...)
}

// NewPtrMap creates a Map keyed by pointer identity.
func NewPtrMap[T, V any](tag string, opts ...Option) *Map[*T, V] {
	return New[*T, V](ghashutil.Ptr[T](), tag, opts...)
}

// NewIntMap creates a Map keyed by integers.
func NewIntMap[K ghashutil.Integer, V any](tag string, opts ...Option) *Map[K, V] {
	return New[K, V](ghashutil.Int[K](), tag, opts...)
}

// NewPairMap creates a Map keyed by pointer pairs.
func NewPairMap[A, B, V any](tag string, opts ...Option) *Map[ghashutil.Pair[A, B], V] {
	return New[ghashutil.Pair[A, B], V](ghashutil.Pairs[A, B](), tag, opts...)
}

// NewStrSet creates a Set of strings.
func NewStrSet(tag string, opts ...Option) *Set[string] {
	return NewSet[string](ghashutil.Str(), tag, opts...)
}

// NewPtrSet creates a Set of pointers compared by identity.
func NewPtrSet[T any](tag string, opts ...Option) *Set[*T] {
	return NewSet[*T](ghashutil.Ptr[T](), tag, opts...)
}

// NewIntSet creates a Set of integers.
func NewIntSet[K ghashutil.Integer](tag string, opts ...Option) *Set[K] {
	return NewSet[K](ghashutil.Int[K](), tag, opts...)
}

// NewPairSet creates a Set of pointer pairs.
func NewPairSet[A, B any](tag string, opts ...Option) *Set[ghashutil.Pair[A, B]] {
	return NewSet[ghashutil.Pair[A, B]](ghashutil.Pairs[A, B](), tag, opts...)
}
