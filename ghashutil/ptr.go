package ghashutil

import "unsafe"

// PtrHash hashes a pointer by its address. The low bits of an address are
// mostly zero, so the low 32 bits are rotated right by four.
func PtrHash(p unsafe.Pointer) uint32 {
	y := uint32(uintptr(p))
	return y>>4 | y<<28
}

// PtrHasher hashes and compares *T keys by identity.
type PtrHasher[T any] struct{}

// Ptr returns a hasher for pointer-identity keys.
func Ptr[T any]() PtrHasher[T] { return PtrHasher[T]{} }

// Hash returns PtrHash of k.
func (PtrHasher[T]) Hash(k *T) uint32 { return PtrHash(unsafe.Pointer(k)) }

// Equal reports whether a and b are the same pointer.
func (PtrHasher[T]) Equal(a, b *T) bool { return a == b }
