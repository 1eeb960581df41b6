package memguard

import (
	"unsafe"

	"github.com/joshuapare/hashkit/internal/buf"
)

// BlockSize returns the number of bytes charged for n elements of elemSize
// bytes: the payload rounded up to four bytes plus SizeOverhead.
func BlockSize(n int, elemSize uintptr) int {
	if n < 0 {
		fatalf(ErrSizeOverflow, "negative count %d", n)
	}
	total, ok := buf.MulOverflowSafe(n, int(elemSize))
	if ok {
		total, ok = buf.AddOverflowSafe(total, 3)
	}
	if ok {
		total, ok = buf.AddOverflowSafe(total&^3, SizeOverhead)
	}
	if !ok {
		fatalf(ErrSizeOverflow, "%d elements of %d bytes", n, elemSize)
	}
	return total
}

func sizeOf[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// Alloc returns a slice of n elements charged to a under tag.
func Alloc[T any](a Allocator, n int, tag string) []T {
	a.Acquire(BlockSize(n, sizeOf[T]()), tag)
	return make([]T, n)
}

// Calloc is Alloc with the guarantee that every element is the zero value.
// Go memory always arrives zeroed, so the two differ only in intent.
func Calloc[T any](a Allocator, n int, tag string) []T {
	return Alloc[T](a, n, tag)
}

// AllocAligned returns a slice of n elements whose first element sits on an
// align-byte boundary. align must be a power of two below MaxAlignment and is
// raised to MinAlignment. When the element size cannot reach the boundary
// from the address the runtime picked, the slice is returned unaligned; the
// charge is the same either way.
func AllocAligned[T any](a Allocator, n int, align int, tag string) []T {
	if align <= 0 || align&(align-1) != 0 || align >= MaxAlignment {
		fatalf(ErrBadAlignment, "got %d", align)
	}
	if align < MinAlignment {
		align = MinAlignment
	}

	size := sizeOf[T]()
	a.Acquire(BlockSize(n, size), tag)
	if size == 0 || n == 0 {
		return make([]T, n)
	}

	// Distinct residues of base+i*size modulo align.
	step := uintptr(align) / gcd(size, uintptr(align))
	s := make([]T, n+int(step))
	for i := 0; i < int(step); i++ {
		if uintptr(unsafe.Pointer(&s[i]))%uintptr(align) == 0 {
			return s[i : i+n : i+n]
		}
	}
	return s[:n:n]
}

// Free reports s as released to a under tag. The slice must not be used
// afterwards.
func Free[T any](a Allocator, s []T, tag string) {
	if s == nil {
		return
	}
	a.Release(BlockSize(cap(s), sizeOf[T]()), tag)
}

// IsAligned reports whether the first element of s sits on an align-byte boundary.
func IsAligned[T any](s []T, align int) bool {
	if len(s) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(&s[0]))%uintptr(align) == 0
}

func gcd(a, b uintptr) uintptr {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
