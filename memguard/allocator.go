package memguard

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

const (
	// SizeOverhead is the bookkeeping header charged to every block.
	SizeOverhead = int(unsafe.Sizeof(uintptr(0)))

	// MinAlignment is the smallest alignment AllocAligned hands out.
	MinAlignment = 8

	// MaxAlignment bounds the alignment AllocAligned accepts (exclusive).
	MaxAlignment = 1024
)

// CacheLineSize is the cache line width of the running CPU.
const CacheLineSize = int(unsafe.Sizeof(cpu.CacheLinePad{}))

// Allocator accounts for blocks handed out by Alloc, Calloc and AllocAligned.
//
// Acquire is called before a block of size bytes is created and must not
// return if the block cannot be granted; it calls Fatal instead. Release is
// called with the same size and tag when the block is given back.
type Allocator interface {
	Acquire(size int, tag string)
	Release(size int, tag string)
}

type heap struct{}

func (heap) Acquire(int, string) {}
func (heap) Release(int, string) {}

// Heap returns an Allocator that keeps no books.
func Heap() Allocator { return heap{} }

// Default is the process-wide accountant used when none is configured.
var Default = NewGuarded()

// Or returns a when it is non-nil and Default otherwise.
func Or(a Allocator) Allocator {
	if a == nil {
		return Default
	}
	return a
}
