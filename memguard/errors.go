package memguard

import "errors"

var (
	// ErrOutOfMemory indicates an allocation that would exceed the allocator's limit.
	ErrOutOfMemory = errors.New("memguard: out of memory")

	// ErrSizeOverflow indicates that count*size does not fit in a uintptr.
	ErrSizeOverflow = errors.New("memguard: allocation size overflows")

	// ErrBadAlignment indicates an alignment that is not a power of two below 1024.
	ErrBadAlignment = errors.New("memguard: alignment must be a power of two below 1024")
)
