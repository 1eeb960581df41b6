package mempool

import "errors"

var (
	// ErrForeignRef indicates a Ref that does not belong to the pool.
	ErrForeignRef = errors.New("mempool: ref not owned by pool")

	// ErrDoubleFree indicates a Free of a slot that is already free.
	ErrDoubleFree = errors.New("mempool: slot already free")

	// ErrNotIterable indicates iteration over a pool created without Iterable.
	ErrNotIterable = errors.New("mempool: pool is not iterable")

	// ErrCorrupt indicates that Verify found the pool's bookkeeping inconsistent.
	ErrCorrupt = errors.New("mempool: corrupt pool")
)
