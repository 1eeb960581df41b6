package ghash

import "errors"

var (
	// ErrDuplicateKey indicates an Insert of a key already present in a
	// table that does not allow duplicates.
	ErrDuplicateKey = errors.New("ghash: duplicate key")

	// ErrMutatedDuringIteration indicates that the table changed while an
	// iterator over it was live.
	ErrMutatedDuringIteration = errors.New("ghash: table mutated during iteration")

	// ErrFreed indicates use of a table after Free.
	ErrFreed = errors.New("ghash: table used after free")

	// ErrLayoutMismatch indicates that a copy did not reproduce the source's
	// bucket count.
	ErrLayoutMismatch = errors.New("ghash: copy bucket layout differs from source")
)
