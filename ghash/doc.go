// Package ghash provides a chained hash table with Map and Set facades.
//
// # Overview
//
// Entries live in a mempool.Pool owned by the table, and each bucket holds
// the head of a singly linked chain of entries. Bucket counts come from a
// fixed sequence of primes. A table grows when its entry count passes 3/4
// of its bucket count and, with AllowShrink set, shrinks when the count
// drops under 3/16 of it. The gap between the two limits keeps a table
// whose size hovers at a boundary from resizing on every operation.
//
// Keys are hashed and compared by a Hasher. Equal returns true for equal
// keys; FromCompare adapts comparators written the other way round.
// Package ghashutil has hashers for common key types, and the NewStrMap,
// NewPtrMap, NewIntMap and NewPairMap constructors (with their Set
// counterparts) wire them up.
//
// # Usage Example
//
//	m := ghash.NewStrMap[int]("word counts")
//	defer m.Free(nil, nil)
//
//	for _, w := range words {
//	    n, _ := m.Ensure(w)
//	    *n++
//	}
//
//	for w, n := range m.All() {
//	    fmt.Println(w, n)
//	}
//
// # Ownership
//
// A table stores keys and values by value and never frees what they point
// to on its own. Removal, Clear and Free take optional callbacks that see
// each key and value being dropped; Copy takes optional deep-copy callbacks.
//
// # Iteration and Pop
//
// Iterators walk buckets in index order and chains in link order. The table
// must not be modified while an iterator is live. Pop removes entries one at
// a time and remembers its position in an IterState, so a full drain costs
// about one pass over the buckets.
//
// # Debug Checks
//
// Building with -tags hashkit_debug turns on checks for caller mistakes:
// inserting a duplicate key without AllowDups (ErrDuplicateKey), modifying a
// table during iteration (ErrMutatedDuringIteration) and using a table after
// Free (ErrFreed). Release builds skip them.
//
// # Logging
//
// WithLogger makes a table log resizes and clears at debug level, and its
// pool log chunk growth. Setting HASHKIT_LOG_RESIZE to any value
// gives tables created without a logger a debug text logger on stderr.
//
// # Thread Safety
//
// Tables are not safe for concurrent use. Resizes happen synchronously
// inside the insert or remove that triggers them.
package ghash
