// Package memguard is the low-level storage source underneath the pool and
// hash table packages.
//
// # Overview
//
// Go memory is garbage collected, so memguard does not hand out raw memory.
// It hands out typed slices and keeps the books: every block obtained through
// an Allocator is reported with its size and a human-readable tag, and the
// block is reported again when it is released. The bookkeeping is what the
// tables and pools build their statistics and leak reports on.
//
// # Allocators
//
//   - Heap(): no bookkeeping at all, the cheapest choice.
//   - Guarded: tracks bytes in use, blocks in use, the peak, and usage per
//     tag. An optional Limit turns it into a budget.
//   - Default: the process-wide Guarded used when a caller does not pick one.
//
// # Failure Policy
//
// Allocation failure is not recoverable. When a Guarded allocator would go
// over its Limit, or a size computation overflows, Fatal runs the installed
// error callback and panics with an error wrapping ErrOutOfMemory or
// ErrSizeOverflow. Callers never see an error return.
//
// # Usage Example
//
//	g := memguard.NewGuarded()
//	buckets := memguard.AllocAligned[uint32](g, 37, memguard.CacheLineSize, "buckets")
//	defer memguard.Free(g, buckets, "buckets")
//
//	fmt.Println(g.InUse(), g.Blocks(), g.Peak())
//
// # Thread Safety
//
// Guarded is safe for concurrent use so that independent tables may share
// one accountant. Nothing else in this module is.
package memguard
