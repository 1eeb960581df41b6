// Package mempool provides a chunked allocator for fixed-size elements.
//
// # Overview
//
// A Pool hands out slots of one element type from chunks that each hold the
// same number of slots. Unused slots are threaded into a free list, so both
// Alloc and Free are O(1). When the free list runs dry the pool grows by one
// chunk; when the last element is freed the pool gives every chunk except the
// first back to its allocator.
//
// Slots are addressed by Ref, a 1-based index into the pool. The zero Ref is
// the nil handle, so structures built on a pool can store links as plain
// uint32 values.
//
// # Chunk Sizing
//
// The requested per-chunk count is adjusted so that a chunk, plus the header
// the allocator charges for it, lands just under the next power of two:
//
//	perChunk = (nextPow2(perChunk*esize) - chunkOverhead) / esize
//
// esize is the slot size, at least two pointer widths.
//
// # Iteration
//
// Pools created with Iterable can be walked with Iter, FindElem or All. Every
// slot header carries a marker word that tells used slots from free ones, so
// no bit pattern of the stored element is reserved.
//
// # Usage Example
//
//	p := mempool.New[node](0, 512, mempool.Iterable())
//	r := p.Alloc()
//	p.Get(r).value = 42
//
//	for ref, n := range p.All() {
//	    fmt.Println(ref, n.value)
//	}
//	p.Free(r)
//
// # Debug Checks
//
// Building with -tags hashkit_debug makes Free reject refs the pool does not
// own (ErrForeignRef) and slots that are already free (ErrDoubleFree), and
// makes iteration of a non-iterable pool panic with ErrNotIterable.
//
// # Thread Safety
//
// A Pool is not safe for concurrent use.
package mempool
