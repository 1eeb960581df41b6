package mempool

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Stats is a snapshot of a pool's shape and counters.
type Stats struct {
	ElemSize    int    // Slot size in bytes, including the slot header
	PerChunk    int    // Slots per chunk after adjustment
	Chunks      int    // Chunks currently held
	MaxChunks   int    // Chunks kept by Clear
	Used        int    // Slots in use
	Free        int    // Slots on the free list
	ChunkAllocs uint64 // Chunks obtained from the allocator
	ChunkFrees  uint64 // Chunks given back to the allocator
	Iterable    bool
}

// Stats returns the pool's current statistics.
func (p *Pool[T]) Stats() Stats {
	return Stats{
		ElemSize:    int(p.esize),
		PerChunk:    p.perChunk,
		Chunks:      len(p.chunks),
		MaxChunks:   p.maxChunks,
		Used:        p.totused,
		Free:        p.Cap() - p.totused,
		ChunkAllocs: p.chunkAllocs,
		ChunkFrees:  p.chunkFrees,
		Iterable:    p.iterable,
	}
}

// String formats the statistics on one line.
func (s Stats) String() string {
	return fmt.Sprintf("used=%d free=%d chunks=%d per_chunk=%d esize=%d",
		s.Used, s.Free, s.Chunks, s.PerChunk, s.ElemSize)
}

// Verify walks the free list and the slot markers and reports every
// inconsistency with the pool's counters. It returns nil for a sound pool.
func (p *Pool[T]) Verify() error {
	var result *multierror.Error

	capacity := p.Cap()
	seen := make(map[Ref]struct{}, max(capacity-p.totused, 0))
	for r := p.free; r != Nil; r = p.slot(r).next {
		if !p.owns(r) {
			result = multierror.Append(result, fmt.Errorf("%w: %s: free list reaches foreign ref %d", ErrCorrupt, p.tag, r))
			break
		}
		if _, dup := seen[r]; dup {
			result = multierror.Append(result, fmt.Errorf("%w: %s: free list cycles at ref %d", ErrCorrupt, p.tag, r))
			break
		}
		if p.slot(r).word != freeWord {
			result = multierror.Append(result, fmt.Errorf("%w: %s: ref %d on free list is marked used", ErrCorrupt, p.tag, r))
		}
		seen[r] = struct{}{}
	}

	if got, want := len(seen), capacity-p.totused; got != want {
		result = multierror.Append(result, fmt.Errorf("%w: %s: free list holds %d slots, expected %d", ErrCorrupt, p.tag, got, want))
	}

	used := 0
	for _, c := range p.chunks {
		for j := range c {
			if c[j].word == usedWord {
				used++
			}
		}
	}
	if used != p.totused {
		result = multierror.Append(result, fmt.Errorf("%w: %s: %d slots marked used, counter says %d", ErrCorrupt, p.tag, used, p.totused))
	}

	return result.ErrorOrNil()
}
