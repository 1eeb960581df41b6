package ghash

import (
	"fmt"

	"github.com/joshuapare/hashkit/mempool"
)

// Stats describes the shape of a table at one point in time.
type Stats struct {
	Tag            string
	Len            int
	Buckets        int
	SizeIndex      int     // Position of Buckets in the size sequence
	MinSizeIndex   int     // Smallest SizeIndex the table may shrink to
	GrowLimit      int     // Entry count above which the table grows
	ShrinkLimit    int     // Entry count below which the table may shrink
	UsedBuckets    int     // Buckets with at least one entry
	LongestChain   int     // Entries in the fullest bucket
	LoadFactor     float64 // Len / Buckets
	Grows          uint64  // Resizes up since creation
	Shrinks        uint64  // Resizes down since creation
	ChainHistogram []int   // Element n counts the buckets holding n entries
	Pool           mempool.Stats
	Impl           string
}

// String formats the headline numbers on one line.
func (s Stats) String() string {
	return fmt.Sprintf("%s: len=%d buckets=%d load=%.2f longest=%d grows=%d shrinks=%d",
		s.Tag, s.Len, s.Buckets, s.LoadFactor, s.LongestChain, s.Grows, s.Shrinks)
}

func (t *table[K, V]) stats() Stats {
	t.checkLive()
	st := Stats{
		Tag:          t.tag,
		Len:          int(t.nentries),
		Buckets:      int(t.nbuckets),
		SizeIndex:    int(t.cursize),
		MinSizeIndex: int(t.sizeMin),
		GrowLimit:    int(t.limitGrow),
		ShrinkLimit:  int(t.limitShrink),
		Grows:        t.grows,
		Shrinks:      t.shrinks,
		Pool:         t.pool.Stats(),
		Impl:         "chained-prime",
	}
	if t.nbuckets > 0 {
		st.LoadFactor = float64(t.nentries) / float64(t.nbuckets)
	}

	hist := []int{0}
	for _, head := range t.buckets {
		n := 0
		for r := head; r != mempool.Nil; r = t.entry(r).next {
			n++
		}
		for len(hist) <= n {
			hist = append(hist, 0)
		}
		hist[n]++
		if n > 0 {
			st.UsedBuckets++
		}
		if n > st.LongestChain {
			st.LongestChain = n
		}
	}
	st.ChainHistogram = hist
	return st
}

// Stats returns the map's current statistics.
func (m *Map[K, V]) Stats() Stats { return m.t.stats() }

// Stats returns the set's current statistics.
func (s *Set[K]) Stats() Stats { return s.t.stats() }
