package ghash

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/joshuapare/hashkit/mempool"
)

// ValidationError describes one broken table invariant.
type ValidationError struct {
	Type    string
	Message string
	Bucket  int
	Details map[string]interface{}
}

func (e *ValidationError) Error() string {
	if e.Bucket >= 0 {
		return fmt.Sprintf("%s at bucket %d: %s", e.Type, e.Bucket, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// verify checks the table against its invariants and returns every
// violation, or nil.
func (t *table[K, V]) verify() error {
	var result *multierror.Error
	add := func(typ string, bucket int, format string, args ...any) {
		result = multierror.Append(result, &ValidationError{
			Type:    typ,
			Message: fmt.Sprintf(format, args...),
			Bucket:  bucket,
			Details: map[string]interface{}{"tag": t.tag},
		})
	}

	if t.freed {
		add("Lifecycle", -1, "table has been freed")
		return result.ErrorOrNil()
	}

	if t.cursize >= maxSize || hashSizes[t.cursize] != t.nbuckets {
		add("Sizing", -1, "bucket count %d is not size %d of the sequence", t.nbuckets, t.cursize)
	}
	if int(t.nbuckets) != len(t.buckets) {
		add("Sizing", -1, "bucket array holds %d heads, expected %d", len(t.buckets), t.nbuckets)
	}
	if t.sizeMin > t.cursize {
		add("Sizing", -1, "size %d is below the pinned minimum %d", t.cursize, t.sizeMin)
	}
	if t.limitGrow != limitGrow(t.nbuckets) || t.limitShrink != limitShrink(t.nbuckets) {
		add("Sizing", -1, "limits grow=%d shrink=%d do not match %d buckets", t.limitGrow, t.limitShrink, t.nbuckets)
	}

	var count uint32
	for i, head := range t.buckets {
		var chain []mempool.Ref
		for r := head; r != mempool.Nil; r = t.entry(r).next {
			if count > t.nentries+uint32(t.pool.Len()) {
				add("Chain", i, "chain does not terminate")
				return result.ErrorOrNil()
			}
			count++
			e := t.entry(r)
			if bi := t.keyIndex(e.key); bi != uint32(i) {
				add("Placement", i, "entry %d hashes to bucket %d", r, bi)
			}
			if t.flag&AllowDups == 0 {
				for _, o := range chain {
					if t.hasher.Equal(e.key, t.entry(o).key) {
						add("Duplicate", i, "entries %d and %d hold equal keys", o, r)
					}
				}
			}
			chain = append(chain, r)
		}
	}

	if count != t.nentries {
		add("Count", -1, "%d entries reachable, counter says %d", count, t.nentries)
	}
	if t.pool.Len() != int(t.nentries) {
		add("Count", -1, "pool holds %d entries, counter says %d", t.pool.Len(), t.nentries)
	}
	if err := t.pool.Verify(); err != nil {
		result = multierror.Append(result, err)
	}

	return result.ErrorOrNil()
}

// Verify walks the map and reports every broken invariant, or nil.
func (m *Map[K, V]) Verify() error { return m.t.verify() }

// Verify walks the set and reports every broken invariant, or nil.
func (s *Set[K]) Verify() error { return s.t.verify() }
