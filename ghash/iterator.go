package ghash

import (
	"iter"

	"github.com/joshuapare/hashkit/internal/assert"
	"github.com/joshuapare/hashkit/mempool"
)

// cursor walks a table in bucket order, then chain order.
type cursor[K, V any] struct {
	t      *table[K, V]
	bucket uint32
	ref    mempool.Ref
	gen    uint64
}

func (c *cursor[K, V]) init(t *table[K, V]) {
	t.checkLive()
	c.t = t
	c.gen = t.gen
	c.ref = mempool.Nil
	c.bucket = 0
	if t.nentries == 0 {
		c.bucket = t.nbuckets
		return
	}
	for ; c.bucket < t.nbuckets; c.bucket++ {
		if c.ref = t.buckets[c.bucket]; c.ref != mempool.Nil {
			return
		}
	}
}

func (c *cursor[K, V]) check() {
	if assert.Enabled {
		assert.That(c.gen == c.t.gen, ErrMutatedDuringIteration, "%s", c.t.tag)
	}
}

func (c *cursor[K, V]) step() {
	c.check()
	if c.ref == mempool.Nil {
		return
	}
	c.ref = c.t.entry(c.ref).next
	for c.ref == mempool.Nil {
		c.bucket++
		if c.bucket >= c.t.nbuckets {
			return
		}
		c.ref = c.t.buckets[c.bucket]
	}
}

func (c *cursor[K, V]) entry() *entry[K, V] {
	c.check()
	return c.t.entry(c.ref)
}

func (c *cursor[K, V]) seq(yield func(*entry[K, V]) bool) {
	for ; c.ref != mempool.Nil; c.step() {
		if !yield(c.entry()) {
			return
		}
	}
}

// Iterator walks a Map in bucket order. The map must not change while the
// iterator is in use, except through ValuePtr.
//
//	for it := m.Iterator(); !it.Done(); it.Step() {
//	    fmt.Println(it.Key(), it.Value())
//	}
type Iterator[K, V any] struct {
	c cursor[K, V]
}

// Iterator returns an iterator positioned at the first entry.
func (m *Map[K, V]) Iterator() *Iterator[K, V] {
	it := &Iterator[K, V]{}
	it.c.init(&m.t)
	return it
}

// Done reports whether every entry has been visited.
func (it *Iterator[K, V]) Done() bool { return it.c.ref == mempool.Nil }

// Step moves to the next entry.
func (it *Iterator[K, V]) Step() { it.c.step() }

// Key returns the current entry's key.
func (it *Iterator[K, V]) Key() K { return it.c.entry().key }

// Value returns the current entry's value.
func (it *Iterator[K, V]) Value() V { return it.c.entry().val }

// ValuePtr returns a pointer to the current entry's value.
func (it *Iterator[K, V]) ValuePtr() *V { return &it.c.entry().val }

// All returns an iterator over the map's entries.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		var c cursor[K, V]
		c.init(&m.t)
		c.seq(func(e *entry[K, V]) bool { return yield(e.key, e.val) })
	}
}

// Keys returns an iterator over the map's keys.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		var c cursor[K, V]
		c.init(&m.t)
		c.seq(func(e *entry[K, V]) bool { return yield(e.key) })
	}
}

// Values returns an iterator over the map's values.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		var c cursor[K, V]
		c.init(&m.t)
		c.seq(func(e *entry[K, V]) bool { return yield(e.val) })
	}
}

// SetIterator walks a Set in bucket order. The set must not change while
// the iterator is in use.
type SetIterator[K any] struct {
	c cursor[K, struct{}]
}

// Iterator returns an iterator positioned at the first key.
func (s *Set[K]) Iterator() *SetIterator[K] {
	it := &SetIterator[K]{}
	it.c.init(&s.t)
	return it
}

// Done reports whether every key has been visited.
func (it *SetIterator[K]) Done() bool { return it.c.ref == mempool.Nil }

// Step moves to the next key.
func (it *SetIterator[K]) Step() { it.c.step() }

// Key returns the current key.
func (it *SetIterator[K]) Key() K { return it.c.entry().key }

// All returns an iterator over the set's keys.
func (s *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		var c cursor[K, struct{}]
		c.init(&s.t)
		c.seq(func(e *entry[K, struct{}]) bool { return yield(e.key) })
	}
}
