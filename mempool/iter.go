package mempool

import (
	"iter"

	"github.com/joshuapare/hashkit/internal/assert"
)

// Iter walks the used slots of an iterable pool in chunk order.
type Iter[T any] struct {
	pool  *Pool[T]
	chunk int
	index int
}

// Iter returns an iterator positioned before the first used slot.
func (p *Pool[T]) Iter() *Iter[T] {
	assert.That(p.iterable, ErrNotIterable, "%s", p.tag)
	return &Iter[T]{pool: p}
}

// Step returns the next used slot, or false once every chunk has been seen.
func (it *Iter[T]) Step() (Ref, *T, bool) {
	p := it.pool
	for it.chunk < len(p.chunks) {
		c := p.chunks[it.chunk]
		j := it.index
		base := it.chunk * p.perChunk

		it.index++
		if it.index == p.perChunk {
			it.index = 0
			it.chunk++
		}

		if c[j].word != freeWord {
			return Ref(base+j) + 1, &c[j].elem, true
		}
	}
	return Nil, nil, false
}

// FindElem returns the index-th used slot in iteration order.
func (p *Pool[T]) FindElem(index int) (Ref, *T, bool) {
	assert.That(p.iterable, ErrNotIterable, "%s", p.tag)
	if index < 0 || index >= p.totused {
		return Nil, nil, false
	}

	it := Iter[T]{pool: p}
	r, elem, ok := it.Step()
	for ; index > 0 && ok; index-- {
		r, elem, ok = it.Step()
	}
	return r, elem, ok
}

// All returns an iterator over the used slots.
func (p *Pool[T]) All() iter.Seq2[Ref, *T] {
	assert.That(p.iterable, ErrNotIterable, "%s", p.tag)
	return func(yield func(Ref, *T) bool) {
		it := Iter[T]{pool: p}
		for {
			r, elem, ok := it.Step()
			if !ok || !yield(r, elem) {
				return
			}
		}
	}
}
