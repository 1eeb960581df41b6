package ghash

import (
	"context"
	"log/slog"

	"github.com/joshuapare/hashkit/internal/assert"
	"github.com/joshuapare/hashkit/memguard"
	"github.com/joshuapare/hashkit/mempool"
)

// entry is one node of a bucket chain. Sets use V = struct{}, which must
// not be the last field or the compiler pads it.
type entry[K, V any] struct {
	next mempool.Ref
	val  V
	key  K
}

// table is the chaining and resizing engine shared by Map and Set.
type table[K, V any] struct {
	hasher  Hasher[K]
	buckets []mempool.Ref
	pool    *mempool.Pool[entry[K, V]]

	nbuckets    uint32
	nentries    uint32
	cursize     uint32
	sizeMin     uint32
	limitGrow   uint32
	limitShrink uint32
	flag        Flag

	tag       string
	bucketTag string
	alloc     memguard.Allocator
	log       *slog.Logger
	poolChunk int

	gen     uint64
	grows   uint64
	shrinks uint64
	freed   bool
}

func (t *table[K, V]) init(h Hasher[K], tag string, cfg Config, flag Flag) {
	t.hasher = h
	t.tag = tag
	t.bucketTag = tag + " buckets"
	t.alloc = memguard.Or(cfg.Allocator)
	t.log = cfg.Logger
	t.poolChunk = cfg.PoolChunk
	t.flag = flag

	t.reset(uint32(cfg.Reserve))
	t.pool = mempool.New[entry[K, V]](defaultPoolReserve, t.poolChunk,
		mempool.WithAllocator(t.alloc),
		mempool.WithTag(tag+" entries"),
		mempool.WithLogger(t.log),
	)
}

func (t *table[K, V]) checkLive() {
	if assert.Enabled {
		assert.That(!t.freed, ErrFreed, "%s", t.tag)
	}
}

func (t *table[K, V]) bucketIndex(hash uint32) uint32 {
	return hash % t.nbuckets
}

func (t *table[K, V]) keyIndex(key K) uint32 {
	return t.hasher.Hash(key) % t.nbuckets
}

func (t *table[K, V]) entry(r mempool.Ref) *entry[K, V] {
	return t.pool.Get(r)
}

// resize replaces the bucket array with one of nbuckets heads and rehashes
// every entry into it.
func (t *table[K, V]) resize(nbuckets uint32) {
	old := t.buckets
	oldN := t.nbuckets

	t.nbuckets = nbuckets
	buckets := memguard.AllocAligned[mempool.Ref](t.alloc, int(nbuckets), memguard.CacheLineSize, t.bucketTag)

	for i := range old {
		for r := old[i]; r != mempool.Nil; {
			e := t.entry(r)
			next := e.next
			bi := t.bucketIndex(t.hasher.Hash(e.key))
			e.next = buckets[bi]
			buckets[bi] = r
			r = next
		}
	}

	t.buckets = buckets
	if old != nil {
		memguard.Free(t.alloc, old, t.bucketTag)
		t.gen++
		if t.log != nil {
			t.log.LogAttrs(context.Background(), slog.LevelDebug, "ghash resize",
				slog.String("tag", t.tag),
				slog.Uint64("from", uint64(oldN)),
				slog.Uint64("to", uint64(nbuckets)),
				slog.Uint64("entries", uint64(t.nentries)),
			)
		}
	}
}

// expand grows the bucket array when nentries is over the grow limit.
// userDefined pins the resulting size as the minimum.
func (t *table[K, V]) expand(nentries uint32, userDefined bool) {
	if t.buckets != nil && nentries < t.limitGrow {
		return
	}

	newN := t.nbuckets
	for nentries > t.limitGrow && t.cursize < maxSize-1 {
		t.cursize++
		newN = hashSizes[t.cursize]
		t.limitGrow = limitGrow(newN)
	}

	if userDefined {
		t.sizeMin = t.cursize
	}

	if newN == t.nbuckets && t.buckets != nil {
		return
	}

	t.limitGrow = limitGrow(newN)
	t.limitShrink = limitShrink(newN)
	if t.buckets != nil {
		t.grows++
	}
	t.resize(newN)
}

// contract shrinks the bucket array when nentries is under the shrink limit,
// never below the pinned minimum. Only tables with AllowShrink shrink unless
// force is set.
func (t *table[K, V]) contract(nentries uint32, userDefined, force bool) {
	if !force && t.flag&AllowShrink == 0 {
		return
	}

	if t.buckets != nil && nentries > t.limitShrink {
		return
	}

	newN := t.nbuckets
	for nentries < t.limitShrink && t.cursize > t.sizeMin {
		t.cursize--
		newN = hashSizes[t.cursize]
		t.limitShrink = limitShrink(newN)
	}

	if userDefined {
		t.sizeMin = t.cursize
	}

	if newN == t.nbuckets && t.buckets != nil {
		return
	}

	t.limitGrow = limitGrow(newN)
	t.limitShrink = limitShrink(newN)
	if t.buckets != nil {
		t.shrinks++
	}
	t.resize(newN)
}

// reset drops the bucket array and sizes a fresh one for nentries.
func (t *table[K, V]) reset(nentries uint32) {
	if t.buckets != nil {
		memguard.Free(t.alloc, t.buckets, t.bucketTag)
		t.buckets = nil
	}

	t.cursize = 0
	t.sizeMin = 0
	t.nbuckets = hashSizes[0]
	t.limitGrow = limitGrow(t.nbuckets)
	t.limitShrink = limitShrink(t.nbuckets)
	t.nentries = 0
	t.gen++

	t.expand(nentries, nentries != 0)
}

func (t *table[K, V]) reserve(n uint32) {
	t.checkLive()
	t.expand(n, true)
	t.contract(n, true, false)
}

func (t *table[K, V]) lookupEntry(key K, bi uint32) mempool.Ref {
	for r := t.buckets[bi]; r != mempool.Nil; {
		e := t.entry(r)
		if t.hasher.Equal(key, e.key) {
			return r
		}
		r = e.next
	}
	return mempool.Nil
}

func (t *table[K, V]) lookupEntryPrev(key K, bi uint32) (r, prev mempool.Ref) {
	for r = t.buckets[bi]; r != mempool.Nil; {
		e := t.entry(r)
		if t.hasher.Equal(key, e.key) {
			return r, prev
		}
		prev = r
		r = e.next
	}
	return mempool.Nil, mempool.Nil
}

func (t *table[K, V]) lookup(key K) mempool.Ref {
	t.checkLive()
	return t.lookupEntry(key, t.keyIndex(key))
}

// link prepends the allocated entry r holding key to bucket bi and runs the
// grow check.
func (t *table[K, V]) link(r mempool.Ref, key K, bi uint32) {
	if assert.Enabled {
		assert.That(t.flag&AllowDups != 0 || t.lookupEntry(key, bi) == mempool.Nil,
			ErrDuplicateKey, "%s", t.tag)
	}

	e := t.entry(r)
	e.next = t.buckets[bi]
	e.key = key
	t.buckets[bi] = r

	t.nentries++
	t.gen++
	t.expand(t.nentries, false)
}

func (t *table[K, V]) insert(key K, val V, bi uint32) mempool.Ref {
	r := t.pool.Alloc()
	t.entry(r).val = val
	t.link(r, key, bi)
	return r
}

// insertSafe inserts key unless it is present. A present entry gets key and
// val written over it when override is set, after the free callbacks have
// seen the old ones. It reports whether a new entry was added.
func (t *table[K, V]) insertSafe(key K, val V, override bool, keyFree KeyFreeFunc[K], valFree ValFreeFunc[V]) bool {
	t.checkLive()
	bi := t.keyIndex(key)
	if r := t.lookupEntry(key, bi); r != mempool.Nil {
		if override {
			e := t.entry(r)
			if keyFree != nil {
				keyFree(e.key)
			}
			if valFree != nil {
				valFree(e.val)
			}
			e.key = key
			e.val = val
		}
		return false
	}
	t.insert(key, val, bi)
	return true
}

// ensure returns the entry for key, adding one with a zero value when it is
// missing. existed reports which happened.
func (t *table[K, V]) ensure(key K) (r mempool.Ref, existed bool) {
	t.checkLive()
	bi := t.keyIndex(key)
	if r = t.lookupEntry(key, bi); r != mempool.Nil {
		return r, true
	}
	r = t.pool.Calloc()
	t.link(r, key, bi)
	return r, false
}

func (t *table[K, V]) replaceKey(key K) (K, bool) {
	r := t.lookup(key)
	if r == mempool.Nil {
		var zero K
		return zero, false
	}
	e := t.entry(r)
	prev := e.key
	e.key = key
	return prev, true
}

// unlink detaches the entry for key from bucket bi after handing its key and
// value to the free callbacks, then runs the shrink check. The entry stays
// allocated so the caller can read it before releasing it.
func (t *table[K, V]) unlink(key K, bi uint32, keyFree KeyFreeFunc[K], valFree ValFreeFunc[V]) mempool.Ref {
	r, prev := t.lookupEntryPrev(key, bi)
	if r == mempool.Nil {
		return mempool.Nil
	}

	e := t.entry(r)
	if keyFree != nil {
		keyFree(e.key)
	}
	if valFree != nil {
		valFree(e.val)
	}

	if prev != mempool.Nil {
		t.entry(prev).next = e.next
	} else {
		t.buckets[bi] = e.next
	}

	t.nentries--
	t.gen++
	t.contract(t.nentries, false, false)
	return r
}

func (t *table[K, V]) remove(key K, keyFree KeyFreeFunc[K], valFree ValFreeFunc[V]) bool {
	t.checkLive()
	r := t.unlink(key, t.keyIndex(key), keyFree, valFree)
	if r == mempool.Nil {
		return false
	}
	t.pool.Free(r)
	return true
}

// take removes the entry for key and returns its key and value.
func (t *table[K, V]) take(key K, keyFree KeyFreeFunc[K]) (K, V, bool) {
	t.checkLive()
	r := t.unlink(key, t.keyIndex(key), keyFree, nil)
	if r == mempool.Nil {
		var k K
		var v V
		return k, v, false
	}
	e := t.entry(r)
	k, v := e.key, e.val
	t.pool.Free(r)
	return k, v, true
}

// nextBucket returns the first non-empty bucket at or after cur, wrapping
// around. The table must not be empty.
func (t *table[K, V]) nextBucket(cur uint32) uint32 {
	if cur >= t.nbuckets {
		cur = 0
	}
	for i := cur; i < t.nbuckets; i++ {
		if t.buckets[i] != mempool.Nil {
			return i
		}
	}
	for i := uint32(0); i < cur; i++ {
		if t.buckets[i] != mempool.Nil {
			return i
		}
	}
	panic("ghash: non-empty table has no used bucket")
}

// pop removes the head entry of the next used bucket after state.
func (t *table[K, V]) pop(state *IterState) (K, V, bool) {
	t.checkLive()
	if t.nentries == 0 {
		var k K
		var v V
		return k, v, false
	}

	bi := t.nextBucket(state.bucket)
	r := t.unlink(t.entry(t.buckets[bi]).key, bi, nil, nil)
	state.bucket = bi

	e := t.entry(r)
	k, v := e.key, e.val
	t.pool.Free(r)
	return k, v, true
}

func (t *table[K, V]) freeAll(keyFree KeyFreeFunc[K], valFree ValFreeFunc[V]) {
	if keyFree == nil && valFree == nil {
		return
	}
	for i := range t.buckets {
		for r := t.buckets[i]; r != mempool.Nil; {
			e := t.entry(r)
			if keyFree != nil {
				keyFree(e.key)
			}
			if valFree != nil {
				valFree(e.val)
			}
			r = e.next
		}
	}
}

// copy builds a table with the same bucket count and entries. Chains come
// out in reverse order, which nothing may rely on anyway.
func (t *table[K, V]) copy(dst *table[K, V], keyCopy KeyCopyFunc[K], valCopy ValCopyFunc[V]) {
	t.checkLive()

	// The source may hold more entries than its grow limit after a Reserve
	// below Len, so the layout is taken as is rather than grown into.
	dst.init(t.hasher, t.tag, Config{Allocator: t.alloc, Logger: t.log, PoolChunk: t.poolChunk}, t.flag)
	if dst.nbuckets != t.nbuckets {
		memguard.Free(dst.alloc, dst.buckets, dst.bucketTag)
		dst.buckets = nil
		dst.resize(t.nbuckets)
	}
	dst.cursize = t.cursize
	dst.sizeMin = t.sizeMin
	dst.limitGrow = limitGrow(t.nbuckets)
	dst.limitShrink = limitShrink(t.nbuckets)

	if assert.Enabled {
		assert.That(len(dst.buckets) == len(t.buckets), ErrLayoutMismatch, "%s: %d vs %d", t.tag, len(dst.buckets), len(t.buckets))
	}

	for i := range t.buckets {
		for r := t.buckets[i]; r != mempool.Nil; {
			e := t.entry(r)

			nr := dst.pool.Alloc()
			ne := dst.entry(nr)
			ne.key = e.key
			if keyCopy != nil {
				ne.key = keyCopy(e.key)
			}
			ne.val = e.val
			if valCopy != nil {
				ne.val = valCopy(e.val)
			}
			ne.next = dst.buckets[i]
			dst.buckets[i] = nr

			r = e.next
		}
	}
	dst.nentries = t.nentries
}

// clear removes every entry and sizes the table for reserve entries. A zero
// reserve keeps the pool's creation reserve.
func (t *table[K, V]) clear(keyFree KeyFreeFunc[K], valFree ValFreeFunc[V], reserve uint32) {
	t.checkLive()
	t.freeAll(keyFree, valFree)

	n := t.nentries
	t.reset(reserve)
	if reserve == 0 {
		t.pool.Clear()
	} else {
		t.pool.ClearReserve(int(reserve))
	}

	if t.log != nil {
		t.log.LogAttrs(context.Background(), slog.LevelDebug, "ghash clear",
			slog.String("tag", t.tag),
			slog.Uint64("removed", uint64(n)),
			slog.Uint64("buckets", uint64(t.nbuckets)),
		)
	}
}

// free releases the bucket array and the pool. The table is unusable
// afterwards.
func (t *table[K, V]) free(keyFree KeyFreeFunc[K], valFree ValFreeFunc[V]) {
	t.checkLive()
	t.freeAll(keyFree, valFree)

	memguard.Free(t.alloc, t.buckets, t.bucketTag)
	t.buckets = nil
	t.pool.Discard()
	t.nentries = 0
	t.gen++
	t.freed = true
}

func (t *table[K, V]) setFlag(f Flag) { t.flag |= f & userFlags }
func (t *table[K, V]) clearFlag(f Flag) { t.flag &^= f & userFlags }
