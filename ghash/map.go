package ghash

import "github.com/joshuapare/hashkit/mempool"

// Map is a hash table from keys of type K to values of type V.
//
// The table does not own what keys and values point to. Operations that
// drop entries take optional free callbacks for callers that do.
type Map[K, V any] struct {
	t table[K, V]
}

// IterState remembers where Pop left off so that draining a table visits
// each bucket about once. The zero value starts at the first bucket.
type IterState struct {
	bucket uint32
}

// New creates a Map using h for hashing and equality. tag names the table in
// logs, statistics and allocator accounting.
func New[K, V any](h Hasher[K], tag string, opts ...Option) *Map[K, V] {
	cfg := buildConfig(opts)
	m := &Map[K, V]{}
	m.t.init(h, tag, cfg, cfg.Flags)
	return m
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return int(m.t.nentries) }

// Tag returns the name the map was created with.
func (m *Map[K, V]) Tag() string { return m.t.tag }

// Reserve sizes the bucket array for n entries and pins that size as the
// minimum the map may shrink to.
func (m *Map[K, V]) Reserve(n int) { m.t.reserve(uint32(max(n, 0))) }

// Insert adds key with val without looking for an existing entry. The caller
// guarantees key is absent unless AllowDups is set.
func (m *Map[K, V]) Insert(key K, val V) {
	m.t.checkLive()
	m.t.insert(key, val, m.t.keyIndex(key))
}

// Reinsert adds key with val, or overwrites the key and value of the
// existing entry after passing the old ones to keyFree and valFree. It
// reports whether a new entry was added.
func (m *Map[K, V]) Reinsert(key K, val V, keyFree KeyFreeFunc[K], valFree ValFreeFunc[V]) bool {
	return m.t.insertSafe(key, val, true, keyFree, valFree)
}

// ReplaceKey swaps the stored key equal to key for key itself and returns
// the previous one. Use it when a key's storage moves but its identity does
// not.
func (m *Map[K, V]) ReplaceKey(key K) (K, bool) {
	return m.t.replaceKey(key)
}

// Lookup returns the value stored for key.
func (m *Map[K, V]) Lookup(key K) (V, bool) {
	if r := m.t.lookup(key); r != mempool.Nil {
		return m.t.entry(r).val, true
	}
	var zero V
	return zero, false
}

// LookupDefault returns the value stored for key, or def when key is absent.
func (m *Map[K, V]) LookupDefault(key K, def V) V {
	if r := m.t.lookup(key); r != mempool.Nil {
		return m.t.entry(r).val
	}
	return def
}

// LookupPtr returns a pointer to the value stored for key, or nil. The
// pointer is valid until the entry is removed.
func (m *Map[K, V]) LookupPtr(key K) *V {
	if r := m.t.lookup(key); r != mempool.Nil {
		return &m.t.entry(r).val
	}
	return nil
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	return m.t.lookup(key) != mempool.Nil
}

// Ensure returns a pointer to the value for key, adding an entry with the
// zero value when key is absent. existed reports whether it was present; when
// it was not the caller fills in the value through the pointer.
func (m *Map[K, V]) Ensure(key K) (val *V, existed bool) {
	r, existed := m.t.ensure(key)
	return &m.t.entry(r).val, existed
}

// EnsureKey is Ensure that also returns a pointer to the stored key. A newly
// added entry holds key; the caller may replace it with an owned copy that
// is Equal to it.
func (m *Map[K, V]) EnsureKey(key K) (k *K, val *V, existed bool) {
	r, existed := m.t.ensure(key)
	e := m.t.entry(r)
	return &e.key, &e.val, existed
}

// Remove deletes the entry for key after passing its key and value to
// keyFree and valFree. It reports whether an entry was removed.
func (m *Map[K, V]) Remove(key K, keyFree KeyFreeFunc[K], valFree ValFreeFunc[V]) bool {
	return m.t.remove(key, keyFree, valFree)
}

// RemoveAndTake deletes the entry for key and returns its value. The stored
// key goes to keyFree.
func (m *Map[K, V]) RemoveAndTake(key K, keyFree KeyFreeFunc[K]) (V, bool) {
	_, v, ok := m.t.take(key, keyFree)
	return v, ok
}

// Pop removes some entry and returns it. Calling Pop with the same state
// until it returns false drains the map.
func (m *Map[K, V]) Pop(state *IterState) (K, V, bool) {
	return m.t.pop(state)
}

// Copy returns a map with the same bucket layout and entries. keyCopy and
// valCopy deep-copy keys and values when non-nil.
func (m *Map[K, V]) Copy(keyCopy KeyCopyFunc[K], valCopy ValCopyFunc[V]) *Map[K, V] {
	out := &Map[K, V]{}
	m.t.copy(&out.t, keyCopy, valCopy)
	return out
}

// Clear removes every entry, passing keys and values to the free callbacks.
func (m *Map[K, V]) Clear(keyFree KeyFreeFunc[K], valFree ValFreeFunc[V]) {
	m.t.clear(keyFree, valFree, 0)
}

// ClearReserve is Clear followed by sizing the map for reserve entries.
func (m *Map[K, V]) ClearReserve(keyFree KeyFreeFunc[K], valFree ValFreeFunc[V], reserve int) {
	m.t.clear(keyFree, valFree, uint32(max(reserve, 0)))
}

// Free passes every key and value to the free callbacks and releases the
// map's storage. The map must not be used afterwards.
func (m *Map[K, V]) Free(keyFree KeyFreeFunc[K], valFree ValFreeFunc[V]) {
	m.t.free(keyFree, valFree)
}

// SetFlag sets AllowDups or AllowShrink.
func (m *Map[K, V]) SetFlag(f Flag) { m.t.setFlag(f) }

// ClearFlag clears AllowDups or AllowShrink.
func (m *Map[K, V]) ClearFlag(f Flag) { m.t.clearFlag(f) }

// Flags returns the flags currently set.
func (m *Map[K, V]) Flags() Flag { return m.t.flag & userFlags }
