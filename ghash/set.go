package ghash

import "github.com/joshuapare/hashkit/mempool"

// Set is a hash table of keys without values. Entries are one field smaller
// than a Map's.
type Set[K any] struct {
	t table[K, struct{}]
}

// NewSet creates a Set using h for hashing and equality.
func NewSet[K any](h Hasher[K], tag string, opts ...Option) *Set[K] {
	cfg := buildConfig(opts)
	s := &Set[K]{}
	s.t.init(h, tag, cfg, cfg.Flags|isSet)
	return s
}

// Len returns the number of keys.
func (s *Set[K]) Len() int { return int(s.t.nentries) }

// Tag returns the name the set was created with.
func (s *Set[K]) Tag() string { return s.t.tag }

// Reserve sizes the bucket array for n keys and pins that size as the
// minimum the set may shrink to.
func (s *Set[K]) Reserve(n int) { s.t.reserve(uint32(max(n, 0))) }

// Insert adds key without looking for it first. The caller guarantees key is
// absent unless AllowDups is set.
func (s *Set[K]) Insert(key K) {
	s.t.checkLive()
	s.t.insert(key, struct{}{}, s.t.keyIndex(key))
}

// Add inserts key when it is absent and reports whether it did.
func (s *Set[K]) Add(key K) bool {
	return s.t.insertSafe(key, struct{}{}, false, nil, nil)
}

// Reinsert adds key, or replaces the stored key equal to it after passing
// the old one to keyFree. It reports whether a new entry was added.
func (s *Set[K]) Reinsert(key K, keyFree KeyFreeFunc[K]) bool {
	return s.t.insertSafe(key, struct{}{}, true, keyFree, nil)
}

// EnsureKey returns a pointer to the stored key equal to key, adding key
// when it is absent. The caller may replace a newly added key with an owned
// copy that is Equal to it.
func (s *Set[K]) EnsureKey(key K) (k *K, existed bool) {
	r, existed := s.t.ensure(key)
	return &s.t.entry(r).key, existed
}

// ReplaceKey swaps the stored key equal to key for key and returns the
// previous one.
func (s *Set[K]) ReplaceKey(key K) (K, bool) {
	return s.t.replaceKey(key)
}

// Contains reports whether key is present.
func (s *Set[K]) Contains(key K) bool {
	return s.t.lookup(key) != mempool.Nil
}

// Lookup returns the stored key equal to key. It matters when keys carry
// identity beyond what Equal compares.
func (s *Set[K]) Lookup(key K) (K, bool) {
	if r := s.t.lookup(key); r != mempool.Nil {
		return s.t.entry(r).key, true
	}
	var zero K
	return zero, false
}

// PopKey removes the stored key equal to key and returns it.
func (s *Set[K]) PopKey(key K) (K, bool) {
	k, _, ok := s.t.take(key, nil)
	return k, ok
}

// Remove deletes key after passing the stored key to keyFree. It reports
// whether a key was removed.
func (s *Set[K]) Remove(key K, keyFree KeyFreeFunc[K]) bool {
	return s.t.remove(key, keyFree, nil)
}

// Pop removes some key and returns it. Calling Pop with the same state until
// it returns false drains the set.
func (s *Set[K]) Pop(state *IterState) (K, bool) {
	k, _, ok := s.t.pop(state)
	return k, ok
}

// Copy returns a set with the same bucket layout and keys.
func (s *Set[K]) Copy(keyCopy KeyCopyFunc[K]) *Set[K] {
	out := &Set[K]{}
	s.t.copy(&out.t, keyCopy, nil)
	return out
}

// Clear removes every key, passing each to keyFree.
func (s *Set[K]) Clear(keyFree KeyFreeFunc[K]) {
	s.t.clear(keyFree, nil, 0)
}

// ClearReserve is Clear followed by sizing the set for reserve keys.
func (s *Set[K]) ClearReserve(keyFree KeyFreeFunc[K], reserve int) {
	s.t.clear(keyFree, nil, uint32(max(reserve, 0)))
}

// Free passes every key to keyFree and releases the set's storage.
func (s *Set[K]) Free(keyFree KeyFreeFunc[K]) {
	s.t.free(keyFree, nil)
}

// SetFlag sets AllowDups or AllowShrink.
func (s *Set[K]) SetFlag(f Flag) { s.t.setFlag(f) }

// ClearFlag clears AllowDups or AllowShrink.
func (s *Set[K]) ClearFlag(f Flag) { s.t.clearFlag(f) }

// Flags returns the flags currently set.
func (s *Set[K]) Flags() Flag { return s.t.flag & userFlags }
