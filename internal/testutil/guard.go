package testutil

import (
	"testing"

	"github.com/joshuapare/hashkit/memguard"
)

// Guard returns a fresh Guarded allocator and registers a cleanup that fails
// the test if anything charged to it is still outstanding.
//
// Example:
//
//	g := testutil.Guard(t)
//	m := ghash.NewStrMap[int]("test", ghash.WithAllocator(g))
//	defer m.Free(nil, nil)
func Guard(t testing.TB) *memguard.Guarded {
	t.Helper()
	g := memguard.NewGuarded()
	t.Cleanup(func() {
		for _, u := range g.Leaks() {
			t.Errorf("leaked %d bytes in %d blocks tagged %q", u.Bytes, u.Blocks, u.Tag)
		}
	})
	return g
}
