//go:build hashkit_debug

package ghash

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/hashkit/internal/testutil"
)

func requirePanicsWith(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected a panic wrapping %v", target)
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, target)
	}()
	fn()
}

func TestDebug_DuplicateInsert(t *testing.T) {
	m := newStrMap[int](t)
	defer m.Free(nil, nil)

	m.Insert("loom", 1)
	requirePanicsWith(t, ErrDuplicateKey, func() { m.Insert("loom", 2) })

	s := NewStrSet(t.Name(), WithAllocator(testutil.Guard(t)))
	defer s.Free(nil)
	s.Insert("loom")
	requirePanicsWith(t, ErrDuplicateKey, func() { s.Insert("loom") })

	s.SetFlag(AllowDups)
	require.NotPanics(t, func() { s.Insert("loom") })
}

func TestDebug_MutationDuringIteration(t *testing.T) {
	m := NewIntMap[int, int](t.Name(), WithAllocator(testutil.Guard(t)))
	defer m.Free(nil, nil)
	for i := 0; i < 10; i++ {
		m.Insert(i, i)
	}

	it := m.Iterator()
	m.Insert(100, 100)
	requirePanicsWith(t, ErrMutatedDuringIteration, func() { it.Step() })
	requirePanicsWith(t, ErrMutatedDuringIteration, func() { it.Key() })

	requirePanicsWith(t, ErrMutatedDuringIteration, func() {
		for k := range m.Keys() {
			m.Remove(k, nil, nil)
		}
	})

	require.NotPanics(t, func() {
		for it := m.Iterator(); !it.Done(); it.Step() {
			*it.ValuePtr() = 0
		}
	}, "writing through ValuePtr is not a mutation")
}

func TestDebug_UseAfterFree(t *testing.T) {
	m := newStrMap[int](t)
	m.Insert("rose", 1)
	m.Free(nil, nil)

	requirePanicsWith(t, ErrFreed, func() { m.Lookup("rose") })
	requirePanicsWith(t, ErrFreed, func() { m.Insert("loom", 2) })
	requirePanicsWith(t, ErrFreed, func() { m.Free(nil, nil) })
	requirePanicsWith(t, ErrFreed, func() { m.Iterator() })
}
