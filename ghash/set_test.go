package ghash

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/hashkit/ghashutil"
	"github.com/joshuapare/hashkit/internal/testutil"
)

func TestSet_AddContainsRemove(t *testing.T) {
	s := NewStrSet(t.Name(), WithAllocator(testutil.Guard(t)))
	defer s.Free(nil)

	for _, w := range testutil.Words {
		require.True(t, s.Add(w), "first add of %q", w)
	}
	for _, w := range testutil.Words {
		require.False(t, s.Add(w), "second add of %q", w)
	}
	require.Equal(t, len(testutil.Words), s.Len())

	var freed testutil.Recorder[string]
	require.True(t, s.Remove("peach", freed.Free()))
	require.False(t, s.Remove("peach", freed.Free()))
	require.Equal(t, []string{"peach"}, freed.Seen)
	require.False(t, s.Contains("peach"))
	require.True(t, s.Contains("loom"))
	require.NoError(t, s.Verify())
}

// TestSet_StoredKeyIdentity uses a case-folding hasher so that the stored key
// is distinguishable from an Equal probe.
func TestSet_StoredKeyIdentity(t *testing.T) {
	s := NewSet[string](ghashutil.StrFold(), t.Name(), WithAllocator(testutil.Guard(t)))
	defer s.Free(nil)

	s.Insert("Rose")
	got, ok := s.Lookup("ROSE")
	require.True(t, ok)
	require.Equal(t, "Rose", got)

	prev, ok := s.ReplaceKey("rOsE")
	require.True(t, ok)
	require.Equal(t, "Rose", prev)
	got, _ = s.Lookup("rose")
	require.Equal(t, "rOsE", got)

	var freed testutil.Recorder[string]
	require.False(t, s.Reinsert("ROSE", freed.Free()))
	require.Equal(t, []string{"rOsE"}, freed.Seen)
	got, _ = s.Lookup("rose")
	require.Equal(t, "ROSE", got)

	k, ok := s.PopKey("rose")
	require.True(t, ok)
	require.Equal(t, "ROSE", k)
	require.Zero(t, s.Len())

	_, ok = s.PopKey("rose")
	require.False(t, ok)
	_, ok = s.Lookup("rose")
	require.False(t, ok)
}

func TestSet_EnsureKey(t *testing.T) {
	s := NewStrSet(t.Name(), WithAllocator(testutil.Guard(t)))
	defer s.Free(nil)

	k, existed := s.EnsureKey("ember")
	require.False(t, existed)
	require.Equal(t, "ember", *k)

	k2, existed := s.EnsureKey("ember")
	require.True(t, existed)
	require.Same(t, k, k2)
	require.Equal(t, 1, s.Len())
}

func TestSet_PopDrains(t *testing.T) {
	s := NewIntSet[int](t.Name(), WithShrink(), WithAllocator(testutil.Guard(t)))
	defer s.Free(nil)

	for i := 0; i < 1000; i++ {
		s.Insert(i)
	}

	seen := make(map[int]bool)
	var state IterState
	for k, ok := s.Pop(&state); ok; k, ok = s.Pop(&state) {
		require.False(t, seen[k])
		seen[k] = true
	}
	require.Len(t, seen, 1000)
	require.Zero(t, s.Len())
	require.Equal(t, 5, s.Stats().Buckets)
}

func TestSet_Copy(t *testing.T) {
	s := NewStrSet(t.Name(), WithAllocator(testutil.Guard(t)))
	defer s.Free(nil)

	keys := testutil.DistinctKeys("set", 200)
	for _, k := range keys {
		s.Insert(k)
	}

	var copied testutil.Recorder[string]
	c := s.Copy(copied.Copy(func(k string) string { return k }))
	defer c.Free(nil)

	require.Equal(t, 200, copied.Count())
	require.Equal(t, s.Stats().Buckets, c.Stats().Buckets)
	for _, k := range keys {
		require.True(t, c.Contains(k))
	}
	require.NoError(t, c.Verify())
}

func TestSet_ClearAndFlags(t *testing.T) {
	g := testutil.Guard(t)
	s := NewIntSet[int64]("flags", WithAllocator(g))

	for i := int64(0); i < 100; i++ {
		s.Insert(i)
	}
	s.ClearReserve(nil, 50)
	require.Zero(t, s.Len())
	require.Equal(t, 67, s.Stats().Buckets)

	s.Insert(3)
	s.Clear(nil)
	require.Equal(t, 5, s.Stats().Buckets)

	s.SetFlag(AllowDups)
	s.Insert(3)
	s.Insert(3)
	require.Equal(t, 2, s.Len())
	require.Equal(t, AllowDups, s.Flags())
	s.ClearFlag(AllowDups)
	require.Zero(t, s.Flags())

	s.Reserve(300)
	require.Equal(t, 521, s.Stats().Buckets)
	require.Equal(t, "flags", s.Tag())

	var freed testutil.Recorder[int64]
	s.Free(freed.Free())
	require.Equal(t, []int64{3, 3}, freed.Seen)
	require.Zero(t, g.InUse())
}

func TestSetIsSmallerThanMap(t *testing.T) {
	s := NewStrSet(t.Name(), WithAllocator(testutil.Guard(t)))
	defer s.Free(nil)
	m := NewStrMap[uint64](t.Name(), WithAllocator(testutil.Guard(t)))
	defer m.Free(nil, nil)

	require.Less(t, s.Stats().Pool.ElemSize, m.Stats().Pool.ElemSize)
	require.NotZero(t, s.t.flag&isSet)
	require.Zero(t, m.t.flag&isSet)
}
