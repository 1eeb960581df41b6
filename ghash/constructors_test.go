package ghash

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/hashkit/ghashutil"
	"github.com/joshuapare/hashkit/internal/testutil"
)

func TestPtrMap(t *testing.T) {
	type node struct{ name string }
	a, b := &node{"a"}, &node{"a"}

	m := NewPtrMap[node, int](t.Name(), WithAllocator(testutil.Guard(t)))
	defer m.Free(nil, nil)
	m.Insert(a, 1)

	require.True(t, m.Contains(a))
	require.False(t, m.Contains(b), "pointers compare by identity")

	s := NewPtrSet[node](t.Name(), WithAllocator(testutil.Guard(t)))
	defer s.Free(nil)
	s.Insert(a)
	s.Insert(b)
	require.Equal(t, 2, s.Len())
}

func TestPairMap(t *testing.T) {
	var x, y int
	var label string

	m := NewPairMap[int, string, bool](t.Name(), WithAllocator(testutil.Guard(t)))
	defer m.Free(nil, nil)
	m.Insert(ghashutil.PairOf(&x, &label), true)

	require.True(t, m.Contains(ghashutil.PairOf(&x, &label)))
	require.False(t, m.Contains(ghashutil.PairOf(&y, &label)))

	s := NewPairSet[int, int](t.Name(), WithAllocator(testutil.Guard(t)))
	defer s.Free(nil)
	require.True(t, s.Add(ghashutil.PairOf(&x, &y)))
	require.True(t, s.Add(ghashutil.PairOf(&y, &x)), "order matters")
	require.False(t, s.Add(ghashutil.PairOf(&x, &y)))
}

func TestIntMapWidths(t *testing.T) {
	m8 := NewIntMap[uint8, int](t.Name(), WithAllocator(testutil.Guard(t)))
	defer m8.Free(nil, nil)
	for i := 0; i < 256; i++ {
		m8.Insert(uint8(i), i)
	}
	require.Equal(t, 256, m8.Len())
	require.NoError(t, m8.Verify())

	m64 := NewIntMap[int64, int](t.Name(), WithAllocator(testutil.Guard(t)))
	defer m64.Free(nil, nil)
	m64.Insert(-1, 1)
	m64.Insert(1<<40, 2)
	require.Equal(t, 1, m64.LookupDefault(-1, 0))
	require.Equal(t, 2, m64.LookupDefault(1<<40, 0))
}
