//go:build hashkit_debug

package mempool

import (
	"testing"

	"github.com/stretchr/testify/require"
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

func TestDebug_ForeignRef(t *testing.T) {
	p, _ := newTestPool(t, 0, 4)
	p.Alloc()
	requirePanicsWith(t, ErrForeignRef, func() { p.Free(Ref(p.Cap() + 1)) })
	requirePanicsWith(t, ErrForeignRef, func() { p.Free(Nil) })
}

func TestDebug_DoubleFree(t *testing.T) {
	p, _ := newTestPool(t, 0, 4)
	p.Alloc()
	r := p.Alloc()
	p.Free(r)
	requirePanicsWith(t, ErrDoubleFree, func() { p.Free(r) })
}

func TestDebug_NotIterable(t *testing.T) {
	p, _ := newTestPool(t, 0, 4)
	requirePanicsWith(t, ErrNotIterable, func() { p.Iter() })
	requirePanicsWith(t, ErrNotIterable, func() { p.FindElem(0) })
}
