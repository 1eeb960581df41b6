package ghashutil

import (
	"math/bits"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrHash(t *testing.T) {
	tests := []struct {
		in   string
		want uint32
	}{
		{"", 5381},
		{"a", 177670},
		{"peach", 270714022},
		{"\xff", 177572},
		{"caf\xc3\xa9", 255153275},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StrHash(tt.in), "StrHash(%q)", tt.in)
	}
}

func TestStrHashN(t *testing.T) {
	assert.Equal(t, StrHash("pea"), StrHashN("peach", 3))
	assert.Equal(t, StrHash("peach"), StrHashN("peach", 100))
	assert.Equal(t, StrHash("ab"), StrHashN("ab\x00cd", 5), "stops at NUL")
}

func TestPtrHash(t *testing.T) {
	var x, y int
	px := unsafe.Pointer(&x)
	want := bits.RotateLeft32(uint32(uintptr(px)), -4)
	assert.Equal(t, want, PtrHash(px))

	h := Ptr[int]()
	assert.True(t, h.Equal(&x, &x))
	assert.False(t, h.Equal(&x, &y))
	assert.Equal(t, h.Hash(&x), PtrHash(px))
}

func TestIntHash(t *testing.T) {
	assert.Equal(t, uint32(0xac85e9bd), IntHash(0))
	assert.Equal(t, uint32(0x9d1ca0ca), IntHash(1))
	assert.Equal(t, uint32(0x13aadc5f), IntHash(12345))

	h := Int[int]()
	assert.Equal(t, IntPtrHash(42), h.Hash(42))
	assert.True(t, h.Equal(7, 7))
	assert.False(t, h.Equal(7, 8))

	m := IntMurmur[uint16]()
	assert.Equal(t, IntMurmurHash(9), m.Hash(9))
}

func TestIntPtrHash_Spread(t *testing.T) {
	seen := make(map[uint32]bool)
	for i := uintptr(0); i < 4096; i++ {
		seen[IntPtrHash(i)] = true
	}
	assert.Len(t, seen, 4096, "sequential keys should not collide")
}

func TestUint4(t *testing.T) {
	k := [4]uint32{1, 2, 3, 4}
	assert.Equal(t, uint32(53506), Uint4Hash(k))

	h := Uint4()
	assert.True(t, h.Equal(k, [4]uint32{1, 2, 3, 4}))
	assert.False(t, h.Equal(k, [4]uint32{1, 2, 3, 5}))
	assert.NotEqual(t, Uint4MurmurHash(k), Uint4MurmurHash([4]uint32{4, 3, 2, 1}))
}

func TestCombineHash(t *testing.T) {
	assert.Equal(t, uint32(0x9e3779b9), CombineHash(0, 0))
	assert.NotEqual(t, CombineHash(1, 2), CombineHash(2, 1), "order matters")
}

func TestPair(t *testing.T) {
	var a, b int
	var s string

	p := PairOf(&a, &s)
	q := PairOf(&b, &s)
	h := Pairs[int, string]()

	assert.Equal(t, CombineHash(PtrHash(unsafe.Pointer(&a)), PtrHash(unsafe.Pointer(&s))), h.Hash(p))
	assert.True(t, h.Equal(p, PairOf(&a, &s)))
	assert.False(t, h.Equal(p, q))
}

func TestMurmur2(t *testing.T) {
	tests := []struct {
		in   string
		seed uint32
		want uint32
	}{
		{"", 0, 0},
		{"hello", 0, 0xe56129cb},
		{"peach", 7, 0xcae75c5c},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Murmur2([]byte(tt.in), tt.seed), "Murmur2(%q, %d)", tt.in, tt.seed)
	}
}

func TestStrMurmur_IncludesTerminator(t *testing.T) {
	h := StrMurmur()
	assert.Equal(t, uint32(0x7e52de02), h.Hash("hello"))
	assert.Equal(t, Murmur2([]byte("hello\x00"), 0), h.Hash("hello"))
	assert.Equal(t, uint32(0x8115f46f), h.Hash("abc"), "terminator completes a word")
}

func TestMurmur2A_Incremental(t *testing.T) {
	whole := NewMurmur2A(0)
	whole.Add([]byte("hello world"))
	require.Equal(t, uint32(0x9dfc8997), whole.Sum32())

	split := NewMurmur2A(0)
	split.Add([]byte("hel"))
	split.AddString("lo wo")
	split.Add([]byte("rld"))
	require.Equal(t, whole.Sum32(), split.Sum32(), "split feeding matches one-shot feeding")

	var zero Murmur2A
	zero.AddInt(5)
	withBytes := NewMurmur2A(0)
	withBytes.Add([]byte{5, 0, 0, 0})
	assert.Equal(t, withBytes.Sum32(), zero.Sum32())
}

func TestStrXX(t *testing.T) {
	h := StrXX()
	assert.Equal(t, StrXXHash("peach"), h.Hash("peach"))
	assert.NotEqual(t, h.Hash("peach"), h.Hash("genesis"))
	assert.True(t, h.Equal("rose", "rose"))
}

func TestFold(t *testing.T) {
	h := StrFold()
	assert.True(t, h.Equal("LOOM", "loom"))
	assert.True(t, h.Equal("ΑΒΓ", "αβγ"))
	assert.Equal(t, h.Hash("ΑΒΓ"), h.Hash("αβγ"))
	assert.False(t, h.Equal("rose", "roses"))
}

func TestFNVFold(t *testing.T) {
	h := StrFNVFold()
	assert.Equal(t, uint32(0x4f9f2cab), h.Hash("HeLLo"))
	assert.Equal(t, h.Hash("hello"), h.Hash("HELLO"))
	assert.True(t, h.Equal("Loom", "lOOM"))
	assert.False(t, h.Equal("loom", "looms"))
	assert.False(t, h.Equal("loom", "lxom"))
}
