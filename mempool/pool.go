package mempool

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"unsafe"

	"github.com/joshuapare/hashkit/internal/assert"
	"github.com/joshuapare/hashkit/memguard"
)

// Ref addresses one slot of a Pool. The zero Ref is nil.
type Ref uint32

// Nil is the Ref that addresses no slot.
const Nil Ref = 0

const (
	// Marker words kept in every slot header. Both read the same in either
	// byte order.
	freeWord uint32 = 'e' | 'f'<<8 | 'f'<<16 | 'e'<<24
	usedWord uint32 = 'u' | 's'<<8 | 'e'<<16 | 'd'<<24
)

const ptrSize = unsafe.Sizeof(uintptr(0))

// elemSizeMin is the smallest slot size accounted for.
const elemSizeMin = 2 * ptrSize

// chunkOverhead is the per-chunk cost on top of its slots: the block header
// the allocator charges plus the slice header the chunk list holds.
const chunkOverhead = uintptr(memguard.SizeOverhead) + unsafe.Sizeof([]byte(nil))

type slot[T any] struct {
	next Ref
	word uint32
	elem T
}

// freeNode is the header layout a free slot must be able to hold.
type freeNode struct {
	next uintptr
	word uintptr
}

// Pool is a chunked allocator for elements of type T.
type Pool[T any] struct {
	chunks    [][]slot[T]
	free      Ref
	esize     uintptr
	perChunk  int
	maxChunks int
	totused   int

	iterable bool
	alloc    memguard.Allocator
	tag      string
	log      *slog.Logger

	chunkAllocs uint64
	chunkFrees  uint64
}

// New creates a pool. reserve slots are allocated up front when reserve is
// positive; perChunk is the requested number of slots per chunk before the
// power-of-two adjustment.
func New[T any](reserve, perChunk int, opts ...Option) *Pool[T] {
	cfg := Config{Tag: "mempool"}
	for _, opt := range opts {
		opt(&cfg)
	}

	esize := unsafe.Sizeof(slot[T]{})
	if esize < elemSizeMin {
		esize = elemSizeMin
	}
	if cfg.Iterable && esize < unsafe.Sizeof(freeNode{}) {
		esize = unsafe.Sizeof(freeNode{})
	}

	p := &Pool[T]{
		esize:    esize,
		perChunk: adjustPerChunk(perChunk, esize),
		iterable: cfg.Iterable,
		alloc:    memguard.Or(cfg.Allocator),
		tag:      cfg.Tag,
		log:      cfg.Logger,
	}
	if reserve < 0 {
		reserve = 0
	}
	p.maxChunks = maxChunks(reserve, p.perChunk)

	if reserve > 0 {
		tail := Nil
		for i := 0; i < p.maxChunks; i++ {
			tail = p.addChunk(p.newChunk(), tail)
		}
	}
	return p
}

func adjustPerChunk(perChunk int, esize uintptr) int {
	if perChunk < 1 {
		perChunk = 1
	}
	total := nextPow2(uintptr(perChunk) * esize)
	if total <= chunkOverhead+esize {
		return 1
	}
	return int((total - chunkOverhead) / esize)
}

func nextPow2(x uintptr) uintptr {
	if x <= 1 {
		return 1
	}
	x--
	for shift := uintptr(1); shift < ptrSize*8; shift <<= 1 {
		x |= x >> shift
	}
	return x + 1
}

func maxChunks(nelem, perChunk int) int {
	if nelem <= perChunk {
		return 1
	}
	return nelem/perChunk + 1
}

func (p *Pool[T]) newChunk() []slot[T] {
	if uint64(len(p.chunks)+1)*uint64(p.perChunk) > math.MaxUint32 {
		memguard.Fatal(fmt.Errorf("%w: %s: more than %d slots", memguard.ErrOutOfMemory, p.tag, uint64(math.MaxUint32)))
	}
	p.chunkAllocs++
	return memguard.Alloc[slot[T]](p.alloc, p.perChunk, p.tag)
}

func (p *Pool[T]) releaseChunk(c []slot[T]) {
	p.chunkFrees++
	memguard.Free(p.alloc, c, p.tag)
}

// addChunk appends c, threads its slots into a list and links the list
// behind lastTail. It returns the chunk's last slot so the next chunk can be
// linked behind it.
func (p *Pool[T]) addChunk(c []slot[T], lastTail Ref) Ref {
	base := Ref(len(p.chunks) * p.perChunk)
	p.chunks = append(p.chunks, c)

	first := base + 1
	if p.free == Nil {
		p.free = first
	}
	for j := range c {
		c[j].next = base + Ref(j) + 2
		c[j].word = freeWord
	}
	c[len(c)-1].next = Nil

	if lastTail != Nil {
		p.slot(lastTail).next = first
	}

	if p.log != nil {
		p.log.LogAttrs(context.Background(), slog.LevelDebug, "mempool chunk added",
			slog.String("tag", p.tag),
			slog.Int("chunks", len(p.chunks)),
			slog.Int("per_chunk", p.perChunk),
		)
	}
	return base + Ref(len(c))
}

func (p *Pool[T]) slot(r Ref) *slot[T] {
	i := int(r) - 1
	return &p.chunks[i/p.perChunk][i%p.perChunk]
}

func (p *Pool[T]) owns(r Ref) bool {
	return r != Nil && int(r) <= len(p.chunks)*p.perChunk
}

// Alloc takes a slot off the free list, growing the pool by a chunk when the
// list is empty. The element keeps whatever the last Free left, which is its
// zero value.
func (p *Pool[T]) Alloc() Ref {
	if p.free == Nil {
		p.addChunk(p.newChunk(), Nil)
	}

	r := p.free
	s := p.slot(r)
	s.word = usedWord
	p.free = s.next
	s.next = Nil
	p.totused++
	return r
}

// Calloc is Alloc with the element set to its zero value.
func (p *Pool[T]) Calloc() Ref {
	r := p.Alloc()
	var zero T
	p.slot(r).elem = zero
	return r
}

// Get returns the element stored at r. The pointer stays valid until r is
// freed or the pool is cleared.
func (p *Pool[T]) Get(r Ref) *T {
	return &p.slot(r).elem
}

// Free puts r back on the free list and resets its element so the pool holds
// no references on the caller's behalf. When the pool becomes empty, every
// chunk but the first is released.
func (p *Pool[T]) Free(r Ref) {
	if assert.Enabled {
		assert.That(p.owns(r), ErrForeignRef, "%s: ref %d, capacity %d", p.tag, r, len(p.chunks)*p.perChunk)
		assert.That(p.slot(r).word != freeWord, ErrDoubleFree, "%s: ref %d", p.tag, r)
	}

	s := p.slot(r)
	var zero T
	s.elem = zero
	s.word = freeWord
	s.next = p.free
	p.free = r
	p.totused--

	if p.totused == 0 && len(p.chunks) > 1 {
		p.shrinkToFirst()
	}
}

func (p *Pool[T]) shrinkToFirst() {
	for i := 1; i < len(p.chunks); i++ {
		p.releaseChunk(p.chunks[i])
		p.chunks[i] = nil
	}
	p.chunks = p.chunks[:1]

	first := p.chunks[0]
	for j := range first {
		first[j].next = Ref(j) + 2
		first[j].word = freeWord
	}
	first[len(first)-1].next = Nil
	p.free = 1

	if p.log != nil {
		p.log.LogAttrs(context.Background(), slog.LevelDebug, "mempool released to one chunk",
			slog.String("tag", p.tag),
		)
	}
}

// Len returns the number of slots in use.
func (p *Pool[T]) Len() int { return p.totused }

// Cap returns the number of slots the current chunks hold.
func (p *Pool[T]) Cap() int { return len(p.chunks) * p.perChunk }

// Tag returns the tag chunks are charged under.
func (p *Pool[T]) Tag() string { return p.tag }

// Clear frees every slot, keeping as many chunks as the pool was created to
// reserve.
func (p *Pool[T]) Clear() {
	p.clear(p.maxChunks)
}

// ClearReserve frees every slot and keeps only the chunks needed for reserve
// elements.
func (p *Pool[T]) ClearReserve(reserve int) {
	if reserve < 0 {
		reserve = 0
	}
	p.clear(maxChunks(reserve, p.perChunk))
}

func (p *Pool[T]) clear(keep int) {
	if keep < len(p.chunks) {
		for i := keep; i < len(p.chunks); i++ {
			p.releaseChunk(p.chunks[i])
			p.chunks[i] = nil
		}
		p.chunks = p.chunks[:keep]
	}

	p.free = Nil
	p.totused = 0

	kept := p.chunks
	p.chunks = make([][]slot[T], 0, cap(kept))
	tail := Nil
	var zero T
	for _, c := range kept {
		for j := range c {
			c[j].elem = zero
		}
		tail = p.addChunk(c, tail)
	}
}

// Discard releases every chunk. The pool may be reused afterwards; it grows
// again on the next Alloc.
func (p *Pool[T]) Discard() {
	for i, c := range p.chunks {
		p.releaseChunk(c)
		p.chunks[i] = nil
	}
	p.chunks = nil
	p.free = Nil
	p.totused = 0
}
