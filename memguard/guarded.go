package memguard

import (
	"context"
	"log/slog"
	"sort"
	"sync"
)

// Guarded is a bookkeeping Allocator. It counts bytes and blocks in use,
// remembers the peak, and keeps the same totals per tag so that leaks can be
// attributed to whoever created them.
type Guarded struct {
	mu     sync.Mutex
	inUse  int64
	blocks int64
	peak   int64
	limit  int64
	tags   map[string]*Usage
}

// Usage is the outstanding charge of one tag.
type Usage struct {
	Tag    string
	Bytes  int64
	Blocks int64
}

// GuardedStats is a snapshot of a Guarded allocator.
type GuardedStats struct {
	InUse  int64
	Blocks int64
	Peak   int64
	Limit  int64
}

// NewGuarded returns a Guarded allocator without a limit.
func NewGuarded() *Guarded {
	return &Guarded{tags: make(map[string]*Usage)}
}

// SetLimit caps the bytes in use. Zero removes the cap.
func (g *Guarded) SetLimit(limit int64) {
	g.mu.Lock()
	g.limit = limit
	g.mu.Unlock()
}

// Acquire charges size bytes to tag. Going over the limit is fatal.
func (g *Guarded) Acquire(size int, tag string) {
	g.mu.Lock()
	if g.limit > 0 && g.inUse+int64(size) > g.limit {
		inUse, limit := g.inUse, g.limit
		g.mu.Unlock()
		fatalf(ErrOutOfMemory, "%s: %d bytes requested, %d of %d in use", tag, size, inUse, limit)
	}

	g.inUse += int64(size)
	g.blocks++
	if g.inUse > g.peak {
		g.peak = g.inUse
	}

	u := g.tags[tag]
	if u == nil {
		u = &Usage{Tag: tag}
		g.tags[tag] = u
	}
	u.Bytes += int64(size)
	u.Blocks++
	g.mu.Unlock()
}

// Release gives size bytes charged to tag back.
func (g *Guarded) Release(size int, tag string) {
	g.mu.Lock()
	g.inUse -= int64(size)
	g.blocks--
	if u := g.tags[tag]; u != nil {
		u.Bytes -= int64(size)
		u.Blocks--
		if u.Blocks == 0 && u.Bytes == 0 {
			delete(g.tags, tag)
		}
	}
	g.mu.Unlock()
}

// InUse returns the bytes currently charged.
func (g *Guarded) InUse() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.inUse
}

// Blocks returns the number of blocks currently charged.
func (g *Guarded) Blocks() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.blocks
}

// Peak returns the highest InUse seen since creation or the last ResetPeak.
func (g *Guarded) Peak() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.peak
}

// ResetPeak sets the peak to the current usage.
func (g *Guarded) ResetPeak() {
	g.mu.Lock()
	g.peak = g.inUse
	g.mu.Unlock()
}

// Stats returns a snapshot of the counters.
func (g *Guarded) Stats() GuardedStats {
	g.mu.Lock()
	defer g.mu.Unlock()
	return GuardedStats{InUse: g.inUse, Blocks: g.blocks, Peak: g.peak, Limit: g.limit}
}

// Leaks returns the outstanding usage per tag, sorted by tag.
func (g *Guarded) Leaks() []Usage {
	g.mu.Lock()
	out := make([]Usage, 0, len(g.tags))
	for _, u := range g.tags {
		out = append(out, *u)
	}
	g.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Tag < out[j].Tag })
	return out
}

// LogLeaks writes one warning per tag that still holds memory and returns
// the number of such tags. A nil logger uses slog.Default.
func (g *Guarded) LogLeaks(logger *slog.Logger) int {
	if logger == nil {
		logger = slog.Default()
	}
	leaks := g.Leaks()
	for _, u := range leaks {
		logger.LogAttrs(context.Background(), slog.LevelWarn, "unfreed memory",
			slog.String("tag", u.Tag),
			slog.Int64("bytes", u.Bytes),
			slog.Int64("blocks", u.Blocks),
		)
	}
	return len(leaks)
}
