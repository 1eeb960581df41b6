package main

import (
	"fmt"
	"time"

	"github.com/joshuapare/hashkit/ghash"
	"github.com/joshuapare/hashkit/ghashutil"
	"github.com/joshuapare/hashkit/memguard"
)

// workloadConfig selects the keys and hasher a command runs with.
type workloadConfig struct {
	N      int
	Keys   string // "str" or "int"
	Hasher string // see strHasher and intHasher
	Shrink bool
}

// workloadResult is what bench and inspect report.
type workloadResult struct {
	Keys      string
	Hasher    string
	N         int
	Insert    time.Duration
	Lookup    time.Duration
	Remove    time.Duration
	Misses    int
	Table     ghash.Stats
	PeakBytes int64
}

func strHasher(name string) (ghash.Hasher[string], error) {
	switch name {
	case "djb", "":
		return ghashutil.Str(), nil
	case "murmur":
		return ghashutil.StrMurmur(), nil
	case "xx":
		return ghashutil.StrXX(), nil
	case "fold":
		return ghashutil.StrFold(), nil
	case "fnvfold":
		return ghashutil.StrFNVFold(), nil
	}
	return nil, fmt.Errorf("unknown string hasher %q (want djb, murmur, xx, fold or fnvfold)", name)
}

func intHasher(name string) (ghash.Hasher[int], error) {
	switch name {
	case "wang", "djb", "":
		return ghashutil.Int[int](), nil
	case "murmur":
		return ghashutil.IntMurmur[int](), nil
	}
	return nil, fmt.Errorf("unknown int hasher %q (want wang or murmur)", name)
}

func (c workloadConfig) options(g *memguard.Guarded) []ghash.Option {
	opts := []ghash.Option{ghash.WithAllocator(g), ghash.WithLogger(logger)}
	if c.Shrink {
		opts = append(opts, ghash.WithShrink())
	}
	return opts
}

// runWorkload inserts, looks up and removes cfg.N keys, timing each phase.
// When keep is set the table is measured before removal instead.
func runWorkload(cfg workloadConfig, keep bool) (workloadResult, error) {
	if cfg.N < 0 {
		return workloadResult{}, fmt.Errorf("--n must not be negative, got %d", cfg.N)
	}

	switch cfg.Keys {
	case "str", "":
		h, err := strHasher(cfg.Hasher)
		if err != nil {
			return workloadResult{}, err
		}
		keys := make([]string, cfg.N)
		for i := range keys {
			keys[i] = fmt.Sprintf("key-%08d", i)
		}
		return measure(cfg, h, keys, keep), nil
	case "int":
		h, err := intHasher(cfg.Hasher)
		if err != nil {
			return workloadResult{}, err
		}
		keys := make([]int, cfg.N)
		for i := range keys {
			keys[i] = i * 7919
		}
		return measure(cfg, h, keys, keep), nil
	}
	return workloadResult{}, fmt.Errorf("unknown key kind %q (want str or int)", cfg.Keys)
}

func measure[K any](cfg workloadConfig, h ghash.Hasher[K], keys []K, keep bool) workloadResult {
	g := memguard.NewGuarded()
	res := workloadResult{Keys: cfg.Keys, Hasher: cfg.Hasher, N: len(keys)}

	m := ghash.New[K, int](h, "hashctl "+cfg.Keys, cfg.options(g)...)

	start := time.Now()
	for i, k := range keys {
		m.Reinsert(k, i, nil, nil)
	}
	res.Insert = time.Since(start)

	start = time.Now()
	for _, k := range keys {
		if !m.Contains(k) {
			res.Misses++
		}
	}
	res.Lookup = time.Since(start)

	if keep {
		res.Table = m.Stats()
	} else {
		start = time.Now()
		for _, k := range keys {
			m.Remove(k, nil, nil)
		}
		res.Remove = time.Since(start)
		res.Table = m.Stats()
	}

	m.Free(nil, nil)
	res.PeakBytes = g.Peak()
	if n := g.LogLeaks(logger); n > 0 {
		logger.Error("allocator still charged after free", "tags", n)
	}
	return res
}

func perOp(d time.Duration, n int) string {
	if n == 0 {
		return "-"
	}
	return (d / time.Duration(n)).String()
}
