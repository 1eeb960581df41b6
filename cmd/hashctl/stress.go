package main

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/joshuapare/hashkit/ghash"
	"github.com/joshuapare/hashkit/memguard"
)

var (
	stressN        int
	stressSeed     uint64
	stressAlphabet int
	stressShrink   bool
)

// errMismatch reports that the table disagreed with the built-in map.
var errMismatch = errors.New("table disagrees with reference map")

func init() {
	cmd := newStressCmd()
	cmd.Flags().IntVar(&stressN, "n", 16384, "Number of random operations")
	cmd.Flags().Uint64Var(&stressSeed, "seed", 1, "Random seed")
	cmd.Flags().IntVar(&stressAlphabet, "alphabet", 8, "Number of distinct keys and values")
	cmd.Flags().BoolVar(&stressShrink, "shrink", false, "Allow the table to shrink")
	rootCmd.AddCommand(cmd)
}

func newStressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stress",
		Short: "Compare a table against the built-in map under random load",
		Long: `The stress command applies --n random reinserts and removes drawn from a
small alphabet of keys to both a table and a built-in map, then checks that
they hold the same entries and that the table passes verification.

Example:
  hashctl stress
  hashctl stress --n 1000000 --alphabet 5000 --shrink --seed 42`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStress(stressN, stressSeed, stressAlphabet, stressShrink)
		},
	}
}

type stressResult struct {
	Ops      int
	Seed     uint64
	Alphabet int
	Len      int
	Table    ghash.Stats
}

func runStress(n int, seed uint64, alphabet int, shrink bool) error {
	if alphabet <= 0 {
		return fmt.Errorf("--alphabet must be positive, got %d", alphabet)
	}

	words := make([]string, alphabet)
	for i := range words {
		words[i] = fmt.Sprintf("w%d", i)
	}

	g := memguard.NewGuarded()
	opts := []ghash.Option{ghash.WithAllocator(g), ghash.WithLogger(logger)}
	if shrink {
		opts = append(opts, ghash.WithShrink())
	}
	m := ghash.NewStrMap[string]("hashctl stress", opts...)
	defer func() {
		m.Free(nil, nil)
		g.LogLeaks(logger)
	}()

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	ref := make(map[string]string)
	for i := 0; i < n; i++ {
		key := words[rng.IntN(alphabet)]
		if rng.IntN(4) == 0 {
			_, had := ref[key]
			if removed := m.Remove(key, nil, nil); removed != had {
				return fmt.Errorf("%w: remove %q at op %d returned %v", errMismatch, key, i, removed)
			}
			delete(ref, key)
			continue
		}
		val := words[rng.IntN(alphabet)]
		m.Reinsert(key, val, nil, nil)
		ref[key] = val
	}
	printVerbose("Applied %d operations\n", n)

	if m.Len() != len(ref) {
		return fmt.Errorf("%w: table holds %d entries, map holds %d", errMismatch, m.Len(), len(ref))
	}
	for k, want := range ref {
		got, ok := m.Lookup(k)
		if !ok || got != want {
			return fmt.Errorf("%w: key %q has %q (present %v), want %q", errMismatch, k, got, ok, want)
		}
	}
	if err := m.Verify(); err != nil {
		return fmt.Errorf("verify: %w", err)
	}

	res := stressResult{Ops: n, Seed: seed, Alphabet: alphabet, Len: m.Len(), Table: m.Stats()}
	if jsonOut {
		return printJSON(res)
	}
	printInfo("OK: %d operations, seed %d, %d keys live\n", res.Ops, res.Seed, res.Len)
	printInfo("  %s\n", res.Table)
	return nil
}
