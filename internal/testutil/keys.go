package testutil

import (
	"fmt"
	"math/rand/v2"
)

// Words is the small fixed vocabulary the table tests insert and look up.
var Words = []string{
	"peach", "genesis", "cronos", "rose", "loom", "lantern", "ember", "mossy",
}

// Seeded returns a deterministic generator so failures reproduce.
func Seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// PickWords returns n words drawn with replacement from vocab.
func PickWords(rng *rand.Rand, vocab []string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = vocab[rng.IntN(len(vocab))]
	}
	return out
}

// DistinctKeys returns n distinct strings with a common prefix.
func DistinctKeys(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s-%06d", prefix, i)
	}
	return out
}
