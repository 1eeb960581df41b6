package ghash

// hashSizes is the approved sequence of bucket counts: the next prime after
// each power of two, skipping 2 and 3.
var hashSizes = [...]uint32{
	5, 11, 17, 37, 67, 131, 257, 521, 1031, 2053, 4099, 8209, 16411, 32771,
	65537, 131101, 262147, 524309, 1048583, 2097169, 4194319, 8388617, 16777259,
	33554467, 67108879, 134217757, 268435459,
}

// maxSize is the number of entries in hashSizes.
const maxSize = uint32(len(hashSizes))

// limitGrow is the entry count above which a table of nbuckets grows.
func limitGrow(nbuckets uint32) uint32 { return nbuckets * 3 / 4 }

// limitShrink is the entry count below which a table of nbuckets may shrink.
// The gap to limitGrow keeps interleaved inserts and removes at a boundary
// from resizing back and forth.
func limitShrink(nbuckets uint32) uint32 { return nbuckets * 3 / 16 }

// Size describes one step of the bucket-count sequence.
type Size struct {
	Index       int
	Buckets     uint32
	GrowLimit   uint32
	ShrinkLimit uint32
}

// Sizes returns the bucket-count sequence with its thresholds.
func Sizes() []Size {
	out := make([]Size, len(hashSizes))
	for i, nb := range hashSizes {
		out[i] = Size{Index: i, Buckets: nb, GrowLimit: limitGrow(nb), ShrinkLimit: limitShrink(nb)}
	}
	return out
}
