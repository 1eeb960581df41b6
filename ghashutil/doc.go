// Package ghashutil provides stock hash and equality functions for the key
// types tables are most often built on: pointers, strings, integers, fixed
// arrays of four words and pointer pairs.
//
// Each key kind comes as a plain function (PtrHash, StrHash, IntHash, ...)
// and as a hasher value with Hash and Equal methods that satisfies
// ghash.Hasher. Equal returns true when the keys are equal.
//
// The murmur, xxhash and case-folding variants trade speed for a better
// spread or for case-insensitive keys. None of the functions keep state,
// except that the Fold hasher is not safe for concurrent use.
package ghashutil
