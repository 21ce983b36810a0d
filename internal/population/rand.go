package population

import "math/rand"

// All randomness flows through one *rand.Rand owned by the generator; draws
// are ordered and sequential so a fixed seed reproduces an identical
// population. Helpers below mirror the draw primitives the pipeline needs.

// probability reports a Bernoulli draw with probability p.
func probability(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}

// choice returns a uniformly random element of s. Callers never pass empty
// slices; all enumerations are statically non-empty.
func choice[T any](rng *rand.Rand, s []T) T {
	return s[rng.Intn(len(s))]
}

// randRange returns a uniform integer in [lo, hi], both inclusive.
func randRange(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

// sample returns k elements of s drawn without replacement, clamping k to
// len(s). The input slice is not modified.
func sample[T any](rng *rand.Rand, s []T, k int) []T {
	if k > len(s) {
		k = len(s)
	}
	out := make([]T, 0, k)
	for _, i := range rng.Perm(len(s))[:k] {
		out = append(out, s[i])
	}
	return out
}
