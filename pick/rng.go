// SPDX-License-Identifier: MIT

// Package pick - RNG utilities shared by the stochastic strategies.
//
// This file centralizes deterministic random generation:
//   - Determinism: same seed ⇒ identical selections across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources anywhere.
//   - Safety: no panics, no logging.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. The parallel fitness workers
//     never touch the RNG; every draw happens on the dispatching goroutine.
package pick

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass Seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// sampleWithoutReplacement returns a uniform random k-subset of [0,n) via a
// partial Fisher–Yates shuffle: after k swap steps the first k slots hold a
// uniformly distributed k-subset.
//
// Contracts: 0 ≤ k ≤ n; rng non-nil.
//
// Complexity: O(n) time, O(n) space.
func sampleWithoutReplacement(n, k int, rng *rand.Rand) []int {
	idx := make([]int, n)

	var i int
	for i = 0; i < n; i++ {
		idx[i] = i
	}

	var j int
	for i = 0; i < k; i++ {
		j = i + rng.Intn(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}

	return idx[:k:k]
}
