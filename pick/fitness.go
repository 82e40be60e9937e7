// SPDX-License-Identifier: MIT

// Package pick - shared selection primitives.
//
// Fitness evaluation (min/sum pairwise distance), roulette-wheel sampling,
// O(1)-membership helpers, and bounded-worker evaluation of whole
// populations. Everything here is deterministic given the rng draws, and
// the parallel path is draw-for-draw identical to the serial one: workers
// evaluate pure functions only, aggregation happens after the full round,
// and ties reduce to the first index in enumeration order.
package pick

import (
	"math"
	"math/rand"

	"github.com/sourcegraph/conc/pool"
)

// roundScale stabilizes reported fitness to 1e-9 to avoid cross-platform
// floating-point drift without affecting comparisons.
const roundScale = 1e9

// round1e9 rounds v to 9 decimal places. ±Inf passes through unchanged.
func round1e9(v float64) float64 {
	if math.IsInf(v, 0) {
		return v
	}

	return math.Round(v*roundScale) / roundScale
}

// minPairwiseDistance returns the minimum Delta E over all unordered pairs
// of sel, or +Inf when the selection has fewer than two members (the
// objective is undefined there; +Inf is a sentinel, never a final answer
// for k ≥ 2).
//
// Complexity: O(k²).
func minPairwiseDistance(p *Pool, sel []int) float64 {
	best := math.Inf(1)

	var (
		i, j int
		d    float64
	)
	for i = 0; i < len(sel)-1; i++ {
		for j = i + 1; j < len(sel); j++ {
			d = p.Distance(sel[i], sel[j])
			if d < best {
				best = d
			}
		}
	}

	return best
}

// sumPairwiseDistance returns the summed Delta E over all unordered pairs
// of sel; +Inf for selections smaller than two, mirroring the min variant.
//
// Complexity: O(k²).
func sumPairwiseDistance(p *Pool, sel []int) float64 {
	if len(sel) < 2 {
		return math.Inf(1)
	}

	var (
		i, j int
		sum  float64
	)
	for i = 0; i < len(sel)-1; i++ {
		for j = i + 1; j < len(sel); j++ {
			sum += p.Distance(sel[i], sel[j])
		}
	}

	return sum
}

// rouletteWheel draws one index with probability proportional to its
// weight. Weights must be non-negative and total must be their sum (> 0).
// Zero-weight entries are never selected. The cumulative scan with a
// single uniform draw is the standard formulation; it cannot land on a
// skipped (zero-weight) index even when the remaining mass hits zero.
//
// Complexity: O(len(weights)).
func rouletteWheel(weights []float64, total float64, rng *rand.Rand) int {
	r := rng.Float64() * total

	var (
		acc  float64
		last = -1
	)
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		last = i
		acc += w
		if r < acc {
			return i
		}
	}

	// Numeric tail: rounding can leave r a hair above the final cumulative
	// sum; the last positive-weight index absorbs it.
	return last
}

// nthUnselected returns the index of the t-th (0-based) position whose
// inSel flag is false. Combined with rng.Intn(freeCount) this yields a
// uniform draw among unselected indices without materializing a list.
//
// Contracts: t < number of false entries.
//
// Complexity: O(n).
func nthUnselected(inSel []bool, t int) int {
	for i, used := range inSel {
		if used {
			continue
		}
		if t == 0 {
			return i
		}
		t--
	}

	// Unreachable under the contract; -1 would crash the caller loudly.
	return -1
}

// bestIndex returns the position of the maximum fitness, breaking ties by
// the first index in enumeration order. The fixed tie-break keeps parallel
// and serial evaluation bit-identical.
//
// Complexity: O(len(fits)).
func bestIndex(fits []float64) int {
	best := 0

	for i := 1; i < len(fits); i++ {
		if fits[i] > fits[best] {
			best = i
		}
	}

	return best
}

// evalMinPairwise evaluates minPairwiseDistance for every member of the
// population. With workers > 1 the evaluations run on a bounded worker
// pool; each is a pure function of read-only state, and the caller only
// observes the result after Wait, so the outcome matches the serial path.
//
// Complexity: O(len(population)·k²) work either way.
func evalMinPairwise(p *Pool, population [][]int, workers int) []float64 {
	out := make([]float64, len(population))

	if workers <= 1 || len(population) < 2 {
		for i, sel := range population {
			out[i] = minPairwiseDistance(p, sel)
		}

		return out
	}

	wp := pool.New().WithMaxGoroutines(workers)
	for i, sel := range population {
		i, sel := i, sel
		wp.Go(func() { out[i] = minPairwiseDistance(p, sel) })
	}
	wp.Wait()

	return out
}
