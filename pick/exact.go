package pick

import (
	"math"

	"gonum.org/v1/gonum/stat/combin"
)

// exactSelect enumerates every k-combination of pool indices in
// lexicographic order, keeping the one with the largest minimum pairwise
// distance (strict improvement, so the lexicographically first optimum
// wins). Provably optimal under the min-pairwise objective and fully
// deterministic — no rng.
//
// Exponential: C(n,k) combinations, O(k²) each. Intended for small pools.
//
// Contracts: 1 ≤ k ≤ p.Size().
func exactSelect(p *Pool, k int) ([]int, float64) {
	n := p.Size()

	gen := combin.NewCombinationGenerator(n, k)
	sel := make([]int, k)
	best := make([]int, k)
	bestFit := math.Inf(-1)

	for gen.Next() {
		gen.Combination(sel)
		if fit := minPairwiseDistance(p, sel); fit > bestFit {
			copy(best, sel)
			bestFit = fit
		}
	}

	return best, bestFit
}
