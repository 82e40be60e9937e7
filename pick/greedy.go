package pick

import (
	"math"
	"math/rand"
)

// greedySelect is the constructive max-min heuristic.
//
// The first index is picked uniformly at random; every further step adds
// the index whose distance to its *nearest* already-selected member is
// largest, ties broken by the first index in ascending order. The nearest
// distances are maintained incrementally, so each step is O(n) instead of
// the naive O(n·k).
//
// Contracts: 1 ≤ k ≤ p.Size(); rng non-nil.
//
// Complexity: O(n·k) time, O(n) space.
func greedySelect(p *Pool, k int, rng *rand.Rand) ([]int, float64) {
	n := p.Size()

	selected := make([]int, 0, k)
	inSel := make([]bool, n)

	first := rng.Intn(n)
	selected = append(selected, first)
	inSel[first] = true

	// nearest[i] = distance from i to its closest selected member.
	nearest := make([]float64, n)

	var i int
	for i = 0; i < n; i++ {
		nearest[i] = p.Distance(i, first)
	}

	var (
		best     int
		bestDist float64
		d        float64
	)
	for len(selected) < k {
		best, bestDist = -1, math.Inf(-1)
		for i = 0; i < n; i++ {
			if inSel[i] {
				continue
			}
			if nearest[i] > bestDist {
				best, bestDist = i, nearest[i]
			}
		}

		selected = append(selected, best)
		inSel[best] = true

		for i = 0; i < n; i++ {
			if inSel[i] {
				continue
			}
			if d = p.Distance(i, best); d < nearest[i] {
				nearest[i] = d
			}
		}
	}

	return selected, minPairwiseDistance(p, selected)
}
