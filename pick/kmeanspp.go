package pick

import "math/rand"

// kmeansPPSelect seeds k centers the k-means++ way.
//
// The first center is uniform random. Each subsequent center is drawn with
// probability proportional to the *squared* distance to its nearest
// already-chosen center (roulette wheel over unselected indices); when all
// remaining squared distances are zero the draw falls back to a uniform
// choice among the unselected.
//
// The roulette wheel here is the standard cumulative-sum formulation, not
// the original's cursor loop, which could land on an already-selected
// index when the remaining mass hit exactly zero mid-scan.
//
// Contracts: 1 ≤ k ≤ p.Size(); rng non-nil.
//
// Complexity: O(n·k) time, O(n) space.
func kmeansPPSelect(p *Pool, k int, rng *rand.Rand) ([]int, float64) {
	n := p.Size()

	selected := make([]int, 0, k)
	inSel := make([]bool, n)

	first := rng.Intn(n)
	selected = append(selected, first)
	inSel[first] = true

	// nearest[i] = distance from i to its closest chosen center.
	nearest := make([]float64, n)

	var i int
	for i = 0; i < n; i++ {
		nearest[i] = p.Distance(i, first)
	}

	weights := make([]float64, n)

	var (
		total float64
		next  int
		d     float64
	)
	for len(selected) < k {
		total = 0
		for i = 0; i < n; i++ {
			weights[i] = 0
			if inSel[i] {
				continue
			}
			weights[i] = nearest[i] * nearest[i]
			total += weights[i]
		}

		if total == 0 {
			// Degenerate pool (duplicates only): uniform among unselected.
			next = nthUnselected(inSel, rng.Intn(n-len(selected)))
		} else {
			next = rouletteWheel(weights, total, rng)
		}

		selected = append(selected, next)
		inSel[next] = true

		for i = 0; i < n; i++ {
			if inSel[i] {
				continue
			}
			if d = p.Distance(i, next); d < nearest[i] {
				nearest[i] = d
			}
		}
	}

	return selected, minPairwiseDistance(p, selected)
}
