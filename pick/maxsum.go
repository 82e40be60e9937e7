package pick

import (
	"math"
	"math/rand"
	"sort"
)

// maxSumGlobalSelect ranks every index once by its total distance to all
// other pool members and takes the top k. No incremental interaction
// modeling; a single pass plus a sort. Deterministic: equal totals keep
// ascending index order (stable sort).
//
// Complexity: O(n²) distance work + O(n log n) sort.
func maxSumGlobalSelect(p *Pool, k int) ([]int, float64) {
	n := p.Size()

	totals := make([]float64, n)

	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d := p.Distance(i, j)
			totals[i] += d
			totals[j] += d
		}
	}

	order := make([]int, n)
	for i = 0; i < n; i++ {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return totals[order[a]] > totals[order[b]]
	})

	selected := append([]int(nil), order[:k]...)

	return selected, sumPairwiseDistance(p, selected)
}

// maxSumSequentialSelect grows the selection like greedySelect, but the
// incremental score is the *sum* of distances to the already-selected
// members rather than the minimum. First pick is uniform random; ties
// break to the first index in ascending order.
//
// Complexity: O(n·k) time, O(n) space.
func maxSumSequentialSelect(p *Pool, k int, rng *rand.Rand) ([]int, float64) {
	n := p.Size()

	selected := make([]int, 0, k)
	inSel := make([]bool, n)

	first := rng.Intn(n)
	selected = append(selected, first)
	inSel[first] = true

	// sums[i] = total distance from i to the selected members so far.
	sums := make([]float64, n)

	var i int
	for i = 0; i < n; i++ {
		sums[i] = p.Distance(i, first)
	}

	var (
		best    int
		bestSum float64
	)
	for len(selected) < k {
		best, bestSum = -1, math.Inf(-1)
		for i = 0; i < n; i++ {
			if inSel[i] {
				continue
			}
			if sums[i] > bestSum {
				best, bestSum = i, sums[i]
			}
		}

		selected = append(selected, best)
		inSel[best] = true

		for i = 0; i < n; i++ {
			if inSel[i] {
				continue
			}
			sums[i] += p.Distance(i, best)
		}
	}

	return selected, sumPairwiseDistance(p, selected)
}
