package pick

import "math"

// tabuMove identifies a single-index swap: out leaves the selection, in
// enters. The reverse of an applied move is what gets forbidden.
type tabuMove struct {
	out, in int
}

// tabuSelect is best-swap tabu search with an aspiration criterion.
//
// Start from the first k pool indices. Each iteration examines every
// single-index swap (one selected slot against one unselected index) and
// applies the best admissible one: a swap is admissible when its move is
// not currently tabu, or — aspiration — when its fitness would beat the
// global best found so far. The applied swap's reverse becomes tabu for
// Tenure further iterations; entries whose bound has passed are expired
// each round. The loop stops at MaxIterations or when no candidate swap
// exists (k == pool size).
//
// Membership tests use a boolean array sized to the pool, keeping the
// O(k·n) scan per iteration free of list searches.
//
// Contracts: 1 ≤ k ≤ p.Size(); options normalized.
//
// Complexity: O(MaxIterations·k·n·k²) time, O(n) space.
func tabuSelect(p *Pool, k int, o TabuOptions) ([]int, float64) {
	n := p.Size()

	cur := make([]int, k)
	inCur := make([]bool, n)
	for i := 0; i < k; i++ {
		cur[i] = i
		inCur[i] = true
	}

	best := append([]int(nil), cur...)
	bestFit := minPairwiseDistance(p, cur)

	tabu := make(map[tabuMove]int) // move → iteration bound (exclusive)
	scratch := make([]int, k)

	var (
		slot, cand int
		fit        float64
		nbFit      float64
		nbSlot     int
		nbCand     int
		found      bool
	)
	for it := 0; it < o.MaxIterations; it++ {
		// Expire entries whose iteration bound has passed.
		for mv, bound := range tabu {
			if bound <= it {
				delete(tabu, mv)
			}
		}

		nbFit, found = math.Inf(-1), false
		for slot = 0; slot < k; slot++ {
			for cand = 0; cand < n; cand++ {
				if inCur[cand] {
					continue
				}

				copy(scratch, cur)
				scratch[slot] = cand
				fit = minPairwiseDistance(p, scratch)

				bound, isTabu := tabu[tabuMove{out: cur[slot], in: cand}]
				if isTabu && bound > it && fit <= bestFit {
					continue // tabu and no aspiration
				}
				if !found || fit > nbFit {
					nbFit, nbSlot, nbCand = fit, slot, cand
					found = true
				}
			}
		}

		if !found {
			break // no candidate move exists
		}

		applied := tabuMove{out: cur[nbSlot], in: nbCand}
		inCur[cur[nbSlot]] = false
		inCur[nbCand] = true
		cur[nbSlot] = nbCand

		if nbFit > bestFit {
			copy(best, cur)
			bestFit = nbFit
		}

		// Forbid the reverse move for Tenure further iterations.
		tabu[tabuMove{out: applied.in, in: applied.out}] = it + o.Tenure
	}

	return best, bestFit
}
