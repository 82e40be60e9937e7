package pick

import (
	"math"
	"math/rand"
)

// annealingSelect is simulated annealing over single-swap neighborhoods.
//
// Start from a random k-subset. Each step proposes a neighbor by swapping
// one selected slot for a uniformly random unselected index; the proposal
// is accepted on strict improvement, or with Metropolis probability
// exp(Δ/T) when it worsens (Δ ≤ 0). The temperature is multiplied by
// CoolingRate each step and the loop stops at MaxIterations or once
// T ≤ MinTemp. The best-ever selection is tracked independently of the
// (possibly worse) current state and is what gets returned.
//
// Contracts: 1 ≤ k ≤ p.Size(); options normalized; rng non-nil.
//
// Complexity: O(MaxIterations·k²) time, O(n) space.
func annealingSelect(p *Pool, k int, o AnnealingOptions, rng *rand.Rand) ([]int, float64) {
	n := p.Size()

	cur := sampleWithoutReplacement(n, k, rng)
	inCur := make([]bool, n)
	for _, idx := range cur {
		inCur[idx] = true
	}
	curFit := minPairwiseDistance(p, cur)

	best := append([]int(nil), cur...)
	bestFit := curFit

	neighbor := make([]int, k)
	temp := o.InitialTemp

	var (
		slot  int
		repl  int
		nFit  float64
		delta float64
	)
	for it := 0; it < o.MaxIterations; it++ {
		if temp <= o.MinTemp {
			break
		}

		// Neighbor: replace one slot with a uniform unselected index.
		slot = rng.Intn(k)
		if n == k {
			// No unselected index exists; the chain cannot move.
			break
		}
		repl = nthUnselected(inCur, rng.Intn(n-k))

		copy(neighbor, cur)
		neighbor[slot] = repl
		nFit = minPairwiseDistance(p, neighbor)

		delta = nFit - curFit
		if delta > 0 || rng.Float64() < math.Exp(delta/temp) {
			inCur[cur[slot]] = false
			inCur[repl] = true
			cur[slot] = repl
			curFit = nFit

			if curFit > bestFit {
				copy(best, cur)
				bestFit = curFit
			}
		}

		temp *= o.CoolingRate
	}

	return best, bestFit
}
