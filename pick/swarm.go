package pick

import "math/rand"

// swarmSelect is a discrete particle swarm relaxation.
//
// Each particle holds a k-subset as its position. Per iteration: evaluate
// every position, update particle bests and the global best (only after
// the full round, ties to the first particle), then perturb each position
// slot-by-slot — with probability ½ a slot is replaced by a uniform random
// unselected index. This replaces the continuous velocity update; the
// inertia/cognitive/social weights are carried in SwarmOptions for
// configuration symmetry but do not gate the discrete move.
//
// Contracts: 1 ≤ k ≤ p.Size(); options normalized; rng non-nil.
//
// Complexity: O(Iterations·NumParticles·(k² + n)) time.
func swarmSelect(p *Pool, k int, o SwarmOptions, workers int, rng *rand.Rand) ([]int, float64) {
	n := p.Size()

	positions := make([][]int, o.NumParticles)
	inPos := make([][]bool, o.NumParticles)
	pbest := make([][]int, o.NumParticles)
	pbestFit := make([]float64, o.NumParticles)

	for i := range positions {
		positions[i] = sampleWithoutReplacement(n, k, rng)
		inPos[i] = make([]bool, n)
		for _, idx := range positions[i] {
			inPos[i][idx] = true
		}
		pbest[i] = append([]int(nil), positions[i]...)
		pbestFit[i] = minPairwiseDistance(p, positions[i])
	}

	gi := bestIndex(pbestFit)
	gbest := append([]int(nil), pbest[gi]...)
	gbestFit := pbestFit[gi]

	for it := 0; it < o.Iterations; it++ {
		fits := evalMinPairwise(p, positions, workers)

		// Aggregate state updates happen only after the round completes.
		for i := range positions {
			if fits[i] > pbestFit[i] {
				copy(pbest[i], positions[i])
				pbestFit[i] = fits[i]

				if fits[i] > gbestFit {
					copy(gbest, positions[i])
					gbestFit = fits[i]
				}
			}
		}

		// Discrete move; sequential so the rng draw order is fixed.
		if n == k {
			continue // no unselected index to move to
		}
		for i := range positions {
			for s := 0; s < k; s++ {
				if rng.Float64() >= 0.5 {
					continue
				}
				repl := nthUnselected(inPos[i], rng.Intn(n-k))
				inPos[i][positions[i][s]] = false
				inPos[i][repl] = true
				positions[i][s] = repl
			}
		}
	}

	return gbest, gbestFit
}
