package pick

import (
	"math"
	"math/rand"
)

// antColonySelect builds selections with per-index pheromone trails.
//
// One pheromone value per pool index, initialized to 1.0. Each iteration,
// every ant builds a size-k tour: first index uniform random, each further
// index drawn by roulette over
//
//	pheromone[i]^alpha · (min distance from i to the tour)^beta
//
// among the unchosen, falling back to a uniform draw when all weights are
// zero. After all ants finish, pheromones evaporate by (1−EvaporationRate)
// and every index of every complete tour deposits 1/k. The best complete
// tour across all iterations (min pairwise distance, ties to the earliest
// ant) wins; if none ever completed, a random k-subset is returned.
//
// Contracts: 1 ≤ k ≤ p.Size(); options normalized; rng non-nil.
//
// Complexity: O(Iterations·NumAnts·(n·k + k²)) time, O(n) space per tour.
func antColonySelect(p *Pool, k int, o AntColonyOptions, workers int, rng *rand.Rand) ([]int, float64) {
	n := p.Size()

	pher := make([]float64, n)
	for i := range pher {
		pher[i] = 1.0
	}

	var (
		best    []int
		bestFit = math.Inf(-1)
	)

	tours := make([][]int, o.NumAnts)
	for it := 0; it < o.Iterations; it++ {
		for ant := 0; ant < o.NumAnts; ant++ {
			tours[ant] = buildAntTour(p, k, pher, o, rng)
		}

		// Shared state (best, pheromones) updates only after the round.
		fits := evalMinPairwise(p, tours, workers)
		for i, tour := range tours {
			if len(tour) == k && fits[i] > bestFit {
				best = append(best[:0], tour...)
				bestFit = fits[i]
			}
		}

		for i := range pher {
			pher[i] *= 1 - o.EvaporationRate
		}
		deposit := 1.0 / float64(k)
		for _, tour := range tours {
			if len(tour) != k {
				continue
			}
			for _, idx := range tour {
				pher[idx] += deposit
			}
		}
	}

	if best == nil {
		best = sampleWithoutReplacement(n, k, rng)
		bestFit = minPairwiseDistance(p, best)
	}

	return best, bestFit
}

// buildAntTour constructs one size-k tour for a single ant.
func buildAntTour(p *Pool, k int, pher []float64, o AntColonyOptions, rng *rand.Rand) []int {
	n := p.Size()

	tour := make([]int, 0, k)
	inTour := make([]bool, n)

	first := rng.Intn(n)
	tour = append(tour, first)
	inTour[first] = true

	// nearest[i] = min distance from i to the tour so far (the heuristic).
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
	for len(tour) < k {
		total = 0
		for i = 0; i < n; i++ {
			weights[i] = 0
			if inTour[i] {
				continue
			}
			weights[i] = math.Pow(pher[i], o.PheromoneImportance) *
				math.Pow(nearest[i], o.HeuristicImportance)
			total += weights[i]
		}

		if total == 0 {
			next = nthUnselected(inTour, rng.Intn(n-len(tour)))
		} else {
			next = rouletteWheel(weights, total, rng)
		}

		tour = append(tour, next)
		inTour[next] = true

		for i = 0; i < n; i++ {
			if inTour[i] {
				continue
			}
			if d = p.Distance(i, next); d < nearest[i] {
				nearest[i] = d
			}
		}
	}

	return tour
}
