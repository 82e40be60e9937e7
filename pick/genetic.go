package pick

import "math/rand"

// geneticSelect evolves a population of k-subsets.
//
// Each generation: evaluate every individual (min pairwise distance),
// update the best-ever individual, then breed a full replacement
// population. Parents come from size-3 tournaments over the current
// fitness values; crossover unions a random prefix of parent 1 with the
// complementary suffix of parent 2, deduplicates preserving order, pads
// with random unused indices up to k and truncates defensively; each child
// then mutates one random slot with probability MutationRate.
//
// Fitness evaluation may fan out to workers; breeding stays sequential so
// the rng draw order is fixed.
//
// Contracts: 1 ≤ k ≤ p.Size(); options normalized; rng non-nil.
//
// Complexity: O(Generations·PopulationSize·k²) time.
func geneticSelect(p *Pool, k int, o GeneticOptions, workers int, rng *rand.Rand) ([]int, float64) {
	n := p.Size()

	population := make([][]int, o.PopulationSize)
	for i := range population {
		population[i] = sampleWithoutReplacement(n, k, rng)
	}

	best := append([]int(nil), population[0]...)
	bestFit := minPairwiseDistance(p, best)

	for gen := 0; gen < o.Generations; gen++ {
		fits := evalMinPairwise(p, population, workers)

		// Reduce after the full round; ties go to the first index.
		if bi := bestIndex(fits); fits[bi] > bestFit {
			copy(best, population[bi])
			bestFit = fits[bi]
		}

		next := make([][]int, 0, o.PopulationSize)
		for len(next) < o.PopulationSize {
			p1 := population[tournament(fits, rng)]
			p2 := population[tournament(fits, rng)]

			child, used := crossover(p1, p2, k, n, rng)
			if rng.Float64() < o.MutationRate {
				mutate(child, used, n, rng)
			}

			next = append(next, child)
		}
		population = next
	}

	return best, bestFit
}

// tournament draws tournamentSize random population positions and returns
// the fittest one, ties broken by the earliest draw.
func tournament(fits []float64, rng *rand.Rand) int {
	best := rng.Intn(len(fits))

	for t := 1; t < tournamentSize; t++ {
		c := rng.Intn(len(fits))
		if fits[c] > fits[best] {
			best = c
		}
	}

	return best
}

// crossover builds a child from parent1[:cut] ∪ parent2[cut:], cut uniform
// in [0,k), deduplicating in encounter order, padding with random unused
// indices up to k, truncating if ever too large. The returned used slice
// marks exactly the child's members (the mutation step reuses it).
func crossover(parent1, parent2 []int, k, n int, rng *rand.Rand) ([]int, []bool) {
	cut := rng.Intn(k)

	child := make([]int, 0, k)
	used := make([]bool, n)

	for _, g := range parent1[:cut] {
		if !used[g] {
			used[g] = true
			child = append(child, g)
		}
	}
	for _, g := range parent2[cut:] {
		if !used[g] {
			used[g] = true
			child = append(child, g)
		}
	}

	for len(child) < k {
		g := nthUnselected(used, rng.Intn(n-len(child)))
		used[g] = true
		child = append(child, g)
	}

	return child[:k], used
}

// mutate replaces one random slot with a uniform unused index. No-op when
// every pool index is already in the child (n == k).
func mutate(child []int, used []bool, n int, rng *rand.Rand) {
	if n == len(child) {
		return
	}

	slot := rng.Intn(len(child))
	repl := nthUnselected(used, rng.Intn(n-len(child)))

	used[child[slot]] = false
	used[repl] = true
	child[slot] = repl
}
