package pick

import (
	"errors"
	"time"

	"github.com/bdamokos/pick-distinct-colors/lab"
)

// ErrInvalidK is returned when k is non-positive or exceeds the pool size.
// Raised once, at the Select dispatch boundary, before any strategy runs.
var ErrInvalidK = errors.New("pick: k must be in 1..pool.Size()")

// ErrUnknownAlgorithm is returned for an Algorithm value outside the
// supported set, or an unrecognized name passed to ParseAlgorithm.
var ErrUnknownAlgorithm = errors.New("pick: unknown selection algorithm")

// ErrNilPool is returned when Select receives a nil pool.
var ErrNilPool = errors.New("pick: nil candidate pool")

// Algorithm enumerates the selection strategies. The set is closed: Select
// dispatches by exhaustive switch, so a mistyped name can only fail at
// ParseAlgorithm, never mid-run.
type Algorithm int

const (
	// Greedy repeatedly adds the index whose distance to its nearest
	// already-selected member is largest. First pick is uniform random.
	Greedy Algorithm = iota

	// MaxSumGlobal ranks every index once by its total distance to all
	// other pool members and takes the top k.
	MaxSumGlobal

	// MaxSumSequential grows the selection by the index with the largest
	// summed distance to the already-selected members.
	MaxSumSequential

	// Annealing is simulated annealing over single-swap neighborhoods with
	// geometric cooling and Metropolis acceptance.
	Annealing

	// KMeansPP seeds centers with probability proportional to the squared
	// distance to the nearest already-chosen center.
	KMeansPP

	// Genetic evolves a population of k-subsets with tournament selection,
	// prefix/suffix crossover and single-slot mutation.
	Genetic

	// Swarm is a discrete particle swarm relaxation: each slot is replaced
	// by a random unselected index with probability ½ per iteration.
	Swarm

	// AntColony builds tours by roulette over pheromone^alpha ·
	// nearest-distance^beta, with evaporation and per-index deposits.
	AntColony

	// Tabu examines every single-index swap per iteration, forbidding
	// reverse moves for a tenure, with a global-best aspiration override.
	Tabu

	// Exact enumerates every k-combination and keeps the best. Exponential;
	// intended for small pools only.
	Exact
)

// algorithmNames maps each Algorithm to its canonical wire name.
var algorithmNames = map[Algorithm]string{
	Greedy:           "greedy",
	MaxSumGlobal:     "max_sum_global",
	MaxSumSequential: "max_sum_sequential",
	Annealing:        "simulated_annealing",
	KMeansPP:         "kmeans_plus_plus",
	Genetic:          "genetic_algorithm",
	Swarm:            "particle_swarm",
	AntColony:        "ant_colony",
	Tabu:             "tabu_search",
	Exact:            "exact_minimum",
}

// String returns the canonical snake_case name of the algorithm.
func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}

	return "unknown"
}

// ParseAlgorithm resolves a canonical name back to its Algorithm value.
// Returns ErrUnknownAlgorithm for anything outside the closed set.
func ParseAlgorithm(name string) (Algorithm, error) {
	for a, n := range algorithmNames {
		if n == name {
			return a, nil
		}
	}

	return 0, ErrUnknownAlgorithm
}

// Result is the assembled outcome of one Select call.
type Result struct {
	// Colors holds the selected colors in canonical order: Lab lightness
	// descending, then a descending, then b descending. The order is a
	// presentation invariant, independent of the order of selection.
	Colors []lab.RGB

	// Fitness is the objective value achieved by the strategy: minimum
	// pairwise Delta E of the selection (summed pairwise distance for the
	// two max-sum strategies). +Inf when the selection has fewer than two
	// members (objective undefined). Stabilized to 1e-9.
	Fitness float64

	// Elapsed is the wall time the strategy ran for.
	Elapsed time.Duration
}

// ElapsedMs reports the run time in (fractional) milliseconds.
func (r Result) ElapsedMs() float64 {
	return float64(r.Elapsed) / float64(time.Millisecond)
}
