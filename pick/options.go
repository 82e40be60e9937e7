// SPDX-License-Identifier: MIT

// Package pick - typed per-strategy configuration.
//
// Design goals:
//   - One explicit options struct per strategy; no string-keyed settings maps.
//   - Every field has a documented default constant; the zero value of
//     Options is fully usable.
//   - Normalization happens once, at dispatch: non-positive fields fall back
//     to their defaults (mirrors the "missing key ⇒ default" contract).
//   - Determinism is explicit: Options.Seed feeds the single RNG stream.
package pick

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultMatrixLimit is the largest pool size for which NewPool
	// precomputes the full O(n²) distance matrix.
	DefaultMatrixLimit = 1024

	// Simulated annealing.
	DefaultAnnealingMaxIterations = 10000
	DefaultAnnealingInitialTemp   = 1000.0
	DefaultAnnealingCoolingRate   = 0.995
	DefaultAnnealingMinTemp       = 0.1

	// Genetic algorithm.
	DefaultGeneticPopulationSize = 100
	DefaultGeneticGenerations    = 100
	DefaultGeneticMutationRate   = 0.1

	// Particle swarm.
	DefaultSwarmParticles       = 30
	DefaultSwarmIterations      = 100
	DefaultSwarmInertiaWeight   = 0.7
	DefaultSwarmCognitiveWeight = 1.5
	DefaultSwarmSocialWeight    = 1.5

	// Ant colony.
	DefaultAntCount               = 20
	DefaultAntIterations          = 100
	DefaultAntEvaporationRate     = 0.1
	DefaultAntPheromoneImportance = 1.0
	DefaultAntHeuristicImportance = 2.0

	// Tabu search.
	DefaultTabuMaxIterations = 1000
	DefaultTabuTenure        = 5
)

// tournamentSize is the fixed GA tournament width.
const tournamentSize = 3

// AnnealingOptions configures the simulated annealing strategy.
type AnnealingOptions struct {
	// MaxIterations caps the proposal loop. Default 10000.
	MaxIterations int
	// InitialTemp is the starting temperature. Default 1000.
	InitialTemp float64
	// CoolingRate multiplies the temperature each step. Default 0.995.
	CoolingRate float64
	// MinTemp stops the run early once reached. Default 0.1.
	MinTemp float64
}

// GeneticOptions configures the genetic algorithm strategy.
type GeneticOptions struct {
	// PopulationSize is the number of k-subsets per generation. Default 100.
	PopulationSize int
	// Generations is the fixed number of evolution rounds. Default 100.
	Generations int
	// MutationRate is the per-child probability of a single-slot mutation.
	// Default 0.1.
	MutationRate float64
}

// SwarmOptions configures the discrete particle swarm strategy.
//
// InertiaWeight, CognitiveWeight and SocialWeight are accepted for
// configuration symmetry with continuous PSO; the discrete relaxation
// replaces slots with probability ½ and does not consult them.
type SwarmOptions struct {
	// NumParticles is the swarm size. Default 30.
	NumParticles int
	// Iterations is the fixed number of swarm rounds. Default 100.
	Iterations int
	// InertiaWeight defaults to 0.7. Not consulted by the discrete move.
	InertiaWeight float64
	// CognitiveWeight defaults to 1.5. Not consulted by the discrete move.
	CognitiveWeight float64
	// SocialWeight defaults to 1.5. Not consulted by the discrete move.
	SocialWeight float64
}

// AntColonyOptions configures the ant colony strategy.
type AntColonyOptions struct {
	// NumAnts is the number of tours built per iteration. Default 20.
	NumAnts int
	// Iterations is the fixed number of colony rounds. Default 100.
	Iterations int
	// EvaporationRate decays all pheromones each round. Default 0.1.
	EvaporationRate float64
	// PheromoneImportance is the pheromone exponent (alpha). Default 1.
	PheromoneImportance float64
	// HeuristicImportance is the distance exponent (beta). Default 2.
	HeuristicImportance float64
}

// TabuOptions configures the tabu search strategy.
type TabuOptions struct {
	// MaxIterations caps the swap loop. Default 1000.
	MaxIterations int
	// Tenure is how many iterations a reverse move stays forbidden.
	// Default 5.
	Tenure int
}

// Options carries the seed, the optional worker budget, and one typed
// sub-configuration per strategy. Each strategy reads only its own section.
//
// AI-Hints:
//   - The zero value runs every strategy with the documented defaults and a
//     fixed deterministic seed; set Seed explicitly for independent runs.
//   - Workers > 1 parallelizes fitness evaluation in Genetic/Swarm/AntColony
//     rounds; results are identical to the serial path for the same seed.
type Options struct {
	// Seed feeds the strategy's RNG stream. 0 selects the fixed default
	// stream (reproducible, not random).
	Seed int64

	// Workers bounds the goroutines used for per-round fitness evaluation
	// in the population strategies. 0 or 1 means serial.
	Workers int

	Annealing AnnealingOptions
	Genetic   GeneticOptions
	Swarm     SwarmOptions
	AntColony AntColonyOptions
	Tabu      TabuOptions
}

// normalized returns a copy with every non-positive field replaced by its
// documented default. Called once per Select; strategies assume sane fields.
func (o AnnealingOptions) normalized() AnnealingOptions {
	if o.MaxIterations <= 0 {
		o.MaxIterations = DefaultAnnealingMaxIterations
	}
	if o.InitialTemp <= 0 {
		o.InitialTemp = DefaultAnnealingInitialTemp
	}
	if o.CoolingRate <= 0 {
		o.CoolingRate = DefaultAnnealingCoolingRate
	}
	if o.MinTemp <= 0 {
		o.MinTemp = DefaultAnnealingMinTemp
	}

	return o
}

func (o GeneticOptions) normalized() GeneticOptions {
	if o.PopulationSize <= 0 {
		o.PopulationSize = DefaultGeneticPopulationSize
	}
	if o.Generations <= 0 {
		o.Generations = DefaultGeneticGenerations
	}
	if o.MutationRate <= 0 {
		o.MutationRate = DefaultGeneticMutationRate
	}

	return o
}

func (o SwarmOptions) normalized() SwarmOptions {
	if o.NumParticles <= 0 {
		o.NumParticles = DefaultSwarmParticles
	}
	if o.Iterations <= 0 {
		o.Iterations = DefaultSwarmIterations
	}
	if o.InertiaWeight <= 0 {
		o.InertiaWeight = DefaultSwarmInertiaWeight
	}
	if o.CognitiveWeight <= 0 {
		o.CognitiveWeight = DefaultSwarmCognitiveWeight
	}
	if o.SocialWeight <= 0 {
		o.SocialWeight = DefaultSwarmSocialWeight
	}

	return o
}

func (o AntColonyOptions) normalized() AntColonyOptions {
	if o.NumAnts <= 0 {
		o.NumAnts = DefaultAntCount
	}
	if o.Iterations <= 0 {
		o.Iterations = DefaultAntIterations
	}
	if o.EvaporationRate <= 0 {
		o.EvaporationRate = DefaultAntEvaporationRate
	}
	if o.PheromoneImportance <= 0 {
		o.PheromoneImportance = DefaultAntPheromoneImportance
	}
	if o.HeuristicImportance <= 0 {
		o.HeuristicImportance = DefaultAntHeuristicImportance
	}

	return o
}

func (o TabuOptions) normalized() TabuOptions {
	if o.MaxIterations <= 0 {
		o.MaxIterations = DefaultTabuMaxIterations
	}
	if o.Tenure <= 0 {
		o.Tenure = DefaultTabuTenure
	}

	return o
}
