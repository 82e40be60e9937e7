// Package pick selects k maximally distinct colors out of a candidate pool.
//
// The underlying problem is max-min diversity selection (a dispersion
// problem, NP-hard in general): choose exactly k of n pool indices so that
// the minimum pairwise CIE76 Delta E among the chosen colors is as large as
// possible. Ten interchangeable strategies navigate this search space under
// one configuration contract:
//
//   - Greedy            — constructive max-min heuristic (random first pick)
//   - MaxSumGlobal      — one-shot ranking by total distance to the pool
//   - MaxSumSequential  — constructive max-sum heuristic
//   - Annealing         — simulated annealing with geometric cooling
//   - KMeansPP          — k-means++ seeding (roulette over squared distances)
//   - Genetic           — generational GA with tournament selection
//   - Swarm             — discrete particle swarm relaxation
//   - AntColony         — per-index pheromone construction
//   - Tabu              — best-swap tabu search with aspiration
//   - Exact             — exhaustive k-combination enumeration (small pools)
//
// All strategies share the signature (pool, k, options, rng) → (selection,
// fitness) and run synchronously to completion. Every random draw flows
// through an explicit *rand.Rand seeded from Options.Seed, so the same seed,
// configuration and pool always reproduce bit-identical results.
//
// Entry point: Select. It validates arguments once (ErrInvalidK,
// ErrUnknownAlgorithm), dispatches by Algorithm, and assembles the Result:
// the chosen colors in canonical Lab order, the achieved fitness, and the
// elapsed wall time.
//
// Fitness convention: minimum pairwise Delta E of the selection — higher is
// better — except MaxSumGlobal/MaxSumSequential, which report the summed
// pairwise distance. For selections smaller than two the objective is
// undefined and +Inf is returned.
package pick
