// SPDX-License-Identifier: MIT

// Package pick - unified dispatcher for the selection strategies.
//
// Select is the canonical entry point: validate once, route by Algorithm
// through an exhaustive switch, then assemble the Result (canonical color
// order + stabilized fitness + elapsed wall time).
//
// Design principles:
//   - Deterministic: a single RNG stream seeded from Options.Seed.
//   - Strict sentinels: only errors from types.go, raised at the boundary;
//     strategies themselves are total and terminate by construction.
//   - Canonical ordering is applied exactly once, here — never mid-search.
package pick

import (
	"time"

	"github.com/bdamokos/pick-distinct-colors/lab"
)

// Select picks k maximally distinct colors from the pool with the chosen
// strategy and assembles the Result.
//
// Contracts:
//   - p non-nil (ErrNilPool), 1 ≤ k ≤ p.Size() (ErrInvalidK),
//     algo within the closed set (ErrUnknownAlgorithm); all checked before
//     any strategy runs.
//   - opts fields ≤ 0 fall back to their documented defaults.
//
// Complexity: per chosen strategy; see the per-file docs.
func Select(p *Pool, k int, algo Algorithm, opts Options) (Result, error) {
	// Stage 1 - boundary validation (once; strategies assume valid input).
	if p == nil {
		return Result{}, ErrNilPool
	}
	if algo < Greedy || algo > Exact {
		return Result{}, ErrUnknownAlgorithm
	}
	if k <= 0 || k > p.Size() {
		return Result{}, ErrInvalidK
	}

	// Stage 2 - route by algorithm.
	rng := rngFromSeed(opts.Seed)
	start := time.Now()

	var (
		sel []int
		fit float64
	)
	switch algo {
	case Greedy:
		sel, fit = greedySelect(p, k, rng)
	case MaxSumGlobal:
		sel, fit = maxSumGlobalSelect(p, k)
	case MaxSumSequential:
		sel, fit = maxSumSequentialSelect(p, k, rng)
	case Annealing:
		sel, fit = annealingSelect(p, k, opts.Annealing.normalized(), rng)
	case KMeansPP:
		sel, fit = kmeansPPSelect(p, k, rng)
	case Genetic:
		sel, fit = geneticSelect(p, k, opts.Genetic.normalized(), opts.Workers, rng)
	case Swarm:
		sel, fit = swarmSelect(p, k, opts.Swarm.normalized(), opts.Workers, rng)
	case AntColony:
		sel, fit = antColonySelect(p, k, opts.AntColony.normalized(), opts.Workers, rng)
	case Tabu:
		sel, fit = tabuSelect(p, k, opts.Tabu.normalized())
	case Exact:
		sel, fit = exactSelect(p, k)
	}

	elapsed := time.Since(start)

	// Stage 3 - result assembly: materialize indices into colors, apply
	// the canonical presentation order, stabilize the fitness value.
	colors := make([]lab.RGB, len(sel))
	for i, idx := range sel {
		colors[i] = p.Color(idx)
	}

	return Result{
		Colors:  CanonicalOrder(colors),
		Fitness: round1e9(fit),
		Elapsed: elapsed,
	}, nil
}

// SelectByName is Select with a canonical algorithm name ("greedy",
// "tabu_search", …) instead of an Algorithm value.
func SelectByName(p *Pool, k int, name string, opts Options) (Result, error) {
	algo, err := ParseAlgorithm(name)
	if err != nil {
		return Result{}, err
	}

	return Select(p, k, algo, opts)
}
