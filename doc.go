// Package distinctcolors is a toolkit for picking maximally distinct colors —
// from perceptual color math to nine interchangeable selection strategies.
//
// 🚀 What is pick-distinct-colors?
//
//	A deterministic, seedable library that brings together:
//		• Perceptual metric: sRGB → CIELAB conversion + CIE76 Delta E
//		• Constructive heuristics: greedy max-min, max-sum (global & sequential)
//		• Metaheuristics: simulated annealing, genetic algorithm, particle swarm,
//		  ant colony, tabu search, k-means++ seeding
//		• Exact solver: exhaustive k-combination search (small pools)
//		• Collaborators: color string parsing, palette generation, metrics
//
// ✨ Why choose pick-distinct-colors?
//
//   - Reproducible – every random draw flows through an explicit, seedable RNG
//   - Typed configuration – one options struct per strategy, defaults documented
//   - Strict sentinels – argument errors surface once, at the dispatch boundary
//
// Under the hood, everything is organized under four subpackages:
//
//	lab/       — RGB/Lab types, the sRGB→CIELAB pipeline and CIE76 Delta E
//	pick/      — candidate pool, the nine strategies and the Select dispatcher
//	colortext/ — textual color parsing (hex, rgb(), csv, bracketed arrays)
//	palette/   — pool generation, blend modes, distance metrics summary
//
// Quick start:
//
//	pool := pick.NewPool(palette.Random(80, rand.New(rand.NewSource(42))))
//	res, err := pick.Select(pool, 8, pick.Greedy, pick.Options{Seed: 42})
//
//	go get github.com/bdamokos/pick-distinct-colors
package distinctcolors
