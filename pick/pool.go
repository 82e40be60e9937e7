// SPDX-License-Identifier: MIT

// Package pick - the immutable candidate pool.
//
// A Pool pairs every color with its CIELAB coordinate (computed once at
// construction) and, for small pools, a precomputed symmetric distance
// matrix stored as a linearized d[i*n+j] buffer so the hot loops read
// distances without interface indirection or recomputation.
//
// Indices 0..Size()-1 are the sole selection currency used by every
// strategy; no strategy operates on colors directly.
package pick

import "github.com/bdamokos/pick-distinct-colors/lab"

// Pool is an ordered, read-only collection of candidate colors.
// Construct with NewPool; the zero value is an empty pool.
type Pool struct {
	colors []lab.RGB
	labs   []lab.Lab

	// dist is the linearized n×n Delta E matrix, or nil when the pool is
	// too large to afford O(n²) memory (see DefaultMatrixLimit).
	dist []float64
	n    int
}

// NewPool builds a pool from the given colors. The slice is copied, so the
// caller may reuse it; the pool never mutates after construction.
//
// For pools of at most DefaultMatrixLimit entries the full pairwise
// distance matrix is precomputed (O(n²) time and memory); larger pools
// compute distances on demand.
//
// Complexity: O(n) Lab conversions + O(n²) distances when cached.
func NewPool(colors []lab.RGB) *Pool {
	n := len(colors)
	p := &Pool{
		colors: append([]lab.RGB(nil), colors...),
		labs:   make([]lab.Lab, n),
		n:      n,
	}

	var i int
	for i = 0; i < n; i++ {
		p.labs[i] = lab.RGBToLab(p.colors[i])
	}

	if n <= DefaultMatrixLimit {
		p.dist = make([]float64, n*n)

		var (
			j int
			d float64
		)
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				d = lab.DeltaE(p.labs[i], p.labs[j])
				p.dist[i*n+j] = d
				p.dist[j*n+i] = d
			}
		}
	}

	return p
}

// Size returns the number of candidate colors.
func (p *Pool) Size() int { return p.n }

// Color returns the i-th candidate color.
func (p *Pool) Color(i int) lab.RGB { return p.colors[i] }

// Lab returns the cached CIELAB coordinate of the i-th candidate.
func (p *Pool) Lab(i int) lab.Lab { return p.labs[i] }

// Distance returns the CIE76 Delta E between candidates i and j, served
// from the precomputed matrix when available.
func (p *Pool) Distance(i, j int) float64 {
	if p.dist != nil {
		return p.dist[i*p.n+j]
	}

	return lab.DeltaE(p.labs[i], p.labs[j])
}
