package palette

import (
	"gonum.org/v1/gonum/floats"

	"github.com/bdamokos/pick-distinct-colors/lab"
)

// Summary aggregates the pairwise CIE76 distances of a color set.
type Summary struct {
	Min, Max, Avg, Sum float64
}

// Metrics computes the pairwise Delta E summary of colors. Fewer than two
// colors yield the zero Summary (no pairs to measure).
//
// Complexity: O(m²) for m colors.
func Metrics(colors []lab.RGB) Summary {
	if len(colors) < 2 {
		return Summary{}
	}

	labs := make([]lab.Lab, len(colors))
	for i, c := range colors {
		labs[i] = lab.RGBToLab(c)
	}

	dists := make([]float64, 0, len(colors)*(len(colors)-1)/2)
	for i := 0; i < len(labs)-1; i++ {
		for j := i + 1; j < len(labs); j++ {
			dists = append(dists, lab.DeltaE(labs[i], labs[j]))
		}
	}

	sum := floats.Sum(dists)

	return Summary{
		Min: floats.Min(dists),
		Max: floats.Max(dists),
		Avg: sum / float64(len(dists)),
		Sum: sum,
	}
}
