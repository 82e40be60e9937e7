package pick

import (
	"sort"

	"github.com/bdamokos/pick-distinct-colors/lab"
)

// CanonicalOrder returns a copy of colors sorted by their Lab coordinate:
// lightness L descending, then a descending, then b descending. The order
// is a fixed presentation invariant, independent of how a selection was
// built; Select applies it exactly once, at output time.
//
// Complexity: O(m log m) for m colors.
func CanonicalOrder(colors []lab.RGB) []lab.RGB {
	labs := make([]lab.Lab, len(colors))
	idx := make([]int, len(colors))
	for i, c := range colors {
		labs[i] = lab.RGBToLab(c)
		idx[i] = i
	}

	// Sort positions, not colors: the Lab cache stays aligned with its
	// original element throughout the sort.
	sort.SliceStable(idx, func(a, b int) bool {
		la, lb := labs[idx[a]], labs[idx[b]]
		if la.L != lb.L {
			return la.L > lb.L
		}
		if la.A != lb.A {
			return la.A > lb.A
		}

		return la.B > lb.B
	})

	out := make([]lab.RGB, len(colors))
	for i, j := range idx {
		out[i] = colors[j]
	}

	return out
}
