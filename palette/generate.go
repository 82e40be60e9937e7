package palette

import (
	"math/rand"

	"github.com/bdamokos/pick-distinct-colors/lab"
)

// defaultSeed matches the engine's zero-seed policy: generation without an
// explicit RNG is deterministic, not random.
const defaultSeed int64 = 1

// BlendMode controls how caller-supplied colors combine with random ones
// in Generate.
type BlendMode int

const (
	// Replace uses only the custom colors (random generation is skipped
	// entirely when any custom colors are supplied).
	Replace BlendMode = iota

	// Append generates total random colors and adds the custom colors
	// after them.
	Append

	// Mixed generates total random colors, overwrites the leading ones
	// position-wise with the custom colors, and appends any overflow.
	Mixed
)

// Random returns n uniformly random colors drawn from rng. A nil rng
// selects the fixed default stream.
func Random(n int, rng *rand.Rand) []lab.RGB {
	if rng == nil {
		rng = rand.New(rand.NewSource(defaultSeed))
	}

	out := make([]lab.RGB, n)
	for i := range out {
		out[i] = lab.RGB{
			R: uint8(rng.Intn(256)),
			G: uint8(rng.Intn(256)),
			B: uint8(rng.Intn(256)),
		}
	}

	return out
}

// Generate builds a candidate pool of random and/or custom colors.
//
//   - Replace with custom colors: a copy of custom, total ignored.
//   - Append: total random colors followed by the custom ones.
//   - Mixed with custom colors: total random colors, the first
//     min(len(custom), total) replaced position-wise, overflow appended.
//   - Anything else (no custom colors, unknown mode): total random colors.
func Generate(total int, custom []lab.RGB, mode BlendMode, rng *rand.Rand) []lab.RGB {
	switch {
	case mode == Replace && len(custom) > 0:
		return append([]lab.RGB(nil), custom...)

	case mode == Append:
		return append(Random(total, rng), custom...)

	case mode == Mixed && len(custom) > 0:
		colors := Random(total, rng)
		n := len(custom)
		if n > len(colors) {
			n = len(colors)
		}
		copy(colors[:n], custom[:n])
		if len(custom) > len(colors) {
			colors = append(colors, custom[len(colors):]...)
		}

		return colors

	default:
		return Random(total, rng)
	}
}
