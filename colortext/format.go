package colortext

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/bdamokos/pick-distinct-colors/lab"
)

// Hex formats a color as a lowercase "#rrggbb" string.
func Hex(c lab.RGB) string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}
