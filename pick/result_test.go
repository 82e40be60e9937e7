package pick_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bdamokos/pick-distinct-colors/lab"
	"github.com/bdamokos/pick-distinct-colors/pick"
)

// TestCanonicalOrder_LightnessDescending: white (L=100) sorts first, black
// (L=0) last, regardless of input order.
func TestCanonicalOrder_LightnessDescending(t *testing.T) {
	black := lab.RGB{}
	red := lab.RGB{R: 255}
	white := lab.RGB{R: 255, G: 255, B: 255}

	got := pick.CanonicalOrder([]lab.RGB{black, red, white})
	assert.Equal(t, []lab.RGB{white, red, black}, got)
}

// TestCanonicalOrder_Deterministic: the order is a pure function of the
// color set, independent of the input permutation.
func TestCanonicalOrder_Deterministic(t *testing.T) {
	colors := []lab.RGB{
		{R: 255}, {G: 255}, {B: 255}, {R: 64, G: 128, B: 192},
	}
	reversed := []lab.RGB{
		{R: 64, G: 128, B: 192}, {B: 255}, {G: 255}, {R: 255},
	}

	assert.Equal(t, pick.CanonicalOrder(colors), pick.CanonicalOrder(reversed))
}

// TestCanonicalOrder_DoesNotMutateInput.
func TestCanonicalOrder_DoesNotMutateInput(t *testing.T) {
	in := []lab.RGB{{}, {R: 255, G: 255, B: 255}}
	want := append([]lab.RGB(nil), in...)

	_ = pick.CanonicalOrder(in)
	assert.Equal(t, want, in)
}
