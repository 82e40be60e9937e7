package pick_test

import (
	"fmt"

	"github.com/bdamokos/pick-distinct-colors/colortext"
	"github.com/bdamokos/pick-distinct-colors/lab"
	"github.com/bdamokos/pick-distinct-colors/pick"
)

// ExampleSelect picks the two most distinct colors out of a tiny pool with
// the exhaustive solver. Green and blue are the farthest pair in Lab space,
// and canonical ordering lists the lighter green first.
func ExampleSelect() {
	pool := pick.NewPool([]lab.RGB{
		{R: 255}, {G: 255}, {B: 255}, {}, {R: 255, G: 255, B: 255},
	})

	res, err := pick.Select(pool, 2, pick.Exact, pick.Options{})
	if err != nil {
		fmt.Println("select failed:", err)
		return
	}

	for _, c := range res.Colors {
		fmt.Println(colortext.Hex(c))
	}
	// Output:
	// #00ff00
	// #0000ff
}

// ExampleSelectByName routes by the canonical strategy name.
func ExampleSelectByName() {
	pool := pick.NewPool([]lab.RGB{
		{R: 255}, {G: 255}, {B: 255}, {R: 255, G: 255}, {G: 255, B: 255},
	})

	res, err := pick.SelectByName(pool, 3, "greedy", pick.Options{Seed: 42})
	if err != nil {
		fmt.Println("select failed:", err)
		return
	}

	fmt.Println(len(res.Colors), "colors selected")
	// Output:
	// 3 colors selected
}
