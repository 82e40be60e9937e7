package palette

import (
	"math/rand"

	"github.com/bdamokos/pick-distinct-colors/lab"
	"github.com/bdamokos/pick-distinct-colors/pick"
)

// minGeneratedPool is the smallest auto-generated candidate pool.
const minGeneratedPool = 20

// PickDistinct selects count maximally distinct colors in one call.
//
// When colors are supplied they form the candidate pool verbatim.
// Otherwise a random pool of max(count×10, 20) colors is generated from
// opts.Seed, so the whole run stays reproducible end to end.
func PickDistinct(count int, algo pick.Algorithm, opts pick.Options, colors ...lab.RGB) (pick.Result, error) {
	pool := colors
	if len(pool) == 0 {
		size := count * 10
		if size < minGeneratedPool {
			size = minGeneratedPool
		}

		seed := opts.Seed
		if seed == 0 {
			seed = defaultSeed
		}
		pool = Random(size, rand.New(rand.NewSource(seed)))
	}

	return pick.Select(pick.NewPool(pool), count, algo, opts)
}
