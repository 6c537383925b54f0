package quote

import "math/rand/v2"

// Picker selects quotes uniformly at random.
type Picker struct {
	// IntN returns a value in [0, n). Defaults to math/rand/v2.IntN.
	IntN func(n int) int
}

// Pick returns a random quote from pool. ok is false when pool is empty.
func (p Picker) Pick(pool []Quote) (q Quote, ok bool) {
	if len(pool) == 0 {
		return Quote{}, false
	}
	intn := p.IntN
	if intn == nil {
		intn = rand.IntN
	}
	return pool[intn(len(pool))], true
}
