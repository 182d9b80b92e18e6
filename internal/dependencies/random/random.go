package random

import (
	"crypto/sha256"
	"strconv"

	"lukechampine.com/frand"
)

// Random provides random number generation that can be mocked for testing
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int

	// Shuffle pseudo-randomizes the order of n elements using swap
	Shuffle(n int, swap func(i, j int))
}

// FastRandom implements Random using a ChaCha-based generator
type FastRandom struct {
	rng *frand.RNG
}

// New creates a FastRandom seeded from the system entropy source
func New() *FastRandom {
	return &FastRandom{rng: frand.New()}
}

// NewSeeded creates a FastRandom that produces a reproducible sequence for the seed
func NewSeeded(seed int64) *FastRandom {
	key := sha256.Sum256([]byte(strconv.FormatInt(seed, 10)))
	return &FastRandom{rng: frand.NewCustom(key[:], 1024, 12)}
}

// Intn returns a random int in [0, n), or 0 when n <= 0
func (r *FastRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.Intn(n)
}

// Shuffle randomizes the order of n elements
func (r *FastRandom) Shuffle(n int, swap func(i, j int)) {
	if n <= 1 {
		return
	}
	r.rng.Shuffle(n, swap)
}

// ShuffleSlice shuffles a slice in place using the given source
func ShuffleSlice[T any](r Random, items []T) {
	r.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}
