package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntnBounds(t *testing.T) {
	r := New()
	for i := 0; i < 1000; i++ {
		v := r.Intn(7)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 7)
	}
	assert.Equal(t, 0, r.Intn(0))
	assert.Equal(t, 0, r.Intn(-3))
}

func TestSeededIsReproducible(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)

	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}

	left := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	right := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	ShuffleSlice(a, left)
	ShuffleSlice(b, right)
	assert.Equal(t, left, right)
}

func TestShufflePreservesElements(t *testing.T) {
	items := []string{"A", "B", "C", "D", "E"}
	ShuffleSlice(New(), items)
	assert.ElementsMatch(t, []string{"A", "B", "C", "D", "E"}, items)
}
