package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAscending(t *testing.T) {
	assert := assert.New(t)

	s := Ascending[int64](100)
	assert.Len(s, 100)
	for i, v := range s {
		assert.Equal(v, int64(i))
	}

	assert.Empty(Ascending[int64](0))
}

func TestDescending(t *testing.T) {
	assert := assert.New(t)

	s := Descending[int64](100)
	assert.Len(s, 100)
	for i, v := range s {
		assert.Equal(v, int64(99-i))
	}

	assert.Empty(Descending[int64](0))
}

func TestRandom(t *testing.T) {
	assert := assert.New(t)

	for _, n := range []int{1, 5, 256, 4096} {
		a := Random[int64](n)
		b := Random[int64](n)

		// same seed, same n: bit-identical
		assert.Equal(a, b)

		for _, v := range a {
			assert.GreaterOrEqual(v, int64(0))
			assert.LessOrEqual(v, int64(n))
		}
	}

	assert.Empty(Random[int64](0))
}

// The five values are pinned by the generator seed over [0, 5]; any
// change to the seed, the algorithm, or the bound handling shows up as
// a diff against the literal sequence.
func TestRandomGolden(t *testing.T) {
	assert := assert.New(t)

	golden := []int64{5, 5, 0, 0, 1}
	assert.Equal(Random[int64](5), golden)
	assert.Equal(RandomBounded[int64](5, 5), golden)
}

func TestRandomBounded(t *testing.T) {
	assert := assert.New(t)

	s := RandomBounded[int64](1000, 2000)
	assert.Len(s, 1000)
	for _, v := range s {
		assert.GreaterOrEqual(v, int64(0))
		assert.LessOrEqual(v, int64(2000))
	}

	assert.Equal(Random[int64](64), RandomBounded[int64](64, 64))
}

func TestShuffle(t *testing.T) {
	assert := assert.New(t)

	a := Ascending[int64](1000)
	b := Ascending[int64](1000)
	Shuffle(a)
	Shuffle(b)

	// deterministic permutation, and not the identity one
	assert.Equal(a, b)
	assert.NotEqual(a, Ascending[int64](1000))
	assert.ElementsMatch(a, Ascending[int64](1000))
}

func TestNarrowType(t *testing.T) {
	assert := assert.New(t)

	s := Random[int32](500)
	assert.Len(s, 500)
	for _, v := range s {
		assert.GreaterOrEqual(v, int32(0))
		assert.LessOrEqual(v, int32(500))
	}
}
