package dataset

import (
	"math/rand/v2"

	"golang.org/x/exp/constraints"
)

// Fixed seeds. Generated sequences are bit-identical across runs and
// processes, so every backend under test sees exactly the same keys.
const (
	keySeed     = 42
	shuffleSeed = 123
)

// Ascending returns the sequence 0, 1, ..., n-1.
func Ascending[T constraints.Signed](n int) []T {
	s := make([]T, n)
	for i := range s {
		s[i] = T(i)
	}
	return s
}

// Descending returns the sequence n-1, n-2, ..., 0.
func Descending[T constraints.Signed](n int) []T {
	s := make([]T, n)
	for i := range s {
		s[i] = T(n - 1 - i)
	}
	return s
}

// Random returns n keys drawn uniformly from [0, n], both bounds included.
func Random[T constraints.Signed](n int) []T {
	return RandomBounded[T](n, n)
}

// RandomBounded returns n keys drawn uniformly from [0, bound], both bounds
// included. Keys are drawn as int64 and converted; bound must fit in T.
func RandomBounded[T constraints.Signed](n, bound int) []T {
	r := rand.New(rand.NewPCG(keySeed, 0))
	s := make([]T, n)
	for i := range s {
		s[i] = T(r.Int64N(int64(bound) + 1))
	}
	return s
}

// Shuffle permutes s in place, using its own seed independent of the key
// generator. A given length always shuffles the same way.
func Shuffle[T any](s []T) {
	r := rand.New(rand.NewPCG(shuffleSeed, 0))
	r.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}
