package session

import "math/rand/v2"

// Shuffler permutes n elements in place by calling swap, with the same
// contract as rand.Shuffle. Tests substitute a deterministic permutation.
type Shuffler func(n int, swap func(i, j int))

// DefaultShuffler is an unseeded Fisher-Yates shuffle.
var DefaultShuffler Shuffler = rand.Shuffle

// IdentityShuffler leaves the order unchanged.
func IdentityShuffler(int, func(i, j int)) {}

// ReverseShuffler reverses the order.
func ReverseShuffler(n int, swap func(i, j int)) {
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		swap(i, j)
	}
}

// shuffled returns a shuffled copy of items; items is left untouched.
func shuffled[T any](items []T, shuffle Shuffler) []T {
	out := make([]T, len(items))
	copy(out, items)
	if shuffle == nil {
		shuffle = DefaultShuffler
	}
	shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
