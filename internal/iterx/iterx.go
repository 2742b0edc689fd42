package iterx

import (
	"iter"
)

// FromSlice returns a sequence over in. The sequence reads in on every
// iteration, so it can be ranged over any number of times.
func FromSlice[T any](in []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range in {
			if !yield(item) {
				break
			}
		}
	}
}
