package chainfn

import (
	"iter"

	"github.com/KasperOmsK/chainfn/internal/iterx"
)

type (

	// MapFunc is a mapping function used by Map that transforms a value
	// of type In into a value of type Out.
	MapFunc[In, Out any] func(in In) Out

	// Predicate represents a filtering function that returns true when the
	// provided value should be kept.
	Predicate[T any] func(item T) bool
)

// Pipe wraps an iter.Seq so that the sequence operations of this package
// can be chained with method calls:
//
//	err := chainfn.FromSlice(paths).
//		Tap(logPath).
//		ForEach(countPath).
//		Try(removeFile)
//
// A Pipe holds no state besides the wrapped sequence. Whether it can be
// iterated more than once depends on that sequence.
type Pipe[T any] struct {
	seq iter.Seq[T]
}

// From wraps seq into a Pipe.
func From[T any](seq iter.Seq[T]) Pipe[T] {
	return Pipe[T]{seq: seq}
}

// FromSlice returns a Pipe producing the elements of values in order.
// The resulting Pipe can be iterated any number of times.
func FromSlice[T any](values []T) Pipe[T] {
	return From(iterx.FromSlice(values))
}

// Values returns the wrapped sequence.
func (p Pipe[T]) Values() iter.Seq[T] {
	return p.seq
}

// Collect iterates the Pipe and returns its elements in order.
func (p Pipe[T]) Collect() []T {
	var out []T
	for v := range p.seq {
		out = append(out, v)
	}
	return out
}

// Tap returns a Pipe that calls fn on each element as it is produced,
// leaving the elements unchanged.
//
// Nothing is called until the returned Pipe is iterated. Use ForEach to
// visit the elements right away.
//
// Tap panics if fn is nil.
func (p Pipe[T]) Tap(fn func(T)) Pipe[T] {
	mustFunc(fn != nil, "Tap", "fn")
	return Pipe[T]{
		seq: func(yield func(T) bool) {
			for v := range p.seq {
				fn(v)
				if !yield(v) {
					return
				}
			}
		},
	}
}

// ForEach is the method form of ForEachApply.
func (p Pipe[T]) ForEach(fn func(T)) Pipe[T] {
	return From(ForEachApply(p.seq, fn))
}

// Run is the method form of ForEachRun.
func (p Pipe[T]) Run(fn func(T)) {
	ForEachRun(p.seq, fn)
}

// Try is the method form of ForEachTry.
func (p Pipe[T]) Try(fn func(T) error) error {
	return ForEachTry(p.seq, fn)
}

// Map returns a Pipe producing fn applied to each element of p.
//
// Map is lazy: fn is called as the returned Pipe is iterated.
// Map panics if fn is nil.
func Map[In, Out any](p Pipe[In], fn MapFunc[In, Out]) Pipe[Out] {
	mustFunc(fn != nil, "Map", "fn")
	return Pipe[Out]{
		seq: func(yield func(Out) bool) {
			for in := range p.seq {
				if !yield(fn(in)) {
					return
				}
			}
		},
	}
}

// Filter returns a Pipe that yields only the elements for which predicate
// returns true.
//
// Filter panics if predicate is nil.
func Filter[T any](p Pipe[T], predicate Predicate[T]) Pipe[T] {
	mustFunc(predicate != nil, "Filter", "predicate")
	return Pipe[T]{
		seq: func(yield func(T) bool) {
			for in := range p.seq {
				if predicate(in) {
					if !yield(in) {
						return
					}
				}
			}
		},
	}
}

// Present returns a Pipe of the values held by the present elements of p,
// dropping the absent ones.
func Present[T any](p Pipe[Option[T]]) Pipe[T] {
	return Pipe[T]{
		seq: func(yield func(T) bool) {
			for o := range p.seq {
				v, ok := o.Get()
				if !ok {
					continue
				}
				if !yield(v) {
					return
				}
			}
		},
	}
}

// Weak is the Pipe form of ForEachWeak.
func Weak[T any](p Pipe[Option[T]], fn func(T), alarm func()) Pipe[Option[T]] {
	return From(ForEachWeak(p.seq, fn, alarm))
}

// Strict is the Pipe form of ForEachStrict. The same restrictions on the
// wrapped sequence apply.
func Strict[T any](p Pipe[Option[T]], fn func(T), alarm func()) Pipe[Option[T]] {
	return From(ForEachStrict(p.seq, fn, alarm))
}
