package chainfn

import (
	"iter"

	"github.com/hashicorp/go-multierror"
)

// ForEachApply calls fn on every element of seq, in iteration order, and
// returns seq itself so that further operations can be chained on it.
//
// Unlike the lazy transformations of a Pipe, ForEachApply consumes seq
// before returning. Callers chaining on the returned sequence iterate it a
// second time, so seq must support repeated iteration for that to be
// meaningful.
//
// ForEachApply panics if fn is nil.
func ForEachApply[T any](seq iter.Seq[T], fn func(T)) iter.Seq[T] {
	mustFunc(fn != nil, "ForEachApply", "fn")
	for v := range seq {
		fn(v)
	}
	return seq
}

// ForEachRun calls fn on every element of seq, in iteration order.
//
// ForEachRun panics if fn is nil.
func ForEachRun[T any](seq iter.Seq[T], fn func(T)) {
	mustFunc(fn != nil, "ForEachRun", "fn")
	for v := range seq {
		fn(v)
	}
}

// ForEachWeak calls fn on every present element of seq and alarm on every
// absent one, then returns seq.
//
// An absent element never stops the traversal. alarm receives no argument
// and may be nil, in which case absent elements are skipped silently.
//
// ForEachWeak panics if fn is nil.
func ForEachWeak[T any](seq iter.Seq[Option[T]], fn func(T), alarm func()) iter.Seq[Option[T]] {
	mustFunc(fn != nil, "ForEachWeak", "fn")
	for o := range seq {
		v, ok := o.Get()
		if !ok {
			if alarm != nil {
				alarm()
			}
			continue
		}
		fn(v)
	}
	return seq
}

// ForEachStrict calls fn on every element of seq only if none of them is
// absent, then returns seq.
//
// The whole of seq is read before fn is called on anything. If an absent
// element is found, alarm (when not nil) is called exactly once and fn is
// not called at all. Otherwise fn receives the values collected during that
// read, in order, so seq is iterated only once by ForEachStrict itself.
//
// Because every value is held until the scan ends, seq must be finite.
//
// ForEachStrict panics if fn is nil.
func ForEachStrict[T any](seq iter.Seq[Option[T]], fn func(T), alarm func()) iter.Seq[Option[T]] {
	mustFunc(fn != nil, "ForEachStrict", "fn")

	var values []T
	for o := range seq {
		v, ok := o.Get()
		if !ok {
			if alarm != nil {
				alarm()
			}
			return seq
		}
		values = append(values, v)
	}

	for _, v := range values {
		fn(v)
	}
	return seq
}

// ForEachTry calls fn on every element of seq, in iteration order, and
// returns every error fn produced.
//
// A failing element does not stop the traversal. The returned error is a
// *multierror.Error listing the failures in order, or nil when fn never
// failed.
//
// ForEachTry panics if fn is nil.
func ForEachTry[T any](seq iter.Seq[T], fn func(T) error) error {
	mustFunc(fn != nil, "ForEachTry", "fn")

	var result *multierror.Error
	for v := range seq {
		if err := fn(v); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}
