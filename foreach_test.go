package chainfn_test

import (
	"errors"
	"fmt"
	"iter"
	"testing"

	"github.com/KasperOmsK/chainfn"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"
)

func TestForEachApply_VisitsInOrderAndReturnsInput(t *testing.T) {
	src := seqOf(1, 2, 3)

	var seen []int
	out := chainfn.ForEachApply(src, func(v int) {
		seen = append(seen, v)
	})

	require.Equal(t, []int{1, 2, 3}, seen)
	require.Equal(t, []int{1, 2, 3}, collectSeq(out))
}

func TestForEachApply_DoesNotFilterAbsent(t *testing.T) {
	src := seqOf(chainfn.Some(1), chainfn.None[int](), chainfn.Some(3))

	var seen []chainfn.Option[int]
	chainfn.ForEachApply(src, func(o chainfn.Option[int]) {
		seen = append(seen, o)
	})

	require.Len(t, seen, 3)
	require.True(t, seen[1].IsNone())
}

func TestForEachApply_Chaining(t *testing.T) {
	sum, count := 0, 0
	src := seqOf(1, 2, 3)

	chainfn.ForEachApply(
		chainfn.ForEachApply(src, func(v int) { sum += v }),
		func(int) { count++ })

	require.Equal(t, 6, sum)
	require.Equal(t, 3, count)
}

func TestForEachApply_PropagatesPanics(t *testing.T) {
	require.PanicsWithValue(t, "boom", func() {
		chainfn.ForEachApply(seqOf(1), func(int) { panic("boom") })
	})
}

func TestForEachRun(t *testing.T) {
	var seen []string
	chainfn.ForEachRun(seqOf("a", "b"), func(s string) {
		seen = append(seen, s)
	})

	require.Equal(t, []string{"a", "b"}, seen)

	require.Panics(t, func() {
		chainfn.ForEachRun[int](seqOf(1), nil)
	})
}

func TestForEachWeak_SkipsAbsentAndContinues(t *testing.T) {
	var events []string

	src := seqOf(chainfn.Some(1), chainfn.None[int](), chainfn.Some(3))
	out := chainfn.ForEachWeak(src,
		func(v int) { events = append(events, fmt.Sprint(v)) },
		func() { events = append(events, "alarm") })

	require.Equal(t, []string{"1", "alarm", "3"}, events)
	require.Len(t, collectSeq(out), 3)
}

func TestForEachWeak_NilAlarm(t *testing.T) {
	var seen []int
	chainfn.ForEachWeak(seqOf(chainfn.None[int](), chainfn.Some(2)),
		func(v int) { seen = append(seen, v) },
		nil)

	require.Equal(t, []int{2}, seen)
}

func TestForEachStrict_AbsentElementBlocksEverything(t *testing.T) {
	calls, alarms := 0, 0

	src := seqOf(chainfn.Some(1), chainfn.None[int](), chainfn.Some(3), chainfn.None[int]())
	out := chainfn.ForEachStrict(src,
		func(int) { calls++ },
		func() { alarms++ })

	require.Zero(t, calls)
	require.Equal(t, 1, alarms)
	require.Len(t, collectSeq(out), 4)
}

func TestForEachStrict_AllPresent(t *testing.T) {
	var seen []int
	alarms := 0

	chainfn.ForEachStrict(seqOf(chainfn.Some(1), chainfn.Some(2), chainfn.Some(3)),
		func(v int) { seen = append(seen, v) },
		func() { alarms++ })

	require.Equal(t, []int{1, 2, 3}, seen)
	require.Zero(t, alarms)
}

func TestForEachStrict_AbsentLastElement(t *testing.T) {
	calls := 0
	chainfn.ForEachStrict(seqOf(chainfn.Some(1), chainfn.Some(2), chainfn.None[int]()),
		func(int) { calls++ },
		nil)

	require.Zero(t, calls)
}

func TestForEachStrict_SingleUseSequence(t *testing.T) {
	var seen []int
	src := onceOf(chainfn.Some(1), chainfn.Some(2))

	chainfn.ForEachStrict(src, func(v int) { seen = append(seen, v) }, nil)

	require.Equal(t, []int{1, 2}, seen)
}

func TestForEachStrict_SequenceChangingBetweenPasses(t *testing.T) {
	// Present on the first iteration, absent on every later one.
	passes := 0
	var src iter.Seq[chainfn.Option[int]] = func(yield func(chainfn.Option[int]) bool) {
		passes++
		if passes == 1 {
			yield(chainfn.Some(1))
			return
		}
		yield(chainfn.None[int]())
	}

	var seen []int
	chainfn.ForEachStrict(src, func(v int) { seen = append(seen, v) }, nil)

	require.Equal(t, []int{1}, seen)
	require.Equal(t, 1, passes)
}

func TestForEachStrict_FnSeesOnlyScannedValues(t *testing.T) {
	backing := []chainfn.Option[int]{chainfn.Some(1), chainfn.Some(2)}
	src := chainfn.FromSlice(backing).Values()

	var seen []int
	chainfn.ForEachStrict(src, func(v int) {
		seen = append(seen, v)
		backing[1] = chainfn.None[int]()
	}, nil)

	require.Equal(t, []int{1, 2}, seen)
}

func TestForEach_NilFunc(t *testing.T) {
	require.Panics(t, func() {
		chainfn.ForEachApply[int](seqOf(1), nil)
	})
	require.Panics(t, func() {
		chainfn.ForEachWeak[int](seqOf(chainfn.Some(1)), nil, func() {})
	})
	require.Panics(t, func() {
		chainfn.ForEachStrict[int](seqOf(chainfn.Some(1)), nil, func() {})
	})
	require.Panics(t, func() {
		chainfn.ForEachTry[int](seqOf(1), nil)
	})
}

func TestForEachTry_CollectsAllErrors(t *testing.T) {
	var seen []int
	err := chainfn.ForEachTry(seqOf(1, 2, 3, 4), func(v int) error {
		seen = append(seen, v)
		if v%2 == 0 {
			return fmt.Errorf("even number: %d", v)
		}
		return nil
	})

	require.Equal(t, []int{1, 2, 3, 4}, seen)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	require.Len(t, merr.Errors, 2)
	require.EqualError(t, merr.Errors[0], "even number: 2")
	require.EqualError(t, merr.Errors[1], "even number: 4")
}

func TestForEachTry_NoErrors(t *testing.T) {
	err := chainfn.ForEachTry(seqOf(1, 2), func(int) error { return nil })
	require.NoError(t, err)
}

func TestForEachTry_ErrorsIs(t *testing.T) {
	errBad := errors.New("bad")
	err := chainfn.ForEachTry(seqOf(1), func(int) error { return errBad })

	require.ErrorIs(t, err, errBad)
}

func seqOf[T any](values ...T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	}
}

// onceOf returns a sequence that only yields values on its first iteration,
// like a sequence backed by a stream.
func onceOf[T any](values ...T) iter.Seq[T] {
	used := false
	return func(yield func(T) bool) {
		if used {
			return
		}
		used = true
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	}
}

func collectSeq[T any](seq iter.Seq[T]) []T {
	var out []T
	for v := range seq {
		out = append(out, v)
	}
	return out
}
