package chainfn

import "fmt"

// Option holds either a value of type T or nothing.
//
// The zero Option is absent. Option is the absence marker used by every
// guarded operation of this package.
type Option[T any] struct {
	value   T
	present bool
}

// Some returns a present Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

// None returns an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr returns an absent Option for a nil pointer and Some(*p) otherwise.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// IsSome reports whether the Option holds a value.
func (o Option[T]) IsSome() bool { return o.present }

// IsNone reports whether the Option is absent.
func (o Option[T]) IsNone() bool { return !o.present }

// Get returns the held value and whether it was present.
// The returned value is the zero value of T when the Option is absent.
func (o Option[T]) Get() (T, bool) { return o.value, o.present }

// MustGet returns the held value and panics if the Option is absent.
func (o Option[T]) MustGet() T {
	if !o.present {
		panic(fmt.Errorf("%w: MustGet called on an absent option", ErrInvalidOperation))
	}
	return o.value
}

func (o Option[T]) String() string {
	if !o.present {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// OrNew returns the held value, or a freshly initialized T when v is absent.
//
// A fresh T is the zero value of T. Types that need more than their zero
// value to be usable should go through OrCompute with a constructor.
func OrNew[T any](v Option[T]) T {
	if x, ok := v.Get(); ok {
		return x
	}
	var zero T
	return zero
}

// OrNewRef returns p, or a pointer to a newly allocated zero T when p is nil.
func OrNewRef[T any](p *T) *T {
	if p != nil {
		return p
	}
	return new(T)
}

// OrCompute returns the held value, or the result of fn when v is absent.
//
// fn is evaluated lazily: it is never called when v is present, and called
// exactly once otherwise. OrCompute panics if fn is nil.
func OrCompute[T any](v Option[T], fn func() T) T {
	mustFunc(fn != nil, "OrCompute", "fn")
	if x, ok := v.Get(); ok {
		return x
	}
	return fn()
}
