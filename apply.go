package chainfn

// Apply returns fn(v).
//
// v is passed through as is, no absence check is made. Apply panics if fn
// is nil.
func Apply[T, R any](v T, fn func(T) R) R {
	mustFunc(fn != nil, "Apply", "fn")
	return fn(v)
}

// ApplyVoid calls fn(v) for its side effects.
//
// ApplyVoid panics if fn is nil.
func ApplyVoid[T any](v T, fn func(T)) {
	mustFunc(fn != nil, "ApplyVoid", "fn")
	fn(v)
}

// ApplySafe applies fn to the value held by v.
//
// If v is absent, ApplySafe returns an absent Option without calling fn or
// alarm. Otherwise it returns fn's result. When that result is absent and
// alarm is not nil, alarm is called once with the input value before the
// absent result is returned; alarm is a notification only and cannot change
// the result.
//
// ApplySafe panics if fn is nil.
func ApplySafe[T, R any](v Option[T], fn func(T) Option[R], alarm func(T)) Option[R] {
	mustFunc(fn != nil, "ApplySafe", "fn")

	x, ok := v.Get()
	if !ok {
		return None[R]()
	}

	out := fn(x)
	if out.IsNone() && alarm != nil {
		alarm(x)
	}
	return out
}

// ApplySafeVoid calls fn with the value held by v, or does nothing when v
// is absent.
//
// ApplySafeVoid panics if fn is nil.
func ApplySafeVoid[T any](v Option[T], fn func(T)) {
	mustFunc(fn != nil, "ApplySafeVoid", "fn")
	if x, ok := v.Get(); ok {
		fn(x)
	}
}
