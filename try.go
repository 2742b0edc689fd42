package chainfn

// TryRun calls tryFn(v) and routes its failure to catchFn instead of
// propagating it.
//
// A failure is either a non-nil error returned by tryFn or a panic raised
// by it; a panic reaches catchFn as a PanicError. catchFn is called exactly
// once on failure and never on success. Anything catchFn itself panics with
// is not recovered.
//
// TryRun panics if tryFn or catchFn is nil.
func TryRun[T any](v T, tryFn func(T) error, catchFn func(error)) {
	mustFunc(tryFn != nil, "TryRun", "tryFn")
	mustFunc(catchFn != nil, "TryRun", "catchFn")

	if err := guard(v, tryFn); err != nil {
		catchFn(err)
	}
}

// TryRunFinally behaves like TryRun and then calls finallyFn(v).
//
// finallyFn runs exactly once, after tryFn succeeded or after catchFn
// returned, and also when catchFn panics. A panic raised by finallyFn
// propagates to the caller.
//
// TryRunFinally panics if any of the functions is nil.
func TryRunFinally[T any](v T, tryFn func(T) error, catchFn func(error), finallyFn func(T)) {
	mustFunc(tryFn != nil, "TryRunFinally", "tryFn")
	mustFunc(catchFn != nil, "TryRunFinally", "catchFn")
	mustFunc(finallyFn != nil, "TryRunFinally", "finallyFn")

	defer finallyFn(v)
	if err := guard(v, tryFn); err != nil {
		catchFn(err)
	}
}

func guard[T any](v T, fn func(T) error) (err error) {
	defer recoverInto(&err)
	return fn(v)
}

func recoverInto(err *error) {
	r := recover()
	if r == nil {
		return
	}
	*err = PanicError{Value: r}
}
