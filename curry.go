package chainfn

// Curry2 turns a two argument function into a chain of single argument
// functions, so that Curry2(f)(a)(b) == f(a, b).
//
// This is useful to adapt functions written in the usual Go style to the
// single argument transformers taken by Apply and the ForEach family.
// Arguments are supplied in their original order, one at a time.
//
// Curry2 panics if f is nil.
func Curry2[A, B, R any](f func(A, B) R) func(A) func(B) R {
	mustFunc(f != nil, "Curry2", "f")
	return func(a A) func(B) R {
		return func(b B) R {
			return f(a, b)
		}
	}
}

// Curry3 is Curry2 for three argument functions.
func Curry3[A, B, C, R any](f func(A, B, C) R) func(A) func(B) func(C) R {
	mustFunc(f != nil, "Curry3", "f")
	return func(a A) func(B) func(C) R {
		return Curry2(func(b B, c C) R {
			return f(a, b, c)
		})
	}
}

// Curry4 is Curry2 for four argument functions.
func Curry4[A, B, C, D, R any](f func(A, B, C, D) R) func(A) func(B) func(C) func(D) R {
	mustFunc(f != nil, "Curry4", "f")
	return func(a A) func(B) func(C) func(D) R {
		return Curry3(func(b B, c C, d D) R {
			return f(a, b, c, d)
		})
	}
}

// Curry5 is Curry2 for five argument functions.
func Curry5[A, B, C, D, E, R any](f func(A, B, C, D, E) R) func(A) func(B) func(C) func(D) func(E) R {
	mustFunc(f != nil, "Curry5", "f")
	return func(a A) func(B) func(C) func(D) func(E) R {
		return Curry4(func(b B, c C, d D, e E) R {
			return f(a, b, c, d, e)
		})
	}
}

// Uncurry2 inverts Curry2.
func Uncurry2[A, B, R any](f func(A) func(B) R) func(A, B) R {
	mustFunc(f != nil, "Uncurry2", "f")
	return func(a A, b B) R {
		return f(a)(b)
	}
}
