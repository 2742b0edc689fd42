/*
Package chainfn provides small generic combinators for piping a value, or
the elements of an iter.Seq, through functions in a fluent style.

Every operation is a package-level function taking the value or sequence
first, so calls read left to right:

	n := chainfn.Apply(line, strings.TrimSpace)
	chainfn.ApplyVoid(n, fmt.Println)

Absence is expressed with Option. The guarded operations skip absent
inputs and report absent results through an optional alarm callback:

	user := chainfn.ApplySafe(chainfn.Some(id), lookupUser, func(id int) {
		log.Printf("no user %d", id)
	})

	name := chainfn.OrCompute(user, func() User { return Guest })

Sequences are visited in order with the ForEach family. ForEachApply and
ForEachWeak return the input sequence so the caller can keep chaining.
ForEachWeak skips absent elements one by one, while ForEachStrict refuses
to visit anything if a single element is absent:

	rows := chainfn.FromSlice([]chainfn.Option[Row]{...}).Values()
	chainfn.ForEachStrict(rows, insert, func() {
		log.Println("batch rejected: missing row")
	})

The same operations are available as methods on Pipe.

Curry2 to Curry5 adapt multi-argument functions to the single argument
transformers the rest of the package expects:

	add := func(a, b int) int { return a + b }
	addTwo := chainfn.Curry2(add)(2)
	five := chainfn.Apply(3, addTwo)

TryRun and TryRunFinally route the error returned by a function, or the
panic it raised, to a catch function instead of the caller.

Conventions:

  - Nothing in this package starts a goroutine, blocks or keeps state
    between calls. Caller functions run on the calling goroutine.
  - Passing nil where a function is required panics with an error
    wrapping ErrInvalidOperation.
  - Errors and panics raised by caller functions propagate unchanged,
    except inside TryRun and TryRunFinally.
  - The package does not log. See package alarm for alarms that do.
*/
package chainfn
