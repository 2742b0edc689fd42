package chainfn

import (
	"errors"
	"fmt"
)

// ErrInvalidOperation is wrapped by the panics raised when a required
// function argument is nil.
//
// Passing a nil function where a callable is required is a programming
// error, so it is reported through panic rather than through an error
// return. Recovered values can be matched with errors.Is.
var ErrInvalidOperation = errors.New("chainfn: invalid operation")

// PanicError is the error handed to a catch function when the guarded
// function panicked instead of returning an error.
type PanicError struct {
	Value any
}

func (e PanicError) Error() string {
	return fmt.Sprintf("recovered from panic: %v", e.Value)
}

// Unwrap returns the panic value when it is itself an error.
func (e PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

func mustFunc(ok bool, op, arg string) {
	if !ok {
		panic(fmt.Errorf("%w: %s: %s must not be nil", ErrInvalidOperation, op, arg))
	}
}
