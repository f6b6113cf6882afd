package seidel

import "github.com/pkg/errors"

// Threading errors through the incremental loop and the line solver would add
// noise to code that is mostly arithmetic. Precondition failures panic instead,
// and the public API recovers them into an error.

type SolveError struct {
	err error
}

func (e SolveError) Error() string { return e.err.Error() }
func (e SolveError) Unwrap() error { return e.err }

var (
	ErrNonFinite = errors.New("coefficient is not finite")
	ErrBadBound  = errors.New("bound must be positive and finite")
)

// Panic with a SolveError.
func fatalf(format string, args ...interface{}) {
	panic(SolveError{errors.Errorf(format, args...)})
}

// Panic with a SolveError wrapping cause, so errors.Is still finds it.
func fatalWrapf(cause error, format string, args ...interface{}) {
	panic(SolveError{errors.Wrapf(cause, format, args...)})
}

// Converts a recovered SolveError back into an error. Any other panic is
// re-raised untouched.
func HandleSolvePanicRecover(r interface{}) error {
	if r != nil {
		if solveError, ok := r.(SolveError); ok {
			return solveError
		}
		panic(r)
	}
	return nil
}
