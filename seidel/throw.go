package seidel

import "github.com/pkg/errors"

// Threading errors through every split and restitch operation would add a ton
// of complexity to the decomposition code, which is recursive by nature even
// where it is written as loops. Instead, failures deep in the structure panic
// with a DecomposeError, and the entry points recover that back into an
// ordinary error. Anything else that panics is a genuine bug and is left
// alone.

// DecomposeError is an error originating inside the decomposition. We define
// this so that we can use a typed panic to throw, and convert that into an
// error at the API boundary.
type DecomposeError error

// ErrHorizontalEdge is the root cause reported for polygons with horizontal
// edges. Such an edge has no upper endpoint and an unbounded inverse slope,
// and the decomposition does not support it.
var ErrHorizontalEdge = errors.New("horizontal polygon edges are not supported")

// ErrDegenerateLoop is the root cause reported for loops that cannot bound
// any area.
var ErrDegenerateLoop = errors.New("polygon loops need at least three points")

// Throw a DecomposeError with a message.
func fatalf(format string, args ...interface{}) {
	panic(DecomposeError(errors.Errorf(format, args...)))
}

// Throw a DecomposeError wrapping a root cause such as ErrHorizontalEdge.
func fatalWrapf(err error, format string, args ...interface{}) {
	panic(DecomposeError(errors.Wrapf(err, format, args...)))
}

// HandleDecomposePanicRecover takes the result of recover() and gives back
// the DecomposeError it carries, if any. For any other non-nil value it
// panics again, since that indicates an actual logic error.
func HandleDecomposePanicRecover(r interface{}) error {
	if r != nil {
		if decomposeError, ok := r.(DecomposeError); ok {
			return decomposeError
		}
		panic(r)
	}
	return nil
}
