package delaunay

import "github.com/pkg/errors"

// Geometric degeneracy is data here, never an error: collinear inputs and
// empty insertion cavities simply produce fewer triangles. The only
// contract violation is an input point with an infinite coordinate, which
// would collide with the symbolic super-triangle vertices. Rather than
// threading an error return through the engine for that one case, we panic
// internally and the public API recovers the panic into an error.

type triangulateError error

// Panic with a triangulateError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

func handleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateErr, ok := r.(triangulateError); ok {
			return triangulateErr
		}
		panic(r)
	}
	return nil
}
