// Package delaunay computes the Delaunay triangulation of a set of 2D
// points using the incremental Bowyer-Watson algorithm.
//
// Instead of seeding the construction with a "big enough" finite bounding
// triangle — a known correctness trap once input points approach
// collinearity, because their circumcircles grow without bound — the seed
// triangle's vertices sit symbolically at infinity. Triangles that reach
// one of these symbolic vertices have a degenerate, infinite circumcircle,
// and point containment for them is decided by an exact half-plane case
// analysis rather than a circle test. See supertriangle.go.
package delaunay

import "github.com/christianzski/delaunay/geometry"

type Point = geometry.Point
type Edge = geometry.Edge
type Circle = geometry.Circle
type Triangle = geometry.Triangle

// TriangleList is a triangulation result. The order of the triangles
// carries no meaning.
type TriangleList []Triangle

// Triangulate computes a Delaunay triangulation of points: a triangulation
// in which no input point lies strictly inside any triangle's circumcircle.
//
// Duplicate points are permitted. Degenerate inputs are not errors: a fully
// collinear point set, or fewer than three points, triangulates to an empty
// result. The only error is an input point with an infinite coordinate,
// since infinite coordinates are reserved for the symbolic bounding
// triangle.
func Triangulate(points []Point) (result []Triangle, err error) {
	defer func() {
		recoveredErr := handleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	for _, p := range points {
		if !p.Finite() {
			fatalf("input point (%v, %v) is not finite", p.X, p.Y)
		}
	}

	return triangulate(points), nil
}
