// Package geometry provides the small set of value types the Delaunay
// triangulation is built from: points, edges, circles and triangles, along
// with the predicates (validity, circumcircle, containment) the
// Bowyer-Watson construction depends on.
//
// Everything here works in squared-distance space; no function in this
// package ever takes a square root. Circle radii are therefore squared
// distances, not lengths.
package geometry

import "math"

// Epsilon is the IEEE 754 double-precision machine epsilon. It is the
// tolerance for point equality and for the collinearity test: just wide
// enough to absorb the round-off the circumcenter computation introduces,
// without turning equality into general fuzzy matching.
const Epsilon = 2.220446049250313e-16

type Point struct {
	X, Y float64
}

// Finite reports whether neither coordinate is infinite. Infinite
// coordinates are reserved for the symbolic super-triangle vertices; every
// ordinary input point is finite.
func (p Point) Finite() bool {
	inf := math.Inf(1)
	return math.Abs(p.X) != inf && math.Abs(p.Y) != inf
}

// Equals is exact equality with a machine-epsilon fallback on both
// coordinates. Re-deriving a vertex through the circumcenter arithmetic can
// shave an ulp or two off its coordinates; without the fallback such a
// vertex would no longer compare equal to the original input point.
func (p Point) Equals(other Point) bool {
	if p.X == other.X && p.Y == other.Y {
		return true
	}

	return math.Abs(p.X-other.X) <= Epsilon && math.Abs(p.Y-other.Y) <= Epsilon
}

func (p Point) DistanceSquared(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return dx*dx + dy*dy
}

// Slope of the line through a and b. A vertical line has no finite slope,
// so +Inf is returned as a sentinel; callers special-case it the same way
// the perpendicular-bisector logic does.
func Slope(a, b Point) float64 {
	if a.X-b.X == 0.0 {
		return math.Inf(1)
	}
	return (a.Y - b.Y) / (a.X - b.X)
}

func Midpoint(a, b Point) Point {
	return Point{(a.X + b.X) / 2.0, (a.Y + b.Y) / 2.0}
}
