package geometry

import "math"

// Circle is a center plus a radius stored as a squared distance. Keeping the
// radius squared lets every containment check compare squared distances
// directly, avoiding the square root and its precision loss.
//
// An infinite radius is a sentinel: it marks the circumcircle of a
// degenerate (collinear or infinite-vertex) triangle, which is locally a
// half-plane rather than a circle.
type Circle struct {
	Center Point
	Radius float64
}

// Contains reports whether p lies strictly inside the circle. Points on the
// circumference are outside; the triangulation relies on that strictness.
func (c Circle) Contains(p Point) bool {
	dx := p.X - c.Center.X
	dy := p.Y - c.Center.Y
	dist := dx*dx + dy*dy

	return dist < c.Radius
}

func (c Circle) Infinite() bool {
	return c.Radius == math.Inf(1)
}
