package geometry

import "math"

// Triangle is three points. The vertices are stored positionally but the
// triangle is conceptually unordered; Equals is positional because the
// triangulation only ever compares triangles it created itself, with the
// vertex order it chose.
type Triangle struct {
	A, B, C Point
}

// Valid reports whether the triangle is non-degenerate: every vertex finite
// and the vertices not collinear. Collinearity falls out of the shoelace
// formula: the determinant of the matrix whose columns are two edge vectors
// is the area of the parallelogram they span, and half of that is the
// triangle's area.
func (t Triangle) Valid() bool {
	if !t.A.Finite() || !t.B.Finite() || !t.C.Finite() {
		return false
	}

	// | b.x - a.x  c.x - a.x |
	// | b.y - a.y  c.y - a.y |
	area := ((t.B.X-t.A.X)*(t.C.Y-t.A.Y) - (t.C.X-t.A.X)*(t.B.Y-t.A.Y)) / 2.0

	// Compare the actual area, not the signed area
	return math.Abs(area) > Epsilon
}

func (t Triangle) HasVertex(p Point) bool {
	return t.A.Equals(p) || t.B.Equals(p) || t.C.Equals(p)
}

func (t Triangle) Edges() [3]Edge {
	return [3]Edge{{t.A, t.B}, {t.B, t.C}, {t.A, t.C}}
}

// HasEdge reports whether e is one of the triangle's edges. Edges are
// undirected, so the endpoint order does not matter.
func (t Triangle) HasEdge(e Edge) bool {
	for _, v := range t.Edges() {
		if v.Equals(e) {
			return true
		}
	}

	return false
}

func (t Triangle) Equals(other Triangle) bool {
	return t.A.Equals(other.A) && t.B.Equals(other.B) && t.C.Equals(other.C)
}

// Circumcircle returns the circle through the triangle's three vertices,
// found as the intersection of two perpendicular bisectors. A degenerate
// triangle circumscribes no finite circle and gets the infinite-radius
// sentinel; callers fall back to the half-plane containment test.
func (t Triangle) Circumcircle() Circle {
	if !t.Valid() {
		return Circle{Point{0, 0}, math.Inf(1)}
	}

	midpoint1 := Midpoint(t.A, t.B)
	slope1 := Slope(t.A, t.B)

	midpoint2 := Midpoint(t.B, t.C)
	slope2 := Slope(t.B, t.C)

	// A horizontal edge has a vertical bisector, whose slope the line
	// arithmetic below cannot represent. At most one edge of a valid triangle
	// is horizontal, so substitute the AC edge for it. A vertical edge is
	// fine: its slope sentinel +Inf yields a bisector slope of -0.
	if slope1 == 0.0 {
		midpoint1 = Midpoint(t.A, t.C)
		slope1 = Slope(t.A, t.C)
	} else if slope2 == 0.0 {
		midpoint2 = Midpoint(t.A, t.C)
		slope2 = Slope(t.A, t.C)
	}

	m1 := -1 / slope1
	m2 := -1 / slope2

	b1 := midpoint1.Y - m1*midpoint1.X
	b2 := midpoint2.Y - m2*midpoint2.X

	// The bisectors intersect where y1 = y2:
	//   m1*x + b1 = m2*x + b2
	//   => x(m1 - m2) = b2 - b1
	//   => x = (b2 - b1) / (m1 - m2)
	//
	// m1 - m2 is nonzero exactly when the base edges are not parallel, which
	// Valid() guarantees. Triangles just above the area threshold can still
	// make it very small, producing a far-away center; that boundary is left
	// unguarded on purpose.
	x := (b2 - b1) / (m1 - m2)
	y := m1*x + b1

	center := Point{x, y}

	// By definition every vertex lies on the circumcircle, but the computed
	// center carries floating-point error, so the three center-to-vertex
	// distances differ slightly. Using any single one as the radius can
	// classify another vertex as strictly inside the circle. Taking the
	// minimum of the three guarantees every vertex tests as on-or-outside,
	// which the containment checks on collinear and near-degenerate
	// configurations depend on.
	radius := math.Min(
		math.Min(t.A.DistanceSquared(center), t.B.DistanceSquared(center)),
		t.C.DistanceSquared(center))

	return Circle{center, radius}
}
