package delaunay

import (
	"math"

	"github.com/christianzski/delaunay/geometry"
)

// superTriangle returns the triangle that seeds every triangulation.
//
// A finite bounding triangle, however large, can fail: as three input
// points approach collinearity their circumcircle's radius grows without
// bound and eventually escapes the bounds, breaking the Delaunay property
// near the hull. (For reference, see
// https://math.stackexchange.com/questions/4001660 — credit to Hagen von
// Eitzen for suggesting symbolic vertices.)
//
// So instead, the vertices are symbolic points at infinity. The triangle
// provably contains every finite point, its circumcircle is the
// infinite-circle sentinel, and containment for any triangle touching it is
// decided by halfplaneContains below.
func superTriangle() geometry.Triangle {
	inf := math.Inf(1)
	return geometry.Triangle{
		A: geometry.Point{X: -inf, Y: -inf},
		B: geometry.Point{X: 0, Y: inf},
		C: geometry.Point{X: inf, Y: 0},
	}
}

// halfplaneContains reports whether p would lie inside the circumcircle of
// t, for triangles whose circumcircle is infinite because they share
// vertices with the super-triangle. A circle of infinite radius is locally
// a line, so containment reduces to which side of that line p falls on.
//
// The case split is on how many of t's vertices are finite. Each branch's
// boundary line and inequality direction is derived from where the symbolic
// infinite directions lie relative to the line; reversing any of them
// breaks the triangulation for specific point configurations, so they are
// reproduced exactly.
func halfplaneContains(t geometry.Triangle, p geometry.Point) bool {
	inf := math.Inf(1)

	finitePoints := 0
	for _, v := range [3]geometry.Point{t.A, t.B, t.C} {
		if v.Finite() {
			finitePoints++
		}
	}

	// All three vertices at infinity: the original super-triangle, which
	// represents the entire plane.
	if finitePoints == 0 {
		return true
	}

	if finitePoints == 1 {
		// Two infinite vertices define a directional boundary line through
		// the finite vertex f; which line depends on which pair of symbolic
		// vertices is present.
		var f, v1, v2 geometry.Point
		if t.A.Finite() {
			f, v1, v2 = t.A, t.B, t.C
		} else if t.B.Finite() {
			f, v1, v2 = t.B, t.A, t.C
		} else {
			f, v1, v2 = t.C, t.A, t.B
		}

		if v1.Y == inf || v2.Y == inf {
			if v1.X == inf || v2.X == inf {
				// Vertices: { (0, inf), (inf, 0) }
				// y = -x + b
				b := f.Y + f.X
				return p.Y+p.X > b
			}
			// Vertices: { (0, inf), (-inf, -inf) }
			// y = 3x + b
			b := f.Y - 3.0*f.X
			return p.Y-3.0*p.X > b
		}
		// Vertices: { (-inf, -inf), (inf, 0) }
		// y = 1/3x + b
		b := f.Y - f.X/3.0
		return p.Y-p.X/3.0 < b
	}

	if finitePoints == 2 {
		var f, v1, v2 geometry.Point
		if !t.A.Finite() {
			f, v1, v2 = t.A, t.B, t.C
		} else if !t.B.Finite() {
			f, v1, v2 = t.B, t.A, t.C
		} else {
			f, v1, v2 = t.C, t.B, t.A
		}

		// The line from v1 to v2 is tangent to the circle; the symbolic
		// vertex f picks which side of it is the interior.
		m := geometry.Slope(v1, v2)
		b := v1.Y - m*v1.X
		if f.Y == inf {
			// Vertex: (0, inf)
			// The circle interior is always above the line
			return p.Y-m*p.X > b
		} else if f.X == inf {
			// Vertex: (inf, 0)
			if m >= 0.0 {
				return p.Y-m*p.X < b
			}
			return p.Y-m*p.X > b
		}
		// Vertex: (-inf, -inf)
		if m >= 1.0 {
			return p.Y-m*p.X > b
		}
		return p.Y-m*p.X < b
	}

	return false
}
