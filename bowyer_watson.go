package delaunay

import "github.com/christianzski/delaunay/geometry"

// triangulate runs the incremental Bowyer-Watson construction.
// Reference: https://en.wikipedia.org/wiki/Bowyer-Watson_algorithm
//
// The triangulation starts as the single super-triangle. Each input point
// invalidates the triangles whose circumcircle contains it; those triangles
// are removed and the polygonal cavity they leave is re-triangulated as a
// fan from its boundary edges to the new point. Triangles still attached to
// a super-triangle vertex are dropped at the end.
func triangulate(points []geometry.Point) []geometry.Triangle {
	super := superTriangle()
	triangulation := []geometry.Triangle{super}

	for _, p := range points {
		// Find out which triangles are invalidated when adding this point.
		// Triangles with a finite circumcircle use the ordinary containment
		// test; the rest circumscribe an infinite circle, for which only the
		// half-plane test is meaningful.
		var badSet []geometry.Triangle
		for _, t := range triangulation {
			circumcircle := t.Circumcircle()
			if !circumcircle.Infinite() {
				if circumcircle.Contains(p) {
					badSet = append(badSet, t)
				}
			} else if halfplaneContains(t, p) {
				badSet = append(badSet, t)
			}
		}

		// The edges of bad triangles not shared with any other bad triangle
		// form the boundary of the cavity the removal leaves behind.
		var polygon []geometry.Edge
		for i, bad := range badSet {
			for _, e := range bad.Edges() {
				sharedEdge := false
				for j, other := range badSet {
					if i == j {
						continue
					}
					if other.HasEdge(e) {
						sharedEdge = true
						break
					}
				}

				if !sharedEdge {
					polygon = append(polygon, e)
				}
			}
		}

		// Remove all bad triangles from the triangulation
		kept := triangulation[:0]
		for _, t := range triangulation {
			if !containsTriangle(badSet, t) {
				kept = append(kept, t)
			}
		}
		triangulation = kept

		// Connect each boundary edge to the point to close the cavity. A
		// degenerate insertion can leave an empty boundary, in which case the
		// point simply contributes no triangles.
		for _, e := range polygon {
			triangulation = append(triangulation, geometry.Triangle{A: e.A, B: e.B, C: p})
		}
	}

	return removeSuperVertices(triangulation, super)
}

// removeSuperVertices drops every triangle still connected to a vertex of
// the seed triangle. The seed is passed in explicitly so the engine carries
// no hidden state between the construction and this final filter.
func removeSuperVertices(triangulation []geometry.Triangle, super geometry.Triangle) []geometry.Triangle {
	result := make([]geometry.Triangle, 0, len(triangulation))
	for _, t := range triangulation {
		if t.HasVertex(super.A) || t.HasVertex(super.B) || t.HasVertex(super.C) {
			continue
		}
		result = append(result, t)
	}
	return result
}

func containsTriangle(set []geometry.Triangle, t geometry.Triangle) bool {
	for _, other := range set {
		if t.Equals(other) {
			return true
		}
	}
	return false
}
