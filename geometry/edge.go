package geometry

// Edge is an unordered pair of points. Edges carry no identity beyond their
// endpoints, so equality is symmetric: (a, b) and (b, a) are the same edge.
type Edge struct {
	A, B Point
}

func (e Edge) Equals(other Edge) bool {
	return (e.A.Equals(other.A) && e.B.Equals(other.B)) ||
		(e.A.Equals(other.B) && e.B.Equals(other.A))
}
