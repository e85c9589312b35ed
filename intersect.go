package polyclip

import "math"

// insideEdge returns true when p lies in the left half-plane of the directed edge a-b. For counter clockwise wound clip polygons the left half-plane is the polygon's interior. Points within Epsilon of the edge's line count as inside, so that vertices exactly on the clip boundary classify deterministically.
func insideEdge(p, a, b Point) bool {
	return -Epsilon <= b.Sub(a).PerpDot(p.Sub(a))
}

// intersectSegments returns the intersection between segments s-e and a-b. Both lines are written in implicit form Ax + By = C and solved as a 2x2 linear system. Near-parallel lines, with the determinant's magnitude below Epsilon, yield no intersection, also when collinear and overlapping. A solution outside either segment's bounding box yields no intersection either.
func intersectSegments(s, e, a, b Point) (Point, bool) {
	A1 := e.Y - s.Y
	B1 := s.X - e.X
	C1 := A1*s.X + B1*s.Y

	A2 := b.Y - a.Y
	B2 := a.X - b.X
	C2 := A2*a.X + B2*a.Y

	det := A1*B2 - A2*B1
	if math.Abs(det) < Epsilon {
		// parallel or coincident
		return Point{}, false
	}

	z := Point{(B2*C1 - B1*C2) / det, (A1*C2 - A2*C1) / det}
	if !inSegmentBounds(z, s, e) || !inSegmentBounds(z, a, b) {
		return Point{}, false
	}
	return z, true
}

// inSegmentBounds is true when p lies within the bounding box of segment a-b, inclusive with tolerance Epsilon.
func inSegmentBounds(p, a, b Point) bool {
	return Interval(p.X, math.Min(a.X, b.X), math.Max(a.X, b.X)) &&
		Interval(p.Y, math.Min(a.Y, b.Y), math.Max(a.Y, b.Y))
}
