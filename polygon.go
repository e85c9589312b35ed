package polyclip

import (
	"strings"
)

// Polygon defines a list of points in 2D space that form a closed polygon. The polygon is implicitly closed, ie. the last point connects to the first, and insertion order defines its edges (P[i],P[(i+1) mod n]).
type Polygon []Point

// Empty returns true if the polygon has fewer than three points and thus encloses no area.
func (p Polygon) Empty() bool {
	return len(p) < 3
}

// Len returns the number of vertices, which equals the number of edges.
func (p Polygon) Len() int {
	return len(p)
}

// Add adds a new point to the polygon.
func (p Polygon) Add(x, y float64) Polygon {
	return append(p, Point{x, y})
}

// Clone returns an independent copy of the polygon.
func (p Polygon) Clone() Polygon {
	if p == nil {
		return nil
	}
	q := make(Polygon, len(p))
	copy(q, p)
	return q
}

// Area returns the polygon's signed area, positive when the vertices are in counter clockwise order.
func (p Polygon) Area() float64 {
	a := 0.0
	for i := range p {
		a += p[i].PerpDot(p[(i+1)%len(p)])
	}
	return a / 2.0
}

// CCW returns true when the polygon's vertices are in counter clockwise order.
func (p Polygon) CCW() bool {
	return 0.0 <= p.Area()
}

// Normalize returns the polygon with its vertices in counter clockwise order, reversing them when wound clockwise. The original polygon is not modified.
func (p Polygon) Normalize() Polygon {
	if p.CCW() {
		return p
	}
	q := make(Polygon, len(p))
	for i := range p {
		q[len(p)-1-i] = p[i]
	}
	return q
}

// IsConvex returns true when all of the polygon's interior angles turn the same way. Polygons with fewer than three vertices are not convex.
func (p Polygon) IsConvex() bool {
	if p.Empty() {
		return false
	}
	pos, neg := false, false
	for i := range p {
		a, b, c := p[i], p[(i+1)%len(p)], p[(i+2)%len(p)]
		d := b.Sub(a).PerpDot(c.Sub(b))
		if Epsilon < d {
			pos = true
		} else if d < -Epsilon {
			neg = true
		}
	}
	return !pos || !neg
}

// Contains returns the even-odd rule result for the given point, ie. true when the point is enclosed by the polygon.
func (p Polygon) Contains(test Point) bool {
	// see https://wrf.ecse.rpi.edu//Research/Short_Notes/pnpoly.html
	count := 0
	prev := p[len(p)-1]
	for _, coord := range p {
		if (test.Y < coord.Y) != (test.Y < prev.Y) &&
			test.X < (prev.X-coord.X)*(test.Y-coord.Y)/(prev.Y-coord.Y)+coord.X {
			count++
		}
		prev = coord
	}
	return count%2 != 0
}

// Bounds returns the minimum and maximum corners of the polygon's bounding box.
func (p Polygon) Bounds() (Point, Point) {
	if len(p) == 0 {
		return Point{}, Point{}
	}
	min, max := p[0], p[0]
	for _, q := range p[1:] {
		if q.X < min.X {
			min.X = q.X
		} else if max.X < q.X {
			max.X = q.X
		}
		if q.Y < min.Y {
			min.Y = q.Y
		} else if max.Y < q.Y {
			max.Y = q.Y
		}
	}
	return min, max
}

// Equals returns true when both polygons have the same vertices in the same cyclic order, in either orientation and irrespective of the starting vertex. Vertices are compared with tolerance Epsilon.
func (p Polygon) Equals(q Polygon) bool {
	if len(p) != len(q) {
		return false
	} else if len(p) == 0 {
		return true
	}
	for shift := 0; shift < len(q); shift++ {
		if !p[0].Equals(q[shift]) {
			continue
		}
		forward, backward := true, true
		for i := 1; i < len(p); i++ {
			if !p[i].Equals(q[(shift+i)%len(q)]) {
				forward = false
			}
			if !p[i].Equals(q[(shift-i+len(q))%len(q)]) {
				backward = false
			}
		}
		if forward || backward {
			return true
		}
	}
	return false
}

// String returns the polygon as space separated x,y coordinate pairs, the format accepted by ParsePolygon.
func (p Polygon) String() string {
	sb := strings.Builder{}
	for i, q := range p {
		if i != 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(q.String())
	}
	return sb.String()
}
