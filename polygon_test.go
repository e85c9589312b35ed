package polyclip

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestPolygonEmpty(t *testing.T) {
	test.That(t, Polygon{}.Empty())
	test.That(t, Polygon{}.Add(0.0, 0.0).Add(1.0, 0.0).Empty())
	test.That(t, !Polygon{}.Add(0.0, 0.0).Add(1.0, 0.0).Add(0.0, 1.0).Empty())
}

func TestPolygonArea(t *testing.T) {
	ccw := MustParsePolygon("0,0 4,0 4,4 0,4")
	cw := MustParsePolygon("0,0 0,4 4,4 4,0")
	test.Float(t, ccw.Area(), 16.0)
	test.Float(t, cw.Area(), -16.0)
	test.That(t, ccw.CCW())
	test.That(t, !cw.CCW())
}

func TestPolygonNormalize(t *testing.T) {
	ccw := MustParsePolygon("0,0 4,0 4,4 0,4")
	cw := MustParsePolygon("0,0 0,4 4,4 4,0")
	test.T(t, ccw.Normalize(), ccw)
	test.That(t, cw.Normalize().CCW())
	test.That(t, cw.Normalize().Equals(ccw))
	test.That(t, !cw.CCW(), "normalize does not modify the receiver")
}

func TestPolygonIsConvex(t *testing.T) {
	test.That(t, MustParsePolygon("0,0 4,0 4,4 0,4").IsConvex())
	test.That(t, MustParsePolygon("0,0 0,4 4,4 4,0").IsConvex(), "clockwise convex")
	test.That(t, MustParsePolygon("2,-2 6,2 2,6 -2,2").IsConvex())
	test.That(t, !MustParsePolygon("0,0 4,0 1,1 0,4").IsConvex())
	test.That(t, !Polygon{}.IsConvex())
	test.That(t, !MustParsePolygon("0,0 1,1").IsConvex())
}

func TestPolygonContains(t *testing.T) {
	p := MustParsePolygon("0,0 4,0 4,4 0,4")
	test.That(t, p.Contains(Point{2.0, 2.0}))
	test.That(t, p.Contains(Point{3.9, 0.1}))
	test.That(t, !p.Contains(Point{5.0, 2.0}))
	test.That(t, !p.Contains(Point{-1.0, -1.0}))
}

func TestPolygonBounds(t *testing.T) {
	min, max := MustParsePolygon("2,-2 6,2 2,6 -2,2").Bounds()
	test.T(t, min, Point{-2.0, -2.0})
	test.T(t, max, Point{6.0, 6.0})

	min, max = Polygon{}.Bounds()
	test.T(t, min, Point{})
	test.T(t, max, Point{})
}

func TestPolygonEquals(t *testing.T) {
	p := MustParsePolygon("0,0 4,0 4,4 0,4")
	test.That(t, p.Equals(MustParsePolygon("0,0 4,0 4,4 0,4")))
	test.That(t, p.Equals(MustParsePolygon("4,4 0,4 0,0 4,0")), "rotated start")
	test.That(t, p.Equals(MustParsePolygon("0,0 0,4 4,4 4,0")), "reversed orientation")
	test.That(t, !p.Equals(MustParsePolygon("0,0 4,0 4,4")))
	test.That(t, !p.Equals(MustParsePolygon("0,0 4,0 4,4 0,5")))
	test.That(t, Polygon{}.Equals(Polygon{}))
}

func TestPolygonClone(t *testing.T) {
	p := MustParsePolygon("0,0 4,0 4,4")
	q := p.Clone()
	q[0] = Point{9.0, 9.0}
	test.T(t, p[0], Point{0.0, 0.0})
	test.That(t, Polygon(nil).Clone() == nil)
}

func TestPolygonString(t *testing.T) {
	p := MustParsePolygon("0,0 4,0 4.5,4 0,4")
	test.T(t, p.String(), "0,0 4,0 4.5,4 0,4")
	test.T(t, MustParsePolygon(p.String()), p)
}
