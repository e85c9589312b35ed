package polyclip

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestParsePolygon(t *testing.T) {
	p, err := ParsePolygon("0,0 4,0 4,4 0,4")
	test.Error(t, err)
	test.T(t, p, Polygon{{0.0, 0.0}, {4.0, 0.0}, {4.0, 4.0}, {0.0, 4.0}})

	p, err = ParsePolygon(" 1,2,3,4 ")
	test.Error(t, err)
	test.T(t, p, Polygon{{1.0, 2.0}, {3.0, 4.0}})

	p, err = ParsePolygon("1.5,-2.5\n1e2,0.25")
	test.Error(t, err)
	test.T(t, p, Polygon{{1.5, -2.5}, {100.0, 0.25}})

	p, err = ParsePolygon("")
	test.Error(t, err)
	test.T(t, len(p), 0)
}

func TestParsePolygonError(t *testing.T) {
	var tts = []string{
		"abc",
		"1,2 x,4",
		"1,2 3",
		"1",
	}
	for _, tt := range tts {
		t.Run(tt, func(t *testing.T) {
			_, err := ParsePolygon(tt)
			test.That(t, err != nil)
		})
	}
}

func TestMustParsePolygon(t *testing.T) {
	test.T(t, MustParsePolygon("0,0 1,0 0,1").Len(), 3)
	defer func() {
		test.That(t, recover() != nil)
	}()
	MustParsePolygon("nope")
}
