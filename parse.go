package polyclip

import (
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

func skipCommaWhitespace(b []byte) int {
	i := 0
	for i < len(b) && (b[i] == ' ' || b[i] == ',' || b[i] == '\n' || b[i] == '\r' || b[i] == '\t') {
		i++
	}
	return i
}

// ParsePolygon parses a polygon from whitespace or comma separated coordinate pairs, such as "0,0 4,0 4,4 0,4". The number of coordinates must be even.
func ParsePolygon(s string) (Polygon, error) {
	b := []byte(s)
	var p Polygon
	i := skipCommaWhitespace(b)
	for i < len(b) {
		x, n := strconv.ParseFloat(b[i:])
		if n == 0 {
			return nil, fmt.Errorf("bad coordinate at position %d", i)
		}
		i += n
		i += skipCommaWhitespace(b[i:])
		if len(b) <= i {
			return nil, fmt.Errorf("odd number of coordinates")
		}
		y, n := strconv.ParseFloat(b[i:])
		if n == 0 {
			return nil, fmt.Errorf("bad coordinate at position %d", i)
		}
		i += n
		i += skipCommaWhitespace(b[i:])
		p = append(p, Point{x, y})
	}
	return p, nil
}

// MustParsePolygon parses a polygon and panics on failure.
func MustParsePolygon(s string) Polygon {
	p, err := ParsePolygon(s)
	if err != nil {
		panic(err)
	}
	return p
}
