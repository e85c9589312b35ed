// Package svg writes the polygons and step traces recorded by a clip as a static SVG file.
package svg

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/tdewolff/polyclip"
)

const (
	inputColor        = "#0074d9"
	clipColor         = "#ff4136"
	outputColor       = "#2ecc40"
	intersectionColor = "#ff851b"
)

// SVG writes clip geometry to an SVG document. Stroke widths and marker radii are relative to the view size so that traces look the same at any coordinate scale.
type SVG struct {
	w             io.Writer
	width, height float64
	stroke        float64
}

// New creates an SVG writer with the given view rectangle in polygon coordinates.
func New(w io.Writer, x, y, width, height float64) *SVG {
	fmt.Fprintf(w, `<svg version="1.1" width="%v" height="%v" viewBox="%v %v %v %v" xmlns="http://www.w3.org/2000/svg">`, dec(width), dec(height), dec(x), dec(y), dec(width), dec(height))
	return &SVG{
		w:      w,
		width:  width,
		height: height,
		stroke: math.Max(width, height) / 150.0,
	}
}

// Close finishes the document.
func (r *SVG) Close() error {
	_, err := fmt.Fprintf(r.w, "</svg>")
	return err
}

func points(p polyclip.Polygon) string {
	sb := strings.Builder{}
	for i, q := range p {
		if i != 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v,%v", num(q.X), num(q.Y))
	}
	return sb.String()
}

// DrawPolygon writes the polygon as a closed outline with a translucent fill.
func (r *SVG) DrawPolygon(p polyclip.Polygon, color string) {
	if len(p) == 0 {
		return
	}
	fmt.Fprintf(r.w, `<polygon points="%s" fill="%s" fill-opacity="0.2" stroke="%s" stroke-width="%v"/>`, points(p), color, color, num(r.stroke))
}

// DrawEdge writes a directed clip edge as an emphasized line.
func (r *SVG) DrawEdge(e polyclip.ClipEdge) {
	fmt.Fprintf(r.w, `<line x1="%v" y1="%v" x2="%v" y2="%v" stroke="%s" stroke-width="%v"/>`, num(e.Start.X), num(e.Start.Y), num(e.End.X), num(e.End.Y), clipColor, num(1.5*r.stroke))
}

// DrawIntersections writes circular markers at the given points.
func (r *SVG) DrawIntersections(zs []polyclip.Point) {
	for _, z := range zs {
		fmt.Fprintf(r.w, `<circle cx="%v" cy="%v" r="%v" fill="none" stroke="%s" stroke-width="%v"/>`, num(z.X), num(z.Y), num(2.0*r.stroke), intersectionColor, num(r.stroke))
	}
}

// DrawStep writes one clipping step: the input polygon, the clip edge that was applied, the output polygon, and the computed intersections.
func (r *SVG) DrawStep(step polyclip.ClipStep) {
	r.DrawPolygon(step.Input, inputColor)
	r.DrawPolygon(step.Output, outputColor)
	r.DrawEdge(step.Edge)
	r.DrawIntersections(step.Intersections)
}

func (r *SVG) push(tx, ty float64) {
	fmt.Fprintf(r.w, `<g transform="translate(%v,%v)">`, num(tx), num(ty))
}

func (r *SVG) pop() {
	fmt.Fprintf(r.w, "</g>")
}

// Writer writes the full step trace as one SVG document, with the steps tiled left to right in playback order.
func Writer(w io.Writer, steps []polyclip.ClipStep) error {
	if len(steps) == 0 {
		svg := New(w, 0.0, 0.0, 1.0, 1.0)
		return svg.Close()
	}

	min, max := stepBounds(steps[0])
	for _, step := range steps[1:] {
		lo, hi := stepBounds(step)
		min.X = math.Min(min.X, lo.X)
		min.Y = math.Min(min.Y, lo.Y)
		max.X = math.Max(max.X, hi.X)
		max.Y = math.Max(max.Y, hi.Y)
	}
	bw, bh := max.X-min.X, max.Y-min.Y
	margin := 0.05 * math.Max(bw, bh)
	tile := bw + 2.0*margin

	svg := New(w, min.X-margin, min.Y-margin, tile*float64(len(steps)), bh+2.0*margin)
	for i, step := range steps {
		svg.push(tile*float64(i), 0.0)
		svg.DrawStep(step)
		svg.pop()
	}
	return svg.Close()
}

func stepBounds(step polyclip.ClipStep) (polyclip.Point, polyclip.Point) {
	box := append(step.Input.Clone(), step.Edge.Start, step.Edge.End)
	return box.Bounds()
}
