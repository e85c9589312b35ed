package polyclip

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	subjectColor      = color.NRGBA{0, 116, 217, 96}
	clipColor         = color.NRGBA{255, 65, 54, 255}
	resultColor       = color.NRGBA{46, 204, 64, 160}
	intersectionColor = color.NRGBA{255, 133, 27, 255}
)

func plotterXYs(p Polygon) plotter.XYs {
	xys := make(plotter.XYs, len(p))
	for i, q := range p {
		xys[i] = plotter.XY{X: q.X, Y: q.Y}
	}
	return xys
}

func addPolygon(p *plot.Plot, poly Polygon, col color.Color, name string) error {
	if len(poly) == 0 {
		return nil
	}
	shape, err := plotter.NewPolygon(plotterXYs(poly))
	if err != nil {
		return err
	}
	shape.Color = col
	p.Add(shape)
	p.Legend.Add(name, shape)
	return nil
}

// StepPlot returns a gonum/plot figure of a single clipping step, showing the input polygon, the clip edge that was applied, the output polygon, and the computed intersection points.
func StepPlot(step ClipStep) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("clip edge %v - %v", step.Edge.Start, step.Edge.End)

	if err := addPolygon(p, step.Input, subjectColor, "input"); err != nil {
		return nil, err
	}
	if err := addPolygon(p, step.Output, resultColor, "output"); err != nil {
		return nil, err
	}

	edge, err := plotter.NewLine(plotter.XYs{
		{X: step.Edge.Start.X, Y: step.Edge.Start.Y},
		{X: step.Edge.End.X, Y: step.Edge.End.Y},
	})
	if err != nil {
		return nil, err
	}
	edge.Color = clipColor
	edge.Width = vg.Points(2)
	p.Add(edge)
	p.Legend.Add("clip edge", edge)

	if 0 < len(step.Intersections) {
		zs, err := plotter.NewScatter(plotterXYs(step.Intersections))
		if err != nil {
			return nil, err
		}
		zs.GlyphStyle.Color = intersectionColor
		zs.GlyphStyle.Shape = draw.RingGlyph{}
		zs.GlyphStyle.Radius = vg.Points(4)
		p.Add(zs)
		p.Legend.Add("intersections", zs)
	}
	return p, nil
}

// ResultPlot returns a gonum/plot figure of a full clip: the subject and clipping polygons and their intersection.
func ResultPlot(subject, clip, result Polygon) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "polygon clip"

	if err := addPolygon(p, subject, subjectColor, "subject"); err != nil {
		return nil, err
	}

	if !clip.Empty() {
		ring, err := plotter.NewLine(append(plotterXYs(clip), plotter.XY{X: clip[0].X, Y: clip[0].Y}))
		if err != nil {
			return nil, err
		}
		ring.Color = clipColor
		ring.Width = vg.Points(2)
		p.Add(ring)
		p.Legend.Add("clip", ring)
	}
	if err := addPolygon(p, result, resultColor, "result"); err != nil {
		return nil, err
	}
	return p, nil
}
