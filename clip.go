package polyclip

// ActionKind classifies a single per-vertex decision made while clipping against one edge.
type ActionKind int

const (
	// AddVertex is an input vertex that was kept in the output.
	AddVertex ActionKind = iota
	// AddIntersection is a computed intersection between a subject edge and the clip edge that was added to the output.
	AddIntersection
	// SkipVertex is an input vertex that was dropped because its edge lies entirely outside the clip edge.
	SkipVertex
)

func (kind ActionKind) String() string {
	switch kind {
	case AddVertex:
		return "add"
	case AddIntersection:
		return "intersect"
	case SkipVertex:
		return "skip"
	}
	return "unknown"
}

// Action records one decision of the clipping rule. Actions are purely observational and have no effect on the result.
type Action struct {
	Kind   ActionKind
	Vertex Point
	Reason string
}

// ClipEdge is a directed edge of the clipping polygon. With counter clockwise winding its inside half-plane lies to the left.
type ClipEdge struct {
	Start, End Point
}

// ClipStep is a complete snapshot of one edge-clipping pass: the clip edge that was applied, the polygon it was applied to, the polygon it produced, the intersection points it computed, and the per-vertex decisions it made. All fields are independent copies, mutating the clipper's working buffers afterwards cannot alter a recorded step.
type ClipStep struct {
	Edge          ClipEdge
	Input         Polygon
	Output        Polygon
	Intersections []Point
	Actions       []Action
}

// clipEdge applies one clipping edge to the polygon following the Sutherland-Hodgman transition rule, and records the pass as a ClipStep. An empty input polygon yields an empty output and a step with empty fields. When a transition expects an intersection but the segments are near-parallel, no point is added for that transition.
func clipEdge(p Polygon, edge ClipEdge) (Polygon, ClipStep) {
	var output Polygon
	var zs []Point
	var actions []Action
	for i := range p {
		cur, next := p[i], p[(i+1)%len(p)]
		curInside := insideEdge(cur, edge.Start, edge.End)
		nextInside := insideEdge(next, edge.Start, edge.End)
		if curInside && nextInside {
			output = append(output, next)
			actions = append(actions, Action{AddVertex, next, "edge fully inside"})
		} else if curInside {
			if z, ok := intersectSegments(cur, next, edge.Start, edge.End); ok {
				output = append(output, z)
				zs = append(zs, z)
				actions = append(actions, Action{AddIntersection, z, "edge leaves the clip boundary"})
			}
		} else if nextInside {
			if z, ok := intersectSegments(cur, next, edge.Start, edge.End); ok {
				output = append(output, z)
				zs = append(zs, z)
				actions = append(actions, Action{AddIntersection, z, "edge enters the clip boundary"})
			}
			output = append(output, next)
			actions = append(actions, Action{AddVertex, next, "end point inside"})
		} else {
			actions = append(actions, Action{SkipVertex, next, "edge fully outside"})
		}
	}

	step := ClipStep{
		Edge:          edge,
		Input:         p.Clone(),
		Output:        output.Clone(),
		Intersections: append([]Point{}, zs...),
		Actions:       append([]Action{}, actions...),
	}
	return output, step
}

// Clip returns the intersection of the subject polygon with a convex clipping polygon, together with a Ledger holding the step trace of the computation. The ledger is freshly allocated per call and owned by the caller.
//
// Both polygons must have at least three points, otherwise the result is empty and the ledger holds no steps. The clip polygon's winding is normalized to counter clockwise once at entry, its winding direction does not affect the result. When the running output polygon drops below three points the remaining clip edges are skipped and the result is empty; otherwise the result is the output of the last clip edge. Correctness requires the clip polygon to be simple and convex, a concave clip polygon silently produces a wrong result.
func Clip(subject, clip Polygon) (Polygon, *Ledger) {
	ledger := &Ledger{cursor: -1}
	if subject.Empty() || clip.Empty() {
		return Polygon{}, ledger
	}

	clip = clip.Normalize()
	output := subject.Clone()
	for i := range clip {
		edge := ClipEdge{clip[i], clip[(i+1)%len(clip)]}
		var step ClipStep
		output, step = clipEdge(output, edge)
		ledger.steps = append(ledger.steps, step)
		if output.Empty() {
			return Polygon{}, ledger
		}
	}
	return output, ledger
}
