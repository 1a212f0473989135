// Package geometry turns a graph snapshot into drawable primitives.
package geometry

import (
	"image/color"
	"math"

	"gredit/core/graph"
)

// DefaultLoopSteps is the number of angular steps used for a self-loop ring.
const DefaultLoopSteps = 16

// Transform maps canvas coordinates into the renderer's plot space.
type Transform func(graph.Point) graph.Point

func Identity(p graph.Point) graph.Point { return p }

// Scale returns a transform that multiplies each axis.
func Scale(sx, sy float64) Transform {
	return func(p graph.Point) graph.Point {
		return graph.Point{X: p.X * sx, Y: p.Y * sy}
	}
}

// Then composes t with next, applying t first.
func (t Transform) Then(next Transform) Transform {
	return func(p graph.Point) graph.Point { return next(t(p)) }
}

// Polyline is an ordered list of plot-space points.
type Polyline []graph.Point

// Closed reports whether the first and last points coincide within eps.
func (p Polyline) Closed(eps float64) bool {
	if len(p) < 3 {
		return false
	}
	return p[0].Dist(p[len(p)-1]) <= eps
}

type Dot struct {
	ID    graph.VertexID
	At    graph.Point
	Color color.Color
}

type Stroke struct {
	ID    graph.EdgeID
	Line  Polyline
	Loop  bool
	Color color.Color
}

// Scene is everything a renderer needs for one frame, already in plot space.
type Scene struct {
	Dots    []Dot
	Strokes []Stroke
}

type Projector struct {
	Transform  Transform
	LoopRadius float64
	LoopSteps  int
}

func NewProjector(t Transform, loopRadius float64) Projector {
	return Projector{Transform: t, LoopRadius: loopRadius, LoopSteps: DefaultLoopSteps}
}

func (pr Projector) project(p graph.Point) graph.Point {
	if pr.Transform == nil {
		return p
	}
	return pr.Transform(p)
}

// Edge returns the polyline for one edge: a segment between the endpoints,
// or a ring beside the vertex for a self-loop.
func (pr Projector) Edge(ev graph.EdgeView) Polyline {
	from := pr.project(ev.From)
	if ev.Loop() {
		return pr.Loop(from)
	}
	return Polyline{from, pr.project(ev.To)}
}

// Loop samples a circle of LoopRadius whose center sits diagonally off at,
// so the ring touches the vertex instead of hiding under it. The result has
// LoopSteps+1 points and ends where it starts.
func (pr Projector) Loop(at graph.Point) Polyline {
	steps := pr.LoopSteps
	if steps < 3 {
		steps = DefaultLoopSteps
	}
	r := pr.LoopRadius
	offset := r / math.Sqrt2
	step := 2 * math.Pi / float64(steps)

	out := make(Polyline, 0, steps+1)
	for z := 0; z <= steps; z++ {
		a := step * float64(z)
		out = append(out, graph.Point{
			X: at.X + offset + r*math.Cos(a),
			Y: at.Y + offset + r*math.Sin(a),
		})
	}
	return out
}

func (pr Projector) Scene(snap graph.Snapshot) Scene {
	sc := Scene{
		Dots:    make([]Dot, 0, len(snap.Vertices)),
		Strokes: make([]Stroke, 0, len(snap.Edges)),
	}
	for _, ev := range snap.Edges {
		sc.Strokes = append(sc.Strokes, Stroke{
			ID:    ev.ID,
			Line:  pr.Edge(ev),
			Loop:  ev.Loop(),
			Color: ev.Color,
		})
	}
	for _, v := range snap.Vertices {
		sc.Dots = append(sc.Dots, Dot{ID: v.ID, At: pr.project(v.Pos), Color: v.Color})
	}
	return sc
}

// Bounds returns the bounding box of every point in the scene. ok is false
// for an empty scene.
func (sc Scene) Bounds() (lo, hi graph.Point, ok bool) {
	visit := func(p graph.Point) {
		if !ok {
			lo, hi, ok = p, p, true
			return
		}
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
	}
	for _, d := range sc.Dots {
		visit(d.At)
	}
	for _, s := range sc.Strokes {
		for _, p := range s.Line {
			visit(p)
		}
	}
	return lo, hi, ok
}
