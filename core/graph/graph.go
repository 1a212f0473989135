// Package graph holds the editable undirected multigraph behind the editor.
//
// Vertices and edges are addressed by generation-tagged handles. A handle
// that outlives its entity is stale: lookups report "not found" and
// mutations through it do nothing, so callers may keep handles across
// deletions without checking first.
package graph

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	glog "gredit/internal/log"
)

// ErrStaleHandle is returned when a handle no longer names a live entity.
var ErrStaleHandle = errors.New("graph: stale handle")

// Point is a position in canvas space.
type Point struct {
	X, Y float64
}

func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

type VertexID struct{ h handle }

// Valid reports whether the handle was ever issued. It says nothing about
// whether the vertex still exists.
func (id VertexID) Valid() bool { return id.h.gen != 0 }

func (id VertexID) String() string {
	return fmt.Sprintf("v%d.%d", id.h.index, id.h.gen)
}

type EdgeID struct{ h handle }

func (id EdgeID) Valid() bool { return id.h.gen != 0 }

func (id EdgeID) String() string {
	return fmt.Sprintf("e%d.%d", id.h.index, id.h.gen)
}

type Vertex struct {
	ID    VertexID
	Pos   Point
	Color color.Color
}

type Edge struct {
	ID    EdgeID
	A, B  VertexID
	Color color.Color
}

// Loop reports whether the edge is a self-loop.
func (e Edge) Loop() bool { return e.A == e.B }

// Joins reports whether the edge connects a and b in either orientation.
func (e Edge) Joins(a, b VertexID) bool {
	return (e.A == a && e.B == b) || (e.A == b && e.B == a)
}

// Touches reports whether v is one of the edge's endpoints.
func (e Edge) Touches(v VertexID) bool {
	return e.A == v || e.B == v
}

// Reader is the read-only view of a graph used by pickers and renderers.
type Reader interface {
	Vertex(id VertexID) (Vertex, bool)
	Vertices() []Vertex
	FindEdge(a, b VertexID) (EdgeID, bool)
}

type Graph struct {
	vertices arena[Vertex]
	edges    arena[Edge]
	logger   *glog.Logger
}

func New(logger *glog.Logger) *Graph {
	if logger == nil {
		logger = glog.Discard()
	}
	return &Graph{logger: logger}
}

func (g *Graph) AddVertex(pos Point, c color.Color) VertexID {
	h := g.vertices.insert(Vertex{Pos: pos, Color: c})
	id := VertexID{h}
	v, _ := g.vertices.get(h)
	v.ID = id
	g.logger.Debugf("[GRAPH] added vertex %s at (%.1f, %.1f)", id, pos.X, pos.Y)
	return id
}

// RemoveVertex deletes the vertex and every edge incident to it. It returns
// false if the handle is stale.
func (g *Graph) RemoveVertex(id VertexID) bool {
	if _, ok := g.vertices.get(id.h); !ok {
		g.logger.Debugf("[GRAPH] remove of stale vertex %s ignored", id)
		return false
	}
	var incident []handle
	g.edges.each(func(h handle, e *Edge) bool {
		if e.Touches(id) {
			incident = append(incident, h)
		}
		return true
	})
	for _, h := range incident {
		g.edges.remove(h)
	}
	g.vertices.remove(id.h)
	g.logger.Debugf("[GRAPH] removed vertex %s and %d incident edges", id, len(incident))
	return true
}

func (g *Graph) MoveVertex(id VertexID, pos Point) error {
	v, ok := g.vertices.get(id.h)
	if !ok {
		return fmt.Errorf("move %s: %w", id, ErrStaleHandle)
	}
	v.Pos = pos
	return nil
}

// AddEdge connects a and b. Equal endpoints make a self-loop and repeated
// calls make parallel edges.
func (g *Graph) AddEdge(a, b VertexID, c color.Color) (EdgeID, error) {
	if _, ok := g.vertices.get(a.h); !ok {
		return EdgeID{}, fmt.Errorf("add edge from %s: %w", a, ErrStaleHandle)
	}
	if _, ok := g.vertices.get(b.h); !ok {
		return EdgeID{}, fmt.Errorf("add edge to %s: %w", b, ErrStaleHandle)
	}
	h := g.edges.insert(Edge{A: a, B: b, Color: c})
	id := EdgeID{h}
	e, _ := g.edges.get(h)
	e.ID = id
	g.logger.Debugf("[GRAPH] added edge %s between %s and %s", id, a, b)
	return id, nil
}

// FindEdge returns the first edge, in insertion order, joining a and b.
func (g *Graph) FindEdge(a, b VertexID) (EdgeID, bool) {
	var found EdgeID
	ok := false
	g.edges.each(func(h handle, e *Edge) bool {
		if e.Joins(a, b) {
			found, ok = EdgeID{h}, true
			return false
		}
		return true
	})
	return found, ok
}

func (g *Graph) RemoveEdge(id EdgeID) bool {
	if !g.edges.remove(id.h) {
		g.logger.Debugf("[GRAPH] remove of stale edge %s ignored", id)
		return false
	}
	g.logger.Debugf("[GRAPH] removed edge %s", id)
	return true
}

func (g *Graph) Vertex(id VertexID) (Vertex, bool) {
	v, ok := g.vertices.get(id.h)
	if !ok {
		return Vertex{}, false
	}
	return *v, true
}

func (g *Graph) Edge(id EdgeID) (Edge, bool) {
	e, ok := g.edges.get(id.h)
	if !ok {
		return Edge{}, false
	}
	return *e, true
}

// Vertices returns a copy of the live vertices in insertion order.
func (g *Graph) Vertices() []Vertex {
	out := make([]Vertex, 0, g.vertices.len())
	g.vertices.each(func(_ handle, v *Vertex) bool {
		out = append(out, *v)
		return true
	})
	return out
}

// Edges returns a copy of the live edges in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edges.len())
	g.edges.each(func(_ handle, e *Edge) bool {
		out = append(out, *e)
		return true
	})
	return out
}

func (g *Graph) VertexCount() int { return g.vertices.len() }

func (g *Graph) EdgeCount() int { return g.edges.len() }
