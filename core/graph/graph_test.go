package graph

import (
	"errors"
	"image/color"
	"io"
	"testing"

	glog "gredit/internal/log"
)

var testLogger *glog.Logger

func init() {
	testLogger = glog.New(io.Discard, glog.LevelDebug)
}

var white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

func TestAddVertexDistinctHandles(t *testing.T) {
	g := New(testLogger)
	seen := map[VertexID]bool{}
	for i := 0; i < 50; i++ {
		id := g.AddVertex(Point{X: float64(i)}, white)
		if !id.Valid() {
			t.Fatalf("handle %d is not valid", i)
		}
		if seen[id] {
			t.Fatalf("handle %s issued twice", id)
		}
		seen[id] = true
	}
	if g.VertexCount() != 50 {
		t.Fatalf("VertexCount = %d, want 50", g.VertexCount())
	}
}

func TestHandlesNotReusedAfterRemoval(t *testing.T) {
	g := New(testLogger)
	a := g.AddVertex(Point{}, white)
	if !g.RemoveVertex(a) {
		t.Fatalf("RemoveVertex(%s) = false", a)
	}
	b := g.AddVertex(Point{X: 1}, white)
	if a == b {
		t.Fatalf("reused slot kept the old handle %s", a)
	}
	if _, ok := g.Vertex(a); ok {
		t.Fatalf("stale handle %s still resolves", a)
	}
	if v, ok := g.Vertex(b); !ok || v.Pos.X != 1 {
		t.Fatalf("Vertex(%s) = %+v, %v", b, v, ok)
	}
}

func TestVerticesInsertionOrderSurvivesSlotReuse(t *testing.T) {
	g := New(testLogger)
	a := g.AddVertex(Point{X: 1}, white)
	b := g.AddVertex(Point{X: 2}, white)
	g.RemoveVertex(a)
	c := g.AddVertex(Point{X: 3}, white) // lands in a's old slot

	got := g.Vertices()
	if len(got) != 2 || got[0].ID != b || got[1].ID != c {
		t.Fatalf("Vertices order = %v, want [%s %s]", got, b, c)
	}
}

func TestRemoveVertexCascadesEdges(t *testing.T) {
	g := New(testLogger)
	a := g.AddVertex(Point{}, white)
	b := g.AddVertex(Point{X: 100}, white)
	c := g.AddVertex(Point{Y: 100}, white)
	mustEdge(t, g, a, b)
	mustEdge(t, g, a, a)
	mustEdge(t, g, c, a)
	keep := mustEdge(t, g, b, c)

	g.RemoveVertex(a)

	if g.VertexCount() != 2 {
		t.Fatalf("VertexCount = %d, want 2", g.VertexCount())
	}
	if g.EdgeCount() != 1 {
		t.Fatalf("EdgeCount = %d, want 1", g.EdgeCount())
	}
	for _, e := range g.Edges() {
		if e.Touches(a) {
			t.Fatalf("edge %s still references removed vertex %s", e.ID, a)
		}
	}
	for _, other := range []VertexID{a, b, c} {
		if _, ok := g.FindEdge(a, other); ok {
			t.Fatalf("FindEdge(%s, %s) found an edge after removal", a, other)
		}
	}
	if _, ok := g.Edge(keep); !ok {
		t.Fatalf("unrelated edge %s was removed", keep)
	}
}

func TestSelfLoopAndParallelEdges(t *testing.T) {
	g := New(testLogger)
	a := g.AddVertex(Point{}, white)
	b := g.AddVertex(Point{X: 10}, white)

	loop := mustEdge(t, g, a, a)
	e, _ := g.Edge(loop)
	if !e.Loop() || e.A != a || e.B != a {
		t.Fatalf("self-loop = %+v", e)
	}

	first := mustEdge(t, g, a, b)
	second := mustEdge(t, g, b, a)
	if first == second {
		t.Fatalf("parallel edges share handle %s", first)
	}
	if g.EdgeCount() != 3 {
		t.Fatalf("EdgeCount = %d, want 3", g.EdgeCount())
	}
}

func TestFindEdgeUnorderedFirstMatch(t *testing.T) {
	g := New(testLogger)
	a := g.AddVertex(Point{}, white)
	b := g.AddVertex(Point{X: 10}, white)
	c := g.AddVertex(Point{X: 20}, white)
	mustEdge(t, g, a, c)
	first := mustEdge(t, g, b, a)
	mustEdge(t, g, a, b)

	for _, pair := range [][2]VertexID{{a, b}, {b, a}} {
		id, ok := g.FindEdge(pair[0], pair[1])
		if !ok || id != first {
			t.Fatalf("FindEdge(%s, %s) = %s, %v; want %s", pair[0], pair[1], id, ok, first)
		}
	}
	if _, ok := g.FindEdge(b, c); ok {
		t.Fatalf("FindEdge(b, c) found a non-existent edge")
	}

	g.RemoveEdge(first)
	id, ok := g.FindEdge(a, b)
	if !ok || id == first {
		t.Fatalf("after removal FindEdge = %s, %v", id, ok)
	}
	if g.EdgeCount() != 2 {
		t.Fatalf("EdgeCount = %d, want 2", g.EdgeCount())
	}
}

func TestStaleHandlesAreNoOps(t *testing.T) {
	g := New(testLogger)
	a := g.AddVertex(Point{}, white)
	b := g.AddVertex(Point{X: 10}, white)
	e := mustEdge(t, g, a, b)
	g.RemoveVertex(a)

	if err := g.MoveVertex(a, Point{X: 5}); !errors.Is(err, ErrStaleHandle) {
		t.Fatalf("MoveVertex(stale) err = %v", err)
	}
	if _, err := g.AddEdge(a, b, white); !errors.Is(err, ErrStaleHandle) {
		t.Fatalf("AddEdge(stale, live) err = %v", err)
	}
	if _, err := g.AddEdge(b, a, white); !errors.Is(err, ErrStaleHandle) {
		t.Fatalf("AddEdge(live, stale) err = %v", err)
	}
	if g.RemoveVertex(a) {
		t.Fatalf("second RemoveVertex returned true")
	}
	if g.RemoveEdge(e) {
		t.Fatalf("RemoveEdge on cascaded edge returned true")
	}
	if g.RemoveVertex(VertexID{}) || g.RemoveEdge(EdgeID{}) {
		t.Fatalf("zero handles removed something")
	}
	if g.VertexCount() != 1 || g.EdgeCount() != 0 {
		t.Fatalf("counts = %d/%d, want 1/0", g.VertexCount(), g.EdgeCount())
	}
}

func TestMoveVertex(t *testing.T) {
	g := New(testLogger)
	a := g.AddVertex(Point{X: 5, Y: 5}, white)
	if err := g.MoveVertex(a, Point{X: 50, Y: 50}); err != nil {
		t.Fatalf("MoveVertex: %v", err)
	}
	v, _ := g.Vertex(a)
	if v.Pos != (Point{X: 50, Y: 50}) {
		t.Fatalf("Pos = %+v", v.Pos)
	}
}

func TestSnapshotResolvesEndpoints(t *testing.T) {
	g := New(testLogger)
	a := g.AddVertex(Point{X: 1, Y: 2}, white)
	b := g.AddVertex(Point{X: 3, Y: 4}, white)
	mustEdge(t, g, a, b)
	mustEdge(t, g, b, b)

	snap := g.Snapshot()
	if len(snap.Vertices) != 2 || len(snap.Edges) != 2 {
		t.Fatalf("snapshot sizes = %d/%d", len(snap.Vertices), len(snap.Edges))
	}
	if snap.Edges[0].From != (Point{X: 1, Y: 2}) || snap.Edges[0].To != (Point{X: 3, Y: 4}) {
		t.Fatalf("edge 0 = %+v", snap.Edges[0])
	}
	if !snap.Edges[1].Loop() || snap.Edges[1].From != snap.Edges[1].To {
		t.Fatalf("edge 1 = %+v", snap.Edges[1])
	}
	if snap.Index(b) != 1 || snap.Index(VertexID{}) != -1 {
		t.Fatalf("Index mismatch")
	}

	// later mutations must not leak into the copy
	g.MoveVertex(a, Point{X: 99})
	if snap.Vertices[0].Pos.X != 1 {
		t.Fatalf("snapshot aliased live vertex")
	}
}

func mustEdge(t *testing.T, g *Graph, a, b VertexID) EdgeID {
	t.Helper()
	id, err := g.AddEdge(a, b, white)
	if err != nil {
		t.Fatalf("AddEdge(%s, %s): %v", a, b, err)
	}
	return id
}
