package graph

// EdgeView is an edge with its endpoint positions resolved.
type EdgeView struct {
	Edge
	From, To Point
}

// Snapshot is an immutable copy of the graph taken after a tick has settled.
// Renderers read it without touching the live graph.
type Snapshot struct {
	Vertices []Vertex
	Edges    []EdgeView
}

func (g *Graph) Snapshot() Snapshot {
	snap := Snapshot{
		Vertices: g.Vertices(),
		Edges:    make([]EdgeView, 0, g.edges.len()),
	}
	g.edges.each(func(_ handle, e *Edge) bool {
		a, okA := g.vertices.get(e.A.h)
		b, okB := g.vertices.get(e.B.h)
		if !okA || !okB {
			g.logger.Errorf("[GRAPH] edge %s has a dangling endpoint", e.ID)
			return true
		}
		snap.Edges = append(snap.Edges, EdgeView{Edge: *e, From: a.Pos, To: b.Pos})
		return true
	})
	return snap
}

// Empty reports whether there is nothing to draw.
func (s Snapshot) Empty() bool {
	return len(s.Vertices) == 0 && len(s.Edges) == 0
}

// Index returns the insertion-order position of id, or -1.
func (s Snapshot) Index(id VertexID) int {
	for i, v := range s.Vertices {
		if v.ID == id {
			return i
		}
	}
	return -1
}
