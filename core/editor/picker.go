package editor

import "gredit/core/graph"

// DefaultPickRadius is how close, in canvas units, a pointer has to be to
// a vertex to grab it.
const DefaultPickRadius = 15.0

// FindNear returns the first vertex in insertion order lying strictly within
// radius of pos. The first hit wins even when a later vertex is closer.
func FindNear(g graph.Reader, pos graph.Point, radius float64) (graph.VertexID, bool) {
	for _, v := range g.Vertices() {
		if v.Pos.Dist(pos) < radius {
			return v.ID, true
		}
	}
	return graph.VertexID{}, false
}
