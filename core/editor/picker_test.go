package editor

import (
	"testing"

	"gredit/core/graph"
)

func TestFindNear(t *testing.T) {
	g := graph.New(testLogger)
	origin := g.AddVertex(graph.Point{}, white)

	tests := []struct {
		name string
		at   graph.Point
		want bool
	}{
		{"inside", graph.Point{X: 10}, true},
		{"on vertex", graph.Point{}, true},
		{"diagonal inside", graph.Point{X: 10, Y: 10}, true},
		{"outside", graph.Point{X: 20}, false},
		{"boundary is exclusive", graph.Point{X: 15}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			id, ok := FindNear(g, tc.at, DefaultPickRadius)
			if ok != tc.want {
				t.Fatalf("FindNear(%v) ok = %v, want %v", tc.at, ok, tc.want)
			}
			if ok && id != origin {
				t.Fatalf("FindNear(%v) = %s, want %s", tc.at, id, origin)
			}
		})
	}
}

func TestFindNearFirstInsertedWins(t *testing.T) {
	g := graph.New(testLogger)
	first := g.AddVertex(graph.Point{X: 0}, white)
	g.AddVertex(graph.Point{X: 9}, white) // closer to the query

	id, ok := FindNear(g, graph.Point{X: 8}, DefaultPickRadius)
	if !ok || id != first {
		t.Fatalf("FindNear = %s, %v; want first vertex %s", id, ok, first)
	}
}

func TestFindNearEmptyGraph(t *testing.T) {
	g := graph.New(testLogger)
	if _, ok := FindNear(g, graph.Point{}, DefaultPickRadius); ok {
		t.Fatalf("FindNear on empty graph returned a vertex")
	}
}
