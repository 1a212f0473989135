package editor

import (
	"fmt"
	"image/color"

	"gredit/core/graph"
)

// Mutation is a single graph change produced by a transition.
type Mutation interface {
	Apply(g *graph.Graph) error
	fmt.Stringer
}

type AddVertex struct {
	Pos   graph.Point
	Color color.Color
}

func (m AddVertex) Apply(g *graph.Graph) error {
	g.AddVertex(m.Pos, m.Color)
	return nil
}

func (m AddVertex) String() string {
	return fmt.Sprintf("add vertex at (%.1f, %.1f)", m.Pos.X, m.Pos.Y)
}

type MoveVertex struct {
	ID  graph.VertexID
	Pos graph.Point
}

func (m MoveVertex) Apply(g *graph.Graph) error {
	return g.MoveVertex(m.ID, m.Pos)
}

func (m MoveVertex) String() string {
	return fmt.Sprintf("move %s to (%.1f, %.1f)", m.ID, m.Pos.X, m.Pos.Y)
}

type AddEdge struct {
	A, B  graph.VertexID
	Color color.Color
}

func (m AddEdge) Apply(g *graph.Graph) error {
	_, err := g.AddEdge(m.A, m.B, m.Color)
	return err
}

func (m AddEdge) String() string {
	return fmt.Sprintf("add edge %s-%s", m.A, m.B)
}

type RemoveEdge struct {
	ID graph.EdgeID
}

func (m RemoveEdge) Apply(g *graph.Graph) error {
	if !g.RemoveEdge(m.ID) {
		return fmt.Errorf("remove %s: %w", m.ID, graph.ErrStaleHandle)
	}
	return nil
}

func (m RemoveEdge) String() string {
	return fmt.Sprintf("remove edge %s", m.ID)
}

type RemoveVertex struct {
	ID graph.VertexID
}

func (m RemoveVertex) Apply(g *graph.Graph) error {
	if !g.RemoveVertex(m.ID) {
		return fmt.Errorf("remove %s: %w", m.ID, graph.ErrStaleHandle)
	}
	return nil
}

func (m RemoveVertex) String() string {
	return fmt.Sprintf("remove vertex %s", m.ID)
}
