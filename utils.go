package main

import (
	"math"

	"gredit/core/geometry"
	"gredit/core/graph"
)

// canvasSize is the drawable area in cells, excluding bars and the panel.
func (m *model) canvasSize() (int, int) {
	w := m.width - sidePanelWidth
	h := m.height - topBarHeight - statusHeight
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// screenToCanvas maps a screen cell to the canvas cell under it. ok is false
// outside the drawable area.
func (m *model) screenToCanvas(x, y int) (cx, cy int, ok bool) {
	cx = x - sidePanelWidth
	cy = y - topBarHeight
	w, h := m.canvasSize()
	return cx, cy, cx >= 0 && cy >= 0 && cx < w && cy < h
}

// worldCoords returns the canvas point at the center of a canvas cell.
func (m *model) worldCoords(cx, cy int) graph.Point {
	cw, ch := m.config.Render.CellWidth, m.config.Render.CellHeight
	return graph.Point{
		X: (float64(cx) + 0.5) * cw,
		Y: (float64(cy) + 0.5) * ch,
	}
}

// cellTransform projects canvas points into fractional cell coordinates.
func (m *model) cellTransform() geometry.Transform {
	return geometry.Scale(1/m.config.Render.CellWidth, 1/m.config.Render.CellHeight)
}

// terminalProjector draws loops at the configured radius measured in canvas
// units, converted to cells along the horizontal axis.
func (m *model) terminalProjector() geometry.Projector {
	return geometry.NewProjector(m.cellTransform(), m.config.Render.LoopRadius/m.config.Render.CellWidth)
}

func (m *model) cursorPoint() graph.Point {
	return m.worldCoords(m.cursorX, m.cursorY)
}

func toCell(p graph.Point) point {
	return point{X: int(math.Floor(p.X)), Y: int(math.Floor(p.Y))}
}
