package main

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gredit/core/geometry"
	"gredit/core/graph"
)

const (
	glyphVertex  = '●'
	glyphPending = '◉'
	glyphCursor  = '┼'
	glyphLoop    = '∘'
)

// Canvas is a grid of terminal cells holding one rasterized frame.
type Canvas struct {
	width  int
	height int
	aspect float64 // cell height over cell width
	cells  [][]cell
}

func NewCanvas(width, height int, aspect float64) *Canvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if aspect <= 0 {
		aspect = 2
	}
	c := &Canvas{width: width, height: height, aspect: aspect}
	c.cells = make([][]cell, height)
	for y := range c.cells {
		c.cells[y] = make([]cell, width)
		for x := range c.cells[y] {
			c.cells[y][x].r = ' '
		}
	}
	return c
}

func (c *Canvas) isValidPos(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.width && y < c.height
}

func (c *Canvas) set(x, y int, r rune, ink string, bold bool) {
	if !c.isValidPos(x, y) {
		return
	}
	c.cells[y][x] = cell{r: r, color: ink, bold: bold}
}

func (c *Canvas) at(x, y int) rune {
	if !c.isValidPos(x, y) {
		return 0
	}
	return c.cells[y][x].r
}

// lineGlyph picks a box-drawing rune for a segment, judging the slope as it
// looks on screen rather than in cell counts.
func (c *Canvas) lineGlyph(dx, dy float64) rune {
	ax := math.Abs(dx)
	ay := math.Abs(dy) * c.aspect
	switch {
	case ax > 2*ay:
		return '─'
	case ay > 2*ax:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

// drawLineSegment walks the cells between a and b with Bresenham's
// algorithm. a and b are in cell coordinates.
func (c *Canvas) drawLineSegment(a, b graph.Point, r rune, ink string) {
	p0, p1 := toCell(a), toCell(b)
	dx := abs(p1.X - p0.X)
	dy := -abs(p1.Y - p0.Y)
	sx, sy := 1, 1
	if p0.X > p1.X {
		sx = -1
	}
	if p0.Y > p1.Y {
		sy = -1
	}
	e := dx + dy
	x, y := p0.X, p0.Y
	for {
		c.set(x, y, r, ink, false)
		if x == p1.X && y == p1.Y {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

func (c *Canvas) drawStroke(s geometry.Stroke, ink string) {
	for i := 0; i+1 < len(s.Line); i++ {
		a, b := s.Line[i], s.Line[i+1]
		r := glyphLoop
		if !s.Loop {
			r = c.lineGlyph(b.X-a.X, b.Y-a.Y)
		}
		c.drawLineSegment(a, b, r, ink)
	}
}

func (c *Canvas) drawDot(d geometry.Dot, pending bool, ink, accent string) {
	p := toCell(d.At)
	if pending {
		c.set(p.X, p.Y, glyphPending, accent, true)
		return
	}
	c.set(p.X, p.Y, glyphVertex, ink, false)
}

func (c *Canvas) drawCursor(x, y int, ink string) {
	if !c.isValidPos(x, y) {
		return
	}
	if c.at(x, y) == ' ' {
		c.set(x, y, glyphCursor, ink, false)
		return
	}
	c.cells[y][x].bold = true
}

// Lines returns the frame row by row. Styled output wraps runs of equally
// colored cells in lipgloss styles; plain output is bare runes.
func (c *Canvas) Lines(styled bool) []string {
	out := make([]string, c.height)
	for y, row := range c.cells {
		if !styled {
			var sb strings.Builder
			for _, cl := range row {
				sb.WriteRune(cl.r)
			}
			out[y] = sb.String()
			continue
		}

		var sb strings.Builder
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].color == row[start].color && row[x].bold == row[start].bold {
				continue
			}
			sb.WriteString(renderRun(row[start:x]))
			start = x
		}
		out[y] = sb.String()
	}
	return out
}

func renderRun(run []cell) string {
	var sb strings.Builder
	for _, cl := range run {
		sb.WriteRune(cl.r)
	}
	if run[0].color == "" && !run[0].bold {
		return sb.String()
	}
	style := lipgloss.NewStyle().Bold(run[0].bold)
	if run[0].color != "" {
		style = style.Foreground(lipgloss.Color(run[0].color))
	}
	return style.Render(sb.String())
}

// renderCanvas rasterizes the current graph at the current terminal size.
func (m *model) renderCanvas() *Canvas {
	w, h := m.canvasSize()
	c := NewCanvas(w, h, m.config.Render.CellHeight/m.config.Render.CellWidth)

	snap := m.machine.Snapshot()
	scene := m.terminalProjector().Scene(snap)
	pending, armed := m.machine.Pending()

	for _, s := range scene.Strokes {
		c.drawStroke(s, m.theme.ink(s.Color))
	}
	for _, d := range scene.Dots {
		c.drawDot(d, armed && d.ID == pending, m.theme.ink(d.Color), m.theme.Accent)
	}
	if m.showCursor {
		c.drawCursor(m.cursorX, m.cursorY, m.theme.Muted)
	}
	return c
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
