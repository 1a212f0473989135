package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gredit/core/editor"
)

func (m *model) View() string {
	if m.help {
		return m.helpView()
	}

	_, h := m.canvasSize()
	rows := m.renderCanvas().Lines(true)

	var sb strings.Builder
	sb.WriteString(m.topBar())
	sb.WriteByte('\n')
	for y := 0; y < h; y++ {
		sb.WriteString(m.panelCell(y))
		sb.WriteString(rows[y])
		sb.WriteByte('\n')
	}
	sb.WriteString(m.statusLine())
	return sb.String()
}

// topBar mirrors the window menu: a quit entry and the theme switch.
func (m *model) topBar() string {
	theme := "[" + m.theme.Name + "]"
	bar := " Quit" + strings.Repeat(" ", themeStart-quitEnd) + fmt.Sprintf("%-*s", themeEnd-themeStart, theme)
	width := m.width
	if width < len(bar) {
		width = len(bar)
	}
	return m.theme.bar.Width(width).Render(bar)
}

// panelCell renders row y of the tool panel.
func (m *model) panelCell(y int) string {
	if y >= len(editor.Modes) {
		return m.theme.panel.Render("")
	}
	mode := editor.Modes[y]
	label := " " + mode.Short() + " "
	if mode == m.machine.Mode() {
		return m.theme.panelActive.Render(label) + strings.Repeat(" ", sidePanelWidth-lipgloss.Width(label))
	}
	return m.theme.panel.Render(label)
}

func (m *model) statusLine() string {
	g := m.machine.Graph()
	parts := []string{
		m.machine.Mode().String(),
		fmt.Sprintf("V:%d E:%d", g.VertexCount(), g.EdgeCount()),
	}
	if id, armed := m.machine.Pending(); armed {
		if v, ok := g.Vertex(id); ok {
			parts = append(parts, fmt.Sprintf("pending (%.0f, %.0f)", v.Pos.X, v.Pos.Y))
		} else {
			parts = append(parts, "pending (gone)")
		}
	}
	if m.hover != nil {
		parts = append(parts, fmt.Sprintf("@ %.0f,%.0f", m.hover.X, m.hover.Y))
	}
	line := m.theme.status.Render(strings.Join(parts, " | "))

	switch {
	case m.errorMessage != "":
		line += "  " + m.theme.errorStyle.Render(m.errorMessage)
	case m.successMessage != "":
		line += "  " + m.theme.okStyle.Render(m.successMessage)
	default:
		line += "  " + m.theme.status.Render("? help")
	}
	return line
}

var helpLines = []string{
	"gredit help",
	"===========",
	"",
	"Tools (click the side panel or press):",
	"  v        Vertex: click empty space to add, click a vertex to pick it",
	"           up, move, click again to drop it",
	"  e        Edge: click two vertices to connect them (same one twice",
	"           makes a loop)",
	"  d        Delete: click two vertices to remove one edge between them,",
	"           right click a vertex to remove it with its edges",
	"",
	"Keyboard pointer:",
	"  hjkl / arrows   move (shift for 2 cells)",
	"  space / enter   click",
	"  x               right click",
	"",
	"Other:",
	"  t        toggle dark / light theme",
	"  p        export PNG",
	"  y        copy the view as text",
	"  ?        this help",
	"  q        quit",
	"",
	"Press any key to return.",
}

func (m *model) helpView() string {
	lines := helpLines
	if m.helpScroll < len(lines) {
		lines = lines[m.helpScroll:]
	} else {
		lines = nil
	}
	if m.height > 0 && len(lines) > m.height {
		lines = lines[:m.height]
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		if i == 0 && m.helpScroll == 0 {
			out[i] = m.theme.helpTitle.Render(l)
			continue
		}
		out[i] = l
	}
	return strings.Join(out, "\n")
}
