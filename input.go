package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"gredit/core/editor"
	"gredit/core/graph"
)

// handleMouse turns one terminal mouse event into at most one editor tick.
// Clicks on the top bar and the side panel are UI controls and never reach
// the editor.
func (m *model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown ||
		msg.Button == tea.MouseButtonWheelLeft || msg.Button == tea.MouseButtonWheelRight {
		return m, nil
	}

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		if msg.Y < topBarHeight {
			return m.handleTopBar(msg.X)
		}
		if msg.X < sidePanelWidth {
			m.handleSidePanel(msg.Y)
			return m, nil
		}
	}

	cx, cy, inCanvas := m.screenToCanvas(msg.X, msg.Y)
	var pos *graph.Point
	if inCanvas {
		p := m.worldCoords(cx, cy)
		pos = &p
		m.showCursor = false
		m.cursorX, m.cursorY = cx, cy
	}

	sample := editor.Sample{Hover: pos}
	switch msg.Action {
	case tea.MouseActionPress:
		m.buttonHeld = true
		sample.Pointer = pos
		sample.Primary = msg.Button == tea.MouseButtonLeft
		sample.Secondary = msg.Button == tea.MouseButtonRight
	case tea.MouseActionMotion:
		if m.buttonHeld {
			sample.Pointer = pos
		}
	case tea.MouseActionRelease:
		m.buttonHeld = false
		sample.Pointer = pos
	}

	m.tick(sample)
	return m, nil
}

func (m *model) handleTopBar(x int) (tea.Model, tea.Cmd) {
	switch {
	case x >= quitStart && x < quitEnd:
		m.logger.Infof("quit from menu")
		return m, tea.Quit
	case x >= themeStart && x < themeEnd:
		m.toggleTheme()
	}
	return m, nil
}

// handleSidePanel selects the tool listed on the clicked row.
func (m *model) handleSidePanel(y int) {
	idx := y - topBarHeight
	if idx < 0 || idx >= len(editor.Modes) {
		return
	}
	m.setMode(editor.Modes[idx])
}

func (m *model) setMode(mode editor.Mode) {
	m.machine.SetMode(mode)
	m.errorMessage = ""
	m.successMessage = ""
}

func (m *model) toggleTheme() {
	m.theme = m.theme.toggled()
	m.logger.Debugf("theme %s", m.theme.Name)
}

// tick forwards a sample to the editor and reports what changed.
func (m *model) tick(s editor.Sample) {
	m.hover = s.Hover
	applied := m.machine.Tick(s)
	for _, mut := range applied {
		if _, drag := mut.(editor.MoveVertex); drag {
			continue
		}
		m.errorMessage = ""
		m.successMessage = mut.String()
	}
}
