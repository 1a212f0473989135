package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"gredit/core/editor"
)

// handleNavigation moves the keyboard cursor and feeds the editor a hover
// sample, so dragging works without a mouse.
func (m *model) handleNavigation(key string, speed int) (tea.Model, tea.Cmd) {
	m.handleCursorMove(key, speed)
	p := m.cursorPoint()
	m.tick(editor.Sample{Hover: &p})
	return m, nil
}

func (m *model) handleCursorMove(key string, speed int) {
	m.showCursor = true
	switch key {
	case "h", "left", "H", "shift+left":
		m.cursorX -= speed
	case "l", "right", "L", "shift+right":
		m.cursorX += speed
	case "k", "up", "K", "shift+up":
		m.cursorY -= speed
	case "j", "down", "J", "shift+down":
		m.cursorY += speed
	}
	m.ensureCursorInBounds()
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 2
	default:
		return 1
	}
}

func (m *model) ensureCursorInBounds() {
	w, h := m.canvasSize()
	if m.cursorX < 0 {
		m.cursorX = 0
	}
	if m.cursorY < 0 {
		m.cursorY = 0
	}
	if m.cursorX >= w {
		m.cursorX = w - 1
	}
	if m.cursorY >= h {
		m.cursorY = h - 1
	}
}

// clickAtCursor is the keyboard stand-in for a mouse press.
func (m *model) clickAtCursor(secondary bool) {
	m.showCursor = true
	p := m.cursorPoint()
	m.tick(editor.Sample{
		Pointer:   &p,
		Primary:   !secondary,
		Secondary: secondary,
		Hover:     &p,
	})
}
