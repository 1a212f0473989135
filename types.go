package main

import (
	"gredit/core/editor"
	"gredit/core/graph"
	glog "gredit/internal/log"
)

type model struct {
	width          int
	height         int
	cursorX        int
	cursorY        int
	showCursor     bool
	buttonHeld     bool
	hover          *graph.Point
	machine        *editor.Machine
	config         *Config
	logger         *glog.Logger
	theme          Theme
	help           bool
	helpScroll     int
	errorMessage   string
	successMessage string
}

// cell is one terminal position of the rasterized canvas.
type cell struct {
	r     rune
	color string // hex, empty for the default foreground
	bold  bool
}

type point struct {
	X, Y int
}
