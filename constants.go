package main

// Screen layout in terminal cells.
const (
	topBarHeight   = 1
	statusHeight   = 1
	sidePanelWidth = 5
)

// Top bar hot spots, as column ranges [start, end).
const (
	quitStart  = 1
	quitEnd    = 5
	themeStart = 8
	themeEnd   = 16
)

// PNG export, in pixels.
const (
	pngPadding     = 24.0
	pngDotRadius   = 5.0
	pngStrokeWidth = 2.0
	pngFontSize    = 12.0
)

const (
	themeDark  = "dark"
	themeLight = "light"
)

type ExportKind int

const (
	ExportPNG ExportKind = iota
	ExportClipboard
)

func (k ExportKind) String() string {
	switch k {
	case ExportPNG:
		return "png"
	case ExportClipboard:
		return "clipboard"
	default:
		return "unknown"
	}
}
