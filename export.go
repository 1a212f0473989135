package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"gredit/core/geometry"
	"gredit/core/graph"
)

var errNothingToExport = errors.New("nothing to export")

// writeClipboard is swapped out in tests; there is no clipboard in CI.
var writeClipboard = clipboard.WriteAll

// export runs one of the export actions and reports the result on the
// status line.
func (m *model) export(kind ExportKind) {
	var (
		msg string
		err error
	)
	switch kind {
	case ExportPNG:
		name := m.config.SavePath(fmt.Sprintf("graph-%s.png", time.Now().Format("20060102-150405")))
		err = m.exportPNG(name)
		msg = "saved " + name
	case ExportClipboard:
		err = m.exportClipboard()
		msg = "copied view to clipboard"
	}
	if err != nil {
		m.logger.Errorf("export %s: %v", kind, err)
		m.errorMessage = err.Error()
		m.successMessage = ""
		return
	}
	m.logger.Infof("export %s: %s", kind, msg)
	m.successMessage = msg
	m.errorMessage = ""
}

func (m *model) exportClipboard() error {
	if m.machine.Graph().VertexCount() == 0 {
		return errNothingToExport
	}
	text := m.visualText()
	if err := writeClipboard(text); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	return nil
}

// visualText is the canvas as it appears on screen, without colors, the
// cursor or trailing blanks.
func (m *model) visualText() string {
	show := m.showCursor
	m.showCursor = false
	lines := m.renderCanvas().Lines(false)
	m.showCursor = show

	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

func (m *model) exportPNG(filename string) error {
	dc, err := m.drawPNG()
	if err != nil {
		return err
	}
	if err := dc.SavePNG(filename); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	return nil
}

// encodePNG writes the rendered graph to w.
func (m *model) encodePNG(w io.Writer) error {
	dc, err := m.drawPNG()
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

// drawPNG renders the graph at one canvas unit per pixel, cropped to the
// drawing plus padding. Vertices are labeled with their insertion index.
func (m *model) drawPNG() (*gg.Context, error) {
	snap := m.machine.Snapshot()
	if snap.Empty() {
		return nil, errNothingToExport
	}

	pr := geometry.NewProjector(geometry.Identity, m.config.Render.LoopRadius)
	scene := pr.Scene(snap)
	lo, hi, _ := scene.Bounds()
	origin := graph.Point{X: lo.X - pngPadding, Y: lo.Y - pngPadding}
	width := int(hi.X-lo.X+2*pngPadding) + 1
	height := int(hi.Y-lo.Y+2*pngPadding) + 1

	dc := gg.NewContext(width, height)
	dc.SetColor(m.theme.rgba(m.theme.Background))
	dc.Clear()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	dc.SetFontFace(truetype.NewFace(ttfFont, &truetype.Options{
		Size:    pngFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	}))

	local := func(p graph.Point) (float64, float64) {
		return p.X - origin.X, p.Y - origin.Y
	}

	dc.SetLineWidth(pngStrokeWidth)
	for _, s := range scene.Strokes {
		if len(s.Line) < 2 {
			continue
		}
		dc.SetColor(m.theme.rgba(m.theme.ink(s.Color)))
		x, y := local(s.Line[0])
		dc.MoveTo(x, y)
		for _, p := range s.Line[1:] {
			x, y = local(p)
			dc.LineTo(x, y)
		}
		dc.Stroke()
	}

	for i, d := range scene.Dots {
		x, y := local(d.At)
		dc.SetColor(m.theme.rgba(m.theme.ink(d.Color)))
		dc.DrawCircle(x, y, pngDotRadius)
		dc.Fill()
		dc.SetColor(m.theme.rgba(m.theme.Muted))
		dc.DrawStringAnchored(strconv.Itoa(i), x+pngDotRadius+2, y-pngDotRadius-2, 0, 0)
	}
	return dc, nil
}
