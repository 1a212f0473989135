package main

import (
	"bytes"
	"errors"
	"image/png"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestEncodePNG(t *testing.T) {
	m := newTestModel(t)
	m.Update(press(10, 5, tea.MouseButtonLeft))

	var buf bytes.Buffer
	if err := m.encodePNG(&buf); err != nil {
		t.Fatalf("encodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 2*pngPadding+1 || b.Dy() != 2*pngPadding+1 {
		t.Fatalf("image is %dx%d", b.Dx(), b.Dy())
	}
	r, g, bl, _ := img.At(pngPadding, pngPadding).RGBA()
	if r>>8 != 255 || g>>8 != 255 || bl>>8 != 255 {
		t.Fatalf("vertex pixel = %d,%d,%d, want white", r>>8, g>>8, bl>>8)
	}
	r, g, bl, _ = img.At(1, 1).RGBA()
	if r>>8 != 0x1b || g>>8 != 0x1b || bl>>8 != 0x1b {
		t.Fatalf("background pixel = %d,%d,%d", r>>8, g>>8, bl>>8)
	}
}

func TestExportEmptyGraph(t *testing.T) {
	m := newTestModel(t)
	if err := m.encodePNG(&bytes.Buffer{}); !errors.Is(err, errNothingToExport) {
		t.Fatalf("encodePNG on empty graph: %v", err)
	}
	m.export(ExportPNG)
	if m.errorMessage != errNothingToExport.Error() {
		t.Fatalf("errorMessage = %q", m.errorMessage)
	}
}

func TestExportPNGFile(t *testing.T) {
	m := newTestModel(t)
	m.Update(press(10, 5, tea.MouseButtonLeft))
	m.Update(press(30, 10, tea.MouseButtonLeft))

	m.export(ExportPNG)
	if m.errorMessage != "" {
		t.Fatalf("export failed: %s", m.errorMessage)
	}
	files, err := filepath.Glob(filepath.Join(m.config.Export.Directory, "graph-*.png"))
	if err != nil || len(files) != 1 {
		t.Fatalf("exported files = %v (%v)", files, err)
	}
	if !strings.Contains(m.successMessage, files[0]) {
		t.Fatalf("successMessage = %q", m.successMessage)
	}
}

func TestExportClipboard(t *testing.T) {
	var copied string
	orig := writeClipboard
	writeClipboard = func(s string) error {
		copied = s
		return nil
	}
	t.Cleanup(func() { writeClipboard = orig })

	m := newTestModel(t)
	m.export(ExportClipboard)
	if m.errorMessage != errNothingToExport.Error() {
		t.Fatalf("empty clipboard export: %q", m.errorMessage)
	}

	m.Update(press(10, 5, tea.MouseButtonLeft))
	m.Update(keyMsg("l")) // shows the keyboard cursor
	m.export(ExportClipboard)
	if m.errorMessage != "" {
		t.Fatalf("export failed: %s", m.errorMessage)
	}

	lines := strings.Split(copied, "\n")
	if len(lines) != 5 {
		t.Fatalf("copied %d lines: %q", len(lines), copied)
	}
	if lines[4] != "     ●" {
		t.Fatalf("vertex row = %q", lines[4])
	}
	if strings.ContainsRune(copied, glyphCursor) {
		t.Fatalf("cursor leaked into the clipboard text")
	}
	if !m.showCursor {
		t.Fatalf("export hid the cursor")
	}

	writeClipboard = func(string) error { return errors.New("no display") }
	m.export(ExportClipboard)
	if !strings.Contains(m.errorMessage, "no display") {
		t.Fatalf("errorMessage = %q", m.errorMessage)
	}
}
