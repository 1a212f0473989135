package main

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme holds the palette for one of the two looks and the styles derived
// from it.
type Theme struct {
	Name       string
	Background string
	Foreground string
	Accent     string
	Muted      string
	Danger     string

	bar         lipgloss.Style
	panel       lipgloss.Style
	panelActive lipgloss.Style
	status      lipgloss.Style
	errorStyle  lipgloss.Style
	okStyle     lipgloss.Style
	helpTitle   lipgloss.Style
}

func newTheme(name string) Theme {
	t := Theme{
		Name:       themeDark,
		Background: "#1b1b1b",
		Foreground: "#e6e6e6",
		Accent:     "#ffaf00",
		Muted:      "#6c6c6c",
		Danger:     "#ff5f5f",
	}
	if strings.EqualFold(name, themeLight) {
		t = Theme{
			Name:       themeLight,
			Background: "#ffffff",
			Foreground: "#1b1b1b",
			Accent:     "#005fd7",
			Muted:      "#8a8a8a",
			Danger:     "#d70000",
		}
	}

	t.bar = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Foreground)).
		Background(lipgloss.Color(t.Muted))
	t.panel = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Muted)).
		Width(sidePanelWidth)
	t.panelActive = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Background)).
		Background(lipgloss.Color(t.Accent)).
		Bold(true)
	t.status = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted))
	t.errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Danger)).Bold(true)
	t.okStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent))
	t.helpTitle = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)).Bold(true)
	return t
}

func (t Theme) toggled() Theme {
	if t.Name == themeDark {
		return newTheme(themeLight)
	}
	return newTheme(themeDark)
}

// ink picks the terminal color for an element. An element painted in the
// background color would vanish, so it falls back to the foreground.
func (t Theme) ink(c color.Color) string {
	hex := colorHex(c)
	if hex == "" || strings.EqualFold(hex, t.Background) {
		return t.Foreground
	}
	return hex
}

// rgba converts a palette entry for raster output.
func (t Theme) rgba(hex string) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.Black
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func colorHex(c color.Color) string {
	if c == nil {
		return ""
	}
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return ""
	}
	return cf.Hex()
}
