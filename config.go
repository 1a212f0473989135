package main

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"gredit/core/editor"
	glog "gredit/internal/log"
)

// Config mirrors ~/.config/gredit/config.toml.
type Config struct {
	Editor EditorConfig `toml:"editor"`
	Render RenderConfig `toml:"render"`
	Export ExportConfig `toml:"export"`
	Log    LogConfig    `toml:"log"`
}

type EditorConfig struct {
	PickRadius   float64 `toml:"pick_radius"`
	VertexColor  string  `toml:"vertex_color"`
	EdgeColor    string  `toml:"edge_color"`
	StartMode    string  `toml:"start_mode"`
	IsolateModes bool    `toml:"isolate_modes"`
}

// RenderConfig sizes one terminal cell in canvas units. The same units are
// PNG pixels on export.
type RenderConfig struct {
	CellWidth  float64 `toml:"cell_width"`
	CellHeight float64 `toml:"cell_height"`
	LoopRadius float64 `toml:"loop_radius"`
	Theme      string  `toml:"theme"`
}

type ExportConfig struct {
	Directory string `toml:"directory"`
}

type LogConfig struct {
	File      string `toml:"file"`
	Level     string `toml:"level"`
	MaxSizeMB int    `toml:"max_size_mb"`
}

func DefaultConfig() *Config {
	return &Config{
		Editor: EditorConfig{
			PickRadius:  editor.DefaultPickRadius,
			VertexColor: "#ffffff",
			EdgeColor:   "#ffffff",
			StartMode:   "vertex",
		},
		Render: RenderConfig{
			CellWidth:  8,
			CellHeight: 16,
			LoopRadius: 12,
			Theme:      themeDark,
		},
		Log: LogConfig{
			File:      filepath.Join(ConfigDir(), "gredit.log"),
			Level:     "info",
			MaxSizeMB: 5,
		},
	}
}

// ConfigDir returns $XDG_CONFIG_HOME/gredit, falling back to ~/.config.
func ConfigDir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "gredit")
}

func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// LoadConfig reads path (or the default location when empty). A missing
// file is not an error and yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = ConfigPath()
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse %s: %w", path, err)
	}

	cfg.Export.Directory = expandPath(cfg.Export.Directory)
	cfg.Log.File = expandPath(cfg.Log.File)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Editor.PickRadius <= 0 {
		return fmt.Errorf("editor.pick_radius must be positive, got %v", c.Editor.PickRadius)
	}
	if _, err := parseColor(c.Editor.VertexColor); err != nil {
		return fmt.Errorf("editor.vertex_color: %w", err)
	}
	if _, err := parseColor(c.Editor.EdgeColor); err != nil {
		return fmt.Errorf("editor.edge_color: %w", err)
	}
	if _, err := editor.ParseMode(c.Editor.StartMode); err != nil {
		return fmt.Errorf("editor.start_mode: %w", err)
	}
	if c.Render.CellWidth <= 0 || c.Render.CellHeight <= 0 {
		return fmt.Errorf("render cell size must be positive, got %vx%v", c.Render.CellWidth, c.Render.CellHeight)
	}
	if c.Render.LoopRadius <= 0 {
		return fmt.Errorf("render.loop_radius must be positive, got %v", c.Render.LoopRadius)
	}
	switch strings.ToLower(c.Render.Theme) {
	case themeDark, themeLight:
	default:
		return fmt.Errorf("render.theme must be %q or %q, got %q", themeDark, themeLight, c.Render.Theme)
	}
	return nil
}

// EditorOptions converts the editor section. It assumes Validate passed.
func (c *Config) EditorOptions() editor.Options {
	opts := editor.DefaultOptions()
	opts.PickRadius = c.Editor.PickRadius
	opts.ClearPendingOnModeSwitch = c.Editor.IsolateModes
	if vc, err := parseColor(c.Editor.VertexColor); err == nil {
		opts.VertexColor = vc
	}
	if ec, err := parseColor(c.Editor.EdgeColor); err == nil {
		opts.EdgeColor = ec
	}
	return opts
}

func (c *Config) StartMode() editor.Mode {
	mode, _ := editor.ParseMode(c.Editor.StartMode)
	return mode
}

func (c *Config) LogLevel() glog.Level {
	return glog.LevelFromString(c.Log.Level)
}

// SavePath places filename in the export directory, creating it on demand.
func (c *Config) SavePath(filename string) string {
	if c.Export.Directory == "" {
		return filename
	}
	os.MkdirAll(c.Export.Directory, 0755)
	return filepath.Join(c.Export.Directory, filename)
}

func expandPath(value string) string {
	if value == "" {
		return value
	}
	if strings.HasPrefix(value, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			value = filepath.Join(home, strings.TrimPrefix(value, "~"))
		}
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

// parseColor accepts "#rrggbb" or "#rgb".
func parseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
