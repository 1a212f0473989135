package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	fcolor "github.com/fatih/color"
	"github.com/spf13/cobra"

	"gredit/core/editor"
	"gredit/core/graph"
	glog "gredit/internal/log"
)

var version = "0.3.0"

var (
	configFile string
	flagMode   string
	flagLevel  string
	flagLog    string
	flagTheme  string
)

var rootCmd = &cobra.Command{
	Use:           "gredit",
	Short:         "gredit: draw graphs in the terminal",
	Long:          "gredit places vertices, draws edges and deletes them with the mouse (or the keyboard).",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd)
	},
}

func init() {
	rootCmd.SetVersionTemplate("gredit {{ .Version }}\n")
	f := rootCmd.Flags()
	f.StringVarP(&configFile, "config", "c", "", "config file (default "+ConfigPath()+")")
	f.StringVarP(&flagMode, "mode", "m", "", "starting tool: vertex, edge or delete")
	f.StringVar(&flagLevel, "log-level", "", "log level: debug, info, error, none")
	f.StringVar(&flagLog, "log-file", "", "log file path")
	f.StringVar(&flagTheme, "theme", "", "color theme: dark or light")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gredit %s\n", version)
		},
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fcolor.New(fcolor.FgRed, fcolor.Bold).Fprintf(os.Stderr, "gredit: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command) error {
	cfg, err := LoadConfig(configFile)
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return err
	}

	logger := glog.Discard()
	if cfg.Log.File != "" && cfg.LogLevel() != glog.LevelNone {
		logger = glog.NewFile(cfg.Log.File, cfg.Log.MaxSizeMB, cfg.LogLevel())
	}
	defer logger.Close()
	logger.Infof("gredit %s starting, mode %s", version, cfg.StartMode())

	m := initialModel(cfg, logger)
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	if _, err := p.Run(); err != nil {
		logger.Errorf("program: %v", err)
		return err
	}
	g := m.machine.Graph()
	logger.Infof("exit with %d vertices, %d edges", g.VertexCount(), g.EdgeCount())
	return nil
}

// applyFlags lets explicitly set flags override the config file.
func applyFlags(cmd *cobra.Command, cfg *Config) error {
	f := cmd.Flags()
	if f.Changed("mode") {
		cfg.Editor.StartMode = flagMode
	}
	if f.Changed("log-level") {
		cfg.Log.Level = flagLevel
	}
	if f.Changed("log-file") {
		cfg.Log.File = expandPath(flagLog)
	}
	if f.Changed("theme") {
		cfg.Render.Theme = flagTheme
	}
	return cfg.Validate()
}

func initialModel(cfg *Config, logger *glog.Logger) *model {
	g := graph.New(logger)
	return &model{
		machine: editor.NewMachine(g, cfg.StartMode(), cfg.EditorOptions(), logger),
		config:  cfg,
		logger:  logger,
		theme:   newTheme(cfg.Render.Theme),
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorInBounds()
		return m, nil

	case tea.MouseMsg:
		if m.help {
			return m, nil
		}
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if m.help {
			return m.handleHelpKey(msg.String())
		}
		return m.handleKey(msg.String())
	}
	return m, nil
}

func (m *model) handleKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "?":
		m.help = true
		m.helpScroll = 0
	case "v":
		m.setMode(editor.ModeVertex)
	case "e":
		m.setMode(editor.ModeEdge)
	case "d":
		m.setMode(editor.ModeDelete)
	case "t":
		m.toggleTheme()
	case "p":
		m.export(ExportPNG)
	case "y":
		m.export(ExportClipboard)
	case " ", "enter":
		m.clickAtCursor(false)
	case "x":
		m.clickAtCursor(true)
	case "h", "j", "k", "l", "H", "J", "K", "L",
		"left", "right", "up", "down",
		"shift+left", "shift+right", "shift+up", "shift+down":
		return m.handleNavigation(key, m.getMoveSpeed(key))
	}
	return m, nil
}

func (m *model) handleHelpKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "ctrl+c":
		return m, tea.Quit
	case "j", "down":
		m.helpScroll++
	case "k", "up":
		if m.helpScroll > 0 {
			m.helpScroll--
		}
	default:
		m.help = false
	}
	return m, nil
}
