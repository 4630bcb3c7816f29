package config

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/kmacinski/folio/internal/layout"
	"github.com/kmacinski/folio/internal/ui"
)

// Config holds all application configuration
type Config struct {
	Desktop DesktopConfig `mapstructure:"desktop"`
	Zoom    ZoomConfig    `mapstructure:"zoom"`
	Drag    DragConfig    `mapstructure:"drag"`
	Content ContentConfig `mapstructure:"content"`
	Log     LogConfig     `mapstructure:"log"`
	Colors  ColorConfig   `mapstructure:"colors"`
}

// DesktopConfig holds the rows reserved by the menu bar and the dock
type DesktopConfig struct {
	MenuBarRows int `mapstructure:"menu_bar_rows"`
	DockRows    int `mapstructure:"dock_rows"`
}

// ZoomConfig bounds the page zoom
type ZoomConfig struct {
	Min  float64 `mapstructure:"min"`
	Max  float64 `mapstructure:"max"`
	Step float64 `mapstructure:"step"`
}

// DragConfig holds pointer settings
type DragConfig struct {
	DoubleClick time.Duration `mapstructure:"double_click"`
}

// ContentConfig selects the portfolio document
type ContentConfig struct {
	Path     string        `mapstructure:"path"` // empty uses the built-in document
	Watch    bool          `mapstructure:"watch"`
	Debounce time.Duration `mapstructure:"debounce"`
}

// LogConfig holds log file settings
type LogConfig struct {
	Level      string `mapstructure:"level"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// ColorConfig holds color definitions
type ColorConfig struct {
	Desktop         string `mapstructure:"desktop"`
	MenuBar         string `mapstructure:"menu_bar"`
	TitleBar        string `mapstructure:"title_bar"`
	BorderFocused   string `mapstructure:"border_focused"`
	BorderUnfocused string `mapstructure:"border_unfocused"`
	Header          string `mapstructure:"header"`
	Accent          string `mapstructure:"accent"`
}

// Default returns the default configuration
var Default = Config{
	Desktop: DesktopConfig{
		MenuBarRows: 1,
		DockRows:    3,
	},
	Zoom: ZoomConfig{
		Min:  0.5,
		Max:  2.0,
		Step: 0.1,
	},
	Drag: DragConfig{
		DoubleClick: 400 * time.Millisecond,
	},
	Content: ContentConfig{
		Path:     "",
		Watch:    true,
		Debounce: 300 * time.Millisecond,
	},
	Log: LogConfig{
		Level:      "info",
		MaxSizeMB:  10,
		MaxBackups: 3,
	},
	Colors: ColorConfig{
		Desktop:         string(ui.DefaultColors.Desktop),
		MenuBar:         string(ui.DefaultColors.MenuBar),
		TitleBar:        string(ui.DefaultColors.TitleBar),
		BorderFocused:   string(ui.DefaultColors.BorderFocused),
		BorderUnfocused: string(ui.DefaultColors.BorderUnfocused),
		Header:          string(ui.DefaultColors.Header),
		Accent:          string(ui.DefaultColors.Accent),
	},
}

// Palette applies the configured colors over the default palette
func (c ColorConfig) Palette() ui.Colors {
	p := ui.DefaultColors
	set := func(dst *lipgloss.Color, v string) {
		if v != "" {
			*dst = lipgloss.Color(v)
		}
	}
	set(&p.Desktop, c.Desktop)
	set(&p.MenuBar, c.MenuBar)
	set(&p.TitleBar, c.TitleBar)
	set(&p.BorderFocused, c.BorderFocused)
	set(&p.BorderUnfocused, c.BorderUnfocused)
	set(&p.Header, c.Header)
	set(&p.Accent, c.Accent)
	return p
}

// Metrics returns the desktop row reservations
func (c *Config) Metrics() layout.Metrics {
	return layout.Metrics{MenuBarRows: c.Desktop.MenuBarRows, DockRows: c.Desktop.DockRows}
}

// ZoomConfig returns the zoom bounds
func (c *Config) ZoomConfig() layout.ZoomConfig {
	return layout.ZoomConfig{Min: c.Zoom.Min, Max: c.Zoom.Max, Step: c.Zoom.Step}
}
