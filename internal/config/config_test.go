package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmacinski/folio/internal/layout"
	"github.com/kmacinski/folio/internal/ui"
)

// isolate points FOLIO_HOME at an empty directory so a developer's own
// config never leaks into tests
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(HomeEnv, dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, Default, *cfg)
}

func TestLoad_GlobalFile(t *testing.T) {
	home := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(`
desktop:
  dock_rows: 4
drag:
  double_click: 250ms
colors:
  accent: "#ff0000"
`), 0o600))

	cfg, err := Load(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Desktop.DockRows)
	assert.Equal(t, 1, cfg.Desktop.MenuBarRows, "unset keys keep defaults")
	assert.Equal(t, 250*time.Millisecond, cfg.Drag.DoubleClick)
	assert.Equal(t, lipgloss.Color("#ff0000"), cfg.Colors.Palette().Accent)
}

func TestLoad_EnvWinsOverFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: warn\n"), 0o600))
	t.Setenv("FOLIO_LOG_LEVEL", "debug")
	t.Setenv("FOLIO_CONTENT_DEBOUNCE", "1s")

	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, time.Second, cfg.Content.Debounce)
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	isolate(t)
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadWithOverrides(t *testing.T) {
	isolate(t)

	cfg, err := LoadWithOverrides(context.Background(), "", Overrides{ContentPath: "/tmp/me.yaml", LogLevel: "debug"})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/me.yaml", cfg.Content.Path)
	assert.Equal(t, "debug", cfg.Log.Level)

	_, err = LoadWithOverrides(context.Background(), "", Overrides{LogLevel: "chatty"})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"negative menu bar", func(c *Config) { c.Desktop.MenuBarRows = -1 }},
		{"negative dock", func(c *Config) { c.Desktop.DockRows = -1 }},
		{"zoom excludes 1", func(c *Config) { c.Zoom.Min = 1.5 }},
		{"zero zoom min", func(c *Config) { c.Zoom.Min = 0 }},
		{"zero zoom step", func(c *Config) { c.Zoom.Step = 0 }},
		{"zero double click", func(c *Config) { c.Drag.DoubleClick = 0 }},
		{"watch without debounce", func(c *Config) { c.Content.Debounce = 0 }},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }},
		{"zero log size", func(c *Config) { c.Log.MaxSizeMB = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default
			tt.mutate(&cfg)
			assert.ErrorIs(t, Validate(&cfg), ErrInvalidConfig)
		})
	}

	cfg := Default
	assert.NoError(t, Validate(&cfg))
}

func TestPalette(t *testing.T) {
	assert.Equal(t, ui.DefaultColors, Default.Colors.Palette())
	assert.Equal(t, ui.DefaultColors, ColorConfig{}.Palette(), "empty values keep the defaults")
}

func TestHome(t *testing.T) {
	t.Setenv(HomeEnv, "/srv/folio")
	home, err := Home()
	require.NoError(t, err)
	assert.Equal(t, "/srv/folio", home)
}

func TestLayoutConversions(t *testing.T) {
	cfg := Default
	assert.Equal(t, layout.DefaultMetrics, cfg.Metrics())
	assert.Equal(t, layout.DefaultZoom, cfg.ZoomConfig())
}
