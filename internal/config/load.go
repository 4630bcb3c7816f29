package config

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every environment override, e.g. FOLIO_LOG_LEVEL
	EnvPrefix = "FOLIO"
	// HomeEnv relocates the folio home directory
	HomeEnv = "FOLIO_HOME"
)

// Home returns the folio home directory: $FOLIO_HOME, or ~/.folio
func Home() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".folio"), nil
}

// newViperInstance creates a viper instance with defaults and env binding
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func setDefaults(v *viper.Viper) {
	d := Default
	v.SetDefault("desktop.menu_bar_rows", d.Desktop.MenuBarRows)
	v.SetDefault("desktop.dock_rows", d.Desktop.DockRows)
	v.SetDefault("zoom.min", d.Zoom.Min)
	v.SetDefault("zoom.max", d.Zoom.Max)
	v.SetDefault("zoom.step", d.Zoom.Step)
	v.SetDefault("drag.double_click", d.Drag.DoubleClick)
	v.SetDefault("content.path", d.Content.Path)
	v.SetDefault("content.watch", d.Content.Watch)
	v.SetDefault("content.debounce", d.Content.Debounce)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.max_size_mb", d.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", d.Log.MaxBackups)
	v.SetDefault("colors.desktop", d.Colors.Desktop)
	v.SetDefault("colors.menu_bar", d.Colors.MenuBar)
	v.SetDefault("colors.title_bar", d.Colors.TitleBar)
	v.SetDefault("colors.border_focused", d.Colors.BorderFocused)
	v.SetDefault("colors.border_unfocused", d.Colors.BorderUnfocused)
	v.SetDefault("colors.header", d.Colors.Header)
	v.SetDefault("colors.accent", d.Colors.Accent)
}

// Load reads configuration with the following precedence, highest first:
//  1. Environment variables (FOLIO_* prefix)
//  2. The config file: path if given, else ~/.folio/config.yaml if present
//  3. Built-in defaults
//
// An explicit path that cannot be read is an error; a missing default file
// is not.
func Load(ctx context.Context, path string) (*Config, error) {
	v := newViperInstance()

	if path == "" {
		if p, ok := globalConfigPathIfExists(); ok {
			path = p
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	logger := zerolog.Ctx(ctx).With().Str("component", "config").Logger()
	logger.Debug().
		Str("file", v.ConfigFileUsed()).
		Str("content.path", cfg.Content.Path).
		Dur("drag.double_click", cfg.Drag.DoubleClick).
		Msg("configuration loaded")

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Overrides holds values from CLI flags. Zero values are not applied.
type Overrides struct {
	ContentPath string
	LogLevel    string
}

// LoadWithOverrides loads configuration and applies CLI flag overrides
func LoadWithOverrides(ctx context.Context, path string, o Overrides) (*Config, error) {
	cfg, err := Load(ctx, path)
	if err != nil {
		return nil, err
	}
	if o.ContentPath != "" {
		cfg.Content.Path = o.ContentPath
	}
	if o.LogLevel != "" {
		cfg.Log.Level = o.LogLevel
	}
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration after overrides: %w", err)
	}
	return cfg, nil
}

func globalConfigPathIfExists() (string, bool) {
	home, err := Home()
	if err != nil {
		return "", false
	}
	p := filepath.Join(home, "config.yaml")
	if _, err := os.Stat(p); err != nil {
		return "", false
	}
	return p, true
}

func isConfigNotFoundError(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return stderrors.As(err, &notFound)
}

func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
		),
	)
}
