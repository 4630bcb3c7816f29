package config

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks a loaded configuration
func Validate(cfg *Config) error {
	if cfg.Desktop.MenuBarRows < 0 {
		return fmt.Errorf("%w: desktop.menu_bar_rows must not be negative", ErrInvalidConfig)
	}
	if cfg.Desktop.DockRows < 0 {
		return fmt.Errorf("%w: desktop.dock_rows must not be negative", ErrInvalidConfig)
	}
	if cfg.Zoom.Min <= 0 || cfg.Zoom.Min > 1 || cfg.Zoom.Max < 1 {
		return fmt.Errorf("%w: zoom range [%g, %g] must be positive and contain 1", ErrInvalidConfig, cfg.Zoom.Min, cfg.Zoom.Max)
	}
	if cfg.Zoom.Step <= 0 {
		return fmt.Errorf("%w: zoom.step must be positive", ErrInvalidConfig)
	}
	if cfg.Drag.DoubleClick <= 0 {
		return fmt.Errorf("%w: drag.double_click must be positive", ErrInvalidConfig)
	}
	if cfg.Content.Watch && cfg.Content.Debounce <= 0 {
		return fmt.Errorf("%w: content.debounce must be positive when watching", ErrInvalidConfig)
	}
	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level %q: %w", ErrInvalidConfig, cfg.Log.Level, err)
	}
	if cfg.Log.MaxSizeMB <= 0 {
		return fmt.Errorf("%w: log.max_size_mb must be positive", ErrInvalidConfig)
	}
	return nil
}
