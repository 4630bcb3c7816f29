// Package cli provides the command-line interface for folio.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kmacinski/folio/internal/app"
	"github.com/kmacinski/folio/internal/config"
	"github.com/kmacinski/folio/internal/content"
	"github.com/kmacinski/folio/internal/logging"
	"github.com/kmacinski/folio/internal/ui"
)

// ErrNotTerminal is returned when stdout is not an interactive terminal
var ErrNotTerminal = errors.New("folio needs an interactive terminal")

// BuildInfo contains version information set at build time via ldflags
type BuildInfo struct {
	Version string
	Commit  string
}

// flags holds the root command's flag values
type flags struct {
	configPath  string
	contentPath string
	logLevel    string
	noMouse     bool
}

func newRootCmd(f *flags, info BuildInfo) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "folio",
		Short: "A portfolio you can drag around your terminal",
		Long: `folio renders a portfolio as a small desktop: a menu bar, a dock, and
windows you can open, focus, drag, minimize and maximize with the mouse.

The portfolio is a YAML document. Point --content (or content.path in
~/.folio/config.yaml) at your own file; it reloads when the file changes.`,
		Version:      formatVersion(info),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), f, info)
		},
	}

	cmd.Flags().StringVar(&f.configPath, "config", "", "config file (default ~/.folio/config.yaml)")
	cmd.Flags().StringVar(&f.contentPath, "content", "", "portfolio YAML document (default: built-in)")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	cmd.Flags().BoolVar(&f.noMouse, "no-mouse", false, "disable mouse reporting")

	return cmd
}

func formatVersion(info BuildInfo) string {
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		return info.Version
	}
	return fmt.Sprintf("%s (commit: %s)", info.Version, info.Commit)
}

func run(ctx context.Context, out io.Writer, f *flags, info BuildInfo) error {
	cfg, err := config.LoadWithOverrides(ctx, f.configPath, config.Overrides{
		ContentPath: f.contentPath,
		LogLevel:    f.logLevel,
	})
	if err != nil {
		return err
	}

	logger, closer := openLog(cfg)
	defer func() { _ = closer.Close() }()
	ctx = logger.WithContext(ctx)

	doc, err := content.Load(cfg.Content.Path)
	if err != nil {
		return err
	}

	if !isTerminal(out) {
		return ErrNotTerminal
	}

	styles := ui.NewStyles(cfg.Colors.Palette())
	application := app.New(doc, app.Options{
		Metrics:     cfg.Metrics(),
		Zoom:        cfg.ZoomConfig(),
		DoubleClick: cfg.Drag.DoubleClick,
		ContentPath: cfg.Content.Path,
		Watch:       cfg.Content.Watch,
		Debounce:    cfg.Content.Debounce,
		Styles:      &styles,
		Logger:      logger,
		Version:     info.Version,
	})

	opts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithReportFocus(),
		tea.WithContext(ctx),
	}
	if !f.noMouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(application, opts...)
	application.SetProgram(p)
	defer application.Cleanup()

	logger.Info().Str("version", info.Version).Str("content", cfg.Content.Path).Msg("desktop started")
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("desktop stopped: %w", err)
	}
	logger.Info().Msg("desktop stopped")
	return nil
}

// openLog sets up the file logger. Logging problems never stop the
// desktop; they only disable logging.
func openLog(cfg *config.Config) (zerolog.Logger, io.Closer) {
	home, err := config.Home()
	if err != nil {
		return zerolog.Nop(), io.NopCloser(nil)
	}
	logger, closer, err := logging.New(logging.Options{
		Level:      cfg.Log.Level,
		Dir:        filepath.Join(home, logging.LogsDir),
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})
	if err != nil {
		return zerolog.Nop(), closer
	}
	return logger, closer
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Execute runs the root command with the provided context and build info
func Execute(ctx context.Context, info BuildInfo) error {
	cmd := newRootCmd(&flags{}, info)
	return cmd.ExecuteContext(ctx)
}
