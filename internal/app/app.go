package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/zcalc/internal/config"
	"github.com/five82/zcalc/internal/prefs"
	"github.com/five82/zcalc/internal/ui"
)

// Options configure the zcalc TUI.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/zcalc/prefs.toml
	LogFile    string // overrides log_file from the config
}

// Run boots the calculator TUI until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logFile := cfg.LogFile
	if opts.LogFile != "" {
		logFile = opts.LogFile
	}
	closeLog, err := SetupLogging(logFile)
	if err != nil {
		return err
	}
	defer closeLog()

	userPrefs := prefs.Load(opts.PrefsPath)
	log.Printf("starting tui: theme=%s compact_width=%d", userPrefs.Theme, cfg.CompactWidth)

	return ui.Run(ui.Options{
		Context:   ctx,
		Config:    &cfg,
		Prefs:     userPrefs,
		PrefsPath: opts.PrefsPath,
	})
}

// SetupLogging routes the standard logger while the TUI owns the terminal.
// An empty path discards log output. The returned func restores stderr.
func SetupLogging(path string) (func(), error) {
	restore := func() {
		log.SetOutput(os.Stderr)
		log.SetPrefix("")
	}
	if path == "" {
		log.SetOutput(io.Discard)
		return restore, nil
	}

	resolved, err := config.ExpandPath(path)
	if err != nil {
		return nil, fmt.Errorf("resolve log file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := tea.LogToFile(resolved, "zcalc")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return func() {
		_ = f.Close()
		restore()
	}, nil
}
