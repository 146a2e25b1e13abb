package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/five82/zcalc/internal/app"
	"github.com/five82/zcalc/internal/config"
	"github.com/five82/zcalc/internal/state"
)

// ViewerOptions describe the desktop viewer window.
type ViewerOptions struct {
	Title    string
	AxisSize float64
}

// Viewer shows the point cloud held in store until ctx is cancelled or the
// window is closed.
type Viewer func(ctx context.Context, store *state.Store, opts ViewerOptions) error

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	configPath string
	prefsPath  string
	logFile    string
	verbose    bool
}

func (g *globalOptions) loadConfig() (config.Config, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// NewRootCommand creates the root command. viewer opens the desktop
// window for `zcalc graph`.
func NewRootCommand(version, commit, date string, viewer Viewer) *cobra.Command {
	g := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "zcalc",
		Short: "Terminal calculator with complex numbers and a 3D grapher",
		Long: `zcalc is a terminal calculator with three tabs: standard arithmetic,
complex arithmetic, and a grapher that plots |f(z)| over the complex plane.

Run without a subcommand to open the calculator. The subcommands evaluate
expressions, export sampled surfaces, and open a desktop viewer.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if g.verbose {
				log.SetOutput(cmd.ErrOrStderr())
			} else {
				log.SetOutput(io.Discard)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), app.Options{
				ConfigPath: g.configPath,
				PrefsPath:  g.prefsPath,
				LogFile:    g.logFile,
			})
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "config file path (default ~/.config/zcalc/config.toml)")
	rootCmd.PersistentFlags().StringVar(&g.prefsPath, "prefs", "", "prefs file path (default ~/.config/zcalc/prefs.toml)")
	rootCmd.PersistentFlags().StringVar(&g.logFile, "log-file", "", "write logs to this file while the TUI runs")
	rootCmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "verbose output on stderr")

	// Add subcommands
	rootCmd.AddCommand(newEvalCommand(g))
	rootCmd.AddCommand(newSampleCommand(g))
	rootCmd.AddCommand(newGraphCommand(g, viewer))
	rootCmd.AddCommand(newVersionCommand(version, commit, date))

	return rootCmd
}

func newVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display version number, build commit, date, and runtime information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displayVersion := version
			displayCommit := commit
			displayDate := date

			if version == "dev" || version == "" {
				displayVersion = "development"
			}
			if commit == "none" || commit == "" {
				displayCommit = "local-build"
			}
			if date == "unknown" || date == "" {
				displayDate = "local-build"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "zcalc %s (%s) built on %s\n", displayVersion, displayCommit, displayDate)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

// openOutput returns stdout for an empty path or "-", otherwise a new file.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return f, f.Close, nil
}
