package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/zcalc/internal/app"
	"github.com/five82/zcalc/internal/sampler"
	"github.com/five82/zcalc/internal/state"
)

type graphOptions struct {
	parameter float64
	watch     string
}

func newGraphCommand(g *globalOptions, viewer Viewer) *cobra.Command {
	opts := &graphOptions{}

	cmd := &cobra.Command{
		Use:   "graph [EQUATION]",
		Short: "Open the point cloud in a desktop window",
		Long: `Sample an equation in z and show |f(z)| in a desktop window. Drag or use
the arrow keys to orbit, scroll to zoom, right-drag to pan, R to reset and
Space to pause the spin.

With --watch the equation is read from a file and resampled every time the
file is saved.

Examples:
  zcalc graph "a^z - z"
  zcalc graph --a 0.5 "sin(a*z)/z"
  zcalc graph --watch surface.eq`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if viewer == nil {
				return errors.New("no viewer available in this build")
			}
			if len(args) == 1 && opts.watch != "" {
				return errors.New("pass an equation or --watch, not both")
			}
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}

			parameter := cfg.Graph.Parameter
			if cmd.Flags().Changed("a") {
				parameter = sampler.ClampParameter(opts.parameter)
			}

			ctx := cmd.Context()
			store := &state.Store{}
			smp := sampler.New(sampler.Options{Grid: cfg.Graph.Grid, MaxHeight: cfg.Graph.MaxHeight})

			title := "zcalc"
			if opts.watch != "" {
				stop, err := app.StartWatcher(ctx, store, smp, app.WatchOptions{
					Path:      opts.watch,
					Parameter: parameter,
					Settle:    cfg.Graph.ResampleDebounce,
				})
				if err != nil {
					return err
				}
				defer stop()
				title += " - " + opts.watch
			} else {
				graph := sampler.GraphState{Equation: cfg.Graph.Equation}.WithParameter(parameter)
				if len(args) == 1 {
					graph.Equation = args[0]
				}
				res := smp.SampleGraph(graph)
				if res.Err != nil {
					return fmt.Errorf("sample %q: %w", res.Equation, res.Err)
				}
				store.Update(res, graph.ParameterA, nil)
				title += " - " + res.Equation
			}

			return viewer(ctx, store, ViewerOptions{Title: title, AxisSize: cfg.Graph.AxisSize})
		},
	}

	cmd.Flags().Float64Var(&opts.parameter, "a", sampler.DefaultParameter, "value substituted for a (0.1 to 5, step 0.1)")
	cmd.Flags().StringVarP(&opts.watch, "watch", "w", "", "equation file to watch and resample on change")

	return cmd
}
