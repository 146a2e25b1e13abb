package cli

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/zcalc/internal/calc"
	"github.com/five82/zcalc/internal/evaluator"
)

// errEvalFailed is returned after "Error" has been printed.
var errEvalFailed = errors.New("expression could not be evaluated")

func newEvalCommand(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "eval EXPRESSION...",
		Short: "Evaluate an expression and print the result",
		Long: `Evaluate an expression the way the calculator's = key does and print
the display text. Arguments are joined with spaces.

Examples:
  zcalc eval "2 + 3 * 4"
  zcalc eval "sqrt(-4)"
  zcalc eval "(3 - 4i) * conj(3 - 4i)"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr := strings.Join(args, " ")
			v, err := evaluator.Engine{}.Evaluate(expr)
			if err != nil {
				log.Printf("eval %q: %v", expr, err)
				fmt.Fprintln(cmd.OutOrStdout(), calc.ErrorText)
				if g.verbose {
					return fmt.Errorf("%w: %w", errEvalFailed, err)
				}
				return errEvalFailed
			}
			fmt.Fprintln(cmd.OutOrStdout(), calc.FormatResult(v))
			return nil
		},
	}
}
