package sampler

import (
	"math"
	"strconv"
	"strings"

	"github.com/five82/zcalc/internal/evaluator"
)

// Parameter limits for the substitutable token a.
const (
	MinParameter     = 0.1
	MaxParameter     = 5.0
	ParameterStep    = 0.1
	DefaultParameter = 2.0
)

// DefaultEquation is the grapher's starting equation.
const DefaultEquation = "a^z - z"

// ParameterName is the token replaced by the parameter value.
const ParameterName = "a"

// GraphState is the grapher's input: an equation in z and the value of a.
type GraphState struct {
	Equation   string
	ParameterA float64
}

// NewGraphState returns the default equation with a = 2.
func NewGraphState() GraphState {
	return GraphState{Equation: DefaultEquation, ParameterA: DefaultParameter}
}

// WithParameter sets a, clamped and snapped to the slider grid.
func (g GraphState) WithParameter(a float64) GraphState {
	g.ParameterA = ClampParameter(a)
	return g
}

// Step moves a by n slider steps.
func (g GraphState) Step(n int) GraphState {
	return g.WithParameter(g.ParameterA + float64(n)*ParameterStep)
}

// Resolved returns the equation with a substituted. A blank equation falls
// back to DefaultEquation.
func (g GraphState) Resolved() string {
	eq := strings.TrimSpace(g.Equation)
	if eq == "" {
		eq = DefaultEquation
	}
	return SubstituteParameter(eq, g.ParameterA)
}

// SubstituteParameter replaces every standalone a in equation.
func SubstituteParameter(equation string, a float64) string {
	return evaluator.Substitute(equation, ParameterName, FormatParameter(a))
}

// ClampParameter snaps a to the nearest 0.1 within [MinParameter,
// MaxParameter]. NaN maps to DefaultParameter.
func ClampParameter(a float64) float64 {
	if math.IsNaN(a) {
		return DefaultParameter
	}
	a = math.Round(a*10) / 10
	return math.Max(MinParameter, math.Min(MaxParameter, a))
}

// FormatParameter renders a as the shortest decimal text.
func FormatParameter(a float64) string {
	return strconv.FormatFloat(ClampParameter(a), 'f', -1, 64)
}
