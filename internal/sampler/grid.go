package sampler

import (
	"errors"
	"fmt"
	"math"
)

// Grid is a square lattice of complex inputs x+yi with x and y both in
// [Min, Max] at Step spacing.
type Grid struct {
	Min  float64 `json:"min" yaml:"min"`
	Max  float64 `json:"max" yaml:"max"`
	Step float64 `json:"step" yaml:"step"`
}

// DefaultGrid is [-10, 10] in steps of 0.2: 101 values per axis.
func DefaultGrid() Grid {
	return Grid{Min: -10, Max: 10, Step: 0.2}
}

// MaxPerAxis bounds the samples along one axis, so a grid never exceeds
// MaxPerAxis² cells.
const MaxPerAxis = 1001

var errBadGrid = errors.New("invalid grid")

// Validate rejects grids that would sample nothing or never terminate.
func (g Grid) Validate() error {
	switch {
	case math.IsNaN(g.Min) || math.IsNaN(g.Max) || math.IsNaN(g.Step):
		return fmt.Errorf("%w: NaN bound", errBadGrid)
	case math.IsInf(g.Min, 0) || math.IsInf(g.Max, 0):
		return fmt.Errorf("%w: infinite bound", errBadGrid)
	case g.Step <= 0:
		return fmt.Errorf("%w: step %g must be positive", errBadGrid, g.Step)
	case g.Max <= g.Min:
		return fmt.Errorf("%w: max %g must exceed min %g", errBadGrid, g.Max, g.Min)
	}
	if span := (g.Max - g.Min) / g.Step; math.IsInf(span, 0) || span+1e-9 >= MaxPerAxis {
		return fmt.Errorf("%w: step %g gives more than %d samples per axis", errBadGrid, g.Step, MaxPerAxis)
	}
	return nil
}

// PerAxis returns the number of samples along one axis. The small epsilon
// keeps 20/0.2 from rounding down to 99.
func (g Grid) PerAxis() int {
	if g.Validate() != nil {
		return 0
	}
	return int(math.Floor((g.Max-g.Min)/g.Step+1e-9)) + 1
}

// Count returns the number of cells.
func (g Grid) Count() int {
	n := g.PerAxis()
	return n * n
}

// Coord returns the i-th coordinate along an axis. Coordinates come from the
// index rather than a running sum, so they do not drift.
func (g Grid) Coord(i int) float64 {
	return g.Min + float64(i)*g.Step
}
