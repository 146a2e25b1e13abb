package sampler

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/five82/zcalc/internal/evaluator"
)

// MaxHeight bounds the plotted magnitude.
const MaxHeight = 5.0

// DefaultCacheSize is the number of point sets kept by a Sampler.
const DefaultCacheSize = 32

// VariableName is the free variable bound to each grid cell.
const VariableName = "z"

// Point is one sampled cell: z = X + Yi plotted at Height = min(|f(z)|, max).
type Point struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Height float64 `json:"height" yaml:"height"`
}

// Result is a full point set for one equation.
type Result struct {
	Equation string
	Grid     Grid
	Points   []Point
	// Dropped counts cells that failed to evaluate, such as poles, or whose
	// magnitude is NaN. Infinite magnitudes are kept and clamped.
	Dropped int
	// Err is set when the equation itself does not compile. Points is empty
	// in that case.
	Err error
}

// Options configures a Sampler. Zero values select the defaults.
type Options struct {
	Grid      Grid
	MaxHeight float64
	CacheSize int
}

// Sampler evaluates equations over a grid and caches recent point sets.
// It is safe for concurrent use.
type Sampler struct {
	grid      Grid
	maxHeight float64
	cacheSize int

	mu    sync.Mutex
	cache map[uint64]Result
	order []uint64
}

// New returns a Sampler. An invalid grid falls back to DefaultGrid.
func New(opts Options) *Sampler {
	grid := opts.Grid
	if grid.Validate() != nil {
		grid = DefaultGrid()
	}
	maxHeight := opts.MaxHeight
	if maxHeight <= 0 || math.IsNaN(maxHeight) {
		maxHeight = MaxHeight
	}
	size := opts.CacheSize
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &Sampler{
		grid:      grid,
		maxHeight: maxHeight,
		cacheSize: size,
		cache:     make(map[uint64]Result),
	}
}

// Grid returns the lattice the sampler evaluates over.
func (s *Sampler) Grid() Grid { return s.grid }

// MaxHeight returns the clamp applied to magnitudes.
func (s *Sampler) MaxHeight() float64 { return s.maxHeight }

// SampleGraph resolves g and samples it.
func (s *Sampler) SampleGraph(g GraphState) Result {
	return s.Sample(g.Resolved())
}

// Sample returns the point set for equation, from the cache when possible.
// The returned slice is never shared with the cache.
func (s *Sampler) Sample(equation string) Result {
	key := s.key(equation)

	s.mu.Lock()
	if res, ok := s.cache[key]; ok && res.Equation == equation {
		s.mu.Unlock()
		return res.clone()
	}
	s.mu.Unlock()

	res := Sample(equation, s.grid, s.maxHeight)

	s.mu.Lock()
	s.store(key, res)
	s.mu.Unlock()
	return res.clone()
}

// Len reports how many point sets are cached.
func (s *Sampler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cache)
}

func (s *Sampler) store(key uint64, res Result) {
	if _, ok := s.cache[key]; !ok {
		s.order = append(s.order, key)
	}
	s.cache[key] = res
	for len(s.order) > s.cacheSize {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.cache, oldest)
	}
}

func (s *Sampler) key(equation string) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(equation)
	var buf [8]byte
	for _, f := range []float64{s.grid.Min, s.grid.Max, s.grid.Step, s.maxHeight} {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}

func (r Result) clone() Result {
	if r.Points != nil {
		r.Points = append([]Point(nil), r.Points...)
	}
	return r
}

// Sample evaluates equation at every grid cell, x outer and y inner. Cells
// whose evaluation fails or whose magnitude is NaN are dropped. A real
// result contributes |re|. Heights are clamped to maxHeight.
func Sample(equation string, grid Grid, maxHeight float64) Result {
	res := Result{Equation: equation, Grid: grid}
	if err := grid.Validate(); err != nil {
		res.Err = err
		return res
	}
	prog, err := evaluator.Compile(equation)
	if err != nil {
		res.Err = err
		return res
	}

	n := grid.PerAxis()
	res.Points = make([]Point, 0, n*n)
	scope := evaluator.Scope{}
	for i := 0; i < n; i++ {
		x := grid.Coord(i)
		for j := 0; j < n; j++ {
			y := grid.Coord(j)
			scope[VariableName] = evaluator.Complex(x, y)
			v, err := prog.Eval(scope)
			if err != nil {
				res.Dropped++
				continue
			}
			m := v.Modulus()
			if math.IsNaN(m) {
				res.Dropped++
				continue
			}
			res.Points = append(res.Points, Point{X: x, Y: y, Height: math.Min(m, maxHeight)})
		}
	}
	return res
}
