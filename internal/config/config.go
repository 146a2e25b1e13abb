package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/zcalc/internal/layout"
	"github.com/five82/zcalc/internal/sampler"
)

// Config holds zcalc's settings.
type Config struct {
	CompactWidth int
	LogFile      string
	Graph        Graph
}

// Graph holds the grapher's settings.
type Graph struct {
	Equation         string
	Parameter        float64
	Grid             sampler.Grid
	MaxHeight        float64
	AxisSize         float64
	ResampleDebounce time.Duration
}

const (
	defaultConfigPath       = "~/.config/zcalc/config.toml"
	defaultAxisSize         = 5.0
	defaultResampleDebounce = 250 * time.Millisecond
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		CompactWidth: layout.DefaultCompactWidth,
		Graph: Graph{
			Equation:         sampler.DefaultEquation,
			Parameter:        sampler.DefaultParameter,
			Grid:             sampler.DefaultGrid(),
			MaxHeight:        sampler.MaxHeight,
			AxisSize:         defaultAxisSize,
			ResampleDebounce: defaultResampleDebounce,
		},
	}
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		CompactWidth *int   `toml:"compact_width"`
		LogFile      string `toml:"log_file"`
		Graph        struct {
			Equation           string   `toml:"equation"`
			Parameter          *float64 `toml:"parameter"`
			GridMin            *float64 `toml:"grid_min"`
			GridMax            *float64 `toml:"grid_max"`
			GridStep           *float64 `toml:"grid_step"`
			MaxHeight          *float64 `toml:"max_height"`
			AxisSize           *float64 `toml:"axis_size"`
			ResampleDebounceMS *int     `toml:"resample_debounce_ms"`
		} `toml:"graph"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if raw.CompactWidth != nil && *raw.CompactWidth > 0 {
		cfg.CompactWidth = *raw.CompactWidth
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}

	g := raw.Graph
	if eq := strings.TrimSpace(g.Equation); eq != "" {
		cfg.Graph.Equation = eq
	}
	if g.Parameter != nil {
		cfg.Graph.Parameter = sampler.ClampParameter(*g.Parameter)
	}

	grid := cfg.Graph.Grid
	if g.GridMin != nil {
		grid.Min = *g.GridMin
	}
	if g.GridMax != nil {
		grid.Max = *g.GridMax
	}
	if g.GridStep != nil {
		grid.Step = *g.GridStep
	}
	if grid.Validate() == nil {
		cfg.Graph.Grid = grid
	}

	if positive(g.MaxHeight) {
		cfg.Graph.MaxHeight = *g.MaxHeight
	}
	if positive(g.AxisSize) {
		cfg.Graph.AxisSize = *g.AxisSize
	}
	if g.ResampleDebounceMS != nil && *g.ResampleDebounceMS >= 0 {
		cfg.Graph.ResampleDebounce = time.Duration(*g.ResampleDebounceMS) * time.Millisecond
	}

	return cfg, nil
}

func positive(v *float64) bool {
	return v != nil && *v > 0 && !math.IsInf(*v, 0)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading ~ and returns an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
