package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/five82/zcalc/internal/sampler"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.CompactWidth != 80 {
		t.Fatalf("CompactWidth = %d, want 80", cfg.CompactWidth)
	}
	if cfg.LogFile != "" {
		t.Fatalf("LogFile = %q, want empty", cfg.LogFile)
	}
	if cfg.Graph.Equation != "a^z - z" || cfg.Graph.Parameter != 2 {
		t.Fatalf("Graph = %q/%v, want a^z - z / 2", cfg.Graph.Equation, cfg.Graph.Parameter)
	}
	if cfg.Graph.Grid != sampler.DefaultGrid() {
		t.Fatalf("Grid = %+v, want %+v", cfg.Graph.Grid, sampler.DefaultGrid())
	}
	if cfg.Graph.ResampleDebounce != 250*time.Millisecond {
		t.Fatalf("ResampleDebounce = %v, want 250ms", cfg.Graph.ResampleDebounce)
	}
}

func TestLoad_DefaultPathUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "zcalc")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("compact_width = 60\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.CompactWidth != 60 {
		t.Fatalf("CompactWidth = %d, want 60", cfg.CompactWidth)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, `
compact_width = 100
log_file = "  ~/zcalc.log  "

[graph]
equation = "  sin(a*z)  "
parameter = 3.14
grid_min = -2.0
grid_max = 2.0
grid_step = 0.5
max_height = 3.0
axis_size = 2.5
resample_debounce_ms = 0
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.CompactWidth != 100 {
		t.Fatalf("CompactWidth = %d, want 100", cfg.CompactWidth)
	}
	if cfg.LogFile != filepath.Join(home, "zcalc.log") {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}
	if cfg.Graph.Equation != "sin(a*z)" {
		t.Fatalf("Equation = %q, want %q", cfg.Graph.Equation, "sin(a*z)")
	}
	if cfg.Graph.Parameter != 3.1 {
		t.Fatalf("Parameter = %v, want 3.1", cfg.Graph.Parameter)
	}
	want := sampler.Grid{Min: -2, Max: 2, Step: 0.5}
	if cfg.Graph.Grid != want {
		t.Fatalf("Grid = %+v, want %+v", cfg.Graph.Grid, want)
	}
	if cfg.Graph.MaxHeight != 3 || cfg.Graph.AxisSize != 2.5 {
		t.Fatalf("MaxHeight/AxisSize = %v/%v, want 3/2.5", cfg.Graph.MaxHeight, cfg.Graph.AxisSize)
	}
	if cfg.Graph.ResampleDebounce != 0 {
		t.Fatalf("ResampleDebounce = %v, want 0", cfg.Graph.ResampleDebounce)
	}
}

func TestLoad_InvalidValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := writeConfig(t, `
compact_width = -4
log_file = "   "

[graph]
equation = "   "
grid_step = 0.0
max_height = -1.0
axis_size = 0.0
resample_debounce_ms = -10
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	def := Default()
	if cfg.CompactWidth != def.CompactWidth {
		t.Fatalf("CompactWidth = %d, want %d", cfg.CompactWidth, def.CompactWidth)
	}
	if cfg.LogFile != "" {
		t.Fatalf("LogFile = %q, want empty", cfg.LogFile)
	}
	if cfg.Graph != def.Graph {
		t.Fatalf("Graph = %+v, want defaults %+v", cfg.Graph, def.Graph)
	}
}

func TestLoad_InvertedGridKeepsDefault(t *testing.T) {
	path := writeConfig(t, "[graph]\ngrid_min = 5.0\ngrid_max = -5.0\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Graph.Grid != sampler.DefaultGrid() {
		t.Fatalf("Grid = %+v, want default", cfg.Graph.Grid)
	}
}

func TestLoad_OversizedGridKeepsDefault(t *testing.T) {
	for _, step := range []string{"0.000001", "0.001"} {
		path := writeConfig(t, "[graph]\ngrid_step = "+step+"\n")
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}
		if cfg.Graph.Grid != sampler.DefaultGrid() {
			t.Fatalf("grid_step %s: Grid = %+v, want default", step, cfg.Graph.Grid)
		}
	}
}

func TestLoad_ParameterClamped(t *testing.T) {
	path := writeConfig(t, "[graph]\nparameter = 42.0\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Graph.Parameter != sampler.MaxParameter {
		t.Fatalf("Parameter = %v, want %v", cfg.Graph.Parameter, sampler.MaxParameter)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := writeConfig(t, `compact_width = [`)
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/a/b")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("ExpandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
