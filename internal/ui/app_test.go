package ui

import (
	"math"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/zcalc/internal/config"
	"github.com/five82/zcalc/internal/layout"
	"github.com/five82/zcalc/internal/prefs"
	"github.com/five82/zcalc/internal/render"
	"github.com/five82/zcalc/internal/sampler"
)

var specialKeys = map[string]tea.KeyType{
	"enter":      tea.KeyEnter,
	"backspace":  tea.KeyBackspace,
	"esc":        tea.KeyEsc,
	"tab":        tea.KeyTab,
	"shift+tab":  tea.KeyShiftTab,
	"f1":         tea.KeyF1,
	"f2":         tea.KeyF2,
	"f3":         tea.KeyF3,
	"up":         tea.KeyUp,
	"down":       tea.KeyDown,
	"left":       tea.KeyLeft,
	"right":      tea.KeyRight,
	"space":      tea.KeySpace,
	"ctrl+a":     tea.KeyCtrlA,
	"ctrl+c":     tea.KeyCtrlC,
	"ctrl+p":     tea.KeyCtrlP,
	"ctrl+r":     tea.KeyCtrlR,
	"ctrl+t":     tea.KeyCtrlT,
	"f10":        tea.KeyF10,
	"ctrl+left":  tea.KeyCtrlLeft,
	"shift+left": tea.KeyShiftLeft,
	"pgup":       tea.KeyPgUp,
	"pgdown":     tea.KeyPgDown,
}

func keyMsg(k string) tea.KeyMsg {
	if t, ok := specialKeys[k]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(m Model, keys ...string) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyMsg(k))
		m = next.(Model)
	}
	return m, cmd
}

func newTestModel(t *testing.T, width int, debounce time.Duration) Model {
	t.Helper()
	cfg := config.Default()
	cfg.Graph.Grid = sampler.Grid{Min: -1, Max: 1, Step: 1}
	cfg.Graph.ResampleDebounce = debounce

	m := New(Options{
		Config:    &cfg,
		Prefs:     prefs.Default(),
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
	})
	next, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: 40})
	return next.(Model)
}

func TestCalculator_TypedExpressionEvaluates(t *testing.T) {
	m := newTestModel(t, 100, 0)

	m, _ = press(m, "1", "2", "+", "3", "0", "enter")
	if m.calc.Display != "42" {
		t.Fatalf("Display = %q, want %q", m.calc.Display, "42")
	}
	if !m.calc.IsResult {
		t.Fatalf("IsResult = false, want true")
	}

	m, _ = press(m, "esc")
	if m.calc.Display != "0" || m.calc.Expression != "" {
		t.Fatalf("after clear = %q/%q, want 0/empty", m.calc.Display, m.calc.Expression)
	}
}

func TestCalculator_FunctionShortcutAndBackspace(t *testing.T) {
	m := newTestModel(t, 100, 0)

	m, _ = press(m, "s", "0", ")", "=")
	if m.calc.Display != "0" || !m.calc.IsResult {
		t.Fatalf("sin(0) = %q (result %v), want 0", m.calc.Display, m.calc.IsResult)
	}

	m, _ = press(m, "esc", "1", "2", "backspace")
	if m.calc.Display != "1" {
		t.Fatalf("Display after backspace = %q, want %q", m.calc.Display, "1")
	}
}

func TestCalculator_ComplexTab(t *testing.T) {
	m := newTestModel(t, 100, 0)

	m, _ = press(m, "f2", "2", "+", "3", "i", "enter")
	if m.calc.Display != "2 + 3i" {
		t.Fatalf("Display = %q, want %q", m.calc.Display, "2 + 3i")
	}
	if !m.calc.IsComplex {
		t.Fatalf("IsComplex = false, want true")
	}
}

func TestCalculator_ComplexKeysIgnoredOnStandardTab(t *testing.T) {
	m := newTestModel(t, 100, 0)

	m, _ = press(m, "2", "i", "a")
	if m.calc.Display != "2" {
		t.Fatalf("Display = %q, want %q", m.calc.Display, "2")
	}
}

func TestTabs_SwitchingKeepsBuffer(t *testing.T) {
	m := newTestModel(t, 100, 0)

	m, _ = press(m, "7", "tab")
	if m.ctrl.Tab() != layout.TabComplex {
		t.Fatalf("Tab = %v, want Complex", m.ctrl.Tab())
	}
	m, _ = press(m, "tab", "tab")
	if m.ctrl.Tab() != layout.TabStandard {
		t.Fatalf("Tab = %v, want Standard", m.ctrl.Tab())
	}
	if m.calc.Display != "7" || m.calc.Expression != "7" {
		t.Fatalf("buffer = %q/%q, want 7/7", m.calc.Display, m.calc.Expression)
	}

	m, _ = press(m, "shift+tab")
	if m.ctrl.Tab() != layout.TabGraph {
		t.Fatalf("Tab = %v, want Graph", m.ctrl.Tab())
	}
}

func TestKeypad_CursorPress(t *testing.T) {
	m := newTestModel(t, 100, 0)
	if sel := m.ctrl.Selection(); sel.Layout != layout.ExpandedStandard {
		t.Fatalf("Layout = %v, want ExpandedStandard", sel.Layout)
	}

	// Expanded standard keypad starts with sin cos tan log.
	m, _ = press(m, "right", "space")
	if m.calc.Display != "cos(" {
		t.Fatalf("Display = %q, want %q", m.calc.Display, "cos(")
	}

	// Moving past the edge clamps.
	m, _ = press(m, "left", "left", "left", "up")
	if m.cursorRow != 0 || m.cursorCol != 0 {
		t.Fatalf("cursor = (%d,%d), want (0,0)", m.cursorRow, m.cursorCol)
	}
}

func TestCompactLayout_AdvancedToggleIsSaved(t *testing.T) {
	m := newTestModel(t, 60, 0)
	if sel := m.ctrl.Selection(); sel.Layout != layout.CompactStandard || sel.Advanced {
		t.Fatalf("Selection = %+v, want compact without advanced", sel)
	}

	// The compact keypad's first row is the fx toggle.
	m, _ = press(m, "space")
	if !m.ctrl.ShowAdvanced() {
		t.Fatalf("ShowAdvanced = false, want true")
	}
	if b, _, _, _ := m.keypad().At(0, 0); b.Label != "sin" {
		t.Fatalf("first key = %q, want sin", b.Label)
	}
	if got := prefs.Load(m.prefsPath); !got.ShowAdvanced {
		t.Fatalf("saved prefs = %+v, want ShowAdvanced", got)
	}

	m, _ = press(m, "ctrl+a")
	if m.ctrl.ShowAdvanced() {
		t.Fatalf("ShowAdvanced = true after second toggle, want false")
	}
}

func TestResize_RecomputesLayout(t *testing.T) {
	m := newTestModel(t, 100, 0)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 79, Height: 30})
	m = next.(Model)
	if !m.ctrl.Compact() {
		t.Fatalf("Compact = false at 79 columns, want true")
	}
	next, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	m = next.(Model)
	if m.ctrl.Compact() {
		t.Fatalf("Compact = true at 80 columns, want false")
	}
}

func TestGraph_DefaultSampleOnStart(t *testing.T) {
	m := newTestModel(t, 100, 0)
	if m.result.Equation != "2^z - z" {
		t.Fatalf("Equation = %q, want %q", m.result.Equation, "2^z - z")
	}
	if len(m.result.Points) != 9 {
		t.Fatalf("len(Points) = %d, want 9", len(m.result.Points))
	}
}

func TestGraph_EditResamplesImmediatelyWithoutDebounce(t *testing.T) {
	m := newTestModel(t, 100, 0)

	m, _ = press(m, "f3", "+", "1")
	if m.equation.Value() != "a^z - z+1" {
		t.Fatalf("equation = %q, want %q", m.equation.Value(), "a^z - z+1")
	}
	if m.result.Equation != "2^z - z+1" {
		t.Fatalf("sampled %q, want %q", m.result.Equation, "2^z - z+1")
	}
}

func TestGraph_TypesHelpAndThemeRunes(t *testing.T) {
	m := newTestModel(t, 100, 0)
	m.equation.SetValue("")

	m, _ = press(m, "f3", "T", "?")
	if m.equation.Value() != "T?" {
		t.Fatalf("equation = %q, want %q", m.equation.Value(), "T?")
	}
	if m.showHelp || m.theme.Name != "Nightfox" {
		t.Fatalf("runes triggered global keys: showHelp=%v theme=%q", m.showHelp, m.theme.Name)
	}

	m, _ = press(m, "ctrl+t")
	if m.theme.Name != "Kanagawa" {
		t.Fatalf("theme = %q, want Kanagawa", m.theme.Name)
	}
	m, _ = press(m, "f10")
	if !m.showHelp {
		t.Fatalf("f10 did not open help on the graph tab")
	}
}

func TestGraph_DebounceUsesNewestWindow(t *testing.T) {
	m := newTestModel(t, 100, 250*time.Millisecond)

	m, cmd := press(m, "f3", "+", "1")
	if cmd == nil {
		t.Fatalf("expected a debounce command")
	}
	if m.result.Equation != "2^z - z" {
		t.Fatalf("sampled %q before debounce, want the default", m.result.Equation)
	}

	next, _ := m.Update(resampleMsg{seq: m.resampleSeq - 1})
	m = next.(Model)
	if m.result.Equation != "2^z - z" {
		t.Fatalf("stale tick sampled %q", m.result.Equation)
	}

	next, _ = m.Update(resampleMsg{seq: m.resampleSeq})
	m = next.(Model)
	if m.result.Equation != "2^z - z+1" {
		t.Fatalf("sampled %q, want %q", m.result.Equation, "2^z - z+1")
	}
}

func TestGraph_ParameterSteps(t *testing.T) {
	m := newTestModel(t, 100, 0)

	m, _ = press(m, "f3", "up")
	if m.graph.ParameterA != 2.1 {
		t.Fatalf("ParameterA = %v, want 2.1", m.graph.ParameterA)
	}
	if m.result.Equation != "2.1^z - z" {
		t.Fatalf("sampled %q, want %q", m.result.Equation, "2.1^z - z")
	}

	for i := 0; i < 60; i++ {
		m, _ = press(m, "down")
	}
	if m.graph.ParameterA != sampler.MinParameter {
		t.Fatalf("ParameterA = %v, want %v", m.graph.ParameterA, sampler.MinParameter)
	}
}

func TestGraph_InvalidEquationShowsStatus(t *testing.T) {
	m := newTestModel(t, 100, 0)

	m, _ = press(m, "f3", "*")
	if m.result.Err == nil {
		t.Fatalf("Err = nil, want a parse error")
	}
	if len(m.scene.Points) != 0 {
		t.Fatalf("scene has %d points, want none", len(m.scene.Points))
	}
	if !strings.Contains(m.View(), "f(z) = ") {
		t.Fatalf("graph view missing equation field")
	}
}

func TestGraph_CameraKeys(t *testing.T) {
	m := newTestModel(t, 100, 0)

	m, _ = press(m, "f3", "pgup")
	if math.Abs(m.camera.Zoom-zoomStep) > 1e-9 {
		t.Fatalf("Zoom = %v, want %v", m.camera.Zoom, zoomStep)
	}
	m, _ = press(m, "shift+left", "ctrl+left")
	if m.camera.Yaw == render.DefaultYaw || m.camera.PanX != -panStep {
		t.Fatalf("camera = %+v, want orbit and pan applied", m.camera)
	}
	m, _ = press(m, "ctrl+r")
	if m.camera.Zoom != 1 || m.camera.Yaw != render.DefaultYaw || m.camera.PanX != 0 {
		t.Fatalf("camera after reset = %+v", m.camera)
	}

	m, _ = press(m, "ctrl+p")
	if !m.scene.Paused {
		t.Fatalf("Paused = false, want true")
	}
}

func TestSpin_StopsOffGraphTab(t *testing.T) {
	m := newTestModel(t, 100, 0)

	m, cmd := press(m, "f3")
	if !m.spinning || cmd == nil {
		t.Fatalf("spinning = %v, want a spin tick scheduled", m.spinning)
	}

	start := time.Now()
	next, cmd := m.Update(spinMsg(start))
	m = next.(Model)
	if cmd == nil {
		t.Fatalf("spin tick on graph tab did not reschedule")
	}
	next, _ = m.Update(spinMsg(start.Add(time.Second / 2)))
	m = next.(Model)
	if m.scene.Angle <= 0 {
		t.Fatalf("Angle = %v, want it advanced", m.scene.Angle)
	}

	m, _ = press(m, "f1")
	next, cmd = m.Update(spinMsg(start.Add(time.Second)))
	m = next.(Model)
	if m.spinning || cmd != nil {
		t.Fatalf("spin continued off the graph tab")
	}
}

func TestGlobalKeys(t *testing.T) {
	m := newTestModel(t, 100, 0)

	m, _ = press(m, "T")
	if m.theme.Name != "Kanagawa" {
		t.Fatalf("theme = %q, want Kanagawa", m.theme.Name)
	}
	if got := prefs.Load(m.prefsPath); got.Theme != "Kanagawa" {
		t.Fatalf("saved theme = %q, want Kanagawa", got.Theme)
	}

	m, _ = press(m, "?")
	if !m.showHelp || !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Fatalf("help overlay not shown")
	}
	m, _ = press(m, "7")
	if m.showHelp || m.calc.Display != "0" {
		t.Fatalf("closing help should swallow the key: showHelp=%v display=%q", m.showHelp, m.calc.Display)
	}

	_, cmd := press(m, "ctrl+c")
	if cmd == nil {
		t.Fatalf("ctrl+c returned nil command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("ctrl+c did not quit")
	}
}

func TestView_RendersHeaderAndKeypad(t *testing.T) {
	if got := New(Options{}).View(); got != "Loading..." {
		t.Fatalf("View before resize = %q, want Loading...", got)
	}

	m := newTestModel(t, 100, 0)
	view := m.View()
	for _, want := range []string{"zcalc", "Standard", "Complex", "Graph", "sin", "÷", "="} {
		if !strings.Contains(view, want) {
			t.Fatalf("View missing %q", want)
		}
	}
}
