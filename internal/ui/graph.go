package ui

import (
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/zcalc/internal/layout"
	"github.com/five82/zcalc/internal/render"
	"github.com/five82/zcalc/internal/sampler"
)

// Camera steps per key press.
const (
	orbitStep = 0.1
	zoomStep  = 1.15
	panStep   = 0.05
	// graphChrome is the rows used by the equation, parameter and status
	// lines above the plot.
	graphChrome = 3
)

// handleGraphKey processes keyboard input on the Graph tab. Camera and
// parameter keys are taken first; everything else edits the equation.
func (m Model) handleGraphKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ParamUp):
		return m.stepParameter(1)
	case key.Matches(msg, m.keys.ParamDown):
		return m.stepParameter(-1)
	case key.Matches(msg, m.keys.OrbitLeft):
		m.camera.Orbit(-orbitStep, 0)
		return m, nil
	case key.Matches(msg, m.keys.OrbitRight):
		m.camera.Orbit(orbitStep, 0)
		return m, nil
	case key.Matches(msg, m.keys.OrbitUp):
		m.camera.Orbit(0, orbitStep)
		return m, nil
	case key.Matches(msg, m.keys.OrbitDown):
		m.camera.Orbit(0, -orbitStep)
		return m, nil
	case key.Matches(msg, m.keys.ZoomIn):
		m.camera.ZoomBy(zoomStep)
		return m, nil
	case key.Matches(msg, m.keys.ZoomOut):
		m.camera.ZoomBy(1 / zoomStep)
		return m, nil
	case key.Matches(msg, m.keys.PanLeft):
		m.camera.Pan(-panStep, 0)
		return m, nil
	case key.Matches(msg, m.keys.PanRight):
		m.camera.Pan(panStep, 0)
		return m, nil
	case key.Matches(msg, m.keys.PanUp):
		m.camera.Pan(0, panStep)
		return m, nil
	case key.Matches(msg, m.keys.PanDown):
		m.camera.Pan(0, -panStep)
		return m, nil
	case key.Matches(msg, m.keys.ResetCamera):
		m.camera.Reset()
		return m, nil
	case key.Matches(msg, m.keys.Pause):
		m.scene.Paused = !m.scene.Paused
		return m, nil
	}

	before := m.equation.Value()
	var cmd tea.Cmd
	m.equation, cmd = m.equation.Update(msg)
	if m.equation.Value() == before {
		return m, cmd
	}
	m.graph.Equation = m.equation.Value()
	return m, tea.Batch(cmd, m.scheduleResample())
}

func (m Model) stepParameter(n int) (tea.Model, tea.Cmd) {
	next := m.graph.Step(n)
	if next.ParameterA == m.graph.ParameterA {
		return m, nil
	}
	m.graph = next
	return m, m.scheduleResample()
}

// scheduleResample starts a new debounce window. Only the newest window's
// message triggers sampling; a zero debounce samples immediately.
func (m *Model) scheduleResample() tea.Cmd {
	m.resampleSeq++
	if m.config.Graph.ResampleDebounce <= 0 {
		m.resample()
		return nil
	}
	return resampleCmd(m.resampleSeq, m.config.Graph.ResampleDebounce)
}

// resample replaces the point cloud for the current graph state. A compile
// failure leaves an empty cloud and is reported in the status line.
func (m *Model) resample() {
	res := m.sampler.SampleGraph(m.graph)
	m.result = res
	m.scene.SetPoints(res.Points)
	m.camera.Scale = render.NewCamera(m.scene.Extent()).Scale
	if res.Err != nil {
		log.Printf("sample %q: %v", res.Equation, res.Err)
	}
}

// handleSpin advances the idle rotation while the Graph tab is visible.
func (m Model) handleSpin(now time.Time) (tea.Model, tea.Cmd) {
	if m.ctrl.Tab() != layout.TabGraph {
		m.spinning = false
		return m, nil
	}
	if !m.lastSpin.IsZero() {
		dt := now.Sub(m.lastSpin)
		if dt > time.Second {
			dt = spinInterval
		}
		m.scene.Advance(dt)
	}
	m.lastSpin = now
	return m, spinCmd()
}

// renderGraph renders the equation field, the parameter slider, a status
// line and the braille plot filling the remaining rows.
func (m Model) renderGraph() string {
	styles := m.theme.Styles()

	fraction := (m.graph.ParameterA - sampler.MinParameter) / (sampler.MaxParameter - sampler.MinParameter)
	param := lipgloss.JoinHorizontal(lipgloss.Center,
		styles.AccentText.Render(fmt.Sprintf("a = %-4s ", formatParameter(m.graph.ParameterA))),
		m.slider.ViewAs(math.Max(0, math.Min(1, fraction))),
	)

	rows := max(m.height-2-graphChrome, 0)
	cv := render.NewCanvas(m.width, rows)
	render.Draw(cv, m.camera, m.scene)

	lines := []string{
		m.equation.View(),
		param,
		m.graphStatus(styles),
	}
	if rows > 0 {
		lines = append(lines, cv.Render())
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) graphStatus(styles Styles) string {
	if m.result.Err != nil {
		return styles.WarningText.Render(truncate(m.result.Err.Error(), m.width))
	}
	parts := []string{styles.SuccessText.Render(fmt.Sprintf("%d points", len(m.result.Points)))}
	if m.result.Dropped > 0 {
		parts = append(parts, styles.WarningText.Render(fmt.Sprintf("%d dropped", m.result.Dropped)))
	}
	parts = append(parts, styles.MutedText.Render(fmt.Sprintf("zoom %.2f", m.camera.Zoom)))
	if m.scene.Paused {
		parts = append(parts, styles.InfoText.Render("paused"))
	}
	return strings.Join(parts, styles.FaintText.Render(" · "))
}

func formatParameter(a float64) string {
	return fmt.Sprintf("%.1f", a)
}
