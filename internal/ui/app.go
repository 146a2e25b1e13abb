package ui

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/zcalc/internal/calc"
	"github.com/five82/zcalc/internal/config"
	"github.com/five82/zcalc/internal/evaluator"
	"github.com/five82/zcalc/internal/layout"
	"github.com/five82/zcalc/internal/prefs"
	"github.com/five82/zcalc/internal/render"
	"github.com/five82/zcalc/internal/sampler"
)

// spinInterval is how often the grapher advances its idle rotation.
const spinInterval = 100 * time.Millisecond

// Options configures the UI.
type Options struct {
	Context   context.Context
	Config    *config.Config
	Prefs     prefs.Prefs
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	config    config.Config
	prefsPath string
	keys      keyMap

	// UI state
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool
	help     help.Model

	// Calculator state
	ctrl      layout.Controller
	calc      calc.State
	engine    evaluator.Engine
	cursorRow int
	cursorCol int

	// Grapher state
	graph       sampler.GraphState
	equation    textinput.Model
	slider      progress.Model
	sampler     *sampler.Sampler
	result      sampler.Result
	resampleSeq int
	scene       *render.Scene
	camera      render.Camera
	spinning    bool
	lastSpin    time.Time
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := config.Default()
	if opts.Config != nil {
		cfg = *opts.Config
	}

	themeName := opts.Prefs.Theme
	if themeName == "" {
		themeName = prefs.Default().Theme
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	ctrl := layout.NewController(cfg.CompactWidth)
	if opts.Prefs.ShowAdvanced {
		ctrl = ctrl.ToggleAdvanced()
	}

	graph := sampler.GraphState{Equation: cfg.Graph.Equation}.WithParameter(cfg.Graph.Parameter)

	input := textinput.New()
	input.Prompt = "f(z) = "
	input.Placeholder = sampler.DefaultEquation
	input.CharLimit = 256
	input.SetValue(graph.Equation)

	m := Model{
		ctx:       ctx,
		config:    cfg,
		prefsPath: prefsPath,
		keys:      DefaultKeyMap(),
		theme:     GetTheme(themeName),
		help:      help.New(),
		ctrl:      ctrl,
		calc:      calc.New(),
		graph:     graph,
		equation:  input,
		slider:    progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		sampler: sampler.New(sampler.Options{
			Grid:      cfg.Graph.Grid,
			MaxHeight: cfg.Graph.MaxHeight,
		}),
		scene: render.NewScene(cfg.Graph.AxisSize),
	}
	m.camera = render.NewCamera(m.scene.Extent())
	m.resample()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.ctrl = m.ctrl.Resize(msg.Width)
		m.help.Width = msg.Width
		m.equation.Width = max(msg.Width-len(m.equation.Prompt)-2, 10)
		m.slider.Width = clampInt(msg.Width/3, 10, 40)
		m.clampCursor()
		return m, nil

	case resampleMsg:
		if msg.seq == m.resampleSeq {
			m.resample()
		}
		return m, nil

	case spinMsg:
		return m.handleSpin(time.Time(msg))
	}

	if m.ctrl.Tab() == layout.TabGraph {
		var cmd tea.Cmd
		m.equation, cmd = m.equation.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// handleKey processes keyboard input: global keys first, then the active tab.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	// Printable keys belong to the equation field on the graph tab.
	typing := m.ctrl.Tab() == layout.TabGraph && msg.Type == tea.KeyRunes

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case !typing && key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case !typing && key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.NextTab):
		return m.switchTab(m.ctrl.NextTab())

	case key.Matches(msg, m.keys.PrevTab):
		return m.switchTab(m.ctrl.PrevTab())

	case key.Matches(msg, m.keys.Standard):
		return m.switchTab(m.ctrl.SetTab(layout.TabStandard))

	case key.Matches(msg, m.keys.Complex):
		return m.switchTab(m.ctrl.SetTab(layout.TabComplex))

	case key.Matches(msg, m.keys.Graph):
		return m.switchTab(m.ctrl.SetTab(layout.TabGraph))
	}

	if m.ctrl.Tab() == layout.TabGraph {
		return m.handleGraphKey(msg)
	}
	return m.handleCalculatorKey(msg)
}

// switchTab moves to the tab selected by next. The calculator buffer is
// left untouched.
func (m Model) switchTab(next layout.Controller) (tea.Model, tea.Cmd) {
	m.ctrl = next
	m.clampCursor()
	if m.ctrl.Tab() != layout.TabGraph {
		m.equation.Blur()
		return m, nil
	}
	cmds := []tea.Cmd{m.equation.Focus()}
	if !m.spinning {
		m.spinning = true
		m.lastSpin = time.Time{}
		cmds = append(cmds, spinCmd())
	}
	return m, tea.Batch(cmds...)
}

// savePrefs persists the theme and advanced panel state.
func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, ShowAdvanced: m.ctrl.ShowAdvanced()}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		log.Printf("save prefs: %v", err)
	}
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	body := m.renderCalculator()
	if m.ctrl.Tab() == layout.TabGraph {
		body = m.renderGraph()
	}
	b.WriteString(body)
	b.WriteString("\n")

	b.WriteString(m.renderFooter())
	return b.String()
}

// Messages

type resampleMsg struct{ seq int }

type spinMsg time.Time

// Commands

func resampleCmd(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return resampleMsg{seq: seq}
	})
}

func spinCmd() tea.Cmd {
	return tea.Tick(spinInterval, func(t time.Time) tea.Msg {
		return spinMsg(t)
	})
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
