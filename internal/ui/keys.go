package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/five82/zcalc/internal/calc"
)

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	NextTab    key.Binding
	PrevTab    key.Binding
	Standard   key.Binding
	Complex    key.Binding
	Graph      key.Binding

	// Calculator
	Evaluate       key.Binding
	Backspace      key.Binding
	Clear          key.Binding
	Press          key.Binding
	Up             key.Binding
	Down           key.Binding
	Left           key.Binding
	Right          key.Binding
	ToggleAdvanced key.Binding

	// Grapher
	ParamUp     key.Binding
	ParamDown   key.Binding
	OrbitLeft   key.Binding
	OrbitRight  key.Binding
	OrbitUp     key.Binding
	OrbitDown   key.Binding
	ZoomIn      key.Binding
	ZoomOut     key.Binding
	PanLeft     key.Binding
	PanRight    key.Binding
	PanUp       key.Binding
	PanDown     key.Binding
	ResetCamera key.Binding
	Pause       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "f10"),
			key.WithHelp("?/f10", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T", "ctrl+t"),
			key.WithHelp("T/ctrl+t", "Cycle theme"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous tab"),
		),
		Standard: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "Standard"),
		),
		Complex: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("F2", "Complex"),
		),
		Graph: key.NewBinding(
			key.WithKeys("f3"),
			key.WithHelp("F3", "Graph"),
		),

		// Calculator
		Evaluate: key.NewBinding(
			key.WithKeys("enter", "="),
			key.WithHelp("enter/=", "Evaluate"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "Erase"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Clear"),
		),
		Press: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "Press key"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "Move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "Move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "Move right"),
		),
		ToggleAdvanced: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("ctrl+a", "Advanced functions"),
		),

		// Grapher
		ParamUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "a + 0.1"),
		),
		ParamDown: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "a - 0.1"),
		),
		OrbitLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←→↑↓", "Orbit")),
		OrbitRight: key.NewBinding(key.WithKeys("shift+right")),
		OrbitUp:    key.NewBinding(key.WithKeys("shift+up")),
		OrbitDown:  key.NewBinding(key.WithKeys("shift+down")),
		ZoomIn: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup/pgdn", "Zoom"),
		),
		ZoomOut:  key.NewBinding(key.WithKeys("pgdown")),
		PanLeft:  key.NewBinding(key.WithKeys("ctrl+left"), key.WithHelp("ctrl+←→↑↓", "Pan")),
		PanRight: key.NewBinding(key.WithKeys("ctrl+right")),
		PanUp:    key.NewBinding(key.WithKeys("ctrl+up")),
		PanDown:  key.NewBinding(key.WithKeys("ctrl+down")),
		ResetCamera: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "Reset view"),
		),
		Pause: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "Pause spin"),
		),
	}
}

// calculatorHelp is shown in the footer on the calculator tabs.
func (k keyMap) calculatorHelp() []key.Binding {
	return []key.Binding{k.Evaluate, k.Backspace, k.Clear, k.Press, k.ToggleAdvanced, k.NextTab, k.Help, k.Quit}
}

// graphHelp is shown in the footer on the grapher tab.
func (k keyMap) graphHelp() []key.Binding {
	return []key.Binding{k.ParamUp, k.ParamDown, k.OrbitLeft, k.ZoomIn, k.PanLeft, k.ResetCamera, k.NextTab, k.Help}
}

// shortcut maps typed characters straight to buffer actions. Letters
// reach the functions and constants that have no single-character symbol.
type shortcut struct {
	action      calc.Action
	complexOnly bool
}

var shortcuts = map[string]shortcut{
	"+": {action: calc.Operator("+")},
	"-": {action: calc.Operator("-")},
	"*": {action: calc.Operator("*")},
	"/": {action: calc.Operator("/")},
	"^": {action: calc.Operator("^")},
	"(": {action: calc.Operator("(")},
	")": {action: calc.Operator(")")},
	".": {action: calc.Action{Kind: calc.ActDecimalPoint}},

	"s": {action: calc.Function("sin")},
	"c": {action: calc.Function("cos")},
	"t": {action: calc.Function("tan")},
	"l": {action: calc.Function("log")},
	"n": {action: calc.Function("ln")},
	"r": {action: calc.Function("sqrt")},
	"p": {action: calc.Constant("π", "pi")},
	"e": {action: calc.Constant("e", "e")},

	"i": {action: calc.Action{Kind: calc.ActComplexUnit}, complexOnly: true},
	"a": {action: calc.Function("abs"), complexOnly: true},
	"g": {action: calc.Function("arg"), complexOnly: true},
	"j": {action: calc.Function("conj"), complexOnly: true},
	"x": {action: calc.Function("exp"), complexOnly: true},
}

// typedAction resolves a typed key to a buffer action.
func typedAction(s string, complexMode bool) (calc.Action, bool) {
	if len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
		return calc.Digit(s), true
	}
	sc, ok := shortcuts[s]
	if !ok || (sc.complexOnly && !complexMode) {
		return calc.Action{}, false
	}
	return sc.action, true
}

type helpSection struct {
	title    string
	bindings []key.Binding
}

// sections groups bindings for the help overlay.
func (k keyMap) sections() []helpSection {
	return []helpSection{
		{title: "General", bindings: []key.Binding{k.NextTab, k.PrevTab, k.Standard, k.Complex, k.Graph, k.CycleTheme, k.Help, k.Quit}},
		{title: "Calculator", bindings: []key.Binding{k.Evaluate, k.Backspace, k.Clear, k.Up, k.Down, k.Left, k.Right, k.Press, k.ToggleAdvanced}},
		{title: "Grapher", bindings: []key.Binding{k.ParamUp, k.ParamDown, k.OrbitLeft, k.ZoomIn, k.PanLeft, k.ResetCamera, k.Pause}},
	}
}
