package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/zcalc/internal/calc"
	"github.com/five82/zcalc/internal/layout"
)

// Keypad cell widths in columns.
const (
	compactCellWidth  = 6
	expandedCellWidth = 9
)

// handleCalculatorKey processes keyboard input on the Standard and Complex tabs.
func (m Model) handleCalculatorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Evaluate):
		return m.apply(calc.Action{Kind: calc.ActEvaluate}), nil
	case key.Matches(msg, m.keys.Backspace):
		return m.apply(calc.Action{Kind: calc.ActBackspace}), nil
	case key.Matches(msg, m.keys.Clear):
		return m.apply(calc.Action{Kind: calc.ActClear}), nil
	case key.Matches(msg, m.keys.ToggleAdvanced):
		return m.apply(calc.Action{Kind: calc.ActToggleAdvanced}), nil
	case key.Matches(msg, m.keys.Press):
		if b, _, _, ok := m.keypad().At(m.cursorRow, m.cursorCol); ok {
			return m.apply(b.Action), nil
		}
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1, 0)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1, 0)
		return m, nil
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(0, -1)
		return m, nil
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(0, 1)
		return m, nil
	}

	if a, ok := typedAction(msg.String(), m.ctrl.IsComplexMode()); ok {
		return m.apply(a), nil
	}
	return m, nil
}

// apply runs one keypad action. The advanced toggle belongs to the layout
// controller; everything else goes to the buffer.
func (m Model) apply(a calc.Action) Model {
	if a.Kind == calc.ActToggleAdvanced {
		m.ctrl = m.ctrl.ToggleAdvanced()
		m.clampCursor()
		m.savePrefs()
		return m
	}
	m.calc = m.calc.Apply(a, m.engine)
	return m
}

func (m Model) keypad() layout.Keypad {
	return layout.KeypadFor(m.ctrl.Selection())
}

func (m *Model) moveCursor(dr, dc int) {
	k := m.keypad()
	if len(k) == 0 {
		return
	}
	_, m.cursorRow, m.cursorCol, _ = k.At(m.cursorRow+dr, m.cursorCol+dc)
}

// clampCursor keeps the cursor on a real button after the keypad changes.
func (m *Model) clampCursor() {
	_, m.cursorRow, m.cursorCol, _ = m.keypad().At(m.cursorRow, m.cursorCol)
}

// renderCalculator renders the display panel above the keypad, centred.
func (m Model) renderCalculator() string {
	styles := m.theme.Styles()
	sel := m.ctrl.Selection()

	cell := expandedCellWidth
	if sel.Layout.Compact() {
		cell = compactCellWidth
	}
	inner := 4*cell + 3

	exprLine := styles.FaintText.Width(inner).Align(lipgloss.Right).Render(truncateLeft(m.calc.Expression, inner))

	displayStyle := styles.Display
	if m.calc.Display == calc.ErrorText {
		displayStyle = styles.DangerText
	}
	displayLine := displayStyle.Width(inner).Align(lipgloss.Right).Render(truncateLeft(m.calc.Display, inner))

	panel := styles.Panel.
		BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
		Render(lipgloss.JoinVertical(lipgloss.Right, exprLine, displayLine))

	mode := "REAL"
	if m.ctrl.IsComplexMode() {
		mode = "COMPLEX"
	}
	if m.calc.IsComplex && m.calc.IsResult {
		mode += " · complex result"
	}
	modeLine := styles.MutedText.Render(mode)

	body := lipgloss.JoinVertical(lipgloss.Left, modeLine, panel, m.renderKeypad(cell))
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body)
}

// renderKeypad draws the button grid with the cursor highlighted.
func (m Model) renderKeypad(cell int) string {
	styles := m.theme.Styles()
	k := m.keypad()

	rows := make([]string, 0, len(k))
	for r, row := range k {
		cells := make([]string, 0, len(row))
		for c, b := range row {
			w := cell
			if b.Wide {
				w = 2*cell + 1
			}
			style := styles.ButtonStyle(buttonClass(b.Action.Kind))
			if r == m.cursorRow && c == m.cursorCol {
				style = styles.Selected
			}
			cells = append(cells, style.Width(w).Align(lipgloss.Center).Render(b.Label))
		}
		rows = append(rows, strings.Join(cells, " "))
	}
	return strings.Join(rows, "\n")
}
