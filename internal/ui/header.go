package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/zcalc/internal/layout"
)

// renderHeader renders the logo, the tab strip and the layout indicator.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	parts := []string{styles.Logo.Render("zcalc")}
	for i, tab := range layout.Tabs {
		label := tabLabel(i, tab)
		if tab == m.ctrl.Tab() {
			parts = append(parts, styles.ActiveTab.Render(label))
		} else {
			parts = append(parts, styles.InactiveTab.Render(label))
		}
	}
	left := strings.Join(parts, "")

	right := styles.Header.Foreground(lipgloss.Color(m.theme.Faint)).
		Render(m.ctrl.Selection().Layout.String() + " · " + m.theme.Name + " ")

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		right = ""
		gap = max(m.width-lipgloss.Width(left), 0)
	}
	return left + styles.Header.Render(strings.Repeat(" ", gap)) + right
}

// renderFooter renders the short help for the active tab.
func (m Model) renderFooter() string {
	bindings := m.keys.calculatorHelp()
	if m.ctrl.Tab() == layout.TabGraph {
		bindings = m.keys.graphHelp()
	}
	styles := m.theme.Styles()
	h := m.help
	h.Styles.ShortKey = styles.AccentText
	h.Styles.ShortDesc = styles.MutedText
	h.Styles.ShortSeparator = styles.FaintText
	return styles.Footer.Width(m.width).Render(h.ShortHelpView(bindings))
}

func tabLabel(i int, tab layout.Tab) string {
	return "F" + string(rune('1'+i)) + " " + tab.String()
}
