package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const helpMaxWidth = 50

var helpHints = []string{
	"digits . + - * / ^ ( ) type directly",
	"s sin · c cos · t tan · l log · n ln · r √ · p π · e e",
	"complex: i · a |z| · g arg · j z* · x e^z",
}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()
	sections := m.keys.sections()

	keyWidth := 0
	for _, section := range sections {
		for _, binding := range section.bindings {
			keyWidth = max(keyWidth, lipgloss.Width(binding.Help().Key))
		}
	}
	keyStyle := styles.WarningText.Width(keyWidth + 2)

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n")

	for _, section := range sections {
		b.WriteString("\n")
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		for _, binding := range section.bindings {
			h := binding.Help()
			if h.Key == "" {
				continue
			}
			b.WriteString("\n")
			b.WriteString(keyStyle.Render(h.Key))
			b.WriteString(styles.Text.Render(h.Desc))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Join(helpHints, "\n")))

	width := helpMaxWidth
	if m.width > 0 {
		width = clampInt(m.width-4, 20, helpMaxWidth)
	}
	overlay := styles.Panel.
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(width)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		overlay.Render(b.String()),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
