package layout

// Controller tracks the active tab, the viewport class and the advanced
// panel toggle. It never touches the calculator buffer, so input survives
// tab switches.
type Controller struct {
	tab          Tab
	compact      bool
	showAdvanced bool
	breakpoint   int
}

// NewController starts on the standard tab.
func NewController(breakpoint int) Controller {
	if breakpoint <= 0 {
		breakpoint = DefaultCompactWidth
	}
	return Controller{tab: TabStandard, breakpoint: breakpoint}
}

func (c Controller) Tab() Tab { return c.tab }

func (c Controller) Compact() bool { return c.compact }

func (c Controller) ShowAdvanced() bool { return c.showAdvanced }

func (c Controller) Breakpoint() int { return c.breakpoint }

// SetTab ignores out-of-range tabs.
func (c Controller) SetTab(t Tab) Controller {
	if t >= 0 && t < tabCount {
		c.tab = t
	}
	return c
}

func (c Controller) NextTab() Controller { return c.SetTab(c.tab.Next()) }

func (c Controller) PrevTab() Controller { return c.SetTab(c.tab.Prev()) }

// Resize reclassifies the viewport on every call.
func (c Controller) Resize(width int) Controller {
	c.compact = IsCompact(width, c.breakpoint)
	return c
}

// ToggleAdvanced flips the panel independently of tab and viewport.
func (c Controller) ToggleAdvanced() Controller {
	c.showAdvanced = !c.showAdvanced
	return c
}

// Selection returns the current layout.
func (c Controller) Selection() Selection {
	return Select(c.tab, c.compact, c.showAdvanced)
}

// IsComplexMode reports whether the complex keypad is active.
func (c Controller) IsComplexMode() bool { return c.tab == TabComplex }
