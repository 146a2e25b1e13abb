package layout

import "fmt"

// DefaultCompactWidth is the terminal width, in columns, below which the
// compact keypads are used.
const DefaultCompactWidth = 80

// Tab is one of the three mutually exclusive views.
type Tab int

const (
	TabStandard Tab = iota
	TabComplex
	TabGraph
	tabCount
)

// Tabs lists every tab in display order.
var Tabs = []Tab{TabStandard, TabComplex, TabGraph}

func (t Tab) String() string {
	switch t {
	case TabStandard:
		return "Standard"
	case TabComplex:
		return "Complex"
	case TabGraph:
		return "Graph"
	}
	return fmt.Sprintf("Tab(%d)", int(t))
}

// Next returns the tab to the right, wrapping around.
func (t Tab) Next() Tab { return (t + 1) % tabCount }

// Prev returns the tab to the left, wrapping around.
func (t Tab) Prev() Tab { return (t + tabCount - 1) % tabCount }

// Layout identifies what the body of the screen shows.
type Layout int

const (
	CompactStandard Layout = iota
	ExpandedStandard
	CompactComplex
	ExpandedComplex
	Grapher
)

func (l Layout) String() string {
	switch l {
	case CompactStandard:
		return "compact-standard"
	case ExpandedStandard:
		return "expanded-standard"
	case CompactComplex:
		return "compact-complex"
	case ExpandedComplex:
		return "expanded-complex"
	case Grapher:
		return "grapher"
	}
	return fmt.Sprintf("Layout(%d)", int(l))
}

// Compact reports whether l is one of the compact keypads.
func (l Layout) Compact() bool { return l == CompactStandard || l == CompactComplex }

// Selection is the outcome of Select.
type Selection struct {
	Layout Layout
	// Advanced is true when the advanced-function panel is visible. Only
	// compact keypads gate it; expanded keypads always show their functions.
	Advanced bool
}

// Select maps the view flags to a layout. It is a pure function.
func Select(tab Tab, compact, showAdvanced bool) Selection {
	switch tab {
	case TabGraph:
		return Selection{Layout: Grapher}
	case TabComplex:
		if compact {
			return Selection{Layout: CompactComplex, Advanced: showAdvanced}
		}
		return Selection{Layout: ExpandedComplex}
	default:
		if compact {
			return Selection{Layout: CompactStandard, Advanced: showAdvanced}
		}
		return Selection{Layout: ExpandedStandard}
	}
}

// IsCompact reports whether width falls below breakpoint. A non-positive
// breakpoint uses DefaultCompactWidth.
func IsCompact(width, breakpoint int) bool {
	if breakpoint <= 0 {
		breakpoint = DefaultCompactWidth
	}
	return width < breakpoint
}
