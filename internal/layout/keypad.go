package layout

import "github.com/five82/zcalc/internal/calc"

// Button is one keypad key.
type Button struct {
	Label  string
	Action calc.Action
	// Wide buttons span two columns in the expanded layouts.
	Wide bool
}

// Keypad is a grid of buttons, top row first. Rows may differ in length.
type Keypad [][]Button

// Find returns the first button with label.
func (k Keypad) Find(label string) (Button, bool) {
	for _, row := range k {
		for _, b := range row {
			if b.Label == label {
				return b, true
			}
		}
	}
	return Button{}, false
}

// At clamps row and col into the grid and returns the button there along
// with the clamped position. An empty keypad returns ok=false.
func (k Keypad) At(row, col int) (b Button, r, c int, ok bool) {
	if len(k) == 0 {
		return Button{}, 0, 0, false
	}
	r = clamp(row, 0, len(k)-1)
	c = clamp(col, 0, len(k[r])-1)
	return k[r][c], r, c, true
}

// Labels flattens the keypad, mostly for tests and help text.
func (k Keypad) Labels() []string {
	var out []string
	for _, row := range k {
		for _, b := range row {
			out = append(out, b.Label)
		}
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func digit(d string) Button { return Button{Label: d, Action: calc.Digit(d)} }

func op(label, text string) Button { return Button{Label: label, Action: calc.Operator(text)} }

func fn(label, name string) Button { return Button{Label: label, Action: calc.Function(name)} }

func constant(symbol, canonical string) Button {
	return Button{Label: symbol, Action: calc.Constant(symbol, canonical)}
}

func simple(label string, kind calc.ActionKind) Button {
	return Button{Label: label, Action: calc.Action{Kind: kind}}
}

var (
	btnClear     = simple("C", calc.ActClear)
	btnEquals    = simple("=", calc.ActEvaluate)
	btnPoint     = simple(".", calc.ActDecimalPoint)
	btnBackspace = simple("⌫", calc.ActBackspace)
	btnUnit      = simple("i", calc.ActComplexUnit)
	btnToggle    = simple("fx", calc.ActToggleAdvanced)
)

func standardFunctions() [][]Button {
	return [][]Button{
		{fn("sin", "sin"), fn("cos", "cos"), fn("tan", "tan"), fn("log", "log")},
		{fn("ln", "ln"), fn("√", "sqrt"), op("x^y", "^"), constant("π", "pi")},
	}
}

func complexFunctions() []Button {
	return []Button{fn("|z|", "abs"), fn("arg", "arg"), fn("z*", "conj"), fn("e^z", "exp")}
}

func arithmetic(last []Button) [][]Button {
	return [][]Button{
		{btnClear, op("(", "("), op(")", ")"), op("÷", "/")},
		{digit("7"), digit("8"), digit("9"), op("×", "*")},
		{digit("4"), digit("5"), digit("6"), op("−", "-")},
		{digit("1"), digit("2"), digit("3"), op("+", "+")},
		last,
	}
}

// KeypadFor returns the buttons for sel. The grapher has no keypad.
func KeypadFor(sel Selection) Keypad {
	var rows [][]Button
	switch sel.Layout {
	case CompactStandard, CompactComplex:
		complexMode := sel.Layout == CompactComplex
		if sel.Advanced {
			rows = append(rows, standardFunctions()...)
			if complexMode {
				rows = append(rows, complexFunctions())
			}
		}
		rows = append(rows, []Button{btnToggle})
		tail := btnBackspace
		if complexMode {
			tail = btnUnit
		}
		rows = append(rows, arithmetic([]Button{digit("0"), btnPoint, tail, btnEquals})...)
	case ExpandedStandard:
		rows = append(rows, standardFunctions()...)
		zero := digit("0")
		zero.Wide = true
		rows = append(rows, arithmetic([]Button{zero, btnPoint, btnEquals})...)
	case ExpandedComplex:
		rows = append(rows,
			[]Button{btnUnit, fn("|z|", "abs"), fn("arg", "arg"), fn("z*", "conj")},
			[]Button{fn("Re", "re"), fn("Im", "im"), fn("e^z", "exp"), constant("e", "e")},
		)
		rows = append(rows, arithmetic([]Button{digit("0"), btnPoint, btnUnit, btnEquals})...)
	default:
		return nil
	}
	return Keypad(rows)
}
