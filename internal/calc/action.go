package calc

import "fmt"

// ActionKind selects which buffer operation an Action performs.
type ActionKind int

const (
	ActDigit ActionKind = iota
	ActOperator
	ActFunction
	ActConstant
	ActComplexUnit
	ActDecimalPoint
	ActBackspace
	ActClear
	ActEvaluate
	// ActToggleAdvanced is handled by the view layer, not the buffer.
	ActToggleAdvanced
)

var actionNames = map[ActionKind]string{
	ActDigit:          "digit",
	ActOperator:       "operator",
	ActFunction:       "function",
	ActConstant:       "constant",
	ActComplexUnit:    "complex-unit",
	ActDecimalPoint:   "decimal-point",
	ActBackspace:      "backspace",
	ActClear:          "clear",
	ActEvaluate:       "evaluate",
	ActToggleAdvanced: "toggle-advanced",
}

func (k ActionKind) String() string {
	if name, ok := actionNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ActionKind(%d)", int(k))
}

// Action is one keypad press. Text carries the digit, operator, function
// name or constant symbol; Canonical carries a constant's evaluator token.
type Action struct {
	Kind      ActionKind
	Text      string
	Canonical string
}

func Digit(d string) Action { return Action{Kind: ActDigit, Text: d} }

func Operator(op string) Action { return Action{Kind: ActOperator, Text: op} }

func Function(name string) Action { return Action{Kind: ActFunction, Text: name} }

func Constant(symbol, canonical string) Action {
	return Action{Kind: ActConstant, Text: symbol, Canonical: canonical}
}

// Apply dispatches a to the matching operation. Kinds the buffer does not
// own leave s unchanged.
func (s State) Apply(a Action, ev Evaluator) State {
	switch a.Kind {
	case ActDigit:
		return s.EnterDigit(a.Text)
	case ActOperator:
		return s.EnterOperator(a.Text)
	case ActFunction:
		return s.EnterFunction(a.Text)
	case ActConstant:
		return s.EnterConstant(a.Text, a.Canonical)
	case ActComplexUnit:
		return s.EnterComplexUnit()
	case ActDecimalPoint:
		return s.EnterDecimalPoint()
	case ActBackspace:
		return s.Backspace()
	case ActClear:
		return s.Clear()
	case ActEvaluate:
		return s.Evaluate(ev)
	default:
		return s
	}
}
