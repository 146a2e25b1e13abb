package calc

import (
	"strings"
	"unicode/utf8"

	"github.com/five82/zcalc/internal/evaluator"
)

// ErrorText is shown in place of a result when evaluation fails.
const ErrorText = "Error"

// Evaluator turns an expression into a value.
type Evaluator interface {
	Evaluate(text string) (evaluator.Value, error)
}

// State is the expression buffer behind the calculator keypad. Display is
// what the user sees; Expression is the text handed to the evaluator.
type State struct {
	Display    string
	Expression string
	IsResult   bool
	IsComplex  bool
}

// New returns the cleared buffer.
func New() State {
	return State{Display: "0"}
}

// EnterDigit starts fresh input after a result or over a lone zero, and
// appends otherwise.
func (s State) EnterDigit(d string) State {
	if s.IsResult {
		s.Display, s.Expression, s.IsResult = d, d, false
		return s
	}
	if s.Display == "0" {
		s.Display, s.Expression = d, d
		return s
	}
	s.Display += d
	s.Expression += d
	return s
}

// EnterOperator shows only the operator but keeps building Expression, so an
// operator after a result chains onto it.
func (s State) EnterOperator(op string) State {
	s.IsResult = false
	s.Display = op
	s.Expression += op
	return s
}

// EnterFunction opens a call. The closing parenthesis comes from a later
// EnterOperator(")").
func (s State) EnterFunction(name string) State {
	s.IsResult = false
	s.Display = name + "("
	s.Expression += name + "("
	return s
}

// EnterConstant shows symbol (π) while the evaluator receives canonical (pi).
func (s State) EnterConstant(symbol, canonical string) State {
	if s.IsResult {
		s.Display, s.Expression, s.IsResult = canonical, canonical, false
		return s
	}
	s.Display += symbol
	s.Expression += canonical
	return s
}

// EnterComplexUnit appends the imaginary unit unconditionally.
func (s State) EnterComplexUnit() State {
	s.Display += "i"
	s.Expression += "i"
	s.IsResult = false
	return s
}

// EnterDecimalPoint never lets Display hold two points.
func (s State) EnterDecimalPoint() State {
	if s.IsResult {
		s.Display, s.Expression, s.IsResult = "0.", "0.", false
		return s
	}
	if strings.Contains(s.Display, ".") {
		return s
	}
	s.Display += "."
	s.Expression += "."
	return s
}

// Backspace is a no-op on a lone zero or a result.
func (s State) Backspace() State {
	if s.Display == "0" || s.IsResult {
		return s
	}
	if utf8.RuneCountInString(s.Display) == 1 {
		s.Display = "0"
		s.Expression = dropLast(s.Expression)
		if s.Expression == "" {
			s.Expression = "0"
		}
		return s
	}
	s.Display = dropLast(s.Display)
	s.Expression = dropLast(s.Expression)
	return s
}

func dropLast(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}

// Clear resets to the initial buffer.
func (s State) Clear() State {
	return New()
}

// Evaluate hands Expression to ev. On success Display shows the formatted
// result and Expression its canonical text; on failure Display shows
// ErrorText and Expression is emptied so the next key starts clean.
func (s State) Evaluate(ev Evaluator) State {
	if strings.TrimSpace(s.Expression) == "" {
		return s
	}
	v, err := ev.Evaluate(s.Expression)
	if err != nil {
		s.Display = ErrorText
		s.Expression = ""
		s.IsResult = true
		return s
	}
	s.Display = FormatResult(v)
	s.Expression = v.String()
	s.IsComplex = v.IsComplex()
	s.IsResult = true
	return s
}

// FormatResult renders v for the display. Complex values always show both
// parts with up to four fractional digits.
func FormatResult(v evaluator.Value) string {
	if !v.IsComplex() {
		return v.String()
	}
	re, im := v.Re(), v.Im()
	sign := "+"
	if im < 0 {
		sign = "-"
		im = -im
	}
	return evaluator.FormatFixed(re, 4) + " " + sign + " " + evaluator.FormatFixed(im, 4) + "i"
}
