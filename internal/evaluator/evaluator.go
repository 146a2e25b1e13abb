package evaluator

import "errors"

var (
	ErrEmpty           = errors.New("empty expression")
	ErrParse           = errors.New("parse error")
	ErrEval            = errors.New("eval error")
	ErrUnknownSymbol   = errors.New("unknown symbol")
	ErrUnknownFunction = errors.New("unknown function")
	ErrArity           = errors.New("wrong number of arguments")
)

// Scope binds variable names for one evaluation. Bindings shadow the
// built-in constants.
type Scope map[string]Value

// Program is a parsed expression that can be evaluated repeatedly.
type Program struct {
	source string
	root   node
}

// Compile parses text once.
func Compile(text string) (*Program, error) {
	root, err := parse(text)
	if err != nil {
		return nil, err
	}
	return &Program{source: text, root: root}, nil
}

// Eval evaluates the program against scope, which may be nil.
func (p *Program) Eval(scope Scope) (Value, error) {
	return p.root.eval(scope)
}

// Source returns the text the program was compiled from.
func (p *Program) Source() string { return p.source }

// Evaluate parses and evaluates text in one step.
func Evaluate(text string, scope Scope) (Value, error) {
	p, err := Compile(text)
	if err != nil {
		return Value{}, err
	}
	return p.Eval(scope)
}

// Engine adapts Evaluate to single-argument callers.
type Engine struct{}

// Evaluate evaluates text with no bindings.
func (Engine) Evaluate(text string) (Value, error) {
	return Evaluate(text, nil)
}
