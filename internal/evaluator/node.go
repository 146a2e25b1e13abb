package evaluator

import (
	"fmt"
	"math"
	"math/cmplx"
)

type node interface {
	eval(scope Scope) (Value, error)
}

type nodeNumber struct{ v float64 }

func (n nodeNumber) eval(Scope) (Value, error) { return Real(n.v), nil }

type nodeIdent struct{ name string }

func (n nodeIdent) eval(scope Scope) (Value, error) {
	if v, ok := scope[n.name]; ok {
		return v, nil
	}
	if v, ok := constants[n.name]; ok {
		return v, nil
	}
	return Value{}, fmt.Errorf("%w: %q", ErrUnknownSymbol, n.name)
}

type nodeUnary struct {
	op byte
	x  node
}

func (n nodeUnary) eval(scope Scope) (Value, error) {
	v, err := n.x.eval(scope)
	if err != nil {
		return Value{}, err
	}
	if n.op == '+' {
		return v, nil
	}
	if v.IsComplex() {
		return ComplexC(-v.c), nil
	}
	return Real(-v.re), nil
}

type nodeBinary struct {
	op          byte
	left, right node
}

func (n nodeBinary) eval(scope Scope) (Value, error) {
	a, err := n.left.eval(scope)
	if err != nil {
		return Value{}, err
	}
	b, err := n.right.eval(scope)
	if err != nil {
		return Value{}, err
	}
	if a.IsComplex() || b.IsComplex() {
		return binaryComplex(n.op, a.Complex128(), b.Complex128())
	}
	return binaryReal(n.op, a.re, b.re)
}

func binaryReal(op byte, x, y float64) (Value, error) {
	switch op {
	case '+':
		return Real(x + y), nil
	case '-':
		return Real(x - y), nil
	case '*':
		return Real(x * y), nil
	case '/':
		return Real(x / y), nil
	case '^':
		if x < 0 && y != math.Trunc(y) {
			return ComplexC(cmplx.Pow(complex(x, 0), complex(y, 0))), nil
		}
		return Real(math.Pow(x, y)), nil
	}
	return Value{}, fmt.Errorf("%w: operator %q", ErrEval, op)
}

func binaryComplex(op byte, x, y complex128) (Value, error) {
	switch op {
	case '+':
		return ComplexC(x + y), nil
	case '-':
		return ComplexC(x - y), nil
	case '*':
		return ComplexC(x * y), nil
	case '/':
		if y == 0 {
			return Value{}, fmt.Errorf("%w: division by zero", ErrEval)
		}
		return ComplexC(x / y), nil
	case '^':
		if n, ok := smallInt(y); ok {
			return powInt(x, n)
		}
		return ComplexC(cmplx.Pow(x, y)), nil
	}
	return Value{}, fmt.Errorf("%w: operator %q", ErrEval, op)
}

const maxIntPow = 64

// smallInt reports whether y is a real integer small enough for exact
// repeated multiplication.
func smallInt(y complex128) (int, bool) {
	if imag(y) != 0 {
		return 0, false
	}
	r := real(y)
	if r != math.Trunc(r) || math.Abs(r) > maxIntPow {
		return 0, false
	}
	return int(r), true
}

// powInt keeps integer powers exact, so i^2 is -1 rather than -1 plus
// rounding noise in the imaginary part.
func powInt(x complex128, n int) (Value, error) {
	neg := n < 0
	if neg {
		n = -n
	}
	out := complex(1, 0)
	base := x
	for n > 0 {
		if n&1 == 1 {
			out *= base
		}
		base *= base
		n >>= 1
	}
	if neg {
		if out == 0 {
			return Value{}, fmt.Errorf("%w: division by zero", ErrEval)
		}
		out = 1 / out
	}
	return ComplexC(out), nil
}

type nodeCall struct {
	name string
	args []node
}

func (n nodeCall) eval(scope Scope) (Value, error) {
	fn, ok := builtins[n.name]
	if !ok {
		return Value{}, fmt.Errorf("%w: %s", ErrUnknownFunction, n.name)
	}
	if len(n.args) < fn.minArgs || len(n.args) > fn.maxArgs {
		return Value{}, fmt.Errorf("%w: %s takes %s, got %d", ErrArity, n.name, fn.arity(), len(n.args))
	}
	args := make([]Value, len(n.args))
	for i, a := range n.args {
		v, err := a.eval(scope)
		if err != nil {
			return Value{}, err
		}
		args[i] = v
	}
	return fn.call(args)
}
