package evaluator

import (
	"fmt"
	"math"
	"math/cmplx"
	"strconv"
)

type builtin struct {
	minArgs, maxArgs int
	call             func(args []Value) (Value, error)
}

func (b builtin) arity() string {
	if b.minArgs == b.maxArgs {
		if b.minArgs == 1 {
			return "1 argument"
		}
		return strconv.Itoa(b.minArgs) + " arguments"
	}
	return fmt.Sprintf("%d to %d arguments", b.minArgs, b.maxArgs)
}

var constants = map[string]Value{
	"pi":       Real(math.Pi),
	"π":        Real(math.Pi),
	"e":        Real(math.E),
	"i":        Complex(0, 1),
	"Infinity": Real(math.Inf(1)),
	"NaN":      Real(math.NaN()),
}

// Builtins that keep reals real and promote to complex only when the real
// domain is left (sqrt of a negative, log of a negative).
var builtins = map[string]builtin{
	"sin":  unary(math.Sin, cmplx.Sin),
	"cos":  unary(math.Cos, cmplx.Cos),
	"tan":  unary(math.Tan, cmplx.Tan),
	"exp":  unary(math.Exp, cmplx.Exp),
	"ln":   {1, 1, func(a []Value) (Value, error) { return logOf(a[0]), nil }},
	"log":  {1, 2, logCall},
	"sqrt": {1, 1, sqrtCall},
	"abs":  {1, 1, func(a []Value) (Value, error) { return Real(a[0].Modulus()), nil }},
	"arg":  {1, 1, func(a []Value) (Value, error) { return Real(cmplx.Phase(a[0].Complex128())), nil }},
	"conj": {1, 1, conjCall},
	"re":   {1, 1, func(a []Value) (Value, error) { return Real(a[0].Re()), nil }},
	"im":   {1, 1, func(a []Value) (Value, error) { return Real(a[0].Im()), nil }},
}

func unary(realFn func(float64) float64, complexFn func(complex128) complex128) builtin {
	return builtin{minArgs: 1, maxArgs: 1, call: func(a []Value) (Value, error) {
		if a[0].IsComplex() {
			return ComplexC(complexFn(a[0].c)), nil
		}
		return Real(realFn(a[0].re)), nil
	}}
}

func logOf(v Value) Value {
	if !v.IsComplex() && v.re >= 0 {
		return Real(math.Log(v.re))
	}
	return ComplexC(cmplx.Log(v.Complex128()))
}

func logCall(a []Value) (Value, error) {
	x := logOf(a[0])
	if len(a) == 1 {
		return x, nil
	}
	base := logOf(a[1])
	if !x.IsComplex() && !base.IsComplex() {
		return Real(x.re / base.re), nil
	}
	return binaryComplex('/', x.Complex128(), base.Complex128())
}

func sqrtCall(a []Value) (Value, error) {
	v := a[0]
	if v.IsComplex() {
		return ComplexC(cmplx.Sqrt(v.c)), nil
	}
	if v.re < 0 {
		return Complex(0, math.Sqrt(-v.re)), nil
	}
	return Real(math.Sqrt(v.re)), nil
}

func conjCall(a []Value) (Value, error) {
	if a[0].IsComplex() {
		return ComplexC(cmplx.Conj(a[0].c)), nil
	}
	return a[0], nil
}
