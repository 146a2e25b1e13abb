package evaluator

import (
	"math"
	"math/cmplx"
	"strconv"
	"strings"
)

// Kind tags the variant held by a Value.
type Kind uint8

const (
	KindReal Kind = iota
	KindComplex
)

// Value is the result of an evaluation: either a real number or a complex
// number. A complex Value stays complex even when its imaginary part is zero.
type Value struct {
	kind Kind
	re   float64
	c    complex128
}

// Real returns a real Value.
func Real(f float64) Value { return Value{kind: KindReal, re: f} }

// Complex returns a complex Value from its parts.
func Complex(re, im float64) Value { return Value{kind: KindComplex, c: complex(re, im)} }

// ComplexC returns a complex Value.
func ComplexC(c complex128) Value { return Value{kind: KindComplex, c: c} }

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// IsComplex reports whether v is the complex variant.
func (v Value) IsComplex() bool { return v.kind == KindComplex }

// Re returns the real part.
func (v Value) Re() float64 {
	if v.kind == KindComplex {
		return real(v.c)
	}
	return v.re
}

// Im returns the imaginary part, zero for reals.
func (v Value) Im() float64 {
	if v.kind == KindComplex {
		return imag(v.c)
	}
	return 0
}

// Complex128 widens v to a complex128.
func (v Value) Complex128() complex128 {
	if v.kind == KindComplex {
		return v.c
	}
	return complex(v.re, 0)
}

// Modulus returns |v|.
func (v Value) Modulus() float64 {
	if v.kind == KindComplex {
		return cmplx.Abs(v.c)
	}
	return math.Abs(v.re)
}

// String returns the canonical text of v. The text evaluates back to the
// same value, which is what lets a calculator chain onto a previous result.
func (v Value) String() string {
	if v.kind == KindReal {
		return FormatNumber(v.re)
	}
	re, im := real(v.c), imag(v.c)
	if math.IsNaN(re) || math.IsNaN(im) {
		return "NaN"
	}
	switch {
	case im == 0:
		return FormatNumber(re)
	case re == 0:
		return formatImag(im)
	case im < 0:
		if im == -1 {
			return FormatNumber(re) + " - i"
		}
		return FormatNumber(re) + " - " + FormatNumber(-im) + "i"
	default:
		if im == 1 {
			return FormatNumber(re) + " + i"
		}
		return FormatNumber(re) + " + " + FormatNumber(im) + "i"
	}
}

func formatImag(im float64) string {
	switch im {
	case 1:
		return "i"
	case -1:
		return "-i"
	}
	return FormatNumber(im) + "i"
}

// FormatNumber renders f the way a JavaScript engine stringifies a number:
// shortest round-trip digits, plain notation between 1e-7 and 1e21, and
// Infinity/NaN spelled out.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mant, exp, _ := strings.Cut(s, "e")
		sign := exp[:1]
		digits := strings.TrimLeft(exp[1:], "0")
		if digits == "" {
			digits = "0"
		}
		return mant + "e" + sign + digits
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FormatFixed renders f with up to places fractional digits, dropping
// trailing zeros and a dangling decimal point.
func FormatFixed(f float64, places int) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return FormatNumber(f)
	}
	s := strconv.FormatFloat(f, 'f', places, 64)
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
