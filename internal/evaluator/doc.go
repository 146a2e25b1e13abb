// Package evaluator parses and evaluates calculator expressions over real and
// complex numbers.
//
// # Grammar
//
//	sum     = product { ("+" | "-") product }
//	product = unary { ("*" | "/") unary | implicit }
//	unary   = ("+" | "-") unary | power
//	power   = primary [ "^" unary ]
//	primary = number | ident [ "(" args ")" ] | "(" sum ")"
//
// Implicit multiplication applies when a factor is directly followed by an
// identifier or "(", so 4i, 2pi and 3(1+i) all parse. Exponentiation is
// right-associative and binds tighter than unary minus.
//
// # Values
//
// Every result is a Value: either real or complex. Real inputs stay real
// until an operation leaves the real domain (sqrt(-4), ln(-1), (-8)^(1/3)),
// at which point the result is complex. Any operation with a complex operand
// yields a complex result, even if its imaginary part is zero.
//
// Value.String returns canonical text that evaluates back to the same value,
// for example "3 - 4i", "-i" or "Infinity".
//
// # Errors
//
// Failures wrap one of the package sentinels (ErrParse, ErrEval,
// ErrUnknownSymbol, ErrUnknownFunction, ErrArity, ErrEmpty). Real division by
// zero is not an error and yields Infinity or NaN. Complex division by zero is
// an error.
package evaluator
