// Package calc holds the calculator's expression buffer.
//
// State pairs a display string with the expression that is evaluated. Every
// operation is a value-receiver method returning the next State, so the UI
// owns exactly one State and replaces it on each key press.
//
// After Evaluate, Expression holds the canonical text of the result, which
// lets the next operator chain onto it. A failed evaluation shows "Error"
// and empties Expression; the next key starts clean input.
package calc
