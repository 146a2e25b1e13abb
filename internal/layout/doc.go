// Package layout decides which calculator view is on screen.
//
// Select is a pure function of the active tab, the viewport class and the
// advanced-panel toggle. Controller carries those three flags between
// events, and KeypadFor returns the buttons for the selected layout, each
// bound to a calc.Action.
package layout
