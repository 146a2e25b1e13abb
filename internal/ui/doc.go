// Package ui provides the terminal user interface for zcalc.
//
// # Architecture Overview
//
// The UI is a single Bubble Tea model. Every state change happens inside
// Model.Update: key presses, window resizes, the resample debounce tick and
// the idle spin tick. Rendering is done with lipgloss; the equation field,
// parameter slider and footer help come from bubbles.
//
// # Package Structure
//
//   - app.go: Model, Options, Update/View dispatch and Run
//   - calculator.go: Standard and Complex tabs (display panel, keypad, cursor)
//   - graph.go: Graph tab (equation field, slider, camera keys, braille plot)
//   - header.go: tab strip and footer help
//   - help.go: help overlay
//   - keys.go: key bindings and typed-character shortcuts
//   - theme.go: Nightfox, Kanagawa and Slate themes
//
// # Tabs
//
// Three tabs share one calculator buffer:
//
//   - Standard: arithmetic and the scientific functions
//   - Complex: adds i, |z|, arg, z*, Re, Im, e^z and e
//   - Graph: plots |f(z)| over the complex plane for an equation in z and a
//
// Switching tabs never touches the buffer. The keypad layout follows the
// terminal width: below config.compact_width columns the compact keypad is
// shown with an fx key that reveals the advanced functions.
//
// # Resampling
//
// Editing the equation or moving the parameter starts a debounce window
// (graph.resample_debounce_ms). Each window carries a sequence number and
// only the newest one samples when its tick arrives. Sampling runs
// synchronously inside Update; the sampler's cache makes revisiting an
// (equation, a) pair cheap.
//
// # Key Bindings
//
//   - tab/shift+tab, F1-F3: switch tabs
//   - digits . + - * / ^ ( ): type into the buffer
//   - enter or =: evaluate; backspace: erase; esc: clear
//   - arrows + space: move the keypad cursor and press
//   - ctrl+a: toggle advanced functions
//   - Graph: up/down a ±0.1, shift+arrows orbit, pgup/pgdown zoom,
//     ctrl+arrows pan, ctrl+r reset, ctrl+p pause the spin
//   - T: cycle theme; ?: help; ctrl+c: quit
//
// The theme and advanced panel state are saved to prefs on change.
package ui
