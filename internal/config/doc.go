// Package config loads zcalc's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/zcalc/config.toml (default)
//  3. If the config file doesn't exist, fall back to Default()
//  4. If the file exists but fields are missing or invalid, use defaults
//
// # Default Values
//
//   - Compact keypad below 80 columns
//   - No log file (logs are discarded while the TUI owns the terminal)
//   - Grapher equation "a^z - z" with a = 2
//   - Grid [-10, 10] in steps of 0.2, heights clamped to 5
//   - Axis length 5, resample debounce 250ms
//
// # TOML Format
//
//	compact_width = 80
//	log_file = "~/.local/state/zcalc/zcalc.log"
//
//	[graph]
//	equation = "a^z - z"
//	parameter = 2.0
//	grid_min = -10.0
//	grid_max = 10.0
//	grid_step = 0.2
//	max_height = 5.0
//	axis_size = 5.0
//	resample_debounce_ms = 250
//
// Every field is optional. Grid bounds are validated together: a grid whose
// step is not positive, whose max does not exceed its min, or that would
// hold more than 1001 samples per axis is replaced by the default grid as a
// whole. The parameter is clamped to [0.1, 5] and
// snapped to 0.1.
//
// # Path Expansion
//
// The package handles several path formats:
//
//   - Absolute paths: Used as-is ("/etc/zcalc.toml")
//   - Tilde paths: Expanded to home directory ("~/.config/zcalc")
//   - Relative paths: Converted to absolute based on current directory
//
// log_file gets the same treatment.
//
// # Error Handling
//
// A missing file is not an error. A file that exists but cannot be read or
// parsed is reported with context ("open config", "read config", "parse
// config") so the CLI can print a useful message and exit.
package config
