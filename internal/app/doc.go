// Package app is the composition root for zcalc.
//
// # Overview
//
// Run wires configuration, preferences, logging and the Bubble Tea UI into
// the interactive calculator. StartWatcher drives the desktop grapher
// behind `zcalc graph --watch`, resampling an equation file into a
// state.Store whenever it changes.
//
// # Components
//
//   - app.go: Run and SetupLogging
//   - watcher.go: fsnotify-driven resampling and ReadEquation
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()    Read ~/.config/zcalc/config.toml
//	       ├─────> SetupLogging()   log file or io.Discard
//	       ├─────> prefs.Load()     Theme and advanced panel
//	       └─────> ui.Run()         Start TUI (blocks)
//
//	Watcher goroutine:
//	┌─────────────────────────────────────────┐
//	│ StartWatcher()                          │
//	│  ├─> ReadEquation()                     │
//	│  ├─> sampler.SampleGraph()              │
//	│  └─> store.Update()                     │
//	│      └─> window reads store.Snapshot()  │
//	└─────────────────────────────────────────┘
//
// # Watch Behavior
//
// The watcher observes the file's directory rather than the file itself so
// editors that save by renaming a temp file over the original are still
// seen. Bursts of events are coalesced over WatchOptions.Settle before the
// file is read again. The first line that is neither blank nor a # comment
// is the equation; a standalone a is replaced by the parameter.
//
// # Error Handling
//
// Fatal (returned): an unreadable or invalid config, a log file that cannot
// be opened, an equation path that does not exist or is a directory.
//
// Recoverable (logged, watching continues): unreadable or empty equation
// files and equations that fail to parse. These are recorded in the store as
// failures and the previous point cloud stays on screen.
package app
