// Package state shares the current point cloud between the resampling
// goroutine and the desktop viewer.
//
// # Overview
//
// zcalc graph runs two loops: a file watcher that resamples the equation
// whenever its file changes, and the ebiten draw loop. The Store sits between
// them:
//
//	Producer (watcher):            Consumer (viewer):
//	┌────────────────┐            ┌─────────────────┐
//	│ read equation  │            │ store.Revision()│
//	│ sampler.Sample │            │      ↓ changed? │
//	│      ↓         │            │ store.Snapshot()│
//	│ store.Update() │───────────→│      ↓          │
//	│      ↓         │  (mutex)   │ draw points     │
//	│  wait for edit │            │                 │
//	└────────────────┘            └─────────────────┘
//
// # Update Semantics
//
//	// Success: replace the point set, bump Version
//	store.Update(res, a, nil)
//
//	// Failure: keep the previous points, record the error
//	store.Update(sampler.Result{}, a, err)
//
// A result whose equation failed to compile (res.Err != nil) is treated as a
// failure, so a half-typed edit never blanks the plot.
//
// # Versioning
//
// Version increases by one on every successful update; Revision increases on
// every update, including failures. The viewer polls Revision each frame,
// takes a Snapshot only when it has moved, and swaps its point cloud only
// when Version has moved too.
//
// # Defensive Copying
//
// Update and Snapshot both clone the point slice; errors are wrapped so the
// caller never holds the stored instance.
//
// The zero Store is ready to use.
package state
