package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/zcalc/internal/sampler"
)

// Snapshot is the latest point set available to the viewer.
type Snapshot struct {
	Equation            string
	Parameter           float64
	Points              []sampler.Point
	Dropped             int
	HasGraph            bool
	Version             uint64 // incremented on every successful update
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
}

// IsFailing reports whether the last two resamples both failed.
func (s Snapshot) IsFailing() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates the resampling goroutine and the viewer.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
	revision uint64
}

// Update replaces the stored point set with res. When err is non-nil, or
// the equation failed to compile, the previous points are kept and the
// error recorded.
func (s *Store) Update(res sampler.Result, parameter float64, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.revision++
	if err == nil {
		err = res.Err
	}
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = time.Now()
		s.snapshot.ConsecutiveFailures++
		return
	}

	s.snapshot.Equation = res.Equation
	s.snapshot.Parameter = parameter
	s.snapshot.Points = clonePoints(res.Points)
	s.snapshot.Dropped = res.Dropped
	s.snapshot.HasGraph = true
	s.snapshot.Version++
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

// Version returns the current version without copying points.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Version
}

// Revision counts every Update call, failed or not.
func (s *Store) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Points = clonePoints(s.snapshot.Points)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func clonePoints(points []sampler.Point) []sampler.Point {
	if len(points) == 0 {
		return nil
	}
	dup := make([]sampler.Point, len(points))
	copy(dup, points)
	return dup
}
