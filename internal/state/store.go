package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/padview/internal/spacex"
)

// Snapshot represents the launchpad collection as seen by the UI.
type Snapshot struct {
	Launchpads []spacex.Launchpad
	Loaded     bool // the startup fetch has finished, successfully or not
	LoadedAt   time.Time
	LastError  error
}

// Failed reports whether the startup fetch ended in an error.
func (s Snapshot) Failed() bool {
	return s.Loaded && s.LastError != nil
}

// Store holds the collection fetched at startup. It accepts exactly one
// Load; later calls are ignored so the collection never changes afterwards.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Load records the result of the startup fetch. On error the collection
// stays empty and the error is kept for logging and diagnostics. It reports
// whether this call was the one that populated the store.
func (s *Store) Load(pads []spacex.Launchpad, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot.Loaded {
		return false
	}

	s.snapshot.Loaded = true
	s.snapshot.LoadedAt = time.Now()
	if err != nil {
		s.snapshot.LastError = err
		return true
	}
	s.snapshot.Launchpads = cloneLaunchpads(pads)
	return true
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Launchpads = cloneLaunchpads(s.snapshot.Launchpads)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

// cloneLaunchpads copies the slice and the per-record slices so callers can
// never reach the stored records.
func cloneLaunchpads(pads []spacex.Launchpad) []spacex.Launchpad {
	if len(pads) == 0 {
		return nil
	}
	dup := make([]spacex.Launchpad, len(pads))
	copy(dup, pads)
	for i := range dup {
		if dup[i].Images != nil {
			images := *dup[i].Images
			images.Large = append([]string(nil), images.Large...)
			dup[i].Images = &images
		}
		if dup[i].Launches != nil {
			dup[i].Launches = append([]string(nil), dup[i].Launches...)
		}
	}
	return dup
}
