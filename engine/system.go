package engine

import (
	"sort"
	"time"
)

// System is per-frame behaviour driven by the main loop
type System interface {
	Update(now time.Time, dt time.Duration)
	Priority() int // Lower values run first
}

// SystemSet holds systems in priority order
// Equal priorities keep registration order
type SystemSet struct {
	systems []System
}

// NewSystemSet creates an empty set
func NewSystemSet() *SystemSet {
	return &SystemSet{}
}

// Add registers a system and re-sorts by priority
func (s *SystemSet) Add(sys System) {
	s.systems = append(s.systems, sys)
	sort.SliceStable(s.systems, func(i, j int) bool {
		return s.systems[i].Priority() < s.systems[j].Priority()
	})
}

// Update runs every system once with the same frame time
func (s *SystemSet) Update(now time.Time, dt time.Duration) {
	for _, sys := range s.systems {
		sys.Update(now, dt)
	}
}

// Len returns the number of registered systems
func (s *SystemSet) Len() int {
	return len(s.systems)
}
