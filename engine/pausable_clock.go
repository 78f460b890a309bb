package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// PausableClock provides pausable game time with pause duration tracking
// Game systems read this clock; the real clock keeps running underneath
type PausableClock struct {
	mu sync.RWMutex

	source TimeProvider

	// Base time tracking
	realStartTime time.Time // When clock was created (real time)

	// Pause state
	isPaused        atomic.Bool
	pauseStartTime  time.Time     // When current pause started (real time)
	totalPausedTime time.Duration // Cumulative pause duration
}

// NewPausableClock creates a pausable clock reading from source
func NewPausableClock(source TimeProvider) *PausableClock {
	return &PausableClock{
		source:        source,
		realStartTime: source.Now(),
	}
}

// Now returns current game time (frozen while paused)
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.isPaused.Load() {
		return pc.pauseStartTime.Add(-pc.totalPausedTime)
	}

	// Game time = real time shifted back by everything spent paused
	return pc.source.Now().Add(-pc.totalPausedTime)
}

// RealTime returns the underlying source time (unaffected by pause)
func (pc *PausableClock) RealTime() time.Time {
	return pc.source.Now()
}

// Pause stops game time advancement
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.isPaused.CompareAndSwap(false, true) {
		pc.pauseStartTime = pc.source.Now()
	}
}

// Resume continues game time advancement
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.isPaused.CompareAndSwap(true, false) {
		if !pc.pauseStartTime.IsZero() {
			pc.totalPausedTime += pc.source.Now().Sub(pc.pauseStartTime)
			pc.pauseStartTime = time.Time{}
		}
	}
}

// Toggle flips the pause state and returns the new state
func (pc *PausableClock) Toggle() bool {
	if pc.isPaused.Load() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.isPaused.Load()
}

// GetTotalPauseDuration returns cumulative pause time including an ongoing pause
func (pc *PausableClock) GetTotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.isPaused.Load() && !pc.pauseStartTime.IsZero() {
		total += pc.source.Now().Sub(pc.pauseStartTime)
	}
	return total
}
