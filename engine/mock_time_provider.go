package engine

import (
	"sync"
	"time"
)

// MockTimeProvider is a hand-driven clock for simulation tests
// Time only moves through SetTime or Advance
type MockTimeProvider struct {
	mu    sync.Mutex
	start time.Time
	now   time.Time
}

// NewMockTimeProvider pins the clock at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{start: start, now: start}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// SetTime jumps to t; moving backwards is allowed
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	m.now = t
	m.mu.Unlock()
}

// Advance moves the clock forward by d and returns the new reading
func (m *MockTimeProvider) Advance(d time.Duration) time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
	return m.now
}

// Elapsed returns the distance from the pinned start
func (m *MockTimeProvider) Elapsed() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now.Sub(m.start)
}
