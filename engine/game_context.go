package engine

import (
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/undead/status"
)

// GameContext owns one game session: the store and everything that drives it
// Passed explicitly to systems; there is no package-level instance
type GameContext struct {
	// ===== Immutable After Init =====
	// Set once during NewGameContext. Pointers never modified.
	// Safe for concurrent read without synchronization.

	State  *GameState       // Authoritative store; internal RWMutex
	Clock  *PausableClock   // Game time source; internal sync
	Events *EventQueue      // Ring buffer fed by store mutators
	Router *EventRouter     // Dispatches Events to handlers
	Status *status.Registry // Metrics; atomic values

	// ===== Atomic (Self-Synchronized) =====

	FrameNumber atomic.Int64 // Incremented by main loop
	IsMuted     atomic.Bool

	// ===== Main-Loop Exclusive =====
	// Accessed only from the main goroutine. No synchronization required.

	Rand          *rand.Rand // Spawn placement; seeded for reproducible tests
	Width, Height int        // Terminal dimensions
}

// NewGameContext wires a fresh session over the given time source
// seed 0 selects a time-based seed
func NewGameContext(source TimeProvider, seed int64) *GameContext {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	clock := NewPausableClock(source)
	events := NewEventQueue()

	return &GameContext{
		State:  NewGameState(clock, events),
		Clock:  clock,
		Events: events,
		Router: NewEventRouter(events),
		Status: status.NewRegistry(),
		Rand:   rand.New(rand.NewSource(seed)),
	}
}

// Now returns current game time
func (ctx *GameContext) Now() time.Time {
	return ctx.Clock.Now()
}
