// Package engine holds the authoritative game state and the infrastructure the
// simulation runs on: clocks, the cooperative scheduler, the event queue and
// the per-frame system set.
//
// Event Flow Pattern:
//  1. GameState mutators push events: state.push(EventZombieKilled, id)
//  2. Events are stored in a fixed ring buffer (oldest overwritten when full)
//  3. The main loop dispatches once per frame: router.DispatchAll()
//  4. Handlers (audio, logging) react; they never mutate GameState
//
// Events are informational. Systems that need to know the phase read the
// store; the queue exists so collaborators can react without polling.
package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/undead/constants"
)

// EventType represents the type of game event
type EventType int

const (
	// EventPhaseChanged fires on every phase entry, including restart into the same phase
	// Payload: PhaseChange
	EventPhaseChanged EventType = iota

	// EventZombieSpawned fires when a zombie is added to the store
	// Payload: zombie ID (string)
	EventZombieSpawned

	// EventZombieKilled fires when a zombie is removed through RemoveZombie
	// Payload: zombie ID (string)
	EventZombieKilled

	// EventPlayerDamaged fires when the player loses health
	// Payload: applied damage (int)
	EventPlayerDamaged

	// EventBulletFired fires when a bullet is created
	// Payload: bullet ID (string)
	EventBulletFired

	// EventBossDamaged fires when the boss loses health
	// Payload: remaining boss health (int)
	EventBossDamaged
)

func (e EventType) String() string {
	switch e {
	case EventPhaseChanged:
		return "PhaseChanged"
	case EventZombieSpawned:
		return "ZombieSpawned"
	case EventZombieKilled:
		return "ZombieKilled"
	case EventPlayerDamaged:
		return "PlayerDamaged"
	case EventBulletFired:
		return "BulletFired"
	case EventBossDamaged:
		return "BossDamaged"
	default:
		return "Unknown"
	}
}

// PhaseChange is the payload of EventPhaseChanged
type PhaseChange struct {
	From GamePhase
	To   GamePhase
}

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type      EventType // Type of event (determines semantic meaning)
	Payload   any       // Event-specific data, see EventType docs
	Timestamp time.Time // Game time at creation
}

// EventQueue is a fixed-size ring buffer of game events
// Push never blocks or fails; when full the oldest event is dropped
type EventQueue struct {
	mu     sync.Mutex
	events [constants.EventQueueSize]GameEvent
	head   uint64 // Read index
	tail   uint64 // Write index
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, overwriting the oldest one when the buffer is full
func (eq *EventQueue) Push(event GameEvent) {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	eq.events[eq.tail%constants.EventQueueSize] = event
	eq.tail++
	if eq.tail-eq.head > constants.EventQueueSize {
		eq.head = eq.tail - constants.EventQueueSize
	}
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	result := eq.snapshotLocked()
	eq.head = eq.tail
	return result
}

// Peek returns pending events without consuming them
func (eq *EventQueue) Peek() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return eq.snapshotLocked()
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return int(eq.tail - eq.head)
}

func (eq *EventQueue) snapshotLocked() []GameEvent {
	available := eq.tail - eq.head
	if available == 0 {
		return nil
	}

	result := make([]GameEvent, available)
	for i := uint64(0); i < available; i++ {
		result[i] = eq.events[(eq.head+i)%constants.EventQueueSize]
	}
	return result
}
