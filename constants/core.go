package constants

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the render and per-entity update interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps dt handed to systems after a stall (debugger, suspend)
	MaxFrameDelta = 100 * time.Millisecond

	// InputHoldTimeout keeps a key "held" after its last press event
	// Terminals report repeats, not releases
	InputHoldTimeout = 150 * time.Millisecond
)

// Event Queue
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256
)

// System Execution Priorities (lower runs first)
const (
	PriorityPlayer   = 10
	PriorityCamera   = 15
	PriorityCombat   = 20
	PriorityDirector = 25 // Phase-entry effects and terminal check after combat
)

// Scheduler Task Intervals
const (
	// SpawnPollInterval is how often the spawn task checks its interval
	SpawnPollInterval = 100 * time.Millisecond

	// PhasePollInterval is how often phase durations and boss state are checked
	PhasePollInterval = 1 * time.Second

	// DifficultyInterval is how often the spawn interval shrinks
	DifficultyInterval = 10 * time.Second
)

// HUD Feed
const (
	// HUDPushInterval is the default websocket snapshot cadence
	HUDPushInterval = 250 * time.Millisecond

	// HUDWriteTimeout bounds a single websocket write
	HUDWriteTimeout = 2 * time.Second

	// HUDShutdownTimeout bounds graceful HTTP shutdown
	HUDShutdownTimeout = 2 * time.Second

	// CommandQueueSize is the buffer of UI action triggers waiting for the main loop
	CommandQueueSize = 16
)
