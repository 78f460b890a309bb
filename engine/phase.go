package engine

import (
	"fmt"
	"time"
)

// GamePhase is the major stage of a game session
type GamePhase int

const (
	PhaseMenu GamePhase = iota
	PhasePrologue
	PhaseChapter1
	PhaseChapter2
	PhaseChapter3
	PhaseVictory
	PhaseDefeat
)

var phaseNames = [...]string{
	PhaseMenu:     "menu",
	PhasePrologue: "prologue",
	PhaseChapter1: "chapter1",
	PhaseChapter2: "chapter2",
	PhaseChapter3: "chapter3",
	PhaseVictory:  "victory",
	PhaseDefeat:   "defeat",
}

func (p GamePhase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// MarshalText encodes the phase by name for JSON snapshots
func (p GamePhase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText decodes a phase name
func (p *GamePhase) UnmarshalText(text []byte) error {
	parsed, err := ParsePhase(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParsePhase resolves a phase name
func ParsePhase(name string) (GamePhase, error) {
	for i, n := range phaseNames {
		if n == name {
			return GamePhase(i), nil
		}
	}
	return PhaseMenu, fmt.Errorf("unknown game phase %q", name)
}

// IsActive reports whether gameplay runs in this phase
func (p GamePhase) IsActive() bool {
	return p >= PhasePrologue && p <= PhaseChapter3
}

// IsTerminal reports whether the phase is a game outcome
func (p GamePhase) IsTerminal() bool {
	return p == PhaseVictory || p == PhaseDefeat
}

// NextChapter returns the following chapter and true, or false if none follows
func (p GamePhase) NextChapter() (GamePhase, bool) {
	switch p {
	case PhasePrologue:
		return PhaseChapter1, true
	case PhaseChapter1:
		return PhaseChapter2, true
	case PhaseChapter2:
		return PhaseChapter3, true
	default:
		return p, false
	}
}

// CanTransition checks if a phase transition is valid
// Menu and prologue are reachable from anywhere (reset / start)
// Chapters only advance one step; outcomes only from an active phase
func CanTransition(from, to GamePhase) bool {
	switch to {
	case PhaseMenu, PhasePrologue:
		return true
	case PhaseVictory, PhaseDefeat:
		return from.IsActive()
	}
	next, ok := from.NextChapter()
	return ok && next == to
}

// PhaseConfig describes what a phase sets up on entry
type PhaseConfig struct {
	Objective     string
	SpawnInterval time.Duration
	Duration      time.Duration // 0 = no timed advance
}

var phaseConfigs = map[GamePhase]PhaseConfig{
	PhasePrologue: {
		Objective:     "Survive the zombie attack and escape the room",
		SpawnInterval: 3000 * time.Millisecond,
		Duration:      30000 * time.Millisecond,
	},
	PhaseChapter1: {
		Objective:     "Fight through the city streets",
		SpawnInterval: 2000 * time.Millisecond,
		Duration:      45000 * time.Millisecond,
	},
	PhaseChapter2: {
		Objective:     "Survive the chaos and reach the hill",
		SpawnInterval: 1500 * time.Millisecond,
		Duration:      60000 * time.Millisecond,
	},
	PhaseChapter3: {
		Objective:     "Defeat the boss by hitting its weak spot",
		SpawnInterval: 4000 * time.Millisecond,
	},
}

// Config returns the phase setup and whether the phase has one
func (p GamePhase) Config() (PhaseConfig, bool) {
	cfg, ok := phaseConfigs[p]
	return cfg, ok
}
