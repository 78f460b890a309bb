package engine

import (
	"encoding/json"
	"testing"
	"time"
)

func TestPhaseNamesRoundTrip(t *testing.T) {
	for p := PhaseMenu; p <= PhaseDefeat; p++ {
		got, err := ParsePhase(p.String())
		if err != nil {
			t.Fatalf("Unexpected error for %s: %v", p, err)
		}
		if got != p {
			t.Errorf("Expected %s, got %s", p, got)
		}
	}
	if _, err := ParsePhase("chapter9"); err == nil {
		t.Error("Expected error for unknown phase")
	}
}

func TestPhaseJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		Phase GamePhase `json:"phase"`
	}{PhaseChapter2})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if string(data) != `{"phase":"chapter2"}` {
		t.Errorf("Expected chapter2 by name, got %s", data)
	}

	var decoded struct {
		Phase GamePhase `json:"phase"`
	}
	if err := json.Unmarshal([]byte(`{"phase":"victory"}`), &decoded); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if decoded.Phase != PhaseVictory {
		t.Errorf("Expected victory, got %s", decoded.Phase)
	}
	if err := json.Unmarshal([]byte(`{"phase":"limbo"}`), &decoded); err == nil {
		t.Error("Expected error for unknown phase name")
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to GamePhase
		want     bool
	}{
		{PhaseMenu, PhasePrologue, true},
		{PhaseVictory, PhaseMenu, true},
		{PhaseDefeat, PhasePrologue, true},
		{PhasePrologue, PhaseChapter1, true},
		{PhasePrologue, PhaseChapter2, false},
		{PhaseChapter2, PhaseChapter1, false},
		{PhaseChapter3, PhaseVictory, true},
		{PhaseChapter1, PhaseDefeat, true},
		{PhaseMenu, PhaseVictory, false},
		{PhaseVictory, PhaseDefeat, false},
		{PhaseMenu, PhaseChapter1, false},
	}
	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%s, %s): expected %v, got %v", tt.from, tt.to, tt.want, got)
		}
	}
}

func TestPhaseConfigTable(t *testing.T) {
	tests := []struct {
		phase    GamePhase
		interval time.Duration
		duration time.Duration
	}{
		{PhasePrologue, 3 * time.Second, 30 * time.Second},
		{PhaseChapter1, 2 * time.Second, 45 * time.Second},
		{PhaseChapter2, 1500 * time.Millisecond, 60 * time.Second},
		{PhaseChapter3, 4 * time.Second, 0},
	}
	for _, tt := range tests {
		cfg, ok := tt.phase.Config()
		if !ok {
			t.Fatalf("Expected config for %s", tt.phase)
		}
		if cfg.SpawnInterval != tt.interval || cfg.Duration != tt.duration {
			t.Errorf("%s: expected %v/%v, got %v/%v", tt.phase, tt.interval, tt.duration, cfg.SpawnInterval, cfg.Duration)
		}
		if cfg.Objective == "" {
			t.Errorf("%s: expected objective text", tt.phase)
		}
	}

	if _, ok := PhaseMenu.Config(); ok {
		t.Error("Expected no config for menu")
	}
}

func TestPhaseClassification(t *testing.T) {
	if PhaseMenu.IsActive() || PhaseVictory.IsActive() {
		t.Error("Expected menu and victory inactive")
	}
	if !PhasePrologue.IsActive() || !PhaseChapter3.IsActive() {
		t.Error("Expected prologue and chapter3 active")
	}
	if !PhaseDefeat.IsTerminal() || PhaseChapter3.IsTerminal() {
		t.Error("Unexpected terminal classification")
	}
}
