package input

import (
	"time"

	"github.com/lixenwraith/undead/constants"
)

// Controls is the sampled control state for one frame
type Controls struct {
	Forward   bool
	Backward  bool
	Leftward  bool
	Rightward bool
	Shoot     bool
	Reload    bool
	LookLeft  bool
	LookRight bool
}

// heldState tracks last press time per held action
// Terminals send key repeats but no releases, so a key counts as held
// until InputHoldTimeout passes without another press
type heldState struct {
	lastPress [actionCount]time.Time
}

func (h *heldState) press(a Action, now time.Time) {
	if a.IsHeld() {
		h.lastPress[a] = now
	}
}

func (h *heldState) held(a Action, now time.Time) bool {
	t := h.lastPress[a]
	return !t.IsZero() && now.Sub(t) < constants.InputHoldTimeout
}

func (h *heldState) clear() {
	h.lastPress = [actionCount]time.Time{}
}

func (h *heldState) controls(now time.Time) Controls {
	return Controls{
		Forward:   h.held(ActionForward, now),
		Backward:  h.held(ActionBackward, now),
		Leftward:  h.held(ActionLeftward, now),
		Rightward: h.held(ActionRightward, now),
		Shoot:     h.held(ActionShoot, now),
		Reload:    h.held(ActionReload, now),
		LookLeft:  h.held(ActionLookLeft, now),
		LookRight: h.held(ActionLookRight, now),
	}
}
