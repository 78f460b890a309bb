package input

import "fmt"

// Action is a bindable game input
type Action uint8

const (
	ActionNone Action = iota

	// Held controls
	ActionForward
	ActionBackward
	ActionLeftward
	ActionRightward
	ActionShoot
	ActionReload
	ActionLookLeft
	ActionLookRight

	// One-shot triggers
	ActionStart
	ActionRestart
	ActionMenu
	ActionPause
	ActionMute
	ActionQuit

	actionCount
)

// actionRegistry maps canonical action names used in config to actions
var actionRegistry = map[string]Action{
	"none":       ActionNone,
	"forward":    ActionForward,
	"backward":   ActionBackward,
	"leftward":   ActionLeftward,
	"rightward":  ActionRightward,
	"shoot":      ActionShoot,
	"reload":     ActionReload,
	"look_left":  ActionLookLeft,
	"look_right": ActionLookRight,
	"start":      ActionStart,
	"restart":    ActionRestart,
	"menu":       ActionMenu,
	"pause":      ActionPause,
	"mute":       ActionMute,
	"quit":       ActionQuit,
}

func (a Action) String() string {
	for name, act := range actionRegistry {
		if act == a {
			return name
		}
	}
	return "unknown"
}

// IsHeld reports whether the action is a continuous control rather than a trigger
func (a Action) IsHeld() bool {
	return a >= ActionForward && a <= ActionLookRight
}

// resolveAction looks up an action by config name
func resolveAction(name string) (Action, error) {
	a, ok := actionRegistry[name]
	if !ok {
		return ActionNone, fmt.Errorf("unknown action %q", name)
	}
	return a, nil
}
