package input

// Intent is a one-shot request produced by input for the main loop
// Held controls never produce intents; they are sampled through Machine.Step
type Intent uint8

const (
	IntentNone Intent = iota
	IntentStart
	IntentRestart
	IntentMenu
	IntentTogglePause
	IntentToggleMute
	IntentQuit
)

var intentNames = [...]string{
	IntentNone:        "none",
	IntentStart:       "start",
	IntentRestart:     "restart",
	IntentMenu:        "menu",
	IntentTogglePause: "pause",
	IntentToggleMute:  "mute",
	IntentQuit:        "quit",
}

func (i Intent) String() string {
	if int(i) >= len(intentNames) {
		return "unknown"
	}
	return intentNames[i]
}

// ParseIntent resolves a UI action name (start, restart, menu) from an external trigger
// Only session actions are accepted; pause and quit stay local to the terminal
func ParseIntent(name string) (Intent, bool) {
	switch name {
	case "start":
		return IntentStart, true
	case "restart":
		return IntentRestart, true
	case "menu":
		return IntentMenu, true
	}
	return IntentNone, false
}

// intentFor maps trigger actions to intents
func intentFor(a Action) Intent {
	switch a {
	case ActionStart:
		return IntentStart
	case ActionRestart:
		return IntentRestart
	case ActionMenu:
		return IntentMenu
	case ActionPause:
		return IntentTogglePause
	case ActionMute:
		return IntentToggleMute
	case ActionQuit:
		return IntentQuit
	}
	return IntentNone
}
