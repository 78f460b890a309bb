package input

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that read poorly as single characters in config
var runeAliases = map[string]rune{
	"space": ' ',
}

// specialKeys maps lowercase key names to tcell keys
var specialKeys = map[string]tcell.Key{
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"enter":     tcell.KeyEnter,
	"return":    tcell.KeyEnter,
	"esc":       tcell.KeyEscape,
	"escape":    tcell.KeyEscape,
	"tab":       tcell.KeyTab,
	"backspace": tcell.KeyBackspace2,
	"ctrl-c":    tcell.KeyCtrlC,
	"ctrl-q":    tcell.KeyCtrlQ,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"pgup":      tcell.KeyPgUp,
	"pgdn":      tcell.KeyPgDn,
	"f1":        tcell.KeyF1,
	"f2":        tcell.KeyF2,
}

// LoadKeyMap applies action → key-name overrides on top of the defaults
// An action listed in overrides loses its default keys; an empty list unbinds it
// Returns error on unknown action names or key names
func LoadKeyMap(overrides map[string][]string) (*KeyMap, error) {
	km := DefaultKeyMap()

	for actionName, keys := range overrides {
		action, err := resolveAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("keys: %w", err)
		}
		if action == ActionNone {
			continue
		}

		km.Unbind(action)
		for _, keyStr := range keys {
			b, err := parseKeyName(keyStr)
			if err != nil {
				return nil, fmt.Errorf("keys.%s: %w", actionName, err)
			}
			km.bindings[b] = action
		}
	}

	return km, nil
}

// parseKeyName resolves a single character, a rune alias or a tcell key name
// Single characters are case-sensitive ("R" differs from "r")
func parseKeyName(s string) (binding, error) {
	if s == "" {
		return binding{}, fmt.Errorf("empty key name")
	}
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		return binding{key: tcell.KeyRune, ch: r}, nil
	}

	lower := strings.ToLower(s)
	if r, ok := runeAliases[lower]; ok {
		return binding{key: tcell.KeyRune, ch: r}, nil
	}
	if k, ok := specialKeys[lower]; ok {
		return binding{key: k}, nil
	}
	return binding{}, fmt.Errorf("unknown key %q", s)
}
