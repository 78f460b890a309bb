package input

import (
	"github.com/gdamore/tcell/v2"
)

// binding identifies a physical key: a special key, or KeyRune plus the rune
type binding struct {
	key tcell.Key
	ch  rune
}

// KeyMap resolves terminal keys to actions
type KeyMap struct {
	bindings map[binding]Action
}

// NewKeyMap creates an empty key map
func NewKeyMap() *KeyMap {
	return &KeyMap{bindings: make(map[binding]Action)}
}

// DefaultKeyMap returns the stock bindings
func DefaultKeyMap() *KeyMap {
	km := NewKeyMap()

	km.BindRune('w', ActionForward)
	km.BindKey(tcell.KeyUp, ActionForward)
	km.BindRune('s', ActionBackward)
	km.BindKey(tcell.KeyDown, ActionBackward)
	km.BindRune('a', ActionLeftward)
	km.BindKey(tcell.KeyLeft, ActionLeftward)
	km.BindRune('d', ActionRightward)
	km.BindKey(tcell.KeyRight, ActionRightward)

	km.BindRune(' ', ActionShoot)
	km.BindRune('r', ActionReload)
	km.BindRune('q', ActionLookLeft)
	km.BindRune('e', ActionLookRight)

	km.BindKey(tcell.KeyEnter, ActionStart)
	km.BindRune('R', ActionRestart)
	km.BindRune('m', ActionMenu)
	km.BindRune('p', ActionPause)
	km.BindRune('n', ActionMute)
	km.BindKey(tcell.KeyEscape, ActionQuit)
	km.BindKey(tcell.KeyCtrlC, ActionQuit)

	return km
}

// BindRune binds a printable key
func (km *KeyMap) BindRune(ch rune, a Action) {
	km.bindings[binding{key: tcell.KeyRune, ch: ch}] = a
}

// BindKey binds a special key
func (km *KeyMap) BindKey(k tcell.Key, a Action) {
	km.bindings[binding{key: k}] = a
}

// Unbind removes every binding of an action
func (km *KeyMap) Unbind(a Action) {
	for b, act := range km.bindings {
		if act == a {
			delete(km.bindings, b)
		}
	}
}

// Resolve returns the action bound to a key event's key and rune
func (km *KeyMap) Resolve(key tcell.Key, ch rune) Action {
	if key != tcell.KeyRune {
		ch = 0
	}
	return km.bindings[binding{key: key, ch: ch}]
}

// Len returns the number of bindings
func (km *KeyMap) Len() int {
	return len(km.bindings)
}

// Clone returns an independent copy
func (km *KeyMap) Clone() *KeyMap {
	c := NewKeyMap()
	for b, a := range km.bindings {
		c.bindings[b] = a
	}
	return c
}
