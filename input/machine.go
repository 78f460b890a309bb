package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/undead/constants"
)

// Machine turns terminal events into held controls, aim and one-shot intents
// HandleEvent and Step are called from the main loop; Aim may be read anywhere
type Machine struct {
	mu     sync.Mutex
	keyMap *KeyMap
	held   heldState
	aim    Aim

	// Pointer-look accumulation since the last Step
	lookDX, lookDY float64
	lastMouseX     int
	lastMouseY     int
	hasMouse       bool
}

// NewMachine creates a machine using the given key map (nil selects defaults)
func NewMachine(km *KeyMap) *Machine {
	if km == nil {
		km = DefaultKeyMap()
	}
	return &Machine{keyMap: km}
}

// HandleEvent records held keys and mouse motion, returning any one-shot intent
func (m *Machine) HandleEvent(ev tcell.Event, now time.Time) Intent {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return m.Press(m.keyMap.Resolve(e.Key(), e.Rune()), now)
	case *tcell.EventMouse:
		x, y := e.Position()
		m.MouseMove(x, y)
	}
	return IntentNone
}

// Press applies a resolved action
func (m *Machine) Press(a Action, now time.Time) Intent {
	if a == ActionNone {
		return IntentNone
	}
	if a.IsHeld() {
		m.mu.Lock()
		m.held.press(a, now)
		m.mu.Unlock()
		return IntentNone
	}
	return intentFor(a)
}

// MouseMove accumulates pointer-look delta from absolute cell positions
func (m *Machine) MouseMove(x, y int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.hasMouse {
		m.lookDX += float64(x - m.lastMouseX)
		m.lookDY += float64(y - m.lastMouseY)
	}
	m.lastMouseX, m.lastMouseY, m.hasMouse = x, y, true
}

// Step samples controls for this frame and applies look input to the aim
func (m *Machine) Step(now time.Time, dt time.Duration) (Controls, Aim) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := m.held.controls(now)

	dYaw := m.lookDX * constants.MouseSensitivity
	dPitch := -m.lookDY * constants.MouseSensitivity
	m.lookDX, m.lookDY = 0, 0

	turn := constants.LookSpeed * dt.Seconds()
	if c.LookLeft {
		dYaw -= turn
	}
	if c.LookRight {
		dYaw += turn
	}
	m.aim = m.aim.Turn(dYaw, dPitch)

	return c, m.aim
}

// Aim returns the current look direction
func (m *Machine) Aim() Aim {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.aim
}

// Reset releases all keys and faces forward, used on session changes
func (m *Machine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.held.clear()
	m.aim = Aim{}
	m.lookDX, m.lookDY = 0, 0
}
