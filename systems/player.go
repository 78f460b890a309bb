package systems

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/undead/constants"
	"github.com/lixenwraith/undead/engine"
	"github.com/lixenwraith/undead/input"
	"github.com/lixenwraith/undead/status"
	"github.com/lixenwraith/undead/vmath"
)

// ControlSource supplies per-frame controls and aim
// Implemented by input.Machine; tests use a fixed stub
type ControlSource interface {
	Step(now time.Time, dt time.Duration) (input.Controls, input.Aim)
}

// PlayerSystem moves the player on world axes inside the phase arena and fires on Shoot
type PlayerSystem struct {
	ctx      *engine.GameContext
	controls ControlSource

	lastShot  time.Time
	statShots *atomic.Int64
}

// NewPlayerSystem creates the player system reading from src
func NewPlayerSystem(ctx *engine.GameContext, src ControlSource) *PlayerSystem {
	return &PlayerSystem{
		ctx:       ctx,
		controls:  src,
		statShots: ctx.Status.Ints.Get(status.KeyShots),
	}
}

// Priority returns the system's priority
func (s *PlayerSystem) Priority() int {
	return constants.PriorityPlayer
}

// Update applies movement and firing for one frame
func (s *PlayerSystem) Update(now time.Time, dt time.Duration) {
	c, aim := s.controls.Step(now, dt)

	state := s.ctx.State
	phase := state.Phase()
	if !phase.IsActive() {
		return
	}

	pos, ok := state.PlayerPosition()
	if !ok {
		pos = engine.PlayerStart()
	}

	step := constants.PlayerSpeed * dt.Seconds()
	if c.Forward {
		pos.Z -= step
	}
	if c.Backward {
		pos.Z += step
	}
	if c.Leftward {
		pos.X -= step
	}
	if c.Rightward {
		pos.X += step
	}
	pos = ClampToArena(phase, pos)
	state.SetPlayerPosition(pos)

	// Reload is bound but has no gameplay effect
	if c.Shoot && now.Sub(s.lastShot) > constants.ShootCooldown {
		s.lastShot = now
		origin := vmath.V3F(pos.X, constants.PlayerEyeHeight, pos.Z)
		id := state.FireBullet(origin, aim.Forward())
		s.statShots.Add(1)
		log.Printf("Player fired %s (yaw %.2f, pitch %.2f)", id, aim.Yaw, aim.Pitch)
	}
}

// ClampToArena bounds a position to the phase's walkable area with Y on the ground
func ClampToArena(phase engine.GamePhase, pos vmath.Vec3F) vmath.Vec3F {
	halfX, halfZ, ok := ArenaExtents(phase)
	if ok {
		pos.X = vmath.Clamp(pos.X, -halfX, halfX)
		pos.Z = vmath.Clamp(pos.Z, -halfZ, halfZ)
	}
	pos.Y = constants.PlayerHeight
	return pos
}

// ArenaExtents returns half extents of the walkable area for active phases
func ArenaExtents(phase engine.GamePhase) (halfX, halfZ float64, ok bool) {
	switch phase {
	case engine.PhasePrologue:
		return constants.RoomHalfExtent, constants.RoomHalfExtent, true
	case engine.PhaseChapter1, engine.PhaseChapter2:
		return constants.StreetHalfWidth, constants.StreetHalfLength, true
	case engine.PhaseChapter3:
		return constants.CaveHalfExtent, constants.CaveHalfExtent, true
	}
	return 0, 0, false
}
