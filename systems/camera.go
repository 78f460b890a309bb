package systems

import (
	"time"

	"github.com/lixenwraith/undead/constants"
	"github.com/lixenwraith/undead/engine"
	"github.com/lixenwraith/undead/vmath"
)

// CameraSystem eases the camera toward a point above and behind the player
type CameraSystem struct {
	ctx *engine.GameContext
}

// NewCameraSystem creates the camera system
func NewCameraSystem(ctx *engine.GameContext) *CameraSystem {
	return &CameraSystem{ctx: ctx}
}

// Priority returns the system's priority
func (s *CameraSystem) Priority() int {
	return constants.PriorityCamera
}

// Update moves the camera a fixed fraction toward its target each frame
// The first frame with a player position snaps to the target
func (s *CameraSystem) Update(now time.Time, dt time.Duration) {
	state := s.ctx.State
	if !state.Phase().IsActive() {
		return
	}
	player, ok := state.PlayerPosition()
	if !ok {
		return
	}

	target := CameraTarget(player)
	cam, ok := state.CameraPosition()
	if !ok {
		state.SetCameraPosition(target)
		return
	}
	state.SetCameraPosition(vmath.V3FLerp(cam, target, constants.CameraLerp))
}

// CameraTarget returns the follow point for a player position
func CameraTarget(player vmath.Vec3F) vmath.Vec3F {
	return vmath.V3F(player.X, constants.CameraHeight, player.Z+constants.CameraTrailZ)
}
