package input

import (
	"math"

	"github.com/lixenwraith/undead/constants"
	"github.com/lixenwraith/undead/vmath"
)

// Aim is the look direction; yaw 0 faces -Z, positive yaw turns right
type Aim struct {
	Yaw   float64 // Radians
	Pitch float64 // Radians, positive looks up
}

// Forward returns the unit look vector
func (a Aim) Forward() vmath.Vec3F {
	cp := math.Cos(a.Pitch)
	return vmath.V3F(
		math.Sin(a.Yaw)*cp,
		math.Sin(a.Pitch),
		-math.Cos(a.Yaw)*cp,
	)
}

// Turn applies a yaw/pitch delta; pitch is clamped and yaw wrapped to [-π, π)
func (a Aim) Turn(dYaw, dPitch float64) Aim {
	yaw := math.Mod(a.Yaw+dYaw+math.Pi, 2*math.Pi)
	if yaw < 0 {
		yaw += 2 * math.Pi
	}
	return Aim{
		Yaw:   yaw - math.Pi,
		Pitch: vmath.Clamp(a.Pitch+dPitch, -constants.PitchLimit, constants.PitchLimit),
	}
}
