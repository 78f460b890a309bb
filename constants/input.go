package constants

// Aim
const (
	// LookSpeed is the yaw rate in radians per second while a look key is held
	LookSpeed = 2.0

	// MouseSensitivity is radians of turn per terminal cell of mouse travel
	MouseSensitivity = 0.05

	// PitchLimit bounds looking up or down, in radians
	PitchLimit = 1.4
)
