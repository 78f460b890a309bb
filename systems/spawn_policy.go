package systems

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/undead/constants"
	"github.com/lixenwraith/undead/engine"
	"github.com/lixenwraith/undead/vmath"
)

// SpawnPosition picks where a new zombie appears for the given phase
// Room: one of four walls. Street: either curb, ahead of the player. Cave: ring around the center
func SpawnPosition(phase engine.GamePhase, rng *rand.Rand) vmath.Vec3F {
	y := constants.PlayerHeight

	switch phase {
	case engine.PhasePrologue:
		free := rng.Float64()*constants.RoomSpawnSpan - constants.RoomSpawnSpan/2
		switch rng.Intn(4) {
		case 0:
			return vmath.V3F(free, y, -constants.RoomSpawnOffset)
		case 1:
			return vmath.V3F(free, y, constants.RoomSpawnOffset)
		case 2:
			return vmath.V3F(-constants.RoomSpawnOffset, y, free)
		default:
			return vmath.V3F(constants.RoomSpawnOffset, y, free)
		}

	case engine.PhaseChapter1, engine.PhaseChapter2:
		x := constants.StreetSpawnX
		if rng.Intn(2) == 0 {
			x = -x
		}
		span := constants.StreetSpawnNearZ - constants.StreetSpawnFarZ
		z := constants.StreetSpawnFarZ + rng.Float64()*span
		return vmath.V3F(x, y, z)

	case engine.PhaseChapter3:
		angle := rng.Float64() * 2 * math.Pi
		return vmath.V3F(
			math.Cos(angle)*constants.CaveSpawnRadius,
			y,
			math.Sin(angle)*constants.CaveSpawnRadius,
		)
	}

	return vmath.V3F(0, y, constants.FallbackSpawnZ)
}
