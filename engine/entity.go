package engine

import (
	"time"

	"github.com/google/uuid"
	"github.com/lixenwraith/undead/constants"
	"github.com/lixenwraith/undead/vmath"
)

// Entity ID prefixes
const (
	ZombieIDPrefix = "zombie"
	BulletIDPrefix = "bullet"
)

// NewEntityID returns a unique identity such as "zombie-6f1c..."
func NewEntityID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// Zombie is a hostile that walks toward the player and hits on contact
type Zombie struct {
	ID         string      `json:"id"`
	Position   vmath.Vec3F `json:"position"`
	Health     int         `json:"health"`
	LastAttack time.Time   `json:"-"` // Personal melee cooldown anchor
}

// NewZombie creates a full-health zombie record
func NewZombie(id string, pos vmath.Vec3F) Zombie {
	return Zombie{
		ID:       id,
		Position: pos,
		Health:   constants.ZombieMaxHealth,
	}
}

// Bullet is a player projectile travelling in a straight line
type Bullet struct {
	ID        string      `json:"id"`
	Position  vmath.Vec3F `json:"position"`
	Direction vmath.Vec3F `json:"direction"` // Unit vector, immutable after creation
	Speed     float64     `json:"speed"`     // Units per second
	Origin    vmath.Vec3F `json:"-"`
	FiredAt   time.Time   `json:"-"`
}

// BossPosition returns the fixed boss location in the cave
func BossPosition() vmath.Vec3F {
	return vmath.V3F(constants.BossX, constants.BossY, constants.BossZ)
}

// PlayerStart returns the position every chapter starts from
func PlayerStart() vmath.Vec3F {
	return vmath.V3F(0, constants.PlayerHeight, 0)
}
