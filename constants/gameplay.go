package constants

import "time"

// Player
const (
	// PlayerMaxHealth is full health; health is clamped to [0, PlayerMaxHealth]
	PlayerMaxHealth = 100

	// PlayerSpeed is movement speed in units per second
	PlayerSpeed = 5.0

	// PlayerHeight is the Y of the player body center
	PlayerHeight = 1.0

	// PlayerEyeHeight is where bullets leave the player
	PlayerEyeHeight = 1.7

	// KillHeal is restored to the player per zombie kill
	KillHeal = 10

	// ShootCooldown is the minimum time between shots
	ShootCooldown = 200 * time.Millisecond
)

// Zombie
const (
	// ZombieMaxHealth is spawn health
	ZombieMaxHealth = 100

	// ZombieCap is the maximum number of live zombies
	ZombieCap = 8

	// ZombieSpeed is movement speed in units per second
	ZombieSpeed = 1.5

	// ZombieMeleeRange is planar distance at which a zombie can hit
	ZombieMeleeRange = 1.2

	// ZombieAttackCooldown is per-zombie time between hits
	ZombieAttackCooldown = 1000 * time.Millisecond

	// ZombieDamage is dealt to the player per hit
	ZombieDamage = 15
)

// Bullet
const (
	// BulletSpeed is travel speed in units per second
	BulletSpeed = 20.0

	// BulletLifetime is the maximum time a bullet stays alive
	BulletLifetime = 3000 * time.Millisecond

	// BulletBound is the max absolute X or Z before a bullet expires
	BulletBound = 50.0

	// BulletZombieRadius is hit distance against a zombie
	BulletZombieRadius = 1.0

	// BulletBossRadius is hit distance against the boss
	BulletBossRadius = 2.0

	// BulletZombieDamage is applied to a zombie per hit
	BulletZombieDamage = 50

	// BulletBossDamage is applied to the boss per hit
	BulletBossDamage = 25
)

// Boss
const (
	// BossMaxHealth is spawn health; boss health is clamped to [0, BossMaxHealth]
	BossMaxHealth = 600

	// BossX, BossY, BossZ is the fixed boss position
	BossX = 0.0
	BossY = 2.0
	BossZ = -5.0

	// BossAttackRange is planar distance at which the boss can hit
	BossAttackRange = 5.0

	// BossAttackCooldown is time between boss hits
	BossAttackCooldown = 2000 * time.Millisecond

	// BossDamage is dealt to the player per hit
	BossDamage = 20

	// BossHealthBars is the number of HUD bars the boss health is split into
	BossHealthBars = 3
)

// Difficulty
const (
	// SpawnIntervalStep is removed from the spawn interval per difficulty tick
	SpawnIntervalStep = 50 * time.Millisecond

	// SpawnIntervalFloor is the spawn interval lower bound
	SpawnIntervalFloor = 1000 * time.Millisecond
)

// Camera
const (
	// CameraLerp is the per-frame follow factor
	CameraLerp = 0.05

	// CameraHeight is the absolute Y the camera settles at
	CameraHeight = 8.0

	// CameraTrailZ is how far behind the player (positive Z) the camera settles
	CameraTrailZ = 10.0
)

// Arena Bounds (player movement per environment)
const (
	RoomHalfExtent = 4.5

	StreetHalfWidth  = 10.0
	StreetHalfLength = 50.0

	CaveHalfExtent = 8.0
)

// Spawn Placement
const (
	// RoomSpawnOffset places prologue spawns just outside the movement bounds
	RoomSpawnOffset = 4.8

	// RoomSpawnSpan is the range of the free axis along a room wall
	RoomSpawnSpan = 6.0

	// StreetSpawnX is the absolute X of the two street-side spawn lines
	StreetSpawnX = 12.0

	// StreetSpawnNearZ / StreetSpawnFarZ bound street spawns ahead of the player
	StreetSpawnNearZ = -20.0
	StreetSpawnFarZ  = -50.0

	// CaveSpawnRadius is the ring radius around the arena center
	CaveSpawnRadius = 8.0

	// FallbackSpawnZ is used when a phase has no placement rule
	FallbackSpawnZ = -10.0
)
