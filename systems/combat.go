package systems

import (
	"math"
	"time"

	"github.com/samber/lo"

	"github.com/lixenwraith/undead/constants"
	"github.com/lixenwraith/undead/engine"
	"github.com/lixenwraith/undead/vmath"
)

// CombatSystem moves zombies and bullets, resolves hits and melee, and reaps the dead
// Each frame works from one snapshot: move, apply, collide, attack, reap
type CombatSystem struct {
	ctx *engine.GameContext
}

// NewCombatSystem creates the combat system
func NewCombatSystem(ctx *engine.GameContext) *CombatSystem {
	return &CombatSystem{ctx: ctx}
}

// Priority returns the system's priority
func (s *CombatSystem) Priority() int {
	return constants.PriorityCombat
}

// Update runs one combat step scaled by dt
func (s *CombatSystem) Update(now time.Time, dt time.Duration) {
	state := s.ctx.State
	phase := state.Phase()
	if !phase.IsActive() {
		return
	}

	player, ok := state.PlayerPosition()
	if !ok {
		return
	}
	zombies := state.Zombies()
	bullets := state.Bullets()
	secs := dt.Seconds()

	// Move
	for i := range zombies {
		dir := vmath.V3FPlanarDirection(zombies[i].Position, player)
		zombies[i].Position = vmath.V3FAdd(zombies[i].Position, vmath.V3FScale(dir, constants.ZombieSpeed*secs))
	}
	for i := range bullets {
		bullets[i].Position = vmath.V3FAdd(bullets[i].Position, vmath.V3FScale(bullets[i].Direction, bullets[i].Speed*secs))
	}

	// Apply
	for _, z := range zombies {
		state.SetZombiePosition(z.ID, z.Position)
	}
	for _, b := range bullets {
		state.SetBulletPosition(b.ID, b.Position)
	}

	// Collide, at most one outcome per bullet
	bossAlive := phase == engine.PhaseChapter3 && state.BossHealth() > 0
	boss := engine.BossPosition()
	for _, b := range bullets {
		if idx := s.hitZombie(b, zombies); idx >= 0 {
			state.DamageZombie(zombies[idx].ID, constants.BulletZombieDamage)
			zombies[idx].Health = max(0, zombies[idx].Health-constants.BulletZombieDamage)
			state.RemoveBullet(b.ID)
			continue
		}
		if bossAlive && vmath.WithinRadius(b.Position, boss, constants.BulletBossRadius) {
			state.DamageBoss(constants.BulletBossDamage)
			bossAlive = state.BossHealth() > 0
			state.RemoveBullet(b.ID)
			continue
		}
		if expired(b, now) {
			state.RemoveBullet(b.ID)
		}
	}

	// Zombie melee
	for _, z := range zombies {
		if z.Health <= 0 {
			continue
		}
		if vmath.WithinPlanarRadius(z.Position, player, constants.ZombieMeleeRange) &&
			now.Sub(z.LastAttack) > constants.ZombieAttackCooldown {
			state.DamagePlayer(constants.ZombieDamage)
			state.MarkZombieAttack(z.ID, now)
		}
	}

	// Boss attack
	if bossAlive && vmath.WithinPlanarRadius(boss, player, constants.BossAttackRange) &&
		now.Sub(state.BossLastAttack()) > constants.BossAttackCooldown {
		state.DamagePlayer(constants.BossDamage)
		state.MarkBossAttack(now)
	}

	// Reap
	dead := lo.Filter(zombies, func(z engine.Zombie, _ int) bool { return z.Health <= 0 })
	for _, z := range dead {
		state.RemoveZombie(z.ID)
	}

	if phase == engine.PhaseChapter3 && state.BossHealth() <= 0 {
		state.EndGame(engine.PhaseVictory)
	}
	if state.Phase().IsActive() && state.PlayerHealth() <= 0 {
		state.EndGame(engine.PhaseDefeat)
	}
}

// hitZombie returns the index of the first live zombie within hit radius, or -1
func (s *CombatSystem) hitZombie(b engine.Bullet, zombies []engine.Zombie) int {
	_, idx, ok := lo.FindIndexOf(zombies, func(z engine.Zombie) bool {
		return z.Health > 0 && vmath.WithinRadius(b.Position, z.Position, constants.BulletZombieRadius)
	})
	if !ok {
		return -1
	}
	return idx
}

// expired reports lifetime or arena bound exceeded
func expired(b engine.Bullet, now time.Time) bool {
	return now.Sub(b.FiredAt) > constants.BulletLifetime ||
		math.Abs(b.Position.X) > constants.BulletBound ||
		math.Abs(b.Position.Z) > constants.BulletBound
}
