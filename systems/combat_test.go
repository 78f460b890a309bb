package systems

import (
	"testing"
	"time"

	"github.com/lixenwraith/undead/engine"
	"github.com/lixenwraith/undead/vmath"
)

func TestBulletKinematics(t *testing.T) {
	ctx, mock := newTestContext()
	combat := NewCombatSystem(ctx)
	ctx.State.StartGame()

	origin := vmath.V3F(0, 1.7, 0)
	dir := vmath.V3FNormalize(vmath.V3F(1, 0, -1))
	ctx.State.FireBullet(origin, dir)

	now := mock.Now()
	for i := 0; i < 5; i++ {
		now = mock.Advance(20 * time.Millisecond)
		combat.Update(now, 20*time.Millisecond)
	}

	bullets := ctx.State.Bullets()
	if len(bullets) != 1 {
		t.Fatalf("Expected bullet alive, got %d", len(bullets))
	}
	want := vmath.V3FAdd(origin, vmath.V3FScale(dir, 20*0.1))
	if !vmath.V3FApproxEqual(bullets[0].Position, want, 1e-9) {
		t.Errorf("Expected %+v, got %+v", want, bullets[0].Position)
	}
}

func TestZombieMovesTowardPlayer(t *testing.T) {
	ctx, mock := newTestContext()
	combat := NewCombatSystem(ctx)
	ctx.State.StartGame()
	ctx.State.AddZombie(engine.NewZombie("zombie-a", vmath.V3F(0, 1, -10)))

	combat.Update(mock.Advance(time.Second), time.Second)

	z, _ := ctx.State.Zombie("zombie-a")
	if !vmath.V3FApproxEqual(z.Position, vmath.V3F(0, 1, -8.5), 1e-9) {
		t.Errorf("Expected zombie at (0,1,-8.5), got %+v", z.Position)
	}
}

func TestBulletHitsOnlyOneZombie(t *testing.T) {
	ctx, mock := newTestContext()
	combat := NewCombatSystem(ctx)
	ctx.State.StartGame()

	ctx.State.AddZombie(engine.NewZombie("zombie-a", vmath.V3F(0, 1, -5)))
	ctx.State.AddZombie(engine.NewZombie("zombie-b", vmath.V3F(0.1, 1, -5)))
	ctx.State.FireBullet(vmath.V3F(0, 1.7, -5), vmath.V3F(0, 0, -1))

	combat.Update(mock.Advance(time.Millisecond), time.Millisecond)

	a, _ := ctx.State.Zombie("zombie-a")
	b, _ := ctx.State.Zombie("zombie-b")
	if a.Health+b.Health != 150 {
		t.Errorf("Expected exactly one zombie hit, got healths %d and %d", a.Health, b.Health)
	}
	if len(ctx.State.Bullets()) != 0 {
		t.Error("Expected bullet consumed by the hit")
	}
}

func TestTwoHitsKillZombie(t *testing.T) {
	ctx, mock := newTestContext()
	combat := NewCombatSystem(ctx)
	ctx.State.StartGame()
	ctx.State.DamagePlayer(30)
	ctx.State.AddZombie(engine.NewZombie("zombie-a", vmath.V3F(0, 1, -3)))

	ctx.State.FireBullet(vmath.V3F(0, 1.7, -3), vmath.V3F(0, 0, -1))
	combat.Update(mock.Advance(time.Millisecond), time.Millisecond)

	z, ok := ctx.State.Zombie("zombie-a")
	if !ok || z.Health != 50 {
		t.Fatalf("Expected zombie at 50 health, got %+v (present=%v)", z, ok)
	}

	ctx.State.FireBullet(z.Position, vmath.V3F(0, 0, -1))
	combat.Update(mock.Advance(time.Millisecond), time.Millisecond)

	if ctx.State.ZombieCount() != 0 {
		t.Errorf("Expected zombie reaped, got %d", ctx.State.ZombieCount())
	}
	if ctx.State.Kills() != 1 {
		t.Errorf("Expected 1 kill, got %d", ctx.State.Kills())
	}
	if ctx.State.PlayerHealth() != 80 {
		t.Errorf("Expected kill heal to 80, got %d", ctx.State.PlayerHealth())
	}
}

func TestBossHitsToVictory(t *testing.T) {
	ctx, mock := newTestContext()
	combat := NewCombatSystem(ctx)
	enterChapter3(ctx)

	boss := engine.BossPosition()
	for i := 0; i < 23; i++ {
		ctx.State.FireBullet(boss, vmath.V3F(0, 0, -1))
		combat.Update(mock.Advance(time.Millisecond), time.Millisecond)
	}
	if ctx.State.BossHealth() != 25 {
		t.Fatalf("Expected boss health 25, got %d", ctx.State.BossHealth())
	}
	if ctx.State.Phase() != engine.PhaseChapter3 {
		t.Fatalf("Expected chapter3, got %s", ctx.State.Phase())
	}

	ctx.State.FireBullet(boss, vmath.V3F(0, 0, -1))
	combat.Update(mock.Advance(time.Millisecond), time.Millisecond)

	if ctx.State.BossHealth() != 0 {
		t.Errorf("Expected boss health 0, got %d", ctx.State.BossHealth())
	}
	if ctx.State.Phase() != engine.PhaseVictory {
		t.Errorf("Expected victory, got %s", ctx.State.Phase())
	}
}

func TestBossIgnoredOutsideChapter3(t *testing.T) {
	ctx, mock := newTestContext()
	combat := NewCombatSystem(ctx)
	ctx.State.StartGame()

	ctx.State.FireBullet(engine.BossPosition(), vmath.V3F(0, 0, -1))
	combat.Update(mock.Advance(time.Millisecond), time.Millisecond)

	if ctx.State.BossHealth() != 600 {
		t.Errorf("Expected boss untouched, got %d", ctx.State.BossHealth())
	}
	if len(ctx.State.Bullets()) != 1 {
		t.Error("Expected bullet to keep flying")
	}
}

func TestZombieHitsToDefeatOnce(t *testing.T) {
	ctx, mock := newTestContext()
	combat := NewCombatSystem(ctx)
	ctx.State.StartGame()
	ctx.State.AddZombie(engine.NewZombie("zombie-a", vmath.V3F(0, 1, -0.5)))
	ctx.Events.Consume()

	for i := 0; i < 6; i++ {
		combat.Update(mock.Advance(1001*time.Millisecond), 16*time.Millisecond)
	}
	if ctx.State.PlayerHealth() != 10 {
		t.Fatalf("Expected health 10 after 6 hits, got %d", ctx.State.PlayerHealth())
	}
	if ctx.State.Phase() != engine.PhasePrologue {
		t.Fatalf("Expected prologue, got %s", ctx.State.Phase())
	}

	for i := 0; i < 5; i++ {
		combat.Update(mock.Advance(1001*time.Millisecond), 16*time.Millisecond)
	}
	if ctx.State.Phase() != engine.PhaseDefeat {
		t.Fatalf("Expected defeat, got %s", ctx.State.Phase())
	}

	defeats := 0
	for _, ev := range ctx.Events.Consume() {
		if ev.Type == engine.EventPhaseChanged && ev.Payload.(engine.PhaseChange).To == engine.PhaseDefeat {
			defeats++
		}
	}
	if defeats != 1 {
		t.Errorf("Expected exactly one defeat transition, got %d", defeats)
	}
}

func TestZombieMeleeCooldown(t *testing.T) {
	ctx, mock := newTestContext()
	combat := NewCombatSystem(ctx)
	ctx.State.StartGame()
	ctx.State.AddZombie(engine.NewZombie("zombie-a", vmath.V3F(0.5, 1, 0)))

	combat.Update(mock.Advance(16*time.Millisecond), 16*time.Millisecond)
	combat.Update(mock.Advance(500*time.Millisecond), 16*time.Millisecond)
	if ctx.State.PlayerHealth() != 85 {
		t.Errorf("Expected one hit within cooldown, got health %d", ctx.State.PlayerHealth())
	}

	combat.Update(mock.Advance(501*time.Millisecond), 16*time.Millisecond)
	if ctx.State.PlayerHealth() != 70 {
		t.Errorf("Expected second hit after cooldown, got health %d", ctx.State.PlayerHealth())
	}
}

func TestBossAttack(t *testing.T) {
	ctx, mock := newTestContext()
	combat := NewCombatSystem(ctx)
	enterChapter3(ctx)

	// Exactly at range: no hit
	combat.Update(mock.Advance(time.Millisecond), time.Millisecond)
	if ctx.State.PlayerHealth() != 100 {
		t.Fatalf("Expected no hit at distance 5, got health %d", ctx.State.PlayerHealth())
	}

	ctx.State.SetPlayerPosition(vmath.V3F(0, 1, -2))
	combat.Update(mock.Advance(time.Millisecond), time.Millisecond)
	combat.Update(mock.Advance(time.Second), time.Millisecond)
	if ctx.State.PlayerHealth() != 80 {
		t.Errorf("Expected one boss hit, got health %d", ctx.State.PlayerHealth())
	}

	combat.Update(mock.Advance(1001*time.Millisecond), time.Millisecond)
	if ctx.State.PlayerHealth() != 60 {
		t.Errorf("Expected second boss hit after 2s, got health %d", ctx.State.PlayerHealth())
	}
}

func TestBulletExpiry(t *testing.T) {
	ctx, mock := newTestContext()
	combat := NewCombatSystem(ctx)
	ctx.State.StartGame()

	// Lifetime
	ctx.State.FireBullet(vmath.V3F(0, 1.7, 0), vmath.V3F(0, 1, 0))
	combat.Update(mock.Advance(3000*time.Millisecond), 0)
	if len(ctx.State.Bullets()) != 1 {
		t.Fatal("Expected bullet alive at exactly 3s")
	}
	combat.Update(mock.Advance(time.Millisecond), 0)
	if len(ctx.State.Bullets()) != 0 {
		t.Error("Expected bullet expired after 3s")
	}

	// Arena bound
	ctx.State.FireBullet(vmath.V3F(0, 1.7, -49.9), vmath.V3F(0, 0, -1))
	combat.Update(mock.Advance(time.Millisecond), 100*time.Millisecond)
	if len(ctx.State.Bullets()) != 0 {
		t.Error("Expected bullet past |z|=50 removed")
	}
}

func TestCombatInactiveOutsidePlay(t *testing.T) {
	ctx, mock := newTestContext()
	combat := NewCombatSystem(ctx)
	ctx.State.StartGame()
	ctx.State.AddZombie(engine.NewZombie("zombie-a", vmath.V3F(0, 1, -10)))
	ctx.State.EndGame(engine.PhaseDefeat)
	ctx.State.AddZombie(engine.NewZombie("zombie-b", vmath.V3F(0, 1, -10)))

	combat.Update(mock.Advance(time.Second), time.Second)

	z, _ := ctx.State.Zombie("zombie-b")
	if z.Position != vmath.V3F(0, 1, -10) {
		t.Errorf("Expected no movement after game end, got %+v", z.Position)
	}
}
