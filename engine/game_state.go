package engine

import (
	"log"
	"sync"
	"time"

	"github.com/samber/lo"

	"github.com/lixenwraith/undead/constants"
	"github.com/lixenwraith/undead/vmath"
)

// GameState is the single source of truth for a session
// Every mutator is total: out-of-range input is clamped, unknown IDs are no-ops
// Writers run on the main loop; readers (HUD, renderer) may be on any goroutine
type GameState struct {
	mu sync.RWMutex

	clock TimeProvider
	queue *EventQueue

	// Phase State
	phase      GamePhase
	phaseStart time.Time
	phaseEpoch uint64 // Incremented on every phase entry

	// Player State
	playerHealth int
	playerPos    vmath.Vec3F
	hasPlayerPos bool
	cameraPos    vmath.Vec3F
	hasCameraPos bool
	kills        int

	// Objective
	objective    string
	hasObjective bool

	// Entity Collections (owned exclusively here)
	zombies []Zombie
	bullets []Bullet

	// Boss State
	bossHealth     int
	bossLastAttack time.Time

	// Pacing (published by the director)
	spawnInterval time.Duration
}

// NewGameState creates a store in the menu phase
// queue may be nil when no collaborator listens for events
func NewGameState(clock TimeProvider, queue *EventQueue) *GameState {
	gs := &GameState{
		clock: clock,
		queue: queue,
	}
	gs.resetLocked()
	gs.phase = PhaseMenu
	gs.phaseStart = clock.Now()
	return gs
}

// ===== GAME FLOW =====

// StartGame resets the session and enters the prologue
func (gs *GameState) StartGame() {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	gs.resetLocked()
	gs.playerPos, gs.hasPlayerPos = PlayerStart(), true
	gs.transitionLocked(PhasePrologue)
	log.Printf("Game started - %s phase", PhasePrologue)
}

// RestartGame is StartGame from any phase
func (gs *GameState) RestartGame() {
	gs.StartGame()
}

// GoToMenu resets the session and returns to the menu
func (gs *GameState) GoToMenu() {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	gs.resetLocked()
	gs.transitionLocked(PhaseMenu)
	log.Printf("Returned to menu")
}

// NextChapter advances prologue -> chapter1 -> chapter2 -> chapter3
// Player position resets and transient entities clear; health and kills carry over
// Returns false without touching state when no chapter follows
func (gs *GameState) NextChapter() bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	next, ok := gs.phase.NextChapter()
	if !ok {
		return false
	}

	gs.playerPos, gs.hasPlayerPos = PlayerStart(), true
	gs.zombies = nil
	gs.bullets = nil
	gs.transitionLocked(next)
	log.Printf("Advanced to %s", next)
	return true
}

// EndGame enters a terminal outcome from an active phase
// Returns false if result is not an outcome or the session is not active
func (gs *GameState) EndGame(result GamePhase) bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if !result.IsTerminal() || !CanTransition(gs.phase, result) {
		return false
	}

	gs.zombies = nil
	gs.bullets = nil
	gs.objective, gs.hasObjective = "", false
	gs.transitionLocked(result)
	log.Printf("Game ended: %s", result)
	return true
}

// resetLocked restores session defaults without touching the phase
func (gs *GameState) resetLocked() {
	gs.playerHealth = constants.PlayerMaxHealth
	gs.playerPos, gs.hasPlayerPos = vmath.Vec3F{}, false
	gs.cameraPos, gs.hasCameraPos = vmath.Vec3F{}, false
	gs.kills = 0
	gs.objective, gs.hasObjective = "", false
	gs.zombies = nil
	gs.bullets = nil
	gs.bossHealth = constants.BossMaxHealth
	gs.bossLastAttack = time.Time{}
}

// transitionLocked records phase entry and notifies listeners
func (gs *GameState) transitionLocked(to GamePhase) {
	from := gs.phase
	gs.phase = to
	gs.phaseStart = gs.clock.Now()
	gs.phaseEpoch++
	gs.pushLocked(EventPhaseChanged, PhaseChange{From: from, To: to})
}

func (gs *GameState) pushLocked(t EventType, payload any) {
	if gs.queue == nil {
		return
	}
	gs.queue.Push(GameEvent{Type: t, Payload: payload, Timestamp: gs.clock.Now()})
}

// ===== PHASE ACCESSORS =====

// Phase returns the current game phase
func (gs *GameState) Phase() GamePhase {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.phase
}

// PhaseEpoch returns a counter that changes on every phase entry
func (gs *GameState) PhaseEpoch() uint64 {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.phaseEpoch
}

// PhaseSnapshot provides a consistent view of phase state
type PhaseSnapshot struct {
	Phase     GamePhase
	StartTime time.Time
	Duration  time.Duration
	Epoch     uint64
}

// ReadPhaseState returns a consistent snapshot of the current phase state
func (gs *GameState) ReadPhaseState(now time.Time) PhaseSnapshot {
	gs.mu.RLock()
	defer gs.mu.RUnlock()

	return PhaseSnapshot{
		Phase:     gs.phase,
		StartTime: gs.phaseStart,
		Duration:  now.Sub(gs.phaseStart),
		Epoch:     gs.phaseEpoch,
	}
}

// ===== PLAYER =====

// PlayerHealth returns current health in [0, 100]
func (gs *GameState) PlayerHealth() int {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.playerHealth
}

// PlayerPosition returns the position and false before a game starts
func (gs *GameState) PlayerPosition() (vmath.Vec3F, bool) {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.playerPos, gs.hasPlayerPos
}

// SetPlayerPosition moves the player
func (gs *GameState) SetPlayerPosition(pos vmath.Vec3F) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.playerPos, gs.hasPlayerPos = pos, true
}

// CameraPosition returns the derived camera position and false before the first frame
func (gs *GameState) CameraPosition() (vmath.Vec3F, bool) {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.cameraPos, gs.hasCameraPos
}

// SetCameraPosition stores the camera position
func (gs *GameState) SetCameraPosition(pos vmath.Vec3F) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.cameraPos, gs.hasCameraPos = pos, true
}

// DamagePlayer subtracts health, clamped at 0; negative damage is ignored
// Defeat is decided by the simulation driver, not here
func (gs *GameState) DamagePlayer(amount int) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if amount <= 0 {
		return
	}
	before := gs.playerHealth
	gs.playerHealth = max(0, gs.playerHealth-amount)
	if applied := before - gs.playerHealth; applied > 0 {
		gs.pushLocked(EventPlayerDamaged, applied)
	}
	log.Printf("Player took %d damage. Health: %d", amount, gs.playerHealth)
}

// HealPlayer adds health, clamped at 100; negative amounts are ignored
func (gs *GameState) HealPlayer(amount int) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.healLocked(amount)
}

func (gs *GameState) healLocked(amount int) {
	if amount <= 0 {
		return
	}
	gs.playerHealth = min(constants.PlayerMaxHealth, gs.playerHealth+amount)
	log.Printf("Player healed for %d. Health: %d", amount, gs.playerHealth)
}

// Kills returns the session kill count
func (gs *GameState) Kills() int {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.kills
}

// ===== ZOMBIES =====

// AddZombie appends a zombie; the caller guarantees a unique ID
func (gs *GameState) AddZombie(z Zombie) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	gs.zombies = append(gs.zombies, z)
	gs.pushLocked(EventZombieSpawned, z.ID)
}

// RemoveZombie deletes a zombie, counts the kill and heals the player
// Returns false if the ID is not present
func (gs *GameState) RemoveZombie(id string) bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if !lo.ContainsBy(gs.zombies, func(z Zombie) bool { return z.ID == id }) {
		return false
	}

	gs.zombies = lo.Reject(gs.zombies, func(z Zombie, _ int) bool { return z.ID == id })
	gs.kills++
	gs.healLocked(constants.KillHeal)
	gs.pushLocked(EventZombieKilled, id)
	log.Printf("Zombie removed. Total kills: %d", gs.kills)
	return true
}

// DamageZombie subtracts health from one zombie, clamped at 0
func (gs *GameState) DamageZombie(id string, amount int) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if amount <= 0 {
		return
	}
	if z := gs.zombieLocked(id); z != nil {
		z.Health = max(0, z.Health-amount)
		log.Printf("Zombie %s took %d damage", id, amount)
	}
}

// SetZombiePosition moves one zombie
func (gs *GameState) SetZombiePosition(id string, pos vmath.Vec3F) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if z := gs.zombieLocked(id); z != nil {
		z.Position = pos
	}
}

// MarkZombieAttack restarts one zombie's melee cooldown
func (gs *GameState) MarkZombieAttack(id string, t time.Time) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if z := gs.zombieLocked(id); z != nil {
		z.LastAttack = t
	}
}

// Zombie returns a copy of one zombie
func (gs *GameState) Zombie(id string) (Zombie, bool) {
	gs.mu.RLock()
	defer gs.mu.RUnlock()

	if z := gs.zombieLocked(id); z != nil {
		return *z, true
	}
	return Zombie{}, false
}

// Zombies returns a copy of the live zombies
func (gs *GameState) Zombies() []Zombie {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return append([]Zombie(nil), gs.zombies...)
}

// ZombieCount returns the number of live zombies
func (gs *GameState) ZombieCount() int {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return len(gs.zombies)
}

func (gs *GameState) zombieLocked(id string) *Zombie {
	_, idx, ok := lo.FindIndexOf(gs.zombies, func(z Zombie) bool { return z.ID == id })
	if !ok {
		return nil
	}
	return &gs.zombies[idx]
}

// ===== BULLETS =====

// FireBullet spawns a bullet at position travelling along direction
// Direction is normalized; speed is fixed. Returns the new bullet ID
func (gs *GameState) FireBullet(position, direction vmath.Vec3F) string {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	b := Bullet{
		ID:        NewEntityID(BulletIDPrefix),
		Position:  position,
		Direction: vmath.V3FNormalize(direction),
		Speed:     constants.BulletSpeed,
		Origin:    position,
		FiredAt:   gs.clock.Now(),
	}
	gs.bullets = append(gs.bullets, b)
	gs.pushLocked(EventBulletFired, b.ID)
	log.Printf("Fired bullet: %s", b.ID)
	return b.ID
}

// SetBulletPosition moves one bullet
func (gs *GameState) SetBulletPosition(id string, pos vmath.Vec3F) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	_, idx, ok := lo.FindIndexOf(gs.bullets, func(b Bullet) bool { return b.ID == id })
	if ok {
		gs.bullets[idx].Position = pos
	}
}

// RemoveBullet deletes a bullet; returns false if absent
func (gs *GameState) RemoveBullet(id string) bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	n := len(gs.bullets)
	gs.bullets = lo.Reject(gs.bullets, func(b Bullet, _ int) bool { return b.ID == id })
	return len(gs.bullets) != n
}

// Bullets returns a copy of the live bullets
func (gs *GameState) Bullets() []Bullet {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return append([]Bullet(nil), gs.bullets...)
}

// ===== BOSS =====

// BossHealth returns boss health in [0, 600]
func (gs *GameState) BossHealth() int {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.bossHealth
}

// DamageBoss subtracts boss health, clamped at 0
func (gs *GameState) DamageBoss(amount int) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if amount <= 0 {
		return
	}
	gs.bossHealth = min(constants.BossMaxHealth, max(0, gs.bossHealth-amount))
	gs.pushLocked(EventBossDamaged, gs.bossHealth)
	log.Printf("Boss took %d damage. Health: %d", amount, gs.bossHealth)
}

// BossLastAttack returns when the boss last hit the player
func (gs *GameState) BossLastAttack() time.Time {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.bossLastAttack
}

// MarkBossAttack restarts the boss attack cooldown
func (gs *GameState) MarkBossAttack(t time.Time) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.bossLastAttack = t
}

// BossActive reports whether the boss is present this frame
func (gs *GameState) BossActive() bool {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.phase == PhaseChapter3 && gs.bossHealth > 0
}

// ===== PACING =====

// SetSpawnInterval publishes the director's current spawn interval
func (gs *GameState) SetSpawnInterval(d time.Duration) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.spawnInterval = d
}

// SpawnInterval returns the last published spawn interval
func (gs *GameState) SpawnInterval() time.Duration {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.spawnInterval
}

// ===== OBJECTIVE =====

// SetCurrentObjective sets the player-facing goal text
func (gs *GameState) SetCurrentObjective(text string) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.objective, gs.hasObjective = text, true
}

// ClearCurrentObjective removes the goal text
func (gs *GameState) ClearCurrentObjective() {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.objective, gs.hasObjective = "", false
}

// Objective returns the goal text and false when none is set
func (gs *GameState) Objective() (string, bool) {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.objective, gs.hasObjective
}

// ===== SNAPSHOT =====

// GameSnapshot is a read-only copy of the store for renderers and the HUD feed
type GameSnapshot struct {
	Phase          GamePhase    `json:"phase"`
	PhaseElapsedMs int64        `json:"phase_elapsed_ms"`
	PlayerHealth   int          `json:"player_health"`
	PlayerPosition *vmath.Vec3F `json:"player_position"`
	CameraPosition *vmath.Vec3F `json:"camera_position"`
	Kills          int          `json:"kills"`
	BossHealth     int          `json:"boss_health"`
	BossActive     bool         `json:"boss_active"`
	BossPosition   vmath.Vec3F  `json:"boss_position"`
	Objective      *string      `json:"objective"`
	SpawnInterval  int64        `json:"spawn_interval_ms"`
	Zombies        []Zombie     `json:"zombies"`
	Bullets        []Bullet     `json:"bullets"`
}

// Snapshot returns a consistent copy of everything presentation needs
func (gs *GameState) Snapshot(now time.Time) GameSnapshot {
	gs.mu.RLock()
	defer gs.mu.RUnlock()

	snap := GameSnapshot{
		Phase:          gs.phase,
		PhaseElapsedMs: now.Sub(gs.phaseStart).Milliseconds(),
		PlayerHealth:   gs.playerHealth,
		Kills:          gs.kills,
		BossHealth:     gs.bossHealth,
		BossActive:     gs.phase == PhaseChapter3 && gs.bossHealth > 0,
		BossPosition:   BossPosition(),
		SpawnInterval:  gs.spawnInterval.Milliseconds(),
		Zombies:        append(make([]Zombie, 0, len(gs.zombies)), gs.zombies...),
		Bullets:        append(make([]Bullet, 0, len(gs.bullets)), gs.bullets...),
	}
	if gs.hasPlayerPos {
		p := gs.playerPos
		snap.PlayerPosition = &p
	}
	if gs.hasCameraPos {
		c := gs.cameraPos
		snap.CameraPosition = &c
	}
	if gs.hasObjective {
		o := gs.objective
		snap.Objective = &o
	}
	return snap
}
