package systems

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/undead/constants"
	"github.com/lixenwraith/undead/engine"
	"github.com/lixenwraith/undead/status"
)

// Director drives session pacing: zombie spawns, chapter progression and difficulty
// Runs three scheduler tasks plus a per-frame pass for phase-entry effects and defeat
// Single-goroutine: all methods are called from the main loop
type Director struct {
	ctx   *engine.GameContext
	sched *engine.Scheduler

	tasks []engine.TaskID

	// Pacing state, survives chapter transitions
	spawnInterval time.Duration
	lastSpawn     time.Time
	lastEpoch     uint64

	// Cached metric pointers
	statSpawns   *atomic.Int64
	statInterval *atomic.Int64
	statAdvances *atomic.Int64
	statPhase    *status.AtomicString
}

// NewDirector creates a director; tasks start with Start
func NewDirector(ctx *engine.GameContext, sched *engine.Scheduler) *Director {
	return &Director{
		ctx:           ctx,
		sched:         sched,
		spawnInterval: 2000 * time.Millisecond,
		statSpawns:    ctx.Status.Ints.Get(status.KeySpawns),
		statInterval:  ctx.Status.Ints.Get(status.KeySpawnInterval),
		statAdvances:  ctx.Status.Ints.Get(status.KeyChapterAdvances),
		statPhase:     ctx.Status.Strings.Get(status.KeyPhase),
	}
}

// Start registers the spawn, phase and difficulty tasks; repeated calls are ignored
func (d *Director) Start() {
	if len(d.tasks) > 0 {
		return
	}

	d.syncPhase()
	d.tasks = append(d.tasks,
		d.sched.Every("spawn", constants.SpawnPollInterval, d.spawnTick),
		d.sched.Every("phase", constants.PhasePollInterval, d.phaseTick),
		d.sched.Every("difficulty", constants.DifficultyInterval, d.difficultyTick),
	)
	log.Printf("Director started")
}

// Stop cancels every task; safe to call more than once
func (d *Director) Stop() {
	if len(d.tasks) == 0 {
		return
	}
	for _, id := range d.tasks {
		d.sched.Cancel(id)
	}
	d.tasks = nil
	log.Printf("Director stopped")
}

// Running reports whether tasks are registered
func (d *Director) Running() bool {
	return len(d.tasks) > 0
}

// SpawnInterval returns the current spawn interval
func (d *Director) SpawnInterval() time.Duration {
	return d.spawnInterval
}

// Priority returns the system's priority
func (d *Director) Priority() int {
	return constants.PriorityDirector
}

// Update applies phase-entry effects and the terminal check every frame
func (d *Director) Update(now time.Time, dt time.Duration) {
	d.syncPhase()
	d.CheckTerminal()
}

// CheckTerminal ends the game in defeat when the player died in an active phase
// Returns true if this call entered defeat
func (d *Director) CheckTerminal() bool {
	state := d.ctx.State
	if !state.Phase().IsActive() || state.PlayerHealth() > 0 {
		return false
	}
	return state.EndGame(engine.PhaseDefeat)
}

// syncPhase runs phase-entry effects once per entry, detected by epoch change
func (d *Director) syncPhase() {
	state := d.ctx.State
	epoch := state.PhaseEpoch()
	if epoch == d.lastEpoch {
		return
	}
	d.lastEpoch = epoch

	phase := state.Phase()
	d.statPhase.Store(phase.String())

	cfg, ok := phase.Config()
	if !ok {
		return
	}
	state.SetCurrentObjective(cfg.Objective)
	d.setInterval(cfg.SpawnInterval)
	log.Printf("Entered %s: %q, spawn interval %v", phase, cfg.Objective, cfg.SpawnInterval)
}

func (d *Director) setInterval(interval time.Duration) {
	d.spawnInterval = interval
	d.statInterval.Store(interval.Milliseconds())
	d.ctx.State.SetSpawnInterval(interval)
}

// spawnTick adds one zombie when the interval elapsed and the cap allows
func (d *Director) spawnTick(now time.Time) {
	d.syncPhase()
	defer d.CheckTerminal()

	state := d.ctx.State
	phase := state.Phase()
	if !phase.IsActive() {
		return
	}
	if now.Sub(d.lastSpawn) <= d.spawnInterval {
		return
	}
	if state.ZombieCount() >= constants.ZombieCap {
		return
	}

	d.lastSpawn = now
	pos := SpawnPosition(phase, d.ctx.Rand)
	z := engine.NewZombie(engine.NewEntityID(engine.ZombieIDPrefix), pos)
	state.AddZombie(z)
	d.statSpawns.Add(1)
	log.Printf("Spawned zombie %s at (%.1f, %.1f, %.1f)", z.ID, pos.X, pos.Y, pos.Z)
}

// phaseTick advances timed chapters and ends the boss fight
func (d *Director) phaseTick(now time.Time) {
	d.syncPhase()
	defer d.CheckTerminal()

	state := d.ctx.State
	ps := state.ReadPhaseState(now)

	switch ps.Phase {
	case engine.PhasePrologue, engine.PhaseChapter1, engine.PhaseChapter2:
		cfg, _ := ps.Phase.Config()
		if ps.Duration > cfg.Duration && state.NextChapter() {
			d.statAdvances.Add(1)
			d.syncPhase()
		}
	case engine.PhaseChapter3:
		if state.BossHealth() <= 0 {
			state.EndGame(engine.PhaseVictory)
		}
	}
}

// difficultyTick shortens the spawn interval toward the floor
func (d *Director) difficultyTick(now time.Time) {
	d.syncPhase()
	defer d.CheckTerminal()

	if d.spawnInterval > constants.SpawnIntervalFloor {
		d.setInterval(max(constants.SpawnIntervalFloor, d.spawnInterval-constants.SpawnIntervalStep))
	}
}
