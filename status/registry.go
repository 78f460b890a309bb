package status

import "sync/atomic"

// Metric keys published by the simulation
const (
	KeyFrameTicks      = "engine.frame_ticks"
	KeySpawns          = "sim.spawns"
	KeySpawnInterval   = "sim.spawn_interval_ms"
	KeyChapterAdvances = "sim.chapter_advances"
	KeyShots           = "player.shots"
	KeyPhase           = "game.phase"
	KeyAudioEnabled    = "audio.enabled"
	KeyHUDClients      = "hud.clients"
	KeyFPS             = "render.fps"
)

// Registry is the central metrics facade
// Publishers cache pointers at construction; per-frame code writes straight to the atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Snapshot copies every metric into a plain map keyed by metric name
// Used by the HUD feed for JSON output
func (r *Registry) Snapshot() map[string]any {
	out := make(map[string]any, r.TotalCount())
	r.Bools.Range(func(key string, ptr *atomic.Bool) {
		out[key] = ptr.Load()
	})
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		out[key] = ptr.Load()
	})
	r.Floats.Range(func(key string, ptr *AtomicFloat) {
		out[key] = ptr.Get()
	})
	r.Strings.Range(func(key string, ptr *AtomicString) {
		out[key] = ptr.Load()
	})
	return out
}
