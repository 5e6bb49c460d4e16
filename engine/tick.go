package engine

import (
	"github.com/lixenwraith/arena-fighter/core"
	"github.com/lixenwraith/arena-fighter/entity"
)

// Tick runs one frame with the measured wall-clock delta in seconds
//
// Order:
//  1. clamp the delta and advance the frame counter
//  2. step physics with the fixed-step accumulator
//  3. dispatch queued events
//  4. update systems by priority (entities, sync, timers, shot resolution)
//  5. sweep pending and disposed entities
//  6. publish the snapshot
func (w *World) Tick(measured float64, in core.Intent) {
	w.RunSafe(func() {
		w.TickLocked(measured, in)
	})
}

// TickLocked runs one frame assuming the caller holds the update lock
func (w *World) TickLocked(measured float64, in core.Intent) {
	w.Time.Update(measured, w.cfg.MaxFrameDelta)
	w.intent = in

	w.Time.Substeps = w.Physics.Step(w.cfg.FixedTimeStep, w.Time.DeltaTime, w.cfg.MaxSubSteps)

	w.router.DispatchAll()

	w.mu.RLock()
	systems := w.systems
	w.mu.RUnlock()
	for _, s := range systems {
		s.Update()
	}

	w.Sweep()
	w.snapshot.Store(w.buildSnapshot())
}

// Sweep merges pending entities and drops disposed ones
// Removal from the collections happens only here
func (w *World) Sweep() {
	w.enemies = compact(w.enemies, w.pendingEnemies, func(e *entity.Enemy) bool {
		return !e.Disposed()
	})
	w.pendingEnemies = w.pendingEnemies[:0]

	w.spawners = compact(w.spawners, nil, func(s *entity.Spawner) bool {
		if s.Active() && !s.Disposed() {
			return true
		}
		s.Dispose()
		return false
	})

	w.turrets = compact(w.turrets, w.pendingTurrets, func(t *entity.Turret) bool {
		return !t.Disposed()
	})
	w.pendingTurrets = w.pendingTurrets[:0]

	w.projectiles = compact(w.projectiles, w.pendingProjectiles, func(p *entity.Projectile) bool {
		if p.Alive() {
			return true
		}
		p.Dispose()
		return false
	})
	w.pendingProjectiles = w.pendingProjectiles[:0]

	w.shots = compact(w.shots, w.pendingShots, func(a *entity.AreaShot) bool {
		return !a.Disposed()
	})
	w.pendingShots = w.pendingShots[:0]
}

// compact keeps the live items of list followed by the live pending items
// The storage of list is reused; vacated slots are zeroed
func compact[T any](list, pending []T, keep func(T) bool) []T {
	n := len(list)
	out := list[:0]
	for _, v := range list {
		if keep(v) {
			out = append(out, v)
		}
	}
	for _, v := range pending {
		if keep(v) {
			out = append(out, v)
		}
	}
	if len(out) < n {
		clear(list[len(out):n])
	}
	return out
}
