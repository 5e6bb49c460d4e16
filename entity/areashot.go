package entity

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/arena-fighter/component"
	"github.com/lixenwraith/arena-fighter/core"
	"github.com/lixenwraith/arena-fighter/vmath"
)

// ShotResult lists what an area shot struck
type ShotResult struct {
	Enemies   []Target
	Spawners  []*Spawner
	Destroyed []*Spawner
}

// AreaShot is a materialized ground strike
// It resolves hits once, then only decays until its window ends
type AreaShot struct {
	Lifecycle
	Visual *component.Visual

	Point  mgl64.Vec3
	Radius float64

	decay    component.Cooldown
	resolved bool
}

// NewAreaShot creates an unresolved shot at point
func NewAreaShot(id core.Entity, point mgl64.Vec3, radius, decay float64) *AreaShot {
	a := &AreaShot{
		Lifecycle: Lifecycle{id: id},
		Visual:    component.NewVisual(component.ColorEffect),
		Point:     point,
		Radius:    radius,
	}
	a.Visual.Position = point
	a.decay.Start(decay)
	return a
}

// Resolved reports whether hits were already applied
func (a *AreaShot) Resolved() bool {
	return a.resolved
}

// Fade returns remaining visibility in [0, 1]
func (a *AreaShot) Fade() float64 {
	return 1 - a.decay.Progress()
}

// Resolve applies hits to enemies and active spawners within radius
// Only the first call has effect
func (a *AreaShot) Resolve(enemies []Target, spawners []*Spawner) (ShotResult, bool) {
	if a.resolved || a.disposed {
		return ShotResult{}, false
	}
	a.resolved = true

	var res ShotResult
	for _, e := range enemies {
		if !e.Targetable() || vmath.PlanarDistance(a.Point, e.Position()) > a.Radius {
			continue
		}
		if e.HitByShot() {
			res.Enemies = append(res.Enemies, e)
		}
	}
	for _, s := range spawners {
		if !s.Active() || vmath.PlanarDistance(a.Point, s.Position()) > a.Radius {
			continue
		}
		res.Spawners = append(res.Spawners, s)
		if s.Hit() {
			res.Destroyed = append(res.Destroyed, s)
		}
	}
	return res, true
}

// Update runs the decay window and disposes the shot when it ends
func (a *AreaShot) Update(dt float64) {
	if a.disposed {
		return
	}
	if a.decay.Tick(dt) || !a.decay.Active() {
		a.Dispose()
	}
}

// Dispose ends the effect, idempotent
func (a *AreaShot) Dispose() {
	a.disposed = true
}
