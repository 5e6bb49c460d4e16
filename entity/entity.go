// Package entity holds the gameplay state machines
// Each entity owns at most one physics body and the visual handle renderers read
// Only the entity mutates its body; the orchestrator steps the physics world
package entity

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/arena-fighter/component"
	"github.com/lixenwraith/arena-fighter/core"
	"github.com/lixenwraith/arena-fighter/physics"
)

// Lifecycle carries identity and the disposal flag
// Deferred timers check Disposed before touching their owner
type Lifecycle struct {
	id       core.Entity
	disposed bool
}

// ID returns the entity identifier
func (l *Lifecycle) ID() core.Entity {
	return l.id
}

// Disposed reports whether the entity released its resources
func (l *Lifecycle) Disposed() bool {
	return l.disposed
}

// Target is anything a projectile or area shot can strike
type Target interface {
	ID() core.Entity
	Position() mgl64.Vec3
	// Targetable is false once the target is dying or disposed
	Targetable() bool
	// HitByShot applies a hit and reports whether it took effect
	HitByShot() bool
}

// TerrainCaster ray casts against static geometry
// Satisfied by *physics.World
type TerrainCaster interface {
	RayCast(from, to mgl64.Vec3, mask physics.Category) (physics.RayHit, bool)
}

// Rand is the random source entities draw from
// Satisfied by *math/rand/v2.Rand
type Rand interface {
	Float64() float64
}

// uniform returns a value in [-h, h)
func uniform(rng Rand, h float64) float64 {
	return (rng.Float64()*2 - 1) * h
}

// syncBody copies the body pose into the visual when the body is simulated
func syncBody(body *physics.Body, visual *component.Visual) {
	if body.InWorld() {
		component.Sync(body, visual)
	}
}
