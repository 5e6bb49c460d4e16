package entity

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/arena-fighter/component"
	"github.com/lixenwraith/arena-fighter/core"
	"github.com/lixenwraith/arena-fighter/parameter"
	"github.com/lixenwraith/arena-fighter/physics"
	"github.com/lixenwraith/arena-fighter/vmath"
)

// ProjectileConfig holds projectile tuning
type ProjectileConfig struct {
	Speed       float64
	MaxDistance float64
	HitRadius   float64
}

// DefaultProjectileConfig returns the compiled-in projectile tuning
func DefaultProjectileConfig() ProjectileConfig {
	return ProjectileConfig{
		Speed:       parameter.ProjectileSpeed,
		MaxDistance: parameter.ProjectileMaxDistance,
		HitRadius:   parameter.ProjectileHitRadius,
	}
}

// Impact describes how a projectile ended
type Impact struct {
	Point mgl64.Vec3
	// Target is set on a target hit; Effective is whether the hit took effect
	Target    Target
	Effective bool
	Terrain   bool
	Expired   bool
}

// Projectile travels in a straight line without a physics body
// It ends on the first target or terrain crossed, or at max distance
type Projectile struct {
	Lifecycle
	Visual *component.Visual

	cfg ProjectileConfig

	origin    mgl64.Vec3
	direction mgl64.Vec3
	position  mgl64.Vec3
	traveled  float64
	alive     bool
}

// NewProjectile creates a live projectile; a degenerate direction yields a dead one
func NewProjectile(id core.Entity, origin, direction mgl64.Vec3, cfg ProjectileConfig) *Projectile {
	dir, ok := vmath.SafeNormalize(direction)
	p := &Projectile{
		Lifecycle: Lifecycle{id: id},
		Visual:    component.NewVisual(component.ColorEffect),
		cfg:       cfg,
		origin:    origin,
		direction: dir,
		position:  origin,
		alive:     ok,
	}
	p.Visual.Position = origin
	p.Visual.Orientation = vmath.HeadingQuat(vmath.Heading(dir))
	return p
}

// Alive reports whether the projectile is still in flight
func (p *Projectile) Alive() bool {
	return p.alive
}

// Position returns the current position
func (p *Projectile) Position() mgl64.Vec3 {
	return p.position
}

// Direction returns the unit travel direction
func (p *Projectile) Direction() mgl64.Vec3 {
	return p.direction
}

// Traveled returns the distance covered so far
func (p *Projectile) Traveled() float64 {
	return p.traveled
}

// MaxTicks returns the upper bound of updates before expiry at a fixed dt
func (p *Projectile) MaxTicks(dt float64) int {
	return int(math.Ceil(p.cfg.MaxDistance / (p.cfg.Speed * dt)))
}

// Update advances the projectile and runs the swept hit tests
// Returns the impact on the tick the projectile ends
func (p *Projectile) Update(dt float64, targets []Target, terrain TerrainCaster) (Impact, bool) {
	if !p.alive {
		return Impact{}, false
	}

	step := p.cfg.Speed * dt
	prev := p.position
	next := prev.Add(p.direction.Mul(step))
	p.traveled += step

	var hit Target
	hitT := math.Inf(1)
	for _, t := range targets {
		if !t.Targetable() {
			continue
		}
		if at, ok := vmath.SegmentSphereHit(prev, next, t.Position(), p.cfg.HitRadius); ok && at < hitT {
			hit, hitT = t, at
		}
	}

	if terrain != nil {
		if rh, ok := terrain.RayCast(prev, next, physics.CategoryTerrain); ok && rh.Fraction < hitT {
			p.end(rh.Point)
			return Impact{Point: rh.Point, Terrain: true}, true
		}
	}

	if hit != nil {
		point := prev.Add(next.Sub(prev).Mul(hitT))
		p.end(point)
		return Impact{Point: point, Target: hit, Effective: hit.HitByShot()}, true
	}

	p.position = next
	p.Visual.Position = next
	if p.traveled >= p.cfg.MaxDistance-vmath.Epsilon {
		p.alive = false
		return Impact{Point: next, Expired: true}, true
	}
	return Impact{}, false
}

func (p *Projectile) end(at mgl64.Vec3) {
	p.position = at
	p.Visual.Position = at
	p.alive = false
}

// Dispose ends flight, idempotent
func (p *Projectile) Dispose() {
	p.alive = false
	p.disposed = true
}
