package entity

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/arena-fighter/component"
	"github.com/lixenwraith/arena-fighter/core"
	"github.com/lixenwraith/arena-fighter/parameter"
	"github.com/lixenwraith/arena-fighter/physics"
	"github.com/lixenwraith/arena-fighter/vmath"
)

// TurretConfig holds turret tuning
type TurretConfig struct {
	Cost         int
	Range        float64
	Cooldown     float64
	HalfExtent   float64
	Height       float64
	TurnSpeed    float64
	MuzzleOffset float64
}

// DefaultTurretConfig returns the compiled-in turret tuning
func DefaultTurretConfig() TurretConfig {
	return TurretConfig{
		Cost:         parameter.TurretCost,
		Range:        parameter.TurretRange,
		Cooldown:     parameter.TurretCooldown,
		HalfExtent:   parameter.TurretHalfExtent,
		Height:       parameter.EnemyRestHeight,
		TurnSpeed:    parameter.TurretTurnSpeed,
		MuzzleOffset: parameter.TurretMuzzleOffset,
	}
}

// Launch is a projectile fire request from a turret
type Launch struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// Turret is a fixed emplacement that tracks the nearest enemy in range
// The last aim angle is held while no target is in range
type Turret struct {
	Lifecycle
	Body   *physics.Body
	Visual *component.Visual
	Anim   *component.Animator

	cfg   TurretConfig
	world *physics.World

	heading  float64
	aim      float64
	cooldown component.Cooldown
	target   Target
}

// NewTurret creates a turret at pos with a static body in world
func NewTurret(id core.Entity, world *physics.World, pos mgl64.Vec3, cfg TurretConfig, clips component.ClipLibrary) *Turret {
	pos[1] = cfg.Height
	body := physics.NewBox(physics.Static, pos, cfg.HalfExtent, cfg.HalfExtent, physics.ProfileStructure)
	world.AddBody(body)

	t := &Turret{
		Lifecycle: Lifecycle{id: id},
		Body:      body,
		Visual:    component.NewVisual(component.ColorNormal),
		Anim:      component.NewAnimator(clips),
		cfg:       cfg,
		world:     world,
	}
	component.Sync(body, t.Visual)
	return t
}

// Position returns the emplacement center
func (t *Turret) Position() mgl64.Vec3 {
	return t.Visual.Position
}

// Heading returns the current head yaw
func (t *Turret) Heading() float64 {
	return t.heading
}

// AimAngle returns the yaw the head is rotating toward
func (t *Turret) AimAngle() float64 {
	return t.aim
}

// Target returns the enemy selected on the last update, nil if none
func (t *Turret) Target() Target {
	return t.target
}

// Update scans for a target, slews the head and fires when ready
func (t *Turret) Update(dt float64, enemies []Target) (Launch, bool) {
	t.Anim.Update(dt)
	t.cooldown.Tick(dt)

	pos := t.Position()
	t.target = t.nearest(pos, enemies)

	var dir mgl64.Vec3
	ok := false
	if t.target != nil {
		if dir, ok = vmath.PlanarDirection(pos, t.target.Position()); ok {
			t.aim = vmath.Heading(dir)
		}
	}

	t.heading = vmath.RotateToward(t.heading, t.aim, t.cfg.TurnSpeed*dt)
	t.Visual.Aim = t.heading

	if !ok || t.cooldown.Active() {
		return Launch{}, false
	}

	t.cooldown.Start(t.cfg.Cooldown)
	t.Anim.Play(parameter.ClipTurretFire, false)
	return Launch{
		Origin:    pos.Add(dir.Mul(t.cfg.MuzzleOffset)),
		Direction: dir,
	}, true
}

// nearest returns the closest targetable enemy strictly inside range
// Ties keep the first candidate
func (t *Turret) nearest(pos mgl64.Vec3, enemies []Target) Target {
	var best Target
	bestDist := t.cfg.Range
	for _, e := range enemies {
		if !e.Targetable() {
			continue
		}
		if d := vmath.PlanarDistance(pos, e.Position()); d < bestDist {
			best, bestDist = e, d
		}
	}
	return best
}

// Occupies reports whether the turret stands on the grid cell of p
func (t *Turret) Occupies(p mgl64.Vec3) bool {
	pos := t.Position()
	return pos.X() == p.X() && pos.Z() == p.Z()
}

// Dispose releases the body, idempotent
func (t *Turret) Dispose() {
	if t.disposed {
		return
	}
	t.world.RemoveBody(t.Body)
	t.target = nil
	t.disposed = true
}
