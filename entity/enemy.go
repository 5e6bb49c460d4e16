package entity

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/arena-fighter/component"
	"github.com/lixenwraith/arena-fighter/core"
	"github.com/lixenwraith/arena-fighter/parameter"
	"github.com/lixenwraith/arena-fighter/physics"
	"github.com/lixenwraith/arena-fighter/vmath"
)

// EnemyState is the health state of an enemy
type EnemyState uint8

const (
	EnemyAlive EnemyState = iota
	EnemyDying
	EnemyDisposed
)

func (s EnemyState) String() string {
	switch s {
	case EnemyAlive:
		return "alive"
	case EnemyDying:
		return "dying"
	case EnemyDisposed:
		return "disposed"
	}
	return "unknown"
}

// Behavior is the movement sub-state of a live enemy
type Behavior uint8

const (
	BehaviorWandering Behavior = iota
	BehaviorChasing
)

func (b Behavior) String() string {
	if b == BehaviorChasing {
		return "chasing"
	}
	return "wandering"
}

// EnemyConfig holds enemy tuning
type EnemyConfig struct {
	Radius     float64
	RestHeight float64

	ChaseSpeed       float64
	WanderSpeed      float64
	ChaseRadius      float64
	WanderInterval   float64
	ArrivalTolerance float64
	WanderHalfExtent float64
	WanderRetries    int
	// WanderAvoidRadius re-rolls wander targets this close to the player
	WanderAvoidRadius float64

	DeathDuration    float64
	KnockbackLateral float64
	KnockbackUp      float64
}

// DefaultEnemyConfig returns the compiled-in enemy tuning
func DefaultEnemyConfig() EnemyConfig {
	return EnemyConfig{
		Radius:            parameter.EnemyRadius,
		RestHeight:        parameter.EnemyRestHeight,
		ChaseSpeed:        parameter.EnemyChaseSpeed,
		WanderSpeed:       parameter.EnemyWanderSpeed,
		ChaseRadius:       parameter.EnemyChaseRadius,
		WanderInterval:    parameter.EnemyWanderInterval,
		ArrivalTolerance:  parameter.EnemyArrivalTolerance,
		WanderHalfExtent:  parameter.EnemyWanderHalfExtent,
		WanderRetries:     parameter.EnemyWanderRetries,
		WanderAvoidRadius: parameter.ShotRange,
		DeathDuration:     parameter.EnemyDeathDuration,
		KnockbackLateral:  parameter.EnemyKnockbackLateral,
		KnockbackUp:       parameter.EnemyKnockbackUp,
	}
}

// Enemy chases the player when close and wanders otherwise
// A hit flips the body to dynamic and starts the death timer; the flip is one-way
type Enemy struct {
	Lifecycle
	Body   *physics.Body
	Visual *component.Visual

	cfg   EnemyConfig
	world *physics.World
	rng   Rand

	state    EnemyState
	behavior Behavior

	wanderTarget mgl64.Vec3
	hasWander    bool
	wanderTimer  float64
	deathTimer   float64
}

// NewEnemy creates an enemy at pos and adds its kinematic body to world
func NewEnemy(id core.Entity, world *physics.World, pos mgl64.Vec3, cfg EnemyConfig, rng Rand) *Enemy {
	pos[1] = cfg.RestHeight
	body := physics.NewCircle(physics.Kinematic, pos, cfg.Radius, physics.ProfileEnemy)
	world.AddBody(body)

	e := &Enemy{
		Lifecycle: Lifecycle{id: id},
		Body:      body,
		Visual:    component.NewVisual(component.ColorNormal),
		cfg:       cfg,
		world:     world,
		rng:       rng,
	}
	component.Sync(body, e.Visual)
	return e
}

// State returns the health state
func (e *Enemy) State() EnemyState {
	return e.state
}

// Behavior returns the current movement behavior
func (e *Enemy) Behavior() Behavior {
	return e.behavior
}

// WanderTarget returns the current wander destination and whether one is set
func (e *Enemy) WanderTarget() (mgl64.Vec3, bool) {
	return e.wanderTarget, e.hasWander
}

// Position returns the body position
func (e *Enemy) Position() mgl64.Vec3 {
	return e.Body.Position()
}

// Targetable reports whether the enemy can still be hit
func (e *Enemy) Targetable() bool {
	return e.state == EnemyAlive
}

// Update advances behavior or the death timer
func (e *Enemy) Update(dt float64, player mgl64.Vec3) {
	switch e.state {
	case EnemyDisposed:
		return
	case EnemyDying:
		e.deathTimer += dt
		if e.deathTimer >= e.cfg.DeathDuration {
			e.Dispose()
		}
		return
	}

	pos := e.Body.Position()
	if vmath.PlanarDistance(pos, player) < e.cfg.ChaseRadius {
		e.behavior = BehaviorChasing
		e.moveToward(pos, player, e.cfg.ChaseSpeed)
		return
	}

	if e.behavior == BehaviorChasing {
		e.behavior = BehaviorWandering
		e.hasWander = false
	}

	e.wanderTimer -= dt
	if !e.hasWander || e.wanderTimer <= 0 ||
		vmath.PlanarDistance(pos, e.wanderTarget) <= e.cfg.ArrivalTolerance {
		e.pickWanderTarget(player)
		e.wanderTimer = e.cfg.WanderInterval
	}
	e.moveToward(pos, e.wanderTarget, e.cfg.WanderSpeed)
}

// pickWanderTarget rolls a point in the wander area away from the player
// After the retry bound the last roll is kept
func (e *Enemy) pickWanderTarget(player mgl64.Vec3) {
	h := e.cfg.WanderHalfExtent
	retries := max(e.cfg.WanderRetries, 1)
	for i := 0; i < retries; i++ {
		e.wanderTarget = mgl64.Vec3{uniform(e.rng, h), 0, uniform(e.rng, h)}
		if vmath.PlanarDistance(e.wanderTarget, player) >= e.cfg.WanderAvoidRadius {
			break
		}
	}
	e.hasWander = true
}

func (e *Enemy) moveToward(pos, target mgl64.Vec3, speed float64) {
	dir, ok := vmath.PlanarDirection(pos, target)
	if !ok {
		e.Body.SetVelocity(mgl64.Vec3{})
		return
	}
	e.Body.SetVelocity(dir.Mul(speed))
	e.Body.SetHeading(vmath.Heading(dir))
}

// HitByShot starts the death sequence
// Returns false without effect unless the enemy is alive
func (e *Enemy) HitByShot() bool {
	if e.state != EnemyAlive {
		return false
	}
	e.state = EnemyDying
	e.deathTimer = 0
	e.Body.SetVelocity(mgl64.Vec3{})
	e.Body.SetType(physics.Dynamic)

	k := e.cfg.KnockbackLateral
	impulse := mgl64.Vec3{uniform(e.rng, k/2), e.cfg.KnockbackUp, uniform(e.rng, k/2)}
	e.Body.ApplyImpulse(impulse, e.Body.Position())
	e.Visual.Color = component.ColorHit
	return true
}

// SyncVisual copies the body pose to the visual
func (e *Enemy) SyncVisual() {
	syncBody(e.Body, e.Visual)
}

// Dispose removes the body from the world, idempotent
func (e *Enemy) Dispose() {
	if e.disposed {
		return
	}
	e.world.RemoveBody(e.Body)
	e.state = EnemyDisposed
	e.disposed = true
}
