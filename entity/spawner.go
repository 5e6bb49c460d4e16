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

// SpawnerState is the lifecycle state of a spawner
type SpawnerState uint8

const (
	SpawnerActive SpawnerState = iota
	SpawnerDestroyed
)

func (s SpawnerState) String() string {
	if s == SpawnerDestroyed {
		return "destroyed"
	}
	return "active"
}

// SpawnerConfig holds spawner tuning
type SpawnerConfig struct {
	Health      int
	Interval    float64
	SpawnRadius float64
	HalfExtent  float64
	// Clearance excludes spawn points this close to the player
	Clearance    float64
	SpawnRetries int
}

// DefaultSpawnerConfig returns the compiled-in spawner tuning
func DefaultSpawnerConfig() SpawnerConfig {
	return SpawnerConfig{
		Health:       parameter.SpawnerHealth,
		Interval:     parameter.SpawnerInterval,
		SpawnRadius:  parameter.SpawnerSpawnRadius,
		HalfExtent:   parameter.SpawnerHalfExtent,
		Clearance:    parameter.EnemySpawnClearance,
		SpawnRetries: parameter.EnemySpawnRetries,
	}
}

// Spawner is a stationary structure that periodically produces enemies
// Destroyed spawners stop producing; enemies already spawned are unaffected
type Spawner struct {
	Lifecycle
	Body   *physics.Body
	Visual *component.Visual

	cfg   SpawnerConfig
	world *physics.World
	rng   Rand

	state  SpawnerState
	health int
	timer  float64
}

// NewSpawner creates a spawner at pos with a static body in world
func NewSpawner(id core.Entity, world *physics.World, pos mgl64.Vec3, cfg SpawnerConfig, rng Rand) *Spawner {
	body := physics.NewBox(physics.Static, pos, cfg.HalfExtent, cfg.HalfExtent, physics.ProfileStructure)
	world.AddBody(body)

	s := &Spawner{
		Lifecycle: Lifecycle{id: id},
		Body:      body,
		Visual:    component.NewVisual(component.ColorNormal),
		cfg:       cfg,
		world:     world,
		rng:       rng,
		health:    cfg.Health,
		timer:     cfg.Interval,
	}
	component.Sync(body, s.Visual)
	return s
}

// State returns the lifecycle state
func (s *Spawner) State() SpawnerState {
	return s.state
}

// Health returns remaining hit points
func (s *Spawner) Health() int {
	return s.health
}

// Position returns the structure center
func (s *Spawner) Position() mgl64.Vec3 {
	return s.Visual.Position
}

// Active reports whether the spawner still produces enemies and takes hits
func (s *Spawner) Active() bool {
	return s.state == SpawnerActive
}

// Update counts down the spawn timer
// Returns a spawn point when an enemy should be produced this tick
func (s *Spawner) Update(dt float64, player mgl64.Vec3) (mgl64.Vec3, bool) {
	if s.state != SpawnerActive {
		return mgl64.Vec3{}, false
	}
	s.timer -= dt
	if s.timer > 0 {
		return mgl64.Vec3{}, false
	}
	s.timer = s.cfg.Interval
	return s.spawnPoint(player)
}

// spawnPoint picks a point within the spawn radius away from the player
// No point after the retry bound skips this cycle
func (s *Spawner) spawnPoint(player mgl64.Vec3) (mgl64.Vec3, bool) {
	center := s.Position()
	// Points start outside the structure footprint
	inner := math.Min(s.cfg.HalfExtent*math.Sqrt2, s.cfg.SpawnRadius)
	for i := 0; i < max(s.cfg.SpawnRetries, 1); i++ {
		angle := s.rng.Float64() * 2 * math.Pi
		dist := inner + s.rng.Float64()*(s.cfg.SpawnRadius-inner)
		p := center.Add(vmath.HeadingDirection(angle).Mul(dist))
		p[1] = 0
		if vmath.PlanarDistance(p, player) >= s.cfg.Clearance {
			return p, true
		}
	}
	return mgl64.Vec3{}, false
}

// Hit removes one hit point
// Returns true only on the transition to Destroyed
func (s *Spawner) Hit() bool {
	if s.state != SpawnerActive {
		return false
	}
	s.health--
	if s.health > 0 {
		return false
	}
	s.health = 0
	s.state = SpawnerDestroyed
	s.Visual.Color = component.ColorDestroyed
	s.world.RemoveBody(s.Body)
	return true
}

// Dispose releases the body, idempotent
func (s *Spawner) Dispose() {
	if s.disposed {
		return
	}
	s.world.RemoveBody(s.Body)
	s.state = SpawnerDestroyed
	s.disposed = true
}
