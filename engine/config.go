package engine

import (
	"github.com/lixenwraith/arena-fighter/component"
	"github.com/lixenwraith/arena-fighter/entity"
	"github.com/lixenwraith/arena-fighter/parameter"
	"github.com/lixenwraith/arena-fighter/physics"
	"github.com/lixenwraith/arena-fighter/session"
)

// ArenaConfig holds terrain and spawner layout
type ArenaConfig struct {
	HalfExtent         float64
	WallThickness      float64
	ObstacleCount      int
	ObstacleHalfExtent float64
	ClearZone          float64

	SpawnerCount               int
	SpawnerMinPlayerDistance   float64
	SpawnerPlacementHalfExtent float64
	SpawnerPlacementRetries    int
}

// ScoreConfig holds the awards credited by combat
type ScoreConfig struct {
	EnemyHit         int
	ProjectileHit    int
	SpawnerDestroyed int
}

// Config is the full simulation configuration
type Config struct {
	FixedTimeStep float64
	MaxFrameDelta float64
	MaxSubSteps   int
	Seed          uint64

	// ShotDecay is how long a resolved AreaShot stays visible
	ShotDecay float64

	Arena      ArenaConfig
	Score      ScoreConfig
	Physics    physics.Config
	Session    session.Config
	Player     entity.PlayerConfig
	Enemy      entity.EnemyConfig
	Spawner    entity.SpawnerConfig
	Turret     entity.TurretConfig
	Projectile entity.ProjectileConfig
	Clips      component.ClipLibrary
}

// DefaultConfig returns the compiled-in simulation configuration
func DefaultConfig() Config {
	return Config{
		FixedTimeStep: parameter.FixedTimeStep,
		MaxFrameDelta: parameter.MaxFrameDelta,
		MaxSubSteps:   parameter.MaxSubSteps,
		Seed:          parameter.DefaultSeed,
		ShotDecay:     parameter.ShotDecay,
		Arena: ArenaConfig{
			HalfExtent:                 parameter.ArenaHalfExtent,
			WallThickness:              parameter.WallThickness,
			ObstacleCount:              parameter.ObstacleCount,
			ObstacleHalfExtent:         parameter.ObstacleHalfExtent,
			ClearZone:                  parameter.ObstacleClearZone,
			SpawnerCount:               parameter.SpawnerCount,
			SpawnerMinPlayerDistance:   parameter.SpawnerMinPlayerDistance,
			SpawnerPlacementHalfExtent: parameter.SpawnerPlacementHalfExtent,
			SpawnerPlacementRetries:    parameter.SpawnerPlacementRetries,
		},
		Score: ScoreConfig{
			EnemyHit:         parameter.ScoreEnemyHit,
			ProjectileHit:    parameter.ScoreProjectileHit,
			SpawnerDestroyed: parameter.ScoreSpawnerDestroyed,
		},
		Physics:    physics.DefaultConfig(),
		Session:    session.DefaultConfig(),
		Player:     entity.DefaultPlayerConfig(),
		Enemy:      entity.DefaultEnemyConfig(),
		Spawner:    entity.DefaultSpawnerConfig(),
		Turret:     entity.DefaultTurretConfig(),
		Projectile: entity.DefaultProjectileConfig(),
		Clips:      entity.DefaultClips(),
	}
}
