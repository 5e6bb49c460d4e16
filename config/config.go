// Package config loads runtime settings from defaults, arena.toml and ARENA_ environment variables
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/lixenwraith/arena-fighter/audio"
	"github.com/lixenwraith/arena-fighter/engine"
	"github.com/lixenwraith/arena-fighter/parameter"
)

// FileName is the config file name searched in the config directory, without extension
const FileName = "arena"

// EnvPrefix prefixes every environment override, e.g. ARENA_PLAYER_SPEED
const EnvPrefix = "ARENA"

// LogConfig selects log level and destination
type LogConfig struct {
	Level string
	// File receives logs when set; otherwise logs go to stderr
	File string
}

// NetworkConfig holds websocket bridge settings
type NetworkConfig struct {
	Addr              string
	BroadcastInterval time.Duration
	WriteTimeout      time.Duration
	PingInterval      time.Duration
	PongTimeout       time.Duration
	ReadLimit         int64
}

// InputConfig holds keyboard settings
type InputConfig struct {
	// HoldWindow keeps a movement key active after its last repeat
	HoldWindow time.Duration
	// Keys overrides bindings, key name to action name
	Keys map[string]string
}

// Config is the full process configuration
type Config struct {
	Engine  engine.Config
	Log     LogConfig
	Audio   audio.Config
	Network NetworkConfig
	Input   InputConfig

	// TickInterval is the wall-clock frame period
	TickInterval time.Duration

	// Source is the config file used, empty when running on defaults
	Source string
}

// Load reads configuration from arena.toml in configDir and the environment
// A missing file is not an error; a malformed one is
func Load(configDir string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(FileName)
	v.SetConfigType("toml")
	if configDir != "" {
		v.AddConfigPath(configDir)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := build(v)
	cfg.Source = v.ConfigFileUsed()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := engine.DefaultConfig()
	a := audio.DefaultConfig()

	v.SetDefault("engine.seed", d.Seed)
	v.SetDefault("engine.tick_interval", parameter.TickInterval)
	v.SetDefault("engine.fixed_time_step", d.FixedTimeStep)
	v.SetDefault("engine.max_frame_delta", d.MaxFrameDelta)
	v.SetDefault("engine.max_sub_steps", d.MaxSubSteps)

	v.SetDefault("arena.half_extent", d.Arena.HalfExtent)
	v.SetDefault("arena.wall_thickness", d.Arena.WallThickness)
	v.SetDefault("arena.obstacle_count", d.Arena.ObstacleCount)
	v.SetDefault("arena.obstacle_half_extent", d.Arena.ObstacleHalfExtent)
	v.SetDefault("arena.clear_zone", d.Arena.ClearZone)
	v.SetDefault("arena.spawner_count", d.Arena.SpawnerCount)
	v.SetDefault("arena.spawner_min_player_distance", d.Arena.SpawnerMinPlayerDistance)

	v.SetDefault("player.speed", d.Player.Speed)
	v.SetDefault("player.rotation_speed", d.Player.RotationSpeed)

	v.SetDefault("weapon.range", d.Player.ShotRange)
	v.SetDefault("weapon.cooldown", d.Player.ShotCooldown)
	v.SetDefault("weapon.delay", d.Player.ShotDelay)
	v.SetDefault("weapon.decay", d.ShotDecay)
	v.SetDefault("weapon.base_radius", d.Session.ShotBaseRadius)

	v.SetDefault("enemy.chase_speed", d.Enemy.ChaseSpeed)
	v.SetDefault("enemy.wander_speed", d.Enemy.WanderSpeed)
	v.SetDefault("enemy.chase_radius", d.Enemy.ChaseRadius)
	v.SetDefault("enemy.wander_interval", d.Enemy.WanderInterval)
	v.SetDefault("enemy.death_duration", d.Enemy.DeathDuration)

	v.SetDefault("spawner.health", d.Spawner.Health)
	v.SetDefault("spawner.interval", d.Spawner.Interval)
	v.SetDefault("spawner.spawn_radius", d.Spawner.SpawnRadius)

	v.SetDefault("turret.cost", d.Turret.Cost)
	v.SetDefault("turret.range", d.Turret.Range)
	v.SetDefault("turret.cooldown", d.Turret.Cooldown)
	v.SetDefault("turret.turn_speed", d.Turret.TurnSpeed)

	v.SetDefault("projectile.speed", d.Projectile.Speed)
	v.SetDefault("projectile.max_distance", d.Projectile.MaxDistance)
	v.SetDefault("projectile.hit_radius", d.Projectile.HitRadius)

	v.SetDefault("economy.starting_score", d.Session.StartingScore)
	v.SetDefault("economy.enemy_hit", d.Score.EnemyHit)
	v.SetDefault("economy.projectile_hit", d.Score.ProjectileHit)
	v.SetDefault("economy.spawner_destroyed", d.Score.SpawnerDestroyed)
	v.SetDefault("economy.radius_cost", d.Session.RadiusCost)
	v.SetDefault("economy.radius_step", d.Session.RadiusStep)
	v.SetDefault("economy.radius_max", d.Session.RadiusMax)
	v.SetDefault("economy.cooldown_cost", d.Session.CooldownCost)
	v.SetDefault("economy.cooldown_max_level", d.Session.CooldownMaxLevel)
	v.SetDefault("economy.cooldown_per_level", d.Session.CooldownPerLevel)
	v.SetDefault("economy.cooldown_max_reduction", d.Session.CooldownMaxReduction)

	v.SetDefault("audio.enabled", a.Enabled)
	v.SetDefault("audio.master_volume", a.MasterVolume)
	v.SetDefault("audio.sample_rate", a.SampleRate)
	v.SetDefault("audio.buffer_length", a.BufferLength)
	v.SetDefault("audio.max_voices", a.MaxVoices)

	v.SetDefault("network.addr", "")
	v.SetDefault("network.broadcast_interval", parameter.NetworkBroadcastInterval)
	v.SetDefault("network.write_timeout", parameter.NetworkWriteTimeout)
	v.SetDefault("network.ping_interval", parameter.NetworkPingInterval)
	v.SetDefault("network.pong_timeout", parameter.NetworkPongTimeout)
	v.SetDefault("network.read_limit", parameter.NetworkReadLimit)

	v.SetDefault("input.hold_window", parameter.InputHoldWindow)
	v.SetDefault("input.keys", map[string]string{})

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
}

func build(v *viper.Viper) *Config {
	e := engine.DefaultConfig()

	e.Seed = v.GetUint64("engine.seed")
	e.FixedTimeStep = v.GetFloat64("engine.fixed_time_step")
	e.MaxFrameDelta = v.GetFloat64("engine.max_frame_delta")
	e.MaxSubSteps = v.GetInt("engine.max_sub_steps")

	e.Arena.HalfExtent = v.GetFloat64("arena.half_extent")
	e.Arena.WallThickness = v.GetFloat64("arena.wall_thickness")
	e.Arena.ObstacleCount = v.GetInt("arena.obstacle_count")
	e.Arena.ObstacleHalfExtent = v.GetFloat64("arena.obstacle_half_extent")
	e.Arena.ClearZone = v.GetFloat64("arena.clear_zone")
	e.Arena.SpawnerCount = v.GetInt("arena.spawner_count")
	e.Arena.SpawnerMinPlayerDistance = v.GetFloat64("arena.spawner_min_player_distance")

	e.Player.Speed = v.GetFloat64("player.speed")
	e.Player.RotationSpeed = v.GetFloat64("player.rotation_speed")

	e.Player.ShotRange = v.GetFloat64("weapon.range")
	e.Player.ShotCooldown = v.GetFloat64("weapon.cooldown")
	e.Player.ShotDelay = v.GetFloat64("weapon.delay")
	e.ShotDecay = v.GetFloat64("weapon.decay")
	e.Session.ShotBaseRadius = v.GetFloat64("weapon.base_radius")
	// Wander targets stay out of the weapon range
	e.Enemy.WanderAvoidRadius = e.Player.ShotRange

	e.Enemy.ChaseSpeed = v.GetFloat64("enemy.chase_speed")
	e.Enemy.WanderSpeed = v.GetFloat64("enemy.wander_speed")
	e.Enemy.ChaseRadius = v.GetFloat64("enemy.chase_radius")
	e.Enemy.WanderInterval = v.GetFloat64("enemy.wander_interval")
	e.Enemy.DeathDuration = v.GetFloat64("enemy.death_duration")

	e.Spawner.Health = v.GetInt("spawner.health")
	e.Spawner.Interval = v.GetFloat64("spawner.interval")
	e.Spawner.SpawnRadius = v.GetFloat64("spawner.spawn_radius")

	e.Turret.Cost = v.GetInt("turret.cost")
	e.Turret.Range = v.GetFloat64("turret.range")
	e.Turret.Cooldown = v.GetFloat64("turret.cooldown")
	e.Turret.TurnSpeed = v.GetFloat64("turret.turn_speed")

	e.Projectile.Speed = v.GetFloat64("projectile.speed")
	e.Projectile.MaxDistance = v.GetFloat64("projectile.max_distance")
	e.Projectile.HitRadius = v.GetFloat64("projectile.hit_radius")

	e.Session.StartingScore = v.GetInt("economy.starting_score")
	e.Score.EnemyHit = v.GetInt("economy.enemy_hit")
	e.Score.ProjectileHit = v.GetInt("economy.projectile_hit")
	e.Score.SpawnerDestroyed = v.GetInt("economy.spawner_destroyed")
	e.Session.RadiusCost = v.GetInt("economy.radius_cost")
	e.Session.RadiusStep = v.GetFloat64("economy.radius_step")
	e.Session.RadiusMax = v.GetFloat64("economy.radius_max")
	e.Session.CooldownCost = v.GetInt("economy.cooldown_cost")
	e.Session.CooldownMaxLevel = v.GetInt("economy.cooldown_max_level")
	e.Session.CooldownPerLevel = v.GetFloat64("economy.cooldown_per_level")
	e.Session.CooldownMaxReduction = v.GetFloat64("economy.cooldown_max_reduction")

	a := audio.DefaultConfig()
	a.Enabled = v.GetBool("audio.enabled")
	a.MasterVolume = v.GetFloat64("audio.master_volume")
	a.SampleRate = v.GetInt("audio.sample_rate")
	a.BufferLength = v.GetDuration("audio.buffer_length")
	a.MaxVoices = v.GetInt("audio.max_voices")

	return &Config{
		Engine: e,
		Log: LogConfig{
			Level: v.GetString("log.level"),
			File:  v.GetString("log.file"),
		},
		Audio: a,
		Network: NetworkConfig{
			Addr:              v.GetString("network.addr"),
			BroadcastInterval: v.GetDuration("network.broadcast_interval"),
			WriteTimeout:      v.GetDuration("network.write_timeout"),
			PingInterval:      v.GetDuration("network.ping_interval"),
			PongTimeout:       v.GetDuration("network.pong_timeout"),
			ReadLimit:         v.GetInt64("network.read_limit"),
		},
		Input: InputConfig{
			HoldWindow: v.GetDuration("input.hold_window"),
			Keys:       v.GetStringMapString("input.keys"),
		},
		TickInterval: v.GetDuration("engine.tick_interval"),
	}
}

// Validate rejects settings the simulation cannot run with
func (c *Config) Validate() error {
	e := c.Engine
	switch {
	case e.FixedTimeStep <= 0:
		return fmt.Errorf("engine.fixed_time_step must be positive, got %v", e.FixedTimeStep)
	case e.MaxFrameDelta < e.FixedTimeStep:
		return fmt.Errorf("engine.max_frame_delta %v is below the fixed step %v", e.MaxFrameDelta, e.FixedTimeStep)
	case e.MaxSubSteps < 1:
		return fmt.Errorf("engine.max_sub_steps must be at least 1, got %d", e.MaxSubSteps)
	case c.TickInterval <= 0:
		return fmt.Errorf("engine.tick_interval must be positive, got %v", c.TickInterval)
	case e.Arena.HalfExtent <= 0:
		return fmt.Errorf("arena.half_extent must be positive, got %v", e.Arena.HalfExtent)
	case e.Player.ShotRange <= 0:
		return fmt.Errorf("weapon.range must be positive, got %v", e.Player.ShotRange)
	case e.Projectile.Speed <= 0 || e.Projectile.MaxDistance <= 0:
		return fmt.Errorf("projectile speed and max_distance must be positive")
	case e.Spawner.Health < 1:
		return fmt.Errorf("spawner.health must be at least 1, got %d", e.Spawner.Health)
	case c.Input.HoldWindow <= 0:
		return fmt.Errorf("input.hold_window must be positive, got %v", c.Input.HoldWindow)
	case e.Session.StartingScore < 0:
		return fmt.Errorf("economy.starting_score must not be negative, got %d", e.Session.StartingScore)
	}
	return nil
}
