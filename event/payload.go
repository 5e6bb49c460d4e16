package event

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/arena-fighter/core"
)

// MetaSystemCommandPayload toggles a system
type MetaSystemCommandPayload struct {
	SystemName string `json:"system"`
	Enabled    bool   `json:"enabled"`
}

// ClipFinishedPayload names a clip a renderer finished playing
type ClipFinishedPayload struct {
	Clip string `json:"clip"`
}

// UpgradeKind selects an upgrade track
type UpgradeKind string

const (
	UpgradeRadius   UpgradeKind = "radius"
	UpgradeCooldown UpgradeKind = "cooldown"
)

// UpgradeRequestPayload names the upgrade to buy
type UpgradeRequestPayload struct {
	Kind UpgradeKind `json:"kind"`
}

// EntityPayload carries a single entity reference
type EntityPayload struct {
	Entity   core.Entity
	Position mgl64.Vec3
}

// ModeChangedPayload carries the new player mode name
type ModeChangedPayload struct {
	From, To string
}

// ShotFiredPayload describes an accepted area weapon fire
type ShotFiredPayload struct {
	Origin mgl64.Vec3
	Target mgl64.Vec3
	Delay  float64
}

// RejectReason explains a refused action
type RejectReason uint8

const (
	RejectCooldown RejectReason = iota
	RejectRange
	RejectMode
	RejectFunds
	RejectOccupied
)

func (r RejectReason) String() string {
	switch r {
	case RejectCooldown:
		return "cooldown"
	case RejectRange:
		return "range"
	case RejectMode:
		return "mode"
	case RejectFunds:
		return "funds"
	case RejectOccupied:
		return "occupied"
	}
	return "unknown"
}

// ShotRejectedPayload describes a refused fire attempt
type ShotRejectedPayload struct {
	Target mgl64.Vec3
	Reason RejectReason
}

// ShotResolvedPayload summarizes one AreaShot resolution
type ShotResolvedPayload struct {
	Point             mgl64.Vec3
	Radius            float64
	EnemiesHit        int
	SpawnersHit       int
	SpawnersDestroyed int
	Awarded           int
}

// EnemySpawnedPayload links an enemy to its spawner
type EnemySpawnedPayload struct {
	Entity   core.Entity
	Spawner  core.Entity
	Position mgl64.Vec3
}

// HitSource identifies what killed an enemy
type HitSource uint8

const (
	HitArea HitSource = iota
	HitProjectile
)

// EnemyHitPayload describes an enemy entering Dying
type EnemyHitPayload struct {
	Entity   core.Entity
	Position mgl64.Vec3
	Source   HitSource
}

// SpawnerHitPayload reports remaining spawner health
type SpawnerHitPayload struct {
	Entity core.Entity
	Health int
}

// TurretPlaceRequestPayload carries the requested world point
type TurretPlaceRequestPayload struct {
	Position mgl64.Vec3
	Reason   RejectReason
}

// TurretPlacedPayload describes a placed turret
type TurretPlacedPayload struct {
	Entity   core.Entity
	Position mgl64.Vec3
	Cost     int
}

// ProjectileFiredPayload links a projectile to its turret
type ProjectileFiredPayload struct {
	Entity core.Entity
	Turret core.Entity
	Origin mgl64.Vec3
}

// ProjectileExpiredPayload reports how a projectile ended
type ProjectileExpiredPayload struct {
	Entity  core.Entity
	Hit     bool
	Terrain bool
}
