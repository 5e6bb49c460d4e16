package event

// EventType represents the type of game event
type EventType int

const (
	// EventTick is reserved; zero never travels through the queue
	EventTick EventType = iota

	// === Meta Event ===

	// EventGameReset restores the session and despawns every entity
	// Trigger: UI, network command | Consumer: all systems | Payload: nil
	EventGameReset

	// EventMetaSystemCommandRequest enables or disables a system by name
	// Trigger: UI, network command | Consumer: all systems | Payload: *MetaSystemCommandPayload
	EventMetaSystemCommandRequest

	// EventUpgradeRequest asks the session for an upgrade purchase
	// Trigger: UI | Consumer: PlayerSystem | Payload: *UpgradeRequestPayload
	EventUpgradeRequest

	// EventClipFinished reports an animation clip completed by an external renderer
	// Trigger: network clip message | Consumer: PlayerSystem | Payload: *ClipFinishedPayload
	EventClipFinished

	// === Player Event ===

	// EventModeChanged signals a player combat state transition
	// Trigger: PlayerSystem | Consumer: AudioSystem, DiagnosticsSystem | Payload: *ModeChangedPayload
	EventModeChanged

	// EventShotFired signals an accepted area weapon fire, before the delay
	// Trigger: PlayerSystem | Consumer: AudioSystem | Payload: *ShotFiredPayload
	EventShotFired

	// EventShotRejected signals a fire attempt refused by range or cooldown
	// Trigger: PlayerSystem | Consumer: AudioSystem | Payload: *ShotRejectedPayload
	EventShotRejected

	// EventShotResolved signals an AreaShot hit test completed
	// Trigger: ShotSystem | Consumer: AudioSystem, DiagnosticsSystem | Payload: *ShotResolvedPayload
	EventShotResolved

	// === Enemy Event ===

	// EventEnemySpawned signals a new enemy joined the world
	// Trigger: SpawnerSystem | Consumer: DiagnosticsSystem | Payload: *EnemySpawnedPayload
	EventEnemySpawned

	// EventEnemyHit signals an enemy entered Dying
	// Trigger: ShotSystem, ProjectileSystem | Consumer: AudioSystem | Payload: *EnemyHitPayload
	EventEnemyHit

	// EventEnemyDisposed signals an enemy finished its death timer
	// Trigger: EnemySystem | Consumer: DiagnosticsSystem | Payload: *EntityPayload
	EventEnemyDisposed

	// === Spawner Event ===

	// EventSpawnerHit signals a spawner lost health
	// Trigger: ShotSystem | Consumer: AudioSystem | Payload: *SpawnerHitPayload
	EventSpawnerHit

	// EventSpawnerDestroyed signals a spawner reached zero health
	// Trigger: ShotSystem | Consumer: AudioSystem, DiagnosticsSystem | Payload: *EntityPayload
	EventSpawnerDestroyed

	// === Turret Event ===

	// EventTurretPlaceRequest asks for a turret at a world point
	// Trigger: PlayerSystem | Consumer: TurretSystem | Payload: *TurretPlaceRequestPayload
	EventTurretPlaceRequest

	// EventTurretPlaced signals a turret was bought and placed
	// Trigger: TurretSystem | Consumer: AudioSystem | Payload: *TurretPlacedPayload
	EventTurretPlaced

	// EventTurretPlaceRejected signals placement refused by funds or occupancy
	// Trigger: TurretSystem | Consumer: AudioSystem | Payload: *TurretPlaceRequestPayload
	EventTurretPlaceRejected

	// EventProjectileFired signals a turret shot
	// Trigger: TurretSystem | Consumer: AudioSystem | Payload: *ProjectileFiredPayload
	EventProjectileFired

	// EventProjectileExpired signals a projectile left the world
	// Trigger: ProjectileSystem | Consumer: DiagnosticsSystem | Payload: *ProjectileExpiredPayload
	EventProjectileExpired
)

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
