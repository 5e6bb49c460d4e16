package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityPlayer      = 10
	PrioritySpawner     = 20
	PriorityEnemy       = 30
	PriorityTurret      = 40
	PriorityProjectile  = 50
	PrioritySync        = 60  // After all body mutations
	PriorityTimer       = 70  // Deferred callbacks see synced transforms
	PriorityShot        = 80  // Resolves shots materialized by timers
	PriorityAudio       = 500 // Event-driven, no ordering constraint
	PriorityDiagnostics = 1000
)
