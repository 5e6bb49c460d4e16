package parameter

const (
	EnemyRadius     = 0.5
	EnemyRestHeight = 0.5
	EnemyMass       = 1.0

	// EnemyChaseSpeed applies while the player is inside the chase radius
	EnemyChaseSpeed = 2.0

	// EnemyWanderSpeed is slower than chase
	EnemyWanderSpeed = 1.0

	EnemyChaseRadius = 8.0

	// EnemyWanderInterval re-rolls the wander target, seconds
	EnemyWanderInterval = 5.0

	// EnemyArrivalTolerance is the distance at which a wander target counts as reached
	EnemyArrivalTolerance = 0.1

	// EnemyWanderHalfExtent bounds wander targets to a square around the origin
	EnemyWanderHalfExtent = 20.0

	// EnemyWanderRetries bounds re-rolls of targets too close to the player
	EnemyWanderRetries = 16

	// EnemyDeathDuration is the Dying period before disposal, seconds
	EnemyDeathDuration = 5.0

	// Knockback impulse on hit: lateral is scaled by (rand-0.5), upward is fixed
	EnemyKnockbackLateral = 10.0
	EnemyKnockbackUp      = 5.0
)
