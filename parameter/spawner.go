package parameter

const (
	// SpawnerHealth is the number of area hits a spawner absorbs
	SpawnerHealth = 4

	// SpawnerInterval is seconds between enemy spawns
	SpawnerInterval = 3.0

	// SpawnerSpawnRadius bounds spawn points around the spawner
	SpawnerSpawnRadius = 2.0

	// SpawnerHalfExtent is the structure half size
	SpawnerHalfExtent = 0.5

	// SpawnerCount is the number of spawners placed per session
	SpawnerCount = 3

	// SpawnerMinPlayerDistance is enforced at spawner placement only
	SpawnerMinPlayerDistance = 15.0

	// SpawnerPlacementHalfExtent bounds spawner placement around the origin
	SpawnerPlacementHalfExtent = 20.0

	// SpawnerPlacementRetries bounds placement attempts per spawner
	SpawnerPlacementRetries = 64

	// EnemySpawnClearance excludes spawn points this close to the player
	EnemySpawnClearance = 2.0

	// EnemySpawnRetries bounds spawn point attempts per cycle
	EnemySpawnRetries = 8
)
