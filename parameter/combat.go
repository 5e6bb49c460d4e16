package parameter

// Area weapon
const (
	// ShotRange is the max player-to-target distance, inclusive
	ShotRange = 10.0

	// ShotCooldown is the base cooldown before upgrades, seconds
	ShotCooldown = 2.0

	// ShotDelay separates fire input from AreaShot materialization, seconds
	ShotDelay = 0.3

	// ShotDecay is how long the AreaShot effect remains visible, seconds
	ShotDecay = 0.5

	// ShotBaseRadius is the hit radius before upgrades
	ShotBaseRadius = 1.0
)

// Upgrades
const (
	UpgradeRadiusCost   = 200
	UpgradeRadiusStep   = 0.5
	UpgradeRadiusMax    = 2.0
	UpgradeCooldownCost = 200

	// UpgradeCooldownMaxLevel caps purchased cooldown levels
	UpgradeCooldownMaxLevel = 5

	// UpgradeCooldownPerLevel is the fractional reduction per level
	UpgradeCooldownPerLevel = 0.19

	// UpgradeCooldownMaxReduction clamps the total reduction fraction
	UpgradeCooldownMaxReduction = 0.95
)

// Score
const (
	ScoreStart            = 200
	ScoreEnemyHit         = 10
	ScoreProjectileHit    = 10
	ScoreSpawnerDestroyed = 100
)
