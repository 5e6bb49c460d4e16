package parameter

const (
	// PlayerSpeed is planar drive speed in units per second
	PlayerSpeed = 5.0

	// PlayerRotationSpeed scales the per-tick orientation slerp factor
	PlayerRotationSpeed = 5.0

	// PlayerRadius is the collision circle radius (size 1)
	PlayerRadius = 0.5

	// PlayerRestHeight is the body center elevation
	PlayerRestHeight = 0.5
)

// Animation clips and their durations in seconds
const (
	ClipDrive           = "Drive"
	ClipEnterCombat     = "SiegeMode"
	ClipExitCombat      = "SiegeModeRE"
	ClipTurretFire      = "Fire"
	ClipDriveLength     = 1.0
	ClipEnterCombatTime = 1.2
	ClipExitCombatTime  = 1.2
	ClipTurretFireTime  = 0.2
)
