package parameter

import "math"

const (
	TurretCost       = 50
	TurretRange      = 5.0
	TurretCooldown   = 0.8
	TurretHalfExtent = 0.5

	// TurretTurnSpeed is the heading slew rate in radians per second
	TurretTurnSpeed = 2 * math.Pi

	// TurretMuzzleOffset places the projectile origin along the aim direction
	TurretMuzzleOffset = 0.6
)
