package parameter

const (
	ProjectileSpeed       = 15.0
	ProjectileMaxDistance = 20.0

	// ProjectileHitRadius is the swept-sphere collision radius
	ProjectileHitRadius = 0.5
)
