package parameter

const (
	// PhysicsGravity drives the elevation of dynamic bodies
	PhysicsGravity = -9.82

	// PhysicsDamping is the fraction of velocity retained per second
	PhysicsDamping = 0.9

	PhysicsFriction   = 0.5
	PhysicsElasticity = 0.2

	// PhysicsSolverIterations is the constraint solver iteration count
	PhysicsSolverIterations = 10

	// PhysicsResolveIterations bounds static push-out passes per substep
	PhysicsResolveIterations = 4
)
