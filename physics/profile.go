package physics

import (
	"github.com/jakecoffman/cp"

	"github.com/lixenwraith/arena-fighter/parameter"
)

// Category is a collision filter bit
type Category uint

const (
	// CategoryTerrain is arena walls and obstacles, the projectile ray-cast set
	CategoryTerrain Category = 1 << iota
	// CategoryStructure is spawners and turrets
	CategoryStructure
	// CategoryActor is the player and enemies
	CategoryActor
)

// CategorySolid is every static category kinematic bodies are pushed out of
const CategorySolid = CategoryTerrain | CategoryStructure

// Profile is the material and filter preset applied to a body's shape
type Profile struct {
	Category   Category
	Mass       float64
	Friction   float64
	Elasticity float64
}

// Body profiles - pre-defined, shared by value
var (
	ProfileTerrain = Profile{
		Category:   CategoryTerrain,
		Friction:   parameter.PhysicsFriction,
		Elasticity: parameter.PhysicsElasticity,
	}

	ProfileStructure = Profile{
		Category:   CategoryStructure,
		Friction:   parameter.PhysicsFriction,
		Elasticity: parameter.PhysicsElasticity,
	}

	ProfilePlayer = Profile{
		Category:   CategoryActor,
		Mass:       1,
		Friction:   parameter.PhysicsFriction,
		Elasticity: parameter.PhysicsElasticity,
	}

	ProfileEnemy = Profile{
		Category:   CategoryActor,
		Mass:       parameter.EnemyMass,
		Friction:   parameter.PhysicsFriction,
		Elasticity: parameter.PhysicsElasticity,
	}
)

// apply configures shape material, mass and filter
func (p Profile) apply(shape *cp.Shape) {
	shape.SetFriction(p.Friction)
	shape.SetElasticity(p.Elasticity)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, uint(p.Category), cp.ALL_CATEGORIES))
	if p.Mass > 0 {
		shape.SetMass(p.Mass)
	}
}
