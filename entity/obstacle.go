package entity

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/arena-fighter/component"
	"github.com/lixenwraith/arena-fighter/core"
	"github.com/lixenwraith/arena-fighter/physics"
)

// Obstacle is static terrain: an arena wall or a block
// Terrain lives for the whole process and is never reset
type Obstacle struct {
	Lifecycle
	Body   *physics.Body
	Visual *component.Visual
}

// NewObstacle creates a terrain box centered at pos and adds it to world
func NewObstacle(id core.Entity, world *physics.World, pos mgl64.Vec3, halfX, halfZ float64) *Obstacle {
	body := physics.NewBox(physics.Static, pos, halfX, halfZ, physics.ProfileTerrain)
	world.AddBody(body)

	o := &Obstacle{
		Lifecycle: Lifecycle{id: id},
		Body:      body,
		Visual:    component.NewVisual(component.ColorNormal),
	}
	component.Sync(body, o.Visual)
	return o
}

// Contains reports whether the planar point lies inside the footprint
func (o *Obstacle) Contains(p mgl64.Vec3) bool {
	hx, hz := o.Body.HalfExtents()
	c := o.Visual.Position
	return p.X() >= c.X()-hx && p.X() <= c.X()+hx && p.Z() >= c.Z()-hz && p.Z() <= c.Z()+hz
}
