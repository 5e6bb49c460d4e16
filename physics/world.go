// Package physics adapts a planar rigid-body solver to the arena's Y-up world
// Only the frame orchestrator steps a World; entities mutate their own bodies
package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"

	"github.com/lixenwraith/arena-fighter/parameter"
)

// Config holds solver tuning
type Config struct {
	Gravity           float64
	Damping           float64
	SolverIterations  int
	ResolveIterations int
}

// DefaultConfig returns the compiled-in solver settings
func DefaultConfig() Config {
	return Config{
		Gravity:           parameter.PhysicsGravity,
		Damping:           parameter.PhysicsDamping,
		SolverIterations:  parameter.PhysicsSolverIterations,
		ResolveIterations: parameter.PhysicsResolveIterations,
	}
}

// World owns the solver space and every simulated body
type World struct {
	space  *cp.Space
	bodies []*Body
	cfg    Config

	accumulator float64
	substeps    uint64
}

// NewWorld creates an empty world with zero planar gravity
func NewWorld(cfg Config) *World {
	space := cp.NewSpace()
	if cfg.SolverIterations > 0 {
		space.Iterations = uint(cfg.SolverIterations)
	}
	space.SetGravity(cp.Vector{})
	space.SetDamping(cfg.Damping)

	return &World{
		space:  space,
		bodies: make([]*Body, 0, 64),
		cfg:    cfg,
	}
}

// AddBody inserts a body into the simulation, no-op if already present
func (w *World) AddBody(b *Body) {
	if b == nil || b.world == w {
		return
	}
	w.space.AddBody(b.body)
	w.space.AddShape(b.shape)
	b.syncSolverType()
	b.world = w
	w.bodies = append(w.bodies, b)
}

// RemoveBody removes a body from the simulation, no-op if absent
func (w *World) RemoveBody(b *Body) {
	if b == nil || b.world != w {
		return
	}
	w.space.RemoveShape(b.shape)
	w.space.RemoveBody(b.body)
	b.world = nil

	for i, other := range w.bodies {
		if other == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			break
		}
	}
}

// Contains reports whether b is simulated by this world
func (w *World) Contains(b *Body) bool {
	return b != nil && b.world == w
}

// BodyCount returns the number of simulated bodies
func (w *World) BodyCount() int {
	return len(w.bodies)
}

// BodyCountByType returns the number of simulated bodies of a type
func (w *World) BodyCountByType(t BodyType) int {
	n := 0
	for _, b := range w.bodies {
		if b.kind == t {
			n++
		}
	}
	return n
}

// Substeps returns the total number of fixed steps taken
func (w *World) Substeps() uint64 {
	return w.substeps
}

// Step advances the simulation by measuredDt using fixed steps of fixedDt
// At most maxSubSteps steps run; backlog beyond that is dropped rather than
// carried into later frames. Returns the number of steps taken
func (w *World) Step(fixedDt, measuredDt float64, maxSubSteps int) int {
	if fixedDt <= 0 || measuredDt <= 0 {
		return 0
	}
	if maxSubSteps < 1 {
		maxSubSteps = 1
	}

	w.accumulator += measuredDt
	steps := 0
	for w.accumulator >= fixedDt && steps < maxSubSteps {
		w.substep(fixedDt)
		w.accumulator -= fixedDt
		steps++
	}
	if w.accumulator >= fixedDt {
		w.accumulator = math.Mod(w.accumulator, fixedDt)
	}

	w.substeps += uint64(steps)
	return steps
}

func (w *World) substep(dt float64) {
	w.space.Step(dt)

	for _, b := range w.bodies {
		switch b.kind {
		case Kinematic:
			if !b.sleeping {
				w.resolveStatic(b)
			}
		case Dynamic:
			b.integrateElevation(dt, w.cfg.Gravity)
		}
	}
}

// resolveStatic pushes a kinematic body out of overlapping static shapes
// The solver never generates contacts between two non-dynamic bodies
func (w *World) resolveStatic(b *Body) {
	iterations := w.cfg.ResolveIterations
	if iterations < 1 {
		iterations = 1
	}

	for i := 0; i < iterations; i++ {
		var push cp.Vector
		overlapping := false

		w.space.ShapeQuery(b.shape, func(other *cp.Shape, set *cp.ContactPointSet) {
			if other.Body() == nil || other.Body().GetType() != cp.BODY_STATIC {
				return
			}
			owner, ok := other.UserData.(*Body)
			if !ok || owner.profile.Category&CategorySolid == 0 {
				return
			}

			depth := 0.0
			for j := 0; j < set.Count; j++ {
				if set.Points[j].Distance < depth {
					depth = set.Points[j].Distance
				}
			}
			if depth < 0 {
				// Normal points from b to other; negative depth moves b away
				push = push.Add(set.Normal.Mult(depth))
				overlapping = true
			}
		})

		if !overlapping {
			return
		}
		b.body.SetPosition(b.body.Position().Add(push))
	}
}

// RayHit describes the first shape crossed by a ray cast
type RayHit struct {
	Point    mgl64.Vec3
	Normal   mgl64.Vec3
	Fraction float64
	Body     *Body
}

// RayCast returns the first body in mask crossed by the planar segment from → to
// The hit point carries the elevation of from
func (w *World) RayCast(from, to mgl64.Vec3, mask Category) (RayHit, bool) {
	filter := cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, uint(mask))
	info := w.space.SegmentQueryFirst(
		cp.Vector{X: from.X(), Y: from.Z()},
		cp.Vector{X: to.X(), Y: to.Z()},
		0,
		filter,
	)
	if info.Shape == nil {
		return RayHit{}, false
	}

	owner, _ := info.Shape.UserData.(*Body)
	return RayHit{
		Point:    mgl64.Vec3{info.Point.X, from.Y(), info.Point.Y},
		Normal:   mgl64.Vec3{info.Normal.X, 0, info.Normal.Y},
		Fraction: info.Alpha,
		Body:     owner,
	}, true
}

// Clear removes every body and resets the step accumulator
func (w *World) Clear() {
	for len(w.bodies) > 0 {
		w.RemoveBody(w.bodies[len(w.bodies)-1])
	}
	w.accumulator = 0
}
