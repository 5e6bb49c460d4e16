package physics

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"

	"github.com/lixenwraith/arena-fighter/vmath"
)

// BodyType is the simulation mode of a body
type BodyType int

const (
	Static BodyType = iota
	Kinematic
	Dynamic
)

func (t BodyType) String() string {
	switch t {
	case Static:
		return "static"
	case Kinematic:
		return "kinematic"
	case Dynamic:
		return "dynamic"
	}
	return "unknown"
}

// Body wraps a planar rigid body with a shape and an elevation channel
// The plane maps world (x, z) to solver (x, y); elevation is integrated here
// for dynamic bodies so knockback can lift them
type Body struct {
	body  *cp.Body
	shape *cp.Shape
	world *World

	kind    BodyType
	profile Profile

	radius       float64
	halfX, halfZ float64

	elevation float64
	restY     float64
	vy        float64

	sleeping bool
}

// NewCircle creates a circle body centered at pos, not yet added to a world
func NewCircle(kind BodyType, pos mgl64.Vec3, radius float64, p Profile) *Body {
	b := newBody(kind, pos, p)
	b.radius = radius
	b.halfX, b.halfZ = radius, radius
	b.shape = cp.NewCircle(b.body, radius, cp.Vector{})
	b.finish()
	return b
}

// NewBox creates an axis-aligned box body centered at pos, not yet added to a world
func NewBox(kind BodyType, pos mgl64.Vec3, halfX, halfZ float64, p Profile) *Body {
	b := newBody(kind, pos, p)
	b.halfX, b.halfZ = halfX, halfZ
	b.radius = mgl64.Vec2{halfX, halfZ}.Len()
	b.shape = cp.NewBox(b.body, 2*halfX, 2*halfZ, 0)
	b.finish()
	return b
}

func newBody(kind BodyType, pos mgl64.Vec3, p Profile) *Body {
	b := &Body{
		kind:      kind,
		profile:   p,
		elevation: pos.Y(),
		restY:     pos.Y(),
	}
	if kind == Static {
		b.body = cp.NewStaticBody()
	} else {
		// Dynamic bodies start kinematic; mass accumulates once the shape is attached
		b.body = cp.NewKinematicBody()
	}
	b.body.SetPosition(cp.Vector{X: pos.X(), Y: pos.Z()})
	b.body.UserData = b
	return b
}

func (b *Body) finish() {
	b.shape.UserData = b
	b.profile.apply(b.shape)
}

// syncSolverType applies the wrapper type to the solver body
// The solver only sees the shape after it is added to a space
func (b *Body) syncSolverType() {
	switch b.kind {
	case Dynamic:
		b.body.SetType(cp.BODY_DYNAMIC)
	case Kinematic:
		b.body.SetType(cp.BODY_KINEMATIC)
	}
}

// Position returns the world position
func (b *Body) Position() mgl64.Vec3 {
	p := b.body.Position()
	return mgl64.Vec3{p.X, b.elevation, p.Y}
}

// SetPosition teleports the body
func (b *Body) SetPosition(pos mgl64.Vec3) {
	b.body.SetPosition(cp.Vector{X: pos.X(), Y: pos.Z()})
	b.elevation = pos.Y()
}

// Orientation returns the Y-axis rotation of the body
func (b *Body) Orientation() mgl64.Quat {
	return vmath.HeadingQuat(b.Heading())
}

// SetOrientation sets the body angle from the heading of q
func (b *Body) SetOrientation(q mgl64.Quat) {
	b.SetHeading(vmath.QuatHeading(q))
}

// Heading returns the yaw around +Y; the solver angle runs the opposite way
func (b *Body) Heading() float64 {
	return -b.body.Angle()
}

// SetHeading sets the yaw around +Y
func (b *Body) SetHeading(h float64) {
	b.body.SetAngle(-h)
}

// Velocity returns planar velocity plus elevation speed
func (b *Body) Velocity() mgl64.Vec3 {
	v := b.body.Velocity()
	return mgl64.Vec3{v.X, b.vy, v.Y}
}

// SetVelocity sets the body velocity
// Ignored for static and sleeping bodies; the Y component applies to dynamic bodies only
func (b *Body) SetVelocity(v mgl64.Vec3) {
	if b.kind == Static || b.sleeping {
		return
	}
	b.body.SetVelocity(v.X(), v.Z())
	if b.kind == Dynamic {
		b.vy = v.Y()
	}
}

// Type returns the current simulation mode
func (b *Body) Type() BodyType {
	return b.kind
}

// SetType switches between kinematic and dynamic
// Static is fixed at construction; transitions to or from it are ignored
func (b *Body) SetType(t BodyType) {
	if t == b.kind || t == Static || b.kind == Static {
		return
	}
	b.kind = t
	if t == Kinematic {
		b.vy = 0
		b.elevation = b.restY
	}
	if b.world != nil {
		b.syncSolverType()
	}
}

// ApplyImpulse applies an impulse at a world point
// Only dynamic bodies respond; the vertical part feeds the elevation channel
func (b *Body) ApplyImpulse(impulse, point mgl64.Vec3) {
	if b.kind != Dynamic {
		return
	}
	b.sleeping = false
	b.body.ApplyImpulseAtWorldPoint(
		cp.Vector{X: impulse.X(), Y: impulse.Z()},
		cp.Vector{X: point.X(), Y: point.Z()},
	)
	if m := b.body.Mass(); m > 0 {
		b.vy += impulse.Y() / m
	}
}

// Sleep zeroes velocity and freezes the body until WakeUp
func (b *Body) Sleep() {
	if b.kind == Static {
		return
	}
	b.body.SetVelocity(0, 0)
	b.body.SetAngularVelocity(0)
	b.vy = 0
	b.sleeping = true
}

// WakeUp resumes integration
func (b *Body) WakeUp() {
	b.sleeping = false
}

// IsSleeping reports whether the body is frozen
func (b *Body) IsSleeping() bool {
	return b.sleeping
}

// Radius returns the circle radius or the box bounding radius
func (b *Body) Radius() float64 {
	return b.radius
}

// HalfExtents returns the planar half size
func (b *Body) HalfExtents() (float64, float64) {
	return b.halfX, b.halfZ
}

// Category returns the collision category of the shape
func (b *Body) Category() Category {
	return b.profile.Category
}

// InWorld reports whether the body is currently simulated
func (b *Body) InWorld() bool {
	return b.world != nil
}

// integrateElevation advances the vertical channel of a dynamic body
func (b *Body) integrateElevation(dt, gravity float64) {
	if b.sleeping {
		return
	}
	b.vy += gravity * dt
	b.elevation += b.vy * dt
	if b.elevation <= b.restY {
		b.elevation = b.restY
		if b.vy < 0 {
			b.vy = 0
		}
	}
}
