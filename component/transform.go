package component

import "github.com/go-gl/mathgl/mgl64"

// Transform is a world-space pose
type Transform struct {
	Position    mgl64.Vec3
	Orientation mgl64.Quat
}

// IdentityTransform returns a pose at the origin facing +Z
func IdentityTransform() Transform {
	return Transform{Orientation: mgl64.QuatIdent()}
}

// Pose is anything that exposes a world position and orientation
// Satisfied by *physics.Body
type Pose interface {
	Position() mgl64.Vec3
	Orientation() mgl64.Quat
}

// Sync copies the body pose into the visual, unconditionally
// A nil body or visual is a programming error
func Sync(body Pose, visual *Visual) {
	if body == nil || visual == nil {
		panic("component: Sync with nil body or visual")
	}
	visual.Position = body.Position()
	visual.Orientation = body.Orientation()
}
