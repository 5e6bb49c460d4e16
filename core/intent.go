package core

import "github.com/go-gl/mathgl/mgl64"

// Intent is the per-frame input snapshot consumed by the simulation
// Move axes are in [-1, 1]; edge flags are true only on the frame they were pressed
type Intent struct {
	MoveX, MoveZ float64
	Cursor       mgl64.Vec3

	Fire        bool
	ToggleMode  bool
	PlaceTurret bool
}

// HasMovement reports whether any movement axis is non-zero
func (i Intent) HasMovement() bool {
	return i.MoveX != 0 || i.MoveZ != 0
}
