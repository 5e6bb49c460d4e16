package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Terminal cells are roughly twice as tall as wide
const (
	DefaultCellsPerUnitX = 2.0
	DefaultCellsPerUnitZ = 1.0
)

// Viewport maps the XZ plane onto a screen rectangle
// +X is right and +Z is down; the center cell shows Center
type Viewport struct {
	X, Y          int
	Width, Height int
	Center        mgl64.Vec3

	CellsPerUnitX float64
	CellsPerUnitZ float64
}

// NewViewport creates a viewport over the given screen rectangle
func NewViewport(x, y, width, height int) Viewport {
	return Viewport{
		X:             x,
		Y:             y,
		Width:         width,
		Height:        height,
		CellsPerUnitX: DefaultCellsPerUnitX,
		CellsPerUnitZ: DefaultCellsPerUnitZ,
	}
}

// WorldToScreen returns the cell showing p and whether it lies inside the viewport
func (v Viewport) WorldToScreen(p mgl64.Vec3) (col, row int, visible bool) {
	col = v.X + v.Width/2 + roundHalfUp((p[0]-v.Center[0])*v.CellsPerUnitX)
	row = v.Y + v.Height/2 + roundHalfUp((p[2]-v.Center[2])*v.CellsPerUnitZ)
	return col, row, v.Contains(col, row)
}

// ScreenToWorld returns the world point at the center of a cell, on the ground plane
func (v Viewport) ScreenToWorld(col, row int) mgl64.Vec3 {
	return mgl64.Vec3{
		v.Center[0] + float64(col-v.X-v.Width/2)/v.CellsPerUnitX,
		0,
		v.Center[2] + float64(row-v.Y-v.Height/2)/v.CellsPerUnitZ,
	}
}

// Contains reports whether a cell lies inside the viewport
func (v Viewport) Contains(col, row int) bool {
	return col >= v.X && col < v.X+v.Width && row >= v.Y && row < v.Y+v.Height
}

func roundHalfUp(f float64) int {
	return int(math.Floor(f + 0.5))
}
