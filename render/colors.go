package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/arena-fighter/component"
	"github.com/lixenwraith/arena-fighter/core"
)

// RGB color definitions for the arena view
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbFloorGrid  = tcell.NewRGBColor(40, 42, 58)    // Faint floor dots
	RgbObstacle   = tcell.NewRGBColor(120, 120, 130) // Neutral gray
	RgbPlayer     = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbCombat     = tcell.NewRGBColor(255, 165, 0)   // Orange when deployed
	RgbEnemy      = tcell.NewRGBColor(255, 80, 80)   // Normal red
	RgbHit        = tcell.NewRGBColor(255, 255, 200) // Yellow-white flash
	RgbDestroyed  = tcell.NewRGBColor(101, 67, 33)   // Dark brown remains
	RgbSpawner    = tcell.NewRGBColor(128, 0, 128)   // Dark purple
	RgbTurret     = tcell.NewRGBColor(0, 200, 200)   // Vibrant cyan
	RgbProjectile = tcell.NewRGBColor(255, 255, 0)   // Bright yellow
	RgbShotArmed  = tcell.NewRGBColor(200, 50, 50)   // Red target ring
	RgbShotBlast  = tcell.NewRGBColor(255, 192, 203) // Pink blast
	RgbCursor     = tcell.NewRGBColor(255, 255, 255) // White crosshair
	RgbCursorFar  = tcell.NewRGBColor(255, 0, 0)     // Out of range

	// Status bar
	RgbStatusBg      = tcell.NewRGBColor(255, 255, 255)
	RgbStatusText    = tcell.NewRGBColor(0, 0, 0)
	RgbModeDrivingBg = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbModeCombatBg  = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbModeSwitchBg  = tcell.NewRGBColor(255, 255, 0)   // Yellow while transforming
	RgbCooldownFull  = tcell.NewRGBColor(0, 200, 0)
	RgbCooldownEmpty = tcell.NewRGBColor(60, 60, 60)
	RgbPausedBg      = tcell.NewRGBColor(200, 50, 50)
)

// baseColor returns the resting color of an entity kind
func baseColor(k core.Kind) tcell.Color {
	switch k {
	case core.KindPlayer:
		return RgbPlayer
	case core.KindEnemy:
		return RgbEnemy
	case core.KindSpawner:
		return RgbSpawner
	case core.KindTurret:
		return RgbTurret
	case core.KindProjectile:
		return RgbProjectile
	case core.KindAreaShot:
		return RgbShotArmed
	default:
		return RgbObstacle
	}
}

// resolveColor maps a semantic color class to RGB for an entity kind
func resolveColor(k core.Kind, c component.ColorClass) tcell.Color {
	switch c {
	case component.ColorCombat:
		return RgbCombat
	case component.ColorHit:
		return RgbHit
	case component.ColorDestroyed:
		return RgbDestroyed
	case component.ColorEffect:
		return RgbShotBlast
	}
	return baseColor(k)
}

// modeBackground returns the status bar color for a player mode name
func modeBackground(mode string) tcell.Color {
	switch mode {
	case "driving":
		return RgbModeDrivingBg
	case "combat":
		return RgbModeCombatBg
	}
	return RgbModeSwitchBg
}
