package render

import "github.com/lixenwraith/arena-fighter/core"

// RenderPriority determines render order. Lower values render first
type RenderPriority int

const (
	PriorityBackground RenderPriority = iota
	PriorityTerrain
	PriorityShot
	PrioritySpawner
	PriorityTurret
	PriorityEnemy
	PriorityProjectile
	PriorityPlayer
	PriorityCursor
	PriorityUI
)

// kindPriority returns the layer an entity kind draws on
func kindPriority(k core.Kind) RenderPriority {
	switch k {
	case core.KindObstacle:
		return PriorityTerrain
	case core.KindAreaShot:
		return PriorityShot
	case core.KindSpawner:
		return PrioritySpawner
	case core.KindTurret:
		return PriorityTurret
	case core.KindEnemy:
		return PriorityEnemy
	case core.KindProjectile:
		return PriorityProjectile
	case core.KindPlayer:
		return PriorityPlayer
	}
	return PriorityBackground
}
