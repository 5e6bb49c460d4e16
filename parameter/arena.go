package parameter

const (
	// ArenaHalfExtent is half the arena side, walls sit on the boundary
	ArenaHalfExtent = 25.0

	// WallThickness exceeds PlayerSpeed*MaxFrameDelta
	WallThickness = 1.0

	ObstacleCount      = 50
	ObstacleHalfExtent = 0.5

	// ObstacleClearZone keeps the spawn area around the origin free
	ObstacleClearZone = 3.0
)
