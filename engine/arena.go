package engine

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/arena-fighter/core"
	"github.com/lixenwraith/arena-fighter/entity"
	"github.com/lixenwraith/arena-fighter/vmath"
)

// buildArena places the border walls and the random obstacle blocks
// Obstacles sit on integer cells outside the clear zone around the origin
func (w *World) buildArena() {
	a := w.cfg.Arena
	h, t := a.HalfExtent, a.WallThickness
	if h > 0 && t > 0 {
		span := h + t
		off := h + t/2
		w.addTerrain(mgl64.Vec3{0, t / 2, off}, span, t/2)
		w.addTerrain(mgl64.Vec3{0, t / 2, -off}, span, t/2)
		w.addTerrain(mgl64.Vec3{off, t / 2, 0}, t/2, span)
		w.addTerrain(mgl64.Vec3{-off, t / 2, 0}, t/2, span)
	}

	limit := math.Floor(h - 2)
	if limit <= 0 {
		return
	}
	placed := 0
	for attempt := 0; placed < a.ObstacleCount && attempt < a.ObstacleCount*8; attempt++ {
		p := mgl64.Vec3{
			math.Round((w.Rand.Float64()*2 - 1) * limit),
			a.ObstacleHalfExtent,
			math.Round((w.Rand.Float64()*2 - 1) * limit),
		}
		if vmath.PlanarDistance(p, mgl64.Vec3{}) < a.ClearZone || w.cellOccupied(p) {
			continue
		}
		w.addTerrain(p, a.ObstacleHalfExtent, a.ObstacleHalfExtent)
		placed++
	}
	w.log.Debug().Int("walls", 4).Int("obstacles", placed).Msg("Arena built")
}

func (w *World) addTerrain(pos mgl64.Vec3, halfX, halfZ float64) {
	o := entity.NewObstacle(w.CreateEntity(), w.Physics, pos, halfX, halfZ)
	w.terrain = append(w.terrain, o)

	v := viewOf(o.ID(), core.KindObstacle, o.Visual, o.Body.Radius())
	v.HalfX, v.HalfZ = halfX, halfZ
	w.terrainViews = append(w.terrainViews, v)
}

// placeSpawners puts spawners on free cells far enough from the player
// A spawner with no valid cell after the retry bound is skipped
func (w *World) placeSpawners() {
	a := w.cfg.Arena
	player := w.player.Position()
	for i := 0; i < a.SpawnerCount; i++ {
		pos, ok := w.findSpawnerCell(player)
		if !ok {
			w.log.Warn().Int("index", i).Msg("No free cell for spawner")
			continue
		}
		s := entity.NewSpawner(w.CreateEntity(), w.Physics, pos, w.cfg.Spawner, w.Rand)
		w.spawners = append(w.spawners, s)
	}
}

func (w *World) findSpawnerCell(player mgl64.Vec3) (mgl64.Vec3, bool) {
	a := w.cfg.Arena
	for attempt := 0; attempt < max(a.SpawnerPlacementRetries, 1); attempt++ {
		p := mgl64.Vec3{
			math.Round((w.Rand.Float64()*2 - 1) * a.SpawnerPlacementHalfExtent),
			w.cfg.Spawner.HalfExtent,
			math.Round((w.Rand.Float64()*2 - 1) * a.SpawnerPlacementHalfExtent),
		}
		if vmath.PlanarDistance(p, player) < a.SpawnerMinPlayerDistance || w.cellOccupied(p) {
			continue
		}
		return p, true
	}
	return mgl64.Vec3{}, false
}

// cellOccupied reports whether a structure or terrain covers the cell of p
func (w *World) cellOccupied(p mgl64.Vec3) bool {
	for _, o := range w.terrain {
		if o.Contains(p) {
			return true
		}
	}
	for _, s := range w.spawners {
		if sameCell(s.Position(), p) {
			return true
		}
	}
	for _, t := range w.turrets {
		if t.Occupies(p) {
			return true
		}
	}
	for _, t := range w.pendingTurrets {
		if t.Occupies(p) {
			return true
		}
	}
	return false
}

func sameCell(a, b mgl64.Vec3) bool {
	return math.Round(a.X()) == math.Round(b.X()) && math.Round(a.Z()) == math.Round(b.Z())
}

// insideArena reports whether p is strictly inside the walls
func (w *World) insideArena(p mgl64.Vec3) bool {
	h := w.cfg.Arena.HalfExtent
	return math.Abs(p.X()) < h && math.Abs(p.Z()) < h
}

// reset despawns everything but terrain and restores the session
func (w *World) reset() {
	w.despawnAll()
	w.Scheduler.Clear()
	w.Session.Reset()
	w.Time.Reset()
	w.player.Reset(mgl64.Vec3{})
	w.placeSpawners()
	w.log.Info().Int64("frame", w.Time.FrameNumber).Msg("Game reset")
}

// despawnAll disposes every non-terrain entity, pending ones included
func (w *World) despawnAll() {
	for _, e := range append(w.enemies, w.pendingEnemies...) {
		e.Dispose()
	}
	for _, s := range w.spawners {
		s.Dispose()
	}
	for _, t := range append(w.turrets, w.pendingTurrets...) {
		t.Dispose()
	}
	for _, p := range append(w.projectiles, w.pendingProjectiles...) {
		p.Dispose()
	}
	for _, a := range append(w.shots, w.pendingShots...) {
		a.Dispose()
	}

	w.enemies, w.pendingEnemies = w.enemies[:0], w.pendingEnemies[:0]
	w.spawners = w.spawners[:0]
	w.turrets, w.pendingTurrets = w.turrets[:0], w.pendingTurrets[:0]
	w.projectiles, w.pendingProjectiles = w.projectiles[:0], w.pendingProjectiles[:0]
	w.shots, w.pendingShots = w.shots[:0], w.pendingShots[:0]
}
