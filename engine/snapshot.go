package engine

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/arena-fighter/component"
	"github.com/lixenwraith/arena-fighter/core"
	"github.com/lixenwraith/arena-fighter/vmath"
)

// EntityView is the render-facing copy of one entity
type EntityView struct {
	ID          core.Entity          `json:"id"`
	Kind        core.Kind            `json:"kind"`
	Position    mgl64.Vec3           `json:"position"`
	Orientation mgl64.Quat           `json:"orientation"`
	Heading     float64              `json:"heading"`
	Aim         float64              `json:"aim"`
	Radius      float64              `json:"radius"`
	HalfX       float64              `json:"half_x,omitempty"`
	HalfZ       float64              `json:"half_z,omitempty"`
	Hit         bool                 `json:"hit"`
	Color       component.ColorClass `json:"color"`
	Fade        float64              `json:"fade,omitempty"`
	Health      int                  `json:"health,omitempty"`
}

// Snapshot is an immutable view of the world published once per tick
// Readers on other goroutines must not modify it
type Snapshot struct {
	Frame      int64        `json:"frame"`
	Elapsed    float64      `json:"elapsed"`
	Score      int          `json:"score"`
	Cooldown   float64      `json:"cooldown"`
	ShotRadius float64      `json:"shot_radius"`
	Mode       string       `json:"mode"`
	Player     core.Entity  `json:"player"`
	Cursor     mgl64.Vec3   `json:"cursor"`
	Entities   []EntityView `json:"entities"`
}

// Find returns the view of id
func (s *Snapshot) Find(id core.Entity) (EntityView, bool) {
	for _, v := range s.Entities {
		if v.ID == id {
			return v, true
		}
	}
	return EntityView{}, false
}

// Count returns the number of views of kind
func (s *Snapshot) Count(kind core.Kind) int {
	n := 0
	for _, v := range s.Entities {
		if v.Kind == kind {
			n++
		}
	}
	return n
}

func viewOf(id core.Entity, kind core.Kind, v *component.Visual, radius float64) EntityView {
	return EntityView{
		ID:          id,
		Kind:        kind,
		Position:    v.Position,
		Orientation: v.Orientation,
		Heading:     vmath.QuatHeading(v.Orientation),
		Aim:         v.Aim,
		Radius:      radius,
		Color:       v.Color,
		Hit:         v.Color == component.ColorHit,
	}
}

// buildSnapshot copies the post-sweep world state
func (w *World) buildSnapshot() *Snapshot {
	n := 1 + len(w.terrainViews) + len(w.enemies) + len(w.spawners) +
		len(w.turrets) + len(w.projectiles) + len(w.shots)
	s := &Snapshot{
		Frame:      w.Time.FrameNumber,
		Elapsed:    w.Time.Elapsed,
		Score:      w.Session.Score(),
		Cooldown:   w.Session.CooldownIndicator(),
		ShotRadius: w.Session.ShotRadius(),
		Mode:       w.player.Mode().String(),
		Player:     w.player.ID(),
		Cursor:     w.player.Cursor(),
		Entities:   make([]EntityView, 0, n),
	}

	s.Entities = append(s.Entities, w.terrainViews...)
	s.Entities = append(s.Entities, viewOf(w.player.ID(), core.KindPlayer, w.player.Visual, w.player.Body.Radius()))

	for _, sp := range w.spawners {
		v := viewOf(sp.ID(), core.KindSpawner, sp.Visual, sp.Body.Radius())
		v.HalfX, v.HalfZ = sp.Body.HalfExtents()
		v.Health = sp.Health()
		s.Entities = append(s.Entities, v)
	}
	for _, t := range w.turrets {
		v := viewOf(t.ID(), core.KindTurret, t.Visual, t.Body.Radius())
		v.HalfX, v.HalfZ = t.Body.HalfExtents()
		s.Entities = append(s.Entities, v)
	}
	for _, e := range w.enemies {
		s.Entities = append(s.Entities, viewOf(e.ID(), core.KindEnemy, e.Visual, e.Body.Radius()))
	}
	for _, p := range w.projectiles {
		s.Entities = append(s.Entities, viewOf(p.ID(), core.KindProjectile, p.Visual, w.cfg.Projectile.HitRadius))
	}
	for _, a := range w.shots {
		v := viewOf(a.ID(), core.KindAreaShot, a.Visual, a.Radius)
		v.Fade = a.Fade()
		s.Entities = append(s.Entities, v)
	}
	return s
}
