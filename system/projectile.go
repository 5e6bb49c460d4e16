package system

import (
	"github.com/lixenwraith/arena-fighter/engine"
	"github.com/lixenwraith/arena-fighter/event"
	"github.com/lixenwraith/arena-fighter/parameter"
)

// ProjectileSystem flies turret projectiles and credits effective hits
type ProjectileSystem struct {
	engine.SystemBase

	enabled bool
}

// NewProjectileSystem creates the projectile system
func NewProjectileSystem(world *engine.World) engine.System {
	s := &ProjectileSystem{
		SystemBase: engine.NewSystemBase(world, "projectile"),
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *ProjectileSystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *ProjectileSystem) Name() string {
	return "projectile"
}

// Priority returns the system's priority
func (s *ProjectileSystem) Priority() int {
	return parameter.PriorityProjectile
}

// EventTypes returns the event types ProjectileSystem handles
func (s *ProjectileSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

// HandleEvent processes reset and toggle commands
func (s *ProjectileSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}

	if ev.Type == event.EventMetaSystemCommandRequest {
		if payload, ok := ev.Payload.(*event.MetaSystemCommandPayload); ok {
			if payload.SystemName == s.Name() {
				s.enabled = payload.Enabled
			}
		}
	}
}

// Update advances every projectile by one swept step
// Ended projectiles leave the collection at the sweep
func (s *ProjectileSystem) Update() {
	if !s.enabled {
		return
	}

	dt := s.World.Time.DeltaTime
	targets := s.World.EnemyTargets()
	award := s.World.Config().Score.ProjectileHit

	for _, p := range s.World.Projectiles() {
		impact, ended := p.Update(dt, targets, s.World.Physics)
		if !ended {
			continue
		}

		if impact.Target != nil && impact.Effective {
			s.World.Session.AddScore(award)
			s.World.PushEvent(event.EventEnemyHit, &event.EnemyHitPayload{
				Entity:   impact.Target.ID(),
				Position: impact.Point,
				Source:   event.HitProjectile,
			})
		}
		s.World.PushEvent(event.EventProjectileExpired, &event.ProjectileExpiredPayload{
			Entity:  p.ID(),
			Hit:     impact.Target != nil,
			Terrain: impact.Terrain,
		})
	}
}
