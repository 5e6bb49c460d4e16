package system

import (
	"sync/atomic"

	"github.com/lixenwraith/arena-fighter/engine"
	"github.com/lixenwraith/arena-fighter/entity"
	"github.com/lixenwraith/arena-fighter/event"
	"github.com/lixenwraith/arena-fighter/parameter"
)

// ShotSystem resolves materialized AreaShots once and runs their decay
// Enemy and spawner bonuses are credited here
type ShotSystem struct {
	engine.SystemBase

	statResolved *atomic.Int64

	enabled bool
}

// NewShotSystem creates the area weapon resolution system
func NewShotSystem(world *engine.World) engine.System {
	s := &ShotSystem{
		SystemBase:   engine.NewSystemBase(world, "shot"),
		statResolved: world.Status.Ints.Get("shot.resolved"),
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *ShotSystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *ShotSystem) Name() string {
	return "shot"
}

// Priority returns the system's priority
func (s *ShotSystem) Priority() int {
	return parameter.PriorityShot
}

// EventTypes returns the event types ShotSystem handles
func (s *ShotSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

// HandleEvent processes reset and toggle commands
func (s *ShotSystem) HandleEvent(ev event.GameEvent) {
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

// Update resolves new shots and decays resolved ones
// A shot materialized this tick resolves without decaying
func (s *ShotSystem) Update() {
	if !s.enabled {
		return
	}

	dt := s.World.Time.DeltaTime
	for _, a := range s.World.Shots() {
		if a.Disposed() {
			continue
		}
		if !a.Resolved() {
			s.resolve(a)
			continue
		}
		a.Update(dt)
	}
}

func (s *ShotSystem) resolve(a *entity.AreaShot) {
	res, ok := a.Resolve(s.World.EnemyTargets(), s.World.Spawners())
	if !ok {
		return
	}
	score := s.World.Config().Score

	awarded := 0
	for _, e := range res.Enemies {
		if s.World.Session.AddScore(score.EnemyHit) {
			awarded += score.EnemyHit
		}
		s.World.PushEvent(event.EventEnemyHit, &event.EnemyHitPayload{
			Entity:   e.ID(),
			Position: e.Position(),
			Source:   event.HitArea,
		})
	}
	for _, sp := range res.Spawners {
		s.World.PushEvent(event.EventSpawnerHit, &event.SpawnerHitPayload{
			Entity: sp.ID(),
			Health: sp.Health(),
		})
	}
	for _, sp := range res.Destroyed {
		if s.World.Session.AddScore(score.SpawnerDestroyed) {
			awarded += score.SpawnerDestroyed
		}
		s.World.PushEvent(event.EventSpawnerDestroyed, &event.EntityPayload{
			Entity:   sp.ID(),
			Position: sp.Position(),
		})
		s.Log.Info().Uint64("entity", uint64(sp.ID())).Msg("Spawner destroyed")
	}

	s.World.PushEvent(event.EventShotResolved, &event.ShotResolvedPayload{
		Point:             a.Point,
		Radius:            a.Radius,
		EnemiesHit:        len(res.Enemies),
		SpawnersHit:       len(res.Spawners),
		SpawnersDestroyed: len(res.Destroyed),
		Awarded:           awarded,
	})
	s.statResolved.Add(1)
}
