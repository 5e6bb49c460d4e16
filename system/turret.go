package system

import (
	"errors"

	"github.com/lixenwraith/arena-fighter/engine"
	"github.com/lixenwraith/arena-fighter/event"
	"github.com/lixenwraith/arena-fighter/parameter"
)

// TurretSystem places bought turrets and runs their targeting
type TurretSystem struct {
	engine.SystemBase

	enabled bool
}

// NewTurretSystem creates the turret system
func NewTurretSystem(world *engine.World) engine.System {
	s := &TurretSystem{
		SystemBase: engine.NewSystemBase(world, "turret"),
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *TurretSystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *TurretSystem) Name() string {
	return "turret"
}

// Priority returns the system's priority
func (s *TurretSystem) Priority() int {
	return parameter.PriorityTurret
}

// EventTypes returns the event types TurretSystem handles
func (s *TurretSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventTurretPlaceRequest,
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

// HandleEvent processes placement requests
func (s *TurretSystem) HandleEvent(ev event.GameEvent) {
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

	if !s.enabled {
		return
	}

	if ev.Type == event.EventTurretPlaceRequest {
		if payload, ok := ev.Payload.(*event.TurretPlaceRequestPayload); ok {
			s.place(payload)
		}
	}
}

func (s *TurretSystem) place(req *event.TurretPlaceRequestPayload) {
	t, err := s.World.TryPlaceTurret(req.Position)
	if err != nil {
		reason := event.RejectOccupied
		if errors.Is(err, engine.ErrInsufficientFunds) {
			reason = event.RejectFunds
		}
		s.World.PushEvent(event.EventTurretPlaceRejected, &event.TurretPlaceRequestPayload{
			Position: req.Position,
			Reason:   reason,
		})
		s.Log.Debug().Err(err).Msg("Turret placement rejected")
		return
	}

	cost := s.World.Config().Turret.Cost
	s.World.PushEvent(event.EventTurretPlaced, &event.TurretPlacedPayload{
		Entity:   t.ID(),
		Position: t.Position(),
		Cost:     cost,
	})
	s.Log.Debug().Uint64("entity", uint64(t.ID())).Int("cost", cost).Msg("Turret placed")
}

// Update aims every turret and launches projectiles at targets in range
func (s *TurretSystem) Update() {
	if !s.enabled {
		return
	}

	dt := s.World.Time.DeltaTime
	targets := s.World.EnemyTargets()

	for _, t := range s.World.Turrets() {
		if t.Disposed() {
			continue
		}
		if launch, ok := t.Update(dt, targets); ok {
			s.World.LaunchProjectile(launch, t.ID())
		}
	}
}
