package system

import (
	"github.com/lixenwraith/arena-fighter/engine"
	"github.com/lixenwraith/arena-fighter/entity"
	"github.com/lixenwraith/arena-fighter/event"
	"github.com/lixenwraith/arena-fighter/parameter"
)

// EnemySystem runs the enemy chase and wander behavior and the death timers
type EnemySystem struct {
	engine.SystemBase

	enabled bool
}

// NewEnemySystem creates the enemy behavior system
func NewEnemySystem(world *engine.World) engine.System {
	s := &EnemySystem{
		SystemBase: engine.NewSystemBase(world, "enemy"),
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *EnemySystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *EnemySystem) Name() string {
	return "enemy"
}

// Priority returns the system's priority
func (s *EnemySystem) Priority() int {
	return parameter.PriorityEnemy
}

// EventTypes returns the event types EnemySystem handles
func (s *EnemySystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

// HandleEvent processes reset and toggle commands
func (s *EnemySystem) HandleEvent(ev event.GameEvent) {
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

// Update steers every enemy; dying enemies only count down
func (s *EnemySystem) Update() {
	if !s.enabled {
		return
	}

	dt := s.World.Time.DeltaTime
	player := s.World.Player().Position()

	for _, e := range s.World.Enemies() {
		if e.Disposed() {
			continue
		}
		e.Update(dt, player)
		if e.State() == entity.EnemyDisposed {
			s.World.PushEvent(event.EventEnemyDisposed, &event.EntityPayload{
				Entity:   e.ID(),
				Position: e.Position(),
			})
		}
	}
}
