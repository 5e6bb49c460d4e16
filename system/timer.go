package system

import (
	"sync/atomic"

	"github.com/lixenwraith/arena-fighter/engine"
	"github.com/lixenwraith/arena-fighter/event"
	"github.com/lixenwraith/arena-fighter/parameter"
)

// TimerSystem advances the deferred callbacks in simulation time
// It runs after sync so callbacks observe the synced transforms
type TimerSystem struct {
	engine.SystemBase

	statFired   *atomic.Int64
	statPending *atomic.Int64

	enabled bool
}

// NewTimerSystem creates a new timer system
func NewTimerSystem(world *engine.World) engine.System {
	s := &TimerSystem{
		SystemBase:  engine.NewSystemBase(world, "timer"),
		statFired:   world.Status.Ints.Get("timer.fired"),
		statPending: world.Status.Ints.Get("timer.pending"),
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *TimerSystem) Init() {
	s.statPending.Store(0)
	s.enabled = true
}

// Name returns system's name
func (s *TimerSystem) Name() string {
	return "timer"
}

// Priority returns the system's priority
func (s *TimerSystem) Priority() int {
	return parameter.PriorityTimer
}

// EventTypes returns the event types TimerSystem handles
func (s *TimerSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

// HandleEvent processes reset and toggle commands
func (s *TimerSystem) HandleEvent(ev event.GameEvent) {
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

// Update runs the elapsed callbacks
func (s *TimerSystem) Update() {
	if !s.enabled {
		return
	}

	s.World.Scheduler.Advance(s.World.Time.DeltaTime)
	s.statFired.Store(int64(s.World.Scheduler.Fired()))
	s.statPending.Store(int64(s.World.Scheduler.Pending()))
}
