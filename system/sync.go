package system

import (
	"github.com/lixenwraith/arena-fighter/engine"
	"github.com/lixenwraith/arena-fighter/event"
	"github.com/lixenwraith/arena-fighter/parameter"
)

// SyncSystem copies body poses into the visuals after all body mutations
// Static turrets and spawners keep their construction pose
type SyncSystem struct {
	engine.SystemBase

	enabled bool
}

// NewSyncSystem creates the transform sync system
func NewSyncSystem(world *engine.World) engine.System {
	s := &SyncSystem{
		SystemBase: engine.NewSystemBase(world, "sync"),
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *SyncSystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *SyncSystem) Name() string {
	return "sync"
}

// Priority returns the system's priority
func (s *SyncSystem) Priority() int {
	return parameter.PrioritySync
}

// EventTypes returns the event types SyncSystem handles
func (s *SyncSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

// HandleEvent processes reset and toggle commands
func (s *SyncSystem) HandleEvent(ev event.GameEvent) {
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

// Update syncs the player and every enemy
func (s *SyncSystem) Update() {
	if !s.enabled {
		return
	}

	s.World.Player().SyncVisual()
	for _, e := range s.World.Enemies() {
		e.SyncVisual()
	}
}
