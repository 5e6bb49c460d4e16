package system

import (
	"sync/atomic"

	"github.com/lixenwraith/arena-fighter/engine"
	"github.com/lixenwraith/arena-fighter/event"
	"github.com/lixenwraith/arena-fighter/parameter"
)

// SpawnerSystem counts down every active spawner and releases enemies
// New enemies join the world at the sweep
type SpawnerSystem struct {
	engine.SystemBase

	statSpawned *atomic.Int64

	enabled bool
}

// NewSpawnerSystem creates the enemy spawn system
func NewSpawnerSystem(world *engine.World) engine.System {
	s := &SpawnerSystem{
		SystemBase:  engine.NewSystemBase(world, "spawner"),
		statSpawned: world.Status.Ints.Get("spawner.spawned"),
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *SpawnerSystem) Init() {
	s.statSpawned.Store(0)
	s.enabled = true
}

// Name returns system's name
func (s *SpawnerSystem) Name() string {
	return "spawner"
}

// Priority returns the system's priority
func (s *SpawnerSystem) Priority() int {
	return parameter.PrioritySpawner
}

// EventTypes returns the event types SpawnerSystem handles
func (s *SpawnerSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

// HandleEvent processes reset and toggle commands
func (s *SpawnerSystem) HandleEvent(ev event.GameEvent) {
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

// Update spawns at most one enemy per spawner per interval
func (s *SpawnerSystem) Update() {
	if !s.enabled {
		return
	}

	dt := s.World.Time.DeltaTime
	player := s.World.Player().Position()

	for _, sp := range s.World.Spawners() {
		if !sp.Active() {
			continue
		}
		pos, ok := sp.Update(dt, player)
		if !ok {
			continue
		}
		s.World.SpawnEnemy(pos, sp.ID())
		s.statSpawned.Add(1)
	}
}
