package system

import (
	"github.com/lixenwraith/arena-fighter/audio"
	"github.com/lixenwraith/arena-fighter/engine"
	"github.com/lixenwraith/arena-fighter/event"
	"github.com/lixenwraith/arena-fighter/parameter"
)

// CuePlayer plays a sound cue, satisfied by *audio.SoundManager
type CuePlayer interface {
	Play(cue audio.Cue) bool
}

// AudioSystem maps gameplay events to sound cues
// Decouples game systems from direct speaker access
type AudioSystem struct {
	engine.SystemBase
	player CuePlayer

	enabled bool
}

// NewAudioSystem creates an audio system with the given player
// player may be nil if audio is disabled
func NewAudioSystem(world *engine.World, player CuePlayer) engine.System {
	s := &AudioSystem{
		SystemBase: engine.NewSystemBase(world, "audio"),
		player:     player,
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *AudioSystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *AudioSystem) Name() string {
	return "audio"
}

// Priority returns the system's priority
func (s *AudioSystem) Priority() int {
	return parameter.PriorityAudio
}

// EventTypes returns the event types AudioSystem handles
func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventShotFired,
		event.EventShotRejected,
		event.EventShotResolved,
		event.EventEnemyHit,
		event.EventSpawnerDestroyed,
		event.EventTurretPlaced,
		event.EventTurretPlaceRejected,
		event.EventProjectileFired,
		event.EventModeChanged,
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

// HandleEvent plays the cue bound to the event
func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
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
		return
	}

	if !s.enabled || s.player == nil {
		return
	}

	if cue, ok := cueFor(ev.Type); ok {
		s.player.Play(cue)
	}
}

// Update implements System interface (no tick-based logic)
func (s *AudioSystem) Update() {}

func cueFor(t event.EventType) (audio.Cue, bool) {
	switch t {
	case event.EventShotFired:
		return audio.CueFire, true
	case event.EventShotResolved:
		return audio.CueExplosion, true
	case event.EventShotRejected, event.EventTurretPlaceRejected:
		return audio.CueReject, true
	case event.EventEnemyHit:
		return audio.CueHit, true
	case event.EventSpawnerDestroyed:
		return audio.CueSpawnerDestroyed, true
	case event.EventTurretPlaced:
		return audio.CuePlace, true
	case event.EventProjectileFired:
		return audio.CueTurretShot, true
	case event.EventModeChanged:
		return audio.CueModeChange, true
	}
	return 0, false
}
