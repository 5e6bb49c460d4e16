package system

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/arena-fighter/engine"
	"github.com/lixenwraith/arena-fighter/entity"
	"github.com/lixenwraith/arena-fighter/event"
	"github.com/lixenwraith/arena-fighter/logging"
	"github.com/lixenwraith/arena-fighter/parameter"
)

// PlayerSystem applies the frame intent to the player vehicle
// Fire and upgrade rejections are silent to gameplay and logged at debug
type PlayerSystem struct {
	engine.SystemBase

	lastMode entity.Mode

	// rejectLog throttles rejections while fire is held down
	rejectLog zerolog.Logger

	enabled bool
}

// NewPlayerSystem creates the player input system
func NewPlayerSystem(world *engine.World) engine.System {
	s := &PlayerSystem{
		SystemBase: engine.NewSystemBase(world, "player"),
	}
	s.rejectLog = logging.Sampled(s.Log)
	s.Init()
	return s
}

// Init resets session state for new game
func (s *PlayerSystem) Init() {
	s.lastMode = s.World.Player().Mode()
	s.enabled = true
}

// Name returns system's name
func (s *PlayerSystem) Name() string {
	return "player"
}

// Priority returns the system's priority
func (s *PlayerSystem) Priority() int {
	return parameter.PriorityPlayer
}

// EventTypes returns the event types PlayerSystem handles
func (s *PlayerSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventUpgradeRequest,
		event.EventClipFinished,
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

// HandleEvent processes upgrade purchases and external clip completions
func (s *PlayerSystem) HandleEvent(ev event.GameEvent) {
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

	if ev.Type == event.EventClipFinished {
		if payload, ok := ev.Payload.(*event.ClipFinishedPayload); ok {
			s.World.Player().SignalClip(payload.Clip)
		}
		return
	}

	if ev.Type == event.EventUpgradeRequest {
		if payload, ok := ev.Payload.(*event.UpgradeRequestPayload); ok {
			if err := s.World.TryUpgrade(payload.Kind); err != nil {
				s.Log.Debug().Err(err).Str("upgrade", string(payload.Kind)).Msg("Upgrade rejected")
				return
			}
			s.Log.Debug().
				Str("upgrade", string(payload.Kind)).
				Float64("radius", s.World.Session.ShotRadius()).
				Int("cooldown_level", s.World.Session.CooldownLevel()).
				Msg("Upgrade bought")
		}
	}
}

// Update toggles combat mode, moves the vehicle and fires the area weapon
func (s *PlayerSystem) Update() {
	if !s.enabled {
		return
	}

	p := s.World.Player()
	in := s.World.Intent()
	dt := s.World.Time.DeltaTime

	if in.ToggleMode && !p.ToggleMode() {
		s.Log.Debug().Stringer("mode", p.Mode()).Msg("Mode toggle ignored during transition")
	}

	p.Update(dt, in)

	if mode := p.Mode(); mode != s.lastMode {
		s.World.PushEvent(event.EventModeChanged, &event.ModeChangedPayload{
			From: s.lastMode.String(),
			To:   mode.String(),
		})
		s.lastMode = mode
	}

	if in.Fire {
		s.fire(in.Cursor)
	}

	if in.PlaceTurret {
		s.World.PushEvent(event.EventTurretPlaceRequest, &event.TurretPlaceRequestPayload{
			Position: in.Cursor,
		})
	}
}

func (s *PlayerSystem) fire(target mgl64.Vec3) {
	err := s.World.TryFire(target)
	if err == nil {
		return
	}

	var reason event.RejectReason
	switch {
	case errors.Is(err, engine.ErrOnCooldown):
		reason = event.RejectCooldown
	case errors.Is(err, engine.ErrOutOfRange):
		reason = event.RejectRange
	default:
		reason = event.RejectMode
	}
	s.World.PushEvent(event.EventShotRejected, &event.ShotRejectedPayload{
		Target: target,
		Reason: reason,
	})
	s.rejectLog.Debug().Err(err).Msg("Fire rejected")
}
