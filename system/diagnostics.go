package system

import (
	"context"
	"sync/atomic"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/lixenwraith/arena-fighter/engine"
	"github.com/lixenwraith/arena-fighter/event"
	"github.com/lixenwraith/arena-fighter/parameter"
	"github.com/lixenwraith/arena-fighter/status"
)

const diagnosticsSampleInterval = 30

// DiagnosticsSystem publishes world telemetry to the status registry
// Lifecycle events are also counted on the OpenTelemetry meter
type DiagnosticsSystem struct {
	engine.SystemBase

	tickCounter int64

	// Collection sizes
	statEnemies     *atomic.Int64
	statSpawners    *atomic.Int64
	statTurrets     *atomic.Int64
	statProjectiles *atomic.Int64
	statShots       *atomic.Int64

	// Physics
	statBodies   *atomic.Int64
	statSubsteps *atomic.Int64
	statOrphans  *atomic.Int64

	// Session
	statScore    *atomic.Int64
	statRadius   *status.Gauge
	statMode     *status.Label
	statDropped  *atomic.Int64
	statElapsed  *status.Gauge
	statLifetime *atomic.Int64

	lifecycle metric.Int64Counter

	enabled bool
}

// NewDiagnosticsSystem creates a new diagnostics system
// A nil meter disables the OpenTelemetry counter
func NewDiagnosticsSystem(world *engine.World, meter metric.Meter) engine.System {
	reg := world.Status

	s := &DiagnosticsSystem{
		SystemBase: engine.NewSystemBase(world, "diagnostics"),

		statEnemies:     reg.Ints.Get("entity.enemies"),
		statSpawners:    reg.Ints.Get("entity.spawners"),
		statTurrets:     reg.Ints.Get("entity.turrets"),
		statProjectiles: reg.Ints.Get("entity.projectiles"),
		statShots:       reg.Ints.Get("entity.shots"),

		statBodies:   reg.Ints.Get("physics.bodies"),
		statSubsteps: reg.Ints.Get("physics.substeps"),
		statOrphans:  reg.Ints.Get("physics.orphans"),

		statScore:    reg.Ints.Get("session.score"),
		statRadius:   reg.Floats.Get("session.shot_radius"),
		statMode:     reg.Strings.Get("player.mode"),
		statDropped:  reg.Ints.Get("event.dropped"),
		statElapsed:  reg.Floats.Get("session.elapsed"),
		statLifetime: reg.Ints.Get("entity.lifecycle_total"),
	}

	if meter != nil {
		c, err := meter.Int64Counter(
			"arena.entity.lifecycle",
			metric.WithDescription("Entity lifecycle transitions by kind"),
		)
		if err != nil {
			s.Log.Warn().Err(err).Msg("Lifecycle counter unavailable")
		} else {
			s.lifecycle = c
		}
	}

	s.Init()
	return s
}

// Init resets session state for new game
func (s *DiagnosticsSystem) Init() {
	s.tickCounter = 0
	s.enabled = true
}

// Name returns system's name
func (s *DiagnosticsSystem) Name() string {
	return "diagnostics"
}

// Priority returns the system's priority
func (s *DiagnosticsSystem) Priority() int {
	return parameter.PriorityDiagnostics
}

// EventTypes returns the event types DiagnosticsSystem handles
func (s *DiagnosticsSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventEnemySpawned,
		event.EventEnemyDisposed,
		event.EventSpawnerDestroyed,
		event.EventProjectileExpired,
		event.EventShotResolved,
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

// HandleEvent counts entity lifecycle transitions
func (s *DiagnosticsSystem) HandleEvent(ev event.GameEvent) {
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

	if !s.enabled {
		return
	}

	var transition string
	switch ev.Type {
	case event.EventEnemySpawned:
		transition = "enemy_spawned"
	case event.EventEnemyDisposed:
		transition = "enemy_disposed"
	case event.EventSpawnerDestroyed:
		transition = "spawner_destroyed"
	case event.EventProjectileExpired:
		transition = "projectile_ended"
	case event.EventShotResolved:
		transition = "shot_resolved"
	default:
		return
	}

	s.Log.Trace().Stringer("event", ev.Type).Int64("frame", ev.Frame).Msg("Lifecycle")
	s.statLifetime.Add(1)
	s.World.Status.Ints.Get("lifecycle." + transition).Add(1)
	if s.lifecycle != nil {
		s.lifecycle.Add(context.Background(), 1,
			metric.WithAttributes(attribute.String("transition", transition)))
	}
}

// Update samples the world every diagnosticsSampleInterval ticks
func (s *DiagnosticsSystem) Update() {
	if !s.enabled {
		return
	}

	s.tickCounter++
	if s.tickCounter%diagnosticsSampleInterval != 1 {
		return
	}

	w := s.World
	s.statEnemies.Store(int64(len(w.Enemies())))
	s.statSpawners.Store(int64(len(w.Spawners())))
	s.statTurrets.Store(int64(len(w.Turrets())))
	s.statProjectiles.Store(int64(len(w.Projectiles())))
	s.statShots.Store(int64(len(w.Shots())))

	bodies := w.Physics.BodyCount()
	s.statBodies.Store(int64(bodies))
	s.statSubsteps.Store(int64(w.Physics.Substeps()))
	s.statOrphans.Store(int64(bodies - s.ownedBodies()))

	s.statScore.Store(int64(w.Session.Score()))
	s.statRadius.Store(w.Session.ShotRadius())
	s.statMode.Store(w.Player().Mode().String())
	s.statDropped.Store(int64(w.Events.Dropped()))
	s.statElapsed.Store(w.Time.Elapsed)
}

// ownedBodies counts bodies the collections account for
// Dying enemies keep their body until disposal
func (s *DiagnosticsSystem) ownedBodies() int {
	w := s.World
	n := 1 + len(w.Terrain()) + len(w.Turrets())
	for _, e := range w.Enemies() {
		if !e.Disposed() {
			n++
		}
	}
	for _, sp := range w.Spawners() {
		if sp.Active() {
			n++
		}
	}
	return n
}
