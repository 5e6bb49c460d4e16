// Package engine owns the simulation world and the fixed-order frame loop
// One goroutine ticks the World; other goroutines read published snapshots
package engine

import (
	"math/rand/v2"
	"sync"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/arena-fighter/core"
	"github.com/lixenwraith/arena-fighter/entity"
	"github.com/lixenwraith/arena-fighter/event"
	"github.com/lixenwraith/arena-fighter/physics"
	"github.com/lixenwraith/arena-fighter/session"
	"github.com/lixenwraith/arena-fighter/status"
)

// System is updated once per tick in priority order
type System interface {
	Name() string
	// Priority orders updates, lower values run first
	Priority() int
	Init()
	Update()
}

// World contains every entity, the physics world and the shared resources
// Structural changes are staged in pending lists and merged at the sweep
type World struct {
	cfg Config
	log zerolog.Logger

	Physics   *physics.World
	Session   *session.Session
	Events    *event.EventQueue
	Status    *status.Registry
	Scheduler *Scheduler
	Rand      *rand.Rand
	Time      TimeResource

	nextEntityID core.Entity

	player      *entity.Player
	terrain     []*entity.Obstacle
	enemies     []*entity.Enemy
	spawners    []*entity.Spawner
	turrets     []*entity.Turret
	projectiles []*entity.Projectile
	shots       []*entity.AreaShot

	pendingEnemies     []*entity.Enemy
	pendingTurrets     []*entity.Turret
	pendingProjectiles []*entity.Projectile
	pendingShots       []*entity.AreaShot

	terrainViews []EntityView
	targets      []entity.Target

	intent  core.Intent
	systems []System
	router  *EventRouter

	snapshot atomic.Pointer[Snapshot]

	mu          sync.RWMutex
	updateMutex sync.Mutex
}

// NewWorld builds the arena, the player and the initial spawners
func NewWorld(cfg Config, log zerolog.Logger) *World {
	w := &World{
		cfg:          cfg,
		log:          log,
		Physics:      physics.NewWorld(cfg.Physics),
		Session:      session.New(cfg.Session),
		Events:       event.NewEventQueue(),
		Status:       status.NewRegistry(),
		Scheduler:    NewScheduler(),
		Rand:         rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9E3779B97F4A7C15)),
		nextEntityID: 1,
	}
	w.router = NewEventRouter(w.Events)
	w.router.Register(w)

	w.player = entity.NewPlayer(w.CreateEntity(), w.Physics, mgl64.Vec3{}, cfg.Player, cfg.Clips,
		w.Session, w.Logger("player"))
	w.buildArena()
	w.placeSpawners()
	w.snapshot.Store(w.buildSnapshot())
	return w
}

// Config returns the configuration the world was built with
func (w *World) Config() Config {
	return w.cfg
}

// Logger returns a sub-logger tagged with a component name
func (w *World) Logger(name string) zerolog.Logger {
	return w.log.With().Str("system", name).Logger()
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// AddSystem adds a system to the world and sorts by priority
// Systems that handle events are registered with the router
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)
	if h, ok := system.(EventHandler); ok {
		w.router.Register(h)
	}

	// Sort by priority (bubble sort, small N)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns a copy of all registered systems in update order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// RunSafe executes a function while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// PushEvent emits a game event stamped with the current frame
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.Events.Emit(eventType, payload, w.Time.FrameNumber)
}

// Submit emits an event from outside the tick goroutine
// The frame stamp comes from the last published snapshot
func (w *World) Submit(eventType event.EventType, payload any) {
	var frame int64
	if s := w.snapshot.Load(); s != nil {
		frame = s.Frame
	}
	w.Events.Emit(eventType, payload, frame)
	w.log.Debug().Stringer("event", eventType).Int64("frame", frame).Msg("Event submitted")
}

// RequestReset queues a game reset, safe from any goroutine
func (w *World) RequestReset() {
	w.Submit(event.EventGameReset, nil)
}

// Snapshot returns the last published snapshot, safe from any goroutine
func (w *World) Snapshot() *Snapshot {
	return w.snapshot.Load()
}

// Intent returns the input of the current tick
func (w *World) Intent() core.Intent {
	return w.intent
}

// Player returns the player entity
func (w *World) Player() *entity.Player {
	return w.player
}

// Enemies returns the live enemy collection, valid until the next sweep
func (w *World) Enemies() []*entity.Enemy {
	return w.enemies
}

// Spawners returns the active spawner collection
func (w *World) Spawners() []*entity.Spawner {
	return w.spawners
}

// Turrets returns the placed turrets
func (w *World) Turrets() []*entity.Turret {
	return w.turrets
}

// Projectiles returns projectiles in flight
func (w *World) Projectiles() []*entity.Projectile {
	return w.projectiles
}

// Shots returns area shots that are resolving or decaying, including those
// materialized this tick
func (w *World) Shots() []*entity.AreaShot {
	if len(w.pendingShots) == 0 {
		return w.shots
	}
	all := make([]*entity.AreaShot, 0, len(w.shots)+len(w.pendingShots))
	all = append(all, w.shots...)
	return append(all, w.pendingShots...)
}

// Terrain returns walls and obstacles
func (w *World) Terrain() []*entity.Obstacle {
	return w.terrain
}

// EnemyTargets returns the enemies as hit targets in a buffer reused across calls
func (w *World) EnemyTargets() []entity.Target {
	w.targets = w.targets[:0]
	for _, e := range w.enemies {
		w.targets = append(w.targets, e)
	}
	return w.targets
}

// EventTypes implements EventHandler for the world-level reset
func (w *World) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

// HandleEvent resets the world before systems see the reset event
func (w *World) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		w.reset()
	}
}
