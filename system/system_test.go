package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/arena-fighter/audio"
	"github.com/lixenwraith/arena-fighter/core"
	"github.com/lixenwraith/arena-fighter/engine"
	"github.com/lixenwraith/arena-fighter/entity"
	"github.com/lixenwraith/arena-fighter/event"
	"github.com/lixenwraith/arena-fighter/parameter"
	"github.com/lixenwraith/arena-fighter/vmath"
)

const dt = 1.0 / 60.0

// recorder captures every event routed during the dispatch phase
type recorder struct {
	events []event.GameEvent
}

func (r *recorder) Name() string  { return "recorder" }
func (r *recorder) Priority() int { return 0 }
func (r *recorder) Init()         {}
func (r *recorder) Update()       {}

func (r *recorder) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventModeChanged,
		event.EventShotFired,
		event.EventShotRejected,
		event.EventShotResolved,
		event.EventEnemySpawned,
		event.EventEnemyHit,
		event.EventEnemyDisposed,
		event.EventSpawnerHit,
		event.EventSpawnerDestroyed,
		event.EventTurretPlaced,
		event.EventTurretPlaceRejected,
		event.EventProjectileFired,
		event.EventProjectileExpired,
	}
}

func (r *recorder) HandleEvent(ev event.GameEvent) {
	r.events = append(r.events, ev)
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, ev := range r.events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

func (r *recorder) first(t event.EventType) (event.GameEvent, bool) {
	for _, ev := range r.events {
		if ev.Type == t {
			return ev, true
		}
	}
	return event.GameEvent{}, false
}

// cueLog records played cues
type cueLog struct {
	cues []audio.Cue
}

func (c *cueLog) Play(cue audio.Cue) bool {
	c.cues = append(c.cues, cue)
	return true
}

// newScenario builds a world with every system, an empty arena and no spawners
// unless mutate changes the config
func newScenario(t *testing.T, mutate func(*engine.Config)) (*engine.World, *recorder) {
	t.Helper()
	cfg := engine.DefaultConfig()
	cfg.Arena.ObstacleCount = 0
	cfg.Arena.SpawnerCount = 0
	if mutate != nil {
		mutate(&cfg)
	}
	w := engine.NewWorld(cfg, zerolog.Nop())
	RegisterAll(w, nil, nil)
	rec := &recorder{}
	w.AddSystem(rec)
	return w, rec
}

func run(w *engine.World, ticks int, in core.Intent) {
	for i := 0; i < ticks; i++ {
		w.Tick(dt, in)
	}
}

// enterCombat toggles combat through the intent path and waits for the clip
func enterCombat(t *testing.T, w *engine.World) {
	t.Helper()
	w.Tick(dt, core.Intent{ToggleMode: true})
	for i := 0; i < 200 && w.Player().Mode() != entity.ModeCombat; i++ {
		w.Tick(dt, core.Intent{})
	}
	if w.Player().Mode() != entity.ModeCombat {
		t.Fatalf("Mode() = %v, want combat", w.Player().Mode())
	}
}

func TestScenarioSpawnerDestroyedByThreeShots(t *testing.T) {
	w, rec := newScenario(t, func(c *engine.Config) {
		c.Arena.SpawnerCount = 1
		c.Spawner.Health = 3
	})
	if len(w.Spawners()) != 1 {
		t.Fatalf("Spawners() = %d, want 1", len(w.Spawners()))
	}
	sp := w.Spawners()[0]
	target := sp.Position()
	target[1] = 0

	// Stand 3 units from the spawner on the arena side
	toCenter, ok := vmath.PlanarDirection(target, mgl64.Vec3{})
	if !ok {
		t.Fatal("spawner at origin")
	}
	stand := target.Add(toCenter.Mul(3))
	w.Player().Reset(stand)
	enterCombat(t, w)

	// An enemy unrelated to the spawner, far from the blast
	bystander := w.SpawnEnemy(stand.Add(toCenter.Mul(12)), 0)

	fire := core.Intent{Fire: true, Cursor: target}
	resolved := w.Status.Ints.Get("shot.resolved")
	for i := 0; i < 1200 && sp.Active(); i++ {
		w.Tick(dt, fire)
	}
	w.Tick(dt, core.Intent{})

	if sp.Active() {
		t.Fatalf("spawner still active with health %d", sp.Health())
	}
	if got := resolved.Load(); got != 3 {
		t.Errorf("shots resolved = %d, want 3", got)
	}
	if rec.count(event.EventSpawnerHit) < 3 {
		t.Errorf("spawner hit events = %d, want 3", rec.count(event.EventSpawnerHit))
	}
	if len(w.Spawners()) != 0 {
		t.Errorf("Spawners() = %d after destruction, want 0", len(w.Spawners()))
	}
	if w.Session.Score() < parameter.ScoreStart+parameter.ScoreSpawnerDestroyed {
		t.Errorf("Score() = %d, want at least %d", w.Session.Score(), parameter.ScoreStart+parameter.ScoreSpawnerDestroyed)
	}

	// Enemies released before the destruction keep running
	if bystander.State() != entity.EnemyAlive {
		t.Fatalf("bystander state = %v, want alive", bystander.State())
	}
	before := bystander.Position()
	run(w, 30, core.Intent{})
	moved := vmath.PlanarDistance(before, bystander.Position()) > 0
	atPlayer := vmath.PlanarDistance(bystander.Position(), w.Player().Position()) < 0.5
	if !moved && !atPlayer {
		t.Error("bystander enemy stopped updating after spawner destruction")
	}
	if !bystander.Visual.Position.ApproxEqual(bystander.Position()) {
		t.Errorf("visual %v out of sync with body %v", bystander.Visual.Position, bystander.Position())
	}
}

func TestScenarioRangeBoundary(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		accepted bool
	}{
		{"at range", parameter.ShotRange, true},
		{"beyond range", parameter.ShotRange + 0.001, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, rec := newScenario(t, nil)
			enterCombat(t, w)

			score := w.Session.Score()
			w.Tick(dt, core.Intent{Fire: true, Cursor: mgl64.Vec3{0, 0, tt.distance}})
			run(w, 2, core.Intent{})

			if got := rec.count(event.EventShotFired) == 1; got != tt.accepted {
				t.Errorf("fired = %v, want %v", got, tt.accepted)
			}
			if !tt.accepted {
				ev, ok := rec.first(event.EventShotRejected)
				if !ok {
					t.Fatal("no rejection event")
				}
				if p := ev.Payload.(*event.ShotRejectedPayload); p.Reason != event.RejectRange {
					t.Errorf("reason = %v, want range", p.Reason)
				}
				if !w.Player().CanShoot() {
					t.Error("rejected fire changed weapon state")
				}
			}
			if w.Session.Score() != score {
				t.Errorf("Score() = %d, want %d", w.Session.Score(), score)
			}

			run(w, int(parameter.ShotDelay/dt)+2, core.Intent{})
			if got := rec.count(event.EventShotResolved) == 1; got != tt.accepted {
				t.Errorf("resolved = %v, want %v", got, tt.accepted)
			}
		})
	}
}

func TestScenarioTurretIdleThenEngages(t *testing.T) {
	w, rec := newScenario(t, nil)

	tr, err := w.TryPlaceTurret(mgl64.Vec3{10, 0, 0})
	if err != nil {
		t.Fatalf("TryPlaceTurret() = %v", err)
	}

	run(w, 600, core.Intent{})
	if n := rec.count(event.EventProjectileFired); n != 0 {
		t.Fatalf("idle turret fired %d projectiles", n)
	}
	if len(w.Projectiles()) != 0 {
		t.Fatalf("Projectiles() = %d while idle", len(w.Projectiles()))
	}

	enemy := w.SpawnEnemy(tr.Position().Add(mgl64.Vec3{0, 0, 3}), 0)
	limit := int(parameter.TurretCooldown/dt) + 2
	fired := -1
	for i := 0; i < limit; i++ {
		w.Tick(dt, core.Intent{})
		if rec.count(event.EventProjectileFired) > 0 {
			fired = i
			break
		}
	}
	if fired < 0 {
		t.Fatalf("no projectile within %d ticks of an enemy entering range", limit)
	}
	if tr.Target() == nil || tr.Target().ID() != enemy.ID() {
		t.Error("turret not locked on the enemy")
	}

	for i := 0; i < 60 && enemy.State() == entity.EnemyAlive; i++ {
		w.Tick(dt, core.Intent{})
	}
	w.Tick(dt, core.Intent{})
	if enemy.State() != entity.EnemyDying {
		t.Fatalf("enemy state = %v, want dying", enemy.State())
	}
	want := parameter.ScoreStart - parameter.TurretCost + parameter.ScoreProjectileHit
	if w.Session.Score() != want {
		t.Errorf("Score() = %d, want %d", w.Session.Score(), want)
	}
	ev, ok := rec.first(event.EventEnemyHit)
	if !ok || ev.Payload.(*event.EnemyHitPayload).Source != event.HitProjectile {
		t.Error("missing projectile hit event")
	}
}

func TestScenarioStallDoesNotTunnel(t *testing.T) {
	w, _ := newScenario(t, nil)
	h := w.Config().Arena.HalfExtent
	w.Player().Reset(mgl64.Vec3{h - 3, 0, 0})

	for i := 0; i < 120; i++ {
		w.Tick(0.5, core.Intent{MoveX: 1})
		if w.Time.DeltaTime != parameter.MaxFrameDelta {
			t.Fatalf("DeltaTime = %v, want %v", w.Time.DeltaTime, parameter.MaxFrameDelta)
		}
	}

	x := w.Player().Position().X()
	if x > h-parameter.PlayerRadius+0.1 {
		t.Errorf("player x = %v, passed the wall face at %v", x, h)
	}
	if x < h-1.5 {
		t.Errorf("player x = %v, did not reach the wall", x)
	}
	if w.Physics.BodyCount() != 1+len(w.Terrain()) {
		t.Errorf("BodyCount() = %d, want %d", w.Physics.BodyCount(), 1+len(w.Terrain()))
	}
}

func TestEnemyDisposedAfterDeathTimer(t *testing.T) {
	w, rec := newScenario(t, nil)
	e := w.SpawnEnemy(mgl64.Vec3{0, 0, 15}, 0)
	w.Tick(dt, core.Intent{})

	if !e.HitByShot() {
		t.Fatal("HitByShot() = false")
	}
	run(w, int(parameter.EnemyDeathDuration/dt)+5, core.Intent{})

	if rec.count(event.EventEnemyDisposed) != 1 {
		t.Errorf("disposed events = %d, want 1", rec.count(event.EventEnemyDisposed))
	}
	if len(w.Enemies()) != 0 {
		t.Errorf("Enemies() = %d, want 0", len(w.Enemies()))
	}
	if w.Physics.BodyCount() != 1+len(w.Terrain()) {
		t.Errorf("orphaned bodies: %d", w.Physics.BodyCount()-1-len(w.Terrain()))
	}
}

func TestTurretPlacementEvents(t *testing.T) {
	w, rec := newScenario(t, nil)
	place := core.Intent{PlaceTurret: true, Cursor: mgl64.Vec3{2.2, 0, 3.9}}

	w.Tick(dt, place)
	w.Tick(dt, place)
	run(w, 2, core.Intent{})

	if rec.count(event.EventTurretPlaced) != 1 {
		t.Errorf("placed = %d, want 1", rec.count(event.EventTurretPlaced))
	}
	ev, ok := rec.first(event.EventTurretPlaceRejected)
	if !ok {
		t.Fatal("second placement on the same cell not rejected")
	}
	if p := ev.Payload.(*event.TurretPlaceRequestPayload); p.Reason != event.RejectOccupied {
		t.Errorf("reason = %v, want occupied", p.Reason)
	}
	if len(w.Turrets()) != 1 {
		t.Fatalf("Turrets() = %d, want 1", len(w.Turrets()))
	}
	if p := w.Turrets()[0].Position(); p.X() != 2 || p.Z() != 4 {
		t.Errorf("turret at %v, want cell (2, 4)", p)
	}
}

func TestUpgradeRequestEvent(t *testing.T) {
	w, _ := newScenario(t, nil)
	w.PushEvent(event.EventUpgradeRequest, &event.UpgradeRequestPayload{Kind: event.UpgradeRadius})
	w.Tick(dt, core.Intent{})

	if w.Session.ShotRadius() != parameter.ShotBaseRadius+parameter.UpgradeRadiusStep {
		t.Errorf("ShotRadius() = %v", w.Session.ShotRadius())
	}
	if w.Session.Score() != parameter.ScoreStart-parameter.UpgradeRadiusCost {
		t.Errorf("Score() = %d", w.Session.Score())
	}

	// Broke: rejected without state change
	w.PushEvent(event.EventUpgradeRequest, &event.UpgradeRequestPayload{Kind: event.UpgradeCooldown})
	w.Tick(dt, core.Intent{})
	if w.Session.CooldownLevel() != 0 {
		t.Errorf("CooldownLevel() = %d, want 0", w.Session.CooldownLevel())
	}
}

func TestMetaCommandDisablesSystem(t *testing.T) {
	w, _ := newScenario(t, nil)
	e := w.SpawnEnemy(mgl64.Vec3{0, 0, 5}, 0)
	w.PushEvent(event.EventMetaSystemCommandRequest, &event.MetaSystemCommandPayload{SystemName: "enemy", Enabled: false})
	w.Tick(dt, core.Intent{})

	before := e.Position()
	run(w, 30, core.Intent{})
	if !e.Position().ApproxEqual(before) {
		t.Errorf("disabled enemy system moved enemy from %v to %v", before, e.Position())
	}

	w.PushEvent(event.EventMetaSystemCommandRequest, &event.MetaSystemCommandPayload{SystemName: "enemy", Enabled: true})
	run(w, 30, core.Intent{})
	if e.Position().ApproxEqual(before) {
		t.Error("re-enabled enemy system did not move enemy")
	}
}

func TestClipFinishedEndsCombatEntry(t *testing.T) {
	w, _ := newScenario(t, nil)
	w.Tick(dt, core.Intent{ToggleMode: true})
	if w.Player().Mode() != entity.ModeEnteringCombat {
		t.Fatalf("Mode() = %v, want entering combat", w.Player().Mode())
	}

	w.Submit(event.EventClipFinished, &event.ClipFinishedPayload{Clip: "Unrelated"})
	w.Tick(dt, core.Intent{})
	if w.Player().Mode() != entity.ModeEnteringCombat {
		t.Fatalf("unrelated clip changed mode to %v", w.Player().Mode())
	}

	w.Submit(event.EventClipFinished, &event.ClipFinishedPayload{Clip: parameter.ClipEnterCombat})
	w.Tick(dt, core.Intent{})
	if w.Player().Mode() != entity.ModeCombat {
		t.Errorf("Mode() = %v after clip signal, want combat", w.Player().Mode())
	}
}

func TestResetThroughEvent(t *testing.T) {
	w, _ := newScenario(t, func(c *engine.Config) { c.Arena.SpawnerCount = 3 })
	run(w, 400, core.Intent{})
	if len(w.Enemies()) == 0 {
		t.Fatal("spawners released no enemies")
	}
	spawned := w.Status.Ints.Get("spawner.spawned")
	if got := spawned.Load(); got != int64(len(w.Enemies())) {
		t.Errorf("spawner.spawned = %d, want %d", got, len(w.Enemies()))
	}

	w.RequestReset()
	w.Tick(dt, core.Intent{})

	if got := spawned.Load(); got != int64(len(w.Enemies())) {
		t.Errorf("spawner.spawned after reset = %d, want %d", got, len(w.Enemies()))
	}

	if len(w.Enemies()) != 0 || len(w.Projectiles()) != 0 || len(w.Turrets()) != 0 {
		t.Error("entities survived reset")
	}
	if len(w.Spawners()) != 3 {
		t.Errorf("Spawners() = %d, want 3", len(w.Spawners()))
	}
	if w.Session.Score() != parameter.ScoreStart {
		t.Errorf("Score() = %d, want %d", w.Session.Score(), parameter.ScoreStart)
	}
}

func TestAudioCuesFollowEvents(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.Arena.ObstacleCount = 0
	cfg.Arena.SpawnerCount = 0
	w := engine.NewWorld(cfg, zerolog.Nop())
	cues := &cueLog{}
	RegisterAll(w, cues, nil)

	enterCombat(t, w)
	w.Tick(dt, core.Intent{Fire: true, Cursor: mgl64.Vec3{0, 0, 3}})
	run(w, int(parameter.ShotDelay/dt)+3, core.Intent{})

	want := map[audio.Cue]bool{audio.CueModeChange: false, audio.CueFire: false, audio.CueExplosion: false}
	for _, c := range cues.cues {
		if _, ok := want[c]; ok {
			want[c] = true
		}
	}
	for c, seen := range want {
		if !seen {
			t.Errorf("cue %v not played", c)
		}
	}
}

func TestDiagnosticsPublishesCounts(t *testing.T) {
	w, _ := newScenario(t, nil)
	w.SpawnEnemy(mgl64.Vec3{0, 0, 12}, 0)
	run(w, diagnosticsSampleInterval+1, core.Intent{})

	if got := w.Status.Ints.Get("entity.enemies").Load(); got != 1 {
		t.Errorf("entity.enemies = %d, want 1", got)
	}
	if got := w.Status.Ints.Get("physics.orphans").Load(); got != 0 {
		t.Errorf("physics.orphans = %d, want 0", got)
	}
	if got := w.Status.Strings.Get("player.mode").Load(); got != entity.ModeDriving.String() {
		t.Errorf("player.mode = %q", got)
	}
	if got := w.Status.Ints.Get("lifecycle.enemy_spawned").Load(); got != 1 {
		t.Errorf("lifecycle.enemy_spawned = %d, want 1", got)
	}
}
