package entity

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/arena-fighter/core"
	"github.com/lixenwraith/arena-fighter/parameter"
	"github.com/lixenwraith/arena-fighter/physics"
	"github.com/lixenwraith/arena-fighter/session"
	"github.com/lixenwraith/arena-fighter/vmath"
)

const testDt = 1.0 / 60.0

type fakeTarget struct {
	id    core.Entity
	pos   mgl64.Vec3
	alive bool
	hits  int
}

func (f *fakeTarget) ID() core.Entity      { return f.id }
func (f *fakeTarget) Position() mgl64.Vec3 { return f.pos }
func (f *fakeTarget) Targetable() bool     { return f.alive }
func (f *fakeTarget) HitByShot() bool {
	if !f.alive {
		return false
	}
	f.alive = false
	f.hits++
	return true
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func newTestPlayer(clips map[string]float64) (*Player, *physics.World, *session.Session) {
	w := physics.NewWorld(physics.DefaultConfig())
	sess := session.New(session.DefaultConfig())
	p := NewPlayer(1, w, mgl64.Vec3{}, DefaultPlayerConfig(), clips, sess, zerolog.Nop())
	return p, w, sess
}

func enterCombat(t *testing.T, p *Player) {
	t.Helper()
	if !p.ToggleMode() {
		t.Fatal("ToggleMode() from driving = false")
	}
	for i := 0; i < 200 && p.Mode() != ModeCombat; i++ {
		p.Update(testDt, core.Intent{})
	}
	if p.Mode() != ModeCombat {
		t.Fatalf("Mode() = %v, want combat", p.Mode())
	}
}

func TestEnemyHitIsIdempotent(t *testing.T) {
	w := physics.NewWorld(physics.DefaultConfig())
	e := NewEnemy(2, w, mgl64.Vec3{1, 0, 1}, DefaultEnemyConfig(), newRand())

	if !e.HitByShot() {
		t.Fatal("first HitByShot() = false, want true")
	}
	if e.State() != EnemyDying {
		t.Errorf("State() = %v, want dying", e.State())
	}
	if e.Body.Type() != physics.Dynamic {
		t.Errorf("body type = %v, want dynamic", e.Body.Type())
	}
	if e.Targetable() {
		t.Error("dying enemy is targetable")
	}

	if e.HitByShot() {
		t.Error("second HitByShot() = true, want false")
	}
	if e.Body.Type() != physics.Dynamic {
		t.Errorf("body type after second hit = %v, want dynamic", e.Body.Type())
	}
}

func TestEnemyDisposesAfterDeathTimer(t *testing.T) {
	w := physics.NewWorld(physics.DefaultConfig())
	e := NewEnemy(2, w, mgl64.Vec3{1, 0, 1}, DefaultEnemyConfig(), newRand())
	e.HitByShot()

	for i := 0; i < 10; i++ {
		e.Update(0.1, mgl64.Vec3{})
		w.Step(testDt, 0.1, 6)
	}
	if e.Disposed() {
		t.Fatal("disposed before death duration")
	}

	for i := 0; i < 60; i++ {
		e.Update(0.1, mgl64.Vec3{})
	}
	if !e.Disposed() || e.State() != EnemyDisposed {
		t.Fatalf("state = %v, disposed = %v, want disposed", e.State(), e.Disposed())
	}
	if w.Contains(e.Body) || w.BodyCount() != 0 {
		t.Errorf("BodyCount() = %d after dispose, want 0", w.BodyCount())
	}
	if e.HitByShot() {
		t.Error("HitByShot() on disposed enemy = true")
	}
}

func TestEnemyBehavior(t *testing.T) {
	cfg := DefaultEnemyConfig()

	tests := []struct {
		name     string
		player   mgl64.Vec3
		behavior Behavior
		speed    float64
	}{
		{"chases close player", mgl64.Vec3{3, 0, 0}, BehaviorChasing, cfg.ChaseSpeed},
		{"wanders when player far", mgl64.Vec3{60, 0, 0}, BehaviorWandering, cfg.WanderSpeed},
		{"degenerate direction stops", mgl64.Vec3{0, 0, 0}, BehaviorChasing, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := physics.NewWorld(physics.DefaultConfig())
			e := NewEnemy(2, w, mgl64.Vec3{}, cfg, newRand())
			e.Update(testDt, tt.player)

			if e.Behavior() != tt.behavior {
				t.Errorf("Behavior() = %v, want %v", e.Behavior(), tt.behavior)
			}
			v := vmath.Flatten(e.Body.Velocity()).Len()
			if math.Abs(v-tt.speed) > 1e-9 {
				t.Errorf("speed = %v, want %v", v, tt.speed)
			}
		})
	}
}

func TestEnemyWanderTargetAvoidsPlayer(t *testing.T) {
	cfg := DefaultEnemyConfig()
	w := physics.NewWorld(physics.DefaultConfig())
	e := NewEnemy(2, w, mgl64.Vec3{15, 0, 15}, cfg, newRand())
	player := mgl64.Vec3{-9, 0, -9}

	for i := 0; i < 20; i++ {
		e.pickWanderTarget(player)
		target, ok := e.WanderTarget()
		if !ok {
			t.Fatal("no wander target after pick")
		}
		if math.Abs(target.X()) > cfg.WanderHalfExtent || math.Abs(target.Z()) > cfg.WanderHalfExtent {
			t.Errorf("target %v outside wander area", target)
		}
		if d := vmath.PlanarDistance(target, player); d < cfg.WanderAvoidRadius {
			t.Errorf("target %v at %v from player, want >= %v", target, d, cfg.WanderAvoidRadius)
		}
	}
}

func TestSpawnerHitTransitionsOnce(t *testing.T) {
	w := physics.NewWorld(physics.DefaultConfig())
	cfg := DefaultSpawnerConfig()
	cfg.Health = 3
	s := NewSpawner(3, w, mgl64.Vec3{10, 0, 10}, cfg, newRand())

	want := []bool{false, false, true, false}
	for i, exp := range want {
		if got := s.Hit(); got != exp {
			t.Errorf("Hit() #%d = %v, want %v", i+1, got, exp)
		}
	}
	if s.State() != SpawnerDestroyed || s.Health() != 0 {
		t.Errorf("state = %v health = %d, want destroyed 0", s.State(), s.Health())
	}
	if w.Contains(s.Body) {
		t.Error("destroyed spawner body still simulated")
	}
	if _, ok := s.Update(cfg.Interval, mgl64.Vec3{}); ok {
		t.Error("destroyed spawner produced a spawn point")
	}
}

func TestSpawnerSpawnPoint(t *testing.T) {
	cfg := DefaultSpawnerConfig()
	center := mgl64.Vec3{10, 0, 10}

	t.Run("periodic within radius", func(t *testing.T) {
		w := physics.NewWorld(physics.DefaultConfig())
		s := NewSpawner(3, w, center, cfg, newRand())

		if _, ok := s.Update(cfg.Interval/2, mgl64.Vec3{}); ok {
			t.Fatal("spawned before interval")
		}
		p, ok := s.Update(cfg.Interval/2, mgl64.Vec3{})
		if !ok {
			t.Fatal("no spawn at interval")
		}
		if d := vmath.PlanarDistance(p, center); d > cfg.SpawnRadius+1e-9 {
			t.Errorf("spawn distance = %v, want <= %v", d, cfg.SpawnRadius)
		}
		if _, ok := s.Update(testDt, mgl64.Vec3{}); ok {
			t.Error("timer not reset after spawn")
		}
	})

	t.Run("skips cycle when player blocks every point", func(t *testing.T) {
		w := physics.NewWorld(physics.DefaultConfig())
		blocked := cfg
		blocked.Clearance = 100
		s := NewSpawner(3, w, center, blocked, newRand())

		if _, ok := s.Update(cfg.Interval, center); ok {
			t.Error("spawned inside player clearance")
		}
		if s.timer != cfg.Interval {
			t.Errorf("timer = %v, want reset to %v", s.timer, cfg.Interval)
		}
	})
}

func TestTurretAimRetention(t *testing.T) {
	w := physics.NewWorld(physics.DefaultConfig())
	tr := NewTurret(4, w, mgl64.Vec3{}, DefaultTurretConfig(), nil)
	enemy := &fakeTarget{id: 9, pos: mgl64.Vec3{3, 0.5, 0}, alive: true}
	targets := []Target{enemy}

	for i := 0; i < 60; i++ {
		tr.Update(testDt, targets)
	}
	if math.Abs(tr.AimAngle()-math.Pi/2) > 1e-9 {
		t.Fatalf("AimAngle() = %v, want π/2", tr.AimAngle())
	}
	if math.Abs(tr.Heading()-math.Pi/2) > 1e-9 {
		t.Fatalf("Heading() = %v, want π/2", tr.Heading())
	}

	enemy.alive = false
	for i := 0; i < 120; i++ {
		if _, fired := tr.Update(testDt, targets); fired {
			t.Fatal("fired without target")
		}
	}
	if tr.Target() != nil {
		t.Error("Target() retained a dead enemy")
	}
	if math.Abs(tr.Heading()-math.Pi/2) > 1e-9 {
		t.Errorf("Heading() = %v after losing target, want π/2", tr.Heading())
	}
}

func TestTurretTargetSelection(t *testing.T) {
	cfg := DefaultTurretConfig()

	tests := []struct {
		name    string
		targets []*fakeTarget
		want    core.Entity
	}{
		{"exact range excluded", []*fakeTarget{{id: 1, pos: mgl64.Vec3{cfg.Range, 0, 0}, alive: true}}, 0},
		{"nearest wins", []*fakeTarget{
			{id: 1, pos: mgl64.Vec3{4, 0, 0}, alive: true},
			{id: 2, pos: mgl64.Vec3{0, 0, 2}, alive: true},
		}, 2},
		{"tie keeps first", []*fakeTarget{
			{id: 1, pos: mgl64.Vec3{2, 0, 0}, alive: true},
			{id: 2, pos: mgl64.Vec3{-2, 0, 0}, alive: true},
		}, 1},
		{"dying skipped", []*fakeTarget{
			{id: 1, pos: mgl64.Vec3{1, 0, 0}, alive: false},
			{id: 2, pos: mgl64.Vec3{3, 0, 0}, alive: true},
		}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := physics.NewWorld(physics.DefaultConfig())
			tr := NewTurret(4, w, mgl64.Vec3{}, cfg, nil)
			targets := make([]Target, len(tt.targets))
			for i, ft := range tt.targets {
				targets[i] = ft
			}

			tr.Update(testDt, targets)
			var got core.Entity
			if tr.Target() != nil {
				got = tr.Target().ID()
			}
			if got != tt.want {
				t.Errorf("target = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTurretFireCadence(t *testing.T) {
	w := physics.NewWorld(physics.DefaultConfig())
	cfg := DefaultTurretConfig()
	tr := NewTurret(4, w, mgl64.Vec3{}, cfg, DefaultClips())

	// Idle turret never fires
	for i := 0; i < 600; i++ {
		if _, fired := tr.Update(testDt, nil); fired {
			t.Fatal("idle turret fired")
		}
	}

	enemy := &fakeTarget{id: 9, pos: mgl64.Vec3{0, cfg.Height, 3}, alive: true}
	launch, fired := tr.Update(testDt, []Target{enemy})
	if !fired {
		t.Fatal("no launch when target entered range")
	}
	wantOrigin := mgl64.Vec3{0, cfg.Height, cfg.MuzzleOffset}
	if !launch.Origin.ApproxEqualThreshold(wantOrigin, 1e-9) {
		t.Errorf("Origin = %v, want %v", launch.Origin, wantOrigin)
	}
	if !launch.Direction.ApproxEqualThreshold(mgl64.Vec3{0, 0, 1}, 1e-9) {
		t.Errorf("Direction = %v, want +Z", launch.Direction)
	}
	if !tr.Anim.IsPlaying(parameter.ClipTurretFire) {
		t.Error("fire clip not playing")
	}

	shots := 0
	ticks := int(cfg.Cooldown/testDt) + 2
	for i := 0; i < ticks; i++ {
		if _, fired := tr.Update(testDt, []Target{enemy}); fired {
			shots++
		}
	}
	if shots != 1 {
		t.Errorf("shots in one cooldown window = %d, want 1", shots)
	}
}

func TestProjectileExpiresWithinBound(t *testing.T) {
	p := NewProjectile(5, mgl64.Vec3{}, mgl64.Vec3{1, 0, 0}, DefaultProjectileConfig())
	bound := p.MaxTicks(testDt)

	ticks := 0
	var impact Impact
	for p.Alive() {
		ticks++
		if ticks > bound {
			t.Fatalf("still alive after %d ticks", bound)
		}
		if imp, done := p.Update(testDt, nil, nil); done {
			impact = imp
		}
	}
	if !impact.Expired || impact.Target != nil {
		t.Errorf("impact = %+v, want expiry without target", impact)
	}
	if _, done := p.Update(testDt, nil, nil); done {
		t.Error("dead projectile reported another impact")
	}
}

func TestProjectileHitsNearestTarget(t *testing.T) {
	far := &fakeTarget{id: 1, pos: mgl64.Vec3{0, 0.5, 8}, alive: true}
	near := &fakeTarget{id: 2, pos: mgl64.Vec3{0.2, 0.5, 5}, alive: true}
	dying := &fakeTarget{id: 3, pos: mgl64.Vec3{0, 0.5, 2}, alive: false}

	p := NewProjectile(5, mgl64.Vec3{0, 0.5, 0}, mgl64.Vec3{0, 0, 1}, DefaultProjectileConfig())
	impact, done := p.Update(1, []Target{far, near, dying}, nil)
	if !done {
		t.Fatal("no impact on a segment crossing targets")
	}
	if impact.Target != near || !impact.Effective {
		t.Errorf("impact target = %v effective = %v, want near target hit", impact.Target, impact.Effective)
	}
	if near.hits != 1 || far.hits != 0 || dying.hits != 0 {
		t.Errorf("hits near=%d far=%d dying=%d, want 1 0 0", near.hits, far.hits, dying.hits)
	}
	if p.Alive() {
		t.Error("projectile alive after hit")
	}
}

func TestProjectileHitsFirstEnteredTarget(t *testing.T) {
	offset := &fakeTarget{id: 1, pos: mgl64.Vec3{0.5, 0.5, 0.45}, alive: true}
	ahead := &fakeTarget{id: 2, pos: mgl64.Vec3{0.55, 0.5, 0}, alive: true}

	p := NewProjectile(5, mgl64.Vec3{0, 0.5, 0}, mgl64.Vec3{1, 0, 0}, DefaultProjectileConfig())
	impact, done := p.Update(1, []Target{offset, ahead}, nil)
	if !done || impact.Target != ahead {
		t.Fatalf("impact target = %v, want the target entered first", impact.Target)
	}
	if offset.hits != 0 {
		t.Error("offset target hit")
	}
	if math.Abs(impact.Point.X()-0.05) > 1e-9 {
		t.Errorf("impact x = %v, want 0.05", impact.Point.X())
	}
}

func TestProjectileTargetBeforeTerrainFace(t *testing.T) {
	w := physics.NewWorld(physics.DefaultConfig())
	w.AddBody(physics.NewBox(physics.Static, mgl64.Vec3{0, 0.5, 3.6}, 2, 0.5, physics.ProfileTerrain))
	target := &fakeTarget{id: 1, pos: mgl64.Vec3{0, 0.5, 3.3}, alive: true}

	p := NewProjectile(5, mgl64.Vec3{0, 0.5, 0}, mgl64.Vec3{0, 0, 1}, DefaultProjectileConfig())
	impact, done := p.Update(1, []Target{target}, w)
	if !done || impact.Terrain || impact.Target != target {
		t.Fatalf("impact = %+v, want the target entered at z 2.8", impact)
	}
	if math.Abs(p.Position().Z()-2.8) > 1e-9 {
		t.Errorf("position z = %v, want 2.8", p.Position().Z())
	}
}

func TestProjectileTerrainTakesPrecedence(t *testing.T) {
	w := physics.NewWorld(physics.DefaultConfig())
	wall := physics.NewBox(physics.Static, mgl64.Vec3{0, 0.5, 3}, 2, 0.5, physics.ProfileTerrain)
	w.AddBody(wall)
	behind := &fakeTarget{id: 1, pos: mgl64.Vec3{0, 0.5, 5}, alive: true}

	p := NewProjectile(5, mgl64.Vec3{0, 0.5, 0}, mgl64.Vec3{0, 0, 1}, DefaultProjectileConfig())
	impact, done := p.Update(1, []Target{behind}, w)
	if !done || !impact.Terrain {
		t.Fatalf("impact = %+v, want terrain", impact)
	}
	if behind.hits != 0 {
		t.Error("target behind terrain was hit")
	}
	if math.Abs(p.Position().Z()-2.5) > 1e-6 {
		t.Errorf("clamped z = %v, want 2.5", p.Position().Z())
	}
}

func TestPlayerFireRangeBoundary(t *testing.T) {
	tests := []struct {
		name   string
		target mgl64.Vec3
		want   FireCheck
	}{
		{"exactly at range", mgl64.Vec3{parameter.ShotRange, 0, 0}, FireReady},
		{"inside range", mgl64.Vec3{3, 0, 4}, FireReady},
		{"just beyond range", mgl64.Vec3{parameter.ShotRange + 1e-6, 0, 0}, FireOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _, _ := newTestPlayer(DefaultClips())
			enterCombat(t, p)

			if got := p.CheckFire(tt.target); got != tt.want {
				t.Fatalf("CheckFire() = %v, want %v", got, tt.want)
			}
			_, ok := p.Fire(tt.target)
			if ok != (tt.want == FireReady) {
				t.Errorf("Fire() accepted = %v, want %v", ok, tt.want == FireReady)
			}
			if !ok && (!p.CanShoot() || p.CooldownRemaining() != 0) {
				t.Error("rejected fire changed weapon state")
			}
		})
	}
}

func TestPlayerFireRejectedOutsideCombat(t *testing.T) {
	p, _, _ := newTestPlayer(DefaultClips())
	if _, ok := p.Fire(mgl64.Vec3{1, 0, 0}); ok {
		t.Error("Fire() accepted while driving")
	}
	if p.CheckFire(mgl64.Vec3{1, 0, 0}) != FireNotInCombat {
		t.Errorf("CheckFire() = %v, want not_in_combat", p.CheckFire(mgl64.Vec3{1, 0, 0}))
	}
}

func TestPlayerCooldownMonotonic(t *testing.T) {
	p, _, sess := newTestPlayer(DefaultClips())
	enterCombat(t, p)

	order, ok := p.Fire(mgl64.Vec3{0, 0, 5})
	if !ok {
		t.Fatal("Fire() rejected")
	}
	if order.Delay != parameter.ShotDelay {
		t.Errorf("Delay = %v, want %v", order.Delay, parameter.ShotDelay)
	}
	if !p.LastFireDirection().ApproxEqualThreshold(mgl64.Vec3{0, 0, 1}, 1e-9) {
		t.Errorf("LastFireDirection() = %v, want +Z", p.LastFireDirection())
	}
	if _, ok := p.Fire(mgl64.Vec3{0, 0, 5}); ok {
		t.Error("Fire() accepted on cooldown")
	}

	prev := p.CooldownRemaining()
	prevIndicator := sess.CooldownIndicator()
	ready := 0
	for i := 0; i < 300; i++ {
		was := p.CanShoot()
		p.Update(testDt, core.Intent{})
		if r := p.CooldownRemaining(); r > prev {
			t.Fatalf("remaining rose from %v to %v", prev, r)
		} else {
			prev = r
		}
		if ind := sess.CooldownIndicator(); ind < prevIndicator {
			t.Fatalf("indicator fell from %v to %v", prevIndicator, ind)
		} else {
			prevIndicator = ind
		}
		if !was && p.CanShoot() {
			ready++
		}
	}
	if ready != 1 {
		t.Errorf("canShoot became true %d times, want 1", ready)
	}
	if prev != 0 || sess.CooldownIndicator() != 1 {
		t.Errorf("remaining = %v indicator = %v, want 0 and 1", prev, sess.CooldownIndicator())
	}
}

func TestPlayerModeTransitions(t *testing.T) {
	t.Run("clips gate transitions", func(t *testing.T) {
		p, _, _ := newTestPlayer(DefaultClips())
		p.ToggleMode()
		if p.Mode() != ModeEnteringCombat || !p.Body.IsSleeping() {
			t.Fatalf("mode = %v sleeping = %v, want entering and asleep", p.Mode(), p.Body.IsSleeping())
		}
		if p.ToggleMode() {
			t.Error("toggle accepted mid transition")
		}

		p.SignalClip(parameter.ClipEnterCombat)
		p.Update(0, core.Intent{})
		if p.Mode() != ModeCombat {
			t.Fatalf("mode after signal = %v, want combat", p.Mode())
		}

		p.ToggleMode()
		if p.Mode() != ModeExitingCombat || !p.MovementLocked() {
			t.Fatalf("mode = %v locked = %v, want exiting and locked", p.Mode(), p.MovementLocked())
		}
		for i := 0; i < 100 && p.Mode() != ModeDriving; i++ {
			p.Update(testDt, core.Intent{MoveX: 1})
			if p.Mode() == ModeExitingCombat && p.Body.Velocity().Len() != 0 {
				t.Fatal("moved while locked")
			}
		}
		if p.Mode() != ModeDriving || p.MovementLocked() || p.Body.IsSleeping() {
			t.Errorf("mode = %v locked = %v sleeping = %v, want driving unlocked awake",
				p.Mode(), p.MovementLocked(), p.Body.IsSleeping())
		}
	})

	t.Run("missing clips resolve immediately", func(t *testing.T) {
		p, _, _ := newTestPlayer(nil)
		p.ToggleMode()
		if p.Mode() != ModeCombat {
			t.Fatalf("mode = %v, want combat", p.Mode())
		}
		p.ToggleMode()
		if p.Mode() != ModeDriving || p.MovementLocked() {
			t.Errorf("mode = %v locked = %v, want driving unlocked", p.Mode(), p.MovementLocked())
		}
	})
}

func TestPlayerDrive(t *testing.T) {
	p, w, _ := newTestPlayer(DefaultClips())

	lastErr := math.Inf(1)
	for i := 0; i < 120; i++ {
		p.Update(testDt, core.Intent{MoveX: 1, MoveZ: 1})
		w.Step(testDt, testDt, parameter.MaxSubSteps)
		p.SyncVisual()

		herr := math.Abs(vmath.QuatHeading(p.Visual.Orientation) - math.Pi/4)
		if herr > lastErr+1e-12 {
			t.Fatalf("tick %d: heading error grew from %v to %v", i, lastErr, herr)
		}
		lastErr = herr
	}

	want := parameter.PlayerSpeed / math.Sqrt2
	v := p.Body.Velocity()
	if math.Abs(v.X()-want) > 1e-9 || math.Abs(v.Z()-want) > 1e-9 {
		t.Errorf("velocity = %v, want diagonal %v", v, want)
	}
	if h := vmath.QuatHeading(p.Visual.Orientation); math.Abs(h-math.Pi/4) > 1e-3 {
		t.Errorf("heading = %v, want π/4", h)
	}
	if !p.Visual.Position.ApproxEqualThreshold(p.Body.Position(), 1e-12) {
		t.Error("visual out of sync with body")
	}
	if !p.Anim.IsPlaying(parameter.ClipDrive) {
		t.Error("drive clip not playing while moving")
	}

	p.Update(testDt, core.Intent{})
	if p.Body.Velocity().Len() != 0 || p.Anim.IsPlaying(parameter.ClipDrive) {
		t.Error("player kept driving without input")
	}
}

func TestAreaShotResolvesOnce(t *testing.T) {
	w := physics.NewWorld(physics.DefaultConfig())
	inside := &fakeTarget{id: 1, pos: mgl64.Vec3{0.5, 0.5, 0}, alive: true}
	edge := &fakeTarget{id: 2, pos: mgl64.Vec3{0, 0.5, 1}, alive: true}
	outside := &fakeTarget{id: 3, pos: mgl64.Vec3{2, 0.5, 0}, alive: true}

	cfg := DefaultSpawnerConfig()
	cfg.Health = 1
	sp := NewSpawner(4, w, mgl64.Vec3{-1, 0, 0}, cfg, newRand())

	shot := NewAreaShot(5, mgl64.Vec3{}, 1, parameter.ShotDecay)
	res, ok := shot.Resolve([]Target{inside, edge, outside}, []*Spawner{sp})
	if !ok {
		t.Fatal("first Resolve() = false")
	}
	if len(res.Enemies) != 2 || len(res.Spawners) != 1 || len(res.Destroyed) != 1 {
		t.Errorf("result = %d enemies %d spawners %d destroyed, want 2 1 1",
			len(res.Enemies), len(res.Spawners), len(res.Destroyed))
	}
	if outside.hits != 0 {
		t.Error("target outside radius hit")
	}

	if _, ok := shot.Resolve([]Target{outside}, nil); ok {
		t.Error("second Resolve() = true")
	}

	for i := 0; i < 100 && !shot.Disposed(); i++ {
		shot.Update(testDt)
	}
	if !shot.Disposed() {
		t.Error("shot not disposed after decay")
	}
}
