package entity

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/arena-fighter/component"
	"github.com/lixenwraith/arena-fighter/core"
	"github.com/lixenwraith/arena-fighter/parameter"
	"github.com/lixenwraith/arena-fighter/physics"
	"github.com/lixenwraith/arena-fighter/session"
	"github.com/lixenwraith/arena-fighter/vmath"
)

// Mode is the player vehicle state
type Mode uint8

const (
	ModeDriving Mode = iota
	ModeEnteringCombat
	ModeCombat
	ModeExitingCombat
)

var modeNames = [...]string{
	ModeDriving:        "driving",
	ModeEnteringCombat: "entering_combat",
	ModeCombat:         "combat",
	ModeExitingCombat:  "exiting_combat",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "unknown"
}

// FireCheck is the outcome of validating a fire input
type FireCheck uint8

const (
	FireReady FireCheck = iota
	FireNotInCombat
	FireOnCooldown
	FireOutOfRange
)

func (c FireCheck) String() string {
	switch c {
	case FireReady:
		return "ready"
	case FireNotInCombat:
		return "not_in_combat"
	case FireOnCooldown:
		return "on_cooldown"
	case FireOutOfRange:
		return "out_of_range"
	}
	return "unknown"
}

// PlayerConfig holds player tuning
type PlayerConfig struct {
	Speed         float64
	RotationSpeed float64
	Radius        float64
	RestHeight    float64

	ShotRange    float64
	ShotCooldown float64
	ShotDelay    float64
}

// DefaultPlayerConfig returns the compiled-in player tuning
func DefaultPlayerConfig() PlayerConfig {
	return PlayerConfig{
		Speed:         parameter.PlayerSpeed,
		RotationSpeed: parameter.PlayerRotationSpeed,
		Radius:        parameter.PlayerRadius,
		RestHeight:    parameter.PlayerRestHeight,
		ShotRange:     parameter.ShotRange,
		ShotCooldown:  parameter.ShotCooldown,
		ShotDelay:     parameter.ShotDelay,
	}
}

// DefaultClips returns the clip library shipped with the vehicle model
func DefaultClips() component.ClipLibrary {
	return component.ClipLibrary{
		parameter.ClipDrive:       parameter.ClipDriveLength,
		parameter.ClipEnterCombat: parameter.ClipEnterCombatTime,
		parameter.ClipExitCombat:  parameter.ClipExitCombatTime,
		parameter.ClipTurretFire:  parameter.ClipTurretFireTime,
	}
}

// FireOrder schedules an area shot at Target after Delay seconds
type FireOrder struct {
	Origin mgl64.Vec3
	Target mgl64.Vec3
	Delay  float64
}

// Player is the controlled vehicle
// Movement applies only while Driving and unlocked; the weapon only in Combat
type Player struct {
	Lifecycle
	Body   *physics.Body
	Visual *component.Visual
	Anim   *component.Animator

	cfg     PlayerConfig
	world   *physics.World
	session *session.Session
	log     zerolog.Logger

	mode          Mode
	locked        bool
	orientation   mgl64.Quat
	targetHeading float64
	cursor        mgl64.Vec3
	fireDir       mgl64.Vec3

	cooldown component.Cooldown
	canShoot bool
}

// NewPlayer creates the player at pos with a kinematic body in world
func NewPlayer(id core.Entity, world *physics.World, pos mgl64.Vec3, cfg PlayerConfig,
	clips component.ClipLibrary, sess *session.Session, log zerolog.Logger) *Player {
	pos[1] = cfg.RestHeight
	body := physics.NewCircle(physics.Kinematic, pos, cfg.Radius, physics.ProfilePlayer)
	world.AddBody(body)

	p := &Player{
		Lifecycle:   Lifecycle{id: id},
		Body:        body,
		Visual:      component.NewVisual(component.ColorNormal),
		Anim:        component.NewAnimator(clips),
		cfg:         cfg,
		world:       world,
		session:     sess,
		log:         log,
		orientation: mgl64.QuatIdent(),
		fireDir:     mgl64.Vec3{0, 0, 1},
		canShoot:    true,
	}
	component.Sync(body, p.Visual)
	return p
}

// Mode returns the vehicle state
func (p *Player) Mode() Mode {
	return p.mode
}

// MovementLocked reports whether movement input is currently suppressed
func (p *Player) MovementLocked() bool {
	return p.locked
}

// CanShoot reports whether the weapon cooldown has elapsed
func (p *Player) CanShoot() bool {
	return p.canShoot
}

// CooldownRemaining returns seconds until the weapon is ready
func (p *Player) CooldownRemaining() float64 {
	return p.cooldown.Remaining
}

// LastFireDirection returns the planar unit direction of the last accepted shot
func (p *Player) LastFireDirection() mgl64.Vec3 {
	return p.fireDir
}

// Cursor returns the last cursor world point
func (p *Player) Cursor() mgl64.Vec3 {
	return p.cursor
}

// Position returns the body position
func (p *Player) Position() mgl64.Vec3 {
	return p.Body.Position()
}

// ToggleMode starts entering or exiting combat
// Ignored while a transition clip is playing
func (p *Player) ToggleMode() bool {
	switch p.mode {
	case ModeDriving:
		if p.locked {
			return false
		}
		p.Body.SetVelocity(mgl64.Vec3{})
		p.Body.Sleep()
		p.mode = ModeEnteringCombat
		p.Visual.Color = component.ColorCombat
		if !p.Anim.Play(parameter.ClipEnterCombat, false) {
			p.log.Warn().Str("clip", parameter.ClipEnterCombat).Msg("Clip missing, entering combat immediately")
			p.mode = ModeCombat
		}
		return true

	case ModeCombat:
		p.mode = ModeExitingCombat
		p.locked = true
		if !p.Anim.Play(parameter.ClipExitCombat, false) {
			p.log.Warn().Str("clip", parameter.ClipExitCombat).Msg("Clip missing, releasing movement lock")
			p.finishExit()
		}
		return true
	}
	return false
}

// SignalClip forwards an external clip completion to the animator
func (p *Player) SignalClip(name string) {
	p.Anim.Signal(name)
}

func (p *Player) finishExit() {
	p.locked = false
	p.Body.WakeUp()
	p.mode = ModeDriving
	p.Visual.Color = component.ColorNormal
}

// Update advances clips, the weapon cooldown and movement for one tick
func (p *Player) Update(dt float64, in core.Intent) {
	p.Anim.Update(dt)
	switch {
	case p.mode == ModeEnteringCombat && p.Anim.TakeFinished(parameter.ClipEnterCombat):
		p.mode = ModeCombat
	case p.mode == ModeExitingCombat && p.Anim.TakeFinished(parameter.ClipExitCombat):
		p.finishExit()
	}

	p.tickCooldown(dt)
	p.cursor = in.Cursor

	switch p.mode {
	case ModeDriving:
		if !p.locked {
			p.drive(dt, in)
		}
	case ModeCombat:
		if dir, ok := vmath.PlanarDirection(p.Position(), p.cursor); ok {
			p.Visual.Aim = vmath.Heading(dir)
		}
	}
}

func (p *Player) drive(dt float64, in core.Intent) {
	x, z := vmath.ClampAxes(in.MoveX, in.MoveZ)
	if x == 0 && z == 0 {
		p.Body.SetVelocity(mgl64.Vec3{})
		if p.Anim.IsPlaying(parameter.ClipDrive) {
			p.Anim.Stop()
		}
	} else {
		p.Body.SetVelocity(mgl64.Vec3{x * p.cfg.Speed, 0, z * p.cfg.Speed})
		p.targetHeading = math.Atan2(x, z)
		if !p.Anim.IsPlaying(parameter.ClipDrive) {
			p.Anim.Play(parameter.ClipDrive, true)
		}
	}

	target := vmath.HeadingQuat(p.targetHeading)
	p.orientation = mgl64.QuatSlerp(p.orientation, target, math.Min(1, dt*p.cfg.RotationSpeed))
	p.Body.SetOrientation(p.orientation)
}

func (p *Player) tickCooldown(dt float64) {
	if !p.cooldown.Active() {
		return
	}
	if p.cooldown.Tick(dt) {
		p.canShoot = true
		p.session.UpdateCooldownIndicator(1)
		return
	}
	p.session.UpdateCooldownIndicator(p.cooldown.Progress())
}

// CheckFire validates a fire input at target without changing state
func (p *Player) CheckFire(target mgl64.Vec3) FireCheck {
	switch {
	case p.mode != ModeCombat:
		return FireNotInCombat
	case !p.canShoot:
		return FireOnCooldown
	case vmath.PlanarDistance(p.Position(), target) > p.cfg.ShotRange:
		return FireOutOfRange
	}
	return FireReady
}

// Fire starts the weapon cooldown and returns the shot to schedule
// Rejected inputs leave the player unchanged
func (p *Player) Fire(target mgl64.Vec3) (FireOrder, bool) {
	if p.CheckFire(target) != FireReady {
		return FireOrder{}, false
	}

	pos := p.Position()
	if d := p.session.CurrentCooldown(p.cfg.ShotCooldown); d > 0 {
		p.canShoot = false
		p.cooldown.Start(d)
		p.session.UpdateCooldownIndicator(0)
	}
	if dir, ok := vmath.PlanarDirection(pos, target); ok {
		p.fireDir = dir
		p.Visual.Aim = vmath.Heading(dir)
	}

	target[1] = 0
	return FireOrder{Origin: pos, Target: target, Delay: p.cfg.ShotDelay}, true
}

// SyncVisual copies the body pose to the visual
func (p *Player) SyncVisual() {
	syncBody(p.Body, p.Visual)
}

// Reset returns the player to its spawn state at pos
func (p *Player) Reset(pos mgl64.Vec3) {
	pos[1] = p.cfg.RestHeight
	p.Anim.Stop()
	p.Body.WakeUp()
	p.Body.SetVelocity(mgl64.Vec3{})
	p.Body.SetPosition(pos)
	p.Body.SetHeading(0)
	p.mode = ModeDriving
	p.locked = false
	p.orientation = mgl64.QuatIdent()
	p.targetHeading = 0
	p.fireDir = mgl64.Vec3{0, 0, 1}
	p.cooldown.Reset()
	p.canShoot = true
	p.Visual.Color = component.ColorNormal
	p.Visual.Aim = 0
	component.Sync(p.Body, p.Visual)
}
