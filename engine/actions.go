package engine

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/arena-fighter/core"
	"github.com/lixenwraith/arena-fighter/entity"
	"github.com/lixenwraith/arena-fighter/event"
)

// SpawnEnemy creates an enemy at pos, visible to systems after the sweep
func (w *World) SpawnEnemy(pos mgl64.Vec3, spawner core.Entity) *entity.Enemy {
	e := entity.NewEnemy(w.CreateEntity(), w.Physics, pos, w.cfg.Enemy, w.Rand)
	w.pendingEnemies = append(w.pendingEnemies, e)
	w.PushEvent(event.EventEnemySpawned, &event.EnemySpawnedPayload{
		Entity:   e.ID(),
		Spawner:  spawner,
		Position: e.Position(),
	})
	return e
}

// LaunchProjectile creates a projectile, updated from the next tick
func (w *World) LaunchProjectile(l entity.Launch, turret core.Entity) *entity.Projectile {
	p := entity.NewProjectile(w.CreateEntity(), l.Origin, l.Direction, w.cfg.Projectile)
	w.pendingProjectiles = append(w.pendingProjectiles, p)
	w.PushEvent(event.EventProjectileFired, &event.ProjectileFiredPayload{
		Entity: p.ID(),
		Turret: turret,
		Origin: l.Origin,
	})
	return p
}

// TryFire validates and fires the player weapon at target
// The AreaShot materializes after the configured delay
func (w *World) TryFire(target mgl64.Vec3) error {
	switch w.player.CheckFire(target) {
	case entity.FireNotInCombat:
		return ErrNotInCombat
	case entity.FireOnCooldown:
		return ErrOnCooldown
	case entity.FireOutOfRange:
		return ErrOutOfRange
	}

	order, ok := w.player.Fire(target)
	if !ok {
		return ErrOnCooldown
	}
	w.Scheduler.After(order.Delay, w.player, func() {
		w.materializeShot(order.Target)
	})
	w.PushEvent(event.EventShotFired, &event.ShotFiredPayload{
		Origin: order.Origin,
		Target: order.Target,
		Delay:  order.Delay,
	})
	return nil
}

// materializeShot creates the AreaShot with the radius current at impact
func (w *World) materializeShot(point mgl64.Vec3) *entity.AreaShot {
	a := entity.NewAreaShot(w.CreateEntity(), point, w.Session.ShotRadius(), w.cfg.ShotDecay)
	w.pendingShots = append(w.pendingShots, a)
	return a
}

// TurretCell snaps a world point to the turret grid
func TurretCell(p mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{math.Round(p.X()), 0, math.Round(p.Z())}
}

// TryPlaceTurret buys a turret on the grid cell nearest pos
func (w *World) TryPlaceTurret(pos mgl64.Vec3) (*entity.Turret, error) {
	cell := TurretCell(pos)
	switch {
	case !w.insideArena(cell):
		return nil, ErrOutOfBounds
	case w.cellOccupied(cell):
		return nil, ErrCellOccupied
	case !w.Session.Spend(w.cfg.Turret.Cost):
		return nil, ErrInsufficientFunds
	}

	t := entity.NewTurret(w.CreateEntity(), w.Physics, cell, w.cfg.Turret, w.cfg.Clips)
	w.pendingTurrets = append(w.pendingTurrets, t)
	return t, nil
}

// TryUpgrade buys one level of an upgrade track
func (w *World) TryUpgrade(kind event.UpgradeKind) error {
	var affordable, bought bool
	switch kind {
	case event.UpgradeRadius:
		if w.Session.ShotRadius() >= w.cfg.Session.RadiusMax {
			return ErrUpgradeMaxed
		}
		affordable = w.Session.CanAffordRadiusUpgrade()
		bought = affordable && w.Session.BuyRadiusUpgrade()
	case event.UpgradeCooldown:
		if w.Session.CooldownLevel() >= w.cfg.Session.CooldownMaxLevel {
			return ErrUpgradeMaxed
		}
		affordable = w.Session.CanAffordCooldownUpgrade()
		bought = affordable && w.Session.BuyCooldownUpgrade()
	default:
		return ErrUnknownUpgrade
	}
	if !bought {
		return ErrInsufficientFunds
	}
	return nil
}
