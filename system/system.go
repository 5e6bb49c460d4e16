// Package system holds the per-tick gameplay systems driven by the engine World
package system

import (
	"go.opentelemetry.io/otel/metric"

	"github.com/lixenwraith/arena-fighter/engine"
)

// RegisterAll adds every gameplay system to world
// cues and meter may be nil when audio or telemetry export is disabled
func RegisterAll(world *engine.World, cues CuePlayer, meter metric.Meter) {
	world.AddSystem(NewPlayerSystem(world))
	world.AddSystem(NewSpawnerSystem(world))
	world.AddSystem(NewEnemySystem(world))
	world.AddSystem(NewTurretSystem(world))
	world.AddSystem(NewProjectileSystem(world))
	world.AddSystem(NewSyncSystem(world))
	world.AddSystem(NewTimerSystem(world))
	world.AddSystem(NewShotSystem(world))
	world.AddSystem(NewAudioSystem(world, cues))
	world.AddSystem(NewDiagnosticsSystem(world, meter))
}
