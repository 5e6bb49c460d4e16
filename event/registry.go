package event

var eventNames = [...]string{
	EventTick:                     "tick",
	EventGameReset:                "game_reset",
	EventMetaSystemCommandRequest: "system_command",
	EventUpgradeRequest:           "upgrade_request",
	EventClipFinished:             "clip_finished",
	EventModeChanged:              "mode_changed",
	EventShotFired:                "shot_fired",
	EventShotRejected:             "shot_rejected",
	EventShotResolved:             "shot_resolved",
	EventEnemySpawned:             "enemy_spawned",
	EventEnemyHit:                 "enemy_hit",
	EventEnemyDisposed:            "enemy_disposed",
	EventSpawnerHit:               "spawner_hit",
	EventSpawnerDestroyed:         "spawner_destroyed",
	EventTurretPlaceRequest:       "turret_place_request",
	EventTurretPlaced:             "turret_placed",
	EventTurretPlaceRejected:      "turret_place_rejected",
	EventProjectileFired:          "projectile_fired",
	EventProjectileExpired:        "projectile_expired",
}

var eventsByName = func() map[string]EventType {
	m := make(map[string]EventType, len(eventNames))
	for t, n := range eventNames {
		m[n] = EventType(t)
	}
	return m
}()

// String returns the snake_case event name used in logs
func (t EventType) String() string {
	if t >= 0 && int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// ParseEventType is the inverse of String
func ParseEventType(name string) (EventType, bool) {
	t, ok := eventsByName[name]
	return t, ok
}
