package input

// actionRegistry maps canonical action names to actions
// Used by the binding loader to resolve config action strings
var actionRegistry = map[string]Action{
	// Unbind sentinel
	"none": ActionNone,

	"move_up":    ActionMoveUp,
	"move_down":  ActionMoveDown,
	"move_left":  ActionMoveLeft,
	"move_right": ActionMoveRight,

	"cursor_up":        ActionCursorUp,
	"cursor_down":      ActionCursorDown,
	"cursor_left":      ActionCursorLeft,
	"cursor_right":     ActionCursorRight,
	"cursor_to_player": ActionCursorToPlayer,

	"fire":         ActionFire,
	"toggle_mode":  ActionToggleMode,
	"place_turret": ActionPlaceTurret,

	"quit":             ActionQuit,
	"pause":            ActionPause,
	"reset":            ActionReset,
	"toggle_mute":      ActionToggleMute,
	"upgrade_radius":   ActionUpgradeRadius,
	"upgrade_cooldown": ActionUpgradeCooldown,
}

// LookupAction resolves an action name
func LookupAction(name string) (Action, bool) {
	a, ok := actionRegistry[name]
	return a, ok
}
