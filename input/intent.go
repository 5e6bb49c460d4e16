package input

// Action is the semantic meaning of a bound key
type Action uint8

const (
	ActionNone Action = iota

	// Held movement, active for the hold window after each repeat
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight

	// Aim cursor nudges
	ActionCursorUp
	ActionCursorDown
	ActionCursorLeft
	ActionCursorRight
	ActionCursorToPlayer

	// Edge-triggered intents, consumed by the next Drain
	ActionFire
	ActionToggleMode
	ActionPlaceTurret

	// Process-level actions, returned to the caller
	ActionQuit
	ActionPause
	ActionReset
	ActionToggleMute
	ActionUpgradeRadius
	ActionUpgradeCooldown
)

// KeyBehavior classifies how an action is processed
type KeyBehavior uint8

const (
	BehaviorNone KeyBehavior = iota
	BehaviorMotion
	BehaviorCursor
	BehaviorTrigger
	BehaviorSystem
)

// Behavior returns the processing class of a
func (a Action) Behavior() KeyBehavior {
	switch {
	case a == ActionNone:
		return BehaviorNone
	case a <= ActionMoveRight:
		return BehaviorMotion
	case a <= ActionCursorToPlayer:
		return BehaviorCursor
	case a <= ActionPlaceTurret:
		return BehaviorTrigger
	default:
		return BehaviorSystem
	}
}

// String returns the canonical action name used in key bindings
func (a Action) String() string {
	for name, act := range actionRegistry {
		if act == a {
			return name
		}
	}
	return "unknown"
}
