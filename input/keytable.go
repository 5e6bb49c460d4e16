package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to actions
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter)
	SpecialKeys map[tcell.Key]Action

	// Printable rune bindings
	Runes map[rune]Action
}

// DefaultKeyTable returns the default key bindings
// WASD drives, arrows aim, space fires
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Action{
			tcell.KeyCtrlC:  ActionQuit,
			tcell.KeyCtrlQ:  ActionQuit,
			tcell.KeyEscape: ActionPause,
			tcell.KeyUp:     ActionCursorUp,
			tcell.KeyDown:   ActionCursorDown,
			tcell.KeyLeft:   ActionCursorLeft,
			tcell.KeyRight:  ActionCursorRight,
			tcell.KeyEnter:  ActionFire,
			tcell.KeyTab:    ActionToggleMode,
			tcell.KeyHome:   ActionCursorToPlayer,
		},
		Runes: map[rune]Action{
			'w': ActionMoveUp,
			's': ActionMoveDown,
			'a': ActionMoveLeft,
			'd': ActionMoveRight,

			'i': ActionCursorUp,
			'k': ActionCursorDown,
			'j': ActionCursorLeft,
			'l': ActionCursorRight,
			'c': ActionCursorToPlayer,

			' ': ActionFire,
			'f': ActionFire,
			'e': ActionToggleMode,
			't': ActionPlaceTurret,

			'q': ActionQuit,
			'p': ActionPause,
			'r': ActionReset,
			'm': ActionToggleMute,
			'1': ActionUpgradeRadius,
			'2': ActionUpgradeCooldown,
		},
	}
}

// Lookup returns the action bound to ev
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}
