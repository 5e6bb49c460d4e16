package input

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char config keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// specialKeyNames resolves lower-cased tcell key names such as "up" or "ctrl-c"
var specialKeyNames = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// ApplyBindings overrides kt with key name to action name pairs
// Returns an error on unknown action names or key names; kt is unchanged then
func ApplyBindings(kt *KeyTable, bindings map[string]string) error {
	runes := make(map[rune]Action)
	keys := make(map[tcell.Key]Action)

	for keyName, actionName := range bindings {
		action, ok := LookupAction(strings.ToLower(actionName))
		if !ok {
			return fmt.Errorf("key %q: unknown action %q", keyName, actionName)
		}

		if r, ok := runeAliases[strings.ToLower(keyName)]; ok {
			runes[r] = action
			continue
		}
		if utf8.RuneCountInString(keyName) == 1 {
			r, _ := utf8.DecodeRuneInString(keyName)
			runes[r] = action
			continue
		}
		k, ok := specialKeyNames[strings.ToLower(keyName)]
		if !ok {
			return fmt.Errorf("unknown key name %q", keyName)
		}
		keys[k] = action
	}

	for r, a := range runes {
		if a == ActionNone {
			delete(kt.Runes, r)
			continue
		}
		kt.Runes[r] = a
	}
	for k, a := range keys {
		if a == ActionNone {
			delete(kt.SpecialKeys, k)
			continue
		}
		kt.SpecialKeys[k] = a
	}
	return nil
}
