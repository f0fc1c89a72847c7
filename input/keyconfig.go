package input

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// KeyTable maps special keys and runes to actions
type KeyTable struct {
	Keys  map[tcell.Key]Action
	Runes map[rune]Action
}

// DefaultKeyTable returns arrows, hjkl and wasd movement plus menu keys
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]Action{
			tcell.KeyUp:     ActionUp,
			tcell.KeyDown:   ActionDown,
			tcell.KeyLeft:   ActionLeft,
			tcell.KeyRight:  ActionRight,
			tcell.KeyEnter:  ActionConfirm,
			tcell.KeyEscape: ActionBack,
			tcell.KeyCtrlC:  ActionQuit,
		},
		Runes: map[rune]Action{
			'k': ActionUp, 'w': ActionUp,
			'j': ActionDown, 's': ActionDown,
			'h': ActionLeft, 'a': ActionLeft,
			'l': ActionRight, 'd': ActionRight,
			' ': ActionConfirm,
			'r': ActionRestart,
			'q': ActionQuit,
		},
	}
}

// Translate returns the action bound to ev, ActionNone if unbound
func (kt *KeyTable) Translate(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.Keys[ev.Key()]
}

// Merge copies every binding of override into kt
func (kt *KeyTable) Merge(override *KeyTable) {
	if override == nil {
		return
	}
	for k, a := range override.Keys {
		kt.Keys[k] = a
	}
	for r, a := range override.Runes {
		kt.Runes[r] = a
	}
}

// keyFile is the on-disk keymap layout:
//
//	[keys]
//	Up = "up"
//	k = "up"
//	space = "confirm"
type keyFile struct {
	Keys map[string]string `toml:"keys"`
}

// LoadKeyConfig parses TOML keymap data into a sparse override KeyTable.
// Returns error on unknown action names, invalid key names, or parse failure.
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var kf keyFile
	if err := toml.Unmarshal(data, &kf); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}

	kt := &KeyTable{
		Keys:  make(map[tcell.Key]Action),
		Runes: make(map[rune]Action),
	}
	for keyStr, actionName := range kf.Keys {
		action, ok := ParseAction(strings.ToLower(actionName))
		if !ok {
			return nil, fmt.Errorf("[keys] key %q: unknown action %q", keyStr, actionName)
		}

		if r, ok := resolveRune(keyStr); ok {
			kt.Runes[r] = action
			continue
		}
		k, ok := keyByName(keyStr)
		if !ok {
			return nil, fmt.Errorf("[keys] key %q: unknown key name", keyStr)
		}
		kt.Keys[k] = action
	}
	return kt, nil
}

// resolveRune accepts a single character or a rune alias
func resolveRune(s string) (rune, bool) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, true
	}
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		return r, true
	}
	return 0, false
}

// Special key names accepted in keymap files, matched case-insensitively
var keyNames = map[string]tcell.Key{
	"up": tcell.KeyUp, "down": tcell.KeyDown, "left": tcell.KeyLeft, "right": tcell.KeyRight,
	"enter": tcell.KeyEnter, "esc": tcell.KeyEscape, "escape": tcell.KeyEscape,
	"tab": tcell.KeyTab, "backspace": tcell.KeyBackspace2, "delete": tcell.KeyDelete,
	"insert": tcell.KeyInsert, "home": tcell.KeyHome, "end": tcell.KeyEnd,
	"pgup": tcell.KeyPgUp, "pgdn": tcell.KeyPgDn,
	"f1": tcell.KeyF1, "f2": tcell.KeyF2, "f3": tcell.KeyF3, "f4": tcell.KeyF4,
	"f5": tcell.KeyF5, "f6": tcell.KeyF6, "f7": tcell.KeyF7, "f8": tcell.KeyF8,
	"f9": tcell.KeyF9, "f10": tcell.KeyF10, "f11": tcell.KeyF11, "f12": tcell.KeyF12,
	"ctrl-c": tcell.KeyCtrlC,
}

// keyByName looks up a special key by name
func keyByName(name string) (tcell.Key, bool) {
	k, ok := keyNames[strings.ToLower(name)]
	return k, ok
}
