package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// GameKeyMap defines the key bindings shown and matched during play.
type GameKeyMap struct {
	Up      key.Binding
	Right   key.Binding
	Down    key.Binding
	Left    key.Binding
	Restart key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Right, k.Down, k.Left, k.Restart, k.Quit, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Right, k.Down, k.Left},
		{k.Restart, k.Help, k.Quit},
	}
}

// NewGameKeyMap builds bindings from a keymap. Arrow keys always steer; the
// letter keys come from the keymap. Restart and quit use "r" and "q" unless
// those letters are bound to a direction.
func NewGameKeyMap(km core.Keymap) GameKeyMap {
	direction := func(a core.Action, arrow, glyph string) key.Binding {
		keys := []string{arrow}
		for _, r := range km.KeysFor(a) {
			keys = append(keys, string(r))
		}
		help := glyph
		if len(keys) > 1 {
			help += "/" + strings.Join(keys[1:], "/")
		}
		return key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(help, strings.ToLower(a.String())),
		)
	}

	restart := key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "restart"),
	)
	if _, bound := km.Lookup('r'); bound {
		restart.SetEnabled(false)
	}
	quit := key.NewBinding(
		key.WithKeys("ctrl+c", "q"),
		key.WithHelp("q", "quit"),
	)
	if _, bound := km.Lookup('q'); bound {
		quit = key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		)
	}

	return GameKeyMap{
		Up:      direction(core.ActionUp, "up", "↑"),
		Right:   direction(core.ActionRight, "right", "→"),
		Down:    direction(core.ActionDown, "down", "↓"),
		Left:    direction(core.ActionLeft, "left", "←"),
		Restart: restart,
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: quit,
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keymap core.Keymap
	keys   GameKeyMap
}

// NewKeyMapper creates a key mapper for the given keymap.
func NewKeyMapper(km core.Keymap) *KeyMapper {
	return &KeyMapper{keymap: km, keys: NewGameKeyMap(km)}
}

// Keys returns the bindings used for matching and help.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
// Single characters that match no binding go through the keymap's
// unknown-key policy.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.Up):
		return core.ActionUp, false
	case key.Matches(msg, km.keys.Right):
		return core.ActionRight, false
	case key.Matches(msg, km.keys.Down):
		return core.ActionDown, false
	case key.Matches(msg, km.keys.Left):
		return core.ActionLeft, false
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart, false
	case key.Matches(msg, km.keys.Help):
		return core.ActionNone, false
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		if a, ok := km.keymap.Resolve(msg.Runes[0]); ok {
			return a, false
		}
	}
	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	}
	return MenuActionNone
}
