package core

import (
	"sort"
	"unicode"
)

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the engine to work with a closed set of intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionRight          // D, Right arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionRight:
		return "Right"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection returns true for the four movement actions.
func (a Action) IsDirection() bool {
	return a >= ActionUp && a <= ActionLeft
}

// UnknownKeyPolicy decides what happens to a non-whitespace key with no binding.
type UnknownKeyPolicy string

const (
	// UnknownKeyUp treats any unbound key as a move up.
	UnknownKeyUp UnknownKeyPolicy = "up"
	// UnknownKeyReject discards unbound keys so the adapter reads again.
	UnknownKeyReject UnknownKeyPolicy = "reject"
)

// Valid reports whether p is a known policy.
func (p UnknownKeyPolicy) Valid() bool {
	return p == UnknownKeyUp || p == UnknownKeyReject
}

// Keymap translates single input characters into actions.
type Keymap struct {
	bindings map[rune]Action
	policy   UnknownKeyPolicy
}

// NewKeymap creates a keymap from explicit bindings and an unknown-key policy.
// An invalid policy falls back to UnknownKeyUp.
func NewKeymap(bindings map[rune]Action, policy UnknownKeyPolicy) Keymap {
	if !policy.Valid() {
		policy = UnknownKeyUp
	}
	b := make(map[rune]Action, len(bindings))
	for r, a := range bindings {
		b[r] = a
	}
	return Keymap{bindings: b, policy: policy}
}

// DefaultKeymap returns the classic w/a/s/d layout.
func DefaultKeymap() Keymap {
	return NewKeymap(map[rune]Action{
		'w': ActionUp,
		'd': ActionRight,
		's': ActionDown,
		'a': ActionLeft,
	}, UnknownKeyUp)
}

// Policy returns the unknown-key policy.
func (k Keymap) Policy() UnknownKeyPolicy {
	return k.policy
}

// Resolve maps a character to an action.
// The second result is false when the character must be skipped: whitespace
// always, and unbound keys under UnknownKeyReject.
func (k Keymap) Resolve(r rune) (Action, bool) {
	if unicode.IsSpace(r) {
		return ActionNone, false
	}
	if a, ok := k.bindings[r]; ok {
		return a, true
	}
	if k.policy == UnknownKeyReject {
		return ActionNone, false
	}
	return ActionUp, true
}

// Lookup returns the binding for r without applying the unknown-key policy.
func (k Keymap) Lookup(r rune) (Action, bool) {
	a, ok := k.bindings[r]
	return a, ok
}

// KeysFor returns the characters bound to an action, sorted.
func (k Keymap) KeysFor(a Action) []rune {
	var keys []rune
	for r, bound := range k.bindings {
		if bound == a {
			keys = append(keys, r)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
