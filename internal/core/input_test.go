package core

import "testing"

func TestKeymapResolveDefault(t *testing.T) {
	km := DefaultKeymap()

	tests := []struct {
		name     string
		key      rune
		action   Action
		accepted bool
	}{
		{"w is up", 'w', ActionUp, true},
		{"d is right", 'd', ActionRight, true},
		{"s is down", 's', ActionDown, true},
		{"a is left", 'a', ActionLeft, true},
		{"space skipped", ' ', ActionNone, false},
		{"newline skipped", '\n', ActionNone, false},
		{"tab skipped", '\t', ActionNone, false},
		{"unknown defaults to up", 'x', ActionUp, true},
		{"uppercase is unbound", 'W', ActionUp, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, ok := km.Resolve(tc.key)
			if action != tc.action || ok != tc.accepted {
				t.Errorf("Resolve(%q) = (%v, %v), expected (%v, %v)", tc.key, action, ok, tc.action, tc.accepted)
			}
		})
	}
}

func TestKeymapRejectPolicy(t *testing.T) {
	km := NewKeymap(map[rune]Action{'k': ActionUp}, UnknownKeyReject)

	if a, ok := km.Resolve('k'); !ok || a != ActionUp {
		t.Errorf("Resolve('k') = (%v, %v), expected (Up, true)", a, ok)
	}
	if _, ok := km.Resolve('w'); ok {
		t.Error("unbound key should be rejected")
	}
}

func TestKeymapInvalidPolicyFallsBack(t *testing.T) {
	km := NewKeymap(nil, UnknownKeyPolicy("sideways"))
	if km.Policy() != UnknownKeyUp {
		t.Errorf("Policy() = %q, expected %q", km.Policy(), UnknownKeyUp)
	}
}

func TestKeymapKeysFor(t *testing.T) {
	km := NewKeymap(map[rune]Action{'k': ActionUp, 'w': ActionUp, 'j': ActionDown}, UnknownKeyUp)

	keys := km.KeysFor(ActionUp)
	if len(keys) != 2 || keys[0] != 'k' || keys[1] != 'w' {
		t.Errorf("KeysFor(Up) = %q, expected [k w]", keys)
	}
	if len(km.KeysFor(ActionLeft)) != 0 {
		t.Error("KeysFor(Left) should be empty")
	}
}

func TestActionIsDirection(t *testing.T) {
	for _, a := range []Action{ActionUp, ActionRight, ActionDown, ActionLeft} {
		if !a.IsDirection() {
			t.Errorf("%v should be a direction", a)
		}
	}
	for _, a := range []Action{ActionNone, ActionRestart, ActionQuit} {
		if a.IsDirection() {
			t.Errorf("%v should not be a direction", a)
		}
	}
}
