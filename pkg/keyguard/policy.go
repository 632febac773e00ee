// Package keyguard decides which key events a lock window must swallow.
// It is a plain deny-list over key names and modifier masks, consulted
// before any other key handling so escape combinations never reach the
// toolkit's default behaviour.
package keyguard

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Policy blocks window-escape keys while the screen is locked. Once the
// unlocked predicate reports true it blocks nothing.
type Policy struct {
	unlocked func() bool
}

// NewPolicy creates a policy gated on unlocked. A nil predicate means
// permanently locked.
func NewPolicy(unlocked func() bool) *Policy {
	return &Policy{unlocked: unlocked}
}

// Blocked reports whether the key event must be discarded.
func (p *Policy) Blocked(key fyne.KeyName, mods fyne.KeyModifier) bool {
	if p.unlocked != nil && p.unlocked() {
		return false
	}
	return deniedKey(key, mods)
}

// deniedKey is the deny list itself: bare escape keys, the modifier keys
// that open system menus, and the close/quit chords.
func deniedKey(key fyne.KeyName, mods fyne.KeyModifier) bool {
	switch key {
	case fyne.KeyEscape, fyne.KeyTab, fyne.KeyF4:
		return true
	case desktop.KeyAltLeft, desktop.KeyAltRight:
		return true
	case desktop.KeySuperLeft, desktop.KeySuperRight:
		return true
	case desktop.KeyMenu:
		return true
	}

	if mods&fyne.KeyModifierAlt != 0 {
		return true
	}
	if mods&fyne.KeyModifierSuper != 0 {
		return true
	}
	if mods&fyne.KeyModifierControl != 0 {
		switch key {
		case fyne.KeyW, fyne.KeyQ:
			return true
		}
	}

	return false
}
