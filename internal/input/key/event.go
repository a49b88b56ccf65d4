package key

import (
	"fmt"
	"strings"
)

// Event represents a single input event delivered to the editor.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Text is the payload of KeyText events.
	Text string

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates an event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{
		Key:       KeyRune,
		Rune:      r,
		Modifiers: mods,
	}
}

// NewSpecialEvent creates an event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{
		Key:       key,
		Modifiers: mods,
	}
}

// NewTextEvent creates an event carrying text, such as a paste.
func NewTextEvent(text string) Event {
	return Event{
		Key:  KeyText,
		Text: text,
	}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsModified returns true if any modifier is pressed.
// For character events, Shift alone is not considered modified
// (since Shift changes the character itself).
func (e Event) IsModified() bool {
	if e.IsRune() {
		return e.Modifiers&(ModCtrl|ModAlt) != 0
	}
	return e.Modifiers != ModNone
}

// String returns a canonical string representation.
// Examples: "a", "C-x", "C-S-Up", "Enter", "Text(3)"
func (e Event) String() string {
	if e.Key == KeyText {
		return fmt.Sprintf("Text(%d)", len([]rune(e.Text)))
	}

	var parts []string
	if e.Modifiers.HasCtrl() {
		parts = append(parts, "C")
	}
	if e.Modifiers.HasAlt() {
		parts = append(parts, "A")
	}
	if e.showShift() {
		parts = append(parts, "S")
	}

	var keyName string
	switch e.Key {
	case KeyRune:
		if e.Rune == ' ' {
			keyName = "Space"
		} else {
			keyName = string(e.Rune)
		}
	case KeyBackspace:
		keyName = "BS"
	case KeyDelete:
		keyName = "Del"
	default:
		keyName = e.Key.String()
	}

	parts = append(parts, keyName)
	return strings.Join(parts, "-")
}

// VimString returns a Vim-style string representation.
// Examples: "<C-x>", "<C-S-Up>", "<CR>", "a"
func (e Event) VimString() string {
	if e.Key == KeyText {
		return e.Text
	}

	// Simple characters without modifiers (except Shift)
	if e.IsRune() && !e.IsModified() {
		if e.Rune == ' ' {
			return "<Space>"
		}
		return string(e.Rune)
	}

	var parts []string
	if e.Modifiers.HasCtrl() {
		parts = append(parts, "C")
	}
	if e.Modifiers.HasAlt() {
		parts = append(parts, "A")
	}
	if e.showShift() {
		parts = append(parts, "S")
	}

	var keyName string
	switch e.Key {
	case KeyRune:
		keyName = strings.ToLower(string(e.Rune))
		if e.Rune == ' ' {
			keyName = "Space"
		}
	case KeyEnter:
		keyName = "CR"
	case KeyBackspace:
		keyName = "BS"
	case KeyDelete:
		keyName = "Del"
	default:
		keyName = e.Key.String()
	}

	parts = append(parts, keyName)
	return "<" + strings.Join(parts, "-") + ">"
}

// showShift reports whether Shift is printed. A plain shifted character
// is already visible in its rune.
func (e Event) showShift() bool {
	if !e.Modifiers.HasShift() {
		return false
	}
	return !e.IsRune() || e.Modifiers.HasCtrl() || e.Modifiers.HasAlt()
}
