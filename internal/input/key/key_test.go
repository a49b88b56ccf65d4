package key

import (
	"testing"
)

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyNone, "None"},
		{KeyLeft, "Left"},
		{KeyRight, "Right"},
		{KeyUp, "Up"},
		{KeyDown, "Down"},
		{KeyHome, "Home"},
		{KeyEnd, "End"},
		{KeyEnter, "Enter"},
		{KeyBackspace, "Backspace"},
		{KeyDelete, "Delete"},
		{KeyRune, "Rune"},
		{KeyText, "Text"},
		{Key(99), "Key(99)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.key.String(); got != tt.want {
				t.Errorf("Key.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKeyIsNavigationKey(t *testing.T) {
	tests := []struct {
		key  Key
		want bool
	}{
		{KeyNone, false},
		{KeyLeft, true},
		{KeyDown, true},
		{KeyHome, true},
		{KeyEnd, true},
		{KeyEnter, false},
		{KeyBackspace, false},
		{KeyDelete, false},
		{KeyRune, false},
		{KeyText, false},
	}

	for _, tt := range tests {
		if got := tt.key.IsNavigationKey(); got != tt.want {
			t.Errorf("%v.IsNavigationKey() = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestKeyFromName(t *testing.T) {
	tests := []struct {
		name string
		want Key
	}{
		{"left", KeyLeft},
		{"LEFT", KeyLeft},
		{" Home ", KeyHome},
		{"return", KeyEnter},
		{"cr", KeyEnter},
		{"bs", KeyBackspace},
		{"del", KeyDelete},
		{"escape", KeyNone},
		{"rune", KeyNone},
		{"Text", KeyNone},
		{"", KeyNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KeyFromName(tt.name); got != tt.want {
				t.Errorf("KeyFromName(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}
