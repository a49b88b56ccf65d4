package key

import "strings"

// Modifier is a set of held modifier keys.
type Modifier uint8

const (
	ModNone Modifier = 0

	// ModShift extends the selection.
	ModShift Modifier = 1 << iota
	// ModCtrl selects the word or structural variant of a command.
	ModCtrl
	// ModAlt is Alt or Option; terminals report Meta as Alt.
	ModAlt
)

// Has returns true if m contains every modifier in mod.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod == mod && mod != ModNone
}

// HasShift returns true if Shift is held.
func (m Modifier) HasShift() bool { return m.Has(ModShift) }

// HasCtrl returns true if Control is held.
func (m Modifier) HasCtrl() bool { return m.Has(ModCtrl) }

// HasAlt returns true if Alt is held.
func (m Modifier) HasAlt() bool { return m.Has(ModAlt) }

// With returns m with mod added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// String returns the modifiers in spec order, e.g. "Ctrl+Alt+Shift".
func (m Modifier) String() string {
	var sb strings.Builder
	for _, n := range modifierNames {
		if !m.Has(n.mod) {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('+')
		}
		sb.WriteString(n.name)
	}
	return sb.String()
}

// modifierNames lists the canonical names in the order specs print them.
var modifierNames = []struct {
	name string
	mod  Modifier
}{
	{"Ctrl", ModCtrl},
	{"Alt", ModAlt},
	{"Shift", ModShift},
}

// ModifierFromName returns the modifier for a name such as "ctrl",
// "Control", "C", "alt", "opt" or "shift". Unknown names yield ModNone.
func ModifierFromName(name string) Modifier {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ctrl", "control", "c":
		return ModCtrl
	case "alt", "option", "opt", "meta", "a", "m":
		return ModAlt
	case "shift", "s":
		return ModShift
	default:
		return ModNone
	}
}
