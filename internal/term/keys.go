package term

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/gridedit/internal/input/key"
)

// TranslateKey converts a tcell key event into the editor's input
// vocabulary. The second result is false for keys the editor has no use
// for (function keys, Escape, paging).
//
// Control codes are reported by terminals either as tcell.KeyCtrlA..Z or
// as the raw ASCII code; both become a lower-case rune with ModCtrl.
func TranslateKey(ev *tcell.EventKey) (key.Event, bool) {
	mods := translateMods(ev.Modifiers())
	k := ev.Key()

	switch k {
	case tcell.KeyRune:
		r := ev.Rune()
		if mods.HasCtrl() {
			r = unicode.ToLower(r)
		}
		return key.NewRuneEvent(r, mods), true
	case tcell.KeyLeft:
		return key.NewSpecialEvent(key.KeyLeft, mods), true
	case tcell.KeyRight:
		return key.NewSpecialEvent(key.KeyRight, mods), true
	case tcell.KeyUp:
		return key.NewSpecialEvent(key.KeyUp, mods), true
	case tcell.KeyDown:
		return key.NewSpecialEvent(key.KeyDown, mods), true
	case tcell.KeyHome:
		return key.NewSpecialEvent(key.KeyHome, mods), true
	case tcell.KeyEnd:
		return key.NewSpecialEvent(key.KeyEnd, mods), true
	case tcell.KeyEnter:
		return key.NewSpecialEvent(key.KeyEnter, mods), true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.NewSpecialEvent(key.KeyBackspace, mods), true
	case tcell.KeyDelete:
		return key.NewSpecialEvent(key.KeyDelete, mods), true
	case tcell.KeyTab:
		return key.NewRuneEvent('\t', mods), true
	}

	switch {
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return key.NewRuneEvent(rune('a'+(k-tcell.KeyCtrlA)), mods.With(key.ModCtrl)), true
	case k >= tcell.KeySOH && k <= tcell.KeySUB:
		return key.NewRuneEvent(rune('a'+(k-tcell.KeySOH)), mods.With(key.ModCtrl)), true
	}
	return key.Event{}, false
}

// translateMods converts a tcell modifier mask. Meta is treated as Alt.
func translateMods(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if m&(tcell.ModAlt|tcell.ModMeta) != 0 {
		mods = mods.With(key.ModAlt)
	}
	return mods
}

// pasteRune returns the character a key event contributes to bracketed
// paste content.
func pasteRune(ev *tcell.EventKey) (rune, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		return ev.Rune(), true
	case tcell.KeyEnter, tcell.KeyLF:
		return '\n', true
	case tcell.KeyTab:
		return '\t', true
	default:
		return 0, false
	}
}
