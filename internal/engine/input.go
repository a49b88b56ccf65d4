package engine

import (
	"unicode"

	"github.com/dshills/gridedit/internal/input/key"
)

// HandleInput applies one input event and reports whether the content,
// the selection or the clipboard changed.
//
// Modifiers select the variant: Shift extends the selection, Ctrl picks
// the word or structural form, Ctrl+Shift+Up/Down moves the current row
// and Alt+Shift+Up/Down extends the selection by whole rows. Ctrl with
// the runes a, d, w and x runs select-all, select-row, widen-selection
// and cut; Ctrl+Shift+d duplicates the current row. Events with no
// meaning are ignored.
func (e *Editor[M]) HandleInput(ev key.Event) bool {
	sel, rev, clip := e.cur.Selection(), e.revision, e.clipboard

	e.dispatch(ev)

	return e.cur.Selection() != sel || e.revision != rev || e.clipboard != clip
}

func (e *Editor[M]) dispatch(ev key.Event) {
	if ev.Key.IsNavigationKey() {
		e.navigate(ev)
		return
	}

	mods := ev.Modifiers
	switch ev.Key {
	case key.KeyEnter:
		e.enter()
	case key.KeyBackspace:
		if mods.HasCtrl() {
			e.deleteWordLeft()
		} else {
			e.backspace()
		}
	case key.KeyDelete:
		if mods.HasCtrl() {
			e.deleteWordRight()
		} else {
			e.del()
		}
	case key.KeyRune:
		switch {
		case mods.HasCtrl():
			e.command(unicode.ToLower(ev.Rune), mods.HasShift())
		case mods.HasAlt():
			// Alt+rune has no meaning.
		default:
			e.insertChar(ev.Rune)
		}
	case key.KeyText:
		e.insertText(ev.Text)
	}
}

func (e *Editor[M]) navigate(ev key.Event) {
	mods := ev.Modifiers
	extend := mods.HasShift()

	switch ev.Key {
	case key.KeyLeft:
		e.moveLeft(mods.HasCtrl(), extend)
	case key.KeyRight:
		e.moveRight(mods.HasCtrl(), extend)
	case key.KeyUp, key.KeyDown:
		up := ev.Key == key.KeyUp
		switch {
		case mods.HasCtrl() && extend:
			e.swapRow(up)
		case mods.HasAlt() && extend:
			e.extendRows(up)
		default:
			e.moveVertical(up, extend)
		}
	case key.KeyHome:
		e.moveHome(extend)
	case key.KeyEnd:
		e.moveEnd(extend)
	}
}

// command runs a Ctrl+rune command.
func (e *Editor[M]) command(r rune, shift bool) {
	switch r {
	case 'a':
		e.selectAll()
	case 'd':
		if shift {
			e.duplicateRow()
		} else {
			e.selectRow()
		}
	case 'w':
		e.widenSelection()
	case 'x':
		e.cut()
	}
}
