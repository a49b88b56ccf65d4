package engine

import "github.com/dshills/gridedit/internal/engine/history"

// Copy puts the selected text into the clipboard, rows joined by '\n'.
// It returns false and leaves the clipboard unchanged without a selection.
func (e *Editor[M]) Copy() bool {
	sel := e.cur.Selection()
	if sel.IsCaret() {
		return false
	}
	e.clipboard = e.SelectedText()
	return true
}

// Paste inserts the clipboard content as if it were typed as text.
func (e *Editor[M]) Paste() bool {
	if e.clipboard == "" {
		return false
	}
	rev := e.revision
	e.insertText(e.clipboard)
	return e.revision != rev
}

// cut copies and deletes the selection. Without a selection it cuts the
// caret row together with its row break. The last row has no break: its
// text is cut and the emptied row stays in place.
func (e *Editor[M]) cut() {
	if e.Copy() {
		defer e.history.GroupScope("cut").End()
		e.deleteSelection()
		return
	}

	r := e.cur.Head().Row
	text := e.grid.RowText(r)

	if r < e.grid.RowCount()-1 {
		e.clipboard = text + "\n"
		op := e.track(history.KindDelete, r, 1)
		e.grid.RemoveRow(r)
		e.cur.SetCaret(Position{Row: r})
		e.commit(op)
		return
	}
	if text == "" {
		return
	}

	e.clipboard = text
	op := e.track(history.KindDelete, r, 1)
	e.grid.DeleteRange(Position{Row: r}, Position{Row: r, Column: len([]rune(text))})
	e.cur.SetCaret(Position{Row: r})
	e.commit(op)
}
