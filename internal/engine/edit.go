package engine

import (
	"unicode/utf8"

	"github.com/dshills/gridedit/internal/engine/history"
	"github.com/dshills/gridedit/internal/engine/word"
)

// deleteSelection removes the selected range and leaves a caret at its
// start. It returns false if there is no range or the merged boundary row
// would exceed the row width.
func (e *Editor[M]) deleteSelection() bool {
	sel := e.cur.Selection()
	if sel.IsCaret() {
		return false
	}
	start, end := sel.Range()

	op := e.track(history.KindDelete, start.Row, end.Row-start.Row+1)
	if !e.grid.DeleteRange(start, end) {
		e.log.Debug("delete %s-%s rejected: merged row exceeds width", start, end)
		return false
	}
	e.cur.SetCaret(start)
	e.commit(op)
	return true
}

// lenAfterDelete returns the length the caret row would have once the
// selection is deleted.
func (e *Editor[M]) lenAfterDelete() int {
	sel := e.cur.Selection()
	if sel.IsCaret() {
		return e.grid.RowLen(sel.Head.Row)
	}
	start, end := sel.Range()
	return start.Column + e.grid.RowLen(end.Row) - end.Column
}

// replaceScope opens an undo group when an edit replaces a selection.
// The returned function closes it.
func (e *Editor[M]) replaceScope(name string) func() {
	if e.cur.Selection().IsCaret() {
		return func() {}
	}
	return e.history.GroupScope(name).End
}

// insertChar inserts a single rune. Single characters never reflow: a
// rune that does not fit into the caret row is rejected.
func (e *Editor[M]) insertChar(r rune) {
	switch {
	case r == '\n':
		e.enter()
		return
	case r == utf8.RuneError || r == 0x7f || (r < ' ' && r != '\t'):
		return
	}

	text := e.grid.Normalize(string(r))
	if e.lenAfterDelete()+utf8.RuneCountInString(text) > e.grid.Width() {
		e.log.Debug("insert %q rejected: row %d is full", r, e.cur.Head().Row)
		return
	}

	defer e.replaceScope("replace")()
	if e.cur.Selection().IsRange() && !e.deleteSelection() {
		return
	}

	pos := e.cur.Head()
	op := e.track(history.KindInsert, pos.Row, 1)
	after := e.grid.Insert(pos, text)
	op.Start, op.End = pos, after
	op.Groupable = true
	e.cur.SetCaret(after)
	e.commit(op)
}

// insertText inserts a string, reflowing onto new rows as needed.
func (e *Editor[M]) insertText(text string) {
	if text == "" {
		return
	}

	defer e.replaceScope("replace")()
	if e.cur.Selection().IsRange() && !e.deleteSelection() {
		return
	}

	pos := e.cur.Head()
	op := e.track(history.KindInsert, pos.Row, 1)
	after, dropped := e.grid.InsertDropped(pos, text)
	if dropped > 0 {
		e.log.Debug("insert at %s: %d characters dropped at row limit", pos, dropped)
	}
	if after == pos {
		// Everything was dropped.
		return
	}
	op.Start, op.End = pos, after
	e.cur.SetCaret(after)
	e.commit(op)
}

// enter splits the caret row.
func (e *Editor[M]) enter() {
	defer e.replaceScope("replace")()
	if e.cur.Selection().IsRange() && !e.deleteSelection() {
		return
	}

	pos := e.cur.Head()
	op := e.track(history.KindSplit, pos.Row, 1)
	if !e.grid.SplitRow(pos.Row, pos.Column) {
		e.log.Debug("split at %s rejected: row limit reached", pos)
		return
	}
	e.cur.SetCaret(Position{Row: pos.Row + 1})
	e.commit(op)
}

// backspace deletes the rune left of the caret or merges the caret row
// into the previous one.
func (e *Editor[M]) backspace() {
	if e.deleteSelection() || e.cur.Selection().IsRange() {
		return
	}

	pos := e.cur.Head()
	switch {
	case pos.Column > 0:
		e.deleteInRow(pos.Row, pos.Column-1, pos.Column)
	case pos.Row > 0:
		e.mergeUp(pos.Row)
	}
}

// del deletes the rune right of the caret or merges the next row into the
// caret row.
func (e *Editor[M]) del() {
	if e.deleteSelection() || e.cur.Selection().IsRange() {
		return
	}

	pos := e.cur.Head()
	switch {
	case pos.Column < e.grid.RowLen(pos.Row):
		e.deleteInRow(pos.Row, pos.Column, pos.Column+1)
	case pos.Row < e.grid.RowCount()-1:
		e.mergeUp(pos.Row + 1)
	}
}

// deleteWordLeft deletes back to the previous word boundary within the row.
func (e *Editor[M]) deleteWordLeft() {
	if e.deleteSelection() || e.cur.Selection().IsRange() {
		return
	}

	pos := e.cur.Head()
	if pos.Column == 0 {
		return
	}
	from := word.DeleteLeft(e.grid.Runes(pos.Row), pos.Column)
	e.deleteInRow(pos.Row, from, pos.Column)
}

// deleteWordRight deletes the token right of the caret within the row.
func (e *Editor[M]) deleteWordRight() {
	if e.deleteSelection() || e.cur.Selection().IsRange() {
		return
	}

	pos := e.cur.Head()
	if pos.Column >= e.grid.RowLen(pos.Row) {
		return
	}
	to := word.DeleteRight(e.grid.Runes(pos.Row), pos.Column)
	e.deleteInRow(pos.Row, pos.Column, to)
}

// deleteInRow removes columns [from, to) of row r and leaves the caret at from.
func (e *Editor[M]) deleteInRow(r, from, to int) {
	if from >= to {
		return
	}
	start := Position{Row: r, Column: from}
	op := e.track(history.KindDelete, r, 1)
	e.grid.DeleteRange(start, Position{Row: r, Column: to})
	e.cur.SetCaret(start)
	e.commit(op)
}

// mergeUp joins row r onto row r-1 and leaves the caret at the join.
func (e *Editor[M]) mergeUp(r int) {
	if !e.grid.CanMerge(r) {
		e.log.Debug("merge of row %d rejected: %d+%d runes exceed width %d",
			r, e.grid.RowLen(r-1), e.grid.RowLen(r), e.grid.Width())
		return
	}

	join := Position{Row: r - 1, Column: e.grid.RowLen(r - 1)}
	op := e.track(history.KindMerge, r-1, 2)
	e.grid.MergeRowIntoPrevious(r)
	e.cur.SetCaret(join)
	e.commit(op)
}

// swapRow exchanges the caret row with the row above or below it.
// The caret follows the moved row and keeps its column.
func (e *Editor[M]) swapRow(up bool) {
	head := e.cur.Head()
	target := head.Row + 1
	if up {
		target = head.Row - 1
	}
	if target < 0 || target >= e.grid.RowCount() {
		return
	}

	op := e.track(history.KindSwap, min(head.Row, target), 2)
	e.grid.SwapRows(head.Row, target)
	e.cur.SetCaret(Position{Row: target, Column: head.Column})
	e.commit(op)
}

// duplicateRow inserts a copy of the caret row below it and moves the
// caret onto the copy.
func (e *Editor[M]) duplicateRow() {
	head := e.cur.Head()
	var zero M

	op := e.track(history.KindInsert, head.Row+1, 0)
	if !e.grid.InsertRow(head.Row+1, e.grid.RowText(head.Row), zero) {
		e.log.Debug("duplicate of row %d rejected: row limit reached", head.Row)
		return
	}
	e.cur.SetCaret(Position{Row: head.Row + 1, Column: head.Column})
	e.commit(op)
}
