package engine

import (
	"github.com/dshills/gridedit/internal/engine/cursor"
	"github.com/dshills/gridedit/internal/engine/history"
	"github.com/dshills/gridedit/internal/engine/word"
)

// leftOf returns the position one step left of p, or p at document start.
// With byWord the step is a word jump within the row.
func (e *Editor[M]) leftOf(p Position, byWord bool) Position {
	switch {
	case p.Column > 0 && byWord:
		return Position{Row: p.Row, Column: word.JumpLeft(e.grid.Runes(p.Row), p.Column)}
	case p.Column > 0:
		return Position{Row: p.Row, Column: p.Column - 1}
	case p.Row > 0:
		return Position{Row: p.Row - 1, Column: e.grid.RowLen(p.Row - 1)}
	}
	return p
}

// rightOf returns the position one step right of p, or p at document end.
func (e *Editor[M]) rightOf(p Position, byWord bool) Position {
	n := e.grid.RowLen(p.Row)
	switch {
	case p.Column < n && byWord:
		return Position{Row: p.Row, Column: word.JumpRight(e.grid.Runes(p.Row), p.Column)}
	case p.Column < n:
		return Position{Row: p.Row, Column: p.Column + 1}
	case p.Row < e.grid.RowCount()-1:
		return Position{Row: p.Row + 1}
	}
	return p
}

// moveLeft steps the head left. A plain step over a range collapses it
// to the range start instead.
func (e *Editor[M]) moveLeft(byWord, extend bool) {
	if sel := e.cur.Selection(); sel.IsRange() && !extend && !byWord {
		e.cur.Move(sel.Start(), false)
		return
	}
	e.cur.Move(e.leftOf(e.cur.Head(), byWord), extend)
}

// moveRight is moveLeft mirrored: a range collapses to its end.
func (e *Editor[M]) moveRight(byWord, extend bool) {
	if sel := e.cur.Selection(); sel.IsRange() && !extend && !byWord {
		e.cur.Move(sel.End(), false)
		return
	}
	e.cur.Move(e.rightOf(e.cur.Head(), byWord), extend)
}

func (e *Editor[M]) moveHome(extend bool) {
	head := e.cur.Head()
	e.cur.Move(Position{Row: head.Row}, extend)
}

func (e *Editor[M]) moveEnd(extend bool) {
	head := e.cur.Head()
	e.cur.Move(Position{Row: head.Row, Column: e.grid.RowLen(head.Row)}, extend)
}

func (e *Editor[M]) moveVertical(up, extend bool) {
	head := e.cur.Head()
	target := head.Row + 1
	if up {
		target = head.Row - 1
	}

	if target < 0 || target >= e.grid.RowCount() {
		collapse := !extend && e.cur.Selection().IsRange()
		if !e.edgeJump && !collapse {
			return
		}
		edge := Position{Row: head.Row}
		if !up {
			edge.Column = e.grid.RowLen(head.Row)
		}
		e.cur.Move(edge, extend)
		return
	}

	e.cur.MoveVertical(target, head.Column, e.grid.RowLen(target), extend)
}

// extendRows grows the selection by whole rows. A new selection first
// covers the current row; each further step adds the adjacent row.
func (e *Editor[M]) extendRows(up bool) {
	sel := e.cur.Selection()
	head := sel.Head

	if sel.IsCaret() {
		start := Position{Row: head.Row}
		end := Position{Row: head.Row, Column: e.grid.RowLen(head.Row)}
		if start == end {
			return
		}
		if up {
			e.cur.Set(cursor.NewSelection(end, start))
		} else {
			e.cur.Set(cursor.NewSelection(start, end))
		}
		return
	}

	if up {
		if head.Row == 0 {
			return
		}
		e.cur.Move(Position{Row: head.Row - 1}, true)
		return
	}
	if head.Row >= e.grid.RowCount()-1 {
		return
	}
	next := head.Row + 1
	e.cur.Move(Position{Row: next, Column: e.grid.RowLen(next)}, true)
}

func (e *Editor[M]) selectAll() {
	end := e.grid.End()
	if end == (Position{}) {
		e.cur.SetCaret(end)
		return
	}
	e.cur.Set(cursor.NewSelection(Position{}, end))
}

// selectRow selects the current row including its row break and puts the
// head at the start of the following row. With no following row an empty
// one is appended.
func (e *Editor[M]) selectRow() {
	sel := e.cur.Selection()
	anchor := sel.Anchor
	if sel.IsCaret() {
		anchor = Position{Row: sel.Head.Row}
	}
	next := Position{Row: sel.Head.Row + 1}

	if next.Row < e.grid.RowCount() {
		e.cur.Set(cursor.NewSelection(anchor, next))
		return
	}

	var zero M
	op := e.track(history.KindInsert, next.Row, 0)
	if !e.grid.InsertRow(next.Row, "", zero) {
		e.log.Debug("select row: row limit reached")
		end := e.grid.End()
		e.cur.Set(cursor.NewSelection(anchor, end))
		if e.cur.Selection().IsCaret() {
			e.cur.SetCaret(end)
		}
		return
	}
	e.cur.Set(cursor.NewSelection(anchor, next))
	e.commit(op)
}

// widenSelection selects the word at the caret, or widens an existing
// selection by one token and its adjacent whitespace on each side.
func (e *Editor[M]) widenSelection() {
	sel := e.cur.Selection()

	if sel.IsCaret() {
		p := sel.Head
		start, end, ok := word.Select(e.grid.Runes(p.Row), p.Column)
		if !ok {
			return
		}
		e.cur.Set(cursor.NewSelection(
			Position{Row: p.Row, Column: start},
			Position{Row: p.Row, Column: end},
		))
		return
	}

	start, end := sel.Range()
	start.Column = word.JumpLeft(e.grid.Runes(start.Row), start.Column)
	end.Column = word.JumpRight(e.grid.Runes(end.Row), end.Column)

	if sel.IsBackward() {
		e.cur.Set(cursor.NewSelection(end, start))
	} else {
		e.cur.Set(cursor.NewSelection(start, end))
	}
}
