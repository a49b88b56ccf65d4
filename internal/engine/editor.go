package engine

import (
	"github.com/dshills/gridedit/internal/engine/cursor"
	"github.com/dshills/gridedit/internal/engine/grid"
	"github.com/dshills/gridedit/internal/engine/history"
	"github.com/dshills/gridedit/internal/logging"
)

// Re-export commonly used types for convenience.
type (
	// Position is a row/column location; columns count runes.
	Position = grid.Position

	// Selection is a caret or an anchor/head range.
	Selection = cursor.Selection

	// OperationInfo describes one undo group.
	OperationInfo = history.OperationInfo
)

// Editor applies input events to a character grid.
//
// It owns the grid, the selection, the clipboard and the undo history.
// M is the type of the per-row metadata; the editor stores it and moves
// it between rows on structural edits but never interprets it.
//
// Editor is not safe for concurrent use. All calls must come from one
// logical caller.
type Editor[M any] struct {
	grid    *grid.Grid[M]
	cur     *cursor.Model
	history *history.History[M]
	log     *logging.Logger

	clipboard string
	now       int64
	revision  uint64

	edgeJump bool
}

// New creates an editor whose rows hold at most width runes.
// A non-positive width selects DefaultWidth.
func New[M any](width int, opts ...Option) *Editor[M] {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}

	var gridOpts []grid.Option
	if s.maxRows > 0 {
		gridOpts = append(gridOpts, grid.WithMaxRows(s.maxRows))
	}
	gridOpts = append(gridOpts, grid.WithNormalization(s.norm))

	e := &Editor[M]{
		grid: grid.New[M](width, gridOpts...),
		cur:  cursor.NewModel(),
		history: history.New[M](
			history.WithThreshold(s.threshold),
			history.WithMaxGroups(s.maxGroups),
			history.WithGroupAllEdits(s.groupAll),
		),
		log:      s.logger.WithComponent("editor"),
		edgeJump: s.edgeJump,
	}

	if s.content != "" {
		if err := e.grid.Load(s.content); err != nil {
			e.log.Warn("initial content: %v", err)
		}
	}
	return e
}

// ============================================================================
// Read Surface
// ============================================================================

// Grid returns the underlying grid. Mutating it directly bypasses the
// undo history and may leave the selection out of range.
func (e *Editor[M]) Grid() *grid.Grid[M] {
	return e.grid
}

// Width returns the row capacity.
func (e *Editor[M]) Width() int {
	return e.grid.Width()
}

// RowCount returns the number of rows.
func (e *Editor[M]) RowCount() int {
	return e.grid.RowCount()
}

// RowText returns the content of a row.
func (e *Editor[M]) RowText(r int) string {
	return e.grid.RowText(r)
}

// RowLen returns the number of runes in a row.
func (e *Editor[M]) RowLen(r int) int {
	return e.grid.RowLen(r)
}

// Metadata returns the metadata of a row.
func (e *Editor[M]) Metadata(r int) M {
	return e.grid.Metadata(r)
}

// Text returns the whole document with rows joined by newlines.
func (e *Editor[M]) Text() string {
	return e.grid.Text()
}

// Selection returns the current selection.
func (e *Editor[M]) Selection() Selection {
	return e.cur.Selection()
}

// SelectedText returns the text covered by the selection.
func (e *Editor[M]) SelectedText() string {
	start, end := e.cur.Selection().Range()
	return e.grid.Slice(start, end)
}

// Clipboard returns the clipboard content.
func (e *Editor[M]) Clipboard() string {
	return e.clipboard
}

// Now returns the last clock value fed through HandleTick.
func (e *Editor[M]) Now() int64 {
	return e.now
}

// Revision returns a counter that changes whenever the content changes.
func (e *Editor[M]) Revision() uint64 {
	return e.revision
}

// History returns descriptions of the undo and redo groups, oldest first.
func (e *Editor[M]) History() (undo, redo []OperationInfo) {
	return e.history.UndoInfo(), e.history.RedoInfo()
}

// CanUndo returns true if there is a group to undo.
func (e *Editor[M]) CanUndo() bool {
	return e.history.CanUndo()
}

// CanRedo returns true if there is a group to redo.
func (e *Editor[M]) CanRedo() bool {
	return e.history.CanRedo()
}

// ============================================================================
// Write Surface
// ============================================================================

// SetSelection replaces the selection. Both ends are clamped to the document.
func (e *Editor[M]) SetSelection(sel Selection) {
	e.cur.Set(e.clampSelection(sel))
}

// SetCaret places a caret at pos, clamped to the document.
func (e *Editor[M]) SetCaret(pos Position) {
	e.cur.SetCaret(e.grid.Clamp(pos))
}

// SetClipboard replaces the clipboard content.
func (e *Editor[M]) SetClipboard(s string) {
	e.clipboard = s
}

// SetMetadata attaches a value to a row. It is not recorded in history.
func (e *Editor[M]) SetMetadata(r int, m M) bool {
	return e.grid.SetMetadata(r, m)
}

// SetChar writes a rune directly into the grid without reflow or history.
// It is meant for loading content and building fixtures.
func (e *Editor[M]) SetChar(r, c int, ch rune) error {
	if err := e.grid.SetChar(r, c, ch); err != nil {
		return err
	}
	e.revision++
	return nil
}

// Load replaces the document, clears the history and puts the caret at
// the document start.
func (e *Editor[M]) Load(text string) error {
	err := e.grid.Load(text)
	e.history.Clear()
	e.cur.SetCaret(Position{})
	e.revision++
	return err
}

// HandleTick advances the clock used for undo grouping.
// Values smaller than the current time are ignored.
func (e *Editor[M]) HandleTick(now int64) {
	if now < e.now {
		e.log.Debug("clock went backwards: %d < %d", now, e.now)
		return
	}
	e.now = now
}

func (e *Editor[M]) clampSelection(sel Selection) Selection {
	return cursor.NewSelection(e.grid.Clamp(sel.Anchor), e.grid.Clamp(sel.Head))
}

// track starts recording an edit of n rows from row.
func (e *Editor[M]) track(kind history.Kind, row, n int) *history.Operation[M] {
	op := history.Track(e.grid, kind, row, n)
	op.SelectionBefore = e.cur.Selection()
	op.Timestamp = e.now
	return op
}

// commit finishes an edit started with track and pushes it to history.
// Call it after the selection has been updated.
func (e *Editor[M]) commit(op *history.Operation[M]) {
	op.Done(e.grid)
	op.SelectionAfter = e.cur.Selection()
	e.history.Push(op)
	e.cur.ResetColumn()
	e.revision++
}
