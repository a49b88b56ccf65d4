// Package history provides undo/redo for the editor engine.
//
// # Operations
//
// An Operation represents a single atomic edit with before/after state:
//   - The first affected row
//   - Snapshots of the rows before and after the edit (text and metadata)
//   - The selection before and after
//   - A caller-supplied logical timestamp
//
// Because an operation replaces whole rows, applying and reverting it is
// exact even when an insertion reflowed onto new rows or a merge moved
// metadata between rows.
//
//	op := history.Track(g, history.KindSplit, row, 1)
//	g.SplitRow(row, col)
//	h.Push(op.Done(g))
//
// # History Stack
//
// The History type manages undo/redo stacks of groups:
//
//	h := history.New[int](history.WithThreshold(500))
//
//	// Undo/redo
//	sel, err := h.Undo(g)
//	sel, err = h.Redo(g)
//
// # Grouping
//
// Consecutive forward character insertions whose timestamps are closer
// than the threshold form one group, so a typed word undoes at once.
// Structural edits always start a new group. Multiple operations can be
// forced into one group:
//
//	h.BeginGroup("replace selection")
//	// ... delete, then insert ...
//	h.EndGroup()
//
// # Selection Restoration
//
// Undo returns the selection recorded before the group began, which puts
// the caret back on the edited row. Redo returns the selection recorded
// after the group's last operation.
package history
