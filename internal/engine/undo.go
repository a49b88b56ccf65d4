package engine

// Undo reverts the most recent undo group and restores the selection
// recorded before it. The caret lands on the edited row; its column is
// clamped when the row is shorter. Returns false if there is nothing to undo.
func (e *Editor[M]) Undo() bool {
	info, _ := e.history.PeekUndo()
	sel, err := e.history.Undo(e.grid)
	if err != nil {
		return false
	}
	e.cur.Set(e.clampSelection(sel))
	e.revision++
	e.log.WithField("group", info.ID).Debug("undo %s: %d groups left", info.Description, e.history.UndoCount())
	return true
}

// Redo reapplies the most recently undone group and restores the
// selection recorded after it. Returns false if there is nothing to redo.
func (e *Editor[M]) Redo() bool {
	info, _ := e.history.PeekRedo()
	sel, err := e.history.Redo(e.grid)
	if err != nil {
		return false
	}
	e.cur.Set(e.clampSelection(sel))
	e.revision++
	e.log.WithField("group", info.ID).Debug("redo %s: %d groups left", info.Description, e.history.RedoCount())
	return true
}
