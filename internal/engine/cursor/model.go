package cursor

// noColumn marks an unset desired column.
const noColumn = -1

// Model holds the editor's selection and the column remembered across
// consecutive vertical moves.
type Model struct {
	sel     Selection
	desired int
}

// NewModel creates a model with a caret at the document start.
func NewModel() *Model {
	return &Model{desired: noColumn}
}

// Selection returns the current selection.
func (m *Model) Selection() Selection {
	return m.sel
}

// Head returns the active position.
func (m *Model) Head() Position {
	return m.sel.Head
}

// Set replaces the selection and forgets the desired column.
func (m *Model) Set(sel Selection) {
	m.sel = sel
	m.desired = noColumn
}

// SetCaret places a caret at pos and forgets the desired column.
func (m *Model) SetCaret(pos Position) {
	m.Set(NewCaret(pos))
}

// Move moves the head to dest.
//
// Without extend the selection collapses to a caret at dest. With extend,
// the anchor is fixed at the pre-move head if no range existed, otherwise
// the existing anchor is kept. A range whose ends meet becomes a caret.
// Move forgets the desired column; vertical moves use MoveVertical.
func (m *Model) Move(dest Position, extend bool) {
	m.move(dest, extend)
	m.desired = noColumn
}

// MoveVertical moves the head to column col of row, clamped to rowLen,
// using the remembered desired column when one is set. The requested
// column is remembered for the next vertical move.
func (m *Model) MoveVertical(row, col, rowLen int, extend bool) {
	if m.desired != noColumn {
		col = m.desired
	}
	m.desired = col
	if col > rowLen {
		col = rowLen
	}
	m.move(Position{Row: row, Column: col}, extend)
}

// DesiredColumn returns the remembered column and whether one is set.
func (m *Model) DesiredColumn() (int, bool) {
	return m.desired, m.desired != noColumn
}

// ResetColumn forgets the desired column.
func (m *Model) ResetColumn() {
	m.desired = noColumn
}

func (m *Model) move(dest Position, extend bool) {
	if !extend {
		m.sel = NewCaret(dest)
		return
	}
	m.sel = m.sel.Extend(dest)
	if m.sel.IsCaret() {
		m.sel = NewCaret(dest)
	}
}
