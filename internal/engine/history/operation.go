package history

import (
	"strings"

	"github.com/dshills/gridedit/internal/engine/cursor"
	"github.com/dshills/gridedit/internal/engine/grid"
)

// Position is an alias for grid.Position for convenience.
type Position = grid.Position

// Selection is an alias for cursor.Selection for convenience.
type Selection = cursor.Selection

// Kind is the logical kind of an edit.
type Kind uint8

const (
	// KindInsert inserts text (including pasted multi-row text).
	KindInsert Kind = iota
	// KindDelete removes a range or a whole row.
	KindDelete
	// KindSplit breaks a row in two.
	KindSplit
	// KindMerge joins a row into the previous one.
	KindMerge
	// KindSwap exchanges two adjacent rows.
	KindSwap
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInsert:
		return "insert"
	case KindDelete:
		return "delete"
	case KindSplit:
		return "split"
	case KindMerge:
		return "merge"
	case KindSwap:
		return "swap"
	default:
		return "unknown"
	}
}

// Operation represents a single undoable edit.
// The edit is stored as a row-range replacement: applying it replaces
// the rows Before (starting at Row) with After, reverting it does the
// opposite. Both directions are exact, including row metadata.
type Operation[M any] struct {
	Kind Kind
	Row  int

	Before []grid.RowSnapshot[M]
	After  []grid.RowSnapshot[M]

	// Selection state for restore
	SelectionBefore Selection
	SelectionAfter  Selection

	// Start and End bound the inserted text of an insertion.
	Start Position
	End   Position

	// Timestamp is the caller-supplied logical time of the edit.
	Timestamp int64

	// Groupable marks a single forward character insertion that may join
	// the previous undo group.
	Groupable bool

	rowsBefore int
}

// NewOperation creates an operation from explicit row snapshots.
func NewOperation[M any](kind Kind, row int, before, after []grid.RowSnapshot[M]) *Operation[M] {
	return &Operation[M]{
		Kind:   kind,
		Row:    row,
		Before: before,
		After:  after,
	}
}

// Track snapshots n rows starting at row before an edit.
// Call Done after mutating the grid to capture the resulting rows.
func Track[M any](g *grid.Grid[M], kind Kind, row, n int) *Operation[M] {
	return &Operation[M]{
		Kind:       kind,
		Row:        row,
		Before:     g.Snapshot(row, n),
		rowsBefore: g.RowCount(),
	}
}

// Done captures the rows that replaced the tracked range.
func (op *Operation[M]) Done(g *grid.Grid[M]) *Operation[M] {
	n := len(op.Before) + g.RowCount() - op.rowsBefore
	op.After = g.Snapshot(op.Row, n)
	return op
}

// Apply performs the operation on g.
func (op *Operation[M]) Apply(g *grid.Grid[M]) {
	g.Replace(op.Row, len(op.Before), op.After)
}

// Revert undoes the operation on g.
func (op *Operation[M]) Revert(g *grid.Grid[M]) {
	g.Replace(op.Row, len(op.After), op.Before)
}

// IsNoop returns true if the operation leaves the rows unchanged.
// Metadata is not compared.
func (op *Operation[M]) IsNoop() bool {
	if len(op.Before) != len(op.After) {
		return false
	}
	for i := range op.Before {
		if string(op.Before[i].Text) != string(op.After[i].Text) {
			return false
		}
	}
	return true
}

// Invert returns an operation that undoes this one.
func (op *Operation[M]) Invert() *Operation[M] {
	return &Operation[M]{
		Kind:            op.Kind,
		Row:             op.Row,
		Before:          op.After,
		After:           op.Before,
		SelectionBefore: op.SelectionAfter,
		SelectionAfter:  op.SelectionBefore,
		Start:           op.Start,
		End:             op.End,
		Timestamp:       op.Timestamp,
	}
}

// WithSelections sets the selection state and returns the operation for chaining.
func (op *Operation[M]) WithSelections(before, after Selection) *Operation[M] {
	op.SelectionBefore = before
	op.SelectionAfter = after
	return op
}

// Continues returns true if next is a forward insertion starting where
// op's insertion ended.
func (op *Operation[M]) Continues(next *Operation[M]) bool {
	return op.Kind == KindInsert && next.Kind == KindInsert &&
		op.Groupable && next.Groupable &&
		next.Start == op.End
}

// Description returns a human-readable description of the operation.
func (op *Operation[M]) Description() string {
	var sb strings.Builder
	sb.WriteString(op.Kind.String())
	if op.Kind == KindInsert && len(op.After) > 0 {
		sb.WriteString(" at ")
		sb.WriteString(op.Start.String())
	}
	return sb.String()
}
