package grid

import "fmt"

// Position is a row and column in the grid.
// Both are 0-indexed. Column counts runes from the start of the row and
// may equal the row length (the end-of-row caret).
type Position struct {
	Row    int
	Column int
}

// Pos is shorthand for Position{Row: row, Column: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Column: col}
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Row, p.Column)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Position) Compare(other Position) int {
	if p.Row < other.Row {
		return -1
	}
	if p.Row > other.Row {
		return 1
	}
	if p.Column < other.Column {
		return -1
	}
	if p.Column > other.Column {
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other.
func (p Position) After(other Position) bool {
	return p.Compare(other) > 0
}

// IsZero returns true if this is the document start (0:0).
func (p Position) IsZero() bool {
	return p.Row == 0 && p.Column == 0
}

// Order returns a and b sorted in document order.
func Order(a, b Position) (Position, Position) {
	if b.Before(a) {
		return b, a
	}
	return a, b
}
