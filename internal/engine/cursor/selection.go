package cursor

import (
	"fmt"

	"github.com/dshills/gridedit/internal/engine/grid"
)

// Position is an alias for grid.Position for convenience.
type Position = grid.Position

// Selection represents a caret or a range of selected text.
// Anchor is where the selection started; Head is the active end.
// When Anchor == Head, this represents a caret with no selection.
type Selection struct {
	Anchor Position
	Head   Position
}

// NewSelection creates a selection from anchor to head.
func NewSelection(anchor, head Position) Selection {
	return Selection{Anchor: anchor, Head: head}
}

// NewCaret creates a selection representing just a caret.
func NewCaret(pos Position) Selection {
	return Selection{Anchor: pos, Head: pos}
}

// IsCaret returns true if the selection has no extent.
func (s Selection) IsCaret() bool {
	return s.Anchor == s.Head
}

// IsRange returns true if the selection covers at least one position.
func (s Selection) IsRange() bool {
	return s.Anchor != s.Head
}

// Range returns the selection bounds in document order.
func (s Selection) Range() (start, end Position) {
	return grid.Order(s.Anchor, s.Head)
}

// Start returns the lower bound of the selection.
func (s Selection) Start() Position {
	start, _ := s.Range()
	return start
}

// End returns the upper bound of the selection.
func (s Selection) End() Position {
	_, end := s.Range()
	return end
}

// IsBackward returns true if the head is before the anchor.
func (s Selection) IsBackward() bool {
	return s.Head.Before(s.Anchor)
}

// Extend returns a selection with the anchor kept and the head moved to pos.
func (s Selection) Extend(pos Position) Selection {
	return Selection{Anchor: s.Anchor, Head: pos}
}

// Collapse returns a caret at the head.
func (s Selection) Collapse() Selection {
	return NewCaret(s.Head)
}

// Contains returns true if pos lies in [Start, End).
// A caret contains nothing.
func (s Selection) Contains(pos Position) bool {
	start, end := s.Range()
	return !pos.Before(start) && pos.Before(end)
}

// Rows returns the first and last row touched by the selection.
func (s Selection) Rows() (first, last int) {
	start, end := s.Range()
	return start.Row, end.Row
}

// String returns a string representation of the selection.
func (s Selection) String() string {
	if s.IsCaret() {
		return fmt.Sprintf("Caret%v", s.Head)
	}
	dir := "→"
	if s.IsBackward() {
		dir = "←"
	}
	return fmt.Sprintf("Selection(%v%s%v)", s.Anchor, dir, s.Head)
}
