// Package cursor provides the caret and selection state of the editor.
//
// Selection Model:
//
// Selections use an anchor/head model where:
//   - Anchor: the fixed position where the selection started
//   - Head: the active position, moved by navigation
//
// When Anchor == Head the selection is a plain caret. A selection made by
// moving upward or leftward has its anchor after its head in document
// order; Range returns the ordered bounds.
//
// Model wraps a Selection with the desired column remembered across
// consecutive vertical moves.
//
// Basic usage:
//
//	m := cursor.NewModel()
//	m.Move(grid.Pos(0, 4), true)    // extend from (0:0) to (0:4)
//	start, end := m.Selection().Range()
//
// Selection is an immutable value type. Model is owned by a single editor
// and is not safe for concurrent use.
package cursor
