// Package grid provides the fixed-capacity character storage behind the
// editor engine. A Grid is an ordered sequence of rows; every row holds at
// most Width runes and carries one metadata value of a caller-chosen type.
//
// The grid package provides:
//
//   - Rune-addressed positions (columns count Unicode scalar values)
//   - Reflowing insertion that carries overflow onto new rows
//   - Range deletion that merges the partial boundary rows
//   - Row split, merge, swap and removal with metadata travel rules
//   - Row snapshots used by the history package to apply and invert edits
//   - An explicit Unicode normalization policy for inserted text
//
// Basic usage:
//
//	g := grid.New[int](80)
//	pos := g.Insert(grid.Position{}, "hello\nworld")
//	g.SplitRow(pos.Row, pos.Column)
//	fmt.Println(g.Text())
//
// Rows are backed by an arena of fixed-size rune slabs. Reordering rows
// moves row handles only; the characters of unrelated rows are never
// copied.
//
// Invariants: RowCount() >= 1 and RowLen(r) <= Width() for every row at
// all times. Operations that would break an invariant are rejected and
// report false, or drop the characters that cannot be placed.
package grid
