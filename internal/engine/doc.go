// Package engine provides the editing core of gridedit.
//
// The Editor combines a fixed-width character grid, a selection, a
// clipboard and an undo history, and applies a closed vocabulary of input
// events to them deterministically.
//
// # Architecture
//
// The engine is built on several sub-packages:
//
//   - grid: rows of at most Width runes with one metadata value each
//   - word: character classes and word boundaries within a row
//   - cursor: anchor/head selection and the remembered vertical column
//   - history: row-range undo entries grouped by a caller-fed clock
//   - markup: the inline notation used by tests and scenario files
//
// # Basic Usage
//
//	e := engine.New[int](80, engine.WithContent("hello"))
//
//	e.HandleInput(key.NewSpecialEvent(key.KeyEnd, key.ModNone))
//	e.HandleInput(key.NewRuneEvent('!', key.ModNone))
//
//	text := e.Text() // "hello!"
//
// # Row Capacity
//
// A row never holds more than Width runes. Inserted text that does not
// fit continues on new rows; a single typed character that does not fit
// is rejected. Merges that would overflow a row are rejected as well.
// Rejected edits leave every piece of state unchanged.
//
// # Metadata
//
// Each row carries a value of type M that the editor never interprets.
// Enter at column 0 of a non-empty row moves the value down with the
// text. A merge keeps the upper row's value unless only the lower row
// has text.
//
// # Undo/Redo
//
// The caller drives the clock:
//
//	e.HandleTick(now)
//
// Characters typed at adjacent positions less than the group threshold
// apart undo together. Everything else undoes one edit at a time:
//
//	e.Undo()
//	e.Redo()
package engine
