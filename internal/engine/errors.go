package engine

import "github.com/dshills/gridedit/internal/engine/grid"

// Errors returned by the loading surface (Load, SetChar).
// Interactive edits never fail; they leave the state unchanged instead.
var (
	// ErrRowOutOfRange indicates a row beyond the row limit.
	ErrRowOutOfRange = grid.ErrRowOutOfRange

	// ErrColumnOutOfRange indicates a column past the row end or width.
	ErrColumnOutOfRange = grid.ErrColumnOutOfRange

	// ErrTruncated indicates loaded content did not fit the row limit.
	ErrTruncated = grid.ErrTruncated
)
