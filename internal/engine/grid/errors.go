package grid

import "errors"

// Errors returned by the loading surface of the grid.
// Interactive edits never fail; they report whether anything changed.
var (
	// ErrRowOutOfRange indicates a row beyond the configured row limit.
	ErrRowOutOfRange = errors.New("row out of range")

	// ErrColumnOutOfRange indicates a column past the row end or the row capacity.
	ErrColumnOutOfRange = errors.New("column out of range")

	// ErrTruncated indicates loaded text did not fit and was partially dropped.
	ErrTruncated = errors.New("content truncated")

	// ErrUnknownNormalization indicates an unrecognized normalization form name.
	ErrUnknownNormalization = errors.New("unknown normalization form")
)
