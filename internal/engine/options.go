package engine

import (
	"github.com/dshills/gridedit/internal/engine/grid"
	"github.com/dshills/gridedit/internal/engine/history"
	"github.com/dshills/gridedit/internal/logging"
)

// Default configuration values.
const (
	DefaultWidth          = grid.DefaultWidth
	DefaultGroupThreshold = history.DefaultThreshold
	DefaultMaxUndoGroups  = history.DefaultMaxEntries
)

// Option configures an Editor during creation.
type Option func(*settings)

type settings struct {
	content   string
	maxRows   int
	norm      grid.Normalization
	threshold int64
	maxGroups int
	groupAll  bool
	edgeJump  bool
	logger    *logging.Logger
}

func defaultSettings() settings {
	return settings{
		threshold: DefaultGroupThreshold,
		maxGroups: DefaultMaxUndoGroups,
		logger:    logging.NullLogger,
	}
}

// WithContent sets the initial content of the editor.
// Lines longer than the row width wrap onto new rows.
func WithContent(content string) Option {
	return func(s *settings) {
		s.content = content
	}
}

// WithMaxRows limits the number of rows. Insertions that would need more
// rows drop the excess characters.
func WithMaxRows(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.maxRows = n
		}
	}
}

// WithNormalization sets the Unicode normalization applied to inserted text.
func WithNormalization(n grid.Normalization) Option {
	return func(s *settings) {
		s.norm = n
	}
}

// WithGroupThreshold sets the undo grouping time gate, in clock units.
func WithGroupThreshold(t int64) Option {
	return func(s *settings) {
		if t >= 0 {
			s.threshold = t
		}
	}
}

// WithMaxUndoGroups sets the maximum number of undo groups kept.
func WithMaxUndoGroups(max int) Option {
	return func(s *settings) {
		if max > 0 {
			s.maxGroups = max
		}
	}
}

// WithGroupAllEdits groups every edit made within the threshold,
// structural edits included.
func WithGroupAllEdits(enabled bool) Option {
	return func(s *settings) {
		s.groupAll = enabled
	}
}

// WithVerticalEdgeJump makes Up on the first row move to column 0 and
// Down on the last row move to the row end. Without it both are no-ops.
func WithVerticalEdgeJump(enabled bool) Option {
	return func(s *settings) {
		s.edgeJump = enabled
	}
}

// WithLogger sets the logger for rejected edits and history activity.
func WithLogger(l *logging.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}
