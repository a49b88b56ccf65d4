package grid

// DefaultWidth is the row capacity used when New receives a non-positive width.
const DefaultWidth = 80

// Option is a functional option for configuring a Grid.
type Option func(*settings)

type settings struct {
	maxRows int
	norm    Normalization
}

// WithMaxRows limits the number of rows the grid may hold.
// Zero means unbounded.
func WithMaxRows(n int) Option {
	return func(s *settings) {
		if n >= 0 {
			s.maxRows = n
		}
	}
}

// WithNormalization sets the Unicode normalization applied to inserted text.
func WithNormalization(n Normalization) Option {
	return func(s *settings) {
		s.norm = n
	}
}
