package grid

import (
	"fmt"
	"strings"
)

// row is one line of the grid. buf always has length width; only the
// first n runes are content.
type row[M any] struct {
	buf  []rune
	n    int
	meta M
}

func (r *row[M]) runes() []rune {
	return r.buf[:r.n]
}

// Grid is a fixed-capacity character grid with per-row metadata.
// It is not safe for concurrent use; the editor owns it exclusively.
type Grid[M any] struct {
	width   int
	maxRows int
	norm    Normalization
	arena   *arena
	rows    []*row[M]
}

// New creates a grid with one empty row. Each row holds at most width runes.
func New[M any](width int, opts ...Option) *Grid[M] {
	if width <= 0 {
		width = DefaultWidth
	}

	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	g := &Grid[M]{
		width:   width,
		maxRows: s.maxRows,
		norm:    s.norm,
		arena:   newArena(width),
	}
	g.rows = []*row[M]{g.newRow()}
	return g
}

// NewFromString creates a grid and loads text into it.
func NewFromString[M any](width int, text string, opts ...Option) (*Grid[M], error) {
	g := New[M](width, opts...)
	if err := g.Load(text); err != nil {
		return g, err
	}
	return g, nil
}

func (g *Grid[M]) newRow() *row[M] {
	return &row[M]{buf: g.arena.alloc()}
}

func (g *Grid[M]) freeRow(r *row[M]) {
	g.arena.release(r.buf)
	r.buf = nil
}

// Width returns the row capacity.
func (g *Grid[M]) Width() int {
	return g.width
}

// MaxRows returns the row limit (0 means unbounded).
func (g *Grid[M]) MaxRows() int {
	return g.maxRows
}

// Normalization returns the normalization policy for inserted text.
func (g *Grid[M]) Normalization() Normalization {
	return g.norm
}

// Normalize applies the grid's normalization policy to s.
func (g *Grid[M]) Normalize(s string) string {
	return g.norm.Apply(s)
}

// RowCount returns the number of rows. It is always at least 1.
func (g *Grid[M]) RowCount() int {
	return len(g.rows)
}

// RowLen returns the number of runes in a row, or 0 for an invalid row.
func (g *Grid[M]) RowLen(r int) int {
	if !g.validRow(r) {
		return 0
	}
	return g.rows[r].n
}

// IsFull returns true if the row holds Width runes.
func (g *Grid[M]) IsFull(r int) bool {
	return g.RowLen(r) == g.width
}

// Runes returns a copy of a row's content.
func (g *Grid[M]) Runes(r int) []rune {
	if !g.validRow(r) {
		return nil
	}
	return append([]rune(nil), g.rows[r].runes()...)
}

// RowText returns a row's content as a string.
func (g *Grid[M]) RowText(r int) string {
	if !g.validRow(r) {
		return ""
	}
	return string(g.rows[r].runes())
}

// Char returns the rune at a position.
// The second result is false when the position holds no character.
func (g *Grid[M]) Char(r, c int) (rune, bool) {
	if !g.validRow(r) || c < 0 || c >= g.rows[r].n {
		return 0, false
	}
	return g.rows[r].buf[c], true
}

// Metadata returns the metadata attached to a row.
// An invalid row yields the zero value.
func (g *Grid[M]) Metadata(r int) M {
	if !g.validRow(r) {
		var zero M
		return zero
	}
	return g.rows[r].meta
}

// SetMetadata attaches a value to a row. Returns false for an invalid row.
func (g *Grid[M]) SetMetadata(r int, m M) bool {
	if !g.validRow(r) {
		return false
	}
	g.rows[r].meta = m
	return true
}

// End returns the position just past the last character of the document.
func (g *Grid[M]) End() Position {
	last := len(g.rows) - 1
	return Position{Row: last, Column: g.rows[last].n}
}

// Clamp returns the nearest valid position to p.
func (g *Grid[M]) Clamp(p Position) Position {
	if p.Row < 0 {
		return Position{}
	}
	if p.Row >= len(g.rows) {
		return g.End()
	}
	if p.Column < 0 {
		p.Column = 0
	}
	if n := g.rows[p.Row].n; p.Column > n {
		p.Column = n
	}
	return p
}

// Valid returns true if p addresses a row and a column within [0, RowLen].
func (g *Grid[M]) Valid(p Position) bool {
	return g.validRow(p.Row) && p.Column >= 0 && p.Column <= g.rows[p.Row].n
}

func (g *Grid[M]) validRow(r int) bool {
	return r >= 0 && r < len(g.rows)
}

func (g *Grid[M]) canAddRow() bool {
	return g.maxRows == 0 || len(g.rows) < g.maxRows
}

// Text returns the whole document with rows joined by newlines.
func (g *Grid[M]) Text() string {
	return g.Slice(Position{}, g.End())
}

// Slice returns the text between two positions, in document order,
// with one newline per row boundary crossed.
func (g *Grid[M]) Slice(a, b Position) string {
	start, end := Order(g.Clamp(a), g.Clamp(b))

	var sb strings.Builder
	for r := start.Row; r <= end.Row; r++ {
		from, to := 0, g.rows[r].n
		if r == start.Row {
			from = start.Column
		}
		if r == end.Row {
			to = end.Column
		}
		sb.WriteString(string(g.rows[r].buf[from:to]))
		if r < end.Row {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// SetChar overwrites or appends a single rune without reflow.
// Rows up to r are created as needed. It is meant for loading content
// and building test fixtures, not for interactive editing.
func (g *Grid[M]) SetChar(r, c int, ch rune) error {
	if r < 0 || (g.maxRows > 0 && r >= g.maxRows) {
		return fmt.Errorf("%w: %d", ErrRowOutOfRange, r)
	}
	for len(g.rows) <= r {
		g.rows = append(g.rows, g.newRow())
	}

	row := g.rows[r]
	if c < 0 || c > row.n || c >= g.width {
		return fmt.Errorf("%w: row %d column %d (len %d, width %d)", ErrColumnOutOfRange, r, c, row.n, g.width)
	}
	row.buf[c] = ch
	if c == row.n {
		row.n++
	}
	return nil
}

// Load replaces the document with text. Lines longer than the row width
// wrap onto new rows. All metadata is reset to the zero value.
// ErrTruncated is returned if the row limit forced characters to be dropped.
func (g *Grid[M]) Load(text string) error {
	g.Reset()
	if _, dropped := g.insert(Position{}, text); dropped > 0 {
		return fmt.Errorf("%w: %d characters dropped", ErrTruncated, dropped)
	}
	return nil
}

// Reset clears the grid to a single empty row.
func (g *Grid[M]) Reset() {
	for _, r := range g.rows {
		g.freeRow(r)
	}
	g.rows = []*row[M]{g.newRow()}
}
