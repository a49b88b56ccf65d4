package grid

// RowSnapshot is a detached copy of one row: its content and metadata.
type RowSnapshot[M any] struct {
	Text []rune
	Meta M
}

// String returns the snapshot content.
func (s RowSnapshot[M]) String() string {
	return string(s.Text)
}

// Snapshot copies n rows starting at row r.
// The range is clipped to the existing rows.
func (g *Grid[M]) Snapshot(r, n int) []RowSnapshot[M] {
	if r < 0 {
		r = 0
	}
	if r+n > len(g.rows) {
		n = len(g.rows) - r
	}
	if n <= 0 {
		return nil
	}

	out := make([]RowSnapshot[M], n)
	for i := range out {
		src := g.rows[r+i]
		out[i] = RowSnapshot[M]{
			Text: append([]rune(nil), src.runes()...),
			Meta: src.meta,
		}
	}
	return out
}

// Replace swaps the n rows starting at row r for the given snapshots.
// Snapshot text longer than the width is truncated. If the result would
// leave the grid without rows, a single empty row is kept.
// Replace ignores the row limit: it restores states the grid held before.
func (g *Grid[M]) Replace(r, n int, rows []RowSnapshot[M]) {
	if r < 0 {
		r = 0
	}
	if r > len(g.rows) {
		r = len(g.rows)
	}
	if r+n > len(g.rows) {
		n = len(g.rows) - r
	}

	fresh := make([]*row[M], len(rows))
	for i, s := range rows {
		nr := g.newRow()
		nr.n = copy(nr.buf, s.Text)
		nr.meta = s.Meta
		fresh[i] = nr
	}

	g.removeRows(r, n)
	if len(fresh) > 0 {
		g.insertRows(r, fresh...)
	}
	if len(g.rows) == 0 {
		g.rows = []*row[M]{g.newRow()}
	}
}
