package grid

import "strings"

// Insert inserts text at pos and returns the position just after it.
//
// The part of the row after pos is lifted out, then the inserted text and
// that tail are laid out from pos onward. A newline in text starts a new
// row; a full row continues on a newly created row below it. Rows that
// followed the insertion row are never touched. When the row limit is
// reached, characters that cannot be placed are dropped.
//
// If pos is at column 0 of a non-empty row and the row's content ends up
// on a later row, the row's metadata travels with the content and the
// row left behind gets the zero value.
func (g *Grid[M]) Insert(pos Position, text string) Position {
	p, _ := g.insert(pos, text)
	return p
}

// InsertDropped is Insert that also reports how many characters were dropped.
func (g *Grid[M]) InsertDropped(pos Position, text string) (Position, int) {
	return g.insert(pos, text)
}

func (g *Grid[M]) prepare(text string) string {
	return g.norm.Apply(strings.ReplaceAll(text, "\r\n", "\n"))
}

func (g *Grid[M]) insert(pos Position, text string) (Position, int) {
	pos = g.Clamp(pos)
	ins := []rune(g.prepare(text))
	if len(ins) == 0 {
		return pos, 0
	}

	cur := pos.Row
	row := g.rows[cur]
	tail := append([]rune(nil), row.buf[pos.Column:row.n]...)
	row.n = pos.Column

	dropped := 0

	// next moves layout onto a new row below cur.
	next := func() bool {
		if !g.canAddRow() {
			return false
		}
		nr := g.newRow()
		cur++
		g.rows = append(g.rows, nil)
		copy(g.rows[cur+1:], g.rows[cur:])
		g.rows[cur] = nr
		row = nr
		return true
	}
	put := func(ch rune) bool {
		if row.n == g.width && !next() {
			dropped++
			return false
		}
		row.buf[row.n] = ch
		row.n++
		return true
	}

	for _, ch := range ins {
		if ch == '\n' {
			if !next() {
				dropped++
			}
			continue
		}
		put(ch)
	}
	caret := Position{Row: cur, Column: row.n}

	tailRow := -1
	for _, ch := range tail {
		if put(ch) && tailRow < 0 {
			tailRow = cur
		}
	}

	if pos.Column == 0 && len(tail) > 0 && tailRow > pos.Row {
		var zero M
		g.rows[tailRow].meta = g.rows[pos.Row].meta
		g.rows[pos.Row].meta = zero
	}

	return caret, dropped
}

// DeleteRange removes the text between two positions (end exclusive,
// either order). Rows strictly between the endpoints are removed and the
// two partial boundary rows are merged into one. The merged row keeps the
// upper row's metadata unless only the lower part has content.
//
// Returns false and leaves the grid unchanged if the range is empty or the
// merged row would exceed the row width.
func (g *Grid[M]) DeleteRange(a, b Position) bool {
	start, end := Order(g.Clamp(a), g.Clamp(b))
	if start == end {
		return false
	}

	first := g.rows[start.Row]
	if start.Row == end.Row {
		copy(first.buf[start.Column:], first.buf[end.Column:first.n])
		first.n -= end.Column - start.Column
		return true
	}

	last := g.rows[end.Row]
	suffix := last.n - end.Column
	if start.Column+suffix > g.width {
		return false
	}

	first.meta = mergeMeta(start.Column > 0, suffix > 0, first.meta, last.meta)
	copy(first.buf[start.Column:], last.buf[end.Column:last.n])
	first.n = start.Column + suffix

	g.removeRows(start.Row+1, end.Row-start.Row)
	return true
}

// mergeMeta picks the metadata of a merged row: the lower row's value
// only when the upper part is empty and the lower part is not.
func mergeMeta[M any](upperHasText, lowerHasText bool, upper, lower M) M {
	if !upperHasText && lowerHasText {
		return lower
	}
	return upper
}

// SplitRow breaks row r at column c into two rows.
// The new lower row receives the characters from c onward. Metadata stays
// on the upper row, except when c is 0 and the row has content: then the
// content row keeps its metadata and the blank row above gets the zero
// value. Returns false if the row limit is reached or r is invalid.
func (g *Grid[M]) SplitRow(r, c int) bool {
	if !g.validRow(r) || !g.canAddRow() {
		return false
	}
	upper := g.rows[r]
	if c < 0 {
		c = 0
	}
	if c > upper.n {
		c = upper.n
	}

	lower := g.newRow()
	lower.n = copy(lower.buf, upper.buf[c:upper.n])
	upper.n = c
	if c == 0 && lower.n > 0 {
		var zero M
		lower.meta = upper.meta
		upper.meta = zero
	}

	g.insertRows(r+1, lower)
	return true
}

// MergeRowIntoPrevious appends row r to row r-1 and removes row r.
// Returns false if r is 0, invalid, or the combined row would exceed the width.
func (g *Grid[M]) MergeRowIntoPrevious(r int) bool {
	if r <= 0 || !g.validRow(r) {
		return false
	}
	return g.DeleteRange(Position{Row: r - 1, Column: g.rows[r-1].n}, Position{Row: r})
}

// CanMerge returns true if rows r-1 and r fit into one row.
func (g *Grid[M]) CanMerge(r int) bool {
	if r <= 0 || !g.validRow(r) {
		return false
	}
	return g.rows[r-1].n+g.rows[r].n <= g.width
}

// SwapRows exchanges two rows together with their metadata.
func (g *Grid[M]) SwapRows(a, b int) bool {
	if !g.validRow(a) || !g.validRow(b) || a == b {
		return false
	}
	g.rows[a], g.rows[b] = g.rows[b], g.rows[a]
	return true
}

// InsertRow inserts a new row at index at with the given content and
// metadata. Content longer than the width is truncated.
// Returns false if the row limit is reached or at is out of range.
func (g *Grid[M]) InsertRow(at int, text string, meta M) bool {
	if at < 0 || at > len(g.rows) || !g.canAddRow() {
		return false
	}
	r := g.newRow()
	r.n = copy(r.buf, []rune(g.prepare(text)))
	r.meta = meta
	g.insertRows(at, r)
	return true
}

// RemoveRow deletes row r. The last remaining row cannot be removed;
// it is cleared instead and its metadata reset.
func (g *Grid[M]) RemoveRow(r int) bool {
	if !g.validRow(r) {
		return false
	}
	if len(g.rows) == 1 {
		var zero M
		g.rows[0].n = 0
		g.rows[0].meta = zero
		return true
	}
	g.removeRows(r, 1)
	return true
}

func (g *Grid[M]) insertRows(at int, rows ...*row[M]) {
	g.rows = append(g.rows, rows...)
	copy(g.rows[at+len(rows):], g.rows[at:len(g.rows)-len(rows)])
	copy(g.rows[at:], rows)
}

func (g *Grid[M]) removeRows(at, n int) {
	for _, r := range g.rows[at : at+n] {
		g.freeRow(r)
	}
	copy(g.rows[at:], g.rows[at+n:])
	for i := len(g.rows) - n; i < len(g.rows); i++ {
		g.rows[i] = nil
	}
	g.rows = g.rows[:len(g.rows)-n]
}
