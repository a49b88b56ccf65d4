package term

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/dshills/gridedit/internal/engine"
)

// cell is one screen cell of a laid-out row.
type cell struct {
	col   int // grid column of main
	x     int // display offset from the row start
	width int
	main  rune
	comb  []rune
}

// layout places the runes of a row on screen cells. Zero-width runes
// (combining marks) join the preceding cell; control characters show as
// a blank cell.
func layout(runes []rune) (cells []cell, width int) {
	for col, r := range runes {
		w := runewidth.RuneWidth(r)
		if w == 0 && len(cells) > 0 && r >= ' ' {
			last := &cells[len(cells)-1]
			last.comb = append(last.comb, r)
			continue
		}
		if r < ' ' {
			r = ' '
		}
		if w == 0 {
			w = 1
		}
		cells = append(cells, cell{col: col, x: width, width: w, main: r})
		width += w
	}
	return cells, width
}

// caretX returns the display offset of grid column col.
func caretX(cells []cell, width, col int) int {
	for _, c := range cells {
		if c.col >= col {
			return c.x
		}
	}
	return width
}

// Draw renders the editor onto the screen and shows it.
func (t *Terminal) Draw() {
	t.screen.Clear()
	w, h := t.screen.Size()

	textH := h
	if t.opts.StatusLine {
		textH--
	}
	gutter, numW, metaW := t.gutterWidths()
	metaX := 0
	if t.opts.RowNumbers {
		metaX = numW + 1
	}
	textW := w - gutter
	if textH <= 0 || textW <= 0 {
		t.screen.Show()
		return
	}

	sel := t.ed.Selection()
	head := sel.Head

	headCells, headW := layout(t.ed.Grid().Runes(head.Row))
	cx := caretX(headCells, headW, head.Column)
	t.scroll(head.Row, cx, textW, textH)

	for y := 0; y < textH; y++ {
		r := t.top + y
		if r >= t.ed.RowCount() {
			break
		}

		if t.opts.RowNumbers {
			t.drawString(0, y, fmt.Sprintf("%*d", numW, r+1), gutterStyle)
		}
		if t.opts.ShowMetadata {
			t.drawString(metaX, y, fmt.Sprintf("%*d", metaW, t.ed.Metadata(r)), gutterStyle)
		}

		cells, _ := layout(t.ed.Grid().Runes(r))
		for _, c := range cells {
			x := c.x - t.left
			if x < 0 || x+c.width > textW {
				continue
			}
			style := tcell.StyleDefault
			if sel.Contains(engine.Position{Row: r, Column: c.col}) {
				style = selectionStyle
			}
			t.screen.SetContent(gutter+x, y, c.main, c.comb, style)
		}
	}

	t.screen.ShowCursor(gutter+cx-t.left, head.Row-t.top)
	if t.opts.StatusLine {
		t.drawStatus(w, h-1)
	}
	t.screen.Show()
}

var (
	gutterStyle    = tcell.StyleDefault.Dim(true)
	selectionStyle = tcell.StyleDefault.Reverse(true)
	statusStyle    = tcell.StyleDefault.Reverse(true)
)

// gutterWidths returns the total gutter width and the widths of the
// row number and metadata columns.
func (t *Terminal) gutterWidths() (total, num, meta int) {
	if t.opts.RowNumbers {
		num = len(strconv.Itoa(t.ed.RowCount()))
		total += num + 1
	}
	if t.opts.ShowMetadata {
		for r := 0; r < t.ed.RowCount(); r++ {
			meta = max(meta, len(strconv.Itoa(t.ed.Metadata(r))))
		}
		total += meta + 1
	}
	return total, num, meta
}

// scroll adjusts the offsets so that the caret is visible.
func (t *Terminal) scroll(row, x, textW, textH int) {
	if last := t.ed.RowCount() - textH; t.top > last {
		t.top = max(last, 0)
	}
	if row < t.top {
		t.top = row
	}
	if row >= t.top+textH {
		t.top = row - textH + 1
	}
	if x < t.left {
		t.left = x
	}
	if x >= t.left+textW {
		t.left = x - textW + 1
	}
}

func (t *Terminal) drawStatus(w, y int) {
	head := t.ed.Selection().Head
	undo, redo := t.ed.History()
	status := fmt.Sprintf(" %d:%d  rows %d  undo %d  redo %d",
		head.Row+1, head.Column+1, t.ed.RowCount(), len(undo), len(redo))
	if sel := t.ed.SelectedText(); sel != "" {
		status += fmt.Sprintf("  sel %d", uniseg.GraphemeClusterCount(sel))
	}

	x := t.drawString(0, y, status, statusStyle)
	for ; x < w; x++ {
		t.screen.SetContent(x, y, ' ', nil, statusStyle)
	}
}

// drawString draws s at (x, y) and returns the x after it.
func (t *Terminal) drawString(x, y int, s string, style tcell.Style) int {
	cells, width := layout([]rune(s))
	for _, c := range cells {
		t.screen.SetContent(x+c.x, y, c.main, c.comb, style)
	}
	return x + width
}
