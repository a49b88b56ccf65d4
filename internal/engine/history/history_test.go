package history

import (
	"errors"
	"testing"

	"github.com/dshills/gridedit/internal/engine/cursor"
	"github.com/dshills/gridedit/internal/engine/grid"
)

func newGrid(t *testing.T, text string) *grid.Grid[int] {
	t.Helper()
	g, err := grid.NewFromString[int](10, text)
	if err != nil {
		t.Fatalf("NewFromString(%q) error: %v", text, err)
	}
	return g
}

// typeChar inserts ch at pos, recording a groupable operation at time ts.
func typeChar(h *History[int], g *grid.Grid[int], pos Position, ch rune, ts int64) Position {
	op := Track(g, KindInsert, pos.Row, 1)
	after := g.Insert(pos, string(ch))
	op.Done(g)
	op.Start, op.End = pos, after
	op.Timestamp = ts
	op.Groupable = true
	op.WithSelections(cursor.NewCaret(pos), cursor.NewCaret(after))
	h.Push(op)
	return after
}

func TestOperationApplyRevert(t *testing.T) {
	g := newGrid(t, "abc\ndef")
	g.SetMetadata(0, 7)

	op := Track(g, KindSplit, 0, 1)
	g.SplitRow(0, 0)
	op.Done(g)

	if len(op.Before) != 1 || len(op.After) != 2 {
		t.Fatalf("snapshots = %d/%d rows, want 1/2", len(op.Before), len(op.After))
	}

	op.Revert(g)
	if got := g.Text(); got != "abc\ndef" {
		t.Errorf("after Revert Text() = %q, want %q", got, "abc\ndef")
	}
	if got := g.Metadata(0); got != 7 {
		t.Errorf("after Revert Metadata(0) = %d, want 7", got)
	}

	op.Apply(g)
	if got := g.Text(); got != "\nabc\ndef" {
		t.Errorf("after Apply Text() = %q, want %q", got, "\nabc\ndef")
	}
	if got := g.Metadata(1); got != 7 {
		t.Errorf("after Apply Metadata(1) = %d, want 7", got)
	}
}

func TestOperationMergeRoundTrip(t *testing.T) {
	g := newGrid(t, "ab\ncd\nef")
	g.SetMetadata(1, 2)

	op := Track(g, KindMerge, 0, 2)
	g.MergeRowIntoPrevious(1)
	op.Done(g)

	if got := g.Text(); got != "abcd\nef" {
		t.Fatalf("Text() = %q, want %q", got, "abcd\nef")
	}
	op.Revert(g)
	if got := g.Text(); got != "ab\ncd\nef" {
		t.Errorf("after Revert Text() = %q, want %q", got, "ab\ncd\nef")
	}
	if got := g.Metadata(1); got != 2 {
		t.Errorf("after Revert Metadata(1) = %d, want 2", got)
	}
}

func TestOperationInvert(t *testing.T) {
	g := newGrid(t, "abc")
	op := Track(g, KindDelete, 0, 1)
	g.DeleteRange(grid.Pos(0, 1), grid.Pos(0, 2))
	op.Done(g)

	inv := op.Invert()
	inv.Apply(g)
	if got := g.Text(); got != "abc" {
		t.Errorf("Invert().Apply Text() = %q, want %q", got, "abc")
	}
	if op.IsNoop() {
		t.Error("IsNoop() = true for a deletion")
	}
}

func TestHistoryUndoRedo(t *testing.T) {
	g := newGrid(t, "")
	h := New[int]()

	typeChar(h, g, grid.Pos(0, 0), 'a', 0)
	if !h.CanUndo() {
		t.Fatal("CanUndo() = false after push")
	}

	sel, err := h.Undo(g)
	if err != nil {
		t.Fatalf("Undo() error: %v", err)
	}
	if got := g.Text(); got != "" {
		t.Errorf("after Undo Text() = %q, want empty", got)
	}
	if sel.Head != grid.Pos(0, 0) {
		t.Errorf("Undo() selection = %v, want caret at (0:0)", sel)
	}

	sel, err = h.Redo(g)
	if err != nil {
		t.Fatalf("Redo() error: %v", err)
	}
	if got := g.Text(); got != "a" {
		t.Errorf("after Redo Text() = %q, want %q", got, "a")
	}
	if sel.Head != grid.Pos(0, 1) {
		t.Errorf("Redo() selection = %v, want caret at (0:1)", sel)
	}
}

func TestHistoryEmptyStacks(t *testing.T) {
	g := newGrid(t, "x")
	h := New[int]()

	if _, err := h.Undo(g); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("Undo() error = %v, want ErrNothingToUndo", err)
	}
	if _, err := h.Redo(g); !errors.Is(err, ErrNothingToRedo) {
		t.Errorf("Redo() error = %v, want ErrNothingToRedo", err)
	}
	if got := g.Text(); got != "x" {
		t.Errorf("Text() = %q, want unchanged", got)
	}
}

func TestHistoryGrouping(t *testing.T) {
	tests := []struct {
		name   string
		times  []int64
		groups int
	}{
		{"all within threshold", []int64{0, 100, 200, 300}, 1},
		{"gap at threshold splits", []int64{0, 500}, 2},
		{"gap below threshold joins", []int64{0, 499}, 1},
		{"pause splits", []int64{0, 100, 1000, 1100}, 2},
		{"every gap large", []int64{0, 600, 1200}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGrid(t, "")
			h := New[int]()
			pos := grid.Pos(0, 0)
			for i, ts := range tt.times {
				pos = typeChar(h, g, pos, rune('a'+i), ts)
			}
			if got := h.UndoCount(); got != tt.groups {
				t.Errorf("UndoCount() = %d, want %d", got, tt.groups)
			}
		})
	}
}

func TestHistoryGroupingRequiresAdjacency(t *testing.T) {
	g := newGrid(t, "xy")
	h := New[int]()

	typeChar(h, g, grid.Pos(0, 0), 'a', 0)
	// Not at the previous insertion's end.
	typeChar(h, g, grid.Pos(0, 3), 'b', 10)

	if got := h.UndoCount(); got != 2 {
		t.Errorf("UndoCount() = %d, want 2", got)
	}
}

func TestHistoryStructuralEditsStartGroups(t *testing.T) {
	g := newGrid(t, "")
	h := New[int]()

	pos := typeChar(h, g, grid.Pos(0, 0), 'a', 0)

	op := Track(g, KindSplit, pos.Row, 1)
	g.SplitRow(pos.Row, pos.Column)
	op.Done(g).Timestamp = 10
	h.Push(op)

	typeChar(h, g, grid.Pos(1, 0), 'b', 20)

	if got := h.UndoCount(); got != 3 {
		t.Errorf("UndoCount() = %d, want 3", got)
	}
}

func TestHistoryGroupAllEdits(t *testing.T) {
	g := newGrid(t, "")
	h := New[int](WithGroupAllEdits(true))

	pos := typeChar(h, g, grid.Pos(0, 0), 'a', 0)
	op := Track(g, KindSplit, pos.Row, 1)
	g.SplitRow(pos.Row, pos.Column)
	op.Done(g).Timestamp = 10
	h.Push(op)

	if got := h.UndoCount(); got != 1 {
		t.Fatalf("UndoCount() = %d, want 1", got)
	}
	if _, err := h.Undo(g); err != nil {
		t.Fatalf("Undo() error: %v", err)
	}
	if got := g.Text(); got != "" {
		t.Errorf("after Undo Text() = %q, want empty", got)
	}
}

func TestHistoryUndoRestoresFirstSelection(t *testing.T) {
	g := newGrid(t, "")
	h := New[int]()

	pos := grid.Pos(0, 0)
	for i, ch := range "abc" {
		pos = typeChar(h, g, pos, ch, int64(i*10))
	}

	sel, err := h.Undo(g)
	if err != nil {
		t.Fatalf("Undo() error: %v", err)
	}
	if got := g.Text(); got != "" {
		t.Errorf("after Undo Text() = %q, want empty", got)
	}
	if sel != cursor.NewCaret(grid.Pos(0, 0)) {
		t.Errorf("Undo() selection = %v, want Caret(0:0)", sel)
	}

	sel, _ = h.Redo(g)
	if sel != cursor.NewCaret(grid.Pos(0, 3)) {
		t.Errorf("Redo() selection = %v, want Caret(0:3)", sel)
	}
}

func TestHistoryPushClearsRedo(t *testing.T) {
	g := newGrid(t, "")
	h := New[int]()

	typeChar(h, g, grid.Pos(0, 0), 'a', 0)
	h.Undo(g)
	if !h.CanRedo() {
		t.Fatal("CanRedo() = false after undo")
	}

	typeChar(h, g, grid.Pos(0, 0), 'b', 1000)
	if h.CanRedo() {
		t.Error("CanRedo() = true after a new push")
	}
}

func TestHistoryExplicitGroup(t *testing.T) {
	g := newGrid(t, "hello you")
	h := New[int]()

	func() {
		defer h.GroupScope("replace").End()
		if !h.IsGrouping() {
			t.Fatal("IsGrouping() = false inside scope")
		}

		del := Track(g, KindDelete, 0, 1)
		g.DeleteRange(grid.Pos(0, 0), grid.Pos(0, 5))
		h.Push(del.Done(g))

		ins := Track(g, KindInsert, 0, 1)
		g.Insert(grid.Pos(0, 0), "bye")
		h.Push(ins.Done(g))
	}()

	if h.IsGrouping() {
		t.Error("IsGrouping() = true after End")
	}
	if got := h.UndoCount(); got != 1 {
		t.Fatalf("UndoCount() = %d, want 1", got)
	}
	info, ok := h.PeekUndo()
	if !ok || info.Operations != 2 || info.Description != "delete+insert" {
		t.Errorf("PeekUndo() = %+v, %v; want 2 operations \"delete+insert\"", info, ok)
	}

	if got := g.Text(); got != "bye you" {
		t.Fatalf("Text() = %q, want %q", got, "bye you")
	}
	h.Undo(g)
	if got := g.Text(); got != "hello you" {
		t.Errorf("after Undo Text() = %q, want %q", got, "hello you")
	}
}

func TestHistoryEmptyGroupIgnored(t *testing.T) {
	h := New[int]()
	h.BeginGroup("nothing")
	h.EndGroup()
	if h.CanUndo() {
		t.Error("CanUndo() = true after an empty group")
	}
}

func TestHistoryMaxGroups(t *testing.T) {
	g := newGrid(t, "")
	h := New[int](WithMaxGroups(3))

	pos := grid.Pos(0, 0)
	for i := 0; i < 5; i++ {
		pos = typeChar(h, g, pos, 'x', int64(i*1000))
	}
	if got := h.UndoCount(); got != 3 {
		t.Errorf("UndoCount() = %d, want 3", got)
	}

	h.SetMaxEntries(1)
	if got := h.UndoCount(); got != 1 {
		t.Errorf("after SetMaxEntries(1) UndoCount() = %d, want 1", got)
	}
	if got := h.MaxEntries(); got != 1 {
		t.Errorf("MaxEntries() = %d, want 1", got)
	}
}

func TestHistoryInfo(t *testing.T) {
	g := newGrid(t, "")
	h := New[int](WithThreshold(100))

	if got := h.Threshold(); got != 100 {
		t.Errorf("Threshold() = %d, want 100", got)
	}

	pos := typeChar(h, g, grid.Pos(0, 0), 'a', 0)
	typeChar(h, g, pos, 'b', 50)
	typeChar(h, g, grid.Pos(0, 2), 'c', 500)

	infos := h.UndoInfo()
	if len(infos) != 2 {
		t.Fatalf("len(UndoInfo()) = %d, want 2", len(infos))
	}
	if infos[0].Operations != 2 || infos[0].Timestamp != 50 {
		t.Errorf("UndoInfo()[0] = %+v, want 2 operations at 50", infos[0])
	}
	if infos[0].ID == infos[1].ID {
		t.Error("groups share an ID")
	}

	h.Undo(g)
	redo := h.RedoInfo()
	if len(redo) != 1 || redo[0].Description != "insert" {
		t.Errorf("RedoInfo() = %+v, want one insert group", redo)
	}
	if _, ok := h.PeekRedo(); !ok {
		t.Error("PeekRedo() ok = false")
	}

	h.Clear()
	if h.CanUndo() || h.CanRedo() {
		t.Error("Clear() left history behind")
	}
}
