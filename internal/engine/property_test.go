package engine

import (
	"math/rand/v2"
	"testing"

	"github.com/dshills/gridedit/internal/input/key"
)

var propertyKeys = []string{
	"Left", "Right", "Up", "Down", "Home", "End",
	"Shift+Left", "Shift+Right", "Shift+Up", "Shift+Down", "Shift+Home", "Shift+End",
	"Ctrl+Left", "Ctrl+Right", "Ctrl+Shift+Left", "Ctrl+Shift+Right",
	"Ctrl+Shift+Up", "Ctrl+Shift+Down", "Alt+Shift+Up", "Alt+Shift+Down",
	"Enter", "Backspace", "Delete", "Ctrl+Backspace", "Ctrl+Delete",
	"Ctrl+a", "Ctrl+d", "Ctrl+Shift+d", "Ctrl+w", "Ctrl+x",
}

var propertyRunes = []rune(`ab _"()é❤ 1`)

var propertyTexts = []string{"xy", "a\nb", "\n", "long text that wraps", `"q" (r)`}

func randomEvent(rng *rand.Rand) key.Event {
	switch n := rng.IntN(10); {
	case n < 4:
		return key.NewRuneEvent(propertyRunes[rng.IntN(len(propertyRunes))], key.ModNone)
	case n < 5:
		return key.NewTextEvent(propertyTexts[rng.IntN(len(propertyTexts))])
	default:
		return key.MustParse(propertyKeys[rng.IntN(len(propertyKeys))])
	}
}

func checkInvariants(t *testing.T, e *Editor[int], step int, ev key.Event) {
	t.Helper()
	g := e.Grid()
	if n := g.RowCount(); n < 1 || n > g.MaxRows() {
		t.Fatalf("step %d (%v): RowCount() = %d, want 1..%d", step, ev, n, g.MaxRows())
	}
	for r := 0; r < g.RowCount(); r++ {
		if g.RowLen(r) > g.Width() {
			t.Fatalf("step %d (%v): RowLen(%d) = %d exceeds width %d", step, ev, r, g.RowLen(r), g.Width())
		}
	}
	sel := e.Selection()
	if !g.Valid(sel.Anchor) || !g.Valid(sel.Head) {
		t.Fatalf("step %d (%v): invalid selection %v", step, ev, sel)
	}
}

func TestRandomEditsKeepInvariants(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewPCG(seed, seed*31))
		e := New[int](8, WithMaxRows(6), WithContent("ab cd\nef"))
		initial := e.Text()

		var now int64
		for step := 0; step < 300; step++ {
			if rng.IntN(4) == 0 {
				now += rng.Int64N(2 * DefaultGroupThreshold)
				e.HandleTick(now)
			}
			ev := randomEvent(rng)
			e.HandleInput(ev)
			checkInvariants(t, e, step, ev)
		}
		final := e.Text()

		for e.Undo() {
			checkInvariants(t, e, -1, key.Event{})
		}
		if got := e.Text(); got != initial {
			t.Fatalf("seed %d: Text() after undoing everything = %q, want %q", seed, got, initial)
		}

		for e.Redo() {
			checkInvariants(t, e, -1, key.Event{})
		}
		if got := e.Text(); got != final {
			t.Fatalf("seed %d: Text() after redoing everything = %q, want %q", seed, got, final)
		}
	}
}

func TestRandomEditsUndoMetadata(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	e := New[int](10, WithMaxRows(8), WithContent("one\ntwo\nthree"))
	setMeta(e, 1, 2, 3)
	want := metas(e)

	for step := 0; step < 200; step++ {
		e.HandleInput(randomEvent(rng))
	}
	for e.Undo() {
	}

	got := metas(e)
	if len(got) != len(want) {
		t.Fatalf("metadata = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("metadata = %v, want %v", got, want)
		}
	}
}
