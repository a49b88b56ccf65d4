package engine

import (
	"errors"
	"strings"
	"testing"

	"github.com/dshills/gridedit/internal/engine/grid"
	"github.com/dshills/gridedit/internal/engine/markup"
	"github.com/dshills/gridedit/internal/input/key"
)

// newEditor builds an 80-column editor from markup content.
func newEditor(t *testing.T, content string, opts ...Option) *Editor[int] {
	t.Helper()
	return newEditorWidth(t, 80, content, opts...)
}

func newEditorWidth(t *testing.T, width int, content string, opts ...Option) *Editor[int] {
	t.Helper()
	doc, err := markup.Parse(content)
	if err != nil {
		t.Fatalf("markup.Parse(%q) error: %v", content, err)
	}
	e := New[int](width, opts...)
	if err := e.Load(doc.Text); err != nil {
		t.Fatalf("Load(%q) error: %v", doc.Text, err)
	}
	e.SetSelection(doc.Selection)
	return e
}

func render(e *Editor[int]) string {
	return markup.Render(e.Grid(), e.Selection())
}

// press feeds key specifications to the editor and reports whether the
// last one changed anything.
func press(t *testing.T, e *Editor[int], specs ...string) bool {
	t.Helper()
	changed := false
	for _, spec := range specs {
		ev, err := key.Parse(spec)
		if err != nil {
			t.Fatalf("key.Parse(%q) error: %v", spec, err)
		}
		changed = e.HandleInput(ev)
	}
	return changed
}

func typeText(e *Editor[int], s string) {
	for _, r := range s {
		e.HandleInput(key.NewRuneEvent(r, key.ModNone))
	}
}

func setMeta(e *Editor[int], meta ...int) {
	for i, m := range meta {
		e.SetMetadata(i, m)
	}
}

func metas(e *Editor[int]) []int {
	out := make([]int, e.RowCount())
	for i := range out {
		out[i] = e.Metadata(i)
	}
	return out
}

func assertRender(t *testing.T, e *Editor[int], want string) {
	t.Helper()
	if got := render(e); got != want {
		t.Errorf("content = %q, want %q", got, want)
	}
}

func assertMeta(t *testing.T, e *Editor[int], want ...int) {
	t.Helper()
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

// ============================================================================
// Construction and Read Surface
// ============================================================================

func TestNew(t *testing.T) {
	e := New[int](0)
	if e.Width() != DefaultWidth {
		t.Errorf("Width() = %d, want %d", e.Width(), DefaultWidth)
	}
	if e.RowCount() != 1 || e.Text() != "" {
		t.Errorf("new editor: RowCount() = %d, Text() = %q", e.RowCount(), e.Text())
	}
	if e.CanUndo() || e.CanRedo() {
		t.Error("new editor has history")
	}
}

func TestNewWithContent(t *testing.T) {
	e := New[int](4, WithContent("abcdef\ngh"))
	want := []string{"abcd", "ef", "gh"}
	if e.RowCount() != len(want) {
		t.Fatalf("RowCount() = %d, want %d", e.RowCount(), len(want))
	}
	for i, w := range want {
		if got := e.RowText(i); got != w {
			t.Errorf("RowText(%d) = %q, want %q", i, got, w)
		}
	}
	if got := e.RowLen(1); got != 2 {
		t.Errorf("RowLen(1) = %d, want 2", got)
	}
}

func TestLoad(t *testing.T) {
	e := newEditor(t, "ab█c")
	typeText(e, "x")

	if err := e.Load("xyz\n123"); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if e.CanUndo() {
		t.Error("CanUndo() = true after Load")
	}
	assertRender(t, e, "█xyz\n123")

	small := New[int](3, WithMaxRows(1))
	if err := small.Load("abcdef"); !errors.Is(err, ErrTruncated) {
		t.Errorf("Load() error = %v, want ErrTruncated", err)
	}
	if got := small.Text(); got != "abc" {
		t.Errorf("Text() = %q, want %q", got, "abc")
	}
}

func TestSetChar(t *testing.T) {
	e := New[int](3)
	for i, r := range "abc" {
		if err := e.SetChar(0, i, r); err != nil {
			t.Fatalf("SetChar(0, %d) error: %v", i, err)
		}
	}
	if err := e.SetChar(0, 3, 'd'); !errors.Is(err, ErrColumnOutOfRange) {
		t.Errorf("SetChar past width error = %v, want ErrColumnOutOfRange", err)
	}
	if err := e.SetChar(1, 0, 'd'); err != nil {
		t.Errorf("SetChar(1, 0) error: %v", err)
	}
	if got := e.Text(); got != "abc\nd" {
		t.Errorf("Text() = %q, want %q", got, "abc\nd")
	}
	if e.CanUndo() {
		t.Error("SetChar recorded history")
	}
}

func TestSetSelectionClamps(t *testing.T) {
	e := newEditor(t, "abc\nde")
	e.SetSelection(Selection{Anchor: grid.Pos(0, 10), Head: grid.Pos(5, 0)})
	assertRender(t, e, "abc❱\nde❰")

	e.SetCaret(grid.Pos(1, -3))
	assertRender(t, e, "abc\n█de")
}

func TestHandleTick(t *testing.T) {
	e := New[int](10)
	e.HandleTick(100)
	e.HandleTick(50)
	if got := e.Now(); got != 100 {
		t.Errorf("Now() = %d, want 100", got)
	}
	e.HandleTick(100)
	e.HandleTick(250)
	if got := e.Now(); got != 250 {
		t.Errorf("Now() = %d, want 250", got)
	}
}

func TestNormalization(t *testing.T) {
	e := New[int](80, WithNormalization(grid.NormNFC))
	e.HandleInput(key.NewTextEvent("e\u0301"))
	if got := e.RowLen(0); got != 1 {
		t.Errorf("NFC RowLen(0) = %d, want 1", got)
	}
	if got := e.Selection().Head; got != grid.Pos(0, 1) {
		t.Errorf("caret = %v, want (0:1)", got)
	}

	d := New[int](80, WithNormalization(grid.NormNFD))
	d.HandleInput(key.NewRuneEvent('\u00e9', key.ModNone))
	if got := d.RowLen(0); got != 2 {
		t.Errorf("NFD RowLen(0) = %d, want 2", got)
	}
	if got := d.Selection().Head; got != grid.Pos(0, 2) {
		t.Errorf("caret = %v, want (0:2)", got)
	}
}

func TestHandleInputIgnoresUnknown(t *testing.T) {
	e := newEditor(t, "ab█c")
	tests := []key.Event{
		{},
		key.NewRuneEvent('q', key.ModCtrl),
		key.NewRuneEvent('q', key.ModAlt),
		key.NewRuneEvent('\x01', key.ModNone),
		key.NewTextEvent(""),
	}
	for _, ev := range tests {
		if e.HandleInput(ev) {
			t.Errorf("HandleInput(%#v) = true, want false", ev)
		}
	}
	assertRender(t, e, "ab█c")
}

// ============================================================================
// Scenarios
// ============================================================================

func TestScenarioRightThrice(t *testing.T) {
	e := newEditor(t, "█abcdefghijklmnopqrstuvwxyz")
	press(t, e, "Right", "Right", "Right")
	assertRender(t, e, "abc█defghijklmnopqrstuvwxyz")
}

func TestScenarioEnterMovesMetadata(t *testing.T) {
	e := newEditor(t, "█111111111\n2222222222\n3333333333")
	setMeta(e, 1, 2, 3)

	press(t, e, "Enter")

	assertRender(t, e, "\n█111111111\n2222222222\n3333333333")
	assertMeta(t, e, 0, 1, 2, 3)
}

func TestScenarioBackspaceUndo(t *testing.T) {
	e := newEditor(t, "a█")
	press(t, e, "Backspace")
	assertRender(t, e, "█")

	if !e.Undo() {
		t.Fatal("Undo() = false")
	}
	assertRender(t, e, "a█")
}

func TestScenarioFullRowRejectsChar(t *testing.T) {
	full := strings.Repeat("x", 80)
	for _, at := range []int{0, 40, 80} {
		content := full[:at] + "█" + full[at:]
		e := newEditor(t, content)
		if press(t, e, "a") {
			t.Errorf("insert into full row at %d reported a change", at)
		}
		assertRender(t, e, content)
		if e.CanUndo() {
			t.Errorf("rejected insert at %d recorded history", at)
		}
	}
}

func TestScenarioCutRow(t *testing.T) {
	e := newEditor(t, "aaa█aa12s aa\na\na\na\na")
	press(t, e, "Ctrl+x")

	if got := e.Clipboard(); got != "aaaaa12s aa\n" {
		t.Errorf("Clipboard() = %q, want %q", got, "aaaaa12s aa\n")
	}
	assertRender(t, e, "█a\na\na\na")
}

// ============================================================================
// Properties
// ============================================================================

func TestBoundaryIdempotence(t *testing.T) {
	tests := []struct {
		content string
		key     string
	}{
		{"ab█c", "Home"},
		{"ab█c", "End"},
		{"█abc\nd", "Left"},
		{"abc\nd█", "Right"},
		{"█abc\nd", "Ctrl+Left"},
		{"abc\nd█", "Ctrl+Right"},
		{"a█bc\nd", "Up"},
		{"abc\nd█", "Down"},
	}

	for _, tt := range tests {
		t.Run(tt.content+" "+tt.key, func(t *testing.T) {
			e := newEditor(t, tt.content)
			press(t, e, tt.key)
			first := render(e)
			for i := 0; i < 3; i++ {
				if press(t, e, tt.key) {
					t.Fatalf("repeat %d of %s reported a change", i+1, tt.key)
				}
			}
			if got := render(e); got != first {
				t.Errorf("content = %q, want %q", got, first)
			}
		})
	}
}
