// Package term is a terminal front-end for the editor built on tcell.
//
// It translates tcell key events into the editor's input vocabulary,
// feeds the time elapsed since start-up to the editor's grouping clock and
// draws the grid with a row gutter, the selection and a status line.
// Undo, redo, copy, paste and quit are front-end bindings outside the
// editor's own vocabulary.
//
// Usage:
//
//	screen, _ := tcell.NewScreen()
//	t, _ := term.New(screen, ed, term.Options{RowNumbers: true})
//	if err := t.Init(); err != nil { ... }
//	defer t.Shutdown()
//	err := t.Run(ctx)
package term

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/gridedit/internal/engine"
	"github.com/dshills/gridedit/internal/input/key"
	"github.com/dshills/gridedit/internal/logging"
)

// Action is a front-end command outside the editor's input vocabulary.
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionUndo
	ActionRedo
	ActionCopy
	ActionPaste
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionQuit:
		return "quit"
	case ActionUndo:
		return "undo"
	case ActionRedo:
		return "redo"
	case ActionCopy:
		return "copy"
	case ActionPaste:
		return "paste"
	default:
		return "none"
	}
}

// DefaultBindings maps key specifications to front-end actions.
// Escape always quits.
var DefaultBindings = map[string]Action{
	"Ctrl+z": ActionUndo,
	"Ctrl+y": ActionRedo,
	"Ctrl+c": ActionCopy,
	"Ctrl+v": ActionPaste,
	"Ctrl+q": ActionQuit,
}

// Options configures the front-end.
type Options struct {
	RowNumbers   bool
	StatusLine   bool
	ShowMetadata bool

	// Bindings overrides DefaultBindings when non-nil.
	Bindings map[string]Action

	Logger *logging.Logger
}

// Terminal drives an editor from a tcell screen.
// It is used from a single goroutine.
type Terminal struct {
	screen   tcell.Screen
	ed       *engine.Editor[int]
	opts     Options
	bindings map[key.Event]Action
	log      *logging.Logger
	start    time.Time

	top, left int

	pasting bool
	paste   strings.Builder
}

// New creates a front-end for ed on screen. The screen is initialized by Init.
func New(screen tcell.Screen, ed *engine.Editor[int], opts Options) (*Terminal, error) {
	specs := opts.Bindings
	if specs == nil {
		specs = DefaultBindings
	}
	bindings := make(map[key.Event]Action, len(specs))
	for spec, action := range specs {
		ev, err := key.Parse(spec)
		if err != nil {
			return nil, fmt.Errorf("binding %q: %w", spec, err)
		}
		bindings[ev] = action
	}

	log := opts.Logger
	if log == nil {
		log = logging.NullLogger
	}

	return &Terminal{
		screen:   screen,
		ed:       ed,
		opts:     opts,
		bindings: bindings,
		log:      log.WithComponent("term"),
		start:    time.Now(),
	}, nil
}

// Init initializes the screen and enables bracketed paste.
func (t *Terminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnablePaste()
	return nil
}

// Shutdown restores the terminal.
func (t *Terminal) Shutdown() {
	t.screen.Fini()
}

// Run draws the editor and processes events until a quit binding,
// Escape, or ctx is done. It returns ctx.Err() on cancellation and nil
// on a regular quit.
func (t *Terminal) Run(ctx context.Context) error {
	events := make(chan tcell.Event)
	quit := make(chan struct{})
	go t.screen.ChannelEvents(events, quit)
	defer close(quit)

	t.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !t.HandleEvent(ev) {
				return nil
			}
			t.Draw()
		}
	}
}

// HandleEvent applies one tcell event. It returns false when the
// front-end should quit.
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.handleKey(ev)
	case *tcell.EventPaste:
		if ev.Start() {
			t.pasting = true
			t.paste.Reset()
			return true
		}
		t.pasting = false
		t.insert(t.paste.String())
	case *tcell.EventClipboard:
		t.insert(string(ev.Data()))
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

func (t *Terminal) handleKey(ev *tcell.EventKey) bool {
	t.ed.HandleTick(ev.When().Sub(t.start).Milliseconds())

	if t.pasting {
		if r, ok := pasteRune(ev); ok {
			t.paste.WriteRune(r)
		}
		return true
	}
	if ev.Key() == tcell.KeyEscape {
		return false
	}

	kev, ok := TranslateKey(ev)
	if !ok {
		t.log.Debug("unhandled key %s", ev.Name())
		return true
	}
	if action, bound := t.bindings[kev]; bound {
		return t.run(action)
	}
	if t.ed.HandleInput(kev) {
		t.log.Debug("%s -> rev %d", kev, t.ed.Revision())
	}
	return true
}

func (t *Terminal) insert(text string) {
	if text == "" {
		return
	}
	t.ed.HandleInput(key.NewTextEvent(text))
}

func (t *Terminal) run(a Action) bool {
	t.log.Debug("action %s", a)
	switch a {
	case ActionQuit:
		return false
	case ActionUndo:
		t.ed.Undo()
	case ActionRedo:
		t.ed.Redo()
	case ActionCopy:
		if t.ed.Copy() {
			t.screen.SetClipboard([]byte(t.ed.Clipboard()))
		}
	case ActionPaste:
		t.ed.Paste()
	}
	return true
}
