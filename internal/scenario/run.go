package scenario

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/dshills/gridedit/internal/engine"
	"github.com/dshills/gridedit/internal/engine/markup"
	"github.com/dshills/gridedit/internal/input/key"
	"github.com/dshills/gridedit/internal/logging"
)

// ErrMismatch is matched by every *MismatchError.
var ErrMismatch = errors.New("scenario mismatch")

// Diff is one failed expectation.
type Diff struct {
	Field string
	Got   string
	Want  string
}

// MismatchError reports the expectations a scenario did not meet.
type MismatchError struct {
	Scenario string
	Diffs    []Diff
}

func (e *MismatchError) Error() string {
	parts := make([]string, len(e.Diffs))
	for i, d := range e.Diffs {
		parts[i] = fmt.Sprintf("%s = %s, want %s", d.Field, d.Got, d.Want)
	}
	return fmt.Sprintf("scenario %q: %s", e.Scenario, strings.Join(parts, "; "))
}

func (e *MismatchError) Unwrap() error {
	return ErrMismatch
}

// Result is the outcome of one scenario.
type Result struct {
	Scenario *Scenario

	// Final state, rendered in markup notation.
	Content   string
	Metadata  []int
	Clipboard string

	// Err is nil on success, a *MismatchError when an expectation failed,
	// or the setup error.
	Err error
}

// Passed returns true if the scenario met every expectation.
func (r Result) Passed() bool {
	return r.Err == nil
}

// Runner executes scenarios.
type Runner struct {
	log  *logging.Logger
	opts []engine.Option
}

// NewRunner creates a runner. opts are applied to every editor before the
// scenario's own settings.
func NewRunner(log *logging.Logger, opts ...engine.Option) *Runner {
	if log == nil {
		log = logging.NullLogger
	}
	return &Runner{log: log, opts: opts}
}

// RunAll runs the scenarios in order.
func (r *Runner) RunAll(scenarios []*Scenario) []Result {
	results := make([]Result, 0, len(scenarios))
	for _, s := range scenarios {
		results = append(results, r.Run(s))
	}
	return results
}

// Run executes one scenario and checks its expectations.
func (r *Runner) Run(s *Scenario) Result {
	res := Result{Scenario: s}
	log := r.log.WithField("scenario", s.Name)

	ed, err := r.setup(s)
	if err != nil {
		res.Err = fmt.Errorf("scenario %q: %w", s.Name, err)
		return res
	}

	for i := range s.Steps {
		st := &s.Steps[i]
		log.Debug("step %d: %s", i+1, st)
		apply(ed, st)
	}

	res.Content = markupOf(ed)
	res.Metadata = metadataOf(ed)
	res.Clipboard = ed.Clipboard()
	if err := check(s, ed, res); err != nil {
		res.Err = err
		log.Info("failed: %v", err)
		return res
	}
	log.Debug("passed")
	return res
}

func (r *Runner) setup(s *Scenario) (*engine.Editor[int], error) {
	opts := append([]engine.Option(nil), r.opts...)
	opts = append(opts,
		engine.WithNormalization(s.norm),
		engine.WithGroupAllEdits(s.GroupAllEdits),
		engine.WithVerticalEdgeJump(s.EdgeJump),
		engine.WithLogger(r.log.WithComponent("engine")),
	)
	if s.MaxRows > 0 {
		opts = append(opts, engine.WithMaxRows(s.MaxRows))
	}

	ed := engine.New[int](s.Width, opts...)
	if err := ed.Load(s.doc.Text); err != nil {
		return nil, err
	}
	ed.SetSelection(s.doc.Selection)

	if len(s.Metadata) > ed.RowCount() {
		return nil, fmt.Errorf("%w: %d metadata values for %d rows", ErrInvalidScenario, len(s.Metadata), ed.RowCount())
	}
	for i, m := range s.Metadata {
		ed.SetMetadata(i, m)
	}
	ed.SetClipboard(s.Clipboard)
	return ed, nil
}

func apply(ed *engine.Editor[int], st *Step) {
	switch {
	case len(st.events) > 0:
		for _, ev := range st.events {
			ed.HandleInput(ev)
		}
	case st.Text != nil:
		ed.HandleInput(key.NewTextEvent(*st.Text))
	case st.Type != nil:
		for _, r := range *st.Type {
			ed.HandleInput(key.NewRuneEvent(r, key.ModNone))
		}
	case st.Tick != nil:
		ed.HandleTick(*st.Tick)
	case st.Undo > 0:
		for range st.Undo {
			ed.Undo()
		}
	case st.Redo > 0:
		for range st.Redo {
			ed.Redo()
		}
	case st.Copy:
		ed.Copy()
	case st.Paste:
		ed.Paste()
	}
}

func check(s *Scenario, ed *engine.Editor[int], res Result) error {
	var diffs []Diff
	want := s.Expect

	if want.Content != nil && res.Content != *want.Content {
		diffs = append(diffs, Diff{"content", fmt.Sprintf("%q", res.Content), fmt.Sprintf("%q", *want.Content)})
	}
	if want.Metadata != nil && !slices.Equal(res.Metadata, want.Metadata) {
		diffs = append(diffs, Diff{"metadata", fmt.Sprint(res.Metadata), fmt.Sprint(want.Metadata)})
	}
	if want.Clipboard != nil && res.Clipboard != *want.Clipboard {
		diffs = append(diffs, Diff{"clipboard", fmt.Sprintf("%q", res.Clipboard), fmt.Sprintf("%q", *want.Clipboard)})
	}
	if want.Rows != nil && ed.RowCount() != *want.Rows {
		diffs = append(diffs, Diff{"rows", fmt.Sprint(ed.RowCount()), fmt.Sprint(*want.Rows)})
	}

	if len(diffs) == 0 {
		return nil
	}
	return &MismatchError{Scenario: s.Name, Diffs: diffs}
}

func markupOf(ed *engine.Editor[int]) string {
	return markup.Render(ed.Grid(), ed.Selection())
}

func metadataOf(ed *engine.Editor[int]) []int {
	out := make([]int, ed.RowCount())
	for i := range out {
		out[i] = ed.Metadata(i)
	}
	return out
}
