// Package scenario runs scripted editing sessions described in YAML.
//
// A scenario file holds one or more YAML documents. Each document sets up
// an editor from markup content, feeds it a list of steps and checks the
// final content, row metadata and clipboard:
//
//	name: enter moves metadata
//	width: 80
//	content: "█111\n222"
//	metadata: [1, 2]
//	steps:
//	  - keys: [Enter]
//	  - tick: 100
//	  - type: "hello"
//	  - undo: 1
//	expect:
//	  content: "\n█111\n222"
//	  metadata: [0, 1, 2]
//
// Content uses the markup notation of package markup: █ marks the caret,
// ❱ and ❰ the selection anchor and head.
package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dshills/gridedit/internal/engine"
	"github.com/dshills/gridedit/internal/engine/grid"
	"github.com/dshills/gridedit/internal/engine/markup"
	"github.com/dshills/gridedit/internal/input/key"
)

// Errors returned when loading scenarios.
var (
	ErrInvalidScenario = errors.New("invalid scenario")
	ErrInvalidStep     = errors.New("invalid step")
)

// Scenario is one scripted editing session.
type Scenario struct {
	Name          string `yaml:"name"`
	Width         int    `yaml:"width"`
	MaxRows       int    `yaml:"max_rows"`
	Normalization string `yaml:"normalization"`
	GroupAllEdits bool   `yaml:"group_all_edits"`
	EdgeJump      bool   `yaml:"vertical_edge_jump"`
	Content       string `yaml:"content"`
	Metadata      []int  `yaml:"metadata"`
	Clipboard     string `yaml:"clipboard"`
	Steps         []Step `yaml:"steps"`
	Expect        Expect `yaml:"expect"`

	// Source is "file:line" of the document, set by Parse.
	Source string `yaml:"-"`

	doc  markup.Document
	norm grid.Normalization
}

// Step is one action. Exactly one field must be set.
type Step struct {
	// Keys are key specifications understood by key.Parse.
	Keys []string `yaml:"keys"`

	// Text is inserted as a single Text event (paste-like).
	Text *string `yaml:"text"`

	// Type is inserted one Char event per rune.
	Type *string `yaml:"type"`

	// Tick advances the editor clock to an absolute value.
	Tick *int64 `yaml:"tick"`

	Undo  int  `yaml:"undo"`
	Redo  int  `yaml:"redo"`
	Copy  bool `yaml:"copy"`
	Paste bool `yaml:"paste"`

	events []key.Event
}

// Expect lists the checks made after the last step.
// Unset fields are not checked.
type Expect struct {
	Content   *string `yaml:"content"`
	Metadata  []int   `yaml:"metadata"`
	Clipboard *string `yaml:"clipboard"`
	Rows      *int    `yaml:"rows"`
}

// LoadFile reads all scenarios of a YAML file.
func LoadFile(path string) ([]*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scenario file: %w", err)
	}
	defer f.Close()

	return Parse(f, path)
}

// Parse reads all YAML documents from r. source names r in errors.
func Parse(r io.Reader, source string) ([]*Scenario, error) {
	dec := yaml.NewDecoder(r)

	var scenarios []*Scenario
	for {
		var node yaml.Node
		if err := dec.Decode(&node); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidScenario, source, err)
		}

		line := node.Line
		if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
			line = node.Content[0].Line
		}

		s := &Scenario{}
		if err := node.Decode(s); err != nil {
			return nil, fmt.Errorf("%w: %s:%d: %v", ErrInvalidScenario, source, line, err)
		}
		s.Source = fmt.Sprintf("%s:%d", source, line)
		if s.Name == "" {
			s.Name = fmt.Sprintf("%s#%d", source, len(scenarios)+1)
		}
		if err := s.compile(); err != nil {
			return nil, fmt.Errorf("%w: %s (%s): %w", ErrInvalidScenario, s.Name, s.Source, err)
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// compile validates the scenario and parses its markup and key specs.
func (s *Scenario) compile() error {
	if s.Width < 0 || s.MaxRows < 0 {
		return fmt.Errorf("negative width or max_rows")
	}
	if s.Width == 0 {
		s.Width = engine.DefaultWidth
	}

	var err error
	if s.norm, err = grid.ParseNormalization(s.Normalization); err != nil {
		return err
	}
	if s.doc, err = markup.Parse(s.Content); err != nil {
		return fmt.Errorf("content: %w", err)
	}
	if s.Expect.Content != nil {
		if _, err := markup.Parse(*s.Expect.Content); err != nil {
			return fmt.Errorf("expect.content: %w", err)
		}
	}

	for i := range s.Steps {
		if err := s.Steps[i].compile(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

func (st *Step) compile() error {
	actions := 0
	for _, set := range []bool{
		len(st.Keys) > 0, st.Text != nil, st.Type != nil, st.Tick != nil,
		st.Undo > 0, st.Redo > 0, st.Copy, st.Paste,
	} {
		if set {
			actions++
		}
	}
	if actions != 1 {
		return fmt.Errorf("%w: want exactly one action, got %d", ErrInvalidStep, actions)
	}
	if st.Undo < 0 || st.Redo < 0 {
		return fmt.Errorf("%w: negative count", ErrInvalidStep)
	}

	if len(st.Keys) > 0 {
		events, err := key.ParseAll(st.Keys)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidStep, err)
		}
		st.events = events
	}
	return nil
}

// String describes the step for logs.
func (st *Step) String() string {
	switch {
	case len(st.Keys) > 0:
		return fmt.Sprintf("keys %v", st.Keys)
	case st.Text != nil:
		return fmt.Sprintf("text %q", *st.Text)
	case st.Type != nil:
		return fmt.Sprintf("type %q", *st.Type)
	case st.Tick != nil:
		return fmt.Sprintf("tick %d", *st.Tick)
	case st.Undo > 0:
		return fmt.Sprintf("undo %d", st.Undo)
	case st.Redo > 0:
		return fmt.Sprintf("redo %d", st.Redo)
	case st.Copy:
		return "copy"
	default:
		return "paste"
	}
}
