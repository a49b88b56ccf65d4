package scenario

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/gridedit/internal/engine"
)

func TestTestdata(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no scenario files in testdata")
	}

	runner := NewRunner(nil)
	for _, file := range files {
		scenarios, err := LoadFile(file)
		if err != nil {
			t.Fatalf("LoadFile(%s) error: %v", file, err)
		}
		for _, s := range scenarios {
			t.Run(s.Name, func(t *testing.T) {
				if res := runner.Run(s); !res.Passed() {
					t.Errorf("%s: %v", s.Source, res.Err)
				}
			})
		}
	}
}

func TestParse(t *testing.T) {
	scenarios, err := Parse(strings.NewReader(`
content: "ab█"
steps:
  - keys: [Left, "Shift+Home"]
  - tick: 5
---
name: second
width: 4
normalization: nfc
steps:
  - text: "x"
`), "inline")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(scenarios) != 2 {
		t.Fatalf("Parse() = %d scenarios, want 2", len(scenarios))
	}

	first := scenarios[0]
	if first.Name != "inline#1" {
		t.Errorf("Name = %q, want %q", first.Name, "inline#1")
	}
	if first.Width != engine.DefaultWidth {
		t.Errorf("Width = %d, want %d", first.Width, engine.DefaultWidth)
	}
	if got := len(first.Steps[0].events); got != 2 {
		t.Errorf("step 1 events = %d, want 2", got)
	}
	if first.Source != "inline:2" {
		t.Errorf("Source = %q, want %q", first.Source, "inline:2")
	}

	if scenarios[1].Name != "second" || scenarios[1].Width != 4 {
		t.Errorf("second scenario = %q width %d", scenarios[1].Name, scenarios[1].Width)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"bad yaml", "steps: [", ErrInvalidScenario},
		{"bad markup", `content: "a█b█"`, ErrInvalidScenario},
		{"bad expected markup", "expect:\n  content: \"❱a\"", ErrInvalidScenario},
		{"bad key", "steps:\n  - keys: [Hyper+x]", ErrInvalidStep},
		{"two actions", "steps:\n  - tick: 1\n    undo: 1", ErrInvalidStep},
		{"no action", "steps:\n  - {}", ErrInvalidStep},
		{"bad normalization", "normalization: nfkd", ErrInvalidScenario},
		{"negative width", "width: -1", ErrInvalidScenario},
		{"unknown type", "width: wide", ErrInvalidScenario},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.doc), "inline")
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRunMismatch(t *testing.T) {
	scenarios, err := Parse(strings.NewReader(`
name: wrong
content: "a█"
metadata: [7]
steps:
  - type: "b"
expect:
  content: "a█"
  metadata: [7]
  clipboard: "x"
  rows: 2
`), "inline")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	res := NewRunner(nil).Run(scenarios[0])
	if res.Passed() {
		t.Fatal("Passed() = true, want false")
	}
	if !errors.Is(res.Err, ErrMismatch) {
		t.Fatalf("Err = %v, want ErrMismatch", res.Err)
	}

	var mismatch *MismatchError
	if !errors.As(res.Err, &mismatch) {
		t.Fatalf("Err = %T, want *MismatchError", res.Err)
	}
	fields := make([]string, len(mismatch.Diffs))
	for i, d := range mismatch.Diffs {
		fields[i] = d.Field
	}
	if got := strings.Join(fields, ","); got != "content,clipboard,rows" {
		t.Errorf("mismatched fields = %s, want content,clipboard,rows", got)
	}
	if res.Content != "ab█" {
		t.Errorf("Content = %q, want %q", res.Content, "ab█")
	}
	if !strings.Contains(res.Err.Error(), `content = "ab█", want "a█"`) {
		t.Errorf("Error() = %q", res.Err.Error())
	}
}

func TestRunSetupErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"too much metadata", "content: \"a\"\nmetadata: [1, 2]", ErrInvalidScenario},
		{"truncated content", "width: 2\nmax_rows: 1\ncontent: \"abc\"", engine.ErrTruncated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scenarios, err := Parse(strings.NewReader(tt.doc), "inline")
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			res := NewRunner(nil).Run(scenarios[0])
			if !errors.Is(res.Err, tt.want) {
				t.Errorf("Err = %v, want %v", res.Err, tt.want)
			}
		})
	}
}

func TestRunAllOrder(t *testing.T) {
	scenarios, err := Parse(strings.NewReader(`
name: one
steps:
  - type: "1"
expect:
  content: "1█"
---
name: two
steps:
  - undo: 3
expect:
  content: "█"
`), "inline")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	results := NewRunner(nil, engine.WithGroupThreshold(10)).RunAll(scenarios)
	if len(results) != 2 {
		t.Fatalf("RunAll() = %d results, want 2", len(results))
	}
	for i, want := range []string{"one", "two"} {
		if results[i].Scenario.Name != want || !results[i].Passed() {
			t.Errorf("results[%d] = %s passed=%v (%v)", i, results[i].Scenario.Name, results[i].Passed(), results[i].Err)
		}
	}
}
