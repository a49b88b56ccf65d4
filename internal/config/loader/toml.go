package loader

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/pelletier/go-toml/v2"
)

// TOMLLoader reads one TOML file.
type TOMLLoader struct {
	path string
	fsys FileSystem
}

// NewTOMLLoader creates a loader for path. An empty path loads nothing.
func NewTOMLLoader(path string) *TOMLLoader {
	return &TOMLLoader{path: path, fsys: OSFS{}}
}

// WithFS replaces the file system, for tests.
func (l *TOMLLoader) WithFS(fsys FileSystem) *TOMLLoader {
	l.fsys = fsys
	return l
}

// Load reads and parses the file. A missing file is not an error.
func (l *TOMLLoader) Load() (map[string]any, error) {
	if l.path == "" {
		return nil, nil
	}
	data, err := l.fsys.ReadFile(l.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("reading config file %s: %w", l.path, err)
	}
	return parse(l.path, data)
}

// Parse reads TOML from r. source names r in error messages.
func Parse(source string, r io.Reader) (map[string]any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}
	return parse(source, data)
}

func parse(source string, data []byte) (map[string]any, error) {
	var settings map[string]any
	err := toml.Unmarshal(data, &settings)
	if err == nil {
		return settings, nil
	}

	perr := &ParseError{Path: source, Message: err.Error(), Err: err}
	var derr *toml.DecodeError
	if errors.As(err, &derr) {
		perr.Line, perr.Column = derr.Position()
	}
	return nil, perr
}

// ParseError locates a syntax error in a configuration file.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

// Error formats the error as path:line:column: message, leaving out
// unknown parts of the location.
func (e *ParseError) Error() string {
	loc := e.Path
	if e.Line > 0 {
		loc += fmt.Sprintf(":%d", e.Line)
		if e.Column > 0 {
			loc += fmt.Sprintf(":%d", e.Column)
		}
	}
	return loc + ": " + e.Message
}

func (e *ParseError) Unwrap() error { return e.Err }
