// Package loader reads configuration sources into nested maps.
//
// A TOML file and the process environment each produce a
// map[string]any keyed by section and setting name. Merge layers
// them; the config package decodes the result into its typed form.
package loader

import (
	"io/fs"
	"os"
)

// Loader is a configuration source.
type Loader interface {
	// Load returns the source's settings, or nil, nil when the source
	// is absent.
	Load() (map[string]any, error)
}

// FileSystem reads whole files.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
}

// OSFS reads from the operating system.
type OSFS struct{}

func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// MapFS adapts an fs.FS such as fstest.MapFS.
type MapFS struct {
	FS fs.FS
}

func (m MapFS) ReadFile(path string) ([]byte, error) {
	return fs.ReadFile(m.FS, path)
}
