package config

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/gridedit/internal/config/loader"
	"github.com/dshills/gridedit/internal/engine"
	"github.com/dshills/gridedit/internal/engine/grid"
	"github.com/dshills/gridedit/internal/logging"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "GRIDEDIT_"

// Sections lists the top-level configuration tables.
var Sections = []string{"editor", "history", "terminal", "logging"}

// Config is the complete gridedit configuration.
type Config struct {
	Editor   EditorConfig   `toml:"editor"`
	History  HistoryConfig  `toml:"history"`
	Terminal TerminalConfig `toml:"terminal"`
	Logging  LoggingConfig  `toml:"logging"`
}

// EditorConfig holds grid and navigation settings.
type EditorConfig struct {
	// RowCapacity is the maximum number of characters per row.
	RowCapacity int `toml:"row_capacity"`
	// MaxRows limits the number of rows; 0 means unlimited.
	MaxRows int `toml:"max_rows"`
	// Normalization is "none", "nfc" or "nfd".
	Normalization string `toml:"normalization"`
	// VerticalEdgeJump moves the caret to the row start/end when Up/Down
	// is pressed on the first/last row.
	VerticalEdgeJump bool `toml:"vertical_edge_jump"`
}

// HistoryConfig holds undo settings.
type HistoryConfig struct {
	GroupThreshold int64 `toml:"group_threshold"`
	MaxGroups      int   `toml:"max_groups"`
	GroupAllEdits  bool  `toml:"group_all_edits"`
}

// TerminalConfig holds settings of the terminal front-end.
type TerminalConfig struct {
	RowNumbers   bool `toml:"row_numbers"`
	StatusLine   bool `toml:"status_line"`
	ShowMetadata bool `toml:"show_metadata"`
}

// LoggingConfig holds log settings. An empty File disables logging in
// the terminal front-end.
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			RowCapacity:   engine.DefaultWidth,
			Normalization: grid.NormNone.String(),
		},
		History: HistoryConfig{
			GroupThreshold: engine.DefaultGroupThreshold,
			MaxGroups:      engine.DefaultMaxUndoGroups,
		},
		Terminal: TerminalConfig{
			RowNumbers: true,
			StatusLine: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the TOML file at path (an empty path or a missing file
// leaves the defaults), applies GRIDEDIT_ environment overrides and
// validates the result.
func Load(path string) (*Config, error) {
	return LoadWith(loader.NewTOMLLoader(path), loader.NewEnvLoader(EnvPrefix, Sections...))
}

// LoadWith layers the given sources over the defaults, later sources
// taking precedence.
func LoadWith(sources ...loader.Loader) (*Config, error) {
	var merged map[string]any
	for _, src := range sources {
		data, err := src.Load()
		if err != nil {
			return nil, err
		}
		merged = loader.Merge(merged, data)
	}

	cfg := Default()
	if err := cfg.decode(merged); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode overlays a nested settings map onto c.
func (c *Config) decode(data map[string]any) error {
	if len(data) == 0 {
		return nil
	}

	raw, err := toml.Marshal(data)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}

	dec := toml.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		var missing *toml.StrictMissingError
		if errors.As(err, &missing) {
			keys := make([]string, 0, len(missing.Errors))
			for _, e := range missing.Errors {
				keys = append(keys, strings.Join(e.Key(), "."))
			}
			return fmt.Errorf("%w: %s", ErrUnknownSetting, strings.Join(keys, ", "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	return nil
}

// Validate checks every setting and returns the first problem found.
func (c *Config) Validate() error {
	switch {
	case c.Editor.RowCapacity <= 0:
		return fmt.Errorf("%w: editor.row_capacity must be positive, got %d", ErrInvalidValue, c.Editor.RowCapacity)
	case c.Editor.MaxRows < 0:
		return fmt.Errorf("%w: editor.max_rows must not be negative, got %d", ErrInvalidValue, c.Editor.MaxRows)
	case c.History.GroupThreshold <= 0:
		return fmt.Errorf("%w: history.group_threshold must be positive, got %d", ErrInvalidValue, c.History.GroupThreshold)
	case c.History.MaxGroups <= 0:
		return fmt.Errorf("%w: history.max_groups must be positive, got %d", ErrInvalidValue, c.History.MaxGroups)
	}

	if _, err := grid.ParseNormalization(c.Editor.Normalization); err != nil {
		return fmt.Errorf("%w: editor.normalization: %v", ErrInvalidValue, err)
	}
	if _, ok := logging.LookupLevel(c.Logging.Level); !ok {
		return fmt.Errorf("%w: logging.level %q", ErrInvalidValue, c.Logging.Level)
	}
	return nil
}

// LogLevel returns the configured log level.
func (c *Config) LogLevel() logging.Level {
	return logging.ParseLevel(c.Logging.Level)
}

// EditorOptions converts the configuration into editor options.
// The row capacity is passed to engine.New separately.
func (c *Config) EditorOptions(log *logging.Logger) []engine.Option {
	normalization, _ := grid.ParseNormalization(c.Editor.Normalization)
	opts := []engine.Option{
		engine.WithNormalization(normalization),
		engine.WithGroupThreshold(c.History.GroupThreshold),
		engine.WithMaxUndoGroups(c.History.MaxGroups),
		engine.WithGroupAllEdits(c.History.GroupAllEdits),
		engine.WithVerticalEdgeJump(c.Editor.VerticalEdgeJump),
	}
	if c.Editor.MaxRows > 0 {
		opts = append(opts, engine.WithMaxRows(c.Editor.MaxRows))
	}
	if log != nil {
		opts = append(opts, engine.WithLogger(log.WithComponent("engine")))
	}
	return opts
}
