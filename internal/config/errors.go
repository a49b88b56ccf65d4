package config

import (
	"errors"

	"github.com/dshills/gridedit/internal/config/loader"
)

// Errors returned by configuration operations.
var (
	// ErrInvalidValue indicates a setting holds a value out of range or of the wrong type.
	ErrInvalidValue = errors.New("invalid setting value")

	// ErrUnknownSetting indicates a key that no setting uses.
	ErrUnknownSetting = errors.New("unknown setting")
)

// ParseError represents an error while parsing a configuration file.
type ParseError = loader.ParseError
