package grid

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalization selects how inserted text is normalized before it is
// split into columns. With NormNone every rune of the input occupies one
// column, so a precomposed and a decomposed accented letter differ in
// width.
type Normalization uint8

const (
	// NormNone stores text exactly as given.
	NormNone Normalization = iota
	// NormNFC composes characters (é stays one column).
	NormNFC
	// NormNFD decomposes characters (é becomes e plus a combining accent).
	NormNFD
)

// String returns the configuration name of the form.
func (n Normalization) String() string {
	switch n {
	case NormNone:
		return "none"
	case NormNFC:
		return "nfc"
	case NormNFD:
		return "nfd"
	default:
		return "unknown"
	}
}

// ParseNormalization parses a configuration name ("none", "nfc", "nfd").
// The empty string selects NormNone.
func ParseNormalization(s string) (Normalization, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return NormNone, nil
	case "nfc":
		return NormNFC, nil
	case "nfd":
		return NormNFD, nil
	default:
		return NormNone, fmt.Errorf("%w: %q", ErrUnknownNormalization, s)
	}
}

// Apply returns s normalized to the form.
func (n Normalization) Apply(s string) string {
	switch n {
	case NormNFC:
		return norm.NFC.String(s)
	case NormNFD:
		return norm.NFD.String(s)
	default:
		return s
	}
}
