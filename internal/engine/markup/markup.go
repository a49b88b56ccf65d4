// Package markup reads and writes the compact text notation used to
// describe editor states in tests and scenario files.
//
// A document is plain text with rows separated by '\n' and at most one
// selection marked inline:
//
//	"ab█c"        caret at (0:2)
//	"❱ab\nc❰d"    anchor at (0:0), head at (1:1)
//	"a❰bc❱"       backward selection, head before anchor
//
// A document without markers has its caret at (0:0).
package markup

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/dshills/gridedit/internal/engine/cursor"
	"github.com/dshills/gridedit/internal/engine/grid"
)

// Marker runes.
const (
	Caret  = '█'
	Anchor = '❱'
	Head   = '❰'
)

// Errors returned by Parse.
var (
	ErrDuplicateMarker = errors.New("marker appears more than once")
	ErrMixedMarkers    = errors.New("caret and selection markers combined")
	ErrUnpairedMarker  = errors.New("selection marker without its pair")
)

// Document is a parsed markup string.
type Document struct {
	Text      string
	Selection cursor.Selection
}

// Parse strips the markers from s and returns the plain text with the
// selection they describe.
func Parse(s string) (Document, error) {
	var (
		sb                        strings.Builder
		pos                       grid.Position
		caret, anchor, head       grid.Position
		hasCaret, hasAnc, hasHead bool
	)

	mark := func(seen *bool, at *grid.Position, r rune) error {
		if *seen {
			return fmt.Errorf("%w: %q at %s", ErrDuplicateMarker, r, pos)
		}
		*seen = true
		*at = pos
		return nil
	}

	for _, r := range s {
		var err error
		switch r {
		case Caret:
			err = mark(&hasCaret, &caret, r)
		case Anchor:
			err = mark(&hasAnc, &anchor, r)
		case Head:
			err = mark(&hasHead, &head, r)
		case '\n':
			sb.WriteRune(r)
			pos = grid.Position{Row: pos.Row + 1}
		default:
			sb.WriteRune(r)
			pos.Column++
		}
		if err != nil {
			return Document{}, err
		}
	}

	doc := Document{Text: sb.String()}
	switch {
	case hasCaret && (hasAnc || hasHead):
		return Document{}, ErrMixedMarkers
	case hasAnc != hasHead:
		return Document{}, ErrUnpairedMarker
	case hasAnc:
		doc.Selection = cursor.NewSelection(anchor, head)
	default:
		doc.Selection = cursor.NewCaret(caret)
	}
	return doc, nil
}

// MustParse is Parse that panics on error. Use only in tests.
func MustParse(s string) Document {
	doc, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("markup: %q: %v", s, err))
	}
	return doc
}

// Render writes the grid content with sel marked inline.
func Render[M any](g *grid.Grid[M], sel cursor.Selection) string {
	type mark struct {
		at grid.Position
		r  rune
	}
	var marks []mark
	if sel.IsCaret() {
		marks = []mark{{sel.Head, Caret}}
	} else {
		marks = []mark{{sel.Anchor, Anchor}, {sel.Head, Head}}
	}
	slices.SortFunc(marks, func(a, b mark) int {
		return a.at.Compare(b.at)
	})

	var sb strings.Builder
	for r := 0; r < g.RowCount(); r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		runes := g.Runes(r)
		for c := 0; c <= len(runes); c++ {
			for _, m := range marks {
				if m.at.Row == r && m.at.Column == c {
					sb.WriteRune(m.r)
				}
			}
			if c < len(runes) {
				sb.WriteRune(runes[c])
			}
		}
	}
	return sb.String()
}

// Strip removes all markers from s without validating them.
func Strip(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case Caret, Anchor, Head:
			return -1
		}
		return r
	}, s)
}
