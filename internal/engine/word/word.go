// Package word classifies characters into boundary classes and finds the
// token boundaries used by word jumps, word selection and word deletion.
//
// A token is a maximal run of characters of one class, except that every
// double quote is a token of its own. All functions work on a single row
// and never look past its ends.
package word

import "unicode"

// Class is the boundary class of a character.
type Class uint8

const (
	// Whitespace is any Unicode space character.
	Whitespace Class = iota
	// Word is a letter, digit or underscore.
	Word
	// Quote is the double quote character.
	Quote
	// Other is everything else (punctuation, symbols, emoji).
	Other
)

// String returns the class name.
func (c Class) String() string {
	switch c {
	case Whitespace:
		return "Whitespace"
	case Word:
		return "Word"
	case Quote:
		return "Quote"
	default:
		return "Other"
	}
}

// Classify returns the boundary class of r.
func Classify(r rune) Class {
	switch {
	case unicode.IsSpace(r):
		return Whitespace
	case r == '"':
		return Quote
	case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
		return Word
	default:
		return Other
	}
}

// joins reports whether two neighbouring characters belong to one token.
func joins(a, b rune) bool {
	ca := Classify(a)
	return ca != Quote && ca == Classify(b)
}

// TokenAt returns the bounds [start, end) of the token containing
// row[col]. It returns (col, col) when col is outside the row.
func TokenAt(row []rune, col int) (start, end int) {
	if col < 0 || col >= len(row) {
		return col, col
	}
	start, end = col, col+1
	for start > 0 && joins(row[start-1], row[col]) {
		start--
	}
	for end < len(row) && joins(row[col], row[end]) {
		end++
	}
	return start, end
}

// Left returns the start of the token ending at col, or col at row start.
func Left(row []rune, col int) int {
	if col <= 0 || col > len(row) {
		return col
	}
	start, _ := TokenAt(row, col-1)
	return start
}

// Right returns the end of the token starting at col, or col at row end.
func Right(row []rune, col int) int {
	if col < 0 || col >= len(row) {
		return col
	}
	_, end := TokenAt(row, col)
	return end
}

// JumpLeft returns the column reached by a word jump to the left:
// a run of whitespace is skipped, then one token.
func JumpLeft(row []rune, col int) int {
	if col > len(row) {
		col = len(row)
	}
	for col > 0 && Classify(row[col-1]) == Whitespace {
		col--
	}
	return Left(row, col)
}

// JumpRight returns the column reached by a word jump to the right:
// a run of whitespace is skipped, then one token.
func JumpRight(row []rune, col int) int {
	if col < 0 {
		col = 0
	}
	for col < len(row) && Classify(row[col]) == Whitespace {
		col++
	}
	return Right(row, col)
}

// DeleteRight returns the end of the span a forward word delete removes
// from col: the whitespace run when whitespace follows, otherwise the
// next token.
func DeleteRight(row []rune, col int) int {
	return Right(row, col)
}

// DeleteLeft returns the start of the span a backward word delete removes
// up to col.
func DeleteLeft(row []rune, col int) int {
	return JumpLeft(row, col)
}

// Select returns the token a word selection picks at col: the token to
// the right of the caret unless it is missing or whitespace, then the
// token to the left, then the whitespace token. ok is false on an empty row.
func Select(row []rune, col int) (start, end int, ok bool) {
	if len(row) == 0 {
		return col, col, false
	}
	if col > len(row) {
		col = len(row)
	}
	if col < len(row) && Classify(row[col]) != Whitespace {
		start, end = TokenAt(row, col)
		return start, end, true
	}
	if col > 0 && (col == len(row) || Classify(row[col-1]) != Whitespace) {
		start, end = TokenAt(row, col-1)
		return start, end, true
	}
	start, end = TokenAt(row, col)
	return start, end, true
}

// Widen grows the span [start, end) by one word jump on each side.
// A span already covering the whole row is returned unchanged.
func Widen(row []rune, start, end int) (int, int) {
	return JumpLeft(row, start), JumpRight(row, end)
}
