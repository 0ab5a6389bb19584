package lexer

import (
	"unicode/utf8"

	"github.com/stellar-lang/stellar/internal/position"
)

// Cursor walks a source string rune by rune and keeps track of the
// Location of the next unconsumed rune.
type Cursor struct {
	source   string
	location position.Location
}

// NewCursor creates a cursor positioned at the start of source.
func NewCursor(source string) *Cursor {
	return &Cursor{
		source:   source,
		location: position.StartOfFile(),
	}
}

// Source returns the text the cursor walks over.
func (c *Cursor) Source() string {
	return c.source
}

// Location returns the location of the next unconsumed rune.
func (c *Cursor) Location() position.Location {
	return c.location
}

// Peek returns the next rune without consuming it.
func (c *Cursor) Peek() (rune, bool) {
	if c.location.Offset >= len(c.source) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.source[c.location.Offset:])
	return r, true
}

// Next consumes and returns the next rune. Invalid UTF-8 bytes are
// returned as utf8.RuneError and consumed one byte at a time.
func (c *Cursor) Next() (rune, bool) {
	if c.location.Offset >= len(c.source) {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(c.source[c.location.Offset:])

	c.location.Offset += size
	if r == '\n' {
		c.location.Line++
		c.location.Column = 0
	} else {
		c.location.Column++
	}

	return r, true
}

// slice returns the source text between two locations produced by this
// cursor.
func (c *Cursor) slice(start, end position.Location) string {
	return c.source[start.Offset:end.Offset]
}
