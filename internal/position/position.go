// Package position provides source position tracking for the Stellar
// front end. Every token, AST node and diagnostic carries a Span built
// from the Locations defined here.
package position

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Location represents a single point in source code
type Location struct {
	Line   int // 1-based line number
	Column int // 0-based column, counted in runes
	Offset int // 0-based byte offset in source
}

// StartOfFile returns the location of the first byte of a source file.
func StartOfFile() Location {
	return Location{Line: 1, Column: 0, Offset: 0}
}

// IsValid returns true if the location is valid
func (l Location) IsValid() bool {
	return l.Line > 0 && l.Column >= 0 && l.Offset >= 0
}

// String returns a string representation of the location
func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// Before returns true if this location comes before other
func (l Location) Before(other Location) bool {
	return l.Offset < other.Offset
}

// After returns true if this location comes after other
func (l Location) After(other Location) bool {
	return l.Offset > other.Offset
}

// NextByte returns the location one byte and one column further on the
// same line.
func (l Location) NextByte() Location {
	return Location{Line: l.Line, Column: l.Column + 1, Offset: l.Offset + 1}
}

// Span represents a half-open range of source code between two locations
type Span struct {
	Start Location // Starting location (inclusive)
	End   Location // Ending location (exclusive)
}

// NewSpan creates a span from start to end.
func NewSpan(start, end Location) Span {
	return Span{Start: start, End: end}
}

// IsValid returns true if the span is valid
func (s Span) IsValid() bool {
	return s.Start.IsValid() && s.End.IsValid() && s.Start.Offset <= s.End.Offset
}

// String returns a string representation of the span
func (s Span) String() string {
	if s.Start.Line == s.End.Line {
		return fmt.Sprintf("%d:%d-%d", s.Start.Line, s.Start.Column, s.End.Column)
	}
	return fmt.Sprintf("%d:%d-%d:%d", s.Start.Line, s.Start.Column, s.End.Line, s.End.Column)
}

// Contains returns true if the span contains the given location
func (s Span) Contains(loc Location) bool {
	if !s.IsValid() || !loc.IsValid() {
		return false
	}
	return s.Start.Offset <= loc.Offset && loc.Offset < s.End.Offset
}

// Overlaps returns true if this span overlaps with other
func (s Span) Overlaps(other Span) bool {
	if !s.IsValid() || !other.IsValid() {
		return false
	}
	return s.Start.Offset < other.End.Offset && other.Start.Offset < s.End.Offset
}

// Union returns a span that encompasses both this span and other
func (s Span) Union(other Span) Span {
	if !s.IsValid() {
		return other
	}
	if !other.IsValid() {
		return s
	}

	start := s.Start
	if other.Start.Before(start) {
		start = other.Start
	}

	end := s.End
	if other.End.After(end) {
		end = other.End
	}

	return Span{Start: start, End: end}
}

// Len returns the length of the span in bytes
func (s Span) Len() int {
	if !s.IsValid() {
		return 0
	}
	return s.End.Offset - s.Start.Offset
}

// Spanned is implemented by anything localized in a span of a source file.
type Spanned interface {
	GetSpan() Span
}

// SourceFile represents a source file with content and line access
type SourceFile struct {
	Filename string   // File path, may be empty for in-memory sources
	Content  string   // Source code content
	Lines    []string // Lines of source code for efficient access
}

// NewSourceFile creates a new source file from content
func NewSourceFile(filename, content string) *SourceFile {
	return &SourceFile{
		Filename: filename,
		Content:  content,
		Lines:    strings.Split(content, "\n"),
	}
}

// Name returns the base name of the file, or "<input>" for in-memory sources.
func (sf *SourceFile) Name() string {
	if sf.Filename == "" {
		return "<input>"
	}
	return filepath.Base(sf.Filename)
}

// GetLine returns the specified line (1-based) or empty string if invalid
func (sf *SourceFile) GetLine(lineNum int) string {
	if lineNum < 1 || lineNum > len(sf.Lines) {
		return ""
	}
	return strings.TrimSuffix(sf.Lines[lineNum-1], "\r")
}

// GetSpanText returns the text covered by the span
func (sf *SourceFile) GetSpanText(span Span) string {
	if !span.IsValid() || span.End.Offset > len(sf.Content) {
		return ""
	}
	return sf.Content[span.Start.Offset:span.End.Offset]
}

// LocationFromOffset converts a byte offset to a Location. Columns are
// counted in runes, matching the lexer cursor.
func (sf *SourceFile) LocationFromOffset(offset int) Location {
	if offset < 0 || offset > len(sf.Content) {
		return Location{}
	}

	loc := StartOfFile()
	for i, r := range sf.Content {
		if i >= offset {
			break
		}
		if r == '\n' {
			loc.Line++
			loc.Column = 0
		} else {
			loc.Column++
		}
	}
	loc.Offset = offset

	return loc
}
