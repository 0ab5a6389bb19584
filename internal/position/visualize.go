package position

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// SpanHighlighter renders source lines with a span underlined in ASCII.
type SpanHighlighter struct {
	file    *SourceFile
	context int
	marker  string
}

// NewSpanHighlighter creates a highlighter over file showing context lines
// before and after the highlighted span.
func NewSpanHighlighter(file *SourceFile, context int) *SpanHighlighter {
	if context < 0 {
		context = 0
	}
	return &SpanHighlighter{
		file:    file,
		context: context,
		marker:  "^",
	}
}

// HighlightSpan returns the lines surrounding span, with the covered runes
// underlined by carets.
func (sh *SpanHighlighter) HighlightSpan(span Span) string {
	if !span.IsValid() {
		return "invalid span\n"
	}

	var result strings.Builder

	startLine := max(1, span.Start.Line-sh.context)
	endLine := min(len(sh.file.Lines), span.End.Line+sh.context)

	// A span ending at column 0 stops before that line's first rune.
	lastHighlighted := span.End.Line
	if span.End.Column == 0 && span.End.Line > span.Start.Line {
		lastHighlighted--
	}

	for lineNum := startLine; lineNum <= endLine; lineNum++ {
		line := sh.file.GetLine(lineNum)
		result.WriteString(fmt.Sprintf("%4d | %s\n", lineNum, line))

		if lineNum >= span.Start.Line && lineNum <= lastHighlighted {
			sh.addHighlighting(&result, lineNum, line, span)
		}
	}

	return result.String()
}

// addHighlighting adds ASCII highlighting under the relevant part of the line.
func (sh *SpanHighlighter) addHighlighting(result *strings.Builder, lineNum int, line string, span Span) {
	width := utf8.RuneCountInString(line)

	startCol, endCol := 0, width
	if lineNum == span.Start.Line {
		startCol = span.Start.Column
	}
	if lineNum == span.End.Line {
		endCol = span.End.Column
	}
	// Zero-width spans (and spans past the end of the line) still get one
	// marker so the location is visible.
	if endCol <= startCol {
		endCol = startCol + 1
	}

	result.WriteString("     | ")
	runes := []rune(line)
	for i := 0; i < startCol; i++ {
		if i < len(runes) && runes[i] == '\t' {
			result.WriteString("\t")
		} else {
			result.WriteString(" ")
		}
	}
	result.WriteString(strings.Repeat(sh.marker, endCol-startCol))
	result.WriteString("\n")
}
