package lexer

import (
	"fmt"

	"github.com/stellar-lang/stellar/internal/position"
)

// ScanErrorKind classifies a scan failure.
type ScanErrorKind int

const (
	UnexpectedCharacter ScanErrorKind = iota
	InvalidEscapeSequence
	UnterminatedString
	InvalidNumber
)

var scanErrorKindNames = map[ScanErrorKind]string{
	UnexpectedCharacter:   "UnexpectedCharacter",
	InvalidEscapeSequence: "InvalidEscapeSequence",
	UnterminatedString:    "UnterminatedString",
	InvalidNumber:         "InvalidNumber",
}

func (k ScanErrorKind) String() string {
	if name, ok := scanErrorKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ScanErrorKind(%d)", int(k))
}

// ScanError reports why scanning stopped. Char is set for
// UnexpectedCharacter and InvalidEscapeSequence.
type ScanError struct {
	Kind ScanErrorKind
	Char rune
	Span position.Span
}

func (e *ScanError) Error() string {
	switch e.Kind {
	case UnexpectedCharacter:
		return fmt.Sprintf("%s: unexpected character %q", e.Span.Start, e.Char)
	case InvalidEscapeSequence:
		return fmt.Sprintf("%s: invalid escape sequence '\\%c'", e.Span.Start, e.Char)
	case UnterminatedString:
		return fmt.Sprintf("%s: unterminated string literal", e.Span.Start)
	case InvalidNumber:
		return fmt.Sprintf("%s: invalid number literal", e.Span.Start)
	default:
		return fmt.Sprintf("%s: %s", e.Span.Start, e.Kind)
	}
}

// GetSpan returns the span of the offending source text.
func (e *ScanError) GetSpan() position.Span { return e.Span }
