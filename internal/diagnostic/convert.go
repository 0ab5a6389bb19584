package diagnostic

import (
	"errors"
	"fmt"

	"github.com/stellar-lang/stellar/internal/lexer"
	"github.com/stellar-lang/stellar/internal/parser"
)

// Diagnostic codes
const (
	CodeUnexpectedCharacter   = "S001"
	CodeInvalidEscapeSequence = "S002"
	CodeUnterminatedString    = "S003"
	CodeInvalidNumber         = "S004"

	CodeInvalidTokenStream  = "P001"
	CodeExpectedExpression  = "P002"
	CodeExpectedIdentifier  = "P003"
	CodeExpectedPunctuation = "P004"
	CodeExpectedOperator    = "P005"

	CodeIO = "F001"
)

// FromError converts a scan or parse error into a diagnostic for file.
// Other errors become an IO diagnostic without a span.
func FromError(err error, file string) *Diagnostic {
	var scanErr *lexer.ScanError
	if errors.As(err, &scanErr) {
		return FromScanError(scanErr, file)
	}

	var parseErr *parser.ParseError
	if errors.As(err, &parseErr) {
		return FromParseError(parseErr, file)
	}

	return NewDiagnostic().
		Error().
		IO().
		File(file).
		Code(CodeIO).
		Title("cannot read source").
		Message(err.Error()).
		Build()
}

// FromScanError converts a scan error into a diagnostic.
func FromScanError(err *lexer.ScanError, file string) *Diagnostic {
	b := NewDiagnostic().Error().Lexical().File(file).Span(err.Span)

	switch err.Kind {
	case lexer.UnexpectedCharacter:
		b.Code(CodeUnexpectedCharacter).
			Title("unexpected character").
			Message(fmt.Sprintf("%q cannot start a token", err.Char))
	case lexer.InvalidEscapeSequence:
		b.Code(CodeInvalidEscapeSequence).
			Title("invalid escape sequence").
			Message(fmt.Sprintf("'\\%c' is not a known escape", err.Char)).
			Suggest(`supported escapes are \n \t \r \" and \\`)
	case lexer.UnterminatedString:
		b.Code(CodeUnterminatedString).
			Title("unterminated string").
			Message("string literal is missing its closing quote").
			Suggest(`add '"' at the end of the string`)
	case lexer.InvalidNumber:
		b.Code(CodeInvalidNumber).
			Title("invalid number").
			Message("number literal is out of range")
	}

	return b.Build()
}

// FromParseError converts a parse error into a diagnostic.
func FromParseError(err *parser.ParseError, file string) *Diagnostic {
	b := NewDiagnostic().Error().Syntax().File(file).Span(err.GetSpan())
	got := err.Got.Summary()

	switch err.Kind {
	case parser.InvalidTokenStream:
		b.Code(CodeInvalidTokenStream).
			Title("invalid token stream").
			Message("token stream does not end with an end of file marker")
	case parser.ExpectedExpression:
		b.Code(CodeExpectedExpression).
			Title("expected expression").
			Message(fmt.Sprintf("expected an expression, found %s", got))
	case parser.ExpectedIdentifier:
		b.Code(CodeExpectedIdentifier).
			Title("expected identifier").
			Message(fmt.Sprintf("expected a name, found %s", got))
	case parser.ExpectedPunctuation:
		expected := err.ExpectedPunctuator.Lexeme()
		b.Code(CodeExpectedPunctuation).
			Title(fmt.Sprintf("expected '%s'", expected)).
			Message(fmt.Sprintf("expected '%s', found %s", expected, got))
		if err.ExpectedPunctuator == lexer.PunctuatorRightBrace && err.Got.IsEOF() {
			b.Suggest("close the block with '}'")
		}
	case parser.ExpectedOperator:
		expected := err.ExpectedOperator.Lexeme()
		b.Code(CodeExpectedOperator).
			Title(fmt.Sprintf("expected '%s'", expected)).
			Message(fmt.Sprintf("expected '%s', found %s", expected, got))
	}

	return b.Build()
}
