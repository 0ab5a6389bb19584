package parser

import (
	"fmt"

	"github.com/stellar-lang/stellar/internal/lexer"
	"github.com/stellar-lang/stellar/internal/position"
)

// ParseErrorKind classifies a parse failure.
type ParseErrorKind int

const (
	InvalidTokenStream ParseErrorKind = iota
	ExpectedExpression
	ExpectedIdentifier
	ExpectedPunctuation
	ExpectedOperator
)

var parseErrorKindNames = map[ParseErrorKind]string{
	InvalidTokenStream:  "InvalidTokenStream",
	ExpectedExpression:  "ExpectedExpression",
	ExpectedIdentifier:  "ExpectedIdentifier",
	ExpectedPunctuation: "ExpectedPunctuation",
	ExpectedOperator:    "ExpectedOperator",
}

func (k ParseErrorKind) String() string {
	if name, ok := parseErrorKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ParseErrorKind(%d)", int(k))
}

// ParseError represents the first structural mismatch found in a token
// stream. Got is the offending token. ExpectedPunctuator and
// ExpectedOperator are only meaningful for the matching kinds.
type ParseError struct {
	Kind               ParseErrorKind
	ExpectedPunctuator lexer.Punctuator
	ExpectedOperator   lexer.Operator
	Got                lexer.Token
}

func (e *ParseError) Error() string {
	loc := e.Got.Span.Start
	switch e.Kind {
	case InvalidTokenStream:
		return "invalid token stream: missing end of file marker"
	case ExpectedExpression:
		return fmt.Sprintf("%s: expected expression, got %s", loc, e.Got.Summary())
	case ExpectedIdentifier:
		return fmt.Sprintf("%s: expected identifier, got %s", loc, e.Got.Summary())
	case ExpectedPunctuation:
		return fmt.Sprintf("%s: expected '%s', got %s", loc, e.ExpectedPunctuator.Lexeme(), e.Got.Summary())
	case ExpectedOperator:
		return fmt.Sprintf("%s: expected '%s', got %s", loc, e.ExpectedOperator.Lexeme(), e.Got.Summary())
	default:
		return fmt.Sprintf("%s: %s", loc, e.Kind)
	}
}

// GetSpan returns the span of the offending token.
func (e *ParseError) GetSpan() position.Span { return e.Got.Span }

// AtEndOfFile reports whether parsing failed only because input ran out.
// Interactive callers use it to ask for another line.
func (e *ParseError) AtEndOfFile() bool {
	return e.Kind != InvalidTokenStream && e.Got.IsEOF()
}

func expectedExpression(got lexer.Token) *ParseError {
	return &ParseError{Kind: ExpectedExpression, Got: got}
}

func expectedIdentifier(got lexer.Token) *ParseError {
	return &ParseError{Kind: ExpectedIdentifier, Got: got}
}

func expectedPunctuation(expected lexer.Punctuator, got lexer.Token) *ParseError {
	return &ParseError{Kind: ExpectedPunctuation, ExpectedPunctuator: expected, Got: got}
}

func expectedOperator(expected lexer.Operator, got lexer.Token) *ParseError {
	return &ParseError{Kind: ExpectedOperator, ExpectedOperator: expected, Got: got}
}
