// Package lexer implements the Stellar scanner. It turns UTF-8 source text
// into a TokenStream terminated by a single EndOfFile token.
package lexer

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/stellar-lang/stellar/internal/intern"
	"github.com/stellar-lang/stellar/internal/position"
)

// pairOperators lists the two-rune operators. The first rune of every pair
// is also a single-rune operator.
var pairOperators = map[[2]rune]Operator{
	{'-', '='}: OperatorMinusEq,
	{'+', '='}: OperatorPlusEq,
	{'=', '='}: OperatorEq,
}

var singleOperators = map[rune]Operator{
	'-': OperatorMinus,
	'+': OperatorPlus,
	'*': OperatorStar,
	'/': OperatorSlash,
	'=': OperatorAssign,
}

var punctuators = map[rune]Punctuator{
	'{': PunctuatorLeftBrace,
	'}': PunctuatorRightBrace,
	'[': PunctuatorLeftBracket,
	']': PunctuatorRightBracket,
	'(': PunctuatorLeftParen,
	')': PunctuatorRightParen,
	':': PunctuatorColon,
	'.': PunctuatorDot,
	',': PunctuatorComma,
}

var escapes = map[rune]rune{
	'n':  '\n',
	't':  '\t',
	'r':  '\r',
	'"':  '"',
	'\\': '\\',
}

// Lexer produces tokens from source text one at a time.
type Lexer struct {
	cursor  *Cursor
	strings *intern.Table
}

// New creates a lexer over source. Identifiers and string literals are
// interned into table.
func New(source string, table *intern.Table) *Lexer {
	return &Lexer{
		cursor:  NewCursor(source),
		strings: table,
	}
}

// Scan tokenizes the whole source. On success the stream always ends with
// exactly one EndOfFile token. The first error aborts the scan.
func Scan(source string, table *intern.Table) (TokenStream, error) {
	l := New(source, table)

	var stream TokenStream
	for {
		tok, err := l.NextToken()
		if err != nil {
			return TokenStream{}, err
		}
		stream.Push(tok)
		if tok.IsEOF() {
			return stream, nil
		}
	}
}

// NextToken returns the next token. Once EndOfFile has been produced every
// further call returns it again.
func (l *Lexer) NextToken() (Token, error) {
	l.skipTrivia()

	start := l.cursor.Location()
	ch, ok := l.cursor.Peek()
	if !ok {
		return NewEndOfFile(start), nil
	}

	switch {
	case ch == '\n':
		l.cursor.Next()
		return NewEndOfLine(position.NewSpan(start, l.cursor.Location())), nil
	case ch == '"':
		return l.readString()
	case isIdentifierStart(ch):
		return l.readIdentifier(), nil
	case isDigit(ch) || ch == '.':
		return l.readNumber()
	default:
		return l.readSymbol()
	}
}

// skipTrivia skips whitespace other than '\n' and '#' comments. A comment
// runs up to and including the next newline.
func (l *Lexer) skipTrivia() {
	for {
		ch, ok := l.cursor.Peek()
		if !ok {
			return
		}

		switch {
		case ch == '#':
			for {
				c, ok := l.cursor.Next()
				if !ok || c == '\n' {
					break
				}
			}
		case ch != '\n' && unicode.IsSpace(ch):
			l.cursor.Next()
		default:
			return
		}
	}
}

func (l *Lexer) readString() (Token, error) {
	start := l.cursor.Location()
	l.cursor.Next() // opening quote

	var sb strings.Builder
	for {
		ch, ok := l.cursor.Next()
		if !ok {
			return Token{}, &ScanError{
				Kind: UnterminatedString,
				Span: position.NewSpan(start, l.cursor.Location()),
			}
		}

		switch ch {
		case '"':
			id := l.strings.Intern(sb.String())
			return NewString(id, position.NewSpan(start, l.cursor.Location())), nil
		case '\\':
			escStart := l.cursor.Location()
			esc, ok := l.cursor.Next()
			if !ok {
				return Token{}, &ScanError{
					Kind: UnterminatedString,
					Span: position.NewSpan(start, l.cursor.Location()),
				}
			}
			value, valid := escapes[esc]
			if !valid {
				// Span covers the backslash and the escaped rune.
				escStart.Offset--
				escStart.Column--
				return Token{}, &ScanError{
					Kind: InvalidEscapeSequence,
					Char: esc,
					Span: position.NewSpan(escStart, l.cursor.Location()),
				}
			}
			sb.WriteRune(value)
		default:
			sb.WriteRune(ch)
		}
	}
}

func (l *Lexer) readIdentifier() Token {
	start := l.cursor.Location()
	for {
		ch, ok := l.cursor.Peek()
		if !ok || !isIdentifierPart(ch) {
			break
		}
		l.cursor.Next()
	}
	end := l.cursor.Location()
	span := position.NewSpan(start, end)
	text := l.cursor.slice(start, end)

	if kw, ok := LookupKeyword(text); ok {
		return NewKeyword(kw, span)
	}
	switch text {
	case "true":
		return NewBool(true, span)
	case "false":
		return NewBool(false, span)
	}
	return NewIdentifier(l.strings.Intern(text), span)
}

func (l *Lexer) readNumber() (Token, error) {
	start := l.cursor.Location()
	seenDot := false
	for {
		ch, ok := l.cursor.Peek()
		if !ok {
			break
		}
		if ch == '.' {
			if seenDot {
				break
			}
			seenDot = true
		} else if !isDigit(ch) {
			break
		}
		l.cursor.Next()
	}
	end := l.cursor.Location()
	span := position.NewSpan(start, end)
	lexeme := l.cursor.slice(start, end)

	if lexeme == "." {
		return NewPunctuator(PunctuatorDot, span), nil
	}

	if seenDot {
		value, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			return Token{}, &ScanError{Kind: InvalidNumber, Span: span}
		}
		return NewFloat(value, span), nil
	}

	value, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		return Token{}, &ScanError{Kind: InvalidNumber, Span: span}
	}
	return NewInteger(value, span), nil
}

func (l *Lexer) readSymbol() (Token, error) {
	start := l.cursor.Location()
	ch, _ := l.cursor.Next()

	if next, ok := l.cursor.Peek(); ok {
		if op, ok := pairOperators[[2]rune{ch, next}]; ok {
			l.cursor.Next()
			return NewOperator(op, position.NewSpan(start, l.cursor.Location())), nil
		}
	}

	span := position.NewSpan(start, l.cursor.Location())
	if op, ok := singleOperators[ch]; ok {
		return NewOperator(op, span), nil
	}
	if p, ok := punctuators[ch]; ok {
		return NewPunctuator(p, span), nil
	}

	return Token{}, &ScanError{Kind: UnexpectedCharacter, Char: ch, Span: span}
}

func isIdentifierStart(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}

func isIdentifierPart(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_'
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}
