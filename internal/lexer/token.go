package lexer

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/stellar-lang/stellar/internal/intern"
	"github.com/stellar-lang/stellar/internal/position"
)

// TokenKind represents the variant of a token
type TokenKind int

// Token kinds
const (
	TokenEndOfFile TokenKind = iota
	TokenEndOfLine
	TokenKeyword
	TokenIdentifier
	TokenOperator
	TokenPunctuator
	TokenInteger
	TokenFloat
	TokenBool
	TokenString
)

var tokenKindNames = map[TokenKind]string{
	TokenEndOfFile:  "EndOfFile",
	TokenEndOfLine:  "EndOfLine",
	TokenKeyword:    "Keyword",
	TokenIdentifier: "Identifier",
	TokenOperator:   "Operator",
	TokenPunctuator: "Punctuator",
	TokenInteger:    "Integer",
	TokenFloat:      "Float",
	TokenBool:       "Bool",
	TokenString:     "String",
}

// String returns a string representation of the token kind
func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(k))
}

// Keyword identifies a reserved word.
type Keyword int

// Keywords of the language
const (
	KeywordWith Keyword = iota
	KeywordWait
	KeywordSequence
	KeywordPlay
	KeywordLet
	KeywordLoadSample
)

// keywords maps reserved words to their keyword
var keywords = map[string]Keyword{
	"with":        KeywordWith,
	"wait":        KeywordWait,
	"sequence":    KeywordSequence,
	"play":        KeywordPlay,
	"let":         KeywordLet,
	"load_sample": KeywordLoadSample,
}

var keywordNames = map[Keyword]string{
	KeywordWith:       "With",
	KeywordWait:       "Wait",
	KeywordSequence:   "Sequence",
	KeywordPlay:       "Play",
	KeywordLet:        "Let",
	KeywordLoadSample: "LoadSample",
}

// String returns the keyword name, e.g. "LoadSample".
func (k Keyword) String() string {
	if name, ok := keywordNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Keyword(%d)", int(k))
}

// Lexeme returns the source spelling of the keyword.
func (k Keyword) Lexeme() string {
	for text, kw := range keywords {
		if kw == k {
			return text
		}
	}
	return ""
}

// LookupKeyword returns the keyword spelled by name.
func LookupKeyword(name string) (Keyword, bool) {
	kw, ok := keywords[name]
	return kw, ok
}

// Operator identifies an operator token.
type Operator int

// Operators
const (
	OperatorMinus Operator = iota
	OperatorPlus
	OperatorStar
	OperatorSlash
	OperatorAssign
	OperatorMinusEq
	OperatorPlusEq
	OperatorEq
)

var operatorNames = map[Operator]string{
	OperatorMinus:   "Minus",
	OperatorPlus:    "Plus",
	OperatorStar:    "Star",
	OperatorSlash:   "Slash",
	OperatorAssign:  "Assign",
	OperatorMinusEq: "MinusEq",
	OperatorPlusEq:  "PlusEq",
	OperatorEq:      "Eq",
}

var operatorLexemes = map[Operator]string{
	OperatorMinus:   "-",
	OperatorPlus:    "+",
	OperatorStar:    "*",
	OperatorSlash:   "/",
	OperatorAssign:  "=",
	OperatorMinusEq: "-=",
	OperatorPlusEq:  "+=",
	OperatorEq:      "==",
}

// String returns the operator name, e.g. "MinusEq".
func (o Operator) String() string {
	if name, ok := operatorNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Operator(%d)", int(o))
}

// Lexeme returns the source spelling of the operator.
func (o Operator) Lexeme() string {
	return operatorLexemes[o]
}

// Punctuator identifies a punctuation token.
type Punctuator int

// Punctuators
const (
	PunctuatorLeftBrace Punctuator = iota
	PunctuatorRightBrace
	PunctuatorLeftBracket
	PunctuatorRightBracket
	PunctuatorLeftParen
	PunctuatorRightParen
	PunctuatorColon
	PunctuatorDot
	PunctuatorComma
)

var punctuatorNames = map[Punctuator]string{
	PunctuatorLeftBrace:    "LeftBrace",
	PunctuatorRightBrace:   "RightBrace",
	PunctuatorLeftBracket:  "LeftBracket",
	PunctuatorRightBracket: "RightBracket",
	PunctuatorLeftParen:    "LeftParen",
	PunctuatorRightParen:   "RightParen",
	PunctuatorColon:        "Colon",
	PunctuatorDot:          "Dot",
	PunctuatorComma:        "Comma",
}

var punctuatorLexemes = map[Punctuator]string{
	PunctuatorLeftBrace:    "{",
	PunctuatorRightBrace:   "}",
	PunctuatorLeftBracket:  "[",
	PunctuatorRightBracket: "]",
	PunctuatorLeftParen:    "(",
	PunctuatorRightParen:   ")",
	PunctuatorColon:        ":",
	PunctuatorDot:          ".",
	PunctuatorComma:        ",",
}

// String returns the punctuator name, e.g. "LeftBrace".
func (p Punctuator) String() string {
	if name, ok := punctuatorNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Punctuator(%d)", int(p))
}

// Lexeme returns the source spelling of the punctuator.
func (p Punctuator) Lexeme() string {
	return punctuatorLexemes[p]
}

// Token is a classified lexical unit. Kind selects which payload field is
// meaningful; every token carries a Span.
type Token struct {
	Kind       TokenKind
	Keyword    Keyword         // TokenKeyword
	Operator   Operator        // TokenOperator
	Punctuator Punctuator      // TokenPunctuator
	Int        int64           // TokenInteger
	Float      float64         // TokenFloat
	Bool       bool            // TokenBool
	Str        intern.StringID // TokenIdentifier, TokenString
	Span       position.Span
}

// NewKeyword creates a keyword token.
func NewKeyword(kw Keyword, span position.Span) Token {
	return Token{Kind: TokenKeyword, Keyword: kw, Span: span}
}

// NewIdentifier creates an identifier token.
func NewIdentifier(name intern.StringID, span position.Span) Token {
	return Token{Kind: TokenIdentifier, Str: name, Span: span}
}

// NewOperator creates an operator token.
func NewOperator(op Operator, span position.Span) Token {
	return Token{Kind: TokenOperator, Operator: op, Span: span}
}

// NewPunctuator creates a punctuator token.
func NewPunctuator(p Punctuator, span position.Span) Token {
	return Token{Kind: TokenPunctuator, Punctuator: p, Span: span}
}

// NewInteger creates an integer literal token.
func NewInteger(value int64, span position.Span) Token {
	return Token{Kind: TokenInteger, Int: value, Span: span}
}

// NewFloat creates a float literal token.
func NewFloat(value float64, span position.Span) Token {
	return Token{Kind: TokenFloat, Float: value, Span: span}
}

// NewBool creates a boolean literal token.
func NewBool(value bool, span position.Span) Token {
	return Token{Kind: TokenBool, Bool: value, Span: span}
}

// NewString creates a string literal token holding the unescaped content.
func NewString(value intern.StringID, span position.Span) Token {
	return Token{Kind: TokenString, Str: value, Span: span}
}

// NewEndOfLine creates a line break token.
func NewEndOfLine(span position.Span) Token {
	return Token{Kind: TokenEndOfLine, Span: span}
}

// NewEndOfFile creates the terminal token at loc. Its span is one byte
// wide starting at loc.
func NewEndOfFile(loc position.Location) Token {
	return Token{Kind: TokenEndOfFile, Span: position.NewSpan(loc, loc.NextByte())}
}

// GetSpan returns the source span of the token
func (t Token) GetSpan() position.Span { return t.Span }

// Location returns where the token starts. For EndOfFile this is the
// terminal location it was created with.
func (t Token) Location() position.Location { return t.Span.Start }

// IsEOF reports whether t is the end-of-file marker.
func (t Token) IsEOF() bool { return t.Kind == TokenEndOfFile }

// IsEOL reports whether t is a line break.
func (t Token) IsEOL() bool { return t.Kind == TokenEndOfLine }

// IsKeyword reports whether t is the keyword kw.
func (t Token) IsKeyword(kw Keyword) bool {
	return t.Kind == TokenKeyword && t.Keyword == kw
}

// IsOperator reports whether t is the operator op.
func (t Token) IsOperator(op Operator) bool {
	return t.Kind == TokenOperator && t.Operator == op
}

// IsPunctuator reports whether t is the punctuator p.
func (t Token) IsPunctuator(p Punctuator) bool {
	return t.Kind == TokenPunctuator && t.Punctuator == p
}

// String returns a debug representation of the token, e.g.
// "Keyword(Wait) 1:0-4". Interned payloads are shown by id; use Describe
// to resolve them.
func (t Token) String() string {
	return fmt.Sprintf("%s %s", t.payload(nil), t.Span.String())
}

// Describe is String with identifiers and strings resolved through table.
func (t Token) Describe(table *intern.Table) string {
	return fmt.Sprintf("%s %s", t.payload(table), t.Span.String())
}

func (t Token) payload(table *intern.Table) string {
	switch t.Kind {
	case TokenKeyword:
		return fmt.Sprintf("Keyword(%s)", t.Keyword)
	case TokenIdentifier:
		return fmt.Sprintf("Identifier(%s)", resolveID(table, t.Str))
	case TokenOperator:
		return fmt.Sprintf("Operator(%s)", t.Operator)
	case TokenPunctuator:
		return fmt.Sprintf("Punctuator(%s)", t.Punctuator)
	case TokenInteger:
		return fmt.Sprintf("Integer(%d)", t.Int)
	case TokenFloat:
		return fmt.Sprintf("Float(%s)", strconv.FormatFloat(t.Float, 'g', -1, 64))
	case TokenBool:
		return fmt.Sprintf("Bool(%t)", t.Bool)
	case TokenString:
		return fmt.Sprintf("String(%s)", resolveID(table, t.Str))
	case TokenEndOfLine:
		return "EndOfLine"
	case TokenEndOfFile:
		return "EndOfFile"
	default:
		return t.Kind.String()
	}
}

func resolveID(table *intern.Table, id intern.StringID) string {
	if table != nil {
		if s, ok := table.TryResolve(id); ok {
			return strconv.Quote(s)
		}
	}
	return fmt.Sprintf("#%d", id)
}

// Summary returns a short human readable description of the token for
// error messages, e.g. "keyword 'wait'" or "end of file".
func (t Token) Summary() string {
	switch t.Kind {
	case TokenKeyword:
		return fmt.Sprintf("keyword '%s'", t.Keyword.Lexeme())
	case TokenIdentifier:
		return "identifier"
	case TokenOperator:
		return fmt.Sprintf("operator '%s'", t.Operator.Lexeme())
	case TokenPunctuator:
		return fmt.Sprintf("'%s'", t.Punctuator.Lexeme())
	case TokenInteger:
		return fmt.Sprintf("integer %d", t.Int)
	case TokenFloat:
		return fmt.Sprintf("float %s", strconv.FormatFloat(t.Float, 'g', -1, 64))
	case TokenBool:
		return fmt.Sprintf("boolean %t", t.Bool)
	case TokenString:
		return "string literal"
	case TokenEndOfLine:
		return "end of line"
	case TokenEndOfFile:
		return "end of file"
	default:
		return t.Kind.String()
	}
}

// TokenStream is the ordered output of the scanner. A well-formed stream
// is non-empty and ends with exactly one EndOfFile token.
type TokenStream struct {
	tokens []Token
}

// NewTokenStream creates a stream holding tokens as given. No validation
// happens here; Cursor rejects malformed streams.
func NewTokenStream(tokens ...Token) TokenStream {
	return TokenStream{tokens: slices.Clone(tokens)}
}

// Push appends a token to the stream.
func (s *TokenStream) Push(t Token) {
	s.tokens = append(s.tokens, t)
}

// Len returns the number of tokens in the stream.
func (s TokenStream) Len() int {
	return len(s.tokens)
}

// Tokens returns a copy of the tokens in the stream.
func (s TokenStream) Tokens() []Token {
	return slices.Clone(s.tokens)
}

// Last returns the final token of the stream.
func (s TokenStream) Last() (Token, bool) {
	if len(s.tokens) == 0 {
		return Token{}, false
	}
	return s.tokens[len(s.tokens)-1], true
}

// Valid reports whether the stream is non-empty and ends with EndOfFile.
func (s TokenStream) Valid() bool {
	last, ok := s.Last()
	return ok && last.IsEOF()
}

// Get returns the token at index. Indexes past the end return the final
// token, which is EndOfFile for a valid stream.
func (s TokenStream) Get(index int) Token {
	if len(s.tokens) == 0 {
		return NewEndOfFile(position.StartOfFile())
	}
	if index < 0 {
		index = 0
	}
	if index >= len(s.tokens) {
		return s.tokens[len(s.tokens)-1]
	}
	return s.tokens[index]
}

// Cursor returns a lookahead cursor over the stream. It returns false when
// the stream does not end with EndOfFile, since lookahead past the end
// would otherwise produce something other than EndOfFile.
func (s TokenStream) Cursor() (*TokenStreamCursor, bool) {
	if !s.Valid() {
		return nil, false
	}
	return &TokenStreamCursor{stream: s}, true
}

// TokenStreamCursor is a forward-only reader over a valid TokenStream.
// Reading past the end keeps returning the EndOfFile token.
type TokenStreamCursor struct {
	stream TokenStream
	index  int
}

// Peek returns the next token without consuming it.
func (c *TokenStreamCursor) Peek() Token {
	return c.stream.Get(c.index)
}

// Next consumes and returns the next token.
func (c *TokenStreamCursor) Next() Token {
	tok := c.stream.Get(c.index)
	if c.index < c.stream.Len() {
		c.index++
	}
	return tok
}

// Index returns the position of the next token in the stream.
func (c *TokenStreamCursor) Index() int {
	return c.index
}
