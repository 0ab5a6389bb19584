package lexer

import (
	"errors"
	"testing"

	"github.com/stellar-lang/stellar/internal/intern"
	"github.com/stellar-lang/stellar/internal/position"
)

func scanKinds(t *testing.T, input string) ([]Token, *intern.Table) {
	t.Helper()

	table := intern.NewTable()
	stream, err := Scan(input, table)
	if err != nil {
		t.Fatalf("Scan(%q) returned error: %v", input, err)
	}
	return stream.Tokens(), table
}

func TestNumbers(t *testing.T) {
	tokens, _ := scanKinds(t, "3 3.2.")

	tests := []struct {
		expectedKind TokenKind
		expectedSpan string
	}{
		{TokenInteger, "1:0-1"},
		{TokenFloat, "1:2-5"},
		{TokenPunctuator, "1:5-6"},
		{TokenEndOfFile, "1:6-7"},
	}

	if len(tokens) != len(tests) {
		t.Fatalf("expected %d tokens, got %d: %v", len(tests), len(tokens), tokens)
	}
	for i, tt := range tests {
		tok := tokens[i]
		if tok.Kind != tt.expectedKind {
			t.Fatalf("tests[%d] - kind wrong. expected=%q, got=%q", i, tt.expectedKind, tok.Kind)
		}
		if tok.Span.String() != tt.expectedSpan {
			t.Fatalf("tests[%d] - span wrong. expected=%q, got=%q", i, tt.expectedSpan, tok.Span.String())
		}
	}

	if tokens[0].Int != 3 {
		t.Errorf("expected integer 3, got %d", tokens[0].Int)
	}
	if tokens[1].Float != 3.2 {
		t.Errorf("expected float 3.2, got %v", tokens[1].Float)
	}
	if !tokens[2].IsPunctuator(PunctuatorDot) {
		t.Errorf("expected Dot, got %s", tokens[2])
	}
}

func TestNumberForms(t *testing.T) {
	tests := []struct {
		input   string
		isFloat bool
		value   float64
	}{
		{"0", false, 0},
		{"42", false, 42},
		{"1.", true, 1},
		{".5", true, 0.5},
		{"120.25", true, 120.25},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, _ := scanKinds(t, tt.input)
			if len(tokens) != 2 {
				t.Fatalf("expected number and EndOfFile, got %v", tokens)
			}
			tok := tokens[0]
			if tt.isFloat {
				if tok.Kind != TokenFloat || tok.Float != tt.value {
					t.Errorf("expected Float(%v), got %s", tt.value, tok)
				}
				return
			}
			if tok.Kind != TokenInteger || float64(tok.Int) != tt.value {
				t.Errorf("expected Integer(%v), got %s", tt.value, tok)
			}
		})
	}
}

func TestLoneDot(t *testing.T) {
	tokens, _ := scanKinds(t, "a.b")

	if len(tokens) != 4 {
		t.Fatalf("expected 4 tokens, got %v", tokens)
	}
	if !tokens[1].IsPunctuator(PunctuatorDot) {
		t.Errorf("expected Dot, got %s", tokens[1])
	}
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	tokens, table := scanKinds(t, "wait time")

	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %v", tokens)
	}
	if !tokens[0].IsKeyword(KeywordWait) {
		t.Errorf("expected Keyword(Wait), got %s", tokens[0])
	}
	if tokens[1].Kind != TokenIdentifier {
		t.Fatalf("expected Identifier, got %s", tokens[1])
	}
	if got := table.Resolve(tokens[1].Str); got != "time" {
		t.Errorf("expected=%q, got=%q", "time", got)
	}
	if !tokens[2].IsEOF() {
		t.Errorf("expected EndOfFile, got %s", tokens[2])
	}
}

func TestAllKeywords(t *testing.T) {
	input := "with wait sequence play let load_sample"
	expected := []Keyword{
		KeywordWith,
		KeywordWait,
		KeywordSequence,
		KeywordPlay,
		KeywordLet,
		KeywordLoadSample,
	}

	tokens, _ := scanKinds(t, input)
	for i, kw := range expected {
		if !tokens[i].IsKeyword(kw) {
			t.Errorf("tests[%d] - expected=%q, got=%q", i, kw, tokens[i])
		}
	}
}

func TestBooleans(t *testing.T) {
	tokens, _ := scanKinds(t, "true false truth")

	if tokens[0].Kind != TokenBool || !tokens[0].Bool {
		t.Errorf("expected Bool(true), got %s", tokens[0])
	}
	if tokens[1].Kind != TokenBool || tokens[1].Bool {
		t.Errorf("expected Bool(false), got %s", tokens[1])
	}
	if tokens[2].Kind != TokenIdentifier {
		t.Errorf("expected Identifier, got %s", tokens[2])
	}
}

func TestIdentifierInterning(t *testing.T) {
	tokens, table := scanKinds(t, "kick snare kick")

	if tokens[0].Str != tokens[2].Str {
		t.Errorf("same identifier interned twice: %d vs %d", tokens[0].Str, tokens[2].Str)
	}
	if tokens[0].Str == tokens[1].Str {
		t.Error("distinct identifiers share an id")
	}
	if table.Len() != 2 {
		t.Errorf("expected 2 interned strings, got %d", table.Len())
	}
}

func TestOperatorsAndPunctuators(t *testing.T) {
	input := "-= += == - + * / = { } [ ] ( ) : ,"

	tests := []struct {
		op    Operator
		punct Punctuator
		isOp  bool
	}{
		{op: OperatorMinusEq, isOp: true},
		{op: OperatorPlusEq, isOp: true},
		{op: OperatorEq, isOp: true},
		{op: OperatorMinus, isOp: true},
		{op: OperatorPlus, isOp: true},
		{op: OperatorStar, isOp: true},
		{op: OperatorSlash, isOp: true},
		{op: OperatorAssign, isOp: true},
		{punct: PunctuatorLeftBrace},
		{punct: PunctuatorRightBrace},
		{punct: PunctuatorLeftBracket},
		{punct: PunctuatorRightBracket},
		{punct: PunctuatorLeftParen},
		{punct: PunctuatorRightParen},
		{punct: PunctuatorColon},
		{punct: PunctuatorComma},
	}

	tokens, _ := scanKinds(t, input)
	if len(tokens) != len(tests)+1 {
		t.Fatalf("expected %d tokens, got %d", len(tests)+1, len(tokens))
	}

	for i, tt := range tests {
		tok := tokens[i]
		if tt.isOp && !tok.IsOperator(tt.op) {
			t.Errorf("tests[%d] - expected=%q, got=%q", i, tt.op, tok)
		}
		if !tt.isOp && !tok.IsPunctuator(tt.punct) {
			t.Errorf("tests[%d] - expected=%q, got=%q", i, tt.punct, tok)
		}
	}

	if tokens[0].Span.Len() != 2 {
		t.Errorf("two-rune operator should span 2 bytes, got %d", tokens[0].Span.Len())
	}
}

func TestOperatorsWithoutSpaces(t *testing.T) {
	tokens, _ := scanKinds(t, "a===b")

	if !tokens[1].IsOperator(OperatorEq) || !tokens[2].IsOperator(OperatorAssign) {
		t.Errorf("expected Eq then Assign, got %s and %s", tokens[1], tokens[2])
	}
}

func TestStrings(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`"kick.wav"`, "kick.wav"},
		{`""`, ""},
		{`"a\nb"`, "a\nb"},
		{`"tab\there"`, "tab\there"},
		{`"cr\r"`, "cr\r"},
		{`"say \"hi\""`, `say "hi"`},
		{`"back\\slash"`, `back\slash`},
		{`"héllo"`, "héllo"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, table := scanKinds(t, tt.input)
			if tokens[0].Kind != TokenString {
				t.Fatalf("expected String, got %s", tokens[0])
			}
			if got := table.Resolve(tokens[0].Str); got != tt.expected {
				t.Errorf("expected=%q, got=%q", tt.expected, got)
			}
			if tokens[0].Span.Len() != len(tt.input) {
				t.Errorf("string span should cover the quotes: got %d bytes", tokens[0].Span.Len())
			}
		})
	}
}

func TestScanErrors(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectedKind ScanErrorKind
		expectedChar rune
		expectedSpan string
	}{
		{"unexpected bang", "!", UnexpectedCharacter, '!', "1:0-1"},
		{"unexpected after tokens", "wait 1 ?", UnexpectedCharacter, '?', "1:7-8"},
		{"unterminated string", `"abc`, UnterminatedString, 0, "1:0-4"},
		{"unterminated after escape", `"abc\`, UnterminatedString, 0, "1:0-5"},
		{"unterminated escaped quote", `"\"abc`, UnterminatedString, 0, "1:0-6"},
		{"invalid escape", `"a\qb"`, InvalidEscapeSequence, 'q', "1:2-4"},
		{"integer overflow", "99999999999999999999", InvalidNumber, 0, "1:0-20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stream, err := Scan(tt.input, intern.NewTable())
			if err == nil {
				t.Fatalf("expected error, got stream %v", stream.Tokens())
			}
			if stream.Len() != 0 {
				t.Errorf("expected no partial stream, got %d tokens", stream.Len())
			}

			var scanErr *ScanError
			if !errors.As(err, &scanErr) {
				t.Fatalf("expected *ScanError, got %T", err)
			}
			if scanErr.Kind != tt.expectedKind {
				t.Errorf("expected=%q, got=%q", tt.expectedKind, scanErr.Kind)
			}
			if scanErr.Char != tt.expectedChar {
				t.Errorf("expected char %q, got %q", tt.expectedChar, scanErr.Char)
			}
			if scanErr.GetSpan().String() != tt.expectedSpan {
				t.Errorf("expected=%q, got=%q", tt.expectedSpan, scanErr.GetSpan().String())
			}
		})
	}
}

func TestEndOfLine(t *testing.T) {
	tokens, _ := scanKinds(t, "a\nb")

	if len(tokens) != 4 {
		t.Fatalf("expected 4 tokens, got %v", tokens)
	}
	eol := tokens[1]
	if !eol.IsEOL() {
		t.Fatalf("expected EndOfLine, got %s", eol)
	}
	if eol.Span.Len() != 1 {
		t.Errorf("EndOfLine should span one byte, got %d", eol.Span.Len())
	}
	if got := eol.Span.String(); got != "1:1-2:0" {
		t.Errorf("expected=%q, got=%q", "1:1-2:0", got)
	}
	if got := tokens[2].Span.Start; got != (position.Location{Line: 2, Column: 0, Offset: 2}) {
		t.Errorf("unexpected start of second line: %+v", got)
	}
}

func TestWhitespaceAndComments(t *testing.T) {
	input := "wait 1 # rest of line\n\t play  2\r\n# only comment"
	tokens, _ := scanKinds(t, input)

	expected := []TokenKind{
		TokenKeyword,
		TokenInteger,
		TokenKeyword,
		TokenInteger,
		TokenEndOfLine,
		TokenEndOfFile,
	}

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d: %v", len(expected), len(tokens), tokens)
	}
	for i, kind := range expected {
		if tokens[i].Kind != kind {
			t.Errorf("tests[%d] - expected=%q, got=%q", i, kind, tokens[i].Kind)
		}
	}
}

func TestEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "# just a comment"} {
		tokens, _ := scanKinds(t, input)
		if len(tokens) != 1 || !tokens[0].IsEOF() {
			t.Errorf("Scan(%q) = %v, want single EndOfFile", input, tokens)
		}
	}
}

func TestUnicodeLocations(t *testing.T) {
	tokens, table := scanKinds(t, "ä_1 x")

	if got := table.Resolve(tokens[0].Str); got != "ä_1" {
		t.Fatalf("expected=%q, got=%q", "ä_1", got)
	}
	end := tokens[0].Span.End
	if end.Offset != 4 || end.Column != 3 {
		t.Errorf("expected end offset 4 column 3, got %+v", end)
	}
	start := tokens[1].Span.Start
	if start.Offset != 5 || start.Column != 4 {
		t.Errorf("expected start offset 5 column 4, got %+v", start)
	}
}

func TestNextTokenAfterEOF(t *testing.T) {
	l := New("x", intern.NewTable())

	if _, err := l.NextToken(); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatal(err)
		}
		if !tok.IsEOF() {
			t.Fatalf("call %d: expected EndOfFile, got %s", i, tok)
		}
	}
}

func TestScanAlwaysEndsWithEOF(t *testing.T) {
	inputs := []string{
		"",
		"\n\n",
		"sequence intro {\n  play kick\n}",
		"with a: 3, b: 4, {}",
		"let x = load_sample \"kick.wav\"",
		"[1,\n2,]",
	}

	for _, input := range inputs {
		table := intern.NewTable()
		stream, err := Scan(input, table)
		if err != nil {
			t.Fatalf("Scan(%q) returned error: %v", input, err)
		}
		if stream.Len() == 0 || !stream.Valid() {
			t.Errorf("Scan(%q) produced an invalid stream", input)
		}
		eofs := 0
		for _, tok := range stream.Tokens() {
			if tok.IsEOF() {
				eofs++
			}
		}
		if eofs != 1 {
			t.Errorf("Scan(%q) produced %d EndOfFile tokens", input, eofs)
		}
	}
}
