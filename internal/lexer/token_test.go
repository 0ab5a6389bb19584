package lexer

import (
	"testing"

	"github.com/stellar-lang/stellar/internal/intern"
	"github.com/stellar-lang/stellar/internal/position"
)

func span(startCol, endCol int) position.Span {
	return position.NewSpan(
		position.Location{Line: 1, Column: startCol, Offset: startCol},
		position.Location{Line: 1, Column: endCol, Offset: endCol},
	)
}

func TestEndOfFileSpan(t *testing.T) {
	loc := position.Location{Line: 4, Column: 2, Offset: 30}
	tok := NewEndOfFile(loc)

	expected := position.NewSpan(loc, position.Location{Line: 4, Column: 3, Offset: 31})
	if tok.GetSpan() != expected {
		t.Errorf("expected=%v, got=%v", expected, tok.GetSpan())
	}
	if tok.Location() != loc {
		t.Errorf("expected=%v, got=%v", loc, tok.Location())
	}
}

func TestTokenString(t *testing.T) {
	table := intern.NewTable()
	id := table.Intern("time")

	tests := []struct {
		tok      Token
		expected string
	}{
		{NewKeyword(KeywordWait, span(0, 4)), "Keyword(Wait) 1:0-4"},
		{NewOperator(OperatorPlusEq, span(2, 4)), "Operator(PlusEq) 1:2-4"},
		{NewPunctuator(PunctuatorLeftBrace, span(0, 1)), "Punctuator(LeftBrace) 1:0-1"},
		{NewInteger(3, span(0, 1)), "Integer(3) 1:0-1"},
		{NewFloat(3.2, span(2, 5)), "Float(3.2) 1:2-5"},
		{NewBool(true, span(0, 4)), "Bool(true) 1:0-4"},
		{NewEndOfFile(position.StartOfFile()), "EndOfFile 1:0-1"},
	}

	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.expected {
			t.Errorf("expected=%q, got=%q", tt.expected, got)
		}
	}

	ident := NewIdentifier(id, span(5, 9))
	if got := ident.Describe(table); got != `Identifier("time") 1:5-9` {
		t.Errorf("expected=%q, got=%q", `Identifier("time") 1:5-9`, got)
	}
}

func TestTokenSummary(t *testing.T) {
	tests := []struct {
		tok      Token
		expected string
	}{
		{NewKeyword(KeywordLoadSample, span(0, 11)), "keyword 'load_sample'"},
		{NewOperator(OperatorEq, span(0, 2)), "operator '=='"},
		{NewPunctuator(PunctuatorRightBrace, span(0, 1)), "'}'"},
		{NewEndOfLine(span(0, 1)), "end of line"},
		{NewEndOfFile(position.StartOfFile()), "end of file"},
	}

	for _, tt := range tests {
		if got := tt.tok.Summary(); got != tt.expected {
			t.Errorf("expected=%q, got=%q", tt.expected, got)
		}
	}
}

func TestEmptyStreamGet(t *testing.T) {
	var stream TokenStream

	tok := stream.Get(5)
	if !tok.IsEOF() || tok.Location() != position.StartOfFile() {
		t.Errorf("expected EndOfFile at start of file, got %s", tok)
	}
	if _, ok := stream.Cursor(); ok {
		t.Error("empty stream must not produce a cursor")
	}
}

func TestStreamWithoutEOF(t *testing.T) {
	stream := NewTokenStream(NewInteger(1, span(0, 1)))

	if stream.Valid() {
		t.Error("stream without EndOfFile reported valid")
	}
	if _, ok := stream.Cursor(); ok {
		t.Error("stream without EndOfFile must not produce a cursor")
	}
}

func TestStreamCursorSaturates(t *testing.T) {
	eof := NewEndOfFile(position.Location{Line: 1, Column: 4, Offset: 4})
	stream := NewTokenStream(NewKeyword(KeywordWait, span(0, 4)), eof)

	cursor, ok := stream.Cursor()
	if !ok {
		t.Fatal("expected a cursor over a valid stream")
	}

	if !cursor.Peek().IsKeyword(KeywordWait) {
		t.Fatalf("expected Keyword(Wait), got %s", cursor.Peek())
	}
	if !cursor.Next().IsKeyword(KeywordWait) {
		t.Fatal("Next should return the peeked token")
	}

	for i := 0; i < 4; i++ {
		if got := cursor.Next(); got != eof {
			t.Fatalf("call %d: expected=%s, got=%s", i, eof, got)
		}
		if got := cursor.Peek(); got != eof {
			t.Fatalf("call %d: expected=%s, got=%s", i, eof, got)
		}
	}
	if cursor.Index() != stream.Len() {
		t.Errorf("cursor index moved past the end: %d", cursor.Index())
	}
}

func TestStreamTokensIsCopy(t *testing.T) {
	stream := NewTokenStream(NewEndOfFile(position.StartOfFile()))
	tokens := stream.Tokens()
	tokens[0] = NewInteger(9, span(0, 1))

	if !stream.Get(0).IsEOF() {
		t.Error("mutating Tokens() changed the stream")
	}
}

func TestKeywordLexemes(t *testing.T) {
	for text, kw := range keywords {
		if kw.Lexeme() != text {
			t.Errorf("expected=%q, got=%q", text, kw.Lexeme())
		}
		if got, ok := LookupKeyword(text); !ok || got != kw {
			t.Errorf("LookupKeyword(%q) = %v, %v", text, got, ok)
		}
	}
	if _, ok := LookupKeyword("true"); ok {
		t.Error("booleans are not keywords")
	}
}
