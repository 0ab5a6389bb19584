package diagnostic

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"github.com/stellar-lang/stellar/internal/intern"
	"github.com/stellar-lang/stellar/internal/lexer"
	"github.com/stellar-lang/stellar/internal/parser"
	"github.com/stellar-lang/stellar/internal/position"
)

// frontEndError runs the scanner and parser over input and returns the
// first error.
func frontEndError(t *testing.T, input string) error {
	t.Helper()

	stream, err := lexer.Scan(input, intern.NewTable())
	if err != nil {
		return err
	}
	if _, err := parser.Parse(stream); err != nil {
		return err
	}
	t.Fatalf("expected %q to fail", input)
	return nil
}

func TestFromErrorCodes(t *testing.T) {
	tests := []struct {
		input    string
		code     string
		category DiagnosticCategory
	}{
		{"!", CodeUnexpectedCharacter, DiagnosticLexical},
		{`"\q"`, CodeInvalidEscapeSequence, DiagnosticLexical},
		{`"open`, CodeUnterminatedString, DiagnosticLexical},
		{"99999999999999999999", CodeInvalidNumber, DiagnosticLexical},
		{"*", CodeExpectedExpression, DiagnosticSyntax},
		{"sequence {}", CodeExpectedIdentifier, DiagnosticSyntax},
		{"sequence s {", CodeExpectedPunctuation, DiagnosticSyntax},
		{"let x 1", CodeExpectedOperator, DiagnosticSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			diag := FromError(frontEndError(t, tt.input), "song.stl")

			if diag.Code != tt.code {
				t.Errorf("expected=%q, got=%q", tt.code, diag.Code)
			}
			if diag.Category != tt.category {
				t.Errorf("expected=%q, got=%q", tt.category, diag.Category)
			}
			if diag.Level != DiagnosticError {
				t.Errorf("expected error level, got %s", diag.Level)
			}
			if diag.File != "song.stl" {
				t.Errorf("expected=%q, got=%q", "song.stl", diag.File)
			}
			if !diag.Span.IsValid() {
				t.Errorf("expected a valid span, got %v", diag.Span)
			}
			if diag.Title == "" || diag.Message == "" {
				t.Errorf("incomplete diagnostic: %+v", diag)
			}
		})
	}
}

func TestFromErrorInvalidTokenStream(t *testing.T) {
	_, err := parser.Parse(lexer.NewTokenStream())
	diag := FromError(err, "")

	if diag.Code != CodeInvalidTokenStream {
		t.Errorf("expected=%q, got=%q", CodeInvalidTokenStream, diag.Code)
	}
}

func TestFromErrorWrapped(t *testing.T) {
	wrapped := fmt.Errorf("loading song.stl: %w", frontEndError(t, "play ["))
	diag := FromError(wrapped, "song.stl")

	if diag.Code != CodeExpectedExpression {
		t.Errorf("expected=%q, got=%q", CodeExpectedExpression, diag.Code)
	}
}

func TestFromErrorIO(t *testing.T) {
	diag := FromError(fs.ErrNotExist, "missing.stl")

	if diag.Code != CodeIO || diag.Category != DiagnosticIO {
		t.Errorf("expected IO diagnostic, got %s", diag)
	}
	if diag.Location() != "missing.stl" {
		t.Errorf("expected=%q, got=%q", "missing.stl", diag.Location())
	}
}

func TestBuilder(t *testing.T) {
	span := position.NewSpan(position.Location{Line: 2, Column: 4, Offset: 10}, position.Location{Line: 2, Column: 6, Offset: 12})
	diag := NewDiagnostic().
		Warning().
		Syntax().
		File("a.stl").
		Code("P999").
		Title("something odd").
		Message("details").
		Span(span).
		Suggest("first").
		Suggest("second").
		Build()

	if got := diag.String(); got != "a.stl:2:4: warning[P999]: something odd" {
		t.Errorf("expected=%q, got=%q", "a.stl:2:4: warning[P999]: something odd", got)
	}
	if len(diag.Suggestions) != 2 {
		t.Errorf("expected 2 suggestions, got %d", len(diag.Suggestions))
	}
}

func TestRenderPlain(t *testing.T) {
	source := "wait 1 ?"
	diag := FromError(frontEndError(t, source), "")

	var buf bytes.Buffer
	r := NewRenderer(&buf, false, 0)
	got := r.Render(diag, position.NewSourceFile("", source))

	expected := strings.Join([]string{
		"error[S001]: unexpected character",
		" --> <input>:1:7",
		"   1 | wait 1 ?",
		"     |        ^",
		"  = '?' cannot start a token",
		"",
	}, "\n")
	if got != expected {
		t.Errorf("expected:\n%s\ngot:\n%s", expected, got)
	}
}

func TestRenderUnclosedBlock(t *testing.T) {
	source := "sequence s {\n  play a\n"
	diag := FromError(frontEndError(t, source), "song.stl")

	r := NewRenderer(&bytes.Buffer{}, false, 1)
	got := r.Render(diag, position.NewSourceFile("song.stl", source))

	for _, want := range []string{
		"error[P004]: expected '}'",
		" --> song.stl:3:0",
		"   2 |   play a",
		"   3 | \n     | ^",
		"  = expected '}', found end of file",
		"  help: close the block with '}'",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output should contain %q, got:\n%s", want, got)
		}
	}
}

func TestRenderColor(t *testing.T) {
	source := "!"
	diag := FromError(frontEndError(t, source), "")

	r := NewRenderer(&bytes.Buffer{}, true, 0)
	got := r.Render(diag, position.NewSourceFile("", source))

	if !strings.Contains(got, "\x1b[") {
		t.Errorf("expected ANSI escapes in colored output, got %q", got)
	}
	if !strings.Contains(got, "S001") {
		t.Errorf("expected code in output, got %q", got)
	}
}

func TestEngine(t *testing.T) {
	engine := NewDiagnosticEngine()
	if engine.HasErrors() {
		t.Fatal("new engine reports errors")
	}
	if got := engine.Summary(1); got != "no issues found in 1 file" {
		t.Errorf("expected=%q, got=%q", "no issues found in 1 file", got)
	}

	engine.AddDiagnostic(FromError(frontEndError(t, "play\n!"), "b.stl"))
	engine.AddDiagnostic(FromError(frontEndError(t, "}"), "a.stl"))
	engine.AddDiagnostic(FromError(errors.New("permission denied"), "c.stl"))

	engine.SortDiagnostics()
	files := make([]string, 0, 3)
	for _, diag := range engine.GetDiagnostics() {
		files = append(files, diag.File)
	}
	if strings.Join(files, ",") != "a.stl,b.stl,c.stl" {
		t.Errorf("unexpected order: %v", files)
	}

	if got := engine.Summary(4); got != "3 errors in 3 of 4 files" {
		t.Errorf("expected=%q, got=%q", "3 errors in 3 of 4 files", got)
	}

	out := NewRenderer(&bytes.Buffer{}, false, 0).RenderAll(engine, nil, 4)
	if !strings.HasSuffix(out, "3 errors in 3 of 4 files\n") {
		t.Errorf("RenderAll should end with the summary, got:\n%s", out)
	}
}
