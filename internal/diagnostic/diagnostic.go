// Diagnostic reporting for the Stellar front end.
// Scan and parse errors are converted into Diagnostics, collected by a
// DiagnosticEngine and rendered with the offending source highlighted.

package diagnostic

import (
	"fmt"
	"sort"

	"github.com/stellar-lang/stellar/internal/position"
)

// DiagnosticLevel represents the severity level of a diagnostic message.
type DiagnosticLevel int

const (
	DiagnosticError DiagnosticLevel = iota
	DiagnosticWarning
	DiagnosticNote
)

func (dl DiagnosticLevel) String() string {
	switch dl {
	case DiagnosticError:
		return "error"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticNote:
		return "note"
	default:
		return "unknown"
	}
}

// DiagnosticCategory represents the front-end phase that produced a
// diagnostic.
type DiagnosticCategory int

const (
	DiagnosticLexical DiagnosticCategory = iota
	DiagnosticSyntax
	DiagnosticIO
)

func (dc DiagnosticCategory) String() string {
	switch dc {
	case DiagnosticLexical:
		return "lexical"
	case DiagnosticSyntax:
		return "syntax"
	case DiagnosticIO:
		return "io"
	default:
		return "unknown"
	}
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	File        string
	Code        string
	Title       string
	Message     string
	Suggestions []string
	Span        position.Span
	Level       DiagnosticLevel
	Category    DiagnosticCategory
}

// Location returns "file:line:column" for the start of the diagnostic.
func (d *Diagnostic) Location() string {
	file := d.File
	if file == "" {
		file = "<input>"
	}
	if !d.Span.IsValid() {
		return file
	}
	return fmt.Sprintf("%s:%s", file, d.Span.Start)
}

// String returns a single-line summary, e.g.
// "song.stl:3:0: error[P004]: expected '}'".
func (d *Diagnostic) String() string {
	return fmt.Sprintf("%s: %s[%s]: %s", d.Location(), d.Level, d.Code, d.Title)
}

// DiagnosticBuilder helps construct diagnostic messages with fluent API.
type DiagnosticBuilder struct {
	diagnostic *Diagnostic
}

// NewDiagnostic creates a new diagnostic builder.
func NewDiagnostic() *DiagnosticBuilder {
	return &DiagnosticBuilder{
		diagnostic: &Diagnostic{},
	}
}

func (db *DiagnosticBuilder) Error() *DiagnosticBuilder {
	db.diagnostic.Level = DiagnosticError

	return db
}

func (db *DiagnosticBuilder) Warning() *DiagnosticBuilder {
	db.diagnostic.Level = DiagnosticWarning

	return db
}

func (db *DiagnosticBuilder) Note() *DiagnosticBuilder {
	db.diagnostic.Level = DiagnosticNote

	return db
}

func (db *DiagnosticBuilder) Lexical() *DiagnosticBuilder {
	db.diagnostic.Category = DiagnosticLexical

	return db
}

func (db *DiagnosticBuilder) Syntax() *DiagnosticBuilder {
	db.diagnostic.Category = DiagnosticSyntax

	return db
}

func (db *DiagnosticBuilder) IO() *DiagnosticBuilder {
	db.diagnostic.Category = DiagnosticIO

	return db
}

func (db *DiagnosticBuilder) File(file string) *DiagnosticBuilder {
	db.diagnostic.File = file

	return db
}

func (db *DiagnosticBuilder) Code(code string) *DiagnosticBuilder {
	db.diagnostic.Code = code

	return db
}

func (db *DiagnosticBuilder) Title(title string) *DiagnosticBuilder {
	db.diagnostic.Title = title

	return db
}

func (db *DiagnosticBuilder) Message(message string) *DiagnosticBuilder {
	db.diagnostic.Message = message

	return db
}

func (db *DiagnosticBuilder) Span(span position.Span) *DiagnosticBuilder {
	db.diagnostic.Span = span

	return db
}

func (db *DiagnosticBuilder) Suggest(suggestion string) *DiagnosticBuilder {
	db.diagnostic.Suggestions = append(db.diagnostic.Suggestions, suggestion)

	return db
}

func (db *DiagnosticBuilder) Build() *Diagnostic {
	return db.diagnostic
}

// DiagnosticEngine collects diagnostics from several files. It is not safe
// for concurrent use.
type DiagnosticEngine struct {
	diagnostics []Diagnostic
}

// NewDiagnosticEngine creates an empty engine.
func NewDiagnosticEngine() *DiagnosticEngine {
	return &DiagnosticEngine{
		diagnostics: make([]Diagnostic, 0),
	}
}

// AddDiagnostic adds a diagnostic to the engine.
func (de *DiagnosticEngine) AddDiagnostic(diagnostic *Diagnostic) {
	de.diagnostics = append(de.diagnostics, *diagnostic)
}

// GetDiagnostics returns all diagnostics.
func (de *DiagnosticEngine) GetDiagnostics() []Diagnostic {
	return de.diagnostics
}

// GetErrors returns only error-level diagnostics.
func (de *DiagnosticEngine) GetErrors() []Diagnostic {
	errors := make([]Diagnostic, 0)

	for _, diag := range de.diagnostics {
		if diag.Level == DiagnosticError {
			errors = append(errors, diag)
		}
	}

	return errors
}

// HasErrors returns true if there are any errors.
func (de *DiagnosticEngine) HasErrors() bool {
	return len(de.GetErrors()) > 0
}

// SortDiagnostics sorts diagnostics by file, position and severity.
func (de *DiagnosticEngine) SortDiagnostics() {
	sort.SliceStable(de.diagnostics, func(i, j int) bool {
		a, b := de.diagnostics[i], de.diagnostics[j]

		if a.File != b.File {
			return a.File < b.File
		}

		if a.Span.Start.Line != b.Span.Start.Line {
			return a.Span.Start.Line < b.Span.Start.Line
		}

		if a.Span.Start.Column != b.Span.Start.Column {
			return a.Span.Start.Column < b.Span.Start.Column
		}

		return a.Level < b.Level
	})
}

// Summary returns e.g. "2 errors in 1 of 3 files" or "no issues found in 3 files".
func (de *DiagnosticEngine) Summary(fileCount int) string {
	errorCount := len(de.GetErrors())
	if errorCount == 0 {
		return fmt.Sprintf("no issues found in %s", plural(fileCount, "file"))
	}

	failed := make(map[string]struct{})
	for _, diag := range de.GetErrors() {
		failed[diag.File] = struct{}{}
	}

	return fmt.Sprintf("%s in %d of %s",
		plural(errorCount, "error"), len(failed), plural(fileCount, "file"))
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
