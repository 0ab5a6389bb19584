// Package frontend runs the scanner and parser over source files and
// collects their failures as diagnostics.
package frontend

import (
	"context"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/stellar-lang/stellar/internal/ast"
	"github.com/stellar-lang/stellar/internal/diagnostic"
	stellarerrors "github.com/stellar-lang/stellar/internal/errors"
	"github.com/stellar-lang/stellar/internal/intern"
	"github.com/stellar-lang/stellar/internal/lexer"
	"github.com/stellar-lang/stellar/internal/parser"
	"github.com/stellar-lang/stellar/internal/position"
)

// Logger receives progress messages. *cli.Logger satisfies it.
type Logger interface {
	Debug(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}

// Result is the outcome of processing one source. Err holds the scan,
// parse or read failure; Tokens and Statements are set as far as the
// pipeline got.
type Result struct {
	Path       string
	Source     *position.SourceFile
	Tokens     lexer.TokenStream
	Statements []ast.Statement
	Err        error
}

// Failed reports whether the source could not be processed.
func (r *Result) Failed() bool {
	return r.Err != nil
}

// Diagnostic converts the failure to a diagnostic, or returns nil.
func (r *Result) Diagnostic() *diagnostic.Diagnostic {
	if r.Err == nil {
		return nil
	}
	return diagnostic.FromError(r.Err, r.Path)
}

// ScanSource scans source only.
func ScanSource(name, source string, table *intern.Table) *Result {
	result := &Result{Path: name, Source: position.NewSourceFile(name, source)}
	result.Tokens, result.Err = lexer.Scan(source, table)
	return result
}

// ParseSource scans and parses source.
func ParseSource(name, source string, table *intern.Table) *Result {
	result := ScanSource(name, source, table)
	if result.Err != nil {
		return result
	}
	result.Statements, result.Err = parser.Parse(result.Tokens)
	return result
}

// ReadSource loads path into a SourceFile.
func ReadSource(path string) (*position.SourceFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, stellarerrors.ReadFailed(path, err)
	}
	return position.NewSourceFile(path, string(data)), nil
}

// ScanFile reads and scans path.
func ScanFile(path string, table *intern.Table) *Result {
	src, err := ReadSource(path)
	if err != nil {
		return &Result{Path: path, Err: err}
	}
	return ScanSource(path, src.Content, table)
}

// ParseFile reads, scans and parses path.
func ParseFile(path string, table *intern.Table) *Result {
	src, err := ReadSource(path)
	if err != nil {
		return &Result{Path: path, Err: err}
	}
	return ParseSource(path, src.Content, table)
}

// Checker parses many files concurrently against one string table.
type Checker struct {
	Table  *intern.Table
	Jobs   int
	Logger Logger
}

// NewChecker creates a checker running at most jobs files at a time.
func NewChecker(table *intern.Table, jobs int) *Checker {
	if jobs <= 0 {
		jobs = 1
	}
	return &Checker{Table: table, Jobs: jobs, Logger: nopLogger{}}
}

// Check parses every path and returns the results in the order of paths.
// Per-file failures are reported in the results; the returned error is
// non-nil only when ctx is cancelled.
func (c *Checker) Check(ctx context.Context, paths []string) ([]*Result, error) {
	results := make([]*Result, len(paths))
	logger := c.Logger
	if logger == nil {
		logger = nopLogger{}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.Jobs)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			logger.Debug("checking %s", path)
			results[i] = ParseFile(path, c.Table)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Collect adds a diagnostic for every failed result to a new engine and
// returns it with the sources needed to render them.
func Collect(results []*Result) (*diagnostic.DiagnosticEngine, map[string]*position.SourceFile) {
	engine := diagnostic.NewDiagnosticEngine()
	sources := make(map[string]*position.SourceFile)

	for _, r := range results {
		if r.Source != nil {
			sources[r.Path] = r.Source
		}
		if d := r.Diagnostic(); d != nil {
			engine.AddDiagnostic(d)
		}
	}

	engine.SortDiagnostics()
	return engine, sources
}
