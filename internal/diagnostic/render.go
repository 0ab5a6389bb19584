package diagnostic

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/stellar-lang/stellar/internal/position"
)

// Colors
var (
	colorError   = lipgloss.Color("#EF4444")
	colorWarning = lipgloss.Color("#F59E0B")
	colorNote    = lipgloss.Color("#10B981")
	colorMuted   = lipgloss.Color("#6B7280")
	colorAccent  = lipgloss.Color("#7C3AED")
)

// Renderer formats diagnostics for a terminal. With color disabled the
// output is plain text.
type Renderer struct {
	color   bool
	context int

	levelStyles map[DiagnosticLevel]lipgloss.Style
	titleStyle  lipgloss.Style
	mutedStyle  lipgloss.Style
	helpStyle   lipgloss.Style
}

// NewRenderer creates a renderer writing to w. context is the number of
// source lines shown around a highlighted span.
func NewRenderer(w io.Writer, color bool, context int) *Renderer {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Renderer{
		color:   color,
		context: context,
		levelStyles: map[DiagnosticLevel]lipgloss.Style{
			DiagnosticError:   r.NewStyle().Bold(true).Foreground(colorError),
			DiagnosticWarning: r.NewStyle().Bold(true).Foreground(colorWarning),
			DiagnosticNote:    r.NewStyle().Bold(true).Foreground(colorNote),
		},
		titleStyle: r.NewStyle().Bold(true),
		mutedStyle: r.NewStyle().Foreground(colorMuted),
		helpStyle:  r.NewStyle().Foreground(colorAccent),
	}
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return s.Render(text)
}

// Render formats diag. When source is non-nil the spanned lines are shown
// with carets under the offending text.
//
//	error[P004]: expected '}'
//	 --> song.stl:3:0
//	   2 |   play kick
//	     |   ^
//	  = expected '}', found end of file
//	  help: close the block with '}'
func (r *Renderer) Render(diag *Diagnostic, source *position.SourceFile) string {
	var sb strings.Builder

	header := fmt.Sprintf("%s[%s]", diag.Level, diag.Code)
	sb.WriteString(r.style(r.levelStyles[diag.Level], header))
	sb.WriteString(r.style(r.titleStyle, ": "+diag.Title))
	sb.WriteString("\n")

	sb.WriteString(r.style(r.mutedStyle, " --> "))
	sb.WriteString(diag.Location())
	sb.WriteString("\n")

	if source != nil && diag.Span.IsValid() {
		highlighted := position.NewSpanHighlighter(source, r.context).HighlightSpan(diag.Span)
		for _, line := range strings.SplitAfter(highlighted, "\n") {
			if line == "" {
				continue
			}
			if strings.HasPrefix(line, "     | ") {
				sb.WriteString(r.style(r.levelStyles[diag.Level], strings.TrimSuffix(line, "\n")))
				sb.WriteString("\n")
				continue
			}
			sb.WriteString(line)
		}
	}

	if diag.Message != "" {
		sb.WriteString(r.style(r.mutedStyle, "  = "))
		sb.WriteString(diag.Message)
		sb.WriteString("\n")
	}

	for _, suggestion := range diag.Suggestions {
		sb.WriteString(r.style(r.helpStyle, "  help: "))
		sb.WriteString(suggestion)
		sb.WriteString("\n")
	}

	return sb.String()
}

// RenderAll renders every diagnostic of the engine, sorted, followed by a
// summary line. sources maps file names to their contents.
func (r *Renderer) RenderAll(engine *DiagnosticEngine, sources map[string]*position.SourceFile, fileCount int) string {
	engine.SortDiagnostics()

	var sb strings.Builder
	for _, diag := range engine.GetDiagnostics() {
		sb.WriteString(r.Render(&diag, sources[diag.File]))
		sb.WriteString("\n")
	}

	summary := engine.Summary(fileCount)
	if engine.HasErrors() {
		sb.WriteString(r.style(r.levelStyles[DiagnosticError], summary))
	} else {
		sb.WriteString(r.style(r.levelStyles[DiagnosticNote], summary))
	}
	sb.WriteString("\n")

	return sb.String()
}
