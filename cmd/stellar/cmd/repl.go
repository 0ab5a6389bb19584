package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/stellar-lang/stellar/internal/cli"
	"github.com/stellar-lang/stellar/internal/format"
	"github.com/stellar-lang/stellar/internal/frontend"
	"github.com/stellar-lang/stellar/internal/parser"
)

const (
	promptMain  = "stellar> "
	promptCont  = "     ... "
	replSource  = "<repl>"
	historyFile = ".stellar_history"
)

func newReplCmd(env *environment) *cobra.Command {
	var showTokens bool

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Parse statements interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := &session{env: env, out: cmd.OutOrStdout(), showTokens: showTokens}
			return s.run()
		},
	}

	cmd.Flags().BoolVar(&showTokens, "tokens", false, "also print the token stream of each input")
	return cmd
}

// session accumulates input lines until they form a complete program.
type session struct {
	env        *environment
	out        io.Writer
	showTokens bool
	pending    strings.Builder
}

func (s *session) run() error {
	fmt.Fprintf(s.out, "Stellar REPL v%s\n", cli.Version)
	fmt.Fprintln(s.out, "Type :help for help, :quit to exit")

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}
	defer func() {
		if histPath == "" {
			return
		}
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(s.prompt())
		if errors.Is(err, liner.ErrPromptAborted) {
			s.pending.Reset()
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
			return nil
		}
		if err != nil {
			return err
		}

		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
		if !s.feed(line) {
			return nil
		}
	}
}

func (s *session) prompt() string {
	if s.pending.Len() > 0 {
		return promptCont
	}
	return promptMain
}

// feed adds one line of input. Input that fails only because it ended
// early is kept and more lines are requested; an empty continuation line
// submits it as is. feed returns false when the session should end.
func (s *session) feed(line string) bool {
	if s.pending.Len() == 0 {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			return true
		}
		if strings.HasPrefix(trimmed, ":") {
			return s.command(trimmed)
		}
	} else {
		s.pending.WriteByte('\n')
	}
	s.pending.WriteString(line)

	result := frontend.ParseSource(replSource, s.pending.String(), s.env.table)
	if incomplete(result.Err) && strings.TrimSpace(line) != "" {
		return true
	}

	s.pending.Reset()
	s.print(result)
	return true
}

// incomplete reports whether err is a parse error caused by the end of
// input.
func incomplete(err error) bool {
	var parseErr *parser.ParseError
	return errors.As(err, &parseErr) && parseErr.AtEndOfFile()
}

func (s *session) print(result *frontend.Result) {
	if result.Failed() {
		fmt.Fprint(s.out, s.env.renderer(s.out).Render(result.Diagnostic(), result.Source))
		return
	}

	if s.showTokens {
		if err := format.Write(s.out, format.Tokens(result.Tokens, s.env.table), s.env.style); err != nil {
			s.env.logger.Error("%v", err)
		}
	}
	if err := format.Write(s.out, format.Statements(result.Statements, s.env.table), s.env.style); err != nil {
		s.env.logger.Error("%v", err)
	}
}

func (s *session) command(input string) bool {
	parts := strings.Fields(input)

	switch parts[0] {
	case ":quit", ":q", ":exit":
		return false
	case ":help", ":h":
		fmt.Fprintln(s.out, "Enter Stellar statements. Unfinished input continues on the next line;")
		fmt.Fprintln(s.out, "an empty line submits it as is.")
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, "  :help, :h          show this help")
		fmt.Fprintln(s.out, "  :quit, :q, :exit   leave the REPL")
		fmt.Fprintln(s.out, "  :tokens            toggle printing of tokens")
		fmt.Fprintln(s.out, "  :format <style>    switch output to text, json or yaml")
	case ":tokens":
		s.showTokens = !s.showTokens
		fmt.Fprintf(s.out, "tokens %s\n", onOff(s.showTokens))
	case ":format":
		if len(parts) < 2 {
			fmt.Fprintf(s.out, "format is %s\n", s.env.style)
			break
		}
		style, err := format.ParseStyle(parts[1])
		if err != nil {
			fmt.Fprintln(s.out, err)
			break
		}
		s.env.style = style
	default:
		fmt.Fprintf(s.out, "unknown command %s, type :help for help\n", parts[0])
	}
	return true
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
