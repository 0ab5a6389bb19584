// Package cmd implements the stellar command line.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/stellar-lang/stellar/internal/cli"
	"github.com/stellar-lang/stellar/internal/diagnostic"
	stellarerrors "github.com/stellar-lang/stellar/internal/errors"
	"github.com/stellar-lang/stellar/internal/format"
	"github.com/stellar-lang/stellar/internal/frontend"
	"github.com/stellar-lang/stellar/internal/intern"
)

// ErrFailed is returned by a command that has already reported why it
// failed. main exits with status 1 without printing it again.
var ErrFailed = errors.New("stellar: command failed")

// options holds the global flags.
type options struct {
	configFile string
	verbose    bool
	debug      bool
	format     string
	color      string
}

// environment is shared by all commands once flags and configuration have
// been resolved.
type environment struct {
	config *cli.Config
	logger *cli.Logger
	table  *intern.Table
	style  format.Style
}

// NewRootCommand builds the stellar command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}
	env := &environment{}

	root := &cobra.Command{
		Use:   cli.ToolName,
		Short: "Scanner and parser for the Stellar music language",
		Long: `stellar reads Stellar sources and reports their tokens, syntax trees
and errors.

Commands:
  scan     - print the token stream of a file
  parse    - print the statements of a file
  check    - check many files concurrently
  watch    - re-check a file whenever it changes
  repl     - parse statements interactively
  version  - print version information`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return env.load(cmd, opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "config file (default: stellar.toml or stellar.yaml in the current directory)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	flags.BoolVar(&opts.debug, "debug", false, "debug output")
	flags.StringVarP(&opts.format, "format", "f", "text", "output format: text, json or yaml")
	flags.StringVar(&opts.color, "color", "auto", "color diagnostics: auto, always or never")

	root.AddCommand(
		newScanCmd(env),
		newParseCmd(env),
		newCheckCmd(env),
		newWatchCmd(env),
		newReplCmd(env),
		newVersionCmd(),
	)

	return root
}

// Execute runs the stellar command with os.Args.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// load resolves the configuration file, applies flag overrides and sets
// up logging.
func (e *environment) load(cmd *cobra.Command, opts *options) error {
	path := opts.configFile
	if path == "" {
		path = cli.FindConfig(".")
	} else if _, err := os.Stat(path); err != nil {
		return stellarerrors.ReadFailed(path, err)
	}

	config, err := cli.LoadConfig(path)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("verbose") {
		config.Verbose = opts.verbose
	}
	if flags.Changed("debug") {
		config.Debug = opts.debug
	}
	if flags.Changed("format") {
		config.Format = opts.format
	}
	if flags.Changed("color") {
		config.Color = opts.color
	}
	if err := config.Validate(); err != nil {
		return err
	}

	style, err := format.ParseStyle(config.Format)
	if err != nil {
		return err
	}

	e.config = config
	e.logger = cli.NewLoggerTo(cmd.ErrOrStderr(), config.Verbose, config.Debug)
	e.table = intern.Default()
	e.style = style

	if config.ConfigFile != "" {
		e.logger.Info("using config %s", config.ConfigFile)
	}
	e.logger.Debug("format=%s color=%s jobs=%d", config.Format, config.Color, config.Jobs)

	return nil
}

func (e *environment) renderer(w io.Writer) *diagnostic.Renderer {
	f, _ := w.(*os.File)
	return diagnostic.NewRenderer(w, cli.ColorEnabled(e.config.Color, f), 1)
}

// fail renders the failure of result to stderr and returns ErrFailed.
func (e *environment) fail(cmd *cobra.Command, result *frontend.Result) error {
	w := cmd.ErrOrStderr()
	fmt.Fprint(w, e.renderer(w).Render(result.Diagnostic(), result.Source))
	return ErrFailed
}
