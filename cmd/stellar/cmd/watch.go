package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/stellar-lang/stellar/internal/frontend"
	"github.com/stellar-lang/stellar/internal/watch"
)

func newWatchCmd(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "watch FILE...",
		Short: "Re-check files whenever they change",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := watch.New(env.config.DebounceDuration(), args...)
			if err != nil {
				return err
			}
			defer w.Close()

			out := cmd.OutOrStdout()
			for _, path := range w.Files() {
				env.report(out, path)
			}
			env.logger.Info("watching %d files (debounce %s)", len(args), env.config.DebounceDuration())

			err = w.Run(cmd.Context(), func(ev watch.Event) {
				env.logger.Debug("%s %s", ev.Op, ev.Path)
				env.report(out, ev.Path)
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
}

// report parses path and prints either a one line summary or its
// diagnostic.
func (e *environment) report(w io.Writer, path string) {
	result := frontend.ParseFile(path, e.table)
	if result.Failed() {
		fmt.Fprint(w, e.renderer(w).Render(result.Diagnostic(), result.Source))
		return
	}
	fmt.Fprintf(w, "%s: ok (%d statements)\n", path, len(result.Statements))
}
