package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stellar-lang/stellar/internal/diagnostic"
	"github.com/stellar-lang/stellar/internal/format"
	"github.com/stellar-lang/stellar/internal/frontend"
)

func newCheckCmd(env *environment) *cobra.Command {
	var jobs int

	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Check many source files concurrently",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			checker := frontend.NewChecker(env.table, env.config.Jobs)
			if cmd.Flags().Changed("jobs") {
				checker = frontend.NewChecker(env.table, jobs)
			}
			checker.Logger = env.logger
			env.logger.Info("checking %d files with %d jobs", len(args), checker.Jobs)

			results, err := checker.Check(cmd.Context(), args)
			if err != nil {
				return err
			}

			engine, sources := frontend.Collect(results)
			out := cmd.OutOrStdout()

			if env.style == format.StyleText {
				fmt.Fprint(out, env.renderer(out).RenderAll(engine, sources, len(args)))
			} else if err := format.Write(out, diagnosticNodes(engine), env.style); err != nil {
				return err
			}

			if engine.HasErrors() {
				return ErrFailed
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "number of files checked at once (default from config)")
	return cmd
}

func diagnosticNodes(engine *diagnostic.DiagnosticEngine) []*format.Node {
	diags := engine.GetDiagnostics()
	nodes := make([]*format.Node, len(diags))
	for i, d := range diags {
		node := &format.Node{
			Kind:  d.Level.String(),
			Value: d.Code,
			Span:  d.Location(),
			Children: []*format.Node{
				{Kind: "title", Value: d.Title},
			},
		}
		if d.Message != "" {
			node.Children = append(node.Children, &format.Node{Kind: "message", Value: d.Message})
		}
		for _, s := range d.Suggestions {
			node.Children = append(node.Children, &format.Node{Kind: "help", Value: s})
		}
		nodes[i] = node
	}
	return nodes
}
