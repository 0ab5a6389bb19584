package cmd

import (
	"github.com/spf13/cobra"

	"github.com/stellar-lang/stellar/internal/format"
	"github.com/stellar-lang/stellar/internal/frontend"
)

func newParseCmd(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "parse FILE",
		Short: "Print the statements of a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env.logger.Debug("parsing %s", args[0])

			result := frontend.ParseFile(args[0], env.table)
			if result.Failed() {
				return env.fail(cmd, result)
			}
			env.logger.Info("%s: %d statements", args[0], len(result.Statements))

			return format.Write(cmd.OutOrStdout(), format.Statements(result.Statements, env.table), env.style)
		},
	}
}
