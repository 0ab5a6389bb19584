package cmd

import (
	"github.com/spf13/cobra"

	"github.com/stellar-lang/stellar/internal/format"
	"github.com/stellar-lang/stellar/internal/frontend"
)

func newScanCmd(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "scan FILE",
		Short: "Print the token stream of a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env.logger.Debug("scanning %s", args[0])

			result := frontend.ScanFile(args[0], env.table)
			if result.Failed() {
				return env.fail(cmd, result)
			}

			return format.Write(cmd.OutOrStdout(), format.Tokens(result.Tokens, env.table), env.style)
		},
	}
}
