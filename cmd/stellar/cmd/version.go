package cmd

import (
	"github.com/spf13/cobra"

	"github.com/stellar-lang/stellar/internal/cli"
)

func newVersionCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.PrintVersion(cmd.OutOrStdout(), cli.ToolName, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output version in JSON format")
	return cmd
}
