package main

import (
	"github.com/spf13/cobra"

	"sigil/repl"
)

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive read-parse-print loop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return repl.Start(cmd.OutOrStdout())
		},
	}
}
