package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

// errReported marks failures whose diagnostics were already written.
var errReported = errors.New("compilation failed")

func newRootCmd(fs afero.Fs) *cobra.Command {
	var verbose int

	root := &cobra.Command{
		Use:   "sigil-cli",
		Short: "Front-end tools for .sig sources",
		Long: `sigil-cli scans and parses .sig sources: event declarations,
constant bindings and state-transition functions.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbose, nil)
		},
	}

	root.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase log verbosity (repeatable)")

	root.AddCommand(newBuildCmd(fs))
	root.AddCommand(newTokensCmd(fs))
	root.AddCommand(newReplCmd())

	return root
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
