package main

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"sigil/internal/compiler"
	"sigil/internal/diagnostics"
	"sigil/internal/parser"
)

func newTokensCmd(fs afero.Fs) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file.sig>",
		Short: "Print the token stream of a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(fs, cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0])
		},
	}
}

func runTokens(fs afero.Fs, stdout, stderr io.Writer, path string) error {
	c := compiler.New(fs)
	if err := c.ValidatePath(path); err != nil {
		return err
	}

	source, err := c.ReadSource(path)
	if err != nil {
		return err
	}

	tokens, err := parser.NewScanner(source).ScanTokens()
	if err != nil {
		reporter := diagnostics.NewReporter(path, source)
		fmt.Fprint(stderr, reporter.Format(diagnostics.FromError(path, err)))
		return errReported
	}

	for _, tok := range tokens {
		fmt.Fprintln(stdout, tok)
	}
	return nil
}
