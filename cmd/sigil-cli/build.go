package main

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"sigil/internal/compiler"
	"sigil/internal/diagnostics"
	"sigil/internal/grammar"
	"sigil/internal/semantic"
)

type buildOptions struct {
	printAST bool
	verify   bool
}

func newBuildCmd(fs afero.Fs) *cobra.Command {
	var opts buildOptions

	cmd := &cobra.Command{
		Use:   "build <file.sig>",
		Short: "Parse and check a source file",
		Long: `Parses the file, runs name resolution and prints diagnostics.
Exits with status 1 when the file has errors.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(fs, cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.printAST, "ast", false, "print the parsed document")
	cmd.Flags().BoolVar(&opts.verify, "verify", false, "cross-check the parser against the reference grammar")

	return cmd
}

func runBuild(fs afero.Fs, stdout, stderr io.Writer, path string, opts buildOptions) error {
	startTime := time.Now()
	c := compiler.New(fs)

	if err := c.ValidatePath(path); err != nil {
		return err
	}

	// Source is only needed to render diagnostics; a read failure here
	// resurfaces from Compile below.
	source, _ := c.ReadSource(path)
	reporter := diagnostics.NewReporter(path, source)

	fail := func() error {
		color.New(color.FgRed).Fprintf(stderr, "Compilation failed after %s\n", formatDuration(time.Since(startTime)))
		return errReported
	}

	doc, err := c.Compile(path)
	if err != nil {
		fmt.Fprint(stderr, reporter.Format(diagnostics.FromError(path, err)))
		return fail()
	}

	diags := semantic.NewAnalyzer().Analyze(doc)
	fmt.Fprint(stderr, reporter.FormatAll(diags))
	if diagnostics.HasErrors(diags) {
		return fail()
	}

	if opts.verify {
		reference, err := grammar.ParseDocument(path, source)
		if err != nil {
			fmt.Fprintf(stderr, "reference grammar rejected %s: %s\n", path, err)
			return fail()
		}
		if reference.String() != doc.String() {
			fmt.Fprintf(stderr, "reference grammar disagrees on %s:\n%s\n", path, reference)
			return fail()
		}
	}

	if opts.printAST {
		fmt.Fprintln(stdout, doc.String())
	}

	color.New(color.FgGreen).Fprintf(stdout, "Successfully processed %s in %s\n", path, formatDuration(time.Since(startTime)))
	return nil
}
