// SPDX-License-Identifier: Apache-2.0
package main

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	"github.com/tliron/glsp/server"

	"sigil/internal/lsp"
)

var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		verbose int
		debug   bool
	)

	cmd := &cobra.Command{
		Use:          "sigil-lsp",
		Short:        "Language server for .sig sources over stdio",
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Logs go to stderr; stdout carries the JSON-RPC stream.
			commonlog.Configure(verbose, nil)
			log := commonlog.GetLogger("sigil.lsp")

			handler := lsp.NewSigilHandler(afero.NewOsFs(), version).Protocol()
			s := server.NewServer(handler, lsp.Name, debug)

			log.Infof("starting %s language server %s", lsp.Name, version)
			if err := s.RunStdio(); err != nil {
				log.Errorf("language server stopped: %s", err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().CountVarP(&verbose, "verbose", "v", "increase log verbosity (repeatable)")
	cmd.Flags().BoolVar(&debug, "debug", false, "log raw protocol traffic")

	return cmd
}
