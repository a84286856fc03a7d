// SPDX-License-Identifier: Apache-2.0
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	_ "github.com/tliron/commonlog/simple"
)

func main() {
	cmd := newRootCmd(afero.NewOsFs())
	cmd.SetOut(color.Output)
	cmd.SetErr(color.Error)

	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}
