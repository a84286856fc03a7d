// SPDX-License-Identifier: GPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"sigil/repl"
)

func main() {
	commonlog.Configure(0, nil)

	name := "there"
	if currentUser, err := user.Current(); err == nil {
		name = currentUser.Username
	}

	fmt.Printf("Welcome to the sigil REPL, %s! Type :quit to leave.\n", name)
	if err := repl.Start(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
