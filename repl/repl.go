// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
	"github.com/tliron/commonlog"

	"sigil/internal/diagnostics"
	"sigil/internal/parser"
)

const PROMPT = ">> "

const replFile = "<repl>"

var log = commonlog.GetLogger("sigil.repl")

var historyPath = filepath.Join(xdg.DataHome, "sigil", ".sigil_history")

// Eval parses one line of input as a document. It returns the printed AST,
// or the rendered diagnostic and false when the input does not parse.
// Input starting with ":tokens " is scanned and its tokens listed instead.
func Eval(input string) (string, bool) {
	if src, ok := strings.CutPrefix(input, ":tokens "); ok {
		tokens, err := parser.NewScanner(src).ScanTokens()
		if err != nil {
			return render(src, err), false
		}
		lines := make([]string, len(tokens))
		for i, tok := range tokens {
			lines[i] = tok.String()
		}
		return strings.Join(lines, "\n"), true
	}

	doc, err := parser.ParseSource(replFile, input)
	if err != nil {
		return render(input, err), false
	}
	if len(doc.Declarations) == 0 {
		return "", true
	}
	return doc.String(), true
}

func render(source string, err error) string {
	reporter := diagnostics.NewReporter(replFile, source)
	return strings.TrimRight(reporter.Format(diagnostics.FromError(replFile, err)), "\n")
}

func isQuit(line string) bool {
	switch strings.TrimSpace(line) {
	case ":q", ":quit", ":exit":
		return true
	}
	return false
}

// Run reads lines from in until end of input or a quit command, writing
// results to out.
func Run(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := scanner.Text()
		if isQuit(line) {
			return nil
		}

		if result, _ := Eval(line); result != "" {
			fmt.Fprintln(out, result)
		}
	}
}

// Start runs the loop on stdin, with line editing and persistent history
// when stdin is a terminal.
func Start(out io.Writer) error {
	if !isatty.IsTerminal(os.Stdin.Fd()) || !liner.TerminalSupported() {
		return Run(os.Stdin, out)
	}
	return runInteractive(out)
}

func runInteractive(out io.Writer) error {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	defer func() {
		saveHistory(line)
		line.Close()
	}()

	if f, err := os.Open(historyPath); err == nil {
		if _, err := line.ReadHistory(f); err != nil {
			log.Warningf("reading history: %s", err)
		}
		f.Close()
	}

	for {
		input, err := line.Prompt(PROMPT)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(out)
			return nil
		}
		if err != nil {
			return err
		}
		if isQuit(input) {
			return nil
		}
		if strings.TrimSpace(input) != "" {
			line.AppendHistory(input)
		}

		if result, _ := Eval(input); result != "" {
			fmt.Fprintln(out, result)
		}
	}
}

func saveHistory(line *liner.State) {
	if err := os.MkdirAll(filepath.Dir(historyPath), 0o755); err != nil {
		log.Warningf("creating history directory: %s", err)
		return
	}
	f, err := os.Create(historyPath)
	if err != nil {
		log.Warningf("writing history: %s", err)
		return
	}
	defer f.Close()
	if _, err := line.WriteHistory(f); err != nil {
		log.Warningf("writing history: %s", err)
	}
}
