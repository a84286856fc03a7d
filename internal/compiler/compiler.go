// Package compiler drives a source file through the scanner and parser.
package compiler

import (
	"bufio"
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"github.com/tliron/commonlog"

	"sigil/internal/ast"
	"sigil/internal/parser"
)

var log = commonlog.GetLogger("sigil.compiler")

// Compiler reads sources from a filesystem. The zero value is not usable;
// construct one with New.
type Compiler struct {
	fs afero.Fs
}

func New(fs afero.Fs) *Compiler {
	return &Compiler{fs: fs}
}

// Compile parses the file at path on the OS filesystem.
func Compile(path string) (*ast.Document, error) {
	return New(afero.NewOsFs()).Compile(path)
}

// Compile reads path and returns its Document. Every failure is a
// *CompilerError wrapping the stage error.
func (c *Compiler) Compile(path string) (*ast.Document, error) {
	log.Debugf("compiling %s", path)

	f, err := c.fs.Open(path)
	if err != nil {
		return nil, classify(path, err)
	}
	defer f.Close()

	doc, err := parser.ParseReader(path, bufio.NewReader(f))
	if err != nil {
		cerr := classify(path, err)
		log.Debugf("%s failed: %s", cerr.Kind, cerr)
		return nil, cerr
	}

	log.Debugf("parsed %d declarations from %s", len(doc.Declarations), path)
	return doc, nil
}

// ReadSource returns the file contents for diagnostics rendering.
func (c *Compiler) ReadSource(path string) (string, error) {
	data, err := afero.ReadFile(c.fs, path)
	if err != nil {
		return "", classify(path, err)
	}
	return string(data), nil
}

// ValidatePath checks that path is non-empty, exists and is a regular file.
func (c *Compiler) ValidatePath(path string) error {
	if path == "" {
		return errors.New("no source file given")
	}

	info, err := c.fs.Stat(path)
	if err != nil {
		return classify(path, err)
	}
	if !info.Mode().IsRegular() {
		return classify(path, fmt.Errorf("not a regular file"))
	}
	return nil
}
