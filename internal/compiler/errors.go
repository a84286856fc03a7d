package compiler

import (
	"errors"
	"fmt"

	"sigil/internal/parser"
)

type ErrorKind int

const (
	IOError ErrorKind = iota
	LexError
	ParseError
)

func (k ErrorKind) String() string {
	switch k {
	case IOError:
		return "IOError"
	case LexError:
		return "LexError"
	case ParseError:
		return "ParseError"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// CompilerError reports which stage failed for which path. Err is the stage's
// own error, reachable with errors.As.
type CompilerError struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *CompilerError) Error() string {
	switch e.Kind {
	case IOError:
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("%s:%v", e.Path, e.Err)
	}
}

func (e *CompilerError) Unwrap() error {
	return e.Err
}

// Position returns the source position of a lex or parse failure. ok is false
// for I/O failures, which have no position.
func (e *CompilerError) Position() (pos parser.Position, ok bool) {
	var scanErr *parser.ScanError
	if errors.As(e.Err, &scanErr) {
		return scanErr.Position, true
	}
	var parseErr *parser.ParseError
	if errors.As(e.Err, &parseErr) {
		return parseErr.Position, true
	}
	return parser.Position{}, false
}

func classify(path string, err error) *CompilerError {
	var scanErr *parser.ScanError
	if errors.As(err, &scanErr) {
		return &CompilerError{Kind: LexError, Path: path, Err: err}
	}
	var parseErr *parser.ParseError
	if errors.As(err, &parseErr) {
		return &CompilerError{Kind: ParseError, Path: path, Err: err}
	}
	return &CompilerError{Kind: IOError, Path: path, Err: err}
}
