package ptsd

import (
	"fmt"

	"github.com/ava12/ptsd/source"
)

// LexError reports a lexical failure: an unrecognizable character or a
// disallowed reserved word used as an identifier. Fatal to the parse in
// progress; there is no recovery.
type LexError struct {
	Message string
	Span    source.Span
}

// NewLexError builds a LexError, appending source position information
// to the message when sp has a source with a non-empty name.
func NewLexError(sp source.Span, format string, args ...any) *LexError {
	return &LexError{Message: formatWithPos(sp, format, args), Span: sp}
}

func (e *LexError) Error() string { return e.Message }

// ParseError reports an unexpected token given the parser's current
// state. Fatal to the parse in progress; there is no recovery.
type ParseError struct {
	Message string
	Span    source.Span
}

// NewParseError builds a ParseError, appending source position
// information to the message when sp has a source with a non-empty name.
func NewParseError(sp source.Span, format string, args ...any) *ParseError {
	return &ParseError{Message: formatWithPos(sp, format, args), Span: sp}
}

func (e *ParseError) Error() string { return e.Message }

// LookupError reports a failed name resolution against a module's symbol
// table. Recoverable: callers such as Loader.Lookup catch it while
// probing multiple modules.
type LookupError struct {
	Message string
}

// NewLookupError builds a LookupError.
func NewLookupError(format string, args ...any) *LookupError {
	return &LookupError{Message: fmt.Sprintf(format, args...)}
}

func (e *LookupError) Error() string { return e.Message }

// IOError wraps a filesystem failure encountered while loading a file.
// Fatal to the load in progress.
type IOError struct {
	Path string
	Err  error
}

// NewIOError wraps err as an IOError for the given path.
func NewIOError(path string, err error) *IOError {
	return &IOError{Path: path, Err: err}
}

func (e *IOError) Error() string {
	return fmt.Sprintf("cannot read %s: %s", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func formatWithPos(sp source.Span, format string, args []any) string {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	name := sp.Start.SourceName()
	line, col := sp.Start.Line(), sp.Start.Col()
	if name != "" && line != 0 && col != 0 {
		msg += fmt.Sprintf(" in %s at line %d col %d", name, line, col)
	}
	return msg
}
