// Package source tracks byte offsets, line/column positions, and spans
// for a single parsed file. The lexer, parser, and AST all describe their
// origin in terms of a Span into a Source.
package source

import (
	"bytes"
	"sort"
)

// Source is the immutable content of one parsed file plus an index of
// where each line begins, used to turn a byte offset into a line/column
// pair on demand.
type Source struct {
	name       string
	content    []byte
	lineStarts []int
}

// New builds a Source from a file name (any identifying string, may be
// empty or non-unique) and its content. Content is assumed to already be
// newline-normalized (see NormalizeNls) and is not copied or modified.
func New(name string, content []byte) *Source {
	lineStarts := []int{0}
	for i, b := range content {
		if b == '\n' {
			lineStarts = append(lineStarts, i+1)
		}
	}
	return &Source{name: name, content: content, lineStarts: lineStarts}
}

// Name returns the name the Source was built with.
func (s *Source) Name() string {
	return s.name
}

// Content returns the full source text.
func (s *Source) Content() []byte {
	return s.content
}

// Len returns the length of the source content in bytes.
func (s *Source) Len() int {
	return len(s.content)
}

// LineCol returns the 1-based line and column for a byte offset. A
// negative offset clamps to the start of the file; an offset at or past
// the end of content clamps to the position right after EOF. Columns
// count bytes, not runes: Thrift source is ASCII-punctuated and the
// lexer never needs rune-aware columns for its own token spans.
func (s *Source) LineCol(offset int) (line, col int) {
	switch {
	case offset < 0:
		offset = 0
	case offset > len(s.content):
		offset = len(s.content)
	}
	line = s.lineIndex(offset)
	return line + 1, offset - s.lineStarts[line] + 1
}

// lineIndex returns the index into lineStarts of the line containing
// offset, via binary search over the (monotonically increasing) starts.
func (s *Source) lineIndex(offset int) int {
	// sort.Search finds the first index whose start is past offset; the
	// containing line is always the one before it.
	i := sort.Search(len(s.lineStarts), func(i int) bool {
		return s.lineStarts[i] > offset
	})
	return i - 1
}

// Pos returns the byte offset corresponding to a 1-based line and
// column. Lines or columns below 1 map to 0; a line past the end of the
// file maps to the content length; a column past the end of its line
// maps to the offset of that line's terminating newline (or EOF).
func (s *Source) Pos(line, col int) int {
	if line <= 0 || col <= 0 {
		return 0
	}
	if line > len(s.lineStarts) {
		return len(s.content)
	}

	offset := s.lineStarts[line-1] + col - 1
	lineEnd := len(s.content)
	if line < len(s.lineStarts) {
		lineEnd = s.lineStarts[line] - 1
	}
	if offset > lineEnd {
		offset = lineEnd
	}
	return offset
}

// Pos combines a Source, a byte offset into it, and the line/column that
// offset resolves to. The zero value carries no position information.
type Pos struct {
	src       *Source
	offset    int
	line, col int
}

// NewPos builds a Pos for an offset into s. Returns the zero value if s
// is nil.
func NewPos(s *Source, offset int) Pos {
	if s == nil {
		return Pos{}
	}
	line, col := s.LineCol(offset)
	return Pos{src: s, offset: offset, line: line, col: col}
}

// Source returns the Pos's source, or nil for the zero value.
func (p Pos) Source() *Source {
	return p.src
}

// SourceName returns the Pos's source name, or "" for the zero value.
func (p Pos) SourceName() string {
	if p.src == nil {
		return ""
	}
	return p.src.Name()
}

// Offset returns the Pos's byte offset.
func (p Pos) Offset() int {
	return p.offset
}

// Line returns the Pos's 1-based line number.
func (p Pos) Line() int {
	return p.line
}

// Col returns the Pos's 1-based column number.
func (p Pos) Col() int {
	return p.col
}

// Span is a half-open byte range [Start, End) into a single Source.
// Every token and every AST node carries a Span, assigned once at
// construction and never mutated afterward.
type Span struct {
	Start, End Pos
}

// NewSpan builds a Span from a source and a pair of byte offsets.
func NewSpan(s *Source, startOffset, endOffset int) Span {
	return Span{Start: NewPos(s, startOffset), End: NewPos(s, endOffset)}
}

// Join returns the smallest Span covering both a and b. A Span with no
// source (the zero value) is treated as absent and the other is returned
// unchanged, so callers can fold Join over an AST node's children
// without special-casing ones with no span of their own.
func Join(a, b Span) Span {
	if a.Start.src == nil {
		return b
	}
	if b.Start.src == nil {
		return a
	}

	start, end := a.Start, a.End
	if b.Start.offset < start.offset {
		start = b.Start
	}
	if b.End.offset > end.offset {
		end = b.End
	}
	return Span{Start: start, End: end}
}

// NormalizeNls rewrites *content in place, collapsing every "\r\n" and
// lone "\r" into "\n", so the rest of the pipeline only ever has to deal
// with "\n"-separated lines.
func NormalizeNls(content *[]byte) {
	if !bytes.ContainsRune(*content, '\r') {
		return
	}
	normalized := bytes.ReplaceAll(*content, []byte("\r\n"), []byte("\n"))
	normalized = bytes.ReplaceAll(normalized, []byte("\r"), []byte("\n"))
	*content = normalized
}
