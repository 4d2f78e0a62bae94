// Package lexer scans Thrift IDL source text into a stream of Tokens.
package lexer

import (
	"regexp"
	"strconv"

	"github.com/ava12/ptsd"
	"github.com/ava12/ptsd/source"
)

// Each alternative below is either non-capturing (insignificant: skipped
// silently) or wrapped in exactly one capturing group. Go's regexp
// package matches alternation leftmost-first (like Perl, unlike POSIX):
// at a given position, the first alternative that matches at all wins,
// even if a later one could match more text there. The original PLY
// lexer this is ported from always tries its function-defined rules
// (t_HEXCONSTANT) ahead of its string-defined ones (t_LITERAL)
// regardless of source order, so the quoted hex quirk is listed before
// LITERAL here to reproduce that priority rather than the file order of
// spec §4.2's prose.
const tokenPattern = `` +
	`[ \t\r\n]+` + // whitespace, insignificant
	`|(?s:/\*.*?\*/)` + // block/doc comment, insignificant
	`|//[^\n]*` + // line comment, insignificant
	`|#[^\n]*` + // shell-style comment, insignificant
	`|("0x"[0-9A-Fa-f]+)` + // 1: quoted hex constant
	`|("(?:[^"\\\n]|\\.)*"|'(?:[^'\\\n]|\\.)*')` + // 2: LITERAL
	`|([+-]?[0-9]+\.[0-9]*(?:[eE][+-]?[0-9]+)?|[+-]?\.[0-9]+(?:[eE][+-]?[0-9]+)?)` + // 3: DUBCONSTANT
	`|([+-]?[0-9]+)` + // 4: INTCONSTANT
	`|([A-Za-z_](?:\.[A-Za-z0-9_]|[A-Za-z0-9_])*)` + // 5: IDENTIFIER-shaped
	`|([A-Za-z-](?:\.[A-Za-z_0-9-]|[A-Za-z_0-9-])*)` + // 6: ST_IDENTIFIER
	`|([{}()\[\]<>:;,=*])` // 7: punctuation

var tokenRe = regexp.MustCompile(tokenPattern)

// Lexer scans a single Source into Tokens on demand.
type Lexer struct {
	src *source.Source
	pos int
}

// New returns a Lexer positioned at the start of src.
func New(src *source.Source) *Lexer {
	return &Lexer{src: src}
}

// Next returns the next significant token, or an EOF-kind token once the
// end of input is reached. Returns a *ptsd.LexError if the text at the
// current position matches no rule, or names a disallowed identifier.
func (l *Lexer) Next() (Token, error) {
	content := l.src.Content()
	for {
		if l.pos >= len(content) {
			sp := source.NewSpan(l.src, l.pos, l.pos)
			return Token{Kind: EOF, Span: sp}, nil
		}

		match := tokenRe.FindSubmatchIndex(content[l.pos:])
		if match == nil || match[0] != 0 {
			sp := source.NewSpan(l.src, l.pos, l.pos+1)
			return Token{}, ptsd.NewLexError(sp, "unrecognized character %q", content[l.pos])
		}

		start := l.pos
		end := l.pos + match[1]
		l.pos = end

		for g := 1; g <= 7; g++ {
			lo, hi := match[2*g], match[2*g+1]
			if lo < 0 {
				continue
			}

			text := string(content[start+lo : start+hi])
			sp := source.NewSpan(l.src, start+lo, start+hi)
			return l.classify(g, text, sp)
		}

		// An alternative with no capturing group (whitespace, comments)
		// matched: the lexeme is insignificant, so loop for the next one.
	}
}

func (l *Lexer) classify(group int, text string, sp source.Span) (Token, error) {
	switch group {
	case 1: // quoted hex constant, reported as an INTCONSTANT
		n, err := strconv.ParseInt(text[4:], 16, 64)
		if err != nil {
			return Token{}, ptsd.NewLexError(sp, "invalid hex constant %q", text)
		}
		return Token{Kind: INTCONSTANT, Text: text, Value: n, Span: sp}, nil

	case 2: // LITERAL
		inner := text[1 : len(text)-1]
		return Token{Kind: LITERAL, Text: text, Value: Literal(inner), Span: sp}, nil

	case 3: // DUBCONSTANT
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Token{}, ptsd.NewLexError(sp, "invalid double constant %q", text)
		}
		return Token{Kind: DUBCONSTANT, Text: text, Value: f, Span: sp}, nil

	case 4: // INTCONSTANT
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return Token{}, ptsd.NewLexError(sp, "invalid integer constant %q", text)
		}
		return Token{Kind: INTCONSTANT, Text: text, Value: n, Span: sp}, nil

	case 5: // identifier-shaped: true/false, reserved words, disallow list
		switch text {
		case "true":
			return Token{Kind: INTCONSTANT, Text: text, Value: int64(1), Span: sp}, nil
		case "false":
			return Token{Kind: INTCONSTANT, Text: text, Value: int64(0), Span: sp}, nil
		}
		if _, bad := Disallow[text]; bad {
			return Token{}, ptsd.NewLexError(sp, "%q is a reserved word and cannot be used as an identifier", text)
		}
		if kind, ok := reservedKind(text); ok {
			return Token{Kind: kind, Text: text, Span: sp}, nil
		}
		return Token{Kind: IDENTIFIER, Text: text, Value: Ident(text), Span: sp}, nil

	case 6: // ST_IDENTIFIER
		return Token{Kind: ST_IDENTIFIER, Text: text, Value: Ident(text), Span: sp}, nil

	case 7: // punctuation
		return Token{Kind: puncKinds[text[0]], Text: text, Span: sp}, nil
	}

	panic("unreachable token group")
}

// AllTokens scans src completely and returns every significant token in
// order, including the trailing EOF token. Convenient for tests and for
// callers that want to inspect the whole stream before parsing it.
func AllTokens(src *source.Source) ([]Token, error) {
	l := New(src)
	var toks []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
		if tok.Kind == EOF {
			return toks, nil
		}
	}
}
