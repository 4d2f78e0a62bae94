package parser

import (
	"github.com/ava12/ptsd"
	"github.com/ava12/ptsd/lexer"
)

func unexpected(tok lexer.Token, want ...lexer.Kind) error {
	if len(want) == 0 {
		return ptsd.NewParseError(tok.Span, "unexpected %s", describe(tok))
	}
	if len(want) == 1 {
		return ptsd.NewParseError(tok.Span, "expected %s, found %s", want[0], describe(tok))
	}
	return ptsd.NewParseError(tok.Span, "unexpected %s", describe(tok))
}

func describe(tok lexer.Token) string {
	if tok.Kind == lexer.EOF {
		return "end of file"
	}
	return tok.Kind.String()
}
