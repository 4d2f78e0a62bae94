package lexer

import (
	"fmt"

	"github.com/ava12/ptsd/source"
)

// Kind identifies the lexical class of a Token.
type Kind int

const (
	EOF Kind = iota

	INTCONSTANT
	DUBCONSTANT
	LITERAL
	IDENTIFIER
	ST_IDENTIFIER

	// punctuation
	LBRACE
	RBRACE
	LPAREN
	RPAREN
	LBRACKET
	RBRACKET
	LANGLE
	RANGLE
	COLON
	SEMI
	COMMA
	EQ
	STAR

	// namespace directives
	NAMESPACE
	CPP_NAMESPACE
	CPP_INCLUDE
	PHP_NAMESPACE
	PY_MODULE
	PERL_PACKAGE
	RUBY_NAMESPACE
	SMALLTALK_CATEGORY
	SMALLTALK_PREFIX
	JAVA_PACKAGE
	COCOA_PREFIX
	XSD_NAMESPACE
	CSHARP_NAMESPACE
	DELPHI_NAMESPACE

	// base and container types
	STRING
	BINARY
	SLIST
	BOOL
	BYTE
	I16
	I32
	I64
	DOUBLE
	MAP
	SET
	LIST

	// structural keywords
	STRUCT
	UNION
	ENUM
	SENUM
	EXCEPTION
	SERVICE
	TYPEDEF
	CONST
	INCLUDE
	EXTENDS
	THROWS
	ONEWAY
	VOID
	REQUIRED
	OPTIONAL
	XSD_OPTIONAL
	XSD_NILLABLE
	XSD_ATTRS
	XSD_ALL
	CPP_TYPE
)

var kindNames = map[Kind]string{
	EOF:                 "EOF",
	INTCONSTANT:         "INTCONSTANT",
	DUBCONSTANT:         "DUBCONSTANT",
	LITERAL:             "LITERAL",
	IDENTIFIER:          "IDENTIFIER",
	ST_IDENTIFIER:       "ST_IDENTIFIER",
	LBRACE:              "'{'",
	RBRACE:              "'}'",
	LPAREN:              "'('",
	RPAREN:              "')'",
	LBRACKET:            "'['",
	RBRACKET:            "']'",
	LANGLE:              "'<'",
	RANGLE:              "'>'",
	COLON:               "':'",
	SEMI:                "';'",
	COMMA:               "','",
	EQ:                  "'='",
	STAR:                "'*'",
	NAMESPACE:           "namespace",
	CPP_NAMESPACE:       "cpp_namespace",
	CPP_INCLUDE:         "cpp_include",
	PHP_NAMESPACE:       "php_namespace",
	PY_MODULE:           "py_module",
	PERL_PACKAGE:        "perl_package",
	RUBY_NAMESPACE:      "ruby_namespace",
	SMALLTALK_CATEGORY:  "smalltalk_category",
	SMALLTALK_PREFIX:    "smalltalk_prefix",
	JAVA_PACKAGE:        "java_package",
	COCOA_PREFIX:        "cocoa_prefix",
	XSD_NAMESPACE:       "xsd_namespace",
	CSHARP_NAMESPACE:    "csharp_namespace",
	DELPHI_NAMESPACE:    "delphi_namespace",
	STRING:              "string",
	BINARY:              "binary",
	SLIST:               "slist",
	BOOL:                "bool",
	BYTE:                "byte",
	I16:                 "i16",
	I32:                 "i32",
	I64:                 "i64",
	DOUBLE:              "double",
	MAP:                 "map",
	SET:                 "set",
	LIST:                "list",
	STRUCT:              "struct",
	UNION:               "union",
	ENUM:                "enum",
	SENUM:               "senum",
	EXCEPTION:           "exception",
	SERVICE:             "service",
	TYPEDEF:             "typedef",
	CONST:               "const",
	INCLUDE:             "include",
	EXTENDS:             "extends",
	THROWS:              "throws",
	ONEWAY:              "oneway",
	VOID:                "void",
	REQUIRED:            "required",
	OPTIONAL:            "optional",
	XSD_OPTIONAL:        "xsd_optional",
	XSD_NILLABLE:        "xsd_nillable",
	XSD_ATTRS:           "xsd_attrs",
	XSD_ALL:             "xsd_all",
	CPP_TYPE:            "cpp_type",
}

// String returns the grammar-facing name of k, e.g. "struct" or "'{'".
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

var puncKinds = map[byte]Kind{
	'{': LBRACE, '}': RBRACE,
	'(': LPAREN, ')': RPAREN,
	'[': LBRACKET, ']': RBRACKET,
	'<': LANGLE, '>': RANGLE,
	':': COLON, ';': SEMI, ',': COMMA,
	'=': EQ, '*': STAR,
}

// Literal is a string-literal token value with its surrounding quotes
// already stripped. Escape sequences inside the literal are preserved
// verbatim, not decoded.
type Literal string

// Ident is an identifier-shaped token value, preserved as written,
// including any embedded dots in a dotted reference such as "a.b.c".
type Ident string

// Token is a single lexical unit: its Kind, the exact text it was
// scanned from, a decoded Value for the kinds that carry one (LITERAL,
// IDENTIFIER, ST_IDENTIFIER, INTCONSTANT, DUBCONSTANT), and the Span it
// occupies in its source.
type Token struct {
	Kind  Kind
	Text  string
	Value any
	Span  source.Span
}

// IsPunct reports whether k is one of the single-character punctuation
// kinds.
func (k Kind) IsPunct() bool {
	_, ok := kindNamesIsPunct[k]
	return ok
}

var kindNamesIsPunct = func() map[Kind]struct{} {
	m := make(map[Kind]struct{}, len(puncKinds))
	for _, k := range puncKinds {
		m[k] = struct{}{}
	}
	return m
}()
