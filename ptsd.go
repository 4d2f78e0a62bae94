/*
Package ptsd is a front end for the Thrift Interface Definition Language:
a lexer, a grammar-driven parser producing a typed AST, a multi-file
loader that follows include directives, and a per-module symbol table.

Consists of subpackages:
  - source: source file content, byte/line/col positions, and spans;
  - lexer: reserved-word tables, token kinds, and the scanner;
  - ast: the closed AST node variants and their pretty-printers;
  - parser: the recursive-descent parser, Parse and ParseFile;
  - loader: the include-graph walker and per-module symbol tables.

This root package holds only the four error kinds shared by every
subpackage (LexError, ParseError, LookupError, IOError), exactly as the
lexer, parser, and loader each report failures in terms of these types
rather than inventing their own.

Typical usage:

	thrift, err := parser.Parse("service.thrift", content)

	ld, err := loader.New("service.thrift", func(msg string) { log.Print(msg) })
	table := ld.Modules()["service"]
	val, err := ld.Lookup("SomeConst", "service")
*/
package ptsd
