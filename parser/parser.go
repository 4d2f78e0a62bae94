// Package parser implements a hand-written recursive-descent parser for
// the Thrift IDL grammar, producing a typed ast.Thrift.
//
// The teacher's own parser subsystem (parser/grammar/langdef) compiles an
// arbitrary EBNF grammar supplied at runtime into an LL(*) table; nothing
// here needs that generality, since the Thrift grammar is fixed at
// compile time, so the grammar below is translated straight into Go
// methods, one per non-terminal, in the same spirit as go/parser.
package parser

import (
	"os"

	"github.com/ava12/ptsd"
	"github.com/ava12/ptsd/ast"
	"github.com/ava12/ptsd/lexer"
	"github.com/ava12/ptsd/source"
)

type parser struct {
	src  *source.Source
	toks []lexer.Token
	pos  int
}

// Parse parses the full content of a single Thrift file. sourceName is
// used only for position reporting, not resolved as a path.
func Parse(sourceName string, content []byte) (*ast.Thrift, error) {
	normalized := append([]byte(nil), content...)
	source.NormalizeNls(&normalized)
	src := source.New(sourceName, normalized)

	toks, err := lexer.AllTokens(src)
	if err != nil {
		return nil, err
	}

	p := &parser{src: src, toks: toks}
	return p.parseThrift()
}

// ParseFile reads path and parses it as a single Thrift file.
func ParseFile(path string) (*ast.Thrift, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, ptsd.NewIOError(path, err)
	}
	return Parse(path, content)
}

func (p *parser) cur() lexer.Token {
	return p.toks[p.pos]
}

func (p *parser) advance() lexer.Token {
	tok := p.toks[p.pos]
	if tok.Kind != lexer.EOF {
		p.pos++
	}
	return tok
}

// prev returns the most recently consumed token. Only valid once at
// least one token has been consumed, which holds at every call site
// below (each follows a successful expect/advance).
func (p *parser) prev() lexer.Token {
	return p.toks[p.pos-1]
}

// spanFrom builds the span from startTok through the most recently
// consumed token.
func (p *parser) spanFrom(startTok lexer.Token) source.Span {
	return source.Join(startTok.Span, p.prev().Span)
}

func (p *parser) at(kinds ...lexer.Kind) bool {
	for _, k := range kinds {
		if p.cur().Kind == k {
			return true
		}
	}
	return false
}

func (p *parser) expect(kind lexer.Kind) (lexer.Token, error) {
	tok := p.cur()
	if tok.Kind != kind {
		return tok, unexpected(tok, kind)
	}
	return p.advance(), nil
}

// skipSep consumes an optional trailing ',' or ';'.
func (p *parser) skipSep() {
	if p.at(lexer.COMMA, lexer.SEMI) {
		p.advance()
	}
}

var headerStarts = []lexer.Kind{
	lexer.INCLUDE, lexer.NAMESPACE, lexer.CPP_NAMESPACE, lexer.PHP_NAMESPACE,
	lexer.PY_MODULE, lexer.PERL_PACKAGE, lexer.RUBY_NAMESPACE,
	lexer.SMALLTALK_PREFIX, lexer.JAVA_PACKAGE, lexer.COCOA_PREFIX,
	lexer.CSHARP_NAMESPACE, lexer.DELPHI_NAMESPACE, lexer.SMALLTALK_CATEGORY,
	lexer.CPP_INCLUDE, lexer.XSD_NAMESPACE,
}

var definitionStarts = []lexer.Kind{
	lexer.CONST, lexer.TYPEDEF, lexer.ENUM, lexer.SENUM, lexer.STRUCT,
	lexer.UNION, lexer.EXCEPTION, lexer.SERVICE,
}

func (p *parser) parseThrift() (*ast.Thrift, error) {
	th := &ast.Thrift{}

	for p.at(headerStarts...) {
		if err := p.parseHeader(th); err != nil {
			return nil, err
		}
	}

	for p.at(definitionStarts...) {
		def, err := p.parseDefinition()
		if err != nil {
			return nil, err
		}
		th.Definitions = append(th.Definitions, def)
	}

	if !p.at(lexer.EOF) {
		return nil, unexpected(p.cur())
	}

	th.SetSpan(source.NewSpan(p.src, 0, p.src.Len()))
	return th, nil
}

func (p *parser) parseHeader(th *ast.Thrift) error {
	tok := p.cur()
	start := tok

	switch tok.Kind {
	case lexer.INCLUDE:
		inc, err := p.parseInclude()
		if err != nil {
			return err
		}
		th.Includes = append(th.Includes, inc)
		return nil

	case lexer.NAMESPACE:
		ns, err := p.parseModernNamespace()
		if err != nil {
			return err
		}
		th.Namespaces = append(th.Namespaces, ns)
		return nil

	case lexer.CPP_NAMESPACE, lexer.PHP_NAMESPACE, lexer.PY_MODULE,
		lexer.PERL_PACKAGE, lexer.RUBY_NAMESPACE, lexer.SMALLTALK_PREFIX,
		lexer.JAVA_PACKAGE, lexer.COCOA_PREFIX, lexer.CSHARP_NAMESPACE,
		lexer.DELPHI_NAMESPACE:
		lang := tok.Kind.String()
		p.advance()
		idTok, err := p.expect(lexer.IDENTIFIER)
		if err != nil {
			return err
		}
		ns := &ast.Namespace{Lang: lang, Target: string(idTok.Value.(lexer.Ident))}
		ns.SetSpan(p.spanFrom(start))
		th.Namespaces = append(th.Namespaces, ns)
		return nil

	case lexer.SMALLTALK_CATEGORY:
		p.advance()
		idTok, err := p.expect(lexer.ST_IDENTIFIER)
		if err != nil {
			return err
		}
		ns := &ast.Namespace{Lang: "smalltalk_category", Target: string(idTok.Value.(lexer.Ident))}
		ns.SetSpan(p.spanFrom(start))
		th.Namespaces = append(th.Namespaces, ns)
		return nil

	case lexer.CPP_INCLUDE, lexer.XSD_NAMESPACE:
		lang := tok.Kind.String()
		p.advance()
		litTok, err := p.expect(lexer.LITERAL)
		if err != nil {
			return err
		}
		ns := &ast.Namespace{Lang: lang, Target: string(litTok.Value.(lexer.Literal)), Literal: true}
		ns.SetSpan(p.spanFrom(start))
		th.Namespaces = append(th.Namespaces, ns)
		return nil
	}

	return unexpected(tok)
}

func (p *parser) parseInclude() (*ast.Include, error) {
	start, err := p.expect(lexer.INCLUDE)
	if err != nil {
		return nil, err
	}
	lit, err := p.expect(lexer.LITERAL)
	if err != nil {
		return nil, err
	}
	inc := &ast.Include{Path: string(lit.Value.(lexer.Literal))}
	inc.SetSpan(source.Join(start.Span, lit.Span))
	return inc, nil
}

func (p *parser) parseModernNamespace() (*ast.Namespace, error) {
	start, err := p.expect(lexer.NAMESPACE)
	if err != nil {
		return nil, err
	}

	if p.at(lexer.STAR) {
		p.advance()
		idTok, err := p.expect(lexer.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		ns := &ast.Namespace{Lang: "*", Target: string(idTok.Value.(lexer.Ident)), Modern: true}
		ns.SetSpan(p.spanFrom(start))
		return ns, nil
	}

	langTok, err := p.expect(lexer.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	targetTok, err := p.expect(lexer.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	ns := &ast.Namespace{
		Lang:   string(langTok.Value.(lexer.Ident)),
		Target: string(targetTok.Value.(lexer.Ident)),
		Modern: true,
	}
	ns.SetSpan(p.spanFrom(start))
	return ns, nil
}

func (p *parser) parseDefinition() (ast.Node, error) {
	switch p.cur().Kind {
	case lexer.CONST:
		return p.parseConst()
	case lexer.TYPEDEF:
		return p.parseTypedef()
	case lexer.ENUM:
		return p.parseEnum()
	case lexer.SENUM:
		return p.parseSenum()
	case lexer.STRUCT, lexer.UNION:
		return p.parseStruct()
	case lexer.EXCEPTION:
		return p.parseException()
	case lexer.SERVICE:
		return p.parseService()
	}
	return nil, unexpected(p.cur())
}

func (p *parser) parseTypedef() (*ast.Typedef, error) {
	start, err := p.expect(lexer.TYPEDEF)
	if err != nil {
		return nil, err
	}
	ft, err := p.parseFieldType()
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(lexer.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	anns, err := p.parseTypeAnnotations()
	if err != nil {
		return nil, err
	}
	td := &ast.Typedef{Type: ft, Name: string(nameTok.Value.(lexer.Ident))}
	td.AddAnnotations(anns)
	td.SetSpan(p.spanFrom(start))
	return td, nil
}

func (p *parser) parseEnum() (*ast.Enum, error) {
	start, err := p.expect(lexer.ENUM)
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(lexer.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}

	var defs []*ast.EnumDef
	counter := int64(-1)
	for !p.at(lexer.RBRACE) {
		def, next, err := p.parseEnumDef(counter)
		if err != nil {
			return nil, err
		}
		counter = next
		defs = append(defs, def)
		p.skipSep()
	}
	if _, err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	anns, err := p.parseTypeAnnotations()
	if err != nil {
		return nil, err
	}
	en := &ast.Enum{Name: string(nameTok.Value.(lexer.Ident)), Defs: defs}
	en.AddAnnotations(anns)
	en.SetSpan(p.spanFrom(start))
	return en, nil
}

func (p *parser) parseEnumDef(counter int64) (*ast.EnumDef, int64, error) {
	nameTok, err := p.expect(lexer.IDENTIFIER)
	if err != nil {
		return nil, counter, err
	}
	start := nameTok

	if p.at(lexer.EQ) {
		p.advance()
		tagTok, err := p.expect(lexer.INTCONSTANT)
		if err != nil {
			return nil, counter, err
		}
		counter = tagTok.Value.(int64)
	} else {
		counter++
	}

	anns, err := p.parseTypeAnnotations()
	if err != nil {
		return nil, counter, err
	}
	def := &ast.EnumDef{Name: string(nameTok.Value.(lexer.Ident)), Tag: counter}
	def.AddAnnotations(anns)
	def.SetSpan(p.spanFrom(start))
	return def, counter, nil
}

func (p *parser) parseSenum() (*ast.Senum, error) {
	start, err := p.expect(lexer.SENUM)
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(lexer.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}

	var values []string
	for !p.at(lexer.RBRACE) {
		litTok, err := p.expect(lexer.LITERAL)
		if err != nil {
			return nil, err
		}
		values = append(values, string(litTok.Value.(lexer.Literal)))
		p.skipSep()
	}
	if _, err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	anns, err := p.parseTypeAnnotations()
	if err != nil {
		return nil, err
	}
	se := &ast.Senum{Name: string(nameTok.Value.(lexer.Ident)), Values: values}
	se.AddAnnotations(anns)
	se.SetSpan(p.spanFrom(start))
	return se, nil
}

func (p *parser) parseConst() (*ast.Const, error) {
	start, err := p.expect(lexer.CONST)
	if err != nil {
		return nil, err
	}
	ft, err := p.parseFieldType()
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(lexer.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.EQ); err != nil {
		return nil, err
	}
	val, err := p.parseConstValue()
	if err != nil {
		return nil, err
	}
	p.skipSep()
	c := &ast.Const{Type: ft, Name: string(nameTok.Value.(lexer.Ident)), Value: val}
	c.SetSpan(p.spanFrom(start))
	return c, nil
}

func (p *parser) parseConstValue() (ast.Value, error) {
	tok := p.cur()
	switch tok.Kind {
	case lexer.INTCONSTANT:
		p.advance()
		return tok.Value.(int64), nil
	case lexer.DUBCONSTANT:
		p.advance()
		return tok.Value.(float64), nil
	case lexer.LITERAL:
		p.advance()
		return ast.Literal(tok.Value.(lexer.Literal)), nil
	case lexer.IDENTIFIER:
		p.advance()
		return ast.NewIdentifier(tok.Span, string(tok.Value.(lexer.Ident))), nil
	case lexer.LBRACKET:
		p.advance()
		var list ast.ConstList
		for !p.at(lexer.RBRACKET) {
			v, err := p.parseConstValue()
			if err != nil {
				return nil, err
			}
			list = append(list, v)
			p.skipSep()
		}
		if _, err := p.expect(lexer.RBRACKET); err != nil {
			return nil, err
		}
		return list, nil
	case lexer.LBRACE:
		p.advance()
		var m ast.ConstMap
		for !p.at(lexer.RBRACE) {
			k, err := p.parseConstValue()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lexer.COLON); err != nil {
				return nil, err
			}
			v, err := p.parseConstValue()
			if err != nil {
				return nil, err
			}
			m = append(m, ast.ConstMapEntry{Key: k, Value: v})
			p.skipSep()
		}
		if _, err := p.expect(lexer.RBRACE); err != nil {
			return nil, err
		}
		return m, nil
	}
	return nil, unexpected(tok)
}

func (p *parser) parseStruct() (*ast.Struct, error) {
	union := p.at(lexer.UNION)
	start := p.advance()
	nameTok, err := p.expect(lexer.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	xsdAll := false
	if p.at(lexer.XSD_ALL) {
		p.advance()
		xsdAll = true
	}
	if _, err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}
	fields, err := p.parseFieldList(lexer.RBRACE)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	anns, err := p.parseTypeAnnotations()
	if err != nil {
		return nil, err
	}
	st := &ast.Struct{Union: union, Name: string(nameTok.Value.(lexer.Ident)), XSDAll: xsdAll, Fields: fields}
	st.AddAnnotations(anns)
	st.SetSpan(p.spanFrom(start))
	return st, nil
}

func (p *parser) parseException() (*ast.Exception, error) {
	start, err := p.expect(lexer.EXCEPTION)
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(lexer.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}
	fields, err := p.parseFieldList(lexer.RBRACE)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	anns, err := p.parseTypeAnnotations()
	if err != nil {
		return nil, err
	}
	ex := &ast.Exception{Name: string(nameTok.Value.(lexer.Ident)), Fields: fields}
	ex.AddAnnotations(anns)
	ex.SetSpan(p.spanFrom(start))
	return ex, nil
}

func (p *parser) parseService() (*ast.Service, error) {
	start, err := p.expect(lexer.SERVICE)
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(lexer.IDENTIFIER)
	if err != nil {
		return nil, err
	}

	var extends *ast.Identifier
	if p.at(lexer.EXTENDS) {
		p.advance()
		extTok, err := p.expect(lexer.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		extends = ast.NewIdentifier(extTok.Span, string(extTok.Value.(lexer.Ident)))
	}

	if _, err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}
	var funcs []*ast.Function
	for !p.at(lexer.RBRACE) {
		fn, err := p.parseFunction()
		if err != nil {
			return nil, err
		}
		funcs = append(funcs, fn)
	}
	if _, err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	anns, err := p.parseTypeAnnotations()
	if err != nil {
		return nil, err
	}
	sv := &ast.Service{Name: string(nameTok.Value.(lexer.Ident)), Extends: extends, Functions: funcs}
	sv.AddAnnotations(anns)
	sv.SetSpan(p.spanFrom(start))
	return sv, nil
}

func (p *parser) parseFunction() (*ast.Function, error) {
	start := p.cur()
	oneway := false
	if p.at(lexer.ONEWAY) {
		p.advance()
		oneway = true
	}

	var rt ast.Type
	if p.at(lexer.VOID) {
		p.advance()
	} else {
		var err error
		rt, err = p.parseFieldType()
		if err != nil {
			return nil, err
		}
	}

	nameTok, err := p.expect(lexer.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	args, err := p.parseFieldList(lexer.RPAREN)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}

	var throws []*ast.Field
	if p.at(lexer.THROWS) {
		p.advance()
		if _, err := p.expect(lexer.LPAREN); err != nil {
			return nil, err
		}
		throws, err = p.parseFieldList(lexer.RPAREN)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
	}

	anns, err := p.parseTypeAnnotations()
	if err != nil {
		return nil, err
	}
	p.skipSep()

	fn := &ast.Function{OneWay: oneway, ReturnType: rt, Name: string(nameTok.Value.(lexer.Ident)), Args: args, Throws: throws}
	fn.AddAnnotations(anns)
	fn.SetSpan(p.spanFrom(start))
	return fn, nil
}

func (p *parser) parseFieldList(end lexer.Kind) ([]*ast.Field, error) {
	var fields []*ast.Field
	for !p.at(end) {
		f, err := p.parseField()
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return fields, nil
}

func (p *parser) parseField() (*ast.Field, error) {
	start := p.cur()
	var tag *int64
	if p.at(lexer.INTCONSTANT) {
		n := p.cur().Value.(int64)
		p.advance()
		if _, err := p.expect(lexer.COLON); err != nil {
			return nil, err
		}
		tag = &n
	}

	required := false
	if p.at(lexer.REQUIRED) {
		p.advance()
		required = true
	} else if p.at(lexer.OPTIONAL) {
		p.advance()
	}

	ft, err := p.parseFieldType()
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(lexer.IDENTIFIER)
	if err != nil {
		return nil, err
	}

	var def ast.Value
	if p.at(lexer.EQ) {
		p.advance()
		def, err = p.parseConstValue()
		if err != nil {
			return nil, err
		}
	}

	xsdOptional := false
	if p.at(lexer.XSD_OPTIONAL) {
		p.advance()
		xsdOptional = true
	}
	xsdNillable := false
	if p.at(lexer.XSD_NILLABLE) {
		p.advance()
		xsdNillable = true
	}

	var xsdAttrs []*ast.Field
	if p.at(lexer.XSD_ATTRS) {
		p.advance()
		if _, err := p.expect(lexer.LBRACE); err != nil {
			return nil, err
		}
		xsdAttrs, err = p.parseFieldList(lexer.RBRACE)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RBRACE); err != nil {
			return nil, err
		}
	}

	anns, err := p.parseTypeAnnotations()
	if err != nil {
		return nil, err
	}
	p.skipSep()

	f := &ast.Field{
		Tag: tag, Required: required, Type: ft, Name: string(nameTok.Value.(lexer.Ident)),
		Default: def, XSDOptional: xsdOptional, XSDNillable: xsdNillable, XSDAttrs: xsdAttrs,
	}
	f.AddAnnotations(anns)
	f.SetSpan(p.spanFrom(start))
	return f, nil
}

func (p *parser) parseFieldType() (ast.Type, error) {
	tok := p.cur()
	switch tok.Kind {
	case lexer.IDENTIFIER:
		p.advance()
		return ast.AsType(ast.NewIdentifier(tok.Span, string(tok.Value.(lexer.Ident)))), nil

	case lexer.STRING, lexer.BINARY, lexer.SLIST, lexer.BOOL, lexer.BYTE,
		lexer.I16, lexer.I32, lexer.I64, lexer.DOUBLE:
		return p.parseBaseType()

	case lexer.MAP, lexer.SET, lexer.LIST:
		return p.parseContainerType()
	}
	return nil, unexpected(tok)
}

func (p *parser) parseBaseType() (ast.Type, error) {
	tok := p.advance()
	var t ast.Type
	switch tok.Kind {
	case lexer.STRING:
		t = ast.NewString(tok.Span)
	case lexer.BINARY:
		t = ast.NewBinary(tok.Span)
	case lexer.SLIST:
		t = ast.NewSlist(tok.Span)
	case lexer.BOOL:
		t = ast.NewBool(tok.Span)
	case lexer.BYTE:
		t = ast.NewByte(tok.Span)
	case lexer.I16:
		t = ast.NewI16(tok.Span)
	case lexer.I32:
		t = ast.NewI32(tok.Span)
	case lexer.I64:
		t = ast.NewI64(tok.Span)
	case lexer.DOUBLE:
		t = ast.NewDouble(tok.Span)
	}
	anns, err := p.parseTypeAnnotations()
	if err != nil {
		return nil, err
	}
	t.AddAnnotations(anns)
	return t, nil
}

func (p *parser) parseContainerType() (ast.Type, error) {
	var t ast.Type
	start := p.cur()
	switch p.cur().Kind {
	case lexer.MAP:
		p.advance()
		cppType, err := p.parseCppType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.LANGLE); err != nil {
			return nil, err
		}
		key, err := p.parseFieldType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.COMMA); err != nil {
			return nil, err
		}
		elem, err := p.parseFieldType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RANGLE); err != nil {
			return nil, err
		}
		t = &ast.Map{Key: key, Elem: elem, CppType: cppType}

	case lexer.SET:
		p.advance()
		cppType, err := p.parseCppType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.LANGLE); err != nil {
			return nil, err
		}
		elem, err := p.parseFieldType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RANGLE); err != nil {
			return nil, err
		}
		t = &ast.Set{Elem: elem, CppType: cppType}

	case lexer.LIST:
		p.advance()
		if _, err := p.expect(lexer.LANGLE); err != nil {
			return nil, err
		}
		elem, err := p.parseFieldType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RANGLE); err != nil {
			return nil, err
		}
		cppType, err := p.parseCppType()
		if err != nil {
			return nil, err
		}
		t = &ast.List{Elem: elem, CppType: cppType}
	}

	anns, err := p.parseTypeAnnotations()
	if err != nil {
		return nil, err
	}
	t.AddAnnotations(anns)
	if s, ok := t.(interface{ SetSpan(source.Span) }); ok {
		s.SetSpan(p.spanFrom(start))
	}
	return t, nil
}

func (p *parser) parseCppType() (string, error) {
	if !p.at(lexer.CPP_TYPE) {
		return "", nil
	}
	p.advance()
	litTok, err := p.expect(lexer.LITERAL)
	if err != nil {
		return "", err
	}
	return string(litTok.Value.(lexer.Literal)), nil
}

func (p *parser) parseTypeAnnotations() ([]*ast.TypeAnnotation, error) {
	if !p.at(lexer.LPAREN) {
		return nil, nil
	}
	p.advance()

	var anns []*ast.TypeAnnotation
	for !p.at(lexer.RPAREN) {
		nameTok, err := p.expect(lexer.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.EQ); err != nil {
			return nil, err
		}
		valTok, err := p.expect(lexer.LITERAL)
		if err != nil {
			return nil, err
		}
		ann := &ast.TypeAnnotation{
			Name:  string(nameTok.Value.(lexer.Ident)),
			Value: string(valTok.Value.(lexer.Literal)),
		}
		ann.SetSpan(p.spanFrom(nameTok))
		anns = append(anns, ann)
		p.skipSep()
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return anns, nil
}
