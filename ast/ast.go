// Package ast defines the closed set of AST node variants produced by the
// parser: one Go struct per grammar production that builds a node, plus
// the constant-value representation and the pretty-printers used for
// round-trip testing.
package ast

import (
	"fmt"
	"strings"

	"github.com/ava12/ptsd/source"
)

// Node is implemented by every AST variant. Walk visits every direct
// child in source order, calling yield with (this node, child) for each;
// it does not recurse, leaving traversal order to the caller (mirrors
// the original's generator-based walk(), translated to an iterator
// method since Go has no native generators).
type Node interface {
	Span() source.Span
	Walk(yield func(parent, child Node))
	fmt.Stringer
}

// Annotated is implemented by every node that can carry type annotations.
type Annotated interface {
	Node
	Annotations() []*TypeAnnotation
	AddAnnotations(anns []*TypeAnnotation)
}

// Type is implemented by every field-type variant: the base types, the
// container types, and Identifier when it stands for a user-named type.
type Type interface {
	Annotated
	isType()
}

type span struct{ sp source.Span }

func (s span) Span() source.Span { return s.sp }

// SetSpan attaches sp to a node immediately after construction. Exported
// so the parser package can build nodes as plain composite literals
// (using only the exported fields) and then attach the span in one
// extra call, since the span field itself is unexported. Not meant to
// be called again once a node is published by the parser.
func (s *span) SetSpan(sp source.Span) { s.sp = sp }

type annotations struct {
	anns []*TypeAnnotation
}

func (a *annotations) Annotations() []*TypeAnnotation { return a.anns }

func (a *annotations) AddAnnotations(anns []*TypeAnnotation) {
	a.anns = append(a.anns, anns...)
}

func (a *annotations) walkAnns(self Node, yield func(parent, child Node)) {
	for _, ann := range a.anns {
		yield(self, ann)
	}
}

func (a *annotations) annString() string {
	if len(a.anns) == 0 {
		return ""
	}
	parts := make([]string, len(a.anns))
	for i, ann := range a.anns {
		parts[i] = ann.String()
	}
	return " (" + strings.Join(parts, ", ") + ")"
}

// Identifier is a wrapped name reference, used wherever the grammar
// allows a user-named type or value, and wherever a bare IDENTIFIER
// token is promoted to a named AST node.
type Identifier struct {
	span
	Name string
}

func NewIdentifier(sp source.Span, name string) *Identifier {
	return &Identifier{span{sp}, name}
}

func (n *Identifier) Walk(func(parent, child Node)) {}
func (n *Identifier) String() string                { return n.Name }

// Thrift is the file root: ordered includes, namespaces, and top-level
// definitions.
type Thrift struct {
	span
	Includes    []*Include
	Namespaces  []*Namespace
	Definitions []Node
}

func (n *Thrift) Walk(yield func(parent, child Node)) {
	for _, c := range n.Includes {
		yield(n, c)
	}
	for _, c := range n.Namespaces {
		yield(n, c)
	}
	for _, c := range n.Definitions {
		yield(n, c)
	}
}

func (n *Thrift) String() string {
	var b strings.Builder
	for _, inc := range n.Includes {
		b.WriteString(inc.String())
		b.WriteByte('\n')
	}
	for _, ns := range n.Namespaces {
		b.WriteString(ns.String())
		b.WriteByte('\n')
	}
	for _, d := range n.Definitions {
		b.WriteString(d.String())
		b.WriteString("\n\n")
	}
	return b.String()
}

// Include is an `include "path";` header.
type Include struct {
	span
	Path string
}

func (n *Include) Walk(func(parent, child Node)) {}
func (n *Include) String() string                { return fmt.Sprintf("include %q", n.Path) }

// Namespace is a namespace directive. Modern is true for `namespace LANG
// NAME`; false for a legacy single-language directive such as
// `cpp_namespace NAME`. Lang holds the directive keyword's text (e.g.
// "py", "*", "cpp_namespace"); Target is the name — an identifier for
// most forms, a literal for cpp_include/xsd_namespace.
type Namespace struct {
	span
	Lang    string
	Target  string
	Modern  bool
	Literal bool
}

func (n *Namespace) Walk(func(parent, child Node)) {}

func (n *Namespace) String() string {
	if n.Modern {
		return fmt.Sprintf("namespace %s %s", n.Lang, n.Target)
	}
	if n.Literal {
		return fmt.Sprintf("%s %q", n.Lang, n.Target)
	}
	return fmt.Sprintf("%s %s", n.Lang, n.Target)
}

// Typedef renames a type.
type Typedef struct {
	span
	annotations
	Type Type
	Name string
}

func (n *Typedef) Walk(yield func(parent, child Node)) {
	yield(n, n.Type)
	n.walkAnns(n, yield)
}

func (n *Typedef) String() string {
	return fmt.Sprintf("typedef %s %s%s", n.Type, n.Name, n.annString())
}

// Enum is an `enum` definition.
type Enum struct {
	span
	annotations
	Name string
	Defs []*EnumDef
}

func (n *Enum) Walk(yield func(parent, child Node)) {
	for _, d := range n.Defs {
		yield(n, d)
	}
	n.walkAnns(n, yield)
}

func (n *Enum) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "enum %s {\n", n.Name)
	for _, d := range n.Defs {
		fmt.Fprintf(&b, "  %s\n", d)
	}
	b.WriteByte('}')
	b.WriteString(n.annString())
	return b.String()
}

// EnumDef is one member of an Enum; Tag is assigned by the parser's
// counter, never left unset.
type EnumDef struct {
	span
	annotations
	Name string
	Tag  int64
}

func (n *EnumDef) Walk(yield func(parent, child Node)) {
	n.walkAnns(n, yield)
}

func (n *EnumDef) String() string {
	return fmt.Sprintf("%s = %d%s", n.Name, n.Tag, n.annString())
}

// Senum is a legacy string enum: a fixed set of string-literal values.
type Senum struct {
	span
	annotations
	Name   string
	Values []string
}

func (n *Senum) Walk(yield func(parent, child Node)) {
	n.walkAnns(n, yield)
}

func (n *Senum) String() string {
	quoted := make([]string, len(n.Values))
	for i, v := range n.Values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return fmt.Sprintf("senum %s {%s}%s", n.Name, strings.Join(quoted, ", "), n.annString())
}

// Const is a top-level `const` declaration. Never carries annotations.
type Const struct {
	span
	Type  Type
	Name  string
	Value Value
}

func (n *Const) Walk(yield func(parent, child Node)) {
	yield(n, n.Type)
	if node, ok := n.Value.(Node); ok {
		yield(n, node)
	}
}

func (n *Const) String() string {
	return fmt.Sprintf("const %s %s = %s", n.Type, n.Name, renderValue(n.Value))
}

// Struct covers both `struct` and `union` (Union distinguishes them);
// XSDAll mirrors the grammar's optional xsd_all marker.
type Struct struct {
	span
	annotations
	Union  bool
	Name   string
	XSDAll bool
	Fields []*Field
}

func (n *Struct) Walk(yield func(parent, child Node)) {
	for _, f := range n.Fields {
		yield(n, f)
	}
	n.walkAnns(n, yield)
}

func (n *Struct) String() string {
	kw := "struct"
	if n.Union {
		kw = "union"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s {\n", kw, n.Name)
	for _, f := range n.Fields {
		fmt.Fprintf(&b, "  %s;\n", f)
	}
	b.WriteByte('}')
	b.WriteString(n.annString())
	return b.String()
}

// Exception is structurally identical to a non-union Struct.
type Exception struct {
	span
	annotations
	Name   string
	Fields []*Field
}

func (n *Exception) Walk(yield func(parent, child Node)) {
	for _, f := range n.Fields {
		yield(n, f)
	}
	n.walkAnns(n, yield)
}

func (n *Exception) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "exception %s {\n", n.Name)
	for _, f := range n.Fields {
		fmt.Fprintf(&b, "  %s;\n", f)
	}
	b.WriteByte('}')
	b.WriteString(n.annString())
	return b.String()
}

// Service declares a set of RPC functions, optionally extending another.
type Service struct {
	span
	annotations
	Name      string
	Extends   *Identifier
	Functions []*Function
}

func (n *Service) Walk(yield func(parent, child Node)) {
	if n.Extends != nil {
		yield(n, n.Extends)
	}
	for _, f := range n.Functions {
		yield(n, f)
	}
	n.walkAnns(n, yield)
}

func (n *Service) String() string {
	var b strings.Builder
	b.WriteString("service ")
	b.WriteString(n.Name)
	if n.Extends != nil {
		b.WriteString(" extends ")
		b.WriteString(n.Extends.String())
	}
	b.WriteString(" {\n")
	for _, f := range n.Functions {
		fmt.Fprintf(&b, "  %s;\n", f)
	}
	b.WriteByte('}')
	b.WriteString(n.annString())
	return b.String()
}

// Function is one RPC method. ReturnType is nil for `void`.
type Function struct {
	span
	annotations
	OneWay     bool
	ReturnType Type
	Name       string
	Args       []*Field
	Throws     []*Field
}

func (n *Function) Walk(yield func(parent, child Node)) {
	if n.ReturnType != nil {
		yield(n, n.ReturnType)
	}
	for _, a := range n.Args {
		yield(n, a)
	}
	for _, t := range n.Throws {
		yield(n, t)
	}
	n.walkAnns(n, yield)
}

func (n *Function) String() string {
	var b strings.Builder
	if n.OneWay {
		b.WriteString("oneway ")
	}
	if n.ReturnType != nil {
		b.WriteString(n.ReturnType.String())
	} else {
		b.WriteString("void")
	}
	fmt.Fprintf(&b, " %s(", n.Name)
	for i, a := range n.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.String())
	}
	b.WriteByte(')')
	if len(n.Throws) > 0 {
		b.WriteString(" throws (")
		for i, t := range n.Throws {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(t.String())
		}
		b.WriteByte(')')
	}
	b.WriteString(n.annString())
	return b.String()
}

// Field appears in struct/exception bodies, function argument lists,
// throws clauses, and xsd_attrs bodies. Tag is nil when the grammar
// omitted the optional `N:` prefix.
type Field struct {
	span
	annotations
	Tag          *int64
	Required     bool
	Type         Type
	Name         string
	Default      Value
	XSDOptional  bool
	XSDNillable  bool
	XSDAttrs     []*Field
}

func (n *Field) Walk(yield func(parent, child Node)) {
	yield(n, n.Type)
	if node, ok := n.Default.(Node); ok {
		yield(n, node)
	}
	for _, a := range n.XSDAttrs {
		yield(n, a)
	}
	n.walkAnns(n, yield)
}

func (n *Field) String() string {
	var b strings.Builder
	if n.Tag != nil {
		fmt.Fprintf(&b, "%d: ", *n.Tag)
	}
	if n.Required {
		b.WriteString("required ")
	}
	b.WriteString(n.Type.String())
	b.WriteByte(' ')
	b.WriteString(n.Name)
	if n.Default != nil {
		b.WriteString(" = ")
		b.WriteString(renderValue(n.Default))
	}
	if n.XSDOptional {
		b.WriteString(" xsd_optional")
	}
	if n.XSDNillable {
		b.WriteString(" xsd_nillable")
	}
	if len(n.XSDAttrs) > 0 {
		b.WriteString(" xsd_attrs {")
		for _, a := range n.XSDAttrs {
			fmt.Fprintf(&b, " %s;", a)
		}
		b.WriteString(" }")
	}
	b.WriteString(n.annString())
	return b.String()
}

// TypeAnnotation is a `(name = "value")` annotation entry.
type TypeAnnotation struct {
	span
	Name  string
	Value string
}

func (n *TypeAnnotation) Walk(func(parent, child Node)) {}

func (n *TypeAnnotation) String() string {
	return fmt.Sprintf("%s = %q", n.Name, n.Value)
}

// baseType implements the shared shape of String/Binary/Slist/Bool/
// Byte/I16/I32/I64/Double: a span, annotations, and a fixed keyword.
type baseType struct {
	span
	annotations
	kw string
}

func (n *baseType) isType()       {}
func (n *baseType) String() string { return n.kw + n.annString() }

// Each concrete base type defines its own Walk rather than inheriting
// baseType's, so the node passed to yield as parent is the concrete
// *String/*Bool/etc., not the embedded *baseType.

type String struct{ baseType }
type Binary struct{ baseType }
type Slist struct{ baseType }
type Bool struct{ baseType }
type Byte struct{ baseType }
type I16 struct{ baseType }
type I32 struct{ baseType }
type I64 struct{ baseType }
type Double struct{ baseType }

func (n *String) Walk(yield func(parent, child Node)) { n.walkAnns(n, yield) }
func (n *Binary) Walk(yield func(parent, child Node)) { n.walkAnns(n, yield) }
func (n *Slist) Walk(yield func(parent, child Node))  { n.walkAnns(n, yield) }
func (n *Bool) Walk(yield func(parent, child Node))   { n.walkAnns(n, yield) }
func (n *Byte) Walk(yield func(parent, child Node))   { n.walkAnns(n, yield) }
func (n *I16) Walk(yield func(parent, child Node))    { n.walkAnns(n, yield) }
func (n *I32) Walk(yield func(parent, child Node))    { n.walkAnns(n, yield) }
func (n *I64) Walk(yield func(parent, child Node))    { n.walkAnns(n, yield) }
func (n *Double) Walk(yield func(parent, child Node)) { n.walkAnns(n, yield) }

func NewString(sp source.Span) *String { return &String{baseType{span{sp}, annotations{}, "string"}} }
func NewBinary(sp source.Span) *Binary { return &Binary{baseType{span{sp}, annotations{}, "binary"}} }
func NewSlist(sp source.Span) *Slist   { return &Slist{baseType{span{sp}, annotations{}, "slist"}} }
func NewBool(sp source.Span) *Bool     { return &Bool{baseType{span{sp}, annotations{}, "bool"}} }
func NewByte(sp source.Span) *Byte     { return &Byte{baseType{span{sp}, annotations{}, "byte"}} }
func NewI16(sp source.Span) *I16       { return &I16{baseType{span{sp}, annotations{}, "i16"}} }
func NewI32(sp source.Span) *I32       { return &I32{baseType{span{sp}, annotations{}, "i32"}} }
func NewI64(sp source.Span) *I64       { return &I64{baseType{span{sp}, annotations{}, "i64"}} }
func NewDouble(sp source.Span) *Double { return &Double{baseType{span{sp}, annotations{}, "double"}} }

// Map is the `map<K, V>` container type, with an optional C++-type hint.
type Map struct {
	span
	annotations
	Key, Elem Type
	CppType   string
}

func (n *Map) isType() {}

func (n *Map) Walk(yield func(parent, child Node)) {
	yield(n, n.Key)
	yield(n, n.Elem)
	n.walkAnns(n, yield)
}

func (n *Map) String() string {
	s := fmt.Sprintf("map<%s, %s>", n.Key, n.Elem)
	if n.CppType != "" {
		s = fmt.Sprintf("map cpp_type %q <%s, %s>", n.CppType, n.Key, n.Elem)
	}
	return s + n.annString()
}

// Set is the `set<V>` container type, with an optional C++-type hint.
type Set struct {
	span
	annotations
	Elem    Type
	CppType string
}

func (n *Set) isType() {}

func (n *Set) Walk(yield func(parent, child Node)) {
	yield(n, n.Elem)
	n.walkAnns(n, yield)
}

func (n *Set) String() string {
	s := fmt.Sprintf("set<%s>", n.Elem)
	if n.CppType != "" {
		s = fmt.Sprintf("set cpp_type %q <%s>", n.CppType, n.Elem)
	}
	return s + n.annString()
}

// List is the `list<V>` container type, with an optional C++-type hint
// placed after the element type in source order, unlike Map and Set.
type List struct {
	span
	annotations
	Elem    Type
	CppType string
}

func (n *List) isType() {}

func (n *List) Walk(yield func(parent, child Node)) {
	yield(n, n.Elem)
	n.walkAnns(n, yield)
}

func (n *List) String() string {
	s := fmt.Sprintf("list<%s>", n.Elem)
	if n.CppType != "" {
		s = fmt.Sprintf("%s cpp_type %q", s, n.CppType)
	}
	return s + n.annString()
}

// identifierType adapts *Identifier to ast.Type when a field_type
// position resolves to a user-named type rather than a base/container
// type; IDENTIFIER itself never carries annotations in the grammar, so
// AddAnnotations is a no-op here.
type identifierType struct {
	*Identifier
}

func (identifierType) isType()                        {}
func (identifierType) Annotations() []*TypeAnnotation  { return nil }
func (identifierType) AddAnnotations([]*TypeAnnotation) {}

// AsType adapts id for use in a field_type position.
func AsType(id *Identifier) Type { return identifierType{id} }

// RefName reports whether t is an unresolved reference to another named
// declaration (the IDENTIFIER form of field_type, as opposed to a base or
// container type), returning the referenced name if so. Used by the
// resolver to keep following a typedef chain until it lands on a concrete
// type.
func RefName(t Type) (string, bool) {
	id, ok := t.(identifierType)
	if !ok {
		return "", false
	}
	return id.Name, true
}
