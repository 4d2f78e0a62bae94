package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ava12/ptsd/ast"
	"github.com/ava12/ptsd/source"
)

func span(src *source.Source) source.Span {
	return source.NewSpan(src, 0, src.Len())
}

func TestBaseTypeString(t *testing.T) {
	src := source.New("t", []byte("string"))
	s := ast.NewString(span(src))
	assert.Equal(t, "string", s.String())
}

func TestBaseTypeWithAnnotation(t *testing.T) {
	src := source.New("t", []byte("string"))
	s := ast.NewString(span(src))
	ann := &ast.TypeAnnotation{Name: "cpp.ref", Value: "true"}
	s.AddAnnotations([]*ast.TypeAnnotation{ann})
	assert.Equal(t, `string (cpp.ref = "true")`, s.String())
}

func TestListCppTypeHintAfterElement(t *testing.T) {
	src := source.New("t", []byte(""))
	list := &ast.List{Elem: ast.NewString(span(src)), CppType: "std::list"}
	assert.Equal(t, `list<string> cpp_type "std::list"`, list.String())
}

func TestMapCppTypeHintBeforeAngles(t *testing.T) {
	src := source.New("t", []byte(""))
	m := &ast.Map{Key: ast.NewString(span(src)), Elem: ast.NewI32(span(src)), CppType: "std::map"}
	assert.Equal(t, `map cpp_type "std::map" <string, i32>`, m.String())
}

func TestWalkReportsConcreteParent(t *testing.T) {
	src := source.New("t", []byte(""))
	bt := ast.NewBool(span(src))
	ann := &ast.TypeAnnotation{Name: "x", Value: "y"}
	bt.AddAnnotations([]*ast.TypeAnnotation{ann})

	var gotParent ast.Node
	bt.Walk(func(parent, child ast.Node) {
		gotParent = parent
	})

	if _, ok := gotParent.(*ast.Bool); !ok {
		t.Fatalf("Walk reported parent of type %T, want *ast.Bool", gotParent)
	}
}

func TestStructWalkVisitsFieldsThenAnnotations(t *testing.T) {
	src := source.New("t", []byte(""))
	field := &ast.Field{Name: "id", Type: ast.NewI64(span(src))}
	ann := &ast.TypeAnnotation{Name: "a", Value: "b"}
	st := &ast.Struct{Name: "Foo", Fields: []*ast.Field{field}}
	st.AddAnnotations([]*ast.TypeAnnotation{ann})

	var children []ast.Node
	st.Walk(func(parent, child ast.Node) {
		assert.Same(t, ast.Node(st), parent)
		children = append(children, child)
	})

	if assert.Len(t, children, 2) {
		assert.Same(t, ast.Node(field), children[0])
		assert.Same(t, ast.Node(ann), children[1])
	}
}

func TestIdentifierTypeDelegatesString(t *testing.T) {
	src := source.New("t", []byte("shared.SharedID"))
	id := ast.NewIdentifier(span(src), "shared.SharedID")
	typ := ast.AsType(id)
	assert.Equal(t, "shared.SharedID", typ.String())
	assert.Nil(t, typ.Annotations())
}

func TestRefNameOnlyMatchesIdentifierType(t *testing.T) {
	src := source.New("t", []byte(""))
	id := ast.NewIdentifier(span(src), "Foo")
	name, ok := ast.RefName(ast.AsType(id))
	assert.True(t, ok)
	assert.Equal(t, "Foo", name)

	_, ok = ast.RefName(ast.NewString(span(src)))
	assert.False(t, ok)
}

func TestConstValueRendering(t *testing.T) {
	src := source.New("t", []byte(""))
	c := &ast.Const{
		Type: ast.NewI32(span(src)),
		Name: "Answer",
		Value: ast.ConstList{
			int64(1),
			ast.Literal("two"),
			ast.ConstMap{{Key: ast.Literal("k"), Value: int64(3)}},
		},
	}
	assert.Equal(t, `const i32 Answer = [1, "two", {"k": 3}]`, c.String())
}

func TestFieldStringWithTagAndDefault(t *testing.T) {
	src := source.New("t", []byte(""))
	tag := int64(1)
	f := &ast.Field{
		Tag: &tag, Required: true, Type: ast.NewString(span(src)), Name: "name",
		Default: ast.Literal("bob"),
	}
	assert.Equal(t, `1: required string name = "bob"`, f.String())
}

func TestEnumStringAndSpanContainment(t *testing.T) {
	text := "enum Color {\n  RED,\n  GREEN,\n}"
	src := source.New("t", []byte(text))
	e := &ast.Enum{
		Name: "Color",
		Defs: []*ast.EnumDef{
			{Name: "RED", Tag: 0},
			{Name: "GREEN", Tag: 1},
		},
	}
	e.SetSpan(source.NewSpan(src, 0, len(text)))
	assert.Contains(t, e.String(), "RED = 0")
	assert.Contains(t, e.String(), "GREEN = 1")

	sp := e.Span()
	assert.GreaterOrEqual(t, sp.Start.Offset(), 0)
	assert.LessOrEqual(t, sp.End.Offset(), src.Len())
	assert.LessOrEqual(t, sp.Start.Offset(), sp.End.Offset())
}
