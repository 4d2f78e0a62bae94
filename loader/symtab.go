package loader

import "github.com/ava12/ptsd/ast"

// SymbolTable maps the module-scope names declared by one parsed file to
// their resolved value, built by a single pre-order walk over its AST.
// Later registrations silently overwrite earlier ones, per spec.
type SymbolTable struct {
	entries map[string]any
}

func newSymbolTable() *SymbolTable {
	return &SymbolTable{entries: make(map[string]any)}
}

// buildSymbolTable walks thrift's AST once, registering every Typedef,
// Enum, EnumDef, Const, Struct, Exception, and Service it finds.
func buildSymbolTable(thrift *ast.Thrift) *SymbolTable {
	t := newSymbolTable()
	var visit func(parent, node ast.Node)
	visit = func(parent, node ast.Node) {
		t.register(parent, node)
		node.Walk(visit)
	}
	thrift.Walk(visit)
	return t
}

func (t *SymbolTable) register(parent, node ast.Node) {
	switch n := node.(type) {
	case *ast.Typedef:
		t.entries[n.Name] = n.Type
	case *ast.Enum:
		t.entries[n.Name] = n
	case *ast.EnumDef:
		if p, ok := parent.(*ast.Enum); ok {
			t.entries[p.Name+"."+n.Name] = n.Tag
		}
	case *ast.Const:
		t.entries[n.Name] = n.Value
	case *ast.Struct:
		t.entries[n.Name] = n
	case *ast.Exception:
		t.entries[n.Name] = n
	case *ast.Service:
		t.entries[n.Name] = n
	}
}
