package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is a constant value as produced by the const_value production:
// one of int64, float64, Literal, *Identifier (a reference to another
// const or enum value), ConstList, or ConstMap. Declared as any rather
// than a method-bearing interface because two of its members (int64,
// float64) are predeclared types that cannot carry a marker method;
// renderValue's type switch is therefore the actual closed-set contract,
// and is the single place that must be extended if the set ever grows.
type Value = any

// Literal is a bare string constant value, distinct from lexer.Literal
// only in package — the AST layer does not depend on the lexer.
type Literal string

// ConstMapEntry is one key/value pair of a const_value map literal.
type ConstMapEntry struct {
	Key, Value Value
}

// ConstList is an ordered `[ ... ]` constant list.
type ConstList []Value

// ConstMap is an ordered `{ ... }` constant map. Not a Go map: per the
// grammar, const_value keys need not be hashable Go values (they can be
// ConstLists or ConstMaps themselves), so entries are kept as an ordered
// slice of pairs instead.
type ConstMap []ConstMapEntry

// renderValue pretty-prints a Value the way the parser would re-emit it,
// used by Const.String and Field.String for round-trip.
func renderValue(v Value) string {
	switch val := v.(type) {
	case nil:
		return ""
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		// No exponent, and always a '.', so the text lexes back as a
		// DUBCONSTANT rather than an INTCONSTANT or a number-identifier pair.
		s := strconv.FormatFloat(val, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	case Literal:
		return strconv.Quote(string(val))
	case *Identifier:
		return val.Name
	case ConstList:
		parts := make([]string, len(val))
		for i, e := range val {
			parts[i] = renderValue(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case ConstMap:
		parts := make([]string, len(val))
		for i, e := range val {
			parts[i] = renderValue(e.Key) + ": " + renderValue(e.Value)
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return fmt.Sprintf("%v", val)
	}
}
