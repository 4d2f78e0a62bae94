package lexer

// Reserved-word tables, grouped by role per spec §4.1. Every capitalized
// terminal used in the grammar (see parser package) belongs to exactly
// one of Namespaces, Types, or Actions; Disallow is a separate list of
// words that may never be used as identifiers even though they are not
// grammar keywords themselves.
//
// true/false are deliberately absent: they are literals, not reserved
// words, and are rewritten by the lexer to INTCONSTANT 1/0.

// Namespaces holds every namespace-directive keyword, including the two
// header forms that take a LITERAL rather than an IDENTIFIER
// (cpp_include, xsd_namespace).
var Namespaces = map[string]Kind{
	"namespace":           NAMESPACE,
	"cpp_namespace":       CPP_NAMESPACE,
	"cpp_include":         CPP_INCLUDE,
	"php_namespace":       PHP_NAMESPACE,
	"py_module":           PY_MODULE,
	"perl_package":        PERL_PACKAGE,
	"ruby_namespace":      RUBY_NAMESPACE,
	"smalltalk_category":  SMALLTALK_CATEGORY,
	"smalltalk_prefix":    SMALLTALK_PREFIX,
	"java_package":        JAVA_PACKAGE,
	"cocoa_prefix":        COCOA_PREFIX,
	"xsd_namespace":       XSD_NAMESPACE,
	"csharp_namespace":    CSHARP_NAMESPACE,
	"delphi_namespace":    DELPHI_NAMESPACE,
}

// Types holds every base-type and container-type keyword.
var Types = map[string]Kind{
	"string": STRING,
	"binary": BINARY,
	"slist":  SLIST,
	"bool":   BOOL,
	"byte":   BYTE,
	"i16":    I16,
	"i32":    I32,
	"i64":    I64,
	"double": DOUBLE,
	"map":    MAP,
	"set":    SET,
	"list":   LIST,
}

// Actions holds the remaining structural and grammar keywords, including
// the xsd_* variants.
var Actions = map[string]Kind{
	"struct":       STRUCT,
	"union":        UNION,
	"enum":         ENUM,
	"senum":        SENUM,
	"exception":    EXCEPTION,
	"service":      SERVICE,
	"typedef":      TYPEDEF,
	"const":        CONST,
	"include":      INCLUDE,
	"extends":      EXTENDS,
	"throws":       THROWS,
	"oneway":       ONEWAY,
	"void":         VOID,
	"required":     REQUIRED,
	"optional":     OPTIONAL,
	"xsd_optional": XSD_OPTIONAL,
	"xsd_nillable": XSD_NILLABLE,
	"xsd_attrs":    XSD_ATTRS,
	"xsd_all":      XSD_ALL,
	"cpp_type":     CPP_TYPE,
}

// Disallow lists identifiers that are rejected outright even though they
// are not themselves grammar keywords — typically because they collide
// with reserved words in one of the languages a downstream generator
// might target. This is a representative subset of Apache Thrift's
// public reserved-identifier list (the full list lives in the original
// ptsd package's constants.py, which was not part of the retrieval pack);
// it is large enough to exercise the disallow code path (spec §4.2 rule
// 8, second branch) without attempting to reconstruct every entry.
var Disallow = map[string]struct{}{
	"BEGIN": {}, "END": {}, "__CLASS__": {}, "__DIR__": {}, "__FILE__": {},
	"__FUNCTION__": {}, "__LINE__": {}, "__METHOD__": {}, "__NAMESPACE__": {},
	"abstract": {}, "alias": {}, "and": {}, "args": {}, "as": {}, "assert": {},
	"begin": {}, "break": {}, "case": {}, "catch": {}, "class": {}, "clone": {},
	"continue": {}, "declare": {}, "def": {}, "default": {}, "del": {},
	"delete": {}, "do": {}, "dynamic": {}, "elif": {}, "else": {}, "elseif": {},
	"end": {}, "ensure": {}, "except": {}, "exec": {}, "finally": {},
	"float": {}, "for": {}, "foreach": {}, "function": {}, "global": {},
	"goto": {}, "if": {}, "implements": {}, "import": {}, "in": {},
	"inline": {}, "instanceof": {}, "interface": {}, "is": {}, "lambda": {},
	"module": {}, "native": {}, "new": {}, "next": {}, "nil": {}, "not": {},
	"or": {}, "pass": {}, "public": {}, "print": {}, "private": {},
	"protected": {}, "raise": {}, "redo": {}, "rescue": {}, "retry": {},
	"register": {}, "return": {}, "self": {}, "sizeof": {}, "static": {},
	"super": {}, "switch": {}, "synchronized": {}, "then": {}, "this": {},
	"throw": {}, "transient": {}, "try": {}, "undef": {}, "unless": {},
	"unsigned": {}, "until": {}, "use": {}, "var": {}, "virtual": {},
	"volatile": {}, "when": {}, "while": {}, "with": {}, "xor": {}, "yield": {},
}

// reservedKind returns the Kind a reserved identifier-shaped word should
// be retokenized as, and whether it is reserved at all.
func reservedKind(text string) (Kind, bool) {
	if k, ok := Namespaces[text]; ok {
		return k, true
	}
	if k, ok := Types[text]; ok {
		return k, true
	}
	if k, ok := Actions[text]; ok {
		return k, true
	}
	return 0, false
}
