// Package loader follows include edges starting from a root .thrift file,
// parsing every reachable file exactly once and indexing each one into a
// per-module SymbolTable.
package loader

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ava12/ptsd"
	"github.com/ava12/ptsd/ast"
	"github.com/ava12/ptsd/parser"
)

// Loader holds every file reached while following includes from a root
// file, along with the symbol table built for each one.
type Loader struct {
	logger  func(string)
	thrifts map[string]*ast.Thrift
	modules map[string]*SymbolTable
	order   []string // module names, in first-registration order
	paths   []string // canonical file paths, in processing order
}

// New parses rootPath and every file it (transitively) includes, returning
// a Loader populated with one SymbolTable per module. logger, if non-nil,
// receives one progress message per file actually parsed (none for cache
// hits), plus a warning for each file whose module name is already taken;
// a nil logger discards the messages.
func New(rootPath string, logger func(string)) (*Loader, error) {
	if logger == nil {
		logger = func(string) {}
	}
	l := &Loader{
		logger:  logger,
		thrifts: make(map[string]*ast.Thrift),
		modules: make(map[string]*SymbolTable),
	}
	if err := l.process(rootPath); err != nil {
		return nil, err
	}
	return l, nil
}

// process parses path if it hasn't already been parsed, then recurses into
// its includes. The cache lookup happens before the logger is invoked, so a
// file reached a second time (a diamond include, or a cycle) is silently
// skipped rather than logged again.
func (l *Loader) process(path string) error {
	canonical, err := canonicalize(path)
	if err != nil {
		return ptsd.NewIOError(path, err)
	}
	if _, seen := l.thrifts[canonical]; seen {
		return nil
	}

	l.logger(fmt.Sprintf("Processing %s", canonical))

	thrift, err := parser.ParseFile(canonical)
	if err != nil {
		return err
	}
	l.thrifts[canonical] = thrift
	l.paths = append(l.paths, canonical)

	name := moduleName(canonical)
	if _, dup := l.modules[name]; dup {
		l.logger(fmt.Sprintf("warning: %s redeclares module name %q", canonical, name))
	} else {
		l.order = append(l.order, name)
	}
	l.modules[name] = buildSymbolTable(thrift)

	dir := filepath.Dir(canonical)
	for _, inc := range thrift.Includes {
		incPath := inc.Path
		if !filepath.IsAbs(incPath) {
			incPath = filepath.Join(dir, incPath)
		}
		if err := l.process(incPath); err != nil {
			return err
		}
	}
	return nil
}

func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	real, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", err
	}
	return real, nil
}

func moduleName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Thrifts returns every parsed file, keyed by canonical path.
func (l *Loader) Thrifts() map[string]*ast.Thrift { return l.thrifts }

// Modules returns every module's symbol table, keyed by module name.
func (l *Loader) Modules() map[string]*SymbolTable { return l.modules }

// Find resolves name against module's symbol table. A name containing a
// dot is split on the first dot into prefix.rest and re-rooted in the
// module named by prefix; this is how a field type like "shared.SharedID"
// crosses from one module's table into another's. When recursive is true
// and the resolved value is itself an *ast.Identifier reference, it is
// looked up again within the module it was found in, following typedef
// and const-alias chains to their concrete value.
func (l *Loader) Find(name, module string, recursive bool) (any, error) {
	table, ok := l.modules[module]
	if !ok {
		return nil, ptsd.NewLookupError("unknown module %q", module)
	}
	if v, ok := table.entries[name]; ok {
		return l.resolveFurther(v, module, recursive)
	}
	if dot := strings.IndexByte(name, '.'); dot >= 0 {
		prefix, rest := name[:dot], name[dot+1:]
		return l.Find(rest, prefix, recursive)
	}
	return nil, ptsd.NewLookupError("%q not found in module %q", name, module)
}

func (l *Loader) resolveFurther(v any, module string, recursive bool) (any, error) {
	if !recursive {
		return v, nil
	}
	if id, ok := v.(*ast.Identifier); ok {
		return l.Find(id.Name, module, recursive)
	}
	if t, ok := v.(ast.Type); ok {
		if name, ok := ast.RefName(t); ok {
			return l.Find(name, module, recursive)
		}
	}
	return v, nil
}

// Lookup resolves name starting from module. When module is "" it probes
// every loaded module in registration order and returns the first match,
// rather than requiring the caller to know which file declared name.
func (l *Loader) Lookup(name, module string) (any, error) {
	if module != "" {
		return l.Find(name, module, true)
	}
	var lastErr error
	for _, m := range l.order {
		v, err := l.Find(name, m, true)
		if err == nil {
			return v, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = ptsd.NewLookupError("no modules registered")
	}
	return nil, lastErr
}

// Dump writes a pretty-printed rendering of every loaded file to w, in
// processing order, and mirrors each one through the logger as well.
func (l *Loader) Dump(w io.Writer) error {
	for _, path := range l.paths {
		text := l.thrifts[path].String()
		l.logger(text)
		if _, err := io.WriteString(w, text); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
