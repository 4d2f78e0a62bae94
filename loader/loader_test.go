package loader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ava12/ptsd"
	"github.com/ava12/ptsd/ast"
	"github.com/ava12/ptsd/loader"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func TestLoaderFollowsIncludes(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"main.thrift":   `include "shared.thrift"` + "\n" + `struct User { 1: shared.SharedID id, }`,
		"shared.thrift": `typedef string SharedID`,
	})

	var logged []string
	l, err := loader.New(filepath.Join(dir, "main.thrift"), func(msg string) { logged = append(logged, msg) })
	require.NoError(t, err)

	assert.Len(t, l.Thrifts(), 2)
	assert.Len(t, l.Modules(), 2)
	assert.Len(t, logged, 2) // one "Processing ..." line per distinct file
}

func TestLoaderIncludeCycleTerminates(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.thrift": `include "b.thrift"`,
		"b.thrift": `include "a.thrift"`,
	})

	l, err := loader.New(filepath.Join(dir, "a.thrift"), nil)
	require.NoError(t, err)
	assert.Len(t, l.Thrifts(), 2) // cache has exactly one entry per canonical path
}

func TestLoaderDiamondIncludeParsesOnce(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"main.thrift": `include "left.thrift"` + "\n" + `include "right.thrift"`,
		"left.thrift": `include "shared.thrift"`,
		"right.thrift": `include "shared.thrift"`,
		"shared.thrift": `typedef string SharedID`,
	})

	var processed int
	l, err := loader.New(filepath.Join(dir, "main.thrift"), func(string) { processed++ })
	require.NoError(t, err)

	assert.Len(t, l.Thrifts(), 4)
	assert.Equal(t, 4, processed) // shared.thrift processed once, not twice
}

func TestLoaderDuplicateModuleNameWarns(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"main.thrift":         `include "nested/shared.thrift"` + "\n" + `include "shared.thrift"`,
		"shared.thrift":       `typedef string SharedID`,
		"nested/shared.thrift": `typedef string OtherID`,
	})

	var warnings []string
	l, err := loader.New(filepath.Join(dir, "main.thrift"), func(msg string) {
		if len(msg) > 7 && msg[:7] == "warning" {
			warnings = append(warnings, msg)
		}
	})
	require.NoError(t, err)
	assert.Len(t, warnings, 1)
	assert.Len(t, l.Thrifts(), 3)
}

func TestLoaderFindCrossModule(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"main.thrift": `include "shared.thrift"` + "\n" +
			`typedef shared.SharedID UserID` + "\n" +
			`struct User { 1: UserID id, }`,
		"shared.thrift": `typedef string SharedID`,
	})

	l, err := loader.New(filepath.Join(dir, "main.thrift"), nil)
	require.NoError(t, err)

	resolved, err := l.Find("UserID", "main", true)
	require.NoError(t, err)
	assert.Equal(t, "string", resolved.(interface{ String() string }).String())

	typ, ok := resolved.(ast.Type)
	require.True(t, ok)
	_, isRef := ast.RefName(typ)
	assert.False(t, isRef, "recursive find must not return an unresolved identifier-reference node")
}

func TestLoaderLookupProbesAllModules(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"main.thrift":   `include "shared.thrift"`,
		"shared.thrift": `const i32 Limit = 10`,
	})

	l, err := loader.New(filepath.Join(dir, "main.thrift"), nil)
	require.NoError(t, err)

	v, err := l.Lookup("Limit", "")
	require.NoError(t, err)
	assert.Equal(t, int64(10), v)

	_, err = l.Lookup("DoesNotExist", "")
	assert.Error(t, err)
}

func TestLoaderUnknownModuleIsLookupError(t *testing.T) {
	dir := writeFiles(t, map[string]string{"main.thrift": ``})
	l, err := loader.New(filepath.Join(dir, "main.thrift"), nil)
	require.NoError(t, err)

	_, err = l.Find("Anything", "nope", true)
	var lookupErr *ptsd.LookupError
	assert.ErrorAs(t, err, &lookupErr)
}
