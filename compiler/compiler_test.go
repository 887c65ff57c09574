package compiler

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/cim/compiler/gen"
)

func TestLoadGraph(t *testing.T) {
	t.Parallel()
	graph, err := LoadGraph("load/testdata/valid", gen.WithTarget(t.TempDir()), gen.WithPackage("model"))
	require.NoError(t, err)
	require.Len(t, graph.Nodes, 3)
	require.Len(t, graph.Assocs, 1)
	assert.Equal(t, "Group.items", graph.Assocs[0].From.Label())
	assert.Equal(t, gen.O2M, graph.Assocs[0].Kind())

	_, err = LoadGraph("load/testdata/failure", gen.WithTarget(t.TempDir()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cimgen: load schema")

	_, err = LoadGraph("load/testdata/valid", gen.WithWorkers(0))
	assert.True(t, gen.IsConfigError(err))

	_, err = LoadGraph("load/testdata/valid")
	assert.ErrorIs(t, err, gen.ErrMissingConfig)
}

func TestGenerate(t *testing.T) {
	t.Parallel()
	target := filepath.Join(t.TempDir(), "model")
	err := Generate(context.Background(), "load/testdata/valid", gen.WithTarget(target))
	require.NoError(t, err)

	for _, name := range []string{"element.go", "group.go", "item.go", "model.go", "relations.go", "enums.go"} {
		assert.FileExists(t, filepath.Join(target, name))
	}
	content, err := os.ReadFile(filepath.Join(target, "item.go"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "package model")
	assert.Contains(t, string(content), "func (_e *Item) SetGroup(v *Group) {")
}

func TestGenerateCIM14Schema(t *testing.T) {
	t.Parallel()
	target := filepath.Join(t.TempDir(), "cim14")
	err := Generate(context.Background(), "../cim14/schema", gen.WithTarget(target))
	require.NoError(t, err)

	committed, err := os.ReadDir("../cim14")
	require.NoError(t, err)
	var want []string
	for _, e := range committed {
		name := e.Name()
		if e.IsDir() || filepath.Ext(name) != ".go" || name == "generate.go" || strings.HasSuffix(name, "_test.go") {
			continue
		}
		want = append(want, name)
	}
	generated, err := os.ReadDir(target)
	require.NoError(t, err)
	var got []string
	for _, e := range generated {
		got = append(got, e.Name())
	}
	assert.ElementsMatch(t, want, got)
}
