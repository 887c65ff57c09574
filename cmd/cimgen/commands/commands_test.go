package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/cim/compiler/gen"
)

const testSchema = "../../../compiler/load/testdata/valid"

func runCmd(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errb bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errb)
	err = root.ExecuteContext(context.Background())
	return out.String(), errb.String(), err
}

func TestGenerateCmd(t *testing.T) {
	t.Parallel()
	target := filepath.Join(t.TempDir(), "model")

	_, stderr, err := runCmd(t, "generate", testSchema, "--target", target, "--workers", "2")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(target, "model.go"))
	assert.FileExists(t, filepath.Join(target, "relations.go"))
	assert.Contains(t, stderr, "generated package")
	assert.NotContains(t, stderr, "file written")

	_, stderr, err = runCmd(t, "generate", testSchema, "--target", target, "-v")
	require.NoError(t, err)
	assert.Contains(t, stderr, "file unchanged")
}

func TestGenerateCmdPackageFlag(t *testing.T) {
	t.Parallel()
	target := t.TempDir()

	_, _, err := runCmd(t, "generate", testSchema, "--target", target, "--package", "items", "--header", "Code generated for tests.")
	require.NoError(t, err)
	content, err := os.ReadFile(filepath.Join(target, "items.go"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "// Code generated for tests.\n")
	assert.Contains(t, string(content), "package items")
}

func TestGenerateCmdConfigFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	target := filepath.Join(dir, "out")
	config := filepath.Join(dir, "cimgen.yaml")
	require.NoError(t, os.WriteFile(config, []byte("target: "+target+"\npackage: fromfile\nworkers: 1\n"), 0o644))

	_, _, err := runCmd(t, "generate", testSchema, "--config", config)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(target, "fromfile.go"))

	// Flags win over the file.
	_, _, err = runCmd(t, "generate", testSchema, "--config", config, "--package", "fromflag")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(target, "fromflag.go"))
	assert.NoFileExists(t, filepath.Join(target, "fromfile.go"))
}

func TestGenerateCmdErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing target", []string{"generate", testSchema}, "missing target directory"},
		{"invalid package", []string{"generate", testSchema, "-t", t.TempDir(), "-p", "not-a-name"}, "package name must be a Go identifier"},
		{"negative workers", []string{"generate", testSchema, "-t", t.TempDir(), "-w", "-1"}, "workers must be positive"},
		{"missing schema", []string{"generate", "testdata/missing", "-t", t.TempDir()}, "load schema"},
		{"missing config", []string{"generate", testSchema, "-c", "testdata/missing.yaml"}, "read config"},
		{"too many args", []string{"generate", "a", "b"}, "accepts at most 1 arg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCmd(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDescribeCmd(t *testing.T) {
	t.Parallel()
	stdout, _, err := runCmd(t, "describe", testSchema)
	require.NoError(t, err)
	assert.Contains(t, stdout, "CLASS")
	assert.Contains(t, stdout, "Element")
	assert.Contains(t, stdout, "Items")
	assert.Contains(t, stdout, "Group.items <-> Item.group")
	assert.Contains(t, stdout, "O2M")
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	cfg, err := loadConfig(write("full.yaml", "target: out\npackage: cim\nheader: h\nworkers: 3\n"))
	require.NoError(t, err)
	assert.Equal(t, fileConfig{Target: "out", Package: "cim", Header: "h", Workers: 3}, *cfg)
	assert.Len(t, cfg.options(), 4)

	cfg, err = loadConfig(write("empty.yaml", ""))
	require.NoError(t, err)
	assert.Equal(t, fileConfig{}, *cfg)
	assert.Empty(t, cfg.options())

	_, err = loadConfig(write("unknown.yaml", "targets: out\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "field targets not found")

	_, err = loadConfig(write("invalid.yaml", "package: cim-14\nworkers: -2\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
	assert.Contains(t, err.Error(), "Package")
	assert.Contains(t, err.Error(), "Workers")
	var cerr *gen.ConfigError
	assert.ErrorAs(t, err, &cerr)

	cfg.merge(fileConfig{Package: "other", Workers: 2})
	assert.Equal(t, fileConfig{Package: "other", Workers: 2}, *cfg)
}
