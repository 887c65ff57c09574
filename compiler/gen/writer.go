package gen

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/imports"
)

// render executes the file task and formats the result.
func (g *Generator) render(f fileTask) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.render().Render(&buf); err != nil {
		return nil, NewGenerationError("render", f.name, "", err)
	}
	path := filepath.Join(g.graph.Config.Target, f.name)
	formatted, err := imports.Process(path, buf.Bytes(), nil)
	if err != nil {
		return nil, NewGenerationError("format", f.name, "", err)
	}
	return formatted, nil
}

// writeFile renders a single file and writes it to the target directory.
// Files whose content did not change are left untouched, and changed
// reports whether the file was written.
func (g *Generator) writeFile(f fileTask) (changed bool, err error) {
	content, err := g.render(f)
	if err != nil {
		return false, err
	}
	path := filepath.Join(g.graph.Config.Target, f.name)
	if prev, err := os.ReadFile(path); err == nil && bytes.Equal(prev, content) {
		g.log.Debug("file unchanged", "file", f.name)
		return false, nil
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return false, NewGenerationError("write", f.name, "", err)
	}
	g.log.Debug("file written", "file", f.name, "bytes", len(content))
	return true, nil
}

// cleanup removes the Go files of the target directory that carry the
// generated header but are not part of files, such as the file of a class
// that was removed from the schema.
func (g *Generator) cleanup(files []fileTask) error {
	keep := make(map[string]bool, len(files))
	for _, f := range files {
		keep[f.name] = true
	}
	target := g.graph.Config.Target
	entries, err := os.ReadDir(target)
	if err != nil {
		return NewGenerationError("cleanup", target, "", err)
	}
	header := []byte(headerLine(g.graph.Config.Header))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || keep[name] || filepath.Ext(name) != ".go" || strings.HasSuffix(name, "_test.go") {
			continue
		}
		path := filepath.Join(target, name)
		content, err := os.ReadFile(path)
		if err != nil {
			return NewGenerationError("cleanup", name, "", err)
		}
		if !bytes.HasPrefix(content, header) {
			continue
		}
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return NewGenerationError("cleanup", name, "", err)
		}
		g.log.Debug("stale file removed", "file", name)
	}
	return nil
}

// headerLine returns the header as rendered at the top of generated files.
func headerLine(header string) string {
	if strings.HasPrefix(header, "//") {
		return header
	}
	return "// " + header
}
