package load

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse decodes a single schema document. Unknown keys are rejected.
// pos names the source in error messages and is stored in Schema.Pos.
func Parse(r io.Reader, pos string) (*Schema, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	s := &Schema{}
	if err := dec.Decode(s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("schema %s: empty document", pos)
		}
		return nil, fmt.Errorf("schema %s: %w", pos, err)
	}
	if err := s.check(); err != nil {
		return nil, fmt.Errorf("schema %s: %w", pos, err)
	}
	s.Pos = pos
	return s, nil
}

// LoadFile loads the schema stored in path.
func LoadFile(path string) (*Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, path)
}

// LoadDir loads every *.yaml and *.yml file of dir in lexical order.
func LoadDir(dir string) ([]*Schema, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var schemas []*Schema
	for _, e := range entries {
		if e.IsDir() || !IsSchemaFile(e.Name()) {
			continue
		}
		s, err := LoadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		schemas = append(schemas, s)
	}
	if len(schemas) == 0 {
		return nil, fmt.Errorf("no schema files found in %s", dir)
	}
	return schemas, nil
}

// Load loads a schema file, or every schema file of a directory.
func Load(path string) ([]*Schema, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return LoadDir(path)
	}
	s, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return []*Schema{s}, nil
}

// IsSchemaFile reports whether name has a schema file extension.
func IsSchemaFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
