package load

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	s, err := Parse(strings.NewReader(`
package: LoadModel
namespace: http://iec.ch/TC57/CIM-generic#LoadModel
prefix: cimLoadModel
enums:
  - name: SeasonName
    values: [spring, fall, winter, summer]
classes:
  - name: Season
    super: Element
    doc: A specified time period of the year.
    attributes:
      - {name: name, type: enum, enum: SeasonName, default: spring}
      - {name: startDate, type: string, default: ""}
      - {name: cutLevel, type: float, default: 0.5}
    references:
      - {name: seasonDayTypeSchedules, type: SeasonDayTypeSchedule, many: true, inverse: season}
`), "inline")
	require.NoError(t, err)
	assert.Equal(t, "LoadModel", s.Package)
	assert.Equal(t, "cimLoadModel", s.Prefix)
	assert.Equal(t, "inline", s.Pos)
	require.Len(t, s.Enums, 1)
	assert.Equal(t, []string{"spring", "fall", "winter", "summer"}, s.Enums[0].Values)

	c, ok := s.Class("Season")
	require.True(t, ok)
	assert.Equal(t, "Element", c.Super)
	require.Len(t, c.Attributes, 3)
	assert.Equal(t, "spring", c.Attributes[0].Default)
	assert.Equal(t, TypeEnum, c.Attributes[0].Type)
	assert.Equal(t, 0.5, c.Attributes[2].Default)
	require.Len(t, c.References, 1)
	assert.True(t, c.References[0].Many)
	assert.Equal(t, "season", c.References[0].Inverse)

	_, ok = s.Class("Missing")
	assert.False(t, ok)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		err  string
	}{
		{
			name: "empty",
			doc:  "",
			err:  "schema test: empty document",
		},
		{
			name: "unknown_key",
			doc:  "package: P\nclasses: []\nversion: 2\n",
			err:  "field version not found",
		},
		{
			name: "missing_package",
			doc:  "classes: []\n",
			err:  "missing package name",
		},
		{
			name: "missing_class_name",
			doc:  "package: P\nclasses:\n  - super: X\n",
			err:  "class #0: missing name",
		},
		{
			name: "unknown_attribute_type",
			doc:  "package: P\nclasses:\n  - name: C\n    attributes:\n      - {name: a, type: complex}\n",
			err:  `class "C": attribute "a": unknown type "complex"`,
		},
		{
			name: "enum_without_name",
			doc:  "package: P\nclasses:\n  - name: C\n    attributes:\n      - {name: a, type: enum}\n",
			err:  `attribute "a": missing enum name`,
		},
		{
			name: "enum_on_scalar",
			doc:  "package: P\nclasses:\n  - name: C\n    attributes:\n      - {name: a, type: int, enum: E}\n",
			err:  `attribute "a": enum "E" set on int attribute`,
		},
		{
			name: "reference_without_inverse",
			doc:  "package: P\nclasses:\n  - name: C\n    references:\n      - {name: r, type: D}\n",
			err:  `reference "r": missing inverse`,
		},
		{
			name: "reference_without_type",
			doc:  "package: P\nclasses:\n  - name: C\n    references:\n      - {name: r, inverse: c}\n",
			err:  `reference "r": missing type`,
		},
		{
			name: "enum_without_values",
			doc:  "package: P\nenums:\n  - name: E\nclasses: []\n",
			err:  `enum "E": no values`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(strings.NewReader(tt.doc), "test")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.err)
		})
	}
}

func TestLoadDir(t *testing.T) {
	t.Parallel()

	schemas, err := LoadDir("testdata/valid")
	require.NoError(t, err)
	require.Len(t, schemas, 2)
	assert.Equal(t, "Core", schemas[0].Package)
	assert.Equal(t, "Items", schemas[1].Package)
	assert.Equal(t, filepath.Join("testdata/valid", "a_core.yaml"), schemas[0].Pos)

	_, err = LoadDir("testdata/failure")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown type "complex"`)

	_, err = LoadDir(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no schema files found")

	_, err = LoadDir(filepath.Join(t.TempDir(), "missing"))
	assert.True(t, os.IsNotExist(err))
}

func TestLoad(t *testing.T) {
	t.Parallel()

	schemas, err := Load("testdata/valid")
	require.NoError(t, err)
	assert.Len(t, schemas, 2)

	schemas, err = Load("testdata/valid/b_items.yml")
	require.NoError(t, err)
	require.Len(t, schemas, 1)
	c, ok := schemas[0].Class("Item")
	require.True(t, ok)
	assert.Equal(t, "red", c.Attributes[0].Default)

	_, err = Load("testdata/none.yaml")
	require.Error(t, err)
}

func TestIsSchemaFile(t *testing.T) {
	t.Parallel()

	assert.True(t, IsSchemaFile("a.yaml"))
	assert.True(t, IsSchemaFile("dir/b.YML"))
	assert.False(t, IsSchemaFile("notes.txt"))
	assert.False(t, IsSchemaFile("yaml"))
}
