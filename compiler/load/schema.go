// Package load reads CIM class schemas written in YAML.
//
// A schema file describes one CIM package: its enumerations and classes.
// Each class lists scalar attributes and references. A reference names its
// inverse on the target class; the pairing itself is resolved and checked by
// package gen when the loaded schemas are assembled into a graph.
package load

import (
	"errors"
	"fmt"
	"slices"
)

// Attribute types understood by the generator.
const (
	TypeFloat  = "float"
	TypeInt    = "int"
	TypeString = "string"
	TypeBool   = "bool"
	TypeEnum   = "enum"
	TypeUUID   = "uuid"
)

// Types lists every supported attribute type.
var Types = []string{TypeFloat, TypeInt, TypeString, TypeBool, TypeEnum, TypeUUID}

// Schema represents one CIM package loaded from a YAML document.
type Schema struct {
	Package   string   `yaml:"package"`
	Namespace string   `yaml:"namespace,omitempty"`
	Prefix    string   `yaml:"prefix,omitempty"`
	Doc       string   `yaml:"doc,omitempty"`
	Enums     []*Enum  `yaml:"enums,omitempty"`
	Classes   []*Class `yaml:"classes"`
	Pos       string   `yaml:"-"` // Source file, if any.
}

// Enum represents an enumeration with string values.
type Enum struct {
	Name   string   `yaml:"name"`
	Doc    string   `yaml:"doc,omitempty"`
	Values []string `yaml:"values"`
}

// Class represents a CIM class.
type Class struct {
	Name       string       `yaml:"name"`
	Super      string       `yaml:"super,omitempty"`
	Doc        string       `yaml:"doc,omitempty"`
	Attributes []*Attribute `yaml:"attributes,omitempty"`
	References []*Reference `yaml:"references,omitempty"`
}

// Attribute represents a scalar attribute of a class.
type Attribute struct {
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	Enum    string `yaml:"enum,omitempty"`    // Enum name when Type is "enum".
	Default any    `yaml:"default,omitempty"` // Literal default; "uuid" attributes are generated.
	Doc     string `yaml:"doc,omitempty"`
}

// Reference represents one end of a bidirectional association.
type Reference struct {
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	Many    bool   `yaml:"many,omitempty"`
	Inverse string `yaml:"inverse"`
	Doc     string `yaml:"doc,omitempty"`
}

// Class returns the class with the given name.
func (s *Schema) Class(name string) (*Class, bool) {
	i := slices.IndexFunc(s.Classes, func(c *Class) bool { return c.Name == name })
	if i < 0 {
		return nil, false
	}
	return s.Classes[i], true
}

// check validates what can be validated within a single document.
func (s *Schema) check() error {
	if s.Package == "" {
		return errors.New("missing package name")
	}
	for i, e := range s.Enums {
		if e.Name == "" {
			return fmt.Errorf("enum #%d: missing name", i)
		}
		if len(e.Values) == 0 {
			return fmt.Errorf("enum %q: no values", e.Name)
		}
	}
	for i, c := range s.Classes {
		if c.Name == "" {
			return fmt.Errorf("class #%d: missing name", i)
		}
		if err := c.check(); err != nil {
			return fmt.Errorf("class %q: %w", c.Name, err)
		}
	}
	return nil
}

func (c *Class) check() error {
	for i, a := range c.Attributes {
		switch {
		case a.Name == "":
			return fmt.Errorf("attribute #%d: missing name", i)
		case !slices.Contains(Types, a.Type):
			return fmt.Errorf("attribute %q: unknown type %q", a.Name, a.Type)
		case a.Type == TypeEnum && a.Enum == "":
			return fmt.Errorf("attribute %q: missing enum name", a.Name)
		case a.Type != TypeEnum && a.Enum != "":
			return fmt.Errorf("attribute %q: enum %q set on %s attribute", a.Name, a.Enum, a.Type)
		}
	}
	for i, r := range c.References {
		switch {
		case r.Name == "":
			return fmt.Errorf("reference #%d: missing name", i)
		case r.Type == "":
			return fmt.Errorf("reference %q: missing type", r.Name)
		case r.Inverse == "":
			return fmt.Errorf("reference %q: missing inverse", r.Name)
		}
	}
	return nil
}
