package gen

import (
	"cmp"
	"fmt"
	"go/token"
	"slices"

	"github.com/syssam/cim/compiler/load"
)

// reserved holds identifiers declared by the shared file of the
// generated package.
var reserved = []string{"Entity", "Option"}

// Graph holds the classes of all loaded schemas, resolved and paired.
type Graph struct {
	*Config
	// Nodes are the classes in declaration order.
	Nodes []*Type
	// Enums are the enumerations in declaration order.
	Enums []*Enum
	// Assocs are the associations, each listed once.
	Assocs []*Assoc
	// Packages are the CIM packages, one per schema.
	Packages []*Package

	nodes map[string]*Type
	enums map[string]*Enum
}

// NewGraph creates a new Graph for the code generation from the given
// schema definitions. It fails if one of the schemas is invalid.
func NewGraph(c *Config, schemas ...*load.Schema) (*Graph, error) {
	if c == nil {
		return nil, NewConfigError("Config", nil, "missing config")
	}
	c.defaults()
	if err := c.check(); err != nil {
		return nil, err
	}
	g := &Graph{
		Config: c,
		nodes:  make(map[string]*Type),
		enums:  make(map[string]*Enum),
	}
	for _, step := range []func([]*load.Schema) error{
		g.addPackages,
		g.addEnums,
		g.addNodes,
		g.resolveBases,
		g.addFields,
		g.addEdges,
		g.checkNames,
		g.pairEdges,
	} {
		if err := step(schemas); err != nil {
			return nil, err
		}
	}
	g.addAssocs()
	return g, nil
}

// Type returns the class with the given name.
func (g *Graph) Type(name string) (*Type, bool) {
	t, ok := g.nodes[name]
	return t, ok
}

// Enum returns the enumeration with the given name.
func (g *Graph) Enum(name string) (*Enum, bool) {
	e, ok := g.enums[name]
	return e, ok
}

func (g *Graph) addPackages(schemas []*load.Schema) error {
	if len(schemas) == 0 {
		return NewSchemaError("", "", "no schemas", nil)
	}
	for _, s := range schemas {
		if slices.ContainsFunc(g.Packages, func(p *Package) bool { return p.Name == s.Package }) {
			return NewSchemaError("", "", fmt.Sprintf("package %s declared twice (%s)", s.Package, s.Pos), nil)
		}
		g.Packages = append(g.Packages, &Package{
			Name:      s.Package,
			Namespace: s.Namespace,
			Prefix:    s.Prefix,
			Doc:       s.Doc,
		})
	}
	return nil
}

func (g *Graph) addEnums(schemas []*load.Schema) error {
	for _, s := range schemas {
		for _, e := range s.Enums {
			if err := checkName(e.Name); err != nil {
				return NewSchemaError(e.Name, "", "invalid enum name", err)
			}
			if _, ok := g.enums[e.Name]; ok {
				return NewSchemaError(e.Name, "", "enum declared twice", nil)
			}
			enum := &Enum{Name: e.Name, Doc: e.Doc, Package: s.Package, Values: e.Values}
			consts := make(map[string]string, len(e.Values))
			for _, v := range e.Values {
				name := enum.ConstName(v)
				if name == enum.Name || !token.IsIdentifier(name) {
					return NewSchemaError(e.Name, v, "value has no constant name", nil)
				}
				if prev, ok := consts[name]; ok {
					return NewSchemaError(e.Name, v, fmt.Sprintf("value collides with %q", prev), nil)
				}
				consts[name] = v
			}
			g.enums[e.Name] = enum
			g.Enums = append(g.Enums, enum)
		}
	}
	return nil
}

func (g *Graph) addNodes(schemas []*load.Schema) error {
	for _, s := range schemas {
		for _, c := range s.Classes {
			if err := checkName(c.Name); err != nil {
				return NewSchemaError(c.Name, "", "invalid class name", err)
			}
			if _, ok := g.nodes[c.Name]; ok {
				return NewSchemaError(c.Name, "", fmt.Sprintf("class declared twice (%s)", s.Pos), nil)
			}
			if _, ok := g.enums[c.Name]; ok {
				return NewSchemaError(c.Name, "", "class and enum share the name", nil)
			}
			t := &Type{Name: c.Name, Doc: c.Doc, Package: s.Package, Pos: s.Pos}
			g.nodes[c.Name] = t
			g.Nodes = append(g.Nodes, t)
		}
	}
	return nil
}

// classes iterates over the class definitions in declaration order.
func classes(schemas []*load.Schema, fn func(*load.Class) error) error {
	for _, s := range schemas {
		for _, c := range s.Classes {
			if err := fn(c); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *Graph) resolveBases(schemas []*load.Schema) error {
	err := classes(schemas, func(c *load.Class) error {
		if c.Super == "" {
			return nil
		}
		base, ok := g.nodes[c.Super]
		if !ok {
			return NewSchemaError(c.Name, "", fmt.Sprintf("unknown base class %q", c.Super), nil)
		}
		g.nodes[c.Name].Base = base
		return nil
	})
	if err != nil {
		return err
	}
	for _, t := range g.Nodes {
		n := 0
		for b := t.Base; b != nil; b = b.Base {
			if n++; b == t || n > len(g.Nodes) {
				return NewSchemaError(t.Name, "", "inheritance cycle", nil)
			}
		}
	}
	return nil
}

func (g *Graph) addFields(schemas []*load.Schema) error {
	return classes(schemas, func(c *load.Class) error {
		t := g.nodes[c.Name]
		for _, a := range c.Attributes {
			f := &Field{Name: a.Name, Type: a.Type, Default: a.Default, Doc: a.Doc, Owner: t}
			if a.Type == load.TypeEnum {
				enum, ok := g.enums[a.Enum]
				if !ok {
					return NewSchemaError(c.Name, a.Name, fmt.Sprintf("unknown enum %q", a.Enum), nil)
				}
				f.Enum = enum
			}
			if err := f.normalize(); err != nil {
				return err
			}
			t.Fields = append(t.Fields, f)
		}
		return nil
	})
}

func (g *Graph) addEdges(schemas []*load.Schema) error {
	return classes(schemas, func(c *load.Class) error {
		t := g.nodes[c.Name]
		for _, r := range c.References {
			target, ok := g.nodes[r.Type]
			if !ok {
				return NewEdgeError(c.Name, r.Type, r.Name, "unknown target class", nil)
			}
			t.Edges = append(t.Edges, &Edge{
				def:    r,
				Name:   r.Name,
				Doc:    r.Doc,
				Type:   target,
				Owner:  t,
				Unique: !r.Many,
			})
		}
		return nil
	})
}

// checkNames rejects classes whose members, including inherited ones,
// would map to the same Go name, and schemas whose package-level
// identifiers collide.
func (g *Graph) checkNames([]*load.Schema) error {
	for _, t := range g.Nodes {
		seen := map[string]string{
			"Detach":   "generated method",
			"Validate": "generated method",
			"defaults": "generated method",
		}
		add := func(name, what string) error {
			if prev, ok := seen[name]; ok {
				return NewSchemaError(t.Name, name, fmt.Sprintf("%s collides with %s", what, prev), nil)
			}
			seen[name] = what
			return nil
		}
		for _, c := range t.Chain() {
			if c != t {
				if err := add(c.Name, "embedded base"); err != nil {
					return err
				}
			}
			for _, f := range c.Fields {
				if err := add(f.StructField(), "attribute "+c.Name+"."+f.Name); err != nil {
					return err
				}
			}
			for _, e := range c.Edges {
				for _, m := range e.methods() {
					if err := add(m, "reference "+e.Label()); err != nil {
						return err
					}
				}
				if err := add(e.StructField(), "slot of reference "+e.Label()); err != nil {
					return err
				}
			}
		}
	}
	return g.checkIdents()
}

// checkIdents rejects package-level identifiers of the generated package
// that are declared twice: types, constructors, options, enum constants,
// association handles and namespace constants.
func (g *Graph) checkIdents() error {
	seen := make(map[string]string)
	for _, name := range reserved {
		seen[name] = "shared declaration " + name
	}
	add := func(name, what string) bool {
		if _, ok := seen[name]; ok {
			return false
		}
		seen[name] = what
		return true
	}
	for _, t := range g.Nodes {
		if !add(t.Name, "class "+t.Name) {
			return NewSchemaError(t.Name, "", "class collides with "+seen[t.Name], nil)
		}
	}
	for _, e := range g.Enums {
		if !add(e.Name, "enum "+e.Name) {
			return NewSchemaError(e.Name, "", "enum collides with "+seen[e.Name], nil)
		}
	}
	for _, t := range g.Nodes {
		if name := t.Constructor(); !add(name, "constructor of "+t.Name) {
			return NewSchemaError(t.Name, "", fmt.Sprintf("constructor %s collides with %s", name, seen[name]), nil)
		}
		for _, e := range t.AllEdges() {
			if name := e.OptionName(t); !add(name, "option "+name) {
				return NewSchemaError(t.Name, e.Name, fmt.Sprintf("option %s collides with %s", name, seen[name]), nil)
			}
		}
	}
	for _, e := range g.Enums {
		if name := e.ValuesFunc(); !add(name, "values function of "+e.Name) {
			return NewSchemaError(e.Name, "", fmt.Sprintf("values function %s collides with %s", name, seen[name]), nil)
		}
		for _, v := range e.Values {
			if name := e.ConstName(v); !add(name, "constant of enum "+e.Name) {
				return NewSchemaError(e.Name, v, fmt.Sprintf("constant %s collides with %s", name, seen[name]), nil)
			}
		}
	}
	for _, p := range g.Packages {
		if p.Namespace != "" && !add(p.NamespaceConst(), "namespace of package "+p.Name) {
			return NewSchemaError("", "", fmt.Sprintf("namespace constant of package %s collides with %s", p.Name, seen[p.NamespaceConst()]), nil)
		}
		if p.Prefix != "" && !add(p.PrefixConst(), "prefix of package "+p.Name) {
			return NewSchemaError("", "", fmt.Sprintf("prefix constant of package %s collides with %s", p.Name, seen[p.PrefixConst()]), nil)
		}
	}
	for _, t := range g.Nodes {
		for _, e := range t.Edges {
			if name := e.Handle(); !add(name, "handle of reference "+e.Label()) {
				return NewEdgeError(t.Name, e.Type.Name, e.Name, fmt.Sprintf("handle %s collides with %s", name, seen[name]), nil)
			}
		}
	}
	return nil
}

func (g *Graph) pairEdges([]*load.Schema) error {
	for _, t := range g.Nodes {
		for _, e := range t.Edges {
			inv, ok := e.Type.Edge(e.def.Inverse)
			switch {
			case !ok:
				return NewEdgeError(t.Name, e.Type.Name, e.Name, fmt.Sprintf("inverse %q not found on %s", e.def.Inverse, e.Type.Name), nil)
			case inv == e:
				return NewEdgeError(t.Name, e.Type.Name, e.Name, "reference cannot be its own inverse", nil)
			case inv.Type != t:
				return NewEdgeError(t.Name, e.Type.Name, e.Name, fmt.Sprintf("inverse %s targets %s", inv.Label(), inv.Type.Name), nil)
			case inv.def.Inverse != e.Name:
				return NewEdgeError(t.Name, e.Type.Name, e.Name, fmt.Sprintf("inverse %s names %q as its inverse", inv.Label(), inv.def.Inverse), nil)
			}
			e.Ref = inv
			e.Rel = rel(e.Unique, inv.Unique)
		}
	}
	return nil
}

func (g *Graph) addAssocs() {
	key := func(e *Edge) string { return e.Owner.Name + "." + e.Name }
	for _, t := range g.Nodes {
		for _, e := range t.Edges {
			if e.Assoc != nil {
				continue
			}
			from, to := e, e.Ref
			switch {
			case e.Rel == M2O:
				from, to = to, from
			case e.Rel != O2M && cmp.Less(key(to), key(from)):
				from, to = to, from
			}
			a := &Assoc{From: from, To: to}
			e.Assoc, e.Ref.Assoc = a, a
			g.Assocs = append(g.Assocs, a)
		}
	}
}

// checkName reports whether name can be used as an exported type name of
// the generated package.
func checkName(name string) error {
	switch {
	case !token.IsIdentifier(name):
		return fmt.Errorf("%q is not a Go identifier", name)
	case !token.IsExported(name):
		return fmt.Errorf("%q is not exported", name)
	case slices.Contains(reserved, name):
		return fmt.Errorf("%q is reserved", name)
	}
	return nil
}
