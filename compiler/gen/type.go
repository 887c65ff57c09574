package gen

import (
	"slices"

	"github.com/syssam/cim/compiler/load"
)

// The following types and their exported methods are used by the codegen
// to generate the assets.
type (
	// Type represents one CIM class in the graph, its base class,
	// attributes and references.
	Type struct {
		// Name holds the class name. It is also the Go type name.
		Name string
		// Doc is the class documentation.
		Doc string
		// Package is the CIM package that declares the class.
		Package string
		// Base is the super class, nil for root classes.
		Base *Type
		// Fields holds the scalar attributes declared on this class.
		Fields []*Field
		// Edges holds the references declared on this class.
		Edges []*Edge
		// Pos is the schema file that declared the class.
		Pos string
	}

	// Field holds a scalar attribute.
	Field struct {
		// Name is the attribute name in the schema.
		Name string
		// Type is one of the load.Type* constants.
		Type string
		// Enum is set for enumerated attributes.
		Enum *Enum
		// Default holds the literal default, nil if none.
		Default any
		// Doc is the attribute documentation.
		Doc string
		// Owner is the class declaring the attribute.
		Owner *Type
	}

	// Edge is one end of a bidirectional association.
	Edge struct {
		def *load.Reference
		// Name holds the reference name in the schema.
		Name string
		// Doc is the reference documentation.
		Doc string
		// Type is the target class.
		Type *Type
		// Owner is the class declaring the reference.
		Owner *Type
		// Unique indicates a single-valued reference.
		Unique bool
		// Ref is the inverse end, declared on Type.
		Ref *Edge
		// Rel is the cardinality seen from Owner.
		Rel Rel
		// Assoc is the association this edge belongs to.
		Assoc *Assoc
	}

	// Assoc is an association between two classes. It is emitted once
	// in the generated package.
	Assoc struct {
		// From is the end passed first to the relation constructor: the
		// collection side of one-to-many associations, otherwise the end
		// whose owner and name sort first.
		From *Edge
		// To is the inverse end.
		To *Edge
	}

	// Enum holds an enumeration.
	Enum struct {
		// Name is the Go type name.
		Name string
		// Doc is the enum documentation.
		Doc string
		// Package is the CIM package that declares the enum.
		Package string
		// Values holds the literal values in declaration order.
		Values []string
	}

	// Package holds the namespace information of one CIM package.
	Package struct {
		Name      string
		Namespace string
		Prefix    string
		Doc       string
	}
)

// Rel is a relation type of an edge.
type Rel int

// Relation types.
const (
	Unk Rel = iota // Unknown.
	O2O            // One to one / has one.
	O2M            // One to many / has many.
	M2O            // Many to one (inverse perspective for O2M).
	M2M            // Many to many.
)

// String returns the relation name.
func (r Rel) String() string {
	switch r {
	case O2O:
		return "O2O"
	case O2M:
		return "O2M"
	case M2O:
		return "M2O"
	case M2M:
		return "M2M"
	default:
		return "Unknown"
	}
}

// Receiver returns the receiver name used by generated methods.
func (Type) Receiver() string { return "_e" }

// FileName returns the name of the generated file of the class.
func (t Type) FileName() string { return snake(t.Name) + ".go" }

// Constructor returns the name of the constructor function.
func (t Type) Constructor() string { return "New" + t.Name }

// Ancestors returns the base classes of t, nearest first.
func (t Type) Ancestors() []*Type {
	var bases []*Type
	for b := t.Base; b != nil; b = b.Base {
		bases = append(bases, b)
	}
	return bases
}

// Chain returns t and its base classes, root first.
func (t *Type) Chain() []*Type {
	chain := append([]*Type{t}, t.Ancestors()...)
	slices.Reverse(chain)
	return chain
}

// AllEdges returns the references of t and its base classes, root first.
func (t *Type) AllEdges() []*Edge {
	var edges []*Edge
	for _, c := range t.Chain() {
		edges = append(edges, c.Edges...)
	}
	return edges
}

// Edge returns the reference of t with the given name. Inherited
// references are not considered.
func (t Type) Edge(name string) (*Edge, bool) {
	i := slices.IndexFunc(t.Edges, func(e *Edge) bool { return e.Name == name })
	if i < 0 {
		return nil, false
	}
	return t.Edges[i], true
}

// ConstName returns the Go constant of an enum value.
func (e Enum) ConstName(value string) string { return enumConst(e.Name, value) }

// ValuesFunc returns the name of the function listing every value.
func (e Enum) ValuesFunc() string { return e.Name + "Values" }

// NamespaceConst returns the constant holding the package namespace.
func (p Package) NamespaceConst() string { return "Namespace" + pascal(p.Name) }

// PrefixConst returns the constant holding the package RDF prefix.
func (p Package) PrefixConst() string { return "Prefix" + pascal(p.Name) }
