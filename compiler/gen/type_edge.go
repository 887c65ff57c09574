package gen

// Label returns the name of the end as reported by the relation runtime
// (Class.reference).
func (e Edge) Label() string { return e.Owner.Name + "." + e.Name }

// Handle returns the package-level variable holding the relation handle of
// this end.
func (e Edge) Handle() string { return camel(e.Owner.Name) + pascal(e.Name) }

// StructField returns the unexported slot of the edge in the owner struct.
func (e Edge) StructField() string { return unexported(e.Name) }

// Getter returns the name of the accessor method.
func (e Edge) Getter() string { return pascal(e.Name) }

// Setter returns the name of the method replacing the value.
func (e Edge) Setter() string { return "Set" + pascal(e.Name) }

// Adder returns the name of the method appending to a collection.
func (e Edge) Adder() string { return "Add" + pascal(e.Name) }

// Remover returns the name of the method removing from a collection.
func (e Edge) Remover() string { return "Remove" + pascal(e.Name) }

// OptionName returns the constructor option of the edge for class t,
// which is the owner or one of its subclasses.
func (e Edge) OptionName(t *Type) string { return t.Name + "With" + pascal(e.Name) }

// M2M indicates if this edge is M2M edge.
func (e Edge) M2M() bool { return e.Rel == M2M }

// M2O indicates if this edge is M2O edge.
func (e Edge) M2O() bool { return e.Rel == M2O }

// O2M indicates if this edge is O2M edge.
func (e Edge) O2M() bool { return e.Rel == O2M }

// O2O indicates if this edge is O2O edge.
func (e Edge) O2O() bool { return e.Rel == O2O }

// methods returns the Go names the edge adds to its owner.
func (e Edge) methods() []string {
	if e.Unique {
		return []string{e.Getter(), e.Setter()}
	}
	return []string{e.Getter(), e.Setter(), e.Adder(), e.Remover()}
}

// rel classifies an association from the perspective of the end whose
// uniqueness is own, given the uniqueness of its inverse.
func rel(own, inv bool) Rel {
	switch {
	case own && inv:
		return O2O
	case !own && inv:
		return O2M
	case own && !inv:
		return M2O
	default:
		return M2M
	}
}

// Constructor returns the relation constructor of the association.
func (a Assoc) Constructor() string {
	switch a.From.Rel {
	case O2O:
		return "OneToOne"
	case O2M:
		return "OneToMany"
	default:
		return "ManyToMany"
	}
}

// Kind returns the relation type seen from the From end.
func (a Assoc) Kind() Rel { return a.From.Rel }
