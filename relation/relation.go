package relation

// Kind is the cardinality of an association seen from one end.
type Kind uint8

// Association kinds.
const (
	O2O Kind = iota + 1 // one-to-one
	O2M                 // one-to-many, owner holds the collection
	M2O                 // many-to-one, owner holds the single reference
	M2M                 // many-to-many
)

var kindNames = [...]string{
	O2O: "O2O",
	O2M: "O2M",
	M2O: "M2O",
	M2M: "M2M",
}

// String returns the short name of the kind.
func (k Kind) String() string {
	if k >= O2O && k <= M2M {
		return kindNames[k]
	}
	return "Kind(invalid)"
}

// OneToOne pairs two single-valued ends.
func OneToOne[A, B any](a OneEnd[A, B], b OneEnd[B, A]) (*One[A, B], *One[B, A]) {
	ea, eb := a.end(), b.end()
	return &One[A, B]{own: ea, inv: eb, kind: O2O},
		&One[B, A]{own: eb, inv: ea, kind: O2O}
}

// OneToMany pairs a collection on A with a single reference back on B.
func OneToMany[A, B any](a ManyEnd[A, B], b OneEnd[B, A]) (*Many[A, B], *One[B, A]) {
	ea, eb := a.end(), b.end()
	return &Many[A, B]{own: ea, inv: eb, kind: O2M},
		&One[B, A]{own: eb, inv: ea, kind: M2O}
}

// ManyToMany pairs two collection-valued ends.
func ManyToMany[A, B any](a ManyEnd[A, B], b ManyEnd[B, A]) (*Many[A, B], *Many[B, A]) {
	ea, eb := a.end(), b.end()
	return &Many[A, B]{own: ea, inv: eb, kind: M2M},
		&Many[B, A]{own: eb, inv: ea, kind: M2M}
}
