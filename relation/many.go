package relation

import "github.com/syssam/cim"

// Many is the handle of a collection-valued end of an association.
type Many[A, B any] struct {
	own  end[A, B]
	inv  end[B, A]
	kind Kind
}

// Name returns the label of the end, e.g. "Group.Items".
func (h *Many[A, B]) Name() string { return h.own.name }

// Inverse returns the label of the paired end.
func (h *Many[A, B]) Inverse() string { return h.inv.name }

// Kind returns O2M or M2M.
func (h *Many[A, B]) Kind() Kind { return h.kind }

// All returns a copy of the members of a in order.
func (h *Many[A, B]) All(a *A) []*B { return h.own.list(a).Items() }

// Len returns the number of entries of a, counting duplicates.
func (h *Many[A, B]) Len(a *A) int { return h.own.list(a).Len() }

// Contains reports whether b is a member of a.
func (h *Many[A, B]) Contains(a *A, b *B) bool { return h.own.list(a).Contains(b) }

// link makes b point back at a. A member whose inverse is a single
// reference leaves the collection of its previous owner first.
func (h *Many[A, B]) link(a *A, b *B) {
	if !h.inv.many() {
		if prev := h.inv.partner(b); prev != nil && prev != a {
			h.own.detachAll(prev, b)
		}
	}
	h.inv.attach(b, a)
}

// SetAll replaces the members of a with bs. Every previous member loses its
// back-reference to a, then every new member is linked to a. Order and
// duplicates of bs are kept; nil entries are dropped.
func (h *Many[A, B]) SetAll(a *A, bs []*B) {
	list := h.own.list(a)
	for _, old := range list.items {
		h.inv.detach(old, a)
	}
	for _, b := range bs {
		if b != nil {
			h.link(a, b)
		}
	}
	list.replace(bs)
}

// Add appends bs to the members of a and links each back to a.
//
// Add does not check for duplicates: adding a member twice leaves two
// entries. Callers that need set semantics check Contains first.
func (h *Many[A, B]) Add(a *A, bs ...*B) {
	list := h.own.list(a)
	for _, b := range bs {
		if b == nil {
			continue
		}
		h.link(a, b)
		list.append(b)
	}
}

// Remove takes one entry of each of bs out of the members of a and clears
// its back-reference. If any of bs is not a member, Remove returns a
// *cim.NotFoundError and leaves the graph unchanged.
func (h *Many[A, B]) Remove(a *A, bs ...*B) error {
	list := h.own.list(a)
	need := make(map[*B]int, len(bs))
	for _, b := range bs {
		if b == nil {
			return cim.NewNotFoundError(h.own.name + " member")
		}
		need[b]++
		if list.count(b) < need[b] {
			return cim.NewNotFoundErrorWithID(h.own.name+" member", b)
		}
	}
	for _, b := range bs {
		list.removeOne(b)
		// A single back-reference stays while a duplicate entry remains.
		if h.inv.many() || !list.Contains(b) {
			h.inv.detach(b, a)
		}
	}
	return nil
}

// Clear removes every member of a.
func (h *Many[A, B]) Clear(a *A) { h.SetAll(a, nil) }

// Check reports every member of a that does not link back to a.
func (h *Many[A, B]) Check(a *A) error {
	var errs []error
	for _, b := range h.own.list(a).items {
		if !h.inv.linked(b, a) {
			errs = append(errs, cim.NewInconsistencyError(h.own.name, a, b))
		}
	}
	return cim.NewAggregateError(errs...)
}
