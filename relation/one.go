package relation

import "github.com/syssam/cim"

// One is the handle of a single-valued end of an association.
type One[A, B any] struct {
	own  end[A, B]
	inv  end[B, A]
	kind Kind
}

// Name returns the label of the end, e.g. "Item.Group".
func (h *One[A, B]) Name() string { return h.own.name }

// Inverse returns the label of the paired end.
func (h *One[A, B]) Inverse() string { return h.inv.name }

// Kind returns O2O or M2O.
func (h *One[A, B]) Kind() Kind { return h.kind }

// Get returns the entity a points at, or nil.
func (h *One[A, B]) Get(a *A) *B { return h.own.partner(a) }

// Set points a at b, or unlinks a when b is nil. The previous target loses
// its back-reference to a and b gains one, unless it already links back.
// Setting the current value again is a no-op.
func (h *One[A, B]) Set(a *A, b *B) {
	old := h.own.partner(a)
	if old != nil && old != b {
		h.inv.detachAll(old, a)
	}
	if b != nil && !h.inv.linked(b, a) {
		if !h.inv.many() {
			if prev := h.inv.partner(b); prev != nil {
				h.own.detach(prev, b)
			}
		}
		h.inv.attach(b, a)
	}
	h.own.ref(a).target = b
}

// Clear unlinks a from its target.
func (h *One[A, B]) Clear(a *A) { h.Set(a, nil) }

// Check reports whether the target of a links back to a.
func (h *One[A, B]) Check(a *A) error {
	b := h.own.partner(a)
	if b != nil && !h.inv.linked(b, a) {
		return cim.NewInconsistencyError(h.own.name, a, b)
	}
	return nil
}
