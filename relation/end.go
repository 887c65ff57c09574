package relation

import "fmt"

// OneEnd describes a single-valued relationship field on entity type A.
type OneEnd[A, B any] struct {
	Name string           // Label used in errors, e.g. "Item.Group".
	Slot func(*A) *Ref[B] // Returns the slot stored in the entity.
}

// ManyEnd describes a collection-valued relationship field on entity type A.
type ManyEnd[A, B any] struct {
	Name string            // Label used in errors, e.g. "Group.Items".
	Slot func(*A) *List[B] // Returns the slot stored in the entity.
}

func (e OneEnd[A, B]) end() end[A, B] {
	if e.Slot == nil {
		panic(fmt.Sprintf("relation: nil slot accessor for %q", e.Name))
	}
	return end[A, B]{name: e.Name, ref: e.Slot}
}

func (e ManyEnd[A, B]) end() end[A, B] {
	if e.Slot == nil {
		panic(fmt.Sprintf("relation: nil slot accessor for %q", e.Name))
	}
	return end[A, B]{name: e.Name, list: e.Slot}
}

// end is one side of an association as seen from its owner type A.
// Its methods touch only A's slot; keeping the other side in step is the
// job of the handles.
type end[A, B any] struct {
	name string
	ref  func(*A) *Ref[B]
	list func(*A) *List[B]
}

func (e end[A, B]) many() bool { return e.list != nil }

// linked reports whether a links to b.
func (e end[A, B]) linked(a *A, b *B) bool {
	if e.many() {
		return e.list(a).Contains(b)
	}
	return e.ref(a).target == b
}

// attach links a to b.
func (e end[A, B]) attach(a *A, b *B) {
	if e.many() {
		e.list(a).append(b)
		return
	}
	e.ref(a).target = b
}

// detach removes a single link from a to b.
func (e end[A, B]) detach(a *A, b *B) {
	if e.many() {
		e.list(a).removeOne(b)
		return
	}
	if r := e.ref(a); r.target == b {
		r.target = nil
	}
}

// detachAll removes every link from a to b.
func (e end[A, B]) detachAll(a *A, b *B) {
	if e.many() {
		e.list(a).removeAll(b)
		return
	}
	e.detach(a, b)
}

// partner returns the target of a single-valued end.
func (e end[A, B]) partner(a *A) *B { return e.ref(a).target }
