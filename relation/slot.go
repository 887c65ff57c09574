package relation

import "slices"

// Ref holds a single optional reference. The zero value is unset.
type Ref[T any] struct {
	target *T
}

// Get returns the referenced entity, or nil.
func (r *Ref[T]) Get() *T { return r.target }

// IsSet reports whether the reference points at an entity.
func (r *Ref[T]) IsSet() bool { return r.target != nil }

// List holds an ordered collection of references. The zero value is an
// empty list. The same entity may appear more than once.
type List[T any] struct {
	items []*T
}

// Items returns a copy of the members in order.
func (l *List[T]) Items() []*T { return slices.Clone(l.items) }

// Len returns the number of entries, counting duplicates.
func (l *List[T]) Len() int { return len(l.items) }

// Index returns the position of the first entry identical to v, or -1.
func (l *List[T]) Index(v *T) int { return slices.Index(l.items, v) }

// Contains reports whether v is a member.
func (l *List[T]) Contains(v *T) bool { return l.Index(v) >= 0 }

func (l *List[T]) count(v *T) int {
	n := 0
	for _, x := range l.items {
		if x == v {
			n++
		}
	}
	return n
}

func (l *List[T]) append(v *T) {
	l.items = append(l.items, v)
}

// removeOne drops the first entry identical to v.
func (l *List[T]) removeOne(v *T) bool {
	i := l.Index(v)
	if i < 0 {
		return false
	}
	l.items = slices.Delete(l.items, i, i+1)
	return true
}

// removeAll drops every entry identical to v.
func (l *List[T]) removeAll(v *T) bool {
	n := len(l.items)
	l.items = slices.DeleteFunc(l.items, func(x *T) bool { return x == v })
	return len(l.items) != n
}

func (l *List[T]) replace(vs []*T) {
	l.items = slices.DeleteFunc(slices.Clone(vs), func(x *T) bool { return x == nil })
}
