// Package relation keeps both ends of a bidirectional association between
// entities consistent.
//
// Entities store their relationship fields in slots: Ref for a single
// optional reference and List for an ordered collection. An association is
// declared once by pairing the two slots, and the constructor returns one
// handle per end:
//
//	// Group has many Items, each Item belongs to one Group.
//	groupItems, itemGroup := relation.OneToMany(
//	    relation.ManyEnd[Group, Item]{Name: "Group.Items", Slot: func(g *Group) *relation.List[Item] { return &g.items }},
//	    relation.OneEnd[Item, Group]{Name: "Item.Group", Slot: func(i *Item) *relation.Ref[Group] { return &i.group }},
//	)
//
//	groupItems.Add(g, a, b)    // a.group == g, b.group == g
//	itemGroup.Set(a, other)    // a moves from g.items to other.items
//	err := groupItems.Remove(g, a) // cim.ErrNotFound: a is no longer a member
//
// # Cardinality
//
//   - OneToOne: Ref on both ends.
//   - OneToMany: List on the owning end, Ref on the member end. The returned
//     handles report O2M and M2O respectively.
//   - ManyToMany: List on both ends.
//
// # Identity
//
// Entities are compared by pointer identity, never by value. Two distinct
// entities with equal attributes are different members.
//
// # Duplicates
//
// One.Set never links the same pair twice. Many.Add appends unconditionally,
// so adding a member twice keeps two entries; Remove takes one entry out per
// call. This asymmetry is kept on purpose because existing callers depend on
// both behaviors.
//
// # Concurrency
//
// Handles are stateless and may be shared, but the slots they mutate are
// not synchronized. Callers mutating a connected object graph from more than
// one goroutine must hold their own lock.
package relation
