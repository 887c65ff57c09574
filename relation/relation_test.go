package relation_test

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/cim"
	"github.com/syssam/cim/relation"
)

// Test entity types for relation testing.
type (
	group struct {
		name  string
		items relation.List[item]
		other relation.List[item]
	}
	item struct {
		name  string
		group relation.Ref[group]
	}
	person struct {
		name     string
		passport relation.Ref[passport]
	}
	passport struct {
		number string
		holder relation.Ref[person]
	}
	student struct {
		name    string
		courses relation.List[course]
	}
	course struct {
		title    string
		students relation.List[student]
	}
)

var (
	groupItems, itemGroup = relation.OneToMany(
		relation.ManyEnd[group, item]{Name: "Group.Items", Slot: func(g *group) *relation.List[item] { return &g.items }},
		relation.OneEnd[item, group]{Name: "Item.Group", Slot: func(i *item) *relation.Ref[group] { return &i.group }},
	)
	personPassport, passportHolder = relation.OneToOne(
		relation.OneEnd[person, passport]{Name: "Person.Passport", Slot: func(p *person) *relation.Ref[passport] { return &p.passport }},
		relation.OneEnd[passport, person]{Name: "Passport.Holder", Slot: func(p *passport) *relation.Ref[person] { return &p.holder }},
	)
	studentCourses, courseStudents = relation.ManyToMany(
		relation.ManyEnd[student, course]{Name: "Student.Courses", Slot: func(s *student) *relation.List[course] { return &s.courses }},
		relation.ManyEnd[course, student]{Name: "Course.Students", Slot: func(c *course) *relation.List[student] { return &c.students }},
	)
)

// requireGroupsConsistent asserts that item.Group points at g exactly when
// g.Items contains the item.
func requireGroupsConsistent(t *testing.T, groups []*group, items []*item) {
	t.Helper()
	for _, g := range groups {
		require.NoError(t, groupItems.Check(g), "group %s", g.name)
		for _, i := range items {
			assert.Equal(t, itemGroup.Get(i) == g, groupItems.Contains(g, i),
				"group %s / item %s", g.name, i.name)
		}
	}
	for _, i := range items {
		require.NoError(t, itemGroup.Check(i), "item %s", i.name)
	}
}

func requireCoursesConsistent(t *testing.T, students []*student, courses []*course) {
	t.Helper()
	for _, s := range students {
		require.NoError(t, studentCourses.Check(s))
		for _, c := range courses {
			assert.Equal(t, count(studentCourses.All(s), c), count(courseStudents.All(c), s),
				"student %s / course %s", s.name, c.title)
		}
	}
	for _, c := range courses {
		require.NoError(t, courseStudents.Check(c))
	}
}

// requirePassportsConsistent asserts that each person holds at most one
// passport and that both ends of every pair agree.
func requirePassportsConsistent(t *testing.T, people []*person, passports []*passport) {
	t.Helper()
	for _, p := range people {
		require.NoError(t, personPassport.Check(p), "person %s", p.name)
	}
	for _, x := range passports {
		require.NoError(t, passportHolder.Check(x), "passport %s", x.number)
		holders := 0
		for _, p := range people {
			assert.Equal(t, personPassport.Get(p) == x, passportHolder.Get(x) == p,
				"person %s / passport %s", p.name, x.number)
			if personPassport.Get(p) == x {
				holders++
			}
		}
		assert.LessOrEqual(t, holders, 1, "passport %s", x.number)
	}
}

func count[T any](items []*T, v *T) int {
	n := 0
	for _, x := range items {
		if x == v {
			n++
		}
	}
	return n
}

func TestKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind relation.Kind
		want string
	}{
		{relation.O2O, "O2O"},
		{relation.O2M, "O2M"},
		{relation.M2O, "M2O"},
		{relation.M2M, "M2M"},
		{relation.Kind(0), "Kind(invalid)"},
		{relation.Kind(42), "Kind(invalid)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}

	assert.Equal(t, relation.O2M, groupItems.Kind())
	assert.Equal(t, relation.M2O, itemGroup.Kind())
	assert.Equal(t, relation.O2O, personPassport.Kind())
	assert.Equal(t, relation.O2O, passportHolder.Kind())
	assert.Equal(t, relation.M2M, studentCourses.Kind())
	assert.Equal(t, relation.M2M, courseStudents.Kind())

	assert.Equal(t, "Group.Items", groupItems.Name())
	assert.Equal(t, "Item.Group", groupItems.Inverse())
	assert.Equal(t, "Item.Group", itemGroup.Name())
	assert.Equal(t, "Group.Items", itemGroup.Inverse())
}

func TestNilSlotPanics(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, `relation: nil slot accessor for "Group.Items"`, func() {
		relation.OneToMany(
			relation.ManyEnd[group, item]{Name: "Group.Items"},
			relation.OneEnd[item, group]{Name: "Item.Group", Slot: func(i *item) *relation.Ref[group] { return &i.group }},
		)
	})
	assert.Panics(t, func() {
		relation.OneToOne(
			relation.OneEnd[person, passport]{Name: "Person.Passport", Slot: func(p *person) *relation.Ref[passport] { return &p.passport }},
			relation.OneEnd[passport, person]{Name: "Passport.Holder"},
		)
	})
}

func TestSlots(t *testing.T) {
	t.Parallel()

	var r relation.Ref[item]
	assert.False(t, r.IsSet())
	assert.Nil(t, r.Get())

	var l relation.List[item]
	assert.Zero(t, l.Len())
	assert.Empty(t, l.Items())
	assert.Equal(t, -1, l.Index(&item{}))

	g := &group{name: "g"}
	a, b := &item{name: "a"}, &item{name: "b"}
	groupItems.Add(g, a, b)

	items := g.items.Items()
	require.Equal(t, []*item{a, b}, items)
	items[0] = b
	assert.Same(t, a, g.items.Items()[0], "Items must return a copy")
	assert.Equal(t, 1, g.items.Index(b))
	assert.True(t, g.items.Contains(a))
	assert.True(t, a.group.IsSet())
	assert.Same(t, g, a.group.Get())
}

// TestGroupMembersScenario adds and removes members of a group.
func TestGroupMembersScenario(t *testing.T) {
	t.Parallel()

	g := &group{name: "Group"}
	itemA, itemB := &item{name: "itemA"}, &item{name: "itemB"}

	groupItems.Add(g, itemA, itemB)
	assert.Equal(t, []*item{itemA, itemB}, groupItems.All(g))
	assert.Same(t, g, itemGroup.Get(itemA))
	assert.Same(t, g, itemGroup.Get(itemB))

	require.NoError(t, groupItems.Remove(g, itemA))
	assert.Equal(t, []*item{itemB}, groupItems.All(g))
	assert.Nil(t, itemGroup.Get(itemA))
	assert.Same(t, g, itemGroup.Get(itemB))
	requireGroupsConsistent(t, []*group{g}, []*item{itemA, itemB})
}

func TestOneSet(t *testing.T) {
	t.Parallel()

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()
		g := &group{name: "g"}
		a := &item{name: "a"}

		itemGroup.Set(a, g)
		itemGroup.Set(a, g)
		assert.Equal(t, []*item{a}, groupItems.All(g))
		assert.Same(t, g, itemGroup.Get(a))
	})

	t.Run("clears_old_link", func(t *testing.T) {
		t.Parallel()
		g1, g2 := &group{name: "g1"}, &group{name: "g2"}
		a := &item{name: "a"}

		itemGroup.Set(a, g1)
		itemGroup.Set(a, g2)
		assert.Empty(t, groupItems.All(g1))
		assert.Equal(t, []*item{a}, groupItems.All(g2))
		requireGroupsConsistent(t, []*group{g1, g2}, []*item{a})
	})

	t.Run("nil_unlinks", func(t *testing.T) {
		t.Parallel()
		g := &group{name: "g"}
		a, b := &item{name: "a"}, &item{name: "b"}

		itemGroup.Set(a, g)
		itemGroup.Set(b, g)
		itemGroup.Set(a, nil)
		assert.Nil(t, itemGroup.Get(a))
		assert.Equal(t, []*item{b}, groupItems.All(g))

		itemGroup.Clear(b)
		assert.Empty(t, groupItems.All(g))
		requireGroupsConsistent(t, []*group{g}, []*item{a, b})
	})

	t.Run("keeps_member_order", func(t *testing.T) {
		t.Parallel()
		g := &group{name: "g"}
		a, b, c := &item{name: "a"}, &item{name: "b"}, &item{name: "c"}

		itemGroup.Set(a, g)
		itemGroup.Set(b, g)
		itemGroup.Set(c, g)
		assert.Equal(t, []*item{a, b, c}, groupItems.All(g))
	})

	t.Run("removes_every_duplicate_entry", func(t *testing.T) {
		t.Parallel()
		g1, g2 := &group{name: "g1"}, &group{name: "g2"}
		a := &item{name: "a"}

		groupItems.Add(g1, a, a)
		require.Equal(t, 2, groupItems.Len(g1))
		itemGroup.Set(a, g2)
		assert.Zero(t, groupItems.Len(g1))
		assert.Equal(t, []*item{a}, groupItems.All(g2))
		requireGroupsConsistent(t, []*group{g1, g2}, []*item{a})
	})
}

func TestManySetAll(t *testing.T) {
	t.Parallel()

	t.Run("replaces_membership", func(t *testing.T) {
		t.Parallel()
		g := &group{name: "g"}
		b1, b2, b3 := &item{name: "b1"}, &item{name: "b2"}, &item{name: "b3"}

		groupItems.SetAll(g, []*item{b1, b2})
		groupItems.SetAll(g, []*item{b2, b3})
		assert.Nil(t, itemGroup.Get(b1))
		assert.Same(t, g, itemGroup.Get(b2))
		assert.Same(t, g, itemGroup.Get(b3))
		assert.Equal(t, []*item{b2, b3}, groupItems.All(g))
		requireGroupsConsistent(t, []*group{g}, []*item{b1, b2, b3})
	})

	t.Run("moves_members_from_other_owner", func(t *testing.T) {
		t.Parallel()
		g1, g2 := &group{name: "g1"}, &group{name: "g2"}
		a, b := &item{name: "a"}, &item{name: "b"}

		groupItems.SetAll(g1, []*item{a, b})
		groupItems.SetAll(g2, []*item{b})
		assert.Equal(t, []*item{a}, groupItems.All(g1))
		assert.Equal(t, []*item{b}, groupItems.All(g2))
		requireGroupsConsistent(t, []*group{g1, g2}, []*item{a, b})
	})

	t.Run("copies_input", func(t *testing.T) {
		t.Parallel()
		g := &group{name: "g"}
		a, b := &item{name: "a"}, &item{name: "b"}

		in := []*item{a, nil}
		groupItems.SetAll(g, in)
		in[0] = b
		assert.Equal(t, []*item{a}, groupItems.All(g), "nil entries are dropped and input is copied")
		assert.Nil(t, itemGroup.Get(b))
	})

	t.Run("clear", func(t *testing.T) {
		t.Parallel()
		g := &group{name: "g"}
		a, b := &item{name: "a"}, &item{name: "b"}

		groupItems.SetAll(g, []*item{a, b})
		groupItems.Clear(g)
		assert.Empty(t, groupItems.All(g))
		assert.Nil(t, itemGroup.Get(a))
		assert.Nil(t, itemGroup.Get(b))
	})
}

func TestManyAdd(t *testing.T) {
	t.Parallel()

	t.Run("does_not_deduplicate", func(t *testing.T) {
		t.Parallel()
		g := &group{name: "g"}
		a := &item{name: "a"}

		groupItems.Add(g, a)
		groupItems.Add(g, a)
		assert.Equal(t, []*item{a, a}, groupItems.All(g))

		require.NoError(t, groupItems.Remove(g, a))
		assert.Same(t, g, itemGroup.Get(a), "one entry remains, so the back-reference stays")
		requireGroupsConsistent(t, []*group{g}, []*item{a})

		require.NoError(t, groupItems.Remove(g, a))
		assert.Nil(t, itemGroup.Get(a))
		requireGroupsConsistent(t, []*group{g}, []*item{a})
	})

	t.Run("moves_member_from_previous_owner", func(t *testing.T) {
		t.Parallel()
		g1, g2 := &group{name: "g1"}, &group{name: "g2"}
		a := &item{name: "a"}

		groupItems.Add(g1, a)
		groupItems.Add(g2, a)
		assert.Empty(t, groupItems.All(g1))
		assert.Same(t, g2, itemGroup.Get(a))
		requireGroupsConsistent(t, []*group{g1, g2}, []*item{a})
	})

	t.Run("skips_nil", func(t *testing.T) {
		t.Parallel()
		g := &group{name: "g"}
		groupItems.Add(g, nil)
		assert.Zero(t, groupItems.Len(g))
	})
}

func TestManyRemove(t *testing.T) {
	t.Parallel()

	t.Run("absent_member_fails", func(t *testing.T) {
		t.Parallel()
		g := &group{name: "g"}
		a, x := &item{name: "a"}, &item{name: "x"}
		groupItems.Add(g, a)

		err := groupItems.Remove(g, x)
		require.Error(t, err)
		assert.True(t, errors.Is(err, cim.ErrNotFound))
		assert.True(t, cim.IsNotFound(err))

		var nf *cim.NotFoundError
		require.True(t, errors.As(err, &nf))
		assert.Equal(t, "Group.Items member", nf.Label())
		assert.Same(t, x, nf.ID())
		assert.Equal(t, []*item{a}, groupItems.All(g))
	})

	t.Run("partial_failure_leaves_graph_unchanged", func(t *testing.T) {
		t.Parallel()
		g := &group{name: "g"}
		a, b, x := &item{name: "a"}, &item{name: "b"}, &item{name: "x"}
		groupItems.Add(g, a, b)

		err := groupItems.Remove(g, a, x)
		require.ErrorIs(t, err, cim.ErrNotFound)
		assert.Equal(t, []*item{a, b}, groupItems.All(g))
		assert.Same(t, g, itemGroup.Get(a))
	})

	t.Run("more_removals_than_entries", func(t *testing.T) {
		t.Parallel()
		g := &group{name: "g"}
		a := &item{name: "a"}
		groupItems.Add(g, a)

		require.ErrorIs(t, groupItems.Remove(g, a, a), cim.ErrNotFound)
		assert.Equal(t, []*item{a}, groupItems.All(g))
	})

	t.Run("nil_member", func(t *testing.T) {
		t.Parallel()
		g := &group{name: "g"}
		a := &item{name: "a"}
		groupItems.Add(g, a)
		err := groupItems.Remove(g, a, nil)
		require.ErrorIs(t, err, cim.ErrNotFound)
		var nf *cim.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "Group.Items member", nf.Label())
		assert.Nil(t, nf.ID())
		assert.Equal(t, []*item{a}, groupItems.All(g), "a stays a member")
		assert.Same(t, g, itemGroup.Get(a))
	})

	t.Run("identity_not_value", func(t *testing.T) {
		t.Parallel()
		g := &group{name: "g"}
		a1, a2 := &item{name: "same"}, &item{name: "same"}
		groupItems.Add(g, a1)

		require.ErrorIs(t, groupItems.Remove(g, a2), cim.ErrNotFound)
		assert.Nil(t, itemGroup.Get(a2))
		require.NoError(t, groupItems.Remove(g, a1))
		assert.Empty(t, groupItems.All(g))
	})
}

func TestOneToOne(t *testing.T) {
	t.Parallel()

	p1, p2 := &person{name: "p1"}, &person{name: "p2"}
	x, y := &passport{number: "x"}, &passport{number: "y"}

	personPassport.Set(p1, x)
	assert.Same(t, p1, passportHolder.Get(x))

	// x changes hands: p1 loses it.
	personPassport.Set(p2, x)
	assert.Nil(t, personPassport.Get(p1))
	assert.Same(t, p2, passportHolder.Get(x))

	// Setting from the other end.
	passportHolder.Set(y, p2)
	assert.Same(t, y, personPassport.Get(p2))
	assert.Nil(t, passportHolder.Get(x), "x loses its holder when p2 takes y")

	personPassport.Set(p2, y)
	assert.Same(t, p2, passportHolder.Get(y))

	personPassport.Clear(p2)
	assert.Nil(t, passportHolder.Get(y))

	for _, p := range []*person{p1, p2} {
		require.NoError(t, personPassport.Check(p))
	}
	for _, pp := range []*passport{x, y} {
		require.NoError(t, passportHolder.Check(pp))
	}
}

func TestManyToMany(t *testing.T) {
	t.Parallel()

	s1, s2 := &student{name: "s1"}, &student{name: "s2"}
	c1, c2, c3 := &course{title: "c1"}, &course{title: "c2"}, &course{title: "c3"}
	students := []*student{s1, s2}
	courses := []*course{c1, c2, c3}

	studentCourses.Add(s1, c1, c2)
	assert.Equal(t, []*student{s1}, courseStudents.All(c1))
	assert.Equal(t, []*student{s1}, courseStudents.All(c2))
	requireCoursesConsistent(t, students, courses)

	courseStudents.Add(c1, s2)
	assert.Equal(t, []*course{c1}, studentCourses.All(s2))
	assert.Equal(t, []*student{s1, s2}, courseStudents.All(c1))
	requireCoursesConsistent(t, students, courses)

	studentCourses.SetAll(s1, []*course{c2, c3})
	assert.Equal(t, []*student{s2}, courseStudents.All(c1))
	assert.Equal(t, []*student{s1}, courseStudents.All(c2))
	assert.Equal(t, []*student{s1}, courseStudents.All(c3))
	requireCoursesConsistent(t, students, courses)

	require.NoError(t, studentCourses.Remove(s1, c2))
	assert.Empty(t, courseStudents.All(c2))
	require.ErrorIs(t, studentCourses.Remove(s1, c2), cim.ErrNotFound)
	requireCoursesConsistent(t, students, courses)

	courseStudents.Clear(c1)
	assert.Empty(t, studentCourses.All(s2))
	requireCoursesConsistent(t, students, courses)
}

func TestManyToManyDuplicates(t *testing.T) {
	t.Parallel()

	s := &student{name: "s"}
	c := &course{title: "c"}

	studentCourses.Add(s, c, c)
	assert.Equal(t, 2, studentCourses.Len(s))
	assert.Equal(t, 2, courseStudents.Len(c))

	require.NoError(t, studentCourses.Remove(s, c))
	assert.Equal(t, 1, studentCourses.Len(s))
	assert.Equal(t, 1, courseStudents.Len(c))
	requireCoursesConsistent(t, []*student{s}, []*course{c})
}

func TestCheck(t *testing.T) {
	t.Parallel()

	// rogueItems shares Item.Group with groupItems but stores members in
	// another list, so it leaves groupItems' view inconsistent.
	rogueItems, _ := relation.OneToMany(
		relation.ManyEnd[group, item]{Name: "Group.Other", Slot: func(g *group) *relation.List[item] { return &g.other }},
		relation.OneEnd[item, group]{Name: "Item.Group", Slot: func(i *item) *relation.Ref[group] { return &i.group }},
	)

	g := &group{name: "g"}
	a, b := &item{name: "a"}, &item{name: "b"}
	groupItems.Add(g, a, b)
	require.NoError(t, groupItems.Check(g))
	require.NoError(t, itemGroup.Check(a))

	g2 := &group{name: "g2"}
	rogueItems.Add(g2, a, b)

	err := itemGroup.Check(a)
	require.Error(t, err)
	assert.True(t, cim.IsInconsistent(err))

	var ie *cim.InconsistencyError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, "Item.Group", ie.Relation)
	assert.Same(t, a, ie.Owner)
	assert.Same(t, g2, ie.Target)

	err = groupItems.Check(g)
	require.Error(t, err)
	var agg *cim.AggregateError
	require.True(t, errors.As(err, &agg))
	assert.Len(t, agg.Errors, 2)
}

// TestRandomOperations applies random mutations and checks that both ends
// agree after every step.
func TestRandomOperations(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(1, 2))
	groups := []*group{{name: "g0"}, {name: "g1"}, {name: "g2"}}
	items := make([]*item, 6)
	for i := range items {
		items[i] = &item{name: string(rune('a' + i))}
	}
	students := []*student{{name: "s0"}, {name: "s1"}, {name: "s2"}}
	courses := []*course{{title: "c0"}, {title: "c1"}, {title: "c2"}, {title: "c3"}}

	pickItems := func() []*item {
		var out []*item
		for range rng.IntN(4) {
			out = append(out, items[rng.IntN(len(items))])
		}
		return out
	}
	pickCourses := func() []*course {
		var out []*course
		for range rng.IntN(4) {
			out = append(out, courses[rng.IntN(len(courses))])
		}
		return out
	}

	for step := range 500 {
		g := groups[rng.IntN(len(groups))]
		s := students[rng.IntN(len(students))]
		switch rng.IntN(8) {
		case 0:
			var target *group
			if rng.IntN(4) > 0 {
				target = g
			}
			itemGroup.Set(items[rng.IntN(len(items))], target)
		case 1:
			groupItems.SetAll(g, pickItems())
		case 2:
			groupItems.Add(g, pickItems()...)
		case 3:
			members := groupItems.All(g)
			if len(members) > 0 {
				require.NoError(t, groupItems.Remove(g, members[rng.IntN(len(members))]), "step %d", step)
			}
		case 4:
			studentCourses.SetAll(s, pickCourses())
		case 5:
			studentCourses.Add(s, pickCourses()...)
		case 6:
			c := courses[rng.IntN(len(courses))]
			if err := courseStudents.Remove(c, s); err != nil {
				require.ErrorIs(t, err, cim.ErrNotFound)
			}
		case 7:
			courseStudents.Add(courses[rng.IntN(len(courses))], s)
		}
		requireGroupsConsistent(t, groups, items)
		requireCoursesConsistent(t, students, courses)
	}
}

func TestRandomOneToOne(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(3, 4))
	people := []*person{{name: "p0"}, {name: "p1"}, {name: "p2"}, {name: "p3"}}
	passports := []*passport{{number: "x0"}, {number: "x1"}, {number: "x2"}}

	for range 500 {
		p := people[rng.IntN(len(people))]
		x := passports[rng.IntN(len(passports))]
		switch rng.IntN(4) {
		case 0:
			if rng.IntN(4) == 0 {
				x = nil
			}
			personPassport.Set(p, x)
			if x != nil {
				assert.Same(t, p, passportHolder.Get(x))
			}
		case 1:
			if rng.IntN(4) == 0 {
				p = nil
			}
			passportHolder.Set(x, p)
			if p != nil {
				assert.Same(t, x, personPassport.Get(p))
			}
		case 2:
			personPassport.Clear(p)
			assert.Nil(t, personPassport.Get(p))
		case 3:
			passportHolder.Clear(x)
			assert.Nil(t, passportHolder.Get(x))
		}
		requirePassportsConsistent(t, people, passports)
	}
}
