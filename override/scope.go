// Copyright © 2020 The Pea Authors under an MIT-style license.

package override

import (
	"github.com/willhansen/overcheck/sym"
)

// A Scope is the member resolution scope of a class:
// its own, delegated, and inherited members.
type Scope struct {
	Class *sym.Class

	// Members are the members of the class in scope order:
	// own members in declaration order,
	// then members synthesized by delegation,
	// then one member for each signature
	// inherited from the supertypes and not overridden:
	// either the inherited member itself
	// or an intersection of members inherited
	// from unrelated supertypes.
	Members []*sym.Callable

	// entries parallels Members.
	entries []entry
	index   map[*sym.Callable]int

	// overridden are the direct overridden members
	// of own and delegated members.
	overridden map[*sym.Callable][]entry

	// constituents are the entries of the members
	// of each intersection in Members.
	constituents map[*sym.Callable][]entry

	// dups are the entries of members
	// provided by more than one delegate,
	// keyed by the synthesized member of the first delegate.
	dups map[*sym.Callable][]entry

	conflicts []conflict
}

// An entry is a member of a scope.
type entry struct {
	m *sym.Callable
	// view maps the type parameters of m's owner
	// to types in terms of the scope's class.
	view *sub
	key  string
	// super is the index of the direct supertype
	// through which m was inherited or delegated.
	// It is -1 for own members and intersections.
	super int
	// origin is the class that declared m,
	// or for a delegated member, the class
	// that declared the member it delegates to.
	origin *sym.Class
}

// Overridden returns the members directly overridden
// by an own or delegated member of the class.
func (sc *Scope) Overridden(m *sym.Callable) []*sym.Callable {
	return callables(sc.overridden[m])
}

// Duplicates returns the members provided by delegates
// other than the one that provided the delegated member m.
func (sc *Scope) Duplicates(m *sym.Callable) []*sym.Callable {
	return callables(sc.dups[m])
}

// Intersections returns the intersection members with the given name.
func (sc *Scope) Intersections(name string) []*sym.Callable {
	var is []*sym.Callable
	for _, m := range sc.Members {
		if m.Name == name && m.IsIntersection() {
			is = append(is, m)
		}
	}
	return is
}

// View returns t, a type in terms of the declaration of the member m,
// in terms of the scope's class.
// If m is not a member of the scope or of one of its intersections,
// t is returned unchanged.
func (sc *Scope) View(m *sym.Callable, t *sym.Type) *sym.Type {
	if e, ok := sc.lookup(m); ok {
		return e.view.apply(t)
	}
	return t
}

// Origin returns the class that declared the member m
// or, for a delegated member, the class that declared its delegate.
func (sc *Scope) Origin(m *sym.Callable) *sym.Class {
	if e, ok := sc.lookup(m); ok {
		return e.origin
	}
	return nil
}

func (sc *Scope) lookup(m *sym.Callable) (entry, bool) {
	if i, ok := sc.index[m]; ok {
		return sc.entries[i], true
	}
	for _, es := range sc.constituents {
		for _, e := range es {
			if e.m == m {
				return e, true
			}
		}
	}
	return entry{}, false
}

func callables(es []entry) []*sym.Callable {
	if len(es) == 0 {
		return nil
	}
	ms := make([]*sym.Callable, len(es))
	for i, e := range es {
		ms[i] = e.m
	}
	return ms
}

func (sc *Scope) add(e entry) {
	sc.index[e.m] = len(sc.entries)
	sc.entries = append(sc.entries, e)
	sc.Members = append(sc.Members, e.m)
}

// group is the inherited members with a common signature key.
type group struct {
	key string
	es  []entry
}

func buildScope(x *state, c *sym.Class) (sc *Scope, err error) {
	defer x.tr("buildScope(%s)", c)(&err)

	sc = &Scope{
		Class:        c,
		index:        make(map[*sym.Callable]int),
		overridden:   make(map[*sym.Callable][]entry),
		constituents: make(map[*sym.Callable][]entry),
		dups:         make(map[*sym.Callable][]entry),
	}
	groups, err := x.candidates(c)
	if err != nil {
		return nil, err
	}
	byKey := make(map[string]*group, len(groups))
	for _, g := range groups {
		byKey[g.key] = g
	}

	claimed := make(map[string]bool)
	for _, m := range c.Members {
		e := entry{m: m, key: sigKey(m, nil), super: -1, origin: c}
		sc.add(e)
		claimed[e.key] = true
		if g := byKey[e.key]; g != nil {
			sc.overridden[m] = dedup(g.es)
		}
		x.log("own %s [%s] overrides %d", m, e.key, len(sc.overridden[m]))
	}

	delegated := make(map[string]*sym.Callable)
	sources := make(map[string]*sym.Callable)
	for i, super := range c.Supers {
		if !super.By {
			continue
		}
		for _, g := range groups {
			if claimed[g.key] {
				continue
			}
			for _, ce := range g.es {
				if ce.super != i || ce.m.Modality == sym.Final || ce.m.Owner == x.arena.Any {
					continue
				}
				if d, ok := delegated[g.key]; ok {
					if sc.entries[sc.index[d]].super != i && sources[g.key] != ce.m {
						sc.dups[d] = append(sc.dups[d], ce)
					}
					break
				}
				d := delegate(c, super, ce)
				delegated[g.key] = d
				sources[g.key] = ce.m
				sc.add(entry{m: d, key: g.key, super: i, origin: ce.origin})
				sc.overridden[d] = dedup(g.es)
				x.log("delegated %s to %s", d, super.Type)
				break
			}
		}
	}

	for _, g := range groups {
		if claimed[g.key] || delegated[g.key] != nil {
			continue
		}
		es := x.prune(dedup(g.es))
		if len(es) == 1 {
			sc.add(es[0])
			continue
		}
		is := intersect(c, es)
		sc.constituents[is] = es
		sc.add(entry{m: is, key: g.key, super: -1, origin: c})
		x.log("intersection %s", is.FullString())
	}
	sc.conflicts = x.findConflicts(sc)
	return sc, nil
}

// candidates returns the non-private members of the supertype scopes,
// viewed in terms of c and grouped by signature key
// in the order that the keys were first seen.
func (x *state) candidates(c *sym.Class) ([]*group, error) {
	var groups []*group
	byKey := make(map[string]*group)
	for i, super := range c.Supers {
		if super.Type == nil || super.Type.Class == nil {
			continue
		}
		superScope, err := x.scope(super.Type.Class)
		if err != nil {
			return nil, err
		}
		s := newSub(super.Type.Class.TParms, super.Type.Args, nil)
		for _, se := range superScope.entries {
			ses := []entry{se}
			if se.m.IsIntersection() {
				ses = superScope.constituents[se.m]
			}
			for _, ce := range ses {
				if ce.m.Vis == sym.Private {
					continue
				}
				ce.view = ce.view.compose(s)
				ce.key = sigKey(ce.m, ce.view)
				ce.super = i
				g := byKey[ce.key]
				if g == nil {
					g = &group{key: ce.key}
					byKey[ce.key] = g
					groups = append(groups, g)
				}
				g.es = append(g.es, ce)
			}
		}
	}
	return groups, nil
}

// dedup returns es with entries for the same member removed,
// keeping the first.
func dedup(es []entry) []entry {
	var out []entry
next:
	for _, e := range es {
		for _, o := range out {
			if o.m == e.m {
				continue next
			}
		}
		out = append(out, e)
	}
	return out
}

// prune returns es without the entries whose members
// are overridden, directly or transitively,
// by the member of another entry.
func (x *state) prune(es []entry) []entry {
	if len(es) < 2 {
		return es
	}
	var out []entry
next:
	for i, e := range es {
		for j, o := range es {
			if i != j && x.overrides(o.m, e.m, 0) {
				continue next
			}
		}
		out = append(out, e)
	}
	return out
}

// overrides returns whether a overrides b, directly or transitively.
func (x *state) overrides(a, b *sym.Callable, depth int) bool {
	if a.Owner == nil || depth > maxTypeDepth {
		return false
	}
	sc := x.memo.load(a.Owner.ID)
	if sc == nil {
		return false
	}
	for _, o := range sc.overridden[a] {
		if o.m == b || x.overrides(o.m, b, depth+1) {
			return true
		}
	}
	return false
}

// delegate returns a member of c implementing
// the delegated member of e by the super.
func delegate(c *sym.Class, super sym.Super, e entry) *sym.Callable {
	m := e.m
	d := &sym.Callable{
		Name:      m.Name,
		Owner:     c,
		Loc:       c.Loc,
		Kind:      m.Kind,
		Modality:  sym.Open,
		Vis:       m.Vis,
		SetterVis: m.SetterVis,
		Override:  true,
		Mutable:   m.Mutable,
		Suspend:   m.Suspend,
		Recv:      e.view.apply(m.Recv),
		Ret:       e.view.apply(m.Ret),
		TParms:    m.TParms,
		Delegate:  super.Type,
		Synthetic: true,
	}
	for _, p := range m.Parms {
		d.Parms = append(d.Parms, e.view.apply(p))
	}
	return d
}

// intersect returns an intersection member of c
// for members independently inherited with the same signature.
// Its types are those of the first member.
func intersect(c *sym.Class, es []entry) *sym.Callable {
	first := es[0]
	is := &sym.Callable{
		Name:      first.m.Name,
		Owner:     c,
		Loc:       c.Loc,
		Kind:      first.m.Kind,
		Modality:  sym.Abstract,
		Vis:       first.m.Vis,
		Suspend:   first.m.Suspend,
		Recv:      first.view.apply(first.m.Recv),
		Ret:       first.view.apply(first.m.Ret),
		TParms:    first.m.TParms,
		Synthetic: true,
	}
	for _, p := range first.m.Parms {
		is.Parms = append(is.Parms, first.view.apply(p))
	}
	for _, e := range es {
		is.Intersects = append(is.Intersects, e.m)
		if !e.m.IsAbstract() {
			is.Modality = sym.Open
		}
		if e.m.IsVar() {
			is.Mutable = true
		}
		if e.m.Vis.Rank() > is.Vis.Rank() {
			is.Vis = e.m.Vis
		}
	}
	return is
}
