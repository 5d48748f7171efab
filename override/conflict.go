// Copyright © 2020 The Pea Authors under an MIT-style license.

package override

import (
	"github.com/willhansen/overcheck/sym"
)

// A conflict is a pair of scope members that callers cannot tell apart,
// but that do not override one another.
type conflict struct {
	a, b entry
}

// findConflicts returns the first conflicting pair
// of each group of members with the same erased signature.
func (x *state) findConflicts(sc *Scope) []conflict {
	var keys []string
	groups := make(map[string][]entry)
	for _, e := range sc.entries {
		k := x.erasedKey(e.m, e.view)
		if _, ok := groups[k]; !ok {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], e)
	}
	var cs []conflict
	for _, k := range keys {
		es := groups[k]
		for i := 1; i < len(es); i++ {
			a, b := es[i-1], es[i]
			if a.m.Suspend == b.m.Suspend && len(a.m.TParms) == len(b.m.TParms) {
				continue
			}
			if a.origin == b.origin && a.origin != sc.Class {
				continue
			}
			x.log("conflict %s, %s", a.m, b.m)
			cs = append(cs, conflict{a: a, b: b})
			break
		}
	}
	return cs
}

func (sc *Scope) inConflict(m *sym.Callable) bool {
	for _, c := range sc.conflicts {
		if c.a.m == m || c.b.m == m {
			return true
		}
	}
	return false
}

func (x *state) checkConflicts(sc *Scope) {
	defer x.tr("checkConflicts(%s)", sc.Class)()
	for _, c := range sc.conflicts {
		switch {
		case x.declared(c.a.m):
			x.emit(x.memberDiag(ConflictingOverloads, c.a.m, c.b.m))
		case x.declared(c.b.m):
			x.emit(x.memberDiag(ConflictingOverloads, c.b.m, c.a.m))
		default:
			x.emit(x.classDiag(ConflictingInheritedMembers, c.a.m, c.b.m))
		}
	}
}

// declared returns whether m is declared in the source of the class being checked.
func (x *state) declared(m *sym.Callable) bool {
	return m.Owner == x.class && !m.Synthetic && !m.IsIntersection()
}
