// Copyright © 2020 The Pea Authors under an MIT-style license.

package override

import (
	"sort"

	"bitbucket.org/creachadair/stringset"
	"github.com/willhansen/overcheck/sym"
)

// checkOverrides checks each member declared by the class
// against the members that it overrides.
func (x *state) checkOverrides(sc *Scope) {
	defer x.tr("checkOverrides(%s)", sc.Class)()
	for _, m := range sc.Class.Members {
		x.checkOverride(m, sc.overridden[m])
	}
}

func (x *state) checkOverride(m *sym.Callable, os []entry) {
	defer x.tr("checkOverride(%s) %d overridden", m, len(os))()
	switch {
	case len(os) == 0:
		if m.Override {
			x.emit(x.memberDiag(NothingToOverride, m))
		}
		return
	case !m.Override:
		if allAbstract(os) {
			return
		}
		for _, o := range os {
			if sym.Visible(o.m, x.class) {
				x.emit(x.memberDiag(VirtualMemberHidden, m, o.m))
				return
			}
		}
		return
	}

	for _, o := range os {
		if o.m.Modality == sym.Final {
			x.emit(x.memberDiag(OverridingFinalMember, m, o.m))
			break
		}
	}
	if m.IsVal() {
		for _, o := range os {
			if o.m.IsVar() {
				x.emit(x.memberDiag(VarOverriddenByVal, m, o.m))
				break
			}
		}
	}
	x.checkOverrideVis(m, os)
	if m.Deprecated == nil {
		for _, o := range os {
			if o.m.Deprecated != nil {
				x.emit(x.memberDiag(OverrideDeprecation, m, o.m))
				break
			}
		}
	}
	x.checkOverrideType(m, os)
	x.checkOptIns(m, os)
}

func (x *state) checkOverrideVis(m *sym.Callable, os []entry) {
	sorted := make([]*sym.Callable, len(os))
	for i, o := range os {
		sorted[i] = o.m
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Vis.Rank() < sorted[j].Vis.Rank()
	})
	d, weakened := x.compareVis(m, m.Vis, sorted, memberVis)
	if weakened {
		x.emit(d)
	}

	// A setter defaults to the property visibility,
	// so only check it when the property itself is fine.
	if m.IsVar() && !weakened {
		var vars []*sym.Callable
		for _, o := range sorted {
			if o.IsVar() {
				vars = append(vars, o)
			}
		}
		sort.SliceStable(vars, func(i, j int) bool {
			return vars[i].Setter().Rank() < vars[j].Setter().Rank()
		})
		if d, ok := x.compareVis(m, m.Setter(), vars, (*sym.Callable).Setter); ok {
			d.Accessor = "set"
			x.emit(d)
		}
	}

	for _, o := range os {
		if sym.Visible(o.m, x.class) {
			return
		}
	}
	x.emit(x.memberDiag(CannotOverrideInvisibleMember, m, os[0].m))
}

func allAbstract(os []entry) bool {
	for _, o := range os {
		if !o.m.IsAbstract() {
			return false
		}
	}
	return true
}

func memberVis(m *sym.Callable) sym.Visibility { return m.Vis }

// compareVis returns a diagnostic for the first overridden member
// whose visibility is incomparable to or stronger than v.
func (x *state) compareVis(m *sym.Callable, v sym.Visibility, os []*sym.Callable, vis func(*sym.Callable) sym.Visibility) (Diag, bool) {
	for _, o := range os {
		switch c, ok := sym.CompareVis(v, vis(o)); {
		case !ok:
			return x.memberDiag(CannotChangeAccessPrivilege, m, o), true
		case c < 0:
			return x.memberDiag(CannotWeakenAccessPrivilege, m, o), true
		}
	}
	return Diag{}, false
}

// checkOverrideType checks the return type of m
// against the return types of the members that it overrides,
// reporting only the first mismatch.
func (x *state) checkOverrideType(m *sym.Callable, os []entry) {
	for _, o := range os {
		want := parmSub(o.m.TParms, m.TParms, o.view).apply(o.m.Ret)
		var ok bool
		if o.m.IsVar() {
			ok = x.typesEqual(m.Ret, want)
		} else {
			ok = x.isSubtype(m.Ret, want)
		}
		if ok {
			continue
		}
		x.log("%s is not compatible with %s", m.Ret, want)
		var d Diag
		switch {
		case m.Kind == sym.Fun:
			d = x.memberDiag(ReturnTypeMismatchOnOverride, m, o.m)
		case m.IsVar():
			d = x.memberDiag(VarTypeMismatchOnOverride, m, o.m)
		default:
			d = x.memberDiag(PropertyTypeMismatchOnOverride, m, o.m)
		}
		d.Want = want
		x.emit(d)
		return
	}
}

// checkOptIns reports each experimental marker of an overridden member
// that is neither carried nor accepted by m or its class.
func (x *state) checkOptIns(m *sym.Callable, os []entry) {
	markers := stringset.New()
	for _, o := range os {
		for _, c := range o.m.Constituents() {
			markers.Add(c.Markers...)
		}
	}
	if markers.Len() == 0 {
		return
	}
	accepted := stringset.New(m.Markers...)
	accepted.Add(m.OptIns...)
	if m.Owner != nil {
		accepted.Add(m.Owner.OptIns...)
	}
	for _, marker := range markers.Elements() {
		if accepted.Contains(marker) {
			continue
		}
		d := x.memberDiag(OptInOverride, m, markedBy(marker, os))
		d.Marker = marker
		x.emit(d)
	}
}

func markedBy(marker string, os []entry) *sym.Callable {
	for _, o := range os {
		for _, c := range o.m.Constituents() {
			for _, mk := range c.Markers {
				if mk == marker {
					return c
				}
			}
		}
	}
	return nil
}
