// Copyright © 2020 The Pea Authors under an MIT-style license.

package override

import (
	"github.com/willhansen/overcheck/sym"
)

// checkCompleteness checks that a class implements
// every abstract member that it inherits,
// and that its inherited and delegated members are unambiguous.
// Each kind of diagnostic is reported at most once per class,
// for the first offending member in scope order.
func (x *state) checkCompleteness(sc *Scope) {
	c := sc.Class
	defer x.tr("checkCompleteness(%s)", c)()
	if c.Kind == sym.Enum || c.Kind == sym.Annotation || c.Expect {
		x.log("skipped %s", c.Kind)
		return
	}

	reported := make(map[Kind]bool)
	report := func(d Diag) {
		if !reported[d.Kind] {
			reported[d.Kind] = true
			x.emit(d)
		}
	}
	var missing, invisible *sym.Callable
	for _, e := range sc.entries {
		m := e.m
		switch {
		case sc.inConflict(m):
			x.log("%s: in conflict", m)
		case m.IsIntersection():
			x.checkIntersection(sc, e, report)
		case m.Owner == c && m.Delegate != nil:
			x.checkDelegated(sc, e, report)
		case m.Owner == c || !m.IsAbstract():
			continue
		case sym.Visible(m, c):
			if missing == nil {
				missing = m
			}
		default:
			if invisible == nil {
				invisible = m
			}
		}
	}
	switch {
	case c.AbstractCapable():
		x.log("%s may be abstract", c)
	case missing != nil:
		if owner := missing.Owner; owner != nil && !owner.IsInterface() && owner.Kind != sym.Enum {
			report(x.classDiag(AbstractClassMemberNotImplemented, missing))
		} else {
			report(x.classDiag(AbstractMemberNotImplemented, missing))
		}
	case invisible != nil:
		report(x.classDiag(InvisibleAbstractMemberFromSuper, invisible))
	}
}

// checkDelegated checks a member synthesized by delegation
// against the members it overrides
// that are not inherited through its delegate.
func (x *state) checkDelegated(sc *Scope, e entry, report func(Diag)) {
	d := e.m
	for _, o := range sc.overridden[d] {
		if o.super == e.super || o.m.IsAbstract() {
			continue
		}
		if o.m.Modality == sym.Final {
			report(x.classDiag(OverridingFinalMemberByDelegation, d, o.m))
		} else {
			report(x.classDiag(DelegatedMemberHidesSupertypeOverride, d, o.m))
		}
		break
	}
	if dups := sc.dups[d]; len(dups) > 0 {
		report(x.classDiag(ManyImplMemberNotImplemented, d, dups[0].m))
	}
}

func (x *state) checkIntersection(sc *Scope, e entry, report func(Diag)) {
	is, c := e.m, sc.Class
	cs := sc.constituents[is]
	var concrete []entry
	var mutable bool
	for _, ce := range cs {
		if !ce.m.IsAbstract() {
			concrete = append(concrete, ce)
		}
		if ce.m.IsVar() {
			mutable = true
		}
	}
	switch {
	case len(concrete) == 1 && concrete[0].m.IsVal() && mutable:
		report(x.classDiag(VarImplementedByInheritedVal, is, concrete[0].m))
	case len(concrete) == 1 && classOwned(concrete[0].m):
		x.log("%s: implemented by %s", is.FullString(), concrete[0].m)
	case len(concrete) == 0 && c.AbstractCapable():
		x.log("%s: abstract", is.FullString())
	default:
		x.checkAmbiguous(sc, is, cs, report)
	}
	x.checkMostSpecific(is, cs, report)
}

func (x *state) checkAmbiguous(sc *Scope, is *sym.Callable, cs []entry, report func(Diag)) {
	for _, ce := range cs {
		if !ce.m.IsAbstract() && classOwned(ce.m) {
			report(x.classDiag(ManyImplMemberNotImplemented, is, ce.m))
			return
		}
	}
	if sc.Class.AbstractCapable() {
		for _, ce := range cs {
			if classOwned(ce.m) {
				x.log("%s: abstract in class %s", is.FullString(), ce.m.Owner)
				return
			}
		}
	}
	report(x.classDiag(ManyInterfacesMemberNotImplemented, is))
}

// checkMostSpecific reports an intersection
// none of whose constituents has a return type
// compatible with those of all the others.
func (x *state) checkMostSpecific(is *sym.Callable, cs []entry, report func(Diag)) {
	for _, a := range cs {
		if x.mostSpecific(a, cs) {
			return
		}
	}
	if is.Kind == sym.Fun {
		report(x.classDiag(ReturnTypeMismatchOnInheritance, is))
	} else {
		report(x.classDiag(PropertyTypeMismatchOnInheritance, is))
	}
}

func (x *state) mostSpecific(a entry, cs []entry) bool {
	got := a.view.apply(a.m.Ret)
	for _, b := range cs {
		if b.m == a.m {
			continue
		}
		want := parmSub(b.m.TParms, a.m.TParms, b.view).apply(b.m.Ret)
		if b.m.IsVar() && !x.typesEqual(got, want) || !b.m.IsVar() && !x.isSubtype(got, want) {
			return false
		}
	}
	return true
}

func classOwned(m *sym.Callable) bool {
	return m.Owner != nil && !m.Owner.IsInterface()
}
