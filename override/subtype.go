// Copyright © 2020 The Pea Authors under an MIT-style license.

package override

import (
	"github.com/willhansen/overcheck/sym"
)

// maxTypeDepth bounds the recursion of type queries
// through type parameter bounds that refer to each other.
const maxTypeDepth = 64

// isSubtype returns whether a is a subtype of b.
// The error type is compatible with every type.
func (x *checker) isSubtype(a, b *sym.Type) bool {
	return x.subtype(a, b, 0)
}

func (x *checker) subtype(a, b *sym.Type, depth int) bool {
	switch {
	case a == nil || b == nil || a.Error || b.Error:
		return true
	case depth > maxTypeDepth:
		return false
	case b.Nullable && x.isClass(b, x.arena.Any):
		return true
	case x.isClass(a, x.arena.Nothing):
		return !a.Nullable || b.Nullable
	case a.Nullable && !b.Nullable:
		return false
	case a.Parm != nil:
		if a.Parm == b.Parm {
			return true
		}
		for _, bound := range x.bounds(a.Parm) {
			if a.Nullable {
				bound = bound.WithNullable(true)
			}
			if x.subtype(bound, b, depth+1) {
				return true
			}
		}
		return false
	case b.Parm != nil || a.Class == nil || b.Class == nil:
		return false
	}
	up := x.supertypeAs(a, b.Class)
	if up == nil {
		return false
	}
	for i, parm := range b.Class.TParms {
		if i >= len(up.Args) || i >= len(b.Args) {
			break
		}
		ua, ba := up.Args[i], b.Args[i]
		switch parm.Variance {
		case sym.Out:
			if !x.subtype(ua, ba, depth+1) {
				return false
			}
		case sym.In:
			if !x.subtype(ba, ua, depth+1) {
				return false
			}
		default:
			if !x.typesEqual(ua, ba) {
				return false
			}
		}
	}
	return true
}

// typesEqual returns whether a and b are the same type.
// The error type is equal to every type.
func (x *checker) typesEqual(a, b *sym.Type) bool {
	switch {
	case a == nil || b == nil || a.Error || b.Error:
		return true
	case a.Nullable != b.Nullable:
		return false
	case a.Parm != nil || b.Parm != nil:
		return a.Parm == b.Parm
	case a.Class != b.Class || len(a.Args) != len(b.Args):
		return false
	}
	for i := range a.Args {
		if !x.typesEqual(a.Args[i], b.Args[i]) {
			return false
		}
	}
	return true
}

// supertypeAs returns the supertype of the class type t
// that is an instance of the class target, or nil.
// The supertype's arguments are in terms of t's arguments.
func (x *checker) supertypeAs(t *sym.Type, target *sym.Class) *sym.Type {
	return x.supertypeAsDepth(t, target, 0)
}

func (x *checker) supertypeAsDepth(t *sym.Type, target *sym.Class, depth int) *sym.Type {
	switch {
	case t.Class == target:
		return t.NonNull()
	case depth > maxTypeDepth:
		return nil
	}
	s := newSub(t.Class.TParms, t.Args, nil)
	for _, super := range t.Class.Supers {
		if super.Type == nil || super.Type.Class == nil {
			continue
		}
		if u := x.supertypeAsDepth(s.apply(super.Type), target, depth+1); u != nil {
			return u
		}
	}
	if target != nil && target == x.arena.Any {
		return sym.ClassType(target)
	}
	return nil
}

// bounds returns the upper bounds of a type parameter.
// A parameter without declared bounds is bounded by Any?.
func (x *checker) bounds(p *sym.TypeParm) []*sym.Type {
	if len(p.Bounds) > 0 || x.arena.Any == nil {
		return p.Bounds
	}
	return []*sym.Type{sym.ClassType(x.arena.Any).WithNullable(true)}
}

func (x *checker) isClass(t *sym.Type, c *sym.Class) bool {
	return c != nil && t.Class == c
}
