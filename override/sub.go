// Copyright © 2020 The Pea Authors under an MIT-style license.

package override

import (
	"fmt"
	"sort"
	"strings"

	"github.com/willhansen/overcheck/sym"
)

// A sub is a substitution of types for type parameters.
// A nil *sub is the identity substitution.
type sub struct {
	parms map[*sym.TypeParm]*sym.Type
	// parent is consulted for parameters not in parms;
	// for example, the class type parameters
	// of a member-level substitution.
	parent *sub
}

// newSub returns a substitution mapping from[i] to to[i].
// Extra parameters or types on either side are ignored.
func newSub(from []*sym.TypeParm, to []*sym.Type, parent *sub) *sub {
	n := len(from)
	if len(to) < n {
		n = len(to)
	}
	if n == 0 {
		return parent
	}
	s := &sub{parms: make(map[*sym.TypeParm]*sym.Type, n), parent: parent}
	for i := 0; i < n; i++ {
		s.parms[from[i]] = to[i]
	}
	return s
}

// parmSub returns a substitution mapping
// the type parameters of one member to those of another.
func parmSub(from, to []*sym.TypeParm, parent *sub) *sub {
	return newSub(from, sym.ParmTypes(to), parent)
}

func (s *sub) lookup(p *sym.TypeParm) (*sym.Type, bool) {
	for ; s != nil; s = s.parent {
		if t, ok := s.parms[p]; ok {
			return t, true
		}
	}
	return nil, false
}

// apply returns t with its type parameters substituted.
// If nothing is substituted, t itself is returned.
func (s *sub) apply(t *sym.Type) *sym.Type {
	if s == nil || t == nil {
		return t
	}
	switch {
	case t.Parm != nil:
		u, ok := s.lookup(t.Parm)
		switch {
		case !ok:
			return t
		case t.Nullable:
			return u.WithNullable(true)
		default:
			return u
		}
	case t.Class != nil:
		var args []*sym.Type
		for i, a := range t.Args {
			b := s.apply(a)
			if b != a && args == nil {
				args = append(make([]*sym.Type, 0, len(t.Args)), t.Args[:i]...)
			}
			if args != nil {
				args = append(args, b)
			}
		}
		if args == nil {
			return t
		}
		u := *t
		u.Args = args
		return &u
	default:
		return t
	}
}

// compose returns a flat substitution equivalent to
// applying s and then outer.
func (s *sub) compose(outer *sub) *sub {
	switch {
	case s == nil:
		return outer
	case outer == nil:
		return s
	}
	c := &sub{parms: make(map[*sym.TypeParm]*sym.Type)}
	for t := s; t != nil; t = t.parent {
		for p, u := range t.parms {
			if _, ok := c.parms[p]; !ok {
				c.parms[p] = outer.apply(u)
			}
		}
	}
	return c
}

func (s *sub) String() string {
	var ss []string
	for t := s; t != nil; t = t.parent {
		for p, u := range t.parms {
			ss = append(ss, fmt.Sprintf("%s=%s", p.Name, u))
		}
	}
	sort.Strings(ss)
	return "[" + strings.Join(ss, ";") + "]"
}
