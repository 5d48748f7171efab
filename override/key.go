// Copyright © 2020 The Pea Authors under an MIT-style license.

package override

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/willhansen/overcheck/sym"
)

// sigKey returns the override signature key of m
// with the types of its declaration viewed through s.
// Members with equal keys override one another.
//
// The key is the name, kind, suspend-ness,
// type parameter count, receiver type, and parameter types.
// The member's own type parameters are keyed by position,
// so <T> f(T) and <U> f(U) have the same key.
func sigKey(m *sym.Callable, s *sub) string {
	var b strings.Builder
	b.WriteString(m.Name)
	if m.Kind == sym.Fun {
		b.WriteString(" fun")
	} else {
		b.WriteString(" prop")
	}
	if m.Suspend {
		b.WriteString(" suspend")
	}
	b.WriteRune(' ')
	b.WriteString(strconv.Itoa(len(m.TParms)))
	b.WriteRune(' ')
	if m.Recv != nil {
		buildTypeKey(s.apply(m.Recv), m.TParms, &b)
		b.WriteRune('.')
	}
	if m.Kind == sym.Fun {
		b.WriteRune('(')
		for i, p := range m.Parms {
			if i > 0 {
				b.WriteRune(',')
			}
			buildTypeKey(s.apply(p), m.TParms, &b)
		}
		b.WriteRune(')')
	}
	return b.String()
}

func buildTypeKey(t *sym.Type, tparms []*sym.TypeParm, b *strings.Builder) {
	switch {
	case t == nil:
		b.WriteRune('_')
		return
	case t.Error:
		b.WriteRune('!')
		return
	case t.Parm != nil:
		i := parmIndex(t.Parm, tparms)
		if i >= 0 {
			fmt.Fprintf(b, "$%d", i)
		} else {
			fmt.Fprintf(b, "%s@%p", t.Parm.Name, t.Parm)
		}
	case t.Class != nil:
		fmt.Fprintf(b, "#%d", t.Class.ID)
		if len(t.Args) > 0 {
			b.WriteRune('<')
			for i, a := range t.Args {
				if i > 0 {
					b.WriteRune(',')
				}
				buildTypeKey(a, tparms, b)
			}
			b.WriteRune('>')
		}
	}
	if t.Nullable {
		b.WriteRune('?')
	}
}

func parmIndex(p *sym.TypeParm, tparms []*sym.TypeParm) int {
	for i, q := range tparms {
		if p == q {
			return i
		}
	}
	return -1
}

// erasedKey returns the key of m with its parameter types erased:
// type arguments and nullability are dropped,
// and type parameters are replaced by their first bound.
// Members with equal erased keys cannot be told apart by callers.
func (x *checker) erasedKey(m *sym.Callable, s *sub) string {
	var b strings.Builder
	b.WriteString(m.Name)
	if m.Kind == sym.Fun {
		b.WriteString(" fun")
	} else {
		b.WriteString(" prop")
	}
	if m.Recv != nil {
		b.WriteString(" recv")
	}
	if m.Kind == sym.Fun {
		b.WriteRune('(')
		for i, p := range m.Parms {
			if i > 0 {
				b.WriteRune(',')
			}
			x.buildErasedKey(s.apply(p), &b, 0)
		}
		b.WriteRune(')')
	}
	return b.String()
}

func (x *checker) buildErasedKey(t *sym.Type, b *strings.Builder, depth int) {
	switch {
	case t == nil:
		b.WriteRune('_')
	case t.Error:
		b.WriteRune('!')
	case t.Parm != nil && depth <= maxTypeDepth:
		if bs := x.bounds(t.Parm); len(bs) > 0 {
			x.buildErasedKey(bs[0], b, depth+1)
		} else {
			b.WriteRune('*')
		}
	case t.Class != nil:
		fmt.Fprintf(b, "#%d", t.Class.ID)
	default:
		b.WriteRune('*')
	}
}
