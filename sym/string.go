// Copyright © 2020 The Pea Authors under an MIT-style license.

package sym

import "strings"

func (c *Class) String() string { return c.Name }

// FullString returns the class header as it would be declared.
func (c *Class) FullString() string {
	var s strings.Builder
	if c.Vis != Public {
		s.WriteString(c.Vis.String())
		s.WriteRune(' ')
	}
	if c.Kind != Interface && c.Modality != Final {
		s.WriteString(c.Modality.String())
		s.WriteRune(' ')
	}
	s.WriteString(c.Kind.String())
	s.WriteRune(' ')
	s.WriteString(c.Name)
	buildTypeParmsString(c.TParms, &s)
	for i, super := range c.Supers {
		if i == 0 {
			s.WriteString(" : ")
		} else {
			s.WriteString(", ")
		}
		buildTypeString(super.Type, &s)
		if super.By {
			s.WriteString(" by ")
			s.WriteString(super.Delegate)
		}
	}
	return s.String()
}

func (t *Type) String() string {
	var s strings.Builder
	buildTypeString(t, &s)
	return s.String()
}

func buildTypeString(t *Type, s *strings.Builder) {
	switch {
	case t == nil:
		s.WriteString("<nil>")
		return
	case t.Error:
		s.WriteString("<error>")
		return
	case t.Parm != nil:
		s.WriteString(t.Parm.Name)
	case t.Class != nil:
		s.WriteString(t.Class.Name)
		if len(t.Args) > 0 {
			s.WriteRune('<')
			for i, a := range t.Args {
				if i > 0 {
					s.WriteString(", ")
				}
				buildTypeString(a, s)
			}
			s.WriteRune('>')
		}
	}
	if t.Nullable {
		s.WriteRune('?')
	}
}

func (p *TypeParm) String() string {
	var s strings.Builder
	buildTypeParmString(p, &s)
	return s.String()
}

func buildTypeParmString(p *TypeParm, s *strings.Builder) {
	if p.Variance != Inv {
		s.WriteString(p.Variance.String())
		s.WriteRune(' ')
	}
	s.WriteString(p.Name)
	if len(p.Bounds) > 0 {
		s.WriteString(": ")
		buildTypeString(p.Bounds[0], s)
	}
}

func buildTypeParmsString(ps []*TypeParm, s *strings.Builder) {
	if len(ps) == 0 {
		return
	}
	s.WriteRune('<')
	for i, p := range ps {
		if i > 0 {
			s.WriteString(", ")
		}
		buildTypeParmString(p, s)
	}
	s.WriteRune('>')
}

// String returns the callable's signature qualified by its owner,
// for example, Base.f(Int): String.
func (m *Callable) String() string {
	var s strings.Builder
	if m.Owner != nil {
		s.WriteString(m.Owner.Name)
		s.WriteRune('.')
	}
	buildSigString(m, &s)
	return s.String()
}

// Sig returns the callable's signature without its owner.
func (m *Callable) Sig() string {
	var s strings.Builder
	buildSigString(m, &s)
	return s.String()
}

func buildSigString(m *Callable, s *strings.Builder) {
	if m.Recv != nil {
		buildTypeString(m.Recv, s)
		s.WriteRune('.')
	}
	s.WriteString(m.Name)
	if m.Kind == Fun {
		s.WriteRune('(')
		for i, p := range m.Parms {
			if i > 0 {
				s.WriteString(", ")
			}
			buildTypeString(p, s)
		}
		s.WriteRune(')')
	}
	if m.Ret != nil {
		s.WriteString(": ")
		buildTypeString(m.Ret, s)
	}
}

// FullString returns the callable as it would be declared.
func (m *Callable) FullString() string {
	var s strings.Builder
	if m.IsIntersection() {
		s.WriteString("intersection[")
		for i, c := range m.Intersects {
			if i > 0 {
				s.WriteString(", ")
			}
			s.WriteString(c.String())
		}
		s.WriteRune(']')
		return s.String()
	}
	if m.Synthetic {
		s.WriteString("synthetic ")
	}
	if m.Vis != Public {
		s.WriteString(m.Vis.String())
		s.WriteRune(' ')
	}
	s.WriteString(m.Modality.String())
	s.WriteRune(' ')
	if m.Override {
		s.WriteString("override ")
	}
	if m.Suspend {
		s.WriteString("suspend ")
	}
	switch {
	case m.Kind == Fun:
		s.WriteString("fun")
	case m.Mutable:
		s.WriteString("var")
	default:
		s.WriteString("val")
	}
	if len(m.TParms) > 0 {
		s.WriteRune(' ')
		buildTypeParmsString(m.TParms, &s)
	}
	s.WriteRune(' ')
	buildSigString(m, &s)
	if m.Delegate != nil {
		s.WriteString(" by ")
		buildTypeString(m.Delegate, &s)
	}
	return s.String()
}
