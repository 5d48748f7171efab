// Copyright © 2020 The Pea Authors under an MIT-style license.

package override

import (
	"strings"

	"github.com/willhansen/overcheck/sym"
)

// An InternalError is an inconsistency in the Symbol Model
// that makes checking impossible:
// an inheritance cycle, more than one class supertype,
// or a supertype list that changed during checking.
type InternalError struct {
	Class *sym.Class
	Msg   string
	// Before and After are the supertypes of Class
	// before and after the class was checked,
	// if the inconsistency was observed while checking.
	Before, After []sym.Super
}

func (err *InternalError) Error() string {
	var s strings.Builder
	s.WriteString("internal error: ")
	if err.Class != nil {
		s.WriteString(err.Class.Name)
		s.WriteString(": ")
	}
	s.WriteString(err.Msg)
	if err.Before != nil || err.After != nil {
		s.WriteString("\n\tbefore: ")
		buildSupersString(err.Before, &s)
		s.WriteString("\n\tafter: ")
		buildSupersString(err.After, &s)
	}
	return s.String()
}

func buildSupersString(supers []sym.Super, s *strings.Builder) {
	s.WriteRune('[')
	for i, super := range supers {
		if i > 0 {
			s.WriteString(", ")
		}
		s.WriteString(super.Type.String())
		if super.By {
			s.WriteString(" by ")
			s.WriteString(super.Delegate)
		}
	}
	s.WriteRune(']')
}

func snapshotSupers(c *sym.Class) []sym.Super {
	return append([]sym.Super{}, c.Supers...)
}

func sameSupers(a, b []sym.Super) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
