// Copyright © 2020 The Pea Authors under an MIT-style license.

package sym

// A Visibility is a declared visibility.
// The zero Visibility is Public.
type Visibility int

const (
	Public Visibility = iota
	Protected
	Internal
	Private
)

func (v Visibility) String() string {
	switch v {
	case Public:
		return "public"
	case Protected:
		return "protected"
	case Internal:
		return "internal"
	case Private:
		return "private"
	default:
		panic("impossible visibility")
	}
}

// Rank orders visibilities from least (0) to most (2) visible.
// Protected and Internal have the same rank but are incomparable.
func (v Visibility) Rank() int {
	switch v {
	case Private:
		return 0
	case Protected, Internal:
		return 1
	default:
		return 2
	}
}

// CompareVis compares two visibilities.
// It returns a negative number if a is less visible than b,
// 0 if they are equal, and a positive number if a is more visible.
// The second result is false if the visibilities are incomparable:
// protected and internal.
func CompareVis(a, b Visibility) (int, bool) {
	if a != b && a.Rank() == 1 && b.Rank() == 1 {
		return 0, false
	}
	return a.Rank() - b.Rank(), true
}

// Visible returns whether the member m is visible
// from code declared in the class from.
// The visibility of m's owner is taken into account,
// so a public member of a private class is only visible
// where the class is.
func Visible(m *Callable, from *Class) bool {
	if m.IsIntersection() {
		for _, c := range m.Intersects {
			if Visible(c, from) {
				return true
			}
		}
		return false
	}
	if m.Owner == nil {
		return m.Vis != Private
	}
	return visibleIn(m.Vis, m.Owner, from) && visibleIn(m.Owner.Vis, m.Owner, from)
}

func visibleIn(v Visibility, owner, from *Class) bool {
	switch v {
	case Private:
		return owner == from
	case Internal:
		return owner.Module == from.Module
	case Protected:
		// Override and inheritance checks only ask
		// from subclasses of the owner.
		return true
	default:
		return true
	}
}
