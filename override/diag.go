// Copyright © 2020 The Pea Authors under an MIT-style license.

package override

import (
	"fmt"
	"sort"
	"strings"

	"github.com/willhansen/overcheck/loc"
	"github.com/willhansen/overcheck/sym"
)

// A Kind is the kind of a diagnostic.
type Kind int

const (
	NothingToOverride Kind = iota
	VirtualMemberHidden
	OverridingFinalMember
	VarOverriddenByVal
	CannotChangeAccessPrivilege
	CannotWeakenAccessPrivilege
	CannotOverrideInvisibleMember
	OverrideDeprecation
	ReturnTypeMismatchOnOverride
	PropertyTypeMismatchOnOverride
	VarTypeMismatchOnOverride
	OptInOverride

	AbstractMemberNotImplemented
	AbstractClassMemberNotImplemented
	InvisibleAbstractMemberFromSuper
	OverridingFinalMemberByDelegation
	DelegatedMemberHidesSupertypeOverride
	ManyImplMemberNotImplemented
	ManyInterfacesMemberNotImplemented
	VarImplementedByInheritedVal
	ReturnTypeMismatchOnInheritance
	PropertyTypeMismatchOnInheritance

	ConflictingOverloads
	ConflictingInheritedMembers
)

// String returns the stable tag of the diagnostic kind.
func (k Kind) String() string {
	switch k {
	case NothingToOverride:
		return "NOTHING_TO_OVERRIDE"
	case VirtualMemberHidden:
		return "VIRTUAL_MEMBER_HIDDEN"
	case OverridingFinalMember:
		return "OVERRIDING_FINAL_MEMBER"
	case VarOverriddenByVal:
		return "VAR_OVERRIDDEN_BY_VAL"
	case CannotChangeAccessPrivilege:
		return "CANNOT_CHANGE_ACCESS_PRIVILEGE"
	case CannotWeakenAccessPrivilege:
		return "CANNOT_WEAKEN_ACCESS_PRIVILEGE"
	case CannotOverrideInvisibleMember:
		return "CANNOT_OVERRIDE_INVISIBLE_MEMBER"
	case OverrideDeprecation:
		return "OVERRIDE_DEPRECATION"
	case ReturnTypeMismatchOnOverride:
		return "RETURN_TYPE_MISMATCH_ON_OVERRIDE"
	case PropertyTypeMismatchOnOverride:
		return "PROPERTY_TYPE_MISMATCH_ON_OVERRIDE"
	case VarTypeMismatchOnOverride:
		return "VAR_TYPE_MISMATCH_ON_OVERRIDE"
	case OptInOverride:
		return "OPT_IN_OVERRIDE"
	case AbstractMemberNotImplemented:
		return "ABSTRACT_MEMBER_NOT_IMPLEMENTED"
	case AbstractClassMemberNotImplemented:
		return "ABSTRACT_CLASS_MEMBER_NOT_IMPLEMENTED"
	case InvisibleAbstractMemberFromSuper:
		return "INVISIBLE_ABSTRACT_MEMBER_FROM_SUPER"
	case OverridingFinalMemberByDelegation:
		return "OVERRIDING_FINAL_MEMBER_BY_DELEGATION"
	case DelegatedMemberHidesSupertypeOverride:
		return "DELEGATED_MEMBER_HIDES_SUPERTYPE_OVERRIDE"
	case ManyImplMemberNotImplemented:
		return "MANY_IMPL_MEMBER_NOT_IMPLEMENTED"
	case ManyInterfacesMemberNotImplemented:
		return "MANY_INTERFACES_MEMBER_NOT_IMPLEMENTED"
	case VarImplementedByInheritedVal:
		return "VAR_IMPLEMENTED_BY_INHERITED_VAL"
	case ReturnTypeMismatchOnInheritance:
		return "RETURN_TYPE_MISMATCH_ON_INHERITANCE"
	case PropertyTypeMismatchOnInheritance:
		return "PROPERTY_TYPE_MISMATCH_ON_INHERITANCE"
	case ConflictingOverloads:
		return "CONFLICTING_OVERLOADS"
	case ConflictingInheritedMembers:
		return "CONFLICTING_INHERITED_MEMBERS"
	default:
		panic(fmt.Sprintf("impossible diagnostic kind %d", int(k)))
	}
}

// A Severity is the severity of a diagnostic.
type Severity int

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	default:
		panic("impossible severity")
	}
}

// Severity returns the default severity of the diagnostic kind.
func (k Kind) Severity() Severity {
	switch k {
	case OverrideDeprecation, DelegatedMemberHidesSupertypeOverride:
		return Warning
	default:
		return Error
	}
}

// A Diag is a diagnostic event.
type Diag struct {
	Kind Kind
	// Loc is the location of the member the diagnostic is about,
	// or the location of the class for diagnostics about
	// the class itself or its synthetic and inherited members.
	Loc loc.Loc
	// Class is the class being checked.
	Class *sym.Class
	// Syms are the implicated symbols.
	// Syms[0] is the member the diagnostic is about.
	Syms []*sym.Callable
	// Marker is the experimental marker of an OptInOverride.
	Marker string
	// Accessor is "set" if the diagnostic is about a property setter.
	Accessor string
	// Want is the type required by a type mismatch,
	// with the overridden member's type substituted
	// into the class being checked.
	Want *sym.Type
}

// Error returns the diagnostic text, prefixed by its location.
func (d Diag) Error() string {
	return fmt.Sprintf("%s: %s", d.Loc, d.Message())
}

// Message returns the diagnostic text.
func (d Diag) Message() string {
	sym0, sym1 := d.sym(0), d.sym(1)
	switch d.Kind {
	case NothingToOverride:
		return fmt.Sprintf("%s overrides nothing", sym0)
	case VirtualMemberHidden:
		return fmt.Sprintf("%s hides member of supertype %s and needs an override modifier", sym0, sym1)
	case OverridingFinalMember:
		return fmt.Sprintf("%s overrides final member %s of %s", sym0, sym1, d.owner(1))
	case VarOverriddenByVal:
		return fmt.Sprintf("val %s overrides var %s", sym0, sym1)
	case CannotChangeAccessPrivilege:
		return fmt.Sprintf("%s%s cannot change access privilege %s of %s", d.accessor(), sym0, d.vis(1), sym1)
	case CannotWeakenAccessPrivilege:
		return fmt.Sprintf("%s%s cannot weaken access privilege %s of %s", d.accessor(), sym0, d.vis(1), sym1)
	case CannotOverrideInvisibleMember:
		return fmt.Sprintf("%s overrides invisible member %s", sym0, sym1)
	case OverrideDeprecation:
		return fmt.Sprintf("%s overrides deprecated member %s", sym0, sym1)
	case ReturnTypeMismatchOnOverride:
		return fmt.Sprintf("return type of %s is not a subtype of %s, the return type of overridden member %s", sym0, d.Want, sym1)
	case PropertyTypeMismatchOnOverride:
		return fmt.Sprintf("type of %s is not a subtype of %s, the type of overridden property %s", sym0, d.Want, sym1)
	case VarTypeMismatchOnOverride:
		return fmt.Sprintf("type of %s does not match %s, the type of overridden property %s", sym0, d.Want, sym1)
	case OptInOverride:
		return fmt.Sprintf("%s overrides %s which requires opt-in to %s", sym0, sym1, d.Marker)
	case AbstractMemberNotImplemented:
		return fmt.Sprintf("%s is not abstract and does not implement abstract member %s", d.Class, sym0)
	case AbstractClassMemberNotImplemented:
		return fmt.Sprintf("%s is not abstract and does not implement abstract base class member %s", d.Class, sym0)
	case InvisibleAbstractMemberFromSuper:
		return fmt.Sprintf("%s inherits invisible abstract member %s", d.Class, sym0)
	case OverridingFinalMemberByDelegation:
		return fmt.Sprintf("delegated member %s overrides final member %s", sym0, sym1)
	case DelegatedMemberHidesSupertypeOverride:
		return fmt.Sprintf("delegated member %s hides supertype override %s", sym0, sym1)
	case ManyImplMemberNotImplemented:
		return fmt.Sprintf("%s must override %s because it inherits multiple implementations of it", d.Class, sym0)
	case ManyInterfacesMemberNotImplemented:
		return fmt.Sprintf("%s must override %s because it inherits multiple interface members for it", d.Class, sym0)
	case VarImplementedByInheritedVal:
		return fmt.Sprintf("var %s is implemented by inherited val %s", sym0, sym1)
	case ReturnTypeMismatchOnInheritance:
		return fmt.Sprintf("%s inherits members with incompatible return types: %s", d.Class, sym0)
	case PropertyTypeMismatchOnInheritance:
		return fmt.Sprintf("%s inherits properties with incompatible types: %s", d.Class, sym0)
	case ConflictingOverloads:
		return fmt.Sprintf("conflicting overloads: %s, %s", sym0, sym1)
	case ConflictingInheritedMembers:
		return fmt.Sprintf("%s inherits conflicting members: %s, %s", d.Class, sym0, sym1)
	default:
		panic(fmt.Sprintf("impossible diagnostic kind %d", int(d.Kind)))
	}
}

func (d Diag) sym(i int) string {
	if i >= len(d.Syms) || d.Syms[i] == nil {
		return "<nil>"
	}
	if m := d.Syms[i]; m.IsIntersection() {
		return m.FullString()
	}
	return d.Syms[i].String()
}

func (d Diag) owner(i int) string {
	if i >= len(d.Syms) || d.Syms[i] == nil || d.Syms[i].Owner == nil {
		return "<nil>"
	}
	return d.Syms[i].Owner.Name
}

func (d Diag) vis(i int) string {
	switch {
	case i >= len(d.Syms) || d.Syms[i] == nil:
		return "<nil>"
	case d.Accessor == "set":
		return d.Syms[i].Setter().String()
	default:
		return d.Syms[i].Vis.String()
	}
}

func (d Diag) accessor() string {
	if d.Accessor == "" {
		return ""
	}
	return d.Accessor + "ter of "
}

// sortDiags sorts diagnostics by location, then class, then member, then kind.
func sortDiags(ds []Diag) {
	sort.SliceStable(ds, func(i, j int) bool {
		a, b := &ds[i], &ds[j]
		switch {
		case a.Loc != b.Loc:
			return a.Loc.Less(b.Loc)
		case a.Class != b.Class:
			return classLess(a.Class, b.Class)
		}
		if c := strings.Compare(a.sym(0), b.sym(0)); c != 0 {
			return c < 0
		}
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		return a.sym(1) < b.sym(1)
	})
}

func classLess(a, b *sym.Class) bool {
	switch {
	case a == nil || b == nil:
		return a == nil && b != nil
	case a.Name != b.Name:
		return a.Name < b.Name
	default:
		return a.ID < b.ID
	}
}
