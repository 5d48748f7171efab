// Copyright © 2020 The Pea Authors under an MIT-style license.

// Package sym is the resolved symbol model checked by package override:
// classes, their callable members, type parameters, and types.
// Values of the model are built once by a front end
// and are read-only afterwards.
package sym

import (
	"github.com/willhansen/overcheck/loc"
)

// A ClassID is the stable index of a Class in its Arena.
type ClassID int

// An Arena holds all classes of a checking pass.
type Arena struct {
	Classes []*Class

	// Any is the root of the class hierarchy.
	// Classes without a class supertype implicitly extend Any.
	Any *Class
	// Nothing is the bottom type.
	Nothing *Class
}

// Add adds a Class to the Arena, setting and returning its ID.
func (a *Arena) Add(c *Class) ClassID {
	c.ID = ClassID(len(a.Classes))
	a.Classes = append(a.Classes, c)
	return c.ID
}

// Class returns the Class with the given ID.
func (a *Arena) Class(id ClassID) *Class { return a.Classes[id] }

// Lookup returns the class named name in module mod, or nil.
func (a *Arena) Lookup(mod, name string) *Class {
	for _, c := range a.Classes {
		if c.Module == mod && c.Name == name {
			return c
		}
	}
	return nil
}

// A Class is a class, interface, enum, annotation, or object declaration.
type Class struct {
	ID       ClassID
	Name     string
	Module   string
	Loc      loc.Loc
	Modality Modality
	Kind     ClassKind
	Vis      Visibility
	// Expect is set for multiplatform expect declarations.
	Expect bool

	TParms  []*TypeParm
	Supers  []Super
	Members []*Callable

	// OptIns are experimental markers accepted by all members.
	OptIns []string
}

// A Super is a direct supertype of a class.
type Super struct {
	Type *Type
	// By is set if the supertype is implemented by delegation.
	By bool
	// Delegate is the name of the delegate expression, if By.
	Delegate string
}

// IsInterface returns whether the class is an interface.
func (c *Class) IsInterface() bool { return c.Kind == Interface }

// AbstractCapable returns whether the class may have unimplemented abstract members.
func (c *Class) AbstractCapable() bool {
	return c.Kind == Interface || c.Modality == Abstract || c.Modality == Sealed
}

// SuperClass returns the non-interface direct supertype, or nil.
func (c *Class) SuperClass() *Type {
	for _, s := range c.Supers {
		if s.Type.Class != nil && !s.Type.Class.IsInterface() {
			return s.Type
		}
	}
	return nil
}

// Member returns the first declared member with the given name, or nil.
func (c *Class) Member(name string) *Callable {
	for _, m := range c.Members {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// A Callable is a function or a property.
type Callable struct {
	Name string
	// Owner is the declaring class.
	// It is nil for top-level callables.
	Owner    *Class
	Loc      loc.Loc
	Kind     CallableKind
	Modality Modality
	Vis      Visibility
	// SetterVis is the setter visibility of a mutable property.
	SetterVis Visibility
	// Override is whether the callable is declared with override.
	Override bool
	// Mutable is set for var properties.
	Mutable bool
	Suspend bool

	Recv   *Type // nil if none
	Parms  []*Type
	TParms []*TypeParm
	Ret    *Type

	Deprecated *Deprecation

	// Markers are experimental markers that users must opt in to.
	Markers []string
	// OptIns are experimental markers this callable accepts.
	OptIns []string

	// Delegate is the delegated supertype
	// for a member synthesized by interface delegation.
	Delegate *Type

	// Synthetic is set for compiler-generated members.
	// Diagnostics for synthetic members are reported on the class.
	Synthetic bool

	// Intersects is non-nil for an intersection symbol:
	// the merge of members independently inherited from
	// unrelated supertypes.
	Intersects []*Callable
}

// IsIntersection returns whether the callable is an intersection symbol.
func (m *Callable) IsIntersection() bool { return m.Intersects != nil }

// IsAbstract returns whether the callable has no implementation.
func (m *Callable) IsAbstract() bool {
	if m.IsIntersection() {
		for _, c := range m.Intersects {
			if !c.IsAbstract() {
				return false
			}
		}
		return true
	}
	return m.Modality == Abstract
}

// IsVal returns whether the callable is a read-only property.
func (m *Callable) IsVal() bool { return m.Kind == Prop && !m.Mutable }

// IsVar returns whether the callable is a mutable property.
func (m *Callable) IsVar() bool { return m.Kind == Prop && m.Mutable }

// Setter returns the visibility of the setter.
func (m *Callable) Setter() Visibility {
	if m.SetterVis == 0 {
		return m.Vis
	}
	return m.SetterVis
}

// Constituents returns the intersected members of an intersection symbol,
// or the callable itself.
func (m *Callable) Constituents() []*Callable {
	if m.IsIntersection() {
		return m.Intersects
	}
	return []*Callable{m}
}

// A Deprecation is deprecation metadata.
type Deprecation struct {
	Message string
	Level   DeprecationLevel
}

// A DeprecationLevel is the severity of using a deprecated declaration.
type DeprecationLevel int

const (
	DeprecatedWarning DeprecationLevel = iota
	DeprecatedError
	DeprecatedHidden
)

// A TypeParm is a declared type parameter.
type TypeParm struct {
	Name     string
	Variance Variance
	Bounds   []*Type
	Loc      loc.Loc
}

// A Type is a resolved type.
// Exactly one of Class, Parm, and Error is set.
type Type struct {
	Class    *Class
	Args     []*Type
	Parm     *TypeParm
	Error    bool
	Nullable bool
}

// ClassType returns a non-null type of the class with the given arguments.
func ClassType(c *Class, args ...*Type) *Type {
	return &Type{Class: c, Args: args}
}

// ParmType returns a non-null type referring to the type parameter.
func ParmType(p *TypeParm) *Type { return &Type{Parm: p} }

// ParmTypes returns types referring to each of the type parameters.
func ParmTypes(ps []*TypeParm) []*Type {
	ts := make([]*Type, len(ps))
	for i, p := range ps {
		ts[i] = ParmType(p)
	}
	return ts
}

// NonNull returns t without nullability.
func (t *Type) NonNull() *Type {
	if !t.Nullable {
		return t
	}
	u := *t
	u.Nullable = false
	return &u
}

// WithNullable returns t with nullability set to n.
func (t *Type) WithNullable(n bool) *Type {
	if t.Nullable == n {
		return t
	}
	u := *t
	u.Nullable = n
	return &u
}
