// Copyright © 2020 The Pea Authors under an MIT-style license.

// Package decl parses and resolves declaration files:
// a compact notation for an already-resolved declaration graph
// of classes, interfaces, and their members.
//
// A declaration file looks like this:
//
//	import "other"
//
//	interface Shape {
//		val area: Double
//		fun scale(by: Double): Shape
//	}
//
//	open class Square : Shape {
//		override val area: Double
//		override fun scale(by: Double): Square
//	}
//
// Resolve binds the type names of parsed modules
// and produces a sym.Arena.
package decl

//go:generate peggy -o grammar.go -t=false grammar.peggy

import (
	"github.com/willhansen/overcheck/loc"
)

// A Mod is a module: the files parsed under one module path.
type Mod struct {
	Path  string
	Files []File
	// Locs is the location information of the files.
	// It may be nil if locations are not tracked.
	Locs *loc.Files
}

// Loc returns the location of a node of the module.
func (m *Mod) Loc(n interface{ GetRange() loc.Range }) loc.Loc {
	if m.Locs == nil {
		return loc.Loc{}
	}
	return m.Locs.Loc(n.GetRange())
}

// A File is a single source file.
type File struct {
	Path    string
	Imports []Import
	Classes []*Class
}

// An Import is an import statement.
type Import struct {
	loc.Range
	Path string
}

// A Class is a class-like declaration.
type Class struct {
	loc.Range
	Mods    Mods
	Kind    string // class, interface, object, enum, or annotation
	Name    string
	TParms  []TParm
	Supers  []Super
	Members []*Member
}

// A Super is an entry of a class supertype list.
type Super struct {
	loc.Range
	Type TypeName
	// Call is set if the supertype is followed by ().
	Call bool
	// By is the delegate name, or "" if not delegated.
	By string
}

// A Member is a function or property declaration.
type Member struct {
	loc.Range
	Mods Mods
	// Kind is fun, val, or var.
	Kind   string
	TParms []TParm
	Recv   *TypeName
	Name   string
	Parms  []Parm
	Ret    *TypeName
	// Body is set if the member has a {} body.
	Body bool
	// Setter is non-nil if a setter visibility is declared.
	Setter *Setter
}

// A Setter is a property setter declaration.
type Setter struct {
	loc.Range
	Vis string
}

// A Parm is a function parameter.
type Parm struct {
	loc.Range
	Name string
	Type TypeName
}

// A TParm is a type parameter.
type TParm struct {
	loc.Range
	Variance string // "", in, or out
	Name     string
	Bound    *TypeName
}

// A TypeName is the name of a type.
type TypeName struct {
	loc.Range
	Name     string
	Args     []TypeName
	Nullable bool
	// Error is set for the error type.
	Error bool
}

// Mods are the modifiers and annotations of a declaration.
type Mods struct {
	loc.Range
	Vis       string // "" or a visibility
	Modality  string // "" or a modality
	Override  bool
	Expect    bool
	Suspend   bool
	Synthetic bool

	Deprecated *Deprecated
	Requires   []string
	OptIns     []string
}

// Deprecated is a @Deprecated annotation.
type Deprecated struct {
	loc.Range
	Message string
	// Level is "", WARNING, ERROR, or HIDDEN.
	Level string
}
