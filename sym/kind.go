// Copyright © 2020 The Pea Authors under an MIT-style license.

package sym

// A Modality is whether a declaration may be overridden or subclassed.
type Modality int

const (
	Final Modality = iota
	Open
	Abstract
	Sealed
)

func (m Modality) String() string {
	switch m {
	case Final:
		return "final"
	case Open:
		return "open"
	case Abstract:
		return "abstract"
	case Sealed:
		return "sealed"
	default:
		panic("impossible modality")
	}
}

// A ClassKind is the kind of a class declaration.
type ClassKind int

const (
	ClassDecl ClassKind = iota
	Interface
	Enum
	Annotation
	Object
)

func (k ClassKind) String() string {
	switch k {
	case ClassDecl:
		return "class"
	case Interface:
		return "interface"
	case Enum:
		return "enum class"
	case Annotation:
		return "annotation class"
	case Object:
		return "object"
	default:
		panic("impossible class kind")
	}
}

// A CallableKind is the kind of a Callable.
type CallableKind int

const (
	Fun CallableKind = iota
	Prop
)

func (k CallableKind) String() string {
	switch k {
	case Fun:
		return "fun"
	case Prop:
		return "property"
	default:
		panic("impossible callable kind")
	}
}

// A Variance is the declaration-site variance of a type parameter.
type Variance int

const (
	Inv Variance = iota
	In
	Out
)

func (v Variance) String() string {
	switch v {
	case Inv:
		return ""
	case In:
		return "in"
	case Out:
		return "out"
	default:
		panic("impossible variance")
	}
}
