// Copyright © 2020 The Pea Authors under an MIT-style license.

package decl

import (
	"fmt"

	"github.com/willhansen/overcheck/loc"
	"github.com/willhansen/overcheck/sym"
)

// Resolve resolves the type names of parsed modules
// and returns the resulting Arena.
// The built-in declarations are always included,
// and are the first classes of the Arena.
//
// Resolve reports duplicate classes, unknown types and modules,
// type argument count mismatches, misplaced modifiers,
// multiple class supertypes, delegation to non-interfaces,
// and inheritance cycles.
func Resolve(mods ...*Mod) (*sym.Arena, []error) {
	x := newResolver()
	x.declare(preludeMod())
	for _, m := range mods {
		if m.Path == BuiltinMod {
			err := x.err(loc.Loc{}, "module path %s is reserved", BuiltinMod)
			x.errs = append(x.errs, *err)
			continue
		}
		x.declare(m)
	}
	x.arena.Any = x.mods[BuiltinMod]["Any"].sym
	x.arena.Nothing = x.mods[BuiltinMod]["Nothing"].sym
	for _, c := range x.classes {
		x.resolveClass(c)
	}
	x.checkCycles()
	if len(x.errs) > 0 {
		return nil, convertErrors(x.errs)
	}
	return x.arena, nil
}

type resolver struct {
	arena   *sym.Arena
	classes []*class
	mods    map[string]map[string]*class
	files   map[*File]*scope
	errs    []resolveError
}

type class struct {
	sym  *sym.Class
	ast  *Class
	mod  *Mod
	file *File
}

func newResolver() *resolver {
	return &resolver{
		arena: &sym.Arena{},
		mods:  make(map[string]map[string]*class),
	}
}

func (x *resolver) err(l loc.Loc, f string, vs ...interface{}) *resolveError {
	return &resolveError{loc: l, msg: fmt.Sprintf(f, vs...)}
}

func (x *resolver) declare(m *Mod) {
	classes := x.mods[m.Path]
	if classes == nil {
		classes = make(map[string]*class)
		x.mods[m.Path] = classes
	}
	for i := range m.Files {
		file := &m.Files[i]
		for _, astClass := range file.Classes {
			c := &class{ast: astClass, mod: m, file: file}
			c.sym = &sym.Class{
				Name:   astClass.Name,
				Module: m.Path,
				Loc:    m.Loc(astClass),
				Kind:   classKind(astClass.Kind),
				Expect: astClass.Mods.Expect,
				OptIns: astClass.Mods.OptIns,
			}
			c.sym.Vis = x.vis(&astClass.Mods)
			c.sym.Modality = x.classModality(c)
			if prev, ok := classes[astClass.Name]; ok {
				err := x.err(c.sym.Loc, "class %s redefined", astClass.Name)
				note(err, "previous definition is at %s", prev.sym.Loc)
				x.errs = append(x.errs, *err)
				continue
			}
			classes[astClass.Name] = c
			x.arena.Add(c.sym)
			x.classes = append(x.classes, c)
		}
	}
}

func classKind(k string) sym.ClassKind {
	switch k {
	case "class":
		return sym.ClassDecl
	case "interface":
		return sym.Interface
	case "object":
		return sym.Object
	case "enum":
		return sym.Enum
	case "annotation":
		return sym.Annotation
	default:
		panic("impossible class kind " + k)
	}
}

func (x *resolver) vis(mods *Mods) sym.Visibility {
	switch mods.Vis {
	case "", "public":
		return sym.Public
	case "protected":
		return sym.Protected
	case "internal":
		return sym.Internal
	case "private":
		return sym.Private
	default:
		panic("impossible visibility " + mods.Vis)
	}
}

func (x *resolver) classModality(c *class) sym.Modality {
	mods := &c.ast.Mods
	if mods.Override || mods.Suspend || mods.Synthetic {
		err := x.err(c.mod.Loc(mods), "class %s: only visibility, modality, and expect modifiers are allowed", c.ast.Name)
		x.errs = append(x.errs, *err)
	}
	if len(mods.Requires) > 0 || mods.Deprecated != nil {
		err := x.err(c.mod.Loc(mods), "class %s: only @OptIn is allowed on classes", c.ast.Name)
		x.errs = append(x.errs, *err)
	}
	switch mods.Modality {
	case "open":
		return sym.Open
	case "abstract":
		return sym.Abstract
	case "sealed":
		return sym.Sealed
	case "final":
		return sym.Final
	default:
		if c.ast.Kind == "interface" {
			return sym.Abstract
		}
		return sym.Final
	}
}

func (x *resolver) resolveClass(c *class) {
	sc := x.fileScope(c.mod, c.file)
	sc, c.sym.TParms = x.tparms(sc, c.mod, c.ast.TParms)
	for i := range c.ast.Supers {
		astSuper := &c.ast.Supers[i]
		t := sc.typ(c.mod, &astSuper.Type)
		switch {
		case t.Error:
			continue
		case t.Parm != nil:
			err := x.err(c.mod.Loc(astSuper), "supertype %s is a type parameter", t)
			x.errs = append(x.errs, *err)
			continue
		case t.Nullable:
			err := x.err(c.mod.Loc(astSuper), "supertype %s is nullable", t)
			x.errs = append(x.errs, *err)
			continue
		case astSuper.By != "" && !t.Class.IsInterface():
			err := x.err(c.mod.Loc(astSuper), "only interfaces can be delegated to, %s is a %s", t, t.Class.Kind)
			x.errs = append(x.errs, *err)
			continue
		}
		c.sym.Supers = append(c.sym.Supers, sym.Super{
			Type:     t,
			By:       astSuper.By != "",
			Delegate: astSuper.By,
		})
	}
	x.checkClassSupers(c)
	if c.sym != x.arena.Any && c.sym.SuperClass() == nil {
		c.sym.Supers = append(c.sym.Supers, sym.Super{Type: sym.ClassType(x.arena.Any)})
	}
	for _, m := range c.ast.Members {
		c.sym.Members = append(c.sym.Members, x.member(sc, c, m))
	}
}

func (x *resolver) checkClassSupers(c *class) {
	var first *sym.Type
	for _, s := range c.sym.Supers {
		if s.Type.Class.IsInterface() {
			continue
		}
		if first != nil {
			err := x.err(c.sym.Loc, "class %s has more than one class supertype: %s and %s",
				c.sym.Name, first, s.Type)
			x.errs = append(x.errs, *err)
			return
		}
		if c.sym.IsInterface() {
			err := x.err(c.sym.Loc, "interface %s cannot extend class %s", c.sym.Name, s.Type)
			x.errs = append(x.errs, *err)
			return
		}
		first = s.Type
	}
}

func (x *resolver) tparms(sc *scope, m *Mod, astParms []TParm) (*scope, []*sym.TypeParm) {
	if len(astParms) == 0 {
		return sc, nil
	}
	parms := make([]*sym.TypeParm, len(astParms))
	for i := range astParms {
		astParm := &astParms[i]
		parms[i] = &sym.TypeParm{Name: astParm.Name, Loc: m.Loc(astParm)}
		switch astParm.Variance {
		case "in":
			parms[i].Variance = sym.In
		case "out":
			parms[i].Variance = sym.Out
		}
	}
	sc = sc.new()
	sc.tparms = parms
	for i := range astParms {
		if b := astParms[i].Bound; b != nil {
			parms[i].Bounds = []*sym.Type{sc.typ(m, b)}
		}
	}
	return sc, parms
}

func (x *resolver) member(sc *scope, c *class, astMember *Member) *sym.Callable {
	m := &sym.Callable{
		Name:      astMember.Name,
		Owner:     c.sym,
		Loc:       c.mod.Loc(astMember),
		Override:  astMember.Mods.Override,
		Suspend:   astMember.Mods.Suspend,
		Synthetic: astMember.Mods.Synthetic,
		Markers:   astMember.Mods.Requires,
		OptIns:    astMember.Mods.OptIns,
	}
	m.Vis = x.vis(&astMember.Mods)
	switch astMember.Kind {
	case "fun":
		m.Kind = sym.Fun
	case "var":
		m.Kind = sym.Prop
		m.Mutable = true
	default:
		m.Kind = sym.Prop
	}
	if astMember.Mods.Expect {
		err := x.err(m.Loc, "%s: expect is not allowed on members", astMember.Name)
		x.errs = append(x.errs, *err)
	}
	if astMember.Mods.Suspend && m.Kind != sym.Fun {
		err := x.err(m.Loc, "%s: only functions can be suspend", astMember.Name)
		x.errs = append(x.errs, *err)
	}
	if s := astMember.Setter; s != nil {
		if !m.Mutable {
			err := x.err(c.mod.Loc(s), "%s: a val cannot have a setter", astMember.Name)
			x.errs = append(x.errs, *err)
		}
		if s.Vis != "" {
			m.SetterVis = x.vis(&Mods{Vis: s.Vis})
		}
	}
	m.Modality = x.memberModality(c, astMember)
	if d := astMember.Mods.Deprecated; d != nil {
		m.Deprecated = &sym.Deprecation{Message: d.Message}
		switch d.Level {
		case "", "WARNING":
			m.Deprecated.Level = sym.DeprecatedWarning
		case "ERROR":
			m.Deprecated.Level = sym.DeprecatedError
		case "HIDDEN":
			m.Deprecated.Level = sym.DeprecatedHidden
		default:
			err := x.err(c.mod.Loc(d), "unknown deprecation level %s", d.Level)
			x.errs = append(x.errs, *err)
		}
	}

	sc, m.TParms = x.tparms(sc, c.mod, astMember.TParms)
	if astMember.Recv != nil {
		m.Recv = sc.typ(c.mod, astMember.Recv)
	}
	for i := range astMember.Parms {
		m.Parms = append(m.Parms, sc.typ(c.mod, &astMember.Parms[i].Type))
	}
	if astMember.Ret != nil {
		m.Ret = sc.typ(c.mod, astMember.Ret)
	} else {
		m.Ret = sym.ClassType(x.mods[BuiltinMod]["Unit"].sym)
	}
	return m
}

func (x *resolver) memberModality(c *class, astMember *Member) sym.Modality {
	mods := &astMember.Mods
	switch mods.Modality {
	case "open":
		return sym.Open
	case "abstract":
		return sym.Abstract
	case "final":
		return sym.Final
	case "sealed":
		err := x.err(c.mod.Loc(astMember), "%s: sealed is not allowed on members", astMember.Name)
		x.errs = append(x.errs, *err)
	}
	switch {
	case c.ast.Kind == "interface" && astMember.Body:
		return sym.Open
	case c.ast.Kind == "interface":
		return sym.Abstract
	case mods.Override:
		return sym.Open
	default:
		return sym.Final
	}
}

// checkCycles reports classes that are their own supertype.
func (x *resolver) checkCycles() {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make([]int, len(x.arena.Classes))
	var visit func(c *sym.Class)
	visit = func(c *sym.Class) {
		state[c.ID] = visiting
		for _, s := range c.Supers {
			switch d := s.Type.Class; state[d.ID] {
			case unvisited:
				visit(d)
			case visiting:
				err := x.err(c.Loc, "inheritance cycle: %s extends %s", c.Name, d.Name)
				x.errs = append(x.errs, *err)
			}
		}
		state[c.ID] = done
	}
	for _, c := range x.arena.Classes {
		if state[c.ID] == unvisited {
			visit(c)
		}
	}
}
