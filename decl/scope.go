// Copyright © 2020 The Pea Authors under an MIT-style license.

package decl

import (
	"github.com/willhansen/overcheck/sym"
)

type scope struct {
	*resolver
	up *scope

	// One of each of the following fields is non-nil.
	univ    map[string]*class
	imports []map[string]*class
	mod     map[string]*class
	tparms  []*sym.TypeParm
}

func (x *scope) new() *scope {
	return &scope{resolver: x.resolver, up: x}
}

// fileScope returns the scope of the top-level of a file.
// Missing imported modules are reported
// the first time the file's scope is built.
func (x *resolver) fileScope(m *Mod, file *File) *scope {
	if x.files == nil {
		x.files = make(map[*File]*scope)
	}
	if sc, ok := x.files[file]; ok {
		return sc
	}
	univ := &scope{resolver: x, univ: x.mods[BuiltinMod]}
	imports := univ.new()
	imports.imports = []map[string]*class{}
	for _, imp := range file.Imports {
		classes, ok := x.mods[imp.Path]
		if !ok {
			err := x.err(m.Loc(imp), "module %s not found", imp.Path)
			x.errs = append(x.errs, *err)
			continue
		}
		imports.imports = append(imports.imports, classes)
	}
	sc := imports.new()
	sc.mod = x.mods[m.Path]
	x.files[file] = sc
	return sc
}

// find returns either a *class or a *sym.TypeParm.
func (x *scope) find(name string) interface{} {
	switch {
	case x == nil:
		return nil
	case x.tparms != nil:
		for _, p := range x.tparms {
			if p.Name == name {
				return p
			}
		}
	case x.mod != nil:
		if c, ok := x.mod[name]; ok {
			return c
		}
	case x.imports != nil:
		for _, imp := range x.imports {
			if c, ok := imp[name]; ok && c.sym.Vis != sym.Private {
				return c
			}
		}
	case x.univ != nil:
		if c, ok := x.univ[name]; ok {
			return c
		}
	}
	return x.up.find(name)
}

// typ returns the type named by a TypeName.
// Unresolvable names are reported and resolve to the error type.
func (x *scope) typ(m *Mod, n *TypeName) *sym.Type {
	if n.Error {
		return &sym.Type{Error: true}
	}
	switch d := x.find(n.Name).(type) {
	case nil:
		err := x.err(m.Loc(n), "type %s not defined", n.Name)
		x.errs = append(x.errs, *err)
		return &sym.Type{Error: true}
	case *sym.TypeParm:
		if len(n.Args) > 0 {
			err := x.err(m.Loc(n), "type parameter %s cannot have type arguments", n.Name)
			x.errs = append(x.errs, *err)
			return &sym.Type{Error: true}
		}
		return &sym.Type{Parm: d, Nullable: n.Nullable}
	case *class:
		if len(n.Args) != len(d.ast.TParms) {
			err := x.err(m.Loc(n), "%s expects %d type arguments, got %d",
				n.Name, len(d.ast.TParms), len(n.Args))
			note(err, "%s is defined at %s", n.Name, d.sym.Loc)
			x.errs = append(x.errs, *err)
			return &sym.Type{Error: true}
		}
		t := &sym.Type{Class: d.sym, Nullable: n.Nullable}
		for i := range n.Args {
			t.Args = append(t.Args, x.typ(m, &n.Args[i]))
		}
		return t
	default:
		panic("impossible")
	}
}
