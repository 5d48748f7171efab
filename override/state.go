// Copyright © 2020 The Pea Authors under an MIT-style license.

package override

import (
	"bytes"
	"fmt"
	"os"
	"reflect"
	"runtime"
	"strconv"

	"github.com/willhansen/overcheck/loc"
	"github.com/willhansen/overcheck/sym"
)

// checker is the state shared by all classes of a checking pass.
type checker struct {
	cfg   Config
	arena *sym.Arena
	memo  *memo

	// afterClass, if non-nil, is called after each class's checks,
	// before its supertypes are compared to their snapshot.
	afterClass func(*sym.Class)
}

func newChecker(arena *sym.Arena, cfg Config) *checker {
	x := &checker{cfg: cfg, arena: arena, memo: newMemo(len(arena.Classes))}
	setConfigDefaults(x)
	return x
}

func setConfigDefaults(x *checker) {
	switch {
	case x.cfg.Workers == 0:
		x.cfg.Workers = runtime.GOMAXPROCS(0)
	case x.cfg.Workers < 0:
		panic("bad Workers " + strconv.Itoa(x.cfg.Workers))
	}
	if x.cfg.TraceOut == nil {
		x.cfg.TraceOut = os.Stdout
	}
}

// state is the state of checking a single class.
// Each state is used by only one goroutine.
type state struct {
	*checker
	class *sym.Class
	diags []Diag

	// building is the stack of classes whose scopes
	// are being built by this state.
	building []sym.ClassID

	trace  bytes.Buffer
	indent string
}

func (x *checker) newState(c *sym.Class) *state {
	return &state{checker: x, class: c}
}

// locOf returns the location at which to report a diagnostic about m.
// Members that are synthetic or not declared by the class
// are reported at the class.
func (x *state) locOf(m *sym.Callable) loc.Loc {
	if m.Synthetic || m.IsIntersection() || m.Owner != x.class {
		return x.class.Loc
	}
	return m.Loc
}

// memberDiag returns a diagnostic about syms[0]
// at the location of syms[0].
func (x *state) memberDiag(k Kind, syms ...*sym.Callable) Diag {
	return Diag{Kind: k, Loc: x.locOf(syms[0]), Class: x.class, Syms: syms}
}

// classDiag returns a diagnostic about syms[0]
// at the location of the class.
func (x *state) classDiag(k Kind, syms ...*sym.Callable) Diag {
	return Diag{Kind: k, Loc: x.class.Loc, Class: x.class, Syms: syms}
}

func (x *state) emit(d Diag) {
	x.log("%s: %s", d.Kind, d.Message())
	x.diags = append(x.diags, d)
}

// The argument to the returned function,
// if non-empty, only the first element of vs is used.
// It must be a either pointer to a slice of types convertable to error,
// or a pointer to a type convertable to error.
func (x *state) tr(f string, vs ...interface{}) func(...interface{}) {
	if !x.cfg.Trace {
		return func(...interface{}) {}
	}
	x.log(f, vs...)
	olddent := x.indent
	x.indent += "---"
	return func(errs ...interface{}) {
		defer func() { x.indent = olddent }()
		if len(errs) == 0 {
			return
		}
		v := reflect.ValueOf(errs[0])
		if v.IsNil() || v.Elem().Kind() == reflect.Slice && v.Elem().Len() == 0 ||
			v.Elem().Kind() == reflect.Interface && v.Elem().IsNil() {
			return
		}
		x.log("%v", v.Elem().Interface())
	}
}

func (x *state) log(f string, vs ...interface{}) {
	if !x.cfg.Trace {
		return
	}
	x.trace.WriteString(x.indent)
	fmt.Fprintf(&x.trace, f, vs...)
	x.trace.WriteRune('\n')
}
