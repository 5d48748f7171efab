// Copyright © 2020 The Pea Authors under an MIT-style license.

// Package override checks the override and inheritance consistency
// of the classes of a Symbol Model.
package override

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/willhansen/overcheck/sym"
	"golang.org/x/sync/errgroup"
)

// Config are configuration parameters for the checker.
type Config struct {
	// Workers is the maximum number of classes checked concurrently.
	// The default, 0, is runtime.GOMAXPROCS(0).
	// It must not be negative.
	Workers int
	// Trace is whether to enable debug tracing.
	Trace bool
	// TraceOut is where traces are written (default=os.Stdout).
	// Traces of different classes are not interleaved.
	TraceOut io.Writer
}

// Check checks every class of the arena
// and returns the diagnostics sorted by location.
//
// If the arena is inconsistent, for example,
// if it has an inheritance cycle,
// Check returns no diagnostics and an error
// whose errors.Cause is an *InternalError.
func Check(arena *sym.Arena, cfg Config) ([]Diag, error) {
	return newChecker(arena, cfg).check()
}

func (x *checker) check() ([]Diag, error) {
	if err := x.validate(); err != nil {
		return nil, err
	}
	states := make([]*state, len(x.arena.Classes))
	var g errgroup.Group
	g.SetLimit(x.cfg.Workers)
	for i, c := range x.arena.Classes {
		s := x.newState(c)
		states[i] = s
		g.Go(s.checkClass)
	}
	err := g.Wait()
	x.flush(states...)
	if err != nil {
		return nil, err
	}
	var diags []Diag
	for _, s := range states {
		diags = append(diags, s.diags...)
	}
	sortDiags(diags)
	return diags, nil
}

// CheckClass checks a single class of the arena.
// Scopes of the class's supertypes are built as needed.
func CheckClass(arena *sym.Arena, c *sym.Class, cfg Config) ([]Diag, error) {
	x := newChecker(arena, cfg)
	if err := x.validate(); err != nil {
		return nil, err
	}
	s := x.newState(c)
	err := s.checkClass()
	x.flush(s)
	if err != nil {
		return nil, err
	}
	sortDiags(s.diags)
	return s.diags, nil
}

// ScopeOf returns the member resolution scope of a class of the arena.
func ScopeOf(arena *sym.Arena, c *sym.Class, cfg Config) (*Scope, error) {
	x := newChecker(arena, cfg)
	if err := x.validate(); err != nil {
		return nil, err
	}
	s := x.newState(c)
	sc, err := s.scope(c)
	x.flush(s)
	return sc, err
}

func (x *checker) flush(states ...*state) {
	for _, s := range states {
		if s.trace.Len() > 0 {
			s.trace.WriteTo(x.cfg.TraceOut)
		}
	}
}

func (x *state) checkClass() (err error) {
	c := x.class
	defer x.tr("checkClass(%s)", c)(&err)

	before := snapshotSupers(c)
	sc, err := x.scope(c)
	if err != nil {
		return errors.Wrapf(err, "checking %s", c)
	}
	x.checkOverrides(sc)
	x.checkCompleteness(sc)
	x.checkConflicts(sc)
	if x.afterClass != nil {
		x.afterClass(c)
	}
	if !sameSupers(before, c.Supers) {
		err := &InternalError{
			Class:  c,
			Msg:    "supertypes changed during checking",
			Before: before,
			After:  snapshotSupers(c),
		}
		return errors.Wrapf(err, "checking %s", c)
	}
	return nil
}

// validate returns an error if any class of the arena
// has a supertype that is not in the arena,
// more than one class supertype,
// or is its own supertype.
// Scopes are built concurrently by the workers,
// so cycles must be found before checking begins.
func (x *checker) validate() error {
	const (
		unvisited = iota
		visiting
		done
	)
	marks := make([]int, len(x.arena.Classes))
	var visit func(*sym.Class) error
	visit = func(c *sym.Class) error {
		switch marks[c.ID] {
		case visiting:
			return &InternalError{Class: c, Msg: "inheritance cycle"}
		case done:
			return nil
		}
		marks[c.ID] = visiting
		var class *sym.Type
		for _, super := range c.Supers {
			t := super.Type
			if t == nil || t.Class == nil {
				continue
			}
			if id := int(t.Class.ID); id < 0 || id >= len(x.arena.Classes) || x.arena.Classes[id] != t.Class {
				msg := fmt.Sprintf("supertype %s is not in the arena", t)
				return &InternalError{Class: c, Msg: msg}
			}
			if !t.Class.IsInterface() {
				if class != nil {
					msg := fmt.Sprintf("more than one class supertype: %s and %s", class, t)
					return &InternalError{Class: c, Msg: msg}
				}
				class = t
			}
			if err := visit(t.Class); err != nil {
				return err
			}
		}
		marks[c.ID] = done
		return nil
	}
	for i, c := range x.arena.Classes {
		if c.ID != sym.ClassID(i) {
			msg := fmt.Sprintf("class ID %d at index %d", c.ID, i)
			return errors.Wrap(&InternalError{Class: c, Msg: msg}, "validating arena")
		}
	}
	for _, c := range x.arena.Classes {
		if err := visit(c); err != nil {
			return errors.Wrapf(err, "validating %s", c)
		}
	}
	return nil
}
