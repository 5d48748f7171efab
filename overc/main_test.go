// Copyright © 2020 The Pea Authors under an MIT-style license.

package main

import (
	"strings"
	"testing"

	"github.com/willhansen/overcheck/decl"
	"github.com/willhansen/overcheck/loc"
	"github.com/willhansen/overcheck/override"
	"github.com/willhansen/overcheck/sym"
)

func resolve(t *testing.T, src string) *sym.Arena {
	t.Helper()
	p := decl.NewParser("main")
	if err := p.Parse("main.decl", strings.NewReader(src)); err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	arena, errs := decl.Resolve(p.Mod())
	if len(errs) > 0 {
		t.Fatalf("failed to resolve: %v", errs)
	}
	return arena
}

func TestWriteDiags(t *testing.T) {
	c := &sym.Class{Name: "C"}
	base := &sym.Class{Name: "B"}
	f := &sym.Callable{Name: "f", Owner: c, Kind: sym.Fun}
	g := &sym.Callable{Name: "g", Owner: base, Kind: sym.Fun}
	l := loc.Loc{Path: "main.decl", Line: [2]int{2, 2}, Col: [2]int{1, 5}}
	diags := []override.Diag{
		{Kind: override.NothingToOverride, Loc: l, Class: c, Syms: []*sym.Callable{f}},
		{Kind: override.OverrideDeprecation, Loc: l, Class: c, Syms: []*sym.Callable{f, g}},
	}

	var s strings.Builder
	nerr, nwarn := writeDiags(&s, diags, false)
	if nerr != 1 || nwarn != 1 {
		t.Errorf("got %d errors, %d warnings, want 1, 1", nerr, nwarn)
	}
	want := "main.decl:2.1-2.5: NOTHING_TO_OVERRIDE: C.f() overrides nothing\n" +
		"main.decl:2.1-2.5: warning OVERRIDE_DEPRECATION: C.f() overrides deprecated member B.g()\n"
	if s.String() != want {
		t.Errorf("got\n%s\nwant\n%s", s.String(), want)
	}

	s.Reset()
	writeDiags(&s, diags[:1], true)
	if !strings.HasPrefix(s.String(), "\x1b[1mmain.decl:2.1-2.5\x1b[0m: ") {
		t.Errorf("location is not bold: %q", s.String())
	}
}

func TestWriteScope(t *testing.T) {
	arena := resolve(t, "interface I { fun f() }\nclass C : I { override fun f() }")
	c := arena.Lookup("main", "C")
	sc, err := override.ScopeOf(arena, c, override.Config{})
	if err != nil {
		t.Fatalf("ScopeOf failed: %v", err)
	}
	var s strings.Builder
	writeScope(&s, sc)
	want := "class C : I, Any\n" +
		"\town f(): Unit\n" +
		"\t\toverrides I.f(): Unit\n" +
		"\tinherited Any.equals(Any?): Boolean from Any\n" +
		"\tinherited Any.hashCode(): Int from Any\n" +
		"\tinherited Any.toString(): String from Any\n"
	if s.String() != want {
		t.Errorf("got\n%s\nwant\n%s", s.String(), want)
	}
}

func TestWriteScopeIntersection(t *testing.T) {
	arena := resolve(t, "interface I { fun f(): Number }\ninterface J { fun f(): Int }\nabstract class C : I, J")
	sc, err := override.ScopeOf(arena, arena.Lookup("main", "C"), override.Config{})
	if err != nil {
		t.Fatalf("ScopeOf failed: %v", err)
	}
	var s strings.Builder
	writeScope(&s, sc)
	want := "\tintersection f(): Number\n\t\tof I.f(): Number\n\t\tof J.f(): Int\n"
	if !strings.Contains(s.String(), want) {
		t.Errorf("got\n%s\nwant it to contain\n%s", s.String(), want)
	}
}

func TestClasses(t *testing.T) {
	arena := resolve(t, "class A\nclass B")
	var names []string
	for _, c := range classes(arena, "main", "") {
		names = append(names, c.Name)
	}
	if got := strings.Join(names, ","); got != "A,B" {
		t.Errorf("classes(main)=%s, want A,B", got)
	}
	if cs := classes(arena, "main", "B"); len(cs) != 1 || cs[0].Name != "B" {
		t.Errorf("classes(main, B)=%v, want [B]", cs)
	}
	if cs := classes(arena, "other", ""); len(cs) != 0 {
		t.Errorf("classes(other)=%v, want []", cs)
	}
}

func TestWriteDump(t *testing.T) {
	arena := resolve(t, "open class B { open var x: Int\n protected set }")
	var s strings.Builder
	writeDump(&s, classes(arena, "main", "B"))
	for _, want := range []string{"Name", "open", "x: Int", "SetterVis", "protected"} {
		if !strings.Contains(s.String(), want) {
			t.Errorf("dump does not contain %s:\n%s", want, s.String())
		}
	}
}

func TestErrorList(t *testing.T) {
	err := errorList{errString("a"), errString("b")}
	if got := err.Error(); got != "a\nb" {
		t.Errorf("got %q, want %q", got, "a\nb")
	}
}

type errString string

func (s errString) Error() string { return string(s) }
