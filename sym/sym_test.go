// Copyright © 2020 The Pea Authors under an MIT-style license.

package sym

import (
	"testing"

	"github.com/willhansen/overcheck/loc"
)

func TestCompareVis(t *testing.T) {
	tests := []struct {
		a, b Visibility
		cmp  int
		ok   bool
	}{
		{Public, Public, 0, true},
		{Private, Public, -2, true},
		{Public, Protected, 1, true},
		{Internal, Private, 1, true},
		{Protected, Protected, 0, true},
		{Protected, Internal, 0, false},
		{Internal, Protected, 0, false},
	}
	for _, test := range tests {
		cmp, ok := CompareVis(test.a, test.b)
		if cmp != test.cmp || ok != test.ok {
			t.Errorf("CompareVis(%s, %s)=%d,%v, want %d,%v",
				test.a, test.b, cmp, ok, test.cmp, test.ok)
		}
	}
}

func TestVisible(t *testing.T) {
	a := &Class{Name: "A", Module: "x"}
	b := &Class{Name: "B", Module: "x"}
	c := &Class{Name: "C", Module: "y"}
	hidden := &Class{Name: "H", Module: "x", Vis: Private}
	tests := []struct {
		name string
		m    *Callable
		from *Class
		want bool
	}{
		{"public", &Callable{Owner: a, Vis: Public}, c, true},
		{"private from owner", &Callable{Owner: a, Vis: Private}, a, true},
		{"private from subclass", &Callable{Owner: a, Vis: Private}, b, false},
		{"internal same module", &Callable{Owner: a, Vis: Internal}, b, true},
		{"internal other module", &Callable{Owner: a, Vis: Internal}, c, false},
		{"protected", &Callable{Owner: a, Vis: Protected}, c, true},
		{"public of private class", &Callable{Owner: hidden, Vis: Public}, a, false},
		{"top-level private", &Callable{Vis: Private}, a, false},
		{
			"intersection with one visible",
			&Callable{Intersects: []*Callable{
				{Owner: a, Vis: Private},
				{Owner: a, Vis: Public},
			}},
			b,
			true,
		},
		{
			"intersection with none visible",
			&Callable{Intersects: []*Callable{
				{Owner: a, Vis: Private},
				{Owner: a, Vis: Internal},
			}},
			c,
			false,
		},
	}
	for _, test := range tests {
		if got := Visible(test.m, test.from); got != test.want {
			t.Errorf("%s: Visible=%v, want %v", test.name, got, test.want)
		}
	}
}

func TestSetter(t *testing.T) {
	m := &Callable{Kind: Prop, Mutable: true, Vis: Protected}
	if got := m.Setter(); got != Protected {
		t.Errorf("default setter=%s, want protected", got)
	}
	m.SetterVis = Private
	if got := m.Setter(); got != Private {
		t.Errorf("setter=%s, want private", got)
	}
}

func TestIsAbstract(t *testing.T) {
	abs := &Callable{Modality: Abstract}
	open := &Callable{Modality: Open}
	if !abs.IsAbstract() || open.IsAbstract() {
		t.Errorf("IsAbstract(abstract)=%v, IsAbstract(open)=%v", abs.IsAbstract(), open.IsAbstract())
	}
	if is := (&Callable{Intersects: []*Callable{abs, abs}}); !is.IsAbstract() {
		t.Errorf("intersection of abstract members is not abstract")
	}
	if is := (&Callable{Intersects: []*Callable{abs, open}}); is.IsAbstract() {
		t.Errorf("intersection with an open member is abstract")
	}
}

func TestArena(t *testing.T) {
	var a Arena
	x := &Class{Name: "X", Module: "m"}
	y := &Class{Name: "Y", Module: "n"}
	if id := a.Add(x); id != 0 {
		t.Errorf("first ID=%d, want 0", id)
	}
	if id := a.Add(y); id != 1 {
		t.Errorf("second ID=%d, want 1", id)
	}
	if a.Class(1) != y {
		t.Errorf("Class(1)=%s, want Y", a.Class(1))
	}
	if a.Lookup("n", "Y") != y || a.Lookup("m", "Y") != nil {
		t.Errorf("Lookup found the wrong class")
	}
}

func TestString(t *testing.T) {
	any := &Class{Name: "Any"}
	str := &Class{Name: "String"}
	list := &Class{Name: "List", Kind: Interface, Modality: Abstract}
	e := &TypeParm{Name: "E", Variance: Out}
	list.TParms = []*TypeParm{e}
	base := &Class{
		Name:     "Base",
		Modality: Abstract,
		Vis:      Internal,
		TParms:   []*TypeParm{{Name: "T", Bounds: []*Type{ClassType(any)}}},
		Supers: []Super{
			{Type: ClassType(any)},
			{Type: ClassType(list, ClassType(str)), By: true, Delegate: "xs"},
		},
	}
	f := &Callable{
		Name:     "f",
		Owner:    base,
		Kind:     Fun,
		Modality: Open,
		Override: true,
		Suspend:  true,
		Recv:     ClassType(str),
		Parms:    []*Type{ClassType(list, ParmType(e)).WithNullable(true)},
		TParms:   []*TypeParm{{Name: "U"}},
		Ret:      ClassType(str),
	}
	p := &Callable{
		Name:     "p",
		Owner:    base,
		Kind:     Prop,
		Modality: Final,
		Vis:      Private,
		Mutable:  true,
		Ret:      &Type{Error: true},
	}
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"class", base.String(), "Base"},
		{"class full", base.FullString(), "internal abstract class Base<T: Any> : Any, List<String> by xs"},
		{"interface full", list.FullString(), "interface List<out E>"},
		{"fun", f.String(), "Base.String.f(List<E>?): String"},
		{"fun sig", f.Sig(), "String.f(List<E>?): String"},
		{"fun full", f.FullString(), "open override suspend fun <U> String.f(List<E>?): String"},
		{"prop full", p.FullString(), "private final var p: <error>"},
		{"nullable", ClassType(str).WithNullable(true).String(), "String?"},
		{"non-null", ClassType(str).WithNullable(true).NonNull().String(), "String"},
		{
			"intersection",
			(&Callable{Intersects: []*Callable{f, p}}).FullString(),
			"intersection[Base.String.f(List<E>?): String, Base.p: <error>]",
		},
		{
			"synthetic delegate",
			(&Callable{
				Name:      "g",
				Owner:     base,
				Kind:      Fun,
				Modality:  Open,
				Override:  true,
				Synthetic: true,
				Delegate:  ClassType(list, ClassType(str)),
				Loc:       loc.Loc{},
			}).FullString(),
			"synthetic open override fun g() by List<String>",
		},
	}
	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("%s: got %q, want %q", test.name, test.got, test.want)
		}
	}
}
