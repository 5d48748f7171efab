// Copyright © 2020 The Pea Authors under an MIT-style license.

package override

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/willhansen/overcheck/sym"
)

func scopeOf(t *testing.T, src, name string) (*sym.Arena, *Scope) {
	t.Helper()
	arena := resolve(t, src)
	sc, err := ScopeOf(arena, class(t, arena, name), Config{})
	if err != nil {
		t.Fatalf("ScopeOf(%s) failed: %v", name, err)
	}
	return arena, sc
}

func memberStrings(ms []*sym.Callable) []string {
	ss := []string{}
	for _, m := range ms {
		if m.IsIntersection() {
			ss = append(ss, m.FullString())
		} else {
			ss = append(ss, m.String())
		}
	}
	return ss
}

func TestScopeMembers(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		class string
		want  []string
	}{
		{
			name:  "Any",
			src:   "",
			class: "",
			want: []string{
				"Any.equals(Any?): Boolean",
				"Any.hashCode(): Int",
				"Any.toString(): String",
			},
		},
		{
			name:  "own then inherited",
			src:   "open class B { open fun g()\n fun toString(): String }\nclass C : B() { override fun g()\n fun h() }",
			class: "C",
			want: []string{
				"C.g(): Unit",
				"C.h(): Unit",
				"B.toString(): String",
				"Any.equals(Any?): Boolean",
				"Any.hashCode(): Int",
			},
		},
		{
			name:  "delegated",
			src:   "interface I { fun f() }\nclass C : I by d { fun g() }",
			class: "C",
			want: []string{
				"C.g(): Unit",
				"C.f(): Unit",
				"Any.equals(Any?): Boolean",
				"Any.hashCode(): Int",
				"Any.toString(): String",
			},
		},
		{
			name:  "intersection",
			src:   "interface I { fun f(): Number }\ninterface J { fun f(): Int }\nabstract class C : I, J",
			class: "C",
			want: []string{
				"intersection[I.f(): Number, J.f(): Int]",
				"Any.equals(Any?): Boolean",
				"Any.hashCode(): Int",
				"Any.toString(): String",
			},
		},
		{
			name:  "private not inherited",
			src:   "open class B { private fun f()\n fun g() }\nclass C : B()",
			class: "C",
			want: []string{
				"B.g(): Unit",
				"Any.equals(Any?): Boolean",
				"Any.hashCode(): Int",
				"Any.toString(): String",
			},
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			arena := resolve(t, test.src)
			c := arena.Any
			if test.class != "" {
				c = class(t, arena, test.class)
			}
			sc, err := ScopeOf(arena, c, Config{})
			if err != nil {
				t.Fatalf("ScopeOf failed: %v", err)
			}
			if diff := cmp.Diff(test.want, memberStrings(sc.Members)); diff != "" {
				t.Errorf("got\n%v\nexpected\n%v\ndiff:\n%s",
					memberStrings(sc.Members), test.want, diff)
			}
		})
	}
}

func TestScopeOverridden(t *testing.T) {
	t.Parallel()
	const src = `
		interface I<T> { fun f(x: T) }
		interface J { fun f(x: Int) }
		open class B { open fun g() }
		class C : B(), I<Int>, J {
			override fun g()
			override fun f(x: Int)
			fun h()
		}
	`
	arena, sc := scopeOf(t, src, "C")
	c := class(t, arena, "C")
	tests := []struct {
		member string
		want   []string
	}{
		{"g", []string{"B.g(): Unit"}},
		{"f", []string{"I.f(T): Unit", "J.f(Int): Unit"}},
		{"h", []string{}},
	}
	for _, test := range tests {
		got := memberStrings(sc.Overridden(c.Member(test.member)))
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Overridden(%s)=%v, want %v", test.member, got, test.want)
		}
	}
}

func TestScopeView(t *testing.T) {
	t.Parallel()
	const src = `
		interface I<T> { fun f(x: T): List<T> }
		abstract class B<E> : I<List<E>>
		abstract class C : B<String>()
	`
	arena, sc := scopeOf(t, src, "C")
	f := class(t, arena, "I").Member("f")
	if got := sc.View(f, f.Parms[0]).String(); got != "List<String>" {
		t.Errorf("View(f, T)=%s, want List<String>", got)
	}
	if got := sc.View(f, f.Ret).String(); got != "List<List<String>>" {
		t.Errorf("View(f, List<T>)=%s, want List<List<String>>", got)
	}
	if got := sc.Origin(f); got != class(t, arena, "I") {
		t.Errorf("Origin(f)=%v, want I", got)
	}
}

func TestScopeIntersections(t *testing.T) {
	const (
		i = "interface I { fun f() }\n"
		j = "interface J : I { override fun f() }\n"
		k = "interface K : I { override fun f() }\n"
	)
	for _, supers := range []string{"J, K", "K, J"} {
		supers := supers
		t.Run(supers, func(t *testing.T) {
			t.Parallel()
			_, sc := scopeOf(t, i+j+k+"abstract class C : "+supers, "C")
			is := sc.Intersections("f")
			if len(is) != 1 {
				t.Fatalf("got %d intersections, want 1", len(is))
			}
			var got []string
			for _, m := range is[0].Intersects {
				got = append(got, m.Owner.Name)
			}
			want := []string{supers[:1], supers[3:]}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("got constituents %v, want %v", got, want)
			}
			if !is[0].IsAbstract() || is[0].Owner.Name != "C" || !is[0].Synthetic {
				t.Errorf("got %s", is[0].FullString())
			}
		})
	}
}

func TestScopeDiamondInheritsOnce(t *testing.T) {
	t.Parallel()
	const src = `
		interface I { fun f() }
		interface J : I
		interface K : I
		abstract class C : J, K
	`
	_, sc := scopeOf(t, src, "C")
	if is := sc.Intersections("f"); len(is) != 0 {
		t.Errorf("got intersections %v", memberStrings(is))
	}
	var n int
	for _, m := range sc.Members {
		if m.Name == "f" {
			n++
		}
	}
	if n != 1 {
		t.Errorf("got %d members named f, want 1", n)
	}
}

func TestScopeDelegate(t *testing.T) {
	t.Parallel()
	const src = `
		interface I<T> { fun f(x: T) }
		interface J { fun f(x: Int) }
		class C : I<Int> by a, J by b
	`
	arena, sc := scopeOf(t, src, "C")
	c := class(t, arena, "C")
	var d *sym.Callable
	for _, m := range sc.Members {
		if m.Name == "f" {
			d = m
		}
	}
	switch {
	case d == nil:
		t.Fatalf("no delegated member")
	case d.Owner != c || !d.Synthetic || !d.Override || d.Delegate == nil:
		t.Errorf("got %s", d.FullString())
	case d.Delegate.String() != "I<Int>":
		t.Errorf("got delegate %s, want I<Int>", d.Delegate)
	case d.Parms[0].String() != "Int":
		t.Errorf("got parameter %s, want Int", d.Parms[0])
	}
	if got := memberStrings(sc.Duplicates(d)); !cmp.Equal(got, []string{"J.f(Int): Unit"}) {
		t.Errorf("Duplicates=%v", got)
	}
}

func TestScopeMemoized(t *testing.T) {
	t.Parallel()
	arena := resolve(t, "interface I\nclass C : I")
	x := newChecker(arena, Config{})
	s := x.newState(class(t, arena, "C"))
	a, err := s.scope(s.class)
	if err != nil {
		t.Fatalf("scope failed: %v", err)
	}
	b, err := s.scope(s.class)
	if err != nil {
		t.Fatalf("scope failed: %v", err)
	}
	if a != b {
		t.Errorf("scope was built twice")
	}
	if x.memo.load(class(t, arena, "I").ID) == nil {
		t.Errorf("supertype scope was not memoized")
	}
}
