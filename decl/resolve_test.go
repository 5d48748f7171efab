// Copyright © 2020 The Pea Authors under an MIT-style license.

package decl

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/eaburns/pretty"
	"github.com/willhansen/overcheck/sym"
)

type resolveTest struct {
	name string
	src  string
	// mods are imported modules: path and source.
	mods [][2]string
	err  string // regexp, "" means no error
}

func (test resolveTest) run(t *testing.T) {
	t.Parallel()
	_, errs := resolveString(test.src, test.mods...)
	switch {
	case test.err == "" && len(errs) == 0:
		break // good
	case test.err == "" && len(errs) > 0:
		t.Errorf("got\n%v\nexpected nil", errs)
	case test.err != "" && len(errs) == 0:
		t.Errorf("got nil, expected matching %q", test.err)
	case !regexp.MustCompile(test.err).MatchString(fmt.Sprintf("%v", errs)):
		t.Errorf("got\n%v,\nexpected matching %q", errs, test.err)
	}
}

func resolveString(src string, mods ...[2]string) (*sym.Arena, []error) {
	var ms []*Mod
	for _, m := range mods {
		p := NewParser(m[0])
		if err := p.Parse(m[0]+".decl", strings.NewReader(m[1])); err != nil {
			return nil, []error{err}
		}
		ms = append(ms, p.Mod())
	}
	p := NewParser("test")
	if err := p.Parse("test.decl", strings.NewReader(src)); err != nil {
		return nil, []error{err}
	}
	return Resolve(append(ms, p.Mod())...)
}

func TestResolveError(t *testing.T) {
	tests := []resolveTest{
		{
			name: "empty",
			src:  "",
			err:  "",
		},
		{
			name: "class redefined",
			src:  "class A\ninterface A",
			err:  "test.decl:2.1-2.11: class A redefined(.|\n)*previous definition is at test.decl:1.1",
		},
		{
			name: "builtin can be shadowed",
			src:  "class String",
			err:  "",
		},
		{
			name: "unknown supertype",
			src:  "class A : B",
			err:  "type B not defined",
		},
		{
			name: "unknown parameter type",
			src:  "class A { fun f(x: Y) }",
			err:  "type Y not defined",
		},
		{
			name: "error type is not reported",
			src:  "class A { fun f(x: error): error }",
			err:  "",
		},
		{
			name: "too few type arguments",
			src:  "class A : List",
			err:  "List expects 1 type arguments, got 0",
		},
		{
			name: "too many type arguments",
			src:  "class A { val x: Int<String> }",
			err:  "Int expects 0 type arguments, got 1",
		},
		{
			name: "type parameter with arguments",
			src:  "class A<T> { fun f(x: T<Int>) }",
			err:  "type parameter T cannot have type arguments",
		},
		{
			name: "type parameter out of scope",
			src:  "class A { fun <T> f(x: T) fun g(x: T) }",
			err:  "type T not defined",
		},
		{
			name: "bound refers to a type parameter",
			src:  "interface A<T : Comparable<T>>",
			err:  "",
		},
		{
			name: "supertype is a type parameter",
			src:  "class A<T> : T",
			err:  "supertype T is a type parameter",
		},
		{
			name: "nullable supertype",
			src:  "interface I class A : I?",
			err:  `supertype I\? is nullable`,
		},
		{
			name: "two class supertypes",
			src:  "open class B open class D class A : B(), D()",
			err:  "class A has more than one class supertype: B and D",
		},
		{
			name: "interface extends class",
			src:  "open class B interface I : B",
			err:  "interface I cannot extend class B",
		},
		{
			name: "delegate to class",
			src:  "open class B class A : B() by b",
			err:  "only interfaces can be delegated to, B is a class",
		},
		{
			name: "delegate to interface",
			src:  "interface I class A : I by i",
			err:  "",
		},
		{
			name: "direct cycle",
			src:  "interface I : I",
			err:  "inheritance cycle: I extends I",
		},
		{
			name: "indirect cycle",
			src:  "interface I : J interface J : K interface K : I",
			err:  "inheritance cycle",
		},
		{
			name: "diamond is not a cycle",
			src:  "interface I interface J : I interface K : I class C : J, K",
			err:  "",
		},
		{
			name: "import not found",
			src:  `import "nope"`,
			err:  "module nope not found",
		},
		{
			name: "imported type",
			src:  `import "other" class A : I`,
			mods: [][2]string{{"other", "interface I"}},
			err:  "",
		},
		{
			name: "imported private type",
			src:  `import "other" class A : I`,
			mods: [][2]string{{"other", "private interface I"}},
			err:  "type I not defined",
		},
		{
			name: "not imported",
			src:  `class A : I`,
			mods: [][2]string{{"other", "interface I"}},
			err:  "type I not defined",
		},
		{
			name: "reserved module path",
			src:  "",
			mods: [][2]string{{"builtin", "class X"}},
			err:  "module path builtin is reserved",
		},
		{
			name: "val with setter",
			src:  "class A { val x: Int private set }",
			err:  "x: a val cannot have a setter",
		},
		{
			name: "suspend property",
			src:  "class A { suspend val x: Int }",
			err:  "x: only functions can be suspend",
		},
		{
			name: "expect member",
			src:  "class A { expect fun f() }",
			err:  "f: expect is not allowed on members",
		},
		{
			name: "sealed member",
			src:  "class A { sealed fun f() }",
			err:  "f: sealed is not allowed on members",
		},
		{
			name: "override class",
			src:  "override class A",
			err:  "class A: only visibility, modality, and expect modifiers are allowed",
		},
		{
			name: "deprecated class",
			src:  "@Deprecated class A",
			err:  "class A: only @OptIn is allowed on classes",
		},
		{
			name: "bad deprecation level",
			src:  `class A { @Deprecated("x", LOUD) fun f() }`,
			err:  "unknown deprecation level LOUD",
		},
		{
			name: "errors are sorted",
			src:  "class A : X\nclass B : Y",
			err:  "type X not defined.*\n*.*type Y not defined",
		},
	}
	for _, test := range tests {
		t.Run(test.name, test.run)
	}
}

func TestResolveDefaults(t *testing.T) {
	const src = `
		interface I {
			fun a()
			fun b() {}
			val p: Int
		}
		open class C : I {
			override fun a()
			final override fun b()
			open fun c(): String
			fun d()
			abstract fun e()
			override val p: Int
			var q: Int protected set
			private var r: Int
		}
		abstract class D : C()
		sealed class S
		object O
	`
	arena, errs := resolveString(src)
	if len(errs) > 0 {
		t.Fatalf("failed to resolve: %v", errs)
	}
	I := arena.Lookup("test", "I")
	C := arena.Lookup("test", "C")
	D := arena.Lookup("test", "D")
	anyClass := arena.Any
	unit := arena.Lookup(BuiltinMod, "Unit")

	tests := []struct {
		name string
		got  interface{}
		want interface{}
	}{
		{"interface modality", I.Modality, sym.Abstract},
		{"open class modality", C.Modality, sym.Open},
		{"abstract class modality", D.Modality, sym.Abstract},
		{"sealed class modality", arena.Lookup("test", "S").Modality, sym.Sealed},
		{"object modality", arena.Lookup("test", "O").Modality, sym.Final},
		{"object kind", arena.Lookup("test", "O").Kind, sym.Object},

		{"interface without body", I.Member("a").Modality, sym.Abstract},
		{"interface with body", I.Member("b").Modality, sym.Open},
		{"interface property", I.Member("p").Modality, sym.Abstract},
		{"override", C.Member("a").Modality, sym.Open},
		{"final override", C.Member("b").Modality, sym.Final},
		{"open", C.Member("c").Modality, sym.Open},
		{"class member", C.Member("d").Modality, sym.Final},
		{"abstract", C.Member("e").Modality, sym.Abstract},

		{"fun return default", C.Member("d").Ret.Class, unit},
		{"declared return", C.Member("c").Ret.Class.Name, "String"},
		{"owner", C.Member("d").Owner, C},
		{"override flag", C.Member("a").Override, true},
		{"val", C.Member("p").IsVal(), true},
		{"var", C.Member("q").IsVar(), true},
		{"setter visibility", C.Member("q").Setter(), sym.Protected},
		{"setter defaults to property", C.Member("r").Setter(), sym.Private},

		{"interface implicit Any", I.Supers[0].Type.Class, anyClass},
		{"class implicit Any", len(C.Supers), 2},
		{"class implicit Any last", C.Supers[1].Type.Class, anyClass},
		{"superclass", D.SuperClass().Class, C},
		{"Any has no supers", len(anyClass.Supers), 0},
		{"builtins first", anyClass.ID, sym.ClassID(0)},
	}
	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("%s: got %v, want %v", test.name, test.got, test.want)
		}
	}
}

func TestResolveTypes(t *testing.T) {
	const src = `
		interface Box<out T : Number> {
			fun get(): T
			fun <R> map(f: R?): Box<R>
			fun Int.ext(x: List<String>?): MutableList<T>
		}
	`
	arena, errs := resolveString(src)
	if len(errs) > 0 {
		t.Fatalf("failed to resolve: %v", errs)
	}
	box := arena.Lookup("test", "Box")
	if len(box.TParms) != 1 || box.TParms[0].Variance != sym.Out {
		t.Fatalf("got type parameters %v, want [out T]", box.TParms)
	}
	T := box.TParms[0]
	if got := T.String(); got != "out T: Number" {
		t.Errorf("got %s, want out T: Number", got)
	}
	if got := box.Member("get").Ret; got.Parm != T {
		t.Errorf("get returns %s, want the class type parameter", pretty.String(got))
	}
	m := box.Member("map")
	if len(m.TParms) != 1 || m.Parms[0].Parm != m.TParms[0] || !m.Parms[0].Nullable {
		t.Errorf("got map %s, want parameter of type R?", m.FullString())
	}
	for _, test := range []struct {
		m    *sym.Callable
		want string
	}{
		{box.Member("get"), "Box.get(): T"},
		{box.Member("map"), "Box.map(R?): Box<R>"},
		{box.Member("ext"), "Box.Int.ext(List<String>?): MutableList<T>"},
	} {
		if got := test.m.String(); got != test.want {
			t.Errorf("got %s, want %s", got, test.want)
		}
	}
}
