// Copyright © 2020 The Pea Authors under an MIT-style license.

package override

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"testing"

	"github.com/eaburns/pretty"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/willhansen/overcheck/decl"
	"github.com/willhansen/overcheck/sym"
)

type checkTest struct {
	name string
	src  string
	// mods are imported modules: path and source.
	mods [][2]string
	// want are the kinds of the reported diagnostics.
	want []string
}

func (test checkTest) run(t *testing.T) {
	t.Parallel()
	arena := resolve(t, test.src, test.mods...)
	diags, err := Check(arena, Config{})
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	got := kinds(diags)
	want := append([]string{}, test.want...)
	sort.Strings(want)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("got\n%s\nexpected %v\ndiff:\n%s", diagsString(diags), want, diff)
	}
}

func resolve(t *testing.T, src string, mods ...[2]string) *sym.Arena {
	t.Helper()
	var ms []*decl.Mod
	for _, m := range mods {
		p := decl.NewParser(m[0])
		if err := p.Parse(m[0]+".decl", strings.NewReader(m[1])); err != nil {
			t.Fatalf("failed to parse %s: %v", m[0], err)
		}
		ms = append(ms, p.Mod())
	}
	p := decl.NewParser("test")
	if err := p.Parse("test.decl", strings.NewReader(src)); err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	arena, errs := decl.Resolve(append(ms, p.Mod())...)
	if len(errs) > 0 {
		t.Fatalf("failed to resolve: %v", errs)
	}
	return arena
}

func class(t *testing.T, arena *sym.Arena, name string) *sym.Class {
	t.Helper()
	c := arena.Lookup("test", name)
	if c == nil {
		t.Fatalf("class %s not found", name)
	}
	return c
}

// kinds returns the sorted kinds of the diagnostics.
func kinds(diags []Diag) []string {
	ks := []string{}
	for _, d := range diags {
		ks = append(ks, d.Kind.String())
	}
	sort.Strings(ks)
	return ks
}

func diagsString(diags []Diag) string {
	var s strings.Builder
	for _, d := range diags {
		fmt.Fprintf(&s, "%s: %s\n", d.Kind, d.Error())
	}
	return s.String()
}

func TestPreludeIsConsistent(t *testing.T) {
	t.Parallel()
	arena := resolve(t, "")
	diags, err := Check(arena, Config{})
	if err != nil || len(diags) > 0 {
		t.Errorf("Check()=%s, %v, want no diagnostics", diagsString(diags), err)
	}
}

func TestCheckScenarios(t *testing.T) {
	tests := []checkTest{
		{
			name: "unrelated interfaces with the same member",
			src: `
				interface I { fun f(): Number }
				interface J { fun f(): Int }
				class C : I, J
			`,
			want: []string{"MANY_INTERFACES_MEMBER_NOT_IMPLEMENTED"},
		},
		{
			name: "override of a final member",
			src: `
				open class Base { final fun g() }
				class Derived : Base() { override fun g() }
			`,
			want: []string{"OVERRIDING_FINAL_MEMBER"},
		},
		{
			name: "val overrides var",
			src: `
				interface I { var x: Int }
				class C : I { override val x: Int }
			`,
			want: []string{"VAR_OVERRIDDEN_BY_VAL"},
		},
		{
			name: "inherited members differ only in suspend",
			src: `
				open class B { open fun h() }
				interface I { suspend fun h() }
				class C : B(), I
			`,
			want: []string{"CONFLICTING_INHERITED_MEMBERS"},
		},
		{
			name: "own member differs only in suspend",
			src: `
				interface I { suspend fun h() }
				class C : I { fun h() }
			`,
			want: []string{"CONFLICTING_OVERLOADS"},
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, test.run)
	}
}

func TestCheckOverrides(t *testing.T) {
	tests := []checkTest{
		{
			name: "no members",
			src:  "class C",
			want: nil,
		},
		{
			name: "nothing to override",
			src:  "class C { override fun f() }",
			want: []string{"NOTHING_TO_OVERRIDE"},
		},
		{
			name: "different parameter types override nothing",
			src: `
				open class B { open fun f(x: Int) }
				class C : B() { override fun f(x: String) }
			`,
			want: []string{"NOTHING_TO_OVERRIDE"},
		},
		{
			name: "new member without override",
			src: `
				open class B { open fun f() }
				class C : B() { fun g() }
			`,
			want: nil,
		},
		{
			name: "hides member without override",
			src: `
				open class B { open fun f() }
				class C : B() { fun f() }
			`,
			want: []string{"VIRTUAL_MEMBER_HIDDEN"},
		},
		{
			name: "implements abstract member without override",
			src: `
				interface I { fun f() }
				class C : I { fun f() }
			`,
			want: nil,
		},
		{
			name: "private members are not inherited",
			src: `
				open class B { private fun f() }
				class C : B() { fun f() }
			`,
			want: nil,
		},
		{
			name: "override of a private member",
			src: `
				open class B { private open fun f() }
				class C : B() { override fun f() }
			`,
			want: []string{"NOTHING_TO_OVERRIDE"},
		},
		{
			name: "override of a default final member",
			src: `
				open class B { fun f() }
				class C : B() { override fun f() }
			`,
			want: []string{"OVERRIDING_FINAL_MEMBER"},
		},
		{
			name: "override of an override is open",
			src: `
				open class A { open fun f() }
				open class B : A() { override fun f() }
				class C : B() { override fun f() }
			`,
			want: nil,
		},
		{
			name: "final override",
			src: `
				open class A { open fun f() }
				open class B : A() { final override fun f() }
				class C : B() { override fun f() }
			`,
			want: []string{"OVERRIDING_FINAL_MEMBER"},
		},
		{
			name: "var overrides val",
			src: `
				open class B { open val x: Int }
				class C : B() { override var x: Int }
			`,
			want: nil,
		},
		{
			name: "weaken visibility",
			src: `
				open class B { open fun f() }
				class C : B() { protected override fun f() }
			`,
			want: []string{"CANNOT_WEAKEN_ACCESS_PRIVILEGE"},
		},
		{
			name: "strengthen visibility",
			src: `
				abstract class B { protected abstract fun f() }
				class C : B() { public override fun f() }
			`,
			want: nil,
		},
		{
			name: "change visibility",
			src: `
				abstract class B { protected abstract fun f() }
				class C : B() { internal override fun f() }
			`,
			want: []string{"CANNOT_CHANGE_ACCESS_PRIVILEGE"},
		},
		{
			name: "weaken setter visibility",
			src: `
				open class B { open var x: Int }
				class C : B() { override var x: Int private set }
			`,
			want: []string{"CANNOT_WEAKEN_ACCESS_PRIVILEGE"},
		},
		{
			name: "weaken var visibility reports once",
			src: `
				open class A { open var x: Int }
				open class B : A() { protected override var x: Int }
				class C : B() { protected override var x: Int }
			`,
			want: []string{"CANNOT_WEAKEN_ACCESS_PRIVILEGE"},
		},
		{
			name: "stronger setter visibility",
			src: `
				open class B { open var x: Int protected set }
				class C : B() { override var x: Int }
			`,
			want: nil,
		},
		{
			name: "override of an invisible member",
			mods: [][2]string{{"lib", "open class B { internal open fun f() }"}},
			src: `
				import "lib"
				class C : B() { override fun f() }
			`,
			want: []string{"CANNOT_OVERRIDE_INVISIBLE_MEMBER"},
		},
		{
			name: "override of an internal member in the same module",
			src: `
				open class B { internal open fun f() }
				class C : B() { internal override fun f() }
			`,
			want: nil,
		},
		{
			name: "hiding an invisible member",
			mods: [][2]string{{"lib", "open class B { internal open fun f() }"}},
			src: `
				import "lib"
				class C : B() { fun f() }
			`,
			want: nil,
		},
		{
			name: "override of a deprecated member",
			src: `
				open class B { @Deprecated("use g") open fun f() }
				class C : B() { override fun f() }
			`,
			want: []string{"OVERRIDE_DEPRECATION"},
		},
		{
			name: "deprecated override of a deprecated member",
			src: `
				open class B { @Deprecated("use g") open fun f() }
				class C : B() { @Deprecated("use g") override fun f() }
			`,
			want: nil,
		},
		{
			name: "return type mismatch",
			src: `
				open class B { open fun f(): Number }
				class C : B() { override fun f(): String }
			`,
			want: []string{"RETURN_TYPE_MISMATCH_ON_OVERRIDE"},
		},
		{
			name: "covariant return type",
			src: `
				open class B { open fun f(): Number }
				class C : B() { override fun f(): Int }
			`,
			want: nil,
		},
		{
			name: "nullable return type",
			src: `
				open class B { open fun f(): Int }
				class C : B() { override fun f(): Int? }
			`,
			want: []string{"RETURN_TYPE_MISMATCH_ON_OVERRIDE"},
		},
		{
			name: "non-null return type overrides nullable",
			src: `
				open class B { open fun f(): Int? }
				class C : B() { override fun f(): Int }
			`,
			want: nil,
		},
		{
			name: "Nothing return type",
			src: `
				open class B { open fun f(): String }
				class C : B() { override fun f(): Nothing }
			`,
			want: nil,
		},
		{
			name: "property type mismatch",
			src: `
				open class B { open val x: Int }
				class C : B() { override val x: Number }
			`,
			want: []string{"PROPERTY_TYPE_MISMATCH_ON_OVERRIDE"},
		},
		{
			name: "covariant val",
			src: `
				open class B { open val x: Number }
				class C : B() { override val x: Int }
			`,
			want: nil,
		},
		{
			name: "covariant var",
			src: `
				open class B { open var x: Number }
				class C : B() { override var x: Int }
			`,
			want: []string{"VAR_TYPE_MISMATCH_ON_OVERRIDE"},
		},
		{
			name: "covariant type argument",
			src: `
				open class B { open fun f(): List<Number> }
				class C : B() { override fun f(): List<Int> }
			`,
			want: nil,
		},
		{
			name: "invariant type argument",
			src: `
				open class B { open fun f(): MutableList<Number> }
				class C : B() { override fun f(): MutableList<Int> }
			`,
			want: []string{"RETURN_TYPE_MISMATCH_ON_OVERRIDE"},
		},
		{
			name: "contravariant type argument",
			src: `
				open class B { open fun f(): Comparable<Int> }
				class C : B() { override fun f(): Comparable<Number> }
			`,
			want: nil,
		},
		{
			name: "contravariant type argument mismatch",
			src: `
				open class B { open fun f(): Comparable<Number> }
				class C : B() { override fun f(): Comparable<Int> }
			`,
			want: []string{"RETURN_TYPE_MISMATCH_ON_OVERRIDE"},
		},
		{
			name: "error return type is compatible",
			src: `
				open class B { open fun f(): Int }
				class C : B() { override fun f(): error }
			`,
			want: nil,
		},
		{
			name: "generic supertype",
			src: `
				interface Box<T> { fun get(): T }
				class IntBox : Box<Int> { override fun get(): Int }
			`,
			want: nil,
		},
		{
			name: "generic supertype return type mismatch",
			src: `
				interface Box<T> { fun get(): T }
				class IntBox : Box<Int> { override fun get(): String }
			`,
			want: []string{"RETURN_TYPE_MISMATCH_ON_OVERRIDE"},
		},
		{
			name: "generic supertype parameter",
			src: `
				interface Sink<T> { fun put(x: T) }
				class IntSink : Sink<Int> { override fun put(x: Int) }
			`,
			want: nil,
		},
		{
			name: "contravariant parameter overrides nothing",
			src: `
				interface Sink<T> { fun put(x: T) }
				class IntSink : Sink<Int> { override fun put(x: Number) }
			`,
			want: []string{"ABSTRACT_MEMBER_NOT_IMPLEMENTED", "NOTHING_TO_OVERRIDE"},
		},
		{
			name: "generic supertype through an intermediate class",
			src: `
				interface Box<T> { fun get(): T }
				abstract class ListBox<E> : Box<List<E>>
				class IntListBox : ListBox<Int>() { override fun get(): List<Int> }
			`,
			want: nil,
		},
		{
			name: "generic member",
			src: `
				interface I { fun <T> f(x: T): T }
				class C : I { override fun <U> f(x: U): U }
			`,
			want: nil,
		},
		{
			name: "generic member with a different type parameter count",
			src: `
				interface I { fun <T> f(x: Int): Int }
				abstract class C : I { override fun f(x: Int): Int }
			`,
			want: []string{"CONFLICTING_OVERLOADS", "NOTHING_TO_OVERRIDE"},
		},
		{
			name: "extension member",
			src: `
				open class B { open fun Int.f() }
				class C : B() { override fun Int.f() }
			`,
			want: nil,
		},
		{
			name: "extension member receiver mismatch",
			src: `
				open class B { open fun Int.f() }
				class C : B() { override fun String.f() }
			`,
			want: []string{"NOTHING_TO_OVERRIDE"},
		},
		{
			name: "opt-in required",
			src: `
				open class B { @Requires(Exp) open fun f() }
				class C : B() { override fun f() }
			`,
			want: []string{"OPT_IN_OVERRIDE"},
		},
		{
			name: "opt-in accepted by member",
			src: `
				open class B { @Requires(Exp) open fun f() }
				class C : B() { @OptIn(Exp) override fun f() }
			`,
			want: nil,
		},
		{
			name: "opt-in accepted by class",
			src: `
				open class B { @Requires(Exp) open fun f() }
				@OptIn(Exp) class C : B() { override fun f() }
			`,
			want: nil,
		},
		{
			name: "opt-in propagated",
			src: `
				open class B { @Requires(Exp) open fun f() }
				class C : B() { @Requires(Exp) override fun f() }
			`,
			want: nil,
		},
		{
			name: "opt-in for each marker",
			src: `
				open class B { @Requires(A) @Requires(B) open fun f() }
				class C : B() { @OptIn(B) override fun f() }
			`,
			want: []string{"OPT_IN_OVERRIDE"},
		},
		{
			name: "independent override checks",
			src: `
				open class B { @Deprecated("x") final var x: Number }
				class C : B() { protected override val x: Int }
			`,
			want: []string{
				"CANNOT_WEAKEN_ACCESS_PRIVILEGE",
				"OVERRIDE_DEPRECATION",
				"OVERRIDING_FINAL_MEMBER",
				"VAR_OVERRIDDEN_BY_VAL",
				"PROPERTY_TYPE_MISMATCH_ON_OVERRIDE",
			},
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, test.run)
	}
}

func TestCheckCompleteness(t *testing.T) {
	tests := []checkTest{
		{
			name: "interface member not implemented",
			src: `
				interface I { fun f() }
				class C : I
			`,
			want: []string{"ABSTRACT_MEMBER_NOT_IMPLEMENTED"},
		},
		{
			name: "abstract class member not implemented",
			src: `
				abstract class B { abstract fun f() }
				class C : B()
			`,
			want: []string{"ABSTRACT_CLASS_MEMBER_NOT_IMPLEMENTED"},
		},
		{
			name: "object must implement",
			src: `
				interface I { fun f() }
				object O : I
			`,
			want: []string{"ABSTRACT_MEMBER_NOT_IMPLEMENTED"},
		},
		{
			name: "reported once per class",
			src: `
				interface I { fun f()
					fun g() }
				class C : I
			`,
			want: []string{"ABSTRACT_MEMBER_NOT_IMPLEMENTED"},
		},
		{
			name: "abstract class need not implement",
			src: `
				interface I { fun f() }
				abstract class C : I
			`,
			want: nil,
		},
		{
			name: "sealed class need not implement",
			src: `
				interface I { fun f() }
				sealed class C : I
			`,
			want: nil,
		},
		{
			name: "interface need not implement",
			src: `
				interface I { fun f() }
				interface J : I
			`,
			want: nil,
		},
		{
			name: "enum is not checked",
			src: `
				interface I { fun f() }
				enum class E : I
			`,
			want: nil,
		},
		{
			name: "expect class is not checked",
			src: `
				interface I { fun f() }
				expect class C : I
			`,
			want: nil,
		},
		{
			name: "implemented by superclass",
			src: `
				interface I { fun f() }
				open class B { open fun f() }
				class C : B(), I
			`,
			want: nil,
		},
		{
			name: "implemented by interface default",
			src: `
				interface I { fun f() {} }
				class C : I
			`,
			want: nil,
		},
		{
			name: "invisible abstract member",
			mods: [][2]string{{"lib", "abstract class B { internal abstract fun f() }"}},
			src: `
				import "lib"
				class C : B()
			`,
			want: []string{"INVISIBLE_ABSTRACT_MEMBER_FROM_SUPER"},
		},
		{
			name: "visible abstract member is reported before invisible",
			mods: [][2]string{{"lib", "abstract class B { internal abstract fun f()\n abstract fun g() }"}},
			src: `
				import "lib"
				class C : B()
			`,
			want: []string{"ABSTRACT_CLASS_MEMBER_NOT_IMPLEMENTED"},
		},
		{
			name: "many implementations",
			src: `
				interface I { fun f() {} }
				open class B { open fun f() }
				class C : B(), I
			`,
			want: []string{"MANY_IMPL_MEMBER_NOT_IMPLEMENTED"},
		},
		{
			name: "many implementations overridden",
			src: `
				interface I { fun f() {} }
				open class B { open fun f() }
				class C : B(), I { override fun f() }
			`,
			want: nil,
		},
		{
			name: "interface default and abstract interface member",
			src: `
				interface I { fun f() {} }
				interface J { fun f() }
				class C : I, J
			`,
			want: []string{"MANY_INTERFACES_MEMBER_NOT_IMPLEMENTED"},
		},
		{
			name: "two interface defaults in an abstract class",
			src: `
				interface I { fun f() {} }
				interface J { fun f() {} }
				abstract class C : I, J
			`,
			want: []string{"MANY_INTERFACES_MEMBER_NOT_IMPLEMENTED"},
		},
		{
			name: "abstract class member and interface default in an abstract class",
			src: `
				interface I { fun f() {} }
				abstract class B { abstract fun f() }
				abstract class C : B(), I
			`,
			want: nil,
		},
		{
			name: "abstract interfaces in an interface",
			src: `
				interface I { fun f() }
				interface J { fun f() }
				interface K : I, J
			`,
			want: nil,
		},
		{
			name: "var implemented by inherited val",
			src: `
				interface I { var x: Int }
				open class B { open val x: Int }
				class C : B(), I
			`,
			want: []string{"VAR_IMPLEMENTED_BY_INHERITED_VAL"},
		},
		{
			name: "var implemented by inherited var",
			src: `
				interface I { var x: Int }
				open class B { open var x: Int }
				class C : B(), I
			`,
			want: nil,
		},
		{
			name: "inherited return types have no most specific",
			src: `
				interface I { fun f(): String }
				interface J { fun f(): Int }
				abstract class C : I, J
			`,
			want: []string{"RETURN_TYPE_MISMATCH_ON_INHERITANCE"},
		},
		{
			name: "inherited property types have no most specific",
			src: `
				interface I { val x: String }
				interface J { val x: Int }
				abstract class C : I, J
			`,
			want: []string{"PROPERTY_TYPE_MISMATCH_ON_INHERITANCE"},
		},
		{
			name: "inherited var types must be equal",
			src: `
				interface I { var x: Number }
				interface J { var x: Int }
				abstract class C : I, J
			`,
			want: []string{"PROPERTY_TYPE_MISMATCH_ON_INHERITANCE"},
		},
		{
			name: "diamond",
			src: `
				interface I { fun f() }
				interface J : I
				interface K : I
				class C : J, K { override fun f() }
			`,
			want: nil,
		},
		{
			name: "diamond with one override",
			src: `
				interface I { fun f() }
				interface J : I { override fun f() {} }
				interface K : I
				class C : J, K
			`,
			want: nil,
		},
		{
			name: "generic diamond",
			src: `
				interface I<T> { fun f(x: T) }
				interface J : I<Int>
				interface K : I<Int>
				class C : J, K { override fun f(x: Int) }
			`,
			want: nil,
		},
		{
			name: "delegation",
			src: `
				interface I { fun f()
					val x: Int }
				class C : I by d
			`,
			want: nil,
		},
		{
			name: "delegation hides supertype override",
			src: `
				interface I { fun f() }
				open class B { open fun f() }
				class C : B(), I by d
			`,
			want: []string{"DELEGATED_MEMBER_HIDES_SUPERTYPE_OVERRIDE"},
		},
		{
			name: "delegation overrides final member",
			src: `
				interface I { fun f() }
				open class B { fun f() }
				class C : B(), I by d
			`,
			want: []string{"OVERRIDING_FINAL_MEMBER_BY_DELEGATION"},
		},
		{
			name: "delegation overridden by own member",
			src: `
				interface I { fun f() }
				open class B { open fun f() }
				class C : B(), I by d { override fun f() }
			`,
			want: nil,
		},
		{
			name: "many delegates",
			src: `
				interface I { fun f() }
				interface J { fun f() }
				class C : I by a, J by b
			`,
			want: []string{"MANY_IMPL_MEMBER_NOT_IMPLEMENTED"},
		},
		{
			name: "many delegates of a common member",
			src: `
				interface I { fun f() }
				interface J : I
				interface K : I
				class C : J by a, K by b
			`,
			want: nil,
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, test.run)
	}
}

func TestCheckConflicts(t *testing.T) {
	tests := []checkTest{
		{
			name: "own members differ in suspend",
			src:  "class C { fun f()\n suspend fun f() }",
			want: []string{"CONFLICTING_OVERLOADS"},
		},
		{
			name: "own members differ in type parameter count",
			src:  "class C { fun f(x: Int)\n fun <T> f(x: Int) }",
			want: []string{"CONFLICTING_OVERLOADS"},
		},
		{
			name: "own members differ in parameter types",
			src:  "class C { fun f(x: Int)\n suspend fun f(x: String) }",
			want: nil,
		},
		{
			name: "own members differ in type arguments",
			src:  "class C { fun f(x: List<Int>)\n suspend fun f(x: List<String>) }",
			want: []string{"CONFLICTING_OVERLOADS"},
		},
		{
			name: "type parameter is erased to its bound",
			src:  "class C { fun <T: Number> f(x: T)\n suspend fun f(x: Number) }",
			want: []string{"CONFLICTING_OVERLOADS"},
		},
		{
			name: "reported only where declared",
			src: `
				interface I { fun f()
					suspend fun f() }
				abstract class C : I
			`,
			want: []string{"CONFLICTING_OVERLOADS"},
		},
		{
			name: "conflicting members are not reported as unimplemented",
			src: `
				interface I { fun f() }
				interface J { suspend fun f() }
				class C : I, J
			`,
			want: []string{"CONFLICTING_INHERITED_MEMBERS"},
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, test.run)
	}
}

func TestCheckLocations(t *testing.T) {
	t.Parallel()
	const src = `
		open class B { open fun h() }
		interface I { suspend fun h() }
		class C : B(), I
		class D : I { fun h() }
		class E : B() { fun h() }
	`
	arena := resolve(t, src)
	diags, err := Check(arena, Config{})
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	c, d, e := class(t, arena, "C"), class(t, arena, "D"), class(t, arena, "E")
	want := map[Kind]Diag{
		ConflictingInheritedMembers: {Loc: c.Loc, Class: c},
		ConflictingOverloads:        {Loc: d.Member("h").Loc, Class: d},
		VirtualMemberHidden:         {Loc: e.Member("h").Loc, Class: e},
	}
	if len(diags) != len(want) {
		t.Fatalf("got\n%s\nexpected %d diagnostics", diagsString(diags), len(want))
	}
	for _, diag := range diags {
		w, ok := want[diag.Kind]
		switch {
		case !ok:
			t.Errorf("unexpected diagnostic %s", diag.Error())
		case diag.Loc != w.Loc || diag.Class != w.Class:
			t.Errorf("%s: got loc %s class %s, expected %s %s",
				diag.Kind, diag.Loc, diag.Class, w.Loc, w.Class)
		}
	}
	// Diagnostics are sorted by location.
	for i := 1; i < len(diags); i++ {
		if diags[i].Loc.Less(diags[i-1].Loc) {
			t.Errorf("diagnostics not sorted:\n%s", diagsString(diags))
		}
	}
}

func TestDiagSeverity(t *testing.T) {
	for k := NothingToOverride; k <= ConflictingInheritedMembers; k++ {
		want := Error
		if k == OverrideDeprecation || k == DelegatedMemberHidesSupertypeOverride {
			want = Warning
		}
		if got := k.Severity(); got != want {
			t.Errorf("%s.Severity()=%s, want %s", k, got, want)
		}
		if strings.ToUpper(k.String()) != k.String() {
			t.Errorf("%s is not upper case", k)
		}
	}
}

func TestDiagMessage(t *testing.T) {
	tests := []struct {
		name string
		src  string
		re   string
	}{
		{
			name: "final",
			src: `
				open class Base { final fun g() }
				class Derived : Base() { override fun g() }
			`,
			re: `^test.decl:3.\d+-3.\d+: Derived.g\(\): Unit overrides final member Base.g\(\): Unit of Base$`,
		},
		{
			name: "setter",
			src: `
				open class B { open var x: Int }
				class C : B() { override var x: Int private set }
			`,
			re: `setter of C.x: Int cannot weaken access privilege public of B.x: Int`,
		},
		{
			name: "substituted return type",
			src: `
				interface Box<T> { fun get(): List<T> }
				class IntBox : Box<Int> { override fun get(): List<String> }
			`,
			re: `return type of IntBox.get\(\): List<String> is not a subtype of List<Int>, the return type of overridden member Box.get\(\): List<T>$`,
		},
		{
			name: "substituted property type",
			src: `
				interface I<T> { val x: List<T> }
				class C : I<Int> { override val x: List<String> }
			`,
			re: `type of C.x: List<String> is not a subtype of List<Int>, the type of overridden property I.x: List<T>$`,
		},
		{
			name: "substituted var type",
			src: `
				open class B<T> { open var x: T }
				class C : B<Int>() { override var x: Number }
			`,
			re: `type of C.x: Number does not match Int, the type of overridden property B.x: T$`,
		},
		{
			name: "opt-in",
			src: `
				open class B { @Requires(Exp) open fun f() }
				class C : B() { override fun f() }
			`,
			re: `C.f\(\): Unit overrides B.f\(\): Unit which requires opt-in to Exp`,
		},
		{
			name: "intersection",
			src: `
				interface I { fun f(): Number }
				interface J { fun f(): Int }
				class C : I, J
			`,
			re: `^test.decl:4.\d+-4.\d+: C must override .*f.* because it inherits multiple interface members for it$`,
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			diags, err := Check(resolve(t, test.src), Config{})
			if err != nil {
				t.Fatalf("Check failed: %v", err)
			}
			if len(diags) != 1 {
				t.Fatalf("got\n%s\nexpected 1 diagnostic", diagsString(diags))
			}
			if !regexp.MustCompile(test.re).MatchString(diags[0].Error()) {
				t.Errorf("got %q, expected matching %q", diags[0].Error(), test.re)
			}
		})
	}
}

const determinismSrc = `
	interface I { fun f(): Number
		var x: Int
		suspend fun h() }
	interface J { fun f(): Int
		fun g() {} }
	open class B { open fun g()
		open val x: Int
		fun h()
		open fun k(): Number }
	class C : B(), I, J { override fun k(): String }
	class D : I, J
	abstract class E : B(), J by j
	class F : E() { override fun f(): Int
		protected override fun k(): Int }
	class G : I by i, J by j
`

func TestCheckDeterministic(t *testing.T) {
	t.Parallel()
	var first []string
	for i := 0; i < 20; i++ {
		arena := resolve(t, determinismSrc)
		diags, err := Check(arena, Config{Workers: i%4 + 1})
		if err != nil {
			t.Fatalf("Check failed: %v", err)
		}
		var got []string
		for _, d := range diags {
			got = append(got, d.Kind.String()+" "+d.Error())
		}
		if len(got) == 0 {
			t.Fatalf("expected diagnostics")
		}
		if first == nil {
			first = got
			continue
		}
		if diff := cmp.Diff(first, got); diff != "" {
			t.Fatalf("run %d differs:\n%s", i, diff)
		}
	}
}

func TestCheckIdentityOverrides(t *testing.T) {
	members := []string{
		"fun f()",
		"fun f(x: Int, y: String?): Number",
		"fun <T> f(x: T): List<T>",
		"fun <T: Number> f(x: T): T",
		"fun Int.f(): Int",
		"suspend fun f()",
		"val x: Int",
		"var x: List<Int>?",
		"val <T> T.x: T",
	}
	for _, m := range members {
		m := m
		t.Run(m, func(t *testing.T) {
			t.Parallel()
			src := fmt.Sprintf("open class B { open %s }\nclass C : B() { override %s }", m, m)
			diags, err := Check(resolve(t, src), Config{})
			if err != nil || len(diags) > 0 {
				t.Errorf("Check()=%s, %v, want no diagnostics", diagsString(diags), err)
			}
		})
	}
}

func TestCheckVisibilityMonotonic(t *testing.T) {
	viss := []sym.Visibility{sym.Public, sym.Protected, sym.Internal}
	for _, base := range viss {
		for _, over := range viss {
			base, over := base, over
			t.Run(base.String()+" "+over.String(), func(t *testing.T) {
				t.Parallel()
				src := fmt.Sprintf("open class B { %s open fun f() }\nclass C : B() { %s override fun f() }", base, over)
				diags, err := Check(resolve(t, src), Config{})
				if err != nil {
					t.Fatalf("Check failed: %v", err)
				}
				var want []string
				switch c, ok := sym.CompareVis(over, base); {
				case !ok:
					want = []string{"CANNOT_CHANGE_ACCESS_PRIVILEGE"}
				case c < 0:
					want = []string{"CANNOT_WEAKEN_ACCESS_PRIVILEGE"}
				default:
					want = []string{}
				}
				if diff := cmp.Diff(want, kinds(diags)); diff != "" {
					t.Errorf("got\n%s\nexpected %v", diagsString(diags), want)
				}
			})
		}
	}
}

func TestCheckVisibilityChain(t *testing.T) {
	members := map[string]string{
		"fun": "fun x()",
		"val": "val x: Int",
		"var": "var x: Int",
	}
	tests := []struct {
		name string
		a    string
		b    string
		c    string
		// setB and setC are setter visibilities, only used for var.
		setB, setC string
		want       []string
	}{
		{
			name: "all public",
			a:    "public", b: "public", c: "public",
			want: []string{},
		},
		{
			name: "weakened in the middle",
			a:    "public", b: "protected", c: "protected",
			want: []string{"B CANNOT_WEAKEN_ACCESS_PRIVILEGE"},
		},
		{
			name: "weakened at the leaf",
			a:    "public", b: "public", c: "protected",
			want: []string{"C CANNOT_WEAKEN_ACCESS_PRIVILEGE"},
		},
		{
			name: "strengthened at the leaf",
			a:    "protected", b: "protected", c: "public",
			want: []string{},
		},
		{
			name: "weakened then changed",
			a:    "public", b: "internal", c: "protected",
			want: []string{
				"B CANNOT_WEAKEN_ACCESS_PRIVILEGE",
				"C CANNOT_CHANGE_ACCESS_PRIVILEGE",
			},
		},
		{
			name: "changed in the middle",
			a:    "protected", b: "internal", c: "internal",
			want: []string{"B CANNOT_CHANGE_ACCESS_PRIVILEGE"},
		},
	}
	for _, kind := range []string{"fun", "val", "var"} {
		for _, test := range tests {
			kind, test := kind, test
			t.Run(kind+" "+test.name, func(t *testing.T) {
				t.Parallel()
				src := fmt.Sprintf(`
					open class A { %s open %s }
					open class B : A() { %s override %s }
					class C : B() { %s override %s }
				`, test.a, members[kind], test.b, members[kind], test.c, members[kind])
				diags, err := Check(resolve(t, src), Config{})
				if err != nil {
					t.Fatalf("Check failed: %v", err)
				}
				got := []string{}
				for _, d := range diags {
					got = append(got, d.Class.Name+" "+d.Kind.String())
				}
				sort.Strings(got)
				if diff := cmp.Diff(test.want, got); diff != "" {
					t.Errorf("got\n%s\nexpected %v", diagsString(diags), test.want)
				}
			})
		}
	}
}

func TestCheckSetterVisibilityChain(t *testing.T) {
	tests := []struct {
		name string
		b    string
		c    string
		want []string
	}{
		{
			name: "same weakened setter",
			b:    "protected set",
			c:    "protected set",
			want: []string{"B CANNOT_WEAKEN_ACCESS_PRIVILEGE set"},
		},
		{
			name: "setter weakened twice",
			b:    "protected set",
			c:    "private set",
			want: []string{
				"B CANNOT_WEAKEN_ACCESS_PRIVILEGE set",
				"C CANNOT_WEAKEN_ACCESS_PRIVILEGE set",
			},
		},
		{
			name: "default setter after a weakened one",
			b:    "protected set",
			c:    "",
			want: []string{"B CANNOT_WEAKEN_ACCESS_PRIVILEGE set"},
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			src := fmt.Sprintf(`
				open class A { open var x: Int }
				open class B : A() { override var x: Int %s }
				class C : B() { override var x: Int %s }
			`, test.b, test.c)
			diags, err := Check(resolve(t, src), Config{})
			if err != nil {
				t.Fatalf("Check failed: %v", err)
			}
			got := []string{}
			for _, d := range diags {
				got = append(got, d.Class.Name+" "+d.Kind.String()+" "+d.Accessor)
			}
			sort.Strings(got)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("got\n%s\nexpected %v", diagsString(diags), test.want)
			}
		})
	}
}

func TestCheckClass(t *testing.T) {
	t.Parallel()
	arena := resolve(t, determinismSrc)
	all, err := Check(arena, Config{})
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	for _, name := range []string{"C", "D", "E", "F", "G"} {
		c := class(t, arena, name)
		got, err := CheckClass(arena, c, Config{})
		if err != nil {
			t.Fatalf("CheckClass(%s) failed: %v", name, err)
		}
		var want []string
		for _, d := range all {
			if d.Class == c {
				want = append(want, d.Error())
			}
		}
		var gotStrs []string
		for _, d := range got {
			gotStrs = append(gotStrs, d.Error())
		}
		if diff := cmp.Diff(want, gotStrs); diff != "" {
			t.Errorf("CheckClass(%s) differs from Check:\n%s", name, diff)
		}
	}
}

func TestCheckTrace(t *testing.T) {
	t.Parallel()
	var out strings.Builder
	arena := resolve(t, "interface I { fun f() }\nclass C : I")
	diags, err := Check(arena, Config{Trace: true, TraceOut: &out})
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if len(diags) != 1 {
		t.Fatalf("got\n%s\nexpected 1 diagnostic", diagsString(diags))
	}
	for _, want := range []string{"checkClass(C)", "---checkCompleteness(C)", "ABSTRACT_MEMBER_NOT_IMPLEMENTED"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("trace does not contain %q:\n%s", want, out.String())
		}
	}
}

func TestInternalErrorCycle(t *testing.T) {
	t.Parallel()
	var arena sym.Arena
	x := &sym.Class{Name: "X", Kind: sym.Interface}
	y := &sym.Class{Name: "Y", Kind: sym.Interface}
	arena.Add(x)
	arena.Add(y)
	x.Supers = []sym.Super{{Type: sym.ClassType(y)}}
	y.Supers = []sym.Super{{Type: sym.ClassType(x)}}
	diags, err := Check(&arena, Config{})
	if diags != nil {
		t.Errorf("got diagnostics %s", pretty.String(diags))
	}
	ierr, ok := errors.Cause(err).(*InternalError)
	if !ok {
		t.Fatalf("got %v (%T), expected an *InternalError", err, errors.Cause(err))
	}
	if !strings.Contains(ierr.Msg, "cycle") {
		t.Errorf("got %q, expected an inheritance cycle", ierr.Msg)
	}
}

func TestInternalErrorManyClassSupers(t *testing.T) {
	t.Parallel()
	var arena sym.Arena
	x := &sym.Class{Name: "X"}
	y := &sym.Class{Name: "Y", Modality: sym.Open}
	z := &sym.Class{Name: "Z", Modality: sym.Open}
	arena.Add(x)
	arena.Add(y)
	arena.Add(z)
	x.Supers = []sym.Super{{Type: sym.ClassType(y)}, {Type: sym.ClassType(z)}}
	_, err := CheckClass(&arena, x, Config{})
	ierr, ok := errors.Cause(err).(*InternalError)
	if !ok {
		t.Fatalf("got %v, expected an *InternalError", err)
	}
	if ierr.Class != x || !strings.Contains(ierr.Msg, "more than one class supertype") {
		t.Errorf("got %v", ierr)
	}
}

func TestInternalErrorSupersChanged(t *testing.T) {
	t.Parallel()
	arena := resolve(t, "interface I\nclass C : I")
	c := class(t, arena, "C")
	x := newChecker(arena, Config{Workers: 1})
	x.afterClass = func(k *sym.Class) {
		if k == c {
			k.Supers = k.Supers[:1]
		}
	}
	diags, err := x.check()
	if diags != nil {
		t.Errorf("got diagnostics %s", pretty.String(diags))
	}
	ierr, ok := errors.Cause(err).(*InternalError)
	if !ok {
		t.Fatalf("got %v, expected an *InternalError", err)
	}
	if ierr.Class != c || len(ierr.Before) != 2 || len(ierr.After) != 1 {
		t.Errorf("got %v", ierr)
	}
	if !regexp.MustCompile(`before: \[I, Any\]\n\tafter: \[I\]`).MatchString(ierr.Error()) {
		t.Errorf("got %q", ierr.Error())
	}
}

func TestBadWorkers(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic")
		}
	}()
	Check(&sym.Arena{}, Config{Workers: -1})
}
