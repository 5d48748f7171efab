// Copyright © 2020 The Pea Authors under an MIT-style license.

package decl

import (
	"sort"
	"strings"
	"testing"

	"bitbucket.org/creachadair/stringset"
	"github.com/eaburns/peggy/peg"
	"github.com/eaburns/pretty"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/willhansen/overcheck/loc"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []*Class
	}{
		{
			name: "empty",
			src:  "",
			want: nil,
		},
		{
			name: "comment only",
			src:  "// nothing here\n",
			want: nil,
		},
		{
			name: "empty class",
			src:  "class A",
			want: []*Class{{Kind: "class", Name: "A"}},
		},
		{
			name: "class kinds",
			src:  "interface I object O enum class E annotation class N",
			want: []*Class{
				{Kind: "interface", Name: "I"},
				{Kind: "object", Name: "O"},
				{Kind: "enum", Name: "E"},
				{Kind: "annotation", Name: "N"},
			},
		},
		{
			name: "class modifiers",
			src:  "private abstract expect class A @OptIn(X, Y) open class B",
			want: []*Class{
				{Mods: Mods{Vis: "private", Modality: "abstract", Expect: true}, Kind: "class", Name: "A"},
				{Mods: Mods{Modality: "open", OptIns: []string{"X", "Y"}}, Kind: "class", Name: "B"},
			},
		},
		{
			name: "type parameters",
			src:  "interface Map<in K : Comparable<K>, out V, T>",
			want: []*Class{{
				Kind: "interface",
				Name: "Map",
				TParms: []TParm{
					{Variance: "in", Name: "K", Bound: &TypeName{Name: "Comparable", Args: []TypeName{{Name: "K"}}}},
					{Variance: "out", Name: "V"},
					{Name: "T"},
				},
			}},
		},
		{
			name: "type parameter named in",
			src:  "class A<in>",
			want: []*Class{{Kind: "class", Name: "A", TParms: []TParm{{Name: "in"}}}},
		},
		{
			name: "supertypes",
			src:  "class C : B(), I by d, J<Int?>",
			want: []*Class{{
				Kind: "class",
				Name: "C",
				Supers: []Super{
					{Type: TypeName{Name: "B"}, Call: true},
					{Type: TypeName{Name: "I"}, By: "d"},
					{Type: TypeName{Name: "J", Args: []TypeName{{Name: "Int", Nullable: true}}}},
				},
			}},
		},
		{
			name: "functions",
			src: `interface I {
				fun f()
				suspend fun g(x: Int, y: error): String {}
				fun <T : Any> T.h(): T
			}`,
			want: []*Class{{
				Kind: "interface",
				Name: "I",
				Members: []*Member{
					{Kind: "fun", Name: "f"},
					{
						Mods:  Mods{Suspend: true},
						Kind:  "fun",
						Name:  "g",
						Parms: []Parm{{Name: "x", Type: TypeName{Name: "Int"}}, {Name: "y", Type: TypeName{Error: true}}},
						Ret:   &TypeName{Name: "String"},
						Body:  true,
					},
					{
						Kind:   "fun",
						TParms: []TParm{{Name: "T", Bound: &TypeName{Name: "Any"}}},
						Recv:   &TypeName{Name: "T"},
						Name:   "h",
						Ret:    &TypeName{Name: "T"},
					},
				},
			}},
		},
		{
			name: "properties",
			src: `open class A {
				val x: Int
				open var y: String private set
				protected var z: Int
				internal set
				var w: Int
				fun set(): Int
			}`,
			want: []*Class{{
				Mods: Mods{Modality: "open"},
				Kind: "class",
				Name: "A",
				Members: []*Member{
					{Kind: "val", Name: "x", Ret: &TypeName{Name: "Int"}},
					{Mods: Mods{Modality: "open"}, Kind: "var", Name: "y", Ret: &TypeName{Name: "String"}, Setter: &Setter{Vis: "private"}},
					{Mods: Mods{Vis: "protected"}, Kind: "var", Name: "z", Ret: &TypeName{Name: "Int"}, Setter: &Setter{Vis: "internal"}},
					{Kind: "var", Name: "w", Ret: &TypeName{Name: "Int"}},
					{Kind: "fun", Name: "set", Ret: &TypeName{Name: "Int"}},
				},
			}},
		},
		{
			name: "annotations",
			src: `class A {
				@Deprecated fun a()
				@Deprecated("use b2") fun b()
				@Deprecated("gone", HIDDEN) fun c()
				@Requires(Exp) @OptIn(Other) synthetic override fun d()
			}`,
			want: []*Class{{
				Kind: "class",
				Name: "A",
				Members: []*Member{
					{Mods: Mods{Deprecated: &Deprecated{}}, Kind: "fun", Name: "a"},
					{Mods: Mods{Deprecated: &Deprecated{Message: "use b2"}}, Kind: "fun", Name: "b"},
					{Mods: Mods{Deprecated: &Deprecated{Message: "gone", Level: "HIDDEN"}}, Kind: "fun", Name: "c"},
					{
						Mods: Mods{
							Override:  true,
							Synthetic: true,
							Requires:  []string{"Exp"},
							OptIns:    []string{"Other"},
						},
						Kind: "fun",
						Name: "d",
					},
				},
			}},
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			p := NewParser("test")
			if err := p.Parse("test.decl", strings.NewReader(test.src)); err != nil {
				t.Fatalf("failed to parse: %s", err)
			}
			got := p.Mod().Files[0].Classes
			opts := []cmp.Option{
				cmpopts.IgnoreTypes(loc.Range{}),
				cmpopts.EquateEmpty(),
			}
			if diff := cmp.Diff(test.want, got, opts...); diff != "" {
				t.Errorf("got:\n%s\ndiff (-want +got):\n%s", pretty.String(got), diff)
			}
		})
	}
}

func TestParseError(t *testing.T) {
	tests := []struct {
		name string
		src  string
		// loc is the line.column of the furthest failure.
		loc string
		// want are Want strings that must be among the leaf failures.
		want []string
	}{
		{
			name: "missing class keyword",
			src:  "open A",
			loc:  "1.6",
			want: []string{`"annotation"`, `"class"`, `"enum"`, `"interface"`, `"object"`, "modifier", `"@"`},
		},
		{
			name: "missing class name",
			src:  "class {}",
			loc:  "1.7",
			want: []string{"identifier"},
		},
		{
			name: "missing member kind",
			src:  "class A { x: Int }",
			loc:  "1.11",
			want: []string{`"fun"`, `"val"`, `"var"`, `"}"`},
		},
		{
			name: "unterminated body",
			src:  "class A { fun f()",
			loc:  "1.18",
			want: []string{`"}"`},
		},
		{
			name: "property without type",
			src:  "class A { val x }",
			loc:  "1.17",
			want: []string{`":"`},
		},
		{
			name: "import without string",
			src:  "import other",
			loc:  "1.8",
			want: []string{"string"},
		},
		{
			name: "bad escape",
			src:  `import "\q"`,
			loc:  "1.8",
			want: []string{"string"},
		},
		{
			name: "unknown annotation",
			src:  "@Foo class A",
			loc:  "1.2",
			want: []string{`"Deprecated"`, `"OptIn"`, `"Requires"`},
		},
		{
			name: "nullable receiver without dot",
			src:  "class A { fun Int?() }",
			loc:  "1.19",
			want: []string{`"."`},
		},
		{
			name: "unclosed type arguments",
			src:  "class A : List<Int {}",
			loc:  "1.20",
			want: []string{`">"`, `","`},
		},
		{
			name: "bad character",
			src:  "class A # B",
			loc:  "1.9",
			want: []string{`"class"`, `"{"`, "!."},
		},
		{
			name: "keyword prefix is not a keyword",
			src:  "classy A",
			loc:  "1.6",
			want: []string{"!IdentC"},
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			p := NewParser("test")
			err := p.Parse("test.decl", strings.NewReader(test.src))
			if err == nil {
				t.Fatalf("got nil, expected an error")
			}
			perr, ok := err.(parseError)
			if !ok {
				t.Fatalf("got %T, expected parseError", err)
			}
			if perr.Tree() == nil || perr.Tree().Name != "File" {
				t.Fatalf("got tree:\n%s\nexpected rooted at File", pretty.String(perr.Tree()))
			}
			if prefix := "test.decl:" + test.loc + ": "; !strings.HasPrefix(err.Error(), prefix) {
				t.Errorf("got error %q, expected prefix %q", err.Error(), prefix)
			}
			got := stringset.New(leafWants(perr.Tree())...)
			if missing := stringset.New(test.want...).Diff(got); !missing.Empty() {
				t.Errorf("got wants %v, missing %v", got.Elements(), missing.Elements())
			}
		})
	}
}

// leafWants returns the Want strings of the furthest leaf failures.
func leafWants(f *peg.Fail) []string {
	var wants []string
	for _, l := range peg.LeafFails(f) {
		wants = append(wants, l.Want)
	}
	sort.Strings(wants)
	return wants
}

func TestParseLocs(t *testing.T) {
	const src = `class A {
	fun f()
}
`
	var locs loc.Files
	locs.Add("before.decl", "// padding\n")
	p := NewParserWithLocs("test", &locs)
	if err := p.Parse("test.decl", strings.NewReader(src)); err != nil {
		t.Fatalf("failed to parse: %s", err)
	}
	mod := p.Mod()
	c := mod.Files[0].Classes[0]
	if got, want := mod.Loc(c).String(), "test.decl:1.1-3.1"; got != want {
		t.Errorf("class loc: got %s, want %s", got, want)
	}
	if got, want := mod.Loc(c.Members[0]).String(), "test.decl:2.2-2.8"; got != want {
		t.Errorf("member loc: got %s, want %s", got, want)
	}
}

func TestParseNoLocs(t *testing.T) {
	p := NewParserWithLocs("test", nil)
	if err := p.Parse("test.decl", strings.NewReader("class A")); err != nil {
		t.Fatalf("failed to parse: %s", err)
	}
	mod := p.Mod()
	if l := mod.Loc(mod.Files[0].Classes[0]); !l.IsZero() {
		t.Errorf("got %s, want the zero Loc", l)
	}
}

func TestReadImports(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
		err  bool
	}{
		{name: "none", src: "class A", want: nil},
		{name: "one", src: `import "a" class A`, want: []string{"a"}},
		{name: "many", src: "import \"a/b\"\nimport \"c\"\n", want: []string{"a/b", "c"}},
		{name: "rest is not parsed", src: `import "a" this is not { valid`, want: []string{"a"}},
		{name: "bad import", src: `import a`, err: true},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			got, err := ReadImports("test.decl", strings.NewReader(test.src))
			switch {
			case test.err && err == nil:
				t.Fatalf("got nil, expected an error")
			case !test.err && err != nil:
				t.Fatalf("got %v, expected nil", err)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("diff (-want +got):\n%s", diff)
			}
		})
	}
}
