// Copyright © 2020 The Pea Authors under an MIT-style license.

package loc

import "testing"

func TestFilesLoc(t *testing.T) {
	var fs Files
	if offs := fs.Add("a.decl", "abc\ndef\n"); offs != 0 {
		t.Fatalf("first offset is %d, want 0", offs)
	}
	if offs := fs.Add("b.decl", "xy\nz"); offs != 8 {
		t.Fatalf("second offset is %d, want 8", offs)
	}
	tests := []struct {
		rng  Range
		want string
	}{
		{Range{0, 1}, "a.decl:1.1"},
		{Range{0, 3}, "a.decl:1.1-1.3"},
		{Range{4, 7}, "a.decl:2.1-2.3"},
		{Range{2, 6}, "a.decl:1.3-2.2"},
		{Range{8, 10}, "b.decl:1.1-1.2"},
		{Range{11, 12}, "b.decl:2.1"},
		// Empty ranges are at their start.
		{Range{5, 5}, "a.decl:2.2"},
		{Range{0, 100}, "<builtin>"},
		{Range{-1, 2}, "<builtin>"},
		{Range{3, 2}, "<builtin>"},
	}
	for _, test := range tests {
		if got := fs.Loc(test.rng).String(); got != test.want {
			t.Errorf("Loc(%v)=%s, want %s", test.rng, got, test.want)
		}
	}
}

func TestEmptyFiles(t *testing.T) {
	var fs Files
	if l := fs.Loc(Range{0, 0}); !l.IsZero() {
		t.Errorf("got %v, want the zero Loc", l)
	}
}

func TestLess(t *testing.T) {
	tests := []struct {
		a, b Loc
		want bool
	}{
		{Loc{Path: "a"}, Loc{Path: "b"}, true},
		{Loc{Path: "b"}, Loc{Path: "a"}, false},
		{Loc{Path: "a", Line: [2]int{1, 1}}, Loc{Path: "a", Line: [2]int{2, 2}}, true},
		{Loc{Path: "a", Line: [2]int{1, 1}, Col: [2]int{5, 5}}, Loc{Path: "a", Line: [2]int{1, 1}, Col: [2]int{3, 3}}, false},
		{Loc{Path: "a", Line: [2]int{1, 1}, Col: [2]int{1, 2}}, Loc{Path: "a", Line: [2]int{1, 1}, Col: [2]int{1, 3}}, true},
		{Loc{Path: "a", Line: [2]int{1, 2}, Col: [2]int{1, 1}}, Loc{Path: "a", Line: [2]int{1, 1}, Col: [2]int{1, 9}}, false},
		{Loc{Path: "a"}, Loc{Path: "a"}, false},
	}
	for _, test := range tests {
		if got := test.a.Less(test.b); got != test.want {
			t.Errorf("%v.Less(%v)=%v, want %v", test.a, test.b, got, test.want)
		}
	}
}
