// Copyright © 2020 The Pea Authors under an MIT-style license.

package mod

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEmptyModule(t *testing.T) {
	root := newFS(t, nil)
	m, err := Load(root, "foo")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(m.SrcFiles) > 0 {
		t.Errorf("len(m.SrcFiles)=%d, want 0", len(m.SrcFiles))
	}
}

func TestSourceFileModule(t *testing.T) {
	root := newFS(t, []file{
		{path: "foo.decl", body: ""},
	})
	m, err := Load(filepath.Join(root, "foo.decl"), "foo")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := []string{
		filepath.Join(root, "foo.decl"),
	}
	if diff := cmp.Diff(want, m.SrcFiles); diff != "" {
		t.Errorf("m.SrcFiles diff (-want +got):\n%s", diff)
	}
	if m.SrcDir != root {
		t.Errorf("m.SrcDir=%s, want %s", m.SrcDir, root)
	}
	if m.ModName != "foo" {
		t.Errorf("m.ModName=%s, want foo", m.ModName)
	}
}

func TestSourceFileNotFound(t *testing.T) {
	root := newFS(t, []file{
		{path: "foo.decl", body: ""},
	})
	if _, err := Load(filepath.Join(root, "nothing.decl"), "foo"); err == nil {
		t.Fatalf("Load() succeeded, wanted an error")
	}
}

func TestSourceDirModule(t *testing.T) {
	root := newFS(t, []file{
		{path: "foo.decl", body: ""},
		{path: "bar.decl", body: ""},
		{path: "baz.decl", body: ""},
		{path: "zzz.go", body: ""},
		{path: "sub/qux.decl", body: ""},
	})
	m, err := Load(root, "a/foo")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := []string{
		filepath.Join(root, "bar.decl"),
		filepath.Join(root, "baz.decl"),
		filepath.Join(root, "foo.decl"),
	}
	if diff := cmp.Diff(want, m.SrcFiles); diff != "" {
		t.Errorf("m.SrcFiles diff (-want +got):\n%s", diff)
	}
	if m.ModName != "foo" {
		t.Errorf("m.ModName=%s, want foo", m.ModName)
	}
}

func TestSourceDirIgnoreNonDeclFiles(t *testing.T) {
	root := newFS(t, []file{
		{path: "foo.decl", body: ""},
		{path: ".gitignore", body: ""},
		{path: "blah", body: ""},
		{path: "something.decl_something", body: ""},
		{path: "decl", body: ""},
	})
	m, err := Load(root, "foo")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := []string{
		filepath.Join(root, "foo.decl"),
	}
	if diff := cmp.Diff(want, m.SrcFiles); diff != "" {
		t.Errorf("m.SrcFiles diff (-want +got):\n%s", diff)
	}
}

func TestMalformedImport(t *testing.T) {
	root := newFS(t, []file{
		{path: "foo/foo.decl", body: `import "bar"`},
		{path: "bar/bar.decl", body: `import malformed_not_quoted`},
	})
	m, err := Load(filepath.Join(root, "foo"), "foo")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := m.LoadDeps(root); err == nil {
		t.Fatalf("LoadDeps succeeded, wanted an error")
	}
}

func TestMissingDep(t *testing.T) {
	root := newFS(t, []file{
		{path: "foo/foo.decl", body: `import "bar"`},
	})
	m, err := Load(filepath.Join(root, "foo"), "foo")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	err = m.LoadDeps(root)
	if err == nil {
		t.Fatalf("LoadDeps succeeded, wanted an error")
	}
	if !strings.Contains(err.Error(), "module bar imported by foo") {
		t.Errorf("got %v, want module bar imported by foo", err)
	}
}

func TestBuiltinImportIsNotLoaded(t *testing.T) {
	root := newFS(t, []file{
		{path: "foo/foo.decl", body: `import "builtin"`},
	})
	m, err := Load(filepath.Join(root, "foo"), "foo")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := m.LoadDeps(root); err != nil {
		t.Fatalf("LoadDeps failed: %v", err)
	}
	if len(m.Deps) != 0 {
		t.Errorf("len(m.Deps)=%d, want 0", len(m.Deps))
	}
}

func TestLoadDeps(t *testing.T) {
	root := newFS(t, []file{
		{path: "foo/foo.decl", body: `import "bar"`},
		{path: "bar/bar.decl", body: `import "baz"`},
		{path: "baz/baz.decl", body: ``},
	})
	foo, err := Load(filepath.Join(root, "foo"), "foo")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := foo.LoadDeps(root); err != nil {
		t.Fatalf("LoadDeps failed: %v", err)
	}
	if len(foo.Deps) != 1 {
		t.Fatalf("len(foo.Deps)=%d, want 1", len(foo.Deps))
	}

	bar := foo.Deps[0]
	if bar.ModPath != "bar" {
		t.Errorf("bar.ModPath=%v, want bar", bar.ModPath)
	}
	if len(bar.Deps) != 1 {
		t.Fatalf("len(bar.Deps)=%d, want 1", len(bar.Deps))
	}

	baz := bar.Deps[0]
	if baz.ModPath != "baz" {
		t.Errorf("baz.ModPath=%v, want baz", baz.ModPath)
	}
	if len(baz.Deps) != 0 {
		t.Errorf("len(baz.Deps)=%d, want 0", len(baz.Deps))
	}
}

func TestTopologicalDeps(t *testing.T) {
	root := newFS(t, []file{
		{
			path: "foo/foo.decl",
			body: `
				import "bar"
				import "baz"
			`,
		},
		{path: "bar/bar.decl", body: `import "baz"`},
		{path: "baz/baz.decl", body: ``},
	})
	foo, err := Load(filepath.Join(root, "foo"), "foo")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := foo.LoadDeps(root); err != nil {
		t.Fatalf("LoadDeps failed: %v", err)
	}

	var got []string
	for _, m := range TopologicalDeps([]*Mod{foo}) {
		got = append(got, m.ModPath)
	}
	if diff := cmp.Diff([]string{"baz", "bar", "foo"}, got); diff != "" {
		t.Errorf("diff (-want +got):\n%s", diff)
	}
}

func TestParse(t *testing.T) {
	root := newFS(t, []file{
		{path: "foo/foo.decl", body: "import \"bar\"\nclass Foo : Bar"},
		{path: "bar/bar.decl", body: "interface Bar"},
	})
	foo, err := Load(filepath.Join(root, "foo"), "foo")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := foo.LoadDeps(root); err != nil {
		t.Fatalf("LoadDeps failed: %v", err)
	}
	mods, err := Parse(TopologicalDeps([]*Mod{foo}))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(mods) != 2 || mods[0].Path != "bar" || mods[1].Path != "foo" {
		t.Fatalf("got %d modules, want bar then foo", len(mods))
	}
	fooClass := mods[1].Files[0].Classes[0]
	want := filepath.Join(root, "foo", "foo.decl") + ":2.1-2.15"
	if got := mods[1].Loc(fooClass).String(); got != want {
		t.Errorf("got loc %s, want %s", got, want)
	}
}

func TestParseError(t *testing.T) {
	root := newFS(t, []file{
		{path: "foo/foo.decl", body: "class"},
	})
	foo, err := Load(filepath.Join(root, "foo"), "foo")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, err := Parse([]*Mod{foo}); err == nil {
		t.Fatalf("Parse succeeded, wanted an error")
	}
}

type file struct {
	path string
	body string
}

// newFS creates the files in a temporary directory
// that is removed when the test ends.
// It returns the directory.
func newFS(t *testing.T, files []file) string {
	t.Helper()
	root := t.TempDir()
	for _, file := range files {
		path := filepath.Join(root, file.path)
		if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
			t.Fatalf("failed to create directory: %v", err)
		}
		if err := os.WriteFile(path, []byte(file.body), 0666); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}
	}
	return root
}
