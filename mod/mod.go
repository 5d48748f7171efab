// Copyright © 2020 The Pea Authors under an MIT-style license.

// Package mod loads module declaration file lists
// along with dependency modules.
package mod

import (
	"bufio"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/willhansen/overcheck/decl"
	"github.com/willhansen/overcheck/loc"
)

// Ext is the file extension of declaration files.
const Ext = ".decl"

// A Mod contains information about the source for a single module.
type Mod struct {
	// ModPath is the module path as it would appear in an import statement.
	ModPath string
	// ModName is the base file name of ModPath.
	ModName string
	// SrcPath is the source file path.
	// This is path to the source file or directory of the module.
	SrcPath string
	// SrcDir may differ from SrcPath for the root module
	// if the root module is given as a .decl file, not a directory.
	SrcDir string
	// SrcFiles contains the source file paths in alphabetical order.
	SrcFiles []string

	// Deps are the module dependencies
	// in alphabetical order on ModPath.
	//
	// Deps is nil until after a call to LoadDeps.
	Deps []*Mod
}

// Load returns a *Mod for the module modPath, loaded from srcPath.
// srcPath may be either a .decl file or a directory of .decl files.
func Load(srcPath, modPath string) (*Mod, error) {
	srcPath, err := realPath(srcPath)
	if err != nil {
		return nil, err
	}
	srcFiles, srcDir, err := srcFiles(srcPath)
	if err != nil {
		return nil, err
	}
	return &Mod{
		ModPath:  modPath,
		ModName:  filepath.Base(modPath),
		SrcPath:  srcPath,
		SrcDir:   srcDir,
		SrcFiles: srcFiles,
	}, nil
}

func realPath(dir string) (string, error) {
	switch dir {
	case string([]rune{filepath.Separator}):
		return dir, nil
	case ".":
		return os.Getwd()
	default:
		base := filepath.Base(dir)
		dir, err := realPath(filepath.Dir(dir))
		if err != nil {
			return "", err
		}
		switch base {
		case ".":
			return dir, nil
		case "..":
			return filepath.Dir(dir), nil
		default:
			return filepath.Join(dir, base), nil
		}
	}
}

func srcFiles(srcPath string) ([]string, string, error) {
	srcFile, err := os.Open(srcPath)
	if err != nil {
		return nil, "", err
	}
	defer srcFile.Close()
	stat, err := srcFile.Stat()
	if err != nil {
		return nil, "", err
	}
	if !stat.IsDir() {
		return []string{srcPath}, filepath.Dir(srcPath), nil
	}
	finfos, err := srcFile.Readdir(-1)
	if err != nil {
		return nil, "", err
	}
	var paths []string
	for _, finfo := range finfos {
		if finfo.IsDir() || !strings.HasSuffix(finfo.Name(), Ext) {
			continue
		}
		paths = append(paths, filepath.Join(srcPath, finfo.Name()))
	}
	sort.Strings(paths)
	return paths, srcPath, nil
}

// LoadDeps loads the modules's dependencies, setting the Deps field.
// Dependencies are loaded transitively, so all modules in Deps
// also have their Deps loaded.
// Import paths are relative to the root directory.
func (m *Mod) LoadDeps(root string) error {
	seen := make(map[string]*Mod)
	seen[m.ModPath] = m
	var addDeps func(*Mod) error
	addDeps = func(m *Mod) error {
		depPaths, err := deps(m.SrcFiles)
		if err != nil {
			return err
		}
		for _, depPath := range depPaths {
			if depPath == decl.BuiltinMod {
				continue
			}
			if d, ok := seen[depPath]; ok {
				m.Deps = append(m.Deps, d)
				continue
			}
			d, err := Load(filepath.Join(root, depPath), depPath)
			if err != nil {
				return errors.Wrapf(err, "module %s imported by %s", depPath, m.ModPath)
			}
			m.Deps = append(m.Deps, d)
			seen[depPath] = d
			if err := addDeps(d); err != nil {
				return err
			}
		}
		return nil
	}
	return addDeps(m)
}

func deps(srcFiles []string) ([]string, error) {
	var deps []string
	for _, file := range srcFiles {
		ds, err := readImports(file)
		if err != nil {
			return nil, err
		}
		deps = append(deps, ds...)
	}

	sort.Strings(deps)

	var i int
	for _, d := range deps {
		if i == 0 || d != deps[i-1] {
			deps[i] = d
			i++
		}
	}
	return deps[:i], nil
}

func readImports(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decl.ReadImports(path, bufio.NewReader(f))
}

// TopologicalDeps returns the roots and their dependencies
// in topologically sorted order, with dependencies
// before their dependants.
// Each module appears once.
func TopologicalDeps(roots []*Mod) []*Mod {
	var sorted []*Mod
	seen := make(map[*Mod]bool)
	var add func(*Mod)
	add = func(m *Mod) {
		if seen[m] {
			return
		}
		seen[m] = true
		for _, d := range m.Deps {
			add(d)
		}
		sorted = append(sorted, m)
	}
	for _, r := range roots {
		add(r)
	}
	return sorted
}

// Parse parses the source files of the modules.
// All modules share a single loc.Files,
// so their locations do not overlap.
// Parsing stops at the first error.
func Parse(mods []*Mod) ([]*decl.Mod, error) {
	locs := new(loc.Files)
	var parsed []*decl.Mod
	for _, m := range mods {
		p := decl.NewParserWithLocs(m.ModPath, locs)
		for _, file := range m.SrcFiles {
			if err := p.ParseFile(file); err != nil {
				return nil, err
			}
		}
		parsed = append(parsed, p.Mod())
	}
	return parsed, nil
}
