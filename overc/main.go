// Copyright © 2020 The Pea Authors under an MIT-style license.

// Overc checks the override and inheritance consistency
// of the classes declared in a module of .decl files.
//
// Examples:
//   # Check the module in the current directory.
//   overc check .
//   # Print the resolution scope of class C.
//   overc scope -class C c.decl
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/eaburns/peggy/peg"
	"github.com/google/subcommands"
	"github.com/pkg/errors"
	"github.com/willhansen/overcheck/decl"
	"github.com/willhansen/overcheck/mod"
	"github.com/willhansen/overcheck/sym"
)

func init() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(newCheckCmd(), "")
	subcommands.Register(newScopeCmd(), "")
	subcommands.Register(newDumpCmd(), "")
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("overc: ")
	flag.Parse()
	os.Exit(int(subcommands.Execute(context.Background())))
}

// info implements the name and documentation methods
// of subcommands.Command.
type info struct {
	name     string
	synopsis string
	usage    string
}

func newInfo(name, synopsis, usage string) info {
	if !strings.HasSuffix(usage, "\n") {
		usage += "\n"
	}
	return info{name: name, synopsis: synopsis, usage: usage}
}

func (i info) Name() string     { return i.name }
func (i info) Synopsis() string { return i.synopsis }
func (i info) Usage() string    { return i.usage + "\nOptions:\n" }

// fail logs an error message and returns subcommands.ExitFailure.
func (i info) fail(msg string, args ...interface{}) subcommands.ExitStatus {
	log.Output(2, fmt.Sprintf(i.name+": "+msg, args...))
	return subcommands.ExitFailure
}

// loadFlags are the flags common to all commands that load a module.
type loadFlags struct {
	configFile string
	modPath    string
	root       string
	workers    int
	trace      bool
	verbose    bool
}

func (f *loadFlags) set(fs *flag.FlagSet) {
	fs.StringVar(&f.configFile, "config", "", "YAML configuration file")
	fs.StringVar(&f.modPath, "path", "main", "the module path of the checked module")
	fs.StringVar(&f.root, "root", ".", "root directory for imported modules")
	fs.IntVar(&f.workers, "j", 0, "number of classes checked concurrently (0 for GOMAXPROCS)")
	fs.BoolVar(&f.trace, "trace", false, "enable checker tracing")
	fs.BoolVar(&f.verbose, "v", false, "enable verbose output")
}

// config returns the configuration file, if any,
// overridden by the flags set on the command line.
func (f *loadFlags) config(fs *flag.FlagSet) (config, error) {
	cfg := defaultConfig()
	if f.configFile != "" {
		var err error
		if cfg, err = loadConfig(f.configFile); err != nil {
			return config{}, err
		}
	}
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "root":
			cfg.Root = f.root
		case "j":
			cfg.Workers = f.workers
		case "trace":
			cfg.Trace = f.trace
		}
	})
	return cfg, cfg.validate()
}

// load loads, parses, and resolves the module at srcPath
// and its transitive imports.
// The returned error may be a parse error with a failure tree,
// or an errorList of resolution errors.
func (f *loadFlags) load(cfg config, srcPath string) (*sym.Arena, error) {
	root, err := mod.Load(srcPath, f.modPath)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", srcPath)
	}
	if err := root.LoadDeps(cfg.Root); err != nil {
		return nil, err
	}
	mods := mod.TopologicalDeps([]*mod.Mod{root})
	if f.verbose {
		for _, m := range mods {
			log.Printf("loaded %s: %d files", m.ModPath, len(m.SrcFiles))
		}
	}
	parsed, err := mod.Parse(mods)
	if err != nil {
		return nil, err
	}
	arena, errs := decl.Resolve(parsed...)
	if len(errs) > 0 {
		return nil, errorList(errs)
	}
	return arena, nil
}

// report prints a load error.
// In verbose mode, the failure tree of a parse error is printed too.
func (f *loadFlags) report(err error) {
	if pe, ok := errors.Cause(err).(interface{ Tree() *peg.Fail }); ok && f.verbose {
		peg.PrettyWrite(os.Stderr, pe.Tree())
		fmt.Fprintln(os.Stderr, "")
	}
	fmt.Fprintln(os.Stderr, err)
}

// classes returns the classes of module modPath,
// or only the class named name if name is non-empty.
func classes(arena *sym.Arena, modPath, name string) []*sym.Class {
	var cs []*sym.Class
	for _, c := range arena.Classes {
		if c.Module == modPath && (name == "" || c.Name == name) {
			cs = append(cs, c)
		}
	}
	return cs
}

type errorList []error

func (errs errorList) Error() string {
	var s strings.Builder
	for i, err := range errs {
		if i > 0 {
			s.WriteRune('\n')
		}
		s.WriteString(err.Error())
	}
	return s.String()
}
