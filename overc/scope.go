// Copyright © 2020 The Pea Authors under an MIT-style license.

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/willhansen/overcheck/override"
	"github.com/willhansen/overcheck/sym"
)

type scopeCmd struct {
	info
	loadFlags
	class string
}

func newScopeCmd() *scopeCmd {
	return &scopeCmd{
		info: newInfo("scope", "print the member resolution scopes of classes",
			"scope [flags] <module dir or .decl file>"),
	}
}

func (c *scopeCmd) SetFlags(fs *flag.FlagSet) {
	c.loadFlags.set(fs)
	fs.StringVar(&c.class, "class", "", "print only the class with this name")
}

func (c *scopeCmd) Execute(_ context.Context, fs *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if fs.NArg() != 1 {
		fs.Usage()
		return subcommands.ExitUsageError
	}
	cfg, err := c.config(fs)
	if err != nil {
		return c.fail("%v", err)
	}
	arena, err := c.load(cfg, fs.Arg(0))
	if err != nil {
		c.report(err)
		return subcommands.ExitFailure
	}
	cs := classes(arena, c.modPath, c.class)
	if len(cs) == 0 {
		return c.fail("no class %q in module %s", c.class, c.modPath)
	}
	ocfg := override.Config{Workers: cfg.Workers, Trace: cfg.Trace, TraceOut: os.Stderr}
	for _, class := range cs {
		sc, err := override.ScopeOf(arena, class, ocfg)
		if err != nil {
			return c.fail("%v", err)
		}
		writeScope(os.Stdout, sc)
	}
	return subcommands.ExitSuccess
}

// writeScope writes the members of a scope,
// each with its origin and the members it directly overrides.
func writeScope(w io.Writer, sc *override.Scope) {
	fmt.Fprintln(w, sc.Class.FullString())
	for _, m := range sc.Members {
		switch {
		case m.IsIntersection():
			fmt.Fprintf(w, "\tintersection %s\n", m.Sig())
			for _, c := range m.Intersects {
				fmt.Fprintf(w, "\t\tof %s\n", c)
			}
			continue
		case m.Owner == sc.Class && m.Delegate != nil:
			fmt.Fprintf(w, "\tdelegated %s by %s\n", m.Sig(), m.Delegate)
		case m.Owner == sc.Class:
			fmt.Fprintf(w, "\town %s\n", m.Sig())
		default:
			fmt.Fprintf(w, "\tinherited %s from %s\n", m, origin(sc, m))
		}
		for _, o := range sc.Overridden(m) {
			fmt.Fprintf(w, "\t\toverrides %s\n", o)
		}
		for _, d := range sc.Duplicates(m) {
			fmt.Fprintf(w, "\t\tduplicates %s\n", d)
		}
	}
}

func origin(sc *override.Scope, m *sym.Callable) string {
	if c := sc.Origin(m); c != nil {
		return c.Name
	}
	return "?"
}
