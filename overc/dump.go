// Copyright © 2020 The Pea Authors under an MIT-style license.

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/eaburns/pretty"
	"github.com/google/subcommands"
	"github.com/willhansen/overcheck/sym"
)

type dumpCmd struct {
	info
	loadFlags
	class string
	all   bool
}

func newDumpCmd() *dumpCmd {
	return &dumpCmd{
		info: newInfo("dump", "pretty-print the resolved symbol model",
			"dump [flags] <module dir or .decl file>"),
	}
}

func (c *dumpCmd) SetFlags(fs *flag.FlagSet) {
	c.loadFlags.set(fs)
	fs.StringVar(&c.class, "class", "", "print only the class with this name")
	fs.BoolVar(&c.all, "all", false, "print the classes of imported modules too")
}

func (c *dumpCmd) Execute(_ context.Context, fs *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	var cs []*sym.Class
	if c.all {
		for _, class := range arena.Classes {
			if c.class == "" || class.Name == c.class {
				cs = append(cs, class)
			}
		}
	} else {
		cs = classes(arena, c.modPath, c.class)
	}
	writeDump(os.Stdout, cs)
	return subcommands.ExitSuccess
}

// The dump types are a view of the Symbol Model without back references,
// so they can be pretty-printed.

type classDump struct {
	ID       int
	Name     string
	Module   string
	Loc      string
	Kind     string
	Modality string
	Vis      string
	Expect   bool
	TParms   []string
	Supers   []string
	OptIns   []string
	Members  []memberDump
}

type memberDump struct {
	Sig        string
	Loc        string
	Kind       string
	Modality   string
	Vis        string
	SetterVis  string
	Override   bool
	Mutable    bool
	Suspend    bool
	Synthetic  bool
	Deprecated string
	Markers    []string
	OptIns     []string
}

func writeDump(w io.Writer, cs []*sym.Class) {
	pretty.Indent = "    "
	for _, c := range cs {
		fmt.Fprintln(w, pretty.String(dumpClass(c)))
	}
}

func dumpClass(c *sym.Class) classDump {
	d := classDump{
		ID:       int(c.ID),
		Name:     c.Name,
		Module:   c.Module,
		Loc:      c.Loc.String(),
		Kind:     c.Kind.String(),
		Modality: c.Modality.String(),
		Vis:      c.Vis.String(),
		Expect:   c.Expect,
		OptIns:   c.OptIns,
	}
	for _, p := range c.TParms {
		d.TParms = append(d.TParms, p.String())
	}
	for _, s := range c.Supers {
		str := s.Type.String()
		if s.By {
			str += " by " + s.Delegate
		}
		d.Supers = append(d.Supers, str)
	}
	for _, m := range c.Members {
		md := memberDump{
			Sig:       m.Sig(),
			Loc:       m.Loc.String(),
			Kind:      m.Kind.String(),
			Modality:  m.Modality.String(),
			Vis:       m.Vis.String(),
			Override:  m.Override,
			Mutable:   m.Mutable,
			Suspend:   m.Suspend,
			Synthetic: m.Synthetic,
			Markers:   m.Markers,
			OptIns:    m.OptIns,
		}
		if m.IsVar() {
			md.SetterVis = m.Setter().String()
		}
		if m.Deprecated != nil {
			md.Deprecated = m.Deprecated.Message
		}
		d.Members = append(d.Members, md)
	}
	return d
}
