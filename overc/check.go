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
)

type checkCmd struct {
	info
	loadFlags
	werror bool
}

func newCheckCmd() *checkCmd {
	return &checkCmd{
		info: newInfo("check", "check override and inheritance consistency",
			"check [flags] <module dir or .decl file>"),
	}
}

func (c *checkCmd) SetFlags(fs *flag.FlagSet) {
	c.loadFlags.set(fs)
	fs.BoolVar(&c.werror, "werror", false, "treat warnings as errors")
}

func (c *checkCmd) Execute(_ context.Context, fs *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if fs.NArg() != 1 {
		fs.Usage()
		return subcommands.ExitUsageError
	}
	cfg, err := c.config(fs)
	if err != nil {
		return c.fail("%v", err)
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "werror" {
			cfg.Werror = c.werror
		}
	})
	arena, err := c.load(cfg, fs.Arg(0))
	if err != nil {
		c.report(err)
		return subcommands.ExitFailure
	}
	diags, err := override.Check(arena, override.Config{
		Workers:  cfg.Workers,
		Trace:    cfg.Trace,
		TraceOut: os.Stderr,
	})
	if err != nil {
		return c.fail("%v", err)
	}
	nerr, nwarn := writeDiags(os.Stdout, diags, cfg.bold(os.Stdout))
	if c.verbose {
		fmt.Fprintf(os.Stderr, "%d errors, %d warnings\n", nerr, nwarn)
	}
	if nerr > 0 || cfg.Werror && nwarn > 0 {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// writeDiags writes one line per diagnostic:
// its location, kind tag, and message.
// It returns the number of errors and warnings written.
func writeDiags(w io.Writer, diags []override.Diag, bold bool) (nerr, nwarn int) {
	for _, d := range diags {
		l := d.Loc.String()
		if bold {
			l = "\x1b[1m" + l + "\x1b[0m"
		}
		kind := d.Kind.String()
		if d.Kind.Severity() == override.Warning {
			kind = "warning " + kind
			nwarn++
		} else {
			nerr++
		}
		fmt.Fprintf(w, "%s: %s: %s\n", l, kind, d.Message())
	}
	return nerr, nwarn
}
