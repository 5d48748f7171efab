// Copyright © 2020 The Pea Authors under an MIT-style license.

package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// config is the contents of a configuration file.
// Command line flags override its fields.
type config struct {
	// Workers is the number of classes checked concurrently;
	// 0 is GOMAXPROCS.
	Workers int `yaml:"workers"`
	Trace   bool `yaml:"trace"`
	// Werror makes warnings fail the check.
	Werror bool `yaml:"werror"`
	// Color is when locations are printed in bold:
	// auto (when stdout is a terminal), always, or never.
	Color string `yaml:"color"`
	// Root is the root directory for imported modules.
	Root string `yaml:"root"`
}

func defaultConfig() config {
	return config{Color: "auto", Root: "."}
}

func loadConfig(path string) (config, error) {
	f, err := os.Open(path)
	if err != nil {
		return config{}, err
	}
	defer f.Close()
	cfg, err := readConfig(f)
	if err != nil {
		return config{}, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// readConfig reads a YAML configuration.
// Fields not set by the YAML have their default values.
// Unknown fields are an error.
func readConfig(r io.Reader) (config, error) {
	cfg := defaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return config{}, err
	}
	return cfg, cfg.validate()
}

func (cfg config) validate() error {
	switch {
	case cfg.Workers < 0:
		return errors.Errorf("workers must not be negative, got %d", cfg.Workers)
	case cfg.Color != "auto" && cfg.Color != "always" && cfg.Color != "never":
		return errors.Errorf("color must be auto, always, or never, got %q", cfg.Color)
	case cfg.Root == "":
		return errors.New("root must not be empty")
	}
	return nil
}

// bold returns whether to print locations in bold to f.
func (cfg config) bold(f *os.File) bool {
	switch cfg.Color {
	case "always":
		return true
	case "never":
		return false
	default:
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
}
