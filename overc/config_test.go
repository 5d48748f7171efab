// Copyright © 2020 The Pea Authors under an MIT-style license.

package main

import (
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReadConfig(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want config
		err  string // regexp, "" means no error
	}{
		{
			name: "empty",
			yaml: "",
			want: config{Color: "auto", Root: "."},
		},
		{
			name: "all fields",
			yaml: "workers: 4\ntrace: true\nwerror: true\ncolor: never\nroot: /src\n",
			want: config{Workers: 4, Trace: true, Werror: true, Color: "never", Root: "/src"},
		},
		{
			name: "partial keeps defaults",
			yaml: "workers: 2\n",
			want: config{Workers: 2, Color: "auto", Root: "."},
		},
		{
			name: "unknown field",
			yaml: "jobs: 3\n",
			err:  "field jobs not found",
		},
		{
			name: "negative workers",
			yaml: "workers: -1\n",
			err:  "workers must not be negative, got -1",
		},
		{
			name: "bad color",
			yaml: "color: sometimes\n",
			err:  `color must be auto, always, or never, got "sometimes"`,
		},
		{
			name: "empty root",
			yaml: "root: \"\"\n",
			err:  "root must not be empty",
		},
		{
			name: "bad type",
			yaml: "workers: many\n",
			err:  "cannot unmarshal",
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := readConfig(strings.NewReader(test.yaml))
			switch {
			case test.err == "" && err != nil:
				t.Fatalf("readConfig failed: %v", err)
			case test.err != "" && err == nil:
				t.Fatalf("readConfig succeeded, expected error matching %q", test.err)
			case test.err != "" && !regexp.MustCompile(test.err).MatchString(err.Error()):
				t.Fatalf("got error %v, expected matching %q", err, test.err)
			case test.err == "":
				if diff := cmp.Diff(test.want, cfg); diff != "" {
					t.Errorf("config mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := loadConfig("testdata/does-not-exist.yaml"); err == nil {
		t.Errorf("loadConfig succeeded on a missing file")
	}
}

func TestBoldNever(t *testing.T) {
	cfg := defaultConfig()
	cfg.Color = "never"
	if cfg.bold(nil) {
		t.Errorf("bold with color never")
	}
	cfg.Color = "always"
	if !cfg.bold(nil) {
		t.Errorf("not bold with color always")
	}
}
