// Copyright © 2020 The Pea Authors under an MIT-style license.

package decl

import (
	"io"
	"io/ioutil"
	"os"

	"github.com/eaburns/peggy/peg"
	"github.com/willhansen/overcheck/loc"
)

// A Parser parses declaration files.
type Parser struct {
	files []File
	mod   string
	locs  *loc.Files
	// offs is the offset of the file being parsed
	// from the start of locs.
	offs int
}

// NewParser returns a new parser for the named module.
func NewParser(modPath string) *Parser {
	return &Parser{mod: modPath, locs: new(loc.Files)}
}

// NewParserWithLocs returns a new parser for the named module.
// The parser appends file location information to the given loc.Files.
// If the loc.Files is nil, nothing is appended,
// and all locations resolve to the zero loc.Loc.
func NewParserWithLocs(modPath string, locs *loc.Files) *Parser {
	return &Parser{mod: modPath, locs: locs}
}

// Mod returns the module built from the parsed files.
func (p *Parser) Mod() *Mod {
	return &Mod{Path: p.mod, Files: p.files, Locs: p.locs}
}

// Parse parses a file from an io.Reader.
// The first argument is the file path or "" if unspecified.
func (p *Parser) Parse(path string, r io.Reader) error {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return err
	}
	p.offs = 0
	if p.locs != nil {
		p.offs = p.locs.Len()
	}
	_p := _NewParser(string(data))
	_p.data = p
	if pos, perr := _FileAccepts(_p, 0); pos < 0 {
		_, t := _FileFail(_p, 0, perr)
		return parseError{path: path, loc: perr, text: _p.text, fail: t}
	}
	_, file := _FileAction(_p, 0)
	file.Path = path
	p.files = append(p.files, *file)
	if p.locs != nil {
		p.locs.Add(path, _p.text)
	}
	return nil
}

// ParseFile parses the source in the file specified by a path.
func (p *Parser) ParseFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return p.Parse(path, f)
}

type parseError struct {
	path string
	loc  int
	text string
	fail *peg.Fail
}

// Tree returns the failure tree of the parse error.
// It can be printed with peg.PrettyWrite.
func (err parseError) Tree() *peg.Fail { return err.fail }

func (err parseError) Error() string {
	e := peg.SimpleError(err.text, err.fail)
	e.FilePath = err.path
	return e.Error()
}
