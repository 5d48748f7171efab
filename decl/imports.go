// Copyright © 2020 The Pea Authors under an MIT-style license.

package decl

import (
	"io"
	"io/ioutil"
)

// ReadImports returns all import paths from the source given by an io.Reader.
// Only the leading imports are parsed; the rest of the file is not examined.
func ReadImports(path string, r io.Reader) ([]string, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	_p := _NewParser(string(data))
	_p.data = &Parser{}
	if pos, perr := _ImportsAccepts(_p, 0); pos < 0 {
		_, t := _ImportsFail(_p, 0, perr)
		return nil, parseError{path: path, loc: perr, text: _p.text, fail: t}
	}
	_, imps := _ImportsAction(_p, 0)
	var paths []string
	for _, imp := range *imps {
		paths = append(paths, imp.Path)
	}
	return paths, nil
}
