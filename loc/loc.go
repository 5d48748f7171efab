// Copyright © 2020 The Pea Authors under an MIT-style license.

// Package loc has routines for tracking file locations.
package loc

import "fmt"

// A Range is a start and end byte offset.
type Range [2]int

// GetRange returns itself.
// This is useful so than Range can be embedded in a struct
// and that struct can implement interface{GetRange() Range}.
func (r Range) GetRange() Range { return r }

// A Loc describes a file location.
// The zero Loc is the location of built-in and synthesized declarations.
type Loc struct {
	Path string
	Line [2]int
	Col  [2]int
}

func (l Loc) String() string {
	switch {
	case l.IsZero():
		return "<builtin>"
	case l.Line[0] == l.Line[1] && l.Col[0] == l.Col[1]:
		return fmt.Sprintf("%s:%d.%d", l.Path, l.Line[0], l.Col[0])
	default:
		return fmt.Sprintf("%s:%d.%d-%d.%d", l.Path, l.Line[0], l.Col[0], l.Line[1], l.Col[1])
	}
}

// IsZero returns whether the Loc is the zero Loc.
func (l Loc) IsZero() bool { return l == Loc{} }

// Less returns whether l sorts before m:
// by path, then start line, then start column, then end.
func (l Loc) Less(m Loc) bool {
	switch {
	case l.Path != m.Path:
		return l.Path < m.Path
	case l.Line[0] != m.Line[0]:
		return l.Line[0] < m.Line[0]
	case l.Col[0] != m.Col[0]:
		return l.Col[0] < m.Col[0]
	case l.Line[1] != m.Line[1]:
		return l.Line[1] < m.Line[1]
	default:
		return l.Col[1] < m.Col[1]
	}
}

// Files tracks locations within a set of files.
type Files []File

// A File is a single file in a Files.
type File struct {
	Path  string
	Offs  int
	Len   int
	Lines []int
}

// Len returns the total length of all files.
func (fs Files) Len() int {
	if len(fs) == 0 {
		return 0
	}
	last := fs[len(fs)-1]
	return last.Offs + last.Len
}

// Add adds a new file to the set given its path and text.
// It returns the offset of the start of the file.
// Ranges of nodes parsed from the text are relative to this offset.
func (fs *Files) Add(path, text string) int {
	var lines []int
	offs := fs.Len()
	for i, r := range text {
		if r == '\n' {
			lines = append(lines, offs+i)
		}
	}
	*fs = append(*fs, File{
		Path:  path,
		Offs:  offs,
		Len:   len(text),
		Lines: lines,
	})
	return offs
}

// Loc returns the Loc of a Range.
// The zero Loc is returned if the Range is not within the Files.
func (fs Files) Loc(r Range) Loc {
	if len(fs) == 0 || r[0] < 0 || r[1] > fs.Len() || r[0] > r[1] {
		return Loc{}
	}
	var l Loc
	var spath, epath string
	end := r[1] - 1 // inclusive
	if end < r[0] {
		end = r[0]
	}
	spath, l.Line[0], l.Col[0] = fs.loc1(r[0])
	epath, l.Line[1], l.Col[1] = fs.loc1(end)
	if spath != epath {
		panic("impossible")
	}
	l.Path = spath
	return l
}

func (fs Files) loc1(p int) (string, int, int) {
	file := fs[0]
	for _, f := range fs {
		if f.Offs > p {
			break
		}
		file = f
	}
	line, col1 := 1, file.Offs-1
	for _, nl := range file.Lines {
		if nl >= p {
			break
		}
		col1 = nl
		line++
	}
	return file.Path, line, p - col1
}
