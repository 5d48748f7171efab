// Copyright © 2020 The Pea Authors under an MIT-style license.

package decl

import (
	"strconv"

	"github.com/eaburns/peggy/peg"
	"github.com/willhansen/overcheck/loc"
)

// A modifier is a single modifier keyword or annotation.
type modifier struct {
	loc.Range
	word       string
	deprecated *Deprecated
	requires   string
	optIns     []string
}

type recvName struct {
	recv *TypeName
	name string
}

func rng(p *_Parser, start, end int) loc.Range {
	offs := p.data.(*Parser).offs
	return loc.Range{start + offs, end + offs}
}

func newMods(ms []modifier) Mods {
	var mods Mods
	for i, m := range ms {
		if i == 0 {
			mods.Range[0] = m.Range[0]
		}
		mods.Range[1] = m.Range[1]
		switch {
		case m.deprecated != nil:
			mods.Deprecated = m.deprecated
		case m.requires != "":
			mods.Requires = append(mods.Requires, m.requires)
		case m.optIns != nil:
			mods.OptIns = append(mods.OptIns, m.optIns...)
		case m.word == "public" || m.word == "protected" || m.word == "internal" || m.word == "private":
			mods.Vis = m.word
		case m.word == "override":
			mods.Override = true
		case m.word == "expect":
			mods.Expect = true
		case m.word == "suspend":
			mods.Suspend = true
		case m.word == "synthetic":
			mods.Synthetic = true
		default:
			mods.Modality = m.word
		}
	}
	return mods
}

const (
	_File           int = 0
	_Imports        int = 1
	_Import         int = 2
	_Class          int = 3
	_ClassKind      int = 4
	_Supers         int = 5
	_Super          int = 6
	_Body           int = 7
	_Mods           int = 8
	_Mod            int = 9
	_Modifier       int = 10
	_Annot          int = 11
	_AnnotBody      int = 12
	_DeprecatedArgs int = 13
	_Member         int = 14
	_Fun            int = 15
	_Prop           int = 16
	_RecvName       int = 17
	_Setter         int = 18
	_SetterVis      int = 19
	_Vis            int = 20
	_Parms          int = 21
	_ParmList       int = 22
	_Parm           int = 23
	_TParms         int = 24
	_TParm          int = 25
	_Variance       int = 26
	_TypeName       int = 27
	_TypeArgs       int = 28
	_String         int = 29
	_Ident          int = 30
	_IdentC         int = 31
	__              int = 32
	_Space          int = 33
	_Comment        int = 34
	_EOF            int = 35
	_N              int = 36
)

type _Parser struct {
	text     string
	deltaPos [][_N]int32
	deltaErr [][_N]int32
	node     map[_key]*peg.Node
	fail     map[_key]*peg.Fail
	act      map[_key]interface{}
	lastFail int
	data     interface{}
}

type _key struct {
	start int
	rule  int
}

func _NewParser(text string) *_Parser {
	return &_Parser{
		text:     text,
		deltaPos: make([][_N]int32, len(text)+1),
		deltaErr: make([][_N]int32, len(text)+1),
		node:     make(map[_key]*peg.Node),
		fail:     make(map[_key]*peg.Fail),
		act:      make(map[_key]interface{}),
	}
}

func _max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func _memoize(parser *_Parser, rule, start, pos, perr int) (int, int) {
	parser.lastFail = perr
	derr := perr - start
	parser.deltaErr[start][rule] = int32(derr + 1)
	if pos >= 0 {
		dpos := pos - start
		parser.deltaPos[start][rule] = int32(dpos + 1)
		return dpos, derr
	}
	parser.deltaPos[start][rule] = -1
	return -1, derr
}

func _memo(parser *_Parser, rule, start int) (int, int, bool) {
	dp := parser.deltaPos[start][rule]
	if dp == 0 {
		return 0, 0, false
	}
	if dp > 0 {
		dp--
	}
	de := parser.deltaErr[start][rule] - 1
	return int(dp), int(de), true
}

func _failMemo(parser *_Parser, rule, start, errPos int) (int, *peg.Fail) {
	if start > parser.lastFail {
		return -1, &peg.Fail{}
	}
	dp := parser.deltaPos[start][rule]
	de := parser.deltaErr[start][rule]
	if start+int(de-1) < errPos {
		if dp > 0 {
			return start + int(dp-1), &peg.Fail{}
		}
		return -1, &peg.Fail{}
	}
	f := parser.fail[_key{start: start, rule: rule}]
	if dp < 0 && f != nil {
		return -1, f
	}
	if dp > 0 && f != nil {
		return start + int(dp-1), f
	}
	return start, nil
}

func _accept(parser *_Parser, f func(*_Parser, int) (int, int), pos, perr *int) bool {
	dp, de := f(parser, *pos)
	*perr = _max(*perr, *pos+de)
	if dp < 0 {
		return false
	}
	*pos += dp
	return true
}

func _node(parser *_Parser, f func(*_Parser, int) (int, *peg.Node), node *peg.Node, pos *int) bool {
	p, kid := f(parser, *pos)
	if kid == nil {
		return false
	}
	node.Kids = append(node.Kids, kid)
	*pos = p
	return true
}

func _fail(parser *_Parser, f func(*_Parser, int, int) (int, *peg.Fail), errPos int, node *peg.Fail, pos *int) bool {
	p, kid := f(parser, *pos, errPos)
	if kid.Want != "" || len(kid.Kids) > 0 {
		node.Kids = append(node.Kids, kid)
	}
	if p < 0 {
		return false
	}
	*pos = p
	return true
}

func _next(parser *_Parser, pos int) (rune, int) {
	r, w := peg.DecodeRuneInString(parser.text[pos:])
	return r, w
}

func _sub(parser *_Parser, start, end int, kids []*peg.Node) *peg.Node {
	node := &peg.Node{
		Text: parser.text[start:end],
		Kids: make([]*peg.Node, len(kids)),
	}
	copy(node.Kids, kids)
	return node
}

func _leaf(parser *_Parser, start, end int) *peg.Node {
	return &peg.Node{Text: parser.text[start:end]}
}

// A no-op function to mark a variable as used.
func use(interface{}) {}

func _FileAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [2]string
	use(labels)
	if dp, de, ok := _memo(parser, _File, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// imports:Import* classes:Class* _ EOF
	// imports:Import*
	{
		pos1 := pos
		// Import*
		for {
			pos3 := pos
			// Import
			if !_accept(parser, _ImportAccepts, &pos, &perr) {
				goto fail5
			}
			continue
		fail5:
			pos = pos3
			break
		}
		labels[0] = parser.text[pos1:pos]
	}
	// classes:Class*
	{
		pos6 := pos
		// Class*
		for {
			pos8 := pos
			// Class
			if !_accept(parser, _ClassAccepts, &pos, &perr) {
				goto fail10
			}
			continue
		fail10:
			pos = pos8
			break
		}
		labels[1] = parser.text[pos6:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// EOF
	if !_accept(parser, _EOFAccepts, &pos, &perr) {
		goto fail
	}
	return _memoize(parser, _File, start, pos, perr)
fail:
	return _memoize(parser, _File, start, -1, perr)
}

func _FileFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [2]string
	use(labels)
	pos, failure := _failMemo(parser, _File, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "File",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _File}
	// action
	// imports:Import* classes:Class* _ EOF
	// imports:Import*
	{
		pos1 := pos
		// Import*
		for {
			pos3 := pos
			// Import
			if !_fail(parser, _ImportFail, errPos, failure, &pos) {
				goto fail5
			}
			continue
		fail5:
			pos = pos3
			break
		}
		labels[0] = parser.text[pos1:pos]
	}
	// classes:Class*
	{
		pos6 := pos
		// Class*
		for {
			pos8 := pos
			// Class
			if !_fail(parser, _ClassFail, errPos, failure, &pos) {
				goto fail10
			}
			continue
		fail10:
			pos = pos8
			break
		}
		labels[1] = parser.text[pos6:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// EOF
	if !_fail(parser, _EOFFail, errPos, failure, &pos) {
		goto fail
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _FileAction(parser *_Parser, start int) (int, *File) {
	var labels [2]string
	use(labels)
	var label0 []Import
	var label1 []Class
	dp := parser.deltaPos[start][_File]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _File}
	n := parser.act[key]
	if n != nil {
		n := n.(File)
		return start + int(dp-1), &n
	}
	var node File
	pos := start
	// action
	{
		start0 := pos
		// imports:Import* classes:Class* _ EOF
		// imports:Import*
		{
			pos2 := pos
			// Import*
			for {
				pos4 := pos
				var node5 Import
				// Import
				if p, n := _ImportAction(parser, pos); n == nil {
					goto fail6
				} else {
					node5 = *n
					pos = p
				}
				label0 = append(label0, node5)
				continue
			fail6:
				pos = pos4
				break
			}
			labels[0] = parser.text[pos2:pos]
		}
		// classes:Class*
		{
			pos7 := pos
			// Class*
			for {
				pos9 := pos
				var node10 Class
				// Class
				if p, n := _ClassAction(parser, pos); n == nil {
					goto fail11
				} else {
					node10 = *n
					pos = p
				}
				label1 = append(label1, node10)
				continue
			fail11:
				pos = pos9
				break
			}
			labels[1] = parser.text[pos7:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// EOF
		if p, n := _EOFAction(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		node = func(
			start, end int, classes []Class, imports []Import) File {
			cs := make([]*Class, len(classes))
			for i := range classes {
				cs[i] = &classes[i]
			}
			return File{Imports: imports, Classes: cs}
		}(
			start0, pos, label1, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _ImportsAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _Imports, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// imports:Import* !(_ "import" !IdentC)
	// imports:Import*
	{
		pos1 := pos
		// Import*
		for {
			pos3 := pos
			// Import
			if !_accept(parser, _ImportAccepts, &pos, &perr) {
				goto fail5
			}
			continue
		fail5:
			pos = pos3
			break
		}
		labels[0] = parser.text[pos1:pos]
	}
	// !(_ "import" !IdentC)
	{
		pos7 := pos
		perr9 := perr
		// (_ "import" !IdentC)
		// _ "import" !IdentC
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto ok6
		}
		// "import"
		if len(parser.text[pos:]) < 6 || parser.text[pos:pos+6] != "import" {
			perr = _max(perr, pos)
			goto ok6
		}
		pos += 6
		// !IdentC
		{
			pos12 := pos
			perr14 := perr
			// IdentC
			if !_accept(parser, _IdentCAccepts, &pos, &perr) {
				goto ok11
			}
			pos = pos12
			perr = _max(perr14, pos)
			goto ok6
		ok11:
			pos = pos12
			perr = perr14
		}
		pos = pos7
		perr = _max(perr9, pos)
		goto fail
	ok6:
		pos = pos7
		perr = perr9
	}
	return _memoize(parser, _Imports, start, pos, perr)
fail:
	return _memoize(parser, _Imports, start, -1, perr)
}

func _ImportsFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _Imports, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Imports",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Imports}
	// action
	// imports:Import* !(_ "import" !IdentC)
	// imports:Import*
	{
		pos1 := pos
		// Import*
		for {
			pos3 := pos
			// Import
			if !_fail(parser, _ImportFail, errPos, failure, &pos) {
				goto fail5
			}
			continue
		fail5:
			pos = pos3
			break
		}
		labels[0] = parser.text[pos1:pos]
	}
	// !(_ "import" !IdentC)
	{
		pos7 := pos
		nkids8 := len(failure.Kids)
		// (_ "import" !IdentC)
		// _ "import" !IdentC
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto ok6
		}
		// "import"
		if len(parser.text[pos:]) < 6 || parser.text[pos:pos+6] != "import" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\"import\"",
					})
			}
			goto ok6
		}
		pos += 6
		// !IdentC
		{
			pos12 := pos
			nkids13 := len(failure.Kids)
			// IdentC
			if !_fail(parser, _IdentCFail, errPos, failure, &pos) {
				goto ok11
			}
			pos = pos12
			failure.Kids = failure.Kids[:nkids13]
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "!IdentC",
					})
			}
			goto ok6
		ok11:
			pos = pos12
			failure.Kids = failure.Kids[:nkids13]
		}
		pos = pos7
		failure.Kids = failure.Kids[:nkids8]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "!(_ \"import\" !IdentC)",
				})
		}
		goto fail
	ok6:
		pos = pos7
		failure.Kids = failure.Kids[:nkids8]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _ImportsAction(parser *_Parser, start int) (int, *[]Import) {
	var labels [1]string
	use(labels)
	var label0 []Import
	dp := parser.deltaPos[start][_Imports]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Imports}
	n := parser.act[key]
	if n != nil {
		n := n.([]Import)
		return start + int(dp-1), &n
	}
	var node []Import
	pos := start
	// action
	{
		start0 := pos
		// imports:Import* !(_ "import" !IdentC)
		// imports:Import*
		{
			pos2 := pos
			// Import*
			for {
				pos4 := pos
				var node5 Import
				// Import
				if p, n := _ImportAction(parser, pos); n == nil {
					goto fail6
				} else {
					node5 = *n
					pos = p
				}
				label0 = append(label0, node5)
				continue
			fail6:
				pos = pos4
				break
			}
			labels[0] = parser.text[pos2:pos]
		}
		// !(_ "import" !IdentC)
		{
			pos8 := pos
			// (_ "import" !IdentC)
			// _ "import" !IdentC
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto ok7
			} else {
				pos = p
			}
			// "import"
			if len(parser.text[pos:]) < 6 || parser.text[pos:pos+6] != "import" {
				goto ok7
			}
			pos += 6
			// !IdentC
			{
				pos13 := pos
				// IdentC
				if p, n := _IdentCAction(parser, pos); n == nil {
					goto ok12
				} else {
					pos = p
				}
				pos = pos13
				goto ok7
			ok12:
				pos = pos13
			}
			pos = pos8
			goto fail
		ok7:
			pos = pos8
		}
		node = func(
			start, end int, imports []Import) []Import {
			return []Import(imports)
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _ImportAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [2]string
	use(labels)
	if dp, de, ok := _memo(parser, _Import, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// _ i:("import" !IdentC _ path:String {…})
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// i:("import" !IdentC _ path:String {…})
	{
		pos1 := pos
		// ("import" !IdentC _ path:String {…})
		// action
		// "import" !IdentC _ path:String
		// "import"
		if len(parser.text[pos:]) < 6 || parser.text[pos:pos+6] != "import" {
			perr = _max(perr, pos)
			goto fail
		}
		pos += 6
		// !IdentC
		{
			pos4 := pos
			perr6 := perr
			// IdentC
			if !_accept(parser, _IdentCAccepts, &pos, &perr) {
				goto ok3
			}
			pos = pos4
			perr = _max(perr6, pos)
			goto fail
		ok3:
			pos = pos4
			perr = perr6
		}
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail
		}
		// path:String
		{
			pos7 := pos
			// String
			if !_accept(parser, _StringAccepts, &pos, &perr) {
				goto fail
			}
			labels[0] = parser.text[pos7:pos]
		}
		labels[1] = parser.text[pos1:pos]
	}
	return _memoize(parser, _Import, start, pos, perr)
fail:
	return _memoize(parser, _Import, start, -1, perr)
}

func _ImportFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [2]string
	use(labels)
	pos, failure := _failMemo(parser, _Import, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Import",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Import}
	// action
	// _ i:("import" !IdentC _ path:String {…})
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// i:("import" !IdentC _ path:String {…})
	{
		pos1 := pos
		// ("import" !IdentC _ path:String {…})
		// action
		// "import" !IdentC _ path:String
		// "import"
		if len(parser.text[pos:]) < 6 || parser.text[pos:pos+6] != "import" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\"import\"",
					})
			}
			goto fail
		}
		pos += 6
		// !IdentC
		{
			pos4 := pos
			nkids5 := len(failure.Kids)
			// IdentC
			if !_fail(parser, _IdentCFail, errPos, failure, &pos) {
				goto ok3
			}
			pos = pos4
			failure.Kids = failure.Kids[:nkids5]
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "!IdentC",
					})
			}
			goto fail
		ok3:
			pos = pos4
			failure.Kids = failure.Kids[:nkids5]
		}
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail
		}
		// path:String
		{
			pos7 := pos
			// String
			if !_fail(parser, _StringFail, errPos, failure, &pos) {
				goto fail
			}
			labels[0] = parser.text[pos7:pos]
		}
		labels[1] = parser.text[pos1:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _ImportAction(parser *_Parser, start int) (int, *Import) {
	var labels [2]string
	use(labels)
	var label0 string
	var label1 Import
	dp := parser.deltaPos[start][_Import]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Import}
	n := parser.act[key]
	if n != nil {
		n := n.(Import)
		return start + int(dp-1), &n
	}
	var node Import
	pos := start
	// action
	{
		start0 := pos
		// _ i:("import" !IdentC _ path:String {…})
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// i:("import" !IdentC _ path:String {…})
		{
			pos2 := pos
			// ("import" !IdentC _ path:String {…})
			// action
			{
				start3 := pos
				// "import" !IdentC _ path:String
				// "import"
				if len(parser.text[pos:]) < 6 || parser.text[pos:pos+6] != "import" {
					goto fail
				}
				pos += 6
				// !IdentC
				{
					pos6 := pos
					// IdentC
					if p, n := _IdentCAction(parser, pos); n == nil {
						goto ok5
					} else {
						pos = p
					}
					pos = pos6
					goto fail
				ok5:
					pos = pos6
				}
				// _
				if p, n := __Action(parser, pos); n == nil {
					goto fail
				} else {
					pos = p
				}
				// path:String
				{
					pos9 := pos
					// String
					if p, n := _StringAction(parser, pos); n == nil {
						goto fail
					} else {
						label0 = *n
						pos = p
					}
					labels[0] = parser.text[pos9:pos]
				}
				label1 = func(
					start, end int, path string) Import {
					return Import{Range: rng(parser, start, end), Path: path}
				}(
					start3, pos, label0)
			}
			labels[1] = parser.text[pos2:pos]
		}
		node = func(
			start, end int, i Import, path string) Import {
			return Import(i)
		}(
			start0, pos, label1, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _ClassAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [7]string
	use(labels)
	if dp, de, ok := _memo(parser, _Class, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// _ c:(mods:Mods _ kind:ClassKind _ name:Ident tparms:TParms? supers:Supers? body:Body? {…})
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// c:(mods:Mods _ kind:ClassKind _ name:Ident tparms:TParms? supers:Supers? body:Body? {…})
	{
		pos1 := pos
		// (mods:Mods _ kind:ClassKind _ name:Ident tparms:TParms? supers:Supers? body:Body? {…})
		// action
		// mods:Mods _ kind:ClassKind _ name:Ident tparms:TParms? supers:Supers? body:Body?
		// mods:Mods
		{
			pos3 := pos
			// Mods
			if !_accept(parser, _ModsAccepts, &pos, &perr) {
				goto fail
			}
			labels[0] = parser.text[pos3:pos]
		}
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail
		}
		// kind:ClassKind
		{
			pos4 := pos
			// ClassKind
			if !_accept(parser, _ClassKindAccepts, &pos, &perr) {
				goto fail
			}
			labels[1] = parser.text[pos4:pos]
		}
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail
		}
		// name:Ident
		{
			pos5 := pos
			// Ident
			if !_accept(parser, _IdentAccepts, &pos, &perr) {
				goto fail
			}
			labels[2] = parser.text[pos5:pos]
		}
		// tparms:TParms?
		{
			pos6 := pos
			// TParms?
			{
				pos8 := pos
				// TParms
				if !_accept(parser, _TParmsAccepts, &pos, &perr) {
					goto fail9
				}
				goto ok10
			fail9:
				pos = pos8
			ok10:
			}
			labels[3] = parser.text[pos6:pos]
		}
		// supers:Supers?
		{
			pos11 := pos
			// Supers?
			{
				pos13 := pos
				// Supers
				if !_accept(parser, _SupersAccepts, &pos, &perr) {
					goto fail14
				}
				goto ok15
			fail14:
				pos = pos13
			ok15:
			}
			labels[4] = parser.text[pos11:pos]
		}
		// body:Body?
		{
			pos16 := pos
			// Body?
			{
				pos18 := pos
				// Body
				if !_accept(parser, _BodyAccepts, &pos, &perr) {
					goto fail19
				}
				goto ok20
			fail19:
				pos = pos18
			ok20:
			}
			labels[5] = parser.text[pos16:pos]
		}
		labels[6] = parser.text[pos1:pos]
	}
	return _memoize(parser, _Class, start, pos, perr)
fail:
	return _memoize(parser, _Class, start, -1, perr)
}

func _ClassFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [7]string
	use(labels)
	pos, failure := _failMemo(parser, _Class, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Class",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Class}
	// action
	// _ c:(mods:Mods _ kind:ClassKind _ name:Ident tparms:TParms? supers:Supers? body:Body? {…})
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// c:(mods:Mods _ kind:ClassKind _ name:Ident tparms:TParms? supers:Supers? body:Body? {…})
	{
		pos1 := pos
		// (mods:Mods _ kind:ClassKind _ name:Ident tparms:TParms? supers:Supers? body:Body? {…})
		// action
		// mods:Mods _ kind:ClassKind _ name:Ident tparms:TParms? supers:Supers? body:Body?
		// mods:Mods
		{
			pos3 := pos
			// Mods
			if !_fail(parser, _ModsFail, errPos, failure, &pos) {
				goto fail
			}
			labels[0] = parser.text[pos3:pos]
		}
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail
		}
		// kind:ClassKind
		{
			pos4 := pos
			// ClassKind
			if !_fail(parser, _ClassKindFail, errPos, failure, &pos) {
				goto fail
			}
			labels[1] = parser.text[pos4:pos]
		}
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail
		}
		// name:Ident
		{
			pos5 := pos
			// Ident
			if !_fail(parser, _IdentFail, errPos, failure, &pos) {
				goto fail
			}
			labels[2] = parser.text[pos5:pos]
		}
		// tparms:TParms?
		{
			pos6 := pos
			// TParms?
			{
				pos8 := pos
				// TParms
				if !_fail(parser, _TParmsFail, errPos, failure, &pos) {
					goto fail9
				}
				goto ok10
			fail9:
				pos = pos8
			ok10:
			}
			labels[3] = parser.text[pos6:pos]
		}
		// supers:Supers?
		{
			pos11 := pos
			// Supers?
			{
				pos13 := pos
				// Supers
				if !_fail(parser, _SupersFail, errPos, failure, &pos) {
					goto fail14
				}
				goto ok15
			fail14:
				pos = pos13
			ok15:
			}
			labels[4] = parser.text[pos11:pos]
		}
		// body:Body?
		{
			pos16 := pos
			// Body?
			{
				pos18 := pos
				// Body
				if !_fail(parser, _BodyFail, errPos, failure, &pos) {
					goto fail19
				}
				goto ok20
			fail19:
				pos = pos18
			ok20:
			}
			labels[5] = parser.text[pos16:pos]
		}
		labels[6] = parser.text[pos1:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _ClassAction(parser *_Parser, start int) (int, *Class) {
	var labels [7]string
	use(labels)
	var label0 Mods
	var label1 string
	var label2 string
	var label3 *[]TParm
	var label4 *[]Super
	var label5 *[]*Member
	var label6 Class
	dp := parser.deltaPos[start][_Class]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Class}
	n := parser.act[key]
	if n != nil {
		n := n.(Class)
		return start + int(dp-1), &n
	}
	var node Class
	pos := start
	// action
	{
		start0 := pos
		// _ c:(mods:Mods _ kind:ClassKind _ name:Ident tparms:TParms? supers:Supers? body:Body? {…})
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// c:(mods:Mods _ kind:ClassKind _ name:Ident tparms:TParms? supers:Supers? body:Body? {…})
		{
			pos2 := pos
			// (mods:Mods _ kind:ClassKind _ name:Ident tparms:TParms? supers:Supers? body:Body? {…})
			// action
			{
				start3 := pos
				// mods:Mods _ kind:ClassKind _ name:Ident tparms:TParms? supers:Supers? body:Body?
				// mods:Mods
				{
					pos5 := pos
					// Mods
					if p, n := _ModsAction(parser, pos); n == nil {
						goto fail
					} else {
						label0 = *n
						pos = p
					}
					labels[0] = parser.text[pos5:pos]
				}
				// _
				if p, n := __Action(parser, pos); n == nil {
					goto fail
				} else {
					pos = p
				}
				// kind:ClassKind
				{
					pos6 := pos
					// ClassKind
					if p, n := _ClassKindAction(parser, pos); n == nil {
						goto fail
					} else {
						label1 = *n
						pos = p
					}
					labels[1] = parser.text[pos6:pos]
				}
				// _
				if p, n := __Action(parser, pos); n == nil {
					goto fail
				} else {
					pos = p
				}
				// name:Ident
				{
					pos7 := pos
					// Ident
					if p, n := _IdentAction(parser, pos); n == nil {
						goto fail
					} else {
						label2 = *n
						pos = p
					}
					labels[2] = parser.text[pos7:pos]
				}
				// tparms:TParms?
				{
					pos8 := pos
					// TParms?
					{
						pos10 := pos
						label3 = new([]TParm)
						// TParms
						if p, n := _TParmsAction(parser, pos); n == nil {
							goto fail11
						} else {
							*label3 = *n
							pos = p
						}
						goto ok12
					fail11:
						label3 = nil
						pos = pos10
					ok12:
					}
					labels[3] = parser.text[pos8:pos]
				}
				// supers:Supers?
				{
					pos13 := pos
					// Supers?
					{
						pos15 := pos
						label4 = new([]Super)
						// Supers
						if p, n := _SupersAction(parser, pos); n == nil {
							goto fail16
						} else {
							*label4 = *n
							pos = p
						}
						goto ok17
					fail16:
						label4 = nil
						pos = pos15
					ok17:
					}
					labels[4] = parser.text[pos13:pos]
				}
				// body:Body?
				{
					pos18 := pos
					// Body?
					{
						pos20 := pos
						label5 = new([]*Member)
						// Body
						if p, n := _BodyAction(parser, pos); n == nil {
							goto fail21
						} else {
							*label5 = *n
							pos = p
						}
						goto ok22
					fail21:
						label5 = nil
						pos = pos20
					ok22:
					}
					labels[5] = parser.text[pos18:pos]
				}
				label6 = func(
					start, end int, body *[]*Member, kind string, mods Mods, name string, supers *[]Super, tparms *[]TParm) Class {
					c := Class{
						Range: rng(parser, start, end),
						Mods:  mods,
						Kind:  kind,
						Name:  name,
					}
					if tparms != nil {
						c.TParms = *tparms
					}
					if supers != nil {
						c.Supers = *supers
					}
					if body != nil {
						c.Members = *body
					}
					return Class(c)
				}(
					start3, pos, label5, label1, label0, label2, label4, label3)
			}
			labels[6] = parser.text[pos2:pos]
		}
		node = func(
			start, end int, body *[]*Member, c Class, kind string, mods Mods, name string, supers *[]Super, tparms *[]TParm) Class {
			return Class(c)
		}(
			start0, pos, label5, label6, label1, label0, label2, label4, label3)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _ClassKindAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _ClassKind, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// k:("class"/"interface"/"object") !IdentC {…}/"enum" !IdentC _ "class" !IdentC {…}/"annotation" !IdentC _ "class" !IdentC {…}
	{
		pos3 := pos
		// action
		// k:("class"/"interface"/"object") !IdentC
		// k:("class"/"interface"/"object")
		{
			pos6 := pos
			// ("class"/"interface"/"object")
			// "class"/"interface"/"object"
			{
				pos10 := pos
				// "class"
				if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "class" {
					perr = _max(perr, pos)
					goto fail11
				}
				pos += 5
				goto ok7
			fail11:
				pos = pos10
				// "interface"
				if len(parser.text[pos:]) < 9 || parser.text[pos:pos+9] != "interface" {
					perr = _max(perr, pos)
					goto fail12
				}
				pos += 9
				goto ok7
			fail12:
				pos = pos10
				// "object"
				if len(parser.text[pos:]) < 6 || parser.text[pos:pos+6] != "object" {
					perr = _max(perr, pos)
					goto fail13
				}
				pos += 6
				goto ok7
			fail13:
				pos = pos10
				goto fail4
			ok7:
			}
			labels[0] = parser.text[pos6:pos]
		}
		// !IdentC
		{
			pos15 := pos
			perr17 := perr
			// IdentC
			if !_accept(parser, _IdentCAccepts, &pos, &perr) {
				goto ok14
			}
			pos = pos15
			perr = _max(perr17, pos)
			goto fail4
		ok14:
			pos = pos15
			perr = perr17
		}
		goto ok0
	fail4:
		pos = pos3
		// action
		// "enum" !IdentC _ "class" !IdentC
		// "enum"
		if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "enum" {
			perr = _max(perr, pos)
			goto fail18
		}
		pos += 4
		// !IdentC
		{
			pos21 := pos
			perr23 := perr
			// IdentC
			if !_accept(parser, _IdentCAccepts, &pos, &perr) {
				goto ok20
			}
			pos = pos21
			perr = _max(perr23, pos)
			goto fail18
		ok20:
			pos = pos21
			perr = perr23
		}
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail18
		}
		// "class"
		if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "class" {
			perr = _max(perr, pos)
			goto fail18
		}
		pos += 5
		// !IdentC
		{
			pos25 := pos
			perr27 := perr
			// IdentC
			if !_accept(parser, _IdentCAccepts, &pos, &perr) {
				goto ok24
			}
			pos = pos25
			perr = _max(perr27, pos)
			goto fail18
		ok24:
			pos = pos25
			perr = perr27
		}
		goto ok0
	fail18:
		pos = pos3
		// action
		// "annotation" !IdentC _ "class" !IdentC
		// "annotation"
		if len(parser.text[pos:]) < 10 || parser.text[pos:pos+10] != "annotation" {
			perr = _max(perr, pos)
			goto fail28
		}
		pos += 10
		// !IdentC
		{
			pos31 := pos
			perr33 := perr
			// IdentC
			if !_accept(parser, _IdentCAccepts, &pos, &perr) {
				goto ok30
			}
			pos = pos31
			perr = _max(perr33, pos)
			goto fail28
		ok30:
			pos = pos31
			perr = perr33
		}
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail28
		}
		// "class"
		if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "class" {
			perr = _max(perr, pos)
			goto fail28
		}
		pos += 5
		// !IdentC
		{
			pos35 := pos
			perr37 := perr
			// IdentC
			if !_accept(parser, _IdentCAccepts, &pos, &perr) {
				goto ok34
			}
			pos = pos35
			perr = _max(perr37, pos)
			goto fail28
		ok34:
			pos = pos35
			perr = perr37
		}
		goto ok0
	fail28:
		pos = pos3
		goto fail
	ok0:
	}
	return _memoize(parser, _ClassKind, start, pos, perr)
fail:
	return _memoize(parser, _ClassKind, start, -1, perr)
}

func _ClassKindFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _ClassKind, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "ClassKind",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _ClassKind}
	// k:("class"/"interface"/"object") !IdentC {…}/"enum" !IdentC _ "class" !IdentC {…}/"annotation" !IdentC _ "class" !IdentC {…}
	{
		pos3 := pos
		// action
		// k:("class"/"interface"/"object") !IdentC
		// k:("class"/"interface"/"object")
		{
			pos6 := pos
			// ("class"/"interface"/"object")
			// "class"/"interface"/"object"
			{
				pos10 := pos
				// "class"
				if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "class" {
					if pos >= errPos {
						failure.Kids = append(failure.Kids, &peg.Fail{
								Pos:  int(pos),
								Want: "\"class\"",
							})
					}
					goto fail11
				}
				pos += 5
				goto ok7
			fail11:
				pos = pos10
				// "interface"
				if len(parser.text[pos:]) < 9 || parser.text[pos:pos+9] != "interface" {
					if pos >= errPos {
						failure.Kids = append(failure.Kids, &peg.Fail{
								Pos:  int(pos),
								Want: "\"interface\"",
							})
					}
					goto fail12
				}
				pos += 9
				goto ok7
			fail12:
				pos = pos10
				// "object"
				if len(parser.text[pos:]) < 6 || parser.text[pos:pos+6] != "object" {
					if pos >= errPos {
						failure.Kids = append(failure.Kids, &peg.Fail{
								Pos:  int(pos),
								Want: "\"object\"",
							})
					}
					goto fail13
				}
				pos += 6
				goto ok7
			fail13:
				pos = pos10
				goto fail4
			ok7:
			}
			labels[0] = parser.text[pos6:pos]
		}
		// !IdentC
		{
			pos15 := pos
			nkids16 := len(failure.Kids)
			// IdentC
			if !_fail(parser, _IdentCFail, errPos, failure, &pos) {
				goto ok14
			}
			pos = pos15
			failure.Kids = failure.Kids[:nkids16]
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "!IdentC",
					})
			}
			goto fail4
		ok14:
			pos = pos15
			failure.Kids = failure.Kids[:nkids16]
		}
		goto ok0
	fail4:
		pos = pos3
		// action
		// "enum" !IdentC _ "class" !IdentC
		// "enum"
		if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "enum" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\"enum\"",
					})
			}
			goto fail18
		}
		pos += 4
		// !IdentC
		{
			pos21 := pos
			nkids22 := len(failure.Kids)
			// IdentC
			if !_fail(parser, _IdentCFail, errPos, failure, &pos) {
				goto ok20
			}
			pos = pos21
			failure.Kids = failure.Kids[:nkids22]
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "!IdentC",
					})
			}
			goto fail18
		ok20:
			pos = pos21
			failure.Kids = failure.Kids[:nkids22]
		}
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail18
		}
		// "class"
		if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "class" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\"class\"",
					})
			}
			goto fail18
		}
		pos += 5
		// !IdentC
		{
			pos25 := pos
			nkids26 := len(failure.Kids)
			// IdentC
			if !_fail(parser, _IdentCFail, errPos, failure, &pos) {
				goto ok24
			}
			pos = pos25
			failure.Kids = failure.Kids[:nkids26]
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "!IdentC",
					})
			}
			goto fail18
		ok24:
			pos = pos25
			failure.Kids = failure.Kids[:nkids26]
		}
		goto ok0
	fail18:
		pos = pos3
		// action
		// "annotation" !IdentC _ "class" !IdentC
		// "annotation"
		if len(parser.text[pos:]) < 10 || parser.text[pos:pos+10] != "annotation" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\"annotation\"",
					})
			}
			goto fail28
		}
		pos += 10
		// !IdentC
		{
			pos31 := pos
			nkids32 := len(failure.Kids)
			// IdentC
			if !_fail(parser, _IdentCFail, errPos, failure, &pos) {
				goto ok30
			}
			pos = pos31
			failure.Kids = failure.Kids[:nkids32]
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "!IdentC",
					})
			}
			goto fail28
		ok30:
			pos = pos31
			failure.Kids = failure.Kids[:nkids32]
		}
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail28
		}
		// "class"
		if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "class" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\"class\"",
					})
			}
			goto fail28
		}
		pos += 5
		// !IdentC
		{
			pos35 := pos
			nkids36 := len(failure.Kids)
			// IdentC
			if !_fail(parser, _IdentCFail, errPos, failure, &pos) {
				goto ok34
			}
			pos = pos35
			failure.Kids = failure.Kids[:nkids36]
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "!IdentC",
					})
			}
			goto fail28
		ok34:
			pos = pos35
			failure.Kids = failure.Kids[:nkids36]
		}
		goto ok0
	fail28:
		pos = pos3
		goto fail
	ok0:
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _ClassKindAction(parser *_Parser, start int) (int, *string) {
	var labels [1]string
	use(labels)
	var label0 string
	dp := parser.deltaPos[start][_ClassKind]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _ClassKind}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// k:("class"/"interface"/"object") !IdentC {…}/"enum" !IdentC _ "class" !IdentC {…}/"annotation" !IdentC _ "class" !IdentC {…}
	{
		pos3 := pos
		var node2 string
		// action
		{
			start5 := pos
			// k:("class"/"interface"/"object") !IdentC
			// k:("class"/"interface"/"object")
			{
				pos7 := pos
				// ("class"/"interface"/"object")
				// "class"/"interface"/"object"
				{
					pos11 := pos
					var node10 string
					// "class"
					if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "class" {
						goto fail12
					}
					label0 = parser.text[pos:pos+5]
					pos += 5
					goto ok8
				fail12:
					label0 = node10
					pos = pos11
					// "interface"
					if len(parser.text[pos:]) < 9 || parser.text[pos:pos+9] != "interface" {
						goto fail13
					}
					label0 = parser.text[pos:pos+9]
					pos += 9
					goto ok8
				fail13:
					label0 = node10
					pos = pos11
					// "object"
					if len(parser.text[pos:]) < 6 || parser.text[pos:pos+6] != "object" {
						goto fail14
					}
					label0 = parser.text[pos:pos+6]
					pos += 6
					goto ok8
				fail14:
					label0 = node10
					pos = pos11
					goto fail4
				ok8:
				}
				labels[0] = parser.text[pos7:pos]
			}
			// !IdentC
			{
				pos16 := pos
				// IdentC
				if p, n := _IdentCAction(parser, pos); n == nil {
					goto ok15
				} else {
					pos = p
				}
				pos = pos16
				goto fail4
			ok15:
				pos = pos16
			}
			node = func(
				start, end int, k string) string {
				return string(k)
			}(
				start5, pos, label0)
		}
		goto ok0
	fail4:
		node = node2
		pos = pos3
		// action
		{
			start20 := pos
			// "enum" !IdentC _ "class" !IdentC
			// "enum"
			if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "enum" {
				goto fail19
			}
			pos += 4
			// !IdentC
			{
				pos23 := pos
				// IdentC
				if p, n := _IdentCAction(parser, pos); n == nil {
					goto ok22
				} else {
					pos = p
				}
				pos = pos23
				goto fail19
			ok22:
				pos = pos23
			}
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail19
			} else {
				pos = p
			}
			// "class"
			if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "class" {
				goto fail19
			}
			pos += 5
			// !IdentC
			{
				pos27 := pos
				// IdentC
				if p, n := _IdentCAction(parser, pos); n == nil {
					goto ok26
				} else {
					pos = p
				}
				pos = pos27
				goto fail19
			ok26:
				pos = pos27
			}
			node = func(
				start, end int, k string) string {
				return "enum"
			}(
				start20, pos, label0)
		}
		goto ok0
	fail19:
		node = node2
		pos = pos3
		// action
		{
			start31 := pos
			// "annotation" !IdentC _ "class" !IdentC
			// "annotation"
			if len(parser.text[pos:]) < 10 || parser.text[pos:pos+10] != "annotation" {
				goto fail30
			}
			pos += 10
			// !IdentC
			{
				pos34 := pos
				// IdentC
				if p, n := _IdentCAction(parser, pos); n == nil {
					goto ok33
				} else {
					pos = p
				}
				pos = pos34
				goto fail30
			ok33:
				pos = pos34
			}
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail30
			} else {
				pos = p
			}
			// "class"
			if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "class" {
				goto fail30
			}
			pos += 5
			// !IdentC
			{
				pos38 := pos
				// IdentC
				if p, n := _IdentCAction(parser, pos); n == nil {
					goto ok37
				} else {
					pos = p
				}
				pos = pos38
				goto fail30
			ok37:
				pos = pos38
			}
			node = func(
				start, end int, k string) string {
				return "annotation"
			}(
				start31, pos, label0)
		}
		goto ok0
	fail30:
		node = node2
		pos = pos3
		goto fail
	ok0:
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _SupersAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [3]string
	use(labels)
	if dp, de, ok := _memo(parser, _Supers, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// _ ":" s0:Super ss:(_ "," s:Super {…})*
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// ":"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ":" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// s0:Super
	{
		pos1 := pos
		// Super
		if !_accept(parser, _SuperAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// ss:(_ "," s:Super {…})*
	{
		pos2 := pos
		// (_ "," s:Super {…})*
		for {
			pos4 := pos
			// (_ "," s:Super {…})
			// action
			// _ "," s:Super
			// _
			if !_accept(parser, __Accepts, &pos, &perr) {
				goto fail6
			}
			// ","
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
				perr = _max(perr, pos)
				goto fail6
			}
			pos++
			// s:Super
			{
				pos8 := pos
				// Super
				if !_accept(parser, _SuperAccepts, &pos, &perr) {
					goto fail6
				}
				labels[1] = parser.text[pos8:pos]
			}
			continue
		fail6:
			pos = pos4
			break
		}
		labels[2] = parser.text[pos2:pos]
	}
	return _memoize(parser, _Supers, start, pos, perr)
fail:
	return _memoize(parser, _Supers, start, -1, perr)
}

func _SupersFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [3]string
	use(labels)
	pos, failure := _failMemo(parser, _Supers, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Supers",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Supers}
	// action
	// _ ":" s0:Super ss:(_ "," s:Super {…})*
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// ":"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ":" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\":\"",
				})
		}
		goto fail
	}
	pos++
	// s0:Super
	{
		pos1 := pos
		// Super
		if !_fail(parser, _SuperFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// ss:(_ "," s:Super {…})*
	{
		pos2 := pos
		// (_ "," s:Super {…})*
		for {
			pos4 := pos
			// (_ "," s:Super {…})
			// action
			// _ "," s:Super
			// _
			if !_fail(parser, __Fail, errPos, failure, &pos) {
				goto fail6
			}
			// ","
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
							Pos:  int(pos),
							Want: "\",\"",
						})
				}
				goto fail6
			}
			pos++
			// s:Super
			{
				pos8 := pos
				// Super
				if !_fail(parser, _SuperFail, errPos, failure, &pos) {
					goto fail6
				}
				labels[1] = parser.text[pos8:pos]
			}
			continue
		fail6:
			pos = pos4
			break
		}
		labels[2] = parser.text[pos2:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _SupersAction(parser *_Parser, start int) (int, *[]Super) {
	var labels [3]string
	use(labels)
	var label0 Super
	var label1 Super
	var label2 []Super
	dp := parser.deltaPos[start][_Supers]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Supers}
	n := parser.act[key]
	if n != nil {
		n := n.([]Super)
		return start + int(dp-1), &n
	}
	var node []Super
	pos := start
	// action
	{
		start0 := pos
		// _ ":" s0:Super ss:(_ "," s:Super {…})*
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// ":"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ":" {
			goto fail
		}
		pos++
		// s0:Super
		{
			pos2 := pos
			// Super
			if p, n := _SuperAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos2:pos]
		}
		// ss:(_ "," s:Super {…})*
		{
			pos3 := pos
			// (_ "," s:Super {…})*
			for {
				pos5 := pos
				var node6 Super
				// (_ "," s:Super {…})
				// action
				{
					start8 := pos
					// _ "," s:Super
					// _
					if p, n := __Action(parser, pos); n == nil {
						goto fail7
					} else {
						pos = p
					}
					// ","
					if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
						goto fail7
					}
					pos++
					// s:Super
					{
						pos10 := pos
						// Super
						if p, n := _SuperAction(parser, pos); n == nil {
							goto fail7
						} else {
							label1 = *n
							pos = p
						}
						labels[1] = parser.text[pos10:pos]
					}
					node6 = func(
						start, end int, s Super, s0 Super) Super {
						return Super(s)
					}(
						start8, pos, label1, label0)
				}
				label2 = append(label2, node6)
				continue
			fail7:
				pos = pos5
				break
			}
			labels[2] = parser.text[pos3:pos]
		}
		node = func(
			start, end int, s Super, s0 Super, ss []Super) []Super {
			return []Super(append([]Super{s0}, ss...))
		}(
			start0, pos, label1, label0, label2)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _SuperAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [5]string
	use(labels)
	if dp, de, ok := _memo(parser, _Super, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// _ sup:(t:TypeName call:(_ "(" _ ")")? by:(_ "by" !IdentC _ name:Ident {…})? {…})
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// sup:(t:TypeName call:(_ "(" _ ")")? by:(_ "by" !IdentC _ name:Ident {…})? {…})
	{
		pos1 := pos
		// (t:TypeName call:(_ "(" _ ")")? by:(_ "by" !IdentC _ name:Ident {…})? {…})
		// action
		// t:TypeName call:(_ "(" _ ")")? by:(_ "by" !IdentC _ name:Ident {…})?
		// t:TypeName
		{
			pos3 := pos
			// TypeName
			if !_accept(parser, _TypeNameAccepts, &pos, &perr) {
				goto fail
			}
			labels[0] = parser.text[pos3:pos]
		}
		// call:(_ "(" _ ")")?
		{
			pos4 := pos
			// (_ "(" _ ")")?
			{
				pos6 := pos
				// (_ "(" _ ")")
				// _ "(" _ ")"
				// _
				if !_accept(parser, __Accepts, &pos, &perr) {
					goto fail7
				}
				// "("
				if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "(" {
					perr = _max(perr, pos)
					goto fail7
				}
				pos++
				// _
				if !_accept(parser, __Accepts, &pos, &perr) {
					goto fail7
				}
				// ")"
				if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
					perr = _max(perr, pos)
					goto fail7
				}
				pos++
				goto ok9
			fail7:
				pos = pos6
			ok9:
			}
			labels[1] = parser.text[pos4:pos]
		}
		// by:(_ "by" !IdentC _ name:Ident {…})?
		{
			pos10 := pos
			// (_ "by" !IdentC _ name:Ident {…})?
			{
				pos12 := pos
				// (_ "by" !IdentC _ name:Ident {…})
				// action
				// _ "by" !IdentC _ name:Ident
				// _
				if !_accept(parser, __Accepts, &pos, &perr) {
					goto fail13
				}
				// "by"
				if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "by" {
					perr = _max(perr, pos)
					goto fail13
				}
				pos += 2
				// !IdentC
				{
					pos16 := pos
					perr18 := perr
					// IdentC
					if !_accept(parser, _IdentCAccepts, &pos, &perr) {
						goto ok15
					}
					pos = pos16
					perr = _max(perr18, pos)
					goto fail13
				ok15:
					pos = pos16
					perr = perr18
				}
				// _
				if !_accept(parser, __Accepts, &pos, &perr) {
					goto fail13
				}
				// name:Ident
				{
					pos19 := pos
					// Ident
					if !_accept(parser, _IdentAccepts, &pos, &perr) {
						goto fail13
					}
					labels[2] = parser.text[pos19:pos]
				}
				goto ok20
			fail13:
				pos = pos12
			ok20:
			}
			labels[3] = parser.text[pos10:pos]
		}
		labels[4] = parser.text[pos1:pos]
	}
	return _memoize(parser, _Super, start, pos, perr)
fail:
	return _memoize(parser, _Super, start, -1, perr)
}

func _SuperFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [5]string
	use(labels)
	pos, failure := _failMemo(parser, _Super, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Super",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Super}
	// action
	// _ sup:(t:TypeName call:(_ "(" _ ")")? by:(_ "by" !IdentC _ name:Ident {…})? {…})
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// sup:(t:TypeName call:(_ "(" _ ")")? by:(_ "by" !IdentC _ name:Ident {…})? {…})
	{
		pos1 := pos
		// (t:TypeName call:(_ "(" _ ")")? by:(_ "by" !IdentC _ name:Ident {…})? {…})
		// action
		// t:TypeName call:(_ "(" _ ")")? by:(_ "by" !IdentC _ name:Ident {…})?
		// t:TypeName
		{
			pos3 := pos
			// TypeName
			if !_fail(parser, _TypeNameFail, errPos, failure, &pos) {
				goto fail
			}
			labels[0] = parser.text[pos3:pos]
		}
		// call:(_ "(" _ ")")?
		{
			pos4 := pos
			// (_ "(" _ ")")?
			{
				pos6 := pos
				// (_ "(" _ ")")
				// _ "(" _ ")"
				// _
				if !_fail(parser, __Fail, errPos, failure, &pos) {
					goto fail7
				}
				// "("
				if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "(" {
					if pos >= errPos {
						failure.Kids = append(failure.Kids, &peg.Fail{
								Pos:  int(pos),
								Want: "\"(\"",
							})
					}
					goto fail7
				}
				pos++
				// _
				if !_fail(parser, __Fail, errPos, failure, &pos) {
					goto fail7
				}
				// ")"
				if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
					if pos >= errPos {
						failure.Kids = append(failure.Kids, &peg.Fail{
								Pos:  int(pos),
								Want: "\")\"",
							})
					}
					goto fail7
				}
				pos++
				goto ok9
			fail7:
				pos = pos6
			ok9:
			}
			labels[1] = parser.text[pos4:pos]
		}
		// by:(_ "by" !IdentC _ name:Ident {…})?
		{
			pos10 := pos
			// (_ "by" !IdentC _ name:Ident {…})?
			{
				pos12 := pos
				// (_ "by" !IdentC _ name:Ident {…})
				// action
				// _ "by" !IdentC _ name:Ident
				// _
				if !_fail(parser, __Fail, errPos, failure, &pos) {
					goto fail13
				}
				// "by"
				if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "by" {
					if pos >= errPos {
						failure.Kids = append(failure.Kids, &peg.Fail{
								Pos:  int(pos),
								Want: "\"by\"",
							})
					}
					goto fail13
				}
				pos += 2
				// !IdentC
				{
					pos16 := pos
					nkids17 := len(failure.Kids)
					// IdentC
					if !_fail(parser, _IdentCFail, errPos, failure, &pos) {
						goto ok15
					}
					pos = pos16
					failure.Kids = failure.Kids[:nkids17]
					if pos >= errPos {
						failure.Kids = append(failure.Kids, &peg.Fail{
								Pos:  int(pos),
								Want: "!IdentC",
							})
					}
					goto fail13
				ok15:
					pos = pos16
					failure.Kids = failure.Kids[:nkids17]
				}
				// _
				if !_fail(parser, __Fail, errPos, failure, &pos) {
					goto fail13
				}
				// name:Ident
				{
					pos19 := pos
					// Ident
					if !_fail(parser, _IdentFail, errPos, failure, &pos) {
						goto fail13
					}
					labels[2] = parser.text[pos19:pos]
				}
				goto ok20
			fail13:
				pos = pos12
			ok20:
			}
			labels[3] = parser.text[pos10:pos]
		}
		labels[4] = parser.text[pos1:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _SuperAction(parser *_Parser, start int) (int, *Super) {
	var labels [5]string
	use(labels)
	var label0 TypeName
	var label1 string
	var label2 string
	var label3 string
	var label4 Super
	dp := parser.deltaPos[start][_Super]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Super}
	n := parser.act[key]
	if n != nil {
		n := n.(Super)
		return start + int(dp-1), &n
	}
	var node Super
	pos := start
	// action
	{
		start0 := pos
		// _ sup:(t:TypeName call:(_ "(" _ ")")? by:(_ "by" !IdentC _ name:Ident {…})? {…})
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// sup:(t:TypeName call:(_ "(" _ ")")? by:(_ "by" !IdentC _ name:Ident {…})? {…})
		{
			pos2 := pos
			// (t:TypeName call:(_ "(" _ ")")? by:(_ "by" !IdentC _ name:Ident {…})? {…})
			// action
			{
				start3 := pos
				// t:TypeName call:(_ "(" _ ")")? by:(_ "by" !IdentC _ name:Ident {…})?
				// t:TypeName
				{
					pos5 := pos
					// TypeName
					if p, n := _TypeNameAction(parser, pos); n == nil {
						goto fail
					} else {
						label0 = *n
						pos = p
					}
					labels[0] = parser.text[pos5:pos]
				}
				// call:(_ "(" _ ")")?
				{
					pos6 := pos
					// (_ "(" _ ")")?
					{
						pos8 := pos
						// (_ "(" _ ")")
						// _ "(" _ ")"
						{
							var node10 string
							// _
							if p, n := __Action(parser, pos); n == nil {
								goto fail9
							} else {
								node10 = *n
								pos = p
							}
							label1, node10 = label1+node10, ""
							// "("
							if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "(" {
								goto fail9
							}
							node10 = parser.text[pos:pos+1]
							pos++
							label1, node10 = label1+node10, ""
							// _
							if p, n := __Action(parser, pos); n == nil {
								goto fail9
							} else {
								node10 = *n
								pos = p
							}
							label1, node10 = label1+node10, ""
							// ")"
							if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
								goto fail9
							}
							node10 = parser.text[pos:pos+1]
							pos++
							label1, node10 = label1+node10, ""
						}
						goto ok11
					fail9:
						label1 = ""
						pos = pos8
					ok11:
					}
					labels[1] = parser.text[pos6:pos]
				}
				// by:(_ "by" !IdentC _ name:Ident {…})?
				{
					pos12 := pos
					// (_ "by" !IdentC _ name:Ident {…})?
					{
						pos14 := pos
						// (_ "by" !IdentC _ name:Ident {…})
						// action
						{
							start16 := pos
							// _ "by" !IdentC _ name:Ident
							// _
							if p, n := __Action(parser, pos); n == nil {
								goto fail15
							} else {
								pos = p
							}
							// "by"
							if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "by" {
								goto fail15
							}
							pos += 2
							// !IdentC
							{
								pos19 := pos
								// IdentC
								if p, n := _IdentCAction(parser, pos); n == nil {
									goto ok18
								} else {
									pos = p
								}
								pos = pos19
								goto fail15
							ok18:
								pos = pos19
							}
							// _
							if p, n := __Action(parser, pos); n == nil {
								goto fail15
							} else {
								pos = p
							}
							// name:Ident
							{
								pos22 := pos
								// Ident
								if p, n := _IdentAction(parser, pos); n == nil {
									goto fail15
								} else {
									label2 = *n
									pos = p
								}
								labels[2] = parser.text[pos22:pos]
							}
							label3 = func(
								start, end int, call string, name string, t TypeName) string {
								return string(name)
							}(
								start16, pos, label1, label2, label0)
						}
						goto ok23
					fail15:
						label3 = ""
						pos = pos14
					ok23:
					}
					labels[3] = parser.text[pos12:pos]
				}
				label4 = func(
					start, end int, by string, call string, name string, t TypeName) Super {
					return Super{Range: rng(parser, start, end), Type: t, Call: call != "", By: by}
				}(
					start3, pos, label3, label1, label2, label0)
			}
			labels[4] = parser.text[pos2:pos]
		}
		node = func(
			start, end int, by string, call string, name string, sup Super, t TypeName) Super {
			return Super(sup)
		}(
			start0, pos, label3, label1, label2, label4, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _BodyAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _Body, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// _ "{" members:Member* _ "}"
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "{"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "{" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// members:Member*
	{
		pos1 := pos
		// Member*
		for {
			pos3 := pos
			// Member
			if !_accept(parser, _MemberAccepts, &pos, &perr) {
				goto fail5
			}
			continue
		fail5:
			pos = pos3
			break
		}
		labels[0] = parser.text[pos1:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "}"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "}" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	return _memoize(parser, _Body, start, pos, perr)
fail:
	return _memoize(parser, _Body, start, -1, perr)
}

func _BodyFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _Body, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Body",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Body}
	// action
	// _ "{" members:Member* _ "}"
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "{"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "{" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"{\"",
				})
		}
		goto fail
	}
	pos++
	// members:Member*
	{
		pos1 := pos
		// Member*
		for {
			pos3 := pos
			// Member
			if !_fail(parser, _MemberFail, errPos, failure, &pos) {
				goto fail5
			}
			continue
		fail5:
			pos = pos3
			break
		}
		labels[0] = parser.text[pos1:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "}"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "}" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"}\"",
				})
		}
		goto fail
	}
	pos++
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _BodyAction(parser *_Parser, start int) (int, *[]*Member) {
	var labels [1]string
	use(labels)
	var label0 []Member
	dp := parser.deltaPos[start][_Body]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Body}
	n := parser.act[key]
	if n != nil {
		n := n.([]*Member)
		return start + int(dp-1), &n
	}
	var node []*Member
	pos := start
	// action
	{
		start0 := pos
		// _ "{" members:Member* _ "}"
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "{"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "{" {
			goto fail
		}
		pos++
		// members:Member*
		{
			pos2 := pos
			// Member*
			for {
				pos4 := pos
				var node5 Member
				// Member
				if p, n := _MemberAction(parser, pos); n == nil {
					goto fail6
				} else {
					node5 = *n
					pos = p
				}
				label0 = append(label0, node5)
				continue
			fail6:
				pos = pos4
				break
			}
			labels[0] = parser.text[pos2:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "}"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "}" {
			goto fail
		}
		pos++
		node = func(
			start, end int, members []Member) []*Member {
			ms := make([]*Member, len(members))
			for i := range members {
				ms[i] = &members[i]
			}
			return []*Member(ms)
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _ModsAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [2]string
	use(labels)
	if dp, de, ok := _memo(parser, _Mods, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// ms:(_ m:Mod {…})*
	{
		pos0 := pos
		// (_ m:Mod {…})*
		for {
			pos2 := pos
			// (_ m:Mod {…})
			// action
			// _ m:Mod
			// _
			if !_accept(parser, __Accepts, &pos, &perr) {
				goto fail4
			}
			// m:Mod
			{
				pos6 := pos
				// Mod
				if !_accept(parser, _ModAccepts, &pos, &perr) {
					goto fail4
				}
				labels[0] = parser.text[pos6:pos]
			}
			continue
		fail4:
			pos = pos2
			break
		}
		labels[1] = parser.text[pos0:pos]
	}
	return _memoize(parser, _Mods, start, pos, perr)
}

func _ModsFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [2]string
	use(labels)
	pos, failure := _failMemo(parser, _Mods, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Mods",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Mods}
	// action
	// ms:(_ m:Mod {…})*
	{
		pos0 := pos
		// (_ m:Mod {…})*
		for {
			pos2 := pos
			// (_ m:Mod {…})
			// action
			// _ m:Mod
			// _
			if !_fail(parser, __Fail, errPos, failure, &pos) {
				goto fail4
			}
			// m:Mod
			{
				pos6 := pos
				// Mod
				if !_fail(parser, _ModFail, errPos, failure, &pos) {
					goto fail4
				}
				labels[0] = parser.text[pos6:pos]
			}
			continue
		fail4:
			pos = pos2
			break
		}
		labels[1] = parser.text[pos0:pos]
	}
	parser.fail[key] = failure
	return pos, failure
}

func _ModsAction(parser *_Parser, start int) (int, *Mods) {
	var labels [2]string
	use(labels)
	var label0 modifier
	var label1 []modifier
	dp := parser.deltaPos[start][_Mods]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Mods}
	n := parser.act[key]
	if n != nil {
		n := n.(Mods)
		return start + int(dp-1), &n
	}
	var node Mods
	pos := start
	// action
	{
		start0 := pos
		// ms:(_ m:Mod {…})*
		{
			pos1 := pos
			// (_ m:Mod {…})*
			for {
				pos3 := pos
				var node4 modifier
				// (_ m:Mod {…})
				// action
				{
					start6 := pos
					// _ m:Mod
					// _
					if p, n := __Action(parser, pos); n == nil {
						goto fail5
					} else {
						pos = p
					}
					// m:Mod
					{
						pos8 := pos
						// Mod
						if p, n := _ModAction(parser, pos); n == nil {
							goto fail5
						} else {
							label0 = *n
							pos = p
						}
						labels[0] = parser.text[pos8:pos]
					}
					node4 = func(
						start, end int, m modifier) modifier {
						return modifier(m)
					}(
						start6, pos, label0)
				}
				label1 = append(label1, node4)
				continue
			fail5:
				pos = pos3
				break
			}
			labels[1] = parser.text[pos1:pos]
		}
		node = func(
			start, end int, m modifier, ms []modifier) Mods {
			return Mods(newMods(ms))
		}(
			start0, pos, label0, label1)
	}
	parser.act[key] = node
	return pos, &node
}

func _ModAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, _Mod, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// Annot/Modifier
	{
		pos3 := pos
		// Annot
		if !_accept(parser, _AnnotAccepts, &pos, &perr) {
			goto fail4
		}
		goto ok0
	fail4:
		pos = pos3
		// Modifier
		if !_accept(parser, _ModifierAccepts, &pos, &perr) {
			goto fail5
		}
		goto ok0
	fail5:
		pos = pos3
		goto fail
	ok0:
	}
	return _memoize(parser, _Mod, start, pos, perr)
fail:
	return _memoize(parser, _Mod, start, -1, perr)
}

func _ModFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, _Mod, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Mod",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Mod}
	// Annot/Modifier
	{
		pos3 := pos
		// Annot
		if !_fail(parser, _AnnotFail, errPos, failure, &pos) {
			goto fail4
		}
		goto ok0
	fail4:
		pos = pos3
		// Modifier
		if !_fail(parser, _ModifierFail, errPos, failure, &pos) {
			goto fail5
		}
		goto ok0
	fail5:
		pos = pos3
		goto fail
	ok0:
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _ModAction(parser *_Parser, start int) (int, *modifier) {
	dp := parser.deltaPos[start][_Mod]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Mod}
	n := parser.act[key]
	if n != nil {
		n := n.(modifier)
		return start + int(dp-1), &n
	}
	var node modifier
	pos := start
	// Annot/Modifier
	{
		pos3 := pos
		var node2 modifier
		// Annot
		if p, n := _AnnotAction(parser, pos); n == nil {
			goto fail4
		} else {
			node = *n
			pos = p
		}
		goto ok0
	fail4:
		node = node2
		pos = pos3
		// Modifier
		if p, n := _ModifierAction(parser, pos); n == nil {
			goto fail5
		} else {
			node = *n
			pos = p
		}
		goto ok0
	fail5:
		node = node2
		pos = pos3
		goto fail
	ok0:
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _ModifierAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _Modifier, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// w:("public"/"protected"/"internal"/"private"/"final"/"open"/"abstract"/"sealed"/"override"/"expect"/"suspend"/"synthetic") !IdentC
	// w:("public"/"protected"/"internal"/"private"/"final"/"open"/"abstract"/"sealed"/"override"/"expect"/"suspend"/"synthetic")
	{
		pos1 := pos
		// ("public"/"protected"/"internal"/"private"/"final"/"open"/"abstract"/"sealed"/"override"/"expect"/"suspend"/"synthetic")
		// "public"/"protected"/"internal"/"private"/"final"/"open"/"abstract"/"sealed"/"override"/"expect"/"suspend"/"synthetic"
		{
			pos5 := pos
			// "public"
			if len(parser.text[pos:]) < 6 || parser.text[pos:pos+6] != "public" {
				perr = _max(perr, pos)
				goto fail6
			}
			pos += 6
			goto ok2
		fail6:
			pos = pos5
			// "protected"
			if len(parser.text[pos:]) < 9 || parser.text[pos:pos+9] != "protected" {
				perr = _max(perr, pos)
				goto fail7
			}
			pos += 9
			goto ok2
		fail7:
			pos = pos5
			// "internal"
			if len(parser.text[pos:]) < 8 || parser.text[pos:pos+8] != "internal" {
				perr = _max(perr, pos)
				goto fail8
			}
			pos += 8
			goto ok2
		fail8:
			pos = pos5
			// "private"
			if len(parser.text[pos:]) < 7 || parser.text[pos:pos+7] != "private" {
				perr = _max(perr, pos)
				goto fail9
			}
			pos += 7
			goto ok2
		fail9:
			pos = pos5
			// "final"
			if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "final" {
				perr = _max(perr, pos)
				goto fail10
			}
			pos += 5
			goto ok2
		fail10:
			pos = pos5
			// "open"
			if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "open" {
				perr = _max(perr, pos)
				goto fail11
			}
			pos += 4
			goto ok2
		fail11:
			pos = pos5
			// "abstract"
			if len(parser.text[pos:]) < 8 || parser.text[pos:pos+8] != "abstract" {
				perr = _max(perr, pos)
				goto fail12
			}
			pos += 8
			goto ok2
		fail12:
			pos = pos5
			// "sealed"
			if len(parser.text[pos:]) < 6 || parser.text[pos:pos+6] != "sealed" {
				perr = _max(perr, pos)
				goto fail13
			}
			pos += 6
			goto ok2
		fail13:
			pos = pos5
			// "override"
			if len(parser.text[pos:]) < 8 || parser.text[pos:pos+8] != "override" {
				perr = _max(perr, pos)
				goto fail14
			}
			pos += 8
			goto ok2
		fail14:
			pos = pos5
			// "expect"
			if len(parser.text[pos:]) < 6 || parser.text[pos:pos+6] != "expect" {
				perr = _max(perr, pos)
				goto fail15
			}
			pos += 6
			goto ok2
		fail15:
			pos = pos5
			// "suspend"
			if len(parser.text[pos:]) < 7 || parser.text[pos:pos+7] != "suspend" {
				perr = _max(perr, pos)
				goto fail16
			}
			pos += 7
			goto ok2
		fail16:
			pos = pos5
			// "synthetic"
			if len(parser.text[pos:]) < 9 || parser.text[pos:pos+9] != "synthetic" {
				perr = _max(perr, pos)
				goto fail17
			}
			pos += 9
			goto ok2
		fail17:
			pos = pos5
			goto fail
		ok2:
		}
		labels[0] = parser.text[pos1:pos]
	}
	// !IdentC
	{
		pos19 := pos
		perr21 := perr
		// IdentC
		if !_accept(parser, _IdentCAccepts, &pos, &perr) {
			goto ok18
		}
		pos = pos19
		perr = _max(perr21, pos)
		goto fail
	ok18:
		pos = pos19
		perr = perr21
	}
	perr = start
	return _memoize(parser, _Modifier, start, pos, perr)
fail:
	return _memoize(parser, _Modifier, start, -1, perr)
}

func _ModifierFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _Modifier, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Modifier",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Modifier}
	// action
	// w:("public"/"protected"/"internal"/"private"/"final"/"open"/"abstract"/"sealed"/"override"/"expect"/"suspend"/"synthetic") !IdentC
	// w:("public"/"protected"/"internal"/"private"/"final"/"open"/"abstract"/"sealed"/"override"/"expect"/"suspend"/"synthetic")
	{
		pos1 := pos
		// ("public"/"protected"/"internal"/"private"/"final"/"open"/"abstract"/"sealed"/"override"/"expect"/"suspend"/"synthetic")
		// "public"/"protected"/"internal"/"private"/"final"/"open"/"abstract"/"sealed"/"override"/"expect"/"suspend"/"synthetic"
		{
			pos5 := pos
			// "public"
			if len(parser.text[pos:]) < 6 || parser.text[pos:pos+6] != "public" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
							Pos:  int(pos),
							Want: "\"public\"",
						})
				}
				goto fail6
			}
			pos += 6
			goto ok2
		fail6:
			pos = pos5
			// "protected"
			if len(parser.text[pos:]) < 9 || parser.text[pos:pos+9] != "protected" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
							Pos:  int(pos),
							Want: "\"protected\"",
						})
				}
				goto fail7
			}
			pos += 9
			goto ok2
		fail7:
			pos = pos5
			// "internal"
			if len(parser.text[pos:]) < 8 || parser.text[pos:pos+8] != "internal" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
							Pos:  int(pos),
							Want: "\"internal\"",
						})
				}
				goto fail8
			}
			pos += 8
			goto ok2
		fail8:
			pos = pos5
			// "private"
			if len(parser.text[pos:]) < 7 || parser.text[pos:pos+7] != "private" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
							Pos:  int(pos),
							Want: "\"private\"",
						})
				}
				goto fail9
			}
			pos += 7
			goto ok2
		fail9:
			pos = pos5
			// "final"
			if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "final" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
							Pos:  int(pos),
							Want: "\"final\"",
						})
				}
				goto fail10
			}
			pos += 5
			goto ok2
		fail10:
			pos = pos5
			// "open"
			if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "open" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
							Pos:  int(pos),
							Want: "\"open\"",
						})
				}
				goto fail11
			}
			pos += 4
			goto ok2
		fail11:
			pos = pos5
			// "abstract"
			if len(parser.text[pos:]) < 8 || parser.text[pos:pos+8] != "abstract" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
							Pos:  int(pos),
							Want: "\"abstract\"",
						})
				}
				goto fail12
			}
			pos += 8
			goto ok2
		fail12:
			pos = pos5
			// "sealed"
			if len(parser.text[pos:]) < 6 || parser.text[pos:pos+6] != "sealed" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
							Pos:  int(pos),
							Want: "\"sealed\"",
						})
				}
				goto fail13
			}
			pos += 6
			goto ok2
		fail13:
			pos = pos5
			// "override"
			if len(parser.text[pos:]) < 8 || parser.text[pos:pos+8] != "override" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
							Pos:  int(pos),
							Want: "\"override\"",
						})
				}
				goto fail14
			}
			pos += 8
			goto ok2
		fail14:
			pos = pos5
			// "expect"
			if len(parser.text[pos:]) < 6 || parser.text[pos:pos+6] != "expect" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
							Pos:  int(pos),
							Want: "\"expect\"",
						})
				}
				goto fail15
			}
			pos += 6
			goto ok2
		fail15:
			pos = pos5
			// "suspend"
			if len(parser.text[pos:]) < 7 || parser.text[pos:pos+7] != "suspend" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
							Pos:  int(pos),
							Want: "\"suspend\"",
						})
				}
				goto fail16
			}
			pos += 7
			goto ok2
		fail16:
			pos = pos5
			// "synthetic"
			if len(parser.text[pos:]) < 9 || parser.text[pos:pos+9] != "synthetic" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
							Pos:  int(pos),
							Want: "\"synthetic\"",
						})
				}
				goto fail17
			}
			pos += 9
			goto ok2
		fail17:
			pos = pos5
			goto fail
		ok2:
		}
		labels[0] = parser.text[pos1:pos]
	}
	// !IdentC
	{
		pos19 := pos
		nkids20 := len(failure.Kids)
		// IdentC
		if !_fail(parser, _IdentCFail, errPos, failure, &pos) {
			goto ok18
		}
		pos = pos19
		failure.Kids = failure.Kids[:nkids20]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "!IdentC",
				})
		}
		goto fail
	ok18:
		pos = pos19
		failure.Kids = failure.Kids[:nkids20]
	}
	failure.Kids = nil
	parser.fail[key] = failure
	return pos, failure
fail:
	failure.Kids = nil
	failure.Want = "modifier"
	parser.fail[key] = failure
	return -1, failure
}

func _ModifierAction(parser *_Parser, start int) (int, *modifier) {
	var labels [1]string
	use(labels)
	var label0 string
	dp := parser.deltaPos[start][_Modifier]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Modifier}
	n := parser.act[key]
	if n != nil {
		n := n.(modifier)
		return start + int(dp-1), &n
	}
	var node modifier
	pos := start
	// action
	{
		start0 := pos
		// w:("public"/"protected"/"internal"/"private"/"final"/"open"/"abstract"/"sealed"/"override"/"expect"/"suspend"/"synthetic") !IdentC
		// w:("public"/"protected"/"internal"/"private"/"final"/"open"/"abstract"/"sealed"/"override"/"expect"/"suspend"/"synthetic")
		{
			pos2 := pos
			// ("public"/"protected"/"internal"/"private"/"final"/"open"/"abstract"/"sealed"/"override"/"expect"/"suspend"/"synthetic")
			// "public"/"protected"/"internal"/"private"/"final"/"open"/"abstract"/"sealed"/"override"/"expect"/"suspend"/"synthetic"
			{
				pos6 := pos
				var node5 string
				// "public"
				if len(parser.text[pos:]) < 6 || parser.text[pos:pos+6] != "public" {
					goto fail7
				}
				label0 = parser.text[pos:pos+6]
				pos += 6
				goto ok3
			fail7:
				label0 = node5
				pos = pos6
				// "protected"
				if len(parser.text[pos:]) < 9 || parser.text[pos:pos+9] != "protected" {
					goto fail8
				}
				label0 = parser.text[pos:pos+9]
				pos += 9
				goto ok3
			fail8:
				label0 = node5
				pos = pos6
				// "internal"
				if len(parser.text[pos:]) < 8 || parser.text[pos:pos+8] != "internal" {
					goto fail9
				}
				label0 = parser.text[pos:pos+8]
				pos += 8
				goto ok3
			fail9:
				label0 = node5
				pos = pos6
				// "private"
				if len(parser.text[pos:]) < 7 || parser.text[pos:pos+7] != "private" {
					goto fail10
				}
				label0 = parser.text[pos:pos+7]
				pos += 7
				goto ok3
			fail10:
				label0 = node5
				pos = pos6
				// "final"
				if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "final" {
					goto fail11
				}
				label0 = parser.text[pos:pos+5]
				pos += 5
				goto ok3
			fail11:
				label0 = node5
				pos = pos6
				// "open"
				if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "open" {
					goto fail12
				}
				label0 = parser.text[pos:pos+4]
				pos += 4
				goto ok3
			fail12:
				label0 = node5
				pos = pos6
				// "abstract"
				if len(parser.text[pos:]) < 8 || parser.text[pos:pos+8] != "abstract" {
					goto fail13
				}
				label0 = parser.text[pos:pos+8]
				pos += 8
				goto ok3
			fail13:
				label0 = node5
				pos = pos6
				// "sealed"
				if len(parser.text[pos:]) < 6 || parser.text[pos:pos+6] != "sealed" {
					goto fail14
				}
				label0 = parser.text[pos:pos+6]
				pos += 6
				goto ok3
			fail14:
				label0 = node5
				pos = pos6
				// "override"
				if len(parser.text[pos:]) < 8 || parser.text[pos:pos+8] != "override" {
					goto fail15
				}
				label0 = parser.text[pos:pos+8]
				pos += 8
				goto ok3
			fail15:
				label0 = node5
				pos = pos6
				// "expect"
				if len(parser.text[pos:]) < 6 || parser.text[pos:pos+6] != "expect" {
					goto fail16
				}
				label0 = parser.text[pos:pos+6]
				pos += 6
				goto ok3
			fail16:
				label0 = node5
				pos = pos6
				// "suspend"
				if len(parser.text[pos:]) < 7 || parser.text[pos:pos+7] != "suspend" {
					goto fail17
				}
				label0 = parser.text[pos:pos+7]
				pos += 7
				goto ok3
			fail17:
				label0 = node5
				pos = pos6
				// "synthetic"
				if len(parser.text[pos:]) < 9 || parser.text[pos:pos+9] != "synthetic" {
					goto fail18
				}
				label0 = parser.text[pos:pos+9]
				pos += 9
				goto ok3
			fail18:
				label0 = node5
				pos = pos6
				goto fail
			ok3:
			}
			labels[0] = parser.text[pos2:pos]
		}
		// !IdentC
		{
			pos20 := pos
			// IdentC
			if p, n := _IdentCAction(parser, pos); n == nil {
				goto ok19
			} else {
				pos = p
			}
			pos = pos20
			goto fail
		ok19:
			pos = pos20
		}
		node = func(
			start, end int, w string) modifier {
			return modifier{Range: rng(parser, start, end), word: w}
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _AnnotAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _Annot, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// "@" _ a:AnnotBody
	// "@"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "@" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// a:AnnotBody
	{
		pos1 := pos
		// AnnotBody
		if !_accept(parser, _AnnotBodyAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	return _memoize(parser, _Annot, start, pos, perr)
fail:
	return _memoize(parser, _Annot, start, -1, perr)
}

func _AnnotFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _Annot, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Annot",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Annot}
	// action
	// "@" _ a:AnnotBody
	// "@"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "@" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"@\"",
				})
		}
		goto fail
	}
	pos++
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// a:AnnotBody
	{
		pos1 := pos
		// AnnotBody
		if !_fail(parser, _AnnotBodyFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _AnnotAction(parser *_Parser, start int) (int, *modifier) {
	var labels [1]string
	use(labels)
	var label0 modifier
	dp := parser.deltaPos[start][_Annot]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Annot}
	n := parser.act[key]
	if n != nil {
		n := n.(modifier)
		return start + int(dp-1), &n
	}
	var node modifier
	pos := start
	// action
	{
		start0 := pos
		// "@" _ a:AnnotBody
		// "@"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "@" {
			goto fail
		}
		pos++
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// a:AnnotBody
		{
			pos2 := pos
			// AnnotBody
			if p, n := _AnnotBodyAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos2:pos]
		}
		node = func(
			start, end int, a modifier) modifier {
			a.Range = rng(parser, start, end)
			if a.deprecated != nil {
				a.deprecated.Range = a.Range
			}
			return modifier(a)
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _AnnotBodyAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [5]string
	use(labels)
	if dp, de, ok := _memo(parser, _AnnotBody, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// "Deprecated" !IdentC args:DeprecatedArgs? {…}/"Requires" !IdentC _ "(" _ r:Ident _ ")" {…}/"OptIn" !IdentC _ "(" _ o0:Ident os:(_ "," _ o:Ident {…})* _ ")" {…}
	{
		pos3 := pos
		// action
		// "Deprecated" !IdentC args:DeprecatedArgs?
		// "Deprecated"
		if len(parser.text[pos:]) < 10 || parser.text[pos:pos+10] != "Deprecated" {
			perr = _max(perr, pos)
			goto fail4
		}
		pos += 10
		// !IdentC
		{
			pos7 := pos
			perr9 := perr
			// IdentC
			if !_accept(parser, _IdentCAccepts, &pos, &perr) {
				goto ok6
			}
			pos = pos7
			perr = _max(perr9, pos)
			goto fail4
		ok6:
			pos = pos7
			perr = perr9
		}
		// args:DeprecatedArgs?
		{
			pos10 := pos
			// DeprecatedArgs?
			{
				pos12 := pos
				// DeprecatedArgs
				if !_accept(parser, _DeprecatedArgsAccepts, &pos, &perr) {
					goto fail13
				}
				goto ok14
			fail13:
				pos = pos12
			ok14:
			}
			labels[0] = parser.text[pos10:pos]
		}
		goto ok0
	fail4:
		pos = pos3
		// action
		// "Requires" !IdentC _ "(" _ r:Ident _ ")"
		// "Requires"
		if len(parser.text[pos:]) < 8 || parser.text[pos:pos+8] != "Requires" {
			perr = _max(perr, pos)
			goto fail15
		}
		pos += 8
		// !IdentC
		{
			pos18 := pos
			perr20 := perr
			// IdentC
			if !_accept(parser, _IdentCAccepts, &pos, &perr) {
				goto ok17
			}
			pos = pos18
			perr = _max(perr20, pos)
			goto fail15
		ok17:
			pos = pos18
			perr = perr20
		}
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail15
		}
		// "("
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "(" {
			perr = _max(perr, pos)
			goto fail15
		}
		pos++
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail15
		}
		// r:Ident
		{
			pos21 := pos
			// Ident
			if !_accept(parser, _IdentAccepts, &pos, &perr) {
				goto fail15
			}
			labels[1] = parser.text[pos21:pos]
		}
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail15
		}
		// ")"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
			perr = _max(perr, pos)
			goto fail15
		}
		pos++
		goto ok0
	fail15:
		pos = pos3
		// action
		// "OptIn" !IdentC _ "(" _ o0:Ident os:(_ "," _ o:Ident {…})* _ ")"
		// "OptIn"
		if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "OptIn" {
			perr = _max(perr, pos)
			goto fail22
		}
		pos += 5
		// !IdentC
		{
			pos25 := pos
			perr27 := perr
			// IdentC
			if !_accept(parser, _IdentCAccepts, &pos, &perr) {
				goto ok24
			}
			pos = pos25
			perr = _max(perr27, pos)
			goto fail22
		ok24:
			pos = pos25
			perr = perr27
		}
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail22
		}
		// "("
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "(" {
			perr = _max(perr, pos)
			goto fail22
		}
		pos++
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail22
		}
		// o0:Ident
		{
			pos28 := pos
			// Ident
			if !_accept(parser, _IdentAccepts, &pos, &perr) {
				goto fail22
			}
			labels[2] = parser.text[pos28:pos]
		}
		// os:(_ "," _ o:Ident {…})*
		{
			pos29 := pos
			// (_ "," _ o:Ident {…})*
			for {
				pos31 := pos
				// (_ "," _ o:Ident {…})
				// action
				// _ "," _ o:Ident
				// _
				if !_accept(parser, __Accepts, &pos, &perr) {
					goto fail33
				}
				// ","
				if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
					perr = _max(perr, pos)
					goto fail33
				}
				pos++
				// _
				if !_accept(parser, __Accepts, &pos, &perr) {
					goto fail33
				}
				// o:Ident
				{
					pos35 := pos
					// Ident
					if !_accept(parser, _IdentAccepts, &pos, &perr) {
						goto fail33
					}
					labels[3] = parser.text[pos35:pos]
				}
				continue
			fail33:
				pos = pos31
				break
			}
			labels[4] = parser.text[pos29:pos]
		}
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail22
		}
		// ")"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
			perr = _max(perr, pos)
			goto fail22
		}
		pos++
		goto ok0
	fail22:
		pos = pos3
		goto fail
	ok0:
	}
	return _memoize(parser, _AnnotBody, start, pos, perr)
fail:
	return _memoize(parser, _AnnotBody, start, -1, perr)
}

func _AnnotBodyFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [5]string
	use(labels)
	pos, failure := _failMemo(parser, _AnnotBody, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "AnnotBody",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _AnnotBody}
	// "Deprecated" !IdentC args:DeprecatedArgs? {…}/"Requires" !IdentC _ "(" _ r:Ident _ ")" {…}/"OptIn" !IdentC _ "(" _ o0:Ident os:(_ "," _ o:Ident {…})* _ ")" {…}
	{
		pos3 := pos
		// action
		// "Deprecated" !IdentC args:DeprecatedArgs?
		// "Deprecated"
		if len(parser.text[pos:]) < 10 || parser.text[pos:pos+10] != "Deprecated" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\"Deprecated\"",
					})
			}
			goto fail4
		}
		pos += 10
		// !IdentC
		{
			pos7 := pos
			nkids8 := len(failure.Kids)
			// IdentC
			if !_fail(parser, _IdentCFail, errPos, failure, &pos) {
				goto ok6
			}
			pos = pos7
			failure.Kids = failure.Kids[:nkids8]
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "!IdentC",
					})
			}
			goto fail4
		ok6:
			pos = pos7
			failure.Kids = failure.Kids[:nkids8]
		}
		// args:DeprecatedArgs?
		{
			pos10 := pos
			// DeprecatedArgs?
			{
				pos12 := pos
				// DeprecatedArgs
				if !_fail(parser, _DeprecatedArgsFail, errPos, failure, &pos) {
					goto fail13
				}
				goto ok14
			fail13:
				pos = pos12
			ok14:
			}
			labels[0] = parser.text[pos10:pos]
		}
		goto ok0
	fail4:
		pos = pos3
		// action
		// "Requires" !IdentC _ "(" _ r:Ident _ ")"
		// "Requires"
		if len(parser.text[pos:]) < 8 || parser.text[pos:pos+8] != "Requires" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\"Requires\"",
					})
			}
			goto fail15
		}
		pos += 8
		// !IdentC
		{
			pos18 := pos
			nkids19 := len(failure.Kids)
			// IdentC
			if !_fail(parser, _IdentCFail, errPos, failure, &pos) {
				goto ok17
			}
			pos = pos18
			failure.Kids = failure.Kids[:nkids19]
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "!IdentC",
					})
			}
			goto fail15
		ok17:
			pos = pos18
			failure.Kids = failure.Kids[:nkids19]
		}
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail15
		}
		// "("
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "(" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\"(\"",
					})
			}
			goto fail15
		}
		pos++
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail15
		}
		// r:Ident
		{
			pos21 := pos
			// Ident
			if !_fail(parser, _IdentFail, errPos, failure, &pos) {
				goto fail15
			}
			labels[1] = parser.text[pos21:pos]
		}
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail15
		}
		// ")"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\")\"",
					})
			}
			goto fail15
		}
		pos++
		goto ok0
	fail15:
		pos = pos3
		// action
		// "OptIn" !IdentC _ "(" _ o0:Ident os:(_ "," _ o:Ident {…})* _ ")"
		// "OptIn"
		if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "OptIn" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\"OptIn\"",
					})
			}
			goto fail22
		}
		pos += 5
		// !IdentC
		{
			pos25 := pos
			nkids26 := len(failure.Kids)
			// IdentC
			if !_fail(parser, _IdentCFail, errPos, failure, &pos) {
				goto ok24
			}
			pos = pos25
			failure.Kids = failure.Kids[:nkids26]
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "!IdentC",
					})
			}
			goto fail22
		ok24:
			pos = pos25
			failure.Kids = failure.Kids[:nkids26]
		}
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail22
		}
		// "("
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "(" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\"(\"",
					})
			}
			goto fail22
		}
		pos++
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail22
		}
		// o0:Ident
		{
			pos28 := pos
			// Ident
			if !_fail(parser, _IdentFail, errPos, failure, &pos) {
				goto fail22
			}
			labels[2] = parser.text[pos28:pos]
		}
		// os:(_ "," _ o:Ident {…})*
		{
			pos29 := pos
			// (_ "," _ o:Ident {…})*
			for {
				pos31 := pos
				// (_ "," _ o:Ident {…})
				// action
				// _ "," _ o:Ident
				// _
				if !_fail(parser, __Fail, errPos, failure, &pos) {
					goto fail33
				}
				// ","
				if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
					if pos >= errPos {
						failure.Kids = append(failure.Kids, &peg.Fail{
								Pos:  int(pos),
								Want: "\",\"",
							})
					}
					goto fail33
				}
				pos++
				// _
				if !_fail(parser, __Fail, errPos, failure, &pos) {
					goto fail33
				}
				// o:Ident
				{
					pos35 := pos
					// Ident
					if !_fail(parser, _IdentFail, errPos, failure, &pos) {
						goto fail33
					}
					labels[3] = parser.text[pos35:pos]
				}
				continue
			fail33:
				pos = pos31
				break
			}
			labels[4] = parser.text[pos29:pos]
		}
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail22
		}
		// ")"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\")\"",
					})
			}
			goto fail22
		}
		pos++
		goto ok0
	fail22:
		pos = pos3
		goto fail
	ok0:
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _AnnotBodyAction(parser *_Parser, start int) (int, *modifier) {
	var labels [5]string
	use(labels)
	var label0 *Deprecated
	var label1 string
	var label2 string
	var label3 string
	var label4 string
	dp := parser.deltaPos[start][_AnnotBody]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _AnnotBody}
	n := parser.act[key]
	if n != nil {
		n := n.(modifier)
		return start + int(dp-1), &n
	}
	var node modifier
	pos := start
	// "Deprecated" !IdentC args:DeprecatedArgs? {…}/"Requires" !IdentC _ "(" _ r:Ident _ ")" {…}/"OptIn" !IdentC _ "(" _ o0:Ident os:(_ "," _ o:Ident {…})* _ ")" {…}
	{
		pos3 := pos
		var node2 modifier
		// action
		{
			start5 := pos
			// "Deprecated" !IdentC args:DeprecatedArgs?
			// "Deprecated"
			if len(parser.text[pos:]) < 10 || parser.text[pos:pos+10] != "Deprecated" {
				goto fail4
			}
			pos += 10
			// !IdentC
			{
				pos8 := pos
				// IdentC
				if p, n := _IdentCAction(parser, pos); n == nil {
					goto ok7
				} else {
					pos = p
				}
				pos = pos8
				goto fail4
			ok7:
				pos = pos8
			}
			// args:DeprecatedArgs?
			{
				pos11 := pos
				// DeprecatedArgs?
				{
					pos13 := pos
					label0 = new(Deprecated)
					// DeprecatedArgs
					if p, n := _DeprecatedArgsAction(parser, pos); n == nil {
						goto fail14
					} else {
						*label0 = *n
						pos = p
					}
					goto ok15
				fail14:
					label0 = nil
					pos = pos13
				ok15:
				}
				labels[0] = parser.text[pos11:pos]
			}
			node = func(
				start, end int, args *Deprecated) modifier {
				d := &Deprecated{}
				if args != nil {
					d = args
				}
				return modifier{deprecated: d}
			}(
				start5, pos, label0)
		}
		goto ok0
	fail4:
		node = node2
		pos = pos3
		// action
		{
			start17 := pos
			// "Requires" !IdentC _ "(" _ r:Ident _ ")"
			// "Requires"
			if len(parser.text[pos:]) < 8 || parser.text[pos:pos+8] != "Requires" {
				goto fail16
			}
			pos += 8
			// !IdentC
			{
				pos20 := pos
				// IdentC
				if p, n := _IdentCAction(parser, pos); n == nil {
					goto ok19
				} else {
					pos = p
				}
				pos = pos20
				goto fail16
			ok19:
				pos = pos20
			}
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail16
			} else {
				pos = p
			}
			// "("
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "(" {
				goto fail16
			}
			pos++
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail16
			} else {
				pos = p
			}
			// r:Ident
			{
				pos23 := pos
				// Ident
				if p, n := _IdentAction(parser, pos); n == nil {
					goto fail16
				} else {
					label1 = *n
					pos = p
				}
				labels[1] = parser.text[pos23:pos]
			}
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail16
			} else {
				pos = p
			}
			// ")"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
				goto fail16
			}
			pos++
			node = func(
				start, end int, args *Deprecated, r string) modifier {
				return modifier{requires: r}
			}(
				start17, pos, label0, label1)
		}
		goto ok0
	fail16:
		node = node2
		pos = pos3
		// action
		{
			start25 := pos
			// "OptIn" !IdentC _ "(" _ o0:Ident os:(_ "," _ o:Ident {…})* _ ")"
			// "OptIn"
			if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "OptIn" {
				goto fail24
			}
			pos += 5
			// !IdentC
			{
				pos28 := pos
				// IdentC
				if p, n := _IdentCAction(parser, pos); n == nil {
					goto ok27
				} else {
					pos = p
				}
				pos = pos28
				goto fail24
			ok27:
				pos = pos28
			}
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail24
			} else {
				pos = p
			}
			// "("
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "(" {
				goto fail24
			}
			pos++
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail24
			} else {
				pos = p
			}
			// o0:Ident
			{
				pos31 := pos
				// Ident
				if p, n := _IdentAction(parser, pos); n == nil {
					goto fail24
				} else {
					label2 = *n
					pos = p
				}
				labels[2] = parser.text[pos31:pos]
			}
			// os:(_ "," _ o:Ident {…})*
			{
				pos32 := pos
				// (_ "," _ o:Ident {…})*
				for {
					pos34 := pos
					var node35 string
					// (_ "," _ o:Ident {…})
					// action
					{
						start37 := pos
						// _ "," _ o:Ident
						// _
						if p, n := __Action(parser, pos); n == nil {
							goto fail36
						} else {
							pos = p
						}
						// ","
						if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
							goto fail36
						}
						pos++
						// _
						if p, n := __Action(parser, pos); n == nil {
							goto fail36
						} else {
							pos = p
						}
						// o:Ident
						{
							pos39 := pos
							// Ident
							if p, n := _IdentAction(parser, pos); n == nil {
								goto fail36
							} else {
								label3 = *n
								pos = p
							}
							labels[3] = parser.text[pos39:pos]
						}
						node35 = func(
							start, end int, args *Deprecated, o string, o0 string, r string) string {
							return string(o)
						}(
							start37, pos, label0, label3, label2, label1)
					}
					label4 += node35
					continue
				fail36:
					pos = pos34
					break
				}
				labels[4] = parser.text[pos32:pos]
			}
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail24
			} else {
				pos = p
			}
			// ")"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
				goto fail24
			}
			pos++
			node = func(
				start, end int, args *Deprecated, o string, o0 string, os string, r string) modifier {
				return modifier{optIns: append([]string{o0}, os...)}
			}(
				start25, pos, label0, label3, label2, label4, label1)
		}
		goto ok0
	fail24:
		node = node2
		pos = pos3
		goto fail
	ok0:
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _DeprecatedArgsAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [3]string
	use(labels)
	if dp, de, ok := _memo(parser, _DeprecatedArgs, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// _ "(" _ msg:String level:(_ "," _ l:Ident {…})? _ ")"
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "("
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "(" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// msg:String
	{
		pos1 := pos
		// String
		if !_accept(parser, _StringAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// level:(_ "," _ l:Ident {…})?
	{
		pos2 := pos
		// (_ "," _ l:Ident {…})?
		{
			pos4 := pos
			// (_ "," _ l:Ident {…})
			// action
			// _ "," _ l:Ident
			// _
			if !_accept(parser, __Accepts, &pos, &perr) {
				goto fail5
			}
			// ","
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
				perr = _max(perr, pos)
				goto fail5
			}
			pos++
			// _
			if !_accept(parser, __Accepts, &pos, &perr) {
				goto fail5
			}
			// l:Ident
			{
				pos7 := pos
				// Ident
				if !_accept(parser, _IdentAccepts, &pos, &perr) {
					goto fail5
				}
				labels[1] = parser.text[pos7:pos]
			}
			goto ok8
		fail5:
			pos = pos4
		ok8:
		}
		labels[2] = parser.text[pos2:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// ")"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	return _memoize(parser, _DeprecatedArgs, start, pos, perr)
fail:
	return _memoize(parser, _DeprecatedArgs, start, -1, perr)
}

func _DeprecatedArgsFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [3]string
	use(labels)
	pos, failure := _failMemo(parser, _DeprecatedArgs, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "DeprecatedArgs",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _DeprecatedArgs}
	// action
	// _ "(" _ msg:String level:(_ "," _ l:Ident {…})? _ ")"
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "("
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "(" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"(\"",
				})
		}
		goto fail
	}
	pos++
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// msg:String
	{
		pos1 := pos
		// String
		if !_fail(parser, _StringFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// level:(_ "," _ l:Ident {…})?
	{
		pos2 := pos
		// (_ "," _ l:Ident {…})?
		{
			pos4 := pos
			// (_ "," _ l:Ident {…})
			// action
			// _ "," _ l:Ident
			// _
			if !_fail(parser, __Fail, errPos, failure, &pos) {
				goto fail5
			}
			// ","
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
							Pos:  int(pos),
							Want: "\",\"",
						})
				}
				goto fail5
			}
			pos++
			// _
			if !_fail(parser, __Fail, errPos, failure, &pos) {
				goto fail5
			}
			// l:Ident
			{
				pos7 := pos
				// Ident
				if !_fail(parser, _IdentFail, errPos, failure, &pos) {
					goto fail5
				}
				labels[1] = parser.text[pos7:pos]
			}
			goto ok8
		fail5:
			pos = pos4
		ok8:
		}
		labels[2] = parser.text[pos2:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// ")"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\")\"",
				})
		}
		goto fail
	}
	pos++
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _DeprecatedArgsAction(parser *_Parser, start int) (int, *Deprecated) {
	var labels [3]string
	use(labels)
	var label0 string
	var label1 string
	var label2 string
	dp := parser.deltaPos[start][_DeprecatedArgs]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _DeprecatedArgs}
	n := parser.act[key]
	if n != nil {
		n := n.(Deprecated)
		return start + int(dp-1), &n
	}
	var node Deprecated
	pos := start
	// action
	{
		start0 := pos
		// _ "(" _ msg:String level:(_ "," _ l:Ident {…})? _ ")"
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "("
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "(" {
			goto fail
		}
		pos++
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// msg:String
		{
			pos2 := pos
			// String
			if p, n := _StringAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos2:pos]
		}
		// level:(_ "," _ l:Ident {…})?
		{
			pos3 := pos
			// (_ "," _ l:Ident {…})?
			{
				pos5 := pos
				// (_ "," _ l:Ident {…})
				// action
				{
					start7 := pos
					// _ "," _ l:Ident
					// _
					if p, n := __Action(parser, pos); n == nil {
						goto fail6
					} else {
						pos = p
					}
					// ","
					if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
						goto fail6
					}
					pos++
					// _
					if p, n := __Action(parser, pos); n == nil {
						goto fail6
					} else {
						pos = p
					}
					// l:Ident
					{
						pos9 := pos
						// Ident
						if p, n := _IdentAction(parser, pos); n == nil {
							goto fail6
						} else {
							label1 = *n
							pos = p
						}
						labels[1] = parser.text[pos9:pos]
					}
					label2 = func(
						start, end int, l string, msg string) string {
						return string(l)
					}(
						start7, pos, label1, label0)
				}
				goto ok10
			fail6:
				label2 = ""
				pos = pos5
			ok10:
			}
			labels[2] = parser.text[pos3:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// ")"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
			goto fail
		}
		pos++
		node = func(
			start, end int, l string, level string, msg string) Deprecated {
			return Deprecated{Message: msg, Level: level}
		}(
			start0, pos, label1, label2, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _MemberAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [3]string
	use(labels)
	if dp, de, ok := _memo(parser, _Member, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// _ m:(mods:Mods _ d:(Fun/Prop) {…})
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// m:(mods:Mods _ d:(Fun/Prop) {…})
	{
		pos1 := pos
		// (mods:Mods _ d:(Fun/Prop) {…})
		// action
		// mods:Mods _ d:(Fun/Prop)
		// mods:Mods
		{
			pos3 := pos
			// Mods
			if !_accept(parser, _ModsAccepts, &pos, &perr) {
				goto fail
			}
			labels[0] = parser.text[pos3:pos]
		}
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail
		}
		// d:(Fun/Prop)
		{
			pos4 := pos
			// (Fun/Prop)
			// Fun/Prop
			{
				pos8 := pos
				// Fun
				if !_accept(parser, _FunAccepts, &pos, &perr) {
					goto fail9
				}
				goto ok5
			fail9:
				pos = pos8
				// Prop
				if !_accept(parser, _PropAccepts, &pos, &perr) {
					goto fail10
				}
				goto ok5
			fail10:
				pos = pos8
				goto fail
			ok5:
			}
			labels[1] = parser.text[pos4:pos]
		}
		labels[2] = parser.text[pos1:pos]
	}
	return _memoize(parser, _Member, start, pos, perr)
fail:
	return _memoize(parser, _Member, start, -1, perr)
}

func _MemberFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [3]string
	use(labels)
	pos, failure := _failMemo(parser, _Member, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Member",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Member}
	// action
	// _ m:(mods:Mods _ d:(Fun/Prop) {…})
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// m:(mods:Mods _ d:(Fun/Prop) {…})
	{
		pos1 := pos
		// (mods:Mods _ d:(Fun/Prop) {…})
		// action
		// mods:Mods _ d:(Fun/Prop)
		// mods:Mods
		{
			pos3 := pos
			// Mods
			if !_fail(parser, _ModsFail, errPos, failure, &pos) {
				goto fail
			}
			labels[0] = parser.text[pos3:pos]
		}
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail
		}
		// d:(Fun/Prop)
		{
			pos4 := pos
			// (Fun/Prop)
			// Fun/Prop
			{
				pos8 := pos
				// Fun
				if !_fail(parser, _FunFail, errPos, failure, &pos) {
					goto fail9
				}
				goto ok5
			fail9:
				pos = pos8
				// Prop
				if !_fail(parser, _PropFail, errPos, failure, &pos) {
					goto fail10
				}
				goto ok5
			fail10:
				pos = pos8
				goto fail
			ok5:
			}
			labels[1] = parser.text[pos4:pos]
		}
		labels[2] = parser.text[pos1:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _MemberAction(parser *_Parser, start int) (int, *Member) {
	var labels [3]string
	use(labels)
	var label0 Mods
	var label1 Member
	var label2 Member
	dp := parser.deltaPos[start][_Member]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Member}
	n := parser.act[key]
	if n != nil {
		n := n.(Member)
		return start + int(dp-1), &n
	}
	var node Member
	pos := start
	// action
	{
		start0 := pos
		// _ m:(mods:Mods _ d:(Fun/Prop) {…})
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// m:(mods:Mods _ d:(Fun/Prop) {…})
		{
			pos2 := pos
			// (mods:Mods _ d:(Fun/Prop) {…})
			// action
			{
				start3 := pos
				// mods:Mods _ d:(Fun/Prop)
				// mods:Mods
				{
					pos5 := pos
					// Mods
					if p, n := _ModsAction(parser, pos); n == nil {
						goto fail
					} else {
						label0 = *n
						pos = p
					}
					labels[0] = parser.text[pos5:pos]
				}
				// _
				if p, n := __Action(parser, pos); n == nil {
					goto fail
				} else {
					pos = p
				}
				// d:(Fun/Prop)
				{
					pos6 := pos
					// (Fun/Prop)
					// Fun/Prop
					{
						pos10 := pos
						var node9 Member
						// Fun
						if p, n := _FunAction(parser, pos); n == nil {
							goto fail11
						} else {
							label1 = *n
							pos = p
						}
						goto ok7
					fail11:
						label1 = node9
						pos = pos10
						// Prop
						if p, n := _PropAction(parser, pos); n == nil {
							goto fail12
						} else {
							label1 = *n
							pos = p
						}
						goto ok7
					fail12:
						label1 = node9
						pos = pos10
						goto fail
					ok7:
					}
					labels[1] = parser.text[pos6:pos]
				}
				label2 = func(
					start, end int, d Member, mods Mods) Member {
					d.Range = rng(parser, start, end)
					d.Mods = mods
					return Member(d)
				}(
					start3, pos, label1, label0)
			}
			labels[2] = parser.text[pos2:pos]
		}
		node = func(
			start, end int, d Member, m Member, mods Mods) Member {
			return Member(m)
		}(
			start0, pos, label1, label2, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _FunAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [6]string
	use(labels)
	if dp, de, ok := _memo(parser, _Fun, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// "fun" !IdentC tparms:TParms? rn:RecvName ps:Parms ret:(_ ":" t:TypeName {…})? body:(_ "{" _ "}")?
	// "fun"
	if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "fun" {
		perr = _max(perr, pos)
		goto fail
	}
	pos += 3
	// !IdentC
	{
		pos2 := pos
		perr4 := perr
		// IdentC
		if !_accept(parser, _IdentCAccepts, &pos, &perr) {
			goto ok1
		}
		pos = pos2
		perr = _max(perr4, pos)
		goto fail
	ok1:
		pos = pos2
		perr = perr4
	}
	// tparms:TParms?
	{
		pos5 := pos
		// TParms?
		{
			pos7 := pos
			// TParms
			if !_accept(parser, _TParmsAccepts, &pos, &perr) {
				goto fail8
			}
			goto ok9
		fail8:
			pos = pos7
		ok9:
		}
		labels[0] = parser.text[pos5:pos]
	}
	// rn:RecvName
	{
		pos10 := pos
		// RecvName
		if !_accept(parser, _RecvNameAccepts, &pos, &perr) {
			goto fail
		}
		labels[1] = parser.text[pos10:pos]
	}
	// ps:Parms
	{
		pos11 := pos
		// Parms
		if !_accept(parser, _ParmsAccepts, &pos, &perr) {
			goto fail
		}
		labels[2] = parser.text[pos11:pos]
	}
	// ret:(_ ":" t:TypeName {…})?
	{
		pos12 := pos
		// (_ ":" t:TypeName {…})?
		{
			pos14 := pos
			// (_ ":" t:TypeName {…})
			// action
			// _ ":" t:TypeName
			// _
			if !_accept(parser, __Accepts, &pos, &perr) {
				goto fail15
			}
			// ":"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ":" {
				perr = _max(perr, pos)
				goto fail15
			}
			pos++
			// t:TypeName
			{
				pos17 := pos
				// TypeName
				if !_accept(parser, _TypeNameAccepts, &pos, &perr) {
					goto fail15
				}
				labels[3] = parser.text[pos17:pos]
			}
			goto ok18
		fail15:
			pos = pos14
		ok18:
		}
		labels[4] = parser.text[pos12:pos]
	}
	// body:(_ "{" _ "}")?
	{
		pos19 := pos
		// (_ "{" _ "}")?
		{
			pos21 := pos
			// (_ "{" _ "}")
			// _ "{" _ "}"
			// _
			if !_accept(parser, __Accepts, &pos, &perr) {
				goto fail22
			}
			// "{"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "{" {
				perr = _max(perr, pos)
				goto fail22
			}
			pos++
			// _
			if !_accept(parser, __Accepts, &pos, &perr) {
				goto fail22
			}
			// "}"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "}" {
				perr = _max(perr, pos)
				goto fail22
			}
			pos++
			goto ok24
		fail22:
			pos = pos21
		ok24:
		}
		labels[5] = parser.text[pos19:pos]
	}
	return _memoize(parser, _Fun, start, pos, perr)
fail:
	return _memoize(parser, _Fun, start, -1, perr)
}

func _FunFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [6]string
	use(labels)
	pos, failure := _failMemo(parser, _Fun, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Fun",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Fun}
	// action
	// "fun" !IdentC tparms:TParms? rn:RecvName ps:Parms ret:(_ ":" t:TypeName {…})? body:(_ "{" _ "}")?
	// "fun"
	if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "fun" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"fun\"",
				})
		}
		goto fail
	}
	pos += 3
	// !IdentC
	{
		pos2 := pos
		nkids3 := len(failure.Kids)
		// IdentC
		if !_fail(parser, _IdentCFail, errPos, failure, &pos) {
			goto ok1
		}
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "!IdentC",
				})
		}
		goto fail
	ok1:
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
	}
	// tparms:TParms?
	{
		pos5 := pos
		// TParms?
		{
			pos7 := pos
			// TParms
			if !_fail(parser, _TParmsFail, errPos, failure, &pos) {
				goto fail8
			}
			goto ok9
		fail8:
			pos = pos7
		ok9:
		}
		labels[0] = parser.text[pos5:pos]
	}
	// rn:RecvName
	{
		pos10 := pos
		// RecvName
		if !_fail(parser, _RecvNameFail, errPos, failure, &pos) {
			goto fail
		}
		labels[1] = parser.text[pos10:pos]
	}
	// ps:Parms
	{
		pos11 := pos
		// Parms
		if !_fail(parser, _ParmsFail, errPos, failure, &pos) {
			goto fail
		}
		labels[2] = parser.text[pos11:pos]
	}
	// ret:(_ ":" t:TypeName {…})?
	{
		pos12 := pos
		// (_ ":" t:TypeName {…})?
		{
			pos14 := pos
			// (_ ":" t:TypeName {…})
			// action
			// _ ":" t:TypeName
			// _
			if !_fail(parser, __Fail, errPos, failure, &pos) {
				goto fail15
			}
			// ":"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ":" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
							Pos:  int(pos),
							Want: "\":\"",
						})
				}
				goto fail15
			}
			pos++
			// t:TypeName
			{
				pos17 := pos
				// TypeName
				if !_fail(parser, _TypeNameFail, errPos, failure, &pos) {
					goto fail15
				}
				labels[3] = parser.text[pos17:pos]
			}
			goto ok18
		fail15:
			pos = pos14
		ok18:
		}
		labels[4] = parser.text[pos12:pos]
	}
	// body:(_ "{" _ "}")?
	{
		pos19 := pos
		// (_ "{" _ "}")?
		{
			pos21 := pos
			// (_ "{" _ "}")
			// _ "{" _ "}"
			// _
			if !_fail(parser, __Fail, errPos, failure, &pos) {
				goto fail22
			}
			// "{"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "{" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
							Pos:  int(pos),
							Want: "\"{\"",
						})
				}
				goto fail22
			}
			pos++
			// _
			if !_fail(parser, __Fail, errPos, failure, &pos) {
				goto fail22
			}
			// "}"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "}" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
							Pos:  int(pos),
							Want: "\"}\"",
						})
				}
				goto fail22
			}
			pos++
			goto ok24
		fail22:
			pos = pos21
		ok24:
		}
		labels[5] = parser.text[pos19:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _FunAction(parser *_Parser, start int) (int, *Member) {
	var labels [6]string
	use(labels)
	var label0 *[]TParm
	var label1 recvName
	var label2 []Parm
	var label3 TypeName
	var label4 *TypeName
	var label5 string
	dp := parser.deltaPos[start][_Fun]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Fun}
	n := parser.act[key]
	if n != nil {
		n := n.(Member)
		return start + int(dp-1), &n
	}
	var node Member
	pos := start
	// action
	{
		start0 := pos
		// "fun" !IdentC tparms:TParms? rn:RecvName ps:Parms ret:(_ ":" t:TypeName {…})? body:(_ "{" _ "}")?
		// "fun"
		if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "fun" {
			goto fail
		}
		pos += 3
		// !IdentC
		{
			pos3 := pos
			// IdentC
			if p, n := _IdentCAction(parser, pos); n == nil {
				goto ok2
			} else {
				pos = p
			}
			pos = pos3
			goto fail
		ok2:
			pos = pos3
		}
		// tparms:TParms?
		{
			pos6 := pos
			// TParms?
			{
				pos8 := pos
				label0 = new([]TParm)
				// TParms
				if p, n := _TParmsAction(parser, pos); n == nil {
					goto fail9
				} else {
					*label0 = *n
					pos = p
				}
				goto ok10
			fail9:
				label0 = nil
				pos = pos8
			ok10:
			}
			labels[0] = parser.text[pos6:pos]
		}
		// rn:RecvName
		{
			pos11 := pos
			// RecvName
			if p, n := _RecvNameAction(parser, pos); n == nil {
				goto fail
			} else {
				label1 = *n
				pos = p
			}
			labels[1] = parser.text[pos11:pos]
		}
		// ps:Parms
		{
			pos12 := pos
			// Parms
			if p, n := _ParmsAction(parser, pos); n == nil {
				goto fail
			} else {
				label2 = *n
				pos = p
			}
			labels[2] = parser.text[pos12:pos]
		}
		// ret:(_ ":" t:TypeName {…})?
		{
			pos13 := pos
			// (_ ":" t:TypeName {…})?
			{
				pos15 := pos
				label4 = new(TypeName)
				// (_ ":" t:TypeName {…})
				// action
				{
					start17 := pos
					// _ ":" t:TypeName
					// _
					if p, n := __Action(parser, pos); n == nil {
						goto fail16
					} else {
						pos = p
					}
					// ":"
					if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ":" {
						goto fail16
					}
					pos++
					// t:TypeName
					{
						pos19 := pos
						// TypeName
						if p, n := _TypeNameAction(parser, pos); n == nil {
							goto fail16
						} else {
							label3 = *n
							pos = p
						}
						labels[3] = parser.text[pos19:pos]
					}
					*label4 = func(
						start, end int, ps []Parm, rn recvName, t TypeName, tparms *[]TParm) TypeName {
						return TypeName(t)
					}(
						start17, pos, label2, label1, label3, label0)
				}
				goto ok20
			fail16:
				label4 = nil
				pos = pos15
			ok20:
			}
			labels[4] = parser.text[pos13:pos]
		}
		// body:(_ "{" _ "}")?
		{
			pos21 := pos
			// (_ "{" _ "}")?
			{
				pos23 := pos
				// (_ "{" _ "}")
				// _ "{" _ "}"
				{
					var node25 string
					// _
					if p, n := __Action(parser, pos); n == nil {
						goto fail24
					} else {
						node25 = *n
						pos = p
					}
					label5, node25 = label5+node25, ""
					// "{"
					if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "{" {
						goto fail24
					}
					node25 = parser.text[pos:pos+1]
					pos++
					label5, node25 = label5+node25, ""
					// _
					if p, n := __Action(parser, pos); n == nil {
						goto fail24
					} else {
						node25 = *n
						pos = p
					}
					label5, node25 = label5+node25, ""
					// "}"
					if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "}" {
						goto fail24
					}
					node25 = parser.text[pos:pos+1]
					pos++
					label5, node25 = label5+node25, ""
				}
				goto ok26
			fail24:
				label5 = ""
				pos = pos23
			ok26:
			}
			labels[5] = parser.text[pos21:pos]
		}
		node = func(
			start, end int, body string, ps []Parm, ret *TypeName, rn recvName, t TypeName, tparms *[]TParm) Member {
			f := Member{
				Kind:  "fun",
				Recv:  rn.recv,
				Name:  rn.name,
				Parms: ps,
				Ret:   ret,
				Body:  body != "",
			}
			if tparms != nil {
				f.TParms = *tparms
			}
			return Member(f)
		}(
			start0, pos, label5, label2, label4, label1, label3, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _PropAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [6]string
	use(labels)
	if dp, de, ok := _memo(parser, _Prop, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// kind:("val"/"var") !IdentC tparms:TParms? rn:RecvName _ ":" ret:TypeName body:(_ "{" _ "}")? setter:Setter?
	// kind:("val"/"var")
	{
		pos1 := pos
		// ("val"/"var")
		// "val"/"var"
		{
			pos5 := pos
			// "val"
			if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "val" {
				perr = _max(perr, pos)
				goto fail6
			}
			pos += 3
			goto ok2
		fail6:
			pos = pos5
			// "var"
			if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "var" {
				perr = _max(perr, pos)
				goto fail7
			}
			pos += 3
			goto ok2
		fail7:
			pos = pos5
			goto fail
		ok2:
		}
		labels[0] = parser.text[pos1:pos]
	}
	// !IdentC
	{
		pos9 := pos
		perr11 := perr
		// IdentC
		if !_accept(parser, _IdentCAccepts, &pos, &perr) {
			goto ok8
		}
		pos = pos9
		perr = _max(perr11, pos)
		goto fail
	ok8:
		pos = pos9
		perr = perr11
	}
	// tparms:TParms?
	{
		pos12 := pos
		// TParms?
		{
			pos14 := pos
			// TParms
			if !_accept(parser, _TParmsAccepts, &pos, &perr) {
				goto fail15
			}
			goto ok16
		fail15:
			pos = pos14
		ok16:
		}
		labels[1] = parser.text[pos12:pos]
	}
	// rn:RecvName
	{
		pos17 := pos
		// RecvName
		if !_accept(parser, _RecvNameAccepts, &pos, &perr) {
			goto fail
		}
		labels[2] = parser.text[pos17:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// ":"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ":" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// ret:TypeName
	{
		pos18 := pos
		// TypeName
		if !_accept(parser, _TypeNameAccepts, &pos, &perr) {
			goto fail
		}
		labels[3] = parser.text[pos18:pos]
	}
	// body:(_ "{" _ "}")?
	{
		pos19 := pos
		// (_ "{" _ "}")?
		{
			pos21 := pos
			// (_ "{" _ "}")
			// _ "{" _ "}"
			// _
			if !_accept(parser, __Accepts, &pos, &perr) {
				goto fail22
			}
			// "{"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "{" {
				perr = _max(perr, pos)
				goto fail22
			}
			pos++
			// _
			if !_accept(parser, __Accepts, &pos, &perr) {
				goto fail22
			}
			// "}"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "}" {
				perr = _max(perr, pos)
				goto fail22
			}
			pos++
			goto ok24
		fail22:
			pos = pos21
		ok24:
		}
		labels[4] = parser.text[pos19:pos]
	}
	// setter:Setter?
	{
		pos25 := pos
		// Setter?
		{
			pos27 := pos
			// Setter
			if !_accept(parser, _SetterAccepts, &pos, &perr) {
				goto fail28
			}
			goto ok29
		fail28:
			pos = pos27
		ok29:
		}
		labels[5] = parser.text[pos25:pos]
	}
	return _memoize(parser, _Prop, start, pos, perr)
fail:
	return _memoize(parser, _Prop, start, -1, perr)
}

func _PropFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [6]string
	use(labels)
	pos, failure := _failMemo(parser, _Prop, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Prop",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Prop}
	// action
	// kind:("val"/"var") !IdentC tparms:TParms? rn:RecvName _ ":" ret:TypeName body:(_ "{" _ "}")? setter:Setter?
	// kind:("val"/"var")
	{
		pos1 := pos
		// ("val"/"var")
		// "val"/"var"
		{
			pos5 := pos
			// "val"
			if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "val" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
							Pos:  int(pos),
							Want: "\"val\"",
						})
				}
				goto fail6
			}
			pos += 3
			goto ok2
		fail6:
			pos = pos5
			// "var"
			if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "var" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
							Pos:  int(pos),
							Want: "\"var\"",
						})
				}
				goto fail7
			}
			pos += 3
			goto ok2
		fail7:
			pos = pos5
			goto fail
		ok2:
		}
		labels[0] = parser.text[pos1:pos]
	}
	// !IdentC
	{
		pos9 := pos
		nkids10 := len(failure.Kids)
		// IdentC
		if !_fail(parser, _IdentCFail, errPos, failure, &pos) {
			goto ok8
		}
		pos = pos9
		failure.Kids = failure.Kids[:nkids10]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "!IdentC",
				})
		}
		goto fail
	ok8:
		pos = pos9
		failure.Kids = failure.Kids[:nkids10]
	}
	// tparms:TParms?
	{
		pos12 := pos
		// TParms?
		{
			pos14 := pos
			// TParms
			if !_fail(parser, _TParmsFail, errPos, failure, &pos) {
				goto fail15
			}
			goto ok16
		fail15:
			pos = pos14
		ok16:
		}
		labels[1] = parser.text[pos12:pos]
	}
	// rn:RecvName
	{
		pos17 := pos
		// RecvName
		if !_fail(parser, _RecvNameFail, errPos, failure, &pos) {
			goto fail
		}
		labels[2] = parser.text[pos17:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// ":"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ":" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\":\"",
				})
		}
		goto fail
	}
	pos++
	// ret:TypeName
	{
		pos18 := pos
		// TypeName
		if !_fail(parser, _TypeNameFail, errPos, failure, &pos) {
			goto fail
		}
		labels[3] = parser.text[pos18:pos]
	}
	// body:(_ "{" _ "}")?
	{
		pos19 := pos
		// (_ "{" _ "}")?
		{
			pos21 := pos
			// (_ "{" _ "}")
			// _ "{" _ "}"
			// _
			if !_fail(parser, __Fail, errPos, failure, &pos) {
				goto fail22
			}
			// "{"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "{" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
							Pos:  int(pos),
							Want: "\"{\"",
						})
				}
				goto fail22
			}
			pos++
			// _
			if !_fail(parser, __Fail, errPos, failure, &pos) {
				goto fail22
			}
			// "}"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "}" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
							Pos:  int(pos),
							Want: "\"}\"",
						})
				}
				goto fail22
			}
			pos++
			goto ok24
		fail22:
			pos = pos21
		ok24:
		}
		labels[4] = parser.text[pos19:pos]
	}
	// setter:Setter?
	{
		pos25 := pos
		// Setter?
		{
			pos27 := pos
			// Setter
			if !_fail(parser, _SetterFail, errPos, failure, &pos) {
				goto fail28
			}
			goto ok29
		fail28:
			pos = pos27
		ok29:
		}
		labels[5] = parser.text[pos25:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _PropAction(parser *_Parser, start int) (int, *Member) {
	var labels [6]string
	use(labels)
	var label0 string
	var label1 *[]TParm
	var label2 recvName
	var label3 TypeName
	var label4 string
	var label5 *Setter
	dp := parser.deltaPos[start][_Prop]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Prop}
	n := parser.act[key]
	if n != nil {
		n := n.(Member)
		return start + int(dp-1), &n
	}
	var node Member
	pos := start
	// action
	{
		start0 := pos
		// kind:("val"/"var") !IdentC tparms:TParms? rn:RecvName _ ":" ret:TypeName body:(_ "{" _ "}")? setter:Setter?
		// kind:("val"/"var")
		{
			pos2 := pos
			// ("val"/"var")
			// "val"/"var"
			{
				pos6 := pos
				var node5 string
				// "val"
				if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "val" {
					goto fail7
				}
				label0 = parser.text[pos:pos+3]
				pos += 3
				goto ok3
			fail7:
				label0 = node5
				pos = pos6
				// "var"
				if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "var" {
					goto fail8
				}
				label0 = parser.text[pos:pos+3]
				pos += 3
				goto ok3
			fail8:
				label0 = node5
				pos = pos6
				goto fail
			ok3:
			}
			labels[0] = parser.text[pos2:pos]
		}
		// !IdentC
		{
			pos10 := pos
			// IdentC
			if p, n := _IdentCAction(parser, pos); n == nil {
				goto ok9
			} else {
				pos = p
			}
			pos = pos10
			goto fail
		ok9:
			pos = pos10
		}
		// tparms:TParms?
		{
			pos13 := pos
			// TParms?
			{
				pos15 := pos
				label1 = new([]TParm)
				// TParms
				if p, n := _TParmsAction(parser, pos); n == nil {
					goto fail16
				} else {
					*label1 = *n
					pos = p
				}
				goto ok17
			fail16:
				label1 = nil
				pos = pos15
			ok17:
			}
			labels[1] = parser.text[pos13:pos]
		}
		// rn:RecvName
		{
			pos18 := pos
			// RecvName
			if p, n := _RecvNameAction(parser, pos); n == nil {
				goto fail
			} else {
				label2 = *n
				pos = p
			}
			labels[2] = parser.text[pos18:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// ":"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ":" {
			goto fail
		}
		pos++
		// ret:TypeName
		{
			pos19 := pos
			// TypeName
			if p, n := _TypeNameAction(parser, pos); n == nil {
				goto fail
			} else {
				label3 = *n
				pos = p
			}
			labels[3] = parser.text[pos19:pos]
		}
		// body:(_ "{" _ "}")?
		{
			pos20 := pos
			// (_ "{" _ "}")?
			{
				pos22 := pos
				// (_ "{" _ "}")
				// _ "{" _ "}"
				{
					var node24 string
					// _
					if p, n := __Action(parser, pos); n == nil {
						goto fail23
					} else {
						node24 = *n
						pos = p
					}
					label4, node24 = label4+node24, ""
					// "{"
					if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "{" {
						goto fail23
					}
					node24 = parser.text[pos:pos+1]
					pos++
					label4, node24 = label4+node24, ""
					// _
					if p, n := __Action(parser, pos); n == nil {
						goto fail23
					} else {
						node24 = *n
						pos = p
					}
					label4, node24 = label4+node24, ""
					// "}"
					if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "}" {
						goto fail23
					}
					node24 = parser.text[pos:pos+1]
					pos++
					label4, node24 = label4+node24, ""
				}
				goto ok25
			fail23:
				label4 = ""
				pos = pos22
			ok25:
			}
			labels[4] = parser.text[pos20:pos]
		}
		// setter:Setter?
		{
			pos26 := pos
			// Setter?
			{
				pos28 := pos
				label5 = new(Setter)
				// Setter
				if p, n := _SetterAction(parser, pos); n == nil {
					goto fail29
				} else {
					*label5 = *n
					pos = p
				}
				goto ok30
			fail29:
				label5 = nil
				pos = pos28
			ok30:
			}
			labels[5] = parser.text[pos26:pos]
		}
		node = func(
			start, end int, body string, kind string, ret TypeName, rn recvName, setter *Setter, tparms *[]TParm) Member {
			p := Member{
				Kind:   kind,
				Recv:   rn.recv,
				Name:   rn.name,
				Ret:    &ret,
				Body:   body != "",
				Setter: setter,
			}
			if tparms != nil {
				p.TParms = *tparms
			}
			return Member(p)
		}(
			start0, pos, label4, label0, label3, label2, label5, label1)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _RecvNameAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [3]string
	use(labels)
	if dp, de, ok := _memo(parser, _RecvName, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// recv:TypeName _ "." _ name:Ident {…}/_ name2:Ident {…}
	{
		pos3 := pos
		// action
		// recv:TypeName _ "." _ name:Ident
		// recv:TypeName
		{
			pos6 := pos
			// TypeName
			if !_accept(parser, _TypeNameAccepts, &pos, &perr) {
				goto fail4
			}
			labels[0] = parser.text[pos6:pos]
		}
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail4
		}
		// "."
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "." {
			perr = _max(perr, pos)
			goto fail4
		}
		pos++
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail4
		}
		// name:Ident
		{
			pos7 := pos
			// Ident
			if !_accept(parser, _IdentAccepts, &pos, &perr) {
				goto fail4
			}
			labels[1] = parser.text[pos7:pos]
		}
		goto ok0
	fail4:
		pos = pos3
		// action
		// _ name2:Ident
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail8
		}
		// name2:Ident
		{
			pos10 := pos
			// Ident
			if !_accept(parser, _IdentAccepts, &pos, &perr) {
				goto fail8
			}
			labels[2] = parser.text[pos10:pos]
		}
		goto ok0
	fail8:
		pos = pos3
		goto fail
	ok0:
	}
	return _memoize(parser, _RecvName, start, pos, perr)
fail:
	return _memoize(parser, _RecvName, start, -1, perr)
}

func _RecvNameFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [3]string
	use(labels)
	pos, failure := _failMemo(parser, _RecvName, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "RecvName",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _RecvName}
	// recv:TypeName _ "." _ name:Ident {…}/_ name2:Ident {…}
	{
		pos3 := pos
		// action
		// recv:TypeName _ "." _ name:Ident
		// recv:TypeName
		{
			pos6 := pos
			// TypeName
			if !_fail(parser, _TypeNameFail, errPos, failure, &pos) {
				goto fail4
			}
			labels[0] = parser.text[pos6:pos]
		}
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail4
		}
		// "."
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "." {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\".\"",
					})
			}
			goto fail4
		}
		pos++
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail4
		}
		// name:Ident
		{
			pos7 := pos
			// Ident
			if !_fail(parser, _IdentFail, errPos, failure, &pos) {
				goto fail4
			}
			labels[1] = parser.text[pos7:pos]
		}
		goto ok0
	fail4:
		pos = pos3
		// action
		// _ name2:Ident
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail8
		}
		// name2:Ident
		{
			pos10 := pos
			// Ident
			if !_fail(parser, _IdentFail, errPos, failure, &pos) {
				goto fail8
			}
			labels[2] = parser.text[pos10:pos]
		}
		goto ok0
	fail8:
		pos = pos3
		goto fail
	ok0:
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _RecvNameAction(parser *_Parser, start int) (int, *recvName) {
	var labels [3]string
	use(labels)
	var label0 TypeName
	var label1 string
	var label2 string
	dp := parser.deltaPos[start][_RecvName]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _RecvName}
	n := parser.act[key]
	if n != nil {
		n := n.(recvName)
		return start + int(dp-1), &n
	}
	var node recvName
	pos := start
	// recv:TypeName _ "." _ name:Ident {…}/_ name2:Ident {…}
	{
		pos3 := pos
		var node2 recvName
		// action
		{
			start5 := pos
			// recv:TypeName _ "." _ name:Ident
			// recv:TypeName
			{
				pos7 := pos
				// TypeName
				if p, n := _TypeNameAction(parser, pos); n == nil {
					goto fail4
				} else {
					label0 = *n
					pos = p
				}
				labels[0] = parser.text[pos7:pos]
			}
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail4
			} else {
				pos = p
			}
			// "."
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "." {
				goto fail4
			}
			pos++
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail4
			} else {
				pos = p
			}
			// name:Ident
			{
				pos8 := pos
				// Ident
				if p, n := _IdentAction(parser, pos); n == nil {
					goto fail4
				} else {
					label1 = *n
					pos = p
				}
				labels[1] = parser.text[pos8:pos]
			}
			node = func(
				start, end int, name string, recv TypeName) recvName {
				return recvName{recv: &recv, name: name}
			}(
				start5, pos, label1, label0)
		}
		goto ok0
	fail4:
		node = node2
		pos = pos3
		// action
		{
			start10 := pos
			// _ name2:Ident
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail9
			} else {
				pos = p
			}
			// name2:Ident
			{
				pos12 := pos
				// Ident
				if p, n := _IdentAction(parser, pos); n == nil {
					goto fail9
				} else {
					label2 = *n
					pos = p
				}
				labels[2] = parser.text[pos12:pos]
			}
			node = func(
				start, end int, name string, name2 string, recv TypeName) recvName {
				return recvName{name: name2}
			}(
				start10, pos, label1, label2, label0)
		}
		goto ok0
	fail9:
		node = node2
		pos = pos3
		goto fail
	ok0:
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _SetterAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [2]string
	use(labels)
	if dp, de, ok := _memo(parser, _Setter, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// _ s:(vis:SetterVis* "set" !IdentC {…})
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// s:(vis:SetterVis* "set" !IdentC {…})
	{
		pos1 := pos
		// (vis:SetterVis* "set" !IdentC {…})
		// action
		// vis:SetterVis* "set" !IdentC
		// vis:SetterVis*
		{
			pos3 := pos
			// SetterVis*
			for {
				pos5 := pos
				// SetterVis
				if !_accept(parser, _SetterVisAccepts, &pos, &perr) {
					goto fail7
				}
				continue
			fail7:
				pos = pos5
				break
			}
			labels[0] = parser.text[pos3:pos]
		}
		// "set"
		if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "set" {
			perr = _max(perr, pos)
			goto fail
		}
		pos += 3
		// !IdentC
		{
			pos9 := pos
			perr11 := perr
			// IdentC
			if !_accept(parser, _IdentCAccepts, &pos, &perr) {
				goto ok8
			}
			pos = pos9
			perr = _max(perr11, pos)
			goto fail
		ok8:
			pos = pos9
			perr = perr11
		}
		labels[1] = parser.text[pos1:pos]
	}
	return _memoize(parser, _Setter, start, pos, perr)
fail:
	return _memoize(parser, _Setter, start, -1, perr)
}

func _SetterFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [2]string
	use(labels)
	pos, failure := _failMemo(parser, _Setter, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Setter",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Setter}
	// action
	// _ s:(vis:SetterVis* "set" !IdentC {…})
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// s:(vis:SetterVis* "set" !IdentC {…})
	{
		pos1 := pos
		// (vis:SetterVis* "set" !IdentC {…})
		// action
		// vis:SetterVis* "set" !IdentC
		// vis:SetterVis*
		{
			pos3 := pos
			// SetterVis*
			for {
				pos5 := pos
				// SetterVis
				if !_fail(parser, _SetterVisFail, errPos, failure, &pos) {
					goto fail7
				}
				continue
			fail7:
				pos = pos5
				break
			}
			labels[0] = parser.text[pos3:pos]
		}
		// "set"
		if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "set" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\"set\"",
					})
			}
			goto fail
		}
		pos += 3
		// !IdentC
		{
			pos9 := pos
			nkids10 := len(failure.Kids)
			// IdentC
			if !_fail(parser, _IdentCFail, errPos, failure, &pos) {
				goto ok8
			}
			pos = pos9
			failure.Kids = failure.Kids[:nkids10]
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "!IdentC",
					})
			}
			goto fail
		ok8:
			pos = pos9
			failure.Kids = failure.Kids[:nkids10]
		}
		labels[1] = parser.text[pos1:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _SetterAction(parser *_Parser, start int) (int, *Setter) {
	var labels [2]string
	use(labels)
	var label0 string
	var label1 Setter
	dp := parser.deltaPos[start][_Setter]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Setter}
	n := parser.act[key]
	if n != nil {
		n := n.(Setter)
		return start + int(dp-1), &n
	}
	var node Setter
	pos := start
	// action
	{
		start0 := pos
		// _ s:(vis:SetterVis* "set" !IdentC {…})
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// s:(vis:SetterVis* "set" !IdentC {…})
		{
			pos2 := pos
			// (vis:SetterVis* "set" !IdentC {…})
			// action
			{
				start3 := pos
				// vis:SetterVis* "set" !IdentC
				// vis:SetterVis*
				{
					pos5 := pos
					// SetterVis*
					for {
						pos7 := pos
						var node8 string
						// SetterVis
						if p, n := _SetterVisAction(parser, pos); n == nil {
							goto fail9
						} else {
							node8 = *n
							pos = p
						}
						label0 += node8
						continue
					fail9:
						pos = pos7
						break
					}
					labels[0] = parser.text[pos5:pos]
				}
				// "set"
				if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "set" {
					goto fail
				}
				pos += 3
				// !IdentC
				{
					pos11 := pos
					// IdentC
					if p, n := _IdentCAction(parser, pos); n == nil {
						goto ok10
					} else {
						pos = p
					}
					pos = pos11
					goto fail
				ok10:
					pos = pos11
				}
				label1 = func(
					start, end int, vis string) Setter {
					s := Setter{Range: rng(parser, start, end)}
					if len(vis) > 0 {
						s.Vis = vis[len(vis)-1]
					}
					return Setter(s)
				}(
					start3, pos, label0)
			}
			labels[1] = parser.text[pos2:pos]
		}
		node = func(
			start, end int, s Setter, vis string) Setter {
			return Setter(s)
		}(
			start0, pos, label1, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _SetterVisAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _SetterVis, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// v:Vis _
	// v:Vis
	{
		pos1 := pos
		// Vis
		if !_accept(parser, _VisAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	return _memoize(parser, _SetterVis, start, pos, perr)
fail:
	return _memoize(parser, _SetterVis, start, -1, perr)
}

func _SetterVisFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _SetterVis, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "SetterVis",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _SetterVis}
	// action
	// v:Vis _
	// v:Vis
	{
		pos1 := pos
		// Vis
		if !_fail(parser, _VisFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _SetterVisAction(parser *_Parser, start int) (int, *string) {
	var labels [1]string
	use(labels)
	var label0 string
	dp := parser.deltaPos[start][_SetterVis]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _SetterVis}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// action
	{
		start0 := pos
		// v:Vis _
		// v:Vis
		{
			pos2 := pos
			// Vis
			if p, n := _VisAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos2:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		node = func(
			start, end int, v string) string {
			return string(v)
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _VisAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _Vis, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// v:("public"/"protected"/"internal"/"private") !IdentC
	// v:("public"/"protected"/"internal"/"private")
	{
		pos1 := pos
		// ("public"/"protected"/"internal"/"private")
		// "public"/"protected"/"internal"/"private"
		{
			pos5 := pos
			// "public"
			if len(parser.text[pos:]) < 6 || parser.text[pos:pos+6] != "public" {
				perr = _max(perr, pos)
				goto fail6
			}
			pos += 6
			goto ok2
		fail6:
			pos = pos5
			// "protected"
			if len(parser.text[pos:]) < 9 || parser.text[pos:pos+9] != "protected" {
				perr = _max(perr, pos)
				goto fail7
			}
			pos += 9
			goto ok2
		fail7:
			pos = pos5
			// "internal"
			if len(parser.text[pos:]) < 8 || parser.text[pos:pos+8] != "internal" {
				perr = _max(perr, pos)
				goto fail8
			}
			pos += 8
			goto ok2
		fail8:
			pos = pos5
			// "private"
			if len(parser.text[pos:]) < 7 || parser.text[pos:pos+7] != "private" {
				perr = _max(perr, pos)
				goto fail9
			}
			pos += 7
			goto ok2
		fail9:
			pos = pos5
			goto fail
		ok2:
		}
		labels[0] = parser.text[pos1:pos]
	}
	// !IdentC
	{
		pos11 := pos
		perr13 := perr
		// IdentC
		if !_accept(parser, _IdentCAccepts, &pos, &perr) {
			goto ok10
		}
		pos = pos11
		perr = _max(perr13, pos)
		goto fail
	ok10:
		pos = pos11
		perr = perr13
	}
	return _memoize(parser, _Vis, start, pos, perr)
fail:
	return _memoize(parser, _Vis, start, -1, perr)
}

func _VisFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _Vis, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Vis",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Vis}
	// action
	// v:("public"/"protected"/"internal"/"private") !IdentC
	// v:("public"/"protected"/"internal"/"private")
	{
		pos1 := pos
		// ("public"/"protected"/"internal"/"private")
		// "public"/"protected"/"internal"/"private"
		{
			pos5 := pos
			// "public"
			if len(parser.text[pos:]) < 6 || parser.text[pos:pos+6] != "public" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
							Pos:  int(pos),
							Want: "\"public\"",
						})
				}
				goto fail6
			}
			pos += 6
			goto ok2
		fail6:
			pos = pos5
			// "protected"
			if len(parser.text[pos:]) < 9 || parser.text[pos:pos+9] != "protected" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
							Pos:  int(pos),
							Want: "\"protected\"",
						})
				}
				goto fail7
			}
			pos += 9
			goto ok2
		fail7:
			pos = pos5
			// "internal"
			if len(parser.text[pos:]) < 8 || parser.text[pos:pos+8] != "internal" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
							Pos:  int(pos),
							Want: "\"internal\"",
						})
				}
				goto fail8
			}
			pos += 8
			goto ok2
		fail8:
			pos = pos5
			// "private"
			if len(parser.text[pos:]) < 7 || parser.text[pos:pos+7] != "private" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
							Pos:  int(pos),
							Want: "\"private\"",
						})
				}
				goto fail9
			}
			pos += 7
			goto ok2
		fail9:
			pos = pos5
			goto fail
		ok2:
		}
		labels[0] = parser.text[pos1:pos]
	}
	// !IdentC
	{
		pos11 := pos
		nkids12 := len(failure.Kids)
		// IdentC
		if !_fail(parser, _IdentCFail, errPos, failure, &pos) {
			goto ok10
		}
		pos = pos11
		failure.Kids = failure.Kids[:nkids12]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "!IdentC",
				})
		}
		goto fail
	ok10:
		pos = pos11
		failure.Kids = failure.Kids[:nkids12]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _VisAction(parser *_Parser, start int) (int, *string) {
	var labels [1]string
	use(labels)
	var label0 string
	dp := parser.deltaPos[start][_Vis]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Vis}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// action
	{
		start0 := pos
		// v:("public"/"protected"/"internal"/"private") !IdentC
		// v:("public"/"protected"/"internal"/"private")
		{
			pos2 := pos
			// ("public"/"protected"/"internal"/"private")
			// "public"/"protected"/"internal"/"private"
			{
				pos6 := pos
				var node5 string
				// "public"
				if len(parser.text[pos:]) < 6 || parser.text[pos:pos+6] != "public" {
					goto fail7
				}
				label0 = parser.text[pos:pos+6]
				pos += 6
				goto ok3
			fail7:
				label0 = node5
				pos = pos6
				// "protected"
				if len(parser.text[pos:]) < 9 || parser.text[pos:pos+9] != "protected" {
					goto fail8
				}
				label0 = parser.text[pos:pos+9]
				pos += 9
				goto ok3
			fail8:
				label0 = node5
				pos = pos6
				// "internal"
				if len(parser.text[pos:]) < 8 || parser.text[pos:pos+8] != "internal" {
					goto fail9
				}
				label0 = parser.text[pos:pos+8]
				pos += 8
				goto ok3
			fail9:
				label0 = node5
				pos = pos6
				// "private"
				if len(parser.text[pos:]) < 7 || parser.text[pos:pos+7] != "private" {
					goto fail10
				}
				label0 = parser.text[pos:pos+7]
				pos += 7
				goto ok3
			fail10:
				label0 = node5
				pos = pos6
				goto fail
			ok3:
			}
			labels[0] = parser.text[pos2:pos]
		}
		// !IdentC
		{
			pos12 := pos
			// IdentC
			if p, n := _IdentCAction(parser, pos); n == nil {
				goto ok11
			} else {
				pos = p
			}
			pos = pos12
			goto fail
		ok11:
			pos = pos12
		}
		node = func(
			start, end int, v string) string {
			return string(v)
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _ParmsAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _Parms, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// _ "(" ps:ParmList? _ ")"
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "("
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "(" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// ps:ParmList?
	{
		pos1 := pos
		// ParmList?
		{
			pos3 := pos
			// ParmList
			if !_accept(parser, _ParmListAccepts, &pos, &perr) {
				goto fail4
			}
			goto ok5
		fail4:
			pos = pos3
		ok5:
		}
		labels[0] = parser.text[pos1:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// ")"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	return _memoize(parser, _Parms, start, pos, perr)
fail:
	return _memoize(parser, _Parms, start, -1, perr)
}

func _ParmsFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _Parms, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Parms",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Parms}
	// action
	// _ "(" ps:ParmList? _ ")"
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "("
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "(" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"(\"",
				})
		}
		goto fail
	}
	pos++
	// ps:ParmList?
	{
		pos1 := pos
		// ParmList?
		{
			pos3 := pos
			// ParmList
			if !_fail(parser, _ParmListFail, errPos, failure, &pos) {
				goto fail4
			}
			goto ok5
		fail4:
			pos = pos3
		ok5:
		}
		labels[0] = parser.text[pos1:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// ")"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\")\"",
				})
		}
		goto fail
	}
	pos++
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _ParmsAction(parser *_Parser, start int) (int, *[]Parm) {
	var labels [1]string
	use(labels)
	var label0 *[]Parm
	dp := parser.deltaPos[start][_Parms]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Parms}
	n := parser.act[key]
	if n != nil {
		n := n.([]Parm)
		return start + int(dp-1), &n
	}
	var node []Parm
	pos := start
	// action
	{
		start0 := pos
		// _ "(" ps:ParmList? _ ")"
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "("
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "(" {
			goto fail
		}
		pos++
		// ps:ParmList?
		{
			pos2 := pos
			// ParmList?
			{
				pos4 := pos
				label0 = new([]Parm)
				// ParmList
				if p, n := _ParmListAction(parser, pos); n == nil {
					goto fail5
				} else {
					*label0 = *n
					pos = p
				}
				goto ok6
			fail5:
				label0 = nil
				pos = pos4
			ok6:
			}
			labels[0] = parser.text[pos2:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// ")"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
			goto fail
		}
		pos++
		node = func(
			start, end int, ps *[]Parm) []Parm {
			if ps == nil {
				return []Parm(nil)
			}
			return []Parm(*ps)
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _ParmListAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [3]string
	use(labels)
	if dp, de, ok := _memo(parser, _ParmList, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// p0:Parm ps:(_ "," p:Parm {…})*
	// p0:Parm
	{
		pos1 := pos
		// Parm
		if !_accept(parser, _ParmAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// ps:(_ "," p:Parm {…})*
	{
		pos2 := pos
		// (_ "," p:Parm {…})*
		for {
			pos4 := pos
			// (_ "," p:Parm {…})
			// action
			// _ "," p:Parm
			// _
			if !_accept(parser, __Accepts, &pos, &perr) {
				goto fail6
			}
			// ","
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
				perr = _max(perr, pos)
				goto fail6
			}
			pos++
			// p:Parm
			{
				pos8 := pos
				// Parm
				if !_accept(parser, _ParmAccepts, &pos, &perr) {
					goto fail6
				}
				labels[1] = parser.text[pos8:pos]
			}
			continue
		fail6:
			pos = pos4
			break
		}
		labels[2] = parser.text[pos2:pos]
	}
	return _memoize(parser, _ParmList, start, pos, perr)
fail:
	return _memoize(parser, _ParmList, start, -1, perr)
}

func _ParmListFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [3]string
	use(labels)
	pos, failure := _failMemo(parser, _ParmList, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "ParmList",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _ParmList}
	// action
	// p0:Parm ps:(_ "," p:Parm {…})*
	// p0:Parm
	{
		pos1 := pos
		// Parm
		if !_fail(parser, _ParmFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// ps:(_ "," p:Parm {…})*
	{
		pos2 := pos
		// (_ "," p:Parm {…})*
		for {
			pos4 := pos
			// (_ "," p:Parm {…})
			// action
			// _ "," p:Parm
			// _
			if !_fail(parser, __Fail, errPos, failure, &pos) {
				goto fail6
			}
			// ","
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
							Pos:  int(pos),
							Want: "\",\"",
						})
				}
				goto fail6
			}
			pos++
			// p:Parm
			{
				pos8 := pos
				// Parm
				if !_fail(parser, _ParmFail, errPos, failure, &pos) {
					goto fail6
				}
				labels[1] = parser.text[pos8:pos]
			}
			continue
		fail6:
			pos = pos4
			break
		}
		labels[2] = parser.text[pos2:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _ParmListAction(parser *_Parser, start int) (int, *[]Parm) {
	var labels [3]string
	use(labels)
	var label0 Parm
	var label1 Parm
	var label2 []Parm
	dp := parser.deltaPos[start][_ParmList]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _ParmList}
	n := parser.act[key]
	if n != nil {
		n := n.([]Parm)
		return start + int(dp-1), &n
	}
	var node []Parm
	pos := start
	// action
	{
		start0 := pos
		// p0:Parm ps:(_ "," p:Parm {…})*
		// p0:Parm
		{
			pos2 := pos
			// Parm
			if p, n := _ParmAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos2:pos]
		}
		// ps:(_ "," p:Parm {…})*
		{
			pos3 := pos
			// (_ "," p:Parm {…})*
			for {
				pos5 := pos
				var node6 Parm
				// (_ "," p:Parm {…})
				// action
				{
					start8 := pos
					// _ "," p:Parm
					// _
					if p, n := __Action(parser, pos); n == nil {
						goto fail7
					} else {
						pos = p
					}
					// ","
					if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
						goto fail7
					}
					pos++
					// p:Parm
					{
						pos10 := pos
						// Parm
						if p, n := _ParmAction(parser, pos); n == nil {
							goto fail7
						} else {
							label1 = *n
							pos = p
						}
						labels[1] = parser.text[pos10:pos]
					}
					node6 = func(
						start, end int, p Parm, p0 Parm) Parm {
						return Parm(p)
					}(
						start8, pos, label1, label0)
				}
				label2 = append(label2, node6)
				continue
			fail7:
				pos = pos5
				break
			}
			labels[2] = parser.text[pos3:pos]
		}
		node = func(
			start, end int, p Parm, p0 Parm, ps []Parm) []Parm {
			return []Parm(append([]Parm{p0}, ps...))
		}(
			start0, pos, label1, label0, label2)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _ParmAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [3]string
	use(labels)
	if dp, de, ok := _memo(parser, _Parm, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// _ p:(name:Ident _ ":" t:TypeName {…})
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// p:(name:Ident _ ":" t:TypeName {…})
	{
		pos1 := pos
		// (name:Ident _ ":" t:TypeName {…})
		// action
		// name:Ident _ ":" t:TypeName
		// name:Ident
		{
			pos3 := pos
			// Ident
			if !_accept(parser, _IdentAccepts, &pos, &perr) {
				goto fail
			}
			labels[0] = parser.text[pos3:pos]
		}
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail
		}
		// ":"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ":" {
			perr = _max(perr, pos)
			goto fail
		}
		pos++
		// t:TypeName
		{
			pos4 := pos
			// TypeName
			if !_accept(parser, _TypeNameAccepts, &pos, &perr) {
				goto fail
			}
			labels[1] = parser.text[pos4:pos]
		}
		labels[2] = parser.text[pos1:pos]
	}
	return _memoize(parser, _Parm, start, pos, perr)
fail:
	return _memoize(parser, _Parm, start, -1, perr)
}

func _ParmFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [3]string
	use(labels)
	pos, failure := _failMemo(parser, _Parm, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Parm",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Parm}
	// action
	// _ p:(name:Ident _ ":" t:TypeName {…})
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// p:(name:Ident _ ":" t:TypeName {…})
	{
		pos1 := pos
		// (name:Ident _ ":" t:TypeName {…})
		// action
		// name:Ident _ ":" t:TypeName
		// name:Ident
		{
			pos3 := pos
			// Ident
			if !_fail(parser, _IdentFail, errPos, failure, &pos) {
				goto fail
			}
			labels[0] = parser.text[pos3:pos]
		}
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail
		}
		// ":"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ":" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\":\"",
					})
			}
			goto fail
		}
		pos++
		// t:TypeName
		{
			pos4 := pos
			// TypeName
			if !_fail(parser, _TypeNameFail, errPos, failure, &pos) {
				goto fail
			}
			labels[1] = parser.text[pos4:pos]
		}
		labels[2] = parser.text[pos1:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _ParmAction(parser *_Parser, start int) (int, *Parm) {
	var labels [3]string
	use(labels)
	var label0 string
	var label1 TypeName
	var label2 Parm
	dp := parser.deltaPos[start][_Parm]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Parm}
	n := parser.act[key]
	if n != nil {
		n := n.(Parm)
		return start + int(dp-1), &n
	}
	var node Parm
	pos := start
	// action
	{
		start0 := pos
		// _ p:(name:Ident _ ":" t:TypeName {…})
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// p:(name:Ident _ ":" t:TypeName {…})
		{
			pos2 := pos
			// (name:Ident _ ":" t:TypeName {…})
			// action
			{
				start3 := pos
				// name:Ident _ ":" t:TypeName
				// name:Ident
				{
					pos5 := pos
					// Ident
					if p, n := _IdentAction(parser, pos); n == nil {
						goto fail
					} else {
						label0 = *n
						pos = p
					}
					labels[0] = parser.text[pos5:pos]
				}
				// _
				if p, n := __Action(parser, pos); n == nil {
					goto fail
				} else {
					pos = p
				}
				// ":"
				if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ":" {
					goto fail
				}
				pos++
				// t:TypeName
				{
					pos6 := pos
					// TypeName
					if p, n := _TypeNameAction(parser, pos); n == nil {
						goto fail
					} else {
						label1 = *n
						pos = p
					}
					labels[1] = parser.text[pos6:pos]
				}
				label2 = func(
					start, end int, name string, t TypeName) Parm {
					return Parm{Range: rng(parser, start, end), Name: name, Type: t}
				}(
					start3, pos, label0, label1)
			}
			labels[2] = parser.text[pos2:pos]
		}
		node = func(
			start, end int, name string, p Parm, t TypeName) Parm {
			return Parm(p)
		}(
			start0, pos, label0, label2, label1)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _TParmsAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [3]string
	use(labels)
	if dp, de, ok := _memo(parser, _TParms, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// _ "<" t0:TParm ts:(_ "," t:TParm {…})* _ ">"
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "<"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "<" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// t0:TParm
	{
		pos1 := pos
		// TParm
		if !_accept(parser, _TParmAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// ts:(_ "," t:TParm {…})*
	{
		pos2 := pos
		// (_ "," t:TParm {…})*
		for {
			pos4 := pos
			// (_ "," t:TParm {…})
			// action
			// _ "," t:TParm
			// _
			if !_accept(parser, __Accepts, &pos, &perr) {
				goto fail6
			}
			// ","
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
				perr = _max(perr, pos)
				goto fail6
			}
			pos++
			// t:TParm
			{
				pos8 := pos
				// TParm
				if !_accept(parser, _TParmAccepts, &pos, &perr) {
					goto fail6
				}
				labels[1] = parser.text[pos8:pos]
			}
			continue
		fail6:
			pos = pos4
			break
		}
		labels[2] = parser.text[pos2:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// ">"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ">" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	return _memoize(parser, _TParms, start, pos, perr)
fail:
	return _memoize(parser, _TParms, start, -1, perr)
}

func _TParmsFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [3]string
	use(labels)
	pos, failure := _failMemo(parser, _TParms, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "TParms",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _TParms}
	// action
	// _ "<" t0:TParm ts:(_ "," t:TParm {…})* _ ">"
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "<"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "<" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"<\"",
				})
		}
		goto fail
	}
	pos++
	// t0:TParm
	{
		pos1 := pos
		// TParm
		if !_fail(parser, _TParmFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// ts:(_ "," t:TParm {…})*
	{
		pos2 := pos
		// (_ "," t:TParm {…})*
		for {
			pos4 := pos
			// (_ "," t:TParm {…})
			// action
			// _ "," t:TParm
			// _
			if !_fail(parser, __Fail, errPos, failure, &pos) {
				goto fail6
			}
			// ","
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
							Pos:  int(pos),
							Want: "\",\"",
						})
				}
				goto fail6
			}
			pos++
			// t:TParm
			{
				pos8 := pos
				// TParm
				if !_fail(parser, _TParmFail, errPos, failure, &pos) {
					goto fail6
				}
				labels[1] = parser.text[pos8:pos]
			}
			continue
		fail6:
			pos = pos4
			break
		}
		labels[2] = parser.text[pos2:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// ">"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ">" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\">\"",
				})
		}
		goto fail
	}
	pos++
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _TParmsAction(parser *_Parser, start int) (int, *[]TParm) {
	var labels [3]string
	use(labels)
	var label0 TParm
	var label1 TParm
	var label2 []TParm
	dp := parser.deltaPos[start][_TParms]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _TParms}
	n := parser.act[key]
	if n != nil {
		n := n.([]TParm)
		return start + int(dp-1), &n
	}
	var node []TParm
	pos := start
	// action
	{
		start0 := pos
		// _ "<" t0:TParm ts:(_ "," t:TParm {…})* _ ">"
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "<"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "<" {
			goto fail
		}
		pos++
		// t0:TParm
		{
			pos2 := pos
			// TParm
			if p, n := _TParmAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos2:pos]
		}
		// ts:(_ "," t:TParm {…})*
		{
			pos3 := pos
			// (_ "," t:TParm {…})*
			for {
				pos5 := pos
				var node6 TParm
				// (_ "," t:TParm {…})
				// action
				{
					start8 := pos
					// _ "," t:TParm
					// _
					if p, n := __Action(parser, pos); n == nil {
						goto fail7
					} else {
						pos = p
					}
					// ","
					if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
						goto fail7
					}
					pos++
					// t:TParm
					{
						pos10 := pos
						// TParm
						if p, n := _TParmAction(parser, pos); n == nil {
							goto fail7
						} else {
							label1 = *n
							pos = p
						}
						labels[1] = parser.text[pos10:pos]
					}
					node6 = func(
						start, end int, t TParm, t0 TParm) TParm {
						return TParm(t)
					}(
						start8, pos, label1, label0)
				}
				label2 = append(label2, node6)
				continue
			fail7:
				pos = pos5
				break
			}
			labels[2] = parser.text[pos3:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// ">"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ">" {
			goto fail
		}
		pos++
		node = func(
			start, end int, t TParm, t0 TParm, ts []TParm) []TParm {
			return []TParm(append([]TParm{t0}, ts...))
		}(
			start0, pos, label1, label0, label2)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _TParmAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [5]string
	use(labels)
	if dp, de, ok := _memo(parser, _TParm, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// _ tp:(variance:Variance? _ name:Ident bound:(_ ":" b:TypeName {…})? {…})
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// tp:(variance:Variance? _ name:Ident bound:(_ ":" b:TypeName {…})? {…})
	{
		pos1 := pos
		// (variance:Variance? _ name:Ident bound:(_ ":" b:TypeName {…})? {…})
		// action
		// variance:Variance? _ name:Ident bound:(_ ":" b:TypeName {…})?
		// variance:Variance?
		{
			pos3 := pos
			// Variance?
			{
				pos5 := pos
				// Variance
				if !_accept(parser, _VarianceAccepts, &pos, &perr) {
					goto fail6
				}
				goto ok7
			fail6:
				pos = pos5
			ok7:
			}
			labels[0] = parser.text[pos3:pos]
		}
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail
		}
		// name:Ident
		{
			pos8 := pos
			// Ident
			if !_accept(parser, _IdentAccepts, &pos, &perr) {
				goto fail
			}
			labels[1] = parser.text[pos8:pos]
		}
		// bound:(_ ":" b:TypeName {…})?
		{
			pos9 := pos
			// (_ ":" b:TypeName {…})?
			{
				pos11 := pos
				// (_ ":" b:TypeName {…})
				// action
				// _ ":" b:TypeName
				// _
				if !_accept(parser, __Accepts, &pos, &perr) {
					goto fail12
				}
				// ":"
				if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ":" {
					perr = _max(perr, pos)
					goto fail12
				}
				pos++
				// b:TypeName
				{
					pos14 := pos
					// TypeName
					if !_accept(parser, _TypeNameAccepts, &pos, &perr) {
						goto fail12
					}
					labels[2] = parser.text[pos14:pos]
				}
				goto ok15
			fail12:
				pos = pos11
			ok15:
			}
			labels[3] = parser.text[pos9:pos]
		}
		labels[4] = parser.text[pos1:pos]
	}
	return _memoize(parser, _TParm, start, pos, perr)
fail:
	return _memoize(parser, _TParm, start, -1, perr)
}

func _TParmFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [5]string
	use(labels)
	pos, failure := _failMemo(parser, _TParm, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "TParm",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _TParm}
	// action
	// _ tp:(variance:Variance? _ name:Ident bound:(_ ":" b:TypeName {…})? {…})
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// tp:(variance:Variance? _ name:Ident bound:(_ ":" b:TypeName {…})? {…})
	{
		pos1 := pos
		// (variance:Variance? _ name:Ident bound:(_ ":" b:TypeName {…})? {…})
		// action
		// variance:Variance? _ name:Ident bound:(_ ":" b:TypeName {…})?
		// variance:Variance?
		{
			pos3 := pos
			// Variance?
			{
				pos5 := pos
				// Variance
				if !_fail(parser, _VarianceFail, errPos, failure, &pos) {
					goto fail6
				}
				goto ok7
			fail6:
				pos = pos5
			ok7:
			}
			labels[0] = parser.text[pos3:pos]
		}
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail
		}
		// name:Ident
		{
			pos8 := pos
			// Ident
			if !_fail(parser, _IdentFail, errPos, failure, &pos) {
				goto fail
			}
			labels[1] = parser.text[pos8:pos]
		}
		// bound:(_ ":" b:TypeName {…})?
		{
			pos9 := pos
			// (_ ":" b:TypeName {…})?
			{
				pos11 := pos
				// (_ ":" b:TypeName {…})
				// action
				// _ ":" b:TypeName
				// _
				if !_fail(parser, __Fail, errPos, failure, &pos) {
					goto fail12
				}
				// ":"
				if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ":" {
					if pos >= errPos {
						failure.Kids = append(failure.Kids, &peg.Fail{
								Pos:  int(pos),
								Want: "\":\"",
							})
					}
					goto fail12
				}
				pos++
				// b:TypeName
				{
					pos14 := pos
					// TypeName
					if !_fail(parser, _TypeNameFail, errPos, failure, &pos) {
						goto fail12
					}
					labels[2] = parser.text[pos14:pos]
				}
				goto ok15
			fail12:
				pos = pos11
			ok15:
			}
			labels[3] = parser.text[pos9:pos]
		}
		labels[4] = parser.text[pos1:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _TParmAction(parser *_Parser, start int) (int, *TParm) {
	var labels [5]string
	use(labels)
	var label0 string
	var label1 string
	var label2 TypeName
	var label3 *TypeName
	var label4 TParm
	dp := parser.deltaPos[start][_TParm]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _TParm}
	n := parser.act[key]
	if n != nil {
		n := n.(TParm)
		return start + int(dp-1), &n
	}
	var node TParm
	pos := start
	// action
	{
		start0 := pos
		// _ tp:(variance:Variance? _ name:Ident bound:(_ ":" b:TypeName {…})? {…})
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// tp:(variance:Variance? _ name:Ident bound:(_ ":" b:TypeName {…})? {…})
		{
			pos2 := pos
			// (variance:Variance? _ name:Ident bound:(_ ":" b:TypeName {…})? {…})
			// action
			{
				start3 := pos
				// variance:Variance? _ name:Ident bound:(_ ":" b:TypeName {…})?
				// variance:Variance?
				{
					pos5 := pos
					// Variance?
					{
						pos7 := pos
						// Variance
						if p, n := _VarianceAction(parser, pos); n == nil {
							goto fail8
						} else {
							label0 = *n
							pos = p
						}
						goto ok9
					fail8:
						label0 = ""
						pos = pos7
					ok9:
					}
					labels[0] = parser.text[pos5:pos]
				}
				// _
				if p, n := __Action(parser, pos); n == nil {
					goto fail
				} else {
					pos = p
				}
				// name:Ident
				{
					pos10 := pos
					// Ident
					if p, n := _IdentAction(parser, pos); n == nil {
						goto fail
					} else {
						label1 = *n
						pos = p
					}
					labels[1] = parser.text[pos10:pos]
				}
				// bound:(_ ":" b:TypeName {…})?
				{
					pos11 := pos
					// (_ ":" b:TypeName {…})?
					{
						pos13 := pos
						label3 = new(TypeName)
						// (_ ":" b:TypeName {…})
						// action
						{
							start15 := pos
							// _ ":" b:TypeName
							// _
							if p, n := __Action(parser, pos); n == nil {
								goto fail14
							} else {
								pos = p
							}
							// ":"
							if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ":" {
								goto fail14
							}
							pos++
							// b:TypeName
							{
								pos17 := pos
								// TypeName
								if p, n := _TypeNameAction(parser, pos); n == nil {
									goto fail14
								} else {
									label2 = *n
									pos = p
								}
								labels[2] = parser.text[pos17:pos]
							}
							*label3 = func(
								start, end int, b TypeName, name string, variance string) TypeName {
								return TypeName(b)
							}(
								start15, pos, label2, label1, label0)
						}
						goto ok18
					fail14:
						label3 = nil
						pos = pos13
					ok18:
					}
					labels[3] = parser.text[pos11:pos]
				}
				label4 = func(
					start, end int, b TypeName, bound *TypeName, name string, variance string) TParm {
					return TParm{Range: rng(parser, start, end), Variance: variance, Name: name, Bound: bound}
				}(
					start3, pos, label2, label3, label1, label0)
			}
			labels[4] = parser.text[pos2:pos]
		}
		node = func(
			start, end int, b TypeName, bound *TypeName, name string, tp TParm, variance string) TParm {
			return TParm(tp)
		}(
			start0, pos, label2, label3, label1, label4, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _VarianceAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _Variance, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// v:("in"/"out") !IdentC &(_ Ident)
	// v:("in"/"out")
	{
		pos1 := pos
		// ("in"/"out")
		// "in"/"out"
		{
			pos5 := pos
			// "in"
			if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "in" {
				perr = _max(perr, pos)
				goto fail6
			}
			pos += 2
			goto ok2
		fail6:
			pos = pos5
			// "out"
			if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "out" {
				perr = _max(perr, pos)
				goto fail7
			}
			pos += 3
			goto ok2
		fail7:
			pos = pos5
			goto fail
		ok2:
		}
		labels[0] = parser.text[pos1:pos]
	}
	// !IdentC
	{
		pos9 := pos
		perr11 := perr
		// IdentC
		if !_accept(parser, _IdentCAccepts, &pos, &perr) {
			goto ok8
		}
		pos = pos9
		perr = _max(perr11, pos)
		goto fail
	ok8:
		pos = pos9
		perr = perr11
	}
	// &(_ Ident)
	{
		pos13 := pos
		perr15 := perr
		// (_ Ident)
		// _ Ident
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail16
		}
		// Ident
		if !_accept(parser, _IdentAccepts, &pos, &perr) {
			goto fail16
		}
		goto ok12
	fail16:
		pos = pos13
		perr = _max(perr15, pos)
		goto fail
	ok12:
		pos = pos13
		perr = perr15
	}
	return _memoize(parser, _Variance, start, pos, perr)
fail:
	return _memoize(parser, _Variance, start, -1, perr)
}

func _VarianceFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _Variance, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Variance",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Variance}
	// action
	// v:("in"/"out") !IdentC &(_ Ident)
	// v:("in"/"out")
	{
		pos1 := pos
		// ("in"/"out")
		// "in"/"out"
		{
			pos5 := pos
			// "in"
			if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "in" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
							Pos:  int(pos),
							Want: "\"in\"",
						})
				}
				goto fail6
			}
			pos += 2
			goto ok2
		fail6:
			pos = pos5
			// "out"
			if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "out" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
							Pos:  int(pos),
							Want: "\"out\"",
						})
				}
				goto fail7
			}
			pos += 3
			goto ok2
		fail7:
			pos = pos5
			goto fail
		ok2:
		}
		labels[0] = parser.text[pos1:pos]
	}
	// !IdentC
	{
		pos9 := pos
		nkids10 := len(failure.Kids)
		// IdentC
		if !_fail(parser, _IdentCFail, errPos, failure, &pos) {
			goto ok8
		}
		pos = pos9
		failure.Kids = failure.Kids[:nkids10]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "!IdentC",
				})
		}
		goto fail
	ok8:
		pos = pos9
		failure.Kids = failure.Kids[:nkids10]
	}
	// &(_ Ident)
	{
		pos13 := pos
		nkids14 := len(failure.Kids)
		// (_ Ident)
		// _ Ident
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail16
		}
		// Ident
		if !_fail(parser, _IdentFail, errPos, failure, &pos) {
			goto fail16
		}
		goto ok12
	fail16:
		pos = pos13
		failure.Kids = failure.Kids[:nkids14]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "&(_ Ident)",
				})
		}
		goto fail
	ok12:
		pos = pos13
		failure.Kids = failure.Kids[:nkids14]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _VarianceAction(parser *_Parser, start int) (int, *string) {
	var labels [1]string
	use(labels)
	var label0 string
	dp := parser.deltaPos[start][_Variance]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Variance}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// action
	{
		start0 := pos
		// v:("in"/"out") !IdentC &(_ Ident)
		// v:("in"/"out")
		{
			pos2 := pos
			// ("in"/"out")
			// "in"/"out"
			{
				pos6 := pos
				var node5 string
				// "in"
				if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "in" {
					goto fail7
				}
				label0 = parser.text[pos:pos+2]
				pos += 2
				goto ok3
			fail7:
				label0 = node5
				pos = pos6
				// "out"
				if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "out" {
					goto fail8
				}
				label0 = parser.text[pos:pos+3]
				pos += 3
				goto ok3
			fail8:
				label0 = node5
				pos = pos6
				goto fail
			ok3:
			}
			labels[0] = parser.text[pos2:pos]
		}
		// !IdentC
		{
			pos10 := pos
			// IdentC
			if p, n := _IdentCAction(parser, pos); n == nil {
				goto ok9
			} else {
				pos = p
			}
			pos = pos10
			goto fail
		ok9:
			pos = pos10
		}
		// &(_ Ident)
		{
			pos14 := pos
			// (_ Ident)
			// _ Ident
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail17
			} else {
				pos = p
			}
			// Ident
			if p, n := _IdentAction(parser, pos); n == nil {
				goto fail17
			} else {
				pos = p
			}
			goto ok13
		fail17:
			pos = pos14
			goto fail
		ok13:
			pos = pos14
		}
		node = func(
			start, end int, v string) string {
			return string(v)
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _TypeNameAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [4]string
	use(labels)
	if dp, de, ok := _memo(parser, _TypeName, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// _ t:("error" !IdentC {…}/name:Ident args:TypeArgs? q:(_ "?")? {…})
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// t:("error" !IdentC {…}/name:Ident args:TypeArgs? q:(_ "?")? {…})
	{
		pos1 := pos
		// ("error" !IdentC {…}/name:Ident args:TypeArgs? q:(_ "?")? {…})
		// "error" !IdentC {…}/name:Ident args:TypeArgs? q:(_ "?")? {…}
		{
			pos5 := pos
			// action
			// "error" !IdentC
			// "error"
			if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "error" {
				perr = _max(perr, pos)
				goto fail6
			}
			pos += 5
			// !IdentC
			{
				pos9 := pos
				perr11 := perr
				// IdentC
				if !_accept(parser, _IdentCAccepts, &pos, &perr) {
					goto ok8
				}
				pos = pos9
				perr = _max(perr11, pos)
				goto fail6
			ok8:
				pos = pos9
				perr = perr11
			}
			goto ok2
		fail6:
			pos = pos5
			// action
			// name:Ident args:TypeArgs? q:(_ "?")?
			// name:Ident
			{
				pos14 := pos
				// Ident
				if !_accept(parser, _IdentAccepts, &pos, &perr) {
					goto fail12
				}
				labels[0] = parser.text[pos14:pos]
			}
			// args:TypeArgs?
			{
				pos15 := pos
				// TypeArgs?
				{
					pos17 := pos
					// TypeArgs
					if !_accept(parser, _TypeArgsAccepts, &pos, &perr) {
						goto fail18
					}
					goto ok19
				fail18:
					pos = pos17
				ok19:
				}
				labels[1] = parser.text[pos15:pos]
			}
			// q:(_ "?")?
			{
				pos20 := pos
				// (_ "?")?
				{
					pos22 := pos
					// (_ "?")
					// _ "?"
					// _
					if !_accept(parser, __Accepts, &pos, &perr) {
						goto fail23
					}
					// "?"
					if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "?" {
						perr = _max(perr, pos)
						goto fail23
					}
					pos++
					goto ok25
				fail23:
					pos = pos22
				ok25:
				}
				labels[2] = parser.text[pos20:pos]
			}
			goto ok2
		fail12:
			pos = pos5
			goto fail
		ok2:
		}
		labels[3] = parser.text[pos1:pos]
	}
	return _memoize(parser, _TypeName, start, pos, perr)
fail:
	return _memoize(parser, _TypeName, start, -1, perr)
}

func _TypeNameFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [4]string
	use(labels)
	pos, failure := _failMemo(parser, _TypeName, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "TypeName",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _TypeName}
	// action
	// _ t:("error" !IdentC {…}/name:Ident args:TypeArgs? q:(_ "?")? {…})
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// t:("error" !IdentC {…}/name:Ident args:TypeArgs? q:(_ "?")? {…})
	{
		pos1 := pos
		// ("error" !IdentC {…}/name:Ident args:TypeArgs? q:(_ "?")? {…})
		// "error" !IdentC {…}/name:Ident args:TypeArgs? q:(_ "?")? {…}
		{
			pos5 := pos
			// action
			// "error" !IdentC
			// "error"
			if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "error" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
							Pos:  int(pos),
							Want: "\"error\"",
						})
				}
				goto fail6
			}
			pos += 5
			// !IdentC
			{
				pos9 := pos
				nkids10 := len(failure.Kids)
				// IdentC
				if !_fail(parser, _IdentCFail, errPos, failure, &pos) {
					goto ok8
				}
				pos = pos9
				failure.Kids = failure.Kids[:nkids10]
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
							Pos:  int(pos),
							Want: "!IdentC",
						})
				}
				goto fail6
			ok8:
				pos = pos9
				failure.Kids = failure.Kids[:nkids10]
			}
			goto ok2
		fail6:
			pos = pos5
			// action
			// name:Ident args:TypeArgs? q:(_ "?")?
			// name:Ident
			{
				pos14 := pos
				// Ident
				if !_fail(parser, _IdentFail, errPos, failure, &pos) {
					goto fail12
				}
				labels[0] = parser.text[pos14:pos]
			}
			// args:TypeArgs?
			{
				pos15 := pos
				// TypeArgs?
				{
					pos17 := pos
					// TypeArgs
					if !_fail(parser, _TypeArgsFail, errPos, failure, &pos) {
						goto fail18
					}
					goto ok19
				fail18:
					pos = pos17
				ok19:
				}
				labels[1] = parser.text[pos15:pos]
			}
			// q:(_ "?")?
			{
				pos20 := pos
				// (_ "?")?
				{
					pos22 := pos
					// (_ "?")
					// _ "?"
					// _
					if !_fail(parser, __Fail, errPos, failure, &pos) {
						goto fail23
					}
					// "?"
					if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "?" {
						if pos >= errPos {
							failure.Kids = append(failure.Kids, &peg.Fail{
									Pos:  int(pos),
									Want: "\"?\"",
								})
						}
						goto fail23
					}
					pos++
					goto ok25
				fail23:
					pos = pos22
				ok25:
				}
				labels[2] = parser.text[pos20:pos]
			}
			goto ok2
		fail12:
			pos = pos5
			goto fail
		ok2:
		}
		labels[3] = parser.text[pos1:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _TypeNameAction(parser *_Parser, start int) (int, *TypeName) {
	var labels [4]string
	use(labels)
	var label0 string
	var label1 *[]TypeName
	var label2 string
	var label3 TypeName
	dp := parser.deltaPos[start][_TypeName]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _TypeName}
	n := parser.act[key]
	if n != nil {
		n := n.(TypeName)
		return start + int(dp-1), &n
	}
	var node TypeName
	pos := start
	// action
	{
		start0 := pos
		// _ t:("error" !IdentC {…}/name:Ident args:TypeArgs? q:(_ "?")? {…})
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// t:("error" !IdentC {…}/name:Ident args:TypeArgs? q:(_ "?")? {…})
		{
			pos2 := pos
			// ("error" !IdentC {…}/name:Ident args:TypeArgs? q:(_ "?")? {…})
			// "error" !IdentC {…}/name:Ident args:TypeArgs? q:(_ "?")? {…}
			{
				pos6 := pos
				var node5 TypeName
				// action
				{
					start8 := pos
					// "error" !IdentC
					// "error"
					if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "error" {
						goto fail7
					}
					pos += 5
					// !IdentC
					{
						pos11 := pos
						// IdentC
						if p, n := _IdentCAction(parser, pos); n == nil {
							goto ok10
						} else {
							pos = p
						}
						pos = pos11
						goto fail7
					ok10:
						pos = pos11
					}
					label3 = func(
						start, end int) TypeName {
						return TypeName{Range: rng(parser, start, end), Error: true}
					}(
						start8, pos)
				}
				goto ok3
			fail7:
				label3 = node5
				pos = pos6
				// action
				{
					start15 := pos
					// name:Ident args:TypeArgs? q:(_ "?")?
					// name:Ident
					{
						pos17 := pos
						// Ident
						if p, n := _IdentAction(parser, pos); n == nil {
							goto fail14
						} else {
							label0 = *n
							pos = p
						}
						labels[0] = parser.text[pos17:pos]
					}
					// args:TypeArgs?
					{
						pos18 := pos
						// TypeArgs?
						{
							pos20 := pos
							label1 = new([]TypeName)
							// TypeArgs
							if p, n := _TypeArgsAction(parser, pos); n == nil {
								goto fail21
							} else {
								*label1 = *n
								pos = p
							}
							goto ok22
						fail21:
							label1 = nil
							pos = pos20
						ok22:
						}
						labels[1] = parser.text[pos18:pos]
					}
					// q:(_ "?")?
					{
						pos23 := pos
						// (_ "?")?
						{
							pos25 := pos
							// (_ "?")
							// _ "?"
							{
								var node27 string
								// _
								if p, n := __Action(parser, pos); n == nil {
									goto fail26
								} else {
									node27 = *n
									pos = p
								}
								label2, node27 = label2+node27, ""
								// "?"
								if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "?" {
									goto fail26
								}
								node27 = parser.text[pos:pos+1]
								pos++
								label2, node27 = label2+node27, ""
							}
							goto ok28
						fail26:
							label2 = ""
							pos = pos25
						ok28:
						}
						labels[2] = parser.text[pos23:pos]
					}
					label3 = func(
						start, end int, args *[]TypeName, name string, q string) TypeName {
						t := TypeName{Range: rng(parser, start, end), Name: name, Nullable: q != ""}
						if args != nil {
							t.Args = *args
						}
						return TypeName(t)
					}(
						start15, pos, label1, label0, label2)
				}
				goto ok3
			fail14:
				label3 = node5
				pos = pos6
				goto fail
			ok3:
			}
			labels[3] = parser.text[pos2:pos]
		}
		node = func(
			start, end int, args *[]TypeName, name string, q string, t TypeName) TypeName {
			return TypeName(t)
		}(
			start0, pos, label1, label0, label2, label3)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _TypeArgsAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [3]string
	use(labels)
	if dp, de, ok := _memo(parser, _TypeArgs, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// _ "<" a0:TypeName as:(_ "," a:TypeName {…})* _ ">"
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "<"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "<" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// a0:TypeName
	{
		pos1 := pos
		// TypeName
		if !_accept(parser, _TypeNameAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// as:(_ "," a:TypeName {…})*
	{
		pos2 := pos
		// (_ "," a:TypeName {…})*
		for {
			pos4 := pos
			// (_ "," a:TypeName {…})
			// action
			// _ "," a:TypeName
			// _
			if !_accept(parser, __Accepts, &pos, &perr) {
				goto fail6
			}
			// ","
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
				perr = _max(perr, pos)
				goto fail6
			}
			pos++
			// a:TypeName
			{
				pos8 := pos
				// TypeName
				if !_accept(parser, _TypeNameAccepts, &pos, &perr) {
					goto fail6
				}
				labels[1] = parser.text[pos8:pos]
			}
			continue
		fail6:
			pos = pos4
			break
		}
		labels[2] = parser.text[pos2:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// ">"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ">" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	return _memoize(parser, _TypeArgs, start, pos, perr)
fail:
	return _memoize(parser, _TypeArgs, start, -1, perr)
}

func _TypeArgsFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [3]string
	use(labels)
	pos, failure := _failMemo(parser, _TypeArgs, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "TypeArgs",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _TypeArgs}
	// action
	// _ "<" a0:TypeName as:(_ "," a:TypeName {…})* _ ">"
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "<"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "<" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"<\"",
				})
		}
		goto fail
	}
	pos++
	// a0:TypeName
	{
		pos1 := pos
		// TypeName
		if !_fail(parser, _TypeNameFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// as:(_ "," a:TypeName {…})*
	{
		pos2 := pos
		// (_ "," a:TypeName {…})*
		for {
			pos4 := pos
			// (_ "," a:TypeName {…})
			// action
			// _ "," a:TypeName
			// _
			if !_fail(parser, __Fail, errPos, failure, &pos) {
				goto fail6
			}
			// ","
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
							Pos:  int(pos),
							Want: "\",\"",
						})
				}
				goto fail6
			}
			pos++
			// a:TypeName
			{
				pos8 := pos
				// TypeName
				if !_fail(parser, _TypeNameFail, errPos, failure, &pos) {
					goto fail6
				}
				labels[1] = parser.text[pos8:pos]
			}
			continue
		fail6:
			pos = pos4
			break
		}
		labels[2] = parser.text[pos2:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// ">"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ">" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\">\"",
				})
		}
		goto fail
	}
	pos++
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _TypeArgsAction(parser *_Parser, start int) (int, *[]TypeName) {
	var labels [3]string
	use(labels)
	var label0 TypeName
	var label1 TypeName
	var label2 []TypeName
	dp := parser.deltaPos[start][_TypeArgs]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _TypeArgs}
	n := parser.act[key]
	if n != nil {
		n := n.([]TypeName)
		return start + int(dp-1), &n
	}
	var node []TypeName
	pos := start
	// action
	{
		start0 := pos
		// _ "<" a0:TypeName as:(_ "," a:TypeName {…})* _ ">"
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "<"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "<" {
			goto fail
		}
		pos++
		// a0:TypeName
		{
			pos2 := pos
			// TypeName
			if p, n := _TypeNameAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos2:pos]
		}
		// as:(_ "," a:TypeName {…})*
		{
			pos3 := pos
			// (_ "," a:TypeName {…})*
			for {
				pos5 := pos
				var node6 TypeName
				// (_ "," a:TypeName {…})
				// action
				{
					start8 := pos
					// _ "," a:TypeName
					// _
					if p, n := __Action(parser, pos); n == nil {
						goto fail7
					} else {
						pos = p
					}
					// ","
					if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
						goto fail7
					}
					pos++
					// a:TypeName
					{
						pos10 := pos
						// TypeName
						if p, n := _TypeNameAction(parser, pos); n == nil {
							goto fail7
						} else {
							label1 = *n
							pos = p
						}
						labels[1] = parser.text[pos10:pos]
					}
					node6 = func(
						start, end int, a TypeName, a0 TypeName) TypeName {
						return TypeName(a)
					}(
						start8, pos, label1, label0)
				}
				label2 = append(label2, node6)
				continue
			fail7:
				pos = pos5
				break
			}
			labels[2] = parser.text[pos3:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// ">"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ">" {
			goto fail
		}
		pos++
		node = func(
			start, end int, a TypeName, a0 TypeName, as []TypeName) []TypeName {
			return []TypeName(append([]TypeName{a0}, as...))
		}(
			start0, pos, label1, label0, label2)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _StringAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, _String, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// "\"" ("\\" ["\\abfnrtv]/[^"\\\n])* "\""
	// "\""
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\"" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// ("\\" ["\\abfnrtv]/[^"\\\n])*
	for {
		pos2 := pos
		// ("\\" ["\\abfnrtv]/[^"\\\n])
		// "\\" ["\\abfnrtv]/[^"\\\n]
		{
			pos8 := pos
			// "\\" ["\\abfnrtv]
			// "\\"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\\" {
				perr = _max(perr, pos)
				goto fail9
			}
			pos++
			// ["\\abfnrtv]
			if r, w := _next(parser, pos); r != '"' && r != '\\' && r != 'a' && r != 'b' && r != 'f' && r != 'n' && r != 'r' && r != 't' && r != 'v' {
				perr = _max(perr, pos)
				goto fail9
			} else {
				pos += w
			}
			goto ok5
		fail9:
			pos = pos8
			// [^"\\\n]
			if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' || r == '"' || r == '\\' || r == '\n' {
				perr = _max(perr, pos)
				goto fail11
			} else {
				pos += w
			}
			goto ok5
		fail11:
			pos = pos8
			goto fail4
		ok5:
		}
		continue
	fail4:
		pos = pos2
		break
	}
	// "\""
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\"" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	perr = start
	return _memoize(parser, _String, start, pos, perr)
fail:
	return _memoize(parser, _String, start, -1, perr)
}

func _StringFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, _String, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "String",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _String}
	// action
	// "\"" ("\\" ["\\abfnrtv]/[^"\\\n])* "\""
	// "\""
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\"" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"\\\"\"",
				})
		}
		goto fail
	}
	pos++
	// ("\\" ["\\abfnrtv]/[^"\\\n])*
	for {
		pos2 := pos
		// ("\\" ["\\abfnrtv]/[^"\\\n])
		// "\\" ["\\abfnrtv]/[^"\\\n]
		{
			pos8 := pos
			// "\\" ["\\abfnrtv]
			// "\\"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\\" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
							Pos:  int(pos),
							Want: "\"\\\\\"",
						})
				}
				goto fail9
			}
			pos++
			// ["\\abfnrtv]
			if r, w := _next(parser, pos); r != '"' && r != '\\' && r != 'a' && r != 'b' && r != 'f' && r != 'n' && r != 'r' && r != 't' && r != 'v' {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
							Pos:  int(pos),
							Want: "[\"\\\\abfnrtv]",
						})
				}
				goto fail9
			} else {
				pos += w
			}
			goto ok5
		fail9:
			pos = pos8
			// [^"\\\n]
			if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' || r == '"' || r == '\\' || r == '\n' {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
							Pos:  int(pos),
							Want: "[^\"\\\\\\n]",
						})
				}
				goto fail11
			} else {
				pos += w
			}
			goto ok5
		fail11:
			pos = pos8
			goto fail4
		ok5:
		}
		continue
	fail4:
		pos = pos2
		break
	}
	// "\""
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\"" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"\\\"\"",
				})
		}
		goto fail
	}
	pos++
	failure.Kids = nil
	parser.fail[key] = failure
	return pos, failure
fail:
	failure.Kids = nil
	failure.Want = "string"
	parser.fail[key] = failure
	return -1, failure
}

func _StringAction(parser *_Parser, start int) (int, *string) {
	dp := parser.deltaPos[start][_String]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _String}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// action
	{
		start0 := pos
		// "\"" ("\\" ["\\abfnrtv]/[^"\\\n])* "\""
		// "\""
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\"" {
			goto fail
		}
		pos++
		// ("\\" ["\\abfnrtv]/[^"\\\n])*
		for {
			pos3 := pos
			// ("\\" ["\\abfnrtv]/[^"\\\n])
			// "\\" ["\\abfnrtv]/[^"\\\n]
			{
				pos9 := pos
				// "\\" ["\\abfnrtv]
				// "\\"
				if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\\" {
					goto fail10
				}
				pos++
				// ["\\abfnrtv]
				if r, w := _next(parser, pos); r != '"' && r != '\\' && r != 'a' && r != 'b' && r != 'f' && r != 'n' && r != 'r' && r != 't' && r != 'v' {
					goto fail10
				} else {
					pos += w
				}
				goto ok6
			fail10:
				pos = pos9
				// [^"\\\n]
				if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' || r == '"' || r == '\\' || r == '\n' {
					goto fail12
				} else {
					pos += w
				}
				goto ok6
			fail12:
				pos = pos9
				goto fail5
			ok6:
			}
			continue
		fail5:
			pos = pos3
			break
		}
		// "\""
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\"" {
			goto fail
		}
		pos++
		node = func(
			start, end int) string {
			s, _ := strconv.Unquote(parser.text[start:end])
			return string(s)
		}(
			start0, pos)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _IdentAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, _Ident, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// [_a-zA-Z] IdentC*
	// [_a-zA-Z]
	if r, w := _next(parser, pos); r != '_' && (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
		perr = _max(perr, pos)
		goto fail
	} else {
		pos += w
	}
	// IdentC*
	for {
		pos2 := pos
		// IdentC
		if !_accept(parser, _IdentCAccepts, &pos, &perr) {
			goto fail4
		}
		continue
	fail4:
		pos = pos2
		break
	}
	perr = start
	return _memoize(parser, _Ident, start, pos, perr)
fail:
	return _memoize(parser, _Ident, start, -1, perr)
}

func _IdentFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, _Ident, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Ident",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Ident}
	// [_a-zA-Z] IdentC*
	// [_a-zA-Z]
	if r, w := _next(parser, pos); r != '_' && (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "[_a-zA-Z]",
				})
		}
		goto fail
	} else {
		pos += w
	}
	// IdentC*
	for {
		pos2 := pos
		// IdentC
		if !_fail(parser, _IdentCFail, errPos, failure, &pos) {
			goto fail4
		}
		continue
	fail4:
		pos = pos2
		break
	}
	failure.Kids = nil
	parser.fail[key] = failure
	return pos, failure
fail:
	failure.Kids = nil
	failure.Want = "identifier"
	parser.fail[key] = failure
	return -1, failure
}

func _IdentAction(parser *_Parser, start int) (int, *string) {
	dp := parser.deltaPos[start][_Ident]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Ident}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// [_a-zA-Z] IdentC*
	{
		var node0 string
		// [_a-zA-Z]
		if r, w := _next(parser, pos); r != '_' && (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			goto fail
		} else {
			node0 = parser.text[pos:pos+w]
			pos += w
		}
		node, node0 = node+node0, ""
		// IdentC*
		for {
			pos2 := pos
			var node3 string
			// IdentC
			if p, n := _IdentCAction(parser, pos); n == nil {
				goto fail4
			} else {
				node3 = *n
				pos = p
			}
			node0 += node3
			continue
		fail4:
			pos = pos2
			break
		}
		node, node0 = node+node0, ""
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _IdentCAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, _IdentC, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// [_a-zA-Z0-9]
	if r, w := _next(parser, pos); r != '_' && (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
		perr = _max(perr, pos)
		goto fail
	} else {
		pos += w
	}
	return _memoize(parser, _IdentC, start, pos, perr)
fail:
	return _memoize(parser, _IdentC, start, -1, perr)
}

func _IdentCFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, _IdentC, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "IdentC",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _IdentC}
	// [_a-zA-Z0-9]
	if r, w := _next(parser, pos); r != '_' && (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "[_a-zA-Z0-9]",
				})
		}
		goto fail
	} else {
		pos += w
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _IdentCAction(parser *_Parser, start int) (int, *string) {
	dp := parser.deltaPos[start][_IdentC]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _IdentC}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// [_a-zA-Z0-9]
	if r, w := _next(parser, pos); r != '_' && (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
		goto fail
	} else {
		node = parser.text[pos:pos+w]
		pos += w
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func __Accepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, __, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// (Space/Comment)*
	for {
		pos1 := pos
		// (Space/Comment)
		// Space/Comment
		{
			pos7 := pos
			// Space
			if !_accept(parser, _SpaceAccepts, &pos, &perr) {
				goto fail8
			}
			goto ok4
		fail8:
			pos = pos7
			// Comment
			if !_accept(parser, _CommentAccepts, &pos, &perr) {
				goto fail9
			}
			goto ok4
		fail9:
			pos = pos7
			goto fail3
		ok4:
		}
		continue
	fail3:
		pos = pos1
		break
	}
	perr = start
	return _memoize(parser, __, start, pos, perr)
}

func __Fail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, __, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "_",
		Pos:  int(start),
	}
	key := _key{start: start, rule: __}
	// (Space/Comment)*
	for {
		pos1 := pos
		// (Space/Comment)
		// Space/Comment
		{
			pos7 := pos
			// Space
			if !_fail(parser, _SpaceFail, errPos, failure, &pos) {
				goto fail8
			}
			goto ok4
		fail8:
			pos = pos7
			// Comment
			if !_fail(parser, _CommentFail, errPos, failure, &pos) {
				goto fail9
			}
			goto ok4
		fail9:
			pos = pos7
			goto fail3
		ok4:
		}
		continue
	fail3:
		pos = pos1
		break
	}
	failure.Kids = nil
	parser.fail[key] = failure
	return pos, failure
}

func __Action(parser *_Parser, start int) (int, *string) {
	dp := parser.deltaPos[start][__]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: __}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// (Space/Comment)*
	for {
		pos1 := pos
		var node2 string
		// (Space/Comment)
		// Space/Comment
		{
			pos7 := pos
			var node6 string
			// Space
			if p, n := _SpaceAction(parser, pos); n == nil {
				goto fail8
			} else {
				node2 = *n
				pos = p
			}
			goto ok4
		fail8:
			node2 = node6
			pos = pos7
			// Comment
			if p, n := _CommentAction(parser, pos); n == nil {
				goto fail9
			} else {
				node2 = *n
				pos = p
			}
			goto ok4
		fail9:
			node2 = node6
			pos = pos7
			goto fail3
		ok4:
		}
		node += node2
		continue
	fail3:
		pos = pos1
		break
	}
	parser.act[key] = node
	return pos, &node
}

func _SpaceAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, _Space, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// [ \t\r\n]
	if r, w := _next(parser, pos); r != ' ' && r != '\t' && r != '\r' && r != '\n' {
		perr = _max(perr, pos)
		goto fail
	} else {
		pos += w
	}
	return _memoize(parser, _Space, start, pos, perr)
fail:
	return _memoize(parser, _Space, start, -1, perr)
}

func _SpaceFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, _Space, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Space",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Space}
	// [ \t\r\n]
	if r, w := _next(parser, pos); r != ' ' && r != '\t' && r != '\r' && r != '\n' {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "[ \\t\\r\\n]",
				})
		}
		goto fail
	} else {
		pos += w
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _SpaceAction(parser *_Parser, start int) (int, *string) {
	dp := parser.deltaPos[start][_Space]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Space}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// [ \t\r\n]
	if r, w := _next(parser, pos); r != ' ' && r != '\t' && r != '\r' && r != '\n' {
		goto fail
	} else {
		node = parser.text[pos:pos+w]
		pos += w
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _CommentAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, _Comment, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// "//" [^\n]*
	// "//"
	if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "//" {
		perr = _max(perr, pos)
		goto fail
	}
	pos += 2
	// [^\n]*
	for {
		pos2 := pos
		// [^\n]
		if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' || r == '\n' {
			perr = _max(perr, pos)
			goto fail4
		} else {
			pos += w
		}
		continue
	fail4:
		pos = pos2
		break
	}
	return _memoize(parser, _Comment, start, pos, perr)
fail:
	return _memoize(parser, _Comment, start, -1, perr)
}

func _CommentFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, _Comment, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Comment",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Comment}
	// "//" [^\n]*
	// "//"
	if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "//" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"//\"",
				})
		}
		goto fail
	}
	pos += 2
	// [^\n]*
	for {
		pos2 := pos
		// [^\n]
		if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' || r == '\n' {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "[^\\n]",
					})
			}
			goto fail4
		} else {
			pos += w
		}
		continue
	fail4:
		pos = pos2
		break
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _CommentAction(parser *_Parser, start int) (int, *string) {
	dp := parser.deltaPos[start][_Comment]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Comment}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// "//" [^\n]*
	{
		var node0 string
		// "//"
		if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "//" {
			goto fail
		}
		node0 = parser.text[pos:pos+2]
		pos += 2
		node, node0 = node+node0, ""
		// [^\n]*
		for {
			pos2 := pos
			var node3 string
			// [^\n]
			if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' || r == '\n' {
				goto fail4
			} else {
				node3 = parser.text[pos:pos+w]
				pos += w
			}
			node0 += node3
			continue
		fail4:
			pos = pos2
			break
		}
		node, node0 = node+node0, ""
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _EOFAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, _EOF, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// !.
	{
		pos1 := pos
		perr3 := perr
		// .
		if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' {
			perr = _max(perr, pos)
			goto ok0
		} else {
			pos += w
		}
		pos = pos1
		perr = _max(perr3, pos)
		goto fail
	ok0:
		pos = pos1
		perr = perr3
	}
	return _memoize(parser, _EOF, start, pos, perr)
fail:
	return _memoize(parser, _EOF, start, -1, perr)
}

func _EOFFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, _EOF, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "EOF",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _EOF}
	// !.
	{
		pos1 := pos
		nkids2 := len(failure.Kids)
		// .
		if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: ".",
					})
			}
			goto ok0
		} else {
			pos += w
		}
		pos = pos1
		failure.Kids = failure.Kids[:nkids2]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "!.",
				})
		}
		goto fail
	ok0:
		pos = pos1
		failure.Kids = failure.Kids[:nkids2]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _EOFAction(parser *_Parser, start int) (int, *string) {
	dp := parser.deltaPos[start][_EOF]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _EOF}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// !.
	{
		pos1 := pos
		// .
		if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' {
			goto ok0
		} else {
			pos += w
		}
		pos = pos1
		goto fail
	ok0:
		pos = pos1
		node = ""
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}
