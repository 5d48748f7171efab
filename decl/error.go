// Copyright © 2020 The Pea Authors under an MIT-style license.

package decl

import (
	"fmt"
	"sort"
	"strings"

	"github.com/willhansen/overcheck/loc"
)

type resolveError struct {
	loc   loc.Loc
	msg   string
	notes []string
}

func note(err *resolveError, f string, vs ...interface{}) {
	err.notes = append(err.notes, fmt.Sprintf(f, vs...))
}

func (err *resolveError) Error() string {
	var s strings.Builder
	s.WriteString(err.loc.String())
	s.WriteString(": ")
	s.WriteString(err.msg)
	for _, n := range err.notes {
		s.WriteString("\n\t")
		s.WriteString(n)
	}
	return s.String()
}

func convertErrors(rerrs []resolveError) []error {
	var errs []error
	rerrs = sortErrors(rerrs)
	for i := range rerrs {
		errs = append(errs, &rerrs[i])
	}
	return errs
}

func sortErrors(errs []resolveError) []resolveError {
	if len(errs) == 0 {
		return errs
	}
	sort.SliceStable(errs, func(i, j int) bool {
		return errs[i].loc.Less(errs[j].loc)
	})
	dedup := []resolveError{errs[0]}
	for _, e := range errs[1:] {
		d := &dedup[len(dedup)-1]
		if e.loc != d.loc || e.msg != d.msg {
			dedup = append(dedup, e)
		}
	}
	return dedup
}
