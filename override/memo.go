// Copyright © 2020 The Pea Authors under an MIT-style license.

package override

import (
	"strconv"
	"sync"

	"github.com/willhansen/overcheck/sym"
	"golang.org/x/sync/singleflight"
)

// memo is the table of built scopes, indexed by ClassID.
// Each scope is built once;
// concurrent requests for the same scope
// wait for the first request to build it.
type memo struct {
	mu     sync.RWMutex
	scopes []*Scope
	group  singleflight.Group
}

func newMemo(n int) *memo {
	return &memo{scopes: make([]*Scope, n)}
}

func (m *memo) load(id sym.ClassID) *Scope {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.scopes[id]
}

func (m *memo) store(id sym.ClassID, sc *Scope) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scopes[id] = sc
}

// scope returns the memoized scope of a class,
// building it if needed.
func (x *state) scope(c *sym.Class) (*Scope, error) {
	if sc := x.memo.load(c.ID); sc != nil {
		return sc, nil
	}
	for _, id := range x.building {
		if id == c.ID {
			return nil, &InternalError{Class: c, Msg: "inheritance cycle"}
		}
	}
	v, err, _ := x.memo.group.Do(strconv.Itoa(int(c.ID)), func() (interface{}, error) {
		if sc := x.memo.load(c.ID); sc != nil {
			return sc, nil
		}
		x.building = append(x.building, c.ID)
		defer func() { x.building = x.building[:len(x.building)-1] }()
		sc, err := buildScope(x, c)
		if err != nil {
			return nil, err
		}
		x.memo.store(c.ID, sc)
		return sc, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Scope), nil
}
