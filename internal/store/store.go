// Package store implements the in-memory, scope-stacked variable store
// that satisfies ports.Store. The scope stack restores whole-variable
// bindings on every exit path including errors: PushScope pushes a new map
// and returns a closer that pops it, so callers can `defer` the restore
// directly (see Set for element writes).
package store

import (
	"sort"

	"github.com/cwbudde/shword/internal/ident"
	"github.com/cwbudde/shword/internal/value"
)

// Store is the concrete ports.Store implementation.
type Store struct {
	scopes   []map[string]*value.Cell
	argv     []string
	arg0     string
	specials map[ident.Id]value.Value
}

// New returns a Store seeded with the positional arguments and $0. Specials
// ($?, $!, $$, ...) are set with SetSpecial after construction.
func New(arg0 string, argv []string) *Store {
	return &Store{
		scopes:   []map[string]*value.Cell{{}},
		argv:     append([]string(nil), argv...),
		arg0:     arg0,
		specials: make(map[ident.Id]value.Value),
	}
}

// PushScope opens a new lexical scope. The returned pop func restores the
// prior scope stack; callers must `defer pop()` immediately.
func (s *Store) PushScope() (pop func()) {
	depth := len(s.scopes)
	s.scopes = append(s.scopes, map[string]*value.Cell{})
	return func() {
		s.scopes = s.scopes[:depth]
	}
}

// lookupCell searches scopes innermost-first for name.
func (s *Store) lookupCell(name string) (*value.Cell, bool) {
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if c, ok := s.scopes[i][name]; ok {
			return c, true
		}
	}
	return nil, false
}

func (s *Store) Get(name string) value.Value {
	if c, ok := s.lookupCell(name); ok {
		return c.Val
	}
	return value.Undef{}
}

// GetScoped looks up name in the scope at depth `scope`, counting 0 as the
// outermost (global) scope. Out-of-range scopes yield Undef.
func (s *Store) GetScoped(name string, scope int) value.Value {
	if scope < 0 || scope >= len(s.scopes) {
		return value.Undef{}
	}
	if c, ok := s.scopes[scope][name]; ok {
		return c.Val
	}
	return value.Undef{}
}

func (s *Store) GetArg(n int) value.Value {
	if n == 0 {
		return value.Str{S: s.arg0}
	}
	if n < 1 || n > len(s.argv) {
		return value.Undef{}
	}
	return value.Str{S: s.argv[n-1]}
}

func (s *Store) GetArgv() []string {
	return append([]string(nil), s.argv...)
}

func (s *Store) GetArg0() value.Str {
	return value.Str{S: s.arg0}
}

func (s *Store) GetSpecial(id ident.Id) value.Value {
	if v, ok := s.specials[id]; ok {
		return v
	}
	return value.Undef{}
}

// SetSpecial sets a special variable ($?, $!, $$, PIPESTATUS, ...) by id.
// Not part of ports.Store: specials are written by the runtime driving the
// evaluator, never by word-evaluator assignment paths.
func (s *Store) SetSpecial(id ident.Id, v value.Value) {
	s.specials[id] = v
}

func (s *Store) GetCell(name string) (*value.Cell, bool) {
	return s.lookupCell(name)
}

// Set writes through an Lvalue, creating the cell (in the innermost scope)
// if it does not already exist anywhere in the stack. A whole-variable
// write to a name bound only in an outer scope shadows it with a copy of
// that cell in the innermost scope, so popping the scope restores the outer
// value. An indexed or keyed write modifies the existing cell wherever it
// is bound; popping a scope does not undo such a write to an outer cell.
func (s *Store) Set(lv value.Lvalue, v value.Value) {
	cell, ok := s.lookupCell(lv.Name)
	top := s.scopes[len(s.scopes)-1]
	if !ok {
		cell = &value.Cell{}
		top[lv.Name] = cell
	} else if _, local := top[lv.Name]; !local && lv.Index == nil {
		shadow := *cell
		cell = &shadow
		top[lv.Name] = cell
	}

	if lv.Index == nil {
		cell.Val = v
		cell.IsArray = false
		cell.IsAssoc = false
		return
	}

	if lv.IsKeyed {
		s.setKeyed(cell, lv.Index.S, v)
		return
	}
	s.setIndexed(cell, lv.Index.I, v)
}

func (s *Store) setIndexed(cell *value.Cell, i int, v value.Value) {
	str, _ := v.(value.Str)
	arr, isArr := cell.Val.(value.MaybeStrArray)
	if !isArr {
		arr = value.MaybeStrArray{}
	}
	for len(arr.Entries) <= i {
		arr.Entries = append(arr.Entries, nil)
	}
	sv := str.S
	arr.Entries[i] = &sv
	cell.Val = arr
	cell.IsArray = true
	cell.IsAssoc = false
}

func (s *Store) setKeyed(cell *value.Cell, key string, v value.Value) {
	str, _ := v.(value.Str)
	assoc, isAssoc := cell.Val.(value.AssocArray)
	if !isAssoc {
		assoc = value.AssocArray{Values: map[string]string{}}
	}
	if assoc.Values == nil {
		assoc.Values = map[string]string{}
	}
	if _, exists := assoc.Values[key]; !exists {
		assoc.Keys = append(assoc.Keys, key)
	}
	assoc.Values[key] = str.S
	cell.Val = assoc
	cell.IsArray = false
	cell.IsAssoc = true
}

// NamesWithPrefix returns every variable name across every active scope
// that starts with prefix, sorted.
func (s *Store) NamesWithPrefix(prefix string) []string {
	seen := make(map[string]bool)
	for _, scope := range s.scopes {
		for name := range scope {
			if len(name) >= len(prefix) && name[:len(prefix)] == prefix {
				seen[name] = true
			}
		}
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
