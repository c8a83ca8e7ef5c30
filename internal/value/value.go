// Package value defines the runtime Value sum type the variable store hands
// back to the word evaluator, along with the write-target types
// (AIndex, Lvalue) used by the test/assign suffix operators.
//
// The sum type is modeled as a small interface implemented by a closed set
// of concrete types, dispatched with a type switch rather than an open
// class hierarchy.
package value

import (
	"strconv"
	"strings"
)

// Value is a runtime variable value: Undef, a scalar Str, a sparse indexed
// array MaybeStrArray, an insertion-ordered AssocArray, or an opaque foreign
// Obj.
type Value interface {
	// Kind returns the value's kind name, e.g. "Undef", "Str", "MaybeStrArray".
	Kind() string
	// IsFalsey reports whether the value counts as "falsey" for the test
	// suffix operators: Undef is always falsey; for the
	// `:-`-family pair an empty string or empty array/map is too.
	IsFalsey(colonForm bool) bool
}

// Undef represents an unset variable.
type Undef struct{}

func (Undef) Kind() string                 { return "Undef" }
func (Undef) IsFalsey(colonForm bool) bool { return true }

// Str is a scalar string value.
type Str struct {
	S string
}

func (Str) Kind() string { return "Str" }
func (s Str) IsFalsey(colonForm bool) bool {
	return colonForm && s.S == ""
}

// MaybeStrArray is a dense list with sparse semantics: an entry may be a
// "hole" (an undefined index). Holes are skipped by length, expansion, and
// slicing.
type MaybeStrArray struct {
	// Entries holds the backing slice; a nil entry pointer means a hole.
	Entries []*string
}

func (MaybeStrArray) Kind() string { return "MaybeStrArray" }

func (a MaybeStrArray) IsFalsey(colonForm bool) bool {
	if !colonForm {
		return false
	}
	return a.NonHoleCount() == 0
}

// NonHoleCount returns the number of non-hole entries.
func (a MaybeStrArray) NonHoleCount() int {
	n := 0
	for _, e := range a.Entries {
		if e != nil {
			n++
		}
	}
	return n
}

// NonHoleIndices returns the indices (as decimal strings) of every non-hole
// entry, in order -- used by the indirect (`!`) prefix op on arrays.
func (a MaybeStrArray) NonHoleIndices() []string {
	var out []string
	for i, e := range a.Entries {
		if e != nil {
			out = append(out, strconv.Itoa(i))
		}
	}
	return out
}

// Get returns the entry at index i, or ("", false) if i is out of range or a
// hole.
func (a MaybeStrArray) Get(i int) (string, bool) {
	if i < 0 || i >= len(a.Entries) || a.Entries[i] == nil {
		return "", false
	}
	return *a.Entries[i], true
}

// Decay concatenates all non-hole entries, joined by sep.
func (a MaybeStrArray) Decay(sep string) string {
	var parts []string
	for _, e := range a.Entries {
		if e != nil {
			parts = append(parts, *e)
		}
	}
	return strings.Join(parts, sep)
}

// NewMaybeStrArray builds a MaybeStrArray with no holes from plain strings.
func NewMaybeStrArray(ss ...string) MaybeStrArray {
	entries := make([]*string, len(ss))
	for i := range ss {
		v := ss[i]
		entries[i] = &v
	}
	return MaybeStrArray{Entries: entries}
}

// AssocArray is an ordered-by-insertion mapping from string key to string
// value.
type AssocArray struct {
	Keys   []string
	Values map[string]string
}

func (AssocArray) Kind() string { return "AssocArray" }

func (m AssocArray) IsFalsey(colonForm bool) bool {
	if !colonForm {
		return false
	}
	return len(m.Keys) == 0
}

// Get returns the value at key, and whether it is present.
func (m AssocArray) Get(key string) (string, bool) {
	v, ok := m.Values[key]
	return v, ok
}

// NewAssocArray builds an AssocArray preserving the given key order.
func NewAssocArray(keys []string, values map[string]string) AssocArray {
	return AssocArray{Keys: append([]string(nil), keys...), Values: values}
}

// Obj is an opaque foreign object, only populated when the optional
// expression-language hook is wired in.
type Obj struct {
	X any
}

func (Obj) Kind() string                 { return "Obj" }
func (Obj) IsFalsey(colonForm bool) bool { return false }
