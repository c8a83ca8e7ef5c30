package value

// AIndex is an index used by the test-and-assign operators to write back
// into the right array slot: either an integer index (indexed array) or a
// string key (associative array).
type AIndex struct {
	IsStr bool
	I     int
	S     string
}

// IntIndex builds an integer AIndex.
func IntIndex(i int) AIndex { return AIndex{I: i} }

// StrIndex builds a string-keyed AIndex.
func StrIndex(s string) AIndex { return AIndex{IsStr: true, S: s} }

// Lvalue is the write target passed to the variable store: a bare name, an
// indexed-array slot, or an associative-array slot.
type Lvalue struct {
	Name    string
	Index   *AIndex // nil for Named
	IsKeyed bool    // true if Index.S names an assoc-array key rather than an int index
}

// Named builds an Lvalue referring to a whole variable.
func Named(name string) Lvalue {
	return Lvalue{Name: name}
}

// Indexed builds an Lvalue referring to one slot of an indexed array.
func Indexed(name string, i int) Lvalue {
	idx := IntIndex(i)
	return Lvalue{Name: name, Index: &idx}
}

// Keyed builds an Lvalue referring to one slot of an associative array.
func Keyed(name string, key string) Lvalue {
	idx := StrIndex(key)
	return Lvalue{Name: name, Index: &idx, IsKeyed: true}
}

// Cell wraps a stored Value together with the attribute bits the `@a`
// nullary formatter and assignment-builtin flags query:
// readonly, exported, nameref, and whether the variable is declared as an
// indexed or associative array.
type Cell struct {
	Val      Value
	ReadOnly bool
	Exported bool
	NameRef  bool
	IsArray  bool
	IsAssoc  bool
}

// Attrs returns the attribute-letter string for `${x@a}`: a subset of
// "aArxn", in that fixed order.
func (c Cell) Attrs() string {
	var out []byte
	if c.IsArray {
		out = append(out, 'a')
	}
	if c.IsAssoc {
		out = append(out, 'A')
	}
	if c.ReadOnly {
		out = append(out, 'r')
	}
	if c.Exported {
		out = append(out, 'x')
	}
	if c.NameRef {
		out = append(out, 'n')
	}
	return string(out)
}
