package value

import "testing"

func TestMaybeStrArrayHoles(t *testing.T) {
	a := MaybeStrArray{Entries: []*string{nil, strPtr("x"), nil, strPtr("y")}}
	if n := a.NonHoleCount(); n != 2 {
		t.Errorf("NonHoleCount() = %d, want 2", n)
	}
	if got := a.NonHoleIndices(); len(got) != 2 || got[0] != "1" || got[1] != "3" {
		t.Errorf("NonHoleIndices() = %v, want [1 3]", got)
	}
	if got := a.Decay(","); got != "x,y" {
		t.Errorf("Decay(,) = %q, want x,y", got)
	}
}

func TestMaybeStrArrayGet(t *testing.T) {
	a := NewMaybeStrArray("a", "b", "c")
	if v, ok := a.Get(1); !ok || v != "b" {
		t.Errorf("Get(1) = (%q, %v), want (b, true)", v, ok)
	}
	if _, ok := a.Get(10); ok {
		t.Error("Get(10) should miss on out-of-range index")
	}
}

func TestIsFalsey(t *testing.T) {
	if !(Undef{}).IsFalsey(false) {
		t.Error("Undef should be falsey regardless of colon form")
	}
	if (Str{S: ""}).IsFalsey(false) {
		t.Error("empty Str should not be falsey without colon form")
	}
	if !(Str{S: ""}).IsFalsey(true) {
		t.Error("empty Str should be falsey with colon form")
	}
	if (Str{S: "x"}).IsFalsey(true) {
		t.Error("non-empty Str should never be falsey")
	}
}

func TestAssocArrayGet(t *testing.T) {
	m := NewAssocArray([]string{"a", "b"}, map[string]string{"a": "1", "b": "2"})
	if v, ok := m.Get("a"); !ok || v != "1" {
		t.Errorf("Get(a) = (%q, %v), want (1, true)", v, ok)
	}
	if m.IsFalsey(true) {
		t.Error("non-empty AssocArray should not be falsey")
	}
	empty := AssocArray{}
	if !empty.IsFalsey(true) {
		t.Error("empty AssocArray should be falsey in colon form")
	}
}

func TestCellAttrs(t *testing.T) {
	c := Cell{IsArray: true, ReadOnly: true, Exported: true}
	if got := c.Attrs(); got != "arx" {
		t.Errorf("Attrs() = %q, want arx", got)
	}
}

func strPtr(s string) *string { return &s }
