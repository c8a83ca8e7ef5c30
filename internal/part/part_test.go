package part

import (
	"reflect"
	"testing"
)

func TestDecay(t *testing.T) {
	vs := []Value{
		NewString("a", true),
		NewArray([]string{"b", "c"}),
	}
	if got := Decay(vs, ":"); got != "ab:c" {
		t.Errorf("Decay = %q, want ab:c", got)
	}
}

func TestFramesFromValuesScenario1(t *testing.T) {
	// $x"${a[@]}"$y with a=(1 '2 3' 4), x=x, y=y -> ["x1", "2 3", "4y"]
	vs := []Value{
		NewString("x", false),
		NewArray([]string{"1", "2 3", "4"}),
		NewString("y", false),
	}
	frames := FramesFromValues(vs)
	got := make([]string, len(frames))
	for i, f := range frames {
		got[i] = f.Concat()
	}
	want := []string{"x1", "2 3", "4y"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FramesFromValues = %v, want %v", got, want)
	}
}

func TestFramesFromValuesEmptyArrayMerges(t *testing.T) {
	vs := []Value{NewString("x", false), NewArray(nil), NewString("y", false)}
	frames := FramesFromValues(vs)
	if len(frames) != 1 || frames[0].Concat() != "xy" {
		t.Errorf("FramesFromValues = %v, want single frame xy", frames)
	}
}

func TestFramesFromValuesAdjacentArrays(t *testing.T) {
	vs := []Value{NewArray([]string{"1", "2"}), NewArray([]string{"3", "4"})}
	frames := FramesFromValues(vs)
	got := make([]string, len(frames))
	for i, f := range frames {
		got[i] = f.Concat()
	}
	want := []string{"1", "23", "4"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FramesFromValues = %v, want %v", got, want)
	}
}

func TestFrameAllQuoted(t *testing.T) {
	f := Frame{{S: "a", Quoted: true}, {S: "b", Quoted: true}}
	if !f.AllQuoted() {
		t.Error("expected AllQuoted")
	}
	f = append(f, Fragment{S: "c", Quoted: false})
	if f.AllQuoted() {
		t.Error("expected not AllQuoted")
	}
}

func TestFrameAllEmptyUnquoted(t *testing.T) {
	empty := Frame{}
	if !empty.AllEmptyUnquoted() {
		t.Error("empty frame should elide")
	}
	f := Frame{{S: "", Quoted: true}}
	if f.AllEmptyUnquoted() {
		t.Error("quoted empty fragment should not elide")
	}
}
