package wordeval

import (
	"testing"

	"github.com/cwbudde/shword/internal/options"
	"github.com/cwbudde/shword/internal/splitter"
	"github.com/cwbudde/shword/internal/store"
	"github.com/cwbudde/shword/internal/value"
)

func TestDecayUndefIsEmpty(t *testing.T) {
	s := store.New("", nil)
	e := newTestEvaluator(s, options.New(), nil)
	if got := e.Decay(value.Undef{}); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestDecayStrPassesThrough(t *testing.T) {
	s := store.New("", nil)
	e := newTestEvaluator(s, options.New(), nil)
	if got := e.Decay(value.Str{S: "x"}); got != "x" {
		t.Errorf("got %q, want x", got)
	}
}

func TestDecayArrayJoinsByIFSFirstChar(t *testing.T) {
	s := store.New("", nil)
	e := newTestEvaluator(s, options.New(), nil)
	e.Split = splitter.NewExplicit(",")
	got := e.Decay(value.NewMaybeStrArray("a", "b", "c"))
	if got != "a,b,c" {
		t.Errorf("got %q, want a,b,c", got)
	}
}

func TestDecayAssocArrayJoinsValuesInKeyOrder(t *testing.T) {
	s := store.New("", nil)
	e := newTestEvaluator(s, options.New(), nil)
	arr := value.NewAssocArray([]string{"b", "a"}, map[string]string{"a": "1", "b": "2"})
	got := e.Decay(arr)
	if got != "2 1" {
		t.Errorf("got %q, want %q", got, "2 1")
	}
}
