package wordeval

import (
	"testing"

	"github.com/cwbudde/shword/internal/options"
	"github.com/cwbudde/shword/internal/store"
	"github.com/cwbudde/shword/internal/value"
	"github.com/cwbudde/shword/internal/wordast"
)

func TestEvalPatSubFirstMatchOnly(t *testing.T) {
	s := store.New("", nil)
	e := newTestEvaluator(s, options.New(), nil)
	op := &wordast.PatSubOp{Pattern: litWord("o"), Replace: litWord("0")}
	out := e.EvalPatSub(value.Str{S: "foo boo"}, op)
	if out.IsError() {
		t.Fatalf("unexpected error: %v", out.Error())
	}
	if got := out.Val().(value.Str).S; got != "f0o boo" {
		t.Errorf("got %q, want f0o boo", got)
	}
}

func TestEvalPatSubGlobal(t *testing.T) {
	s := store.New("", nil)
	e := newTestEvaluator(s, options.New(), nil)
	op := &wordast.PatSubOp{Pattern: litWord("o"), Replace: litWord("0"), Global: true}
	out := e.EvalPatSub(value.Str{S: "foo boo"}, op)
	if out.IsError() {
		t.Fatalf("unexpected error: %v", out.Error())
	}
	if got := out.Val().(value.Str).S; got != "f00 b00" {
		t.Errorf("got %q, want f00 b00", got)
	}
}

func TestEvalPatSubAnchoredPrefix(t *testing.T) {
	s := store.New("", nil)
	e := newTestEvaluator(s, options.New(), nil)
	op := &wordast.PatSubOp{Pattern: litWord("foo"), Replace: litWord("bar"), Anchor: '#'}
	out := e.EvalPatSub(value.Str{S: "foofoo"}, op)
	if out.IsError() {
		t.Fatalf("unexpected error: %v", out.Error())
	}
	if got := out.Val().(value.Str).S; got != "barfoo" {
		t.Errorf("got %q, want barfoo", got)
	}
}

func TestEvalPatSubAnchoredSuffix(t *testing.T) {
	s := store.New("", nil)
	e := newTestEvaluator(s, options.New(), nil)
	op := &wordast.PatSubOp{Pattern: litWord("foo"), Replace: litWord("bar"), Anchor: '%'}
	out := e.EvalPatSub(value.Str{S: "foofoo"}, op)
	if out.IsError() {
		t.Fatalf("unexpected error: %v", out.Error())
	}
	if got := out.Val().(value.Str).S; got != "foobar" {
		t.Errorf("got %q, want foobar", got)
	}
}

func TestEvalPatSubNoMatchReturnsUnchanged(t *testing.T) {
	s := store.New("", nil)
	e := newTestEvaluator(s, options.New(), nil)
	op := &wordast.PatSubOp{Pattern: litWord("z"), Replace: litWord("0")}
	out := e.EvalPatSub(value.Str{S: "foo"}, op)
	if out.IsError() {
		t.Fatalf("unexpected error: %v", out.Error())
	}
	if got := out.Val().(value.Str).S; got != "foo" {
		t.Errorf("got %q, want foo", got)
	}
}
