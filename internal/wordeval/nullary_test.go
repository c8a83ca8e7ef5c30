package wordeval

import (
	"testing"

	"github.com/cwbudde/shword/internal/ident"
	"github.com/cwbudde/shword/internal/options"
	"github.com/cwbudde/shword/internal/store"
	"github.com/cwbudde/shword/internal/value"
	"github.com/cwbudde/shword/internal/wordast"
)

func TestEvalNullaryOpShellQuoteRoundTrips(t *testing.T) {
	s := store.New("", nil)
	e := newTestEvaluator(s, options.New(), nil)
	out := e.EvalNullaryOp(value.Str{S: "it's fine"}, &wordast.NullaryOp{Op: ident.VOp0_Q}, nil, nil)
	if out.IsError() {
		t.Fatalf("unexpected error: %v", out.Error())
	}
	if got := out.Val().s; got != `'it'\''s fine'` {
		t.Errorf("got %q, want %q", got, `'it'\''s fine'`)
	}
	if !out.Val().quoted {
		t.Error("expected the @Q result to be marked quoted")
	}
}

func TestEvalNullaryOpShellQuoteEmptyString(t *testing.T) {
	s := store.New("", nil)
	e := newTestEvaluator(s, options.New(), nil)
	out := e.EvalNullaryOp(value.Str{S: ""}, &wordast.NullaryOp{Op: ident.VOp0_Q}, nil, nil)
	if out.IsError() {
		t.Fatalf("unexpected error: %v", out.Error())
	}
	if out.Val().s != "''" {
		t.Errorf("got %q, want ''", out.Val().s)
	}
}

func TestEvalNullaryOpPromptStripsReadlineMarkers(t *testing.T) {
	s := store.New("", nil)
	e := newTestEvaluator(s, options.New(), nil)
	out := e.EvalNullaryOp(value.Str{S: `\[\e[32m\]ok\[\e[0m\]`}, &wordast.NullaryOp{Op: ident.VOp0_P}, nil, nil)
	if out.IsError() {
		t.Fatalf("unexpected error: %v", out.Error())
	}
	if got := out.Val().s; got != `\e[32mok\e[0m` {
		t.Errorf("got %q", got)
	}
}

func TestEvalNullaryOpAttrsUsesCell(t *testing.T) {
	s := store.New("", nil)
	e := newTestEvaluator(s, options.New(), nil)
	cell := &value.Cell{Val: value.Str{S: "x"}, ReadOnly: true, Exported: true}
	out := e.EvalNullaryOp(value.Str{S: "x"}, &wordast.NullaryOp{Op: ident.VOp0_A}, cell, nil)
	if out.IsError() {
		t.Fatalf("unexpected error: %v", out.Error())
	}
	if got := out.Val().s; got != cell.Attrs() {
		t.Errorf("got %q, want %q", got, cell.Attrs())
	}
}

func TestEvalNullaryOpAttrsNilCellIsEmpty(t *testing.T) {
	s := store.New("", nil)
	e := newTestEvaluator(s, options.New(), nil)
	out := e.EvalNullaryOp(value.Str{S: "x"}, &wordast.NullaryOp{Op: ident.VOp0_a}, nil, nil)
	if out.IsError() {
		t.Fatalf("unexpected error: %v", out.Error())
	}
	if out.Val().s != "" {
		t.Errorf("got %q, want empty", out.Val().s)
	}
}

func TestEvalNullaryOpKeyValuePairsAssoc(t *testing.T) {
	s := store.New("", nil)
	e := newTestEvaluator(s, options.New(), nil)
	arr := value.NewAssocArray([]string{"a"}, map[string]string{"a": "1"})
	out := e.EvalNullaryOp(arr, &wordast.NullaryOp{Op: ident.VOp0_K}, nil, nil)
	if out.IsError() {
		t.Fatalf("unexpected error: %v", out.Error())
	}
	if got := out.Val().s; got != "'a' '1'" {
		t.Errorf("got %q, want 'a' '1'", got)
	}
}
