package arith

import (
	"testing"

	"github.com/cwbudde/shword/internal/store"
	"github.com/cwbudde/shword/internal/value"
	"github.com/cwbudde/shword/internal/wordast"
)

func TestEvalToIntLiteralAndBinary(t *testing.T) {
	e := New(store.New("", nil))
	n := &wordast.ArithBinary{
		Op:    '+',
		Left:  &wordast.IntLit{Val: 3},
		Right: &wordast.IntLit{Val: 4},
	}
	got, err := e.EvalToInt(n)
	if err != nil || got != 7 {
		t.Fatalf("EvalToInt = (%d, %v), want (7, nil)", got, err)
	}
}

func TestEvalToIntVarRef(t *testing.T) {
	s := store.New("", nil)
	s.Set(value.Named("i"), value.Str{S: "5"})
	e := New(s)
	got, err := e.EvalToInt(&wordast.ArithVarRef{Name: "i"})
	if err != nil || got != 5 {
		t.Fatalf("EvalToInt(i) = (%d, %v), want (5, nil)", got, err)
	}
}

func TestEvalToIntNonNumericCoercesToZero(t *testing.T) {
	s := store.New("", nil)
	s.Set(value.Named("x"), value.Str{S: "abc"})
	e := New(s)
	got, err := e.EvalToInt(&wordast.ArithVarRef{Name: "x"})
	if err != nil || got != 0 {
		t.Fatalf("EvalToInt(x) = (%d, %v), want (0, nil)", got, err)
	}
}

func TestEvalToIntDivisionByZero(t *testing.T) {
	e := New(store.New("", nil))
	n := &wordast.ArithBinary{Op: '/', Left: &wordast.IntLit{Val: 1}, Right: &wordast.IntLit{Val: 0}}
	if _, err := e.EvalToInt(n); err == nil {
		t.Error("expected division-by-zero error")
	}
}

func TestEvalToIntUnaryMinus(t *testing.T) {
	e := New(store.New("", nil))
	got, err := e.EvalToInt(&wordast.ArithUnaryMinus{X: &wordast.IntLit{Val: 5}})
	if err != nil || got != -5 {
		t.Fatalf("EvalToInt(-5) = (%d, %v)", got, err)
	}
}

func TestEvalToStringKey(t *testing.T) {
	e := New(store.New("", nil))
	got, err := e.EvalToString(&wordast.StrLit{Val: "mykey"})
	if err != nil || got != "mykey" {
		t.Fatalf("EvalToString = (%q, %v)", got, err)
	}
}
