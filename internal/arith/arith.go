// Package arith implements ports.Arith: a minimal arithmetic evaluator over
// the wordast.ArithNode tree. It is deliberately small -- just enough to
// resolve bracket indices, slice bounds, and associative-array keys end to
// end -- not a general arithmetic-expression language.
package arith

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/shword/internal/ports"
	"github.com/cwbudde/shword/internal/store"
	"github.com/cwbudde/shword/internal/value"
	"github.com/cwbudde/shword/internal/wordast"
)

// Evaluator walks wordast.ArithNode trees against a variable store.
type Evaluator struct {
	Store *store.Store
}

var _ ports.Arith = (*Evaluator)(nil)

// New returns an Evaluator resolving ArithVarRef nodes through s.
func New(s *store.Store) *Evaluator {
	return &Evaluator{Store: s}
}

// EvalToInt evaluates n and coerces the result to an int. A non-numeric
// string evaluates to 0, matching bash arithmetic-context coercion for
// unset/non-numeric variables.
func (e *Evaluator) EvalToInt(n wordast.ArithNode) (int, error) {
	switch v := n.(type) {
	case *wordast.IntLit:
		return int(v.Val), nil
	case *wordast.StrLit:
		return atoiLoose(v.Val), nil
	case *wordast.ArithVarRef:
		return atoiLoose(strOf(e.Store.Get(v.Name))), nil
	case *wordast.ArithUnaryMinus:
		x, err := e.EvalToInt(v.X)
		if err != nil {
			return 0, err
		}
		return -x, nil
	case *wordast.ArithBinary:
		l, err := e.EvalToInt(v.Left)
		if err != nil {
			return 0, err
		}
		r, err := e.EvalToInt(v.Right)
		if err != nil {
			return 0, err
		}
		switch v.Op {
		case '+':
			return l + r, nil
		case '-':
			return l - r, nil
		case '*':
			return l * r, nil
		case '/':
			if r == 0 {
				return 0, fmt.Errorf("arith: division by zero")
			}
			return l / r, nil
		default:
			return 0, fmt.Errorf("arith: unsupported operator %q", v.Op)
		}
	default:
		return 0, fmt.Errorf("arith: unsupported node %T", n)
	}
}

// EvalToString evaluates n as a string, used for associative-array keys
// computed by an expression.
func (e *Evaluator) EvalToString(n wordast.ArithNode) (string, error) {
	switch v := n.(type) {
	case *wordast.StrLit:
		return v.Val, nil
	case *wordast.ArithVarRef:
		return strOf(e.Store.Get(v.Name)), nil
	default:
		i, err := e.EvalToInt(n)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d", i), nil
	}
}

func strOf(v value.Value) string {
	if s, ok := v.(value.Str); ok {
		return s.S
	}
	return ""
}

// atoiLoose coerces a shell string to an int the way bash's arithmetic
// context treats an unset or non-numeric variable: 0, never an error.
func atoiLoose(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
