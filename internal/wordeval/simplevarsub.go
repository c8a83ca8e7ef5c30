package wordeval

import (
	"fmt"
	"strconv"

	"github.com/cwbudde/shword/internal/evalerr"
	"github.com/cwbudde/shword/internal/ident"
	"github.com/cwbudde/shword/internal/value"
	"github.com/cwbudde/shword/internal/wordast"
)

// EvalSimpleVarSub fetches the value a bare `$name`/`$1`/`$@`/... token
// refers to.
func (e *Evaluator) EvalSimpleVarSub(s *wordast.SimpleVarSub) value.Value {
	switch {
	case s.HasNum:
		return e.Store.GetArg(s.Number)
	case s.Name != "":
		return e.Store.Get(s.Name)
	default:
		switch s.Special {
		case ident.VSub_At, ident.VSub_Star:
			return value.NewMaybeStrArray(e.Store.GetArgv()...)
		case ident.VSub_Hash:
			return value.Str{S: strconv.Itoa(len(e.Store.GetArgv()))}
		default:
			return e.Store.GetSpecial(s.Special)
		}
	}
}

// evalSimpleVarSubToString is the exposed
// eval_simple_var_sub_to_string(tok) -> str.
func (e *Evaluator) evalSimpleVarSubToString(s *wordast.SimpleVarSub) (string, error) {
	v := e.EvalSimpleVarSub(s)
	if _, ok := v.(value.Undef); ok && s.Name != "" && e.Options.Nounset() {
		return "", evalerr.New(fmt.Sprintf("Undefined variable %q", s.Name), s)
	}
	return e.Decay(v), nil
}
