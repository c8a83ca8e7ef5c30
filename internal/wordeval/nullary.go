package wordeval

import (
	"fmt"
	"strings"

	"github.com/cwbudde/shword/internal/evalerr"
	"github.com/cwbudde/shword/internal/ident"
	"github.com/cwbudde/shword/internal/value"
	"github.com/cwbudde/shword/internal/wordast"
)

// nullaryResult carries a formatted string plus whether the formatter's
// output must itself be treated as already-quoted.
type nullaryResult struct {
	s      string
	quoted bool
}

// EvalNullaryOp implements the `@X` formatters: `@P` prompt
// evaluation, `@Q` shell-quoting, `@a` attribute letters. cell may be nil
// when the variable has no backing Cell (e.g. a positional parameter).
func (e *Evaluator) EvalNullaryOp(v value.Value, op *wordast.NullaryOp, cell *value.Cell, blame wordast.Node) Outcome[nullaryResult] {
	switch op.Op {
	case ident.VOp0_P:
		s := e.Decay(v)
		out, err := e.Prompt.Eval(s)
		if err != nil {
			return Err[nullaryResult](evalerr.New("prompt evaluation failed: "+err.Error(), blame))
		}
		return Ok(nullaryResult{s: out})
	case ident.VOp0_Q:
		return Ok(nullaryResult{s: shellQuote(e.Decay(v)), quoted: true})
	case ident.VOp0_A, ident.VOp0_a:
		if cell == nil {
			return Ok(nullaryResult{s: ""})
		}
		return Ok(nullaryResult{s: cell.Attrs()})
	case ident.VOp0_K:
		return Ok(nullaryResult{s: keyValuePairs(v)})
	default:
		return Ok(nullaryResult{s: e.Decay(v)})
	}
}

// shellQuote renders s as a single-quoted token that round-trips
// byte-for-byte: embedded single quotes are
// closed, escaped, and reopened the standard shell way.
func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// keyValuePairs renders an AssocArray/MaybeStrArray as `(key value ...)`
// pairs for the `@K` formatter (bash 5.1+).
func keyValuePairs(v value.Value) string {
	switch vv := v.(type) {
	case value.AssocArray:
		var sb strings.Builder
		for i, k := range vv.Keys {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(shellQuote(k))
			sb.WriteByte(' ')
			sb.WriteString(shellQuote(vv.Values[k]))
		}
		return sb.String()
	case value.MaybeStrArray:
		var sb strings.Builder
		first := true
		for i, e := range vv.Entries {
			if e == nil {
				continue
			}
			if !first {
				sb.WriteByte(' ')
			}
			sb.WriteString(fmt.Sprintf("%d %s", i, shellQuote(*e)))
			first = false
		}
		return sb.String()
	default:
		return ""
	}
}
