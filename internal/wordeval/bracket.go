package wordeval

import (
	"fmt"

	"github.com/cwbudde/shword/internal/evalerr"
	"github.com/cwbudde/shword/internal/value"
	"github.com/cwbudde/shword/internal/wordast"
)

// bracketResult is the outcome of applying a BracketOp: the (possibly
// narrowed) value, and whether a later decay-to-string should still run.
type bracketResult struct {
	val        value.Value
	maybeDecay bool
}

// EvalBracketOp applies op (may be nil) to v, already fetched by name
//. quoted is whether the enclosing var-sub was inside double
// quotes, which governs whether `[@]` decays.
func (e *Evaluator) EvalBracketOp(v value.Value, op *wordast.BracketOp, quoted bool, blame wordast.Node) Outcome[bracketResult] {
	if op == nil {
		return Ok(bracketResult{val: v})
	}

	if op.All {
		switch vv := v.(type) {
		case value.Str:
			return Err[bracketResult](evalerr.New("cannot scalar-index a string with [@]", blame))
		case value.MaybeStrArray:
			return Ok(bracketResult{val: vv, maybeDecay: !quoted})
		case value.AssocArray:
			return Ok(bracketResult{val: vv, maybeDecay: !quoted})
		default:
			return Ok(bracketResult{val: v})
		}
	}
	if op.Star {
		switch vv := v.(type) {
		case value.Str:
			return Err[bracketResult](evalerr.New("cannot scalar-index a string with [*]", blame))
		case value.MaybeStrArray:
			return Ok(bracketResult{val: vv, maybeDecay: true})
		case value.AssocArray:
			return Ok(bracketResult{val: vv, maybeDecay: true})
		default:
			return Ok(bracketResult{val: v})
		}
	}

	// Integer or associative-array-key index.
	switch vv := v.(type) {
	case value.AssocArray:
		keyNode := op.Key
		if keyNode == nil {
			keyNode = op.Index
		}
		key, err := e.Arith.EvalToString(keyNode)
		if err != nil {
			return Err[bracketResult](evalerr.New(fmt.Sprintf("bad associative-array key: %v", err), blame))
		}
		if s, ok := vv.Get(key); ok {
			return Ok(bracketResult{val: value.Str{S: s}})
		}
		return Ok(bracketResult{val: value.Undef{}})
	case value.MaybeStrArray:
		i, err := e.Arith.EvalToInt(op.Index)
		if err != nil {
			return Err[bracketResult](evalerr.New(fmt.Sprintf("bad array index: %v", err), blame))
		}
		i = normalizeIndex(i, len(vv.Entries))
		if s, ok := vv.Get(i); ok {
			return Ok(bracketResult{val: value.Str{S: s}})
		}
		return Ok(bracketResult{val: value.Undef{}})
	default:
		// Indexing a scalar/Undef with [0] is a bash-ism that returns the
		// scalar itself; any other index yields Undef.
		i, err := e.Arith.EvalToInt(op.Index)
		if err == nil && i == 0 {
			return Ok(bracketResult{val: v})
		}
		return Ok(bracketResult{val: value.Undef{}})
	}
}
