package wordeval

import (
	"github.com/cwbudde/shword/internal/evalerr"
	"github.com/cwbudde/shword/internal/ident"
	"github.com/cwbudde/shword/internal/value"
	"github.com/cwbudde/shword/internal/wordast"
)

// vtestOutcome reports what a VTest op did to the value: unchanged, or
// mutated (possibly with a store write already performed).
type vtestOutcome struct {
	val     value.Value
	mutated bool
}

// EvalVTest implements the four test/default/assign/error operator pairs
//. lv is the write target to use for the `=`/`:=` pair
// (nil if the base wasn't a plain-name reference, in which case a write
// attempt is fatal).
func (e *Evaluator) EvalVTest(v value.Value, op *wordast.TestOp, lv *value.Lvalue, blame wordast.Node) Outcome[vtestOutcome] {
	falsey := v.IsFalsey(op.ColonForm)

	switch op.Op {
	case ident.VTest_ColonHyphen, ident.VTest_Hyphen:
		if !falsey {
			return Ok(vtestOutcome{val: v})
		}
		out := e.EvalWordToString(op.Arg, QuoteDefault)
		if out.IsError() {
			return Err[vtestOutcome](out.Error())
		}
		return Ok(vtestOutcome{val: value.Str{S: out.Val()}, mutated: true})

	case ident.VTest_ColonPlus, ident.VTest_Plus:
		if falsey {
			return Ok(vtestOutcome{val: value.Str{S: ""}})
		}
		out := e.EvalWordToString(op.Arg, QuoteDefault)
		if out.IsError() {
			return Err[vtestOutcome](out.Error())
		}
		return Ok(vtestOutcome{val: value.Str{S: out.Val()}, mutated: true})

	case ident.VTest_ColonEquals, ident.VTest_Equals:
		if !falsey {
			return Ok(vtestOutcome{val: v})
		}
		out := e.EvalWordToString(op.Arg, QuoteDefault)
		if out.IsError() {
			return Err[vtestOutcome](out.Error())
		}
		if lv == nil {
			return Err[vtestOutcome](evalerr.New("cannot assign to a special variable", blame))
		}
		e.Store.Set(*lv, value.Str{S: out.Val()})
		return Ok(vtestOutcome{val: value.Str{S: out.Val()}, mutated: true})

	case ident.VTest_ColonQMark, ident.VTest_QMark:
		if !falsey {
			return Ok(vtestOutcome{val: v})
		}
		msg := "parameter is unset or null"
		out := e.EvalWordToString(op.Arg, QuoteDefault)
		if out.IsError() {
			return Err[vtestOutcome](out.Error())
		}
		if out.Val() != "" {
			msg = out.Val()
		}
		return Err[vtestOutcome](evalerr.New(msg, blame))

	default:
		return Ok(vtestOutcome{val: v})
	}
}
