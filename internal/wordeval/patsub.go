package wordeval

import (
	"regexp"

	"github.com/cwbudde/shword/internal/evalerr"
	"github.com/cwbudde/shword/internal/value"
	"github.com/cwbudde/shword/internal/wordast"
)

// EvalPatSub implements `${v/pat/rep}` and its anchored/global variants
//: translate the glob pattern to an extended regex, compile
// a replacer, and apply it to a scalar or element-wise to an array.
func (e *Evaluator) EvalPatSub(v value.Value, op *wordast.PatSubOp) Outcome[value.Value] {
	patOut := e.EvalWordToString(op.Pattern, QuoteFnMatch)
	if patOut.IsError() {
		return Err[value.Value](patOut.Error())
	}
	repOut := e.EvalWordToString(op.Replace, QuoteDefault)
	if repOut.IsError() {
		return Err[value.Value](repOut.Error())
	}

	ere, _, err := e.Glob.GlobToERE(patOut.Val())
	if err != nil {
		return Err[value.Value](evalerr.New("invalid pattern in substitution: "+err.Error(), op.Pattern))
	}
	switch op.Anchor {
	case '#':
		ere = "^(?:" + ere + ")"
	case '%':
		ere = "(?:" + ere + ")$"
	}
	re, err := regexp.Compile(ere)
	if err != nil {
		return Err[value.Value](evalerr.New("invalid regex after pattern translation: "+err.Error(), op.Pattern))
	}

	result, verr := vectorize(v, func(s string) (string, error) {
		if op.Global {
			return re.ReplaceAllLiteralString(s, repOut.Val()), nil
		}
		loc := re.FindStringIndex(s)
		if loc == nil {
			return s, nil
		}
		return s[:loc[0]] + repOut.Val() + s[loc[1]:], nil
	})
	if verr != nil {
		return Err[value.Value](verr)
	}
	return Ok(result)
}
