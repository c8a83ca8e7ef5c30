package wordeval

import (
	"fmt"

	"github.com/cwbudde/shword/internal/evalerr"
	"github.com/cwbudde/shword/internal/value"
	"github.com/cwbudde/shword/internal/wordast"
)

// EvalWordSequence turns a command's raw words into either a plain argv or
// a parsed assignment-builtin invocation. allowAssign is false
// inside contexts (e.g. a command substitution's word list) where an
// assignment builtin never applies even if the first word's text matches.
func (e *Evaluator) EvalWordSequence(words []*wordast.Word, allowAssign bool) (CmdValue, error) {
	if allowAssign && len(words) > 0 {
		if id, ok := detectAssignBuiltin(words[0]); ok {
			a, err := e.parseAssignment(id, words[1:])
			if err != nil {
				return CmdValue{}, err
			}
			return CmdValue{Assign: a}, nil
		}
	}

	simple := e.Options.SimpleWordEval()
	var argv []string
	for _, w := range words {
		frames, err := e.frameOf(w)
		if err != nil {
			return CmdValue{}, err
		}
		_, static := literalText(w)
		for _, f := range frames {
			if simple && !static && len(f) > 0 && !f.AllEmptyUnquoted() {
				argv = append(argv, f.Concat())
				continue
			}
			argv = append(argv, e.driveFrame(f, simple)...)
		}
	}
	return CmdValue{Argv: argv}, nil
}

// EvalRHSWord evaluates the right-hand side of a plain `name=value`
// assignment (as opposed to an assignment-builtin argument). Splitting is
// always disabled. When the whole word is nothing but a single `$name` or
// `${name...}` substitution that still names an array or associative
// value, that value is returned as-is instead of being decayed to a
// scalar, so `x=$arr` or `x=${assoc[@]}` can assign the whole collection;
// any other word shape decays to a plain string, same as EvalWordToString.
func (e *Evaluator) EvalRHSWord(w *wordast.Word) (value.Value, error) {
	if w == nil {
		return value.Str{}, nil
	}
	if len(w.Parts) == 1 {
		switch p := w.Parts[0].(type) {
		case *wordast.SimpleVarSub:
			v := e.EvalSimpleVarSub(p)
			if _, ok := v.(value.Undef); ok && p.Name != "" && e.Options.Nounset() {
				return nil, evalerr.New(fmt.Sprintf("Undefined variable %q", p.Name), p)
			}
			return v, nil
		case *wordast.BracedVarSub:
			v, _, _, err := e.evalBracedVarSub(p, false)
			if err != nil {
				return nil, err
			}
			return v, nil
		}
	}
	out := e.EvalWordToString(w, QuoteDefault)
	if out.IsError() {
		return nil, out.Error()
	}
	return value.Str{S: out.Val()}, nil
}
