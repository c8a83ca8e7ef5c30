package wordeval

import (
	"regexp"
	"strconv"

	"github.com/cwbudde/shword/internal/evalerr"
	"github.com/cwbudde/shword/internal/wordast"
)

// QuoteMode selects how special characters in the evaluated string are
// treated").
type QuoteMode int

const (
	// QuoteDefault performs no extra escaping: plain string interpolation.
	QuoteDefault QuoteMode = iota
	// QuoteFnMatch preserves glob metacharacters from unquoted source, but
	// escapes them when they came from a quoted region or a substitution's
	// runtime value used inside a quoted region.
	QuoteFnMatch
	// QuoteERE escapes for use inside an extended regex.
	QuoteERE
)

// EvalWordToString evaluates w under mode.
func (e *Evaluator) EvalWordToString(w *wordast.Word, mode QuoteMode) Outcome[string] {
	if w == nil {
		return Ok("")
	}
	var sb []byte
	for _, p := range w.Parts {
		out := e.evalPart(p, mode, false)
		if out.IsError() {
			return out
		}
		sb = append(sb, out.Val()...)
	}
	return Ok(string(sb))
}

// evalPart evaluates one WordPart under mode; quoted indicates the part is
// lexically inside a single- or double-quoted region (or, for case ops'
// pattern argument, otherwise controlled literal context), which forces
// metacharacter escaping under QuoteFnMatch/QuoteERE.
func (e *Evaluator) evalPart(p wordast.WordPart, mode QuoteMode, quoted bool) Outcome[string] {
	switch part := p.(type) {
	case *wordast.Literal:
		return e.maybeEscape(part.Text, mode, quoted)
	case *wordast.EscapedChar:
		return e.maybeEscape(string(part.Char), mode, true)
	case *wordast.SingleQuoted:
		return e.maybeEscape(part.Text, mode, true)
	case *wordast.DoubleQuoted:
		var sb []byte
		for _, inner := range part.Parts {
			out := e.evalPart(inner, mode, true)
			if out.IsError() {
				return out
			}
			sb = append(sb, out.Val()...)
		}
		return Ok(string(sb))
	case *wordast.Tilde:
		out := e.EvalTilde(part)
		if out.IsError() {
			return Err[string](out.Error())
		}
		return e.maybeEscape(out.Val(), mode, true)
	case *wordast.SimpleVarSub:
		s, err := e.evalSimpleVarSubToString(part)
		if err != nil {
			return Err[string](err)
		}
		return e.maybeEscape(s, mode, quoted)
	case *wordast.BracedVarSub:
		s, err := e.evalBracedVarSubToString(part, quoted)
		if err != nil {
			return Err[string](err)
		}
		return e.maybeEscape(s, mode, quoted)
	case *wordast.CommandSub:
		s, err := e.Exec.RunCommandSub(part.Body)
		if err != nil {
			return Err[string](evalerr.New("command substitution failed: "+err.Error(), part))
		}
		return e.maybeEscape(s, mode, quoted)
	case *wordast.ProcessSub:
		s, err := e.Exec.RunProcessSub(part.Out, part.Body)
		if err != nil {
			return Err[string](evalerr.New("process substitution failed: "+err.Error(), part))
		}
		return Ok(s)
	case *wordast.ArithSub:
		i, err := e.Arith.EvalToInt(part.Node)
		if err != nil {
			return Err[string](evalerr.New("arithmetic substitution failed: "+err.Error(), part))
		}
		return Ok(strconv.Itoa(i))
	default:
		return Ok("")
	}
}

func (e *Evaluator) maybeEscape(s string, mode QuoteMode, quoted bool) Outcome[string] {
	if !quoted || mode == QuoteDefault {
		return Ok(s)
	}
	if mode == QuoteFnMatch {
		return Ok(e.Glob.Escape(s))
	}
	// QuoteERE: escape every regex metacharacter, so a quoted literal can be
	// embedded directly into a larger regex without acting as one.
	return Ok(regexp.QuoteMeta(s))
}
