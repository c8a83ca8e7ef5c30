package wordeval

import (
	"strings"
	"unicode"

	"github.com/cwbudde/shword/internal/evalerr"
	"github.com/cwbudde/shword/internal/ident"
	"github.com/cwbudde/shword/internal/value"
	"github.com/cwbudde/shword/internal/wordast"
)

// EvalOp1 implements the unary pattern/case ops: %, %%, #,
// ##, ^, ^^, ,, ,,. The pattern/case-class argument is evaluated in
// FnMatch quote mode so glob metacharacters from unquoted source survive.
func (e *Evaluator) EvalOp1(v value.Value, op *wordast.Op1) Outcome[value.Value] {
	argOut := e.EvalWordToString(op.Arg, QuoteFnMatch)
	if argOut.IsError() {
		return Err[value.Value](argOut.Error())
	}
	pattern := argOut.Val()

	result, err := vectorize(v, func(s string) (string, error) {
		return e.applyOp1(s, op.Op, pattern, op.Arg)
	})
	if err != nil {
		return Err[value.Value](err)
	}
	return Ok(result)
}

func (e *Evaluator) applyOp1(s string, opID ident.Id, pattern string, blame wordast.Node) (string, error) {
	switch opID {
	case ident.VOp1_Percent, ident.VOp1_DPercent:
		ere, warnings, err := e.Glob.GlobToERE(pattern)
		if err != nil {
			return "", evalerr.New("invalid pattern in suffix-removal op: "+err.Error(), blame)
		}
		_ = warnings
		return stripSuffix(s, ere, opID == ident.VOp1_DPercent)
	case ident.VOp1_Pound, ident.VOp1_DPound:
		ere, warnings, err := e.Glob.GlobToERE(pattern)
		if err != nil {
			return "", evalerr.New("invalid pattern in prefix-removal op: "+err.Error(), blame)
		}
		_ = warnings
		return stripPrefix(s, ere, opID == ident.VOp1_DPound)
	case ident.VOp1_Caret, ident.VOp1_DCaret:
		return caseFold(s, pattern, opID == ident.VOp1_DCaret, unicode.ToUpper)
	case ident.VOp1_Comma, ident.VOp1_DComma:
		return caseFold(s, pattern, opID == ident.VOp1_DComma, unicode.ToLower)
	default:
		return s, nil
	}
}

// caseFold applies fold to every rune of s matched by pattern (a glob
// character class, e.g. "[a-z]"), or, when all is false, only to the first
// rune of s that pattern matches. An empty pattern matches every character.
func caseFold(s, pattern string, all bool, fold func(rune) rune) (string, error) {
	matches := func(r rune) bool { return true }
	if pattern != "" {
		matches = func(r rune) bool {
			ok, _ := matchesSingleCharGlob(pattern, r)
			return ok
		}
	}

	var sb strings.Builder
	changed := false
	for _, r := range s {
		if !changed || all {
			if matches(r) {
				sb.WriteRune(fold(r))
				changed = true
				continue
			}
		}
		sb.WriteRune(r)
	}
	return sb.String(), nil
}

// matchesSingleCharGlob reports whether r matches the single-character
// glob class pattern (e.g. "[a-z]", "?", or a literal char).
func matchesSingleCharGlob(pattern string, r rune) (bool, error) {
	return matchGlobSingleRune(pattern, r)
}
