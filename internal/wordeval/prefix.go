package wordeval

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/cwbudde/shword/internal/evalerr"
	"github.com/cwbudde/shword/internal/value"
	"github.com/cwbudde/shword/internal/wordast"
)

// EvalLength implements the `#` prefix op: UTF-8 character
// count for a scalar, non-hole entry count for an indexed array, entry
// count for an associative array.
func (e *Evaluator) EvalLength(v value.Value, blame wordast.Node) Outcome[string] {
	switch vv := v.(type) {
	case value.Str:
		if !utf8.ValidString(vv.S) {
			if e.Options.StrictWordEval() {
				return Err[string](evalerr.New("invalid UTF-8 in length operand", blame))
			}
			return Ok("-1")
		}
		return Ok(strconv.Itoa(utf8.RuneCountInString(vv.S)))
	case value.MaybeStrArray:
		return Ok(strconv.Itoa(vv.NonHoleCount()))
	case value.AssocArray:
		return Ok(strconv.Itoa(len(vv.Keys)))
	case value.Undef:
		return Ok("0")
	default:
		return Ok("0")
	}
}

// EvalIndirect implements the `!` prefix op.
func (e *Evaluator) EvalIndirect(v value.Value, blame wordast.Node) Outcome[value.Value] {
	switch vv := v.(type) {
	case value.Str:
		return e.indirectFromString(vv.S, blame)
	case value.MaybeStrArray:
		return Ok[value.Value](value.NewMaybeStrArray(vv.NonHoleIndices()...))
	case value.AssocArray:
		return Ok[value.Value](value.NewMaybeStrArray(append([]string(nil), vv.Keys...)...))
	default:
		return Err[value.Value](evalerr.New("indirect expansion of undefined value", blame))
	}
}

func (e *Evaluator) indirectFromString(s string, blame wordast.Node) Outcome[value.Value] {
	if isValidVarName(s) {
		return Ok(e.Store.Get(s))
	}
	if n, err := strconv.Atoi(s); err == nil {
		return Ok(e.Store.GetArg(n))
	}
	if s == "@" || s == "*" {
		return Ok[value.Value](value.NewMaybeStrArray(e.Store.GetArgv()...))
	}
	if name, idx, ok := splitNameIndex(s); ok {
		return e.indirectArrayExpand(name, idx, blame)
	}
	return Err[value.Value](evalerr.New(fmt.Sprintf("bad indirect expansion: %q", s), blame))
}

func (e *Evaluator) indirectArrayExpand(name, index string, blame wordast.Node) Outcome[value.Value] {
	base := e.Store.Get(name)
	switch index {
	case "@", "*":
		if arr, ok := base.(value.MaybeStrArray); ok {
			return Ok[value.Value](arr)
		}
		return Ok[value.Value](value.NewMaybeStrArray())
	}
	switch arr := base.(type) {
	case value.MaybeStrArray:
		i, err := strconv.Atoi(index)
		if err != nil {
			return Err[value.Value](evalerr.New(fmt.Sprintf("bad indirect array index: %q", index), blame))
		}
		i = normalizeIndex(i, len(arr.Entries))
		if s, ok := arr.Get(i); ok {
			return Ok[value.Value](value.Str{S: s})
		}
		return Ok[value.Value](value.Undef{})
	case value.AssocArray:
		if s, ok := arr.Get(index); ok {
			return Ok[value.Value](value.Str{S: s})
		}
		return Ok[value.Value](value.Undef{})
	default:
		return Ok[value.Value](value.Undef{})
	}
}

// isValidVarName reports whether s is a syntactically valid shell
// identifier: [A-Za-z_][A-Za-z0-9_]*.
func isValidVarName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// splitNameIndex parses "name[index]" into its two parts.
func splitNameIndex(s string) (name, index string, ok bool) {
	open := strings.IndexByte(s, '[')
	if open < 0 || !strings.HasSuffix(s, "]") {
		return "", "", false
	}
	name = s[:open]
	if !isValidVarName(name) {
		return "", "", false
	}
	index = s[open+1 : len(s)-1]
	return name, index, true
}

// normalizeIndex converts a possibly-negative index (counting from the end)
// into a non-negative array index; out-of-range results are left as-is so
// callers can detect the miss via Get's bounds check.
func normalizeIndex(i, length int) int {
	if i < 0 {
		return length + i
	}
	return i
}
