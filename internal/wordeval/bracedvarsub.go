package wordeval

import (
	"fmt"
	"strconv"

	"github.com/cwbudde/shword/internal/evalerr"
	"github.com/cwbudde/shword/internal/ident"
	"github.com/cwbudde/shword/internal/options"
	"github.com/cwbudde/shword/internal/part"
	"github.com/cwbudde/shword/internal/value"
	"github.com/cwbudde/shword/internal/wordast"
)

// evalBracedVarSubToString runs the full braced var-sub sequence and
// reduces the result to a string, the way evalPart needs it.
func (e *Evaluator) evalBracedVarSubToString(b *wordast.BracedVarSub, quoted bool) (string, error) {
	v, _, _, err := e.evalBracedVarSub(b, quoted)
	if err != nil {
		return "", err
	}
	return e.Decay(v), nil
}

// evalBracedVarSubToPartValue is the frame-building counterpart: it preserves array-ness when the value
// wasn't marked for decay, so "${a[@]}" can still expand into multiple argv
// entries once the frame builder splits it.
func (e *Evaluator) evalBracedVarSubToPartValue(b *wordast.BracedVarSub, quoted bool) (part.Value, error) {
	v, maybeDecayArray, forceQuoted, err := e.evalBracedVarSub(b, quoted)
	if err != nil {
		return part.Value{}, err
	}
	if !maybeDecayArray {
		switch vv := v.(type) {
		case value.MaybeStrArray:
			strs := make([]string, 0, len(vv.Entries))
			for _, entry := range vv.Entries {
				if entry != nil {
					strs = append(strs, *entry)
				}
			}
			return part.NewArray(strs), nil
		case value.AssocArray:
			strs := make([]string, len(vv.Keys))
			for i, k := range vv.Keys {
				strs[i] = vv.Values[k]
			}
			return part.NewArray(strs), nil
		}
	}
	return part.NewString(e.Decay(v), quoted || forceQuoted), nil
}

// evalBracedVarSub runs the full 7-step braced var-sub sequence and
// returns the resulting value, whether it is still an array pending decay
// (step 4's scalar-ness check already having folded anything that must
// decay regardless of caller), and whether the result must be treated as
// already-quoted regardless of the caller's lexical context (set only by
// the `@Q` formatter, whose output must never be re-split). quoted is
// whether this substitution is lexically inside double quotes.
func (e *Evaluator) evalBracedVarSub(b *wordast.BracedVarSub, quoted bool) (value.Value, bool, bool, error) {
	// Step 2: "${!prefix@}" / "${!prefix*}" name enumeration returns early,
	// before ever fetching a base value.
	if b.PrefixList {
		names := options.SortedNames(e.Store.NamesWithPrefix(b.Name))
		if b.PrefixListJoined {
			sep := string(e.Split.JoinChar())
			out := ""
			for i, n := range names {
				if i > 0 {
					out += sep
				}
				out += n
			}
			return value.Str{S: out}, false, false, nil
		}
		return value.NewMaybeStrArray(names...), !quoted, false, nil
	}

	// Step 1: fetch base value and the associated storage cell (if any).
	v, cell, lv, name := e.fetchBase(b)

	// Indirect ("!") applies before the bracket op when requested and the
	// sub isn't a name-enumeration form; it replaces v (and drops lv, since
	// the write-back target of a `:=` no longer makes sense through one).
	if b.Indirect {
		out := e.EvalIndirect(v, b)
		if out.IsError() {
			return nil, false, false, out.Error()
		}
		v = out.Val()
		cell = nil
		lv = nil
	}

	maybeDecayArray := false
	if name == "@" || name == "*" {
		if _, ok := v.(value.MaybeStrArray); ok {
			maybeDecayArray = name == "*" || !quoted
		}
	}

	// Step 3: bracket op.
	hadBracket := b.Bracket != nil
	brOut := e.EvalBracketOp(v, b.Bracket, quoted, b)
	if brOut.IsError() {
		return nil, false, false, brOut.Error()
	}
	v = brOut.Val().val
	if brOut.Val().maybeDecay {
		maybeDecayArray = true
	}
	if hadBracket {
		lv = bracketLvalue(lv, b.Bracket, e)
	}

	// Step 4: scalar-ness check. Bare "$@"/"$*" are exempt: they're always
	// valid in a scalar position and decay per maybeDecayArray above, the
	// same as a compat-array name.
	if !hadBracket && name != "@" && name != "*" {
		switch v.(type) {
		case value.MaybeStrArray, value.AssocArray:
			isCompat := e.Options.IsCompatArrayName(name)
			allowedSuffix := false
			if op, ok := b.Suffix.(*wordast.NullaryOp); ok && (op.Op == ident.VOp0_A || op.Op == ident.VOp0_a) {
				allowedSuffix = true
			}
			if _, ok := b.Suffix.(*wordast.TestOp); ok {
				allowedSuffix = true
			}
			if isCompat || e.Options.CompatArray() {
				v = value.Str{S: e.Decay(v)}
				maybeDecayArray = false
			} else if !allowedSuffix {
				return nil, false, false, evalerr.New(fmt.Sprintf("%q: array used in scalar context", name), b)
			}
		}
	}

	// Step 5: empty/unset check. VTest must observe Undef itself.
	if _, isTest := b.Suffix.(*wordast.TestOp); !isTest {
		if _, isUndef := v.(value.Undef); isUndef && e.Options.Nounset() {
			return nil, false, false, evalerr.New(fmt.Sprintf("Undefined variable %q", name), b)
		}
	}

	// Step 6: prefix op, suffix op, decay.
	if b.Prefix != nil && b.Prefix.Length {
		out := e.EvalLength(v, b)
		if out.IsError() {
			return nil, false, false, out.Error()
		}
		return value.Str{S: out.Val()}, false, false, nil
	}

	switch op := b.Suffix.(type) {
	case *wordast.TestOp:
		out := e.EvalVTest(v, op, lv, b)
		if out.IsError() {
			return nil, false, false, out.Error()
		}
		v = out.Val().val
	case *wordast.Op1:
		out := e.EvalOp1(v, op)
		if out.IsError() {
			return nil, false, false, out.Error()
		}
		v = out.Val()
	case *wordast.PatSubOp:
		out := e.EvalPatSub(v, op)
		if out.IsError() {
			return nil, false, false, out.Error()
		}
		v = out.Val()
	case *wordast.SliceOp:
		out := e.EvalSlice(v, op, b)
		if out.IsError() {
			return nil, false, false, out.Error()
		}
		v = out.Val()
	case *wordast.NullaryOp:
		out := e.EvalNullaryOp(v, op, cell, b)
		if out.IsError() {
			return nil, false, false, out.Error()
		}
		return value.Str{S: out.Val().s}, false, out.Val().quoted, nil
	}

	return v, maybeDecayArray, false, nil
}

// fetchBase implements step 1: fetch the base value by name, positional
// index, or special id, plus its storage cell (for `@a`) and an Lvalue
// write target for a later `:=` (nil for positional/special references,
// since those can't be assigned through this path).
func (e *Evaluator) fetchBase(b *wordast.BracedVarSub) (value.Value, *value.Cell, *value.Lvalue, string) {
	switch {
	case b.HasNum:
		return e.Store.GetArg(b.Number), nil, nil, strconv.Itoa(b.Number)
	case b.Name != "":
		cell, _ := e.Store.GetCell(b.Name)
		lv := value.Named(b.Name)
		return e.Store.Get(b.Name), cell, &lv, b.Name
	default:
		switch b.Special {
		case ident.VSub_At:
			return value.NewMaybeStrArray(e.Store.GetArgv()...), nil, nil, "@"
		case ident.VSub_Star:
			return value.NewMaybeStrArray(e.Store.GetArgv()...), nil, nil, "*"
		case ident.VSub_Hash:
			return value.Str{S: strconv.Itoa(len(e.Store.GetArgv()))}, nil, nil, "#"
		default:
			return e.Store.GetSpecial(b.Special), nil, nil, ident.NameOf(b.Special)
		}
	}
}

// bracketLvalue narrows lv (a whole-variable target) down to the specific
// array/assoc slot a bracket op named, so a later `:=` writes back to the
// right element instead of clobbering the whole variable.
func bracketLvalue(lv *value.Lvalue, op *wordast.BracketOp, e *Evaluator) *value.Lvalue {
	if lv == nil || op == nil || op.All || op.Star {
		return lv
	}
	if op.Key != nil {
		key, err := e.Arith.EvalToString(op.Key)
		if err != nil {
			return lv
		}
		nlv := value.Keyed(lv.Name, key)
		return &nlv
	}
	i, err := e.Arith.EvalToInt(op.Index)
	if err != nil {
		return lv
	}
	nlv := value.Indexed(lv.Name, i)
	return &nlv
}
