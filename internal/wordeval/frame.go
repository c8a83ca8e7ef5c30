package wordeval

import (
	"strings"

	"github.com/cwbudde/shword/internal/ident"
	"github.com/cwbudde/shword/internal/part"
	"github.com/cwbudde/shword/internal/wordast"
)

// evalWordToParts evaluates w into the flat part-value stream the frame
// builder consumes:
// one-or-more part.Values per WordPart, preserving array-ness for "$@"-like
// fragments instead of collapsing everything to a string.
func (e *Evaluator) evalWordToParts(w *wordast.Word) ([]part.Value, error) {
	if w == nil {
		return nil, nil
	}
	var vs []part.Value
	for _, p := range w.Parts {
		pvs, err := e.evalPartToPartValues(p, false)
		if err != nil {
			return nil, err
		}
		vs = append(vs, pvs...)
	}
	return vs, nil
}

// evalPartToPartValues mirrors evalPart (evalword.go) but keeps array-ness
// for the part kinds that can still produce one (BracedVarSub's "[@]"/
// "[*]" and the bare "$@"/"$*" simple-var-sub), instead of reducing
// everything to a string the way the quote-mode string evaluator must.
//
// A DoubleQuoted part can itself splice into several part-values -- bash's
// `$x"${a[@]}"$y` still expands "${a[@]}" into one argv entry per element
// even though the whole substitution sits inside quotes -- so this returns a slice rather than a single value, and the
// DoubleQuoted case recurses per inner part instead of flattening to one
// string up front.
func (e *Evaluator) evalPartToPartValues(p wordast.WordPart, quoted bool) ([]part.Value, error) {
	switch wp := p.(type) {
	case *wordast.DoubleQuoted:
		var vs []part.Value
		for _, inner := range wp.Parts {
			pvs, err := e.evalPartToPartValues(inner, true)
			if err != nil {
				return nil, err
			}
			vs = append(vs, pvs...)
		}
		return vs, nil
	case *wordast.BracedVarSub:
		v, err := e.evalBracedVarSubToPartValue(wp, quoted)
		if err != nil {
			return nil, err
		}
		return []part.Value{v}, nil
	case *wordast.SimpleVarSub:
		v, err := e.evalSimpleVarSubToPartValue(wp, quoted)
		if err != nil {
			return nil, err
		}
		return []part.Value{v}, nil
	default:
		out := e.evalPart(p, QuoteDefault, quoted)
		if out.IsError() {
			return nil, out.Error()
		}
		return []part.Value{part.NewString(out.Val(), quoted)}, nil
	}
}

// evalSimpleVarSubToPartValue implements the `$@` decay rule directly
// for the
// unbraced form.
func (e *Evaluator) evalSimpleVarSubToPartValue(s *wordast.SimpleVarSub, quoted bool) (part.Value, error) {
	if !s.HasNum && s.Name == "" && s.Special == ident.VSub_At && quoted {
		return part.NewArray(e.Store.GetArgv()), nil
	}
	str, err := e.evalSimpleVarSubToString(s)
	if err != nil {
		return part.Value{}, err
	}
	return part.NewString(str, quoted), nil
}

// frameOf evaluates w down to its frames: the one helper both the simple
// and legacy evaluation modes route through, so the two modes differ only
// in whether driveFrame below applies IFS splitting and dynamic globbing,
// not in how frames themselves are built.
func (e *Evaluator) frameOf(w *wordast.Word) ([]part.Frame, error) {
	if w == nil {
		return nil, nil
	}
	vs, err := e.evalWordToParts(w)
	if err != nil {
		return nil, err
	}
	return part.FramesFromValues(vs), nil
}

// driveFrame implements the per-frame split/glob algorithm. In simple mode
// IFS splitting never runs and the concatenated frame is glob-expanded;
// EvalWordSequence sends a frame here in that mode only when its word is a
// single literal, so only static globs expand.
func (e *Evaluator) driveFrame(f part.Frame, simple bool) []string {
	if len(f) == 0 || f.AllEmptyUnquoted() {
		return nil
	}
	if f.AllQuoted() {
		return []string{f.Concat()}
	}
	if simple {
		s := f.Concat()
		return e.expandGlob(s)
	}

	var concat strings.Builder
	anyQuoted := false
	for _, frag := range f {
		s := frag.S
		if !frag.DoSplit {
			anyQuoted = true
			s = e.Split.Escape(s)
		}
		if frag.Quoted && !e.Options.Noglob() {
			s = e.Glob.Escape(s)
		} else {
			s = doubleBackslashes(s)
		}
		concat.WriteString(s)
	}

	tokens := e.Split.Split(concat.String())
	if len(tokens) == 0 {
		if anyQuoted {
			return []string{""}
		}
		return nil
	}

	var out []string
	for _, tok := range tokens {
		out = append(out, e.expandGlob(tok)...)
	}
	return out
}

// expandGlob glob-expands s when globbing is enabled and s looks like a
// static glob pattern, falling back to the literal string when there are no
// matches (bash's default nullglob-off behavior).
func (e *Evaluator) expandGlob(s string) []string {
	if e.Options.Noglob() || !e.Glob.LooksLikeStaticGlob(s) {
		return []string{s}
	}
	matches, err := e.Glob.Expand(s)
	if err != nil || len(matches) == 0 {
		return []string{s}
	}
	return matches
}

func doubleBackslashes(s string) string {
	return strings.ReplaceAll(s, `\`, `\\`)
}
