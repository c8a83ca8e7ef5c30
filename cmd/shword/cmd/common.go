package cmd

import (
	"fmt"
	"strings"

	"github.com/cwbudde/shword/internal/arith"
	"github.com/cwbudde/shword/internal/execport"
	"github.com/cwbudde/shword/internal/globexpand"
	"github.com/cwbudde/shword/internal/options"
	"github.com/cwbudde/shword/internal/ports"
	"github.com/cwbudde/shword/internal/promptfmt"
	"github.com/cwbudde/shword/internal/splitter"
	"github.com/cwbudde/shword/internal/store"
	"github.com/cwbudde/shword/internal/value"
	"github.com/cwbudde/shword/internal/wordeval"
)

// evalFlags are the shell-state flags shared by the "eval" and "words"
// commands: the variable store and shell options a word/word-sequence is
// evaluated against.
type evalFlags struct {
	sets      []string
	setArrays []string
	ifs       string
	nounset   bool
	noglob    bool
	simple    bool
	argv      []string
}

func (f *evalFlags) register(fl interface {
	StringArrayVar(p *[]string, name string, value []string, usage string)
	StringVar(p *string, name string, value string, usage string)
	BoolVar(p *bool, name string, value bool, usage string)
	StringSliceVar(p *[]string, name string, value []string, usage string)
}) {
	fl.StringArrayVar(&f.sets, "set", nil, "set a scalar variable: NAME=VALUE (repeatable)")
	fl.StringArrayVar(&f.setArrays, "set-array", nil, "set an array variable: NAME=v1,v2,v3 (repeatable)")
	fl.StringVar(&f.ifs, "ifs", "", "IFS value for field splitting (default: space/tab/newline)")
	fl.BoolVar(&f.nounset, "nounset", false, "treat unset variables as a fatal error")
	fl.BoolVar(&f.noglob, "noglob", false, "disable glob expansion")
	fl.BoolVar(&f.simple, "simple", false, "use Oil's simple_word_eval semantics (no IFS splitting, only static globs)")
	fl.StringSliceVar(&f.argv, "argv", nil, "positional parameters ($1, $2, ...)")
}

func (f *evalFlags) buildEvaluator() (*wordeval.Evaluator, error) {
	s := store.New("shword", f.argv)
	for _, kv := range f.sets {
		name, val, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, fmt.Errorf("--set expects NAME=VALUE, got %q", kv)
		}
		s.Set(value.Named(name), value.Str{S: val})
	}
	for _, kv := range f.setArrays {
		name, val, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, fmt.Errorf("--set-array expects NAME=v1,v2,..., got %q", kv)
		}
		elems := strings.Split(val, ",")
		s.Set(value.Named(name), value.NewMaybeStrArray(elems...))
	}

	opts := options.New()
	opts.Nounset_ = f.nounset
	opts.Noglob_ = f.noglob
	opts.SimpleWordEval_ = f.simple

	var split ports.Splitter
	if f.ifs == "" {
		split = splitter.New("")
	} else {
		split = splitter.NewExplicit(f.ifs)
	}

	return wordeval.New(s, arith.New(s), &execport.Stub{}, split, globexpand.New(), promptfmt.New(), nil, opts, nil), nil
}
