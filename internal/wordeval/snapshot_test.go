package wordeval

import (
	"fmt"
	"testing"

	"github.com/cwbudde/shword/internal/ident"
	"github.com/cwbudde/shword/internal/options"
	"github.com/cwbudde/shword/internal/splitter"
	"github.com/cwbudde/shword/internal/store"
	"github.com/cwbudde/shword/internal/value"
	"github.com/cwbudde/shword/internal/wordast"
	"github.com/gkampitakis/go-snaps/snaps"
)

// These cover the end-to-end scenarios verbatim, one argv/value result per
// scenario, snapshotted so a regression in any evaluator layer shows up as a
// single diff instead of a pile of loose assertions.

func TestScenarioArraySpliceBetweenScalars(t *testing.T) {
	s := store.New("", nil)
	s.Set(value.Named("a"), value.NewMaybeStrArray("1", "2 3", "4"))
	s.Set(value.Named("x"), value.Str{S: "x"})
	s.Set(value.Named("y"), value.Str{S: "y"})
	e := newTestEvaluator(s, options.New(), nil)

	w := &wordast.Word{Parts: []wordast.WordPart{
		&wordast.SimpleVarSub{Name: "x"},
		&wordast.DoubleQuoted{Parts: []wordast.WordPart{
			&wordast.BracedVarSub{Name: "a", Bracket: &wordast.BracketOp{All: true}},
		}},
		&wordast.SimpleVarSub{Name: "y"},
	}}
	cmd, err := e.EvalWordSequence([]*wordast.Word{w}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snaps.MatchSnapshot(t, "array_splice_between_scalars", fmt.Sprintf("%#v", cmd.Argv))
}

func TestScenarioLengthOp(t *testing.T) {
	s := store.New("", nil)
	s.Set(value.Named("s"), value.Str{S: "hello"})
	e := newTestEvaluator(s, options.New(), nil)

	b := &wordast.BracedVarSub{Name: "s", Prefix: &wordast.PrefixOp{Length: true}}
	got, err := e.evalBracedVarSubToString(b, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snaps.MatchSnapshot(t, "length_op_ascii", got)

	s.Set(value.Named("s"), value.Str{S: "héllo"})
	got, err = e.evalBracedVarSubToString(b, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snaps.MatchSnapshot(t, "length_op_utf8", got)
}

func TestScenarioNounsetIsFatal(t *testing.T) {
	s := store.New("", nil)
	opts := options.New()
	opts.Nounset_ = true
	e := newTestEvaluator(s, opts, nil)

	_, err := e.evalBracedVarSubToString(&wordast.BracedVarSub{Name: "u"}, false)
	if err == nil {
		t.Fatal("expected fatal error for unset variable under nounset")
	}
	snaps.MatchSnapshot(t, "nounset_error", err.Error())
}

func TestScenarioColonHyphenDefault(t *testing.T) {
	s := store.New("", nil)
	s.Set(value.Named("u"), value.Str{S: ""})
	e := newTestEvaluator(s, options.New(), nil)

	b := &wordast.BracedVarSub{Name: "u", Suffix: &wordast.TestOp{
		Op: ident.VTest_ColonHyphen, ColonForm: true, Arg: litWord("default"),
	}}
	got, err := e.evalBracedVarSubToString(b, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snaps.MatchSnapshot(t, "colon_hyphen_unset", got)

	s.Set(value.Named("u"), value.Str{S: "x"})
	got, err = e.evalBracedVarSubToString(b, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snaps.MatchSnapshot(t, "colon_hyphen_set", got)
}

func TestScenarioArrayJoinVsSplice(t *testing.T) {
	s := store.New("", nil)
	s.Set(value.Named("arr"), value.NewMaybeStrArray("a", "b", "c"))
	e := New(s, nil, nil, splitter.NewExplicit(","), nil, nil, nil, options.New(), nil)
	e.Glob = noopGlobber{}

	star := &wordast.DoubleQuoted{Parts: []wordast.WordPart{
		&wordast.BracedVarSub{Name: "arr", Bracket: &wordast.BracketOp{Star: true}},
	}}
	starWord := &wordast.Word{Parts: []wordast.WordPart{star}}
	cmd, err := e.EvalWordSequence([]*wordast.Word{starWord}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snaps.MatchSnapshot(t, "array_star_joined", fmt.Sprintf("%#v", cmd.Argv))

	at := &wordast.DoubleQuoted{Parts: []wordast.WordPart{
		&wordast.BracedVarSub{Name: "arr", Bracket: &wordast.BracketOp{All: true}},
	}}
	atWord := &wordast.Word{Parts: []wordast.WordPart{at}}
	cmd, err = e.EvalWordSequence([]*wordast.Word{atWord}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snaps.MatchSnapshot(t, "array_at_spliced", fmt.Sprintf("%#v", cmd.Argv))
}

func TestScenarioSuffixRemoval(t *testing.T) {
	s := store.New("", nil)
	s.Set(value.Named("p"), value.Str{S: "/home/user/file.txt"})
	e := newTestEvaluator(s, options.New(), nil)

	suffix := &wordast.BracedVarSub{Name: "p", Suffix: &wordast.Op1{
		Op: ident.VOp1_DPound, Arg: litWord("*/"),
	}}
	got, err := e.evalBracedVarSubToString(suffix, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snaps.MatchSnapshot(t, "suffix_removal_basename", got)

	prefix := &wordast.BracedVarSub{Name: "p", Suffix: &wordast.Op1{
		Op: ident.VOp1_Percent, Arg: litWord("/*"),
	}}
	got, err = e.evalBracedVarSubToString(prefix, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snaps.MatchSnapshot(t, "suffix_removal_dirname", got)
}

func TestScenarioDeclareReadonlyAssignment(t *testing.T) {
	s := store.New("", nil)
	e := newTestEvaluator(s, options.New(), nil)

	words := []*wordast.Word{litWord("declare"), litWord("-r"), litWord("foo=bar")}
	cmd, err := e.EvalWordSequence(words, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd.Assign == nil {
		t.Fatal("expected an assignment result")
	}
	snaps.MatchSnapshot(t, "declare_readonly", fmt.Sprintf("%+v", *cmd.Assign))
}

// noopGlobber disables pathname expansion so the scenario above exercises
// only the split/join logic under test, not the real filesystem.
type noopGlobber struct{}

func (noopGlobber) Expand(pattern string) ([]string, error) { return nil, nil }
func (noopGlobber) Escape(s string) string                  { return s }
func (noopGlobber) LooksLikeStaticGlob(s string) bool        { return false }
func (noopGlobber) GlobToERE(pattern string) (string, []string, error) {
	return "", nil, nil
}
