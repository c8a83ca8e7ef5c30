package wordeval

import (
	"testing"

	"github.com/cwbudde/shword/internal/options"
	"github.com/cwbudde/shword/internal/part"
	"github.com/cwbudde/shword/internal/store"
	"github.com/cwbudde/shword/internal/value"
	"github.com/cwbudde/shword/internal/wordast"
)

func TestFrameOfPlainLiteralWord(t *testing.T) {
	s := store.New("", nil)
	e := newTestEvaluator(s, options.New(), nil)
	frames, err := e.frameOf(litWord("hello"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(frames) != 1 {
		t.Fatalf("frames = %v, want 1", frames)
	}
	if got := e.driveFrame(frames[0], false); len(got) != 1 || got[0] != "hello" {
		t.Errorf("got %v, want [hello]", got)
	}
}

func TestFrameOfNilWordIsEmpty(t *testing.T) {
	s := store.New("", nil)
	e := newTestEvaluator(s, options.New(), nil)
	frames, err := e.frameOf(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(frames) != 0 {
		t.Errorf("frames = %v, want none", frames)
	}
}

func TestDriveFrameElidesAllEmptyUnquoted(t *testing.T) {
	s := store.New("", nil)
	e := newTestEvaluator(s, options.New(), nil)
	f := part.Frame{{S: "", Quoted: false, DoSplit: true}}
	if got := e.driveFrame(f, false); got != nil {
		t.Errorf("got %v, want nil (elided)", got)
	}
}

func TestDriveFrameQuotedEmptyFragmentYieldsOneEmptyArg(t *testing.T) {
	s := store.New("", nil)
	e := newTestEvaluator(s, options.New(), nil)
	f := part.Frame{
		{S: "", Quoted: true, DoSplit: false},
		{S: "", Quoted: false, DoSplit: true},
	}
	got := e.driveFrame(f, false)
	if len(got) != 1 || got[0] != "" {
		t.Errorf("got %v, want one empty arg", got)
	}
}

func TestDriveFrameSplitsUnquotedOnIFS(t *testing.T) {
	s := store.New("", nil)
	e := newTestEvaluator(s, options.New(), nil)
	f := part.Frame{{S: "one two three", Quoted: false, DoSplit: true}}
	got := e.driveFrame(f, false)
	want := []string{"one", "two", "three"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDriveFrameSimpleModeNeverSplits(t *testing.T) {
	s := store.New("", nil)
	e := newTestEvaluator(s, options.New(), nil)
	f := part.Frame{{S: "one two", Quoted: false, DoSplit: true}}
	got := e.driveFrame(f, true)
	if len(got) != 1 || got[0] != "one two" {
		t.Errorf("got %v, want [\"one two\"] unsplit", got)
	}
}

func TestEvalWordToPartsArraySpliceSurvivesInsideDoubleQuotes(t *testing.T) {
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
	frames, err := e.frameOf(w)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(frames) != 3 {
		t.Fatalf("frames = %+v, want 3", frames)
	}
	var got []string
	for _, f := range frames {
		got = append(got, e.driveFrame(f, false)...)
	}
	want := []string{"x1", "2 3", "4y"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
