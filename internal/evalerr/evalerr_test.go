package evalerr

import (
	"errors"
	"strings"
	"testing"

	"github.com/cwbudde/shword/internal/wordast"
)

func TestUnwindPushesFrames(t *testing.T) {
	node := &wordast.Literal{Span: wordast.Span{Line: 1, Col: 3}, Text: "x"}
	err := New("boom", node)
	var e error = err
	e = Unwind(e, "evalOp1", node)
	e = Unwind(e, "evalBracedVarSub", node)

	fe := e.(*FatalError)
	if len(fe.Frames) != 2 {
		t.Fatalf("Frames = %v, want 2 entries", fe.Frames)
	}
	if fe.Frames[0].FuncName != "evalOp1" || fe.Frames[1].FuncName != "evalBracedVarSub" {
		t.Errorf("Frames = %v, unexpected order", fe.Frames)
	}
}

func TestUnwindPassesThroughNonFatal(t *testing.T) {
	plain := errors.New("not fatal")
	got := Unwind(plain, "f", nil)
	if got != plain {
		t.Errorf("Unwind on non-FatalError should pass through unchanged")
	}
}

func TestDefaultFormatterCaret(t *testing.T) {
	node := &wordast.Literal{Span: wordast.Span{Line: 2, Col: 5}, Text: "y"}
	err := New("Undefined variable 'u'", node)
	out := DefaultFormatter{}.Format(err, "line one\nline ${u} two")
	if !strings.Contains(out, "Undefined variable 'u'") {
		t.Errorf("missing message: %q", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("missing caret: %q", out)
	}
}

func TestEvalForPluginRecoversPanic(t *testing.T) {
	got := EvalForPlugin(func() (string, error) {
		panic("boom")
	})
	if !strings.Contains(got, "error") {
		t.Errorf("EvalForPlugin = %q, want an error placeholder", got)
	}
}

func TestEvalForPluginWrapsFatalError(t *testing.T) {
	got := EvalForPlugin(func() (string, error) {
		return "", New("Undefined variable 'u'", nil)
	})
	if !strings.Contains(got, "Undefined variable") {
		t.Errorf("EvalForPlugin = %q", got)
	}
}
