package wordeval

import (
	"strings"

	"github.com/cwbudde/shword/internal/evalerr"
	"github.com/cwbudde/shword/internal/ident"
	"github.com/cwbudde/shword/internal/wordast"
)

// AssignArg is one `name[=value]` operand of an assignment-builtin
// invocation. Value is nil for a bare name.
type AssignArg struct {
	Name  string
	Value *string
}

// Assignment is the parsed form of an assignment-builtin command line
//").
type Assignment struct {
	BuiltinID ident.Id
	Flags     []string
	Pairs     []AssignArg
}

// CmdValue is the word-sequence driver's result: either a plain argv, or a
// parsed assignment-builtin invocation.
type CmdValue struct {
	Argv   []string
	Assign *Assignment
}

// literalText returns a word's text and true only when the word is a
// single unquoted Literal -- the form assignment-builtin detection and
// static flag/name=value parsing require.
func literalText(w *wordast.Word) (string, bool) {
	if w == nil || len(w.Parts) != 1 {
		return "", false
	}
	lit, ok := w.Parts[0].(*wordast.Literal)
	if !ok {
		return "", false
	}
	return lit.Text, true
}

// detectAssignBuiltin looks up the first word's literal text in the small
// builtin table to decide whether a command line is really an
// assignment-builtin invocation (declare, export, local, readonly, ...).
func detectAssignBuiltin(first *wordast.Word) (ident.Id, bool) {
	text, ok := literalText(first)
	if !ok {
		return 0, false
	}
	id, ok := ident.AssignBuiltinIds[text]
	return id, ok
}

// parseAssignment builds the Assignment for words[1:], the tail of an
// assignment-builtin command line.
func (e *Evaluator) parseAssignment(builtinID ident.Id, rest []*wordast.Word) (*Assignment, error) {
	a := &Assignment{BuiltinID: builtinID}
	for _, w := range rest {
		if text, ok := literalText(w); ok && isFlagToken(text) {
			a.Flags = append(a.Flags, text)
			continue
		}
		pair, err := e.parseAssignArg(w)
		if err != nil {
			return nil, err
		}
		a.Pairs = append(a.Pairs, pair)
	}
	return a, nil
}

func isFlagToken(s string) bool {
	return len(s) > 1 && (s[0] == '-' || s[0] == '+')
}

// parseAssignArg handles both the static "name=value" literal form and the
// dynamic form where the whole word must be evaluated first and then split
// on its first "=".
func (e *Evaluator) parseAssignArg(w *wordast.Word) (AssignArg, error) {
	if text, ok := literalText(w); ok {
		if idx := strings.IndexByte(text, '='); idx >= 0 {
			name := text[:idx]
			if !isValidVarName(name) {
				return AssignArg{}, evalerr.New("invalid assignment name: "+name, w)
			}
			valueWord := &wordast.Word{Span: w.Span, Parts: []wordast.WordPart{
				&wordast.Literal{Span: w.Span, Text: text[idx+1:]},
			}}
			out := e.EvalWordToString(valueWord, QuoteDefault)
			if out.IsError() {
				return AssignArg{}, out.Error()
			}
			v := out.Val()
			return AssignArg{Name: name, Value: &v}, nil
		}
		if !isValidVarName(text) {
			return AssignArg{}, evalerr.New("invalid assignment name: "+text, w)
		}
		return AssignArg{Name: text}, nil
	}

	// Dynamic argument: evaluate the whole word (splitting disabled, the
	// way eval_word_to_string always behaves), then split on its first "=".
	out := e.EvalWordToString(w, QuoteDefault)
	if out.IsError() {
		return AssignArg{}, out.Error()
	}
	s := out.Val()
	if idx := strings.IndexByte(s, '='); idx >= 0 {
		name, value := s[:idx], s[idx+1:]
		if !isValidVarName(name) {
			return AssignArg{}, evalerr.New("invalid assignment name: "+name, w)
		}
		return AssignArg{Name: name, Value: &value}, nil
	}
	if !isValidVarName(s) {
		return AssignArg{}, evalerr.New("invalid assignment name: "+s, w)
	}
	return AssignArg{Name: s}, nil
}
