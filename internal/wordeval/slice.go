package wordeval

import (
	"unicode/utf8"

	"github.com/cwbudde/shword/internal/evalerr"
	"github.com/cwbudde/shword/internal/value"
	"github.com/cwbudde/shword/internal/wordast"
)

// EvalSlice implements `${v:begin:length}`: UTF-8 character
// units for scalars, with negative begin/length counting from the end;
// array slicing where length<0 is fatal and AssocArray slicing is always
// fatal.
func (e *Evaluator) EvalSlice(v value.Value, op *wordast.SliceOp, blame wordast.Node) Outcome[value.Value] {
	begin, err := e.Arith.EvalToInt(op.Begin)
	if err != nil {
		return e.sliceDegrade(evalerr.New("invalid slice begin: "+err.Error(), blame))
	}
	length := -1
	if op.HasLength {
		length, err = e.Arith.EvalToInt(op.Length)
		if err != nil {
			return e.sliceDegrade(evalerr.New("invalid slice length: "+err.Error(), blame))
		}
	}

	switch vv := v.(type) {
	case value.AssocArray:
		return Err[value.Value](evalerr.New("cannot slice an associative array", blame))
	case value.MaybeStrArray:
		if op.HasLength && length < 0 {
			return Err[value.Value](evalerr.New("negative length in array slice", blame))
		}
		return e.sliceArray(vv, begin, length, op.HasLength)
	case value.Str:
		return e.sliceScalar(vv.S, begin, length, op.HasLength, blame)
	default:
		return Ok[value.Value](value.Str{S: ""})
	}
}

func (e *Evaluator) sliceDegrade(err error) Outcome[value.Value] {
	if e.Options.StrictWordEval() {
		return Err[value.Value](err)
	}
	return Ok[value.Value](value.Str{S: ""})
}

func (e *Evaluator) sliceScalar(s string, begin, length int, hasLength bool, blame wordast.Node) Outcome[value.Value] {
	runes := []rune(s)
	n := len(runes)
	if !utf8.ValidString(s) {
		return e.sliceDegrade(evalerr.New("invalid UTF-8 in slice operand", blame))
	}

	if begin < 0 {
		begin = n + begin
	}
	if begin < 0 {
		begin = 0
	}
	if begin > n {
		begin = n
	}

	end := n
	if hasLength {
		if length < 0 {
			end = n + length
		} else {
			end = begin + length
		}
	}
	if end < begin {
		end = begin
	}
	if end > n {
		end = n
	}
	return Ok[value.Value](value.Str{S: string(runes[begin:end])})
}

func (e *Evaluator) sliceArray(arr value.MaybeStrArray, begin, length int, hasLength bool) Outcome[value.Value] {
	n := len(arr.Entries)
	if begin < 0 {
		begin = n + begin
	}
	if begin < 0 {
		begin = 0
	}
	if begin > n {
		begin = n
	}
	end := n
	if hasLength {
		end = begin + length
	}
	if end > n {
		end = n
	}
	if end < begin {
		end = begin
	}
	return Ok[value.Value](value.MaybeStrArray{Entries: append([]*string(nil), arr.Entries[begin:end]...)})
}
