package wordeval

import (
	"fmt"

	"github.com/cwbudde/shword/internal/value"
)

// Decay joins a remaining array/map Value down to a scalar string: arrays
// join their non-hole entries by the splitter's join char; Undef decays to
// the empty string; Str passes through unchanged.
func (e *Evaluator) Decay(v value.Value) string {
	switch vv := v.(type) {
	case value.Undef:
		return ""
	case value.Str:
		return vv.S
	case value.MaybeStrArray:
		return vv.Decay(string(e.Split.JoinChar()))
	case value.AssocArray:
		parts := make([]string, len(vv.Keys))
		for i, k := range vv.Keys {
			parts[i] = vv.Values[k]
		}
		sep := string(e.Split.JoinChar())
		out := ""
		for i, p := range parts {
			if i > 0 {
				out += sep
			}
			out += p
		}
		return out
	case value.Obj:
		return fmt.Sprint(vv.X)
	default:
		return ""
	}
}
