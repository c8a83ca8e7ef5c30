package wordeval

import "github.com/cwbudde/shword/internal/value"

// vectorize applies op once to a scalar, or element-wise to every non-hole
// entry of an array/map, preserving order and holes -- the one helper shared by the unary pattern ops,
// pattern substitution, and case-folding formatters instead of each
// re-implementing its own element-wise loop.
func vectorize(v value.Value, op func(string) (string, error)) (value.Value, error) {
	switch vv := v.(type) {
	case value.Str:
		s, err := op(vv.S)
		if err != nil {
			return nil, err
		}
		return value.Str{S: s}, nil
	case value.Undef:
		s, err := op("")
		if err != nil {
			return nil, err
		}
		return value.Str{S: s}, nil
	case value.MaybeStrArray:
		entries := make([]*string, len(vv.Entries))
		for i, entry := range vv.Entries {
			if entry == nil {
				continue
			}
			s, err := op(*entry)
			if err != nil {
				return nil, err
			}
			entries[i] = &s
		}
		return value.MaybeStrArray{Entries: entries}, nil
	case value.AssocArray:
		values := make(map[string]string, len(vv.Values))
		for k, val := range vv.Values {
			s, err := op(val)
			if err != nil {
				return nil, err
			}
			values[k] = s
		}
		return value.AssocArray{Keys: append([]string(nil), vv.Keys...), Values: values}, nil
	default:
		return v, nil
	}
}
