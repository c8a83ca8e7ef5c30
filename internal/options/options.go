// Package options implements the shell option view consumed by
// the word evaluator: the strict/compat/simple boolean flags and the `$-`
// contributor set, as a flat struct of boolean fields with getter methods.
package options

import "sort"

// compatArrayNames is the fixed bash-compatibility set that decays like an
// array read without "[...]" regardless of the compat_array option.
var compatArrayNames = map[string]bool{
	"BASH_SOURCE": true,
	"FUNCNAME":    true,
	"BASH_LINENO": true,
}

// Options is the mutable option set. Zero value has every flag off.
type Options struct {
	Nounset_        bool
	StrictTilde_    bool
	StrictWordEval_ bool
	StrictArray_    bool
	SimpleWordEval_ bool
	CompatArray_    bool
	Noglob_         bool
	Extglob_        bool

	Interactive bool
	Errexit     bool
	Noexec      bool
	Xtrace      bool
	Noclobber   bool
}

// New returns an Options with every flag off, matching bash's defaults for
// the flags this evaluator consults.
func New() *Options {
	return &Options{}
}

func (o *Options) Nounset() bool        { return o.Nounset_ }
func (o *Options) StrictTilde() bool    { return o.StrictTilde_ }
func (o *Options) StrictWordEval() bool { return o.StrictWordEval_ }
func (o *Options) StrictArray() bool    { return o.StrictArray_ }
func (o *Options) SimpleWordEval() bool { return o.SimpleWordEval_ }
func (o *Options) CompatArray() bool    { return o.CompatArray_ }
func (o *Options) Noglob() bool         { return o.Noglob_ }
func (o *Options) Extglob() bool        { return o.Extglob_ }

func (o *Options) IsCompatArrayName(name string) bool {
	return compatArrayNames[name]
}

// Dollar computes the `$-` option-letter string from the contributor flags.
// bash emits these in a fixed letter order; this follows the same order.
func (o *Options) Dollar() string {
	type contributor struct {
		on     bool
		letter byte
	}
	contributors := []contributor{
		{o.Interactive, 'i'},
		{o.Errexit, 'e'},
		{o.Noglob_, 'f'},
		{o.Noexec, 'n'},
		{o.Nounset_, 'u'},
		{o.Xtrace, 'x'},
		{o.Noclobber, 'C'},
	}
	letters := make([]byte, 0, len(contributors))
	for _, c := range contributors {
		if c.on {
			letters = append(letters, c.letter)
		}
	}
	return string(letters)
}

// SortedNames returns names sorted, the order `${!prefix@}` / `${!prefix*}`
// enumeration requires.
func SortedNames(names []string) []string {
	out := append([]string(nil), names...)
	sort.Strings(out)
	return out
}
