// Package splitter implements ports.Splitter: the IFS-driven word splitter
// used to turn an unquoted, unsplit string into zero or more argv fragments.
package splitter

import (
	"strings"

	"github.com/cwbudde/shword/internal/ports"
)

const defaultIFS = " \t\n"

// Splitter honors IFS the way bash does: runs of whitespace IFS characters
// collapse into a single delimiter at the start/end and between fields,
// while any non-whitespace IFS character delimits exactly one field break
// per occurrence even when adjacent to another IFS character.
type Splitter struct {
	IFS string
}

var _ ports.Splitter = (*Splitter)(nil)

// New returns a Splitter using ifs, or bash's default " \t\n" if ifs is
// empty (note: an IFS variable explicitly *set* to the empty string is a
// distinct case from it being unset -- callers use NewExplicit when the
// distinction matters).
func New(ifs string) *Splitter {
	if ifs == "" {
		ifs = defaultIFS
	}
	return &Splitter{IFS: ifs}
}

// NewExplicit returns a Splitter using exactly ifs, including the empty
// string (IFS='' disables all splitting entirely, a distinct case from IFS
// being unset).
func NewExplicit(ifs string) *Splitter {
	return &Splitter{IFS: ifs}
}

// JoinChar returns the character `"$*"` joins positional parameters with:
// IFS's first character, or a space if IFS is empty.
func (sp *Splitter) JoinChar() byte {
	if sp.IFS == "" {
		return ' '
	}
	return sp.IFS[0]
}

func (sp *Splitter) whitespaceChars() string {
	var sb strings.Builder
	for _, r := range sp.IFS {
		if r == ' ' || r == '\t' || r == '\n' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Split breaks s into fields per bash IFS rules. An empty IFS performs no
// splitting at all: the whole string is one field (unless empty, which
// yields no fields).
func (sp *Splitter) Split(s string) []string {
	if sp.IFS == "" {
		if s == "" {
			return nil
		}
		return []string{s}
	}

	isWS := sp.whitespaceChars()
	isIFS := func(b byte) bool { return strings.IndexByte(sp.IFS, b) >= 0 }
	isIFSWS := func(b byte) bool { return strings.IndexByte(isWS, b) >= 0 }

	var fields []string
	var cur strings.Builder
	haveField := false
	i := 0
	n := len(s)

	// Leading IFS-whitespace is always skipped.
	for i < n && isIFSWS(s[i]) {
		i++
	}

	for i < n {
		c := s[i]
		if isIFS(c) {
			fields = append(fields, cur.String())
			cur.Reset()
			haveField = false
			i++
			if isIFSWS(c) {
				for i < n && isIFSWS(s[i]) {
					i++
				}
				// One non-whitespace IFS char immediately following
				// whitespace still only closes the single field already
				// emitted; bash's own rule collapses the run together
				// when it is pure whitespace.
			}
			continue
		}
		cur.WriteByte(c)
		haveField = true
		i++
	}
	if haveField || cur.Len() > 0 {
		fields = append(fields, cur.String())
	}
	return fields
}

// Escape quotes any IFS characters in s with a backslash, for reinserting a
// literal value that must survive a later split pass unchanged.
func (sp *Splitter) Escape(s string) string {
	if sp.IFS == "" {
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(sp.IFS, s[i]) >= 0 || s[i] == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}
