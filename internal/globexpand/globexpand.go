// Package globexpand implements ports.Globber: filesystem glob expansion
// for unquoted, unescaped fragments. No third-party glob library
// appears anywhere in the retrieved example pack (not even in a shell-
// adjacent repo's go.mod), so this is built on path/filepath.Glob, which
// already implements `*`/`?`/`[...]` matching against the real filesystem.
// Expand passes the pattern through unchanged, so a class is negated with
// `[^...]` only; bash's `[!...]` form is not recognized there.
package globexpand

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/cwbudde/shword/internal/ports"
)

// Globber is the concrete ports.Globber.
type Globber struct{}

var _ ports.Globber = (*Globber)(nil)

// New returns a Globber.
func New() *Globber { return &Globber{} }

// Expand matches pattern against the filesystem, returning matches sorted
// the way bash returns pathname-expansion results. A pattern with no
// matches is returned to the caller verbatim by the frame builder; Expand
// itself just reports the empty match set.
func (g *Globber) Expand(pattern string) ([]string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)
	return matches, nil
}

// Escape backslash-escapes every glob metacharacter in s so the result
// matches only the literal text, not a pattern.
func (g *Globber) Escape(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '*', '?', '[', ']', '\\':
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

// regexMeta are the extended-regex metacharacters that are NOT also glob
// metacharacters: a literal glob character carries straight through
// untouched, everything else needs escaping so it matches literally.
const regexMeta = `.+()|^$\{}`

// GlobToERE translates a glob pattern into an extended-regex source string:
// `*` becomes `.*`, `?` becomes `.`, a `[...]` class passes through
// unchanged (bash and ERE character classes agree), and every other regex
// metacharacter is escaped so it matches literally. extglob forms
// (`@(...)`, `+(...)`, ...) are not translated; encountering one produces
// a non-fatal warning, and the pattern is still translated treating the
// extglob token as a literal glob fragment.
func (g *Globber) GlobToERE(pattern string) (string, []string, error) {
	var sb strings.Builder
	var warnings []string
	i := 0
	n := len(pattern)
	for i < n {
		c := pattern[i]
		switch c {
		case '*':
			sb.WriteString(".*")
			i++
		case '?':
			sb.WriteByte('.')
			i++
		case '[':
			j := i + 1
			if j < n && (pattern[j] == '!' || pattern[j] == '^') {
				j++
			}
			for j < n && pattern[j] != ']' {
				j++
			}
			if j >= n {
				sb.WriteString(`\[`)
				i++
				continue
			}
			class := pattern[i:j+1]
			if class[1] == '!' {
				class = "[^" + class[2:]
			}
			sb.WriteString(class)
			i = j + 1
		case '@', '+':
			if i+1 < n && pattern[i+1] == '(' {
				warnings = append(warnings, fmt.Sprintf("extglob form %q not translated, treated literally", string(c)+"("))
			}
			sb.WriteString(regexp.QuoteMeta(string(c)))
			i++
		default:
			if strings.IndexByte(regexMeta, c) >= 0 {
				sb.WriteByte('\\')
			}
			sb.WriteByte(c)
			i++
		}
	}
	ere := sb.String()
	if _, err := regexp.Compile(ere); err != nil {
		return "", warnings, err
	}
	return ere, warnings, nil
}

// LooksLikeStaticGlob reports whether s contains any unescaped glob
// metacharacter, so the frame builder can skip a filesystem Expand call
// for fragments that plainly have none.
func (g *Globber) LooksLikeStaticGlob(s string) bool {
	escaped := false
	for i := 0; i < len(s); i++ {
		if escaped {
			escaped = false
			continue
		}
		switch s[i] {
		case '\\':
			escaped = true
		case '*', '?', '[':
			return true
		}
	}
	return false
}
