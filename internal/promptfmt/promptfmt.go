// Package promptfmt implements ports.Prompt: the `@P` nullary formatter's
// prompt-string evaluator. Full PS1-style `\h`/`\w`-style
// escape expansion is out of this module's scope; this strips the readline
// non-printing markers (`\[` ... `\]`) bash uses to bracket control
// sequences that shouldn't count toward the prompt's displayed width, which
// is the one transformation `${x@P}` needs regardless of what produced the
// prompt string.
package promptfmt

import (
	"strings"

	"github.com/cwbudde/shword/internal/ports"
)

// Formatter is the concrete ports.Prompt.
type Formatter struct{}

var _ ports.Prompt = (*Formatter)(nil)

// New returns a Formatter.
func New() *Formatter { return &Formatter{} }

// Eval strips `\[` and `\]` readline markers from s.
func (Formatter) Eval(s string) (string, error) {
	s = strings.ReplaceAll(s, `\[`, "")
	s = strings.ReplaceAll(s, `\]`, "")
	return s, nil
}
