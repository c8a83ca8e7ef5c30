package wordeval

import (
	"fmt"
	"os"
	"os/user"

	"github.com/cwbudde/shword/internal/evalerr"
	"github.com/cwbudde/shword/internal/value"
	"github.com/cwbudde/shword/internal/wordast"
)

// osUserLookup is the default UserLookup, backed by os/user and
// os.UserHomeDir.
type osUserLookup struct{}

func (osUserLookup) HomeDir() (string, error) {
	return os.UserHomeDir()
}

func (osUserLookup) UserHomeDir(name string) (string, error) {
	u, err := user.Lookup(name)
	if err != nil {
		return "", err
	}
	return u.HomeDir, nil
}

// EvalTilde expands a Tilde word part: bare `~` first consults
// the HOME variable, falling back to the OS; `~user` always consults the
// OS. On failure, strict_tilde governs whether this is fatal or the token
// text is returned verbatim.
func (e *Evaluator) EvalTilde(t *wordast.Tilde) Outcome[string] {
	if t.User == "" {
		if home := e.Store.Get("HOME"); home.Kind() == "Str" {
			if s := home.(value.Str).S; s != "" {
				return Ok(s)
			}
		}
		dir, err := e.Users.HomeDir()
		if err == nil {
			return Ok(dir)
		}
		return e.tildeFailure(t, err)
	}

	dir, err := e.Users.UserHomeDir(t.User)
	if err == nil {
		return Ok(dir)
	}
	return e.tildeFailure(t, err)
}

func (e *Evaluator) tildeFailure(t *wordast.Tilde, cause error) Outcome[string] {
	if e.Options.StrictTilde() {
		return Err[string](evalerr.New(fmt.Sprintf("tilde expansion failed: %v", cause), t))
	}
	return Ok(t.String())
}
