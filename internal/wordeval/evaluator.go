package wordeval

import (
	"github.com/cwbudde/shword/internal/ports"
)

// UserLookup resolves `~`/`~user` tilde tokens against the OS, kept behind
// one interface so tests can substitute a fake passwd database instead of
// touching the real one.
type UserLookup interface {
	// HomeDir returns the current user's home directory.
	HomeDir() (string, error)
	// UserHomeDir returns user's home directory.
	UserHomeDir(user string) (string, error)
}

// Evaluator is the word evaluation core: the braced/simple var-sub
// engines, the frame builder, and the word-sequence driver, all wired
// against the external collaborators declared in package ports.
type Evaluator struct {
	Store   ports.Store
	Arith   ports.Arith
	Exec    ports.Executor
	Split   ports.Splitter
	Glob    ports.Globber
	Prompt  ports.Prompt
	Expr    ports.ExprEval // optional; nil-checked before use
	Options ports.Options
	Users   UserLookup
}

// New builds an Evaluator from its collaborators. expr and users may be
// nil; users nil falls back to osUserLookup.
func New(store ports.Store, arith ports.Arith, exec ports.Executor, split ports.Splitter, glob ports.Globber, prompt ports.Prompt, expr ports.ExprEval, opts ports.Options, users UserLookup) *Evaluator {
	if users == nil {
		users = osUserLookup{}
	}
	return &Evaluator{
		Store:   store,
		Arith:   arith,
		Exec:    exec,
		Split:   split,
		Glob:    glob,
		Prompt:  prompt,
		Expr:    expr,
		Options: opts,
		Users:   users,
	}
}
