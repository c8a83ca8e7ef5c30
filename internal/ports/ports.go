// Package ports names the external-interface boundary the word evaluator
// consumes. Every collaborator the evaluator was not built to own
// -- the parser, the executor, the arithmetic/expression evaluators, the
// splitter, the globber, the prompt formatter, the variable store, the
// option view -- is a Go interface here, so a caller can substitute a fake
// for tests without touching the evaluator itself.
package ports

import (
	"github.com/cwbudde/shword/internal/ident"
	"github.com/cwbudde/shword/internal/value"
	"github.com/cwbudde/shword/internal/wordast"
)

// Store is the in-memory variable store. Implementations must be
// lexically scoped: PushScope/pop brackets command substitutions and
// builtin evaluation so scoped variables ($?, PIPESTATUS, locals) restore
// on every exit path including errors.
type Store interface {
	Get(name string) value.Value
	GetScoped(name string, scope int) value.Value
	GetArg(n int) value.Value
	GetArgv() []string
	GetArg0() value.Str
	GetSpecial(id ident.Id) value.Value
	GetCell(name string) (*value.Cell, bool)
	Set(lv value.Lvalue, v value.Value)
	NamesWithPrefix(prefix string) []string

	// PushScope opens a new lexical scope and returns a closer that
	// restores the previous scope. Callers must defer the returned func
	// immediately so restoration happens on every exit path.
	PushScope() (pop func())
}

// Arith is the arithmetic evaluator hook: bracket indices, array
// slice bounds, and associative-array keys are arithmetic expressions the
// word evaluator never interprets itself.
type Arith interface {
	EvalToInt(n wordast.ArithNode) (int, error)
	EvalToString(n wordast.ArithNode) (string, error)
}

// Executor is the out-of-scope command/process-substitution collaborator
//. The word evaluator calls back into it and folds the
// returned string into the part-value stream.
type Executor interface {
	RunCommandSub(body any) (string, error)
	RunProcessSub(out bool, body any) (string, error)
}

// Splitter is the IFS-driven word splitter.
type Splitter interface {
	Split(s string) []string
	JoinChar() byte
	Escape(s string) string
}

// Globber is the filesystem globber.
type Globber interface {
	Expand(pattern string) ([]string, error)
	Escape(s string) string
	LooksLikeStaticGlob(s string) bool

	// GlobToERE translates a glob pattern (as used by the unary suffix ops
	// and ${v/pat/rep}) into an extended-regex source string, plus any
	// non-fatal translation warnings.
	GlobToERE(pattern string) (ere string, warnings []string, err error)
}

// Prompt is the prompt-string evaluator the `@P` nullary formatter calls
// into.
type Prompt interface {
	Eval(s string) (string, error)
}

// ExprEval is the optional alternative-expression-language hook. Spec.md's
// Non-goals exclude the expression language itself; callers that have no
// such language leave this nil and the evaluator nil-checks before use.
type ExprEval interface {
	Eval(src string) (value.Value, error)
}

// Options is the option view: the boolean shell-option flags the
// evaluator consults to decide strict-vs-degrade and simple-vs-legacy
// behavior, plus the `$-` contributor set.
type Options interface {
	Nounset() bool
	StrictTilde() bool
	StrictWordEval() bool
	StrictArray() bool
	SimpleWordEval() bool
	CompatArray() bool
	Noglob() bool
	Extglob() bool

	// Dollar reports the current `$-` option-letter string.
	Dollar() string

	// IsCompatArrayName reports whether name is in the fixed bash-compat
	// decay set ({BASH_SOURCE, FUNCNAME, BASH_LINENO}) that decays like an
	// array read without "[...]" regardless of the compat_array option.
	IsCompatArrayName(name string) bool
}
