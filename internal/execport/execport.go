// Package execport holds a test double for the out-of-scope
// command/process-substitution executor the word evaluator calls back into;
// the interface itself is ports.Executor. This package carries no real
// executor: a full shell command interpreter is a different concern than
// word evaluation.
package execport

import "github.com/cwbudde/shword/internal/ports"

// Stub is a minimal ports.Executor usable in tests: it records the last
// body it was asked to run and returns a canned string, so evaluator tests
// can exercise command/process substitution wiring without a real shell.
type Stub struct {
	Output   string
	Err      error
	LastBody any
}

var _ ports.Executor = (*Stub)(nil)

func (s *Stub) RunCommandSub(body any) (string, error) {
	s.LastBody = body
	return s.Output, s.Err
}

func (s *Stub) RunProcessSub(out bool, body any) (string, error) {
	s.LastBody = body
	return s.Output, s.Err
}
