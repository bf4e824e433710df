package regexp

import "fmt"

// CompileError wraps a failure from any compilation stage (parsing,
// NFA construction, subset construction, minimization). Whatever stage
// produced it is reachable via Unwrap — a *syntax.SyntaxError for a
// malformed pattern, or an nfa/dfa package error: a configured limit
// being exceeded (nfa.ErrTooComplex, dfa.ErrTooManyStates) or an
// internal-invariant error for a builder bug.
type CompileError struct {
	Pattern string
	Err     error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("regexp: compiling %q: %v", e.Pattern, e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }
