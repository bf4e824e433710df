package nfa

import (
	"errors"
	"fmt"
)

// Sentinel errors for NFA construction. ErrTooComplex reports a pattern
// whose AST is nested deeper than CompilerConfig.MaxRecursionDepth.
// ErrInvariant is an internal-invariant error: a well-formed AST from the
// syntax package should never trigger it, so surfacing one indicates a
// builder bug rather than a bad pattern.
var (
	// ErrTooComplex indicates the AST recursion exceeded the configured
	// maximum depth.
	ErrTooComplex = errors.New("pattern too deeply nested")

	// ErrInvariant indicates a violated NFA invariant (e.g. more than one
	// accept state, or an accept state with outgoing transitions).
	ErrInvariant = errors.New("NFA invariant violated")
)

// BuildError wraps an error encountered while constructing an NFA.
type BuildError struct {
	Err error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("nfa: %v", e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }
