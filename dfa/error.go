package dfa

import (
	"errors"
	"fmt"
)

// Sentinel errors for DFA construction and minimization.
var (
	// ErrTooManyStates indicates subset construction exceeded
	// Config.MaxDFAStates. Worst case, subset construction is exponential
	// in pattern length; this bounds the blowup.
	ErrTooManyStates = errors.New("determinization exceeded configured state limit")

	// ErrInvalidConfig indicates an invalid Config field.
	ErrInvalidConfig = errors.New("invalid DFA configuration")

	// ErrInvariant indicates a violated DFA invariant (should never
	// surface to callers of this package's exported API).
	ErrInvariant = errors.New("DFA invariant violated")
)

// ConstructError wraps an error encountered during subset construction.
type ConstructError struct {
	Err error
}

func (e *ConstructError) Error() string { return fmt.Sprintf("dfa: construct: %v", e.Err) }
func (e *ConstructError) Unwrap() error { return e.Err }

// MinimizeError wraps an error encountered during partition refinement.
type MinimizeError struct {
	Err error
}

func (e *MinimizeError) Error() string { return fmt.Sprintf("dfa: minimize: %v", e.Err) }
func (e *MinimizeError) Unwrap() error { return e.Err }
