// Package nfa implements the Thompson-construction NFA builder: it turns a
// syntax.Node AST into a non-deterministic finite automaton with exactly
// one accepting state, following the single-accept variant described in
// the compilation pipeline's second stage.
package nfa

import (
	"fmt"

	"github.com/thaumasiotes/regexp/syntax"
)

// StateID uniquely identifies an NFA state within a builder's arena.
// States are never freed individually; the whole arena is released when
// the NFA is discarded at the end of stage C.
type StateID uint32

// InvalidState marks an uninitialized StateID.
const InvalidState StateID = 0xFFFFFFFF

// StateKind identifies the shape of an NFA state's transitions.
//
// The general data model (§3) allows a state to carry epsilon transitions
// alongside a byte/class trigger, but the Thompson construction in §4.B
// never produces such a mix: every state it builds is exactly one of the
// five shapes below. A tagged kind is therefore sufficient and avoids the
// general "set of triggers" representation.
type StateKind uint8

const (
	// StateMatch is a terminal state with no outgoing transitions. Every
	// fragment's accept state starts out in this shape; the single state
	// the whole NFA ultimately accepts on stays in this shape forever.
	StateMatch StateKind = iota

	// StateByte transitions on exactly one literal byte.
	StateByte

	// StatePredicate transitions on any byte for which Pred holds (used
	// for Dot, Class and NegClass).
	StatePredicate

	// StateEpsilon transitions on the empty string to exactly one state.
	StateEpsilon

	// StateSplit transitions on the empty string to either of two states
	// (alternation and the two arms of a star loop).
	StateSplit
)

func (k StateKind) String() string {
	switch k {
	case StateMatch:
		return "Match"
	case StateByte:
		return "Byte"
	case StatePredicate:
		return "Predicate"
	case StateEpsilon:
		return "Epsilon"
	case StateSplit:
		return "Split"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// Predicate is a data-only description of a character-class membership
// test: a byte matches if it is in Singles or within any Range, with the
// result negated when Negate is set. This mirrors how the source
// represents a class predicate as a plain data pair rather than a
// callable closure.
type Predicate struct {
	Singles []byte
	Ranges  []syntax.Range
	Negate  bool
}

// Matches reports whether b satisfies the predicate.
func (p *Predicate) Matches(b byte) bool {
	positive := false
	for _, s := range p.Singles {
		if s == b {
			positive = true
			break
		}
	}
	if !positive {
		for _, r := range p.Ranges {
			if b >= r.Lo && b <= r.Hi {
				positive = true
				break
			}
		}
	}
	if p.Negate {
		return !positive
	}
	return positive
}

// State is a single NFA state. Only the fields relevant to Kind are
// meaningful.
type State struct {
	id     StateID
	kind   StateKind
	accept bool // true only for the NFA's single true accept state

	// StateByte
	b    byte
	next StateID

	// StatePredicate
	pred *Predicate

	// StateEpsilon reuses 'next' above.

	// StateSplit
	out1, out2 StateID
}

// ID returns the state's identifier (debugging only).
func (s *State) ID() StateID { return s.id }

// Kind returns the state's shape.
func (s *State) Kind() StateKind { return s.kind }

// IsAccept reports whether this is the NFA's single accepting state.
func (s *State) IsAccept() bool { return s.accept }

// Byte returns the trigger byte for a StateByte state.
func (s *State) Byte() (b byte, next StateID) { return s.b, s.next }

// PredicateTransition returns the class predicate and successor for a
// StatePredicate state.
func (s *State) PredicateTransition() (*Predicate, StateID) { return s.pred, s.next }

// Epsilon returns the successor for a StateEpsilon state.
func (s *State) Epsilon() StateID { return s.next }

// Split returns the two epsilon successors for a StateSplit state.
func (s *State) Split() (StateID, StateID) { return s.out1, s.out2 }

// NFA is the output of stage B: an arena of states plus a distinguished
// start state. Exactly one state has accept == true, and that state has
// no outgoing transitions.
type NFA struct {
	states []State
	start  StateID
}

// Start returns the NFA's start state.
func (n *NFA) Start() StateID { return n.start }

// Accept returns the NFA's single accepting state.
func (n *NFA) Accept() StateID {
	for i := range n.states {
		if n.states[i].accept {
			return n.states[i].id
		}
	}
	return InvalidState
}

// NumStates returns the number of states in the arena.
func (n *NFA) NumStates() int { return len(n.states) }

// State returns a pointer to the state with the given id.
func (n *NFA) State(id StateID) *State { return &n.states[id] }
