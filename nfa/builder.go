package nfa

import "github.com/thaumasiotes/regexp/internal/conv"

// Builder constructs an NFA incrementally using a low-level API, following
// the same arena-of-states shape as the rest of this pipeline: states are
// appended to a single growable slice and referenced by index.
type Builder struct {
	states []State
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{states: make([]State, 0, 16)}
}

// AddMatch allocates a terminal placeholder state with no outgoing
// transitions. Every fragment built by the compiler starts life as one of
// these; Concat fusion or an Alt/Star patch later gives it real
// transitions, except for the outermost fragment's accept state, which
// stays in this shape and becomes the NFA's sole accept state.
func (b *Builder) AddMatch() StateID {
	id := StateID(conv.IntToUint32(len(b.states)))
	b.states = append(b.states, State{id: id, kind: StateMatch})
	return id
}

// AddByte allocates a state that transitions to next on the single byte b.
func (b *Builder) AddByte(lit byte, next StateID) StateID {
	id := StateID(conv.IntToUint32(len(b.states)))
	b.states = append(b.states, State{id: id, kind: StateByte, b: lit, next: next})
	return id
}

// AddPredicate allocates a state that transitions to next on any byte
// satisfying pred.
func (b *Builder) AddPredicate(pred *Predicate, next StateID) StateID {
	id := StateID(conv.IntToUint32(len(b.states)))
	b.states = append(b.states, State{id: id, kind: StatePredicate, pred: pred, next: next})
	return id
}

// AddSplit allocates a state with epsilon transitions to both out1 and
// out2 (alternation, or the loop/exit arms of a star).
func (b *Builder) AddSplit(out1, out2 StateID) StateID {
	id := StateID(conv.IntToUint32(len(b.states)))
	b.states = append(b.states, State{id: id, kind: StateSplit, out1: out1, out2: out2})
	return id
}

// Patch turns the placeholder match state at id into a single-target
// epsilon transition to target. Used to wire an Alt branch's accept state
// to the alternation's shared accept state.
func (b *Builder) Patch(id, target StateID) {
	b.states[id].kind = StateEpsilon
	b.states[id].next = target
}

// PatchSplit turns the placeholder match state at id into a two-target
// epsilon split. Used to wire a star loop's body-accept state back to the
// body's start and forward to the star's own accept state.
func (b *Builder) PatchSplit(id, out1, out2 StateID) {
	b.states[id].kind = StateSplit
	b.states[id].out1 = out1
	b.states[id].out2 = out2
}

// Fuse implements the concat-fusion operation from §4.B: it copies src's
// outgoing transitions (and predicate, if any) onto dst in place. This is
// legal only when dst is still an untouched match placeholder and src is
// not referenced by anything other than the caller that is about to
// discard it — which holds for any (start, accept) pair freshly returned
// by a single recursive build call, per the Thompson construction's
// fragment-ownership discipline.
func (b *Builder) Fuse(dst, src StateID) {
	id := b.states[dst].id
	b.states[dst] = b.states[src]
	b.states[dst].id = id
}

// Finish marks accept as the NFA's single accepting state and returns the
// completed NFA rooted at start.
//
// It is an internal-invariant error for accept to have any outgoing
// transitions at this point; a correct compiler never calls Finish on
// anything but an untouched StateMatch placeholder.
func (b *Builder) Finish(start, accept StateID) (*NFA, error) {
	if b.states[accept].kind != StateMatch {
		return nil, &BuildError{Err: ErrInvariant}
	}
	b.states[accept].accept = true
	return &NFA{states: b.states, start: start}, nil
}
