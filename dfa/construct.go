package dfa

import (
	"encoding/binary"
	"sort"

	"github.com/thaumasiotes/regexp/internal/conv"
	"github.com/thaumasiotes/regexp/internal/sparse"
	"github.com/thaumasiotes/regexp/nfa"
)

// Construct runs the subset construction algorithm (§4.C) over n, producing
// a total DFA: every state defines a transition for all 256 byte values,
// and the empty NFA-state subset is a legitimate (dead) DFA state that
// self-loops on every byte.
//
// Bytes are tried in ascending order at each state, matching the
// deterministic iteration spec.md calls for; the resulting state identity
// depends only on NFA-state membership, not discovery order.
func Construct(n *nfa.NFA, config Config) (*DFA, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	b := &subsetBuilder{
		nfa:     n,
		config:  config,
		index:   make(map[string]StateID),
		subsets: make(map[StateID][]nfa.StateID),
	}

	startSubset := b.closure([]nfa.StateID{n.Start()})
	startID, _, err := b.intern(startSubset)
	if err != nil {
		return nil, err
	}

	queue := []StateID{startID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		subset := b.subsets[id]

		for i := 0; i < 256; i++ {
			byteVal := byte(i)
			moved := b.move(subset, byteVal)
			closed := b.closure(moved)
			target, isNew, err := b.intern(closed)
			if err != nil {
				return nil, err
			}
			b.states[id].trans[byteVal] = target
			if isNew {
				queue = append(queue, target)
			}
		}
	}

	return &DFA{states: b.states, start: startID}, nil
}

// subsetBuilder holds the state interning table used during subset
// construction. It is discarded once Construct returns.
type subsetBuilder struct {
	nfa     *nfa.NFA
	config  Config
	states  []State
	index   map[string]StateID
	subsets map[StateID][]nfa.StateID
}

// closure computes the epsilon closure of seed, using a sparse set
// (shared with the rest of this module's NFA-state bookkeeping) to avoid
// revisiting states, and returns the result as a sorted slice so it can
// serve as a canonical subset-identity key.
func (b *subsetBuilder) closure(seed []nfa.StateID) []nfa.StateID {
	seen := sparse.NewSparseSet(uint32(b.nfa.NumStates()))
	stack := append([]nfa.StateID(nil), seed...)

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen.Contains(uint32(id)) {
			continue
		}
		seen.Insert(uint32(id))

		switch s := b.nfa.State(id); s.Kind() {
		case nfa.StateEpsilon:
			stack = append(stack, s.Epsilon())
		case nfa.StateSplit:
			out1, out2 := s.Split()
			stack = append(stack, out1, out2)
		}
	}

	values := seen.Values()
	ids := make([]nfa.StateID, len(values))
	for i, v := range values {
		ids[i] = nfa.StateID(v)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// move computes move(subset, byteVal) per §4.C, before closing it.
func (b *subsetBuilder) move(subset []nfa.StateID, byteVal byte) []nfa.StateID {
	var next []nfa.StateID
	for _, id := range subset {
		switch s := b.nfa.State(id); s.Kind() {
		case nfa.StateByte:
			lit, target := s.Byte()
			if lit == byteVal {
				next = append(next, target)
			}
		case nfa.StatePredicate:
			pred, target := s.PredicateTransition()
			if pred.Matches(byteVal) {
				next = append(next, target)
			}
		}
	}
	return next
}

// intern looks up (or allocates) the DFA state corresponding to subset,
// identified by its sorted NFA-state membership. It reports whether the
// state was newly allocated.
func (b *subsetBuilder) intern(subset []nfa.StateID) (StateID, bool, error) {
	key := subsetKey(subset)
	if id, ok := b.index[key]; ok {
		return id, false, nil
	}

	if len(b.states) >= b.config.MaxDFAStates {
		return InvalidState, false, &ConstructError{Err: ErrTooManyStates}
	}

	id := StateID(conv.IntToUint32(len(b.states)))
	b.states = append(b.states, State{id: id, accept: containsAccept(subset, b.nfa)})
	b.index[key] = id
	b.subsets[id] = subset
	return id, true, nil
}

func containsAccept(subset []nfa.StateID, n *nfa.NFA) bool {
	for _, id := range subset {
		if n.State(id).IsAccept() {
			return true
		}
	}
	return false
}

// subsetKey builds a canonical, collision-free map key for a sorted slice
// of NFA state IDs: each ID contributes a fixed 4 bytes, so two subsets
// produce equal keys iff they contain the same states.
func subsetKey(ids []nfa.StateID) string {
	buf := make([]byte, 4*len(ids))
	for i, id := range ids {
		binary.BigEndian.PutUint32(buf[i*4:], uint32(id))
	}
	return string(buf)
}
