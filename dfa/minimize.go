package dfa

import (
	"encoding/binary"

	"github.com/thaumasiotes/regexp/internal/conv"
)

// Minimize runs Hopcroft-style partition refinement (§4.D) over d,
// returning an equivalent DFA with the minimum number of states.
//
// The algorithm starts from the coarsest partition consistent with accept
// status ({accepting states}, {non-accepting states}, dropping whichever
// is empty) and repeatedly splits blocks whose members disagree on which
// block some byte transitions into, until a full pass produces no further
// split. This is the textbook partition-refinement formulation rather
// than Hopcroft's original worklist-driven refinement, which the source
// material treats as an optional optimization this engine's scale doesn't
// need.
func Minimize(d *DFA) (*DFA, error) {
	n := d.NumStates()
	if n == 0 {
		return nil, &MinimizeError{Err: ErrInvariant}
	}

	blockOf := make([]int, n)
	for i := 0; i < n; i++ {
		if d.states[i].accept {
			blockOf[i] = 1
		}
	}
	blocks := groupByBlock(blockOf, n)

	for {
		newBlockOf := make([]int, n)
		nextIndex := 0
		changed := false

		for _, members := range blocks {
			sigToBlock := make(map[string]int, len(members))
			for _, s := range members {
				sig := signature(d, s, blockOf)
				nb, ok := sigToBlock[sig]
				if !ok {
					nb = nextIndex
					nextIndex++
					sigToBlock[sig] = nb
				}
				newBlockOf[s] = nb
			}
			if len(sigToBlock) > 1 {
				changed = true
			}
		}

		if !changed {
			break
		}
		blockOf = newBlockOf
		blocks = groupByBlock(blockOf, n)
	}

	return buildFromBlocks(d, blockOf, blocks)
}

// signature encodes, for state s, the block index its transition on every
// byte lands in — the vector §4.D groups states by.
func signature(d *DFA, s int, blockOf []int) string {
	buf := make([]byte, 256*4)
	for b := 0; b < 256; b++ {
		target := d.states[s].trans[byte(b)]
		binary.BigEndian.PutUint32(buf[b*4:], uint32(blockOf[int(target)]))
	}
	return string(buf)
}

// groupByBlock partitions state indices [0,n) by their current block
// assignment, preserving ascending block-index order; this is what gives
// the minimizer's output its stable, first-insertion-order numbering.
func groupByBlock(blockOf []int, n int) [][]int {
	byBlock := make(map[int][]int)
	maxBlock := 0
	for s := 0; s < n; s++ {
		byBlock[blockOf[s]] = append(byBlock[blockOf[s]], s)
		if blockOf[s] > maxBlock {
			maxBlock = blockOf[s]
		}
	}
	blocks := make([][]int, 0, maxBlock+1)
	for b := 0; b <= maxBlock; b++ {
		if members, ok := byBlock[b]; ok {
			blocks = append(blocks, members)
		}
	}
	return blocks
}

// buildFromBlocks emits one minimized state per final block, copying the
// block's representative (its lowest-numbered member) accept flag and
// transitions, remapped through blockOf.
//
// blockOf's values are block identifiers, not necessarily contiguous
// slice indices into blocks: if the very first partition (by accept
// status alone) is already stable, the refinement loop in Minimize exits
// before ever renumbering it, leaving blockOf e.g. all 1s when every
// state accepts. slotOf translates each block identifier to its actual
// position in blocks (and hence in states), so transitions and the
// start state are never indexed by a raw blockOf value.
func buildFromBlocks(d *DFA, blockOf []int, blocks [][]int) (*DFA, error) {
	slotOf := make(map[int]StateID, len(blocks))
	for bi, members := range blocks {
		slotOf[blockOf[members[0]]] = StateID(conv.IntToUint32(bi))
	}

	states := make([]State, len(blocks))
	for bi, members := range blocks {
		rep := members[0]
		states[bi] = State{id: StateID(conv.IntToUint32(bi)), accept: d.states[rep].accept}
		for b := 0; b < 256; b++ {
			succ := d.states[rep].trans[byte(b)]
			states[bi].trans[byte(b)] = slotOf[blockOf[int(succ)]]
		}
	}
	return &DFA{states: states, start: slotOf[blockOf[int(d.start)]]}, nil
}
