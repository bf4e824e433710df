package dfa

// Run executes the DFA against input (§4.E): it walks one total
// transition per byte and reports whether the final state accepts. Since
// every transition is defined, no per-step existence check is needed;
// this runs in O(len(input)) time and O(1) extra space.
func Run(d *DFA, input []byte) bool {
	current := d.Start()
	for _, b := range input {
		current = d.states[current].trans[b]
	}
	return d.states[current].accept
}
