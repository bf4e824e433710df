package dfa

import (
	"testing"

	"github.com/thaumasiotes/regexp/nfa"
	"github.com/thaumasiotes/regexp/syntax"
)

func TestMinimize_NeverIncreasesStateCount(t *testing.T) {
	patterns := []string{"a", "a|b", "a*", "(a|b)*c", "[a-z]*", "[^a]*", ".", "a(b|c)*d"}
	for _, p := range patterns {
		t.Run(p, func(t *testing.T) {
			d := compileDFA(t, p)
			before := d.NumStates()
			m, err := Minimize(d)
			if err != nil {
				t.Fatalf("minimize(%q): %v", p, err)
			}
			if m.NumStates() > before {
				t.Fatalf("minimized state count %d exceeds original %d", m.NumStates(), before)
			}
		})
	}
}

func TestMinimize_PreservesAcceptVerdict(t *testing.T) {
	tests := []struct {
		pattern string
		texts   []string
	}{
		{"a(b|c)*d", []string{"ad", "abcbcd", "abcbce", "", "d", "abc"}},
		{"[A-Za-z0-9]*", []string{"Hello42", "Hello 42", ""}},
		{"[^0-9]*", []string{"abc5def", "abcdef", ""}},
		{".", []string{"\n", "x", ""}},
		{"a|b", []string{"a", "b", "c", "ab"}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			d := compileDFA(t, tt.pattern)
			m, err := Minimize(d)
			if err != nil {
				t.Fatalf("minimize(%q): %v", tt.pattern, err)
			}
			for _, text := range tt.texts {
				want := Run(d, []byte(text))
				got := Run(m, []byte(text))
				if got != want {
					t.Errorf("minimized DFA disagrees with original on %q against %q: got %v, want %v",
						tt.pattern, text, got, want)
				}
			}
		})
	}
}

func TestMinimize_Totality(t *testing.T) {
	d := compileDFA(t, "(a|b)*c")
	m, err := Minimize(d)
	if err != nil {
		t.Fatalf("minimize: %v", err)
	}
	for i := 0; i < m.NumStates(); i++ {
		s := m.State(StateID(i))
		for b := 0; b < 256; b++ {
			if int(s.Next(byte(b))) >= m.NumStates() {
				t.Fatalf("minimized state %d byte %d transitions out of range", i, b)
			}
		}
	}
}

func TestMinimize_SingleLiteral(t *testing.T) {
	// The DFA for "a" has two non-accepting states (the start state and
	// the dead state) that differ on 'a', so the non-accepting block must
	// be split during refinement.
	d := compileDFA(t, "a")
	m, err := Minimize(d)
	if err != nil {
		t.Fatalf("minimize: %v", err)
	}
	if Run(m, []byte("b")) {
		t.Fatal("expected no match for \"b\" against pattern \"a\"")
	}
	if !Run(m, []byte("a")) {
		t.Fatal("expected match for \"a\" against pattern \"a\"")
	}
}

func TestMinimize_EmptyPattern(t *testing.T) {
	d := compileDFA(t, "") // matches only the empty string... but exercise the minimizer regardless
	m, err := Minimize(d)
	if err != nil {
		t.Fatalf("minimize: %v", err)
	}
	if !Run(m, []byte("")) {
		t.Fatal("expected empty pattern to accept empty string")
	}
}

// TestMinimize_AllStatesAcceptNoInitialSplit exercises the case where
// every state of the pre-minimization DFA accepts. Subset construction
// for "any byte, zero or more times" produces two distinct accepting
// states (the start subset and the subset reached after one byte), so
// the accept/non-accept partition is already stable on the very first
// refinement pass: the loop exits before blockOf is ever renumbered to
// contiguous slice indices, which previously made buildFromBlocks index
// past the end of a single-element states slice and panic.
func TestMinimize_AllStatesAcceptNoInitialSplit(t *testing.T) {
	root := &syntax.Node{
		Kind: syntax.KindStar,
		Child: &syntax.Node{
			Kind:   syntax.KindClass,
			Ranges: []syntax.Range{{Lo: 0x00, Hi: 0xFF}},
		},
	}
	n, err := nfa.NewDefaultCompiler().Compile(root)
	if err != nil {
		t.Fatalf("compile nfa: %v", err)
	}
	d, err := Construct(n, DefaultConfig())
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	if d.NumStates() < 2 {
		t.Fatalf("expected subset construction to produce at least 2 states here, got %d", d.NumStates())
	}
	for i := 0; i < d.NumStates(); i++ {
		if !d.State(StateID(i)).Accept() {
			t.Fatalf("expected every pre-minimization state to accept, state %d does not", i)
		}
	}

	m, err := Minimize(d)
	if err != nil {
		t.Fatalf("minimize: %v", err)
	}
	if m.NumStates() != 1 {
		t.Fatalf("expected a single minimized state for an all-accepting DFA, got %d", m.NumStates())
	}
	for b := 0; b < 256; b++ {
		if next := m.State(m.Start()).Next(byte(b)); next != m.Start() {
			t.Fatalf("expected the sole state to self-loop on byte %d, got %d", b, next)
		}
	}
	if !Run(m, []byte("")) {
		t.Fatal("expected all-accepting DFA to accept the empty string")
	}
	if !Run(m, []byte("anything at all, including \x00 and \xff")) {
		t.Fatal("expected all-accepting DFA to accept arbitrary input")
	}
}

func TestMinimize_Idempotent(t *testing.T) {
	d := compileDFA(t, "(a|b)*c")
	m1, err := Minimize(d)
	if err != nil {
		t.Fatalf("minimize: %v", err)
	}
	m2, err := Minimize(m1)
	if err != nil {
		t.Fatalf("minimize twice: %v", err)
	}
	if m2.NumStates() != m1.NumStates() {
		t.Fatalf("minimizing an already-minimal DFA changed state count: %d vs %d", m1.NumStates(), m2.NumStates())
	}
}
