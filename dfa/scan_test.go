package dfa

import "testing"

func TestRun_ConcreteScenarios(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		{"a(b|c)*d", "abcbcd", true},
		{"a(b|c)*d", "abcbce", false},
		{"[A-Za-z0-9]*", "Hello42", true},
		{"[^0-9]*", "abc5def", false},
		{".", "\n", false},
		{".", "x", true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.input, func(t *testing.T) {
			d := compileDFA(t, tt.pattern)
			if got := Run(d, []byte(tt.input)); got != tt.want {
				t.Errorf("Run(%q, %q) = %v, want %v", tt.pattern, tt.input, got, tt.want)
			}
		})
	}
}

func TestRun_EmptyInput(t *testing.T) {
	d := compileDFA(t, "a*")
	if !Run(d, []byte("")) {
		t.Fatal("expected a* to match empty input")
	}
	d2 := compileDFA(t, "a")
	if Run(d2, []byte("")) {
		t.Fatal("expected a to reject empty input")
	}
}
