package regexp

import "github.com/thaumasiotes/regexp/dfa"

// Config controls compilation limits and optional acceleration, mirroring
// the dfa package's Config/DefaultConfig/Validate convention at the
// façade layer.
//
// Example:
//
//	config := regexp.DefaultConfig()
//	config.MaxDFAStates = 50_000
//	m, err := regexp.CompileSearchWithConfig(pattern, config)
type Config struct {
	// MaxDFAStates is forwarded to dfa.Config.MaxDFAStates; see its
	// doc comment.
	MaxDFAStates int

	// DisablePrefilter skips building the Aho-Corasick literal prefilter
	// in CompileSearch even when a deterministic literal prefix exists.
	// Useful for benchmarking the DFA path in isolation.
	DisablePrefilter bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{MaxDFAStates: dfa.DefaultConfig().MaxDFAStates}
}

func (c Config) dfaConfig() dfa.Config {
	return dfa.Config{MaxDFAStates: c.MaxDFAStates}
}
