package dfa

// Config controls subset-construction limits.
//
// Example:
//
//	config := dfa.DefaultConfig()
//	config.MaxDFAStates = 50_000
//	d, err := dfa.Construct(n, config)
type Config struct {
	// MaxDFAStates caps the number of DFA states subset construction may
	// allocate before giving up with ErrTooManyStates. This guards
	// against the worst-case exponential blowup inherent to subset
	// construction (e.g. patterns like (a|b)*a(a|b){n}).
	//
	// Default: 10_000.
	MaxDFAStates int
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{MaxDFAStates: 10_000}
}

// Validate checks that c's fields are in range.
func (c *Config) Validate() error {
	if c.MaxDFAStates <= 0 {
		return &ConstructError{Err: ErrInvalidConfig}
	}
	return nil
}
