package nfa

import (
	"github.com/thaumasiotes/regexp/syntax"
)

// CompilerConfig configures NFA compilation.
type CompilerConfig struct {
	// MaxRecursionDepth limits recursion while walking the AST, guarding
	// against stack overflow on deeply nested, attacker-controlled
	// patterns (pattern depth is user-controlled input).
	//
	// Default: 1000.
	MaxRecursionDepth int
}

// DefaultCompilerConfig returns a configuration with sensible defaults.
func DefaultCompilerConfig() CompilerConfig {
	return CompilerConfig{MaxRecursionDepth: 1000}
}

// Compiler builds an NFA from a syntax.Node AST via Thompson construction.
type Compiler struct {
	config  CompilerConfig
	builder *Builder
	depth   int
}

// NewCompiler creates a compiler with the given configuration.
func NewCompiler(config CompilerConfig) *Compiler {
	if config.MaxRecursionDepth <= 0 {
		config.MaxRecursionDepth = 1000
	}
	return &Compiler{config: config}
}

// NewDefaultCompiler creates a compiler with default configuration.
func NewDefaultCompiler() *Compiler {
	return NewCompiler(DefaultCompilerConfig())
}

// Compile builds an NFA from root. The outermost call marks the returned
// fragment's accept state as the NFA's single true accept state,
// satisfying the invariant that exactly one state accepts and that state
// has no outgoing transitions.
func (c *Compiler) Compile(root *syntax.Node) (*NFA, error) {
	c.builder = NewBuilder()
	c.depth = 0

	start, accept, err := c.build(root)
	if err != nil {
		return nil, err
	}
	return c.builder.Finish(start, accept)
}

// build recursively compiles one AST node into an NFA fragment, returning
// its start and accept state IDs. Each invocation allocates fresh states
// owned exclusively by its own fragment, which is what makes Concat
// fusion (see Builder.Fuse) safe.
func (c *Compiler) build(n *syntax.Node) (start, accept StateID, err error) {
	c.depth++
	defer func() { c.depth-- }()
	if c.depth > c.config.MaxRecursionDepth {
		return InvalidState, InvalidState, &BuildError{Err: ErrTooComplex}
	}

	switch n.Kind {
	case syntax.KindEmpty:
		acc := c.builder.AddMatch()
		return acc, acc, nil

	case syntax.KindLiteral:
		acc := c.builder.AddMatch()
		s := c.builder.AddByte(n.Byte, acc)
		return s, acc, nil

	case syntax.KindDot:
		acc := c.builder.AddMatch()
		pred := &Predicate{Singles: []byte{'\n'}, Negate: true}
		s := c.builder.AddPredicate(pred, acc)
		return s, acc, nil

	case syntax.KindClass, syntax.KindNegClass:
		acc := c.builder.AddMatch()
		pred := &Predicate{
			Singles: n.Singles,
			Ranges:  n.Ranges,
			Negate:  n.Kind == syntax.KindNegClass,
		}
		s := c.builder.AddPredicate(pred, acc)
		return s, acc, nil

	case syntax.KindConcat:
		sL, aL, err := c.build(n.Left)
		if err != nil {
			return InvalidState, InvalidState, err
		}
		sR, aR, err := c.build(n.Right)
		if err != nil {
			return InvalidState, InvalidState, err
		}
		if sR == aR {
			// An empty right operand adds no transitions: the left
			// fragment's accept state already ends the concatenation.
			return sL, aL, nil
		}
		c.builder.Fuse(aL, sR)
		return sL, aR, nil

	case syntax.KindAlt:
		sL, aL, err := c.build(n.Left)
		if err != nil {
			return InvalidState, InvalidState, err
		}
		sR, aR, err := c.build(n.Right)
		if err != nil {
			return InvalidState, InvalidState, err
		}
		acc := c.builder.AddMatch()
		s := c.builder.AddSplit(sL, sR)
		c.builder.Patch(aL, acc)
		c.builder.Patch(aR, acc)
		return s, acc, nil

	case syntax.KindStar:
		sC, aC, err := c.build(n.Child)
		if err != nil {
			return InvalidState, InvalidState, err
		}
		acc := c.builder.AddMatch()
		s := c.builder.AddSplit(sC, acc)
		c.builder.PatchSplit(aC, sC, acc)
		return s, acc, nil

	case syntax.KindGroup:
		return c.build(n.Child)

	default:
		return InvalidState, InvalidState, &BuildError{Err: ErrInvariant}
	}
}
