// Package regexp is the orchestration façade (§4.F): it wires the
// syntax/nfa/dfa pipeline stages together behind the four entry points
// spec.md calls for, matching the teacher package's Compile/MustCompile/
// Match public-API shape (regex.go) but scaled to this engine's narrower
// match/search operation set.
package regexp

import (
	"github.com/coregx/ahocorasick"

	"github.com/thaumasiotes/regexp/dfa"
	"github.com/thaumasiotes/regexp/nfa"
	"github.com/thaumasiotes/regexp/syntax"
)

// Matcher is a compiled pattern: an immutable DFA plus an optional
// Aho-Corasick literal prefilter. Per the concurrency model, a Matcher is
// safe for concurrent use by multiple readers once returned from a
// CompileXxx function — there is no mutator.
type Matcher struct {
	dfa       *dfa.DFA
	prefilter *ahocorasick.Automaton
}

// Match reports whether text is matched by the compiled pattern. For a
// Matcher returned by CompileMatch this requires text to match in its
// entirety; for one returned by CompileSearch the pattern was already
// rewritten to scan for an occurrence anywhere in text, so Match answers
// the search question directly.
func (m *Matcher) Match(text []byte) bool {
	if m.prefilter != nil && !m.prefilter.IsMatch(text) {
		return false
	}
	return dfa.Run(m.dfa, text)
}

// CompileMatch compiles pattern for whole-text matching and returns a
// reusable Matcher (§4.F compile_match).
func CompileMatch(pattern string) (*Matcher, error) {
	return CompileMatchWithConfig(pattern, DefaultConfig())
}

// CompileMatchWithConfig is CompileMatch with an explicit Config.
func CompileMatchWithConfig(pattern string, config Config) (*Matcher, error) {
	d, err := compileToDFA(pattern, pattern, config)
	if err != nil {
		return nil, err
	}
	return &Matcher{dfa: d}, nil
}

// CompileSearch compiles pattern for unanchored search and returns a
// reusable Matcher (§4.F compile_search): the pattern is rewritten per
// the anchor-stripping rules below before compilation, and — unless
// config.DisablePrefilter is set — a literal-prefix prefilter is attached
// when the pattern's body has a deterministic leading literal run.
func CompileSearch(pattern string) (*Matcher, error) {
	return CompileSearchWithConfig(pattern, DefaultConfig())
}

// CompileSearchWithConfig is CompileSearch with an explicit Config.
func CompileSearchWithConfig(pattern string, config Config) (*Matcher, error) {
	body, _, _ := splitAnchors(pattern)
	root, err := buildSearchAST(pattern)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}
	d, err := compileAST(pattern, root, config)
	if err != nil {
		return nil, err
	}

	matcher := &Matcher{dfa: d}
	if !config.DisablePrefilter {
		matcher.prefilter = buildPrefilter(body)
	}
	return matcher, nil
}

// Match compiles pattern and reports whether text matches it in its
// entirety (§4.F match). Prefer CompileMatch when matching the same
// pattern repeatedly.
func Match(pattern string, text []byte) (bool, error) {
	m, err := CompileMatch(pattern)
	if err != nil {
		return false, err
	}
	return m.Match(text), nil
}

// Search compiles pattern and reports whether text contains a match
// anywhere within it (§4.F search). Prefer CompileSearch when matching
// the same pattern repeatedly.
func Search(pattern string, text []byte) (bool, error) {
	m, err := CompileSearch(pattern)
	if err != nil {
		return false, err
	}
	return m.Match(text), nil
}

// compileToDFA runs the full pipeline (parse, build NFA, determinize,
// minimize) for pattern, used by CompileMatch where the pattern text and
// the compiled body are the same string.
func compileToDFA(displayPattern, pattern string, config Config) (*dfa.DFA, error) {
	root, err := syntax.ParseString(pattern)
	if err != nil {
		return nil, &CompileError{Pattern: displayPattern, Err: err}
	}
	return compileAST(displayPattern, root, config)
}

// compileAST runs stages B through D over an already-parsed AST, used by
// CompileSearch where the AST is assembled from the rewritten pattern
// rather than parsed directly from the caller's string.
func compileAST(displayPattern string, root *syntax.Node, config Config) (*dfa.DFA, error) {
	n, err := nfa.NewDefaultCompiler().Compile(root)
	if err != nil {
		return nil, &CompileError{Pattern: displayPattern, Err: err}
	}
	d, err := dfa.Construct(n, config.dfaConfig())
	if err != nil {
		return nil, &CompileError{Pattern: displayPattern, Err: err}
	}
	m, err := dfa.Minimize(d)
	if err != nil {
		return nil, &CompileError{Pattern: displayPattern, Err: err}
	}
	return m, nil
}

// splitAnchors strips a leading '^' and/or trailing '$' from pattern,
// reporting which anchors were present, per §4.F's search rewrite rules.
func splitAnchors(pattern string) (body string, anchoredStart, anchoredEnd bool) {
	body = pattern
	if len(body) > 0 && body[0] == '^' {
		anchoredStart = true
		body = body[1:]
	}
	if len(body) > 0 && body[len(body)-1] == '$' {
		anchoredEnd = true
		body = body[:len(body)-1]
	}
	return body, anchoredStart, anchoredEnd
}

// buildSearchAST implements §4.F's search rewrite: strip (or synthesize)
// leading/trailing "(0x00..0xFF)*" wildcards around the parsed pattern
// body, wrapped in a capturing group. The wildcard spans the full byte
// alphabet rather than Dot, since Dot excludes 0x0A and a search must be
// able to skip over any byte, including newlines, to find a match.
func buildSearchAST(pattern string) (*syntax.Node, error) {
	body, anchoredStart, anchoredEnd := splitAnchors(pattern)
	bodyAST, err := syntax.ParseString(body)
	if err != nil {
		return nil, err
	}

	result := &syntax.Node{Kind: syntax.KindGroup, Child: bodyAST, GroupIndex: 1}
	if !anchoredStart {
		result = &syntax.Node{Kind: syntax.KindConcat, Left: anyByteStar(), Right: result}
	}
	if !anchoredEnd {
		result = &syntax.Node{Kind: syntax.KindConcat, Left: result, Right: anyByteStar()}
	}
	return result, nil
}

// anyByteStar returns a fresh "(0x00..0xFF)*" AST node: a Star over a
// Class matching every byte value.
func anyByteStar() *syntax.Node {
	return &syntax.Node{
		Kind: syntax.KindStar,
		Child: &syntax.Node{
			Kind:   syntax.KindClass,
			Ranges: []syntax.Range{{Lo: 0x00, Hi: 0xFF}},
		},
	}
}

// buildPrefilter builds an Aho-Corasick prefilter over body's required
// leading literal prefix, or returns nil when no such deterministic
// prefix exists or the pattern text itself failed to parse (in which
// case buildSearchAST will have already surfaced the real error).
func buildPrefilter(body string) *ahocorasick.Automaton {
	bodyAST, err := syntax.ParseString(body)
	if err != nil {
		return nil
	}
	prefix := requiredPrefix(bodyAST)
	if len(prefix) == 0 {
		return nil
	}
	builder := ahocorasick.NewBuilder()
	builder.AddPattern(prefix)
	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return auto
}
