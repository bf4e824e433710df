package regexp

import "github.com/thaumasiotes/regexp/syntax"

// maxPrefixBytes bounds how many leading literal bytes requiredPrefix will
// collect; patterns rarely need more than a handful to reject-fast, and an
// unbounded walk would defeat the purpose of a cheap prefilter.
const maxPrefixBytes = 16

// requiredPrefix returns the exact sequence of bytes every string matched
// by n must begin with, if n's leading shape is a deterministic run of
// literals (optionally wrapped in groups/concats) — the "NFA start state
// has no epsilon fan-out" case SPEC_FULL.md §5 calls out. It returns nil
// when no such deterministic prefix exists (the pattern can start with an
// alternation, a class, a star, or nothing at all).
func requiredPrefix(n *syntax.Node) []byte {
	var prefix []byte
	cur := n
	for cur != nil && len(prefix) < maxPrefixBytes {
		switch cur.Kind {
		case syntax.KindGroup:
			cur = cur.Child
		case syntax.KindConcat:
			lit, ok := exactLiteral(cur.Left)
			if !ok {
				return appendTruncated(prefix, requiredPrefix(cur.Left))
			}
			prefix = append(prefix, lit...)
			cur = cur.Right
		case syntax.KindLiteral:
			prefix = append(prefix, cur.Byte)
			cur = nil
		case syntax.KindEmpty:
			cur = nil
		default:
			return prefix
		}
	}
	return prefix
}

// exactLiteral reports whether n matches exactly one fixed byte string
// (composed solely of literals, concatenation, groups and the empty
// match — no alternation, class, or repetition), returning that string.
func exactLiteral(n *syntax.Node) ([]byte, bool) {
	switch n.Kind {
	case syntax.KindEmpty:
		return nil, true
	case syntax.KindLiteral:
		return []byte{n.Byte}, true
	case syntax.KindGroup:
		return exactLiteral(n.Child)
	case syntax.KindConcat:
		l, ok := exactLiteral(n.Left)
		if !ok {
			return nil, false
		}
		r, ok := exactLiteral(n.Right)
		if !ok {
			return nil, false
		}
		return append(l, r...), true
	default:
		return nil, false
	}
}

func appendTruncated(prefix, partial []byte) []byte {
	if len(partial) == 0 {
		return prefix
	}
	return append(prefix, partial...)
}
