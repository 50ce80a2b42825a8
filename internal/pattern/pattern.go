// Package pattern parses raw regex pattern text into the clause tree
// consumed by the normalizer. It covers exactly the constructs the
// normalizer understands: literals and escapes, character classes with
// ranges and category escapes, anchors, alternation, capturing /
// non-capturing / named groups, backreferences, and counted
// quantifiers. Anything else is a parse error rather than a silently
// mis-shaped tree.
package pattern

import (
	"fmt"

	"github.com/cypreess/revex/internal/ast"
)

// Pattern is the parsed form of a regex: the root clause sequence plus
// the group bookkeeping the normalizer needs.
type Pattern struct {
	// Seq is the root clause sequence.
	Seq ast.Seq

	// GroupNames maps declared group names to their numeric ids.
	GroupNames map[string]int

	// Groups is the number of capturing groups.
	Groups int
}

// Parse parses a regex pattern.
func Parse(expr string) (*Pattern, error) {
	p := &parser{
		pattern: []rune(expr),
		names:   make(map[string]int),
	}
	seq, err := p.parseAlternation()
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", expr, err)
	}
	if p.pos < len(p.pattern) {
		// parseAlternation stops at an unmatched ')'.
		return nil, fmt.Errorf("parsing %q: unbalanced parenthesis at offset %d", expr, p.pos)
	}
	return &Pattern{Seq: seq, GroupNames: p.names, Groups: p.groups}, nil
}
