package normalizer

import (
	"fmt"
	"strings"

	"github.com/cypreess/revex/internal/alphabet"
	"github.com/cypreess/revex/internal/ast"
)

// dispatch produces the candidate list for a single clause. Every
// handler returns a finite, independently re-iterable list; quantifier
// and alternation clauses are the multi-valued ones.
func dispatch(n *ast.Node, ctx context) ([]candidate, error) {
	switch n.Op {
	case ast.OpAt:
		// Anchors are template-invisible.
		return []candidate{{}}, nil
	case ast.OpAnyChar:
		// The wildcard glyph itself stands in as the witness.
		return []candidate{{fragment: "."}}, nil
	case ast.OpLiteral:
		return []candidate{{fragment: string(n.Ch)}}, nil
	case ast.OpNotLiteral:
		return notLiteral(n)
	case ast.OpIn:
		return charClass(n)
	case ast.OpBranch:
		return branch(n, ctx)
	case ast.OpGroupRef:
		return groupRef(n, ctx)
	case ast.OpRepeat:
		return repeat(n, ctx)
	case ast.OpGroup:
		return group(n, ctx)
	}
	return nil, &UnsupportedFeatureError{Feature: fmt.Sprintf("clause kind %v", n.Op)}
}

// notLiteral yields the smallest allowed character other than n.Ch.
func notLiteral(n *ast.Node) ([]candidate, error) {
	remaining := alphabet.Allowed.Clone()
	remaining.Remove(n.Ch)
	ch, _ := remaining.Min()
	return []candidate{{fragment: string(ch)}}, nil
}

// charClass yields one witness character for a character class. A
// negated class complements the union of its items within the allowed
// alphabet; a plain class uses its first item's representative.
func charClass(n *ast.Node) ([]candidate, error) {
	if len(n.Items) == 0 {
		return nil, &UnsupportedFeatureError{Feature: "an empty character class"}
	}
	if n.Negated {
		remaining := alphabet.Allowed.Clone()
		for _, item := range n.Items {
			switch item.Kind {
			case ast.ClassRange:
				remaining.RemoveRange(item.Lo, item.Hi)
			case ast.ClassCategory:
				set, ok := alphabet.Category(item.Cat)
				if !ok {
					return nil, unsupportedCategory(item.Cat)
				}
				remaining.RemoveSet(set)
			case ast.ClassLiteral:
				remaining.Remove(item.Lo)
			}
		}
		ch, ok := remaining.Min()
		if !ok {
			return nil, &UnsupportedFeatureError{Feature: "a class excluding the entire allowed alphabet"}
		}
		return []candidate{{fragment: string(ch)}}, nil
	}

	item := n.Items[0]
	switch item.Kind {
	case ast.ClassCategory:
		w, ok := alphabet.Witness(item.Cat)
		if !ok {
			return nil, unsupportedCategory(item.Cat)
		}
		return []candidate{{fragment: string(w)}}, nil
	default:
		// Literal and range both witness their low character.
		return []candidate{{fragment: string(item.Lo)}}, nil
	}
}

func unsupportedCategory(cat ast.Category) error {
	return &UnsupportedFeatureError{Feature: fmt.Sprintf("the %v category in character classes", cat)}
}

// branch yields the union of each alternative's full enumeration, in
// declaration order. Alternation is an OR, not a product.
func branch(n *ast.Node, ctx context) ([]candidate, error) {
	var out []candidate
	for _, alt := range n.Alts {
		cs, err := combine(alt, ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, cs...)
	}
	return out, nil
}

// groupRef yields the marker of the referenced group's placeholder,
// recorded as referenced so the resolver can verify the group was
// actually opened on this product branch.
func groupRef(n *ast.Node, ctx context) ([]candidate, error) {
	name, ok := ctx.groupNames[n.Group]
	if !ok {
		name = implicitName(n.Group)
	}
	return []candidate{{fragment: marker(name), referenced: []string{name}}}, nil
}

// implicitName derives the placeholder name of an unnamed capturing
// group from its numeric id. Ids count from 1, placeholders from 0.
func implicitName(group int) string {
	return fmt.Sprintf("_%d", group-1)
}

// reservedName reports whether a declared name has the implicit-name
// shape: an underscore followed only by digits.
func reservedName(name string) bool {
	if len(name) < 2 || name[0] != '_' {
		return false
	}
	for _, r := range name[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// repeat enumerates a quantified subsequence. An optional clause
// (min 0) contributes the zero-width candidate, and inner candidates
// that carry no placeholders are skipped in that case: the zero-width
// candidate already stands for the placeholder-free rendering.
func repeat(n *ast.Node, ctx context) ([]candidate, error) {
	var out []candidate
	optional := n.Min == 0
	if optional {
		out = append(out, candidate{})
		if n.Max == 0 {
			return out, nil
		}
	}
	count := n.Min
	if count < 1 {
		count = 1
	}
	inner, err := combine(n.Sub, ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range inner {
		if optional && len(c.required) == 0 && len(c.referenced) == 0 {
			continue
		}
		out = append(out, candidate{
			fragment:   strings.Repeat(c.fragment, count),
			required:   c.required,
			referenced: c.referenced,
		})
	}
	return out, nil
}

// group enumerates a parenthesized group. A capturing group first
// yields its own placeholder marker (named groups always, unnamed
// groups only at the outermost unnamed level), then the expansions of
// its body. Body candidates that carry no placeholder collapse to the
// literal text the marker already summarizes, so a capturing group
// drops them; a non-capturing group keeps everything.
func group(n *ast.Node, ctx context) ([]candidate, error) {
	var out []candidate
	capturing := n.Group > 0
	if capturing {
		if name, ok := ctx.groupNames[n.Group]; ok {
			if reservedName(name) {
				return nil, &InvalidGroupNameError{Name: name}
			}
			out = append(out, candidate{fragment: marker(name), required: []string{name}})
		} else if !ctx.inUnnamedGroup {
			name := implicitName(n.Group)
			out = append(out, candidate{fragment: marker(name), required: []string{name}})
			ctx = ctx.fork()
		}
	}
	inner, err := combine(n.Sub, ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range inner {
		if !capturing || len(c.required) > 0 || len(c.referenced) > 0 {
			out = append(out, c)
		}
	}
	return out, nil
}
