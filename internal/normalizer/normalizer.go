// Package normalizer enumerates the literal templates a parsed regex
// pattern can match. Each template mixes fixed characters with {name}
// placeholders standing for capture groups; filling the placeholders
// reproduces a string the pattern would accept. The enumeration is a
// finite, deterministic over-approximation, not an inverse of regex
// matching: it walks the clause tree once, multiplying out quantifier
// and alternation choices, and never executes the pattern.
package normalizer

import "github.com/cypreess/revex/internal/ast"

// Template is one normalized rendering of a pattern: template text
// with {name} placeholders, plus the parameter names that fill them in
// first-appearance order.
type Template struct {
	Format string
	Params []string
}

// Normalize enumerates every template for the clause sequence seq.
// groupNames maps declared group names to their numeric ids. Results
// keep product-enumeration order, driven by clause declaration order,
// and may contain duplicates. Candidates whose backreferences point at
// a group never opened on their branch are silently dropped; an
// unsupported clause or category aborts the whole enumeration.
func Normalize(seq ast.Seq, groupNames map[string]int) ([]Template, error) {
	ctx := context{groupNames: reverseGroupNames(groupNames)}
	candidates, err := combine(seq, ctx)
	if err != nil {
		return nil, err
	}
	templates := make([]Template, 0, len(candidates))
	for _, c := range candidates {
		if !covered(c.referenced, c.required) {
			continue
		}
		templates = append(templates, Template{Format: c.fragment, Params: c.required})
	}
	return templates, nil
}
