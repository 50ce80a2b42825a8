package normalizer

import "github.com/cypreess/revex/internal/ast"

// combine dispatches every sibling clause of seq and enumerates the
// Cartesian product of their candidate lists, first sibling varying
// slowest. Fragments concatenate left to right; required names merge
// preserving first-seen order; referenced names merge de-duplicated.
// An empty sequence yields the single empty candidate.
func combine(seq ast.Seq, ctx context) ([]candidate, error) {
	lists := make([][]candidate, len(seq))
	for i, n := range seq {
		cs, err := dispatch(n, ctx)
		if err != nil {
			return nil, err
		}
		lists[i] = cs
	}

	out := []candidate{{}}
	for _, cs := range lists {
		next := make([]candidate, 0, len(out)*len(cs))
		for _, acc := range out {
			for _, c := range cs {
				next = append(next, merge(acc, c))
			}
		}
		out = next
	}
	return out, nil
}

// merge concatenates two candidates into a fresh one.
func merge(a, b candidate) candidate {
	return candidate{
		fragment:   a.fragment + b.fragment,
		required:   appendUnique(a.required, b.required...),
		referenced: appendUnique(a.referenced, b.referenced...),
	}
}
