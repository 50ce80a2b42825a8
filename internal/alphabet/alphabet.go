// Package alphabet defines the restricted character universe used by
// the normalizer and the character sets denoted by category escapes.
// Complements of classes and categories are always computed within the
// allowed alphabet, never over all of Unicode.
package alphabet

import "github.com/cypreess/revex/internal/ast"

// Set is an unordered set of characters.
type Set map[rune]struct{}

// NewSet returns a set holding every character of chars.
func NewSet(chars string) Set {
	s := make(Set, len(chars))
	for _, r := range chars {
		s[r] = struct{}{}
	}
	return s
}

// Contains reports whether r is a member of the set.
func (s Set) Contains(r rune) bool {
	_, ok := s[r]
	return ok
}

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for r := range s {
		out[r] = struct{}{}
	}
	return out
}

// Remove deletes r from the set.
func (s Set) Remove(r rune) {
	delete(s, r)
}

// RemoveRange deletes every character in [lo, hi] from the set.
func (s Set) RemoveRange(lo, hi rune) {
	for r := lo; r <= hi; r++ {
		delete(s, r)
	}
}

// RemoveSet deletes every member of other from the set.
func (s Set) RemoveSet(other Set) {
	for r := range other {
		delete(s, r)
	}
}

// Min returns the smallest character in the set by code point.
// ok is false when the set is empty.
func (s Set) Min() (min rune, ok bool) {
	for r := range s {
		if !ok || r < min {
			min, ok = r, true
		}
	}
	return min, ok
}

// span returns a set holding every character in [lo, hi].
func span(lo, hi rune) Set {
	s := make(Set, hi-lo+1)
	for r := lo; r <= hi; r++ {
		s[r] = struct{}{}
	}
	return s
}

// minus returns a − b as a new set.
func minus(a, b Set) Set {
	out := a.Clone()
	out.RemoveSet(b)
	return out
}

// Allowed is the allowed alphabet: ASCII digits, letters, and
// punctuation. Exactly the graphic ASCII range, which excludes space
// and all control characters.
var Allowed = span('!', '~')

var (
	digits = span('0', '9')
	space  = NewSet(" \t\n\r\v\f")
	word   = func() Set {
		s := span('0', '9')
		for r := range span('A', 'Z') {
			s[r] = struct{}{}
		}
		for r := range span('a', 'z') {
			s[r] = struct{}{}
		}
		s['_'] = struct{}{}
		return s
	}()
)

// domain couples a category's full character set with its canonical
// witness character (the set minimum).
type domain struct {
	set     Set
	witness rune
}

func newDomain(set Set) domain {
	w, ok := set.Min()
	if !ok {
		panic("alphabet: empty category domain")
	}
	return domain{set: set, witness: w}
}

var categories = map[ast.Category]domain{
	ast.CatDigit:    newDomain(digits),
	ast.CatNotDigit: newDomain(minus(Allowed, digits)),
	ast.CatSpace:    newDomain(space),
	ast.CatNotSpace: newDomain(minus(Allowed, space)),
	ast.CatWord:     newDomain(word),
	ast.CatNotWord:  newDomain(minus(Allowed, word)),
}

// Category returns the full character set denoted by cat.
// ok is false when the category has no table entry.
func Category(cat ast.Category) (Set, bool) {
	d, ok := categories[cat]
	return d.set, ok
}

// Witness returns the canonical representative character for cat,
// without enumerating the full set at the call site.
func Witness(cat ast.Category) (rune, bool) {
	d, ok := categories[cat]
	return d.witness, ok
}
