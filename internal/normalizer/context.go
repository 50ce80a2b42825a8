package normalizer

// context carries group-naming state through the recursive walk. It is
// passed by value, so entering an unnamed group forks a copy and the
// change never propagates back to siblings of the product.
type context struct {
	// groupNames maps numeric group ids to declared names; only named
	// groups have entries. Shared read-only across the whole walk.
	groupNames map[int]string

	// inUnnamedGroup is true while walking the body of an unnamed
	// capturing group. Nested unnamed groups get no placeholder of
	// their own: markers are named, not positional, so only the
	// outermost unnamed group in a chain can be addressed.
	inUnnamedGroup bool
}

// fork returns a copy of the context marked as inside an unnamed group.
func (c context) fork() context {
	c.inUnnamedGroup = true
	return c
}

// reverseGroupNames inverts a declared name→id map into the id→name
// map the walk consumes.
func reverseGroupNames(names map[string]int) map[int]string {
	reversed := make(map[int]string, len(names))
	for name, id := range names {
		reversed[id] = name
	}
	return reversed
}
