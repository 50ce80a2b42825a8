package normalizer

// candidate is one enumerated rendering of a clause sequence: a piece
// of template text plus the placeholder names it introduces (required)
// and the names its backreferences depend on (referenced). Required
// keeps first-seen order; both lists are de-duplicated.
type candidate struct {
	fragment   string
	required   []string
	referenced []string
}

// marker renders the placeholder marker for a group name.
func marker(name string) string {
	return "{" + name + "}"
}

// appendUnique returns a fresh list holding base followed by every
// member of extra not already present. The result never shares a
// backing array with base, so product branches cannot alias.
func appendUnique(base []string, extra ...string) []string {
	if len(base) == 0 && len(extra) == 0 {
		return nil
	}
	merged := make([]string, 0, len(base)+len(extra))
	merged = append(merged, base...)
	for _, name := range extra {
		if !containsName(merged, name) {
			merged = append(merged, name)
		}
	}
	return merged
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// covered reports whether every referenced name appears in required.
func covered(referenced, required []string) bool {
	for _, name := range referenced {
		if !containsName(required, name) {
			return false
		}
	}
	return true
}
