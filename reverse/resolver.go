package reverse

import (
	"fmt"
	"sort"
)

// Route is a named URL pattern together with its reversal candidates.
type Route struct {
	Name      string
	Pattern   string
	Templates []*Template
}

// Resolver maps route names to URL patterns and reverses them: given a
// route name and arguments it returns a concrete URL the route's
// pattern would match.
type Resolver struct {
	routes map[string]*Route
	order  []string
}

// NewResolver returns an empty resolver.
func NewResolver() *Resolver {
	return &Resolver{routes: make(map[string]*Route)}
}

// Add registers a route. The pattern is normalized eagerly so that
// invalid patterns surface at registration, not at reversal.
func (r *Resolver) Add(name, pattern string) error {
	if _, dup := r.routes[name]; dup {
		return fmt.Errorf("route %q already registered", name)
	}
	templates, err := templatesFor(pattern)
	if err != nil {
		return fmt.Errorf("route %q: %w", name, err)
	}
	r.routes[name] = &Route{Name: name, Pattern: pattern, Templates: templates}
	r.order = append(r.order, name)
	return nil
}

// Routes returns the registered routes in registration order.
func (r *Resolver) Routes() []*Route {
	out := make([]*Route, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.routes[name])
	}
	return out
}

// Reverse renders the URL for a route. The first normalized candidate
// whose parameter set matches the supplied arguments exactly wins;
// candidate order follows the pattern's enumeration order, so sparser
// renderings of optional segments are tried first.
func (r *Resolver) Reverse(name string, args map[string]string) (string, error) {
	route, ok := r.routes[name]
	if !ok {
		return "", fmt.Errorf("unknown route %q", name)
	}
	for _, t := range route.Templates {
		if t.Matches(args) {
			return t.Fill(args)
		}
	}
	return "", fmt.Errorf("no reversal of route %q accepts arguments %v", name, argNames(args))
}

func argNames(args map[string]string) []string {
	names := make([]string, 0, len(args))
	for name := range args {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
