package normalizer

import "fmt"

// UnsupportedFeatureError reports a clause or character category the
// enumerator has no handling for. The enclosing enumeration aborts
// without partial results.
type UnsupportedFeatureError struct {
	Feature string
}

func (e *UnsupportedFeatureError) Error() string {
	return fmt.Sprintf("%s is not supported", e.Feature)
}

// InvalidGroupNameError reports a declared group name that collides
// with the reserved implicit-name shape (an underscore followed only
// by digits). This is an input contract violation, not a runtime
// condition to recover from.
type InvalidGroupNameError struct {
	Name string
}

func (e *InvalidGroupNameError) Error() string {
	return fmt.Sprintf("group name %q collides with the reserved _<digits> form", e.Name)
}
