// Package revex derives the literal URL templates a regular-expression
// pattern can match. Each template mixes fixed text with {name}
// placeholders for the pattern's capture groups; filling the
// placeholders yields a string the pattern accepts. The enumeration is
// a best-effort over-approximation used to reverse URL patterns, not a
// full inverse of regex matching.
package revex

import (
	"fmt"

	"github.com/cypreess/revex/internal/codegen"
	"github.com/cypreess/revex/internal/normalizer"
	"github.com/cypreess/revex/internal/pattern"
)

// Template is one normalized rendering of a pattern: template text
// with {name} placeholders plus the ordered parameter names filling
// them.
type Template = normalizer.Template

// UnsupportedFeatureError reports a regex feature the enumerator does
// not model (for example an unknown character category).
type UnsupportedFeatureError = normalizer.UnsupportedFeatureError

// InvalidGroupNameError reports a declared group name shaped like the
// reserved implicit names (_0, _1, ...) given to unnamed groups.
type InvalidGroupNameError = normalizer.InvalidGroupNameError

// Route is a named URL pattern for reversal code generation.
type Route = codegen.Route

// Normalize parses expr and enumerates every normalized template it
// can match. Results keep a deterministic enumeration order driven by
// the pattern's structure and may contain duplicates; candidates with
// unresolvable backreferences are dropped.
//
// Example:
//
//	templates, err := revex.Normalize(`articles/(?P<slug>[a-z-]+)/`)
//	// templates[0].Format == "articles/{slug}/"
//	// templates[0].Params == []string{"slug"}
func Normalize(expr string) ([]Template, error) {
	parsed, err := pattern.Parse(expr)
	if err != nil {
		return nil, err
	}
	return normalizer.Normalize(parsed.Seq, parsed.GroupNames)
}

// Options configures reversal code generation.
type Options struct {
	// Routes lists the named patterns to compile.
	Routes []Route

	// OutputFile is the path where generated code will be written.
	OutputFile string

	// Package is the Go package name for the generated code.
	Package string
}

// Validate checks if the options are valid.
func (o Options) Validate() error {
	if len(o.Routes) == 0 {
		return fmt.Errorf("routes cannot be empty")
	}
	if o.OutputFile == "" {
		return fmt.Errorf("output file cannot be empty")
	}
	if o.Package == "" {
		return fmt.Errorf("package cannot be empty")
	}
	return nil
}

// GenerateReverser generates Go reversal code for the given routes: a
// reversal function per route plus the shared runtime helpers, written
// to opts.OutputFile. It returns an error if any pattern is invalid or
// code generation fails.
func GenerateReverser(opts Options) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	g, err := codegen.New(codegen.Config{
		Package: opts.Package,
		Routes:  opts.Routes,
	})
	if err != nil {
		return fmt.Errorf("failed to compile routes: %w", err)
	}
	if err := g.GenerateFile(opts.OutputFile); err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}
	return nil
}
