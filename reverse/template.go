// Package reverse provides runtime URL reversal from normalized
// pattern templates: parsing {name} templates into segments, filling
// them with arguments, and resolving named routes to concrete URLs.
package reverse

import (
	"fmt"
	"strings"

	"github.com/cypreess/revex/internal/normalizer"
	"github.com/cypreess/revex/internal/pattern"
)

// SegmentType indicates the type of segment in a normalized template.
type SegmentType int

const (
	// SegmentLiteral represents literal text.
	SegmentLiteral SegmentType = iota
	// SegmentParam represents a {name} placeholder.
	SegmentParam
)

// Segment represents a parsed segment of a normalized template.
type Segment struct {
	Type    SegmentType
	Literal string // For SegmentLiteral: the literal text
	Param   string // For SegmentParam: the placeholder name
}

// Template is a parsed normalized template ready for filling.
type Template struct {
	Format   string
	Params   []string
	Segments []Segment
}

// ParseTemplate parses a normalized template into segments. Only brace
// runs whose content is one of params count as placeholders; every
// other brace is literal text, so patterns that themselves match brace
// characters round-trip safely.
func ParseTemplate(format string, params []string) *Template {
	t := &Template{
		Format:   format,
		Params:   params,
		Segments: make([]Segment, 0),
	}

	i := 0
	literalStart := 0
	for i < len(format) {
		if format[i] != '{' {
			i++
			continue
		}
		closeIdx := strings.IndexByte(format[i:], '}')
		if closeIdx == -1 {
			break
		}
		name := format[i+1 : i+closeIdx]
		if !containsParam(params, name) {
			i++
			continue
		}
		if i > literalStart {
			t.Segments = append(t.Segments, Segment{
				Type:    SegmentLiteral,
				Literal: format[literalStart:i],
			})
		}
		t.Segments = append(t.Segments, Segment{
			Type:  SegmentParam,
			Param: name,
		})
		i += closeIdx + 1
		literalStart = i
	}

	if len(format) > literalStart {
		t.Segments = append(t.Segments, Segment{
			Type:    SegmentLiteral,
			Literal: format[literalStart:],
		})
	}
	return t
}

// Fill renders the template with the given arguments. Every parameter
// the template declares must be present.
func (t *Template) Fill(args map[string]string) (string, error) {
	var b strings.Builder
	b.Grow(len(t.Format))
	for _, seg := range t.Segments {
		switch seg.Type {
		case SegmentLiteral:
			b.WriteString(seg.Literal)
		case SegmentParam:
			value, ok := args[seg.Param]
			if !ok {
				return "", fmt.Errorf("missing argument %q", seg.Param)
			}
			b.WriteString(value)
		}
	}
	return b.String(), nil
}

// Matches reports whether the template's parameter set is exactly the
// key set of args.
func (t *Template) Matches(args map[string]string) bool {
	if len(t.Params) != len(args) {
		return false
	}
	for _, p := range t.Params {
		if _, ok := args[p]; !ok {
			return false
		}
	}
	return true
}

func containsParam(params []string, name string) bool {
	for _, p := range params {
		if p == name {
			return true
		}
	}
	return false
}

// templatesFor normalizes a pattern and parses each result.
func templatesFor(expr string) ([]*Template, error) {
	parsed, err := pattern.Parse(expr)
	if err != nil {
		return nil, err
	}
	normalized, err := normalizer.Normalize(parsed.Seq, parsed.GroupNames)
	if err != nil {
		return nil, err
	}
	templates := make([]*Template, 0, len(normalized))
	for _, n := range normalized {
		templates = append(templates, ParseTemplate(n.Format, n.Params))
	}
	return templates, nil
}
