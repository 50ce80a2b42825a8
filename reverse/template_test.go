package reverse

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"gotest.tools/v3/assert"
)

func TestParseTemplate(t *testing.T) {
	tests := []struct {
		name   string
		format string
		params []string
		want   []Segment
	}{
		{
			name:   "empty",
			format: "",
			params: nil,
			want:   []Segment{},
		},
		{
			name:   "literal only",
			format: "articles/today/",
			params: nil,
			want: []Segment{
				{Type: SegmentLiteral, Literal: "articles/today/"},
			},
		},
		{
			name:   "single placeholder",
			format: "articles/{slug}/",
			params: []string{"slug"},
			want: []Segment{
				{Type: SegmentLiteral, Literal: "articles/"},
				{Type: SegmentParam, Param: "slug"},
				{Type: SegmentLiteral, Literal: "/"},
			},
		},
		{
			name:   "adjacent placeholders",
			format: "{a}{b}",
			params: []string{"a", "b"},
			want: []Segment{
				{Type: SegmentParam, Param: "a"},
				{Type: SegmentParam, Param: "b"},
			},
		},
		{
			name:   "repeated placeholder",
			format: "{a}/{a}",
			params: []string{"a"},
			want: []Segment{
				{Type: SegmentParam, Param: "a"},
				{Type: SegmentLiteral, Literal: "/"},
				{Type: SegmentParam, Param: "a"},
			},
		},
		{
			name:   "unknown brace run stays literal",
			format: "a{b}c",
			params: nil,
			want: []Segment{
				{Type: SegmentLiteral, Literal: "a{b}c"},
			},
		},
		{
			name:   "unclosed brace stays literal",
			format: "a{b",
			params: []string{"b"},
			want: []Segment{
				{Type: SegmentLiteral, Literal: "a{b"},
			},
		},
		{
			name:   "literal brace before placeholder",
			format: "{{slug}",
			params: []string{"slug"},
			want: []Segment{
				{Type: SegmentLiteral, Literal: "{"},
				{Type: SegmentParam, Param: "slug"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTemplate(tt.format, tt.params)
			if diff := cmp.Diff(tt.want, got.Segments); diff != "" {
				t.Errorf("ParseTemplate(%q) mismatch (-want +got):\n%s", tt.format, diff)
			}
		})
	}
}

func TestFill(t *testing.T) {
	tmpl := ParseTemplate("articles/{year}/{slug}/", []string{"year", "slug"})

	got, err := tmpl.Fill(map[string]string{"year": "2026", "slug": "go-releases"})
	assert.NilError(t, err)
	assert.Equal(t, got, "articles/2026/go-releases/")

	_, err = tmpl.Fill(map[string]string{"year": "2026"})
	assert.ErrorContains(t, err, `missing argument "slug"`)
}

func TestMatches(t *testing.T) {
	tmpl := ParseTemplate("{a}/{b}", []string{"a", "b"})
	assert.Assert(t, tmpl.Matches(map[string]string{"a": "1", "b": "2"}))
	assert.Assert(t, !tmpl.Matches(map[string]string{"a": "1"}))
	assert.Assert(t, !tmpl.Matches(map[string]string{"a": "1", "c": "2"}))
	assert.Assert(t, !tmpl.Matches(map[string]string{"a": "1", "b": "2", "c": "3"}))
}
