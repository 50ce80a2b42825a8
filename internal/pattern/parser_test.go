package pattern

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"gotest.tools/v3/assert"

	"github.com/cypreess/revex/internal/ast"
)

func lit(ch rune) *ast.Node {
	return &ast.Node{Op: ast.OpLiteral, Ch: ch}
}

func lits(s string) ast.Seq {
	seq := make(ast.Seq, 0, len(s))
	for _, r := range s {
		seq = append(seq, lit(r))
	}
	return seq
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    ast.Seq
	}{
		{
			name:    "literals",
			pattern: "abc",
			want:    lits("abc"),
		},
		{
			name:    "wildcard and anchors",
			pattern: "^a.$",
			want: ast.Seq{
				{Op: ast.OpAt, At: ast.AtBeginLine},
				lit('a'),
				{Op: ast.OpAnyChar},
				{Op: ast.OpAt, At: ast.AtEndLine},
			},
		},
		{
			name:    "escaped anchors",
			pattern: `\Aa\b\Z`,
			want: ast.Seq{
				{Op: ast.OpAt, At: ast.AtBeginText},
				lit('a'),
				{Op: ast.OpAt, At: ast.AtWordBoundary},
				{Op: ast.OpAt, At: ast.AtEndText},
			},
		},
		{
			name:    "alternation",
			pattern: "ab|c",
			want: ast.Seq{{Op: ast.OpBranch, Alts: []ast.Seq{
				lits("ab"),
				lits("c"),
			}}},
		},
		{
			name:    "empty alternative",
			pattern: "a|",
			want: ast.Seq{{Op: ast.OpBranch, Alts: []ast.Seq{
				lits("a"),
				nil,
			}}},
		},
		{
			name:    "star plus question",
			pattern: "a*b+c?",
			want: ast.Seq{
				{Op: ast.OpRepeat, Min: 0, Max: -1, Sub: ast.Seq{lit('a')}},
				{Op: ast.OpRepeat, Min: 1, Max: -1, Sub: ast.Seq{lit('b')}},
				{Op: ast.OpRepeat, Min: 0, Max: 1, Sub: ast.Seq{lit('c')}},
			},
		},
		{
			name:    "counted quantifiers",
			pattern: "a{2}b{3,}c{4,5}d{,6}",
			want: ast.Seq{
				{Op: ast.OpRepeat, Min: 2, Max: 2, Sub: ast.Seq{lit('a')}},
				{Op: ast.OpRepeat, Min: 3, Max: -1, Sub: ast.Seq{lit('b')}},
				{Op: ast.OpRepeat, Min: 4, Max: 5, Sub: ast.Seq{lit('c')}},
				{Op: ast.OpRepeat, Min: 0, Max: 6, Sub: ast.Seq{lit('d')}},
			},
		},
		{
			name:    "malformed counted quantifier is literal",
			pattern: "a{x}",
			want:    append(lits("a"), lits("{x}")...),
		},
		{
			name:    "capturing group",
			pattern: "(ab)",
			want: ast.Seq{
				{Op: ast.OpGroup, Group: 1, Sub: lits("ab")},
			},
		},
		{
			name:    "non-capturing group",
			pattern: "(?:ab)",
			want: ast.Seq{
				{Op: ast.OpGroup, Group: 0, Sub: lits("ab")},
			},
		},
		{
			name:    "named group",
			pattern: "(?P<slug>a)",
			want: ast.Seq{
				{Op: ast.OpGroup, Group: 1, Sub: lits("a")},
			},
		},
		{
			name:    "named backreference",
			pattern: "(?P<a>x)(?P=a)",
			want: ast.Seq{
				{Op: ast.OpGroup, Group: 1, Sub: lits("x")},
				{Op: ast.OpGroupRef, Group: 1},
			},
		},
		{
			name:    "numeric backreference",
			pattern: `(x)\1`,
			want: ast.Seq{
				{Op: ast.OpGroup, Group: 1, Sub: lits("x")},
				{Op: ast.OpGroupRef, Group: 1},
			},
		},
		{
			name:    "bare category escape",
			pattern: `\d`,
			want: ast.Seq{
				{Op: ast.OpIn, Items: []ast.ClassItem{{Kind: ast.ClassCategory, Cat: ast.CatDigit}}},
			},
		},
		{
			name:    "class with range category and literal",
			pattern: `[a-z\d_]`,
			want: ast.Seq{
				{Op: ast.OpIn, Items: []ast.ClassItem{
					{Kind: ast.ClassRange, Lo: 'a', Hi: 'z'},
					{Kind: ast.ClassCategory, Cat: ast.CatDigit},
					{Kind: ast.ClassLiteral, Lo: '_'},
				}},
			},
		},
		{
			name:    "negated class",
			pattern: `[^ab]`,
			want: ast.Seq{
				{Op: ast.OpIn, Negated: true, Items: []ast.ClassItem{
					{Kind: ast.ClassLiteral, Lo: 'a'},
					{Kind: ast.ClassLiteral, Lo: 'b'},
				}},
			},
		},
		{
			name:    "leading close bracket is literal",
			pattern: `[]a]`,
			want: ast.Seq{
				{Op: ast.OpIn, Items: []ast.ClassItem{
					{Kind: ast.ClassLiteral, Lo: ']'},
					{Kind: ast.ClassLiteral, Lo: 'a'},
				}},
			},
		},
		{
			name:    "trailing dash is literal",
			pattern: `[a-]`,
			want: ast.Seq{
				{Op: ast.OpIn, Items: []ast.ClassItem{
					{Kind: ast.ClassLiteral, Lo: 'a'},
					{Kind: ast.ClassLiteral, Lo: '-'},
				}},
			},
		},
		{
			name:    "escaped punctuation",
			pattern: `\.\(\{`,
			want:    ast.Seq{lit('.'), lit('('), lit('{')},
		},
		{
			name:    "control escapes",
			pattern: `\t\n`,
			want:    ast.Seq{lit('\t'), lit('\n')},
		},
		{
			name:    "hex escape",
			pattern: `\x2f`,
			want:    ast.Seq{lit('/')},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.pattern)
			assert.NilError(t, err)
			if diff := cmp.Diff(tt.want, got.Seq); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.pattern, diff)
			}
		})
	}
}

func TestParseGroupBookkeeping(t *testing.T) {
	got, err := Parse(`(?P<a>x)(y)(?P<b>z)`)
	assert.NilError(t, err)
	assert.Equal(t, got.Groups, 3)
	assert.DeepEqual(t, got.GroupNames, map[string]int{"a": 1, "b": 3})
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		wantErr string
	}{
		{"unbalanced open", "(a", "missing closing parenthesis"},
		{"unbalanced close", "a)", "unbalanced parenthesis"},
		{"nothing to repeat", "*a", "nothing to repeat"},
		{"dangling escape", `a\`, "dangling escape"},
		{"unsupported escape", `\q`, "unsupported escape"},
		{"unsupported lookahead", "(?=a)", "unsupported group extension"},
		{"malformed named group", "(?Pa)", "malformed (?P"},
		{"duplicate group name", "(?P<a>x)(?P<a>y)", "redefinition of group name"},
		{"undefined named backreference", "(?P=a)", "undefined group name"},
		{"undefined numeric backreference", `\1`, "undefined group"},
		{"bad group name", "(?P<a-b>x)", "bad character"},
		{"empty group name", "(?P<>x)", "missing group name"},
		{"unterminated class", "[ab", "unterminated character class"},
		{"reversed range", "[z-a]", "reversed range"},
		{"category range end", `[a-\d]`, "category escape cannot end a range"},
		{"bad hex escape", `\xzz`, "bad hex digit"},
		{"class escape", `[\q]`, "unsupported escape"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.pattern)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
