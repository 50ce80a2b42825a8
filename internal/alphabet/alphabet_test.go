package alphabet

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/cypreess/revex/internal/ast"
)

func TestAllowedIsGraphicASCII(t *testing.T) {
	assert.Equal(t, len(Allowed), int('~'-'!')+1)
	assert.Assert(t, Allowed.Contains('!'))
	assert.Assert(t, Allowed.Contains('~'))
	assert.Assert(t, Allowed.Contains('0'))
	assert.Assert(t, Allowed.Contains('A'))
	assert.Assert(t, !Allowed.Contains(' '))
	assert.Assert(t, !Allowed.Contains('\t'))
	assert.Assert(t, !Allowed.Contains(0x7f))
}

func TestSetMin(t *testing.T) {
	s := NewSet("zba")
	min, ok := s.Min()
	assert.Assert(t, ok)
	assert.Equal(t, min, 'a')

	_, ok = NewSet("").Min()
	assert.Assert(t, !ok)
}

func TestSetCloneIsIndependent(t *testing.T) {
	s := NewSet("abc")
	c := s.Clone()
	c.Remove('a')
	assert.Assert(t, s.Contains('a'))
	assert.Assert(t, !c.Contains('a'))
}

func TestSetRemoveRange(t *testing.T) {
	s := NewSet("abcdef")
	s.RemoveRange('b', 'd')
	assert.Assert(t, s.Contains('a'))
	assert.Assert(t, !s.Contains('b'))
	assert.Assert(t, !s.Contains('d'))
	assert.Assert(t, s.Contains('e'))
}

func TestCategoryWitnesses(t *testing.T) {
	tests := []struct {
		cat  ast.Category
		want rune
	}{
		{ast.CatDigit, '0'},
		{ast.CatNotDigit, '!'},
		{ast.CatSpace, '\t'},
		{ast.CatNotSpace, '!'},
		{ast.CatWord, '0'},
		{ast.CatNotWord, '!'},
	}
	for _, tt := range tests {
		t.Run(tt.cat.String(), func(t *testing.T) {
			got, ok := Witness(tt.cat)
			assert.Assert(t, ok)
			assert.Equal(t, got, tt.want)

			// The witness is always a member of the full set.
			set, ok := Category(tt.cat)
			assert.Assert(t, ok)
			assert.Assert(t, set.Contains(got))
		})
	}
}

func TestCategorySetsComplementWithinAllowed(t *testing.T) {
	pairs := [][2]ast.Category{
		{ast.CatDigit, ast.CatNotDigit},
		{ast.CatWord, ast.CatNotWord},
	}
	for _, pair := range pairs {
		pos, _ := Category(pair[0])
		neg, _ := Category(pair[1])
		for r := range Allowed {
			inPos := pos.Contains(r)
			inNeg := neg.Contains(r)
			assert.Assert(t, inPos != inNeg, "char %q in both or neither of %v/%v", r, pair[0], pair[1])
		}
	}
}

func TestUnknownCategory(t *testing.T) {
	_, ok := Category(ast.Category(99))
	assert.Assert(t, !ok)
	_, ok = Witness(ast.Category(99))
	assert.Assert(t, !ok)
}
