package pattern

import (
	"fmt"

	"github.com/cypreess/revex/internal/ast"
)

type parser struct {
	pattern []rune
	pos     int
	groups  int
	names   map[string]int
}

func (p *parser) eof() bool {
	return p.pos >= len(p.pattern)
}

func (p *parser) peek() rune {
	return p.pattern[p.pos]
}

// accept consumes the next rune if it equals r.
func (p *parser) accept(r rune) bool {
	if !p.eof() && p.pattern[p.pos] == r {
		p.pos++
		return true
	}
	return false
}

// parseAlternation parses a '|'-separated list of concatenations. A
// single concatenation stays a flat sequence; two or more become one
// branch clause.
func (p *parser) parseAlternation() (ast.Seq, error) {
	first, err := p.parseConcatenation()
	if err != nil {
		return nil, err
	}
	if p.eof() || p.peek() != '|' {
		return first, nil
	}
	alts := []ast.Seq{first}
	for p.accept('|') {
		next, err := p.parseConcatenation()
		if err != nil {
			return nil, err
		}
		alts = append(alts, next)
	}
	return ast.Seq{{Op: ast.OpBranch, Alts: alts}}, nil
}

func (p *parser) parseConcatenation() (ast.Seq, error) {
	var seq ast.Seq
	for !p.eof() {
		if ch := p.peek(); ch == ')' || ch == '|' {
			break
		}
		n, err := p.parseRepetition()
		if err != nil {
			return nil, err
		}
		seq = append(seq, n)
	}
	return seq, nil
}

func (p *parser) parseRepetition() (*ast.Node, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if p.eof() {
		return atom, nil
	}
	var min, max int
	switch p.peek() {
	case '*':
		min, max = 0, -1
	case '+':
		min, max = 1, -1
	case '?':
		min, max = 0, 1
	case '{':
		counted, ok := p.tryParseCounted()
		if !ok {
			// Not a valid counted quantifier; '{' stays a literal.
			return atom, nil
		}
		min, max = counted[0], counted[1]
		return &ast.Node{Op: ast.OpRepeat, Min: min, Max: max, Sub: ast.Seq{atom}}, nil
	default:
		return atom, nil
	}
	p.pos++
	return &ast.Node{Op: ast.OpRepeat, Min: min, Max: max, Sub: ast.Seq{atom}}, nil
}

// tryParseCounted parses {m}, {m,}, {m,n} or {,n} at the current '{'.
// On a malformed body it consumes nothing and reports !ok, so the '{'
// is treated as a literal, matching common regex engines.
func (p *parser) tryParseCounted() ([2]int, bool) {
	start := p.pos
	p.pos++ // consume '{'
	min, hasMin := p.scanInt()
	var max int
	hasMax := false
	sawComma := p.accept(',')
	if sawComma {
		max, hasMax = p.scanInt()
	}
	if !p.accept('}') || (!hasMin && !hasMax) {
		p.pos = start
		return [2]int{}, false
	}
	switch {
	case !sawComma:
		max = min
	case !hasMax:
		max = -1
	case !hasMin:
		min = 0
	}
	return [2]int{min, max}, true
}

func (p *parser) scanInt() (int, bool) {
	value, seen := 0, false
	for !p.eof() && p.peek() >= '0' && p.peek() <= '9' {
		value = value*10 + int(p.peek()-'0')
		p.pos++
		seen = true
	}
	return value, seen
}

func (p *parser) parseAtom() (*ast.Node, error) {
	ch := p.peek()
	switch ch {
	case '(':
		p.pos++
		return p.parseGroup()
	case '[':
		p.pos++
		return p.parseClass()
	case '\\':
		p.pos++
		return p.parseEscape()
	case '.':
		p.pos++
		return &ast.Node{Op: ast.OpAnyChar}, nil
	case '^':
		p.pos++
		return &ast.Node{Op: ast.OpAt, At: ast.AtBeginLine}, nil
	case '$':
		p.pos++
		return &ast.Node{Op: ast.OpAt, At: ast.AtEndLine}, nil
	case '*', '+', '?':
		return nil, fmt.Errorf("nothing to repeat at offset %d", p.pos)
	default:
		p.pos++
		return &ast.Node{Op: ast.OpLiteral, Ch: ch}, nil
	}
}

// parseGroup parses the body of a group whose '(' is already consumed.
func (p *parser) parseGroup() (*ast.Node, error) {
	group := 0
	if p.accept('?') {
		switch {
		case p.accept(':'):
			// non-capturing, group stays 0
		case p.accept('P'):
			switch {
			case p.accept('<'):
				name, err := p.parseGroupName('>')
				if err != nil {
					return nil, err
				}
				if _, dup := p.names[name]; dup {
					return nil, fmt.Errorf("redefinition of group name %q", name)
				}
				p.groups++
				p.names[name] = p.groups
				group = p.groups
			case p.accept('='):
				name, err := p.parseGroupName(')')
				if err != nil {
					return nil, err
				}
				id, ok := p.names[name]
				if !ok {
					return nil, fmt.Errorf("backreference to undefined group name %q", name)
				}
				return &ast.Node{Op: ast.OpGroupRef, Group: id}, nil
			default:
				return nil, fmt.Errorf("malformed (?P... group at offset %d", p.pos)
			}
		default:
			return nil, fmt.Errorf("unsupported group extension at offset %d", p.pos)
		}
	} else {
		p.groups++
		group = p.groups
	}

	sub, err := p.parseAlternation()
	if err != nil {
		return nil, err
	}
	if !p.accept(')') {
		return nil, fmt.Errorf("missing closing parenthesis at offset %d", p.pos)
	}
	return &ast.Node{Op: ast.OpGroup, Group: group, Sub: sub}, nil
}

// parseGroupName scans an identifier up to the given terminator.
func (p *parser) parseGroupName(terminator rune) (string, error) {
	start := p.pos
	for !p.eof() && p.peek() != terminator {
		r := p.peek()
		if !isNameRune(r, p.pos == start) {
			return "", fmt.Errorf("bad character %q in group name", r)
		}
		p.pos++
	}
	name := string(p.pattern[start:p.pos])
	if !p.accept(terminator) || name == "" {
		return "", fmt.Errorf("missing group name at offset %d", start)
	}
	return name, nil
}

func isNameRune(r rune, first bool) bool {
	if r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
		return true
	}
	return !first && r >= '0' && r <= '9'
}

// parseClass parses a character class whose '[' is already consumed.
func (p *parser) parseClass() (*ast.Node, error) {
	node := &ast.Node{Op: ast.OpIn}
	node.Negated = p.accept('^')
	first := true
	for {
		if p.eof() {
			return nil, fmt.Errorf("unterminated character class")
		}
		ch := p.peek()
		if ch == ']' && !first {
			p.pos++
			return node, nil
		}
		first = false
		item, err := p.parseClassItem()
		if err != nil {
			return nil, err
		}
		node.Items = append(node.Items, item)
	}
}

func (p *parser) parseClassItem() (ast.ClassItem, error) {
	lo, cat, err := p.parseClassChar()
	if err != nil {
		return ast.ClassItem{}, err
	}
	if cat != 0 {
		return ast.ClassItem{Kind: ast.ClassCategory, Cat: cat}, nil
	}
	// A '-' forms a range unless it is the last char before ']'.
	if !p.eof() && p.peek() == '-' && p.pos+1 < len(p.pattern) && p.pattern[p.pos+1] != ']' {
		p.pos++
		hi, hiCat, err := p.parseClassChar()
		if err != nil {
			return ast.ClassItem{}, err
		}
		if hiCat != 0 {
			return ast.ClassItem{}, fmt.Errorf("category escape cannot end a range")
		}
		if hi < lo {
			return ast.ClassItem{}, fmt.Errorf("reversed range %c-%c", lo, hi)
		}
		return ast.ClassItem{Kind: ast.ClassRange, Lo: lo, Hi: hi}, nil
	}
	return ast.ClassItem{Kind: ast.ClassLiteral, Lo: lo}, nil
}

// parseClassChar scans one class member: a plain character, an escaped
// character, or a category escape (reported via cat != 0).
func (p *parser) parseClassChar() (ch rune, cat ast.Category, err error) {
	if p.eof() {
		return 0, 0, fmt.Errorf("unterminated character class")
	}
	ch = p.peek()
	p.pos++
	if ch != '\\' {
		return ch, 0, nil
	}
	if p.eof() {
		return 0, 0, fmt.Errorf("dangling escape in character class")
	}
	esc := p.peek()
	p.pos++
	if cat, ok := categoryEscapes[esc]; ok {
		return 0, cat, nil
	}
	if ch, ok := controlEscapes[esc]; ok {
		return ch, 0, nil
	}
	if isASCIIAlphanumeric(esc) {
		return 0, 0, fmt.Errorf("unsupported escape \\%c in character class", esc)
	}
	return esc, 0, nil
}

var categoryEscapes = map[rune]ast.Category{
	'd': ast.CatDigit,
	'D': ast.CatNotDigit,
	's': ast.CatSpace,
	'S': ast.CatNotSpace,
	'w': ast.CatWord,
	'W': ast.CatNotWord,
}

var controlEscapes = map[rune]rune{
	'n': '\n',
	't': '\t',
	'r': '\r',
	'f': '\f',
	'v': '\v',
	'a': '\a',
}

var anchorEscapes = map[rune]ast.AtKind{
	'A': ast.AtBeginText,
	'Z': ast.AtEndText,
	'b': ast.AtWordBoundary,
	'B': ast.AtNotWordBoundary,
}

// parseEscape parses an escape whose '\' is already consumed, outside
// a character class.
func (p *parser) parseEscape() (*ast.Node, error) {
	if p.eof() {
		return nil, fmt.Errorf("dangling escape at end of pattern")
	}
	esc := p.peek()

	// Numeric backreferences may span multiple digits.
	if esc >= '1' && esc <= '9' {
		num, _ := p.scanInt()
		if num > p.groups {
			return nil, fmt.Errorf("backreference \\%d to undefined group", num)
		}
		return &ast.Node{Op: ast.OpGroupRef, Group: num}, nil
	}
	p.pos++

	if cat, ok := categoryEscapes[esc]; ok {
		// A bare category escape is a one-item character class.
		return &ast.Node{Op: ast.OpIn, Items: []ast.ClassItem{{Kind: ast.ClassCategory, Cat: cat}}}, nil
	}
	if at, ok := anchorEscapes[esc]; ok {
		return &ast.Node{Op: ast.OpAt, At: at}, nil
	}
	if ch, ok := controlEscapes[esc]; ok {
		return &ast.Node{Op: ast.OpLiteral, Ch: ch}, nil
	}
	if esc == 'x' {
		return p.parseHexEscape()
	}
	if isASCIIAlphanumeric(esc) {
		return nil, fmt.Errorf("unsupported escape \\%c", esc)
	}
	// Escaped punctuation matches itself.
	return &ast.Node{Op: ast.OpLiteral, Ch: esc}, nil
}

// parseHexEscape parses the two hex digits of \xHH.
func (p *parser) parseHexEscape() (*ast.Node, error) {
	var value rune
	for i := 0; i < 2; i++ {
		if p.eof() {
			return nil, fmt.Errorf("incomplete \\x escape")
		}
		d := hexDigit(p.peek())
		if d < 0 {
			return nil, fmt.Errorf("bad hex digit %q in \\x escape", p.peek())
		}
		value = value<<4 | rune(d)
		p.pos++
	}
	return &ast.Node{Op: ast.OpLiteral, Ch: value}, nil
}

func hexDigit(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10
	}
	return -1
}

func isASCIIAlphanumeric(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
