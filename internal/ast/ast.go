// Package ast defines the clause tree that the normalizer walks.
// A pattern is an ordered sequence of nodes; composite nodes (branch,
// repeat, group) hold nested sequences, forming a tree. The tree is
// produced by the pattern parser and is read-only afterwards.
package ast

import "fmt"

// Op identifies the kind of a clause node.
type Op int

const (
	// OpLiteral matches a single character (Ch).
	OpLiteral Op = 1 + iota
	// OpNotLiteral matches any character except Ch.
	OpNotLiteral
	// OpAnyChar matches any character.
	OpAnyChar
	// OpAt matches a zero-width position (At).
	OpAt
	// OpIn matches a character class (Items, Negated).
	OpIn
	// OpBranch matches any one of the alternative sequences (Alts).
	OpBranch
	// OpGroupRef matches whatever capturing group Group matched.
	OpGroupRef
	// OpRepeat matches Sub repeated between Min and Max times.
	OpRepeat
	// OpGroup matches the parenthesized sequence Sub; Group is the
	// capture id, or 0 for a non-capturing group.
	OpGroup
)

var opNames = map[Op]string{
	OpLiteral:    "Literal",
	OpNotLiteral: "NotLiteral",
	OpAnyChar:    "AnyChar",
	OpAt:         "At",
	OpIn:         "In",
	OpBranch:     "Branch",
	OpGroupRef:   "GroupRef",
	OpRepeat:     "Repeat",
	OpGroup:      "Group",
}

func (op Op) String() string {
	if name, ok := opNames[op]; ok {
		return name
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// AtKind identifies a zero-width anchor.
type AtKind int

const (
	// AtBeginLine is ^.
	AtBeginLine AtKind = 1 + iota
	// AtEndLine is $.
	AtEndLine
	// AtBeginText is \A.
	AtBeginText
	// AtEndText is \Z.
	AtEndText
	// AtWordBoundary is \b.
	AtWordBoundary
	// AtNotWordBoundary is \B.
	AtNotWordBoundary
)

// Category identifies a character category escape.
type Category int

const (
	// CatDigit is \d.
	CatDigit Category = 1 + iota
	// CatNotDigit is \D.
	CatNotDigit
	// CatSpace is \s.
	CatSpace
	// CatNotSpace is \S.
	CatNotSpace
	// CatWord is \w.
	CatWord
	// CatNotWord is \W.
	CatNotWord
)

var categoryNames = map[Category]string{
	CatDigit:    `\d`,
	CatNotDigit: `\D`,
	CatSpace:    `\s`,
	CatNotSpace: `\S`,
	CatWord:     `\w`,
	CatNotWord:  `\W`,
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// ClassKind identifies the kind of a character-class item.
type ClassKind int

const (
	// ClassLiteral is a single character (Lo).
	ClassLiteral ClassKind = 1 + iota
	// ClassRange is an inclusive character range (Lo, Hi).
	ClassRange
	// ClassCategory is a category escape inside a class (Cat).
	ClassCategory
)

// ClassItem is one member of a character class.
type ClassItem struct {
	Kind ClassKind
	Lo   rune
	Hi   rune
	Cat  Category
}

// Seq is an ordered sequence of sibling clause nodes.
type Seq []*Node

// Node is a single clause. Which fields are meaningful depends on Op;
// the rest stay at their zero values.
type Node struct {
	Op      Op
	Ch      rune        // OpLiteral, OpNotLiteral
	At      AtKind      // OpAt
	Negated bool        // OpIn
	Items   []ClassItem // OpIn
	Alts    []Seq       // OpBranch
	Group   int         // OpGroupRef, OpGroup (0 = non-capturing)
	Min     int         // OpRepeat
	Max     int         // OpRepeat, -1 = unbounded
	Sub     Seq         // OpRepeat, OpGroup
}
