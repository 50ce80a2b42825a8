// Package codegen emits Go source files with reversal functions for
// named URL routes.
package codegen

import (
	"go/token"
	"strings"
)

// LowerFirst converts the first character of a string to lowercase.
func LowerFirst(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]|0x20) + s[1:]
}

// UpperFirst converts the first character of a string to uppercase.
func UpperFirst(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]&^0x20) + s[1:]
}

// ExportName converts a route name to an exported Go identifier:
// "article_detail" becomes "ArticleDetail". Separator characters start
// a new word; a leading digit gets a "Route" prefix.
func ExportName(name string) string {
	var b strings.Builder
	upperNext := true
	for _, r := range name {
		switch {
		case r == '_' || r == '-' || r == '.' || r == '/' || r == ' ':
			upperNext = true
		case upperNext:
			if r >= 'a' && r <= 'z' {
				r -= 'a' - 'A'
			}
			b.WriteRune(r)
			upperNext = false
		default:
			b.WriteRune(r)
		}
	}
	out := b.String()
	if out == "" || (out[0] >= '0' && out[0] <= '9') {
		out = "Route" + out
	}
	return out
}

// paramIdent converts a placeholder name to a Go parameter name.
// Placeholder names are already identifier-shaped; only Go keywords
// need renaming.
func paramIdent(name string) string {
	if token.IsKeyword(name) {
		return name + "Arg"
	}
	return name
}
