// Package textmatch provides case-insensitive substring matching for free-text search.
package textmatch

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lower returns s lowercased with language-neutral rules.
// A new Caser is built per call because Casers are not safe for concurrent use.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// IsBlank reports whether query carries no text constraint.
func IsBlank(query string) bool {
	return strings.TrimSpace(query) == ""
}

// Matcher tests haystacks against a single pre-lowercased needle.
// The needle keeps its surrounding whitespace: "nest " does not match "Urban Nest".
type Matcher struct {
	needle string
}

// NewMatcher prepares a matcher for query. Empty and whitespace-only queries match everything.
func NewMatcher(query string) Matcher {
	if IsBlank(query) {
		return Matcher{}
	}
	return Matcher{needle: Lower(query)}
}

// IsEmpty reports whether the matcher carries no constraint.
func (m Matcher) IsEmpty() bool {
	return m.needle == ""
}

// MatchAny reports whether the needle occurs in any of the haystacks.
func (m Matcher) MatchAny(haystacks ...string) bool {
	if m.IsEmpty() {
		return true
	}
	for _, h := range haystacks {
		if strings.Contains(Lower(h), m.needle) {
			return true
		}
	}
	return false
}
