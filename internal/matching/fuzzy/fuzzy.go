// Package fuzzy decides whether two skill spellings name the same thing.
// Tokens are equivalent when their normalized forms are equal, when one
// holds the other as whole words, or when both sit in one synonym group.
package fuzzy

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"

	"resume-engine/internal/lexicon"
)

// minContainRunes is the shortest token allowed to match by containment.
const minContainRunes = 3

// Normalize case-folds s, spells out "+" and "#", drops apostrophes and "&",
// turns other punctuation into word breaks and collapses whitespace.
// "C++", "C#" and "C" stay distinct; "Helm/ArgoCD" becomes "helm argocd".
func Normalize(s string) string {
	// A Caser is stateful, so each call takes its own.
	s = cases.Fold().String(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '+':
			b.WriteString("plus")
		case r == '#':
			b.WriteString("sharp")
		case unicode.IsLetter(r), unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '\'', r == '’', r == '&':
		default:
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Matcher holds a synonym index. It is immutable after construction.
type Matcher struct {
	groups  map[string]int
	members [][]string
}

// New indexes groups by normalized spelling. A spelling listed in more than
// one group keeps its first group.
func New(groups [][]string) *Matcher {
	m := &Matcher{groups: make(map[string]int), members: make([][]string, len(groups))}
	for id, g := range groups {
		for _, term := range g {
			n := Normalize(term)
			if n == "" {
				continue
			}
			m.members[id] = append(m.members[id], n)
			if _, ok := m.groups[n]; !ok {
				m.groups[n] = id
			}
		}
	}
	return m
}

// Default is built from the shared synonym table.
var Default = New(lexicon.SynonymGroups)

// Group returns the synonym group id of token.
func (m *Matcher) Group(token string) (int, bool) {
	id, ok := m.groups[Normalize(token)]
	return id, ok
}

// Equivalent reports whether a and b name the same skill. It is symmetric.
func (m *Matcher) Equivalent(a, b string) bool {
	na, nb := Normalize(a), Normalize(b)
	if na == "" || nb == "" {
		return false
	}
	if na == nb || containsWords(na, nb) || containsWords(nb, na) {
		return true
	}
	ga, okA := m.groups[na]
	gb, okB := m.groups[nb]
	return okA && okB && ga == gb
}

// MatchAny returns the first candidate equivalent to token.
func (m *Matcher) MatchAny(token string, candidates []string) (string, bool) {
	for _, c := range candidates {
		if m.Equivalent(token, c) {
			return c, true
		}
	}
	return "", false
}

// InText reports whether token, or any of its synonyms, appears in text as
// whole words. text must already be normalized.
func (m *Matcher) InText(token, normalizedText string) bool {
	n := Normalize(token)
	if n == "" || normalizedText == "" {
		return false
	}
	if hasWords(normalizedText, n) {
		return true
	}
	id, ok := m.groups[n]
	if !ok {
		return false
	}
	for _, syn := range m.members[id] {
		if hasWords(normalizedText, syn) {
			return true
		}
	}
	return false
}

// containsWords reports whether the shorter token inner appears in outer on
// word boundaries and is long enough to be meaningful.
func containsWords(outer, inner string) bool {
	if len([]rune(inner)) < minContainRunes || len(inner) >= len(outer) {
		return false
	}
	return hasWords(outer, inner)
}

func hasWords(text, phrase string) bool {
	return strings.Contains(" "+text+" ", " "+phrase+" ")
}
