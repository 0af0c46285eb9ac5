package lexicon

import (
	"regexp"
	"sort"
	"strings"
)

var (
	// NumericToken matches a number, percentage or currency amount.
	NumericToken = regexp.MustCompile(`[$€£]\s?\d[\d,.]*[kKmMbB]?|\d[\d,.]*\s?%|\d[\d,.]*`)
	// Email matches a plain e-mail address.
	Email = regexp.MustCompile(`(?i)[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}`)
	// Phone matches common North American and international phone layouts.
	Phone = regexp.MustCompile(`(?:\+?\d{1,3}[\s.\-]?)?\(?\d{3}\)?[\s.\-]?\d{3}[\s.\-]?\d{4}\b`)
)

// WordPattern compiles words into one case-insensitive alternation anchored
// on word boundaries. A trailing "*" on an entry turns it into a prefix.
// Longer entries are tried first so multi-word phrases win over their parts.
func WordPattern(words []string) *regexp.Regexp {
	sorted := append([]string(nil), words...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i]) > len(sorted[j])
	})
	parts := make([]string, 0, len(sorted))
	for _, w := range sorted {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if strings.HasSuffix(w, "*") {
			parts = append(parts, quoteWords(strings.TrimSuffix(w, "*"))+`\w*`)
			continue
		}
		parts = append(parts, quoteWords(w))
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(parts, "|") + `)\b`)
}

// quoteWords escapes w and lets its inner spaces match any whitespace run.
func quoteWords(w string) string {
	return strings.Join(strings.Fields(regexp.QuoteMeta(w)), `\s+`)
}

// StemPattern compiles stems that must start a word.
func StemPattern(stems []string) *regexp.Regexp {
	parts := make([]string, 0, len(stems))
	for _, s := range stems {
		parts = append(parts, regexp.QuoteMeta(strings.ToLower(s)))
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(parts, "|") + `)\w*`)
}

// HasNumber reports whether s carries a numeric, percent or currency token.
func HasNumber(s string) bool {
	return NumericToken.MatchString(s)
}
