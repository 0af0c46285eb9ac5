package defects

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"resume-engine/internal/analyses/segment"
)

type candidate struct {
	text    string
	context string
}

var partSplitRe = regexp.MustCompile(`\s*[;|]\s*|\s+[-–—]\s+`)

// Classify runs every candidate through the ordered rule list and returns the
// deduplicated quotes in extraction order, capped at MaxQuotes. Each candidate
// contributes at most one quote.
func Classify(c *segment.Content) []Quote {
	if c == nil {
		return nil
	}
	seen := make(map[string]bool)
	quotes := make([]Quote, 0, MaxQuotes)

	for _, cand := range candidates(c) {
		if len(quotes) >= MaxQuotes {
			break
		}
		for _, r := range rules {
			if !r.match(cand.text) {
				continue
			}
			key := dedupeKey(r.category, cand.text)
			if !seen[key] {
				seen[key] = true
				quotes = append(quotes, Quote{
					OriginalText:         truncate(cand.text, MaxQuoteRunes),
					Context:              cand.context,
					Issue:                r.issue,
					SuggestedImprovement: r.rewrite(cand.text),
					Category:             r.category,
				})
			}
			break
		}
	}
	return quotes
}

// candidates yields bullets (and their sub-parts when a bullet is long or
// joins several clauses), falling back to sentences when the text has no
// bullets at all.
func candidates(c *segment.Content) []candidate {
	var out []candidate
	add := func(text, context string) {
		text = strings.TrimSpace(text)
		if utf8.RuneCountInString(text) >= minCandidateRunes {
			out = append(out, candidate{text: text, context: context})
		}
	}

	if len(c.Bullets) == 0 {
		for _, s := range c.Sentences {
			add(s, "sentence")
		}
		return out
	}

	for _, b := range c.Bullets {
		ctx := bulletContext(b.Section)
		add(b.Text, ctx)
		if utf8.RuneCountInString(b.Text) > splitBulletRunes || partSplitRe.MatchString(b.Text) {
			parts := partSplitRe.Split(b.Text, -1)
			if len(parts) < 2 {
				continue
			}
			for _, p := range parts {
				add(p, ctx)
			}
		}
	}
	return out
}

func bulletContext(section string) string {
	if section == "" {
		return "bullet point"
	}
	return section + " bullet"
}

func dedupeKey(cat Category, text string) string {
	norm := strings.Join(strings.Fields(strings.ToLower(text)), " ")
	return string(cat) + "|" + truncateRunes(norm, dedupeKeyRunes)
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return strings.TrimSpace(truncateRunes(s, n-3)) + "..."
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
