// Package audit runs whole-document structural checks that sit beside the
// category scorers. Each finding carries a severity whose weight is
// subtracted once from the summed category scores.
package audit

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"resume-engine/internal/analyses/defects"
	"resume-engine/internal/analyses/segment"
	"resume-engine/internal/lexicon"
)

// Severity of a rule issue.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Weight is the penalty a severity contributes.
func (s Severity) Weight() int {
	switch s {
	case SeverityHigh:
		return 4
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

// Category groups rule issues for reporting.
type Category string

const (
	CategoryStructure Category = "structure"
	CategoryFormat    Category = "format"
	CategoryVerbiage  Category = "verbiage"
	CategoryImpact    Category = "impact"
	CategoryATS       Category = "ats"
)

// RuleIssue is one structural finding.
type RuleIssue struct {
	Severity       Severity `json:"severity"`
	Category       Category `json:"category"`
	Issue          string   `json:"issue"`
	Evidence       string   `json:"evidence,omitempty"`
	Recommendation string   `json:"recommendation,omitempty"`
}

const (
	hardMinWords    = 150
	hardMaxWords    = 1000
	softMinWords    = 220
	softMaxWords    = 750
	longBulletWords = 45
	wordyBullet     = 35
	minNumericHits  = 5
	maxEvidence     = 200
	maxPlaceholders = 5
)

var placeholderRe = regexp.MustCompile(`\[[^\]\n]*\]|\b(?:TBD|TK)\b|\bXX+\b|\bN/A\b|\?\?+`)

// Run audits segmented content. The quote list supplies defect densities.
func Run(c *segment.Content, quotes []defects.Quote) []RuleIssue {
	if c == nil {
		c = segment.Split("")
	}
	issues := make([]RuleIssue, 0, 8)
	add := func(sev Severity, cat Category, issue, evidence, rec string) {
		issues = append(issues, RuleIssue{Severity: sev, Category: cat, Issue: issue, Evidence: evidence, Recommendation: rec})
	}

	if !c.Populated(segment.SectionSummary) {
		add(SeverityHigh, CategoryStructure, "Missing professional summary", "",
			"Open with a two to three line summary of your role, domain and strongest result.")
	}
	if !c.Populated(segment.SectionSkills) {
		add(SeverityHigh, CategoryStructure, "Missing skills section", "",
			"Add a skills section listing tools and technologies by name.")
	}
	if !c.Populated(segment.SectionEducation) {
		add(SeverityHigh, CategoryStructure, "Missing education section", "",
			"Add an education section, even if it holds a single line.")
	}
	if n := len(c.Sections[segment.SectionExperience]); n < 2 {
		add(SeverityHigh, CategoryStructure, "Experience section is thin",
			fmt.Sprintf("%d lines under experience", n),
			"List each role with three to five bullets.")
	}

	switch wc := c.WordCount; {
	case wc < hardMinWords || wc > hardMaxWords:
		add(SeverityHigh, CategoryFormat, fmt.Sprintf("Word count %d is far outside %d-%d", wc, softMinWords, softMaxWords), "",
			"Aim for one page of focused content.")
	case wc < softMinWords || wc > softMaxWords:
		add(SeverityMedium, CategoryFormat, fmt.Sprintf("Word count %d is outside %d-%d", wc, softMinWords, softMaxWords), "",
			"Trim or expand toward one page of focused content.")
	}

	if longest, words := longestBullet(c.Bullets); words > wordyBullet {
		sev := SeverityMedium
		if words > longBulletWords {
			sev = SeverityHigh
		}
		add(sev, CategoryFormat, fmt.Sprintf("Bullet runs to %d words", words), truncate(longest, maxEvidence),
			"Keep bullets under 30 words: action, scope, result.")
	}

	if found := placeholders(c.Raw); len(found) > 0 {
		add(SeverityHigh, CategoryATS, "Template placeholders left in the text", strings.Join(found, ", "),
			"Replace every placeholder with real content before sending.")
	}

	if n := len(lexicon.NumericToken.FindAllString(c.Raw, -1)); n < minNumericHits {
		add(SeverityHigh, CategoryImpact, fmt.Sprintf("Only %d numbers in the whole document", n), "",
			"Quantify results with percentages, amounts and counts.")
	}

	counts := defects.Count(quotes)
	if n := counts[defects.PassiveVoice]; n > 2 {
		add(SeverityMedium, CategoryVerbiage, fmt.Sprintf("%d bullets in passive voice", n), "",
			"Start bullets with the action you took.")
	}
	if n := counts[defects.ResponsibilityFraming]; n > 2 {
		add(SeverityMedium, CategoryVerbiage, fmt.Sprintf("%d bullets framed as responsibilities", n), "",
			"Describe what changed because of your work.")
	}
	if n := counts[defects.UnclearImpact]; n > 2 {
		add(SeverityMedium, CategoryImpact, fmt.Sprintf("%d bullets with unclear impact", n), "",
			"Close each bullet with its measurable outcome.")
	}
	return issues
}

// Penalty sums the severity weights of issues.
func Penalty(issues []RuleIssue) int {
	total := 0
	for _, i := range issues {
		total += i.Severity.Weight()
	}
	return total
}

func longestBullet(bullets []segment.Bullet) (string, int) {
	text, words := "", 0
	for _, b := range bullets {
		if n := len(strings.Fields(b.Text)); n > words {
			text, words = b.Text, n
		}
	}
	return text, words
}

func placeholders(text string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, m := range placeholderRe.FindAllString(text, -1) {
		if seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
		if len(out) == maxPlaceholders {
			break
		}
	}
	return out
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n-3]) + "..."
}
