// Package scoring implements the four capped category scorers. Every scorer
// starts at its cap and only subtracts itemized deductions, so the ledger it
// returns always reproduces the score.
package scoring

import (
	"path/filepath"
	"strings"

	"resume-engine/internal/analyses/defects"
	"resume-engine/internal/analyses/segment"
)

// Category caps. They sum to 100.
const (
	FormattingMax = 25
	KeywordsMax   = 30
	ContentMax    = 25
	ATSMax        = 20
)

// Level is the qualitative band derived from score / maxScore.
type Level string

const (
	LevelExcellent        Level = "excellent"
	LevelGood             Level = "good"
	LevelNeedsImprovement Level = "needs_improvement"
	LevelPoor             Level = "poor"
)

// Deduction is one itemized entry of a category ledger.
type Deduction struct {
	Reason string `json:"reason"`
	Points int    `json:"points"`
}

// CategoryScore is the result of one scorer.
type CategoryScore struct {
	Key        string      `json:"key"`
	Label      string      `json:"label"`
	Score      int         `json:"score"`
	MaxScore   int         `json:"maxScore"`
	Level      Level       `json:"level"`
	Issues     []string    `json:"issues"`
	Positives  []string    `json:"positives"`
	Evidence   []string    `json:"evidence"`
	Deductions []Deduction `json:"deductions"`
}

// Input is everything a scorer may look at.
type Input struct {
	Content  *segment.Content
	Quotes   []defects.Quote
	FileName string
}

// Breakdown holds the four category results.
type Breakdown struct {
	Formatting CategoryScore `json:"formatting"`
	Keywords   CategoryScore `json:"keywords"`
	Content    CategoryScore `json:"content"`
	ATS        CategoryScore `json:"atsCompatibility"`
}

// Score runs all four scorers.
func Score(in Input) Breakdown {
	if in.Content == nil {
		in.Content = segment.Split("")
	}
	counts := defects.Count(in.Quotes)
	return Breakdown{
		Formatting: formatting(in),
		Keywords:   keywords(in, counts),
		Content:    content(in, counts),
		ATS:        ats(in),
	}
}

// Categories returns the four results in fixed reporting order.
func (b Breakdown) Categories() []CategoryScore {
	return []CategoryScore{b.Formatting, b.Keywords, b.Content, b.ATS}
}

// Total sums the category scores.
func (b Breakdown) Total() int {
	total := 0
	for _, c := range b.Categories() {
		total += c.Score
	}
	return total
}

// LevelFor maps a score against its cap onto the 85/70/55 bands.
func LevelFor(score, maxScore int) Level {
	if maxScore <= 0 {
		return LevelPoor
	}
	ratio := float64(score) / float64(maxScore)
	switch {
	case ratio >= 0.85:
		return LevelExcellent
	case ratio >= 0.70:
		return LevelGood
	case ratio >= 0.55:
		return LevelNeedsImprovement
	default:
		return LevelPoor
	}
}

var allowedExtensions = map[string]bool{"pdf": true, "docx": true, "doc": true, "txt": true}

// Extension returns the lowercase file extension without the dot.
func Extension(fileName string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(strings.TrimSpace(fileName)), "."))
}

// AllowedExtension reports whether fileName carries a standard résumé format.
func AllowedExtension(fileName string) bool {
	return allowedExtensions[Extension(fileName)]
}

type ledger struct {
	cs CategoryScore
}

func newLedger(key, label string, maxScore int) *ledger {
	return &ledger{cs: CategoryScore{
		Key:        key,
		Label:      label,
		MaxScore:   maxScore,
		Issues:     []string{},
		Positives:  []string{},
		Evidence:   []string{},
		Deductions: []Deduction{},
	}}
}

func (l *ledger) deduct(points int, reason string) {
	if points <= 0 {
		return
	}
	l.cs.Deductions = append(l.cs.Deductions, Deduction{Reason: reason, Points: points})
	l.cs.Issues = append(l.cs.Issues, reason)
}

func (l *ledger) positive(s string) {
	l.cs.Positives = append(l.cs.Positives, s)
}

func (l *ledger) evidence(s string) {
	l.cs.Evidence = append(l.cs.Evidence, s)
}

func (l *ledger) result() CategoryScore {
	total := 0
	for _, d := range l.cs.Deductions {
		total += d.Points
	}
	l.cs.Score = l.cs.MaxScore - total
	if l.cs.Score < 0 {
		l.cs.Score = 0
	}
	l.cs.Level = LevelFor(l.cs.Score, l.cs.MaxScore)
	return l.cs
}

// tier returns the points of the first threshold count exceeds.
func tier(count int, steps ...[2]int) int {
	for _, s := range steps {
		if count > s[0] {
			return s[1]
		}
	}
	return 0
}
