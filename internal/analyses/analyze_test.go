package analyses

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-engine/internal/analyses/defects"
	"resume-engine/internal/analyses/scoring"
)

const strongResume = `Jane Doe
jane.doe@example.com | (555) 123-4567

Professional Summary
Operations analyst with eight years of experience in logistics, customs brokerage and trade compliance across North American freight lanes.

Work Experience
Senior Analyst, Acme Freight
• Increased revenue by 25% through new pricing strategy
• Reduced customs clearance time by 40% by automating HTS classification
• Delivered $1.2M in annual savings by renegotiating carrier contracts
• Led a team of 6 analysts across 3 regional offices

Education
B.S. Supply Chain Management, State University

Skills
Excel, SQL, CargoWise, Tableau, Python, trade compliance, customs brokerage`

const weakResume = `John Smith

Summary
Customer service professional.

Experience
• Responsible for customer support
• Helped with onboarding new staff
• Worked on various projects

Education
High school diploma

Skills
Communication`

const passiveResume = `Experience
• Reports were generated by the analytics team
• Invoices were processed by the billing group
• Shipments were tracked through the carrier portal`

var fixtures = map[string]string{
	"strong":  strongResume,
	"weak":    weakResume,
	"passive": passiveResume,
	"empty":   "",
}

func TestAnalyzeDeterminism(t *testing.T) {
	for name, text := range fixtures {
		t.Run(name, func(t *testing.T) {
			first := Analyze(text, "resume.pdf")
			second := Analyze(text, "resume.pdf")
			assert.Equal(t, first, second)
			assert.Equal(t, first.Consistency.Hash, second.Consistency.Hash)
			assert.Equal(t, ScoringVersion, first.Consistency.ScoringVersion)
		})
	}
	assert.NotEqual(t, Analyze(strongResume, "a.pdf").Consistency.Hash, Analyze(weakResume, "a.pdf").Consistency.Hash)
}

func TestAnalyzeScoreBounds(t *testing.T) {
	for name, text := range fixtures {
		t.Run(name, func(t *testing.T) {
			r := Analyze(text, "resume.txt")
			assert.GreaterOrEqual(t, r.OverallScore, 0)
			assert.LessOrEqual(t, r.OverallScore, 100)

			maxTotal := 0
			for _, c := range r.Categories.Categories() {
				assert.GreaterOrEqual(t, c.Score, 0, c.Key)
				assert.LessOrEqual(t, c.Score, c.MaxScore, c.Key)
				maxTotal += c.MaxScore

				deducted := 0
				for _, d := range c.Deductions {
					deducted += d.Points
				}
				want := c.MaxScore - deducted
				if want < 0 {
					want = 0
				}
				assert.Equal(t, want, c.Score, "ledger for %s", c.Key)
			}
			assert.Equal(t, 100, maxTotal)
		})
	}
}

func TestAnalyzeQuotesAreUnique(t *testing.T) {
	text := weakResume + "\n• Responsible for customer support\n• responsible for customer support"
	r := Analyze(text, "cv.docx")

	seen := make(map[string]bool)
	for _, q := range r.ResumeQuotes {
		key := string(q.Category) + "|" + strings.ToLower(strings.Join(strings.Fields(q.OriginalText), " "))
		assert.False(t, seen[key], "duplicate quote %q", key)
		seen[key] = true
	}
}

func TestAnalyzeWeakLanguageScenario(t *testing.T) {
	r := Analyze(weakResume, "cv.docx")

	weak := defects.Count(r.ResumeQuotes)[defects.WeakLanguage]
	require.GreaterOrEqual(t, weak, 1)

	want := 3
	switch {
	case weak > 5:
		want = 12
	case weak > 2:
		want = 6
	}
	var found bool
	for _, d := range r.Categories.Keywords.Deductions {
		if strings.Contains(d.Reason, "weak phrases") {
			found = true
			assert.Equal(t, want, d.Points)
		}
	}
	assert.True(t, found, "expected a weak-language deduction in keywords")
	assert.Contains(t, []scoring.Level{scoring.LevelPoor, scoring.LevelNeedsImprovement}, r.OverallLevel)
}

func TestAnalyzeAchievementScenario(t *testing.T) {
	const achievement = "Increased revenue by 25% through new pricing strategy"
	r := Analyze(strongResume, "jane.pdf")

	assert.Contains(t, r.PositivePoints, "Quantified achievement: "+achievement)
	for _, q := range r.ResumeQuotes {
		assert.NotEqual(t, achievement, q.OriginalText)
	}
}

// The passive fixture is penalized twice on purpose: once in the Keywords
// ledger and once by the audit issue. Both must be visible in the result.
func TestAnalyzeTwoLayerPenalty(t *testing.T) {
	r := Analyze(passiveResume, "cv.pdf")

	require.Equal(t, 3, defects.Count(r.ResumeQuotes)[defects.PassiveVoice])

	var keywordHit bool
	for _, d := range r.Categories.Keywords.Deductions {
		if strings.Contains(d.Reason, "passive voice") {
			keywordHit = true
			assert.Equal(t, 4, d.Points)
		}
	}
	assert.True(t, keywordHit, "expected passive deduction in keywords")

	var auditHit bool
	for _, i := range r.RuleIssues {
		if strings.Contains(i.Issue, "passive voice") {
			auditHit = true
			assert.Equal(t, 2, i.Severity.Weight())
		}
	}
	assert.True(t, auditHit, "expected passive audit issue")

	want := r.CategoryTotal - r.RulePenalty
	if want < 0 {
		want = 0
	}
	assert.Equal(t, want, r.OverallScore)
}

func TestAnalyzeStrongResume(t *testing.T) {
	r := Analyze(strongResume, "jane.pdf")
	assert.Greater(t, r.OverallScore, Analyze(weakResume, "jane.pdf").OverallScore)
	assert.NotEmpty(t, r.PositivePoints)
	assert.Len(t, r.Insights, 4)
}

func TestAnalyzeEmptyCollectionsAreNotNil(t *testing.T) {
	r := Analyze(strongResume, "jane.pdf")
	assert.NotNil(t, r.ResumeQuotes)
	assert.NotNil(t, r.Recommendations)
	assert.NotNil(t, r.RuleIssues)
	assert.NotNil(t, r.HRPerspective.ConcerningElements)
}

func TestScoreExplanationIsValid(t *testing.T) {
	for name, text := range fixtures {
		t.Run(name, func(t *testing.T) {
			r := Analyze(text, "x.pdf")
			assert.NoError(t, validateScoreExplanation(&r.ScoreExplanation))
		})
	}
}

func TestValidateScoreExplanationRejectsBadWeights(t *testing.T) {
	e := buildScoreExplanation(Analyze(strongResume, "x.pdf").Categories)
	e.Components[0].Weight = 10
	assert.Error(t, validateScoreExplanation(&e))
	assert.Error(t, validateScoreExplanation(nil))
}

func TestHRPerspectiveTiers(t *testing.T) {
	tests := []struct {
		score int
		tier  string
	}{
		{100, "strong"},
		{85, "strong"},
		{84, "competitive"},
		{70, "competitive"},
		{50, "borderline"},
		{49, "needs_work"},
		{0, "needs_work"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.tier, buildHRPerspective(tt.score, nil).Tier, "score %d", tt.score)
	}
}

func TestHRPerspectiveCaps(t *testing.T) {
	quotes := []DefectQuote{
		{Issue: "a", OriginalText: "one"},
		{Issue: "a", OriginalText: "two"},
		{Issue: "b", OriginalText: "three"},
		{Issue: "c", OriginalText: "four"},
		{Issue: "d", OriginalText: "five"},
	}
	hr := buildHRPerspective(60, quotes)
	assert.Equal(t, []string{"a", "b", "c"}, hr.ConcerningElements)
	assert.Equal(t, []string{"one", "two"}, hr.HighlightedExcerpts)
}

func TestInsightsOrder(t *testing.T) {
	r := Analyze(weakResume, "cv.pdf")
	require.Len(t, r.Insights, 4)
	kinds := []string{r.Insights[0].Kind, r.Insights[1].Kind, r.Insights[2].Kind, r.Insights[3].Kind}
	assert.Equal(t, []string{"strength", "weakness", "achievements", "defects"}, kinds)
}

func TestValidateInput(t *testing.T) {
	limits := Limits{MinChars: 10, MaxBytes: 100}
	tests := []struct {
		name     string
		text     string
		fileName string
		want     string
		err      error
	}{
		{name: "ok", text: "long enough text", fileName: " cv.pdf ", want: "cv.pdf"},
		{name: "no file name", text: "long enough text"},
		{name: "empty", text: "   ", err: ErrEmptyText},
		{name: "short", text: "short", err: ErrTextTooShort},
		{name: "large", text: strings.Repeat("a", 101), err: ErrTextTooLarge},
		{name: "traversal", text: "long enough text", fileName: "../cv.pdf", err: ErrInvalidFileName},
		{name: "double dot in name", text: "long enough text", fileName: "resume..v2.pdf", want: "resume..v2.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateInput(tt.text, tt.fileName, limits)
			if tt.err != nil {
				assert.True(t, errors.Is(err, tt.err), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestServiceRun(t *testing.T) {
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc := &Service{Limits: DefaultLimits, Now: func() time.Time { return fixed }}

	env, err := svc.Run(context.Background(), "req-1", strongResume, "jane.pdf")
	require.NoError(t, err)
	assert.Equal(t, "req-1", env.RequestID)
	assert.Equal(t, fixed, env.AnalyzedAt)
	assert.Equal(t, Analyze(strongResume, "jane.pdf"), env.Result)

	_, err = svc.Run(context.Background(), "req-2", "too short", "")
	assert.ErrorIs(t, err, ErrTextTooShort)
}
