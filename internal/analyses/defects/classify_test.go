package defects

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-engine/internal/analyses/segment"
)

func classifyText(text string) []Quote {
	return Classify(segment.Split(text))
}

func TestClassifyCategories(t *testing.T) {
	tests := []struct {
		name       string
		bullet     string
		category   Category
		suggestion string
	}{
		{
			name:       "weak language",
			bullet:     "Responsible for customer support escalations",
			category:   WeakLanguage,
			suggestion: "Managed customer support escalations",
		},
		{
			name:       "passive voice",
			bullet:     "Reports were generated by the analytics team",
			category:   PassiveVoice,
			suggestion: "Generated reports by the analytics team",
		},
		{
			name:       "responsibility framing",
			bullet:     "Supervised warehouse staff across two shifts",
			category:   ResponsibilityFraming,
			suggestion: "Supervised warehouse staff across two shifts, resulting in [X]% improvement in [key outcome]",
		},
		{
			name:       "missing metrics",
			bullet:     "Designed a new onboarding workflow for clients",
			category:   MissingMetrics,
			suggestion: "Designed a new onboarding workflow for clients, improving efficiency by [X]%",
		},
		{
			name:       "unclear impact",
			bullet:     "Led onboarding",
			category:   UnclearImpact,
			suggestion: "Led onboarding, resulting in [X]% improvement in [key outcome]",
		},
		{
			name:       "generic description",
			bullet:     "Served various clients in retail",
			category:   GenericDescription,
			suggestion: "Served [5+] clients in retail",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quotes := classifyText("Experience\n• " + tt.bullet)
			require.Len(t, quotes, 1)
			q := quotes[0]
			assert.Equal(t, tt.category, q.Category)
			assert.Equal(t, tt.bullet, q.OriginalText)
			assert.Equal(t, tt.suggestion, q.SuggestedImprovement)
			assert.Equal(t, "experience bullet", q.Context)
			assert.NotEmpty(t, q.Issue)
		})
	}
}

func TestClassifyMetricClauseByTopic(t *testing.T) {
	quotes := classifyText("• Analyzed shipment data for the regional office")
	require.Len(t, quotes, 1)
	assert.Equal(t, MissingMetrics, quotes[0].Category)
	assert.Equal(t, "Analyzed shipment data for the regional office with [X]% accuracy", quotes[0].SuggestedImprovement)
	assert.Equal(t, "bullet point", quotes[0].Context)
}

func TestClassifySkipsQuantifiedBullets(t *testing.T) {
	quotes := classifyText("• Increased revenue by 25% through pricing")
	assert.Empty(t, quotes)
}

func TestClassifySkipsShortCandidates(t *testing.T) {
	quotes := classifyText("• Led team")
	assert.Empty(t, quotes)
}

func TestClassifyDeduplicates(t *testing.T) {
	text := "• Responsible for customer support\n• RESPONSIBLE  FOR customer   support"
	quotes := classifyText(text)
	assert.Len(t, quotes, 1)
}

func TestClassifyCapsQuotes(t *testing.T) {
	var b strings.Builder
	for i := 0; i < MaxQuotes+10; i++ {
		fmt.Fprintf(&b, "• Responsible for vendor account %c%c\n", 'a'+rune(i%26), 'a'+rune(i/26))
	}
	quotes := classifyText(b.String())
	assert.Len(t, quotes, MaxQuotes)
}

func TestClassifyFallsBackToSentences(t *testing.T) {
	quotes := classifyText("Responsible for the front desk operations. Increased sales by 10% in one quarter.")
	require.Len(t, quotes, 1)
	assert.Equal(t, WeakLanguage, quotes[0].Category)
	assert.Equal(t, "sentence", quotes[0].Context)
}

func TestClassifySplitsJoinedClauses(t *testing.T) {
	quotes := classifyText("• Built dashboards; Responsible for vendor onboarding")
	require.Len(t, quotes, 3)
	assert.Equal(t, WeakLanguage, quotes[0].Category)
	assert.Equal(t, UnclearImpact, quotes[1].Category)
	assert.Equal(t, "Built dashboards", quotes[1].OriginalText)
	assert.Equal(t, WeakLanguage, quotes[2].Category)
	assert.Equal(t, "Responsible for vendor onboarding", quotes[2].OriginalText)
}

func TestClassifyTruncatesLongQuotes(t *testing.T) {
	quotes := classifyText("• Responsible for " + strings.Repeat("inventory ", 30))
	require.NotEmpty(t, quotes)
	assert.LessOrEqual(t, utf8.RuneCountInString(quotes[0].OriginalText), MaxQuoteRunes)
	assert.True(t, strings.HasSuffix(quotes[0].OriginalText, "..."))
}

func TestClassifyIgnoresFalseParticiples(t *testing.T) {
	assert.Nil(t, passiveMatch("The office is often busy on weekends"))
	assert.NotNil(t, passiveMatch("The budget was reduced by the board"))
}

func TestRewriteWeakPhraseMidSentence(t *testing.T) {
	got := rewriteWeakPhrase("Was responsible for payroll")
	assert.Equal(t, "Was managed payroll", got)
}

func TestCount(t *testing.T) {
	counts := Count([]Quote{{Category: WeakLanguage}, {Category: WeakLanguage}, {Category: PassiveVoice}})
	assert.Equal(t, 2, counts[WeakLanguage])
	assert.Equal(t, 1, counts[PassiveVoice])
	assert.Zero(t, counts[GenericDescription])
}
