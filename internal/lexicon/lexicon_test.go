package lexicon

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordPattern(t *testing.T) {
	re := WordPattern([]string{"worked on", "work", "efficien*"})

	assert.Equal(t, "Worked  on", re.FindString("Worked  on the billing system"))
	assert.True(t, re.MatchString("improved EFFICIENCY"))
	assert.False(t, re.MatchString("workflow redesign"))
	assert.False(t, re.MatchString("coworker"))
}

func TestStemPattern(t *testing.T) {
	re := StemPattern(ImpactVerbStems)
	assert.True(t, re.MatchString("Increased revenue"))
	assert.True(t, re.MatchString("savings of $2M"))
	assert.False(t, re.MatchString("unsaved drafts"))
}

func TestHasNumber(t *testing.T) {
	for _, s := range []string{"by 25%", "$1.2M in savings", "team of 6", "€40k"} {
		assert.True(t, HasNumber(s), s)
	}
	assert.False(t, HasNumber("no digits at all"))
}

func TestContactPatterns(t *testing.T) {
	assert.True(t, Email.MatchString("reach me at jane.doe@example.com"))
	assert.True(t, Phone.MatchString("(555) 123-4567"))
	assert.True(t, Phone.MatchString("+1 555.123.4567"))
	assert.False(t, Phone.MatchString("2019 - 2024"))
}

func TestFindSkills(t *testing.T) {
	got := FindSkills("Expressed interest in Go, Node.js and MS Excel; R programming and C++ too")
	assert.Equal(t, []string{"go", "c++", "r", "node", "node.js", "excel"}, got)

	assert.Empty(t, FindSkills("expressed, golfing, javanese"))
	assert.Equal(t, []string{"javascript"}, FindSkills("JavaScript JAVASCRIPT"))
}

func TestFindSkillsAmbiguousTerms(t *testing.T) {
	assert.Empty(t, FindSkills("Led Go-to-market planning and R&D budgets; ready to go"))
	assert.Empty(t, FindSkills("Go to market in two quarters"))

	assert.Equal(t, []string{"go"}, FindSkills("Built backend services in Go and deployed them"))
	assert.Equal(t, []string{"go", "golang"}, FindSkills("Languages: Go / Golang"))
	assert.Equal(t, []string{"r", "forecasting"}, FindSkills("Statistics in R, forecasting models"))
	assert.Equal(t, []string{"go"}, FindSkills("Skills\nGo"))
}

func TestTablesAreLowercaseAndNonEmpty(t *testing.T) {
	for _, cat := range SkillVocabulary {
		assert.NotEmpty(t, cat.Terms, cat.Name)
		for _, term := range cat.Terms {
			assert.Equal(t, strings.ToLower(term), term)
		}
	}
	for _, w := range WeakPhrases {
		assert.NotEmpty(t, w.Replacement, w.Phrase)
	}
	assert.Nil(t, MetricClauses[len(MetricClauses)-1].Keywords)
}
