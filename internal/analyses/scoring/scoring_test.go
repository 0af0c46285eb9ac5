package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-engine/internal/analyses/defects"
	"resume-engine/internal/analyses/segment"
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

func analyze(text, fileName string) Breakdown {
	c := segment.Split(text)
	return Score(Input{Content: c, Quotes: defects.Classify(c), FileName: fileName})
}

func TestCapsSumToHundred(t *testing.T) {
	assert.Equal(t, 100, FormattingMax+KeywordsMax+ContentMax+ATSMax)
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		score, max int
		want       Level
	}{
		{25, 25, LevelExcellent},
		{21, 25, LevelGood},
		{22, 25, LevelExcellent},
		{18, 25, LevelGood},
		{14, 25, LevelNeedsImprovement},
		{13, 25, LevelPoor},
		{0, 0, LevelPoor},
		{85, 100, LevelExcellent},
		{55, 100, LevelNeedsImprovement},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelFor(tt.score, tt.max), "%d/%d", tt.score, tt.max)
	}
}

func TestTier(t *testing.T) {
	steps := [][2]int{{5, 12}, {2, 6}, {0, 3}}
	assert.Equal(t, 12, tier(6, steps...))
	assert.Equal(t, 6, tier(3, steps...))
	assert.Equal(t, 3, tier(1, steps...))
	assert.Equal(t, 0, tier(0, steps...))
}

func TestShortTextPenalty(t *testing.T) {
	assert.Equal(t, 6, shortTextPenalty(0))
	assert.Equal(t, 3, shortTextPenalty(125))
	assert.Equal(t, 1, shortTextPenalty(249))
	assert.Equal(t, 0, shortTextPenalty(250))
}

func TestExtension(t *testing.T) {
	assert.True(t, AllowedExtension("Resume.PDF"))
	assert.True(t, AllowedExtension("cv.docx"))
	assert.False(t, AllowedExtension("cv"))
	assert.False(t, AllowedExtension("scan.png"))
	assert.Equal(t, "png", Extension(" scan.PNG "))
}

func TestFormattingEmptyInputFloorsAtZero(t *testing.T) {
	b := analyze("", "scan.png")
	got := b.Formatting

	assert.Equal(t, 0, got.Score)
	assert.Equal(t, LevelPoor, got.Level)
	total := 0
	for _, d := range got.Deductions {
		total += d.Points
	}
	assert.Equal(t, 26, total)
	assert.Len(t, got.Issues, len(got.Deductions))
}

func TestDeductionLedgerReproducesScore(t *testing.T) {
	inputs := []struct {
		name, text, file string
	}{
		{"strong", strongResume, "jane.pdf"},
		{"empty", "", ""},
		{"weak", "Responsible for customer support. Worked on various projects. Helped with onboarding.", "cv.txt"},
	}
	for _, in := range inputs {
		t.Run(in.name, func(t *testing.T) {
			for _, cs := range analyze(in.text, in.file).Categories() {
				total := 0
				for _, d := range cs.Deductions {
					assert.Positive(t, d.Points)
					total += d.Points
				}
				want := cs.MaxScore - total
				if want < 0 {
					want = 0
				}
				assert.Equal(t, want, cs.Score, cs.Key)
				assert.GreaterOrEqual(t, cs.Score, 0)
				assert.LessOrEqual(t, cs.Score, cs.MaxScore)
			}
		})
	}
}

func TestKeywordsWeakLanguageTiers(t *testing.T) {
	c := segment.Split(strongResume)
	quotes := make([]defects.Quote, 6)
	for i := range quotes {
		quotes[i].Category = defects.WeakLanguage
	}
	got := Score(Input{Content: c, Quotes: quotes, FileName: "a.pdf"}).Keywords
	require.NotEmpty(t, got.Deductions)
	assert.Equal(t, 12, got.Deductions[0].Points)

	got = Score(Input{Content: c, Quotes: quotes[:1], FileName: "a.pdf"}).Keywords
	require.NotEmpty(t, got.Deductions)
	assert.Equal(t, 3, got.Deductions[0].Points)
}

func TestContentAchievementsArePositive(t *testing.T) {
	b := analyze(strongResume, "jane.pdf")
	assert.Contains(t, b.Content.Positives, "Quantified achievement: Increased revenue by 25% through new pricing strategy")
	assert.Contains(t, b.Content.Evidence, "Increased revenue by 25% through new pricing strategy")
}

func TestStrongResumeScoresWell(t *testing.T) {
	b := analyze(strongResume, "jane.pdf")
	assert.Equal(t, ATSMax, b.ATS.Score)
	assert.Empty(t, b.ATS.Deductions)
	assert.Greater(t, b.Total(), 60)
}

func TestATSPenalizesMissingHeadersAndExtension(t *testing.T) {
	got := analyze("Just some text about my work", "resume.pages").ATS
	assert.Equal(t, ATSMax-6-5-4, got.Score)
}

func TestSpecialRunes(t *testing.T) {
	assert.Equal(t, 3, specialRunes("★ Go ★ SQL ★"))
	assert.Zero(t, specialRunes("Hello, world! (a-b) • $5 & 10%"))
	assert.Equal(t, 2, specialRunes("a | b ~ c"))
}
