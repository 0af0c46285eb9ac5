// Package analyses turns plain résumé text into a graded, evidence-backed
// quality breakdown. Analyze is pure: the same text and file name always
// produce the same result.
package analyses

import (
	"resume-engine/internal/analyses/audit"
	"resume-engine/internal/analyses/defects"
	"resume-engine/internal/analyses/recommendations"
	"resume-engine/internal/analyses/scoring"
	"resume-engine/internal/analyses/segment"
	"resume-engine/internal/lexicon"
	"resume-engine/internal/shared/util"
)

// Analyze scores text. fileName only feeds the file-extension signal.
//
// Category deductions and the rule penalty can both react to the same
// signal (passive voice lowers Keywords and may add an audit issue). The
// order is fixed: each category floors at zero, the categories are summed,
// the rule penalty is subtracted, and the result floors at zero again.
func Analyze(text, fileName string) AnalysisResult {
	content := segment.Split(text)
	quotes := defects.Classify(content)
	breakdown := scoring.Score(scoring.Input{Content: content, Quotes: quotes, FileName: fileName})
	issues := audit.Run(content, quotes)

	total := breakdown.Total()
	penalty := audit.Penalty(issues)
	overall := total - penalty
	if overall < 0 {
		overall = 0
	}

	positives := []string{}
	for _, c := range breakdown.Categories() {
		positives = append(positives, c.Positives...)
	}
	if quotes == nil {
		quotes = []DefectQuote{}
	}

	return AnalysisResult{
		OverallScore:     overall,
		OverallLevel:     scoring.LevelFor(overall, 100),
		CategoryTotal:    total,
		RulePenalty:      penalty,
		Categories:       breakdown,
		PositivePoints:   positives,
		Recommendations:  normalizeRecommendations(recommendations.GenerateRecommendations(recommendations.Input{Quotes: quotes})),
		Insights:         buildInsights(breakdown, len(content.Achievements), quotes),
		HRPerspective:    buildHRPerspective(overall, quotes),
		ResumeQuotes:     quotes,
		RuleIssues:       issues,
		ScoreExplanation: buildScoreExplanation(breakdown),
		Consistency: Consistency{
			Hash:           util.ContentHash(text, ScoringVersion),
			ScoringVersion: ScoringVersion,
			LexiconVersion: lexicon.Version,
		},
	}
}
