package analyses

import (
	"resume-engine/internal/analyses/audit"
	"resume-engine/internal/analyses/defects"
	"resume-engine/internal/analyses/scoring"
)

// ScoringVersion tags every result; it is part of the consistency hash so a
// rules change yields a new identifier for the same text.
const ScoringVersion = "resume-rules-3.2"

type (
	// CategoryScore is one of the four capped sub-scores.
	CategoryScore = scoring.CategoryScore
	// DefectQuote is an extracted span flagged with a writing defect.
	DefectQuote = defects.Quote
	// RuleIssue is a whole-document structural finding.
	RuleIssue = audit.RuleIssue
)

// AnalysisResult is the full, deterministic output of Analyze. It is built
// fresh per call and never mutated afterwards.
type AnalysisResult struct {
	OverallScore     int               `json:"overallScore"`
	OverallLevel     scoring.Level     `json:"overallLevel"`
	CategoryTotal    int               `json:"categoryTotal"`
	RulePenalty      int               `json:"rulePenalty"`
	Categories       scoring.Breakdown `json:"categories"`
	PositivePoints   []string          `json:"positivePoints"`
	Recommendations  []Recommendation  `json:"recommendations"`
	Insights         []Insight         `json:"insights"`
	HRPerspective    HRPerspective     `json:"hrPerspective"`
	ResumeQuotes     []DefectQuote     `json:"resumeQuotes"`
	RuleIssues       []RuleIssue       `json:"ruleIssues"`
	ScoreExplanation ScoreExplanation  `json:"scoreExplanation"`
	Consistency      Consistency       `json:"consistency"`
}

// Consistency identifies the input and the rules it was scored under.
type Consistency struct {
	Hash           string `json:"hash"`
	ScoringVersion string `json:"scoringVersion"`
	LexiconVersion string `json:"lexiconVersion"`
}

// HRPerspective is the canned reviewer-eye summary for a score tier.
type HRPerspective struct {
	Tier                string   `json:"tier"`
	FirstImpression     string   `json:"firstImpression"`
	OutcomeLikelihood   string   `json:"outcomeLikelihood"`
	HonestFeedback      string   `json:"honestFeedback"`
	ConcerningElements  []string `json:"concerningElements"`
	HighlightedExcerpts []string `json:"highlightedExcerpts"`
}

// Insight is a short observation derived from the scored result.
type Insight struct {
	Kind    string `json:"kind"`
	Title   string `json:"title"`
	Message string `json:"message"`
}
