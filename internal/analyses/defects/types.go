// Package defects scans segmented résumé content and extracts quotes that
// carry a specific writing-quality defect together with a mechanical rewrite.
package defects

// Category tags the defect a quote was extracted for.
type Category string

const (
	WeakLanguage          Category = "weak_language"
	PassiveVoice          Category = "passive_voice"
	ResponsibilityFraming Category = "responsibility_framing"
	MissingMetrics        Category = "missing_metrics"
	UnclearImpact         Category = "unclear_impact"
	GenericDescription    Category = "generic_description"
)

// Categories lists every category in rule priority order.
var Categories = []Category{
	WeakLanguage, PassiveVoice, ResponsibilityFraming, MissingMetrics, UnclearImpact, GenericDescription,
}

const (
	// MaxQuotes caps the quotes returned for one document.
	MaxQuotes = 20
	// MaxQuoteRunes bounds Quote.OriginalText.
	MaxQuoteRunes = 200

	minCandidateRunes  = 12
	splitBulletRunes   = 160
	dedupeKeyRunes     = 120
	missingMetricRunes = 20
)

// Quote is one extracted span of résumé text flagged with a defect.
type Quote struct {
	OriginalText         string   `json:"originalText"`
	Context              string   `json:"context"`
	Issue                string   `json:"issue"`
	SuggestedImprovement string   `json:"suggestedImprovement"`
	Category             Category `json:"category"`
}

// Counts tallies quotes per category.
type Counts map[Category]int

// Count builds per-category counts for quotes.
func Count(quotes []Quote) Counts {
	out := make(Counts, len(Categories))
	for _, q := range quotes {
		out[q.Category]++
	}
	return out
}
