package analyses

import (
	"fmt"

	"resume-engine/internal/analyses/defects"
	"resume-engine/internal/analyses/scoring"
)

// buildInsights returns the four observations in fixed order: strongest
// category, weakest category, achievement count, quote mix.
func buildInsights(b scoring.Breakdown, achievements int, quotes []DefectQuote) []Insight {
	cats := b.Categories()
	strongest, weakest := cats[0], cats[0]
	for _, c := range cats[1:] {
		if ratio(c) > ratio(strongest) {
			strongest = c
		}
		if ratio(c) < ratio(weakest) {
			weakest = c
		}
	}

	out := []Insight{
		{
			Kind:    "strength",
			Title:   "Strongest area: " + strongest.Label,
			Message: fmt.Sprintf("%s scored %d of %d.", strongest.Label, strongest.Score, strongest.MaxScore),
		},
		{
			Kind:    "weakness",
			Title:   "Biggest opportunity: " + weakest.Label,
			Message: weakestMessage(weakest),
		},
	}

	switch achievements {
	case 0:
		out = append(out, Insight{Kind: "achievements", Title: "No quantified achievements",
			Message: "None of the sentences pair a result verb with a number."})
	default:
		out = append(out, Insight{Kind: "achievements", Title: fmt.Sprintf("%d quantified achievements", achievements),
			Message: "Sentences that pair a result verb with a number carry the most weight."})
	}

	if len(quotes) == 0 {
		out = append(out, Insight{Kind: "defects", Title: "No writing defects detected",
			Message: "Every bullet checked passed the verbiage rules."})
		return out
	}
	counts := defects.Count(quotes)
	top := defects.Categories[0]
	for _, c := range defects.Categories[1:] {
		if counts[c] > counts[top] {
			top = c
		}
	}
	out = append(out, Insight{
		Kind:    "defects",
		Title:   fmt.Sprintf("Most common issue: %s", top),
		Message: fmt.Sprintf("%d of %d flagged bullets share this issue.", counts[top], len(quotes)),
	})
	return out
}

func ratio(c scoring.CategoryScore) float64 {
	if c.MaxScore == 0 {
		return 0
	}
	return float64(c.Score) / float64(c.MaxScore)
}

func weakestMessage(c scoring.CategoryScore) string {
	if len(c.Deductions) == 0 {
		return fmt.Sprintf("%s scored %d of %d with no deductions.", c.Label, c.Score, c.MaxScore)
	}
	return fmt.Sprintf("%s scored %d of %d; largest drag: %s.", c.Label, c.Score, c.MaxScore, largest(c.Deductions).Reason)
}

func largest(ds []scoring.Deduction) scoring.Deduction {
	top := ds[0]
	for _, d := range ds[1:] {
		if d.Points > top.Points {
			top = d
		}
	}
	return top
}
