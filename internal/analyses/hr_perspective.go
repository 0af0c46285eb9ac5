package analyses

const (
	maxConcerns = 3
	maxExcerpts = 2
)

type hrTier struct {
	min               int
	name              string
	firstImpression   string
	outcomeLikelihood string
	honestFeedback    string
}

// hrTiers are checked top-down; the first whose minimum the score meets wins.
var hrTiers = []hrTier{
	{
		min:               85,
		name:              "strong",
		firstImpression:   "Polished and results-driven. The value is clear within a few seconds of skimming.",
		outcomeLikelihood: "High likelihood of moving to a recruiter screen.",
		honestFeedback:    "Only fine-tuning remains. Keep tailoring keywords to each posting.",
	},
	{
		min:               70,
		name:              "competitive",
		firstImpression:   "Solid and professional, though a few bullets read like a job description.",
		outcomeLikelihood: "Good chance of a call-back when the role is a close fit.",
		honestFeedback:    "Quantify the remaining bullets and tighten weak phrasing to stand out.",
	},
	{
		min:               50,
		name:              "borderline",
		firstImpression:   "The experience is there but the impact is hard to find.",
		outcomeLikelihood: "Likely to be passed over when the applicant pool is strong.",
		honestFeedback:    "Rewrite duties as outcomes and add numbers to most bullets.",
	},
	{
		min:               0,
		name:              "needs_work",
		firstImpression:   "Reads as a list of responsibilities with little evidence of results.",
		outcomeLikelihood: "Unlikely to pass an initial screen in its current form.",
		honestFeedback:    "Restructure around standard sections and lead every bullet with a measurable result.",
	},
}

// buildHRPerspective is a pure function of the overall score and the quote
// list: the tier text is fixed, concerns and excerpts come from the quotes.
func buildHRPerspective(overall int, quotes []DefectQuote) HRPerspective {
	tier := hrTiers[len(hrTiers)-1]
	for _, t := range hrTiers {
		if overall >= t.min {
			tier = t
			break
		}
	}

	out := HRPerspective{
		Tier:                tier.name,
		FirstImpression:     tier.firstImpression,
		OutcomeLikelihood:   tier.outcomeLikelihood,
		HonestFeedback:      tier.honestFeedback,
		ConcerningElements:  []string{},
		HighlightedExcerpts: []string{},
	}
	seen := make(map[string]bool)
	for _, q := range quotes {
		if len(out.ConcerningElements) < maxConcerns && !seen[q.Issue] {
			seen[q.Issue] = true
			out.ConcerningElements = append(out.ConcerningElements, q.Issue)
		}
		if len(out.HighlightedExcerpts) < maxExcerpts {
			out.HighlightedExcerpts = append(out.HighlightedExcerpts, q.OriginalText)
		}
	}
	return out
}
