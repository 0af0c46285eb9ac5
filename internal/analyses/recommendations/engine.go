package recommendations

import (
	"fmt"
	"strings"

	"resume-engine/internal/analyses/defects"
)

// MaxRecommendations caps the list returned by GenerateRecommendations.
const MaxRecommendations = 8

const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
)

type template struct {
	title    string
	solution string
	impact   string
}

var templates = map[defects.Category]template{
	defects.WeakLanguage: {
		title:    "Replace weak phrasing with an action verb",
		solution: "Lead with a verb that shows ownership, such as managed, built or led.",
		impact:   "Recruiters read ownership instead of a list of duties.",
	},
	defects.PassiveVoice: {
		title:    "Rewrite in active voice",
		solution: "Start with what you did, then what it affected.",
		impact:   "Makes your role in the result unambiguous.",
	},
	defects.ResponsibilityFraming: {
		title:    "Show the result, not the responsibility",
		solution: "Add what changed because you managed this work.",
		impact:   "Turns a job description into evidence of performance.",
	},
	defects.MissingMetrics: {
		title:    "Quantify this achievement",
		solution: "Add a number: a percentage, dollar amount, headcount or time saved.",
		impact:   "Numbers are the fastest signal of scale for both ATS and reviewers.",
	},
	defects.UnclearImpact: {
		title:    "State the impact",
		solution: "Close the bullet with the outcome the work produced.",
		impact:   "Connects the activity to business value.",
	},
	defects.GenericDescription: {
		title:    "Replace vague quantities",
		solution: "Swap words like various or several for the actual count.",
		impact:   "Concrete figures read as credible and specific.",
	},
}

// GenerateRecommendations maps each quote to one recommendation in
// extraction order. The list is not re-sorted and is capped at
// MaxRecommendations.
func GenerateRecommendations(input Input) []Recommendation {
	n := len(input.Quotes)
	if n > MaxRecommendations {
		n = MaxRecommendations
	}
	out := make([]Recommendation, 0, n)
	for _, q := range input.Quotes[:n] {
		out = append(out, fromQuote(q, len(out)+1))
	}
	return out
}

func fromQuote(q defects.Quote, order int) Recommendation {
	tpl, ok := templates[q.Category]
	if !ok {
		tpl = template{
			title:    "Strengthen this bullet",
			solution: "Rewrite with an action verb and a measurable result.",
			impact:   "Improves clarity for recruiters.",
		}
	}
	return Recommendation{
		ID:       fmt.Sprintf("%s_%02d", strings.ToUpper(string(q.Category)), order),
		Category: q.Category,
		Priority: priorityFor(q.Category),
		Title:    tpl.title,
		Problem:  q.Issue,
		Solution: tpl.solution,
		Impact:   tpl.impact,
		Before:   q.OriginalText,
		After:    q.SuggestedImprovement,
		Order:    order,
	}
}

func priorityFor(c defects.Category) string {
	switch c {
	case defects.WeakLanguage, defects.MissingMetrics:
		return PriorityHigh
	default:
		return PriorityMedium
	}
}
