package scoring

import (
	"fmt"
	"strings"

	"resume-engine/internal/analyses/defects"
	"resume-engine/internal/lexicon"
)

var actionVerbRe = lexicon.WordPattern(lexicon.ActionVerbs)

func keywords(in Input, counts defects.Counts) CategoryScore {
	l := newLedger("keywords", "Keywords & Verbiage", KeywordsMax)
	c := in.Content

	if n := counts[defects.WeakLanguage]; n > 0 {
		l.deduct(tier(n, [2]int{5, 12}, [2]int{2, 6}, [2]int{0, 3}),
			fmt.Sprintf("%d bullets lean on weak phrases such as \"responsible for\"", n))
	}
	if n := counts[defects.PassiveVoice]; n > 0 {
		l.deduct(tier(n, [2]int{2, 4}, [2]int{0, 2}), fmt.Sprintf("%d bullets are written in passive voice", n))
	}
	if n := counts[defects.ResponsibilityFraming]; n > 0 {
		l.deduct(tier(n, [2]int{1, 3}, [2]int{0, 2}), fmt.Sprintf("%d bullets describe duties instead of results", n))
	}
	if n := counts[defects.UnclearImpact]; n > 0 {
		l.deduct(tier(n, [2]int{1, 3}, [2]int{0, 2}), fmt.Sprintf("%d bullets do not state their impact", n))
	}

	verbs := distinctActionVerbs(c.Raw)
	switch {
	case len(verbs) < 3:
		l.deduct(8, fmt.Sprintf("Only %d distinct action verbs used", len(verbs)))
	case len(verbs) < 6:
		l.deduct(4, fmt.Sprintf("Only %d distinct action verbs used; add variety", len(verbs)))
	default:
		l.positive(fmt.Sprintf("Uses %d distinct action verbs", len(verbs)))
	}

	switch n := len(c.Achievements); {
	case n == 0:
		l.deduct(10, "No quantified achievements found")
	case n < 3:
		l.deduct(6, fmt.Sprintf("Only %d quantified achievements found", n))
	default:
		l.positive(fmt.Sprintf("%d quantified achievements", n))
	}

	if n := counts[defects.MissingMetrics]; n > 3 {
		l.deduct(4, fmt.Sprintf("%d bullets lack any metric", n))
	}

	skills := lexicon.FindSkills(c.Raw)
	if len(skills) < 3 {
		l.deduct(3, fmt.Sprintf("Only %d recognizable skill keywords", len(skills)))
	} else {
		l.positive(fmt.Sprintf("%d recognizable skill keywords", len(skills)))
		l.evidence("Skills: " + strings.Join(firstN(skills, 8), ", "))
	}
	return l.result()
}

func distinctActionVerbs(text string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, m := range actionVerbRe.FindAllString(text, -1) {
		v := strings.ToLower(m)
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
