package defects

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"resume-engine/internal/lexicon"
)

// rule is one entry of the ordered predicate list. The classifier evaluates
// rules in slice order and stops at the first match.
type rule struct {
	category Category
	issue    string
	match    func(text string) bool
	rewrite  func(text string) string
}

var (
	weakPhraseRes  = compileWeakPhrases()
	passiveRe      = regexp.MustCompile(`(?i)\b(was|were|is|are|been|being)\s+([a-z]+(?:ed|en))\b`)
	supervisoryRe  = lexicon.WordPattern(lexicon.SupervisoryVerbs)
	actionVerbRe   = lexicon.WordPattern(lexicon.ActionVerbs)
	impactMarkerRe = lexicon.WordPattern(lexicon.ImpactMarkers)
	vagueRe        = lexicon.WordPattern(vagueWords())

	notParticiples = map[string]bool{
		"often": true, "even": true, "open": true, "then": true, "when": true,
		"seven": true, "eleven": true, "ten": true, "need": true, "keen": true,
	}
)

var rules = []rule{
	{
		category: WeakLanguage,
		issue:    "Uses weak, duty-focused language instead of a strong action verb",
		match: func(text string) bool {
			_, _, ok := firstWeakPhrase(text)
			return ok
		},
		rewrite: rewriteWeakPhrase,
	},
	{
		category: PassiveVoice,
		issue:    "Written in passive voice, which hides who did the work",
		match: func(text string) bool {
			return passiveMatch(text) != nil
		},
		rewrite: rewritePassive,
	},
	{
		category: ResponsibilityFraming,
		issue:    "Describes a responsibility without showing the result",
		match: func(text string) bool {
			return supervisoryRe.MatchString(text) && !lexicon.HasNumber(text) && !impactMarkerRe.MatchString(text)
		},
		rewrite: appendOutcome,
	},
	{
		category: MissingMetrics,
		issue:    "States an action with no number, percentage or dollar amount",
		match: func(text string) bool {
			return actionVerbRe.MatchString(text) && !lexicon.HasNumber(text) &&
				utf8.RuneCountInString(text) > missingMetricRunes
		},
		rewrite: appendMetric,
	},
	{
		category: UnclearImpact,
		issue:    "Does not say what changed because of this work",
		match: func(text string) bool {
			return actionVerbRe.MatchString(text) && !lexicon.HasNumber(text) && !impactMarkerRe.MatchString(text)
		},
		rewrite: appendOutcome,
	},
	{
		category: GenericDescription,
		issue:    "Relies on a vague quantity instead of a concrete figure",
		match:    vagueRe.MatchString,
		rewrite:  replaceVague,
	},
}

func compileWeakPhrases() []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(lexicon.WeakPhrases))
	for i, wp := range lexicon.WeakPhrases {
		out[i] = lexicon.WordPattern([]string{wp.Phrase})
	}
	return out
}

func vagueWords() []string {
	out := make([]string, len(lexicon.VagueQuantifiers))
	for i, vq := range lexicon.VagueQuantifiers {
		out[i] = vq.Word
	}
	return out
}

func firstWeakPhrase(text string) (lexicon.WeakPhrase, []int, bool) {
	for i, re := range weakPhraseRes {
		if loc := re.FindStringIndex(text); loc != nil {
			return lexicon.WeakPhrases[i], loc, true
		}
	}
	return lexicon.WeakPhrase{}, nil, false
}

func rewriteWeakPhrase(text string) string {
	wp, loc, ok := firstWeakPhrase(text)
	if !ok {
		return text
	}
	prefix, suffix := text[:loc[0]], text[loc[1]:]
	if strings.TrimSpace(prefix) == "" {
		return wp.Replacement + suffix
	}
	return prefix + strings.ToLower(wp.Replacement) + suffix
}

func passiveMatch(text string) []int {
	for _, m := range passiveRe.FindAllStringSubmatchIndex(text, -1) {
		if !notParticiples[strings.ToLower(text[m[4]:m[5]])] {
			return m
		}
	}
	return nil
}

// rewritePassive drops the auxiliary and fronts the participle:
// "The budget was reduced by 10%" becomes "Reduced the budget by 10%".
func rewritePassive(text string) string {
	m := passiveMatch(text)
	if m == nil {
		return text
	}
	participle := strings.ToLower(text[m[4]:m[5]])
	prefix := strings.TrimSpace(text[:m[0]])
	suffix := text[m[1]:]
	if prefix == "" {
		return capitalize(participle) + suffix
	}
	return capitalize(participle) + " " + lowerFirst(prefix) + suffix
}

func appendOutcome(text string) string {
	return trimEnd(text) + lexicon.OutcomeClause
}

func appendMetric(text string) string {
	lower := strings.ToLower(text)
	for _, mc := range lexicon.MetricClauses {
		if len(mc.Keywords) == 0 {
			return trimEnd(text) + mc.Clause
		}
		for _, kw := range mc.Keywords {
			if strings.Contains(lower, kw) {
				return trimEnd(text) + mc.Clause
			}
		}
	}
	return trimEnd(text)
}

func replaceVague(text string) string {
	loc := vagueRe.FindStringIndex(text)
	if loc == nil {
		return text
	}
	word := strings.ToLower(text[loc[0]:loc[1]])
	for _, vq := range lexicon.VagueQuantifiers {
		if vq.Word == word {
			return text[:loc[0]] + vq.Placeholder + text[loc[1]:]
		}
	}
	return text
}

func trimEnd(text string) string {
	return strings.TrimRight(strings.TrimSpace(text), ".;,: ")
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	// Leave acronyms such as "QA" or "API" alone.
	if next, _ := utf8.DecodeRuneInString(s[size:]); unicode.IsUpper(next) {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
