package matching

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"resume-engine/internal/matching/extract"
	"resume-engine/internal/matching/fuzzy"
)

const (
	maxSkillGaps       = 3
	maxSkillStrengths  = 5
	maxTechStrengths   = 3
	experienceRatioCap = 1.5
)

// CalculateMatchScore scores resume tokens against job requirements. It uses
// the default synonym table.
func CalculateMatchScore(resume ResumeTokens, job JobRequirements) MatchResult {
	return NewComposer(fuzzy.Default).Compose(resume, job)
}

// Composer combines the per-dimension sub-scores.
type Composer struct {
	m *fuzzy.Matcher
}

// NewComposer returns a Composer using m for token equivalence.
func NewComposer(m *fuzzy.Matcher) *Composer {
	return &Composer{m: m}
}

// Compose builds the match report. The result shares no memory with its
// inputs.
func (c *Composer) Compose(resume ResumeTokens, job JobRequirements) MatchResult {
	text := fuzzy.Normalize(resume.RawText)

	skills, ranked := c.skills(resume.Skills, text, job.HardSkills)
	exp := c.experience(resume, text, job.ExperienceKeywords)
	edu := education(resume.EducationLevels, job.EducationRequirements)
	tech := c.ratio(resume.Skills, text, job.Technologies)
	soft := c.ratio(resume.Skills, text, job.SoftSkills)

	score := int(math.Round(
		WeightSkills*float64(skills.Score) +
			WeightExperience*float64(exp.Score) +
			WeightEducation*float64(edu.Score) +
			WeightTechnologies*float64(tech.Score) +
			WeightSoftSkills*float64(soft.Score)))

	return MatchResult{
		MatchScore:     score,
		Skills:         skills,
		Experience:     exp,
		Education:      edu,
		Technologies:   tech,
		SoftSkills:     soft,
		Gaps:           gaps(ranked, skills, exp, edu),
		Strengths:      strengths(ranked, skills, exp, edu, tech),
		Recommendation: recommendation(score),
	}
}

// has reports whether the résumé carries token either as an extracted skill
// or in its raw text.
func (c *Composer) has(resumeSkills []string, text, token string) bool {
	if _, ok := c.m.MatchAny(token, resumeSkills); ok {
		return true
	}
	return c.m.InText(token, text)
}

// skills weights each requirement by importance. It also returns the
// requirements ordered by importance for gap and strength reporting.
func (c *Composer) skills(resumeSkills []string, text string, reqs []SkillRequirement) (SkillMatch, []SkillRequirement) {
	out := SkillMatch{Matched: []string{}, Missing: []string{}}
	ranked := append([]SkillRequirement(nil), reqs...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Importance.Weight() > ranked[j].Importance.Weight()
	})

	total, matched := 0, 0
	for _, r := range reqs {
		w := r.Importance.Weight()
		total += w
		if c.has(resumeSkills, text, r.Skill) {
			matched += w
			out.Matched = append(out.Matched, r.Skill)
		} else {
			out.Missing = append(out.Missing, r.Skill)
		}
	}
	if total > 0 {
		out.Score = percent(float64(matched) / float64(total))
	}
	return out, ranked
}

// ratio is the unweighted matched share of tokens, 100 when there are none.
func (c *Composer) ratio(resumeSkills []string, text string, tokens []string) SkillMatch {
	out := SkillMatch{Score: 100, Matched: []string{}, Missing: []string{}}
	if len(tokens) == 0 {
		return out
	}
	for _, t := range tokens {
		if c.has(resumeSkills, text, t) {
			out.Matched = append(out.Matched, t)
		} else {
			out.Missing = append(out.Missing, t)
		}
	}
	out.Score = percent(float64(len(out.Matched)) / float64(len(tokens)))
	return out
}

func (c *Composer) experience(resume ResumeTokens, text string, keywords []string) ExperienceMatch {
	out := ExperienceMatch{
		Score:         100,
		ResumeYears:   max(resume.ExperienceYears, 0),
		RequiredYears: extract.RequiredYears(keywords),
		Relevant:      []string{},
		Missing:       []string{},
	}
	if out.RequiredYears > 0 {
		r := math.Min(float64(out.ResumeYears)/float64(out.RequiredYears), experienceRatioCap)
		out.Score = min(max(percent(r), 0), 100)
	}
	for _, k := range keywords {
		topic := extract.Topic(k)
		if topic == "" {
			continue
		}
		if c.has(resume.Skills, text, topic) {
			out.Relevant = append(out.Relevant, topic)
		} else {
			out.Missing = append(out.Missing, topic)
		}
	}
	return out
}

func education(resumeLevels []extract.Level, reqs []string) EducationMatch {
	var required []extract.Level
	seen := make(map[extract.Level]bool)
	for _, r := range reqs {
		for _, l := range extract.EducationLevels(r) {
			if !seen[l] {
				seen[l] = true
				required = append(required, l)
			}
		}
	}
	out := EducationMatch{
		ResumeLevels:   append([]extract.Level{}, resumeLevels...),
		RequiredLevels: append([]extract.Level{}, required...),
	}

	need, have := extract.MaxRank(required), extract.MaxRank(resumeLevels)
	switch {
	case need == 0:
		out.Score, out.Matched = 100, true
		out.Explanation = "No education requirement"
	case have >= need:
		out.Score, out.Matched = 100, true
		out.Explanation = fmt.Sprintf("Meets the %s requirement", levelName(required, need))
	case have == 0:
		out.Explanation = fmt.Sprintf("Requires %s; no degree found", levelName(required, need))
	default:
		out.Score = percent(float64(have) / float64(need))
		out.Explanation = fmt.Sprintf("Requires %s; highest found is %s", levelName(required, need), levelName(resumeLevels, have))
	}
	return out
}

func levelName(levels []extract.Level, rank int) string {
	for _, l := range levels {
		if l.Rank() == rank {
			return strings.ReplaceAll(string(l), "_", " ")
		}
	}
	return ""
}

func gaps(ranked []SkillRequirement, skills SkillMatch, exp ExperienceMatch, edu EducationMatch) []string {
	out := []string{}
	missing := toSet(skills.Missing)
	for _, r := range ranked {
		if len(out) == maxSkillGaps {
			break
		}
		if missing[r.Skill] {
			out = append(out, fmt.Sprintf("Missing %s priority skill: %s", importanceName(r.Importance), r.Skill))
			delete(missing, r.Skill)
		}
	}
	if exp.RequiredYears > 0 && exp.ResumeYears < exp.RequiredYears {
		out = append(out, fmt.Sprintf("Needs %d years of experience; résumé shows %d", exp.RequiredYears, exp.ResumeYears))
	}
	if !edu.Matched {
		out = append(out, "Education below requirement: "+edu.Explanation)
	}
	return out
}

func strengths(ranked []SkillRequirement, skills SkillMatch, exp ExperienceMatch, edu EducationMatch, tech SkillMatch) []string {
	out := []string{}
	matched := toSet(skills.Matched)
	n := 0
	for _, r := range ranked {
		if n == maxSkillStrengths {
			break
		}
		if matched[r.Skill] {
			out = append(out, "Has required skill: "+r.Skill)
			delete(matched, r.Skill)
			n++
		}
	}
	if exp.RequiredYears > 0 && exp.ResumeYears >= exp.RequiredYears {
		out = append(out, fmt.Sprintf("Meets the %d year experience requirement with %d years", exp.RequiredYears, exp.ResumeYears))
	}
	if edu.Matched && len(edu.RequiredLevels) > 0 {
		out = append(out, edu.Explanation)
	}
	for i, t := range tech.Matched {
		if i == maxTechStrengths {
			break
		}
		out = append(out, "Experienced with "+t)
	}
	return out
}

func recommendation(score int) string {
	switch {
	case score >= 80:
		return "Strong match: apply with confidence and lead with your matched skills."
	case score >= 60:
		return "Good match: tailor your résumé to close the listed gaps before applying."
	case score >= 40:
		return "Partial match: address the key gaps or highlight transferable experience."
	default:
		return "Weak match: consider roles closer to your current experience."
	}
}

func importanceName(i Importance) string {
	if i == "" {
		return string(ImportanceMedium)
	}
	return string(i)
}

func percent(r float64) int {
	return int(math.Round(100 * r))
}

func toSet(items []string) map[string]bool {
	out := make(map[string]bool, len(items))
	for _, s := range items {
		out[s] = true
	}
	return out
}
