package scoring

import (
	"fmt"
	"unicode/utf8"

	"resume-engine/internal/analyses/defects"
	"resume-engine/internal/analyses/segment"
)

const (
	minSummaryRunes    = 100
	minExperienceRunes = 200
	minSkillsRunes     = 50
)

func content(in Input, counts defects.Counts) CategoryScore {
	l := newLedger("content", "Content Quality", ContentMax)
	c := in.Content

	switch summary := c.Section(segment.SectionSummary); {
	case summary == "":
		l.deduct(5, "No professional summary")
	case utf8.RuneCountInString(summary) < minSummaryRunes:
		l.deduct(3, "Professional summary is too short")
	default:
		l.positive("Has a substantive professional summary")
	}

	achievements := len(c.Achievements)
	switch {
	case achievements == 0 && counts[defects.WeakLanguage] > 3:
		l.deduct(8, "No quantified achievements and heavy use of weak phrasing")
	case achievements < 2:
		l.deduct(5, fmt.Sprintf("Only %d quantified achievements", achievements))
	}
	for _, a := range c.Achievements {
		l.positive("Quantified achievement: " + a)
		l.evidence(a)
	}

	if n := counts[defects.ResponsibilityFraming]; n > 0 {
		l.deduct(tier(n, [2]int{1, 3}, [2]int{0, 2}), "Bullets list responsibilities instead of outcomes")
	}
	if n := counts[defects.UnclearImpact]; n > 0 {
		l.deduct(tier(n, [2]int{1, 3}, [2]int{0, 2}), "Bullets leave their impact unclear")
	}

	if utf8.RuneCountInString(c.Section(segment.SectionExperience)) < minExperienceRunes {
		l.deduct(4, "Experience section is thin")
	}
	if utf8.RuneCountInString(c.Section(segment.SectionSkills)) < minSkillsRunes {
		l.deduct(3, "Skills section is thin")
	}
	if n := counts[defects.GenericDescription]; n > 2 {
		l.deduct(3, fmt.Sprintf("%d bullets use vague quantities", n))
	}
	return l.result()
}
