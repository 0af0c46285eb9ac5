package scoring

import (
	"fmt"

	"resume-engine/internal/analyses/segment"
	"resume-engine/internal/lexicon"
)

const (
	minWords = 250
	maxWords = 600
)

func formatting(in Input) CategoryScore {
	l := newLedger("formatting", "Formatting", FormattingMax)
	c := in.Content

	if AllowedExtension(in.FileName) {
		l.positive(fmt.Sprintf("Submitted as a standard .%s file", Extension(in.FileName)))
	} else {
		l.deduct(5, fmt.Sprintf("File type %q is not one of pdf, docx, doc or txt", Extension(in.FileName)))
	}

	if lexicon.Email.MatchString(c.Raw) {
		l.positive("Email address is present")
	} else {
		l.deduct(4, "No email address found")
	}
	if lexicon.Phone.MatchString(c.Raw) {
		l.positive("Phone number is present")
	} else {
		l.deduct(4, "No phone number found")
	}

	switch {
	case c.WordCount < minWords:
		l.deduct(shortTextPenalty(c.WordCount), fmt.Sprintf("Résumé is short: %d words, aim for at least %d", c.WordCount, minWords))
	case c.WordCount > maxWords:
		l.deduct(3, fmt.Sprintf("Résumé is long: %d words, aim for at most %d", c.WordCount, maxWords))
	default:
		l.positive(fmt.Sprintf("Length is in range at %d words", c.WordCount))
	}

	populated := 0
	for _, s := range []string{segment.SectionExperience, segment.SectionEducation, segment.SectionSkills} {
		if c.Populated(s) {
			populated++
		}
	}
	if populated < 3 {
		l.deduct(4, fmt.Sprintf("Only %d of the experience, education and skills sections have content", populated))
	} else {
		l.positive("Experience, education and skills sections all have content")
	}

	if !c.Populated(segment.SectionSummary) {
		l.deduct(3, "Summary section is empty")
	}
	return l.result()
}

// shortTextPenalty scales the 6-point length deduction by the word deficit,
// rounding up so any deficit costs at least one point.
func shortTextPenalty(words int) int {
	deficit := minWords - words
	if deficit <= 0 {
		return 0
	}
	return (6*deficit + minWords - 1) / minWords
}
