package scoring

import (
	"fmt"
	"strings"
	"unicode"

	"resume-engine/internal/analyses/segment"
)

const maxSpecialRunes = 15

// asciiSymbols are the ASCII characters parsers commonly choke on; ordinary
// punctuation is not counted.
const asciiSymbols = "|~^{}<>\\`=_"

func ats(in Input) CategoryScore {
	l := newLedger("atsCompatibility", "ATS Compatibility", ATSMax)
	c := in.Content

	if !AllowedExtension(in.FileName) {
		l.deduct(6, fmt.Sprintf("File type %q may not parse in applicant tracking systems", Extension(in.FileName)))
	}

	var missing []string
	for _, s := range []string{segment.SectionExperience, segment.SectionEducation, segment.SectionSkills} {
		if !c.Headers[s] {
			missing = append(missing, s)
		}
	}
	if len(missing) > 0 {
		l.deduct(5, "Missing standard section headers: "+strings.Join(missing, ", "))
	} else {
		l.positive("Uses standard experience, education and skills headers")
	}

	if c.Populated(segment.SectionContact) {
		l.positive("Contact details are machine readable")
		l.evidence(c.Sections[segment.SectionContact][0])
	} else {
		l.deduct(4, "Contact block could not be parsed")
	}

	if n := specialRunes(c.Raw); n > maxSpecialRunes {
		l.deduct(2, fmt.Sprintf("%d special characters may confuse parsers", n))
	}
	return l.result()
}

func specialRunes(text string) int {
	n := 0
	for _, r := range text {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), unicode.IsSpace(r), r == '•':
		case r > unicode.MaxASCII, strings.ContainsRune(asciiSymbols, r):
			n++
		}
	}
	return n
}
