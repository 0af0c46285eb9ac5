// Package segment splits plain résumé text into the lines, sentences, bullets
// and named sections the defect classifier and scorers work from.
package segment

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"resume-engine/internal/lexicon"
)

// Section names assigned by header detection.
const (
	SectionSummary    = "summary"
	SectionExperience = "experience"
	SectionEducation  = "education"
	SectionSkills     = "skills"
	SectionContact    = "contact"
)

const (
	minSentenceChars = 10
	maxHeaderChars   = 50
	maxHeaderWords   = 6
	// maxInlineHeaderWords bounds the label in "Skills: Go, SQL" lines.
	maxInlineHeaderWords = 3
)

// Bullet is a list item with its marker stripped, tagged with the section it
// appeared in (empty when it precedes every header).
type Bullet struct {
	Text    string
	Section string
}

// Content is the segmented view of one input text. It is built once by Split
// and never modified afterwards.
type Content struct {
	Raw          string
	Lines        []string
	Sentences    []string
	Bullets      []Bullet
	Sections     map[string][]string
	Headers      map[string]bool
	Achievements []string
	WordCount    int
}

var (
	bulletRe       = regexp.MustCompile(`^(?:[•●▪■◦‣∙*\-–—]|\d{1,2}[.)]|[a-zA-Z][.)])\s+(.+)$`)
	sentenceEndRe  = regexp.MustCompile(`[.!?]+\s+`)
	impactVerbRe   = lexicon.StemPattern(lexicon.ImpactVerbStems)
	headerPatterns = compileHeaders()
)

type headerPattern struct {
	section string
	re      *regexp.Regexp
}

func compileHeaders() []headerPattern {
	out := make([]headerPattern, 0, len(lexicon.SectionKeywords))
	for _, sk := range lexicon.SectionKeywords {
		out = append(out, headerPattern{section: sk.Section, re: lexicon.WordPattern(sk.Keywords)})
	}
	return out
}

// Split segments raw text. It never fails; empty input yields empty content.
func Split(text string) *Content {
	c := &Content{
		Raw:      text,
		Sections: make(map[string][]string),
		Headers:  make(map[string]bool),
	}
	c.WordCount = len(strings.Fields(text))

	for _, raw := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		line := strings.TrimSpace(raw)
		if line != "" {
			c.Lines = append(c.Lines, line)
		}
	}

	c.Sentences = splitSentences(c.Lines)
	c.assignSections()

	for _, s := range c.Sentences {
		if lexicon.HasNumber(s) && impactVerbRe.MatchString(s) {
			c.Achievements = append(c.Achievements, s)
		}
	}
	return c
}

func splitSentences(lines []string) []string {
	var out []string
	for _, line := range lines {
		if m := bulletRe.FindStringSubmatch(line); m != nil {
			line = m[1]
		}
		for _, part := range sentenceEndRe.Split(line, -1) {
			part = strings.TrimSpace(part)
			if utf8.RuneCountInString(part) > minSentenceChars {
				out = append(out, part)
			}
		}
	}
	return out
}

// assignSections runs the single linear pass over lines: headers move the
// current-section pointer, everything else is appended to it.
func (c *Content) assignSections() {
	current := ""
	for _, line := range c.Lines {
		if lexicon.Email.MatchString(line) || lexicon.Phone.MatchString(line) {
			current = SectionContact
			c.Headers[SectionContact] = true
			c.Sections[SectionContact] = append(c.Sections[SectionContact], line)
			continue
		}
		body := line
		if m := bulletRe.FindStringSubmatch(line); m != nil {
			body = strings.TrimSpace(m[1])
			c.Bullets = append(c.Bullets, Bullet{Text: body, Section: current})
		} else if section, rest, ok := header(line); ok {
			current = section
			c.Headers[section] = true
			if rest == "" {
				continue
			}
			body = rest
		}
		if current != "" {
			c.Sections[current] = append(c.Sections[current], body)
		}
	}
}

// header detects a header line. A "Label: content" line whose label is a
// header returns the content as rest so it lands in the new section.
func header(line string) (section, rest string, ok bool) {
	if label, tail, found := strings.Cut(line, ":"); found && len(strings.Fields(label)) <= maxInlineHeaderWords {
		if section, ok = headerSection(strings.TrimSpace(label)); ok {
			return section, strings.TrimSpace(tail), true
		}
	}
	section, ok = headerSection(line)
	return section, "", ok
}

func headerSection(line string) (string, bool) {
	if utf8.RuneCountInString(line) > maxHeaderChars || len(strings.Fields(line)) > maxHeaderWords {
		return "", false
	}
	for _, hp := range headerPatterns {
		if hp.re.MatchString(line) {
			return hp.section, true
		}
	}
	return "", false
}

// Section returns the lines assigned to name joined by newlines.
func (c *Content) Section(name string) string {
	return strings.Join(c.Sections[name], "\n")
}

// Populated reports whether a section received at least one line.
func (c *Content) Populated(name string) bool {
	return len(c.Sections[name]) > 0
}
