// Package extract pulls a flat token set out of résumé text for matching:
// vocabulary skills, an experience-years estimate and education levels. It
// does not depend on the analysis segmenter.
package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"resume-engine/internal/lexicon"
)

// Level is an education level.
type Level string

const (
	LevelHighSchool Level = "high_school"
	LevelAssociates Level = "associates"
	LevelBachelors  Level = "bachelors"
	LevelMasters    Level = "masters"
	LevelPhD        Level = "phd"
)

// Rank orders levels from high school (1) to doctorate (5). Unknown levels
// rank 0.
func (l Level) Rank() int {
	switch l {
	case LevelHighSchool:
		return 1
	case LevelAssociates:
		return 2
	case LevelBachelors:
		return 3
	case LevelMasters:
		return 4
	case LevelPhD:
		return 5
	default:
		return 0
	}
}

// MaxRank is the highest rank among levels, 0 when there are none.
func MaxRank(levels []Level) int {
	best := 0
	for _, l := range levels {
		if r := l.Rank(); r > best {
			best = r
		}
	}
	return best
}

var levelPatterns = []struct {
	level Level
	re    *regexp.Regexp
}{
	{LevelPhD, regexp.MustCompile(`(?i)\b(?:ph\.?\s?d\b\.?|doctorate\b|doctoral\b|doctor of)`)},
	{LevelMasters, regexp.MustCompile(`(?i)\b(?:master(?:'|’)?s?\s+(?:degree|of|in)\b|mba\b|msc\b|m\.\s?(?:sc|s|a|eng)\.|(?-i:MS)\s*(?:,|in\b|of\b)|(?-i:MA)\s+(?:in|of)\b)`)},
	{LevelBachelors, regexp.MustCompile(`(?i)\b(?:bachelor(?:'|’)?s?\b|bsc\b|beng\b|b\.\s?(?:sc|s|a|eng)\.|b[as]\s*(?:,|in\b|of\b)|(?-i:B[AS])\b)`)},
	{LevelAssociates, regexp.MustCompile(`(?i)\b(?:associate(?:'|’)?s?\s+(?:degree|of)\b|a\.a\.s?\.)`)},
	{LevelHighSchool, regexp.MustCompile(`(?i)\b(?:high\s+school|secondary\s+school|ged)\b`)},
}

var (
	explicitYearsRe = regexp.MustCompile(`(?i)(\d{1,2})\+?\s*(?:years?|yrs?)\s*(?:of\s+)?(?:professional\s+)?experience`)
	yearRangeRe     = regexp.MustCompile(`(?i)\b((?:19|20)\d{2})\s*(?:-|–|—|to)\s*((?:19|20)\d{2}|present|current|now)\b`)
)

// Tokens is what the matcher knows about a résumé.
type Tokens struct {
	Skills          []string `json:"skills"`
	ExperienceYears int      `json:"experienceYears"`
	EducationLevels []Level  `json:"educationLevels"`
	RawText         string   `json:"rawText,omitempty"`
}

// Extractor resolves open-ended date ranges against ReferenceYear.
type Extractor struct {
	ReferenceYear int
}

// New returns an Extractor anchored on the current year.
func New() *Extractor {
	return &Extractor{ReferenceYear: time.Now().Year()}
}

// Extract builds the token set for text.
func (e *Extractor) Extract(text string) Tokens {
	return Tokens{
		Skills:          lexicon.FindSkills(text),
		ExperienceYears: e.Years(text),
		EducationLevels: EducationLevels(text),
		RawText:         text,
	}
}

// Years returns the first explicit "N years of experience" figure, or else
// the summed length of every year range in text. Ranges are not merged, so
// overlapping roles count twice.
func (e *Extractor) Years(text string) int {
	if m := explicitYearsRe.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n
	}
	total := 0
	for _, m := range yearRangeRe.FindAllStringSubmatch(text, -1) {
		from, _ := strconv.Atoi(m[1])
		to := e.ReferenceYear
		if y, err := strconv.Atoi(m[2]); err == nil {
			to = y
		}
		if d := to - from; d > 0 {
			total += d
		}
	}
	return total
}

// EducationLevels returns every level named in text, highest first.
func EducationLevels(text string) []Level {
	var out []Level
	for _, p := range levelPatterns {
		if p.re.MatchString(text) {
			out = append(out, p.level)
		}
	}
	return out
}

// RequiredYears returns the first number found across keywords, or 0.
func RequiredYears(keywords []string) int {
	for _, k := range keywords {
		if m := firstNumberRe.FindString(k); m != "" {
			n, _ := strconv.Atoi(m)
			return n
		}
	}
	return 0
}

var firstNumberRe = regexp.MustCompile(`\d+`)

// Topic strips the years phrasing from an experience keyword so
// "5+ years of freight forwarding experience" becomes "freight forwarding".
func Topic(keyword string) string {
	t := topicNoiseRe.ReplaceAllString(keyword, " ")
	return strings.Join(strings.Fields(t), " ")
}

var topicNoiseRe = regexp.MustCompile(`(?i)\d+\+?|\b(?:years?|yrs?|of|in|with|minimum|at least|professional|experience|experienced)\b`)
