// Package matching scores a résumé against a job posting's extracted
// requirements. CalculateMatchScore is pure; Service and Handler add the
// boundary validation and telemetry around it.
package matching

import "resume-engine/internal/matching/extract"

// Importance weights a hard-skill requirement.
type Importance string

const (
	ImportanceHigh   Importance = "high"
	ImportanceMedium Importance = "medium"
	ImportanceLow    Importance = "low"
)

// Weight maps importance to 3/2/1. Empty counts as medium.
func (i Importance) Weight() int {
	switch i {
	case ImportanceHigh:
		return 3
	case ImportanceLow:
		return 1
	default:
		return 2
	}
}

// Composite weights. They total 1.
const (
	WeightSkills       = 0.35
	WeightExperience   = 0.25
	WeightEducation    = 0.15
	WeightTechnologies = 0.20
	WeightSoftSkills   = 0.05
)

// SkillRequirement is one hard skill a job asks for.
type SkillRequirement struct {
	Skill      string     `json:"skill" jsonschema:"skill name as written in the posting"`
	Importance Importance `json:"importance,omitempty" jsonschema:"high, medium or low; empty means medium"`
}

// JobRequirements is the structured output of a job-posting analyzer.
type JobRequirements struct {
	HardSkills            []SkillRequirement `json:"hardSkills" jsonschema:"required hard skills with importance"`
	SoftSkills            []string           `json:"softSkills,omitempty"`
	Technologies          []string           `json:"technologies,omitempty"`
	ExperienceKeywords    []string           `json:"experienceKeywords,omitempty" jsonschema:"phrases such as '5+ years of logistics experience'"`
	EducationRequirements []string           `json:"educationRequirements,omitempty"`
}

// ResumeTokens is what the matcher consumes from a résumé.
type ResumeTokens = extract.Tokens

// SkillMatch is a sub-score over a token list.
type SkillMatch struct {
	Score   int      `json:"score"`
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
}

// ExperienceMatch compares years and experience topics.
type ExperienceMatch struct {
	Score         int      `json:"score"`
	ResumeYears   int      `json:"resumeYears"`
	RequiredYears int      `json:"requiredYears"`
	Relevant      []string `json:"relevant"`
	Missing       []string `json:"missing"`
}

// EducationMatch compares the highest education levels.
type EducationMatch struct {
	Score          int             `json:"score"`
	Matched        bool            `json:"matched"`
	ResumeLevels   []extract.Level `json:"resumeLevels"`
	RequiredLevels []extract.Level `json:"requiredLevels"`
	Explanation    string          `json:"explanation"`
}

// MatchResult is the full match report.
type MatchResult struct {
	MatchScore     int             `json:"matchScore"`
	Skills         SkillMatch      `json:"skills"`
	Experience     ExperienceMatch `json:"experience"`
	Education      EducationMatch  `json:"education"`
	Technologies   SkillMatch      `json:"technologies"`
	SoftSkills     SkillMatch      `json:"softSkills"`
	Gaps           []string        `json:"gaps"`
	Strengths      []string        `json:"strengths"`
	Recommendation string          `json:"recommendation"`
}
