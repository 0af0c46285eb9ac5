package matching

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyResume       = errors.New("resume text or tokens are required")
	ErrTextTooLarge      = errors.New("resume text is too large")
	ErrEmptySkill        = errors.New("skill name is empty")
	ErrInvalidImportance = errors.New("importance must be high, medium or low")
	ErrInvalidTokens     = errors.New("resume tokens are invalid")
)

// ValidateTokens rejects caller-supplied résumé tokens the composer cannot
// score.
func ValidateTokens(t ResumeTokens) error {
	if t.ExperienceYears < 0 {
		return fmt.Errorf("%w: experienceYears %d is negative", ErrInvalidTokens, t.ExperienceYears)
	}
	for i, s := range t.Skills {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%w: skills[%d] is empty", ErrInvalidTokens, i)
		}
	}
	return nil
}

// ValidateRequirements rejects malformed job requirements before they reach
// the composer.
func ValidateRequirements(job JobRequirements) error {
	for i, s := range job.HardSkills {
		if strings.TrimSpace(s.Skill) == "" {
			return fmt.Errorf("hardSkills[%d]: %w", i, ErrEmptySkill)
		}
		switch s.Importance {
		case "", ImportanceHigh, ImportanceMedium, ImportanceLow:
		default:
			return fmt.Errorf("hardSkills[%d]: %w, got %q", i, ErrInvalidImportance, s.Importance)
		}
	}
	return nil
}
