package health

import (
	"resume-engine/internal/analyses"
	"resume-engine/internal/lexicon"
)

// Status is the health payload. The versions let callers tell which rule
// tables produced a stored result.
type Status struct {
	OK             bool   `json:"ok"`
	ScoringVersion string `json:"scoringVersion"`
	LexiconVersion string `json:"lexiconVersion"`
}

// Service encapsulates health-related checks.
type Service struct{}

// NewService constructs a new health service.
func NewService() *Service {
	return &Service{}
}

// Status returns the health payload.
func (s *Service) Status() Status {
	return Status{OK: true, ScoringVersion: analyses.ScoringVersion, LexiconVersion: lexicon.Version}
}
