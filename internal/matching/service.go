package matching

import (
	"context"
	"fmt"
	"strings"
	"time"

	"resume-engine/internal/matching/extract"
	"resume-engine/internal/matching/fuzzy"
	"resume-engine/internal/shared/metrics"
	"resume-engine/internal/shared/telemetry"
)

// Request is a match job. ResumeTokens, when present, are used as given;
// otherwise they are extracted from ResumeText.
type Request struct {
	ResumeText   string          `json:"resumeText"`
	ResumeTokens *ResumeTokens   `json:"resumeTokens,omitempty"`
	Job          JobRequirements `json:"job"`
}

// Response carries the result and the tokens it was computed from.
type Response struct {
	RequestID    string       `json:"requestId"`
	Result       MatchResult  `json:"result"`
	ResumeTokens ResumeTokens `json:"resumeTokens"`
}

// Service validates match requests, extracts tokens and runs the composer.
type Service struct {
	MaxBytes  int
	Extractor *extract.Extractor
	Composer  *Composer
}

// NewService constructs a Service with the default extractor and synonyms.
func NewService(maxBytes int) *Service {
	return &Service{MaxBytes: maxBytes, Extractor: extract.New(), Composer: NewComposer(fuzzy.Default)}
}

// Validate checks req at the boundary.
func (s *Service) Validate(req Request) error {
	if req.ResumeTokens == nil && strings.TrimSpace(req.ResumeText) == "" {
		return ErrEmptyResume
	}
	if s.MaxBytes > 0 && len(req.ResumeText) > s.MaxBytes {
		return fmt.Errorf("%w: %d bytes exceeds %d", ErrTextTooLarge, len(req.ResumeText), s.MaxBytes)
	}
	if req.ResumeTokens != nil {
		if err := ValidateTokens(*req.ResumeTokens); err != nil {
			return err
		}
	}
	return ValidateRequirements(req.Job)
}

// Run validates req and scores it.
func (s *Service) Run(ctx context.Context, requestID string, req Request) (Response, error) {
	if err := ctx.Err(); err != nil {
		return Response{}, err
	}
	if err := s.Validate(req); err != nil {
		metrics.IncRequestRejected()
		return Response{}, err
	}

	start := time.Now()
	var tokens ResumeTokens
	if req.ResumeTokens != nil {
		tokens = *req.ResumeTokens
		if tokens.RawText == "" {
			tokens.RawText = req.ResumeText
		}
	} else {
		tokens = s.extractor().Extract(req.ResumeText)
	}
	result := s.composer().Compose(tokens, req.Job)
	elapsed := metrics.SinceMillis(start)

	metrics.IncMatchCompleted()
	telemetry.Info("match.complete", map[string]any{
		"request_id":    requestID,
		"match_score":   result.MatchScore,
		"skills_score":  result.Skills.Score,
		"resume_skills": len(tokens.Skills),
		"job_skills":    len(req.Job.HardSkills),
		"gap_count":     len(result.Gaps),
		"duration_ms":   elapsed,
	})

	tokens.RawText = ""
	return Response{RequestID: requestID, Result: result, ResumeTokens: tokens}, nil
}

func (s *Service) extractor() *extract.Extractor {
	if s.Extractor == nil {
		return extract.New()
	}
	return s.Extractor
}

func (s *Service) composer() *Composer {
	if s.Composer == nil || s.Composer.m == nil {
		return NewComposer(fuzzy.Default)
	}
	return s.Composer
}
