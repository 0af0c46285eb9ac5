package analyses

import (
	"context"
	"time"

	"resume-engine/internal/shared/metrics"
	"resume-engine/internal/shared/telemetry"
)

// Envelope wraps a result with per-request metadata. AnalyzedAt never feeds
// the score.
type Envelope struct {
	RequestID  string         `json:"requestId"`
	AnalyzedAt time.Time      `json:"analyzedAt"`
	Result     AnalysisResult `json:"result"`
}

// Service validates input, runs Analyze and records telemetry. It is shared
// by the HTTP handler, the MCP tool and the CLI.
type Service struct {
	Limits Limits
	Now    func() time.Time
}

// NewService constructs a Service with the given limits.
func NewService(limits Limits) *Service {
	return &Service{Limits: limits, Now: time.Now}
}

// Run validates and analyzes text.
func (s *Service) Run(ctx context.Context, requestID, text, fileName string) (Envelope, error) {
	if err := ctx.Err(); err != nil {
		return Envelope{}, err
	}
	clean, err := ValidateInput(text, fileName, s.Limits)
	if err != nil {
		metrics.IncRequestRejected()
		return Envelope{}, err
	}

	start := time.Now()
	result := Analyze(text, clean)
	elapsed := metrics.SinceMillis(start)
	if err := validateScoreExplanation(&result.ScoreExplanation); err != nil {
		telemetry.Error("analysis.invalid_explanation", map[string]any{"request_id": requestID, "err": err})
		return Envelope{}, err
	}

	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDurationMs(elapsed)
	metrics.ObserveOverallScore(result.OverallScore)
	telemetry.Info("analysis.complete", map[string]any{
		"request_id":      requestID,
		"hash":            result.Consistency.Hash,
		"overall_score":   result.OverallScore,
		"category_total":  result.CategoryTotal,
		"rule_penalty":    result.RulePenalty,
		"quote_count":     len(result.ResumeQuotes),
		"duration_ms":     elapsed,
		"scoring_version": ScoringVersion,
	})

	return Envelope{RequestID: requestID, AnalyzedAt: s.now().UTC(), Result: result}, nil
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}
