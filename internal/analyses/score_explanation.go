package analyses

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"resume-engine/internal/analyses/scoring"
)

// ScoreExplanation explains how the overall score is assembled.
type ScoreExplanation struct {
	Components []ScoreComponent `json:"components"`
}

// ScoreComponent represents a weighted score component.
type ScoreComponent struct {
	Key         string   `json:"key"`
	Label       string   `json:"label"`
	Score       float64  `json:"score"`
	Weight      float64  `json:"weight"`
	Explanation string   `json:"explanation"`
	Helped      []string `json:"helped"`
	Dragged     []string `json:"dragged"`
}

var scoreExplanationKeys = map[string]string{
	"formatting":       "Formatting",
	"keywords":         "Keywords & Verbiage",
	"content":          "Content Quality",
	"atsCompatibility": "ATS Compatibility",
}

func buildScoreExplanation(b scoring.Breakdown) ScoreExplanation {
	out := ScoreExplanation{Components: make([]ScoreComponent, 0, 4)}
	for _, cs := range b.Categories() {
		helped := append([]string(nil), cs.Positives...)
		if len(helped) == 0 {
			helped = []string{"No strengths detected in this category"}
		}
		dragged := make([]string, 0, len(cs.Deductions))
		for _, d := range cs.Deductions {
			dragged = append(dragged, fmt.Sprintf("%s (-%d)", d.Reason, d.Points))
		}
		if len(dragged) == 0 {
			dragged = []string{"No deductions"}
		}
		out.Components = append(out.Components, ScoreComponent{
			Key:         cs.Key,
			Label:       cs.Label,
			Score:       float64(cs.Score),
			Weight:      float64(cs.MaxScore),
			Explanation: fmt.Sprintf("%s scored %d of %d (%s).", cs.Label, cs.Score, cs.MaxScore, cs.Level),
			Helped:      helped,
			Dragged:     dragged,
		})
	}
	return out
}

func validateScoreExplanation(e *ScoreExplanation) error {
	if e == nil {
		return errors.New("scoreExplanation is required")
	}
	if len(e.Components) != len(scoreExplanationKeys) {
		return fmt.Errorf("scoreExplanation.components must contain %d items", len(scoreExplanationKeys))
	}
	seen := make(map[string]bool, len(scoreExplanationKeys))
	totalWeight := 0.0
	for i, c := range e.Components {
		key := strings.TrimSpace(c.Key)
		if _, ok := scoreExplanationKeys[key]; !ok {
			return fmt.Errorf("scoreExplanation.components[%d].key must be one of: formatting, keywords, content, atsCompatibility", i)
		}
		if seen[key] {
			return fmt.Errorf("scoreExplanation.components[%d].key must be unique", i)
		}
		seen[key] = true
		if strings.TrimSpace(c.Label) == "" {
			return fmt.Errorf("scoreExplanation.components[%d].label is required", i)
		}
		if c.Weight < 0 || c.Weight > 100 || !isInteger(c.Weight) {
			return fmt.Errorf("scoreExplanation.components[%d].weight must be an integer between 0 and 100", i)
		}
		if c.Score < 0 || c.Score > c.Weight || !isInteger(c.Score) {
			return fmt.Errorf("scoreExplanation.components[%d].score must be an integer between 0 and its weight", i)
		}
		totalWeight += c.Weight
		if strings.TrimSpace(c.Explanation) == "" {
			return fmt.Errorf("scoreExplanation.components[%d].explanation is required", i)
		}
		if len(c.Helped) == 0 {
			return fmt.Errorf("scoreExplanation.components[%d].helped must have at least 1 item", i)
		}
		if len(c.Dragged) == 0 {
			return fmt.Errorf("scoreExplanation.components[%d].dragged must have at least 1 item", i)
		}
	}
	if math.Abs(totalWeight-100) > 0.000001 {
		return fmt.Errorf("scoreExplanation.components weights must total 100, got %.3f", totalWeight)
	}
	return nil
}

func isInteger(v float64) bool {
	return v == math.Trunc(v)
}
