package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/atstailor/resume-tailor/internal/domain"
)

// stripFences removes markdown code fences from model output. The prompt
// forbids them, but models wrap JSON in backticks often enough that parsing
// without this is not safe.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// rawAnalysis mirrors domain.AnalysisResult with pointer fields so that
// absent keys can be told apart from present-but-empty values.
type rawAnalysis struct {
	MatchedSkills              *[]string `json:"matchedSkills"`
	MissingSkills              *[]string `json:"missingSkills"`
	ExtraKeywords              *[]string `json:"extraKeywords"`
	OptimizedSummary           *string   `json:"optimizedSummary"`
	OptimizedExperienceBullets *[]string `json:"optimizedExperienceBullets"`
	AtsScore                   *int      `json:"atsScore"`
	ImprovementTips            *[]string `json:"improvementTips"`
}

// Normalize strips incidental formatting from raw model output and parses it
// into a typed result. All seven fields must be present and correctly typed;
// atsScore is clamped to [0,100] rather than passed through. The model is an
// untrusted external system, so anything non-conforming is rejected as
// domain.ErrMalformedResponse.
func Normalize(raw string) (*domain.AnalysisResult, error) {
	cleaned := stripFences(raw)

	var parsed rawAnalysis
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}

	missing := ""
	switch {
	case parsed.MatchedSkills == nil:
		missing = "matchedSkills"
	case parsed.MissingSkills == nil:
		missing = "missingSkills"
	case parsed.ExtraKeywords == nil:
		missing = "extraKeywords"
	case parsed.OptimizedSummary == nil:
		missing = "optimizedSummary"
	case parsed.OptimizedExperienceBullets == nil:
		missing = "optimizedExperienceBullets"
	case parsed.AtsScore == nil:
		missing = "atsScore"
	case parsed.ImprovementTips == nil:
		missing = "improvementTips"
	}
	if missing != "" {
		return nil, fmt.Errorf("%w: missing field %q", domain.ErrMalformedResponse, missing)
	}

	score := *parsed.AtsScore
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return &domain.AnalysisResult{
		MatchedSkills:              nonNil(*parsed.MatchedSkills),
		MissingSkills:              nonNil(*parsed.MissingSkills),
		ExtraKeywords:              nonNil(*parsed.ExtraKeywords),
		OptimizedSummary:           *parsed.OptimizedSummary,
		OptimizedExperienceBullets: nonNil(*parsed.OptimizedExperienceBullets),
		AtsScore:                   score,
		ImprovementTips:            nonNil(*parsed.ImprovementTips),
	}, nil
}

// nonNil keeps slice fields encoding as [] instead of null.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
