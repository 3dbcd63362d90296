package services

import (
	"context"
	"fmt"
	"log"

	"smartrecruit/recruitflow/internal/models"
)

// SoftSkillResult is the structured outcome of a transcript analysis.
type SoftSkillResult struct {
	Softskills      []string `json:"softskills"`
	SoftskillsScore float64  `json:"softskills_score"`
	Feedback        string   `json:"feedback"`
}

// SoftSkillAnalyzer derives a soft-skill score, detected traits and feedback
// from a video transcript. Results are not deterministic: the default
// temperature is above zero, so tests inject a stub instead.
type SoftSkillAnalyzer interface {
	Analyze(ctx context.Context, transcript string, requirements []models.Requirement) (*SoftSkillResult, error)
}

type softSkillAnalyzer struct {
	gemini        GeminiService
	promptBuilder *PromptBuilder
}

func NewSoftSkillAnalyzer(gemini GeminiService) SoftSkillAnalyzer {
	return &softSkillAnalyzer{
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
	}
}

// Analyze implements SoftSkillAnalyzer. A single generation attempt: a
// failure aborts the caller's flow, it is never retried locally. There is
// also no fallback on an unparseable response, because a made-up soft-skill
// score would corrupt the ranking.
func (a *softSkillAnalyzer) Analyze(ctx context.Context, transcript string, requirements []models.Requirement) (*SoftSkillResult, error) {
	prompt := a.promptBuilder.BuildSoftSkillPrompt(transcript, requirements)

	response, err := a.gemini.GenerateText(ctx, prompt, 0.7)
	if err != nil {
		log.Printf("❌ Soft-skill analysis failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrAnalysis, err)
	}

	var result SoftSkillResult
	if err := decodeJSONResponse(response, &result); err != nil {
		log.Printf("❌ Failed to parse soft-skill response: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrAnalysis, err)
	}

	if result.SoftskillsScore < 0 {
		result.SoftskillsScore = 0
	}
	if result.SoftskillsScore > 100 {
		result.SoftskillsScore = 100
	}
	if result.Softskills == nil {
		result.Softskills = []string{}
	}

	return &result, nil
}
