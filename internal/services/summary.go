package services

import (
	"context"
	"fmt"
	"strings"

	"smartrecruit/recruitflow/internal/models"
)

// SummaryInput carries the scores and texts the mini-report is built from.
type SummaryInput struct {
	CVScore         float64
	SoftskillsScore float64
	TechScore       float64
	GlobalScore     float64
	Feedback        string
	Transcript      string
}

// SummaryGenerator produces the recruiter-facing mini-report and, on
// rejection, candidate-facing learning suggestions. Output is displayed
// as-is; there is no local content validation. Generation is a single
// attempt — a failure aborts the caller's flow instead of being retried.
type SummaryGenerator interface {
	GenerateCandidateSummary(ctx context.Context, candidate *models.Candidate, job *models.JobOffer, input SummaryInput) (string, error)
	GenerateLearningSuggestions(ctx context.Context, candidateName, jobTitle, feedback string) (string, error)
}

type summaryGenerator struct {
	gemini        GeminiService
	promptBuilder *PromptBuilder
}

func NewSummaryGenerator(gemini GeminiService) SummaryGenerator {
	return &summaryGenerator{
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
	}
}

// GenerateCandidateSummary implements SummaryGenerator.
func (g *summaryGenerator) GenerateCandidateSummary(ctx context.Context, candidate *models.Candidate, job *models.JobOffer, input SummaryInput) (string, error) {
	prompt := g.promptBuilder.BuildMiniReportPrompt(
		candidate.Name,
		job.Title,
		input.CVScore,
		input.SoftskillsScore,
		input.TechScore,
		input.GlobalScore,
		input.Feedback,
		input.Transcript,
	)

	report, err := g.gemini.GenerateText(ctx, prompt, 0.5)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	return strings.TrimSpace(report), nil
}

// GenerateLearningSuggestions implements SummaryGenerator.
func (g *summaryGenerator) GenerateLearningSuggestions(ctx context.Context, candidateName, jobTitle, feedback string) (string, error) {
	prompt := g.promptBuilder.BuildLearningSuggestionsPrompt(candidateName, jobTitle, feedback)

	suggestions, err := g.gemini.GenerateText(ctx, prompt, 0.5)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	return strings.TrimSpace(suggestions), nil
}
