package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"smartrecruit/recruitflow/internal/models"
)

func TestGenerateCandidateSummary(t *testing.T) {
	gemini := &stubGemini{response: "\n  A concise recruiter summary.  \n"}
	generator := NewSummaryGenerator(gemini)

	candidate := &models.Candidate{Name: "Amina El Fassi"}
	job := &models.JobOffer{Title: "Backend Developer"}

	report, err := generator.GenerateCandidateSummary(context.Background(), candidate, job, SummaryInput{
		CVScore:         40,
		SoftskillsScore: 60,
		TechScore:       80,
		GlobalScore:     58,
		Feedback:        "clear communicator",
	})
	if err != nil {
		t.Fatalf("GenerateCandidateSummary() error = %v", err)
	}
	if report != "A concise recruiter summary." {
		t.Errorf("report = %q, want trimmed response", report)
	}

	if len(gemini.prompts) != 1 {
		t.Fatalf("got %d prompts, want 1", len(gemini.prompts))
	}
	for _, fragment := range []string{"Amina El Fassi", "Backend Developer", "clear communicator"} {
		if !strings.Contains(gemini.prompts[0], fragment) {
			t.Errorf("prompt missing %q", fragment)
		}
	}
}

func TestGenerateCandidateSummaryFailure(t *testing.T) {
	gemini := &stubGemini{err: fmt.Errorf("api unavailable")}
	generator := NewSummaryGenerator(gemini)

	_, err := generator.GenerateCandidateSummary(context.Background(), &models.Candidate{}, &models.JobOffer{}, SummaryInput{})
	if !errors.Is(err, ErrGeneration) {
		t.Errorf("GenerateCandidateSummary() error = %v, want ErrGeneration", err)
	}

	// A transient failure surfaces immediately, unlike email delivery.
	if got := len(gemini.prompts); got != 1 {
		t.Errorf("generation attempted %d times, want a single attempt", got)
	}
}

func TestGenerateLearningSuggestions(t *testing.T) {
	gemini := &stubGemini{response: "1. Take a SQL course."}
	generator := NewSummaryGenerator(gemini)

	suggestions, err := generator.GenerateLearningSuggestions(context.Background(), "Amina", "Backend Developer", "weak on databases")
	if err != nil {
		t.Fatalf("GenerateLearningSuggestions() error = %v", err)
	}
	if suggestions != "1. Take a SQL course." {
		t.Errorf("suggestions = %q", suggestions)
	}

	if !strings.Contains(gemini.prompts[0], "weak on databases") {
		t.Error("prompt must carry the recruiter feedback")
	}
}

func TestGenerateLearningSuggestionsFailure(t *testing.T) {
	gemini := &stubGemini{err: fmt.Errorf("api unavailable")}
	generator := NewSummaryGenerator(gemini)

	_, err := generator.GenerateLearningSuggestions(context.Background(), "Amina", "Backend Developer", "")
	if !errors.Is(err, ErrGeneration) {
		t.Errorf("GenerateLearningSuggestions() error = %v, want ErrGeneration", err)
	}

	if got := len(gemini.prompts); got != 1 {
		t.Errorf("generation attempted %d times, want a single attempt", got)
	}
}
