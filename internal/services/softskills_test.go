package services

import (
	"context"
	"errors"
	"testing"

	"smartrecruit/recruitflow/internal/models"
)

func TestSoftSkillAnalyzerParsesResponse(t *testing.T) {
	gemini := &stubGemini{
		response: "```json\n{\"softskills\": [\"communication\", \"leadership\"], \"softskills_score\": 72.5, \"feedback\": \"Clear and confident speaker.\"}\n```",
	}
	analyzer := NewSoftSkillAnalyzer(gemini)

	result, err := analyzer.Analyze(context.Background(), "some transcript", []models.Requirement{{Skill: "communication", Level: "avancé"}})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if result.SoftskillsScore != 72.5 {
		t.Errorf("score = %v, want 72.5", result.SoftskillsScore)
	}
	if len(result.Softskills) != 2 || result.Softskills[0] != "communication" {
		t.Errorf("softskills = %v, want [communication leadership]", result.Softskills)
	}
	if result.Feedback == "" {
		t.Error("feedback should not be empty")
	}
}

func TestSoftSkillAnalyzerUnparseableResponse(t *testing.T) {
	gemini := &stubGemini{response: "I cannot answer that."}
	analyzer := NewSoftSkillAnalyzer(gemini)

	_, err := analyzer.Analyze(context.Background(), "transcript", nil)
	if !errors.Is(err, ErrAnalysis) {
		t.Errorf("Analyze() error = %v, want ErrAnalysis", err)
	}
}

func TestSoftSkillAnalyzerGenerationFailure(t *testing.T) {
	gemini := &stubGemini{err: errors.New("api unavailable")}
	analyzer := NewSoftSkillAnalyzer(gemini)

	_, err := analyzer.Analyze(context.Background(), "transcript", nil)
	if !errors.Is(err, ErrAnalysis) {
		t.Errorf("Analyze() error = %v, want ErrAnalysis", err)
	}

	// A transient failure surfaces immediately, unlike email delivery.
	if got := len(gemini.prompts); got != 1 {
		t.Errorf("generation attempted %d times, want a single attempt", got)
	}
}

func TestSoftSkillAnalyzerClampsScore(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     float64
	}{
		{
			name:     "score above range",
			response: `{"softskills": [], "softskills_score": 140, "feedback": "x"}`,
			want:     100,
		},
		{
			name:     "score below range",
			response: `{"softskills": [], "softskills_score": -3, "feedback": "x"}`,
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analyzer := NewSoftSkillAnalyzer(&stubGemini{response: tt.response})

			result, err := analyzer.Analyze(context.Background(), "", nil)
			if err != nil {
				t.Fatalf("Analyze() error = %v", err)
			}
			if result.SoftskillsScore != tt.want {
				t.Errorf("score = %v, want %v", result.SoftskillsScore, tt.want)
			}
			if result.Softskills == nil {
				t.Error("softskills should never be nil")
			}
		})
	}
}
