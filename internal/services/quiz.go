package services

import (
	"context"
	"fmt"
	"log"

	"smartrecruit/recruitflow/internal/models"
)

const defaultQuizQuestions = 5

// QuizService generates a technical MCQ for a job offer and grades submitted
// answers. Grading is deterministic: correct answers over total, on a 0-100
// scale rounded to two decimals.
type QuizService interface {
	GenerateQuiz(ctx context.Context, job *models.JobOffer) ([]models.QuizQuestion, error)
	GradeQuiz(questions []models.QuizQuestion, answers []string) float64
}

type quizService struct {
	gemini        GeminiService
	promptBuilder *PromptBuilder
	maxRetries    int
}

func NewQuizService(gemini GeminiService, maxRetries int) QuizService {
	return &quizService{
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
		maxRetries:    maxRetries,
	}
}

// GenerateQuiz implements QuizService.
func (q *quizService) GenerateQuiz(ctx context.Context, job *models.JobOffer) ([]models.QuizQuestion, error) {
	requirements := parseRequirements(job)
	prompt := q.promptBuilder.BuildQuizPrompt(job, requirements, defaultQuizQuestions)

	response, err := q.gemini.GenerateTextWithRetry(ctx, prompt, 0.7, q.maxRetries)
	if err != nil {
		log.Printf("❌ Quiz generation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	var quiz models.QuizResponse
	if err := decodeJSONResponse(response, &quiz); err != nil {
		log.Printf("❌ Failed to parse quiz response: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	if len(quiz.Questions) == 0 {
		return nil, fmt.Errorf("%w: quiz contained no questions", ErrGeneration)
	}

	return quiz.Questions, nil
}

// GradeQuiz implements QuizService. Missing answers count as wrong.
func (q *quizService) GradeQuiz(questions []models.QuizQuestion, answers []string) float64 {
	if len(questions) == 0 {
		return 0
	}

	correct := 0
	for i, question := range questions {
		if i < len(answers) && answers[i] == question.Answer {
			correct++
		}
	}

	return round2(float64(correct) / float64(len(questions)) * 100)
}

// parseRequirements decodes a job's {skill, level} pairs, tolerating both a
// native JSON array and a string-encoded one.
func parseRequirements(job *models.JobOffer) []models.Requirement {
	var requirements []models.Requirement
	for _, record := range NormalizeRecords(job.Requirements) {
		req := models.Requirement{}
		if skill, ok := record["skill"].(string); ok {
			req.Skill = skill
		}
		if level, ok := record["level"].(string); ok {
			req.Level = level
		}
		if req.Skill != "" {
			requirements = append(requirements, req)
		}
	}
	return requirements
}
