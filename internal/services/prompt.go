package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"smartrecruit/recruitflow/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildCVExtractionPrompt creates the prompt that turns raw CV text into
// structured candidate fields.
func (pb *PromptBuilder) BuildCVExtractionPrompt(cvText string) string {
	return fmt.Sprintf(`You are a recruitment assistant. Analyze the text of this CV and return the structured information in the following JSON format:
{
  "name": "",
  "emails": [],
  "phones": [],
  "linkedin": [],
  "address": null,
  "education": [],
  "experience": [],
  "skills": [],
  "languages": []
}

Each education entry is an object with free-form fields (degree, school, year).
Each experience entry is an object with "position", "company" and, when stated, a numeric "years" field.
Each language entry is an object with "language" and "level".
Try to extract the postal address even if incomplete (city, district, whatever the CV states).

Here is the CV:
"""%s"""

Return only the JSON.`, cvText)
}

// BuildSoftSkillPrompt creates the prompt that scores soft skills from a
// video transcript against the job's requirements.
func (pb *PromptBuilder) BuildSoftSkillPrompt(transcript string, requirements []models.Requirement) string {
	var reqLines []string
	for _, req := range requirements {
		reqLines = append(reqLines, fmt.Sprintf("- %s (%s)", req.Skill, req.Level))
	}
	reqBlock := "No specific requirements were listed for this position."
	if len(reqLines) > 0 {
		reqBlock = strings.Join(reqLines, "\n")
	}

	return fmt.Sprintf(`You are an HR analyst evaluating the soft skills of a candidate from the transcript of their video pitch.

JOB REQUIREMENTS:
%s

TRANSCRIPT:
"""%s"""

Identify the soft skills the candidate demonstrates (communication, leadership, teamwork, adaptability, etc.), score the overall soft-skill fit from 0 to 100, and write short feedback for the recruiter.

Return your response in the following JSON format:
{
  "softskills": ["<detected trait>", ...],
  "softskills_score": <0-100>,
  "feedback": "<2-4 sentences of feedback>"
}

An empty transcript means nothing could be observed: return an empty list, a score of 0 and say that no video content was available.
Return only the JSON.`, reqBlock, transcript)
}

// BuildMiniReportPrompt creates the prompt for the recruiter-facing summary
// of a fully scored application.
func (pb *PromptBuilder) BuildMiniReportPrompt(candidateName, jobTitle string, cvScore, softskillsScore, techScore, globalScore float64, feedback, transcript string) string {
	return fmt.Sprintf(`You are an HR assistant writing a short hiring report about a candidate for a %s position.

CANDIDATE: %s

SCORES (all out of 100):
- CV fit: %.2f
- Soft skills: %.2f
- Technical test: %.2f
- Global score: %.2f

SOFT-SKILL FEEDBACK:
%s

VIDEO TRANSCRIPT (excerpt):
"""%s"""

Write a concise mini-report (4-6 sentences) covering the candidate's strengths, their weaker areas, and whether the profile fits the position. Address the recruiter directly.

Return only the report text, no JSON.`, jobTitle, candidateName, cvScore, softskillsScore, techScore, globalScore, feedback, excerpt(transcript, 2000))
}

// BuildLearningSuggestionsPrompt creates the prompt for candidate-facing
// improvement advice sent with a rejection.
func (pb *PromptBuilder) BuildLearningSuggestionsPrompt(candidateName, jobTitle, feedback string) string {
	return fmt.Sprintf(`You are a career coach. %s applied for a %s position and was not selected.

RECRUITER FEEDBACK:
%s

Write a short, encouraging message to the candidate with 3 concrete learning suggestions (courses, skills to practice, certifications) that would strengthen a future application for this kind of position.

Return only the message text, no JSON.`, candidateName, jobTitle, feedback)
}

// BuildQuizPrompt creates the prompt that generates a technical MCQ for a
// job offer.
func (pb *PromptBuilder) BuildQuizPrompt(job *models.JobOffer, requirements []models.Requirement, questionCount int) string {
	var reqLines []string
	for _, req := range requirements {
		reqLines = append(reqLines, fmt.Sprintf("- %s (%s)", req.Skill, req.Level))
	}
	reqBlock := "General aptitude for the position."
	if len(reqLines) > 0 {
		reqBlock = strings.Join(reqLines, "\n")
	}

	return fmt.Sprintf(`You are a technical recruiter. Create a multiple-choice quiz of %d questions to evaluate candidates for the following position.

POSITION: %s

DESCRIPTION:
%s

REQUIRED SKILLS:
%s

Each question must have exactly 4 options and one correct answer. The "answer" field must repeat the correct option verbatim.

Return your response in the following JSON format:
{
  "questions": [
    {
      "question": "<question text>",
      "options": ["<option 1>", "<option 2>", "<option 3>", "<option 4>"],
      "answer": "<correct option>"
    }
  ]
}

Return only the JSON.`, questionCount, job.Title, job.Description, reqBlock)
}

// BuildChatbotPrompt creates the grounded prompt for the FAQ chatbot.
func (pb *PromptBuilder) BuildChatbotPrompt(question string, sources []models.ChatSource) string {
	var parts []string
	for i, source := range sources {
		parts = append(parts, fmt.Sprintf("--- FAQ %d (score: %.3f) ---\nQ: %s\nA: %s",
			i+1, source.Score, strings.TrimSpace(source.Question), strings.TrimSpace(source.Answer)))
	}
	context := "No relevant FAQ entry found."
	if len(parts) > 0 {
		context = strings.Join(parts, "\n\n")
	}

	return fmt.Sprintf(`You are the recruitment FAQ assistant. Answer the user's question using only the FAQ entries below. If the entries do not cover the question, say so and suggest contacting the recruitment team.

FAQ ENTRIES:
%s

QUESTION: %s

Answer in the language of the question, in a few sentences.`, context, question)
}

func excerpt(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}

// decodeJSONResponse unmarshals an LLM answer that may be wrapped in
// markdown fences or surrounded by prose.
func decodeJSONResponse(response string, target interface{}) error {
	jsonStr := extractJSON(response)

	if err := json.Unmarshal([]byte(jsonStr), target); err != nil {
		return fmt.Errorf("failed to unmarshal JSON: %w\nResponse: %s", err, response)
	}

	return nil
}

// extractJSON tries to extract JSON from text that might contain markdown or other formatting
func extractJSON(text string) string {
	// Remove markdown code blocks
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	// Find JSON object or array boundaries
	startObj := strings.Index(text, "{")
	startArr := strings.Index(text, "[")
	endObj := strings.LastIndex(text, "}")
	endArr := strings.LastIndex(text, "]")

	if startObj != -1 && endObj != -1 && endObj > startObj {
		return text[startObj : endObj+1]
	} else if startArr != -1 && endArr != -1 && endArr > startArr {
		return text[startArr : endArr+1]
	}

	return text
}
