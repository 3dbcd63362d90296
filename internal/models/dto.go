package models

import "time"

// CVInfo is the structured extraction returned by the LLM for an uploaded CV.
// The list-shaped fields are decoded as `any` because the model occasionally
// returns them as JSON-encoded strings instead of native arrays; the
// normalizer is the only consumer and flattens both shapes.
type CVInfo struct {
	Name       string   `json:"name"`
	Emails     []string `json:"emails"`
	Phones     []string `json:"phones"`
	Linkedin   []string `json:"linkedin"`
	Address    *string  `json:"address"`
	Education  any      `json:"education"`
	Experience any      `json:"experience"`
	Skills     any      `json:"skills"`
	Languages  any      `json:"languages"`
}

type UploadCVResponse struct {
	CandidateID string `json:"candidate_id"`
	Filename    string `json:"filename"`
	Infos       CVInfo `json:"infos"`
}

type CreateJobRequest struct {
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	DiplomaType     string        `json:"diploma_type"`
	Filiere         string        `json:"filiere"`
	EducationLevel  string        `json:"education_level"`
	ExperienceYears int           `json:"experience_years"`
	Requirements    []Requirement `json:"requirements"`
}

// ApplicationRow is one row of the recruiter-facing ranked listing.
type ApplicationRow struct {
	ApplicationID   string    `json:"application_id"`
	CandidateName   string    `json:"candidate_name"`
	JobTitle        string    `json:"job_title"`
	CVScore         *float64  `json:"cv_score"`
	SoftskillsScore *float64  `json:"softskills_score"`
	TechScore       *float64  `json:"tech_score"`
	GlobalScore     *float64  `json:"global_score"`
	Softskills      []string  `json:"softskills"`
	Feedback        string    `json:"feedback"`
	Transcript      string    `json:"transcript"`
	MiniReport      string    `json:"mini_report"`
	Status          string    `json:"status"`
	RHNote          *string   `json:"rh_note,omitempty"`
	DateApplied     time.Time `json:"date_applied"`
}

type NoteRequest struct {
	Note string `json:"note"`
}

// ActionResponse reports a recruiter status change. Warning is set when the
// follow-up notification failed after retries; the status change itself stood.
type ActionResponse struct {
	ID      string `json:"id"`
	Status  string `json:"status"`
	Warning string `json:"warning,omitempty"`
}

type QuizQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

type QuizResponse struct {
	Questions []QuizQuestion `json:"questions"`
}

type GradeQuizRequest struct {
	Questions []QuizQuestion `json:"questions"`
	Answers   []string       `json:"answers"`
}

type GradeQuizResponse struct {
	TechScore float64 `json:"tech_score"`
}

type ChatRequest struct {
	Question string `json:"question"`
	TopK     int    `json:"top_k"`
}

type ChatSource struct {
	Question string  `json:"question"`
	Answer   string  `json:"answer"`
	Score    float32 `json:"score"`
}

type ChatResponse struct {
	Answer  string       `json:"answer"`
	Sources []ChatSource `json:"sources"`
}

type ScheduleInterviewRequest struct {
	InterviewDatetime time.Time `json:"interview_datetime"`
	Location          string    `json:"location"`
}

// InterviewRow is one row of the scheduled-interview listing.
type InterviewRow struct {
	InterviewID       string    `json:"interview_id"`
	ApplicationID     string    `json:"application_id"`
	CandidateName     string    `json:"candidate_name"`
	JobTitle          string    `json:"job_title"`
	InterviewDatetime time.Time `json:"interview_datetime"`
	Location          string    `json:"location"`
}
