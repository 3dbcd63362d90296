package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"smartrecruit/recruitflow/internal/models"
	"smartrecruit/recruitflow/internal/repositories"
)

// SubmissionInput is one application submission: an already-extracted
// candidate, a job, an optional stored video and the quiz result.
type SubmissionInput struct {
	CandidateID uuid.UUID
	JobID       uuid.UUID
	VideoPath   string
	TechScore   *float64
}

// ApplicationService runs the scoring pipeline for a submission and carries
// the recruiter actions. The pipeline is synchronous and all-or-nothing: the
// Application row is written exactly once, after every score and the
// mini-report exist. Status and note are the only fields mutated later.
type ApplicationService interface {
	Submit(ctx context.Context, input SubmissionInput) (*models.Application, error)
	Accept(ctx context.Context, appID uuid.UUID) (string, error)
	Refuse(ctx context.Context, appID uuid.UUID) (string, error)
	AddNote(appID uuid.UUID, note string) error
}

type applicationService struct {
	appRepo       repositories.ApplicationRepository
	candidateRepo repositories.CandidateRepository
	jobRepo       repositories.JobOfferRepository
	transcriber   TranscriptionService
	analyzer      SoftSkillAnalyzer
	summarizer    SummaryGenerator
	notifier      NotificationService
	weights       ScoreWeights
}

func NewApplicationService(
	appRepo repositories.ApplicationRepository,
	candidateRepo repositories.CandidateRepository,
	jobRepo repositories.JobOfferRepository,
	transcriber TranscriptionService,
	analyzer SoftSkillAnalyzer,
	summarizer SummaryGenerator,
	notifier NotificationService,
) ApplicationService {
	return &applicationService{
		appRepo:       appRepo,
		candidateRepo: candidateRepo,
		jobRepo:       jobRepo,
		transcriber:   transcriber,
		analyzer:      analyzer,
		summarizer:    summarizer,
		notifier:      notifier,
		weights:       DefaultScoreWeights(),
	}
}

// Submit implements ApplicationService.
func (s *applicationService) Submit(ctx context.Context, input SubmissionInput) (*models.Application, error) {
	candidate, err := s.candidateRepo.FindByID(input.CandidateID)
	if err != nil {
		return nil, fmt.Errorf("%w: candidate %s", ErrNotFound, input.CandidateID)
	}

	job, err := s.jobRepo.FindByID(input.JobID)
	if err != nil {
		return nil, fmt.Errorf("%w: job %s", ErrNotFound, input.JobID)
	}

	log.Printf("🔄 Scoring application of %s for %q\n", candidate.Name, job.Title)

	// Step 1: transcript. A failed transcription degrades analysis quality
	// instead of aborting the submission.
	transcript := ""
	if input.VideoPath != "" {
		transcript, err = s.transcriber.Transcribe(ctx, input.VideoPath)
		if err != nil {
			log.Printf("⚠️  Transcription failed, continuing with empty transcript: %v\n", err)
			transcript = ""
		}
	}

	// Step 2: deterministic CV fit.
	cvScore := ComputeCVScore(candidate, job)

	// Step 3: soft skills. A broken analysis aborts before any write.
	analysis, err := s.analyzer.Analyze(ctx, transcript, parseRequirements(job))
	if err != nil {
		return nil, err
	}

	// Step 4: composite score.
	globalScore := ComputeGlobalScore(&cvScore, &analysis.SoftskillsScore, input.TechScore, s.weights)

	// Step 5: recruiter-facing mini-report.
	miniReport, err := s.summarizer.GenerateCandidateSummary(ctx, candidate, job, SummaryInput{
		CVScore:         cvScore,
		SoftskillsScore: analysis.SoftskillsScore,
		TechScore:       deref(input.TechScore),
		GlobalScore:     globalScore,
		Feedback:        analysis.Feedback,
		Transcript:      transcript,
	})
	if err != nil {
		return nil, err
	}

	// Step 6: single write. Scores and report are write-once from here on.
	app := &models.Application{
		ID:              uuid.New(),
		CandidateID:     candidate.ID,
		JobID:           job.ID,
		VideoPath:       input.VideoPath,
		Softskills:      pq.StringArray(analysis.Softskills),
		CVScore:         &cvScore,
		SoftskillsScore: &analysis.SoftskillsScore,
		TechScore:       input.TechScore,
		GlobalScore:     &globalScore,
		Feedback:        analysis.Feedback,
		Transcript:      transcript,
		MiniReport:      miniReport,
		Status:          models.StatusPending,
	}

	if err := s.appRepo.Create(app); err != nil {
		return nil, fmt.Errorf("failed to persist application: %w", err)
	}

	if input.VideoPath != "" {
		if err := s.candidateRepo.UpdateVideoPath(candidate.ID, input.VideoPath); err != nil {
			log.Printf("⚠️  Failed to attach video to candidate %s: %v\n", candidate.ID, err)
		}
	}

	log.Printf("✅ Application %s scored: cv=%.2f soft=%.2f tech=%.2f global=%.2f\n",
		app.ID, cvScore, analysis.SoftskillsScore, deref(input.TechScore), globalScore)

	return app, nil
}

// Accept implements ApplicationService. The returned string is a soft
// warning when the acceptance mail could not be delivered.
func (s *applicationService) Accept(ctx context.Context, appID uuid.UUID) (string, error) {
	app, err := s.appRepo.FindByID(appID)
	if err != nil {
		return "", fmt.Errorf("%w: application %s", ErrNotFound, appID)
	}

	candidate, job, err := s.resolveParties(app)
	if err != nil {
		return "", err
	}

	if err := s.appRepo.UpdateStatus(appID, models.StatusAccepted); err != nil {
		return "", err
	}

	body := fmt.Sprintf("Hello %s,\n\nGood news: your application for the %s position has been accepted. The recruitment team will contact you shortly to schedule an interview.\n\nBest regards,\nThe recruitment team",
		candidate.Name, job.Title)

	return s.notifyCandidate(candidate, fmt.Sprintf("Your application for %s", job.Title), body), nil
}

// Refuse implements ApplicationService. Learning suggestions are generated
// before the status flips, so a generation failure aborts the whole action;
// a delivery failure after the flip only becomes a warning.
func (s *applicationService) Refuse(ctx context.Context, appID uuid.UUID) (string, error) {
	app, err := s.appRepo.FindByID(appID)
	if err != nil {
		return "", fmt.Errorf("%w: application %s", ErrNotFound, appID)
	}

	candidate, job, err := s.resolveParties(app)
	if err != nil {
		return "", err
	}

	suggestions, err := s.summarizer.GenerateLearningSuggestions(ctx, candidate.Name, job.Title, app.Feedback)
	if err != nil {
		return "", err
	}

	if err := s.appRepo.UpdateStatus(appID, models.StatusRejected); err != nil {
		return "", err
	}

	body := fmt.Sprintf("Hello %s,\n\nThank you for applying for the %s position. After review, we will not be moving forward with your application.\n\n%s\n\nBest regards,\nThe recruitment team",
		candidate.Name, job.Title, suggestions)

	return s.notifyCandidate(candidate, fmt.Sprintf("Your application for %s", job.Title), body), nil
}

// AddNote implements ApplicationService.
func (s *applicationService) AddNote(appID uuid.UUID, note string) error {
	if _, err := s.appRepo.FindByID(appID); err != nil {
		return fmt.Errorf("%w: application %s", ErrNotFound, appID)
	}

	return s.appRepo.UpdateNote(appID, note)
}

func (s *applicationService) resolveParties(app *models.Application) (*models.Candidate, *models.JobOffer, error) {
	candidate, err := s.candidateRepo.FindByID(app.CandidateID)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: candidate %s", ErrNotFound, app.CandidateID)
	}

	job, err := s.jobRepo.FindByID(app.JobID)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: job %s", ErrNotFound, app.JobID)
	}

	return candidate, job, nil
}

func (s *applicationService) notifyCandidate(candidate *models.Candidate, subject, body string) string {
	if len(candidate.Emails) == 0 {
		return fmt.Sprintf("candidate %s has no email address on file", candidate.Name)
	}

	if err := s.notifier.Notify(candidate.Emails[0], subject, body); err != nil {
		return fmt.Sprintf("status updated but notification failed: %v", err)
	}

	return ""
}
