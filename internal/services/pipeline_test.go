package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"smartrecruit/recruitflow/internal/models"
)

// --- in-memory repositories ---

type fakeCandidateRepo struct {
	candidates map[uuid.UUID]*models.Candidate
}

func (r *fakeCandidateRepo) Create(candidate *models.Candidate) error {
	r.candidates[candidate.ID] = candidate
	return nil
}

func (r *fakeCandidateRepo) FindByID(id uuid.UUID) (*models.Candidate, error) {
	candidate, ok := r.candidates[id]
	if !ok {
		return nil, fmt.Errorf("candidate not found")
	}
	return candidate, nil
}

func (r *fakeCandidateRepo) UpdateVideoPath(id uuid.UUID, videoPath string) error {
	candidate, ok := r.candidates[id]
	if !ok {
		return fmt.Errorf("candidate not found")
	}
	candidate.VideoPath = &videoPath
	return nil
}

type fakeJobRepo struct {
	jobs map[uuid.UUID]*models.JobOffer
}

func (r *fakeJobRepo) Create(job *models.JobOffer) error {
	r.jobs[job.ID] = job
	return nil
}

func (r *fakeJobRepo) FindByID(id uuid.UUID) (*models.JobOffer, error) {
	job, ok := r.jobs[id]
	if !ok {
		return nil, fmt.Errorf("job offer not found")
	}
	return job, nil
}

func (r *fakeJobRepo) List() ([]models.JobOffer, error) {
	var jobs []models.JobOffer
	for _, job := range r.jobs {
		jobs = append(jobs, *job)
	}
	return jobs, nil
}

type fakeAppRepo struct {
	apps      map[uuid.UUID]*models.Application
	createErr error
}

func (r *fakeAppRepo) Create(app *models.Application) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.apps[app.ID] = app
	return nil
}

func (r *fakeAppRepo) FindByID(id uuid.UUID) (*models.Application, error) {
	app, ok := r.apps[id]
	if !ok {
		return nil, fmt.Errorf("application not found")
	}
	return app, nil
}

func (r *fakeAppRepo) ListRanked(jobID *uuid.UUID, status models.ApplicationStatus) ([]models.Application, error) {
	var apps []models.Application
	for _, app := range r.apps {
		if status != "" && app.Status != status {
			continue
		}
		apps = append(apps, *app)
	}
	return apps, nil
}

func (r *fakeAppRepo) UpdateStatus(id uuid.UUID, status models.ApplicationStatus) error {
	app, ok := r.apps[id]
	if !ok {
		return fmt.Errorf("application not found")
	}
	app.Status = status
	return nil
}

func (r *fakeAppRepo) UpdateNote(id uuid.UUID, note string) error {
	app, ok := r.apps[id]
	if !ok {
		return fmt.Errorf("application not found")
	}
	app.RHNote = &note
	return nil
}

// --- collaborator stubs ---

type stubTranscriber struct {
	transcript string
	err        error
}

func (s *stubTranscriber) Transcribe(ctx context.Context, videoPath string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.transcript, nil
}

type stubAnalyzer struct {
	result        *SoftSkillResult
	err           error
	gotTranscript string
}

func (s *stubAnalyzer) Analyze(ctx context.Context, transcript string, requirements []models.Requirement) (*SoftSkillResult, error) {
	s.gotTranscript = transcript
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

type stubSummarizer struct {
	summary     string
	suggestions string
	summaryErr  error
	suggestErr  error
}

func (s *stubSummarizer) GenerateCandidateSummary(ctx context.Context, candidate *models.Candidate, job *models.JobOffer, input SummaryInput) (string, error) {
	if s.summaryErr != nil {
		return "", s.summaryErr
	}
	return s.summary, nil
}

func (s *stubSummarizer) GenerateLearningSuggestions(ctx context.Context, candidateName, jobTitle, feedback string) (string, error) {
	if s.suggestErr != nil {
		return "", s.suggestErr
	}
	return s.suggestions, nil
}

type stubNotifier struct {
	err    error
	sent   []string
	bodies []string
}

func (s *stubNotifier) Notify(to, subject, body string) error {
	s.sent = append(s.sent, to)
	s.bodies = append(s.bodies, body)
	return s.err
}

// --- fixtures ---

type pipelineFixture struct {
	candidateRepo *fakeCandidateRepo
	jobRepo       *fakeJobRepo
	appRepo       *fakeAppRepo
	transcriber   *stubTranscriber
	analyzer      *stubAnalyzer
	summarizer    *stubSummarizer
	notifier      *stubNotifier
	service       ApplicationService
	candidateID   uuid.UUID
	jobID         uuid.UUID
}

func newPipelineFixture(t *testing.T) *pipelineFixture {
	t.Helper()

	candidateID := uuid.New()
	jobID := uuid.New()

	f := &pipelineFixture{
		candidateRepo: &fakeCandidateRepo{candidates: map[uuid.UUID]*models.Candidate{
			candidateID: {
				ID:         candidateID,
				Name:       "Amina El Fassi",
				Emails:     pq.StringArray{"amina@example.com"},
				Skills:     pq.StringArray{"python", "Go"},
				Education:  json.RawMessage(`[{"degree": "Licence Informatique"}]`),
				Experience: json.RawMessage(`[{"position": "dev", "company": "acme"}]`),
			},
		}},
		jobRepo: &fakeJobRepo{jobs: map[uuid.UUID]*models.JobOffer{
			jobID: {
				ID:              jobID,
				Title:           "Backend Developer",
				DiplomaType:     "Master",
				ExperienceYears: 2,
				Requirements:    json.RawMessage(`[{"skill": "Python", "level": "avancé"}, {"skill": "SQL", "level": "intermédiaire"}]`),
			},
		}},
		appRepo:     &fakeAppRepo{apps: map[uuid.UUID]*models.Application{}},
		transcriber: &stubTranscriber{transcript: "I enjoy working in teams."},
		analyzer: &stubAnalyzer{result: &SoftSkillResult{
			Softskills:      []string{"teamwork"},
			SoftskillsScore: 60,
			Feedback:        "Works well with others.",
		}},
		summarizer: &stubSummarizer{summary: "Solid profile.", suggestions: "Take a SQL course."},
		notifier:   &stubNotifier{},
		candidateID: candidateID,
		jobID:       jobID,
	}

	f.service = NewApplicationService(
		f.appRepo,
		f.candidateRepo,
		f.jobRepo,
		f.transcriber,
		f.analyzer,
		f.summarizer,
		f.notifier,
	)

	return f
}

// --- tests ---

func TestSubmitScoresAndPersists(t *testing.T) {
	f := newPipelineFixture(t)

	app, err := f.service.Submit(context.Background(), SubmissionInput{
		CandidateID: f.candidateID,
		JobID:       f.jobID,
		VideoPath:   "/uploads/video_x.mp4",
		TechScore:   ptr(100),
	})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	// CV: skills 1/2, no diploma, one experience record defaulting to one
	// year against two required -> 0.6*0.5 + 0.2*0 + 0.2*0.5 = 40.0
	if *app.CVScore != 40.0 {
		t.Errorf("cv_score = %v, want 40.0", *app.CVScore)
	}
	// Global: 0.4*40 + 0.3*60 + 0.3*100 = 64.0
	if *app.GlobalScore != 64.0 {
		t.Errorf("global_score = %v, want 64.0", *app.GlobalScore)
	}
	if app.Status != models.StatusPending {
		t.Errorf("status = %v, want pending", app.Status)
	}
	if app.Transcript != "I enjoy working in teams." {
		t.Errorf("transcript = %q", app.Transcript)
	}
	if app.MiniReport != "Solid profile." {
		t.Errorf("mini_report = %q", app.MiniReport)
	}
	if len(f.appRepo.apps) != 1 {
		t.Errorf("persisted %d applications, want 1", len(f.appRepo.apps))
	}

	candidate := f.candidateRepo.candidates[f.candidateID]
	if candidate.VideoPath == nil || *candidate.VideoPath != "/uploads/video_x.mp4" {
		t.Error("candidate video reference was not updated")
	}
}

func TestSubmitKeepsScoresConsistent(t *testing.T) {
	f := newPipelineFixture(t)

	app, err := f.service.Submit(context.Background(), SubmissionInput{
		CandidateID: f.candidateID,
		JobID:       f.jobID,
		TechScore:   ptr(73.5),
	})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	expected := ComputeGlobalScore(app.CVScore, app.SoftskillsScore, app.TechScore, DefaultScoreWeights())
	if *app.GlobalScore != expected {
		t.Errorf("global_score %v inconsistent with parts, want %v", *app.GlobalScore, expected)
	}
}

func TestSubmitTranscriptionFailureContinues(t *testing.T) {
	f := newPipelineFixture(t)
	f.transcriber.err = fmt.Errorf("%w: codec not supported", ErrTranscription)

	app, err := f.service.Submit(context.Background(), SubmissionInput{
		CandidateID: f.candidateID,
		JobID:       f.jobID,
		VideoPath:   "/uploads/video_x.mp4",
		TechScore:   ptr(50),
	})
	if err != nil {
		t.Fatalf("Submit() error = %v, transcription failure must not abort", err)
	}

	if app.Transcript != "" {
		t.Errorf("transcript = %q, want empty", app.Transcript)
	}
	if f.analyzer.gotTranscript != "" {
		t.Errorf("analyzer received %q, want empty transcript", f.analyzer.gotTranscript)
	}
	if len(f.appRepo.apps) != 1 {
		t.Error("application must still be persisted when transcription fails")
	}
}

func TestSubmitAnalysisFailureWritesNothing(t *testing.T) {
	f := newPipelineFixture(t)
	f.analyzer.err = fmt.Errorf("%w: response was not valid JSON", ErrAnalysis)

	_, err := f.service.Submit(context.Background(), SubmissionInput{
		CandidateID: f.candidateID,
		JobID:       f.jobID,
	})
	if !errors.Is(err, ErrAnalysis) {
		t.Fatalf("Submit() error = %v, want ErrAnalysis", err)
	}

	if len(f.appRepo.apps) != 0 {
		t.Error("no application may be persisted when analysis fails")
	}
}

func TestSubmitReportFailureWritesNothing(t *testing.T) {
	f := newPipelineFixture(t)
	f.summarizer.summaryErr = fmt.Errorf("%w: api unavailable", ErrGeneration)

	_, err := f.service.Submit(context.Background(), SubmissionInput{
		CandidateID: f.candidateID,
		JobID:       f.jobID,
	})
	if !errors.Is(err, ErrGeneration) {
		t.Fatalf("Submit() error = %v, want ErrGeneration", err)
	}

	if len(f.appRepo.apps) != 0 {
		t.Error("no application may be persisted when report generation fails")
	}
}

func TestSubmitUnknownCandidate(t *testing.T) {
	f := newPipelineFixture(t)

	_, err := f.service.Submit(context.Background(), SubmissionInput{
		CandidateID: uuid.New(),
		JobID:       f.jobID,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Submit() error = %v, want ErrNotFound", err)
	}

	if len(f.appRepo.apps) != 0 {
		t.Error("no application may be persisted on a failed lookup")
	}
}

func submitFixtureApplication(t *testing.T, f *pipelineFixture) *models.Application {
	t.Helper()

	app, err := f.service.Submit(context.Background(), SubmissionInput{
		CandidateID: f.candidateID,
		JobID:       f.jobID,
		TechScore:   ptr(80),
	})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	return app
}

func TestAcceptUpdatesStatusAndNotifies(t *testing.T) {
	f := newPipelineFixture(t)
	app := submitFixtureApplication(t, f)

	warning, err := f.service.Accept(context.Background(), app.ID)
	if err != nil {
		t.Fatalf("Accept() error = %v", err)
	}
	if warning != "" {
		t.Errorf("warning = %q, want empty", warning)
	}

	if f.appRepo.apps[app.ID].Status != models.StatusAccepted {
		t.Error("status was not updated to accepted")
	}
	if len(f.notifier.sent) != 1 || f.notifier.sent[0] != "amina@example.com" {
		t.Errorf("notification sent to %v, want [amina@example.com]", f.notifier.sent)
	}
}

func TestRefuseSendsLearningSuggestions(t *testing.T) {
	f := newPipelineFixture(t)
	app := submitFixtureApplication(t, f)

	warning, err := f.service.Refuse(context.Background(), app.ID)
	if err != nil {
		t.Fatalf("Refuse() error = %v", err)
	}
	if warning != "" {
		t.Errorf("warning = %q, want empty", warning)
	}

	if f.appRepo.apps[app.ID].Status != models.StatusRejected {
		t.Error("status was not updated to rejected")
	}
	if len(f.notifier.bodies) != 1 || !strings.Contains(f.notifier.bodies[0], "Take a SQL course.") {
		t.Error("rejection mail must contain the learning suggestions")
	}
}

func TestRefuseNotificationFailureIsWarningOnly(t *testing.T) {
	f := newPipelineFixture(t)
	app := submitFixtureApplication(t, f)
	f.notifier.err = fmt.Errorf("%w: smtp unavailable", ErrNotification)

	warning, err := f.service.Refuse(context.Background(), app.ID)
	if err != nil {
		t.Fatalf("Refuse() error = %v, delivery failure must not fail the action", err)
	}
	if warning == "" {
		t.Error("expected a warning when notification fails")
	}

	if f.appRepo.apps[app.ID].Status != models.StatusRejected {
		t.Error("status change must not be rolled back by a notification failure")
	}
}

func TestRefuseSuggestionFailureKeepsStatus(t *testing.T) {
	f := newPipelineFixture(t)
	app := submitFixtureApplication(t, f)
	f.summarizer.suggestErr = fmt.Errorf("%w: api unavailable", ErrGeneration)

	_, err := f.service.Refuse(context.Background(), app.ID)
	if !errors.Is(err, ErrGeneration) {
		t.Fatalf("Refuse() error = %v, want ErrGeneration", err)
	}

	if f.appRepo.apps[app.ID].Status != models.StatusPending {
		t.Error("status must stay pending when suggestion generation fails")
	}
}

func TestAddNote(t *testing.T) {
	f := newPipelineFixture(t)
	app := submitFixtureApplication(t, f)

	if err := f.service.AddNote(app.ID, "strong profile, call back"); err != nil {
		t.Fatalf("AddNote() error = %v", err)
	}

	note := f.appRepo.apps[app.ID].RHNote
	if note == nil || *note != "strong profile, call back" {
		t.Error("note was not stored")
	}

	if err := f.service.AddNote(uuid.New(), "x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("AddNote on unknown application = %v, want ErrNotFound", err)
	}
}
